package field

import (
	"fmt"
	"math"
)

// Complex is the field of complex128 numbers used by the FFT variants.
// The zero value is ready to use.
type Complex struct{}

// Zero returns 0+0i.
func (Complex) Zero() complex128 { return 0 }

// One returns 1+0i.
func (Complex) One() complex128 { return 1 }

// Add returns a + b.
func (Complex) Add(a, b complex128) complex128 { return a + b }

// Sub returns a - b.
func (Complex) Sub(a, b complex128) complex128 { return a - b }

// Mul returns a * b.
func (Complex) Mul(a, b complex128) complex128 { return a * b }

// RootOfUnity returns exp(-2πi/n), or exp(+2πi/n) when inverse is set.
func (Complex) RootOfUnity(n int, inverse bool) (complex128, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLength, n)
	}

	theta := -2 * math.Pi / float64(n)
	if inverse {
		theta = -theta
	}

	return complex(math.Cos(theta), math.Sin(theta)), nil
}

// InverseLen returns 1/n + 0i. For powers of two the reciprocal is exact, so
// multiplying by it matches dividing by n bit for bit.
func (Complex) InverseLen(n int) (complex128, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLength, n)
	}

	return complex(1/float64(n), 0), nil
}
