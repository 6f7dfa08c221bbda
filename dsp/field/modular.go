package field

import (
	"fmt"
	"math/bits"
)

// ModParams configures a prime field for the number-theoretic transform.
type ModParams struct {
	// Modulus is the prime defining the field.
	Modulus uint64

	// PrimitiveRoot generates the multiplicative group modulo Modulus.
	PrimitiveRoot uint64
}

// NTT-friendly primes of the form c*2^k + 1 with a known generator.
var (
	// Params998244353 is 119*2^23 + 1 with generator 3.
	Params998244353 = ModParams{Modulus: 998244353, PrimitiveRoot: 3}

	// Params167772161 is 5*2^25 + 1 with generator 3.
	Params167772161 = ModParams{Modulus: 167772161, PrimitiveRoot: 3}

	// Params469762049 is 7*2^26 + 1 with generator 3.
	Params469762049 = ModParams{Modulus: 469762049, PrimitiveRoot: 3}

	// Params754974721 is 45*2^24 + 1 with generator 11.
	Params754974721 = ModParams{Modulus: 754974721, PrimitiveRoot: 11}
)

// Modular is the field of integers modulo a prime. Elements are uint64
// residues in [0, Modulus). Products are formed in 128 bits before
// reduction, so any 64-bit modulus is safe from overflow.
//
// A Modular must be built with NewModular or DefaultModular. The zero value
// has no modulus: its arithmetic panics, while RootOfUnity and InverseLen
// report errors, so transforms over it fail without panicking.
type Modular struct {
	params ModParams
	maxLen int
}

// NewModular validates params and returns the corresponding field.
//
// The modulus must be odd and at least 3. The primitive root must lie in
// [2, Modulus) and satisfy g^(m-1) = 1 and g^((m-1)/2) != 1, which rules out
// values that cannot generate the 2-power subgroup.
func NewModular(params ModParams) (*Modular, error) {
	m := params.Modulus
	if m < 3 || m%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, m)
	}

	f := &Modular{params: params}

	g := params.PrimitiveRoot
	if g < 2 || g >= m {
		return nil, fmt.Errorf("%w: %d (mod %d)", ErrInvalidRoot, g, m)
	}
	if f.Pow(g, m-1) != 1 || f.Pow(g, (m-1)/2) == 1 {
		return nil, fmt.Errorf("%w: %d (mod %d)", ErrInvalidRoot, g, m)
	}

	twoAdicity := bits.TrailingZeros64(m - 1)
	if twoAdicity >= bits.UintSize-1 {
		twoAdicity = bits.UintSize - 2
	}
	f.maxLen = 1 << twoAdicity

	return f, nil
}

// DefaultModular returns the field modulo 998244353 with generator 3.
func DefaultModular() *Modular {
	f, err := NewModular(Params998244353)
	if err != nil {
		panic(err)
	}
	return f
}

// Params returns the configuration the field was built from.
func (f *Modular) Params() ModParams {
	return f.params
}

// Modulus returns the prime modulus.
func (f *Modular) Modulus() uint64 {
	return f.params.Modulus
}

// MaxLen returns the largest transform length the field supports, the
// largest power of two dividing Modulus-1.
func (f *Modular) MaxLen() int {
	return f.maxLen
}

// Zero returns 0.
func (f *Modular) Zero() uint64 { return 0 }

// One returns 1.
func (f *Modular) One() uint64 { return 1 }

// Add returns (a + b) mod m. Operands must be reduced.
func (f *Modular) Add(a, b uint64) uint64 {
	m := f.params.Modulus
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= m {
		sum -= m
	}
	return sum
}

// Sub returns (a - b) mod m. Operands must be reduced.
func (f *Modular) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + f.params.Modulus - b
}

// Mul returns (a * b) mod m using a 128-bit intermediate product.
func (f *Modular) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, f.params.Modulus)
}

// Pow returns base^exp mod m by square-and-multiply.
func (f *Modular) Pow(base, exp uint64) uint64 {
	result := uint64(1)
	base %= f.params.Modulus
	for exp > 0 {
		if exp&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		exp >>= 1
	}
	return result
}

// Inverse returns a^(m-2) mod m, the multiplicative inverse of a for prime m.
// The inverse of 0 is reported as 0.
func (f *Modular) Inverse(a uint64) uint64 {
	return f.Pow(a, f.params.Modulus-2)
}

// Reduce maps a signed integer into [0, m).
func (f *Modular) Reduce(x int64) uint64 {
	m := f.params.Modulus
	if x >= 0 {
		return uint64(x) % m
	}
	r := uint64(-(x + 1)) % m // -(x+1) cannot overflow
	return m - 1 - r
}

// RootOfUnity returns g^((m-1)/n), or its inverse when inverse is set.
// n must be a power of two dividing m-1.
func (f *Modular) RootOfUnity(n int, inverse bool) (uint64, error) {
	if !isPowerOf2(n) || n > f.maxLen {
		return 0, fmt.Errorf("%w: %d (mod %d supports up to %d)",
			ErrUnsupportedLength, n, f.params.Modulus, f.maxLen)
	}

	g := f.params.PrimitiveRoot
	if inverse {
		g = f.Inverse(g)
	}

	return f.Pow(g, (f.params.Modulus-1)/uint64(n)), nil
}

// InverseLen returns n^(m-2) mod m.
func (f *Modular) InverseLen(n int) (uint64, error) {
	if f.params.Modulus == 0 {
		return 0, ErrInvalidModulus
	}
	if n <= 0 || uint64(n)%f.params.Modulus == 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLength, n)
	}
	return f.Inverse(uint64(n)), nil
}
