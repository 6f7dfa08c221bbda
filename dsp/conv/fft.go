package conv

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-conv/dsp/field"
	"github.com/cwbudde/algo-conv/dsp/transform"
)

const (
	// roundingTolerance is the largest distance from an integer that
	// ConvolveInt accepts before reporting ErrPrecisionLoss.
	roundingTolerance = 0.25

	// exactIntegerLimit is 2^53; above it float64 cannot represent every integer.
	exactIntegerLimit = 1 << 53
)

// ConvolveFFT computes the linear convolution of two real sequences through
// the complex FFT. The result has length len(a) + len(b) - 1 and holds the
// real parts of the inverse transform; imaginary round-off is discarded.
func ConvolveFFT(a, b []float64, opts ...Option) ([]float64, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	product, err := convolveComplex(toComplex(a), toComplex(b), applyOptions(opts))
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(product))
	for i, c := range product {
		result[i] = real(c)
	}
	return result, nil
}

// ConvolveInt computes the convolution of two integer sequences through the
// complex FFT and rounds every coefficient to the nearest integer.
//
// If any coefficient lies more than 0.25 from an integer or reaches 2^53 in
// magnitude, the float64 precision of the transform was insufficient for the
// operand magnitudes and ErrPrecisionLoss is returned. Unlike DirectInt,
// which wraps, a coefficient that does not fit in T yields ErrOverflow.
func ConvolveInt[T constraints.Integer](a, b []T, opts ...Option) ([]T, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	product, err := convolveComplex(intsToComplex(a), intsToComplex(b), applyOptions(opts))
	if err != nil {
		return nil, err
	}

	result := make([]T, len(product))
	for i, c := range product {
		v := real(c)
		r := math.Round(v)
		if math.Abs(v-r) > roundingTolerance || math.Abs(r) >= exactIntegerLimit || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: coefficient %d = %g", ErrPrecisionLoss, i, v)
		}
		x := T(int64(r))
		if float64(x) != r {
			return nil, fmt.Errorf("%w: coefficient %d = %g", ErrOverflow, i, r)
		}
		result[i] = x
	}
	return result, nil
}

func convolveComplex(a, b []complex128, cfg config) ([]complex128, error) {
	product, err := transform.ConvolveUsing[complex128](field.Complex{}, a, b, cfg.strategy)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	return product, nil
}

func toComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

func intsToComplex[T constraints.Integer](x []T) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(float64(v), 0)
	}
	return out
}
