package conv

import (
	"github.com/cwbudde/algo-conv/dsp/field"
)

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Cross-correlation is convolution with the time-reversed second signal:
// corr(a, b) = conv(a, reverse(b)).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Convolve(a, reversed(b))
}

// CorrelateMode computes cross-correlation with specified output mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate computes the auto-correlation of signal a.
// The result has length 2*len(a) - 1.
// Output index k corresponds to lag k - (len(a) - 1).
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// CorrelateMod computes the exact cross-correlation of two residue
// sequences modulo params.Modulus through the number-theoretic transform.
// Index k corresponds to lag k - (len(b) - 1).
func CorrelateMod(a, b []uint64, params field.ModParams) ([]uint64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return ConvolveMod(a, reversed(b), WithModulus(params))
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Useful for finding the best alignment between two signals.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation of signals with lengths lenA and lenB,
// the lag at index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

func reversed[T any](x []T) []T {
	out := make([]T, len(x))
	for i := range x {
		out[i] = x[len(x)-1-i]
	}
	return out
}
