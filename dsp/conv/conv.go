// Package conv provides transform-based convolution of finite sequences.
//
// Three numeric variants share one pipeline (pad to a power of two,
// transform, multiply pointwise, inverse-transform, truncate):
//
//   - [ConvolveFFT]: real sequences through the complex FFT
//   - [ConvolveInt]: integer sequences through the FFT, rounded to the nearest integer
//   - [ConvolveMod]: residues through the number-theoretic transform, exact modulo a prime
//
// Every variant returns len(a)+len(b)-1 coefficients, those of the product
// of the two polynomials whose coefficients are a and b.
//
// # Usage
//
//	result, err := conv.ConvolveInt([]int{1, 2, 3}, []int{4, 5, 6}) // [4 13 28 27 18]
//	result, err := conv.ConvolveMod(a, b)                            // mod 998244353
//	result, err := conv.ConvolveMod(a, b, conv.WithModulus(field.Params469762049))
//
// The O(N*M) references [Direct], [DirectInt] and [DirectMod] compute the
// same results by double summation. [Convolve] picks between [Direct] and
// [ConvolveFFT] by operand length.
//
// For repeated real convolutions of similar sizes, a [Planner] caches
// optimized FFT plans:
//
//	var p conv.Planner
//	result, err := p.Convolve(signal, kernel)
//
// # Errors
//
// Empty operands are rejected with [ErrEmptyInput] or [ErrEmptyKernel].
// [ConvolveMod] rejects unreduced inputs with [ErrOutOfRange], and
// [ConvolveInt] reports [ErrPrecisionLoss] when float64 round-off makes the
// rounded coefficients unreliable, or [ErrOverflow] when a coefficient does
// not fit in the integer element type.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/constraints"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrOutOfRange     = errors.New("conv: element not reduced modulo the field modulus")
	ErrPrecisionLoss  = errors.New("conv: float64 precision exhausted")
	ErrOverflow       = errors.New("conv: coefficient overflows element type")
)

// Mode specifies the output mode for convolution and correlation.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// directThreshold is the shorter-operand length up to which Convolve uses
// direct summation.
const directThreshold = 64

// checkOperands validates the two operands of a convolution.
func checkOperands(lenA, lenB int) error {
	if lenA == 0 {
		return ErrEmptyInput
	}
	if lenB == 0 {
		return ErrEmptyKernel
	}
	return nil
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
func Direct(a, b []float64) ([]float64, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(b)
	temp := make([]float64, m)

	for i, x := range a {
		// dst[i:i+m] += b * a[i]
		vecmath.ScaleBlock(temp, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// DirectInt performs exact direct convolution of integer sequences.
// Sums wrap on overflow of T; ConvolveInt reports ErrOverflow instead.
func DirectInt[T constraints.Integer](a, b []T) ([]T, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	result := make([]T, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			result[i+j] += x * y
		}
	}
	return result, nil
}

// Convolve performs linear convolution with automatic algorithm selection.
// When the shorter operand has at most 64 samples, uses direct convolution;
// otherwise uses ConvolveFFT.
func Convolve(a, b []float64) ([]float64, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	// Ensure a is the longer signal for efficient processing
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}
	return ConvolveFFT(a, b)
}

// ConvolveMode performs convolution with specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode[T any](full []T, lenA, lenB int, mode Mode) []T {
	switch mode {
	case ModeSame:
		// Center the result to match length of first input
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		// Return only fully overlapping portion
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}
