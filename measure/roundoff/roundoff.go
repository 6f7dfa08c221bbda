// Package roundoff measures the floating-point error of FFT-based integer
// convolution against the exact double-sum product.
//
// The integer FFT variant is only correct while every output lies within
// 0.5 of the true integer coefficient. [Measure] reports how close a given
// pair of operands comes to that limit:
//
//	res, err := roundoff.Measure(a, b)
//	if !res.Safe {
//		// use conv.ConvolveMod or smaller operands
//	}
package roundoff

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-conv/dsp/conv"
)

// ErrEmptyInput is returned when either operand is empty.
var ErrEmptyInput = errors.New("roundoff: empty input")

// Result holds round-off statistics of one FFT convolution.
type Result struct {
	// Len is the number of output coefficients.
	Len int

	// MaxAbsError is the largest |fft - exact| over all coefficients.
	MaxAbsError float64

	// MeanAbsError is the mean of |fft - exact|.
	MeanAbsError float64

	// StdDevError is the population standard deviation of |fft - exact|.
	StdDevError float64

	// P99Error is the 99th percentile of |fft - exact|.
	P99Error float64

	// Margin is the largest distance of an FFT output from its nearest
	// integer. Without access to the exact result this is the only
	// observable symptom of precision loss.
	Margin float64

	// Safe reports whether rounding every FFT output recovers the exact
	// coefficient. Above 2^53 every float64 is an integer, so Margin can be
	// 0 while Safe is false.
	Safe bool
}

// Measure convolves a and b through the complex FFT and compares the
// unrounded outputs with the exact direct convolution. The exact products
// are computed in int64 and must not overflow.
func Measure(a, b []int64, opts ...conv.Option) (Result, error) {
	if len(a) == 0 || len(b) == 0 {
		return Result{}, ErrEmptyInput
	}

	approx, err := conv.ConvolveFFT(toFloat(a), toFloat(b), opts...)
	if err != nil {
		return Result{}, fmt.Errorf("roundoff: %w", err)
	}
	exact, err := conv.DirectInt(a, b)
	if err != nil {
		return Result{}, fmt.Errorf("roundoff: %w", err)
	}

	absErr := make([]float64, len(exact))
	res := Result{Len: len(exact), Safe: true}
	for i, v := range approx {
		absErr[i] = math.Abs(v - float64(exact[i]))

		r := math.Round(v)
		if d := math.Abs(v - r); d > res.Margin {
			res.Margin = d
		}
		if math.IsNaN(r) || math.Abs(r) >= math.MaxInt64 || int64(r) != exact[i] {
			res.Safe = false
		}
	}

	if res.MaxAbsError, err = stats.Max(absErr); err != nil {
		return Result{}, fmt.Errorf("roundoff: %w", err)
	}
	if res.MeanAbsError, err = stats.Mean(absErr); err != nil {
		return Result{}, fmt.Errorf("roundoff: %w", err)
	}
	if res.StdDevError, err = stats.StandardDeviation(absErr); err != nil {
		return Result{}, fmt.Errorf("roundoff: %w", err)
	}
	if res.P99Error, err = stats.Percentile(absErr, 99); err != nil {
		return Result{}, fmt.Errorf("roundoff: %w", err)
	}

	return res, nil
}

// String formats the result on one line.
func (r Result) String() string {
	return fmt.Sprintf("len=%d max=%.3g mean=%.3g std=%.3g p99=%.3g margin=%.3g safe=%t",
		r.Len, r.MaxAbsError, r.MeanAbsError, r.StdDevError, r.P99Error, r.Margin, r.Safe)
}

func toFloat(x []int64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
