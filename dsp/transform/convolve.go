package transform

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/field"
)

// Strategy selects the transform implementation used by ConvolveUsing.
type Strategy int

const (
	// Iterative uses the in-place bit-reversal transform.
	Iterative Strategy = iota

	// RecursiveSplit uses the even/odd splitting reference transform.
	RecursiveSplit
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Iterative:
		return "iterative"
	case RecursiveSplit:
		return "recursive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Convolve returns the linear convolution of f and g over fld, of length
// len(f) + len(g) - 1. Both inputs must be non-empty.
func Convolve[E any](fld field.Field[E], f, g []E) ([]E, error) {
	return ConvolveUsing(fld, f, g, Iterative)
}

// ConvolveUsing is Convolve with an explicit transform strategy.
func ConvolveUsing[E any](fld field.Field[E], f, g []E, strategy Strategy) ([]E, error) {
	if len(f) == 0 || len(g) == 0 {
		return nil, ErrEmptySequence
	}

	productLen := len(f) + len(g) - 1
	n := NextPowerOfTwo(productLen)

	fFreq, err := run(fld, pad(fld, f, n), Forward, strategy)
	if err != nil {
		return nil, err
	}
	gFreq, err := run(fld, pad(fld, g, n), Forward, strategy)
	if err != nil {
		return nil, err
	}

	// Pointwise product, reusing the first spectrum as storage.
	for i := range fFreq {
		fFreq[i] = fld.Mul(fFreq[i], gFreq[i])
	}

	out, err := run(fld, fFreq, Inverse, strategy)
	if err != nil {
		return nil, err
	}

	if err := normalize(fld, out); err != nil {
		return nil, err
	}

	return out[:productLen:productLen], nil
}

// pad returns a copy of seq extended with additive identities to length n.
func pad[E any](fld field.Field[E], seq []E, n int) []E {
	out := make([]E, n)
	copy(out, seq)

	zero := fld.Zero()
	for i := len(seq); i < n; i++ {
		out[i] = zero
	}
	return out
}

// run transforms buf with the selected strategy. The iterative path works in
// place and returns buf itself.
func run[E any](fld field.Field[E], buf []E, dir Direction, strategy Strategy) ([]E, error) {
	if strategy == RecursiveSplit {
		return recursive(fld, buf, dir)
	}

	if err := transformInPlace(fld, buf, dir); err != nil {
		return nil, err
	}
	return buf, nil
}
