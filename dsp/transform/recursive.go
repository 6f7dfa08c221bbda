package transform

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/field"
)

// Recursive returns the transform of seq by splitting it into even- and
// odd-indexed halves, transforming each and recombining with a butterfly.
//
// It allocates at every level and is slower than Transform, whose output
// it matches. len(seq) must be a power of two; seq is not modified.
func Recursive[E any](fld field.Field[E], seq []E, dir Direction) ([]E, error) {
	if !isPowerOf2(len(seq)) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, len(seq))
	}
	return recursive(fld, seq, dir)
}

func recursive[E any](fld field.Field[E], seq []E, dir Direction) ([]E, error) {
	n := len(seq)
	if n == 1 {
		return []E{seq[0]}, nil
	}

	half := n / 2
	evens := make([]E, half)
	odds := make([]E, half)
	for i := 0; i < half; i++ {
		evens[i] = seq[2*i]
		odds[i] = seq[2*i+1]
	}

	ye, err := recursive(fld, evens, dir)
	if err != nil {
		return nil, err
	}
	yo, err := recursive(fld, odds, dir)
	if err != nil {
		return nil, err
	}

	wi, err := fld.RootOfUnity(n, dir == Inverse)
	if err != nil {
		return nil, fmt.Errorf("transform: size %d: %w", n, err)
	}

	out := make([]E, n)
	w := fld.One()
	for i := 0; i < half; i++ {
		term := fld.Mul(w, yo[i])
		out[i] = fld.Add(ye[i], term)
		out[i+half] = fld.Sub(ye[i], term)
		w = fld.Mul(w, wi)
	}

	return out, nil
}
