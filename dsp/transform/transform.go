package transform

import (
	"fmt"
	"math/bits"

	"github.com/cwbudde/algo-conv/dsp/field"
)

// Direction selects the forward or inverse transform.
type Direction int

const (
	// Forward evaluates at the primitive roots of unity.
	Forward Direction = iota

	// Inverse evaluates at the reciprocal roots. The result is n times the
	// true inverse; use InverseNormalized to scale it.
	Inverse
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Transform returns the transform of seq in the given direction.
// len(seq) must be a power of two; seq is not modified.
func Transform[E any](fld field.Field[E], seq []E, dir Direction) ([]E, error) {
	if !isPowerOf2(len(seq)) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, len(seq))
	}

	out := make([]E, len(seq))
	copy(out, seq)

	if err := transformInPlace(fld, out, dir); err != nil {
		return nil, err
	}
	return out, nil
}

// InverseNormalized applies the inverse transform and divides every element
// by len(seq), recovering the sequence a forward transform started from.
func InverseNormalized[E any](fld field.Field[E], seq []E) ([]E, error) {
	out, err := Transform(fld, seq, Inverse)
	if err != nil {
		return nil, err
	}

	if err := normalize(fld, out); err != nil {
		return nil, err
	}
	return out, nil
}

// transformInPlace runs decimation-in-time butterflies over buf, whose
// length is already known to be a power of two.
func transformInPlace[E any](fld field.Field[E], buf []E, dir Direction) error {
	n := len(buf)
	if n == 1 {
		return nil
	}

	bitReverse(buf)

	for size := 2; size <= n; size <<= 1 {
		wi, err := fld.RootOfUnity(size, dir == Inverse)
		if err != nil {
			return fmt.Errorf("transform: size %d: %w", size, err)
		}

		half := size >> 1
		for start := 0; start < n; start += size {
			w := fld.One()
			for i := 0; i < half; i++ {
				term := fld.Mul(w, buf[start+half+i])
				even := buf[start+i]
				buf[start+i] = fld.Add(even, term)
				buf[start+half+i] = fld.Sub(even, term)
				w = fld.Mul(w, wi)
			}
		}
	}

	return nil
}

// normalize multiplies every element of buf by 1/len(buf).
func normalize[E any](fld field.Field[E], buf []E) error {
	inv, err := fld.InverseLen(len(buf))
	if err != nil {
		return fmt.Errorf("transform: normalize: %w", err)
	}

	for i := range buf {
		buf[i] = fld.Mul(buf[i], inv)
	}
	return nil
}

// bitReverse permutes buf so that index i holds the element previously at
// the bit-reversal of i.
func bitReverse[E any](buf []E) {
	n := len(buf)
	shift := bits.UintSize - bits.TrailingZeros(uint(n))

	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> shift)
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}

// NextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
