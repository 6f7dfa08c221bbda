package testutil

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is any element type NaiveConvolve can sum.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// NaiveConvolve returns the O(N*M) double-sum convolution of a and b.
// Returns nil if either input is empty.
func NaiveConvolve[T Number](a, b []T) []T {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]T, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return out
}

// NaiveConvolveMod returns the double-sum convolution of a and b modulo m.
// Inputs must be reduced.
func NaiveConvolveMod(a, b []uint64, m uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]uint64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			hi, lo := bits.Mul64(x, y)
			prod := bits.Rem64(hi, lo, m)
			sum, carry := bits.Add64(out[i+j], prod, 0)
			if carry != 0 || sum >= m {
				sum -= m
			}
			out[i+j] = sum
		}
	}
	return out
}
