package testutil

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplex generates complex noise in the unit square.
func DeterministicComplex(seed int64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

// DeterministicInts generates integers uniformly in [-limit, limit].
func DeterministicInts(seed, limit int64, length int) []int64 {
	out := make([]int64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int63n(2*limit+1) - limit
	}
	return out
}

// DeterministicResidues generates residues uniformly in [0, modulus).
func DeterministicResidues(seed int64, modulus uint64, length int) []uint64 {
	out := make([]uint64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = uint64(rng.Int63n(int64(modulus)))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[T constraints.Integer | constraints.Float](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
