package transform

import "github.com/cwbudde/algo-conv/dsp/field"

var ntt998244353 = field.DefaultModular()

// FFT transforms a complex sequence of power-of-two length.
func FFT(seq []complex128, dir Direction) ([]complex128, error) {
	return Transform[complex128](field.Complex{}, seq, dir)
}

// InverseFFT returns the normalized inverse FFT of seq.
func InverseFFT(seq []complex128) ([]complex128, error) {
	return InverseNormalized[complex128](field.Complex{}, seq)
}

// NTT transforms a sequence of residues modulo 998244353. Elements must
// already be reduced.
func NTT(seq []uint64, dir Direction) ([]uint64, error) {
	return Transform[uint64](ntt998244353, seq, dir)
}

// InverseNTT returns the normalized inverse NTT of seq modulo 998244353.
func InverseNTT(seq []uint64) ([]uint64, error) {
	return InverseNormalized[uint64](ntt998244353, seq)
}
