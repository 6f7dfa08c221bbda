// Package transform implements the radix-2 transform engine shared by the
// FFT and NTT convolution variants.
//
// A single algorithm is written once, generic over a [field.Field]:
//
//   - [Transform]: evaluates a sequence of power-of-two length at all n-th
//     roots of unity (forward) or at their reciprocals (inverse). It never
//     divides by n.
//   - [InverseNormalized]: the inverse transform followed by the 1/n scaling
//     that recovers coefficients.
//   - [Convolve]: pads two sequences to a common power of two, transforms
//     both, multiplies pointwise and inverse-transforms the product.
//
// [Transform] runs in place over a copy of its input using a bit-reversal
// permutation and iterative butterfly passes. [Recursive] is the even/odd
// splitting formulation it must agree with; it is exported as a reference
// and can be selected through [ConvolveUsing].
//
// # Usage
//
//	freq, err := transform.FFT(samples, transform.Forward)
//	back, err := transform.InverseFFT(freq)
//
//	prod, err := transform.Convolve(field.DefaultModular(), f, g)
//
// Inputs are never modified; every call returns a freshly allocated slice.
package transform
