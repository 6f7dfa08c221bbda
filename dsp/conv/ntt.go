package conv

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/field"
	"github.com/cwbudde/algo-conv/dsp/transform"
)

// ConvolveMod computes the convolution of a and b modulo a prime through the
// number-theoretic transform. The default field is 998244353 with primitive
// root 3; use WithModulus to select another.
//
// All arithmetic is exact. Elements must already be reduced into
// [0, modulus), otherwise ErrOutOfRange is returned. The product length
// len(a)+len(b)-1 rounded up to a power of two must not exceed the field's
// MaxLen (2^23 for 998244353).
func ConvolveMod(a, b []uint64, opts ...Option) ([]uint64, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	fld, err := modularField(cfg.params)
	if err != nil {
		return nil, err
	}
	if err := checkReduced(a, fld.Modulus()); err != nil {
		return nil, err
	}
	if err := checkReduced(b, fld.Modulus()); err != nil {
		return nil, err
	}

	result, err := transform.ConvolveUsing[uint64](fld, a, b, cfg.strategy)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	return result, nil
}

// DirectMod computes the convolution of a and b modulo params.Modulus by
// double summation. Elements must be reduced.
func DirectMod(a, b []uint64, params field.ModParams) ([]uint64, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	fld, err := modularField(params)
	if err != nil {
		return nil, err
	}
	if err := checkReduced(a, fld.Modulus()); err != nil {
		return nil, err
	}
	if err := checkReduced(b, fld.Modulus()); err != nil {
		return nil, err
	}

	result := make([]uint64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			result[i+j] = fld.Add(result[i+j], fld.Mul(x, y))
		}
	}
	return result, nil
}

// Reduce maps signed integers into [0, params.Modulus) so they can be passed
// to ConvolveMod.
func Reduce(x []int64, params field.ModParams) ([]uint64, error) {
	fld, err := modularField(params)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, len(x))
	for i, v := range x {
		out[i] = fld.Reduce(v)
	}
	return out, nil
}

func modularField(params field.ModParams) (*field.Modular, error) {
	fld, err := field.NewModular(params)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	return fld, nil
}

func checkReduced(x []uint64, modulus uint64) error {
	for i, v := range x {
		if v >= modulus {
			return fmt.Errorf("%w: index %d = %d (modulus %d)", ErrOutOfRange, i, v, modulus)
		}
	}
	return nil
}
