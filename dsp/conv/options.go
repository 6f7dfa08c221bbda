package conv

import (
	"github.com/cwbudde/algo-conv/dsp/field"
	"github.com/cwbudde/algo-conv/dsp/transform"
)

// Option configures a transform-based convolution.
type Option func(*config)

type config struct {
	params   field.ModParams
	strategy transform.Strategy
}

func defaultConfig() config {
	return config{
		params:   field.Params998244353,
		strategy: transform.Iterative,
	}
}

// WithModulus selects the prime field used by ConvolveMod.
// A zero modulus is ignored.
func WithModulus(params field.ModParams) Option {
	return func(cfg *config) {
		if params.Modulus != 0 {
			cfg.params = params
		}
	}
}

// WithStrategy selects the transform implementation.
func WithStrategy(strategy transform.Strategy) Option {
	return func(cfg *config) {
		switch strategy {
		case transform.Iterative, transform.RecursiveSplit:
			cfg.strategy = strategy
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
