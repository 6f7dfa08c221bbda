package conv

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-conv/dsp/transform"
)

// Planner performs real FFT convolution with optimized algo-fft plans,
// caching one plan per transform size. The zero value is ready to use and a
// Planner is safe for concurrent use.
//
// Plans are never evicted: a long-lived Planner fed many distinct sizes keeps
// one plan and two scratch buffers per size until Reset is called.
//
// Results agree with ConvolveFFT within floating-point round-off.
type Planner struct {
	mu    sync.Mutex
	plans map[int]*plannedSize
}

// plannedSize serializes use of a plan and its scratch buffers.
type plannedSize struct {
	mu   sync.Mutex
	plan *algofft.Plan[complex128]
	a, b []complex128
}

// Sizes returns the number of cached plans.
func (p *Planner) Sizes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.plans)
}

// Reset drops all cached plans.
func (p *Planner) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plans = nil
}

// Convolve computes the linear convolution of a and b, of length
// len(a) + len(b) - 1.
func (p *Planner) Convolve(a, b []float64) ([]float64, error) {
	if err := checkOperands(len(a), len(b)); err != nil {
		return nil, err
	}

	productLen := len(a) + len(b) - 1
	if productLen == 1 {
		return []float64{a[0] * b[0]}, nil
	}
	fftSize := transform.NextPowerOfTwo(productLen)

	ps, err := p.lookup(fftSize)
	if err != nil {
		return nil, err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	// Zero-pad inputs
	for i := range ps.a {
		ps.a[i] = 0
		ps.b[i] = 0
	}
	for i, v := range a {
		ps.a[i] = complex(v, 0)
	}
	for i, v := range b {
		ps.b[i] = complex(v, 0)
	}

	if err := ps.plan.Forward(ps.a, ps.a); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := ps.plan.Forward(ps.b, ps.b); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range ps.a {
		ps.a[i] *= ps.b[i]
	}

	// algo-fft normalizes the inverse transform.
	if err := ps.plan.Inverse(ps.a, ps.a); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, productLen)
	for i := range result {
		result[i] = real(ps.a[i])
	}
	return result, nil
}

func (p *Planner) lookup(size int) (*plannedSize, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ps, ok := p.plans[size]; ok {
		return ps, nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	if p.plans == nil {
		p.plans = make(map[int]*plannedSize)
	}
	ps := &plannedSize{
		plan: plan,
		a:    make([]complex128, size),
		b:    make([]complex128, size),
	}
	p.plans[size] = ps
	return ps, nil
}
