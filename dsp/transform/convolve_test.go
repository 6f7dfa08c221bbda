package transform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-conv/dsp/field"
	"github.com/cwbudde/algo-conv/internal/testutil"
)

func TestConvolveModularScenario(t *testing.T) {
	fld := field.DefaultModular()

	for _, strategy := range []Strategy{Iterative, RecursiveSplit} {
		got, err := ConvolveUsing[uint64](fld, []uint64{1, 2, 3}, []uint64{4, 5, 6}, strategy)
		if err != nil {
			t.Fatalf("%v: %v", strategy, err)
		}
		want := []uint64{4, 13, 28, 27, 18}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%v mismatch (-want +got):\n%s", strategy, diff)
		}
	}
}

func TestConvolveModularBoundary(t *testing.T) {
	fld := field.DefaultModular()
	m := fld.Modulus()

	got, err := Convolve[uint64](fld, []uint64{m - 1}, []uint64{2})
	if err != nil {
		t.Fatalf("Convolve error: %v", err)
	}
	if diff := cmp.Diff([]uint64{m - 2}, got); diff != "" {
		t.Fatalf("boundary mismatch (-want +got):\n%s", diff)
	}
}

func TestConvolveModularMatchesNaive(t *testing.T) {
	fld := field.DefaultModular()
	m := fld.Modulus()

	for la := 1; la <= 8; la++ {
		for lb := 1; lb <= 8; lb++ {
			f := testutil.DeterministicResidues(int64(la*10+lb), m, la)
			g := testutil.DeterministicResidues(int64(lb*10+la), m, lb)

			got, err := Convolve[uint64](fld, f, g)
			if err != nil {
				t.Fatalf("Convolve(%d,%d): %v", la, lb, err)
			}
			if len(got) != la+lb-1 {
				t.Fatalf("len = %d, want %d", len(got), la+lb-1)
			}
			if diff := cmp.Diff(testutil.NaiveConvolveMod(f, g, m), got); diff != "" {
				t.Fatalf("Convolve(%d,%d) mismatch (-naive +got):\n%s", la, lb, diff)
			}

			swapped, err := Convolve[uint64](fld, g, f)
			if err != nil {
				t.Fatalf("Convolve(%d,%d) swapped: %v", lb, la, err)
			}
			if diff := cmp.Diff(got, swapped); diff != "" {
				t.Fatalf("not commutative for (%d,%d):\n%s", la, lb, diff)
			}
		}
	}
}

func TestConvolveComplexMatchesNaive(t *testing.T) {
	var fld field.Complex

	for _, size := range [][2]int{{1, 1}, {3, 5}, {8, 8}, {17, 4}, {100, 37}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			f := testutil.DeterministicComplex(1, size[0])
			g := testutil.DeterministicComplex(2, size[1])

			for _, strategy := range []Strategy{Iterative, RecursiveSplit} {
				got, err := ConvolveUsing[complex128](fld, f, g, strategy)
				if err != nil {
					t.Fatalf("%v: %v", strategy, err)
				}
				testutil.RequireComplexNearlyEqual(t, got, testutil.NaiveConvolve(f, g), 1e-9)
			}
		})
	}
}

func TestConvolveIdentity(t *testing.T) {
	fld := field.DefaultModular()
	f := testutil.DeterministicResidues(5, fld.Modulus(), 13)

	got, err := Convolve[uint64](fld, f, []uint64{fld.One()})
	if err != nil {
		t.Fatalf("Convolve error: %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Fatalf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestConvolveEmpty(t *testing.T) {
	fld := field.DefaultModular()

	_, err := Convolve[uint64](fld, nil, []uint64{1})
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
	_, err = Convolve[complex128](field.Complex{}, []complex128{1}, []complex128{})
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
}

func TestConvolveDoesNotMutateInputs(t *testing.T) {
	f := []uint64{1, 2, 3}
	g := []uint64{4, 5}

	if _, err := Convolve[uint64](field.DefaultModular(), f, g); err != nil {
		t.Fatalf("Convolve error: %v", err)
	}
	if diff := cmp.Diff([]uint64{1, 2, 3}, f); diff != "" {
		t.Fatalf("f mutated:\n%s", diff)
	}
	if diff := cmp.Diff([]uint64{4, 5}, g); diff != "" {
		t.Fatalf("g mutated:\n%s", diff)
	}
}

func TestStrategyString(t *testing.T) {
	if Iterative.String() != "iterative" || RecursiveSplit.String() != "recursive" {
		t.Fatalf("unexpected names %q, %q", Iterative, RecursiveSplit)
	}
}

func BenchmarkConvolve(b *testing.B) {
	fld := field.DefaultModular()

	for _, n := range []int{256, 4096, 65536} {
		f := testutil.DeterministicResidues(1, fld.Modulus(), n)
		g := testutil.DeterministicResidues(2, fld.Modulus(), n)

		for _, strategy := range []Strategy{Iterative, RecursiveSplit} {
			b.Run(fmt.Sprintf("n=%d/%v", n, strategy), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = ConvolveUsing[uint64](fld, f, g, strategy)
				}
			})
		}
	}
}
