package fourier

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// trig returns the trigonometric polynomial with the given coefficients,
// keyed by harmonic.
func trig(coeffs map[int]complex128) func(float64) complex128 {
	return func(t float64) complex128 {
		var sum complex128
		for n, c := range coeffs {
			sum += c * cmplx.Rect(1, 2*math.Pi*float64(n)*t)
		}
		return sum
	}
}

func TestSolveCoefficientsTrig(t *testing.T) {
	want := map[int]complex128{
		-2: complex(0.5, -1),
		0:  complex(3, 3),
		1:  complex(-2, 0.25),
	}
	opts := SolveOptions{Quad: QuadOptions{AbsErr: 1e-10, Limit: 200}, Workers: 3}
	coeffs, err := SolveCoefficients(context.Background(), trig(want), 3, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(coeffs) != 7 {
		t.Fatalf("got %d coefficients, want 7", len(coeffs))
	}
	for k := -3; k <= 3; k++ {
		assertNearComplex(t, coeffs[k+3], want[k], 1e-9)
	}
}

func TestSolveCoefficientsIndependentOfN(t *testing.T) {
	p := mustArclenPath(t, square(10))
	opts := SolveOptions{Quad: QuadOptions{AbsErr: 1e-3, Limit: 50}}
	small, err := SolveCoefficients(context.Background(), p.Func(), 3, opts)
	if err != nil {
		t.Fatal(err)
	}
	large, err := SolveCoefficients(context.Background(), p.Func(), 6, opts)
	if err != nil {
		t.Fatal(err)
	}
	for k := -3; k <= 3; k++ {
		if small[k+3] != large[k+6] {
			t.Errorf("coefficient %d: got %v with N = 3 and %v with N = 6", k, small[k+3], large[k+6])
		}
	}
}

func TestSolveCoefficientsIndependentOfWorkers(t *testing.T) {
	p := mustArclenPath(t, square(10))
	var prev []complex128
	for _, workers := range []int{1, 2, 5, 0} {
		opts := SolveOptions{Quad: QuadOptions{AbsErr: 1e-3, Limit: 50}, Workers: workers}
		coeffs, err := SolveCoefficients(context.Background(), p.Func(), 4, opts)
		if err != nil {
			t.Fatal(err)
		}
		if prev != nil {
			diff(t, prev, coeffs)
		}
		prev = coeffs
	}
}

func TestSolveCoefficientsConfig(t *testing.T) {
	f := func(float64) complex128 { return 1 }
	for _, n := range []int{0, -1} {
		if _, err := SolveCoefficients(context.Background(), f, n, SolveOptions{}); !errors.Is(err, ErrConfig) {
			t.Errorf("n = %d: got error %v, want ErrConfig", n, err)
		}
	}
	if _, err := SolveCoefficients(context.Background(), f, 1, SolveOptions{Workers: -1}); !errors.Is(err, ErrConfig) {
		t.Errorf("got error %v, want ErrConfig", err)
	}
}

func TestSolveCoefficientsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := func(float64) complex128 { return 1 }
	_, err := SolveCoefficients(ctx, f, 5, SolveOptions{Quad: QuadOptions{AbsErr: 1e-6, Limit: 10}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}

func TestSolveCoefficientsCanceledAfterLastHarmonic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// With one worker and a loose target, each harmonic takes one 21-point
	// rule for each of the real and imaginary parts. Cancel during the very
	// last evaluation, when every harmonic has already been started.
	const total = 3 * 2 * 21
	var calls int
	f := func(float64) complex128 {
		calls++
		if calls == total {
			cancel()
		}
		return 1
	}
	opts := SolveOptions{Quad: QuadOptions{AbsErr: 1, Limit: 10}, Workers: 1}
	coeffs, err := SolveCoefficients(ctx, f, 1, opts)
	if err != nil {
		t.Fatalf("complete result discarded: %v", err)
	}
	diff(t, total, calls)
	assertNearComplex(t, coeffs[1], 1, 1e-12)
}

func TestSolveCoefficient(t *testing.T) {
	// The constant term is the mean of the function.
	f := func(t float64) complex128 { return complex(t, 2*t*t) }
	res := SolveCoefficient(f, 0, QuadOptions{AbsErr: 1e-12, Limit: 10})
	assertNearComplex(t, res.Value, complex(0.5, 2.0/3.0), 1e-12)
	if !res.Converged {
		t.Error("didn't converge")
	}
}
