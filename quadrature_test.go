package fourier

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIntegrateKnown(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"polynomial", func(x float64) float64 { return 3*x*x - 2*x + 1 }, 0, 2, 6},
		{"sine", math.Sin, 0, math.Pi, 2},
		{"reversed", math.Sin, math.Pi, 0, -2},
		{"exp", math.Exp, -1, 1, math.E - 1/math.E},
		{"sqrt", math.Sqrt, 0, 1, 2.0 / 3.0},
		{"log singularity", math.Log, 0, 1, -1},
		{"kink", func(x float64) float64 { return math.Abs(x - 0.3) }, 0, 1, 0.5 * (0.09 + 0.49)},
		{"step", func(x float64) float64 {
			if x < 1.0/3.0 {
				return 1
			}
			return 2
		}, 0, 1, 5.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Integrate(tt.f, tt.a, tt.b, QuadOptions{AbsErr: 1e-10, Limit: 200})
			if !res.Converged {
				t.Errorf("didn't converge: %+v", res)
			}
			diff(t, tt.want, res.Value, cmpopts.EquateApprox(0, 1e-8))
			if res.AbsErr > 1e-10 {
				t.Errorf("estimated error %g exceeds requested 1e-10", res.AbsErr)
			}
		})
	}
}

func TestIntegrateEmptyInterval(t *testing.T) {
	res := Integrate(func(float64) float64 { panic("integrand evaluated") }, 1, 1, QuadOptions{AbsErr: 1e-6, Limit: 10})
	diff(t, QuadResult{Intervals: 1, Converged: true}, res)
}

func TestIntegrateSmoothNeedsOneInterval(t *testing.T) {
	res := Integrate(math.Cos, 0, 1, QuadOptions{AbsErr: 1e-10, Limit: 200})
	if res.Intervals != 1 || res.Evals != 21 {
		t.Errorf("got %d intervals and %d evaluations, want 1 and 21", res.Intervals, res.Evals)
	}
	diff(t, math.Sin(1), res.Value, cmpopts.EquateApprox(0, 1e-14))
}

func TestIntegrateLimit(t *testing.T) {
	// sin(1/x) oscillates infinitely often near 0. Three intervals can't
	// capture that to 1e-12.
	f := func(x float64) float64 { return math.Sin(1 / x) }
	res := Integrate(f, 0, 1, QuadOptions{AbsErr: 1e-12, Limit: 3})
	if res.Converged {
		t.Errorf("unexpectedly converged: %+v", res)
	}
	if res.Intervals > 3 {
		t.Errorf("used %d intervals, limit is 3", res.Intervals)
	}
	if res.Evals != 21*res.Intervals*2-21 {
		t.Errorf("got %d evaluations for %d intervals", res.Evals, res.Intervals)
	}
}

func TestIntegrateRelErr(t *testing.T) {
	res := Integrate(math.Exp, 0, 20, QuadOptions{RelErr: 1e-12, Limit: 200})
	want := math.Exp(20) - 1
	if !res.Converged {
		t.Errorf("didn't converge: %+v", res)
	}
	diff(t, want, res.Value, cmpopts.EquateApprox(1e-11, 0))
}

func TestIntegrateComplex(t *testing.T) {
	// ∫₀¹ e^{2πi·3t}·e^{−2πi·3t} dt = 1 and ∫₀¹ e^{2πit} dt = 0.
	opts := QuadOptions{AbsErr: 1e-12, Limit: 200}
	res := IntegrateComplex(func(t float64) complex128 { return cmplx.Rect(1, 2*math.Pi*3*t) * cmplx.Rect(1, -2*math.Pi*3*t) }, 0, 1, opts)
	assertNearComplex(t, res.Value, 1, 1e-12)
	if !res.Converged {
		t.Error("didn't converge")
	}

	res = IntegrateComplex(func(t float64) complex128 { return cmplx.Rect(1, 2*math.Pi*t) }, 0, 1, opts)
	assertNearComplex(t, res.Value, 0, 1e-12)

	// e^{it}(1 − it) is an antiderivative of t·e^{it}.
	anti := func(t float64) complex128 { return cmplx.Exp(complex(0, t)) * complex(1, -t) }
	res = IntegrateComplex(func(t float64) complex128 { return complex(t, 0) * cmplx.Exp(complex(0, t)) }, 0, 1, opts)
	assertNearComplex(t, res.Value, anti(1)-anti(0), 1e-12)
}
