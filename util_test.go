package fourier

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertNearComplex(t *testing.T, got, want complex128, epsilon float64) {
	t.Helper()
	if d := cmplx.Abs(got - want); d > epsilon {
		t.Errorf("got %v, want %v (off by %g, allowed %g)", got, want, d, epsilon)
	}
}
