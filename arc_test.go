package fourier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcFromSVGEndpoints(t *testing.T) {
	tests := []struct {
		from, to        Point
		radii           Vec2
		rot             float64
		largeArc, sweep bool
	}{
		{Pt(0, 0), Pt(10, 0), Vec(5, 5), 0, false, false},
		{Pt(0, 0), Pt(10, 0), Vec(5, 5), 0, false, true},
		{Pt(0, 0), Pt(10, 10), Vec(20, 10), 0, true, true},
		{Pt(0, 0), Pt(10, 10), Vec(20, 10), 0, true, false},
		{Pt(3, -1), Pt(-4, 2), Vec(6, 3), math.Pi / 6, false, true},
		{Pt(3, -1), Pt(-4, 2), Vec(6, 3), math.Pi / 6, true, false},
		// Radii too small, scaled up.
		{Pt(0, 0), Pt(100, 0), Vec(1, 1), 0, false, true},
	}
	for _, tt := range tests {
		a, ok := ArcFromSVG(tt.from, tt.to, tt.radii, tt.rot, tt.largeArc, tt.sweep)
		if !ok {
			t.Fatalf("%v: arc is degenerate", tt)
		}
		assertNear(t, a.Start(), tt.from, 1e-9)
		assertNear(t, a.End(), tt.to, 1e-9)

		if large := math.Abs(a.SweepAngle) > math.Pi; large != tt.largeArc && math.Abs(math.Abs(a.SweepAngle)-math.Pi) > 1e-9 {
			t.Errorf("%v: got sweep angle %g, large arc flag is %t", tt, a.SweepAngle, tt.largeArc)
		}
		if (a.SweepAngle > 0) != tt.sweep {
			t.Errorf("%v: got sweep angle %g, sweep flag is %t", tt, a.SweepAngle, tt.sweep)
		}
	}
}

func TestArcFromSVGScalesRadii(t *testing.T) {
	a, ok := ArcFromSVG(Pt(0, 0), Pt(100, 0), Vec(1, 1), 0, false, true)
	if !ok {
		t.Fatal("arc is degenerate")
	}
	diff(t, Vec(50, 50), a.Radii, cmpopts.EquateApprox(0, 1e-9))
	assertNear(t, a.Center, Pt(50, 0), 1e-9)
	diff(t, math.Pi, math.Abs(a.SweepAngle), cmpopts.EquateApprox(0, 1e-9))
}

func TestArcFromSVGDegenerate(t *testing.T) {
	if _, ok := ArcFromSVG(Pt(1, 1), Pt(1, 1), Vec(5, 5), 0, false, false); ok {
		t.Error("arc between identical points should be degenerate")
	}
	if _, ok := ArcFromSVG(Pt(0, 0), Pt(1, 1), Vec(0, 5), 0, false, false); ok {
		t.Error("arc with a zero radius should be degenerate")
	}
}

func TestArcArclenCircle(t *testing.T) {
	a := Arc{Center: Pt(5, 5), Radii: Vec(3, 3), StartAngle: 1, SweepAngle: -math.Pi}
	diff(t, 3*math.Pi, a.Arclen(1e-9), cmpopts.EquateApprox(0, 1e-12))
}

func TestArcArclenEllipse(t *testing.T) {
	// The full ellipse with semi-axes 2 and 1 has a circumference of
	// 9.688448220547675 (complete elliptic integral of the second kind).
	const want = 9.688448220547675
	a := Arc{Center: Pt(0, 0), Radii: Vec(2, 1), SweepAngle: 2 * math.Pi, XRotation: 0.3}
	diff(t, want, a.Arclen(1e-9), cmpopts.EquateApprox(0, 1e-8))

	// Quarters of it add up to the same.
	var sum float64
	for i := range 4 {
		sum += a.Subsegment(float64(i)/4, float64(i+1)/4).Arclen(1e-10)
	}
	diff(t, want, sum, cmpopts.EquateApprox(0, 1e-8))
}

func TestArcSubsegment(t *testing.T) {
	a := Arc{Center: Pt(1, 2), Radii: Vec(4, 2), StartAngle: 0.5, SweepAngle: 2, XRotation: -0.7}
	t0, t1 := 0.2, 0.9
	as := a.Subsegment(t0, t1)
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		assertNear(t, a.Eval(t0+tt*(t1-t0)), as.Eval(tt), 1e-12)
	}
}

func TestArcSolveForArclen(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radii: Vec(3, 1), StartAngle: 0, SweepAngle: math.Pi}
	total := a.Arclen(1e-10)
	ts := SolveForArclen(a, total/2, 1e-9)
	// The half ellipse is symmetric, so half of its length is reached at its
	// parametric midpoint.
	diff(t, 0.5, ts, cmpopts.EquateApprox(0, 1e-7))
}
