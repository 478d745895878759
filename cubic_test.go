package fourier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezArclen(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, trueArclen, c.Arclen(accuracy), cmpopts.EquateApprox(0, accuracy))
	}
}

func TestCubicBezInvArclen(t *testing.T) {
	// y = x^2 / 100
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(100.0/3.0, 0.0),
		Pt(200.0/3.0, 100.0/3.0),
		Pt(100.0, 100.0),
	}
	trueArclen := 100.0 * (0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0)))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		n := 10
		for j := range n + 1 {
			arc := float64(j) * (1.0 / float64(n) * trueArclen)
			tt := SolveForArclen(c, arc, accuracy*0.5)
			actualArc := c.Subsegment(0.0, tt).Arclen(accuracy * 0.5)
			diff(t, arc, actualArc, cmpopts.EquateApprox(0, accuracy))
		}
	}
	// corner case: user passes accuracy larger than total arc length
	accuracy := trueArclen * 1.1
	arc := trueArclen * 0.5
	tt := SolveForArclen(c, arc, accuracy)
	actualArc := c.Subsegment(0.0, tt).Arclen(accuracy)
	diff(t, arc, actualArc, cmpopts.EquateApprox(0, 2*accuracy))
}

func TestCubicBezInvArclenAccuracy(t *testing.T) {
	c := CubicBez{
		Pt(0.2, 0.73),
		Pt(0.35, 1.08),
		Pt(0.85, 1.08),
		Pt(1.0, 0.73),
	}
	trueT := SolveForArclen(c, 0.5, 1e-12)
	for i := 1; i < 12; i++ {
		accuracy := math.Pow(0.1, float64(i))
		approxT := SolveForArclen(c, 0.5, accuracy)
		diff(t, trueT, approxT, cmpopts.EquateApprox(0, accuracy))
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{
		Pt(0.2, 0.73),
		Pt(0.35, 1.08),
		Pt(0.85, 1.08),
		Pt(1.0, 0.73),
	}
	c0, c1 := c.Subdivide()
	const n = 8
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, c0.Eval(ts), c.Eval(ts*0.5), 1e-12)
		assertNear(t, c1.Eval(ts), c.Eval(0.5+ts*0.5), 1e-12)
	}
	diff(t, c.Arclen(1e-12), c0.Arclen(1e-12)+c1.Arclen(1e-12), cmpopts.EquateApprox(0, 1e-10))
}

func TestCubicBezArclenDegenerate(t *testing.T) {
	c := CubicBez{Pt(4, 2), Pt(4, 2), Pt(4, 2), Pt(4, 2)}
	if l := c.Arclen(1e-9); l != 0 {
		t.Errorf("got length %g, want 0", l)
	}
}
