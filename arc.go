package fourier

import (
	"math"
)

// Arc is an elliptical arc in center parameterization.
//
// The point at parameter t is the point at angle StartAngle + SweepAngle·t
// on the ellipse with the given center and radii, rotated by XRotation
// about its center. All angles are in radians. Positive angles rotate
// from the positive x axis towards the positive y axis, which is clockwise in
// the y-down coordinate system of SVG.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var _ ParametricCurve = Arc{}
var _ Arclener = Arc{}

// ArcFromSVG converts an arc in SVG's endpoint parameterization to center
// parameterization. The rotation is in radians, not degrees as in SVG path
// data.
//
// Radii that are too small to connect the two points are scaled up, as
// mandated by SVG. The second return value is false when the arc degenerates:
// if the end points coincide the arc is to be omitted, and if either radius is
// zero it is to be drawn as a line.
//
// See https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
func ArcFromSVG(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 || from == to {
		return Arc{}, false
	}

	// Step 1: the midpoint of the chord in the ellipse's rotated frame.
	mid := from.Sub(to).Mul(0.5).Rotate(-xRotation)
	lambda := (mid.X*mid.X)/(rx*rx) + (mid.Y*mid.Y)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: the center in the rotated frame.
	rxsq, rysq := rx*rx, ry*ry
	num := rxsq*rysq - rxsq*mid.Y*mid.Y - rysq*mid.X*mid.X
	den := rxsq*mid.Y*mid.Y + rysq*mid.X*mid.X
	var coef float64
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	centerp := Vec(coef*rx*mid.Y/ry, -coef*ry*mid.X/rx)

	// Step 3: the center in user space.
	center := from.Midpoint(to).Translate(centerp.Rotate(xRotation))

	// Step 4: start angle and sweep.
	u := Vec((mid.X-centerp.X)/rx, (mid.Y-centerp.Y)/ry)
	v := Vec((-mid.X-centerp.X)/rx, (-mid.Y-centerp.Y)/ry)
	start := vectorAngle(Vec(1, 0), u)
	delta := math.Mod(vectorAngle(u, v), 2*math.Pi)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: start,
		SweepAngle: delta,
		XRotation:  xRotation,
	}, true
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(u, v Vec2) float64 {
	dot := u.Dot(v) / (u.Hypot() * v.Hypot())
	dot = min(max(dot, -1), 1)
	return math.Copysign(math.Acos(dot), u.Cross(v))
}

func (a Arc) sample(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec(a.Radii.X*cos, a.Radii.Y*sin).Rotate(a.XRotation)
}

func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(a.sample(a.StartAngle + a.SweepAngle*t))
}

func (a Arc) Start() Point {
	return a.Eval(0)
}

func (a Arc) End() Point {
	return a.Eval(1)
}

// Arclen returns the length of the arc.
//
// Circular arcs are measured exactly. For elliptical arcs, whose length has
// no closed form, the speed of the parameterization is integrated
// numerically to within accuracy.
func (a Arc) Arclen(accuracy float64) float64 {
	rx, ry := math.Abs(a.Radii.X), math.Abs(a.Radii.Y)
	sweep := math.Abs(a.SweepAngle)
	if math.Abs(rx-ry) <= 1e-12*max(rx, ry) {
		return sweep * rx
	}
	speed := func(t float64) float64 {
		sin, cos := math.Sincos(a.StartAngle + a.SweepAngle*t)
		return sweep * math.Hypot(rx*sin, ry*cos)
	}
	return Integrate(speed, 0, 1, QuadOptions{AbsErr: accuracy, Limit: 100}).Value
}

func (a Arc) Subsegment(t0, t1 float64) Arc {
	out := a
	out.StartAngle = a.StartAngle + a.SweepAngle*t0
	out.SweepAngle = a.SweepAngle * (t1 - t0)
	return out
}

func (a Arc) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return a.Subsegment(t0, t1)
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() || a.Radii.IsInf() ||
		math.IsInf(a.StartAngle, 0) || math.IsInf(a.SweepAngle, 0) || math.IsInf(a.XRotation, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() || a.Radii.IsNaN() ||
		math.IsNaN(a.StartAngle) || math.IsNaN(a.SweepAngle) || math.IsNaN(a.XRotation)
}

func (a Arc) Seg() PathSegment {
	return PathSegment{Kind: ArcKind, P0: a.Start(), P3: a.End(), Arc: a}
}
