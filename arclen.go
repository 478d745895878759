package fourier

import (
	"fmt"
	"math"
	"slices"
)

// ArclenPath maps a parameter t ∈ [0, 1] onto a sequence of segments so that
// each segment receives a share of the parameter range proportional to its
// length.
//
// An ArclenPath is read-only after construction and may be used from
// multiple goroutines at once.
type ArclenPath struct {
	segs    []PathSegment
	lengths []float64
	// fracs[i] is segment i's share of the total length, cum[i] the running
	// sum of fracs[0..i]. cum[len(cum)-1] is exactly 1.
	fracs []float64
	cum   []float64
	total float64

	tolerance float64
	uniform   bool
}

// NewArclenPath measures segs to within tolerance and returns the resulting
// parameterization. Segments of zero length are dropped. The path's segments
// don't need to be connected; gaps are jumped over.
func NewArclenPath(segs []PathSegment, tolerance float64) (*ArclenPath, error) {
	if !(tolerance > 0) {
		return nil, fmt.Errorf("tolerance %g must be positive: %w", tolerance, ErrConfig)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("path has no segments: %w", ErrInvalidPath)
	}

	p := &ArclenPath{
		segs:      make([]PathSegment, 0, len(segs)),
		lengths:   make([]float64, 0, len(segs)),
		tolerance: tolerance,
	}
	for i, seg := range segs {
		if seg.IsNaN() || seg.IsInf() {
			return nil, fmt.Errorf("segment %d (%s) isn't finite: %w", i, seg, ErrInvalidPath)
		}
		l := seg.Arclen(tolerance)
		if l == 0 {
			Logger().Debug("dropping zero-length segment", "index", i, "segment", seg.String())
			continue
		}
		p.segs = append(p.segs, seg)
		p.lengths = append(p.lengths, l)
		p.total += l
	}
	if !(p.total > 0) || math.IsInf(p.total, 0) {
		return nil, fmt.Errorf("path has length %g: %w", p.total, ErrInvalidPath)
	}

	p.fracs = make([]float64, len(p.segs))
	p.cum = make([]float64, len(p.segs))
	var acc float64
	for i, l := range p.lengths {
		p.fracs[i] = l / p.total
		acc += p.fracs[i]
		p.cum[i] = acc
	}
	p.cum[len(p.cum)-1] = 1

	Logger().Info("parameterized path",
		"segments", len(p.segs),
		"dropped", len(segs)-len(p.segs),
		"length", p.total)
	return p, nil
}

// WithUniformSpeed returns a copy of p whose parameterization is also
// proportional to arc length within each segment. By default, the local
// parameter of a segment is its native curve parameter, which for Béziers
// and elliptical arcs doesn't advance at a constant rate.
func (p *ArclenPath) WithUniformSpeed() *ArclenPath {
	out := *p
	out.uniform = true
	return &out
}

// PointAt returns the point at parameter t as a complex number x − iy. The
// imaginary part is negated to turn SVG's y-down coordinates into the usual
// y-up orientation of the complex plane.
//
// A parameter that falls exactly on the boundary between two segments belongs
// to the earlier segment. PointAt returns an error wrapping [ErrDomain] if t
// is outside of [0, 1].
func (p *ArclenPath) PointAt(t float64) (complex128, error) {
	if err := checkDomain(t); err != nil {
		return 0, err
	}
	return p.eval(t), nil
}

// Func returns PointAt as a plain function, for use as an integrand. The
// function clamps its argument to [0, 1] instead of returning an error.
func (p *ArclenPath) Func() func(float64) complex128 {
	return func(t float64) complex128 {
		return p.eval(min(max(t, 0), 1))
	}
}

func (p *ArclenPath) eval(t float64) complex128 {
	// BinarySearch returns the first index whose cumulative fraction is >= t.
	i, _ := slices.BinarySearch(p.cum, t)
	i = min(i, len(p.cum)-1)
	var prior float64
	if i > 0 {
		prior = p.cum[i-1]
	}
	local := min(max((t-prior)/p.fracs[i], 0), 1)
	seg := p.segs[i]
	if p.uniform && local > 0 && local < 1 {
		local = seg.SolveForArclen(local*p.lengths[i], p.tolerance)
	}
	return seg.Eval(local).Conj()
}

// Len returns the number of segments, not counting dropped zero-length ones.
func (p *ArclenPath) Len() int { return len(p.segs) }

// Length returns the total length of the path.
func (p *ArclenPath) Length() float64 { return p.total }

// Segment returns the i-th segment.
func (p *ArclenPath) Segment(i int) PathSegment { return p.segs[i] }

// Fraction returns the i-th segment's share of the total length.
func (p *ArclenPath) Fraction(i int) float64 { return p.fracs[i] }

// Closed reports whether the path ends within eps of where it starts.
func (p *ArclenPath) Closed(eps float64) bool {
	start := p.segs[0].Start()
	end := p.segs[len(p.segs)-1].End()
	return start.Distance(end) <= eps
}
