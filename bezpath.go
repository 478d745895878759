package fourier

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Draw an elliptical arc from the current location to the point.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single drawing command of a [BezPath].
//
// A valid path has MoveTo at the beginning of each subpath. For ArcTo
// elements, P0 is the end point and Arc describes the arc in center
// parameterization.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
	Arc  Arc
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %+v)", el.P0, el.Arc)
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// ArcTo returns an element drawing a, ending at a's end point.
func ArcTo(a Arc) PathElement {
	return PathElement{Kind: ArcToKind, P0: a.End(), Arc: a}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
	// An elliptical arc segment.
	ArcKind
)

func (k PathSegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	case ArcKind:
		return "arc"
	default:
		return fmt.Sprintf("PathSegmentKind(%d)", int(k))
	}
}

// PathSegment represents a segment of a path. This type acts as a tagged
// union representing all possible path segments ([Line], [QuadBez],
// [CubicBez], and [Arc]).
//
// P0 is always the start point. Lines use P1 as their end point, quadratic
// Béziers end at P2 and cubic Béziers end at P3. Arcs store their geometry in
// Arc, with P0 and P3 holding the exact end points.
type PathSegment struct {
	// We don't use an interface for PathSegment so that segments can be
	// stored and passed around without allocating, and so that the set of
	// kinds is closed.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
	Arc  Arc
}

var _ ParametricCurve = PathSegment{}
var _ Arclener = PathSegment{}
var _ ArclenSolver = PathSegment{}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only
// valid when Kind == CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg PathSegment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("Quad(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	case ArcKind:
		return fmt.Sprintf("Arc(%s, %s, %+v)", seg.P0, seg.P3, seg.Arc)
	default:
		return "InvalidPathSegment"
	}
}

func (seg PathSegment) IsInf() bool {
	if seg.Kind == ArcKind {
		return seg.Arc.IsInf()
	}
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	if seg.Kind == ArcKind {
		return seg.Arc.IsNaN()
	}
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

// Eval evaluates the segment at the local parameter t ∈ [0, 1].
func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	case ArcKind:
		switch t {
		case 0:
			return seg.P0
		case 1:
			return seg.P3
		}
		return seg.Arc.Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	case ArcKind:
		return seg.Arc.Subsegment(start, end).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.Eval(0)
}

func (seg PathSegment) End() Point {
	return seg.Eval(1)
}

func (seg PathSegment) SubsegmentCurve(start, end float64) ParametricCurve {
	return seg.Subsegment(start, end)
}

// Arclen returns the length of the segment, accurate to within accuracy.
func (seg PathSegment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	case ArcKind:
		return seg.Arc.Arclen(accuracy)
	default:
		return 0
	}
}

func (seg PathSegment) SolveForArclen(arclen, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return SolveForArclen(seg.Line(), arclen, accuracy)
	case QuadKind:
		return SolveForArclen(seg.Quad(), arclen, accuracy)
	case CubicKind:
		return SolveForArclen(seg.Cubic(), arclen, accuracy)
	case ArcKind:
		return SolveForArclen(seg.Arc, arclen, accuracy)
	default:
		return 0
	}
}

// BezPath is a path described as a sequence of drawing commands.
//
// Conceptually, a BezPath contains zero or more subpaths. Each subpath
// always begins with a MoveTo, then has zero or more LineTo, QuadTo, CubicTo
// and ArcTo elements, and optionally ends with a ClosePath.
//
// A BezPath can be viewed either as its elements or as its segments, see
// [BezPath.Elements] and [BezPath.Segments].
type BezPath []PathElement

// Push appends a path element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ArcTo pushes an "arc to" element onto the path.
func (p *BezPath) ArcTo(a Arc) { p.Push(ArcTo(a)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Arclen returns the total length of all of the path's segments.
func (p BezPath) Arclen(accuracy float64) float64 {
	var sum float64
	for s := range p.Segments() {
		sum += s.Arclen(accuracy)
	}
	return sum
}

// Segments converts a sequence of path elements to a sequence of segments.
//
// MoveTo elements don't produce segments; ClosePath produces a closing line
// unless the subpath already ends at its start.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		first := true
		var start, last Point
		for el := range seq {
			if first {
				first = false
				switch el.Kind {
				case MoveToKind, LineToKind, ArcToKind:
					start = el.P0
				case QuadToKind:
					start = el.P1
				case CubicToKind:
					start = el.P2
				case ClosePathKind:
					panic("first path element mustn't be ClosePath")
				}
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(Line{p, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p := last
				last = el.P1
				if !yield(QuadBez{p, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ArcToKind:
				p := last
				last = el.P0
				if !yield(PathSegment{Kind: ArcKind, P0: p, P3: el.P0, Arc: el.Arc}) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}
