package fourier

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

// pathScanner reads the operands of SVG path data.
type pathScanner struct {
	data []byte
	i    int
	err  *PathSyntaxError
}

func (s *pathScanner) fail(msg string) {
	if s.err == nil {
		s.err = &PathSyntaxError{Offset: s.i, Msg: msg}
	}
}

func (s *pathScanner) num() float64 {
	if s.err != nil {
		return 0
	}
	s.i += skipCommaWhitespace(s.data[s.i:])
	f, n := strconv.ParseFloat(s.data[s.i:])
	if n == 0 {
		s.fail("expected number")
		return 0
	}
	s.i += n
	return f
}

func (s *pathScanner) pt() Point {
	x := s.num()
	y := s.num()
	return Pt(x, y)
}

// flag reads an arc flag, which is a single 0 or 1 that doesn't need to be
// separated from what follows it.
func (s *pathScanner) flag() bool {
	if s.err != nil {
		return false
	}
	s.i += skipCommaWhitespace(s.data[s.i:])
	if s.i < len(s.data) {
		switch s.data[s.i] {
		case '0':
			s.i++
			return false
		case '1':
			s.i++
			return true
		}
	}
	s.fail("expected arc flag")
	return false
}

// more reports whether another operand follows, for repeated commands.
func (s *pathScanner) more() bool {
	j := s.i + skipCommaWhitespace(s.data[s.i:])
	if j >= len(s.data) {
		return false
	}
	c := s.data[j]
	return c == '+' || c == '-' || c == '.' || ('0' <= c && c <= '9')
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	default:
		return false
	}
}

// ParseSVGPath parses SVG path data, the d attribute of a path element.
//
// All commands are supported. Relative coordinates are resolved, the
// shorthand forms H, V, S and T are expanded, and arcs are converted to
// center parameterization. Degenerate arcs are drawn as lines or omitted as
// SVG mandates.
//
// Malformed data results in a [*PathSyntaxError]. Unlike browsers, which
// render a path up to its first error, ParseSVGPath doesn't return partial
// paths.
func ParseSVGPath(d string) (BezPath, error) {
	s := &pathScanner{data: []byte(d)}
	var p BezPath

	var cmd, prevCmd byte
	var cur, start, ctrl Point
	for {
		s.i += skipCommaWhitespace(s.data[s.i:])
		if s.i >= len(s.data) {
			break
		}
		if c := s.data[s.i]; isPathCommand(c) {
			cmd = c
			s.i++
		} else if c >= 'A' {
			s.fail("unknown command " + string(c))
			return nil, s.err
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			s.fail("expected command")
			return nil, s.err
		} else {
			// Repeated operands without a command letter repeat the
			// previous command, except that moves turn into lines.
			switch prevCmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = prevCmd
			}
		}
		if len(p) == 0 && cmd != 'M' && cmd != 'm' {
			s.fail("path data must start with a move")
			return nil, s.err
		}

		rel := 'a' <= cmd && cmd <= 'z'
		abs := func(pt Point) Point {
			if rel {
				return pt.Translate(Vec(cur.X, cur.Y))
			}
			return pt
		}

		switch cmd {
		case 'M', 'm':
			cur = abs(s.pt())
			start = cur
			p.MoveTo(cur)
		case 'Z', 'z':
			p.ClosePath()
			cur = start
		case 'L', 'l':
			cur = abs(s.pt())
			p.LineTo(cur)
		case 'H', 'h':
			x := s.num()
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			p.LineTo(cur)
		case 'V', 'v':
			y := s.num()
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			p.LineTo(cur)
		case 'C', 'c':
			p1 := abs(s.pt())
			p2 := abs(s.pt())
			p3 := abs(s.pt())
			p.CubicTo(p1, p2, p3)
			ctrl, cur = p2, p3
		case 'S', 's':
			p1 := cur
			switch prevCmd {
			case 'C', 'c', 'S', 's':
				p1 = cur.Translate(cur.Sub(ctrl))
			}
			p2 := abs(s.pt())
			p3 := abs(s.pt())
			p.CubicTo(p1, p2, p3)
			ctrl, cur = p2, p3
		case 'Q', 'q':
			p1 := abs(s.pt())
			p2 := abs(s.pt())
			p.QuadTo(p1, p2)
			ctrl, cur = p1, p2
		case 'T', 't':
			p1 := cur
			switch prevCmd {
			case 'Q', 'q', 'T', 't':
				p1 = cur.Translate(cur.Sub(ctrl))
			}
			p2 := abs(s.pt())
			p.QuadTo(p1, p2)
			ctrl, cur = p1, p2
		case 'A', 'a':
			rx := s.num()
			ry := s.num()
			rot := s.num()
			large := s.flag()
			sweep := s.flag()
			to := abs(s.pt())
			if s.err != nil {
				break
			}
			a, ok := ArcFromSVG(cur, to, Vec(rx, ry), rot*math.Pi/180, large, sweep)
			switch {
			case ok:
				p.Push(PathElement{Kind: ArcToKind, P0: to, Arc: a})
			case cur != to:
				p.LineTo(to)
			}
			cur = to
		}
		if s.err != nil {
			return nil, s.err
		}
		prevCmd = cmd

		if (cmd == 'Z' || cmd == 'z') && s.more() {
			s.i += skipCommaWhitespace(s.data[s.i:])
			s.fail("unexpected number after close path")
			return nil, s.err
		}
	}
	return p, nil
}
