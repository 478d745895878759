package fourier

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// Builder holds a parameterized path and the configuration for computing its
// Fourier series. Creating a Builder is cheap; the expensive work happens in
// [Builder.Solve].
type Builder struct {
	path *ArclenPath
	cfg  Config
}

// NewBuilder validates cfg and parameterizes segs. It returns an error
// wrapping [ErrConfig] for an invalid configuration and one wrapping
// [ErrInvalidPath] if the segments can't be parameterized.
func NewBuilder(segs []PathSegment, cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path, err := NewArclenPath(segs, cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	if cfg.UniformSpeed {
		path = path.WithUniformSpeed()
	}
	return &Builder{path: path, cfg: cfg}, nil
}

// OpenBuilder is like [NewBuilder] but reads the segments of all paths in the
// named SVG file. See [OpenSVG].
func OpenBuilder(name string, cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	segs, err := OpenSVG(name)
	if err != nil {
		return nil, err
	}
	return NewBuilder(segs, cfg)
}

// Path returns the parameterization the series will be computed from.
func (b *Builder) Path() *ArclenPath { return b.path }

// Solve computes the series' coefficients. It blocks until all of them are
// known or ctx is canceled.
func (b *Builder) Solve(ctx context.Context) (*Series, error) {
	coeffs, err := SolveCoefficients(ctx, b.path.Func(), b.cfg.Coefficients, b.cfg.solveOptions())
	if err != nil {
		return nil, err
	}
	return &Series{n: b.cfg.Coefficients, coeffs: coeffs}, nil
}

// New computes the Fourier series of the path made of segs.
func New(ctx context.Context, segs []PathSegment, cfg Config) (*Series, error) {
	b, err := NewBuilder(segs, cfg)
	if err != nil {
		return nil, err
	}
	return b.Solve(ctx)
}

// Open computes the Fourier series of the paths in the named SVG file.
func Open(ctx context.Context, name string, cfg Config) (*Series, error) {
	b, err := OpenBuilder(name, cfg)
	if err != nil {
		return nil, err
	}
	return b.Solve(ctx)
}

// Series is a truncated Fourier series Σ cₙ·e^{−2πint}, n = −N … N.
//
// The coefficients are those of the path's point function, integrated
// against the same kernel e^{−2πint}. As a consequence, evaluating the series
// at t approximates the path at 1−t: the series traces the path backwards.
//
// A Series is immutable and safe for concurrent use.
type Series struct {
	n      int
	coeffs []complex128
}

// NewSeries returns the series with the given coefficients, ordered by
// ascending harmonic. len(coeffs) must be odd and at least 3.
func NewSeries(coeffs []complex128) (*Series, error) {
	if len(coeffs) < 3 || len(coeffs)%2 == 0 {
		return nil, fmt.Errorf("%d coefficients isn't an odd number of at least 3: %w", len(coeffs), ErrConfig)
	}
	return &Series{n: len(coeffs) / 2, coeffs: slices.Clone(coeffs)}, nil
}

// N returns the highest harmonic of the series.
func (s *Series) N() int { return s.n }

// Coefficients returns a copy of the 2N+1 coefficients, ordered by ascending
// harmonic. The coefficient of harmonic n is at index n+N.
func (s *Series) Coefficients() []complex128 { return slices.Clone(s.coeffs) }

// Coefficient returns the coefficient of harmonic n. It panics if n is
// outside of [−N, N].
func (s *Series) Coefficient(n int) complex128 {
	if n < -s.n || n > s.n {
		panic(fmt.Sprintf("harmonic %d out of range [%d, %d]", n, -s.n, s.n))
	}
	return s.coeffs[n+s.n]
}

// Terms returns the 2N+1 terms cₙ·e^{−2πint} of the series at t, ordered by
// ascending harmonic. It returns an error wrapping [ErrDomain] if t is
// outside of [0, 1].
func (s *Series) Terms(t float64) ([]complex128, error) {
	if err := checkDomain(t); err != nil {
		return nil, err
	}
	return s.terms(t), nil
}

func (s *Series) terms(t float64) []complex128 {
	out := make([]complex128, len(s.coeffs))
	for i, c := range s.coeffs {
		n := i - s.n
		out[i] = c * cmplx.Rect(1, -2*math.Pi*float64(n)*t)
	}
	return out
}

// Evaluate returns the value of the series at t, which is the sum of
// [Series.Terms]. It returns an error wrapping [ErrDomain] if t is outside of
// [0, 1].
func (s *Series) Evaluate(t float64) (complex128, error) {
	if err := checkDomain(t); err != nil {
		return 0, err
	}
	return s.eval(t), nil
}

func (s *Series) eval(t float64) complex128 {
	var sum complex128
	for _, term := range s.terms(t) {
		sum += term
	}
	return sum
}

// MagnitudeOrder returns the harmonics −N … N sorted by the magnitude of their
// coefficients, largest first. Harmonics with equal magnitudes stay in
// ascending order.
func (s *Series) MagnitudeOrder() []int {
	out := make([]int, len(s.coeffs))
	for i := range out {
		out[i] = i - s.n
	}
	slices.SortStableFunc(out, func(a, b int) int {
		ma := cmplx.Abs(s.coeffs[a+s.n])
		mb := cmplx.Abs(s.coeffs[b+s.n])
		switch {
		case ma > mb:
			return -1
		case ma < mb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Sample evaluates the series at k evenly spaced parameters from 0 to 1,
// inclusive. k must be at least 2.
func (s *Series) Sample(k int) []complex128 {
	if k < 2 {
		panic(fmt.Sprintf("need at least 2 samples, got %d", k))
	}
	out := make([]complex128, k)
	for i := range out {
		out[i] = s.eval(float64(i) / float64(k-1))
	}
	return out
}

// BoundingBox returns the bounding box of k samples of the series, grown by
// margin on every side. It uses the complex plane's coordinates: X is the
// real part and Y the imaginary part.
func (s *Series) BoundingBox(k int, margin float64) Rect {
	samples := s.Sample(k)
	first := PtFromComplex(samples[0])
	r := NewRectFromPoints(first, first)
	for _, z := range samples[1:] {
		r = r.UnionPoint(PtFromComplex(z))
	}
	return r.Inflate(margin, margin)
}
