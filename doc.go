// Package fourier approximates 2D paths by truncated Fourier series. A closed
// drawing, such as the outline of a glyph or a doodle exported from a vector
// editor, becomes a sum of rotating vectors whose tips trace the drawing.
//
// # Paths as functions
//
// A path is a sequence of segments: lines ([Line]), quadratic and cubic
// Béziers ([QuadBez], [CubicBez]), and elliptical arcs ([Arc]). [PathSegment]
// is a tagged union of all of them. Paths can be built with [BezPath], parsed
// from SVG path data with [ParseSVGPath], or read from SVG documents with
// [ReadSVG] and [OpenSVG].
//
// [ArclenPath] turns the segments into a function from t ∈ [0, 1] to the
// complex plane. Each segment receives a share of the parameter range that is
// proportional to its length, so that t advances at roughly the same speed
// everywhere on the path. Points are returned as x − iy: SVG's y axis points
// down, the complex plane's imaginary axis points up.
//
// # Coefficients
//
// The coefficient of harmonic n is the integral over [0, 1] of
// f(t)·e^{−2πint}. [SolveCoefficients] computes the coefficients of harmonics
// −N … N in parallel, each with its own adaptive Gauss-Kronrod quadrature
// (see [Integrate]). Paths have corners, which makes the integrands only
// piecewise smooth; the adaptive quadrature concentrates its work around
// them.
//
// # Series
//
// [Series] holds the coefficients and evaluates the truncated series. It is
// usually created with [New] or [Open], or in two steps with [NewBuilder] and
// [Builder.Solve], which separates the cheap validation of inputs from the
// expensive solve. The parameters of the computation are collected in
// [Config], which can be loaded from TOML with [LoadConfig].
//
// # Errors
//
// Errors wrap one of [ErrConfig], [ErrNotFound], [ErrInvalidPath] and
// [ErrDomain]. A coefficient whose integration doesn't reach the requested
// accuracy isn't an error; it is logged at debug level. See [SetLogger].
//
// # Literature
//
//   - [QUADPACK: A Subroutine Package for Automatic Integration] by Piessens, de Doncker-Kapenga, Überhuber, and Kahaner
//   - [SVG implementation notes on elliptical arcs]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [QUADPACK: A Subroutine Package for Automatic Integration]: https://doi.org/10.1007/978-3-642-61786-7
// [SVG implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package fourier
