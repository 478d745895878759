package fourier

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// SolveOptions controls [SolveCoefficients].
type SolveOptions struct {
	Quad QuadOptions
	// Workers is the number of harmonics computed concurrently. If it is 0,
	// GOMAXPROCS is used.
	Workers int
}

// SolveCoefficient computes the n-th Fourier coefficient of the periodic
// function f, the integral over [0, 1] of f(t)·e^{−2πint}.
func SolveCoefficient(f func(float64) complex128, n int, opts QuadOptions) ComplexQuadResult {
	w := -2 * math.Pi * float64(n)
	integrand := func(t float64) complex128 {
		return f(t) * cmplx.Rect(1, w*t)
	}
	return IntegrateComplex(integrand, 0, 1, opts)
}

// SolveCoefficients computes the 2n+1 Fourier coefficients c₋ₙ … cₙ of f.
// The coefficient of harmonic k is stored at index k+n of the result.
//
// Each harmonic is integrated independently on a pool of opts.Workers
// goroutines; the result doesn't depend on scheduling. f must be safe for
// concurrent use. Harmonics whose integration doesn't reach the requested
// accuracy still contribute their best estimate.
//
// If ctx is canceled, no further harmonics are started and ctx's error is
// returned.
func SolveCoefficients(ctx context.Context, f func(float64) complex128, n int, opts SolveOptions) ([]complex128, error) {
	if n < 1 {
		return nil, fmt.Errorf("number of coefficients %d must be at least 1: %w", n, ErrConfig)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("number of workers %d must not be negative: %w", opts.Workers, ErrConfig)
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	coeffs := make([]complex128, 2*n+1)
	var unconverged atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var stopped bool
	for k := -n; k <= n; k++ {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := SolveCoefficient(f, k, opts.Quad)
			if !res.Converged {
				unconverged.Add(1)
				Logger().Debug("coefficient did not converge",
					"harmonic", k,
					"abs_error", res.AbsErr,
					"evals", res.Evals)
			}
			coeffs[k+n] = res.Value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Harmonics that were never started leave holes. Once every harmonic has
	// been computed, a late cancellation doesn't matter.
	if stopped {
		return nil, ctx.Err()
	}

	Logger().Info("solved coefficients",
		"n", n,
		"workers", workers,
		"unconverged", unconverged.Load(),
		"duration", time.Since(start))
	return coeffs, nil
}
