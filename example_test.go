package fourier_test

import (
	"context"
	"fmt"
	"math/cmplx"

	"honnef.co/go/fourier"
)

func ExampleNew() {
	p, err := fourier.ParseSVGPath("M0,0 H100 V100 H0 Z")
	if err != nil {
		panic(err)
	}
	var segs []fourier.PathSegment
	for seg := range p.Segments() {
		segs = append(segs, seg)
	}

	cfg := fourier.DefaultConfig()
	cfg.Coefficients = 10
	cfg.AbsErr = 1e-6
	s, err := fourier.New(context.Background(), segs, cfg)
	if err != nil {
		panic(err)
	}

	// The constant term is the center of the square, with the y axis
	// pointing up.
	c := s.Coefficient(0)
	fmt.Printf("%.3f %.3f\n", real(c), imag(c))

	// The largest rotating vector.
	n := s.MagnitudeOrder()[1]
	fmt.Printf("%d %.2f\n", n, cmplx.Abs(s.Coefficient(n)))
	// Output:
	// 50.000 -50.000
	// -1 57.32
}

func ExampleParseSVGPath() {
	p, err := fourier.ParseSVGPath("M10 10 h20 a10 10 0 0 1 0 20 z")
	if err != nil {
		panic(err)
	}
	for seg := range p.Segments() {
		fmt.Println(seg.Kind)
	}
	fmt.Printf("%.4f\n", p.Arclen(1e-9))
	// Output:
	// line
	// arc
	// line
	// 79.7002
}
