package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/cmplx"
	"os"
	"os/signal"

	"github.com/tdewolff/argp"
	"honnef.co/go/fourier"
)

type Coefficients struct {
	Coeffs  int    `name:"coeffs" short:"n" desc:"Number of harmonics on each side of the constant term (default from config)"`
	Config  string `short:"c" desc:"TOML configuration file"`
	Uniform bool   `short:"u" desc:"Parameterize by arc length within segments too"`
	Verbose bool   `short:"v" desc:"Log progress to stderr"`
	Input   string `index:"0" desc:"Input SVG file"`
}

type Sample struct {
	Coeffs  int    `name:"coeffs" short:"n" desc:"Number of harmonics on each side of the constant term (default from config)"`
	Config  string `short:"c" desc:"TOML configuration file"`
	Uniform bool   `short:"u" desc:"Parameterize by arc length within segments too"`
	Verbose bool   `short:"v" desc:"Log progress to stderr"`
	Samples int    `short:"k" default:"100" desc:"Number of points"`
	Input   string `index:"0" desc:"Input SVG file"`
}

// Parsers of the two commands, for asking which options were given.
var root, sample *argp.Argp

func main() {
	root = argp.NewCmd(&Coefficients{}, "Fourier series of SVG paths")
	sample = root.AddCmd(&Sample{}, "sample", "Print points of the series, evenly spaced in t")
	root.Parse()
	root.PrintHelp()
}

// overrides are the command line options that take precedence over the
// configuration file.
type overrides struct {
	coeffs    int
	coeffsSet bool
	uniform   bool
}

// apply returns cfg with the options given on the command line. An explicit
// -n 0 is kept so that validation rejects it.
func (o overrides) apply(cfg fourier.Config) fourier.Config {
	if o.coeffsSet {
		cfg.Coefficients = o.coeffs
	}
	if o.uniform {
		cfg.UniformSpeed = true
	}
	return cfg
}

func solve(input, config string, o overrides, verbose bool) (*fourier.Series, error) {
	if input == "" {
		return nil, argp.ShowUsage
	}
	if verbose {
		fourier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := fourier.DefaultConfig()
	if config != "" {
		var err error
		cfg, err = fourier.LoadConfigFile(config)
		if err != nil {
			return nil, err
		}
	}
	cfg = o.apply(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return fourier.Open(ctx, input, cfg)
}

func (cmd *Coefficients) Run() error {
	o := overrides{coeffs: cmd.Coeffs, coeffsSet: root.IsSet("coeffs"), uniform: cmd.Uniform}
	s, err := solve(cmd.Input, cmd.Config, o, cmd.Verbose)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	for _, n := range s.MagnitudeOrder() {
		c := s.Coefficient(n)
		fmt.Fprintf(w, "%d\t%g\t%g\t%g\n", n, real(c), imag(c), cmplx.Abs(c))
	}
	return w.Flush()
}

func (cmd *Sample) Run() error {
	if cmd.Samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", cmd.Samples)
	}
	o := overrides{coeffs: cmd.Coeffs, coeffsSet: sample.IsSet("coeffs"), uniform: cmd.Uniform}
	s, err := solve(cmd.Input, cmd.Config, o, cmd.Verbose)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	for i, z := range s.Sample(cmd.Samples) {
		t := float64(i) / float64(cmd.Samples-1)
		fmt.Fprintf(w, "%g\t%g\t%g\n", t, real(z), imag(z))
	}
	return w.Flush()
}
