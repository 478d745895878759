package fourier

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the parameters of a Fourier series computation. The zero value
// is not valid; start from [DefaultConfig].
//
// A Config can be loaded from TOML, see [LoadConfig]. Fields missing from the
// TOML document keep their default values.
type Config struct {
	// Coefficients is the number N of harmonics on each side of the constant
	// term. The series has 2N+1 coefficients.
	Coefficients int `toml:"coefficients"`
	// Tolerance is the accuracy to which segment lengths are measured.
	Tolerance float64 `toml:"tolerance"`
	// SubdivisionLimit is the maximum number of subintervals used when
	// integrating a single coefficient.
	SubdivisionLimit int `toml:"subdivision_limit"`
	// AbsErr and RelErr are the absolute and relative error targets of the
	// integration of each coefficient.
	AbsErr float64 `toml:"abs_error"`
	RelErr float64 `toml:"rel_error"`
	// Workers is the number of coefficients computed in parallel. 0 means
	// GOMAXPROCS.
	Workers int `toml:"workers"`
	// UniformSpeed makes the parameterization proportional to arc length
	// within segments, too. See [ArclenPath.WithUniformSpeed].
	UniformSpeed bool `toml:"uniform_speed"`
}

// DefaultConfig returns the default configuration.
//
// The integration's absolute error target of 0.5 is loose. It is sized for
// drawings measured in pixels, where half a pixel of error per coefficient
// isn't visible.
func DefaultConfig() Config {
	return Config{
		Coefficients:     80,
		Tolerance:        1e-2,
		SubdivisionLimit: 200,
		AbsErr:           0.5,
		RelErr:           1.49e-8,
		Workers:          0,
	}
}

// Validate returns an error wrapping [ErrConfig] if cfg can't be used.
func (cfg Config) Validate() error {
	switch {
	case cfg.Coefficients < 1:
		return fmt.Errorf("number of coefficients %d must be at least 1: %w", cfg.Coefficients, ErrConfig)
	case !(cfg.Tolerance > 0):
		return fmt.Errorf("tolerance %g must be positive: %w", cfg.Tolerance, ErrConfig)
	case cfg.SubdivisionLimit < 1:
		return fmt.Errorf("subdivision limit %d must be at least 1: %w", cfg.SubdivisionLimit, ErrConfig)
	case !(cfg.AbsErr >= 0) || !(cfg.RelErr >= 0):
		return fmt.Errorf("error targets (%g, %g) must not be negative: %w", cfg.AbsErr, cfg.RelErr, ErrConfig)
	case cfg.AbsErr == 0 && cfg.RelErr == 0:
		return fmt.Errorf("at least one of the error targets must be positive: %w", ErrConfig)
	case cfg.Workers < 0:
		return fmt.Errorf("number of workers %d must not be negative: %w", cfg.Workers, ErrConfig)
	}
	return nil
}

func (cfg Config) solveOptions() SolveOptions {
	return SolveOptions{
		Quad: QuadOptions{
			AbsErr: cfg.AbsErr,
			RelErr: cfg.RelErr,
			Limit:  cfg.SubdivisionLimit,
		},
		Workers: cfg.Workers,
	}
}

// LoadConfig reads a TOML document from r on top of [DefaultConfig] and
// validates the result. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't decode config: %w: %w", err, ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is like [LoadConfig] but reads the named file. It returns an
// error wrapping [ErrNotFound] if the file can't be opened or isn't a regular
// file.
func LoadConfigFile(name string) (Config, error) {
	f, err := openFile(name)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(bufio.NewReader(f))
}
