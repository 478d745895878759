package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/fourier"
)

func TestOverrides(t *testing.T) {
	def := fourier.DefaultConfig()

	if diff := cmp.Diff(def, overrides{}.apply(def)); diff != "" {
		t.Errorf("no options changed the config (-want +got):\n%s", diff)
	}

	cfg := overrides{coeffs: 12, coeffsSet: true, uniform: true}.apply(def)
	if cfg.Coefficients != 12 || !cfg.UniformSpeed {
		t.Errorf("got %+v, want 12 coefficients and uniform speed", cfg)
	}

	for _, n := range []int{0, -3} {
		cfg := overrides{coeffs: n, coeffsSet: true}.apply(def)
		if cfg.Coefficients != n {
			t.Errorf("-n %d: got %d coefficients", n, cfg.Coefficients)
		}
		if err := cfg.Validate(); !errors.Is(err, fourier.ErrConfig) {
			t.Errorf("-n %d: got error %v, want ErrConfig", n, err)
		}
	}
}
