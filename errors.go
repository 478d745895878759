package fourier

import (
	"errors"
	"fmt"
)

// Errors returned by this package. They are wrapped with additional context;
// use [errors.Is] to test for them.
var (
	// ErrConfig reports invalid construction parameters, such as a
	// non-positive number of coefficients or a non-positive tolerance.
	ErrConfig = errors.New("invalid configuration")
	// ErrNotFound reports that a path source is missing or unreadable.
	ErrNotFound = errors.New("path source not found")
	// ErrInvalidPath reports a path that can't be parameterized, because it
	// has no segments, has zero length or is malformed.
	ErrInvalidPath = errors.New("invalid path")
	// ErrDomain reports a parameter outside of [0, 1].
	ErrDomain = errors.New("parameter out of domain")
)

// PathSyntaxError describes malformed SVG path data.
type PathSyntaxError struct {
	// Offset is the byte offset into the path data at which the error was
	// detected.
	Offset int
	Msg    string
}

func (err *PathSyntaxError) Error() string {
	return fmt.Sprintf("bad path data at offset %d: %s", err.Offset, err.Msg)
}

// Is reports whether target is [ErrInvalidPath].
func (err *PathSyntaxError) Is(target error) bool {
	return target == ErrInvalidPath
}

func checkDomain(t float64) error {
	// The negated form also rejects NaN.
	if !(t >= 0 && t <= 1) {
		return fmt.Errorf("t = %g not in [0, 1]: %w", t, ErrDomain)
	}
	return nil
}
