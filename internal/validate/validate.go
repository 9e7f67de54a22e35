// Package validate is the input-checking stage that runs at the top of
// every public entry point: range and finiteness checks, the
// relativistic-velocity bound, and the typed errors and warnings shared
// by the engines. Physics code below this layer may assume its inputs
// are already vetted.
package validate

import (
	"errors"
	"fmt"
	"math"

	"github.com/plasmakit/plasmakit/internal/constants"
)

// ErrConfig is the sentinel for malformed or inconsistent caller input.
// Wrap it with context via Configf; match it with errors.Is.
var ErrConfig = errors.New("invalid configuration")

// Configf builds a configuration error with a descriptive message.
func Configf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// WarningKind classifies non-fatal validity conditions.
type WarningKind int

const (
	// WeakCoupling: a straight-line Landau-Spitzer method was used where
	// its weak-coupling assumption is violated (lnΛ < 2).
	WeakCoupling WarningKind = iota
	// StrongCoupling: strong-coupling effects may be present (lnΛ < 4).
	StrongCoupling
	// Relativity: an input velocity exceeds 5% of the speed of light.
	Relativity
)

// Warning is an advisory attached to a result; it never changes the
// returned value.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return w.Message }

// Positive fails when v is not a finite value greater than zero.
func Positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Configf("%s must be positive, got %g", name, v)
	}
	return nil
}

// NonNegative fails when v is NaN, infinite, or below zero.
func NonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Configf("%s must be non-negative, got %g", name, v)
	}
	return nil
}

// Finite fails on NaN or infinity.
func Finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Configf("%s must be finite, got %g", name, v)
	}
	return nil
}

// Speed enforces the relativistic bound on a particle velocity: |v| ≥ c
// is an error, |v| > 0.05c yields an advisory warning. NaN is the
// not-provided sentinel and passes through untouched.
func Speed(name string, v float64) (*Warning, error) {
	if math.IsNaN(v) {
		return nil, nil
	}
	av := math.Abs(v)
	if av >= constants.SpeedOfLight {
		return nil, Configf("%s = %g m/s is at or above the speed of light", name, v)
	}
	if av > 0.05*constants.SpeedOfLight {
		return &Warning{
			Kind:    Relativity,
			Message: fmt.Sprintf("%s = %g m/s exceeds 5%% of the speed of light; relativistic effects may matter", name, v),
		}, nil
	}
	return nil, nil
}
