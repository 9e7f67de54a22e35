// Package quantity puts dimension tags on the values crossing the
// configuration boundary. It builds on github.com/ctessum/unit: every
// quantity is a *unit.Unit carrying SI dimensions, arithmetic combines
// dimensions, and extraction back to a raw SI number checks that the
// dimensions are the expected ones. Temperatures additionally support
// the eV ↔ K energy equivalency.
package quantity

import (
	"fmt"
	"strings"

	"github.com/ctessum/unit"
	"github.com/plasmakit/plasmakit/internal/constants"
	"github.com/plasmakit/plasmakit/internal/validate"
)

// kelvinDim is the thermodynamic-temperature dimension shipped by the
// unit library under the symbol "K".
var kelvinDim = unit.TemperatureDim

// Dimension tables for the quantities the engines consume.
var (
	Kelvin         = unit.Dimensions{kelvinDim: 1}
	PerCubicMeter  = unit.Dimensions{unit.LengthDim: -3}
	MeterPerSecond = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
	Meters         = unit.Dimensions{unit.LengthDim: 1}
)

// Temperature builds a temperature quantity from a value and a unit
// name: "K", "eV", or "keV". Electron-volt inputs are converted through
// the temperature-energy equivalency T = E/k_B.
func Temperature(v float64, unitName string) (*unit.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(unitName)) {
	case "k", "":
		return unit.New(v, Kelvin), nil
	case "ev":
		return unit.New(v*constants.EVToKelvin, Kelvin), nil
	case "kev":
		return unit.New(v*1e3*constants.EVToKelvin, Kelvin), nil
	default:
		return nil, validate.Configf("unknown temperature unit %q (use K, eV, or keV)", unitName)
	}
}

// Density tags a number density in m^-3.
func Density(v float64) *unit.Unit { return unit.New(v, PerCubicMeter) }

// Velocity tags a speed in m/s.
func Velocity(v float64) *unit.Unit { return unit.New(v, MeterPerSecond) }

// Length tags a length in meters.
func Length(v float64) *unit.Unit { return unit.New(v, Meters) }

// Wavelength builds a length from a value and a unit name ("m", "nm",
// "um", "angstrom").
func Wavelength(v float64, unitName string) (*unit.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(unitName)) {
	case "m", "":
		return unit.New(v, Meters), nil
	case "nm":
		return unit.New(v*1e-9, Meters), nil
	case "um", "µm":
		return unit.New(v*1e-6, Meters), nil
	case "angstrom", "å":
		return unit.New(v*1e-10, Meters), nil
	default:
		return nil, validate.Configf("unknown length unit %q", unitName)
	}
}

// SI extracts the raw SI value after checking the quantity carries the
// expected dimensions.
func SI(q *unit.Unit, want unit.Dimensions, name string) (float64, error) {
	if q == nil {
		return 0, validate.Configf("%s is not set", name)
	}
	if !q.Dimensions().Matches(want) {
		return 0, validate.Configf("%s has dimensions %v, want %v", name, q.Dimensions(), want)
	}
	return q.Value(), nil
}

// Kelvins extracts a temperature in kelvin.
func Kelvins(q *unit.Unit) (float64, error) { return SI(q, Kelvin, "temperature") }

// String formats a quantity for CLI output.
func String(q *unit.Unit) string {
	if q == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%g %v", q.Value(), q.Dimensions())
}
