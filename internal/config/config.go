// Package config holds the YAML scenario schema for spectrum runs:
// probe geometry, plasma composition, and the wavelength window.
// Values carry the units people write them in (nm, eV); conversion to
// SI happens through the quantity layer when a scenario is turned into
// engine input.
package config

import (
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/plasmakit/plasmakit/internal/quantity"
	"github.com/plasmakit/plasmakit/internal/thomson"
	"github.com/plasmakit/plasmakit/internal/validate"
)

const (
	DefaultProbeNM  = 532.0
	DefaultDensity  = 2e17
	DefaultTeEV     = 10.0
	DefaultTiEV     = 10.0
	DefaultIon      = "p+"
	DefaultAngleDeg = 90.0
	DefaultSamples  = 200
)

type Config struct {
	Probe  ProbeConfig  `yaml:"probe"`
	Plasma PlasmaConfig `yaml:"plasma"`
	Window WindowConfig `yaml:"window"`
}

// ProbeConfig fixes the scattering geometry. Direction vectors need not
// be normalized; AngleDeg is only used when Scatter is left zero.
type ProbeConfig struct {
	WavelengthNM float64    `yaml:"wavelength_nm"`
	Direction    [3]float64 `yaml:"direction"`
	Scatter      [3]float64 `yaml:"scatter"`
	AngleDeg     float64    `yaml:"angle_deg"`
}

type PlasmaConfig struct {
	Density     float64      `yaml:"density"` // m^-3
	TeEV        []float64    `yaml:"te_ev"`
	TiEV        []float64    `yaml:"ti_ev"`
	EFract      []float64    `yaml:"efract"`
	IFract      []float64    `yaml:"ifract"`
	Ions        []string     `yaml:"ions"`
	ElectronVel [][3]float64 `yaml:"electron_vel"`
	IonVel      [][3]float64 `yaml:"ion_vel"`
}

type WindowConfig struct {
	MinNM   float64 `yaml:"min_nm"`
	MaxNM   float64 `yaml:"max_nm"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Probe: ProbeConfig{
			WavelengthNM: DefaultProbeNM,
			Direction:    [3]float64{1, 0, 0},
			AngleDeg:     DefaultAngleDeg,
		},
		Plasma: PlasmaConfig{
			Density: DefaultDensity,
			TeEV:    []float64{DefaultTeEV},
			TiEV:    []float64{DefaultTiEV},
			Ions:    []string{DefaultIon},
		},
		Window: WindowConfig{
			MinNM:   520,
			MaxNM:   545,
			Samples: DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ScatterVec returns the scatter direction, deriving it from AngleDeg in
// the probe's x-y plane when no explicit vector is configured.
func (c *Config) ScatterVec() [3]float64 {
	if c.Probe.Scatter != ([3]float64{}) {
		return c.Probe.Scatter
	}
	rad := c.Probe.AngleDeg * math.Pi / 180
	return [3]float64{math.Cos(rad), math.Sin(rad), 0}
}

// Wavelengths expands the window into evenly spaced sample points in
// meters.
func (c *Config) Wavelengths() ([]float64, error) {
	if c.Window.Samples < 2 {
		return nil, validate.Configf("window needs at least 2 samples, got %d", c.Window.Samples)
	}
	if c.Window.MinNM <= 0 || c.Window.MaxNM <= c.Window.MinNM {
		return nil, validate.Configf("invalid wavelength window [%g, %g] nm", c.Window.MinNM, c.Window.MaxNM)
	}
	low, err := quantity.Wavelength(c.Window.MinNM, "nm")
	if err != nil {
		return nil, err
	}
	high, err := quantity.Wavelength(c.Window.MaxNM, "nm")
	if err != nil {
		return nil, err
	}
	out := make([]float64, c.Window.Samples)
	floats.Span(out, low.Value(), high.Value())
	return out, nil
}

// ToInput converts the scenario to engine input, taking temperatures
// through the eV equivalency and wavelengths to meters.
func (c *Config) ToInput() (thomson.Input, error) {
	var in thomson.Input

	probeWl, err := quantity.Wavelength(c.Probe.WavelengthNM, "nm")
	if err != nil {
		return in, err
	}
	wavelengths, err := c.Wavelengths()
	if err != nil {
		return in, err
	}

	te, err := tempsToKelvin(c.Plasma.TeEV)
	if err != nil {
		return in, err
	}
	ti, err := tempsToKelvin(c.Plasma.TiEV)
	if err != nil {
		return in, err
	}

	in = thomson.Input{
		ProbeWavelength: probeWl.Value(),
		Wavelengths:     wavelengths,
		ProbeVec:        c.Probe.Direction,
		ScatterVec:      c.ScatterVec(),
		N:               c.Plasma.Density,
		Te:              te,
		Ti:              ti,
		EFract:          c.Plasma.EFract,
		IFract:          c.Plasma.IFract,
		ElectronVel:     c.Plasma.ElectronVel,
		IonVel:          c.Plasma.IonVel,
		IonSpecies:      c.Plasma.Ions,
	}
	return in, nil
}

func tempsToKelvin(ev []float64) ([]float64, error) {
	out := make([]float64, len(ev))
	for i, v := range ev {
		q, err := quantity.Temperature(v, "eV")
		if err != nil {
			return nil, err
		}
		out[i], err = quantity.Kelvins(q)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
