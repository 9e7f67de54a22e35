package config

import "sort"

// Presets are ready-made scenarios spanning the scattering regimes.
var Presets = map[string]*Config{
	// collective regime, alpha near 0.55
	"collective": {
		Probe: ProbeConfig{WavelengthNM: 532, Direction: [3]float64{1, 0, 0}, AngleDeg: 90},
		Plasma: PlasmaConfig{
			Density: 4.66e22,
			TeEV:    []float64{10},
			TiEV:    []float64{10},
			Ions:    []string{"p+"},
		},
		Window: WindowConfig{MinNM: 520, MaxNM: 545, Samples: 200},
	},
	// tenuous plasma, alpha well below 1
	"noncollective": {
		Probe: ProbeConfig{WavelengthNM: 532, Direction: [3]float64{1, 0, 0}, AngleDeg: 63},
		Plasma: PlasmaConfig{
			Density: 5e15,
			TeEV:    []float64{100},
			TiEV:    []float64{10},
			Ions:    []string{"H+"},
		},
		Window: WindowConfig{MinNM: 500, MaxNM: 570, Samples: 300},
	},
	// bi-Maxwellian electron distribution
	"two-electron": {
		Probe: ProbeConfig{WavelengthNM: 532, Direction: [3]float64{1, 0, 0}, AngleDeg: 90},
		Plasma: PlasmaConfig{
			Density: 5e17,
			TeEV:    []float64{10, 50},
			TiEV:    []float64{10},
			EFract:  []float64{0.5, 0.5},
			Ions:    []string{"p+"},
		},
		Window: WindowConfig{MinNM: 520, MaxNM: 545, Samples: 200},
	},
	// hydrogen-carbon mix
	"two-ion": {
		Probe: ProbeConfig{WavelengthNM: 532, Direction: [3]float64{1, 0, 0}, AngleDeg: 90},
		Plasma: PlasmaConfig{
			Density: 2e17,
			TeEV:    []float64{10},
			TiEV:    []float64{5, 5},
			IFract:  []float64{0.7, 0.3},
			Ions:    []string{"H+", "C-12 5+"},
		},
		Window: WindowConfig{MinNM: 520, MaxNM: 545, Samples: 200},
	},
	// ICF-adjacent warm dense hydrogen
	"warm-dense": {
		Probe: ProbeConfig{WavelengthNM: 263, Direction: [3]float64{1, 0, 0}, AngleDeg: 120},
		Plasma: PlasmaConfig{
			Density: 1e26,
			TeEV:    []float64{15},
			TiEV:    []float64{10},
			Ions:    []string{"D+"},
		},
		Window: WindowConfig{MinNM: 255, MaxNM: 271, Samples: 240},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
