package thomson

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/plasmakit/plasmakit/internal/constants"
	"github.com/plasmakit/plasmakit/internal/validate"
)

const tenEV = 116045.18121550081 // 10 eV in kelvin

// canonicalInput is a 532 nm probe scattering at 90 degrees off a
// single-species hydrogen plasma at 10 eV.
func canonicalInput(n float64, wavelengths []float64) Input {
	return Input{
		ProbeWavelength: 532e-9,
		Wavelengths:     wavelengths,
		ProbeVec:        [3]float64{1, 0, 0},
		ScatterVec:      [3]float64{0, 1, 0},
		N:               n,
		Te:              []float64{tenEV},
		Ti:              []float64{tenEV},
		IonSpecies:      []string{"p+"},
	}
}

func grid520to545() []float64 {
	lams := make([]float64, 200)
	for i := range lams {
		lams[i] = (520 + 25*float64(i)/199) * 1e-9
	}
	return lams
}

func TestSpectralDensityCollective(t *testing.T) {
	alpha, skw, warns, err := SpectralDensity(canonicalInput(4.66e22, grid520to545()))
	if err != nil {
		t.Fatal(err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	if !scalar.EqualWithinRel(alpha, 0.5500052120093103, 1e-9) {
		t.Errorf("alpha = %.17g, want 0.5500052120093103", alpha)
	}
	if len(skw) != 200 {
		t.Fatalf("expected 200 samples, got %d", len(skw))
	}

	samples := []struct {
		idx  int
		want float64
	}{
		{0, 1.5452507186832049e-16},
		{40, 1.4384199853024755e-14},
		{96, 2.2311915366336486e-13},
		{99, 6.6260644633295021e-14},
		{100, 6.6310190143648593e-14},
		{160, 7.2870522679998419e-15},
		{199, 7.0874496846219036e-17},
	}
	for _, s := range samples {
		if !scalar.EqualWithinRel(skw[s.idx], s.want, 1e-6) {
			t.Errorf("skw[%d] = %.17g, want %.17g", s.idx, skw[s.idx], s.want)
		}
	}

	// the ion-acoustic peak sits just redward of the probe line
	peak := 0
	for i, v := range skw {
		if v > skw[peak] {
			peak = i
		}
	}
	if peak != 96 {
		t.Errorf("peak at index %d, want 96", peak)
	}
}

func TestSpectralDensityNearSymmetry(t *testing.T) {
	// equal offsets either side of the probe line are close but not
	// exactly equal: the scattered wavenumber varies across the line
	_, skw, _, err := SpectralDensity(canonicalInput(4.66e22, []float64{531e-9, 533e-9}))
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(skw[0], 6.5914649941935763e-14, 1e-6) {
		t.Errorf("S(531 nm) = %.17g, want 6.5914649941935763e-14", skw[0])
	}
	if !scalar.EqualWithinRel(skw[1], 6.5930934507508083e-14, 1e-6) {
		t.Errorf("S(533 nm) = %.17g, want 6.5930934507508083e-14", skw[1])
	}
	if rel := math.Abs(skw[0]-skw[1]) / skw[1]; rel > 1e-3 {
		t.Errorf("red-blue asymmetry %g, expected below 1e-3", rel)
	}
}

func TestSpectralDensityNonCollective(t *testing.T) {
	alpha, skw, _, err := SpectralDensity(canonicalInput(1e17, []float64{527e-9, 532e-9, 537e-9}))
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(alpha, 0.0008053562016985729, 1e-9) {
		t.Errorf("alpha = %.17g, want 0.0008053562016985729", alpha)
	}
	wants := []float64{3.6052464375904515e-14, 1.1316065116005112e-13, 3.7173108011107272e-14}
	for i, w := range wants {
		if !scalar.EqualWithinRel(skw[i], w, 1e-6) {
			t.Errorf("skw[%d] = %.17g, want %.17g", i, skw[i], w)
		}
	}

	alpha, _, _, err = SpectralDensity(canonicalInput(5e15, []float64{532e-9}))
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(alpha, 0.00018008709819562535, 1e-9) {
		t.Errorf("alpha = %.17g, want 0.00018008709819562535", alpha)
	}
}

func TestSpectralDensityVectorNormalization(t *testing.T) {
	lams := []float64{530e-9, 532e-9, 534e-9}
	_, ref, _, err := SpectralDensity(canonicalInput(4.66e22, lams))
	if err != nil {
		t.Fatal(err)
	}

	in := canonicalInput(4.66e22, lams)
	in.ProbeVec = [3]float64{7, 0, 0}
	in.ScatterVec = [3]float64{0, 0.003, 0}
	_, scaled, _, err := SpectralDensity(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := range ref {
		if ref[i] != scaled[i] {
			t.Errorf("skw[%d] = %g after rescaling the geometry vectors, want %g", i, scaled[i], ref[i])
		}
	}
}

func TestSpectralDensitySplitPopulation(t *testing.T) {
	lams := []float64{530e-9, 532e-9, 534e-9}
	_, ref, _, err := SpectralDensity(canonicalInput(4.66e22, lams))
	if err != nil {
		t.Fatal(err)
	}

	// two identical half-populations must reproduce a single population
	in := canonicalInput(4.66e22, lams)
	in.EFract = []float64{0.5, 0.5}
	in.Te = []float64{tenEV} // broadcast across both
	_, split, _, err := SpectralDensity(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := range ref {
		if !scalar.EqualWithinRel(split[i], ref[i], 1e-12) {
			t.Errorf("skw[%d] = %g with split populations, want %g", i, split[i], ref[i])
		}
	}
}

func TestSpectralDensityTwoIonSpecies(t *testing.T) {
	in := canonicalInput(4.66e22, grid520to545())
	in.IonSpecies = []string{"p+", "C-12 5+"}
	in.IFract = []float64{0.7, 0.3}
	in.Ti = []float64{tenEV}
	alpha, skw, _, err := SpectralDensity(in)
	if err != nil {
		t.Fatal(err)
	}
	if alpha <= 0 {
		t.Errorf("alpha = %g, want positive", alpha)
	}
	for i, v := range skw {
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("skw[%d] = %g", i, v)
		}
	}
}

func TestIonDensitiesChargeNeutrality(t *testing.T) {
	// hydrogen-carbon mix: the implied ion densities must balance the
	// electron density through the mean ionization
	n := 2e17
	ifract := []float64{0.7, 0.3}
	ionZ := []float64{1, 5}
	ni, err := ionDensities(n, ifract, ionZ)
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for m := range ni {
		total += ni[m] * ionZ[m]
	}
	if !scalar.EqualWithinRel(total, n, 1e-12) {
		t.Errorf("sum of ni Z = %g, want the electron density %g", total, n)
	}

	// a single fully ionized species carries the whole density
	ni, err = ionDensities(n, []float64{1}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if ni[0] != n {
		t.Errorf("single-species ni = %g, want %g", ni[0], n)
	}

	if _, err := ionDensities(n, []float64{1}, []float64{0}); !errors.Is(err, validate.ErrConfig) {
		t.Errorf("zero mean ionization: got %v, want ErrConfig", err)
	}
}

func TestSpectralDensityDopplerShift(t *testing.T) {
	lams := grid520to545()
	_, still, _, err := SpectralDensity(canonicalInput(4.66e22, lams))
	if err != nil {
		t.Fatal(err)
	}

	in := canonicalInput(4.66e22, lams)
	in.IonVel = [][3]float64{{0, 5e5, 0}}
	in.ElectronVel = [][3]float64{{0, 5e5, 0}}
	_, moving, _, err := SpectralDensity(in)
	if err != nil {
		t.Fatal(err)
	}

	peakAt := func(s []float64) int {
		p := 0
		for i, v := range s {
			if v > s[p] {
				p = i
			}
		}
		return p
	}
	if peakAt(moving) == peakAt(still) {
		t.Error("a bulk drift along the scattering direction should shift the peak")
	}
}

func TestSpectralDensityDriftWarnings(t *testing.T) {
	in := canonicalInput(4.66e22, []float64{532e-9})
	in.ElectronVel = [][3]float64{{0.1 * constants.SpeedOfLight, 0, 0}}
	_, _, warns, err := SpectralDensity(in)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range warns {
		if w.Kind == validate.Relativity {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a relativity warning, got %v", warns)
	}

	in.ElectronVel = [][3]float64{{constants.SpeedOfLight, 0, 0}}
	if _, _, _, err := SpectralDensity(in); err == nil {
		t.Error("superluminal drift: expected error")
	}
}

func TestSpectralDensityInputErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero probe wavelength", func(in *Input) { in.ProbeWavelength = 0 }},
		{"no wavelengths", func(in *Input) { in.Wavelengths = nil }},
		{"negative wavelength", func(in *Input) { in.Wavelengths = []float64{-1} }},
		{"zero density", func(in *Input) { in.N = 0 }},
		{"no ions", func(in *Input) { in.IonSpecies = nil }},
		{"missing Te", func(in *Input) { in.Te = nil }},
		{"negative Ti", func(in *Input) { in.Ti = []float64{-5} }},
		{"zero probe vector", func(in *Input) { in.ProbeVec = [3]float64{} }},
		{"zero scatter vector", func(in *Input) { in.ScatterVec = [3]float64{} }},
		{"ifract species mismatch", func(in *Input) { in.IFract = []float64{0.5, 0.5} }},
		{"electron vel count mismatch", func(in *Input) { in.ElectronVel = [][3]float64{{0, 0, 0}, {0, 0, 0}} }},
	}
	for _, c := range cases {
		in := canonicalInput(4.66e22, []float64{532e-9})
		c.mutate(&in)
		_, _, _, err := SpectralDensity(in)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !errors.Is(err, validate.ErrConfig) {
			t.Errorf("%s: error %v does not wrap ErrConfig", c.name, err)
		}
	}
}

func TestSpectralDensityCountMismatchMessage(t *testing.T) {
	in := canonicalInput(4.66e22, []float64{532e-9})
	in.Te = []float64{tenEV, tenEV, tenEV}
	_, _, _, err := SpectralDensity(in)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "3") || !strings.Contains(msg, "1") {
		t.Errorf("error %q should state both counts", msg)
	}
}

func TestBroadcastTemps(t *testing.T) {
	out, err := broadcastTemps("Te", []float64{100}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[2] != 100 {
		t.Errorf("broadcast = %v", out)
	}

	out, err = broadcastTemps("Te", []float64{100, 200}, 2)
	if err != nil || len(out) != 2 {
		t.Errorf("exact-length input rejected: %v, %v", out, err)
	}

	if _, err := broadcastTemps("Te", nil, 1); err == nil {
		t.Error("missing temperatures: expected error")
	}
	if _, err := broadcastTemps("Te", []float64{1, 2}, 3); err == nil {
		t.Error("length mismatch: expected error")
	}
}
