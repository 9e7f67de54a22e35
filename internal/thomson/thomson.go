package thomson

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/plasmakit/plasmakit/internal/constants"
	"github.com/plasmakit/plasmakit/internal/formulary"
	"github.com/plasmakit/plasmakit/internal/particles"
	"github.com/plasmakit/plasmakit/internal/validate"
)

// Input collects the scattering geometry and plasma state for one
// spectral-density evaluation. All values are SI: wavelengths in
// meters, temperatures in kelvin, densities in m^-3, velocities in m/s.
//
// EFract and IFract split the electron and ion populations; both
// default to a single population. Te has one entry per electron
// population and Ti one per ion species; a single entry is shared
// across all populations. ElectronVel and IonVel are per-population
// drift velocities and default to zero drift.
type Input struct {
	ProbeWavelength float64
	Wavelengths     []float64
	ProbeVec        [3]float64
	ScatterVec      [3]float64

	N           float64
	Te          []float64
	Ti          []float64
	EFract      []float64
	IFract      []float64
	ElectronVel [][3]float64
	IonVel      [][3]float64
	IonSpecies  []string
}

// SpectralDensity evaluates the dynamic form factor S(k, ω) over
// in.Wavelengths. It returns the mean scattering parameter α computed
// from the total electron density, and the spectral density in s/rad
// aligned with in.Wavelengths. Drift velocities above 5% of the speed
// of light produce warnings alongside the result.
func SpectralDensity(in Input) (alpha float64, skw []float64, warns []validate.Warning, err error) {
	if err := validate.Positive("probe_wavelength", in.ProbeWavelength); err != nil {
		return 0, nil, nil, err
	}
	if len(in.Wavelengths) == 0 {
		return 0, nil, nil, validate.Configf("at least one output wavelength is required")
	}
	for _, lam := range in.Wavelengths {
		if err := validate.Positive("wavelength", lam); err != nil {
			return 0, nil, nil, err
		}
	}
	if err := validate.Positive("n", in.N); err != nil {
		return 0, nil, nil, err
	}

	efract := in.EFract
	if len(efract) == 0 {
		efract = []float64{1}
	}
	ifract := in.IFract
	if len(ifract) == 0 {
		ifract = []float64{1}
	}

	if len(in.IonSpecies) == 0 {
		return 0, nil, nil, validate.Configf("at least one ion species is required")
	}
	ions := make([]particles.Species, len(in.IonSpecies))
	for i, tok := range in.IonSpecies {
		ions[i], err = particles.Resolve(tok)
		if err != nil {
			return 0, nil, nil, err
		}
	}

	te, err := broadcastTemps("Te", in.Te, len(efract))
	if err != nil {
		return 0, nil, nil, err
	}
	ti, err := broadcastTemps("Ti", in.Ti, len(ions))
	if err != nil {
		return 0, nil, nil, err
	}

	eVel := in.ElectronVel
	if len(eVel) == 0 {
		eVel = make([][3]float64, len(efract))
	}
	iVel := in.IonVel
	if len(iVel) == 0 {
		iVel = make([][3]float64, len(ifract))
	}

	if len(ions) != len(ifract) || len(iVel) != len(ifract) || len(ti) != len(ifract) {
		return 0, nil, nil, validate.Configf(
			"inconsistent ion populations: ifract %d, species %d, Ti %d, ion_vel %d",
			len(ifract), len(ions), len(ti), len(iVel))
	}
	if len(eVel) != len(efract) || len(te) != len(efract) {
		return 0, nil, nil, validate.Configf(
			"inconsistent electron populations: efract %d, Te %d, electron_vel %d",
			len(efract), len(te), len(eVel))
	}

	for _, v := range eVel {
		warn, err := validate.Speed("electron drift", floats.Norm(v[:], 2))
		if err != nil {
			return 0, nil, nil, err
		}
		if warn != nil {
			warns = append(warns, *warn)
		}
	}
	for _, v := range iVel {
		warn, err := validate.Speed("ion drift", floats.Norm(v[:], 2))
		if err != nil {
			return 0, nil, nil, err
		}
		if warn != nil {
			warns = append(warns, *warn)
		}
	}

	probe, err := normalized("probe_vec", in.ProbeVec)
	if err != nil {
		return 0, nil, nil, err
	}
	scatter, err := normalized("scatter_vec", in.ScatterVec)
	if err != nil {
		return 0, nil, nil, err
	}
	cosTheta := floats.Dot(probe[:], scatter[:])
	// fluctuation wavevector direction; drifts project onto the raw
	// difference vector, which is not renormalized
	kHat := [3]float64{
		scatter[0] - probe[0],
		scatter[1] - probe[1],
		scatter[2] - probe[2],
	}

	c := constants.SpeedOfLight
	wpe := formulary.PlasmaFrequency(in.N, constants.ElectronMass, 1)
	wl := 2 * math.Pi * c / in.ProbeWavelength
	kl := math.Sqrt(wl*wl-wpe*wpe) / c

	nW := len(in.Wavelengths)
	w := make([]float64, nW)
	k := make([]float64, nW)
	for i, lam := range in.Wavelengths {
		ws := 2 * math.Pi * c / lam
		w[i] = ws - wl
		ks := math.Sqrt(ws*ws-wpe*wpe) / c
		// momentum conservation across the scattering triangle
		k[i] = math.Sqrt(ks*ks + kl*kl - 2*ks*kl*cosTheta)
	}

	vTe := make([]float64, len(efract))
	for m := range efract {
		vTe[m] = formulary.ThermalSpeed(te[m], constants.ElectronMass)
	}
	vTi := make([]float64, len(ifract))
	ionZ := make([]float64, len(ifract))
	for m, ion := range ions {
		vTi[m] = formulary.ThermalSpeed(ti[m], ion.Mass)
		ionZ[m] = float64(ion.Z)
	}
	ni, err := ionDensities(in.N, ifract, ionZ)
	if err != nil {
		return 0, nil, nil, err
	}

	// Doppler-shifted frequencies seen by each drifting population
	wE := shifted(w, k, kHat, eVel)
	wI := shifted(w, k, kHat, iVel)

	// mean scattering parameter over populations and wavelengths
	sum := 0.0
	for m := range vTe {
		for i := range k {
			sum += math.Sqrt2 * wpe / (k[i] * vTe[m])
		}
	}
	alpha = sum / float64(len(vTe)*nW)

	chiE := make([]complex128, nW)
	for m := range efract {
		chi := formulary.Susceptibility(wE[m], k, te[m], efract[m]*in.N, constants.ElectronMass, 1)
		for i := range chi {
			chiE[i] += chi[i]
		}
	}
	chiI := make([]complex128, nW)
	for m, ion := range ions {
		chi := formulary.Susceptibility(wI[m], k, ti[m], ni[m], ion.Mass, ionZ[m])
		for i := range chi {
			chiI[i] += chi[i]
		}
	}

	skw = make([]float64, nW)
	twoSqrtPi := 2 * math.Sqrt(math.Pi)
	for i := range skw {
		eps := 1 + chiE[i] + chiI[i]

		var s float64
		eTerm := 1 - chiE[i]/eps
		eShape := real(eTerm)*real(eTerm) + imag(eTerm)*imag(eTerm)
		for m := range efract {
			x := wE[m][i] / (k[i] * vTe[m])
			s += efract[m] * twoSqrtPi / (k[i] * vTe[m]) * eShape * math.Exp(-x*x)
		}
		iTerm := chiE[i] / eps
		iShape := real(iTerm)*real(iTerm) + imag(iTerm)*imag(iTerm)
		for m := range ifract {
			x := wI[m][i] / (k[i] * vTi[m])
			s += ifract[m] * ionZ[m] * twoSqrtPi / (k[i] * vTi[m]) * iShape * math.Exp(-x*x)
		}
		skw[i] = s
	}
	return alpha, skw, warns, nil
}

// ionDensities splits the electron density into per-species ion
// densities through the mean ionization z̄, preserving charge
// neutrality: Σ n_j Z_j = n.
func ionDensities(n float64, ifract, ionZ []float64) ([]float64, error) {
	zbar := 0.0
	for m := range ifract {
		zbar += ifract[m] * ionZ[m]
	}
	if zbar == 0 {
		return nil, validate.Configf("mean ionization is zero; ions must carry charge")
	}
	ni := make([]float64, len(ifract))
	for m := range ifract {
		ni[m] = ifract[m] * n / zbar
	}
	return ni, nil
}

// broadcastTemps shares a single temperature across count populations
// and validates positivity.
func broadcastTemps(name string, temps []float64, count int) ([]float64, error) {
	switch len(temps) {
	case 0:
		return nil, validate.Configf("%s is required", name)
	case 1:
		out := make([]float64, count)
		for i := range out {
			out[i] = temps[0]
		}
		temps = out
	case count:
	default:
		return nil, validate.Configf("got %d %s values and expected %d", len(temps), name, count)
	}
	for _, t := range temps {
		if err := validate.Positive(name, t); err != nil {
			return nil, err
		}
	}
	return temps, nil
}

func normalized(name string, v [3]float64) ([3]float64, error) {
	norm := floats.Norm(v[:], 2)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return v, validate.Configf("%s must be a nonzero finite vector", name)
	}
	floats.Scale(1/norm, v[:])
	return v, nil
}

// shifted returns w - k (k̂·v) for each population drift.
func shifted(w, k []float64, kHat [3]float64, vel [][3]float64) [][]float64 {
	out := make([][]float64, len(vel))
	for m, v := range vel {
		proj := floats.Dot(kHat[:], v[:])
		row := make([]float64, len(w))
		for i := range w {
			row[i] = w[i] - k[i]*proj
		}
		out[m] = row
	}
	return out
}
