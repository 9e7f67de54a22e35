package collisions

import (
	"math"

	"github.com/plasmakit/plasmakit/internal/constants"
	"github.com/plasmakit/plasmakit/internal/formulary"
	"github.com/plasmakit/plasmakit/internal/mathx"
	"github.com/plasmakit/plasmakit/internal/particles"
	"github.com/plasmakit/plasmakit/internal/validate"
)

// CrossSection returns the effective Coulomb cross section π(2 b⟂)² in
// m² for a 90° impact parameter b⟂.
func CrossSection(bPerp float64) float64 {
	d := 2 * bPerp
	return math.Pi * d * d
}

// collisionKinetics picks the working velocity and 90° impact parameter
// for a species pair. Electron-electron encounters use the mutual
// thermal speed; electron-ion encounters move at the electron thermal
// speed, with b⟂ referred to the electron mass; ion-ion encounters use
// the mutual thermal speed of the pair.
func collisionKinetics(q Query) (v, bPerp float64, err error) {
	if err := validate.Positive("T", q.T); err != nil {
		return 0, 0, err
	}
	test, field, err := particles.ResolvePair(q.Species[0], q.Species[1])
	if err != nil {
		return 0, 0, err
	}
	mu := particles.ReducedMass(test, field)
	qProduct := math.Abs(test.Charge * field.Charge)
	radius := func(m, v float64) float64 {
		return qProduct / (4 * math.Pi * constants.VacuumPermittivity * m * v * v)
	}

	v = q.V
	switch {
	case test.IsElectron() && field.IsElectron():
		mutual := formulary.ThermalSpeed(q.T, mu)
		if math.IsNaN(v) {
			v = mutual
		}
		bPerp = radius(mu, mutual)
	case test.IsElectron() || field.IsElectron():
		if math.IsNaN(v) {
			v = formulary.ThermalSpeed(q.T, constants.ElectronMass)
		}
		bPerp = radius(constants.ElectronMass, v)
	default:
		if math.IsNaN(v) {
			v = formulary.ThermalSpeed(q.T, mu)
		}
		bPerp = radius(mu, v)
	}
	return v, bPerp, nil
}

// CollisionFrequency returns the binary collision frequency
// ν = n σ V lnΛ in s^-1, one entry per density in q.Ne.
func CollisionFrequency(q Query) ([]float64, []validate.Warning, error) {
	v, bPerp, err := collisionKinetics(q)
	if err != nil {
		return nil, nil, err
	}

	qq := q
	qq.V = v
	lnL, warns, err := CoulombLogarithm(qq)
	if err != nil {
		return nil, nil, err
	}

	sigma := CrossSection(bPerp)
	freq := make([]float64, len(q.Ne))
	for i, n := range q.Ne {
		freq[i] = n * sigma * v * lnL[i]
	}
	return freq, warns, nil
}

// FundamentalElectronCollisionFreq returns the Maxwellian-averaged
// electron-ion momentum relaxation rate 4/(3√π) ν_ei in s^-1. Pass NaN
// for coulombLog to use the computed logarithm, or a value to rescale
// the frequency to a caller-supplied lnΛ.
func FundamentalElectronCollisionFreq(tempK, ne float64, ion string, coulombLog, v float64, method string) (float64, []validate.Warning, error) {
	ionSpecies, err := particles.Resolve(ion)
	if err != nil {
		return 0, nil, err
	}
	q := Query{
		T:       tempK,
		Ne:      []float64{ne},
		Species: [2]string{ion, "e-"},
		ZMean:   math.Abs(float64(ionSpecies.Z)),
		V:       v,
		Method:  method,
	}
	nu, warns, err := maxwellianFreq(q, 4.0/(3.0*math.Sqrt(math.Pi)), coulombLog)
	return nu, warns, err
}

// FundamentalIonCollisionFreq returns the Maxwellian-averaged ion-ion
// momentum relaxation rate √(8/π)/12 ν_ii in s^-1. An unset velocity
// defaults to the single-ion thermal speed, not the mutual speed of the
// pair.
func FundamentalIonCollisionFreq(tempK, ni float64, ion string, coulombLog, v float64, method string) (float64, []validate.Warning, error) {
	ionSpecies, err := particles.Resolve(ion)
	if err != nil {
		return 0, nil, err
	}
	if math.IsNaN(v) {
		v = formulary.ThermalSpeed(tempK, ionSpecies.Mass)
	}
	q := Query{
		T:       tempK,
		Ne:      []float64{ni},
		Species: [2]string{ion, ion},
		ZMean:   math.Abs(float64(ionSpecies.Z)),
		V:       v,
		Method:  method,
	}
	nu, warns, err := maxwellianFreq(q, math.Sqrt(8/math.Pi)/12, coulombLog)
	return nu, warns, err
}

func maxwellianFreq(q Query, coeff, coulombLog float64) (float64, []validate.Warning, error) {
	freq, warns, err := CollisionFrequency(q)
	if err != nil {
		return 0, nil, err
	}
	nu := coeff * freq[0]
	if !math.IsNaN(coulombLog) {
		v, _, err := collisionKinetics(q)
		if err != nil {
			return 0, nil, err
		}
		qq := q
		qq.V = v
		lnL, _, err := CoulombLogarithm(qq)
		if err != nil {
			return 0, nil, err
		}
		nu = nu / lnL[0] * coulombLog
	}
	return nu, warns, nil
}

// MeanFreePath returns the collisional mean free path V/ν in meters, one
// entry per density.
func MeanFreePath(q Query) ([]float64, []validate.Warning, error) {
	freq, warns, err := CollisionFrequency(q)
	if err != nil {
		return nil, nil, err
	}
	test, field, err := particles.ResolvePair(q.Species[0], q.Species[1])
	if err != nil {
		return nil, nil, err
	}
	v := q.V
	if math.IsNaN(v) {
		v = formulary.ThermalSpeed(q.T, particles.ReducedMass(test, field))
	}
	mfp := make([]float64, len(freq))
	for i := range freq {
		mfp[i] = v / freq[i]
	}
	return mfp, warns, nil
}

// SpitzerResistivity returns the Spitzer resistivity μν/(n q₁q₂) in
// Ω·m, one entry per density. When q.ZMean is set, the charge product
// becomes (z_mean e)².
func SpitzerResistivity(q Query) ([]float64, []validate.Warning, error) {
	freq, warns, err := CollisionFrequency(q)
	if err != nil {
		return nil, nil, err
	}
	test, field, err := particles.ResolvePair(q.Species[0], q.Species[1])
	if err != nil {
		return nil, nil, err
	}
	mu := particles.ReducedMass(test, field)
	qProduct := math.Abs(test.Charge * field.Charge)
	if !math.IsNaN(q.ZMean) {
		ze := q.ZMean * constants.ElementaryCharge
		qProduct = ze * ze
	}

	eta := make([]float64, len(freq))
	for i := range freq {
		eta[i] = freq[i] * mu / (q.Ne[i] * qProduct)
	}
	return eta, warns, nil
}

// Mobility returns the electrical mobility q/(μν) in m²/(V·s), one
// entry per density. Without q.ZMean the charge is the mean of the two
// species' charge magnitudes.
func Mobility(q Query) ([]float64, []validate.Warning, error) {
	freq, warns, err := CollisionFrequency(q)
	if err != nil {
		return nil, nil, err
	}
	test, field, err := particles.ResolvePair(q.Species[0], q.Species[1])
	if err != nil {
		return nil, nil, err
	}
	mu := particles.ReducedMass(test, field)
	charge := (math.Abs(test.Charge) + math.Abs(field.Charge)) / 2
	if !math.IsNaN(q.ZMean) {
		charge = q.ZMean * constants.ElementaryCharge
	}

	mob := make([]float64, len(freq))
	for i := range freq {
		mob[i] = charge / (mu * freq[i])
	}
	return mob, warns, nil
}

// KnudsenNumber returns the ratio of the collisional mean free path to a
// characteristic length scale, one entry per density.
func KnudsenNumber(length float64, q Query) ([]float64, []validate.Warning, error) {
	if err := validate.Positive("L", length); err != nil {
		return nil, nil, err
	}
	mfp, warns, err := MeanFreePath(q)
	if err != nil {
		return nil, nil, err
	}
	kn := make([]float64, len(mfp))
	for i := range mfp {
		kn[i] = mfp[i] / length
	}
	return kn, warns, nil
}

// Coupling-parameter kinetic-energy models.
const (
	CouplingClassical = "classical"
	CouplingQuantum   = "quantum"
)

// CouplingParameter returns Γ, the ratio of the interparticle Coulomb
// potential energy at the ion-sphere radius to the kinetic energy, one
// entry per electron density. The classical model uses k_B T; the
// quantum model uses the Fermi-Dirac kinetic energy of a possibly
// degenerate electron gas.
func CouplingParameter(tempK float64, ne []float64, species [2]string, zMean float64, model string) ([]float64, error) {
	if err := validate.Positive("T", tempK); err != nil {
		return nil, err
	}
	if len(ne) == 0 {
		return nil, validate.Configf("at least one electron density is required")
	}
	test, field, err := particles.ResolvePair(species[0], species[1])
	if err != nil {
		return nil, err
	}

	// mean ionization for converting electron density to ion density,
	// and the charge product entering the Coulomb energy
	zIon := (math.Abs(float64(test.Z)) + math.Abs(float64(field.Z))) / 2
	qProduct := math.Abs(test.Charge * field.Charge)
	if !math.IsNaN(zMean) {
		zIon = zMean
		ze := zMean * constants.ElementaryCharge
		qProduct = ze * ze
	}

	gamma := make([]float64, len(ne))
	for i, n := range ne {
		if err := validate.Positive("n_e", n); err != nil {
			return nil, err
		}
		radius := formulary.WignerSeitzRadius(n / zIon)
		coulombEnergy := qProduct / (4 * math.Pi * constants.VacuumPermittivity * radius)

		var kinetic float64
		switch model {
		case CouplingClassical, "":
			kinetic = constants.Boltzmann * tempK
		case CouplingQuantum:
			theta := constants.Boltzmann * tempK / formulary.FermiEnergy(n)
			eta := mathx.IdealChemicalPotential(theta)
			lambda := formulary.ThermalDeBroglieWavelength(tempK)
			kinetic = 2 * constants.Boltzmann * tempK /
				(n * lambda * lambda * lambda * mathx.FermiIntegral32(eta))
		default:
			return nil, validate.Configf("unknown coupling model %q (use classical or quantum)", model)
		}
		gamma[i] = coulombEnergy / kinetic
	}
	return gamma, nil
}
