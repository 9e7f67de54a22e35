// Package formulary provides the closed-form plasma parameters that the
// scattering and collision engines are assembled from. All inputs and
// outputs are SI scalars; dimension checking happens at the boundary
// before values reach this package.
package formulary

import (
	"math"

	"github.com/plasmakit/plasmakit/internal/constants"
)

// ThermalSpeed returns the most-probable thermal speed √(2 k_B T / m)
// in m/s for a temperature in kelvin and a mass in kg.
func ThermalSpeed(tempK, mass float64) float64 {
	return math.Sqrt(2 * constants.Boltzmann * tempK / mass)
}

// PlasmaFrequency returns the angular plasma frequency
// |Z| e √(n / (ε₀ m)) in rad/s.
func PlasmaFrequency(density, mass, z float64) float64 {
	return math.Abs(z) * constants.ElementaryCharge *
		math.Sqrt(density/(constants.VacuumPermittivity*mass))
}

// DebyeLength returns the electron Debye length √(ε₀ k_B T / (n e²))
// in meters.
func DebyeLength(tempK, density float64) float64 {
	e := constants.ElementaryCharge
	return math.Sqrt(constants.VacuumPermittivity * constants.Boltzmann * tempK /
		(density * e * e))
}

// WignerSeitzRadius returns the ion-sphere radius (3/(4π n))^(1/3) in
// meters for a given ion density.
func WignerSeitzRadius(density float64) float64 {
	return math.Cbrt(3.0 / (4.0 * math.Pi * density))
}

// ThermalDeBroglieWavelength returns h/√(2π m_e k_B T) in meters for an
// electron gas at temperature T.
func ThermalDeBroglieWavelength(tempK float64) float64 {
	return constants.Planck / math.Sqrt(2*math.Pi*constants.ElectronMass*
		constants.Boltzmann*tempK)
}

// FermiEnergy returns ħ²(3π²n)^(2/3) / (2 m_e) in joules.
func FermiEnergy(density float64) float64 {
	k := math.Pow(3*math.Pi*math.Pi*density, 2.0/3.0)
	return constants.ReducedPlanck * constants.ReducedPlanck * k /
		(2 * constants.ElectronMass)
}
