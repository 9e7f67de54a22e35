// Package constants holds the CODATA 2018 physical constants used
// throughout the formulary, in SI units. Values are consumed as pure
// numbers; nothing here is computed.
package constants

const (
	// SpeedOfLight is the speed of light in vacuum (m/s, exact).
	SpeedOfLight = 299792458.0

	// ElementaryCharge is the elementary charge (C, exact).
	ElementaryCharge = 1.602176634e-19

	// VacuumPermittivity is the vacuum electric permittivity (F/m).
	VacuumPermittivity = 8.8541878128e-12

	// Planck is the Planck constant (J s, exact).
	Planck = 6.62607015e-34

	// ReducedPlanck is h/2π (J s).
	ReducedPlanck = 1.054571817e-34

	// Boltzmann is the Boltzmann constant (J/K, exact).
	Boltzmann = 1.380649e-23

	// ElectronMass is the electron rest mass (kg).
	ElectronMass = 9.1093837015e-31

	// ProtonMass is the proton rest mass (kg).
	ProtonMass = 1.67262192369e-27

	// AtomicMass is the unified atomic mass unit (kg).
	AtomicMass = 1.66053906660e-27
)

// EVToKelvin converts an energy expressed in electron-volts to the
// equivalent temperature in kelvin (e/k_B per eV).
const EVToKelvin = ElementaryCharge / Boltzmann
