package formulary

import "github.com/plasmakit/plasmakit/internal/mathx"

// Susceptibility evaluates the longitudinal susceptibility of a 1-D
// Maxwellian species over a slice of Doppler-shifted angular frequencies
// and the matching wavenumbers:
//
//	χ(ω, k) = - (ω_p² / (k² v_th²)) Z'(ω / (k v_th))
//
// tempK, density, mass, and z describe the species; omega and k must be
// the same length and the result is aligned with them.
func Susceptibility(omega, k []float64, tempK, density, mass, z float64) []complex128 {
	vth := ThermalSpeed(tempK, mass)
	wp := PlasmaFrequency(density, mass, z)

	chi := make([]complex128, len(omega))
	for i := range omega {
		kv := k[i] * vth
		zeta := omega[i] / kv
		scale := -(wp * wp) / (kv * kv)
		chi[i] = complex(scale, 0) * mathx.PlasmaDispersionDeriv(zeta)
	}
	return chi
}
