// Package thomson computes the Thomson-scattering spectral density
// S(k, ω) of a Maxwellian plasma with any number of drifting electron
// and ion populations, spanning the non-collective through collective
// regimes. The model follows Sheffield's treatment of plasma scattering
// of electromagnetic radiation.
//
// The engine is pure: it takes SI scalars and slices, returns the mean
// scattering parameter α and the spectral density sampled over the
// requested wavelengths, and reports advisory conditions as values.
package thomson
