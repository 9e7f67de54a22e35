// Package viz renders spectra in the terminal: ASCII plots for one-shot
// commands and an interactive viewer that recomputes the spectrum as
// plasma parameters are adjusted.
package viz
