// Package collisions implements Coulomb-collision quantities for fully
// ionized plasmas: inner/outer impact parameters and the Coulomb
// logarithm under seven interpolation methods, plus the transport
// quantities composed from them (collision frequency, mean free path,
// Spitzer resistivity, mobility, Knudsen number, coupling parameter).
//
// The seven Coulomb-logarithm methods:
//
//   - "classical" / "ls"            straight-line Landau-Spitzer
//   - "ls_min_interp" / "GMS-1"     interpolated bmin
//   - "ls_full_interp" / "GMS-2"    interpolated bmin and bmax
//   - "ls_clamp_mininterp" / "GMS-3"  GMS-1 with lnΛ clamped at 2
//   - "hls_min_interp" / "GMS-4"    hyperbolic, interpolated bmin
//   - "hls_max_interp" / "GMS-5"    hyperbolic, interpolated bmax
//   - "hls_full_interp" / "GMS-6"   hyperbolic, both interpolated
//
// The straight-line family defines lnΛ = ln(bmax/bmin); the hyperbolic
// family defines lnΛ = ½ ln(1 + bmax²/bmin²). Methods GMS-2, GMS-5, and
// GMS-6 need the mean ionization ZMean to form the ion-sphere radius.
//
// All functions are pure: advisory conditions (weak or possibly strong
// coupling, relativistic speeds) come back as validate.Warning values
// next to the result, never as log output.
package collisions
