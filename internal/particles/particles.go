// Package particles resolves particle tokens ("e-", "p+", "He-4 2+",
// "C 6+") to physical properties: rest mass, charge, and charge number.
package particles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/plasmakit/plasmakit/internal/constants"
)

// ErrUnknownSpecies indicates a token that cannot be resolved to a
// particle. It is propagated unchanged through every higher layer.
var ErrUnknownSpecies = errors.New("particles: unknown species")

// Species describes a resolved particle.
type Species struct {
	Symbol string  // canonical token
	Mass   float64 // rest mass, kg
	Charge float64 // signed charge, C
	Z      int     // signed charge number
}

// IsElectron reports whether the species is an electron.
func (s Species) IsElectron() bool { return s.Symbol == "e-" }

// named covers leptons and light nuclei whose masses are not well
// approximated by A times the atomic mass unit.
var named = map[string]Species{
	"e-":       {Symbol: "e-", Mass: constants.ElectronMass, Z: -1},
	"e":        {Symbol: "e-", Mass: constants.ElectronMass, Z: -1},
	"electron": {Symbol: "e-", Mass: constants.ElectronMass, Z: -1},
	"p+":       {Symbol: "p+", Mass: constants.ProtonMass, Z: 1},
	"p":        {Symbol: "p+", Mass: constants.ProtonMass, Z: 1},
	"proton":   {Symbol: "p+", Mass: constants.ProtonMass, Z: 1},
	"H+":       {Symbol: "p+", Mass: constants.ProtonMass, Z: 1},
	"H-1+":     {Symbol: "p+", Mass: constants.ProtonMass, Z: 1},
	"D+":       {Symbol: "D+", Mass: 3.34358377e-27, Z: 1},
	"deuteron": {Symbol: "D+", Mass: 3.34358377e-27, Z: 1},
	"T+":       {Symbol: "T+", Mass: 5.00735674e-27, Z: 1},
	"triton":   {Symbol: "T+", Mass: 5.00735674e-27, Z: 1},
	"alpha":    {Symbol: "He-4 2+", Mass: 6.6446573357e-27, Z: 2},
	"He-4 2+":  {Symbol: "He-4 2+", Mass: 6.6446573357e-27, Z: 2},
}

// standard atomic weights, u
var elements = map[string]float64{
	"H": 1.008, "He": 4.002602, "Li": 6.94, "Be": 9.0121831,
	"B": 10.81, "C": 12.011, "N": 14.007, "O": 15.999,
	"F": 18.998403, "Ne": 20.1797, "Na": 22.989769, "Mg": 24.305,
	"Al": 26.981538, "Si": 28.085, "Ar": 39.948, "Ca": 40.078,
	"Fe": 55.845, "Cu": 63.546, "Kr": 83.798, "Xe": 131.293,
	"W": 183.84, "Au": 196.96657,
}

// Resolve maps a particle token to its Species. Ion tokens are an
// element symbol, an optional "-A" mass number, and a charge suffix:
// "He+", "He-4 2+", "C 6+", "Ar 16+".
func Resolve(token string) (Species, error) {
	tok := strings.TrimSpace(token)
	if s, ok := named[tok]; ok {
		s.Charge = float64(s.Z) * constants.ElementaryCharge
		return s, nil
	}

	sym, z, err := splitCharge(tok)
	if err != nil {
		return Species{}, err
	}

	el := sym
	massNumber := 0.0
	if i := strings.IndexByte(sym, '-'); i > 0 {
		a, err := strconv.Atoi(sym[i+1:])
		if err != nil {
			return Species{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, token)
		}
		el = sym[:i]
		massNumber = float64(a)
	}

	weight, ok := elements[el]
	if !ok {
		return Species{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, token)
	}
	if massNumber == 0 {
		massNumber = weight
	}

	mass := massNumber*constants.AtomicMass - float64(z)*constants.ElectronMass
	s := Species{Symbol: tok, Mass: mass, Z: z}
	s.Charge = float64(z) * constants.ElementaryCharge
	return s, nil
}

// splitCharge strips a trailing charge designator ("+", "2+", "-",
// " 3+") and returns the remaining symbol plus the signed charge number.
func splitCharge(tok string) (string, int, error) {
	if tok == "" {
		return "", 0, fmt.Errorf("%w: empty token", ErrUnknownSpecies)
	}
	sign := 0
	switch tok[len(tok)-1] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return "", 0, fmt.Errorf("%w: %q (charge state required for ions)", ErrUnknownSpecies, tok)
	}

	body := tok[:len(tok)-1]
	n := 1
	// consume trailing digits as the charge magnitude
	i := len(body)
	for i > 0 && body[i-1] >= '0' && body[i-1] <= '9' {
		i--
	}
	if i < len(body) {
		// distinguish "He-4" (mass number) from "He 2" (charge magnitude):
		// a charge magnitude is separated by a space or follows the symbol
		// without a hyphen directly before it
		if i > 0 && body[i-1] == '-' && strings.Count(body, "-") == 1 && !strings.Contains(body, " ") {
			// trailing digits belong to the mass number, charge magnitude is 1
		} else {
			v, err := strconv.Atoi(body[i:])
			if err != nil {
				return "", 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, tok)
			}
			n = v
			body = body[:i]
		}
	}

	return strings.TrimSpace(body), sign * n, nil
}

// ResolvePair resolves a (test, field) species pair in one call.
func ResolvePair(test, field string) (Species, Species, error) {
	a, err := Resolve(test)
	if err != nil {
		return Species{}, Species{}, err
	}
	b, err := Resolve(field)
	if err != nil {
		return Species{}, Species{}, err
	}
	return a, b, nil
}

// ReducedMass returns the reduced mass of a two-particle system, kg.
func ReducedMass(a, b Species) float64 {
	return a.Mass * b.Mass / (a.Mass + b.Mass)
}
