package collisions

import (
	"fmt"
	"math"

	"github.com/plasmakit/plasmakit/internal/validate"
)

// CoulombLogarithm computes lnΛ for each density in q.Ne. The value is
// always returned, even deep in the strongly coupled regime; validity
// concerns surface as warnings.
func CoulombLogarithm(q Query) ([]float64, []validate.Warning, error) {
	bmin, bmax, warns, err := ImpactParameters(q)
	if err != nil {
		return nil, nil, err
	}

	lnL := make([]float64, len(bmax))
	switch {
	case linearMethods[q.Method]:
		for i := range lnL {
			lnL[i] = math.Log(bmax[i] / bmin[i])
		}
	case clampMethods[q.Method]:
		for i := range lnL {
			lnL[i] = math.Log(bmax[i] / bmin[i])
			if lnL[i] < 2 {
				lnL[i] = 2
			}
		}
	default: // hyperbolic
		for i := range lnL {
			r := bmax[i] / bmin[i]
			lnL[i] = 0.5 * math.Log1p(r*r)
		}
	}

	warns = append(warns, couplingWarnings(lnL, q.Method)...)
	return lnL, warns, nil
}

// CoulombLogarithmScalar is CoulombLogarithm for a single density.
func CoulombLogarithmScalar(tempK, ne float64, species [2]string, zMean, v float64, method string) (float64, []validate.Warning, error) {
	q := Query{T: tempK, Ne: []float64{ne}, Species: species, ZMean: zMean, V: v, Method: method}
	lnL, warns, err := CoulombLogarithm(q)
	if err != nil {
		return 0, nil, err
	}
	return lnL[0], warns, nil
}

// couplingWarnings implements the validity signaling: lnΛ < 2 questions
// the weak-coupling assumption of the straight-line methods; lnΛ < 4
// hints at strong coupling for any method. NaN entries are exempt.
func couplingWarnings(lnL []float64, method string) []validate.Warning {
	anyBelow := func(limit float64) bool {
		for _, v := range lnL {
			if !math.IsNaN(v) && v < limit {
				return true
			}
		}
		return false
	}

	if linearMethods[method] && anyBelow(2) {
		return []validate.Warning{{
			Kind:    validate.WeakCoupling,
			Message: fmt.Sprintf("Coulomb logarithm is %v and method %q depends on weak coupling", lnL, method),
		}}
	}
	if anyBelow(4) {
		return []validate.Warning{{
			Kind:    validate.StrongCoupling,
			Message: fmt.Sprintf("Coulomb logarithm is %v; strong coupling effects may exist", lnL),
		}}
	}
	return nil
}
