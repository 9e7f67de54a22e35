package collisions

import (
	"math"

	"github.com/plasmakit/plasmakit/internal/constants"
	"github.com/plasmakit/plasmakit/internal/formulary"
	"github.com/plasmakit/plasmakit/internal/particles"
	"github.com/plasmakit/plasmakit/internal/validate"
)

// Query describes one Coulomb-collision evaluation. T is the shared
// temperature of test and field particles in kelvin. Ne holds one or
// more electron densities in m^-3; results are aligned with it. ZMean
// and V use NaN as the not-provided sentinel; an unset V defaults to the
// pairwise thermal speed √(2 k_B T / μ).
type Query struct {
	T       float64
	Ne      []float64
	Species [2]string
	ZMean   float64
	V       float64
	Method  string
}

// NewQuery fills a Query with the NaN sentinels in place of ZMean and V.
func NewQuery(tempK float64, ne []float64, test, field, method string) Query {
	return Query{
		T:       tempK,
		Ne:      ne,
		Species: [2]string{test, field},
		ZMean:   math.NaN(),
		V:       math.NaN(),
		Method:  method,
	}
}

// method families
var (
	linearMethods = map[string]bool{
		"classical": true, "ls": true,
		"ls_min_interp": true, "GMS-1": true,
		"ls_full_interp": true, "GMS-2": true,
	}
	clampMethods = map[string]bool{
		"ls_clamp_mininterp": true, "GMS-3": true,
	}
	hyperbolicMethods = map[string]bool{
		"hls_min_interp": true, "GMS-4": true,
		"hls_max_interp": true, "GMS-5": true,
		"hls_full_interp": true, "GMS-6": true,
	}
	needZMean = map[string]bool{
		"ls_full_interp": true, "GMS-2": true,
		"hls_max_interp": true, "GMS-5": true,
		"hls_full_interp": true, "GMS-6": true,
	}
)

// KnownMethod reports whether name is one of the seven methods or their
// aliases.
func KnownMethod(name string) bool {
	return linearMethods[name] || clampMethods[name] || hyperbolicMethods[name]
}

// Methods lists the canonical method names in documentation order.
func Methods() []string {
	return []string{
		"classical", "ls_min_interp", "ls_full_interp", "ls_clamp_mininterp",
		"hls_min_interp", "hls_max_interp", "hls_full_interp",
	}
}

// pairState carries the resolved two-particle system shared by every
// entry point: reduced mass and the working relative velocity.
type pairState struct {
	test, field particles.Species
	mu          float64
	v           float64
	warns       []validate.Warning
}

// resolvePair validates the common (T, species, V) inputs, resolves the
// species pair, and substitutes the pairwise thermal speed when V is the
// NaN sentinel. V == 0 is rejected: no collision occurs at zero relative
// velocity.
func resolvePair(tempK float64, species [2]string, v float64) (pairState, error) {
	var ps pairState
	if err := validate.Positive("T", tempK); err != nil {
		return ps, err
	}
	if v == 0 {
		return ps, validate.Configf("V = 0: a collision requires nonzero relative velocity")
	}

	test, field, err := particles.ResolvePair(species[0], species[1])
	if err != nil {
		return ps, err
	}

	mu := particles.ReducedMass(test, field)
	if math.IsNaN(v) {
		v = formulary.ThermalSpeed(tempK, mu)
	}
	warn, err := validate.Speed("V", v)
	if err != nil {
		return ps, err
	}

	ps = pairState{test: test, field: field, mu: mu, v: v}
	if warn != nil {
		ps.warns = append(ps.warns, *warn)
	}
	return ps, nil
}

// PerpImpactParameter returns the distance of closest approach for a 90°
// Coulomb collision, ρ⟂ = |q₁q₂| / (4π ε₀ μ V²), in meters.
func PerpImpactParameter(tempK float64, species [2]string, v float64) (float64, []validate.Warning, error) {
	ps, err := resolvePair(tempK, species, v)
	if err != nil {
		return 0, nil, err
	}
	return perpFrom(ps), ps.warns, nil
}

func perpFrom(ps pairState) float64 {
	q := math.Abs(ps.test.Charge * ps.field.Charge)
	return q / (4 * math.Pi * constants.VacuumPermittivity * ps.mu * ps.v * ps.v)
}

// ImpactParameters returns the inner and outer impact parameters for the
// requested method, one entry per density in q.Ne. bmin depends only on
// the scalar (T, V) inputs and is broadcast to match bmax.
func ImpactParameters(q Query) (bmin, bmax []float64, warns []validate.Warning, err error) {
	if !KnownMethod(q.Method) {
		return nil, nil, nil, validate.Configf("unknown Coulomb-logarithm method %q; choose one of %v or a GMS alias", q.Method, Methods())
	}
	if needZMean[q.Method] && math.IsNaN(q.ZMean) {
		return nil, nil, nil, validate.Configf("method %q requires z_mean to form the ion-sphere radius", q.Method)
	}
	if len(q.Ne) == 0 {
		return nil, nil, nil, validate.Configf("at least one electron density is required")
	}
	for _, n := range q.Ne {
		if err := validate.Positive("n_e", n); err != nil {
			return nil, nil, nil, err
		}
	}

	ps, err := resolvePair(q.T, q.Species, q.V)
	if err != nil {
		return nil, nil, nil, err
	}

	deBroglie := constants.ReducedPlanck / (2 * ps.mu * ps.v)
	perp := perpFrom(ps)
	interp := math.Hypot(deBroglie, perp)

	// bmin per method; scalar across densities
	var inner float64
	switch q.Method {
	case "classical", "ls":
		inner = math.Max(perp, deBroglie)
	case "hls_max_interp", "GMS-5":
		inner = perp
	default:
		inner = interp
	}

	bmin = make([]float64, len(q.Ne))
	bmax = make([]float64, len(q.Ne))
	for i, n := range q.Ne {
		debye := formulary.DebyeLength(q.T, n)
		if needZMean[q.Method] {
			ionSphere := formulary.WignerSeitzRadius(n / q.ZMean)
			bmax[i] = math.Hypot(debye, ionSphere)
		} else {
			bmax[i] = debye
		}
		bmin[i] = inner
	}
	return bmin, bmax, ps.warns, nil
}
