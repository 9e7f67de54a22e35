package collisions

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/plasmakit/plasmakit/internal/validate"
)

func TestPerpImpactParameter(t *testing.T) {
	// e-p pair at the mutual thermal speed
	got, warns, err := PerpImpactParameter(1e6, [2]string{"e-", "p+"}, math.NaN())
	if err != nil {
		t.Fatal(err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	want := 8.355047344914369e-12
	if !scalar.EqualWithinRel(got, want, 1e-12) {
		t.Errorf("b_perp = %.17g, want %.17g", got, want)
	}
}

func TestImpactParametersClassical(t *testing.T) {
	q := NewQuery(1e6, []float64{1e19}, "e-", "p+", "classical")
	bmin, bmax, _, err := ImpactParameters(q)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(bmin[0], 1.0516307052787966e-11, 1e-12) {
		t.Errorf("bmin = %.17g, want 1.0516307052787966e-11", bmin[0])
	}
	if !scalar.EqualWithinRel(bmax[0], 2.1822555794732244e-05, 1e-12) {
		t.Errorf("bmax = %.17g, want 2.1822555794732244e-05", bmax[0])
	}
}

func TestImpactParametersExplicitVelocity(t *testing.T) {
	q := NewQuery(1e6, []float64{1e19}, "e-", "p+", "classical")
	q.V = 1e6
	bmin, _, _, err := ImpactParameters(q)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(bmin[0], 2.5340177795634224e-10, 1e-12) {
		t.Errorf("bmin = %.17g, want 2.5340177795634224e-10", bmin[0])
	}
}

func TestImpactParametersBroadcast(t *testing.T) {
	// bmin depends only on scalar inputs; bmax tracks the density
	q := NewQuery(1e6, []float64{1e17, 1e19, 1e21}, "e-", "p+", "classical")
	bmin, bmax, _, err := ImpactParameters(q)
	if err != nil {
		t.Fatal(err)
	}
	if len(bmin) != 3 || len(bmax) != 3 {
		t.Fatalf("expected 3 entries, got %d and %d", len(bmin), len(bmax))
	}
	if bmin[0] != bmin[1] || bmin[1] != bmin[2] {
		t.Errorf("bmin should be constant across densities: %v", bmin)
	}
	if !(bmax[0] > bmax[1] && bmax[1] > bmax[2]) {
		t.Errorf("Debye length should shrink with density: %v", bmax)
	}
}

func TestImpactParametersIonSphere(t *testing.T) {
	// full-interpolation methods fold the ion-sphere radius into bmax
	base := NewQuery(1e6, []float64{1e19}, "e-", "p+", "classical")
	_, bmaxClassical, _, err := ImpactParameters(base)
	if err != nil {
		t.Fatal(err)
	}

	q := NewQuery(1e6, []float64{1e19}, "e-", "p+", "ls_full_interp")
	q.ZMean = 1
	_, bmaxFull, _, err := ImpactParameters(q)
	if err != nil {
		t.Fatal(err)
	}
	if bmaxFull[0] <= bmaxClassical[0] {
		t.Errorf("bmax with ion sphere %g should exceed the Debye length %g", bmaxFull[0], bmaxClassical[0])
	}
}

func TestImpactParametersErrors(t *testing.T) {
	base := func() Query {
		return NewQuery(1e6, []float64{1e19}, "e-", "p+", "classical")
	}

	cases := []struct {
		name   string
		mutate func(*Query)
	}{
		{"unknown method", func(q *Query) { q.Method = "bogus" }},
		{"zmean required", func(q *Query) { q.Method = "hls_full_interp" }},
		{"no densities", func(q *Query) { q.Ne = nil }},
		{"negative density", func(q *Query) { q.Ne = []float64{-1e19} }},
		{"zero temperature", func(q *Query) { q.T = 0 }},
		{"zero velocity", func(q *Query) { q.V = 0 }},
	}
	for _, c := range cases {
		q := base()
		c.mutate(&q)
		_, _, _, err := ImpactParameters(q)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !errors.Is(err, validate.ErrConfig) {
			t.Errorf("%s: error %v does not wrap ErrConfig", c.name, err)
		}
	}

	q := base()
	q.Species = [2]string{"e-", "unobtainium"}
	if _, _, _, err := ImpactParameters(q); err == nil {
		t.Error("bad species: expected error")
	}
}

func TestKnownMethod(t *testing.T) {
	for _, m := range Methods() {
		if !KnownMethod(m) {
			t.Errorf("Methods() entry %q not known", m)
		}
	}
	for _, alias := range []string{"ls", "GMS-1", "GMS-2", "GMS-3", "GMS-4", "GMS-5", "GMS-6"} {
		if !KnownMethod(alias) {
			t.Errorf("alias %q not known", alias)
		}
	}
	if KnownMethod("GMS-7") {
		t.Error("GMS-7 should be unknown")
	}
}
