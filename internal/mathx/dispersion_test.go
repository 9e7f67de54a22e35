package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDawson(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0.1, 0.099335992380952379},
		{0.5, 0.42443642224791056},
		{1, 0.53807945996730677},
		{2, 0.30134040851017435},
		{4, 0.12934797609184603},
		{10, 0.050253864609979007},
	}
	for _, c := range cases {
		got := Dawson(c.x)
		if !scalar.EqualWithinRel(got, c.want, 1e-12) {
			t.Errorf("Dawson(%g) = %.17g, want %.17g", c.x, got, c.want)
		}
	}
}

func TestDawsonOdd(t *testing.T) {
	for _, x := range []float64{0.1, 0.7, 1.5, 3, 8} {
		if got, want := Dawson(-x), -Dawson(x); got != want {
			t.Errorf("Dawson(-%g) = %g, want %g", x, got, want)
		}
	}
	if Dawson(0) != 0 {
		t.Errorf("Dawson(0) = %g, want 0", Dawson(0))
	}
}

func TestPlasmaDispersion(t *testing.T) {
	cases := []struct {
		x          float64
		real, imag float64
	}{
		{0, 0, 1.7724538509055159},
		{1, -1.0761589199346135, 0.6520493321732922},
		{2, -0.6026808170203487, 0.032463624680131718},
	}
	for _, c := range cases {
		z := PlasmaDispersion(c.x)
		if !scalar.EqualWithinAbsOrRel(real(z), c.real, 1e-14, 1e-12) {
			t.Errorf("Re Z(%g) = %.17g, want %.17g", c.x, real(z), c.real)
		}
		if !scalar.EqualWithinRel(imag(z), c.imag, 1e-12) {
			t.Errorf("Im Z(%g) = %.17g, want %.17g", c.x, imag(z), c.imag)
		}
	}
}

func TestPlasmaDispersionDeriv(t *testing.T) {
	zp := PlasmaDispersionDeriv(0)
	if !scalar.EqualWithinRel(real(zp), -2, 1e-14) || imag(zp) != 0 {
		t.Errorf("Z'(0) = %v, want -2", zp)
	}

	zp = PlasmaDispersionDeriv(1)
	if !scalar.EqualWithinRel(real(zp), 0.15231783986922709, 1e-12) {
		t.Errorf("Re Z'(1) = %.17g, want 0.15231783986922709", real(zp))
	}
	if !scalar.EqualWithinRel(imag(zp), -1.3040986643465844, 1e-12) {
		t.Errorf("Im Z'(1) = %.17g, want -1.3040986643465844", imag(zp))
	}
}

func TestPlasmaDispersionLargeArgument(t *testing.T) {
	// far in the tail the imaginary part underflows cleanly to zero
	z := PlasmaDispersion(1e4)
	if imag(z) != 0 {
		t.Errorf("Im Z(1e4) = %g, want 0", imag(z))
	}
	if math.IsNaN(real(z)) {
		t.Error("Re Z(1e4) is NaN")
	}
	// asymptotically Z(x) ~ -1/x
	if !scalar.EqualWithinRel(real(z), -1e-4, 1e-6) {
		t.Errorf("Re Z(1e4) = %g, want about -1e-4", real(z))
	}
}
