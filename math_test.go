package cosmographia

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

const (
	testε  = 1e-8
	angleε = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
)

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbs(a[i], b[i], testε) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff < angleε || math.Abs(diff-2*math.Pi) < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
}

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 12}
	if !floats.EqualWithinAbs(norm(v), 13, testε) {
		t.Fatalf("|v|=%f", norm(v))
	}
	u := unit(v)
	if !floats.EqualWithinAbs(norm(u), 1, testε) {
		t.Fatalf("|unit(v)|=%f", norm(u))
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of the nil vector must be the nil vector")
	}
	if !floats.EqualWithinAbs(dot(v, v), 169, testε) {
		t.Fatalf("v·v=%f", dot(v, v))
	}
}

func TestAngles(t *testing.T) {
	for i := 0.0; i < 360; i += 0.5 {
		if ok, err := anglesEqual(Deg2rad(i), Deg2rad(Rad2deg(Deg2rad(i)))); !ok {
			t.Fatalf("incorrect conversion for %3.2f: %s", i, err)
		}
	}
	if ok, _ := anglesEqual(Deg2rad(1), Deg2rad(Rad2deg(Deg2rad(-359.)))); !ok {
		t.Fatal("incorrect conversion for -359")
	}
	if !floats.EqualWithinAbs(Deg2rad(90), math.Pi/2, testε) {
		t.Fatal("90 deg is π/2")
	}
}
