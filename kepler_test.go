package cosmographia

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestKeplerResidual(t *testing.T) {
	// Sweep eccentricities in [0, 0.1] and mean longitudes over several
	// revolutions; the converged eccentric longitude must satisfy the
	// generalized Kepler equation to better than 1e-12.
	for ecc := 0.0; ecc <= 0.1; ecc += 0.005 {
		for ω := 0.0; ω < 2*math.Pi; ω += math.Pi / 7 {
			ex := ecc * math.Cos(ω)
			ey := ecc * math.Sin(ω)
			for L := -4 * math.Pi; L <= 4*math.Pi; L += math.Pi / 11 {
				Le, err := solveEccentricLongitude(L, ex, ey)
				if err != nil {
					t.Fatalf("e=%f ω=%f L=%f: %s", ecc, ω, L, err)
				}
				residual := Le - L - ex*math.Sin(Le) + ey*math.Cos(Le)
				if math.Abs(residual) >= 1e-12 {
					t.Fatalf("e=%f ω=%f L=%f: residual %e", ecc, ω, L, residual)
				}
			}
		}
	}
}

func TestKeplerInvalidEccentricity(t *testing.T) {
	elem := [6]float64{1, 0, 0.8, 0.7, 0, 0}
	if _, _, err := ellipticToRectangular(1, 1, elem, 0); err != ErrInvalidEccentricity {
		t.Fatalf("expected ErrInvalidEccentricity, got %v", err)
	}
	// Unit magnitude is the boundary and is equally invalid.
	elem = [6]float64{1, 0, 1, 0, 0, 0}
	if R, _, err := ellipticToRectangular(1, 1, elem, 0); err != ErrInvalidEccentricity || R != nil {
		t.Fatalf("expected ErrInvalidEccentricity and no state, got %v %v", R, err)
	}
}

// With both the eccentricity and inclination vectors at zero the solver must
// reduce to uniform circular motion in the reference plane.
func TestKeplerCircular(t *testing.T) {
	μ := rmu[Miranda]
	elem := [6]float64{fqn[0], 1.2, 0, 0, 0, 0}
	a := math.Cbrt(μ / (elem[0] * elem[0]))
	period := 2 * math.Pi / elem[0]
	for dt := 0.0; dt <= 2*period; dt += period / 37 {
		R, V, err := ellipticToRectangularN(μ, elem, dt)
		if err != nil {
			t.Fatalf("dt=%f: %s", dt, err)
		}
		if R[2] != 0 || V[2] != 0 {
			t.Fatalf("dt=%f: motion out of the reference plane", dt)
		}
		if !floats.EqualWithinRel(norm(R), a, 1e-12) {
			t.Fatalf("dt=%f: |R|=%v, expected %v", dt, norm(R), a)
		}
		if !floats.EqualWithinRel(norm(V), a*elem[0], 1e-12) {
			t.Fatalf("dt=%f: |V|=%v, expected %v", dt, norm(V), a*elem[0])
		}
		if cosθ := dot(unit(R), unit(V)); !floats.EqualWithinAbs(cosθ, 0, 1e-12) {
			t.Fatalf("dt=%f: velocity not perpendicular to position (cos=%e)", dt, cosθ)
		}
	}
}

// The analytic velocity must match a central finite difference of the
// position to first order.
func TestKeplerVelocityAnalytic(t *testing.T) {
	μ := rmu[Umbriel]
	elem := gust86Elements(1234.5, Umbriel)
	const h = 1e-4 // days
	_, V0, err := ellipticToRectangularN(μ, elem, 0)
	if err != nil {
		t.Fatal(err)
	}
	Rm, _, _ := ellipticToRectangularN(μ, elem, -h)
	Rp, _, _ := ellipticToRectangularN(μ, elem, h)
	for i := 0; i < 3; i++ {
		fd := (Rp[i] - Rm[i]) / (2 * h)
		if !floats.EqualWithinAbs(fd, V0[i], 1e-9) {
			t.Fatalf("V[%d]=%e but finite difference gives %e", i, V0[i], fd)
		}
	}
}
