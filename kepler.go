package cosmographia

import (
	"errors"
	"math"
)

const (
	// keplerε is the convergence tolerance on the eccentric-longitude
	// correction, in radians.
	keplerε = 1e-14
	// maxKeplerIter bounds the Newton iteration. The iteration converges in
	// a handful of steps for any elliptic orbit; the cap only guards against
	// pathological element sets.
	maxKeplerIter = 50
)

var (
	// ErrKeplerNoConvergence is returned when the Newton iteration on the
	// generalized Kepler equation exceeds maxKeplerIter. The state computed
	// from the best available eccentric longitude is still returned.
	ErrKeplerNoConvergence = errors.New("kepler equation did not converge")
	// ErrInvalidEccentricity is returned when the eccentricity-vector
	// magnitude is not strictly below one, which violates the elliptic
	// assumption of the solver.
	ErrInvalidEccentricity = errors.New("eccentricity vector magnitude not below 1")
)

// solveEccentricLongitude solves the generalized Kepler equation
//
//	L = Le - ex*sin(Le) + ey*cos(Le)
//
// for the eccentric longitude Le by Newton iteration, starting from the
// first step of the trivial fixed-point iteration. For eccentricities below
// one the derivative 1 - ex*cos(Le) - ey*sin(Le) is strictly positive.
func solveEccentricLongitude(L, ex, ey float64) (float64, error) {
	Le := L - ex*math.Sin(L) + ey*math.Cos(L)
	for i := 0; i < maxKeplerIter; i++ {
		sLe, cLe := math.Sincos(Le)
		dLe := (L - Le + ex*sLe - ey*cLe) / (1.0 - ex*cLe - ey*sLe)
		Le += dLe
		if math.Abs(dLe) <= keplerε {
			return Le, nil
		}
	}
	return Le, ErrKeplerNoConvergence
}

// ellipticToRectangular converts the osculating elements {n, L, ex, ey, ix, iy}
// to a rectangular state at dt time units past the elements' instant, for an
// orbit of semi-major axis a and mean motion n. Position is returned in the
// unit of a and velocity in that unit per the inverse time unit of n, both in
// the equatorial frame of the primary. The velocity is analytic, not a finite
// difference.
func ellipticToRectangular(a, n float64, elem [6]float64, dt float64) (R, V []float64, err error) {
	ex, ey := elem[2], elem[3]
	if ex*ex+ey*ey >= 1.0 {
		return nil, nil, ErrInvalidEccentricity
	}
	L := math.Mod(elem[1]+n*dt, 2*math.Pi)
	Le, err := solveEccentricLongitude(L, ex, ey)
	sLe, cLe := math.Sincos(Le)

	dlf := -ex*sLe + ey*cLe
	φ := math.Sqrt(1.0 - ex*ex - ey*ey)
	ψ := 1.0 / (1.0 + φ)

	// In-plane position and velocity.
	x1 := a * (cLe - ex - ψ*dlf*ey)
	y1 := a * (sLe - ey + ψ*dlf*ex)
	rsam1 := -ex*cLe - ey*sLe
	h := a * n / (1.0 + rsam1)
	vx1 := h * (-sLe - ψ*rsam1*ey)
	vy1 := h * (cLe + ψ*rsam1*ex)

	// Rotate by the inclination vector (ix, iy) into the equatorial frame.
	ix, iy := elem[4], elem[5]
	ixq, iyq := ix*ix, iy*iy
	dwho := 2.0 * math.Sqrt(1.0-ixq-iyq)
	rtp := 1.0 - 2.0*iyq
	rtq := 1.0 - 2.0*ixq
	rdg := 2.0 * iy * ix

	R = []float64{
		x1*rtp + y1*rdg,
		x1*rdg + y1*rtq,
		(-x1*iy + y1*ix) * dwho,
	}
	V = []float64{
		vx1*rtp + vy1*rdg,
		vx1*rdg + vy1*rtq,
		(-vx1*iy + vy1*ix) * dwho,
	}
	return R, V, err
}

// ellipticToRectangularN is the variant used by theories which provide the
// mean motion instead of the semi-major axis: a is recovered from the
// gravitational parameter μ via a = (μ/n²)^(1/3).
func ellipticToRectangularN(μ float64, elem [6]float64, dt float64) ([]float64, []float64, error) {
	n := elem[0]
	a := math.Cbrt(μ / (n * n))
	return ellipticToRectangular(a, n, elem, dt)
}
