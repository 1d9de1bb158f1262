// Package cosmographia provides the orbital state computation core of a
// solar-system visualizer: analytic ephemeris theories which turn a time into
// the position and velocity of a body, uniformly expressed in the Earth mean
// equator and equinox of J2000 frame in km and km/s so that trajectory
// plotting and rendering layers never see a theory's internals.
package cosmographia

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	secondsPerDay = 86400.0
	// j2000JD is the Julian date of the J2000 epoch (TDB).
	j2000JD = 2451545.0
	// gust86EpochJD is the Julian date of the GUST86 theory epoch (TDB).
	gust86EpochJD = 2444239.5
)

// Gust86Orbit binds one Uranian satellite to the GUST86 theory. It is
// immutable after construction: repeated StateAt calls are pure and safe for
// concurrent use without locking.
type Gust86Orbit struct {
	satellite      Satellite
	boundingRadius float64
	period         time.Duration
}

// NewGust86Orbit returns the orbit of the provided satellite.
func NewGust86Orbit(s Satellite) *Gust86Orbit {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	seconds := 2 * math.Pi / fqn[s] * secondsPerDay
	period, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return &Gust86Orbit{s, satBoundingRadii[s], period}
}

// Satellite returns the satellite this orbit is bound to.
func (o Gust86Orbit) Satellite() Satellite {
	return o.satellite
}

// BoundingRadius returns a conservative upper bound on the orbital distance
// in km.
func (o Gust86Orbit) BoundingRadius() float64 {
	return o.boundingRadius
}

// Period returns the orbital period, derived from the proper mean-longitude
// frequency of the theory.
func (o Gust86Orbit) Period() time.Duration {
	return o.period
}

// String implements the Stringer interface.
func (o Gust86Orbit) String() string {
	return fmt.Sprintf("GUST86 %s orbit (P=%s)", o.satellite, o.period)
}

// StateAt returns the Uranus-centered position (km) and velocity (km/s) of
// the satellite in the Earth mean equator and equinox of J2000 frame, at the
// provided TDB seconds past J2000.
//
// On ErrKeplerNoConvergence the best available state is returned alongside
// the error and the caller decides whether to use or skip it; on
// ErrInvalidEccentricity no state is returned. The call never retries: the
// computation is deterministic, so any fallback belongs to the caller.
func (o Gust86Orbit) StateAt(tdbSec float64) (R, V []float64, err error) {
	t := tdbSec/secondsPerDay + (j2000JD - gust86EpochJD)
	elem := gust86Elements(t, o.satellite)
	r, v, err := ellipticToRectangularN(rmu[o.satellite], elem, 0)
	if r == nil {
		return nil, nil, err
	}
	// Rotate from the Uranus equatorial frame and convert AU to km and
	// AU/day to km/s.
	R = ToEMEJ2000(r)
	V = ToEMEJ2000(v)
	for i := 0; i < 3; i++ {
		R[i] *= AU
		V[i] *= AU / secondsPerDay
	}
	return R, V, err
}

// StateAtJD is StateAt for a TDB Julian date.
func (o Gust86Orbit) StateAtJD(jd float64) (R, V []float64, err error) {
	return o.StateAt((jd - j2000JD) * secondsPerDay)
}

// StateAtEpoch is StateAt for a time.Time.
func (o Gust86Orbit) StateAtEpoch(dt time.Time) (R, V []float64, err error) {
	return o.StateAtJD(julian.TimeToJD(dt))
}
