package cosmographia

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestElementsDeterminism(t *testing.T) {
	for s := Miranda; s <= Oberon; s++ {
		for _, offset := range []float64{-15000.5, 0, 1.25, 7305.5, 42000} {
			e0 := gust86Elements(offset, s)
			e1 := gust86Elements(offset, s)
			if e0 != e1 {
				t.Fatalf("%s: elements at t=%f not bit-identical", s, offset)
			}
		}
	}
}

// The mean longitude at the theory epoch reduces to its phase constant plus
// the short-period terms, whose total amplitude bounds the difference (the
// linear drift vanishes at t=0).
func TestElementsAtEpoch(t *testing.T) {
	for s := Miranda; s <= Oberon; s++ {
		ser := gust86Series[s]
		var lBound, nBound float64
		for _, gt := range ser.lSin {
			lBound += math.Abs(gt.amp)
		}
		for _, gt := range ser.nCos {
			nBound += math.Abs(gt.amp)
		}
		elem := gust86Elements(0, s)
		if !floats.EqualWithinAbs(elem[1], ser.lPhase, lBound+1e-12) {
			t.Fatalf("%s: L(0)=%f but phase is %f (bound %f)", s, elem[1], ser.lPhase, lBound)
		}
		if !floats.EqualWithinAbs(elem[0], ser.n0, nBound+1e-12) {
			t.Fatalf("%s: n(0)=%f but constant is %f (bound %f)", s, elem[0], ser.n0, nBound)
		}
	}
}

// The mean longitude must accumulate lRate radians per day on top of the
// bounded periodic terms.
func TestElementsMeanLongitudeDrift(t *testing.T) {
	for s := Miranda; s <= Oberon; s++ {
		ser := gust86Series[s]
		var bound float64
		for _, gt := range ser.lSin {
			bound += math.Abs(gt.amp)
		}
		const span = 365.25
		l0 := gust86Elements(0, s)[1]
		l1 := gust86Elements(span, s)[1]
		if !floats.EqualWithinAbs(l1-l0, ser.lRate*span, 2*bound+1e-12) {
			t.Fatalf("%s: drift %f rad/yr, expected %f", s, l1-l0, ser.lRate*span)
		}
	}
}

// All five orbits are nearly circular and nearly equatorial: the element
// vectors must stay well below the elliptic limit at any time offset.
func TestElementsBounded(t *testing.T) {
	for s := Miranda; s <= Oberon; s++ {
		for offset := -40000.0; offset <= 40000.0; offset += 321.5 {
			elem := gust86Elements(offset, s)
			ecc := math.Hypot(elem[2], elem[3])
			inc := math.Hypot(elem[4], elem[5])
			if ecc >= 0.01 {
				t.Fatalf("%s at t=%f: eccentricity %f out of range", s, offset, ecc)
			}
			if inc >= 0.04 {
				t.Fatalf("%s at t=%f: inclination vector %f out of range", s, offset, inc)
			}
			if elem[0] <= 0 {
				t.Fatalf("%s at t=%f: non-positive mean motion", s, offset)
			}
		}
	}
}

// The angle families are wrapped before the trigonometric evaluation, so the
// series must stay smooth across a 2π boundary of the fastest angle.
func TestElementsWrapContinuity(t *testing.T) {
	const ε = 1e-7
	for s := Miranda; s <= Oberon; s++ {
		// Offsets where each mean-longitude angle family crosses a multiple of 2π.
		for j := 0; j < 5; j++ {
			tw := (2*math.Pi*1000 - phn[j]) / fqn[j]
			before := gust86Elements(tw-ε, s)
			after := gust86Elements(tw+ε, s)
			for k := 0; k < 6; k++ {
				// The largest slope among the elements is the mean-longitude rate.
				if !floats.EqualWithinAbs(before[k], after[k], 3*ε*fqn[0]+1e-10) {
					t.Fatalf("%s elem[%d] jumps at wrap of angle %d: %v vs %v", s, k, j, before[k], after[k])
				}
			}
		}
	}
}
