package cosmographia

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// gust86ToEMEJ2000 rotates vectors from the Uranus equatorial frame of the
// GUST86 theory to the Earth mean equator and equinox of J2000 frame. There
// is a single constant for the whole theory; it can be derived from the node
// and inclination of the Uranian equator in gust86.f.
var gust86ToEMEJ2000 = mat64.NewDense(3, 3, []float64{
	9.753205572598290957e-01, 6.194437810676107434e-02, 2.119261772583629030e-01,
	-2.207428547845518695e-01, 2.529905336992995280e-01, 9.419492459363773150e-01,
	4.733143558215848563e-03, -9.654836528287313313e-01, 2.604206471702025216e-01,
})

// ToEMEJ2000 rotates the provided Uranus-equatorial vector into the Earth
// mean equator and equinox of J2000 frame, preserving units.
func ToEMEJ2000(v []float64) []float64 {
	return MxV33(gust86ToEMEJ2000, v)
}

// FromEMEJ2000 applies the inverse rotation of ToEMEJ2000. The rotation
// matrix is orthogonal, so the inverse is its transpose.
func FromEMEJ2000(v []float64) []float64 {
	var t mat64.Dense
	t.Clone(gust86ToEMEJ2000.T())
	return MxV33(&t, v)
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
