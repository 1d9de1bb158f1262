package cosmographia

import (
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// CelestialObject defines a celestial object.
type CelestialObject struct {
	Name   string
	Radius float64 // equatorial radius in km
	μ      float64 // gravitational parameter in km^3/s^2
	tilt   float64 // Axial tilt
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ
}

// Uranus is the primary of the GUST86 theory.
var Uranus = CelestialObject{"Uranus", 25559.0, 5.7939513e6, 97.77}

// Satellite identifies one of the five major Uranian satellites covered by
// GUST86, ordered by increasing distance from Uranus.
type Satellite int

// The five GUST86 satellites.
const (
	Miranda Satellite = iota
	Ariel
	Umbriel
	Titania
	Oberon
)

// satNames is indexed by Satellite.
var satNames = [5]string{"Miranda", "Ariel", "Umbriel", "Titania", "Oberon"}

// satRadii holds the mean satellite radii in km (Thomas 1988).
var satRadii = [5]float64{235.8, 578.9, 584.7, 788.9, 761.4}

// satBoundingRadii holds conservative upper bounds on the orbital distance
// in km, used by the visualization layer for culling and auto-framing.
var satBoundingRadii = [5]float64{1.4e5, 2.0e5, 2.7e5, 4.4e5, 5.9e5}

// rmu holds the per-satellite gravitational parameter of the theory in
// AU^3/day^2 (Uranus plus the satellite, as fitted by GUST86).
var rmu = [5]float64{
	1.291892353675174e-08,
	1.291910570526396e-08,
	1.291910102284198e-08,
	1.291942656265575e-08,
	1.291935967091320e-08,
}

// String implements the Stringer interface.
func (s Satellite) String() string {
	return satNames[s]
}

// Radius returns the mean radius of this satellite in km.
func (s Satellite) Radius() float64 {
	return satRadii[s]
}

// SatelliteFromString returns the satellite from its name.
func SatelliteFromString(name string) (Satellite, error) {
	switch strings.ToLower(name) {
	case "miranda":
		return Miranda, nil
	case "ariel":
		return Ariel, nil
	case "umbriel":
		return Umbriel, nil
	case "titania":
		return Titania, nil
	case "oberon":
		return Oberon, nil
	default:
		return -1, fmt.Errorf("undefined satellite '%s'", name)
	}
}
