// Package orbit implements Keplerian ellipse geometry and the time
// integration used to animate orbital motion. Positions put the star at one
// focus of the ellipse (not its center) and keep all orbits in a shared
// reference plane; true inclination is not modeled.
package orbit

import (
	"math"

	"github.com/litescript/ls-exoview/internal/astro"
)

const twoPi = 2 * math.Pi

// DaysPerYear is the number of days in a Julian year, the normalization
// used for Kepler's third law (Earth = 1 AU = 1 year).
const DaysPerYear = 365.25

// syntheticSpacingAU is the radial slot width used when a body has neither
// a semi-major axis nor an orbital period in the catalog. Bodies fall back
// to index-based spacing so each still renders at a distinct radius.
const syntheticSpacingAU = 0.5

// maxEccentricity clamps catalog eccentricity away from the parabolic
// limit, where the conic radius diverges.
const maxEccentricity = 0.99

// Elements holds fully-resolved orbital elements. Every field is usable:
// the fallback chain in ResolveElements has already been applied.
type Elements struct {
	SemiMajorAU  float64 `toml:"semi_major_au"`
	Eccentricity float64 `toml:"eccentricity"`
	PeriodDays   float64 `toml:"period_days"`
}

// ResolveElements builds usable elements from optional catalog fields.
// Missing values are substituted deterministically and never surfaced as
// errors: semi-major axis falls back to a period^(2/3) estimate (Kepler's
// third law), then to index-based spacing; the period falls back to the
// a^(3/2) inverse; eccentricity defaults to circular.
func ResolveElements(semiMajorAU, eccentricity, periodDays *float64, index int) Elements {
	var e Elements

	if eccentricity != nil && *eccentricity > 0 {
		e.Eccentricity = math.Min(*eccentricity, maxEccentricity)
	}

	switch {
	case semiMajorAU != nil && *semiMajorAU > 0:
		e.SemiMajorAU = *semiMajorAU
	case periodDays != nil && *periodDays > 0:
		e.SemiMajorAU = math.Pow(*periodDays/DaysPerYear, 2.0/3.0)
	default:
		e.SemiMajorAU = syntheticSpacingAU * float64(index+1)
	}

	if periodDays != nil && *periodDays > 0 {
		e.PeriodDays = *periodDays
	} else {
		e.PeriodDays = DaysPerYear * math.Pow(e.SemiMajorAU, 1.5)
	}

	return e
}

// PositionAt returns the Cartesian position in AU for phase angle theta,
// with the star at the occupied focus. Uses the polar conic form
// r(θ) = a(1−e²)/(1+e·cosθ); motion advances counter-clockwise when viewed
// from +Y, the fixed direction convention for every body.
func (e Elements) PositionAt(theta float64) astro.Vec3 {
	r := e.RadiusAt(theta)
	return astro.Vec3{
		X: r * math.Cos(theta),
		Y: 0,
		Z: r * math.Sin(theta),
	}
}

// RadiusAt returns the focal distance in AU at phase angle theta.
func (e Elements) RadiusAt(theta float64) float64 {
	return e.SemiMajorAU * (1 - e.Eccentricity*e.Eccentricity) /
		(1 + e.Eccentricity*math.Cos(theta))
}

// Perihelion returns the closest approach to the star in AU.
func (e Elements) Perihelion() float64 {
	return e.SemiMajorAU * (1 - e.Eccentricity)
}

// Aphelion returns the farthest distance from the star in AU.
func (e Elements) Aphelion() float64 {
	return e.SemiMajorAU * (1 + e.Eccentricity)
}

// WrapAngle reduces an unbounded phase angle into [0, 2π).
func WrapAngle(theta float64) float64 {
	wrapped := math.Mod(theta, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}
