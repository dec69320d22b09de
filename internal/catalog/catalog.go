// Package catalog defines the star system data model consumed by the
// simulation engine. Records arrive from an external ingestion layer with
// one canonical entry per host star; numeric fields that may be absent in
// the source catalog are pointers, since zero is sometimes physically
// valid (eccentricity, declination) and must not be conflated with missing.
package catalog

import (
	"sort"

	"github.com/litescript/ls-exoview/internal/astro"
)

// CelestialBody is a planet or moon orbiting within a star system.
// It is constructed once when a system is loaded and immutable for the
// session; orbital phase is mutable state owned by the simulation engine.
type CelestialBody struct {
	Name string

	// Orbital elements. For a moon these are relative to its parent.
	SemiMajorAxisAU   *float64
	Eccentricity      *float64
	OrbitalPeriodDays *float64

	// Physical attributes in Earth units.
	RadiusEarth *float64
	MassEarth   *float64

	// ParentName names the planet this body orbits. Empty means the body
	// orbits the star directly.
	ParentName string
}

// IsMoon reports whether the body orbits a planet rather than the star.
func (b CelestialBody) IsMoon() bool {
	return b.ParentName != ""
}

// StarSystem is one exoplanet host star and its ordered set of bodies.
// All bodies share one gravitational center: the star at the local origin.
type StarSystem struct {
	Hostname string

	// Celestial position of the host star.
	RADeg      float64
	DecDeg     float64
	DistancePc float64

	// Stellar attributes.
	TemperatureK      *float64
	RadiusSolar       *float64
	MassSolar         *float64
	RotationPeriodDays *float64

	Bodies []CelestialBody

	// Origin is the Cartesian position of the star in parsecs, converted
	// once at load time.
	Origin astro.Vec3
}

// Float returns a pointer to v, for building optional catalog fields.
func Float(v float64) *float64 {
	return &v
}

// Value returns the pointed-to value, or fallback when p is nil.
func Value(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// ComputeOrigins populates the Cartesian origin of every system from its
// RA/Dec/distance. Call once after loading.
func ComputeOrigins(systems []StarSystem) {
	for i := range systems {
		systems[i].Origin = astro.EquatorialToCartesian(
			systems[i].RADeg, systems[i].DecDeg, systems[i].DistancePc)
	}
}

// SortBodiesByPerihelion orders planet indices from innermost to outermost
// closest approach. Moons are excluded; they occupy their parent's slot.
// Bodies with no usable semi-major axis sort by their original index, which
// matches the synthetic spacing they will be assigned.
func SortBodiesByPerihelion(bodies []CelestialBody) []int {
	idx := make([]int, 0, len(bodies))
	for i, b := range bodies {
		if !b.IsMoon() {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, oka := approxPerihelion(bodies[idx[a]])
		pb, okb := approxPerihelion(bodies[idx[b]])
		if oka && okb {
			return pa < pb
		}
		if oka != okb {
			return oka // known orbits sort before synthetic ones
		}
		return idx[a] < idx[b]
	})
	return idx
}

func approxPerihelion(b CelestialBody) (float64, bool) {
	if b.SemiMajorAxisAU == nil {
		return 0, false
	}
	e := Value(b.Eccentricity, 0)
	return *b.SemiMajorAxisAU * (1 - e), true
}
