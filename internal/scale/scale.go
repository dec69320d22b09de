// Package scale derives render radii for stars and planets. Bodies keep
// physically proportioned sizes at realistic zoom and grow together under a
// user exaggeration slider, bounded so no body ever occupies more than a
// fixed fraction of the radial gap to its neighboring orbit.
package scale

import "math"

// EarthRadiusAU is one Earth radius expressed in AU.
const EarthRadiusAU = 4.26352e-5

// SolarRadiusAU is one solar radius expressed in AU.
const SolarRadiusAU = 4.65047e-3

// Params holds the scaling policy knobs. Teams render at GapFraction of the
// limiting gap at most; DefaultParams matches the shipped tuning.
type Params struct {
	// GapFraction is the share of the limiting neighbor gap a body may
	// occupy at full exaggeration.
	GapFraction float64 `toml:"gap_fraction"`

	// MaxFactor is the absolute ceiling on the system-wide scale factor,
	// guarding against degenerate blow-up when gaps are huge.
	MaxFactor float64 `toml:"max_factor"`

	// SmallSystemFactor is the fixed generous cap used when a system has
	// fewer than two planets and the neighbor-gap computation is skipped.
	SmallSystemFactor float64 `toml:"small_system_factor"`
}

// DefaultParams returns the standard policy: one third of the limiting gap,
// a 1,000,000× ceiling, and a 10,000× cap for lone-planet systems.
func DefaultParams() Params {
	return Params{
		GapFraction:       1.0 / 3.0,
		MaxFactor:         1_000_000,
		SmallSystemFactor: 10_000,
	}
}

// BodyRadiusAU resolves a body's real radius in AU from optional physical
// attributes in Earth units: measured radius first, else a cube-root mass
// estimate assuming Earth-like density, else one Earth radius.
func BodyRadiusAU(radiusEarth, massEarth *float64) float64 {
	if radiusEarth != nil && *radiusEarth > 0 {
		return *radiusEarth * EarthRadiusAU
	}
	if massEarth != nil && *massEarth > 0 {
		return math.Cbrt(*massEarth) * EarthRadiusAU
	}
	return EarthRadiusAU
}

// StarRadiusAU resolves a star's real radius in AU from optional solar
// units: measured radius first, else a cube-root mass estimate, else one
// solar radius.
func StarRadiusAU(radiusSolar, massSolar *float64) float64 {
	if radiusSolar != nil && *radiusSolar > 0 {
		return *radiusSolar * SolarRadiusAU
	}
	if massSolar != nil && *massSolar > 0 {
		return math.Cbrt(*massSolar) * SolarRadiusAU
	}
	return SolarRadiusAU
}

// BodyInput describes one planet for the gap computation. Inputs must be
// pre-sorted by perihelion, innermost first.
type BodyInput struct {
	Name         string
	RealRadiusAU float64
	PerihelionAU float64
}

// BodyScale is the per-body result.
type BodyScale struct {
	Name         string
	RealRadiusAU float64
	PerihelionAU float64

	// MaxFactor is this body's individual scale-up bound from its limiting
	// neighbor gap, before the system-wide minimum is applied.
	MaxFactor float64
}

// SystemScale holds the scaling solution for one star system. All bodies
// scale together by the same factor so relative sizes are preserved.
type SystemScale struct {
	Bodies []BodyScale

	// Factor is the system-wide maximum scale factor: the minimum of the
	// per-body maxima, clamped to [1, Params.MaxFactor].
	Factor float64

	StarRealRadiusAU float64
	// StarMaxRadiusAU caps the star independently at GapFraction of its
	// closest planet's perihelion.
	StarMaxRadiusAU float64
}

// ComputeSystem solves the scaling for a system. bodies must be sorted by
// perihelion ascending and must not contain moons (a moon inherits its
// parent's factor). starRadiusAU is the star's real radius.
func ComputeSystem(starRadiusAU float64, bodies []BodyInput, p Params) SystemScale {
	s := SystemScale{
		Bodies:           make([]BodyScale, len(bodies)),
		StarRealRadiusAU: starRadiusAU,
	}

	if len(bodies) < 2 {
		// Too few orbits for a meaningful gap; fall back to the fixed cap.
		s.Factor = math.Min(p.SmallSystemFactor, p.MaxFactor)
		for i, b := range bodies {
			s.Bodies[i] = BodyScale{
				Name:         b.Name,
				RealRadiusAU: b.RealRadiusAU,
				PerihelionAU: b.PerihelionAU,
				MaxFactor:    s.Factor,
			}
		}
		s.StarMaxRadiusAU = starCap(starRadiusAU, bodies, p)
		return s
	}

	systemFactor := p.MaxFactor
	for i, b := range bodies {
		// The inner gap of the first body reaches down to the star at
		// distance zero; the outer gap of the last body is unbounded.
		innerGap := b.PerihelionAU
		if i > 0 {
			innerGap = b.PerihelionAU - bodies[i-1].PerihelionAU
		}
		outerGap := math.Inf(1)
		if i < len(bodies)-1 {
			outerGap = bodies[i+1].PerihelionAU - b.PerihelionAU
		}

		limiting := math.Min(innerGap, outerGap)

		maxFactor := p.MaxFactor
		if b.RealRadiusAU > 0 {
			maxFactor = (limiting * p.GapFraction) / b.RealRadiusAU
		}
		// Never below 1: coincident orbits must not shrink bodies under
		// their real size, the ceiling handles the rest.
		maxFactor = clamp(maxFactor, 1, p.MaxFactor)

		s.Bodies[i] = BodyScale{
			Name:         b.Name,
			RealRadiusAU: b.RealRadiusAU,
			PerihelionAU: b.PerihelionAU,
			MaxFactor:    maxFactor,
		}

		if maxFactor < systemFactor {
			systemFactor = maxFactor
		}
	}

	s.Factor = systemFactor
	s.StarMaxRadiusAU = starCap(starRadiusAU, bodies, p)
	return s
}

func starCap(starRadiusAU float64, bodies []BodyInput, p Params) float64 {
	if len(bodies) == 0 {
		return starRadiusAU * math.Min(p.SmallSystemFactor, p.MaxFactor)
	}
	capAU := bodies[0].PerihelionAU * p.GapFraction
	// The cap never forces the star below its real size.
	return math.Max(capAU, starRadiusAU)
}

// BodyRadiusAt interpolates body i's rendered radius for slider value
// t ∈ [0,1]: real physical size at t=0, real size times the system factor
// at t=1. Monotonic in t.
func (s SystemScale) BodyRadiusAt(i int, t float64) float64 {
	t = clamp(t, 0, 1)
	b := s.Bodies[i]
	return b.RealRadiusAU * (1 + t*(s.Factor-1))
}

// StarRadiusAt interpolates the star's rendered radius for slider value t,
// bounded by its independent cap.
func (s SystemScale) StarRadiusAt(t float64) float64 {
	t = clamp(t, 0, 1)
	return s.StarRealRadiusAU + t*(s.StarMaxRadiusAU-s.StarRealRadiusAU)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
