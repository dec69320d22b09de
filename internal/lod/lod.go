// Package lod selects rendering detail tiers from camera distance. Tier
// assignment is cheap and recomputed every frame; a hysteresis tracker
// gates the expensive state (texture residency) behind a minimum distance
// delta so small camera jitter cannot thrash it.
package lod

import "fmt"

// Tier is the discrete detail level assigned to a body each frame.
type Tier int

const (
	// TierHidden culls the body entirely.
	TierHidden Tier = iota
	// TierPoint renders a single point or glyph.
	TierPoint
	// TierSimpleSphere renders a low-poly flat-color sphere.
	TierSimpleSphere
	// TierTexturedSphere renders full geometry with a surface texture and
	// secondary features (rings, moons, labels).
	TierTexturedSphere
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierHidden:
		return "hidden"
	case TierPoint:
		return "point"
	case TierSimpleSphere:
		return "simple"
	case TierTexturedSphere:
		return "textured"
	default:
		return "unknown"
	}
}

// Features describes what a tier renders.
type Features struct {
	SphereSegments int  // geometry resolution; 0 = no sphere
	Textured       bool // surface texture eligible
	Secondary      bool // rings, moons, labels
}

// Bands holds the distance thresholds, in parsecs, ordered from near to
// far: within TexturedWithinPc the body gets full detail, within
// SimpleWithinPc a flat-color sphere, within PointWithinPc a point, and
// beyond that it is hidden.
type Bands struct {
	TexturedWithinPc float64 `toml:"textured_within_pc"`
	SimpleWithinPc   float64 `toml:"simple_within_pc"`
	PointWithinPc    float64 `toml:"point_within_pc"`
}

// DefaultBands returns thresholds tuned for the parsec-scale star field:
// full detail only when the camera has dived into a system.
func DefaultBands() Bands {
	return Bands{
		TexturedWithinPc: 0.001, // ~200 AU
		SimpleWithinPc:   0.05,
		PointWithinPc:    60,
	}
}

// Validate checks that the thresholds are positive and strictly ordered.
func (b Bands) Validate() error {
	if b.TexturedWithinPc <= 0 {
		return fmt.Errorf("textured threshold must be positive, got %v", b.TexturedWithinPc)
	}
	if b.SimpleWithinPc <= b.TexturedWithinPc {
		return fmt.Errorf("simple threshold %v must exceed textured threshold %v",
			b.SimpleWithinPc, b.TexturedWithinPc)
	}
	if b.PointWithinPc <= b.SimpleWithinPc {
		return fmt.Errorf("point threshold %v must exceed simple threshold %v",
			b.PointWithinPc, b.SimpleWithinPc)
	}
	return nil
}

// Selector maps camera-to-body distance to a Tier.
type Selector struct {
	bands Bands
}

// NewSelector builds a selector; invalid bands fall back to the defaults.
func NewSelector(bands Bands) Selector {
	if bands.Validate() != nil {
		bands = DefaultBands()
	}
	return Selector{bands: bands}
}

// Select returns the tier for a camera distance in parsecs. The mapping is
// monotonic: a larger distance never yields more detail.
func (s Selector) Select(distPc float64) Tier {
	switch {
	case distPc <= s.bands.TexturedWithinPc:
		return TierTexturedSphere
	case distPc <= s.bands.SimpleWithinPc:
		return TierSimpleSphere
	case distPc <= s.bands.PointWithinPc:
		return TierPoint
	default:
		return TierHidden
	}
}

// FeaturesFor returns the rendering features of a tier.
func (s Selector) FeaturesFor(t Tier) Features {
	switch t {
	case TierTexturedSphere:
		return Features{SphereSegments: 64, Textured: true, Secondary: true}
	case TierSimpleSphere:
		return Features{SphereSegments: 16}
	case TierPoint:
		return Features{SphereSegments: 4}
	default:
		return Features{}
	}
}

// Bands returns the selector's thresholds.
func (s Selector) Bands() Bands {
	return s.bands
}
