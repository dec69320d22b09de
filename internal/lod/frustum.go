package lod

import (
	"math"

	"github.com/litescript/ls-exoview/internal/astro"
)

// Frustum is a cone approximation of the camera's visible volume, used to
// decide whether a body is on-screen for texture residency.
type Frustum struct {
	Origin       astro.Vec3
	Forward      astro.Vec3 // unit vector
	CosHalfAngle float64
}

// NewFrustum builds a frustum looking from origin toward target with the
// given half-angle in degrees. A degenerate look direction yields a frustum
// that contains everything.
func NewFrustum(origin, target astro.Vec3, halfAngleDeg float64) Frustum {
	fwd := target.Sub(origin).Normalized()
	if fwd == (astro.Vec3{}) {
		return Frustum{Origin: origin, CosHalfAngle: -1}
	}
	return Frustum{
		Origin:       origin,
		Forward:      fwd,
		CosHalfAngle: math.Cos(halfAngleDeg * math.Pi / 180),
	}
}

// Contains reports whether a point lies inside the view cone. The camera
// position itself always counts as visible.
func (f Frustum) Contains(p astro.Vec3) bool {
	dir := p.Sub(f.Origin)
	if dir.Norm() == 0 {
		return true
	}
	return dir.Normalized().Dot(f.Forward) >= f.CosHalfAngle
}
