// Package astro provides vector math and celestial coordinate conversions.
package astro

import "math"

// AUKm is the Astronomical Unit in kilometers.
const AUKm = 149597870.7

// AUPerParsec is the number of Astronomical Units in one parsec.
const AUPerParsec = 206264.806

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Dist returns the Euclidean distance between two points.
func (v Vec3) Dist(u Vec3) float64 {
	return v.Sub(u).Norm()
}

// AUToParsec converts Astronomical Units to parsecs.
func AUToParsec(au float64) float64 {
	return au / AUPerParsec
}

// ParsecToAU converts parsecs to Astronomical Units.
func ParsecToAU(pc float64) float64 {
	return pc * AUPerParsec
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AUKm
}

// AUToKm converts Astronomical Units to kilometers.
func AUToKm(au float64) float64 {
	return au * AUKm
}
