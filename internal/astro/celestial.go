package astro

import "math"

// EquatorialToCartesian converts equatorial coordinates (RA/Dec in degrees)
// and a distance in parsecs to a Cartesian position in parsecs.
//
// The frame convention places X toward the vernal equinox (RA=0, Dec=0),
// Y toward RA=90°, and Z toward the north celestial pole. A star catalog
// entry is converted exactly once when the system is loaded.
func EquatorialToCartesian(raDeg, decDeg, distPc float64) Vec3 {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	cosD := math.Cos(dec)
	return Vec3{
		X: distPc * cosD * math.Cos(ra),
		Y: distPc * cosD * math.Sin(ra),
		Z: distPc * math.Sin(dec),
	}
}

// AngularSeparation returns the angle in radians between the directions
// from origin to two points. Returns 0 if either point coincides with origin.
func AngularSeparation(origin, a, b Vec3) float64 {
	da := a.Sub(origin).Normalized()
	db := b.Sub(origin).Normalized()
	if da.Norm() == 0 || db.Norm() == 0 {
		return 0
	}
	d := da.Dot(db)
	// Clamp to [-1, 1] to handle floating point errors
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
