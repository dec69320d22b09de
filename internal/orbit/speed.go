package orbit

import "math"

// SpeedLaw maps camera distance to a simulation rate so orbital motion is
// visually perceptible at every zoom level: close in, a days-scale orbit
// crawls believably; zoomed out, multi-year periods complete in seconds.
// The constants are empirically tuned presentation parameters, not physical
// invariants, so they live here as swappable configuration.
type SpeedLaw struct {
	// NearDistancePc and FarDistancePc bound the interpolation range.
	NearDistancePc float64 `toml:"near_distance_pc"`
	FarDistancePc  float64 `toml:"far_distance_pc"`

	// NearDaysPerSec and FarDaysPerSec are the simulated days advanced per
	// wall-clock second at the two ends of the range.
	NearDaysPerSec float64 `toml:"near_days_per_sec"`
	FarDaysPerSec  float64 `toml:"far_days_per_sec"`
}

// DefaultSpeedLaw returns the tuned defaults: a 365-day orbit takes about a
// minute when the camera sits inside the system and under a second from
// interstellar range.
func DefaultSpeedLaw() SpeedLaw {
	return SpeedLaw{
		NearDistancePc: 1e-5, // ~2 AU
		FarDistancePc:  50,
		NearDaysPerSec: 6,
		FarDaysPerSec:  600,
	}
}

// TimeCompression returns the simulated days that elapse per wall-clock
// second at the given camera distance. The law interpolates geometrically
// in log-distance with smoothstep easing, so it is continuous in distance
// and clamps flat outside [NearDistancePc, FarDistancePc], so the camera
// can move without visible jumps in orbital motion.
func (s SpeedLaw) TimeCompression(camDistPc float64) float64 {
	if camDistPc <= s.NearDistancePc {
		return s.NearDaysPerSec
	}
	if camDistPc >= s.FarDistancePc {
		return s.FarDaysPerSec
	}

	u := (math.Log(camDistPc) - math.Log(s.NearDistancePc)) /
		(math.Log(s.FarDistancePc) - math.Log(s.NearDistancePc))
	u = u * u * (3 - 2*u)

	return s.NearDaysPerSec * math.Pow(s.FarDaysPerSec/s.NearDaysPerSec, u)
}

// AngularSpeed returns the phase advance rate in radians per wall-clock
// second for an orbit of the given period at the given camera distance.
// The sign is always positive: one direction convention for all bodies.
func (s SpeedLaw) AngularSpeed(periodDays, camDistPc float64) float64 {
	if periodDays <= 0 {
		return 0
	}
	return twoPi * s.TimeCompression(camDistPc) / periodDays
}
