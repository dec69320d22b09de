package lod

import "math"

// Tracker applies the hysteresis band that gates expensive per-body state.
// The cheap tier value may change every frame, but texture residency is
// only reevaluated when the camera has moved at least MinDelta since the
// last evaluation. One tracker per body.
type Tracker struct {
	// MinDelta is the distance in parsecs the camera must move before the
	// next expensive evaluation.
	MinDelta float64

	lastDistPc float64
	primed     bool
}

// NewTracker creates a tracker with the given minimum distance delta.
func NewTracker(minDelta float64) *Tracker {
	return &Tracker{MinDelta: minDelta}
}

// Observe records a camera-to-body distance and reports whether expensive
// state should be recomputed. The first observation always fires.
func (tr *Tracker) Observe(distPc float64) bool {
	if !tr.primed {
		tr.primed = true
		tr.lastDistPc = distPc
		return true
	}
	if math.Abs(distPc-tr.lastDistPc) < tr.MinDelta {
		return false
	}
	tr.lastDistPc = distPc
	return true
}

// Reset forgets the last observation so the next one fires.
func (tr *Tracker) Reset() {
	tr.primed = false
}
