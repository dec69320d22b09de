package orbit

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestPerihelionAphelion(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		e    float64
	}{
		{"circular", 1.0, 0},
		{"mild ellipse", 2.5, 0.3},
		{"mercury-like", 0.387, 0.2056},
		{"near parabolic", 10, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := Elements{SemiMajorAU: tt.a, Eccentricity: tt.e, PeriodDays: 100}

			// Position at θ=0 must sit at perihelion distance a(1−e),
			// and at θ=π at aphelion distance a(1+e).
			peri := el.PositionAt(0).Norm()
			aph := el.PositionAt(math.Pi).Norm()

			if math.Abs(peri-tt.a*(1-tt.e)) > 1e-9 {
				t.Errorf("perihelion = %v, want %v", peri, tt.a*(1-tt.e))
			}
			if math.Abs(aph-tt.a*(1+tt.e)) > 1e-9 {
				t.Errorf("aphelion = %v, want %v", aph, tt.a*(1+tt.e))
			}
			if math.Abs(el.Perihelion()-tt.a*(1-tt.e)) > 1e-12 {
				t.Errorf("Perihelion() = %v, want %v", el.Perihelion(), tt.a*(1-tt.e))
			}
			if math.Abs(el.Aphelion()-tt.a*(1+tt.e)) > 1e-12 {
				t.Errorf("Aphelion() = %v, want %v", el.Aphelion(), tt.a*(1+tt.e))
			}
		})
	}
}

func TestCircularOrbitEquidistant(t *testing.T) {
	// Single-planet scenario: a=1 AU, e=0, period=365 days. The position at
	// θ=0 and θ=π must be equidistant from the origin.
	el := ResolveElements(fp(1.0), nil, fp(365), 0)

	d0 := el.PositionAt(0).Norm()
	dPi := el.PositionAt(math.Pi).Norm()
	if math.Abs(d0-dPi) > 1e-12 {
		t.Errorf("circular orbit distances differ: %v vs %v", d0, dPi)
	}
	if math.Abs(d0-1.0) > 1e-12 {
		t.Errorf("circular orbit radius = %v, want 1.0", d0)
	}
}

func TestPositionStaysInPlane(t *testing.T) {
	el := Elements{SemiMajorAU: 3, Eccentricity: 0.4, PeriodDays: 500}
	for theta := 0.0; theta < 2*math.Pi; theta += 0.1 {
		if p := el.PositionAt(theta); p.Y != 0 {
			t.Fatalf("Y = %v at θ=%v, orbits must stay in the shared plane", p.Y, theta)
		}
	}
}

func TestResolveElementsFallbacks(t *testing.T) {
	t.Run("axis present", func(t *testing.T) {
		el := ResolveElements(fp(2.0), fp(0.1), fp(900), 3)
		if el.SemiMajorAU != 2.0 || el.PeriodDays != 900 || el.Eccentricity != 0.1 {
			t.Errorf("got %+v", el)
		}
	})

	t.Run("axis from period", func(t *testing.T) {
		// A one-year period normalizes to 1 AU.
		el := ResolveElements(nil, nil, fp(DaysPerYear), 0)
		if math.Abs(el.SemiMajorAU-1.0) > 1e-9 {
			t.Errorf("SemiMajorAU = %v, want 1.0", el.SemiMajorAU)
		}
	})

	t.Run("period from axis", func(t *testing.T) {
		// 4 AU gives an 8-year period by Kepler's third law.
		el := ResolveElements(fp(4.0), nil, nil, 0)
		if math.Abs(el.PeriodDays-8*DaysPerYear) > 1e-6 {
			t.Errorf("PeriodDays = %v, want %v", el.PeriodDays, 8*DaysPerYear)
		}
	})

	t.Run("synthetic index spacing", func(t *testing.T) {
		prev := 0.0
		for i := 0; i < 5; i++ {
			el := ResolveElements(nil, nil, nil, i)
			if el.SemiMajorAU <= prev {
				t.Errorf("index %d: axis %v not strictly beyond previous %v", i, el.SemiMajorAU, prev)
			}
			if el.PeriodDays <= 0 {
				t.Errorf("index %d: derived period %v", i, el.PeriodDays)
			}
			prev = el.SemiMajorAU
		}
	})

	t.Run("eccentricity defaults and clamps", func(t *testing.T) {
		if el := ResolveElements(fp(1), nil, nil, 0); el.Eccentricity != 0 {
			t.Errorf("missing eccentricity = %v, want 0", el.Eccentricity)
		}
		if el := ResolveElements(fp(1), fp(0.999), nil, 0); el.Eccentricity > maxEccentricity {
			t.Errorf("eccentricity %v not clamped", el.Eccentricity)
		}
	})
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{7 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := WrapAngle(tt.in); got < 0 || got >= 2*math.Pi {
			t.Errorf("WrapAngle(%v) = %v, out of [0, 2π)", tt.in, got)
		}
	}
}

func TestTimeCompressionContinuous(t *testing.T) {
	law := DefaultSpeedLaw()

	// Sample densely across the working range (log-spaced) and verify no
	// jumps: neighboring samples must differ by a bounded ratio.
	prev := law.TimeCompression(law.NearDistancePc / 10)
	for exp := -6.0; exp <= 3.0; exp += 0.01 {
		d := math.Pow(10, exp)
		cur := law.TimeCompression(d)
		if cur < prev-1e-9 {
			t.Fatalf("compression decreased with distance at %v pc: %v -> %v", d, prev, cur)
		}
		if prev > 0 && cur/prev > 1.2 {
			t.Fatalf("compression jump at %v pc: %v -> %v", d, prev, cur)
		}
		prev = cur
	}

	// Clamped flat outside the range.
	if got := law.TimeCompression(0); got != law.NearDaysPerSec {
		t.Errorf("compression below range = %v, want %v", got, law.NearDaysPerSec)
	}
	if got := law.TimeCompression(1e6); got != law.FarDaysPerSec {
		t.Errorf("compression above range = %v, want %v", got, law.FarDaysPerSec)
	}
}

func TestAngularSpeed(t *testing.T) {
	law := DefaultSpeedLaw()

	// Longer periods orbit slower at the same camera distance.
	fast := law.AngularSpeed(10, 1)
	slow := law.AngularSpeed(1000, 1)
	if fast <= slow {
		t.Errorf("10-day orbit (%v) should outpace 1000-day orbit (%v)", fast, slow)
	}

	// Direction convention: never negative.
	for _, d := range []float64{1e-6, 1e-3, 1, 100} {
		if v := law.AngularSpeed(365, d); v <= 0 {
			t.Errorf("AngularSpeed at %v pc = %v, want > 0", d, v)
		}
	}

	// Degenerate periods hold still rather than dividing by zero.
	if v := law.AngularSpeed(0, 1); v != 0 {
		t.Errorf("AngularSpeed with zero period = %v, want 0", v)
	}
}
