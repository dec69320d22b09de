package sim

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-exoview/internal/astro"
	"github.com/litescript/ls-exoview/internal/catalog"
	"github.com/litescript/ls-exoview/internal/config"
	"github.com/litescript/ls-exoview/internal/lod"
	"github.com/litescript/ls-exoview/internal/texture"
)

func fp(v float64) *float64 { return &v }

// testSystem builds a two-planet system with a moon at a given distance.
func testSystem(distPc float64) catalog.StarSystem {
	s := catalog.StarSystem{
		Hostname:     "Testhost",
		RADeg:        0,
		DecDeg:       0,
		DistancePc:   distPc,
		TemperatureK: fp(5700),
		RadiusSolar:  fp(1),
		Bodies: []catalog.CelestialBody{
			{Name: "Testhost b", SemiMajorAxisAU: fp(1.0), Eccentricity: fp(0.0), OrbitalPeriodDays: fp(365), RadiusEarth: fp(1)},
			{Name: "Testhost c", SemiMajorAxisAU: fp(2.0), OrbitalPeriodDays: fp(1033), RadiusEarth: fp(2)},
			{Name: "Testhost b I", ParentName: "Testhost b", SemiMajorAxisAU: fp(0.0026), OrbitalPeriodDays: fp(27), RadiusEarth: fp(0.27)},
		},
	}
	s.Origin = astro.EquatorialToCartesian(s.RADeg, s.DecDeg, s.DistancePc)
	return s
}

// syncLoader resolves loads on demand, like the texture package's fake.
type syncLoader struct {
	pending map[string]func(texture.Resource, error)
	fail    bool
}

type syncResource struct{ disposed bool }

func (r *syncResource) Dispose() { r.disposed = true }

func newSyncLoader() *syncLoader {
	return &syncLoader{pending: make(map[string]func(texture.Resource, error))}
}

func (l *syncLoader) Has(key string) bool { return true }

func (l *syncLoader) Load(key string, done func(texture.Resource, error)) {
	l.pending[key] = done
}

func (l *syncLoader) resolve(key string) *syncResource {
	done, ok := l.pending[key]
	if !ok {
		return nil
	}
	delete(l.pending, key)
	if l.fail {
		done(nil, errors.New("fetch failed"))
		return nil
	}
	r := &syncResource{}
	done(r, nil)
	return r
}

func newTestEngine(systems ...catalog.StarSystem) (*Engine, *syncLoader) {
	l := newSyncLoader()
	e := New(systems, config.Default(), l, nil)
	return e, l
}

func advanceSeconds(e *Engine, start time.Time, steps int, step time.Duration) time.Time {
	t := start
	for i := 0; i < steps; i++ {
		t = t.Add(step)
		e.Advance(t)
	}
	return t
}

func TestPauseHoldsPhase(t *testing.T) {
	e, _ := newTestEngine(testSystem(10))
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: 10})

	start := time.Unix(0, 0)
	e.Advance(start)
	now := advanceSeconds(e, start, 10, time.Second)

	before, ok := e.PhaseOf("Testhost", "Testhost b")
	if !ok {
		t.Fatal("body not found")
	}
	if before == 0 {
		t.Fatal("phase did not advance while running")
	}

	// Pause, let wall time pass with frames still rendering.
	e.Pause()
	now = advanceSeconds(e, now, 20, time.Second)

	during, _ := e.PhaseOf("Testhost", "Testhost b")
	if during != before {
		t.Errorf("phase moved while paused: %v -> %v", before, during)
	}

	// Resume: motion continues from the frozen value without a jump.
	e.Resume()
	now = now.Add(30 * time.Second)
	e.Advance(now) // re-anchor tick
	atResume, _ := e.PhaseOf("Testhost", "Testhost b")
	if atResume != before {
		t.Errorf("resume jumped the phase: %v -> %v", before, atResume)
	}

	advanceSeconds(e, now, 5, time.Second)
	after, _ := e.PhaseOf("Testhost", "Testhost b")
	if after == before {
		t.Error("phase frozen after resume")
	}
}

func TestPauseAcrossSystemSwitch(t *testing.T) {
	// Pausing mid-orbit, looking at another system, and coming back must
	// resume from the exact frozen phase.
	a := testSystem(10)
	b := testSystem(20)
	b.Hostname = "Otherhost"
	e, _ := newTestEngine(a, b)
	e.SetCamera(astro.Vec3{}, a.Origin)

	start := time.Unix(0, 0)
	e.Advance(start)
	now := advanceSeconds(e, start, 10, time.Second)

	frozen, _ := e.PhaseOf("Testhost", "Testhost b")
	e.Pause()

	// Focus the other system; frames keep rendering.
	e.SetCamera(astro.Vec3{X: 19}, b.Origin)
	now = advanceSeconds(e, now, 50, time.Second)

	e.SetCamera(astro.Vec3{}, a.Origin)
	e.Resume()
	e.Advance(now.Add(time.Second))

	got, _ := e.PhaseOf("Testhost", "Testhost b")
	if frozen == 0 {
		t.Fatal("no phase accumulated before pause")
	}
	// One post-resume frame re-anchors without applying a delta.
	if got != frozen {
		t.Errorf("phase after revisit = %v, want frozen %v", got, frozen)
	}
}

func TestSiblingsShareDelta(t *testing.T) {
	// Within one frame every body must see the same elapsed delta: phase
	// ratios must match period ratios exactly.
	e, _ := newTestEngine(testSystem(10))
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: 10})

	// Short steps: neither phase may wrap past 2π or the ratio check
	// loses the accumulated turns.
	start := time.Unix(0, 0)
	e.Advance(start)
	advanceSeconds(e, start, 5, 20*time.Millisecond)

	pb, _ := e.PhaseOf("Testhost", "Testhost b")
	pc, _ := e.PhaseOf("Testhost", "Testhost c")

	// period(b)=365, period(c)=1033; both accumulated the same
	// compression-scaled time.
	want := 1033.0 / 365.0
	if math.Abs(pb/pc-want) > 1e-9 {
		t.Errorf("phase ratio = %v, want %v", pb/pc, want)
	}
}

func TestHiddenBodiesStillIntegrate(t *testing.T) {
	// Bodies far beyond every detail band keep their phase moving so they
	// resume at the correct position when revealed.
	far := testSystem(500)
	e, _ := newTestEngine(far)
	// Camera parked at the origin, looking away: the system is hidden.
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: -1})

	start := time.Unix(0, 0)
	e.Advance(start)
	frame := e.Advance(start.Add(time.Second))

	sys := frame.FindSystem("Testhost")
	if sys == nil {
		t.Fatal("system missing from frame")
	}
	if sys.Star.Tier != lod.TierHidden {
		t.Fatalf("star tier = %v, want hidden at 500 pc", sys.Star.Tier)
	}

	advanceSeconds(e, start.Add(time.Second), 10, time.Second)
	phase, _ := e.PhaseOf("Testhost", "Testhost b")
	if phase == 0 {
		t.Error("hidden body's phase did not integrate")
	}
}

func TestMoonComposition(t *testing.T) {
	e, _ := newTestEngine(testSystem(10))
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: 10})

	start := time.Unix(0, 0)
	e.Advance(start)
	frame := e.Advance(start.Add(5 * time.Second))

	sys := frame.FindSystem("Testhost")
	planet := sys.FindBody("Testhost b")
	moon := sys.FindBody("Testhost b I")
	if planet == nil || moon == nil {
		t.Fatal("bodies missing from frame")
	}
	if !moon.IsMoon {
		t.Error("moon not flagged")
	}

	// The moon stays within its own orbit radius of the planet.
	sep := moon.LocalAU.Sub(planet.LocalAU).Norm()
	if sep > 0.0026*1.06+1e-9 {
		t.Errorf("moon strayed %v AU from parent, orbit is 0.0026 AU", sep)
	}
	if sep == 0 {
		t.Error("moon coincides with parent")
	}
}

func TestTerminatorPointsAtStar(t *testing.T) {
	e, _ := newTestEngine(testSystem(10))
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: 10})

	start := time.Unix(0, 0)
	e.Advance(start)
	frame := e.Advance(start.Add(3 * time.Second))

	for _, b := range frame.FindSystem("Testhost").Bodies {
		if b.IsMoon {
			continue
		}
		// Unit length, anti-parallel to the star offset.
		if math.Abs(b.TerminatorDir.Norm()-1) > 1e-9 {
			t.Errorf("%s: terminator not unit length: %v", b.Name, b.TerminatorDir.Norm())
		}
		dot := b.TerminatorDir.Dot(b.LocalAU.Normalized())
		if math.Abs(dot+1) > 1e-9 {
			t.Errorf("%s: terminator not toward star, dot = %v", b.Name, dot)
		}
	}
}

func TestSliderChangesRadii(t *testing.T) {
	e, _ := newTestEngine(testSystem(10))
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: 10})

	start := time.Unix(0, 0)
	f0 := e.Advance(start)
	r0 := f0.FindSystem("Testhost").FindBody("Testhost b").RenderRadiusAU

	e.SetSlider(1)
	f1 := e.Advance(start.Add(time.Millisecond))
	r1 := f1.FindSystem("Testhost").FindBody("Testhost b").RenderRadiusAU

	if r1 <= r0 {
		t.Errorf("slider t=1 radius %v not above t=0 radius %v", r1, r0)
	}

	// Clamped input.
	e.SetSlider(7)
	if e.Slider() != 1 {
		t.Errorf("Slider() = %v, want clamp to 1", e.Slider())
	}

	// Star grows too, capped at a third of the innermost perihelion.
	s1 := f1.FindSystem("Testhost").Star.RenderRadiusAU
	if s1 > 1.0/3+1e-9 {
		t.Errorf("star radius %v exceeds third of innermost perihelion", s1)
	}
}

func TestTierByDistance(t *testing.T) {
	sys := testSystem(10)
	e, _ := newTestEngine(sys)

	start := time.Unix(0, 0)

	// Camera inside the system: textured tier.
	e.SetCamera(sys.Origin.Add(astro.Vec3{X: 1e-5}), sys.Origin)
	e.Advance(start)
	f := e.Advance(start.Add(time.Millisecond))
	if tier := f.FindSystem("Testhost").FindBody("Testhost b").Tier; tier != lod.TierTexturedSphere {
		t.Errorf("close-up tier = %v, want textured", tier)
	}

	// Camera a parsec out: point tier.
	e.SetCamera(sys.Origin.Add(astro.Vec3{X: 1}), sys.Origin)
	f = e.Advance(start.Add(2 * time.Millisecond))
	if tier := f.FindSystem("Testhost").FindBody("Testhost b").Tier; tier != lod.TierPoint {
		t.Errorf("distant tier = %v, want point", tier)
	}
}

func TestTextureLifecycleThroughEngine(t *testing.T) {
	sys := testSystem(10)
	e, l := newTestEngine(sys)
	start := time.Unix(0, 0)

	// Close approach: bodies become texture-eligible and loads start.
	e.SetCamera(sys.Origin.Add(astro.Vec3{X: 1e-5}), sys.Origin)
	e.Advance(start)
	if len(l.pending) == 0 {
		t.Fatal("no texture loads issued at textured tier")
	}

	key := texture.Canonicalize("Testhost b")
	res := l.resolve(key)
	if res == nil {
		t.Fatalf("no pending load for %s", key)
	}

	f := e.Advance(start.Add(time.Millisecond))
	if b := f.FindSystem("Testhost").FindBody("Testhost b"); !b.Textured {
		t.Error("texture not bound after load at textured tier")
	}

	// Retreat: the body leaves the detail band, the claim is released and
	// the asset disposed.
	e.SetCamera(sys.Origin.Add(astro.Vec3{X: 1}), sys.Origin)
	f = e.Advance(start.Add(2 * time.Millisecond))
	if b := f.FindSystem("Testhost").FindBody("Testhost b"); b.Textured {
		t.Error("texture still bound far outside the detail band")
	}
	if !res.disposed {
		t.Error("asset not disposed when the last claim left")
	}
}

func TestStaleLoadThroughEngine(t *testing.T) {
	// The load starts, then the body scrolls out of range before it
	// resolves: the result must be disposed, the body stays on fallback.
	sys := testSystem(10)
	e, l := newTestEngine(sys)
	start := time.Unix(0, 0)

	e.SetCamera(sys.Origin.Add(astro.Vec3{X: 1e-5}), sys.Origin)
	e.Advance(start)

	key := texture.Canonicalize("Testhost b")
	if _, ok := l.pending[key]; !ok {
		t.Fatalf("no pending load for %s", key)
	}

	e.SetCamera(sys.Origin.Add(astro.Vec3{X: 1}), sys.Origin)
	e.Advance(start.Add(time.Millisecond))

	res := l.resolve(key)
	if res == nil {
		t.Fatal("load did not resolve")
	}
	if !res.disposed {
		t.Error("stale texture result not disposed")
	}

	f := e.Advance(start.Add(2 * time.Millisecond))
	if b := f.FindSystem("Testhost").FindBody("Testhost b"); b.Textured {
		t.Error("stale texture bound")
	}
}

func TestNilLoaderDegradesGracefully(t *testing.T) {
	e := New([]catalog.StarSystem{testSystem(10)}, config.Default(), nil, nil)
	e.SetCamera(astro.Vec3{}, astro.Vec3{X: 10})

	f := e.Advance(time.Unix(0, 0))
	for _, b := range f.Systems[0].Bodies {
		if b.Textured {
			t.Errorf("%s textured with no loader", b.Name)
		}
	}
}

func TestFirstFrameHasZeroDelta(t *testing.T) {
	e, _ := newTestEngine(testSystem(10))
	f := e.Advance(time.Unix(100, 0))
	if f.DeltaSeconds != 0 {
		t.Errorf("first frame delta = %v, want 0", f.DeltaSeconds)
	}
	if p, _ := e.PhaseOf("Testhost", "Testhost b"); p != 0 {
		t.Errorf("phase advanced on the first frame: %v", p)
	}
}
