// Package sim drives the per-frame simulation: it advances orbital phases,
// resolves render radii and detail tiers, and manages texture residency for
// every body in every loaded star system. The engine is single-owner state,
// driven by the rendering loop's frame callback; only texture load
// completions arrive from other goroutines, and those are serialized inside
// the texture manager.
package sim

import (
	"math"
	"sort"
	"time"

	"github.com/litescript/ls-exoview/internal/astro"
	"github.com/litescript/ls-exoview/internal/catalog"
	"github.com/litescript/ls-exoview/internal/config"
	"github.com/litescript/ls-exoview/internal/logging"
	"github.com/litescript/ls-exoview/internal/lod"
	"github.com/litescript/ls-exoview/internal/orbit"
	"github.com/litescript/ls-exoview/internal/scale"
	"github.com/litescript/ls-exoview/internal/texture"
)

// defaultBodyRotationDays is the axial spin period assumed for bodies whose
// catalog entry carries none.
const defaultBodyRotationDays = 1.0

// Engine owns all mutable simulation state: one orbital phase per body,
// the pause state machine, the camera, and the scaling solutions. It is not
// safe for concurrent use; exactly one goroutine drives Advance.
type Engine struct {
	tuning   config.Tuning
	log      *logging.Logger
	selector lod.Selector
	textures *texture.Manager

	systems []*systemState

	running bool
	primed  bool
	last    time.Time

	sliderT     float64
	sliderDirty bool

	camPos    astro.Vec3
	camTarget astro.Vec3
	frustum   lod.Frustum
}

type systemState struct {
	src *catalog.StarSystem

	// bodies are ordered so parents precede their moons; each frame
	// composes moon positions on top of the parent position computed
	// earlier in the same pass.
	bodies []*bodyState

	scaling      scale.SystemScale
	starRadiusAU float64
	starRotation float64
}

type bodyState struct {
	body     catalog.CelestialBody
	elements orbit.Elements
	parent   *bodyState

	// phase is the orbital angle in radians, unbounded; wrapped on read.
	// Advanced only while the engine is running, frozen while paused.
	phase    float64
	rotation float64

	realRadiusAU   float64
	renderRadiusAU float64
	scaleIdx       int // index into scaling.Bodies; -1 for moons

	// localAU is per-frame scratch: the body's offset from the star,
	// already composed with the parent for moons.
	localAU astro.Vec3

	tracker  *lod.Tracker
	eligible bool
}

// New builds an engine over a loaded catalog. loader may be nil, in which
// case no textures ever become resident and every body renders with its
// fallback color. A nil logger discards.
func New(systems []catalog.StarSystem, tuning config.Tuning, loader texture.Loader, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	e := &Engine{
		tuning:      tuning,
		log:         log.WithPrefix("sim"),
		selector:    lod.NewSelector(tuning.Bands),
		textures:    texture.NewManager(loader, log.WithPrefix("texture")),
		running:     true,
		sliderDirty: true,
	}

	minDelta := tuning.Bands.TexturedWithinPc * tuning.HysteresisFraction
	for i := range systems {
		e.systems = append(e.systems, e.buildSystem(&systems[i], minDelta))
	}

	e.log.Info("loaded %d systems, %d bodies", len(e.systems), e.bodyCount())
	return e
}

func (e *Engine) buildSystem(src *catalog.StarSystem, minDelta float64) *systemState {
	s := &systemState{src: src}

	// Planets first, in catalog order, so synthetic index spacing is
	// stable; moons afterwards with their parent links resolved.
	byName := make(map[string]*bodyState, len(src.Bodies))
	planetIdx := 0
	for _, b := range src.Bodies {
		if b.IsMoon() {
			continue
		}
		bs := &bodyState{
			body:         b,
			elements:     orbit.ResolveElements(b.SemiMajorAxisAU, b.Eccentricity, b.OrbitalPeriodDays, planetIdx),
			realRadiusAU: scale.BodyRadiusAU(b.RadiusEarth, b.MassEarth),
			tracker:      lod.NewTracker(minDelta),
			scaleIdx:     -1,
		}
		s.bodies = append(s.bodies, bs)
		byName[b.Name] = bs
		planetIdx++
	}
	for _, b := range src.Bodies {
		if !b.IsMoon() {
			continue
		}
		parent := byName[b.ParentName]
		if parent == nil {
			// Orphaned moon: demote to a direct orbit rather than drop it.
			e.log.Warn("%s: moon %q has unknown parent %q", src.Hostname, b.Name, b.ParentName)
		}
		bs := &bodyState{
			body:         b,
			elements:     orbit.ResolveElements(b.SemiMajorAxisAU, b.Eccentricity, b.OrbitalPeriodDays, planetIdx),
			parent:       parent,
			realRadiusAU: scale.BodyRadiusAU(b.RadiusEarth, b.MassEarth),
			tracker:      lod.NewTracker(minDelta),
			scaleIdx:     -1,
		}
		s.bodies = append(s.bodies, bs)
		planetIdx++
	}

	e.solveScaling(s)
	return s
}

// solveScaling recomputes the system's scaling solution from resolved
// elements. Called at load and again if the catalog ever changes; the
// slider only re-interpolates cached results.
func (e *Engine) solveScaling(s *systemState) {
	planets := make([]*bodyState, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.parent == nil {
			planets = append(planets, b)
		}
	}
	sort.SliceStable(planets, func(i, j int) bool {
		return planets[i].elements.Perihelion() < planets[j].elements.Perihelion()
	})

	inputs := make([]scale.BodyInput, len(planets))
	for i, b := range planets {
		inputs[i] = scale.BodyInput{
			Name:         b.body.Name,
			RealRadiusAU: b.realRadiusAU,
			PerihelionAU: b.elements.Perihelion(),
		}
		b.scaleIdx = i
	}

	starReal := scale.StarRadiusAU(s.src.RadiusSolar, s.src.MassSolar)
	s.scaling = scale.ComputeSystem(starReal, inputs, e.tuning.Scaling)
}

// refreshRadii re-interpolates every rendered radius for the current slider
// value. This is the expensive step the scheduler skips on ordinary frames.
func (e *Engine) refreshRadii() {
	for _, s := range e.systems {
		s.starRadiusAU = s.scaling.StarRadiusAt(e.sliderT)
		for _, b := range s.bodies {
			if b.parent == nil {
				b.renderRadiusAU = s.scaling.BodyRadiusAt(b.scaleIdx, e.sliderT)
				continue
			}
			// Moons scale with the system factor but are additionally
			// capped against their own orbit around the parent.
			r := b.realRadiusAU * (1 + e.sliderT*(s.scaling.Factor-1))
			capAU := b.elements.Perihelion() * e.tuning.Scaling.GapFraction
			b.renderRadiusAU = math.Min(r, math.Max(capAU, b.realRadiusAU))
		}
	}
}

// Pause freezes orbital phase integration. Idempotent.
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.running = false
	e.log.Debug("paused")
}

// Resume continues integration from the frozen phases. The tick anchor is
// reset so no wall time that passed while paused is applied.
func (e *Engine) Resume() {
	if e.running {
		return
	}
	e.running = true
	e.primed = false
	e.log.Debug("resumed")
}

// TogglePause flips between Running and Paused.
func (e *Engine) TogglePause() {
	if e.running {
		e.Pause()
	} else {
		e.Resume()
	}
}

// Running reports whether phases advance on the next frame.
func (e *Engine) Running() bool {
	return e.running
}

// SetSlider sets the size-exaggeration slider, clamped to [0,1]. Radii are
// re-interpolated on the next frame.
func (e *Engine) SetSlider(t float64) {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if t != e.sliderT {
		e.sliderT = t
		e.sliderDirty = true
	}
}

// Slider returns the current slider value.
func (e *Engine) Slider() float64 {
	return e.sliderT
}

// SetCamera positions the view for distance and frustum computation.
func (e *Engine) SetCamera(pos, target astro.Vec3) {
	e.camPos = pos
	e.camTarget = target
	e.frustum = lod.NewFrustum(pos, target, e.tuning.FrustumHalfAngleDeg)
}

// Systems returns the loaded catalog records, in load order.
func (e *Engine) Systems() []*catalog.StarSystem {
	out := make([]*catalog.StarSystem, len(e.systems))
	for i, s := range e.systems {
		out[i] = s.src
	}
	return out
}

// PhaseOf returns a body's current orbital phase wrapped into [0, 2π).
func (e *Engine) PhaseOf(hostname, body string) (float64, bool) {
	for _, s := range e.systems {
		if s.src.Hostname != hostname {
			continue
		}
		for _, b := range s.bodies {
			if b.body.Name == body {
				return orbit.WrapAngle(b.phase), true
			}
		}
	}
	return 0, false
}

// Advance produces one frame. All bodies see the same elapsed delta; phase
// integration is skipped entirely while paused but positions, tiers, and
// residency are still evaluated so the view stays live. Hidden bodies keep
// integrating so they resume at the correct place when revealed.
func (e *Engine) Advance(now time.Time) Frame {
	var dt float64
	if e.primed {
		dt = now.Sub(e.last).Seconds()
		if dt < 0 {
			dt = 0
		}
	}
	e.primed = true
	e.last = now

	if !e.running {
		dt = 0
	}

	if e.sliderDirty {
		e.refreshRadii()
		e.sliderDirty = false
	}

	frame := Frame{
		At:           now,
		DeltaSeconds: dt,
		Paused:       !e.running,
		SliderT:      e.sliderT,
		Systems:      make([]SystemFrame, 0, len(e.systems)),
	}
	for _, s := range e.systems {
		frame.Systems = append(frame.Systems, e.advanceSystem(s, dt))
	}
	return frame
}

func (e *Engine) advanceSystem(s *systemState, dt float64) SystemFrame {
	origin := s.src.Origin
	starDist := e.camPos.Dist(origin)

	sf := SystemFrame{
		Hostname:         s.src.Hostname,
		OriginPc:         origin,
		CameraDistancePc: starDist,
		Star: StarFrame{
			Tier:           e.selector.Select(starDist),
			RenderRadiusAU: s.starRadiusAU,
			TemperatureK:   catalog.Value(s.src.TemperatureK, 0),
		},
		Bodies: make([]BodyFrame, 0, len(s.bodies)),
	}

	// One compression factor per system per frame: siblings must share both
	// the delta and the speed scaling for coherent relative motion.
	compression := e.tuning.SpeedLaw.TimeCompression(starDist)

	if dt > 0 {
		if rot := catalog.Value(s.src.RotationPeriodDays, 0); rot > 0 {
			s.starRotation = orbit.WrapAngle(s.starRotation + dt*compression*2*math.Pi/rot)
		}
	}
	sf.Star.RotationRad = s.starRotation

	for _, b := range s.bodies {
		sf.Bodies = append(sf.Bodies, e.advanceBody(s, b, dt, compression, origin))
	}
	return sf
}

func (e *Engine) advanceBody(s *systemState, b *bodyState, dt, compression float64, origin astro.Vec3) BodyFrame {
	if dt > 0 {
		b.phase += dt * 2 * math.Pi * compression / b.elements.PeriodDays
		b.rotation = orbit.WrapAngle(b.rotation + dt*compression*2*math.Pi/defaultBodyRotationDays)
	}

	b.localAU = b.elements.PositionAt(orbit.WrapAngle(b.phase))
	if b.parent != nil {
		// Two-level composition: the moon rides its parent's offset,
		// already computed this frame since parents come first.
		b.localAU = b.parent.localAU.Add(b.localAU)
	}

	posPc := origin.Add(b.localAU.Scale(1 / astro.AUPerParsec))
	dist := e.camPos.Dist(posPc)
	tier := e.selector.Select(dist)

	// Texture residency sits behind the hysteresis band; the cheap tier
	// value above stays frame-fresh.
	if b.tracker.Observe(dist) {
		eligible := tier == lod.TierTexturedSphere && e.frustum.Contains(posPc)
		if eligible != b.eligible {
			if eligible {
				e.textures.Acquire(b.body.Name)
			} else {
				e.textures.Release(b.body.Name)
			}
			b.eligible = eligible
		}
	}

	bf := BodyFrame{
		Name:           b.body.Name,
		IsMoon:         b.parent != nil,
		LocalAU:        b.localAU,
		PositionPc:     posPc,
		RenderRadiusAU: b.renderRadiusAU,
		PhaseRad:       orbit.WrapAngle(b.phase),
		RotationRad:    b.rotation,
		Tier:           tier,
		Features:       e.selector.FeaturesFor(tier),
		// Day/night shading needs the direction toward the star, the
		// local origin.
		TerminatorDir: b.localAU.Scale(-1).Normalized(),
	}

	if b.eligible {
		bf.TextureKey = e.textures.KeyFor(b.body.Name)
		if _, ok := e.textures.Resident(b.body.Name); ok {
			bf.Textured = true
		}
	}
	return bf
}

// Textures exposes the residency manager, mainly for inspection.
func (e *Engine) Textures() *texture.Manager {
	return e.textures
}

func (e *Engine) bodyCount() int {
	n := 0
	for _, s := range e.systems {
		n += len(s.bodies)
	}
	return n
}
