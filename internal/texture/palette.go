package texture

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is the terminal renderer's texture resource: a small gradient of
// surface colors a view can shade a sphere glyph with.
type Swatch struct {
	Key    string
	Colors []colorful.Color

	disposed bool
}

// Dispose implements Resource.
func (s *Swatch) Dispose() {
	s.disposed = true
	s.Colors = nil
}

// PaletteLoader synthesizes swatch textures in-process. It stands in for a
// real asset pipeline: dedicated swatches exist for a handful of well-known
// bodies, everything else resolves through category assignment. Delay
// simulates fetch latency so residency behaves like a streamed asset.
type PaletteLoader struct {
	Delay time.Duration
}

// dedicated lists body keys with identifier-specific swatches.
var dedicated = map[string]bool{
	"earth":   true,
	"mars":    true,
	"jupiter": true,
	"saturn":  true,
	"luna":    true,
}

// Has implements Loader.
func (l *PaletteLoader) Has(key string) bool {
	return dedicated[key]
}

// Load implements Loader. Completion is delivered from a timer goroutine;
// the manager serializes cache mutation.
func (l *PaletteLoader) Load(key string, done func(Resource, error)) {
	build := func() {
		done(buildSwatch(key), nil)
	}
	if l.Delay <= 0 {
		go build()
		return
	}
	time.AfterFunc(l.Delay, build)
}

// buildSwatch derives a deterministic gradient from the asset key so the
// same body always gets the same surface colors.
func buildSwatch(key string) *Swatch {
	hue := float64(stableHash(key)%360) + 0.5
	n := 5
	colors := make([]colorful.Color, n)
	for i := 0; i < n; i++ {
		l := 0.25 + 0.5*float64(i)/float64(n-1)
		colors[i] = colorful.Hcl(math.Mod(hue+8*float64(i), 360), 0.35, l).Clamped()
	}
	return &Swatch{Key: key, Colors: colors}
}
