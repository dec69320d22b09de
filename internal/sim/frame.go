package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/litescript/ls-exoview/internal/astro"
	"github.com/litescript/ls-exoview/internal/lod"
)

// Frame is the engine's per-tick output: one record per body that the
// rendering layer consumes to draw geometry and overlays.
type Frame struct {
	At           time.Time     `json:"at"`
	DeltaSeconds float64       `json:"delta_seconds"`
	Paused       bool          `json:"paused"`
	SliderT      float64       `json:"slider_t"`
	Systems      []SystemFrame `json:"systems"`
}

// SystemFrame is one star system's slice of a frame.
type SystemFrame struct {
	Hostname         string      `json:"hostname"`
	OriginPc         astro.Vec3  `json:"origin_pc"`
	CameraDistancePc float64     `json:"camera_distance_pc"`
	Star             StarFrame   `json:"star"`
	Bodies           []BodyFrame `json:"bodies"`
}

// StarFrame describes the host star's render state.
type StarFrame struct {
	Tier           lod.Tier `json:"tier"`
	RenderRadiusAU float64  `json:"render_radius_au"`
	RotationRad    float64  `json:"rotation_rad"`
	TemperatureK   float64  `json:"temperature_k"`
}

// BodyFrame describes one planet or moon's render state for this frame.
type BodyFrame struct {
	Name   string `json:"name"`
	IsMoon bool   `json:"is_moon"`

	// LocalAU is the offset from the star in AU; PositionPc the absolute
	// position in parsecs.
	LocalAU    astro.Vec3 `json:"local_au"`
	PositionPc astro.Vec3 `json:"position_pc"`

	RenderRadiusAU float64 `json:"render_radius_au"`
	PhaseRad       float64 `json:"phase_rad"`
	RotationRad    float64 `json:"rotation_rad"`

	Tier     lod.Tier     `json:"tier"`
	Features lod.Features `json:"features"`

	// TerminatorDir is the unit vector from the body toward its star, for
	// day/night shading.
	TerminatorDir astro.Vec3 `json:"terminator_dir"`

	// TextureKey is set while the body holds a residency claim; Textured
	// reports whether the asset is actually bound. A false value means the
	// renderer uses the fallback flat color.
	TextureKey string `json:"texture_key,omitempty"`
	Textured   bool   `json:"textured"`
}

// FindSystem returns the frame slice for a hostname, or nil.
func (f Frame) FindSystem(hostname string) *SystemFrame {
	for i := range f.Systems {
		if f.Systems[i].Hostname == hostname {
			return &f.Systems[i]
		}
	}
	return nil
}

// FindBody returns a body's frame record, or nil.
func (s *SystemFrame) FindBody(name string) *BodyFrame {
	for i := range s.Bodies {
		if s.Bodies[i].Name == name {
			return &s.Bodies[i]
		}
	}
	return nil
}

// WriteJSON writes the frame as indented JSON, for the headless snapshot
// mode and external tooling.
func (f Frame) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}
