// Package config collects the engine's tuning parameters. The speed law
// exponents, detail thresholds, and scaling caps are presentation tuning,
// not physical invariants, so they are configuration with shipped defaults
// and an optional TOML override file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/litescript/ls-exoview/internal/lod"
	"github.com/litescript/ls-exoview/internal/orbit"
	"github.com/litescript/ls-exoview/internal/scale"
)

// Tuning is the full set of engine tuning parameters.
type Tuning struct {
	SpeedLaw orbit.SpeedLaw `toml:"speed_law"`
	Bands    lod.Bands      `toml:"lod_bands"`
	Scaling  scale.Params   `toml:"scaling"`

	// HysteresisFraction sets the minimum camera move, as a fraction of the
	// textured-tier threshold, before texture residency is reevaluated.
	HysteresisFraction float64 `toml:"hysteresis_fraction"`

	// FrustumHalfAngleDeg is the half-angle of the view cone used for the
	// texture-eligibility frustum test.
	FrustumHalfAngleDeg float64 `toml:"frustum_half_angle_deg"`
}

// Default returns the shipped tuning.
func Default() Tuning {
	return Tuning{
		SpeedLaw:            orbit.DefaultSpeedLaw(),
		Bands:               lod.DefaultBands(),
		Scaling:             scale.DefaultParams(),
		HysteresisFraction:  0.1,
		FrustumHalfAngleDeg: 60,
	}
}

// Load reads a TOML override file on top of the defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate checks the tuning for values the engine cannot run with.
func (t Tuning) Validate() error {
	if err := t.Bands.Validate(); err != nil {
		return err
	}
	if t.SpeedLaw.NearDistancePc <= 0 || t.SpeedLaw.FarDistancePc <= t.SpeedLaw.NearDistancePc {
		return fmt.Errorf("speed law distances must satisfy 0 < near < far, got near=%v far=%v",
			t.SpeedLaw.NearDistancePc, t.SpeedLaw.FarDistancePc)
	}
	if t.SpeedLaw.NearDaysPerSec <= 0 || t.SpeedLaw.FarDaysPerSec <= 0 {
		return fmt.Errorf("speed law rates must be positive")
	}
	if t.Scaling.GapFraction <= 0 || t.Scaling.GapFraction >= 1 {
		return fmt.Errorf("gap fraction must be in (0,1), got %v", t.Scaling.GapFraction)
	}
	if t.Scaling.MaxFactor < 1 {
		return fmt.Errorf("max scale factor must be at least 1, got %v", t.Scaling.MaxFactor)
	}
	if t.HysteresisFraction <= 0 || t.HysteresisFraction >= 1 {
		return fmt.Errorf("hysteresis fraction must be in (0,1), got %v", t.HysteresisFraction)
	}
	if t.FrustumHalfAngleDeg <= 0 || t.FrustumHalfAngleDeg > 180 {
		return fmt.Errorf("frustum half angle must be in (0,180], got %v", t.FrustumHalfAngleDeg)
	}
	return nil
}
