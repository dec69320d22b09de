// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Texture residency with shared category assets, headless frame export
// 0.3.0 - Detail tiers with hysteresis, view frustum culling, TOML tuning file
// 0.2.0 - Size exaggeration slider, collision-free scaling solver, moon orbits
// 0.1.0 - Initial release: Keplerian orbit engine, demo catalog, TUI system view
