// Command ls-exoview is a terminal UI for exploring exoplanet systems:
// Keplerian orbits at adaptive time compression, distance-based detail
// tiers, and a size exaggeration slider that keeps bodies from colliding.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-exoview/internal/astro"
	"github.com/litescript/ls-exoview/internal/catalog"
	"github.com/litescript/ls-exoview/internal/config"
	"github.com/litescript/ls-exoview/internal/logging"
	"github.com/litescript/ls-exoview/internal/sim"
	"github.com/litescript/ls-exoview/internal/texture"
	"github.com/litescript/ls-exoview/internal/ui"
)

// CLI flags for headless mode
var (
	frameCount   int
	framePath    string
	sliderT      float64
	cameraDistPc float64
)

const headlessStep = 50 * time.Millisecond

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	tuningPath := flag.String("tuning", "", "Path to TOML tuning file (optional)")
	flag.IntVar(&frameCount, "frames", 0, "Advance N frames headlessly instead of starting the TUI")
	flag.StringVar(&framePath, "frame-path", "", "Export final frame as JSON to file (use - for stdout)")
	flag.Float64Var(&sliderT, "slider", 0, "Size exaggeration slider position 0..1 (headless)")
	flag.Float64Var(&cameraDistPc, "camera-dist", 5e-4, "Camera distance from the first star in parsecs (headless)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	tuning := config.Default()
	if *tuningPath != "" {
		var err error
		tuning, err = config.Load(*tuningPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	systems := catalog.DemoSystems()
	loader := &texture.PaletteLoader{Delay: 120 * time.Millisecond}
	engine := sim.New(systems, tuning, loader, logger)

	headless := frameCount > 0 || framePath != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(ctx, engine); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(engine, tuning)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless advances the simulation a fixed number of frames and exports
// the final one, for scripting and debugging without a terminal.
func runHeadless(ctx context.Context, engine *sim.Engine) error {
	systems := engine.Systems()
	if len(systems) == 0 {
		return fmt.Errorf("no systems loaded")
	}

	origin := systems[0].Origin
	engine.SetCamera(origin.Add(astro.Vec3{Y: cameraDistPc}), origin)
	engine.SetSlider(sliderT)

	n := frameCount
	if n <= 0 {
		n = 1
	}

	now := time.Now()
	frame := engine.Advance(now)
	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		now = now.Add(headlessStep)
		frame = engine.Advance(now)
	}

	if framePath == "" || framePath == "-" {
		return frame.WriteJSON(os.Stdout)
	}
	f, err := os.Create(framePath)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	defer f.Close()
	return frame.WriteJSON(f)
}
