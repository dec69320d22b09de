// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-exoview/internal/astro"
	"github.com/litescript/ls-exoview/internal/config"
	"github.com/litescript/ls-exoview/internal/sim"
	"github.com/litescript/ls-exoview/internal/version"
)

// frameInterval paces the simulation: one engine Advance per tick.
const frameInterval = 50 * time.Millisecond

// sliderStep is the per-keypress change of the size exaggeration slider.
const sliderStep = 0.05

// FrameTickMsg drives one simulation frame.
type FrameTickMsg time.Time

// zoomDistancesPc are the discrete camera distances from the focused star.
// The close end sits inside the textured detail band, the far end outside
// every band, so stepping through them exercises the full tier ladder.
var zoomDistancesPc = []float64{5e-5, 2e-4, 5e-4, 2e-3, 1e-2, 5e-2, 0.5, 5, 50}

// Model is the root Bubble Tea model. It owns the engine: every frame tick
// positions the camera, advances the simulation once, and hands the focused
// system's slice to the system view.
type Model struct {
	engine *sim.Engine
	tuning config.Tuning
	keys   KeyMap

	width  int
	height int
	ready  bool

	frame    sim.Frame
	focusIdx int // focused system index
	zoomIdx  int

	system  SystemViewModel
	spinner spinner.Model
}

// New creates the root UI model around an engine.
func New(engine *sim.Engine, tuning config.Tuning) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	m := Model{
		engine:  engine,
		tuning:  tuning,
		keys:    DefaultKeyMap(),
		zoomIdx: 1,
		system:  NewSystemViewModel(engine.Systems()),
		spinner: sp,
	}
	m.applyCamera()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameTickCmd(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			m.engine.TogglePause()

		case key.Matches(msg, m.keys.NextSystem):
			m.cycleSystem(1)

		case key.Matches(msg, m.keys.PrevSystem):
			m.cycleSystem(-1)

		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoomIdx > 0 {
				m.zoomIdx--
				m.applyCamera()
			}

		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoomIdx < len(zoomDistancesPc)-1 {
				m.zoomIdx++
				m.applyCamera()
			}

		case key.Matches(msg, m.keys.SliderUp):
			m.engine.SetSlider(m.engine.Slider() + sliderStep)

		case key.Matches(msg, m.keys.SliderDown):
			m.engine.SetSlider(m.engine.Slider() - sliderStep)

		case key.Matches(msg, m.keys.Labels):
			m.system = m.system.CycleLabels()

		case key.Matches(msg, m.keys.Reset):
			m.zoomIdx = 1
			m.engine.SetSlider(0)
			m.applyCamera()

		default:
			var cmd tea.Cmd
			m.system, cmd = m.system.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		// Logo takes ~10 lines, footer ~2.
		m.system = m.system.SetSize(msg.Width, msg.Height-13)

	case FrameTickMsg:
		cmds = append(cmds, frameTickCmd())
		m.frame = m.engine.Advance(time.Time(msg))
		if sys := m.focusedSystemFrame(); sys != nil {
			m.system = m.system.UpdateFrame(*sys)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.system, cmd = m.system.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) cycleSystem(step int) {
	n := len(m.engine.Systems())
	if n == 0 {
		return
	}
	m.focusIdx = ((m.focusIdx+step)%n + n) % n
	m.applyCamera()
}

// applyCamera parks the camera above the focused star's orbital plane at
// the current zoom distance, looking straight down at the star.
func (m *Model) applyCamera() {
	systems := m.engine.Systems()
	if len(systems) == 0 {
		return
	}
	origin := systems[m.focusIdx].Origin
	dist := zoomDistancesPc[m.zoomIdx]
	m.engine.SetCamera(origin.Add(astro.Vec3{Y: dist}), origin)
}

func (m *Model) focusedSystemFrame() *sim.SystemFrame {
	systems := m.engine.Systems()
	if len(systems) == 0 || len(m.frame.Systems) == 0 {
		return nil
	}
	return m.frame.FindSystem(systems[m.focusIdx].Hostname)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.system.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderSystemTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ███████╗██╗  ██╗ ██████╗ ██╗   ██╗██╗███████╗██╗    ██╗`,
		`  ██╔════╝╚██╗██╔╝██╔═══██╗██║   ██║██║██╔════╝██║    ██║`,
		`  █████╗   ╚███╔╝ ██║   ██║██║   ██║██║█████╗  ██║ █╗ ██║`,
		`  ██╔══╝   ██╔██╗ ██║   ██║╚██╗ ██╔╝██║██╔══╝  ██║███╗██║`,
		`  ███████╗██╔╝ ██╗╚██████╔╝ ╚████╔╝ ██║███████╗╚███╔███╔╝`,
		`  ╚══════╝╚═╝  ╚═╝ ╚═════╝   ╚═══╝  ╚═╝╚══════╝ ╚══╝╚══╝ `,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Exoplanet Systems · Interactive Orbit Visualization"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  (c) 2026 litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) renderSystemTabs() string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, s := range m.engine.Systems() {
		if i == m.focusIdx {
			parts = append(parts, activeStyle.Render("▶ "+s.Hostname))
		} else {
			parts = append(parts, dimStyle.Render("  "+s.Hostname))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	var status string
	if m.engine.Running() {
		rate := m.tuning.SpeedLaw.TimeCompression(zoomDistancesPc[m.zoomIdx])
		status = m.spinner.View() + dimStyle.Render(fmt.Sprintf(" %.0f days/s", rate))
	} else {
		status = pausedStyle.Render("‖ PAUSED")
	}

	slider := accentStyle.Render("size ") + renderSliderBar(m.engine.Slider(), 16) +
		dimStyle.Render(fmt.Sprintf(" %3.0f%%", m.engine.Slider()*100))
	zoom := dimStyle.Render(fmt.Sprintf("zoom %.0e pc", zoomDistancesPc[m.zoomIdx]))
	help := dimStyle.Render("space: pause | tab: system | +/-: zoom | [/]: size | j/k: focus | l: labels")

	return "  " + status + "  " + slider + "  " + zoom + "\n  " + help
}

// renderSliderBar draws the exaggeration slider as a bracketed bar.
func renderSliderBar(t float64, width int) string {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	filled := int(t*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD"))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	return "[" + barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) + "]"
}

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}
