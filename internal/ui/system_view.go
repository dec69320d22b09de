package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-exoview/internal/catalog"
	"github.com/litescript/ls-exoview/internal/lod"
	"github.com/litescript/ls-exoview/internal/orbit"
	"github.com/litescript/ls-exoview/internal/sim"
)

// LabelMode controls which body labels are drawn on the canvas.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

// SystemViewModel renders a top-down view of one star system: orbit rings,
// the host star at the focus, and every body at its current phase.
type SystemViewModel struct {
	width  int
	height int

	sys     sim.SystemFrame
	haveSys bool

	// ringsAU maps hostname to the semi-major axes of its planets, for the
	// static orbit rings under the moving bodies.
	ringsAU map[string][]float64

	focusIdx  int // index into sys.Bodies; -1 focuses the star
	labelMode LabelMode
	panX      float64 // pan offset in display units
	panY      float64
}

// NewSystemViewModel precomputes orbit ring radii for every loaded system.
func NewSystemViewModel(systems []*catalog.StarSystem) SystemViewModel {
	rings := make(map[string][]float64, len(systems))
	for _, s := range systems {
		idx := 0
		for _, b := range s.Bodies {
			if b.IsMoon() {
				continue
			}
			el := orbit.ResolveElements(b.SemiMajorAxisAU, b.Eccentricity, b.OrbitalPeriodDays, idx)
			rings[s.Hostname] = append(rings[s.Hostname], el.SemiMajorAU)
			idx++
		}
	}
	return SystemViewModel{
		ringsAU:   rings,
		focusIdx:  -1,
		labelMode: LabelFocused,
	}
}

// SetSize updates the viewport size.
func (m SystemViewModel) SetSize(width, height int) SystemViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateFrame replaces the rendered system slice. Switching to a different
// hostname resets the focus so the index never dangles.
func (m SystemViewModel) UpdateFrame(sys sim.SystemFrame) SystemViewModel {
	if m.haveSys && m.sys.Hostname != sys.Hostname {
		m.focusIdx = -1
		m.panX, m.panY = 0, 0
	}
	m.sys = sys
	m.haveSys = true
	return m
}

// Update handles input messages.
func (m SystemViewModel) Update(msg tea.Msg) (SystemViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			m.focusPrev()
		case "k":
			m.focusNext()
		case "up":
			m.panY += 0.1
		case "down":
			m.panY -= 0.1
		case "left":
			m.panX -= 0.1
		case "right":
			m.panX += 0.1
		case "c":
			m.panX, m.panY = 0, 0
		}
	}
	return m, nil
}

func (m *SystemViewModel) focusNext() {
	if len(m.sys.Bodies) == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= len(m.sys.Bodies) {
		m.focusIdx = -1 // wrap to the star
	}
}

func (m *SystemViewModel) focusPrev() {
	if len(m.sys.Bodies) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = len(m.sys.Bodies) - 1
	}
}

// FocusedBody returns the focused body's frame record, or nil when the star
// has focus.
func (m SystemViewModel) FocusedBody() *sim.BodyFrame {
	if m.focusIdx >= 0 && m.focusIdx < len(m.sys.Bodies) {
		return &m.sys.Bodies[m.focusIdx]
	}
	return nil
}

// View renders the canvas plus a focus HUD.
func (m SystemViewModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for system view"
	}
	if !m.haveSys {
		return "No system loaded"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()
	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// bodyPos tracks a body's screen cell for label placement.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

// maxOrbitAU returns the largest ring radius, the reference for the log
// radial display scale.
func (m SystemViewModel) maxOrbitAU() float64 {
	max := 0.1
	for _, r := range m.ringsAU[m.sys.Hostname] {
		if r > max {
			max = r
		}
	}
	return max
}

// displayR compresses an orbital radius logarithmically so inner and outer
// planets are both visible on one canvas.
func displayR(rAU, maxAU float64) float64 {
	if rAU <= 0 {
		return 0
	}
	return math.Log1p(rAU) / math.Log1p(maxAU)
}

func (m SystemViewModel) buildCanvas() string {
	canvasH := m.height - 4
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	maxAU := m.maxOrbitAU()

	// Display units run 0..1 from star to outermost ring; map that onto
	// most of the half-canvas, with the terminal cell aspect folded into
	// the vertical axis.
	maxDisplayR := float64(minInt(canvasW/2, canvasH)) * 0.9
	originX := canvasW/2 + int(m.panX*maxDisplayR)
	originY := canvasH/2 - int(m.panY*maxDisplayR*0.5)

	for _, ringAU := range m.ringsAU[m.sys.Hostname] {
		m.drawRing(grid, originX, originY, displayR(ringAU, maxAU)*maxDisplayR)
	}

	var positions []bodyPos
	for i, b := range m.sys.Bodies {
		if b.Tier == lod.TierHidden {
			continue
		}
		rAU := math.Hypot(b.LocalAU.X, b.LocalAU.Z)
		if rAU <= 0 {
			continue
		}
		dr := displayR(rAU, maxAU) * maxDisplayR
		sx := originX + int(dr*b.LocalAU.X/rAU)
		sy := originY - int(dr*b.LocalAU.Z/rAU*0.5)
		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		grid[sy][sx] = bodyGlyph(b, i == m.focusIdx)
		positions = append(positions, bodyPos{x: sx, y: sy, name: b.Name, isFocused: i == m.focusIdx})
	}

	// Star last so it is never occluded.
	if originX >= 0 && originX < canvasW && originY >= 0 && originY < canvasH {
		grid[originY][originX] = '☉'
		positions = append(positions, bodyPos{x: originX, y: originY, name: m.sys.Hostname, isFocused: m.focusIdx == -1})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)
	return m.renderGrid(grid)
}

func (m SystemViewModel) drawRing(grid [][]rune, cx, cy int, r float64) {
	if r < 1 {
		return
	}
	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5)
		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

// bodyGlyph picks a glyph by detail tier: points for distant specks, open
// circles for untextured spheres, filled for textured ones.
func bodyGlyph(b sim.BodyFrame, focused bool) rune {
	switch b.Tier {
	case lod.TierPoint:
		if focused {
			return '∙'
		}
		return '˙'
	case lod.TierSimpleSphere:
		if focused {
			return '●'
		}
		return '•'
	case lod.TierTexturedSphere:
		if b.Textured {
			if focused {
				return '◉'
			}
			return '●'
		}
		if focused {
			return '●'
		}
		return '○'
	default:
		return '?'
	}
}

func (m SystemViewModel) renderLabels(grid [][]rune, width, height int, positions []bodyPos) {
	if m.labelMode == LabelNone {
		return
	}
	for _, pos := range positions {
		show := m.labelMode == LabelAll || pos.isFocused
		if !show {
			continue
		}

		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		text := pos.name
		if pos.isFocused {
			text = "◄ " + pos.name
		}
		for i, r := range text {
			x := labelX + i
			if x >= width {
				break
			}
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' {
				grid[labelY][x] = r
			}
		}
	}
}

func (m SystemViewModel) renderGrid(grid [][]rune) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(StarColor(m.sys.Star.TemperatureK))).Bold(true)
	pointStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case ' ':
				b.WriteRune(ch)
			case '·':
				b.WriteString(dimStyle.Render(string(ch)))
			case '˙', '∙':
				b.WriteString(pointStyle.Render(string(ch)))
			case '☉':
				b.WriteString(starStyle.Render(string(ch)))
			case '•', '○':
				b.WriteString(bodyStyle.Render(string(ch)))
			case '●', '◉', '◄':
				b.WriteString(focusStyle.Render(string(ch)))
			default:
				b.WriteString(labelStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m SystemViewModel) renderHUD() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder

	if focused := m.FocusedBody(); focused != nil {
		rAU := math.Hypot(focused.LocalAU.X, focused.LocalAU.Z)
		b.WriteString(headerStyle.Render("◆ " + focused.Name))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("r: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f AU", rAU)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("phase: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", focused.PhaseRad*180/math.Pi)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("tier: "))
		b.WriteString(valueStyle.Render(focused.Tier.String()))
		if focused.Tier == lod.TierTexturedSphere {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render("texture: "))
			if focused.Textured {
				b.WriteString(valueStyle.Render(focused.TextureKey))
			} else {
				b.WriteString(dimStyle.Render("loading"))
			}
		}
	} else {
		b.WriteString(headerStyle.Render("☉ " + m.sys.Hostname))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("dist: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4g pc", m.sys.CameraDistancePc)))
		if m.sys.Star.TemperatureK > 0 {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render("T: "))
			b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f K", m.sys.Star.TemperatureK)))
		}
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("bodies: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", len(m.sys.Bodies))))
	}
	b.WriteString("\n")

	labelName := map[LabelMode]string{LabelNone: "off", LabelFocused: "focus", LabelAll: "all"}[m.labelMode]
	b.WriteString(dimStyle.Render("Labels: "))
	b.WriteString(valueStyle.Render(labelName))

	return b.String()
}

// CycleLabels steps the label display mode.
func (m SystemViewModel) CycleLabels() SystemViewModel {
	m.labelMode = (m.labelMode + 1) % 3
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
