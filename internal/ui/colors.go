package ui

import (
	"fmt"
	"hash/fnv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// StarColor approximates the visible color of a star from its effective
// temperature. The mapping is a coarse blackbody ramp over the main sequence
// range; anything outside it clamps to the nearest endpoint.
func StarColor(tempK float64) string {
	if tempK <= 0 {
		tempK = 5700 // unknown: render sunlike
	}
	switch {
	case tempK < 2400:
		tempK = 2400
	case tempK > 30000:
		tempK = 30000
	}

	// Red dwarfs sit around hue 20, sunlike stars near 50, hot stars drift
	// toward blue-white. Interpolate in HCL so brightness stays even.
	var c colorful.Color
	switch {
	case tempK < 3700:
		t := (tempK - 2400) / (3700 - 2400)
		c = blend(colorful.Hcl(25, 0.55, 0.62), colorful.Hcl(45, 0.45, 0.72), t)
	case tempK < 6000:
		t := (tempK - 3700) / (6000 - 3700)
		c = blend(colorful.Hcl(45, 0.45, 0.72), colorful.Hcl(75, 0.25, 0.88), t)
	case tempK < 10000:
		t := (tempK - 6000) / (10000 - 6000)
		c = blend(colorful.Hcl(75, 0.25, 0.88), colorful.Hcl(250, 0.12, 0.90), t)
	default:
		t := (tempK - 10000) / (30000 - 10000)
		c = blend(colorful.Hcl(250, 0.12, 0.90), colorful.Hcl(260, 0.25, 0.85), t)
	}
	return c.Clamped().Hex()
}

// BodyColor assigns a stable decorative color to a body by hashing its name,
// so a body keeps its color across frames and runs.
func BodyColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	return colorful.Hcl(hue, 0.45, 0.65).Clamped().Hex()
}

func blend(a, b colorful.Color, t float64) colorful.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.BlendHcl(b, t)
}

// gradientColor returns a hex color for a position in the logo gradient:
// blue on the left through purple and magenta to pink, fading darker toward
// the bottom rows.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	brightness := 1.0 - yRatio*0.5
	return fmt.Sprintf("#%02X%02X%02X", clamp8(r*brightness), clamp8(g*brightness), clamp8(b*brightness))
}

func clamp8(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}
