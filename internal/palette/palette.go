// Package palette converts the hex colors used by the panels into the color
// types the renderers need.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Shared neutrals.
const (
	Background = "#0f172a"
	PanelFill  = "#ffffff"
	Muted      = "#94a3b8"
	PillBody   = "#f8fafc"
)

var fallback = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Parse returns the color for a hex string, or mid grey if it is malformed.
func Parse(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// RGBA returns hex with the given opacity as a non-premultiplied color.
func RGBA(hex string, alpha float64) color.NRGBA {
	r, g, b := Parse(hex).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

// Blend mixes a towards b by t in perceptual space.
func Blend(a, b string, t float64) colorful.Color {
	return Parse(a).BlendLab(Parse(b), clamp01(t)).Clamped()
}

// Over composites hex at opacity alpha over base, for renderers without
// an alpha channel.
func Over(base colorful.Color, hex string, alpha float64) colorful.Color {
	return base.BlendRgb(Parse(hex), clamp01(alpha))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
