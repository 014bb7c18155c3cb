package renderer

import (
	"image"
	"image/color"
	"math"
)

// Coverage masks evaluated at pixel centres with a one-pixel soft edge.

type circleMask struct {
	cx, cy, r float64
	bounds    image.Rectangle
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }
func (m *circleMask) Bounds() image.Rectangle { return m.bounds }

func (m *circleMask) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-m.cx, float64(y)+0.5-m.cy)
	return color.Alpha{A: coverage(m.r - d + 0.5)}
}

type ellipseMask struct {
	cx, cy   float64
	rx, ry   float64
	cos, sin float64
	bounds   image.Rectangle
}

func newEllipseMask(cx, cy, rx, ry, rot float64, bounds image.Rectangle) *ellipseMask {
	return &ellipseMask{
		cx: cx, cy: cy,
		rx: rx, ry: ry,
		cos: math.Cos(rot), sin: math.Sin(rot),
		bounds: bounds,
	}
}

func (m *ellipseMask) ColorModel() color.Model { return color.AlphaModel }
func (m *ellipseMask) Bounds() image.Rectangle { return m.bounds }

func (m *ellipseMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	// Rotate into the ellipse frame
	u := dx*m.cos + dy*m.sin
	v := -dx*m.sin + dy*m.cos
	k := math.Sqrt((u*u)/(m.rx*m.rx) + (v*v)/(m.ry*m.ry))
	return color.Alpha{A: coverage((1-k)*math.Min(m.rx, m.ry) + 0.5)}
}

// radialGradient is a source image whose colour depends on distance from
// the centre, interpolated in non-premultiplied space.
type radialGradient struct {
	cx, cy, r0, r1 float64
	inner, outer   color.NRGBA
	bounds         image.Rectangle
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *radialGradient) Bounds() image.Rectangle { return g.bounds }

func (g *radialGradient) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.cx, float64(y)+0.5-g.cy)
	t := 0.0
	if g.r1 > g.r0 {
		t = clamp01((d - g.r0) / (g.r1 - g.r0))
	} else if d >= g.r1 {
		t = 1
	}
	return color.NRGBA{
		R: lerp8(g.inner.R, g.outer.R, t),
		G: lerp8(g.inner.G, g.outer.G, t),
		B: lerp8(g.inner.B, g.outer.B, t),
		A: lerp8(g.inner.A, g.outer.A, t),
	}
}

func coverage(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
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

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
