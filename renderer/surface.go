// Package renderer draws the droplet field onto a 2D raster surface.
package renderer

import (
	"image"
	"image/color"
)

// Surface is the set of raster primitives the droplet renderer needs.
// Coordinates are in surface pixels with y pointing down.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Clear()

	// DrawLens draws src clipped to the circle (cx, cy, r), magnified by mag
	// around the centre and shifted by (dx, dy).
	DrawLens(src image.Image, cx, cy, r, mag, dx, dy float64)

	FillCircle(cx, cy, r float64, c color.Color)

	// FillEllipse fills an ellipse with radii (rx, ry) rotated by rot radians.
	FillEllipse(cx, cy, rx, ry, rot float64, c color.Color)

	// FillRadialGradient fills the circle of radius r1 with a gradient that is
	// inner up to r0 and blends to outer at r1.
	FillRadialGradient(cx, cy, r0, r1 float64, inner, outer color.Color)
}
