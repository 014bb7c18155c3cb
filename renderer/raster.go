package renderer

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Raster is a software Surface backed by a premultiplied RGBA image.
type Raster struct {
	img *image.RGBA

	// Lens scratch, reused across droplets
	scratch []uint8
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image. It is replaced on Resize.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image with a transparent one of the new size.
func (r *Raster) Resize(w, h int) {
	if cw, ch := r.Size(); cw == w && ch == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Clear makes every pixel transparent.
func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// circleBounds returns the pixel rectangle covering a circle, clipped to the raster.
func (r *Raster) circleBounds(cx, cy, rad float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(cx-rad)), int(math.Floor(cy-rad)),
		int(math.Ceil(cx+rad)), int(math.Ceil(cy+rad)),
	).Intersect(r.img.Bounds())
}

// scratchImage returns a cleared RGBA image over rect using the shared buffer.
func (r *Raster) scratchImage(rect image.Rectangle) *image.RGBA {
	n := 4 * rect.Dx() * rect.Dy()
	if cap(r.scratch) < n {
		r.scratch = make([]uint8, n)
	}
	pix := r.scratch[:n]
	clear(pix)
	return &image.RGBA{Pix: pix, Stride: 4 * rect.Dx(), Rect: rect}
}

// DrawLens draws src magnified around (cx, cy) and shifted by (dx, dy),
// clipped to the circle of radius rad.
func (r *Raster) DrawLens(src image.Image, cx, cy, rad, mag, dx, dy float64) {
	rect := r.circleBounds(cx, cy, rad)
	if rect.Empty() || src == nil {
		return
	}

	// src point p lands at mag*(p - c) + c + shift
	s2d := f64.Aff3{
		mag, 0, cx + dx - mag*cx,
		0, mag, cy + dy - mag*cy,
	}

	lens := r.scratchImage(rect)
	draw.BiLinear.Transform(lens, s2d, src, src.Bounds(), draw.Src, nil)

	mask := &circleMask{cx: cx, cy: cy, r: rad, bounds: rect}
	draw.DrawMask(r.img, rect, lens, rect.Min, mask, rect.Min, draw.Over)
}

// FillCircle composites a solid circle.
func (r *Raster) FillCircle(cx, cy, rad float64, c color.Color) {
	rect := r.circleBounds(cx, cy, rad)
	if rect.Empty() {
		return
	}
	mask := &circleMask{cx: cx, cy: cy, r: rad, bounds: rect}
	draw.DrawMask(r.img, rect, image.NewUniform(c), image.Point{}, mask, rect.Min, draw.Over)
}

// FillEllipse composites a solid rotated ellipse.
func (r *Raster) FillEllipse(cx, cy, rx, ry, rot float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	rect := r.circleBounds(cx, cy, math.Max(rx, ry))
	if rect.Empty() {
		return
	}
	mask := newEllipseMask(cx, cy, rx, ry, rot, rect)
	draw.DrawMask(r.img, rect, image.NewUniform(c), image.Point{}, mask, rect.Min, draw.Over)
}

// FillRadialGradient composites a radial gradient clipped to radius r1.
func (r *Raster) FillRadialGradient(cx, cy, r0, r1 float64, inner, outer color.Color) {
	rect := r.circleBounds(cx, cy, r1)
	if rect.Empty() {
		return
	}
	grad := &radialGradient{
		cx: cx, cy: cy, r0: r0, r1: r1,
		inner:  color.NRGBAModel.Convert(inner).(color.NRGBA),
		outer:  color.NRGBAModel.Convert(outer).(color.NRGBA),
		bounds: rect,
	}
	mask := &circleMask{cx: cx, cy: cy, r: r1, bounds: rect}
	draw.DrawMask(r.img, rect, grad, rect.Min, mask, rect.Min, draw.Over)
}
