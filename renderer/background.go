package renderer

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Background holds the source image and a copy scaled to cover the surface,
// so lens refraction samples the same pixels the viewer sees behind the glass.
type Background struct {
	src image.Image
	buf *image.RGBA
}

// NewBackground creates a background with no image (not ready).
func NewBackground() *Background {
	return &Background{}
}

// Ready reports whether a scaled buffer is available.
func (b *Background) Ready() bool {
	return b.src != nil && b.buf != nil
}

// Buffer returns the cover-scaled image, or nil when not ready.
func (b *Background) Buffer() *image.RGBA {
	return b.buf
}

// Source returns the unscaled image, or nil.
func (b *Background) Source() image.Image {
	return b.src
}

// SetSource installs a new image and scales it to w x h.
func (b *Background) SetSource(img image.Image, w, h int) {
	b.src = img
	b.buf = nil
	b.Resize(w, h)
}

// Clear drops the image, returning to not-ready.
func (b *Background) Clear() {
	b.src = nil
	b.buf = nil
}

// Resize re-derives the scaled buffer for a w x h surface.
func (b *Background) Resize(w, h int) {
	if b.src == nil || w <= 0 || h <= 0 {
		b.buf = nil
		return
	}
	sb := b.src.Bounds()
	if sb.Empty() {
		b.buf = nil
		return
	}

	b.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	dst := CoverRect(sb.Dx(), sb.Dy(), w, h)
	draw.CatmullRom.Scale(b.buf, dst, b.src, sb, draw.Src, nil)
}

// CoverRect returns where an iw x ih image lands when scaled uniformly to
// cover a cw x ch area, centred. The result may extend past the area.
func CoverRect(iw, ih, cw, ch int) image.Rectangle {
	scale := math.Max(float64(cw)/float64(iw), float64(ch)/float64(ih))
	dw := float64(iw) * scale
	dh := float64(ih) * scale
	dx := (float64(cw) - dw) / 2
	dy := (float64(ch) - dh) / 2

	return image.Rect(
		int(math.Round(dx)), int(math.Round(dy)),
		int(math.Round(dx+dw)), int(math.Round(dy+dh)),
	)
}
