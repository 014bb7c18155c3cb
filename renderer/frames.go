package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// FallbackBackdrop fills the frame behind droplets when no background is ready.
var FallbackBackdrop = color.RGBA{R: 18, G: 22, B: 28, A: 255}

// FrameWriter dumps composited frames as numbered PNG files.
type FrameWriter struct {
	dir   string
	frame *image.RGBA
	count int
}

// NewFrameWriter creates dir if needed. Returns nil if dir is empty (disabled).
func NewFrameWriter(dir string) (*FrameWriter, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating frames directory: %w", err)
	}
	return &FrameWriter{dir: dir}, nil
}

// Compose draws the background (or the fallback backdrop) and the droplet
// overlay into a reused frame image.
func (w *FrameWriter) Compose(bg *Background, overlay *image.RGBA) *image.RGBA {
	b := overlay.Bounds()
	if w.frame == nil || w.frame.Bounds() != b {
		w.frame = image.NewRGBA(b)
	}

	if bg != nil && bg.Ready() && bg.Buffer().Bounds() == b {
		draw.Draw(w.frame, b, bg.Buffer(), b.Min, draw.Src)
	} else {
		draw.Draw(w.frame, b, image.NewUniform(FallbackBackdrop), image.Point{}, draw.Src)
	}
	draw.Draw(w.frame, b, overlay, b.Min, draw.Over)
	return w.frame
}

// Write composes and encodes one frame tagged with the simulation tick.
func (w *FrameWriter) Write(tick int32, bg *Background, overlay *image.RGBA) (string, error) {
	if w == nil {
		return "", nil
	}
	frame := w.Compose(bg, overlay)

	path := filepath.Join(w.dir, fmt.Sprintf("frame_%06d.png", tick))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating frame: %w", err)
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing frame: %w", err)
	}
	w.count++
	return path, nil
}

// Count returns the number of frames written.
func (w *FrameWriter) Count() int {
	if w == nil {
		return 0
	}
	return w.count
}
