package renderer

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/pthm-cable/windshield/components"
	"github.com/pthm-cable/windshield/config"
)

// DropletRenderer draws droplets as refracting lenses over the background,
// or as faint flat circles while no background is available.
type DropletRenderer struct {
	cfg   config.RenderConfig
	order []components.Droplet
}

// NewDropletRenderer creates a renderer with the given lens parameters.
func NewDropletRenderer(cfg config.RenderConfig) *DropletRenderer {
	return &DropletRenderer{cfg: cfg}
}

// Render clears the surface and draws every droplet, smallest first so
// large drops end up on top.
func (r *DropletRenderer) Render(s Surface, droplets []components.Droplet, bg *Background) {
	s.Clear()

	r.order = append(r.order[:0], droplets...)
	slices.SortStableFunc(r.order, func(a, b components.Droplet) int {
		return cmp.Compare(a.R, b.R)
	})

	lens := bg != nil && bg.Ready()
	for i := range r.order {
		d := &r.order[i]
		if lens {
			r.drawLens(s, d, bg)
		} else {
			r.drawFlat(s, d)
		}
	}
}

func (r *DropletRenderer) drawFlat(s Surface, d *components.Droplet) {
	s.FillCircle(d.X, d.Y, d.R, color.NRGBA{R: 255, G: 255, B: 255, A: alpha8(r.cfg.FallbackAlpha)})
}

func (r *DropletRenderer) drawLens(s Surface, d *components.Droplet, bg *Background) {
	c := r.cfg
	mag := c.Magnification + min(c.MagnificationMax, d.R*c.MagnificationPerR)
	s.DrawLens(bg.Buffer(), d.X, d.Y, d.R, mag, d.VX*c.RefractionShift, d.VY*c.RefractionShift)

	// Rim darkening
	s.FillRadialGradient(d.X, d.Y, d.R*c.RimStart, d.R,
		color.NRGBA{},
		color.NRGBA{A: alpha8(c.RimAlpha)},
	)

	// Specular highlight up and to the left
	s.FillEllipse(d.X-d.R*0.35, d.Y-d.R*0.35, d.R*0.25, d.R*0.18, -0.6,
		color.NRGBA{R: 255, G: 255, B: 255, A: alpha8(c.HighlightAlpha)},
	)
}

func alpha8(a float64) uint8 {
	return uint8(clamp01(a)*255 + 0.5)
}
