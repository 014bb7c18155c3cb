package game

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/windshield/renderer"
	"github.com/pthm-cable/windshield/ui"
)

const controlsLegend = "[Arrows] tilt  [G] gust  [R] reset tilt  [B] reload backdrop  [Tab] panel  [Space] pause"

// presenter uploads the software raster and the background to GPU textures.
type presenter struct {
	background      rl.Texture2D
	droplets        rl.Texture2D
	hasBackground   bool
	hasDroplets     bool
	backgroundDirty bool

	pixels []color.RGBA
}

func newPresenter() *presenter {
	return &presenter{backgroundDirty: true}
}

// upload copies img into tex, recreating tex when the size changed.
func (p *presenter) upload(tex *rl.Texture2D, loaded *bool, img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if *loaded && (int(tex.Width) != w || int(tex.Height) != h) {
		rl.UnloadTexture(*tex)
		*loaded = false
	}
	if !*loaded {
		blank := rl.GenImageColor(w, h, rl.Blank)
		*tex = rl.LoadTextureFromImage(blank)
		rl.UnloadImage(blank)
		*loaded = true
	}

	n := w * h
	if cap(p.pixels) < n {
		p.pixels = make([]color.RGBA, n)
	}
	px := p.pixels[:n]
	for i := range px {
		o := img.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
		px[i] = color.RGBA{R: img.Pix[o], G: img.Pix[o+1], B: img.Pix[o+2], A: img.Pix[o+3]}
	}
	rl.UpdateTexture(*tex, px)
}

// Draw presents the background and droplet raster.
func (p *presenter) Draw(bg *renderer.Background, raster *renderer.Raster) {
	if bg.Ready() {
		if p.backgroundDirty {
			p.upload(&p.background, &p.hasBackground, bg.Buffer())
			p.backgroundDirty = false
		}
		rl.DrawTexture(p.background, 0, 0, rl.White)
	} else {
		rl.ClearBackground(rl.Color(renderer.FallbackBackdrop))
	}

	p.upload(&p.droplets, &p.hasDroplets, raster.Image())
	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	rl.DrawTexture(p.droplets, 0, 0, rl.White)
	rl.EndBlendMode()
}

// Unload frees GPU resources.
func (p *presenter) Unload() {
	if p.hasBackground {
		rl.UnloadTexture(p.background)
		p.hasBackground = false
	}
	if p.hasDroplets {
		rl.UnloadTexture(p.droplets)
		p.hasDroplets = false
	}
}

// Draw renders the game.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.presenter.Draw(g.background, g.raster)

	g.hud.Draw(ui.HUDData{
		Title:       "Windshield",
		Droplets:    g.field.Count(),
		MaxDroplets: g.field.MaxDroplets(),
		Tick:        g.tick,
		FPS:         rl.GetFPS(),
		Paused:      g.paused,
		TiltX:       g.field.TiltX,
		TiltY:       g.field.TiltY,
		Wind:        g.field.Wind,
		WindMax:     g.cfg.Wind.Max,
		Background:  g.bgState,
	})
	g.hud.DrawControls(int32(g.height), controlsLegend)

	actions := g.inputPanel.Draw(int32(g.width),
		ui.InputState{TiltX: g.field.TiltX, TiltY: g.field.TiltY, Wind: g.field.Wind},
		ui.InputLimits{MinTiltY: g.cfg.Tilt.MinY, MaxTiltY: g.cfg.Tilt.MaxY, MaxWind: g.cfg.Wind.Max},
	)
	g.applyPanelActions(actions)

	rl.EndDrawing()
}

// applyPanelActions pushes slider edits into the field.
func (g *Game) applyPanelActions(a ui.InputActions) {
	if a.TiltChanged {
		g.field.SetTilt(a.State.TiltX, a.State.TiltY)
	}
	if a.WindChanged {
		g.field.SetWind(a.State.Wind)
	}
	if a.Gust {
		g.field.Gust()
	}
	if a.Reload {
		g.loadBackground()
	}
}
