package game

import (
	"log/slog"

	"github.com/pthm-cable/windshield/renderer"
)

// loadBackground starts an asynchronous load of the current source.
// With no source the renderer stays in fallback mode.
func (g *Game) loadBackground() {
	if g.bgSource == "" {
		return
	}
	g.bgState = bgLoading
	slog.Info("loading background", "source", g.bgSource)
	g.loader.Load(g.ctx, g.bgSource)
}

// pollBackground installs a finished load without blocking the frame.
func (g *Game) pollBackground() {
	if res, ok := g.loader.Poll(); ok {
		g.applyBackground(res)
	}
}

// waitBackground blocks until the pending load finishes. Headless frame
// dumps use it so the first frame already refracts the image.
func (g *Game) waitBackground() {
	if g.bgState != bgLoading {
		return
	}
	select {
	case res := <-g.loader.Results():
		g.applyBackground(res)
	case <-g.ctx.Done():
	}
}

// applyBackground switches to lens mode on success. A failure keeps
// whatever was showing before.
func (g *Game) applyBackground(res renderer.LoadResult) {
	if res.Err != nil {
		slog.Warn("background load failed", "source", res.Source, "error", res.Err)
		if !g.background.Ready() {
			g.bgState = bgFailed
		} else {
			g.bgState = bgReady
		}
		return
	}

	g.background.SetSource(res.Image, g.width, g.height)
	g.bgState = bgReady
	if g.presenter != nil {
		g.presenter.backgroundDirty = true
	}

	b := res.Image.Bounds()
	slog.Info("background ready", "source", res.Source, "width", b.Dx(), "height", b.Dy())
}
