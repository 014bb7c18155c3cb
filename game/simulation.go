package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/windshield/systems"
	"github.com/pthm-cable/windshield/telemetry"
)

// Update advances the field by the real time elapsed since the last call.
func (g *Game) Update() {
	g.handleInput()
	g.pollBackground()

	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.perfCollector.RecordFrame()
	if g.paused {
		return
	}
	g.step(dt, true)
}

// UpdateHeadless advances the field by one fixed step without a window.
func (g *Game) UpdateHeadless() {
	g.pollBackground()

	frameDue := g.frames != nil && g.tick%g.frameEvery == 0
	g.step(g.cfg.Physics.DT, frameDue)

	if frameDue {
		if _, err := g.frames.Write(g.tick, g.background, g.raster.Image()); err != nil {
			slog.Error("failed to write frame", "tick", g.tick, "error", err)
		}
	}
}

// step runs one tick: field step, optional raster render, telemetry.
func (g *Game) step(dt float64, render bool) {
	dt = systems.ClampDT(dt, g.cfg.Physics.MaxDT)

	g.perfCollector.StartTick()

	res := g.field.Step(dt, g.perfCollector)

	if render {
		g.perfCollector.StartPhase(systems.PhaseRender)
		g.droplets.Render(g.raster, g.field.Droplets, g.background)
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordStep(res, dt)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	g.tick++
}
