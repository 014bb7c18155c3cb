package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Stick deflection below this is treated as no sensor input.
const gamepadDeadzone = 0.15

// handleInput processes keyboard and gamepad input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.inputPanel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.field.ResetTilt()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		g.field.Gust()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.loadBackground()
	}

	g.handleTiltInput()
}

// handleTiltInput feeds orientation samples from the arrow keys or the
// left stick. With neither active the tilt is left alone.
func (g *Game) handleTiltInput() {
	var lateral, frontBack float64
	active := false

	if rl.IsKeyDown(rl.KeyLeft) {
		lateral -= 30
		active = true
	}
	if rl.IsKeyDown(rl.KeyRight) {
		lateral += 30
		active = true
	}
	if rl.IsKeyDown(rl.KeyUp) {
		frontBack -= 60
		active = true
	}
	if rl.IsKeyDown(rl.KeyDown) {
		frontBack += 60
		active = true
	}

	if !active && rl.IsGamepadAvailable(0) {
		ax := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX))
		ay := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY))
		if ax*ax+ay*ay > gamepadDeadzone*gamepadDeadzone {
			lateral = ax * 45
			frontBack = ay * 90
			active = true
		}
	}

	if active {
		g.field.ApplyTiltSample(lateral, frontBack)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w == g.width && h == g.height {
		return
	}
	g.resize(w, h)
}

// resize updates every size-dependent part: field bounds, raster and the
// cover-scaled background.
func (g *Game) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.width = w
	g.height = h

	g.field.Resize(float64(w), float64(h))
	g.raster.Resize(w, h)
	g.background.Resize(w, h)
	if g.presenter != nil {
		g.presenter.backgroundDirty = true
	}
}
