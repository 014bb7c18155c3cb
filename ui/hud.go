package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	Droplets    int
	MaxDroplets int
	Tick        int32
	FPS         int32
	Paused      bool
	TiltX       float64
	TiltY       float64
	Wind        float64
	WindMax     float64
	Background  string
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer(), width: 260}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	height := r.Theme.LineHeight*7 + pad*2 + 8

	r.DrawPanel(pad, pad, h.width, height)

	x := pad * 2
	y := r.DrawSectionHeader(x, pad*2, data.Title)

	var fill float32
	if data.MaxDroplets > 0 {
		fill = float32(data.Droplets) / float32(data.MaxDroplets)
	}
	y = r.DrawLabelValue(x, y, "Droplets", fmt.Sprintf("%d / %d", data.Droplets, data.MaxDroplets))
	y = r.DrawBar(x, y, "Load", fill, h.width-pad*2)
	y = r.DrawCenteredBar(x, y, "Tilt X", float32(data.TiltX), 1, h.width-pad*2)
	y = r.DrawLabelValue(x, y, "Tilt Y", fmt.Sprintf("%.2f", data.TiltY))
	y = r.DrawCenteredBar(x, y, "Wind", float32(data.Wind), float32(data.WindMax), h.width-pad*2)
	y = r.DrawLabelValue(x, y, "Backdrop", data.Background)

	status := fmt.Sprintf("Tick %d | %d FPS", data.Tick, data.FPS)
	rl.DrawText(status, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	if data.Paused {
		rl.DrawText("PAUSED", x+h.width-90, y, r.Theme.FontSize, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
