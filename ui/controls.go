package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// InputState is the set of values the input panel edits.
type InputState struct {
	TiltX, TiltY float64
	Wind         float64
}

// InputLimits bounds the panel sliders.
type InputLimits struct {
	MinTiltY, MaxTiltY float64
	MaxWind            float64
}

// InputActions reports what the user changed this frame.
type InputActions struct {
	TiltChanged bool
	WindChanged bool
	Gust        bool
	Reload      bool
	State       InputState
}

// InputPanel renders raygui sliders for tilt and wind on the right side.
type InputPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewInputPanel creates a hidden input panel.
func NewInputPanel(width int32) *InputPanel {
	return &InputPanel{renderer: NewRenderer(), width: width}
}

// Toggle switches panel visibility.
func (p *InputPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *InputPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel and returns the edits made this frame.
func (p *InputPanel) Draw(screenWidth int32, state InputState, limits InputLimits) InputActions {
	actions := InputActions{State: state}
	if !p.visible {
		return actions
	}

	r := p.renderer
	pad := r.Theme.Padding
	x := screenWidth - p.width - pad
	r.DrawPanel(x, pad, p.width, 230)

	px := float32(x + pad)
	py := float32(pad * 2)
	sliderW := float32(p.width - pad*2 - 60)

	rl.DrawText("Inputs", int32(px), int32(py), r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	py += 26

	slider := func(label string, value, lo, hi float64) float64 {
		rl.DrawText(label, int32(px), int32(py), r.Theme.FontSize, r.Theme.LabelColor)
		py += 16
		v := gui.SliderBar(
			rl.Rectangle{X: px + 30, Y: py, Width: sliderW, Height: 16},
			fmt.Sprintf("%.2f", lo), fmt.Sprintf("%.2f", hi),
			float32(value), float32(lo), float32(hi),
		)
		rl.DrawText(fmt.Sprintf("%+.2f", value), int32(px+sliderW+70), int32(py), r.Theme.FontSize, r.Theme.ValueColor)
		py += 26
		return float64(v)
	}

	if v := slider("Tilt X (lateral)", state.TiltX, -1, 1); v != float64(float32(state.TiltX)) {
		actions.State.TiltX = v
		actions.TiltChanged = true
	}
	if v := slider("Tilt Y (down-slope)", state.TiltY, limits.MinTiltY, limits.MaxTiltY); v != float64(float32(state.TiltY)) {
		actions.State.TiltY = v
		actions.TiltChanged = true
	}
	if v := slider("Wind", state.Wind, -limits.MaxWind, limits.MaxWind); v != float64(float32(state.Wind)) {
		actions.State.Wind = v
		actions.WindChanged = true
	}

	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 110, Height: 26}, "Gust") {
		actions.Gust = true
	}
	if gui.Button(rl.Rectangle{X: px + 120, Y: py, Width: 130, Height: 26}, "Reload backdrop") {
		actions.Reload = true
	}

	return actions
}
