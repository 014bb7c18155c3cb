// Lens preview tool - interactive tuning of droplet refraction with sliders.
//
// Usage: go run ./cmd/lenspreview [-background photo.jpg] [-out render.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/windshield/components"
	"github.com/pthm-cable/windshield/config"
	"github.com/pthm-cable/windshield/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 560
	panelWidth   = windowWidth - previewSize - 30
)

// dropParams describes the sample droplets.
type dropParams struct {
	Radius float32
	VX, VY float32
}

func main() {
	bgPath := flag.String("background", "", "Background image (empty = generated stripes)")
	outPath := flag.String("out", "lens.yaml", "Where Save writes the tuned config")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Defaults()

	rl.InitWindow(windowWidth, windowHeight, "Lens Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	bg := renderer.NewBackground()
	bg.SetSource(stripes(previewSize, previewSize), previewSize, previewSize)

	loader := renderer.NewImageLoader(10 * time.Second)
	if *bgPath != "" {
		loader.Load(context.Background(), *bgPath)
	}

	raster := renderer.NewRaster(previewSize, previewSize)
	drops := dropParams{Radius: 40, VX: 0.5, VY: 1.5}

	bgTex := loadTexture(bg.Buffer())
	defer rl.UnloadTexture(bgTex)
	dropTex := loadTexture(raster.Image())
	defer rl.UnloadTexture(dropTex)

	needsRender := true
	status := ""

	for !rl.WindowShouldClose() {
		if res, ok := loader.Poll(); ok {
			if res.Err != nil {
				status = res.Err.Error()
			} else {
				bg.SetSource(res.Image, previewSize, previewSize)
				rl.UpdateTexture(bgTex, toPixels(bg.Buffer()))
				status = "loaded " + res.Source
				needsRender = true
			}
		}

		if needsRender {
			renderer.NewDropletRenderer(cfg.Render).Render(raster, sampleDroplets(drops), bg)
			rl.UpdateTexture(dropTex, toPixels(raster.Image()))
			needsRender = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexture(bgTex, 10, 10, rl.White)
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
		rl.DrawTexture(dropTex, 10, 10, rl.White)
		rl.EndBlendMode()
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		rl.DrawText(status, 15, previewSize+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Lens Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label string, value, lo, hi float32) float32 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX + 30, Y: panelY, Width: float32(panelWidth - 110), Height: 20},
				fmt.Sprintf("%.2f", lo), fmt.Sprintf("%.2f", hi),
				value, lo, hi,
			)
			rl.DrawText(fmt.Sprintf("%.3f", value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 32
			if v != value {
				needsRender = true
			}
			return v
		}

		rc := &cfg.Render
		rc.Magnification = float64(slider("Base magnification", float32(rc.Magnification), 1, 1.5))
		rc.MagnificationPerR = float64(slider("Magnification per radius", float32(rc.MagnificationPerR), 0, 0.05))
		rc.MagnificationMax = float64(slider("Magnification cap", float32(rc.MagnificationMax), 0, 0.3))
		rc.RefractionShift = float64(slider("Refraction shift", float32(rc.RefractionShift), 0, 20))
		rc.RimAlpha = float64(slider("Rim alpha", float32(rc.RimAlpha), 0, 1))
		rc.HighlightAlpha = float64(slider("Highlight alpha", float32(rc.HighlightAlpha), 0, 1))
		drops.Radius = slider("Drop radius", drops.Radius, 2, 80)
		drops.VX = slider("Velocity X", drops.VX, -3, 3)
		drops.VY = slider("Velocity Y", drops.VY, -3, 3)

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset") {
			cfg = config.Defaults()
			needsRender = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Save") {
			if err := cfg.WriteYAML(*outPath); err != nil {
				status = err.Error()
				slog.Error("failed to save config", "error", err)
			} else {
				status = "saved " + *outPath
			}
		}

		rl.EndDrawing()
	}
}

// sampleDroplets lays out one tuned drop plus smaller ones for scale.
func sampleDroplets(p dropParams) []components.Droplet {
	c := float64(previewSize) / 2
	r := float64(p.Radius)
	vx, vy := float64(p.VX), float64(p.VY)
	return []components.Droplet{
		{X: c, Y: c, VX: vx, VY: vy, R: r, Alive: true},
		{X: c * 0.3, Y: c * 0.3, VX: vx, VY: vy, R: r / 4, Alive: true},
		{X: c * 1.7, Y: c * 0.4, VX: vx, VY: vy, R: r / 2, Alive: true},
		{X: c * 0.4, Y: c * 1.7, VX: vx, VY: vy, R: 2.2, Alive: true},
	}
}

// stripes generates a high-contrast test pattern so refraction is easy to see.
func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 40, G: 60, B: 90, A: 255}
			if (x/24+y/24)%2 == 0 {
				c = color.RGBA{R: 230, G: 200, B: 120, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func loadTexture(img *image.RGBA) rl.Texture2D {
	b := img.Bounds()
	blank := rl.GenImageColor(b.Dx(), b.Dy(), rl.Blank)
	tex := rl.LoadTextureFromImage(blank)
	rl.UnloadImage(blank)
	rl.UpdateTexture(tex, toPixels(img))
	return tex
}

func toPixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	px := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px = append(px, img.RGBAAt(x, y))
		}
	}
	return px
}
