// Package game wires the droplet field, renderer and telemetry into the
// windowed and headless frame loops.
package game

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/windshield/config"
	"github.com/pthm-cable/windshield/renderer"
	"github.com/pthm-cable/windshield/systems"
	"github.com/pthm-cable/windshield/telemetry"
	"github.com/pthm-cable/windshield/ui"
)

// Options configures a new game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	FramesDir      string
	FrameEvery     int
	Background     string // overrides background.source when set
}

// Background load states shown in the HUD.
const (
	bgNone    = "none"
	bgLoading = "loading"
	bgReady   = "ready"
	bgFailed  = "failed"
)

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	field *systems.Field

	// Rendering
	raster     *renderer.Raster
	droplets   *renderer.DropletRenderer
	background *renderer.Background
	loader     *renderer.ImageLoader
	bgSource   string
	bgState    string
	presenter  *presenter

	// Background loads are cancelled on Unload
	ctx    context.Context
	cancel context.CancelFunc

	// UI
	hud        *ui.HUD
	inputPanel *ui.InputPanel

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	frames        *renderer.FrameWriter
	frameEvery    int32
	logStats      bool

	// State
	tick       int32
	paused     bool
	headless   bool
	lastUpdate time.Time

	width, height int
}

// NewGameWithOptions creates a game sized to the configured screen.
// In graphical mode it must be called after the raylib window exists.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	w, h := cfg.Screen.Width, cfg.Screen.Height

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	frameEvery := opts.FrameEvery
	if frameEvery < 1 {
		frameEvery = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		cfg:           cfg,
		rng:           rng,
		field:         systems.NewField(cfg, float64(w), float64(h), rng),
		raster:        renderer.NewRaster(w, h),
		droplets:      renderer.NewDropletRenderer(cfg.Render),
		background:    renderer.NewBackground(),
		loader:        renderer.NewImageLoader(time.Duration(cfg.Background.LoadTimeout * float64(time.Second))),
		bgSource:      cfg.Background.Source,
		bgState:       bgNone,
		ctx:           ctx,
		cancel:        cancel,
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:     telemetry.NewCollector(statsWindow),
		frameEvery:    int32(frameEvery),
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		lastUpdate:    time.Now(),
		width:         w,
		height:        h,
	}
	if opts.Background != "" {
		g.bgSource = opts.Background
	}

	if om, err := telemetry.NewOutputManager(opts.OutputDir); err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
	}

	if opts.Headless {
		frames, err := renderer.NewFrameWriter(opts.FramesDir)
		if err != nil {
			slog.Error("failed to create frame writer", "error", err)
		}
		g.frames = frames
	} else {
		g.hud = ui.NewHUD()
		g.inputPanel = ui.NewInputPanel(300)
		g.presenter = newPresenter()
	}

	g.loadBackground()
	if opts.Headless && g.frames != nil {
		g.waitBackground()
	}

	return g
}

// Field returns the droplet field.
func (g *Game) Field() *systems.Field {
	return g.field
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases all resources.
func (g *Game) Unload() {
	g.cancel()
	if g.presenter != nil {
		g.presenter.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if g.frames != nil {
		slog.Info("frames written", "count", g.frames.Count())
	}
}
