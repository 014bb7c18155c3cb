// Package systems provides the droplet field and the per-frame step functions.
package systems

import (
	"math/rand"

	"github.com/pthm-cable/windshield/components"
	"github.com/pthm-cable/windshield/config"
)

// Phase names for one field step.
const (
	PhaseSpawn     = "spawn"
	PhaseIntegrate = "integrate"
	PhaseIndex     = "index"
	PhaseMerge     = "merge"
	PhaseRender    = "render"
)

// Field holds the complete droplet field state.
// All mutation happens on the frame goroutine.
type Field struct {
	cfg *config.Config
	rng *rand.Rand

	Width, Height float64

	TiltX, TiltY float64
	Wind         float64

	// Droplets in spawn order, oldest first.
	Droplets []components.Droplet

	spawnAccumulator float64
	gustTimer        float64

	grid    *SpatialGrid
	visited []int32
}

// StepResult counts what happened to the population during one step.
type StepResult struct {
	Spawned int
	Exited  int
	Evicted int
	Merged  int
}

// PhaseTimer receives phase boundaries from Step. May be nil.
type PhaseTimer interface {
	StartPhase(phase string)
}

// NewField creates an empty field covering a width x height surface.
func NewField(cfg *config.Config, width, height float64, rng *rand.Rand) *Field {
	return &Field{
		cfg:      cfg,
		rng:      rng,
		Width:    width,
		Height:   height,
		TiltX:    cfg.Tilt.X,
		TiltY:    cfg.Tilt.Y,
		Droplets: make([]components.Droplet, 0, cfg.Field.MaxDroplets),
		grid:     NewSpatialGrid(cfg.Field.GridCellSize),
	}
}

// Resize changes the surface bounds. Existing droplets are kept.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
}

// Count returns the number of live droplets.
func (f *Field) Count() int {
	return len(f.Droplets)
}

// MaxDroplets returns the population cap.
func (f *Field) MaxDroplets() int {
	return f.cfg.Field.MaxDroplets
}

// Grid returns the spatial index built during the last step.
func (f *Field) Grid() *SpatialGrid {
	return f.grid
}

// ClampDT bounds a frame delta so a long pause (minimised window, debugger)
// does not produce one giant step.
func ClampDT(dt, maxDT float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}

// Step advances the field by dt seconds: gusts, spawn, integrate,
// rebuild the index, merge.
func (f *Field) Step(dt float64, timer PhaseTimer) StepResult {
	dt = ClampDT(dt, f.cfg.Physics.MaxDT)

	var res StepResult

	f.advanceGusts(dt)

	startPhase(timer, PhaseSpawn)
	res.Spawned = f.Spawn(dt)

	startPhase(timer, PhaseIntegrate)
	ir := f.Integrate(dt)
	res.Exited = ir.Exited
	res.Evicted = ir.Evicted

	startPhase(timer, PhaseIndex)
	f.grid.Rebuild(f.Droplets)

	startPhase(timer, PhaseMerge)
	res.Merged = f.Merge()

	return res
}

func startPhase(timer PhaseTimer, phase string) {
	if timer != nil {
		timer.StartPhase(phase)
	}
}

// compact removes dead droplets in one pass, preserving order.
func (f *Field) compact() int {
	alive := 0
	for i := range f.Droplets {
		if !f.Droplets[i].Alive {
			continue
		}
		f.Droplets[alive] = f.Droplets[i]
		alive++
	}
	removed := len(f.Droplets) - alive
	f.Droplets = f.Droplets[:alive]
	return removed
}
