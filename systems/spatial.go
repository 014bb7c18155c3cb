package systems

import (
	"math"

	"github.com/pthm-cable/windshield/components"
)

// SpatialGrid buckets droplet indices into square cells.
// Each droplet is registered in the 3x3 block around its own cell, so the
// list of a droplet's own cell already holds every droplet from the
// neighbouring cells.
type SpatialGrid struct {
	cellSize float64
	cells    map[int64][]int
}

// NewSpatialGrid creates an empty grid with the given cell size.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[int64][]int, 256),
	}
}

// CellSize returns the cell edge length.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// cellKey packs cell coordinates into one map key.
func cellKey(cx, cy int) int64 {
	return int64(cy)<<32 | int64(uint32(cx))
}

// CellOf returns the cell coordinates containing (x, y).
func (g *SpatialGrid) CellOf(x, y float64) (cx, cy int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// Clear empties every cell, keeping allocated capacity.
func (g *SpatialGrid) Clear() {
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
}

// Rebuild clears the grid and registers every live droplet.
func (g *SpatialGrid) Rebuild(droplets []components.Droplet) {
	g.Clear()
	for i := range droplets {
		d := &droplets[i]
		if !d.Alive {
			continue
		}
		cx, cy := g.CellOf(d.X, d.Y)
		for oy := -1; oy <= 1; oy++ {
			for ox := -1; ox <= 1; ox++ {
				k := cellKey(cx+ox, cy+oy)
				g.cells[k] = append(g.cells[k], i)
			}
		}
	}
}

// Cell returns the droplet indices registered in cell (cx, cy).
// The slice is owned by the grid and valid until the next Rebuild.
func (g *SpatialGrid) Cell(cx, cy int) []int {
	return g.cells[cellKey(cx, cy)]
}
