package systems

import "math"

// Merge fuses overlapping droplets. Droplets are visited in index order;
// each absorbs every distinct live neighbour whose interpenetration depth
// exceeds overlap_factor * min(ra, rb). An absorbed droplet takes no further
// part in this sweep. Returns the number of merges.
func (f *Field) Merge() int {
	n := len(f.Droplets)
	if n < 2 {
		return 0
	}
	factor := f.cfg.Merge.OverlapFactor

	f.visited = resizeStamps(f.visited, n)

	merged := 0
	for i := 0; i < n; i++ {
		a := &f.Droplets[i]
		if !a.Alive {
			continue
		}

		stamp := int32(i + 1)
		cx, cy := f.grid.CellOf(a.X, a.Y)
		for oy := -1; oy <= 1; oy++ {
			for ox := -1; ox <= 1; ox++ {
				for _, j := range f.grid.Cell(cx+ox, cy+oy) {
					if j == i || j >= n || f.visited[j] == stamp {
						continue
					}
					f.visited[j] = stamp

					b := &f.Droplets[j]
					if !b.Alive {
						continue
					}

					if overlapDepth(a.X, a.Y, a.R, b.X, b.Y, b.R) > min(a.R, b.R)*factor {
						a.Absorb(b)
						merged++
					}
				}
			}
		}
	}

	if merged > 0 {
		f.compact()
	}
	return merged
}

// overlapDepth returns ra + rb - distance between centres.
func overlapDepth(ax, ay, ar, bx, by, br float64) float64 {
	return ar + br - math.Hypot(bx-ax, by-ay)
}

func resizeStamps(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	s = s[:n]
	clear(s)
	return s
}
