package systems

import "github.com/pthm-cable/windshield/components"

// Spawn adds new droplets near the top of the surface.
// The fractional spawn count carries over between frames so the rate
// does not depend on frame timing. Returns the number spawned.
func (f *Field) Spawn(dt float64) int {
	sc := f.cfg.Spawn
	f.spawnAccumulator += f.Width * sc.BaseRatePerPx * (dt * f.cfg.Physics.BaseFPS)

	maxDroplets := f.cfg.Field.MaxDroplets
	spawned := 0
	for f.spawnAccumulator >= 1 && len(f.Droplets) < maxDroplets {
		f.spawnAccumulator--

		r := f.rng.Float64()*(sc.MaxRadius-sc.MinRadius) + sc.MinRadius
		x := f.rng.Float64() * f.Width
		y := f.rng.Float64() * (f.Height * sc.TopFraction)
		f.Droplets = append(f.Droplets, components.Droplet{
			X:     x,
			Y:     y,
			R:     r,
			VX:    (f.rng.Float64() - 0.5) * sc.MaxSpeedX,
			VY:    0,
			Alive: true,
		})
		spawned++
	}

	return spawned
}

// SpawnBacklog returns the fractional spawn count carried to the next frame.
func (f *Field) SpawnBacklog() float64 {
	return f.spawnAccumulator
}
