// Package components defines the records mutated by the simulation systems.
package components

import "math"

// Droplet is a water bead on the glass.
// Velocity is in surface units per frame at the base frame rate.
type Droplet struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Alive  bool
}

// Area returns the squared radius, used as the droplet's mass.
func (d *Droplet) Area() float64 {
	return d.R * d.R
}

// Absorb merges other into d, conserving area and area-weighting
// position and velocity. other is marked dead.
func (d *Droplet) Absorb(other *Droplet) {
	a := d.Area()
	b := other.Area()
	total := a + b

	d.X = (d.X*a + other.X*b) / total
	d.Y = (d.Y*a + other.Y*b) / total
	d.VX = (d.VX*a + other.VX*b) / total
	d.VY = (d.VY*a + other.VY*b) / total
	d.R = math.Sqrt(total)

	other.Alive = false
}
