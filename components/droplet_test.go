package components

import (
	"math"
	"testing"
)

func TestAbsorbConservesArea(t *testing.T) {
	tests := []struct {
		name   string
		ra, rb float64
		want   float64
	}{
		{"equal unit", 1, 1, math.Sqrt2},
		{"equal two", 2, 2, 2.8284271},
		{"uneven", 3, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Droplet{R: tt.ra, Alive: true}
			b := Droplet{R: tt.rb, Alive: true}
			a.Absorb(&b)

			if math.Abs(a.R-tt.want) > 1e-6 {
				t.Errorf("merged radius = %v, want %v", a.R, tt.want)
			}
			if b.Alive {
				t.Error("absorbed droplet should be dead")
			}
			if !a.Alive {
				t.Error("absorbing droplet should stay alive")
			}
		})
	}
}

func TestAbsorbWeightsByArea(t *testing.T) {
	// Areas 9 and 16: weights 9/25 and 16/25
	a := Droplet{X: 0, Y: 0, VX: 1, VY: 0, R: 3, Alive: true}
	b := Droplet{X: 25, Y: 50, VX: 0, VY: 2, R: 4, Alive: true}
	a.Absorb(&b)

	if math.Abs(a.X-16) > 1e-9 {
		t.Errorf("X = %v, want 16", a.X)
	}
	if math.Abs(a.Y-32) > 1e-9 {
		t.Errorf("Y = %v, want 32", a.Y)
	}
	if math.Abs(a.VX-0.36) > 1e-9 {
		t.Errorf("VX = %v, want 0.36", a.VX)
	}
	if math.Abs(a.VY-1.28) > 1e-9 {
		t.Errorf("VY = %v, want 1.28", a.VY)
	}
}

func TestAbsorbSymmetricAverage(t *testing.T) {
	a := Droplet{X: 10, Y: 20, VX: 0.5, VY: 0.25, R: 1, Alive: true}
	b := a
	a.Absorb(&b)

	if a.X != 10 || a.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", a.X, a.Y)
	}
	if a.VX != 0.5 || a.VY != 0.25 {
		t.Errorf("velocity = (%v, %v), want (0.5, 0.25)", a.VX, a.VY)
	}
}
