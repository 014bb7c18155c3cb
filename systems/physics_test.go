package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/windshield/components"
	"github.com/pthm-cable/windshield/config"
)

func TestIntegrateAdhesion(t *testing.T) {
	cfg := quietConfig()
	f := newTestField(cfg, 800, 600)
	// r=1: threshold 0.065, speed 0.01 stays stuck and relaxes
	f.Droplets = []components.Droplet{{X: 100, Y: 100, VX: 0.01, VY: 0.02, R: 1, Alive: true}}

	f.Integrate(1.0 / 60)

	d := f.Droplets[0]
	if math.Abs(d.VX-0.009) > 1e-12 || math.Abs(d.VY-0.018) > 1e-12 {
		t.Errorf("velocity = (%v, %v), want (0.009, 0.018)", d.VX, d.VY)
	}
}

func TestIntegrateSlidingDamping(t *testing.T) {
	cfg := config.Defaults()
	cfg.Physics.JitterX = 0
	cfg.Physics.JitterY = 0
	f := newTestField(cfg, 800, 600)
	f.Droplets = []components.Droplet{{X: 100, Y: 100, R: 2, Alive: true}}

	f.Integrate(1.0 / 60)

	gx := cfg.Tilt.X * cfg.Physics.TiltGainX
	gy := cfg.Tilt.Y * cfg.Physics.TiltGainY
	d := f.Droplets[0]
	if math.Abs(d.VX-gx) > 1e-12 || math.Abs(d.VY-gy) > 1e-12 {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", d.VX, d.VY, gx, gy)
	}
}

func TestIntegrateDampingByRadius(t *testing.T) {
	tests := []struct {
		name   string
		r      float64
		wantVY float64
	}{
		// damping = 0.985 - min(0.02, r*0.0015)
		{"small drop", 1.5, 0.98275},
		{"mid drop", 10, 0.97},
		{"at floor", 20, 0.965},
		{"beyond floor", 40, 0.965},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			f := newTestField(cfg, 800, 600)
			f.Droplets = []components.Droplet{{X: 400, Y: 100, VY: 1, R: tt.r, Alive: true}}

			f.Integrate(1.0 / 60)

			if got := f.Droplets[0].VY; math.Abs(got-tt.wantVY) > 1e-12 {
				t.Errorf("vy = %v, want %v", got, tt.wantVY)
			}
		})
	}
}

func TestIntegrateTopClamp(t *testing.T) {
	cfg := quietConfig()
	f := newTestField(cfg, 800, 600)
	f.Droplets = []components.Droplet{
		{X: 100, Y: 2.5, VY: -3, R: 2, Alive: true},
		{X: 200, Y: 10, VY: 0, R: 2, Alive: true},
	}

	f.Integrate(1.0 / 60)

	if got := f.Droplets[0].Y; got != 2 {
		t.Errorf("clamped y = %v, want exactly r = 2", got)
	}
	if got := f.Droplets[1].Y; got != 10 {
		t.Errorf("resting y = %v, want 10", got)
	}
}

func TestIntegrateExits(t *testing.T) {
	tests := []struct {
		name string
		d    components.Droplet
		exit bool
	}{
		{"left", components.Droplet{X: -2.5, Y: 100, R: 2}, true},
		{"right", components.Droplet{X: 802.5, Y: 100, R: 2}, true},
		{"bottom", components.Droplet{X: 100, Y: 602.5, R: 2}, true},
		{"left margin", components.Droplet{X: -1.5, Y: 100, R: 2}, false},
		{"right margin", components.Droplet{X: 801.5, Y: 100, R: 2}, false},
		{"bottom margin", components.Droplet{X: 100, Y: 601.5, R: 2}, false},
		{"far above", components.Droplet{X: 100, Y: -50, R: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(quietConfig(), 800, 600)
			d := tt.d
			d.Alive = true
			f.Droplets = []components.Droplet{d}

			res := f.Integrate(1.0 / 60)

			if tt.exit {
				if res.Exited != 1 || f.Count() != 0 {
					t.Errorf("exited=%d count=%d, want removed", res.Exited, f.Count())
				}
			} else if res.Exited != 0 || f.Count() != 1 {
				t.Errorf("exited=%d count=%d, want kept", res.Exited, f.Count())
			}
		})
	}
}

func TestIntegrateEvictsOldest(t *testing.T) {
	cfg := quietConfig()
	cfg.Field.MaxDroplets = 3
	f := newTestField(cfg, 800, 600)
	for i := 0; i < 5; i++ {
		f.Droplets = append(f.Droplets, components.Droplet{X: float64(100 * (i + 1)), Y: 100, R: 2, Alive: true})
	}

	res := f.Integrate(1.0 / 60)

	if res.Evicted != 2 {
		t.Errorf("evicted = %d, want 2", res.Evicted)
	}
	if f.Count() != 3 {
		t.Fatalf("count = %d, want 3", f.Count())
	}
	if f.Droplets[0].X != 300 {
		t.Errorf("oldest kept x = %v, want 300", f.Droplets[0].X)
	}
}

func TestIntegrateWindPushesSideways(t *testing.T) {
	cfg := quietConfig()
	f := newTestField(cfg, 800, 600)
	f.SetWind(0.25)
	f.Droplets = []components.Droplet{{X: 100, Y: 100, VX: 0.1, R: 3, Alive: true}}

	f.Integrate(1.0 / 60)

	if f.Droplets[0].VX <= 0.1*cfg.Physics.Damping {
		t.Errorf("vx = %v, expected wind push", f.Droplets[0].VX)
	}
}
