package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/windshield/components"
	"github.com/pthm-cable/windshield/config"
)

// quietConfig returns defaults with tilt, wind and jitter switched off so
// motion is fully determined by the test setup.
func quietConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Tilt.X = 0
	cfg.Tilt.Y = 0
	cfg.Physics.JitterX = 0
	cfg.Physics.JitterY = 0
	cfg.Wind.GustInterval = 0
	return cfg
}

func newTestField(cfg *config.Config, w, h float64) *Field {
	return NewField(cfg, w, h, rand.New(rand.NewSource(42)))
}

func TestClampDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal frame", 1.0 / 60, 1.0 / 60},
		{"at limit", 0.05, 0.05},
		{"tab resume", 3.2, 0.05},
		{"negative", -0.01, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDT(tt.dt, 0.05); got != tt.want {
				t.Errorf("ClampDT(%v) = %v, want %v", tt.dt, got, tt.want)
			}
		})
	}
}

func TestStepKeepsInvariants(t *testing.T) {
	cfg := config.Defaults()
	cfg.Field.MaxDroplets = 300
	f := newTestField(cfg, 800, 600)

	for frame := 0; frame < 1200; frame++ {
		f.Step(1.0/60, nil)

		if f.Count() > cfg.Field.MaxDroplets {
			t.Fatalf("frame %d: population %d exceeds cap %d", frame, f.Count(), cfg.Field.MaxDroplets)
		}
		for i := range f.Droplets {
			d := &f.Droplets[i]
			if !d.Alive {
				t.Fatalf("frame %d: dead droplet %d left in live set", frame, i)
			}
			if d.R <= 0 {
				t.Fatalf("frame %d: droplet %d has radius %v", frame, i, d.R)
			}
		}
	}
}

func TestStepReportsActivity(t *testing.T) {
	f := newTestField(config.Defaults(), 800, 400)

	var total StepResult
	for frame := 0; frame < 3000; frame++ {
		res := f.Step(1.0/60, nil)
		total.Spawned += res.Spawned
		total.Exited += res.Exited
		total.Merged += res.Merged
	}

	if total.Spawned == 0 {
		t.Error("expected droplets to spawn")
	}
	if total.Exited == 0 {
		t.Error("expected droplets to slide off the bottom")
	}
	if total.Merged == 0 {
		t.Error("expected some droplets to merge")
	}
	if got, want := f.Count(), total.Spawned-total.Exited-total.Merged-total.Evicted; got != want {
		t.Errorf("population = %d, want spawned-exited-merged-evicted = %d", got, want)
	}
}

type recordingTimer struct {
	phases []string
}

func (r *recordingTimer) StartPhase(phase string) {
	r.phases = append(r.phases, phase)
}

func TestStepPhaseOrder(t *testing.T) {
	f := newTestField(config.Defaults(), 800, 600)
	timer := &recordingTimer{}
	f.Step(1.0/60, timer)

	want := []string{PhaseSpawn, PhaseIntegrate, PhaseIndex, PhaseMerge}
	if len(timer.phases) != len(want) {
		t.Fatalf("phases = %v, want %v", timer.phases, want)
	}
	for i := range want {
		if timer.phases[i] != want[i] {
			t.Errorf("phase %d = %s, want %s", i, timer.phases[i], want[i])
		}
	}
}

func TestStepClampsLongFrames(t *testing.T) {
	cfg := quietConfig()
	f := newTestField(cfg, 800, 600)
	f.Droplets = append(f.Droplets, components.Droplet{X: 400, Y: 300, VX: 1, R: 3, Alive: true})
	cfg.Spawn.BaseRatePerPx = 0

	f.Step(10, nil)

	// v stays above adhesion, so one step at max_dt moves by v*damping*0.05*60
	damping := cfg.Physics.Damping - math.Min(cfg.Physics.DampingMaxDrop, 3*cfg.Physics.DampingPerR)
	wantX := 400 + damping*cfg.Physics.MaxDT*cfg.Physics.BaseFPS
	if math.Abs(f.Droplets[0].X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v (dt clamped)", f.Droplets[0].X, wantX)
	}
}

func TestResizeKeepsDroplets(t *testing.T) {
	f := newTestField(config.Defaults(), 800, 600)
	for i := 0; i < 30; i++ {
		f.Spawn(1.0 / 60)
	}
	before := f.Count()

	f.Resize(1024, 768)

	if f.Width != 1024 || f.Height != 768 {
		t.Errorf("bounds = %vx%v, want 1024x768", f.Width, f.Height)
	}
	if f.Count() != before {
		t.Errorf("count = %d after resize, want %d", f.Count(), before)
	}
}
