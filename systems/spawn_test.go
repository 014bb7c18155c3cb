package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/windshield/config"
)

func TestSpawnMatchesAccumulator(t *testing.T) {
	cfg := config.Defaults()
	cfg.Field.MaxDroplets = 100000
	f := newTestField(cfg, 800, 600)

	dt := 1.0 / 60
	inc := 800 * cfg.Spawn.BaseRatePerPx * (dt * cfg.Physics.BaseFPS)

	acc := 0.0
	want := 0
	got := 0
	for frame := 0; frame < 257; frame++ {
		acc += inc
		for acc >= 1 {
			acc--
			want++
		}
		got += f.Spawn(dt)

		if got != want {
			t.Fatalf("frame %d: spawned %d, want %d", frame, got, want)
		}
	}

	if math.Abs(f.SpawnBacklog()-acc) > 1e-12 {
		t.Errorf("backlog = %v, want %v", f.SpawnBacklog(), acc)
	}
	// Total agrees with the closed form up to accumulated rounding
	closed := math.Floor(257 * inc)
	if math.Abs(float64(got)-closed) > 1 {
		t.Errorf("spawned %d, closed form %v", got, closed)
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	cfg := config.Defaults()
	a := NewField(cfg, 800, 600, rand.New(rand.NewSource(7)))
	b := NewField(cfg, 800, 600, rand.New(rand.NewSource(7)))

	for frame := 0; frame < 120; frame++ {
		a.Spawn(1.0 / 60)
		b.Spawn(1.0 / 60)
	}

	if a.Count() != b.Count() {
		t.Fatalf("counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i := range a.Droplets {
		if a.Droplets[i] != b.Droplets[i] {
			t.Fatalf("droplet %d differs: %+v vs %+v", i, a.Droplets[i], b.Droplets[i])
		}
	}
}

func TestSpawnRanges(t *testing.T) {
	cfg := config.Defaults()
	f := newTestField(cfg, 800, 600)

	for frame := 0; frame < 300; frame++ {
		f.Spawn(1.0 / 60)
	}
	if f.Count() == 0 {
		t.Fatal("nothing spawned")
	}

	maxVX := cfg.Spawn.MaxSpeedX / 2
	for i, d := range f.Droplets {
		if d.R < cfg.Spawn.MinRadius || d.R >= cfg.Spawn.MaxRadius {
			t.Errorf("droplet %d radius %v outside [%v, %v)", i, d.R, cfg.Spawn.MinRadius, cfg.Spawn.MaxRadius)
		}
		if d.X < 0 || d.X >= 800 {
			t.Errorf("droplet %d x %v outside surface", i, d.X)
		}
		if d.Y < 0 || d.Y >= 600*cfg.Spawn.TopFraction {
			t.Errorf("droplet %d y %v outside top band", i, d.Y)
		}
		if d.VX < -maxVX || d.VX >= maxVX {
			t.Errorf("droplet %d vx %v outside [%v, %v)", i, d.VX, -maxVX, maxVX)
		}
		if d.VY != 0 {
			t.Errorf("droplet %d vy = %v, want 0", i, d.VY)
		}
		if !d.Alive {
			t.Errorf("droplet %d spawned dead", i)
		}
	}
}

// 800px wide surface at 60Hz for 600 frames: population only grows until
// the cap is reached, then stays there.
func TestSpawnScenarioUntilCap(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		wantMax int
	}{
		{"below cap", 1200, 864}, // 600 * 800 * 0.0018 = 864
		{"hits cap", 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Field.MaxDroplets = tt.cap
			f := newTestField(cfg, 800, 600)

			prev := 0
			for frame := 0; frame < 600; frame++ {
				f.Spawn(1.0 / 60)
				n := f.Count()
				if n < prev {
					t.Fatalf("frame %d: population dropped from %d to %d", frame, prev, n)
				}
				if n > tt.cap {
					t.Fatalf("frame %d: population %d over cap %d", frame, n, tt.cap)
				}
				prev = n
			}

			if diff := f.Count() - tt.wantMax; diff < -1 || diff > 0 {
				t.Errorf("final population = %d, want %d (or one less from rounding)", f.Count(), tt.wantMax)
			}
		})
	}
}

func TestSpawnBlockedKeepsBacklog(t *testing.T) {
	cfg := config.Defaults()
	cfg.Field.MaxDroplets = 0
	f := newTestField(cfg, 800, 600)

	for frame := 0; frame < 10; frame++ {
		if n := f.Spawn(1.0 / 60); n != 0 {
			t.Fatalf("spawned %d with zero cap", n)
		}
	}
	if f.SpawnBacklog() < 10 {
		t.Errorf("backlog = %v, want accumulated value >= 10", f.SpawnBacklog())
	}
}
