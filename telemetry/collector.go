package telemetry

import "github.com/pthm-cable/windshield/systems"

// Collector accumulates step results within time windows and produces WindowStats.
// Windows are measured in simulated seconds so variable frame deltas flush
// at the same cadence as fixed headless ticks.
type Collector struct {
	windowDurationSec float64

	tick    int32
	simTime float64

	windowStartTick int32
	windowStartTime float64

	// Event counters for current window
	spawned int
	exited  int
	evicted int
	merged  int
}

// NewCollector creates a new stats collector.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 1
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// RecordStep adds one step's counts. dt is the clamped step length.
func (c *Collector) RecordStep(res systems.StepResult, dt float64) {
	c.tick++
	c.simTime += dt
	c.spawned += res.Spawned
	c.exited += res.Exited
	c.evicted += res.Evicted
	c.merged += res.Merged
}

// Tick returns the number of steps recorded so far.
func (c *Collector) Tick() int32 {
	return c.tick
}

// SimTime returns the simulated seconds recorded so far.
func (c *Collector) SimTime() float64 {
	return c.simTime
}

// ShouldFlush returns true once the current window has covered its duration.
func (c *Collector) ShouldFlush() bool {
	return c.simTime-c.windowStartTime >= c.windowDurationSec
}

// Flush produces a WindowStats from the field's current state and resets
// counters for the next window.
func (c *Collector) Flush(f *systems.Field, backgroundReady bool) WindowStats {
	rs := ComputeRadiusStats(f.Droplets)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   c.tick,
		SimTimeSec:      c.simTime,

		Droplets:    f.Count(),
		MaxDroplets: f.MaxDroplets(),

		Spawned: c.spawned,
		Exited:  c.exited,
		Evicted: c.evicted,
		Merged:  c.merged,

		RadiusMean: rs.Mean,
		RadiusStd:  rs.Std,
		RadiusP10:  rs.P10,
		RadiusP50:  rs.P50,
		RadiusP90:  rs.P90,
		RadiusMax:  rs.Max,
		TotalArea:  rs.TotalArea,

		TiltX: f.TiltX,
		TiltY: f.TiltY,
		Wind:  f.Wind,

		BackgroundReady: backgroundReady,
	}

	c.windowStartTick = c.tick
	c.windowStartTime = c.simTime
	c.spawned = 0
	c.exited = 0
	c.evicted = 0
	c.merged = 0

	return stats
}
