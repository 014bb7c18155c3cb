package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/windshield/components"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Droplets    int `csv:"droplets"`
	MaxDroplets int `csv:"max_droplets"`

	// Events during window
	Spawned int `csv:"spawned"`
	Exited  int `csv:"exited"`
	Evicted int `csv:"evicted"`
	Merged  int `csv:"merged"`

	// Radius distribution (sampled at window end)
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`
	RadiusMax  float64 `csv:"radius_max"`

	// Sum of r^2 over live droplets; constant across merges
	TotalArea float64 `csv:"total_area"`

	// Inputs at window end
	TiltX float64 `csv:"tilt_x"`
	TiltY float64 `csv:"tilt_y"`
	Wind  float64 `csv:"wind"`

	BackgroundReady bool `csv:"background_ready"`
}

// RadiusStats holds the distribution summary of droplet radii.
type RadiusStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
	TotalArea     float64
}

// ComputeRadiusStats summarises the radii of a droplet set.
// Returns the zero value for an empty set.
func ComputeRadiusStats(droplets []components.Droplet) RadiusStats {
	n := len(droplets)
	if n == 0 {
		return RadiusStats{}
	}

	radii := make([]float64, n)
	var area float64
	for i := range droplets {
		radii[i] = droplets[i].R
		area += droplets[i].Area()
	}
	sort.Float64s(radii)

	rs := RadiusStats{
		P10:       stat.Quantile(0.10, stat.Empirical, radii, nil),
		P50:       stat.Quantile(0.50, stat.Empirical, radii, nil),
		P90:       stat.Quantile(0.90, stat.Empirical, radii, nil),
		Max:       radii[n-1],
		TotalArea: area,
	}
	if n == 1 {
		rs.Mean = radii[0]
	} else {
		rs.Mean, rs.Std = stat.MeanStdDev(radii, nil)
	}
	return rs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("droplets", s.Droplets),
		slog.Int("max_droplets", s.MaxDroplets),
		slog.Int("spawned", s.Spawned),
		slog.Int("exited", s.Exited),
		slog.Int("evicted", s.Evicted),
		slog.Int("merged", s.Merged),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_std", s.RadiusStd),
		slog.Float64("radius_p10", s.RadiusP10),
		slog.Float64("radius_p50", s.RadiusP50),
		slog.Float64("radius_p90", s.RadiusP90),
		slog.Float64("radius_max", s.RadiusMax),
		slog.Float64("total_area", s.TotalArea),
		slog.Float64("tilt_x", s.TiltX),
		slog.Float64("tilt_y", s.TiltY),
		slog.Float64("wind", s.Wind),
		slog.Bool("background_ready", s.BackgroundReady),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
