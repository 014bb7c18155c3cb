package systems

// ApplyTiltSample nudges the tilt vector toward an orientation sample.
// lateral and frontBack are in degrees (left-right and front-back tilt).
// Exponential smoothing keeps sensor noise from shaking the field.
func (f *Field) ApplyTiltSample(lateral, frontBack float64) {
	tc := f.cfg.Tilt
	targetX := clampFloat(lateral/45, -1, 1)
	targetY := clampFloat(0.8+(frontBack/90)*0.6, tc.MinY, tc.MaxY)

	f.TiltX = f.TiltX*tc.Smoothing + targetX*(1-tc.Smoothing)
	f.TiltY = f.TiltY*tc.Smoothing + targetY*(1-tc.Smoothing)
}

// SetTilt sets the tilt vector directly. y is clamped to the configured
// down-slope range and x to [-1, 1].
func (f *Field) SetTilt(x, y float64) {
	f.TiltX = clampFloat(x, -1, 1)
	f.TiltY = clampFloat(y, f.cfg.Tilt.MinY, f.cfg.Tilt.MaxY)
}

// ResetTilt restores the configured resting tilt.
func (f *Field) ResetTilt() {
	f.TiltX = f.cfg.Tilt.X
	f.TiltY = f.cfg.Tilt.Y
}

// SetWind sets the wind scalar, clamped to the configured bounds.
func (f *Field) SetWind(w float64) {
	f.Wind = clampFloat(w, -f.cfg.Wind.Max, f.cfg.Wind.Max)
}

// Gust perturbs the wind by a random amount within the configured strength.
func (f *Field) Gust() {
	f.SetWind(f.Wind + (f.rng.Float64()-0.5)*f.cfg.Wind.GustStrength)
}

// advanceGusts fires one gust per elapsed gust interval of simulated time.
func (f *Field) advanceGusts(dt float64) {
	interval := f.cfg.Wind.GustInterval
	if interval <= 0 {
		return
	}
	f.gustTimer += dt
	for f.gustTimer >= interval {
		f.gustTimer -= interval
		f.Gust()
	}
}
