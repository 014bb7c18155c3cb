package systems

import "math"

// IntegrateResult counts droplets removed by the integrator.
type IntegrateResult struct {
	Exited  int // left through the left, right or bottom edge
	Evicted int // oldest droplets dropped to respect the cap
}

// Integrate advances droplet velocities and positions by dt seconds.
//
// Small droplets stick: when the trial velocity (current velocity plus the
// tilt and wind push) is below an adhesion threshold that shrinks with
// radius, the push is not applied and the droplet slows down instead.
func (f *Field) Integrate(dt float64) IntegrateResult {
	pc := f.cfg.Physics
	gx := f.TiltX*pc.TiltGainX + f.Wind*pc.WindGain
	gy := f.TiltY * pc.TiltGainY
	step := dt * pc.BaseFPS

	var res IntegrateResult
	for i := range f.Droplets {
		d := &f.Droplets[i]
		if !d.Alive {
			continue
		}

		adhesion := pc.Adhesion / math.Max(1.0, d.R)
		trialVX := d.VX + gx
		trialVY := d.VY + gy

		if math.Hypot(trialVX, trialVY) < adhesion {
			d.VX *= pc.StaticFriction
			d.VY *= pc.StaticFriction
		} else {
			// Damping shrinks linearly with radius down to a floor
			damping := pc.Damping - math.Min(pc.DampingMaxDrop, d.R*pc.DampingPerR)
			d.VX = d.VX*damping + gx
			d.VY = d.VY*damping + gy
		}

		d.VX += (f.rng.Float64() - 0.5) * pc.JitterX
		d.VY += (f.rng.Float64() - 0.5) * pc.JitterY

		d.X += d.VX * step
		d.Y += d.VY * step

		if d.X < -d.R || d.X > f.Width+d.R || d.Y > f.Height+d.R {
			d.Alive = false
			res.Exited++
			continue
		}
		// Pin against the top edge instead of clipping
		if d.Y < d.R {
			d.Y = d.R
		}
	}

	f.compact()
	res.Evicted = f.enforceCap()

	return res
}

// enforceCap drops the oldest droplets beyond the population cap.
func (f *Field) enforceCap() int {
	excess := len(f.Droplets) - f.cfg.Field.MaxDroplets
	if excess <= 0 {
		return 0
	}
	for i := 0; i < excess; i++ {
		f.Droplets[i].Alive = false
	}
	n := copy(f.Droplets, f.Droplets[excess:])
	f.Droplets = f.Droplets[:n]
	return excess
}
