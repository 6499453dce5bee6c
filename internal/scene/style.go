package scene

import (
	"math"
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

// Vertical landmarks as fractions of a panel's visualization area, top down.
const (
	PillRestY   = 0.08
	PillLandY   = 0.66
	SeaFraction = 0.45
	SeaTop      = 1 - SeaFraction
)

const (
	particleDrift   = 0.25
	particleWobble  = 0.02
	particleOpacity = 0.6
	bubbleRise      = 0.9
	bubbleOpacity   = 0.8
	dissolveSink    = 0.05
	waveLength      = 400.0
)

// Pose is where and how visible an element is in one frame. X and Y are
// fractions of the visualization area; Size is in the node's own units
// (pixels for particles and bubbles, a scale factor for the pill).
type Pose struct {
	X, Y  float64
	Size  float64
	Alpha float64
}

// PillPose interprets the pill's markers and timing parameters.
func PillPose(p *Pill, now time.Duration) Pose {
	pose := Pose{X: 0.5, Y: PillRestY, Size: 1, Alpha: 1}
	switch p.Stage() {
	case viz.StageFalling:
		since, _ := p.Since(viz.MarkerFalling)
		t := progress(now-since, p.Params[viz.ParamFallDuration])
		pose.Y = lerp(PillRestY, PillLandY, t*t)
	case viz.StageDissolving:
		since, _ := p.Since(viz.MarkerDissolving)
		t := progress(now-since, p.Params[viz.ParamDissolveDuration])
		pose.Y = PillLandY + dissolveSink*t
		pose.Size = 1 - 0.8*t
		pose.Alpha = 1 - t
	}
	return pose
}

// ParticlePose loops a particle upward over its duration, starting after
// its delay.
func ParticlePose(n *viz.Node, now time.Duration) Pose {
	pose := Pose{X: n.X / 100, Y: n.Y / 100, Size: n.Size}
	local := now - n.Born - n.Delay
	if local < 0 || n.Duration <= 0 {
		return pose
	}
	t := float64(local%n.Duration) / float64(n.Duration)
	pose.Y -= t * particleDrift * n.Speed
	if pose.Y < 0 {
		pose.Y += 1
	}
	pose.X += particleWobble * math.Sin(2*math.Pi*t)
	pose.Alpha = particleOpacity * math.Sin(math.Pi*t)
	return pose
}

// BubblePose floats a bubble from its anchor towards the top of the panel
// over its lifetime, fading as it goes.
func BubblePose(n *viz.Node, now time.Duration) Pose {
	t := progress(now-n.Born, n.Lifetime)
	anchor := n.Bottom / 100
	bottom := anchor + t*(1-anchor)*bubbleRise
	return Pose{
		X:     n.X/100 + 0.01*math.Sin(4*math.Pi*t),
		Y:     1 - bottom,
		Size:  n.Size * (1 + 0.3*t),
		Alpha: bubbleOpacity * (1 - t),
	}
}

// Offset returns the layer's horizontal translation in viewBox units.
func (w WaveLayer) Offset(now time.Duration) float64 {
	if w.Period <= 0 {
		return 0
	}
	phase := float64(now%w.Period) / float64(w.Period)
	if phase < 0.5 {
		return w.Sway * phase * 2
	}
	return w.Sway * (2 - 2*phase)
}

// Height returns the layer's surface y at x, both in viewBox units. boost
// scales the crest, 0 leaving it unchanged.
func (w WaveLayer) Height(x float64, now time.Duration, boost float64) float64 {
	amp := w.Crest / 2 * (1 + boost)
	return w.Baseline + amp*math.Sin(2*math.Pi*(x-w.Offset(now))/waveLength)
}

// SeaCoverage returns the combined opacity of every layer covering the
// viewBox point (x, y).
func SeaCoverage(layers []WaveLayer, x, y float64, now time.Duration, boost float64) float64 {
	through := 1.0
	for _, w := range layers {
		if y >= w.Height(x, now, boost) {
			through *= 1 - w.Opacity
		}
	}
	return 1 - through
}

// SeaY maps a viewBox y to a fraction of the visualization area.
func SeaY(v float64) float64 {
	return SeaTop + v/config.SeaHeight*SeaFraction
}

// SeaViewY maps a fraction of the visualization area to a viewBox y.
func SeaViewY(y float64) float64 {
	return (y - SeaTop) / SeaFraction * config.SeaHeight
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(total))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
