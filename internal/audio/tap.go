package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the renderer can read how loud the cues currently are.
type levelTap struct {
	source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	level     float64
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		source: src,
		buffer: make([][2]float64, ringSize),
	}
}

// Stream passes samples through from the source and keeps a copy of the
// tail in the ring.
func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.source.Stream(samples)
	t.record(samples[:n])
	return n, ok
}

func (t *levelTap) Err() error { return t.source.Err() }

func (t *levelTap) record(samples [][2]float64) {
	if len(samples) == 0 {
		return
	}
	if len(samples) > len(t.buffer) {
		samples = samples[len(samples)-len(t.buffer):]
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(samples) > 0 {
		k := copy(t.buffer[t.nextIndex:], samples)
		samples = samples[k:]
		t.nextIndex = (t.nextIndex + k) % len(t.buffer)
	}
}

// snapshot returns up to last n samples (stereo) from the ring buffer (most recent last).
func (t *levelTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Level returns the smoothed RMS of the most recent n samples, compressed
// into [0,1] for visual use.
func (t *levelTap) Level(n int, smoothing float64) float64 {
	samples := t.snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	mag := math.Min(1, math.Pow(rms, 0.3))

	t.mu.Lock()
	t.level = smoothing*t.level + (1-smoothing)*mag
	level := t.level
	t.mu.Unlock()
	return level
}
