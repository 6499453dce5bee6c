// Package audio synthesizes the short cues played while pills dissolve and
// exposes the output level so the sea can react to it.
package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	bubbleLength = 70 * time.Millisecond
	bubbleGain   = 0.12
	fizzGain     = 0.05
	cueVolume    = -1.5
	levelWindow  = 2048
)

// Player mixes cues into the speaker. The zero value and a Player whose
// Init failed are silent.
type Player struct {
	mixer   *beep.Mixer
	tap     *levelTap
	enabled bool
}

// NewPlayer returns a silent player; call Init to open the audio device.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer: mixer,
		tap:   newLevelTap(mixer, config.VisualRingSize),
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.enabled = true
	return nil
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Close stops playback.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.enabled = false
}

// Bubble plays a short rising blip around freq Hz.
func (p *Player) Bubble(freq float64) {
	p.play(Blip(sampleRate, freq, bubbleLength, bubbleGain))
}

// Fizz plays a decaying burst of noise lasting d.
func (p *Player) Fizz(d time.Duration) {
	p.play(Noise(sampleRate, d, fizzGain))
}

func (p *Player) play(s beep.Streamer) {
	if !p.Enabled() {
		return
	}
	v := &effects.Volume{Streamer: s, Base: 2, Volume: cueVolume}
	speaker.Lock()
	p.mixer.Add(v)
	speaker.Unlock()
}

// Level returns the smoothed output level in [0,1].
func (p *Player) Level() float64 {
	if !p.Enabled() {
		return 0
	}
	return p.tap.Level(levelWindow, config.SmoothingFactor)
}

// Blip is a sine that glides up an octave while decaying to silence.
func Blip(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	n := sr.N(d)
	i := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			t := float64(i) / float64(n)
			phase += 2 * math.Pi * freq * (1 + t) / float64(sr)
			v := math.Sin(phase) * gain * (1 - t)
			samples[k] = [2]float64{v, v}
			i++
		}
		return k, true
	})
}

// Noise is white noise with a linear fade out.
func Noise(sr beep.SampleRate, d time.Duration, gain float64) beep.Streamer {
	n := sr.N(d)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			env := 1 - float64(i)/float64(n)
			v := (rand.Float64()*2 - 1) * gain * env
			samples[k] = [2]float64{v, v}
			i++
		}
		return k, true
	})
}
