// Package viz generates the decorative particles and bubbles and drives each
// panel's pill through its fall and dissolve sequence.
package viz

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/sched"
)

// Hooks are optional callbacks fired alongside surface mutations.
type Hooks struct {
	Stage  func(v Variant, s Stage)
	Bubble func(v Variant, n *Node)
	Reset  func()
}

// Sequencer owns the timed animation of every profile. All methods must be
// called from the goroutine that advances the scheduler.
type Sequencer struct {
	sched    *sched.Scheduler
	surface  Surface
	rng      *rand.Rand
	profiles []Profile
	hooks    Hooks

	pending map[*sched.Timer]struct{}
	nextID     uint64
	cycles     int
	cycleStart time.Duration
}

// Handle is returned by Start and consumed by Stop.
type Handle struct {
	reset   *sched.Timer
	stopped bool
}

// New creates a sequencer. With no profiles the defaults are used.
func New(s *sched.Scheduler, surface Surface, rng *rand.Rand, profiles ...Profile) *Sequencer {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}
	return &Sequencer{
		sched:    s,
		surface:  surface,
		rng:      rng,
		profiles: profiles,
		pending:  make(map[*sched.Timer]struct{}),
	}
}

// SetHooks replaces the callbacks.
func (q *Sequencer) SetHooks(h Hooks) {
	q.hooks = h
}

// Profiles returns the configured profiles.
func (q *Sequencer) Profiles() []Profile {
	return q.profiles
}

// Cycles returns how many resets have run.
func (q *Sequencer) Cycles() int {
	return q.cycles
}

// CycleTime returns how long ago the current cycle began.
func (q *Sequencer) CycleTime() time.Duration {
	return q.sched.Now() - q.cycleStart
}

func (q *Sequencer) outstanding() int {
	return len(q.pending)
}

// Start populates particles, begins every sequence and arms the periodic
// reset. Calling Start again appends another set of particles.
func (q *Sequencer) Start() *Handle {
	for _, p := range q.profiles {
		q.GenerateParticles(p.Variant.Container(), p.Color, p.Particles)
	}
	q.runAll()
	return &Handle{
		reset: q.sched.Every(config.ResetInterval, q.Reset),
	}
}

// Stop cancels the periodic reset and every outstanding deferred action.
func (q *Sequencer) Stop(h *Handle) {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	h.reset.Stop()
	q.cancelPending()
}

// Replay abandons the running cycle and starts a fresh one now. Pending
// falls, dissolves and bubbles are cancelled and the periodic reset is
// re-armed so the next automatic replay comes a full interval later.
func (q *Sequencer) Replay(h *Handle) {
	if h == nil || h.stopped {
		return
	}
	h.reset.Stop()
	q.cancelPending()
	q.Reset()
	h.reset = q.sched.Every(config.ResetInterval, q.Reset)
}

func (q *Sequencer) cancelPending() {
	for t := range q.pending {
		t.Stop()
	}
	clear(q.pending)
}

// GenerateParticles appends cfg.Count randomized particles to the container.
func (q *Sequencer) GenerateParticles(id ContainerID, color string, cfg ParticleConfig) {
	if !q.surface.HasContainer(id) {
		return
	}
	for i := 0; i < cfg.Count; i++ {
		q.surface.AppendNode(id, q.newParticle(color, cfg))
	}
}

func (q *Sequencer) newParticle(color string, cfg ParticleConfig) *Node {
	q.nextID++
	return &Node{
		ID:       q.nextID,
		Kind:     KindParticle,
		Color:    color,
		Size:     q.uniform(cfg.Size.Min, cfg.Size.Max),
		X:        q.uniform(0, 100),
		Y:        q.uniform(0, 100),
		Speed:    cfg.Speed,
		Delay:    q.duration(0, config.ParticleMaxDelay),
		Duration: q.duration(config.ParticleMinDuration, config.ParticleMaxDuration),
		Born:     q.sched.Now(),
	}
}

// RunSequence schedules the pill's fall at the start offset and its
// dissolve once the fall completes.
func (q *Sequencer) RunSequence(p Profile) {
	pill := p.Variant.Pill()
	q.after(p.Timing.StartOffset, func() {
		if !q.surface.HasPill(pill) {
			return
		}
		q.surface.SetParam(pill, ParamFallDuration, p.Timing.Fall)
		q.surface.SetParam(pill, ParamDissolveDuration, p.Timing.Dissolve)
		q.surface.SetMarker(pill, MarkerFalling, true)
		q.notifyStage(p.Variant, StageFalling)

		q.after(p.Timing.Fall, func() {
			q.surface.SetMarker(pill, MarkerFalling, false)
			q.surface.SetMarker(pill, MarkerDissolving, true)
			q.notifyStage(p.Variant, StageDissolving)
			q.EmitBubbles(p.Variant, p.Timing.BubbleCount, p.Timing.BubbleWindow)
		})
	})
}

// EmitBubbles spreads count bubbles evenly over window. Each bubble removes
// itself once its lifetime elapses.
func (q *Sequencer) EmitBubbles(v Variant, count int, window time.Duration) {
	id := v.Container()
	if count <= 0 || !q.surface.HasContainer(id) {
		return
	}
	interval := window / time.Duration(count)
	for i := 0; i < count; i++ {
		q.after(time.Duration(i)*interval, func() {
			b := q.newBubble()
			q.surface.AppendNode(id, b)
			if q.hooks.Bubble != nil {
				q.hooks.Bubble(v, b)
			}
			q.after(b.Lifetime, func() {
				q.surface.RemoveNode(id, b)
			})
		})
	}
}

func (q *Sequencer) newBubble() *Node {
	q.nextID++
	return &Node{
		ID:       q.nextID,
		Kind:     KindBubble,
		Size:     q.uniform(config.BubbleMinSize, config.BubbleMaxSize),
		X:        q.uniform(config.BubbleMinX, config.BubbleMaxX),
		Bottom:   config.BubbleAnchor,
		Lifetime: q.duration(config.BubbleMinLifetime, config.BubbleMaxLifetime),
		Born:     q.sched.Now(),
	}
}

// Reset returns every pill to idle and restarts the sequences after the
// settle delay.
func (q *Sequencer) Reset() {
	q.cycles++
	q.cycleStart = q.sched.Now()
	for _, p := range q.profiles {
		pill := p.Variant.Pill()
		if q.surface.HasPill(pill) {
			q.surface.ClearMarkers(pill)
			q.notifyStage(p.Variant, StageIdle)
		}
	}
	if q.hooks.Reset != nil {
		q.hooks.Reset()
	}
	q.after(config.SettleDelay, q.runAll)
}

func (q *Sequencer) runAll() {
	for _, p := range q.profiles {
		q.RunSequence(p)
	}
}

func (q *Sequencer) notifyStage(v Variant, s Stage) {
	if q.hooks.Stage != nil {
		q.hooks.Stage(v, s)
	}
}

// after schedules a tracked one-shot so Stop can cancel it.
func (q *Sequencer) after(d time.Duration, fn func()) {
	var t *sched.Timer
	t = q.sched.After(d, func() {
		delete(q.pending, t)
		fn()
	})
	q.pending[t] = struct{}{}
}

func (q *Sequencer) uniform(lo, hi float64) float64 {
	return lo + q.rng.Float64()*(hi-lo)
}

func (q *Sequencer) duration(lo, hi time.Duration) time.Duration {
	return lo + time.Duration(q.rng.Float64()*float64(hi-lo))
}
