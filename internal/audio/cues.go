package audio

import (
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

// Bubble cue pitch per panel
var bubblePitch = map[viz.Variant]float64{
	viz.Female: 520,
	viz.Male:   780,
}

// Attach installs hooks on q that play a fizz when a pill starts
// dissolving and a blip per bubble. onReset, if non-nil, runs on every
// replay.
func (p *Player) Attach(q *viz.Sequencer, onReset func()) {
	fizz := make(map[viz.Variant]time.Duration, len(q.Profiles()))
	for _, prof := range q.Profiles() {
		fizz[prof.Variant] = prof.Timing.BubbleWindow / 4
	}
	q.SetHooks(viz.Hooks{
		Stage: func(v viz.Variant, st viz.Stage) {
			if st == viz.StageDissolving {
				p.Fizz(fizz[v])
			}
		},
		Bubble: func(v viz.Variant, _ *viz.Node) {
			p.Bubble(bubblePitch[v])
		},
		Reset: onReset,
	})
}
