package term

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/metabolism-visualization/internal/audio"
	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/scene"
	"github.com/iburimskiy/metabolism-visualization/internal/sched"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Host drives the sequencer from a terminal loop. Deferred actions run on
// the loop goroutine only.
type Host struct {
	screen   tcell.Screen
	renderer *Renderer
	sched    *sched.Scheduler
	scene    *scene.Scene
	seq      *viz.Sequencer
	player   *audio.Player
	logger   *log.Logger
	handle   *viz.Handle
	paused   bool
}

// NewHost wires a scene and sequencer onto an initialized screen.
func NewHost(screen tcell.Screen, rng *rand.Rand, player *audio.Player, logger *log.Logger) *Host {
	s := sched.New()
	sc := scene.New(s)
	h := &Host{
		screen:   screen,
		renderer: NewRenderer(screen),
		sched:    s,
		scene:    sc,
		seq:      viz.New(s, sc, rng),
		player:   player,
		logger:   logger,
	}
	player.Attach(h.seq, func() {
		logger.Printf("replay cycle %d", h.seq.Cycles())
	})
	return h
}

// Run animates until ctx is cancelled or the user quits.
func (h *Host) Run(ctx context.Context) error {
	h.handle = h.seq.Start()
	defer h.seq.Stop(h.handle)

	h.screen.HideCursor()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			h.step(now.Sub(last))
			last = now
			h.draw()
		}
	}
}

// step advances the animation clock unless paused.
func (h *Host) step(elapsed time.Duration) {
	if h.paused {
		return
	}
	h.sched.Advance(elapsed)
}

func (h *Host) draw() {
	status := "cycle " + formatCycle(h.seq.CycleTime()) + "  space pause  r replay  q quit"
	if h.paused {
		status = "paused  " + status
	}
	h.renderer.Draw(h.scene, h.sched.Now(), h.player.Level()*config.LevelBoost, status)
}

// handleEvent applies a key or resize event. It returns false to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.paused = !h.paused
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			h.seq.Replay(h.handle)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func formatCycle(d time.Duration) string {
	return fmt.Sprintf("%04.1fs", d.Seconds())
}

// Open initializes the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	return screen, nil
}
