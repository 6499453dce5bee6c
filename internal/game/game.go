package game

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/metabolism-visualization/internal/audio"
	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/scene"
	"github.com/iburimskiy/metabolism-visualization/internal/sched"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

// Game hosts the sequencer in an ebiten window. Update advances the
// scheduler by one tick, so every deferred action runs on the game loop.
type Game struct {
	sched  *sched.Scheduler
	scene  *scene.Scene
	seq    *viz.Sequencer
	handle *viz.Handle
	player *audio.Player
	logger *log.Logger

	level  float64
	paused bool
	width  int
	height int
}

// New wires the scheduler, scene and sequencer and starts the animation.
func New(rng *rand.Rand, player *audio.Player, logger *log.Logger) *Game {
	s := sched.New()
	sc := scene.New(s)
	g := &Game{
		sched:  s,
		scene:  sc,
		seq:    viz.New(s, sc, rng),
		player: player,
		logger: logger,
		width:  config.WindowWidth,
		height: config.WindowHeight,
	}
	player.Attach(g.seq, g.onReset)
	g.handle = g.seq.Start()
	return g
}

func (g *Game) onReset() {
	g.logger.Printf("replay cycle %d", g.seq.Cycles())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seq.Replay(g.handle)
	}

	if !g.paused {
		g.sched.Advance(time.Second / time.Duration(ebiten.TPS()))
	}
	g.level = g.player.Level()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops the sequencer and its outstanding work.
func (g *Game) Close() {
	g.seq.Stop(g.handle)
	g.player.Close()
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, scale float64) error {
	defer g.Close()
	ebiten.SetWindowSize(int(float64(config.WindowWidth)*scale), int(float64(config.WindowHeight)*scale))
	ebiten.SetWindowTitle("Metabolism - Space: pause, R: replay, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
