package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/metabolism-visualization/internal/audio"
	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/game"
	"github.com/iburimskiy/metabolism-visualization/internal/term"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	flag.StringVar(&settings.Backend, "backend", settings.Backend, "renderer: window or terminal")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "random seed, 0 for time-based")
	flag.BoolVar(&settings.Mute, "mute", settings.Mute, "disable sound cues")
	flag.Float64Var(&settings.Scale, "scale", settings.Scale, "window scale")
	flag.Parse()
	if err := settings.Validate(); err != nil {
		config.Exitf("config: %v", err)
	}

	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(settings.Seed), uint64(settings.Seed)>>1|1))

	switch settings.Backend {
	case config.BackendTerminal:
		err = runTerminal(settings, rng)
	default:
		err = runWindow(settings, rng)
	}
	if err != nil {
		config.Exitf("metabolism: %v", err)
	}
}

func runWindow(settings config.Settings, rng *rand.Rand) error {
	logger := log.New(os.Stderr, "[metabolism] ", log.LstdFlags)
	logger.Printf("seed %d", settings.Seed)

	player := audio.NewPlayer()
	if !settings.Mute {
		if err := player.Init(); err != nil {
			// Non-fatal, the animation runs without sound
			logger.Printf("audio disabled: %v", err)
		}
	}

	g := game.New(rng, player, logger)
	if err := game.Run(g, settings.Scale); err != nil {
		if dlgErr := zenity.Error(err.Error(), zenity.Title("Metabolism")); dlgErr != nil {
			logger.Printf("error dialog: %v", dlgErr)
		}
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runTerminal(settings config.Settings, rng *rand.Rand) error {
	// stdout belongs to the screen
	var out io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "[metabolism] ", log.LstdFlags)
	logger.Printf("seed %d", settings.Seed)

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player := audio.NewPlayer()
	if !settings.Mute {
		if err := player.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
	}
	defer player.Close()

	return term.NewHost(screen, rng, player, logger).Run(ctx)
}
