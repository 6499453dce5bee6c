package term

import (
	"context"
	"io"
	"log"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/metabolism-visualization/internal/audio"
	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

func newSimHost(t *testing.T, w, h int) (tcell.SimulationScreen, *Host) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	host := NewHost(screen, rand.New(rand.NewPCG(3, 4)), audio.NewPlayer(), log.New(io.Discard, "", 0))
	return screen, host
}

func rowText(screen tcell.Screen, y, x0, x1 int) string {
	var b strings.Builder
	for x := x0; x < x1; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func countRune(screen tcell.Screen, want rune, x0, x1, y0, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == want {
				n++
			}
		}
	}
	return n
}

func TestRendererDrawsPanelChrome(t *testing.T) {
	screen, host := newSimHost(t, 100, 30)
	host.seq.Start()
	host.draw()

	left := rowText(screen, 1, 0, 50)
	right := rowText(screen, 1, 50, 100)
	if !strings.Contains(left, "Female Metabolism") {
		t.Errorf("left header missing title: %q", left)
	}
	if !strings.Contains(right, "Male Metabolism") {
		t.Errorf("right header missing title: %q", right)
	}
	if !strings.Contains(rowText(screen, 2, 0, 50), "Sustained Processing") {
		t.Error("left subtitle missing")
	}
	if !strings.Contains(rowText(screen, 27, 0, 50), "●") {
		t.Errorf("chart dots missing: %q", rowText(screen, 27, 0, 50))
	}
	if !strings.Contains(rowText(screen, 28, 0, 50), "INGESTION") {
		t.Errorf("footer label missing: %q", rowText(screen, 28, 0, 50))
	}
	if !strings.Contains(rowText(screen, 29, 0, 100), "cycle") {
		t.Error("status line missing")
	}
}

func TestRendererShowsPillAndBubbles(t *testing.T) {
	screen, host := newSimHost(t, 100, 30)
	host.seq.Start()

	// Idle pills rest near the top of each area.
	host.draw()
	if n := countRune(screen, '█', 0, 100, headerRows, 26); n == 0 {
		t.Fatal("expected resting pills to be drawn")
	}

	// Male pill is dissolving and bubbles are rising.
	host.step(config.MaleStartOffset + config.MaleFall + 500*time.Millisecond)
	host.draw()
	bubbles := countRune(screen, 'o', 50, 100, headerRows, 26) + countRune(screen, 'O', 50, 100, headerRows, 26)
	if bubbles == 0 {
		t.Fatal("expected bubbles in the male panel")
	}
}

func TestHostKeys(t *testing.T) {
	_, host := newSimHost(t, 80, 24)
	host.handle = host.seq.Start()
	defer host.seq.Stop(host.handle)

	if !host.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !host.paused {
		t.Fatal("space should pause")
	}
	host.step(time.Minute)
	if host.sched.Now() != 0 {
		t.Fatalf("paused host should not advance, clock at %v", host.sched.Now())
	}

	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if host.seq.Cycles() != 1 {
		t.Fatalf("r should force a replay, got %d cycles", host.seq.Cycles())
	}
	host.step(config.SettleDelay + config.FemaleStartOffset)
	if st := host.scene.Pill(viz.Female.Pill()).Stage(); st != viz.StageFalling {
		t.Fatalf("expected falling after forced replay, got %v", st)
	}

	if host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if host.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	_, host := newSimHost(t, 80, 24)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- host.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFormatCycle(t *testing.T) {
	if got := formatCycle(3400 * time.Millisecond); got != "03.4s" {
		t.Fatalf("got %q", got)
	}
}
