package scene

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/sched"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

func TestSurfaceNodes(t *testing.T) {
	s := sched.New()
	sc := New(s)
	id := viz.Female.Container()
	a, b := &viz.Node{ID: 1}, &viz.Node{ID: 2}

	sc.AppendNode(id, a)
	sc.AppendNode(id, b)
	sc.AppendNode("missing", a)
	sc.RemoveNode(id, a)
	sc.RemoveNode(id, a)
	sc.RemoveNode("missing", b)

	nodes := sc.Container(id).Nodes
	if len(nodes) != 1 || nodes[0] != b {
		t.Fatalf("expected only node 2, got %v", nodes)
	}
	if sc.HasContainer("missing") || !sc.HasContainer(viz.Male.Container()) {
		t.Error("unexpected container lookup result")
	}
}

func TestPillMarkers(t *testing.T) {
	s := sched.New()
	sc := New(s)
	id := viz.Male.Pill()
	p := sc.Pill(id)

	if p.Stage() != viz.StageIdle {
		t.Fatalf("expected idle, got %v", p.Stage())
	}

	s.Advance(time.Second)
	sc.SetMarker(id, viz.MarkerFalling, true)
	if p.Stage() != viz.StageFalling {
		t.Fatalf("expected falling, got %v", p.Stage())
	}
	if at, ok := p.Since(viz.MarkerFalling); !ok || at != time.Second {
		t.Fatalf("expected falling since 1s, got %v %v", at, ok)
	}

	sc.SetMarker(id, viz.MarkerFalling, false)
	sc.SetMarker(id, viz.MarkerDissolving, true)
	if p.Stage() != viz.StageDissolving {
		t.Fatalf("expected dissolving, got %v", p.Stage())
	}

	sc.ClearMarkers(id)
	if p.Stage() != viz.StageIdle {
		t.Fatalf("expected idle after clear, got %v", p.Stage())
	}
	sc.SetMarker("missing", viz.MarkerFalling, true)
}

func TestPillPoseTimeline(t *testing.T) {
	s := sched.New()
	sc := New(s)
	q := viz.New(s, sc, rand.New(rand.NewPCG(1, 2)))
	q.Start()
	pill := sc.Pill(viz.Female.Pill())

	if pose := PillPose(pill, s.Now()); pose.Y != PillRestY || pose.Alpha != 1 {
		t.Fatalf("idle pill should rest visible, got %+v", pose)
	}

	s.Advance(config.FemaleStartOffset + config.FemaleFall/2)
	mid := PillPose(pill, s.Now())
	if mid.Y <= PillRestY || mid.Y >= PillLandY {
		t.Fatalf("falling pill should be between rest and landing, got %+v", mid)
	}

	s.Advance(config.FemaleFall/2 + config.FemaleDissolve/2)
	half := PillPose(pill, s.Now())
	if math.Abs(half.Alpha-0.5) > 1e-9 {
		t.Fatalf("expected half dissolved, got %+v", half)
	}

	// The male pill finishes dissolving before the reset; the female one
	// is still mid-dissolve when the cycle restarts.
	if done := PillPose(sc.Pill(viz.Male.Pill()), s.Now()); done.Alpha != 0 {
		t.Fatalf("expected male pill fully dissolved, got %+v", done)
	}

	s.Advance(config.ResetInterval - s.Now())
	if reset := PillPose(pill, s.Now()); reset.Y != PillRestY || reset.Alpha != 1 {
		t.Fatalf("expected pill back at rest after reset, got %+v", reset)
	}
}

func TestParticlePose(t *testing.T) {
	n := &viz.Node{X: 50, Y: 50, Size: 4, Speed: 0.8, Delay: time.Second, Duration: 10 * time.Second}

	if p := ParticlePose(n, 500*time.Millisecond); p.Alpha != 0 || p.Y != 0.5 {
		t.Fatalf("particle should be hidden before its delay, got %+v", p)
	}
	half := ParticlePose(n, 6*time.Second)
	if half.Y >= 0.5 {
		t.Errorf("particle should drift upward, got %+v", half)
	}
	if math.Abs(half.Alpha-particleOpacity) > 1e-9 {
		t.Errorf("expected peak opacity mid-loop, got %v", half.Alpha)
	}
	if again := ParticlePose(n, 16*time.Second); math.Abs(again.Y-half.Y) > 1e-9 {
		t.Errorf("particle should loop every duration: %v vs %v", again.Y, half.Y)
	}
}

func TestBubblePose(t *testing.T) {
	n := &viz.Node{Kind: viz.KindBubble, X: 50, Size: 8, Bottom: 40, Lifetime: 2 * time.Second, Born: time.Second}

	start := BubblePose(n, time.Second)
	if math.Abs(start.Y-0.6) > 1e-9 || start.Alpha != bubbleOpacity {
		t.Fatalf("bubble should start at its anchor, got %+v", start)
	}
	end := BubblePose(n, 3*time.Second)
	if end.Y >= start.Y || end.Alpha != 0 {
		t.Fatalf("bubble should rise and fade, got %+v", end)
	}
}

func TestWaveOffset(t *testing.T) {
	w := WaveLayer{Sway: -120, Period: 14 * time.Second}
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{7 * time.Second, -120},
		{14 * time.Second, 0},
		{3500 * time.Millisecond, -60},
	}
	for _, tt := range tests {
		if got := w.Offset(tt.at); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("offset at %v = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestSeaCoverage(t *testing.T) {
	layers := DefaultPanels()[0].Waves
	if c := SeaCoverage(layers, 0, 0, 0, 0); c != 0 {
		t.Errorf("top of sea should be clear, got %v", c)
	}
	bottom := SeaCoverage(layers, 0, config.SeaHeight, 0, 0)
	want := 1 - (1-0.7)*(1-0.5)*(1-0.3)*(1-0.2)
	if math.Abs(bottom-want) > 1e-9 {
		t.Errorf("bottom coverage %v, want %v", bottom, want)
	}
	if SeaY(0) != SeaTop || math.Abs(SeaViewY(SeaY(75))-75) > 1e-9 {
		t.Error("sea coordinate mapping should round-trip")
	}
}
