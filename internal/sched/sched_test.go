package sched

import (
	"testing"
	"time"
)

func TestAfterFiresAtTargetTime(t *testing.T) {
	s := New()
	var firedAt time.Duration = -1
	s.After(1000*time.Millisecond, func() { firedAt = s.Now() })

	s.Advance(999 * time.Millisecond)
	if firedAt != -1 {
		t.Fatalf("fired early at %v", firedAt)
	}

	s.Advance(1 * time.Millisecond)
	if firedAt != 1000*time.Millisecond {
		t.Fatalf("expected fire at 1s, got %v", firedAt)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty queue, got %d", s.Len())
	}
}

func TestAdvanceRunsInTimeOrder(t *testing.T) {
	s := New()
	var order []int
	s.After(300*time.Millisecond, func() { order = append(order, 3) })
	s.After(100*time.Millisecond, func() { order = append(order, 1) })
	s.After(200*time.Millisecond, func() { order = append(order, 2) })

	s.Advance(time.Second)

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if s.Now() != time.Second {
		t.Errorf("expected clock at 1s, got %v", s.Now())
	}
}

func TestNestedSchedulingInsideWindow(t *testing.T) {
	s := New()
	var innerAt time.Duration = -1
	s.After(100*time.Millisecond, func() {
		s.After(0, func() { innerAt = s.Now() })
	})

	s.Advance(100 * time.Millisecond)
	if innerAt != 100*time.Millisecond {
		t.Fatalf("expected zero-delay action at 100ms, got %v", innerAt)
	}
}

func TestEveryRepeatsUntilStopped(t *testing.T) {
	s := New()
	var fires []time.Duration
	tm := s.Every(10*time.Second, func() { fires = append(fires, s.Now()) })

	s.Advance(35 * time.Second)
	if len(fires) != 3 {
		t.Fatalf("expected 3 fires, got %v", fires)
	}
	for i, at := range fires {
		if want := time.Duration(i+1) * 10 * time.Second; at != want {
			t.Errorf("fire %d at %v, want %v", i, at, want)
		}
	}

	if !tm.Stop() {
		t.Fatal("expected Stop to report pending timer")
	}
	s.Advance(time.Minute)
	if len(fires) != 3 {
		t.Fatalf("expected no fires after Stop, got %v", fires)
	}
	if tm.Stop() {
		t.Error("second Stop should report false")
	}
}

func TestEveryStopFromOwnCallback(t *testing.T) {
	s := New()
	count := 0
	var tm *Timer
	tm = s.Every(time.Second, func() {
		count++
		if count == 2 {
			tm.Stop()
		}
	})

	s.Advance(10 * time.Second)
	if count != 2 {
		t.Fatalf("expected 2 fires, got %d", count)
	}
	if tm.Stop() {
		t.Error("timer should not be pending")
	}
}

func TestStopOneShot(t *testing.T) {
	s := New()
	fired := false
	a := s.After(time.Second, func() { fired = true })
	b := s.After(2*time.Second, func() {})

	if !a.Stop() {
		t.Fatal("expected pending timer")
	}
	s.Advance(3 * time.Second)
	if fired {
		t.Fatal("cancelled timer fired")
	}
	if b.Stop() {
		t.Error("fired timer still pending")
	}
}

func TestNegativeAdvanceIgnored(t *testing.T) {
	s := New()
	s.Advance(time.Second)
	s.Advance(-time.Second)
	if s.Now() != time.Second {
		t.Fatalf("expected 1s, got %v", s.Now())
	}
}
