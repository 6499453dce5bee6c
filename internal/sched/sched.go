// Package sched runs deferred actions on a single logical thread.
//
// Time only moves when the host calls Advance, normally once per frame from
// its update loop. Actions never run concurrently and never run inside
// After or Every; they run inside Advance in order of their target time.
package sched

import (
	"container/heap"
	"time"
)

// Timer is a handle to a scheduled action.
type Timer struct {
	s      *Scheduler
	at     time.Duration
	period time.Duration
	seq    uint64
	fn     func()
	index  int
	done   bool
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.s == nil {
		return false
	}
	return t.s.cancel(t)
}

// Scheduler is a time-ordered queue of deferred actions with a virtual clock.
// It is not safe for concurrent use; the owning loop drives it.
type Scheduler struct {
	now   time.Duration
	queue timerQueue
	seq   uint64
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// After schedules fn to run once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run each period, first at now+period.
func (s *Scheduler) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		panic("sched: non-positive period")
	}
	return s.schedule(period, period, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		s:      s,
		at:     s.now + d,
		period: period,
		seq:    s.seq,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	return t
}

func (s *Scheduler) cancel(t *Timer) bool {
	if t.done {
		return false
	}
	t.done = true
	if t.index >= 0 && t.index < len(s.queue) && s.queue[t.index] == t {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Advance moves the clock forward by d and runs every action whose target
// time falls inside the window, including actions scheduled by earlier
// actions in the same window.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.at > target {
			break
		}
		s.now = next.at
		if next.period > 0 {
			next.at += next.period
			heap.Fix(&s.queue, 0)
		} else {
			heap.Pop(&s.queue)
			next.done = true
		}
		next.fn()
	}
	s.now = target
}

// timerQueue orders timers by target time, then by scheduling order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
