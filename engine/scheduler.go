package engine

import (
	"slices"
	"time"
)

// Scheduler runs callbacks on the UI goroutine after a delay
// The returned cancel func is idempotent and must be called from the UI goroutine
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type manualTimer struct {
	deadline  time.Time
	seq       uint64
	fn        func()
	cancelled bool
}

// ManualScheduler fires callbacks as its mock clock is advanced
// Callbacks run synchronously inside Advance, in deadline order
type ManualScheduler struct {
	*MockTimeProvider

	pending []*manualTimer
	seq     uint64
}

// NewManualScheduler creates a scheduler with its own mock clock at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		MockTimeProvider: NewMockTimeProvider(start),
	}
}

// After implements Scheduler
func (s *ManualScheduler) After(d time.Duration, fn func()) func() {
	s.seq++
	t := &manualTimer{
		deadline: s.Now().Add(d),
		seq:      s.seq,
		fn:       fn,
	}
	s.pending = append(s.pending, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward, firing every callback that falls due
// Callbacks scheduled by callbacks fire too if they fall inside the window
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.Now().Add(d)

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.SetTime(next.deadline)
		if !next.cancelled {
			next.fn()
		}
	}

	s.SetTime(target)
}

// Pending returns the number of live (uncancelled, unfired) timers
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// nextDue removes and returns the earliest timer due at or before limit
func (s *ManualScheduler) nextDue(limit time.Time) *manualTimer {
	idx := -1
	for i, t := range s.pending {
		if t.deadline.After(limit) {
			continue
		}
		if idx < 0 || t.deadline.Before(s.pending[idx].deadline) ||
			(t.deadline.Equal(s.pending[idx].deadline) && t.seq < s.pending[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}

	t := s.pending[idx]
	s.pending = slices.Delete(s.pending, idx, idx+1)
	return t
}
