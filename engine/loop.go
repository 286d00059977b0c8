package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Loop is the single UI goroutine: all session state is touched only from tasks it runs
// Timer callbacks and input events are posted onto it from other goroutines
type Loop struct {
	clock TimeProvider
	tasks chan func()

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	frames atomic.Uint64
}

// NewLoop creates a loop with a bounded task queue
func NewLoop(clock TimeProvider, queueSize int) *Loop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Loop{
		clock:    clock,
		tasks:    make(chan func(), queueSize),
		stopChan: make(chan struct{}),
	}
}

// Now returns the loop clock's time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Post queues fn to run on the loop goroutine
// Blocks while the queue is full; returns false once the loop is stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// After implements Scheduler
// fn runs on the loop goroutine; cancel suppresses it even if the timer already fired
func (l *Loop) After(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Run executes posted tasks and calls onFrame every frame interval until Stop
// Must be called from the goroutine that owns UI state
func (l *Loop) Run(frame time.Duration, onFrame func(now time.Time)) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return

		case fn := <-l.tasks:
			fn()

		case <-ticker.C:
			l.frames.Add(1)
			if onFrame != nil {
				onFrame(l.clock.Now())
			}
		}
	}
}

// Stop halts the loop; idempotent
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Stopped returns a channel closed when Stop is called
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopChan
}

// Frames returns the number of frame ticks delivered
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
