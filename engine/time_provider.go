package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is the clock used by animations and timers
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually driven clock anchored at a start time
// Safe for concurrent use
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64 // Nanoseconds since start
}

// NewMockTimeProvider creates a mock clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(m.Elapsed())
}

// Elapsed returns how far the clock has moved from its start
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
