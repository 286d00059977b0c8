// Package status holds lock-free runtime counters shown in the debug line
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	RollsAccepted   = "rolls.accepted"
	RollsRejected   = "rolls.rejected"
	AudioImpacts    = "audio.impacts"
	AudioClicks     = "audio.clicks"
	AudioSilent     = "audio.silent"
	AudioBackend    = "audio.backend"
	AudioVolume     = "audio.volume"
	SessionsStarted = "sessions.started"
)

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every metric as sorted key=value pairs on one line
func (r *Registry) Summary() string {
	var parts []string

	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})

	return strings.Join(parts, " ")
}
