package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyFrames     = "engine.frames"
	KeyGeneration = "director.generation"
	KeyPhase      = "director.phase"
	KeyRequested  = "fetch.requested"
	KeyObtained   = "fetch.obtained"
	KeyStale      = "fetch.stale"
	KeyCatches    = "input.catches"
	KeyFrameMs    = "engine.frame_ms"
)

// Registry is the central metrics facade
// Writers cache pointers once; the debug line reads them through Line
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders every metric as "key=value" pairs in key order, grouped by type
func (r *Registry) Line() string {
	var parts []string
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
