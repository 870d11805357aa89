// Package status exposes lock-free counters and gauges written by the tick loop and read by sinks
package status

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Metric names written by the match
const (
	MetricTicks      = "match.ticks"
	MetricCollisions = "match.collisions"
	MetricGoals      = "match.goals"
	MetricBounces    = "match.bounces"
	MetricRelaunches = "match.relaunches"
	MetricBallSpeed  = "ball.speed"
	MetricPlayerMode = "player.mode"
)

// table maps names to stable pointers
// Lookups take a read lock; callers cache the pointer and write atomics directly
type table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]*T)}
}

func (t *table[T]) get(key string) *T {
	t.mu.RLock()
	if ptr, ok := t.items[key]; ok {
		t.mu.RUnlock()
		return ptr
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	t.items[key] = ptr
	return ptr
}

func (t *table[T]) keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Registry groups counters, gauges and labels by name
type Registry struct {
	counters *table[atomic.Int64]
	gauges   *table[Gauge]
	labels   *table[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		counters: newTable[atomic.Int64](),
		gauges:   newTable[Gauge](),
		labels:   newTable[Label](),
	}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.get(name)
}

// Gauge returns the gauge for name, creating it on first use
func (r *Registry) Gauge(name string) *Gauge {
	return r.gauges.get(name)
}

// Label returns the label for name, creating it on first use
func (r *Registry) Label(name string) *Label {
	return r.labels.get(name)
}

// Sample is one formatted metric reading
type Sample struct {
	Name  string
	Value string
}

// Samples reads every metric in name order, counters first, then gauges, then labels
func (r *Registry) Samples() []Sample {
	var out []Sample
	for _, k := range r.counters.keys() {
		out = append(out, Sample{Name: k, Value: fmt.Sprintf("%d", r.counters.get(k).Load())})
	}
	for _, k := range r.gauges.keys() {
		out = append(out, Sample{Name: k, Value: fmt.Sprintf("%.2f", r.gauges.get(k).Get())})
	}
	for _, k := range r.labels.keys() {
		out = append(out, Sample{Name: k, Value: r.labels.get(k).Get()})
	}
	return out
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return len(r.counters.keys()) + len(r.gauges.keys()) + len(r.labels.keys())
}
