package status

import "sync/atomic"

// Metric keys published by the engine
const (
	KeyTicks     = "game.ticks"
	KeyPickups   = "game.pickups"
	KeyLength    = "snake.length"
	KeyApples    = "apples.count"
	KeySaturated = "apples.saturated"
	KeyRunning   = "game.running"
)

// Registry is the session statistics facade
// The engine caches pointers at construction; tick code writes directly to atomics
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Snapshot copies every integer metric in key order
func (r *Registry) Snapshot() []Sample {
	samples := make([]Sample, 0, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		samples = append(samples, Sample{Key: key, Value: v.Load()})
	})
	return samples
}

// Sample is a point-in-time integer metric value
type Sample struct {
	Key   string
	Value int64
}
