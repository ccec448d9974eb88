package agent

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks binding resolution statistics. It is safe to read from
// any goroutine.
type Metrics struct {
	// Event counters
	motionEvents atomic.Uint64
	wheelEvents  atomic.Uint64
	clickEvents  atomic.Uint64

	// Resolution counters
	dispatched atomic.Uint64
	misses     atomic.Uint64
	shadowed   atomic.Uint64
	presets    atomic.Uint64

	// Dispatch latency ring buffer
	mu                sync.Mutex
	latencies         []time.Duration
	latencyIdx        int
	maxLatencySamples int

	// Peak latency (all time)
	peakLatency atomic.Int64

	startTime time.Time

	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		latencies:         make([]time.Duration, 256),
		maxLatencySamples: 256,
		startTime:         time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordEvent records an incoming event of kind.
func (m *Metrics) RecordEvent(kind Kind) {
	if !m.enabled.Load() {
		return
	}
	switch kind {
	case KindMotion:
		m.motionEvents.Add(1)
	case KindWheel:
		m.wheelEvents.Add(1)
	case KindClick:
		m.clickEvents.Add(1)
	}
}

// RecordDispatch records a forwarded action and the time taken to resolve it.
func (m *Metrics) RecordDispatch(latency time.Duration) {
	if !m.enabled.Load() {
		return
	}

	m.dispatched.Add(1)

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % m.maxLatencySamples
	m.mu.Unlock()
}

// RecordMiss records a lookup with no binding for a target.
func (m *Metrics) RecordMiss() {
	if !m.enabled.Load() {
		return
	}
	m.misses.Add(1)
}

// RecordShadowed records a lookup that hit a null binding.
func (m *Metrics) RecordShadowed() {
	if !m.enabled.Load() {
		return
	}
	m.shadowed.Add(1)
}

// RecordPreset records a preset application.
func (m *Metrics) RecordPreset() {
	if !m.enabled.Load() {
		return
	}
	m.presets.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	MotionEvents uint64
	WheelEvents  uint64
	ClickEvents  uint64

	Dispatched uint64
	Misses     uint64
	Shadowed   uint64
	Presets    uint64

	AvgLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	EventsPerSecond float64
	Uptime          time.Duration
}

// EventsTotal returns the number of events of all kinds.
func (s MetricsSnapshot) EventsTotal() uint64 {
	return s.MotionEvents + s.WheelEvents + s.ClickEvents
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	latencies := slices.Clone(m.latencies)
	start := m.startTime
	m.mu.Unlock()

	snap := MetricsSnapshot{
		MotionEvents: m.motionEvents.Load(),
		WheelEvents:  m.wheelEvents.Load(),
		ClickEvents:  m.clickEvents.Load(),
		Dispatched:   m.dispatched.Load(),
		Misses:       m.misses.Load(),
		Shadowed:     m.shadowed.Load(),
		Presets:      m.presets.Load(),
		PeakLatency:  time.Duration(m.peakLatency.Load()),
		Uptime:       time.Since(start),
	}

	if snap.Uptime > 0 {
		snap.EventsPerSecond = float64(snap.EventsTotal()) / snap.Uptime.Seconds()
	}
	snap.AvgLatency, snap.P99Latency = latencyStats(latencies)

	return snap
}

// latencyStats computes the average and p99 of the recorded latencies.
func latencyStats(latencies []time.Duration) (avg, p99 time.Duration) {
	valid := slices.DeleteFunc(latencies, func(l time.Duration) bool { return l <= 0 })
	if len(valid) == 0 {
		return 0, 0
	}

	var sum time.Duration
	for _, l := range valid {
		sum += l
	}
	avg = sum / time.Duration(len(valid))

	slices.Sort(valid)
	idx := min(int(float64(len(valid))*0.99), len(valid)-1)
	return avg, valid[idx]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.motionEvents.Store(0)
	m.wheelEvents.Store(0)
	m.clickEvents.Store(0)
	m.dispatched.Store(0)
	m.misses.Store(0)
	m.shadowed.Store(0)
	m.presets.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	clear(m.latencies)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
