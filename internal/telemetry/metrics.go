// Package telemetry provides in-process metrics collection for monitoring
// the gateway's cache efficiency and provider traffic.
package telemetry

import (
	"fmt"
	"sync"
	"time"
)

// MetricsCollector provides a thread-safe interface for collecting
// application metrics for monitoring and troubleshooting.
type MetricsCollector struct {
	counters   map[string]int64
	gauges     map[string]float64
	timers     map[string][]time.Duration
	latestTime map[string]time.Time
	mu         sync.RWMutex
}

// Metric names used across the gateway.
const (
	// Response cache
	MetricCacheHits          = "statscache.hits"
	MetricCacheMisses        = "statscache.misses"
	MetricCacheInvalidations = "statscache.invalidations"
	MetricCacheSize          = "statscache.size"

	// Provider client
	MetricProviderCalls        = "provider.calls"
	MetricProviderRetries      = "provider.retries"
	MetricProviderFailures     = "provider.failures"
	MetricProviderResponseTime = "provider.response_time"

	// Parser layer
	MetricParseFailures = "parser.failures"

	// Geocoding collaborator
	MetricGeocodeCalls    = "geocoder.calls"
	MetricGeocodeFailures = "geocoder.failures"
)

// NewMetricsCollector creates a new MetricsCollector instance
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters:   make(map[string]int64),
		gauges:     make(map[string]float64),
		timers:     make(map[string][]time.Duration),
		latestTime: make(map[string]time.Time),
	}
}

// IncrementCounter increments a named counter by the specified amount
func (m *MetricsCollector) IncrementCounter(name string, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[name] += amount
}

// GetCounter returns the current value of a named counter
func (m *MetricsCollector) GetCounter(name string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.counters[name]
}

// SetGauge sets a named gauge to the specified value
func (m *MetricsCollector) SetGauge(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gauges[name] = value
}

// GetGauge returns the current value of a named gauge
func (m *MetricsCollector) GetGauge(name string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.gauges[name]
}

// RecordDuration records a duration sample for a named timer
func (m *MetricsCollector) RecordDuration(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timers[name] = append(m.timers[name], d)
	m.latestTime[name] = time.Now()
}

// AverageDuration returns the mean of all recorded samples for a timer,
// or zero when no samples have been recorded.
func (m *MetricsCollector) AverageDuration(name string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	samples := m.timers[name]
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range samples {
		total += d
	}
	return total / time.Duration(len(samples))
}

// Snapshot returns a copy of all counters and gauges keyed by metric name.
// Timers are reported as their average in milliseconds.
func (m *MetricsCollector) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]interface{}, len(m.counters)+len(m.gauges)+len(m.timers))
	for name, v := range m.counters {
		out[name] = v
	}
	for name, v := range m.gauges {
		out[name] = v
	}
	for name, samples := range m.timers {
		if len(samples) == 0 {
			continue
		}
		var total time.Duration
		for _, d := range samples {
			total += d
		}
		avg := total / time.Duration(len(samples))
		out[fmt.Sprintf("%s.avg_ms", name)] = float64(avg.Microseconds()) / 1000.0
	}
	return out
}

// Reset clears all collected metrics
func (m *MetricsCollector) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters = make(map[string]int64)
	m.gauges = make(map[string]float64)
	m.timers = make(map[string][]time.Duration)
	m.latestTime = make(map[string]time.Time)
}
