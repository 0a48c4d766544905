package telemetry

import (
	"testing"
	"time"
)

func TestCountersAndGauges(t *testing.T) {
	m := NewMetricsCollector()

	m.IncrementCounter(MetricCacheHits, 1)
	m.IncrementCounter(MetricCacheHits, 2)
	if got := m.GetCounter(MetricCacheHits); got != 3 {
		t.Errorf("Expected counter 3, got %d", got)
	}
	if got := m.GetCounter(MetricCacheMisses); got != 0 {
		t.Errorf("Expected zero for untouched counter, got %d", got)
	}

	m.SetGauge(MetricCacheSize, 7)
	if got := m.GetGauge(MetricCacheSize); got != 7 {
		t.Errorf("Expected gauge 7, got %v", got)
	}
}

func TestAverageDuration(t *testing.T) {
	m := NewMetricsCollector()

	if got := m.AverageDuration(MetricProviderResponseTime); got != 0 {
		t.Errorf("Expected zero average with no samples, got %v", got)
	}

	m.RecordDuration(MetricProviderResponseTime, 100*time.Millisecond)
	m.RecordDuration(MetricProviderResponseTime, 300*time.Millisecond)
	if got := m.AverageDuration(MetricProviderResponseTime); got != 200*time.Millisecond {
		t.Errorf("Expected 200ms average, got %v", got)
	}
}

func TestSnapshotAndReset(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricProviderCalls, 5)
	m.SetGauge(MetricCacheSize, 2)
	m.RecordDuration(MetricProviderResponseTime, 50*time.Millisecond)

	snap := m.Snapshot()
	if snap[MetricProviderCalls] != int64(5) {
		t.Errorf("Expected counter in snapshot, got %v", snap[MetricProviderCalls])
	}
	if snap[MetricCacheSize] != float64(2) {
		t.Errorf("Expected gauge in snapshot, got %v", snap[MetricCacheSize])
	}
	if _, ok := snap[MetricProviderResponseTime+".avg_ms"]; !ok {
		t.Error("Expected timer average in snapshot")
	}

	m.Reset()
	if m.GetCounter(MetricProviderCalls) != 0 {
		t.Error("Expected counters cleared after Reset")
	}
	if len(m.Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot after Reset, got %v", m.Snapshot())
	}
}
