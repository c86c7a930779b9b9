package goConsole

import (
	"testing"
	"time"
)

func TestMetricsDisabledIsInert(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricAuthSuccess)
	m.Observe(MetricWriteLatency, time.Millisecond)

	if m.Value(MetricAuthSuccess) != 0 {
		t.Fatal("disabled metrics recorded a count")
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot not empty: %+v", snap)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	for i := 0; i < 3; i++ {
		m.Inc(MetricChunksWritten)
	}
	m.Inc(MetricBytesDropped)

	if got := m.Value(MetricChunksWritten); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricChunksWritten] != 3 || snap.Counters[MetricBytesDropped] != 1 {
		t.Fatalf("snapshot mismatch: %+v", snap.Counters)
	}
}

func TestMetricsOutOfRangeIDIgnored(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(metricIDCount)
	m.Inc(metricIDCount + 100)

	if got := m.Value(metricIDCount); got != 0 {
		t.Fatalf("out-of-range ID recorded: %d", got)
	}
}

func TestWriteLatencyHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricWriteLatency, 2*time.Millisecond)   // bucket 0
	m.Observe(MetricWriteLatency, 30*time.Millisecond)  // bucket 2
	m.Observe(MetricWriteLatency, 400*time.Millisecond) // bucket 6
	m.Observe(MetricWriteLatency, 2*time.Second)        // bucket 7

	// Non-latency IDs must not grow histograms.
	m.Observe(MetricChunksWritten, time.Millisecond)

	snap := m.Snapshot()
	buckets, ok := snap.Histograms[MetricWriteLatency]
	if !ok {
		t.Fatal("missing write latency histogram")
	}
	want := map[int]uint64{0: 1, 2: 1, 6: 1, 7: 1}
	for i, count := range buckets {
		if count != want[i] {
			t.Fatalf("bucket %d: expected %d, got %d", i, want[i], count)
		}
	}
	if _, exists := snap.Histograms[MetricChunksWritten]; exists {
		t.Fatal("histogram recorded for a counter-only metric")
	}
}

func TestHistogramRequiresOptIn(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Observe(MetricWriteLatency, time.Millisecond)

	snap := m.Snapshot()
	if len(snap.Histograms) != 0 {
		t.Fatal("histogram recorded without opt-in")
	}
}

func TestNilMetricsSafe(t *testing.T) {
	var m *Metrics

	m.Inc(MetricAuthSuccess)
	m.Observe(MetricWriteLatency, time.Millisecond)
	if m.Value(MetricAuthSuccess) != 0 {
		t.Fatal("nil metrics returned a value")
	}
	if m.Enabled() || m.LatencyEnabled() {
		t.Fatal("nil metrics reported enabled")
	}
}
