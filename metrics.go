package gaussgen

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives timing and volume of each generation step.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSample is called after the in-memory generation of n points in
	// k clusters.
	RecordSample(n, k int, duration time.Duration, err error)

	// RecordWrite is called after each artifact is persisted. bytes is the
	// stored size, after compression.
	RecordWrite(name string, bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSample(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordWrite(string, int64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SampleCount      atomic.Int64
	SampleErrors     atomic.Int64
	SampledPoints    atomic.Int64
	SampleTotalNanos atomic.Int64
	WriteCount       atomic.Int64
	WriteErrors      atomic.Int64
	WrittenBytes     atomic.Int64
	WriteTotalNanos  atomic.Int64
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample(n, _ int, duration time.Duration, err error) {
	b.SampleCount.Add(1)
	b.SampleTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SampleErrors.Add(1)
		return
	}
	b.SampledPoints.Add(int64(n))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(_ string, bytes int64, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WrittenBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SampleCount:    b.SampleCount.Load(),
		SampleErrors:   b.SampleErrors.Load(),
		SampledPoints:  b.SampledPoints.Load(),
		SampleAvgNanos: avg(b.SampleTotalNanos.Load(), b.SampleCount.Load()),
		WriteCount:     b.WriteCount.Load(),
		WriteErrors:    b.WriteErrors.Load(),
		WrittenBytes:   b.WrittenBytes.Load(),
		WriteAvgNanos:  avg(b.WriteTotalNanos.Load(), b.WriteCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SampleCount    int64
	SampleErrors   int64
	SampledPoints  int64
	SampleAvgNanos int64
	WriteCount     int64
	WriteErrors    int64
	WrittenBytes   int64
	WriteAvgNanos  int64
}
