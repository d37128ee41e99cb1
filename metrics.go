package hypergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGenerate is called after each embedding generation call.
	// nodes is the number of node vectors attempted, duration is the total
	// time taken, err is nil if successful.
	RecordGenerate(nodes int, duration time.Duration, err error)

	// RecordBatchGenerate is called after each chunked generation call.
	// chunks is the number of internal partitions used.
	RecordBatchGenerate(nodes, chunks int, duration time.Duration, err error)

	// RecordDistance is called after each distance computation.
	RecordDistance(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, time.Duration, error)           {}
func (NoopMetricsCollector) RecordBatchGenerate(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDistance(time.Duration, error)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GenerateNodes      atomic.Int64
	GenerateTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchErrors        atomic.Int64
	BatchChunks        atomic.Int64
	DistanceCount      atomic.Int64
	DistanceErrors     atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(nodes int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateNodes.Add(int64(nodes))
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
	}
}

// RecordBatchGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchGenerate(nodes, chunks int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchChunks.Add(int64(chunks))
	b.GenerateNodes.Add(int64(nodes))
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(duration time.Duration, err error) {
	b.DistanceCount.Add(1)
	if err != nil {
		b.DistanceErrors.Add(1)
	}
}
