package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides an interface for collecting and exposing
// application metrics. It abstracts the Prometheus operations the module
// uses, with factories for ad-hoc counters, histograms and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// Built-in store operation metrics

	// RecordOperation increments the operation counter with a status label.
	RecordOperation(operation, status string)

	// RecordOperationDuration records how long an operation took.
	RecordOperationDuration(start time.Time, operation string)

	// AddOperationItems adds to the per-operation item counter.
	AddOperationItems(operation string, count float64)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
