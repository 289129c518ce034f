package metrics

import (
	"github.com/vearch-contrib/vearchstore/v1/observability"
)

// Observer translates store operation events into the built-in Prometheus
// metrics. Attach it to a store via WithObserver:
//
//	m := metrics.NewMetrics(cfg)
//	store.WithObserver(metrics.NewObserver(m))
type Observer struct {
	metrics *Metrics
}

var _ observability.Observer = (*Observer)(nil)

// NewObserver builds an Observer recording into m.
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records one completed operation: a count with its
// outcome, its duration, and the number of items it processed.
func (o *Observer) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}
	o.metrics.operationsTotal.WithLabelValues(op.Operation, status).Inc()
	o.metrics.operationDuration.WithLabelValues(op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		o.metrics.operationItems.WithLabelValues(op.Operation).Add(float64(op.Size))
	}
}
