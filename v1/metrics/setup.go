package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it on /metrics for scraping.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service keeps its own isolated registry to prevent metric name
	// collisions.
	Registry *prometheus.Registry

	// Built-in store operation metrics
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationItems    *prometheus.CounterVec
}

// NewMetrics builds a Metrics instance: a dedicated registry with the store
// operation metrics registered under a constant "service" label, optional
// default runtime collectors, and an HTTP server serving the registry.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "vearchstore",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
// Metrics are then available at http://localhost:9090/metrics.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// Every metric carries service="<cfg.ServiceName>" so dashboards can
	// aggregate across instances.
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec(
		"vearch_operations_total",
		"Total number of store operations, labelled by operation and outcome",
		[]string{"operation", "status"})
	m.operationDuration = createHistogramVec(
		"vearch_operation_duration_seconds",
		"Duration of store operations in seconds",
		[]string{"operation"},
		prometheus.DefBuckets)
	m.operationItems = createCounterVec(
		"vearch_operation_items_total",
		"Items processed per operation: documents written, hits requested",
		[]string{"operation"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.operationItems,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}
