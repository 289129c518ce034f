// Package metrics provides Prometheus-based monitoring for the module.
//
// It maintains an isolated registry with built-in store operation metrics
// (counts, durations, item counts), exposes it over an HTTP /metrics
// endpoint, and ships an Observer that plugs into the vearchstore package to
// record every store operation automatically.
//
// # Core Features
//
//   - Dedicated Prometheus registry per service, labelled with the service name
//   - Built-in counters and histograms for store operations
//   - Observer bridging store operation events to Prometheus
//   - Factories for registering ad-hoc counters, histograms and gauges
//   - Optional Go runtime, process and build info collectors
//   - Managed HTTP server lifecycle with Fx integration
//
// # Basic Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "vearchstore",
//	})
//	go m.Server.ListenAndServe()
//
//	store, _ := vearchstore.NewStore(ctx, cfg)
//	store.WithObserver(metrics.NewObserver(m))
//
// Every Add, Search and DeleteSpace call now shows up under
// vearch_operations_total, vearch_operation_duration_seconds and
// vearch_operation_items_total.
package metrics
