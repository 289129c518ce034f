// Package tracer provides OpenTelemetry-based distributed tracing for the
// module.
//
// It wraps the OpenTelemetry SDK behind a small API for starting spans,
// recording errors, attaching attributes and propagating trace context, and
// ships an Observer that turns store operation events into client spans.
//
// # Core Features
//
//   - OTLP HTTP export, configured through the standard OTEL_* environment variables
//   - W3C trace context and baggage propagation
//   - Observer emitting one backdated span per store operation
//   - Managed provider lifecycle with Fx integration
//
// # Basic Usage
//
//	tracerClient := tracer.NewClient(tracer.Config{
//	    ServiceName:  "vearchstore",
//	    EnableExport: true,
//	}, log)
//
//	store, _ := vearchstore.NewStore(ctx, cfg)
//	store.WithObserver(tracer.NewObserver(tracerClient))
package tracer
