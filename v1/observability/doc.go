// Package observability defines the Observer contract shared by all adapter
// packages in this library.
//
// Adapter packages (vearch, vearchstore) accept an optional Observer and
// report every completed operation to it: operation name, resource, duration,
// error and size. Concrete observers translate those events into Prometheus
// metrics (see the metrics package) or OpenTelemetry spans (see the tracer
// package) without the adapters depending on either.
//
// Usage:
//
//	store := store.WithObserver(myObserver)
//
// Observers must tolerate being called concurrently.
package observability
