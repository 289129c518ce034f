package observability

import "time"

// OperationContext describes a single completed operation against a backing
// service. It is the unit of information passed from adapter packages to an
// Observer.
type OperationContext struct {
	// Component identifies the adapter package emitting the event, e.g. "vearchstore".
	Component string

	// Operation is the logical operation name, e.g. "bulk_write" or "search".
	Operation string

	// Resource is the primary resource the operation touched, e.g. the space name.
	Resource string

	// SubResource carries additional context, e.g. the database name.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error the operation returned, or nil on success.
	Error error

	// Size is an operation-specific magnitude: documents written, hits returned.
	Size int64

	// Metadata carries any extra key-value context.
	Metadata map[string]interface{}
}

// Observer receives operation events from adapter packages.
//
// Implementations must be safe for concurrent use; adapters invoke
// ObserveOperation from whatever goroutine executed the operation.
// The metrics and tracer packages both ship Observer implementations.
type Observer interface {
	ObserveOperation(op OperationContext)
}
