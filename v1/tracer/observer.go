package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/vearch-contrib/vearchstore/v1/observability"
)

// Observer emits one span per completed store operation. Because the
// operation has already finished when the event arrives, the span is
// backdated to the operation's start and ended at the current time, so the
// recorded duration matches the real one.
//
//	store.WithObserver(tracer.NewObserver(tracerClient))
type Observer struct {
	tracer *Tracer
}

var _ observability.Observer = (*Observer)(nil)

// NewObserver builds an Observer emitting through t.
func NewObserver(t *Tracer) *Observer {
	return &Observer{tracer: t}
}

// ObserveOperation records the operation as a root span named
// "<component>.<operation>" with the resource names and size as attributes.
func (o *Observer) ObserveOperation(op observability.OperationContext) {
	end := time.Now()
	start := end.Add(-op.Duration)

	tracer := o.tracer.tracer.Tracer("")
	_, span := tracer.Start(context.Background(), op.Component+"."+op.Operation,
		traceSpan.WithTimestamp(start),
		traceSpan.WithSpanKind(traceSpan.SpanKindClient),
	)

	span.SetAttributes(
		attribute.String("db.system", "vearch"),
		attribute.String("db.operation", op.Operation),
		attribute.String("db.name", op.SubResource),
		attribute.String("db.collection", op.Resource),
		attribute.Int64("db.items", op.Size),
	)
	for k, v := range op.Metadata {
		o.tracer.SetAttributes(span, map[string]interface{}{k: v})
	}

	if op.Error != nil {
		span.RecordError(op.Error)
		span.SetStatus(codes.Error, op.Error.Error())
	}

	span.End(traceSpan.WithTimestamp(end))
}
