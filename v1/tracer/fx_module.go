package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the tracer and its operation
// observer, and registers the provider's shutdown hook so pending spans are
// flushed on application stop.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "vearchstore", EnableExport: true}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		NewObserver,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts down the tracer provider when the
// application stops, flushing any buffered spans to the exporter.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.tracer == nil {
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
