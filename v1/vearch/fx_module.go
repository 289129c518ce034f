package vearch

import (
	"context"

	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides and configures the Vearch client.
// This module registers the client with the Fx dependency injection
// framework, making it available to other components in the application.
//
// Usage:
//
//	app := fx.New(
//	    vearch.FXModule,
//	    fx.Provide(func() *vearch.Config {
//	        return vearch.FromBaseURL("http://localhost:9001")
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("vearch",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterVearchLifecycle),
)

// VearchParams groups the dependencies needed to create a Vearch client.
type VearchParams struct {
	fx.In

	Config *Config
	Logger Logger `optional:"true"`
}

// NewClientWithDI creates a new Vearch client using dependency injection.
// The optional logger is attached before the client is handed to the
// container.
func NewClientWithDI(params VearchParams) (*Client, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		client = client.WithLogger(params.Logger)
	}
	return client, nil
}

// RegisterVearchLifecycle registers the Vearch client with the fx lifecycle
// system: the cluster is pinged on start to fail fast on connectivity
// problems, and idle connections are released on stop.
func RegisterVearchLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
