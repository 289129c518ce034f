package vearchstore

import (
	"context"

	"go.uber.org/fx"

	"github.com/vearch-contrib/vearchstore/v1/observability"
	"github.com/vearch-contrib/vearchstore/v1/vearch"
	"github.com/vearch-contrib/vearchstore/v1/vectorstore"
)

// FXModule is an fx.Module that provides and configures the Vearch embedding
// store. This module registers the store with the Fx dependency injection
// framework, making it available to other components in the application both
// as *Store and as the vectorstore.Store interface.
//
// Usage:
//
//	app := fx.New(
//	    vearchstore.FXModule,
//	    fx.Provide(func() vearchstore.Config {
//	        return vearchstore.Config{BaseURL: "http://localhost:9001"}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("vearchstore",
	fx.Provide(
		NewStoreWithDI,
		AsVectorStore,
	),
)

// StoreParams groups the dependencies needed to create a Vearch embedding
// store.
type StoreParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Logger    Logger                 `optional:"true"`
	Observer  observability.Observer `optional:"true"`
}

// NewStoreWithDI creates a new embedding store using dependency injection.
// The store and its transport are fully constructed here, so config and
// schema errors fail the provider; only the database and space bootstrap,
// which needs the network, runs in the application's start hook.
func NewStoreWithDI(params StoreParams) (*Store, error) {
	client, err := vearch.NewClient(&vearch.Config{
		BaseURL: params.Config.BaseURL,
		Timeout: params.Config.Timeout,
	})
	if err != nil {
		return nil, err
	}

	store, err := newStore(params.Config, client)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		store = store.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		store = store.WithObserver(params.Observer)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: store.bootstrap,
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return store, nil
}

// AsVectorStore exposes the concrete store under the backend-agnostic
// interface.
func AsVectorStore(store *Store) vectorstore.Store {
	return store
}
