package vearchstore

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/vearch-contrib/vearchstore/v1/vectorstore"
)

func TestFXModule_ConstructsEagerlyAndBootstrapsOnStart(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/list/db":
			_, _ = io.WriteString(w, `{"code":200,"data":[{"name":"embedding_db"}]}`)
		case "/list/space":
			_, _ = io.WriteString(w, `{"code":200,"data":[{"name":"embedding_space"}]}`)
		default:
			_, _ = io.WriteString(w, `{"code":200,"msg":"success"}`)
		}
	}))
	defer server.Close()

	var store *Store
	var asInterface vectorstore.Store
	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			return Config{BaseURL: server.URL, Schema: testSchema()}
		}),
		fx.Populate(&store, &asInterface),
	)

	// Providers have already run at this point. The store must be usable,
	// not a zero value waiting for the start hook to fill it in.
	if store == nil || store.schema == nil || store.transport == nil {
		t.Fatalf("store not constructed by provider: %+v", store)
	}
	if asInterface != vectorstore.Store(store) {
		t.Error("interface binding does not expose the same store")
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("provider made %d network calls, want 0", got)
	}

	app.RequireStart()
	if got := requests.Load(); got == 0 {
		t.Error("expected bootstrap network calls after start")
	}
	app.RequireStop()
}

func TestFXModule_InvalidConfigFailsProvider(t *testing.T) {
	var store *Store
	app := fx.New(
		fx.NopLogger,
		FXModule,
		fx.Provide(func() Config {
			return Config{} // no base URL
		}),
		fx.Populate(&store),
	)
	if app.Err() == nil {
		t.Fatal("expected provider error for missing base URL")
	}
}
