package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vearch-contrib/vearchstore/v1/observability"
)

func TestObserver_RecordsOperation(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})
	observer := NewObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "vearchstore",
		Operation: "bulk_write",
		Duration:  25 * time.Millisecond,
		Size:      3,
	})
	observer.ObserveOperation(observability.OperationContext{
		Component: "vearchstore",
		Operation: "bulk_write",
		Duration:  10 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	success := testutil.ToFloat64(m.operationsTotal.WithLabelValues("bulk_write", "success"))
	if success != 1 {
		t.Errorf("success count = %v", success)
	}
	failed := testutil.ToFloat64(m.operationsTotal.WithLabelValues("bulk_write", "error"))
	if failed != 1 {
		t.Errorf("error count = %v", failed)
	}
	items := testutil.ToFloat64(m.operationItems.WithLabelValues("bulk_write"))
	if items != 3 {
		t.Errorf("items = %v", items)
	}
}

func TestNewMetrics_ServesRegistry(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test", EnableDefaultCollectors: true})
	if m.Server == nil || m.Registry == nil {
		t.Fatal("metrics not fully initialized")
	}

	m.RecordOperation("search", "success")
	m.RecordOperationDuration(time.Now(), "search")
	m.AddOperationItems("search", 5)

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected registered metric families")
	}
}
