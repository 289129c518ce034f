package vearchstore

import (
	"context"
	"errors"
	"testing"

	"github.com/vearch-contrib/vearchstore/v1/observability"
)

type recordingObserver struct {
	events []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(op observability.OperationContext) {
	r.events = append(r.events, op)
}

func TestObserve_NilObserverRunsOperation(t *testing.T) {
	store := &Store{schema: testSchema()}

	ran := false
	err := store.observe(context.Background(), "noop", 0, func() error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("ran=%v err=%v", ran, err)
	}
}

func TestObserve_ReportsError(t *testing.T) {
	store := &Store{schema: testSchema()}
	recorder := &recordingObserver{}
	store.WithObserver(recorder)

	boom := errors.New("boom")
	err := store.observe(context.Background(), "bulk_write", 2, func() error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if len(recorder.events) != 1 {
		t.Fatalf("events = %d", len(recorder.events))
	}
	event := recorder.events[0]
	if !errors.Is(event.Error, boom) || event.Size != 2 || event.Operation != "bulk_write" {
		t.Errorf("event = %+v", event)
	}
	if event.Duration < 0 {
		t.Errorf("duration = %v", event.Duration)
	}
}
