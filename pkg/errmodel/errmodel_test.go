package errmodel

import (
	"errors"
	"testing"
)

func TestNewAndFrom(t *testing.T) {
	e := Validation("missing", "field missing", map[string]any{"field": "aggregate_uuid"})
	if e.Category != CategoryValidation || e.Code != "missing" {
		t.Fatalf("unexpected: %#v", e)
	}
	if got := From(e); got != e {
		t.Fatalf("From should return same error instance")
	}
}

func TestFrom_WrapsUnknownErrors(t *testing.T) {
	e := From(errors.New("boom"))
	if e.Category != CategorySystem || e.Code != "internal" {
		t.Fatalf("unexpected: %#v", e)
	}
}

func TestIsCategory(t *testing.T) {
	e := Transition("illegal_transition", "cannot move", map[string]any{"from": "completed"})
	if !IsCategory(e, CategoryTransition) {
		t.Fatal("expected transition category")
	}
	if IsCategory(e, CategoryValidation) {
		t.Fatal("unexpected validation category")
	}
}

func TestTruncateLongMessage(t *testing.T) {
	long := make([]byte, 1024)
	for i := range long {
		long[i] = 'x'
	}
	e := System("internal", string(long), nil, nil)
	if len(e.Message) != 512 {
		t.Fatalf("len=%d want 512", len(e.Message))
	}
}
