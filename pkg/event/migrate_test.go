package event

import (
	"strings"
	"testing"
)

func TestMigrate_Identity(t *testing.T) {
	m := NewMigrator()
	payload := map[string]any{"a": 1}
	out, err := m.Migrate("billing.invoiced", 2, 2, payload)
	if err != nil {
		t.Fatal(err)
	}
	if out["a"] != 1 {
		t.Fatalf("payload changed: %#v", out)
	}
}

func TestMigrate_ChainAppliesInOrder(t *testing.T) {
	m := NewMigrator()
	if err := m.Register("billing.invoiced", 1, func(p map[string]any) (map[string]any, error) {
		p["currency"] = "USD"
		return p, nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.Register("billing.invoiced", 2, func(p map[string]any) (map[string]any, error) {
		p["amount_cents"] = int(p["amount"].(float64) * 100)
		return p, nil
	}); err != nil {
		t.Fatal(err)
	}

	out, err := m.Migrate("billing.invoiced", 1, 3, map[string]any{"amount": 12.5})
	if err != nil {
		t.Fatal(err)
	}
	if out["currency"] != "USD" || out["amount_cents"] != 1250 {
		t.Fatalf("unexpected payload: %#v", out)
	}
}

func TestMigrate_GapNamesMissingVersion(t *testing.T) {
	m := NewMigrator()
	if err := m.Register("billing.invoiced", 1, func(p map[string]any) (map[string]any, error) { return p, nil }); err != nil {
		t.Fatal(err)
	}
	_, err := m.Migrate("billing.invoiced", 1, 3, map[string]any{})
	if !IsMigrationGap(err) {
		t.Fatalf("want migration gap, got %v", err)
	}
	if !strings.Contains(err.Error(), "2") || !strings.Contains(err.Error(), "billing.invoiced") {
		t.Fatalf("gap error must name the missing (type, version): %v", err)
	}
}

func TestMigrate_RejectsBackward(t *testing.T) {
	m := NewMigrator()
	if _, err := m.Migrate("billing.invoiced", 3, 1, map[string]any{}); err == nil {
		t.Fatal("backward migration accepted")
	}
}

func TestHasPath(t *testing.T) {
	m := NewMigrator()
	_ = m.Register("x.y", 1, func(p map[string]any) (map[string]any, error) { return p, nil })
	_ = m.Register("x.y", 2, func(p map[string]any) (map[string]any, error) { return p, nil })
	if !m.HasPath("x.y", 1, 3) {
		t.Fatal("expected path 1..3")
	}
	if m.HasPath("x.y", 1, 4) {
		t.Fatal("unexpected path 1..4")
	}
	if !m.HasPath("x.y", 2, 2) {
		t.Fatal("identity path must exist")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	m := NewMigrator()
	fn := func(p map[string]any) (map[string]any, error) { return p, nil }
	if err := m.Register("x.y", 1, fn); err != nil {
		t.Fatal(err)
	}
	if err := m.Register("x.y", 1, fn); err == nil {
		t.Fatal("duplicate step accepted")
	}
}
