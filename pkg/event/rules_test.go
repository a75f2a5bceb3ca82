package event

import (
	"testing"

	"github.com/apothek/sagacore/pkg/errmodel"
)

func TestValidatePayload_Required(t *testing.T) {
	err := ValidatePayload(map[string]any{"amount": 10.0}, Required("amount", "user_id"))
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if err := ValidatePayload(map[string]any{"amount": 10.0, "user_id": 7}, Required("amount", "user_id")); err != nil {
		t.Fatal(err)
	}
}

func TestValidatePayload_Type(t *testing.T) {
	rules := []Rule{
		Type("name", KindString),
		Type("count", KindInteger),
		Type("amount", KindNumber),
		Type("tags", KindArray),
	}
	ok := map[string]any{"name": "x", "count": 3, "amount": 9.5, "tags": []any{"a"}}
	if err := ValidatePayload(ok, rules...); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePayload(map[string]any{"count": "three"}, rules...); err == nil {
		t.Fatal("string count accepted as integer")
	}
	if err := ValidatePayload(map[string]any{"tags": "not-a-list"}, rules...); err == nil {
		t.Fatal("scalar accepted as array")
	}
}

func TestValidatePayload_Range(t *testing.T) {
	if err := ValidatePayload(map[string]any{"level": 3}, Range("level", 1, 4)); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePayload(map[string]any{"level": 5}, Range("level", 1, 4)); err == nil {
		t.Fatal("out-of-range value accepted")
	}
}

func TestValidatePayload_Enum(t *testing.T) {
	rule := Enum("channel", "email", "sms", "phone")
	if err := ValidatePayload(map[string]any{"channel": "sms"}, rule); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePayload(map[string]any{"channel": "fax"}, rule); err == nil {
		t.Fatal("disallowed enum value accepted")
	}
}

func TestValidatePayload_CombinedRules(t *testing.T) {
	rules := []Rule{
		Required("subscription_id", "amount"),
		Type("subscription_id", KindInteger),
		Type("amount", KindNumber),
		Range("amount", 0, 10000),
	}
	if err := ValidatePayload(map[string]any{"subscription_id": 42, "amount": 100.0}, rules...); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePayload(map[string]any{"subscription_id": 42, "amount": -1.0}, rules...); err == nil {
		t.Fatal("negative amount accepted")
	}
}
