package saga

import (
	"testing"

	"github.com/apothek/sagacore/pkg/errmodel"
)

func testMachine() *Machine {
	return NewMachine(map[string][]string{
		"pending_payment_method_check": {"pending_payment_attempt", "failed"},
		"pending_payment_attempt":      {"completed", "failed"},
	})
}

func TestValidate_Reflexive(t *testing.T) {
	m := testMachine()
	for _, s := range []string{"pending_payment_attempt", "completed", "never_heard_of_it"} {
		if err := m.Validate(s, s); err != nil {
			t.Fatalf("reflexive transition %q rejected: %v", s, err)
		}
	}
}

func TestValidate_PermittedAndForbidden(t *testing.T) {
	m := testMachine()
	if err := m.Validate("pending_payment_method_check", "pending_payment_attempt"); err != nil {
		t.Fatal(err)
	}
	err := m.Validate("pending_payment_method_check", "completed")
	if !errmodel.IsCategory(err, errmodel.CategoryTransition) {
		t.Fatalf("want transition error, got %v", err)
	}
}

func TestValidate_UnknownFromState(t *testing.T) {
	m := testMachine()
	// terminal states have no outgoing transitions
	if err := m.Validate("completed", "pending_payment_attempt"); err == nil {
		t.Fatal("transition out of terminal state accepted")
	}
}

func TestIsValid(t *testing.T) {
	m := testMachine()
	if !m.IsValid("pending_payment_attempt", "completed") {
		t.Fatal("expected valid")
	}
	if m.IsValid("pending_payment_attempt", "pending_payment_method_check") {
		t.Fatal("expected invalid")
	}
}
