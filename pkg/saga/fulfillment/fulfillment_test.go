package fulfillment

import (
	"context"
	"testing"

	"github.com/apothek/sagacore/pkg/saga"
	"github.com/apothek/sagacore/pkg/store/memstore"
)

const testUUID = "0b7e6c5d-4a3b-4c2d-9e1f-8a7b6c5d4e3f"

func start(t *testing.T) *Saga {
	t.Helper()
	s, err := Start(testUUID, 7, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestHappyPath(t *testing.T) {
	s := start(t)
	steps := []func() error{
		func() error { return s.CreatePrescription("rx-1") },
		func() error { return s.ReserveInventory("res-1") },
		func() error { return s.InitiateShipment("shp-1") },
		s.Complete,
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.State() != StateCompleted {
		t.Fatalf("state=%q", s.State())
	}
	if comps := s.Compensations(); len(comps) != 2 {
		t.Fatalf("compensations=%d want 2", len(comps))
	}
}

func TestStepOrderEnforced(t *testing.T) {
	s := start(t)
	if err := s.InitiateShipment("shp-1"); err == nil {
		t.Fatal("shipment before reservation accepted")
	}
	if err := s.ReserveInventory("res-1"); err == nil {
		t.Fatal("reservation before prescription accepted")
	}
}

// Failing after inventory reservation attaches exactly the compensation stack
// recorded so far: the single inventory-release descriptor.
func TestFailAttachesCompensationStack(t *testing.T) {
	s := start(t)
	if err := s.CreatePrescription("rx-1"); err != nil {
		t.Fatal(err)
	}
	if err := s.ReserveInventory("res-1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Fail("shipment carrier rejected", "shipment"); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateFailed {
		t.Fatalf("state=%q", s.State())
	}

	events := s.ReleaseEvents()
	failure := events[len(events)-1]
	if failure.Type != EventFailed {
		t.Fatalf("last event %q", failure.Type)
	}
	comps, ok := failure.Payload["compensations"].([]any)
	if !ok || len(comps) != 1 {
		t.Fatalf("compensations=%#v", failure.Payload["compensations"])
	}
	entry := comps[0].(map[string]any)
	if entry["action"] != "release_inventory" || entry["resource"] != "inventory" {
		t.Fatalf("entry=%#v", entry)
	}
}

func TestFailFromAnyStep(t *testing.T) {
	s := start(t)
	if err := s.Fail("prescriber unreachable", "prescription"); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateFailed || s.FailedStep != "prescription" {
		t.Fatalf("state=%q step=%q", s.State(), s.FailedStep)
	}
	if len(s.Compensations()) != 0 {
		t.Fatal("no compensations expected before any allocation")
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	s := start(t)
	_ = s.CreatePrescription("rx-1")
	_ = s.ReserveInventory("res-1")
	_ = s.InitiateShipment("shp-1")
	if err := s.Complete(); err != nil {
		t.Fatal(err)
	}
	if err := s.Fail("too late", "shipment"); err == nil {
		t.Fatal("transition out of COMPLETED accepted")
	}
}

func TestReconstituteRestoresCompensations(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	c := saga.NewCoordinator(st, saga.NewMemoryScheduler(), saga.NewMemoryCache(), saga.Days(30))

	s := start(t)
	_ = s.CreatePrescription("rx-1")
	_ = s.ReserveInventory("res-1")
	_ = s.InitiateShipment("shp-1")
	if _, err := c.Persist(ctx, s); err != nil {
		t.Fatal(err)
	}

	history, err := saga.LoadHistory(ctx, st, testUUID, AggregateType)
	if err != nil {
		t.Fatal(err)
	}
	replayed := Reconstitute(testUUID, history, DefaultConfig())
	if replayed.State() != StateShipmentInitiated {
		t.Fatalf("state=%q", replayed.State())
	}
	comps := replayed.Compensations()
	if len(comps) != 2 || comps[0].Action != "release_inventory" || comps[1].Action != "cancel_shipment" {
		t.Fatalf("comps=%#v", comps)
	}
}
