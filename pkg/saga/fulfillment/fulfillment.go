// Package fulfillment implements the order fulfillment saga: prescription,
// inventory reservation and shipment in order, with a rollback descriptor
// recorded for every step that allocates a real-world resource. The saga only
// records compensations; a Compensator collaborator executes them after
// failure.
package fulfillment

import (
	"github.com/apothek/sagacore/pkg/event"
	"github.com/apothek/sagacore/pkg/saga"
)

// AggregateType is the logical stream name for fulfillment sagas.
const AggregateType = "order_fulfillment_saga"

// States of the fulfillment transition graph. FAILED is reachable from every
// non-terminal state.
const (
	StatePendingPrescription = "PENDING_PRESCRIPTION"
	StatePrescriptionCreated = "PRESCRIPTION_CREATED"
	StateInventoryReserved   = "INVENTORY_RESERVED"
	StateShipmentInitiated   = "SHIPMENT_INITIATED"
	StateCompleted           = "COMPLETED"
	StateFailed              = "FAILED"
)

// Event types recorded by the saga.
const (
	EventStarted             = "order_fulfillment.started"
	EventPrescriptionCreated = "order_fulfillment.prescription_created"
	EventInventoryReserved   = "order_fulfillment.inventory_reserved"
	EventShipmentInitiated   = "order_fulfillment.shipment_initiated"
	EventCompleted           = "order_fulfillment.completed"
	EventFailed              = "order_fulfillment.failed"
)

var machine = saga.NewMachine(map[string][]string{
	StatePendingPrescription: {StatePrescriptionCreated, StateFailed},
	StatePrescriptionCreated: {StateInventoryReserved, StateFailed},
	StateInventoryReserved:   {StateShipmentInitiated, StateFailed},
	StateShipmentInitiated:   {StateCompleted, StateFailed},
})

// DefaultConfig is the fulfillment retry tuning. Fulfillment steps retry on
// a short schedule; most failures here need human follow-up quickly.
func DefaultConfig() saga.Config {
	return saga.Config{
		MaxAttempts:   3,
		RetrySchedule: saga.ScheduleDays(1, 2),
	}
}

// Saga is the fulfillment process state, derived entirely from its events.
type Saga struct {
	saga.Saga

	OrderID        int
	PrescriptionID string
	ReservationID  string
	ShipmentID     string
	FailedStep     string
	FailureReason  string
}

// New returns an empty, unstarted saga bound to the stream identity.
func New(uuid string, cfg saga.Config) *Saga {
	s := &Saga{}
	s.Init(uuid, AggregateType, machine, cfg, s.applyEvent)
	return s
}

// Start constructs the saga and records the genesis event.
func Start(uuid string, orderID int, cfg saga.Config) (*Saga, error) {
	s := New(uuid, cfg)
	err := s.Record(EventStarted, map[string]any{
		"order_id": orderID,
	}, []event.Rule{
		event.Required("order_id"),
		event.Type("order_id", event.KindInteger),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Reconstitute rebuilds a saga by folding its stored history.
func Reconstitute(uuid string, history []event.Event, cfg saga.Config) *Saga {
	s := New(uuid, cfg)
	s.Root.Reconstitute(history)
	return s
}

// CreatePrescription records the prescription step. No real-world resource is
// allocated yet, so no compensation is pushed.
func (s *Saga) CreatePrescription(prescriptionID string) error {
	return s.TransitionTo(StatePrescriptionCreated, EventPrescriptionCreated, map[string]any{
		"prescription_id": prescriptionID,
	}, []event.Rule{
		event.Required("prescription_id"),
		event.Type("prescription_id", event.KindString),
	})
}

// ReserveInventory records the reservation and pushes its rollback
// descriptor onto the compensation stack.
func (s *Saga) ReserveInventory(reservationID string) error {
	return s.TransitionTo(StateInventoryReserved, EventInventoryReserved, map[string]any{
		"reservation_id": reservationID,
	}, []event.Rule{
		event.Required("reservation_id"),
		event.Type("reservation_id", event.KindString),
	})
}

// InitiateShipment records the shipment and pushes its rollback descriptor.
func (s *Saga) InitiateShipment(shipmentID string) error {
	return s.TransitionTo(StateShipmentInitiated, EventShipmentInitiated, map[string]any{
		"shipment_id": shipmentID,
	}, []event.Rule{
		event.Required("shipment_id"),
		event.Type("shipment_id", event.KindString),
	})
}

// Complete records successful delivery handoff.
func (s *Saga) Complete() error {
	return s.TransitionTo(StateCompleted, EventCompleted, nil, nil)
}

// Fail records the terminal failure, attaching the compensation stack
// recorded so far for the external compensator to execute.
func (s *Saga) Fail(reason, step string) error {
	return s.TransitionTo(StateFailed, EventFailed, map[string]any{
		"reason":        reason,
		"failed_step":   step,
		"compensations": s.CompensationPayloads(),
	}, []event.Rule{
		event.Required("reason", "failed_step"),
		event.Type("reason", event.KindString),
		event.Type("failed_step", event.KindString),
		event.Type("compensations", event.KindArray),
	})
}

func (s *Saga) applyEvent(e event.Event) {
	switch e.Type {
	case EventStarted:
		s.OrderID, _ = event.Int(e.Payload, "order_id")
		s.ApplyState(StatePendingPrescription)
	case EventPrescriptionCreated:
		s.PrescriptionID, _ = event.String(e.Payload, "prescription_id")
		s.ApplyStateChange(e)
	case EventInventoryReserved:
		s.ReservationID, _ = event.String(e.Payload, "reservation_id")
		s.ApplyCompensation(saga.Compensation{
			Action:   "release_inventory",
			Resource: "inventory",
			Args:     map[string]any{"reservation_id": e.Payload["reservation_id"]},
		})
		s.ApplyStateChange(e)
	case EventShipmentInitiated:
		s.ShipmentID, _ = event.String(e.Payload, "shipment_id")
		s.ApplyCompensation(saga.Compensation{
			Action:   "cancel_shipment",
			Resource: "shipment",
			Args:     map[string]any{"shipment_id": e.Payload["shipment_id"]},
		})
		s.ApplyStateChange(e)
	case EventCompleted:
		s.ApplyStateChange(e)
	case EventFailed:
		s.FailureReason, _ = event.String(e.Payload, "reason")
		s.FailedStep, _ = event.String(e.Payload, "failed_step")
		s.ApplyStateChange(e)
	default:
		// unknown event types are ignored
	}
}
