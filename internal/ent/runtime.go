// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apothek/sagacore/internal/ent/event"
	"github.com/apothek/sagacore/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescAggregateUUID is the schema descriptor for aggregate_uuid field.
	eventDescAggregateUUID := eventFields[0].Descriptor()
	// event.AggregateUUIDValidator is a validator for the "aggregate_uuid" field. It is called by the builders before save.
	event.AggregateUUIDValidator = eventDescAggregateUUID.Validators[0].(func(string) error)
	// eventDescAggregateType is the schema descriptor for aggregate_type field.
	eventDescAggregateType := eventFields[1].Descriptor()
	// event.AggregateTypeValidator is a validator for the "aggregate_type" field. It is called by the builders before save.
	event.AggregateTypeValidator = eventDescAggregateType.Validators[0].(func(string) error)
	// eventDescEventType is the schema descriptor for event_type field.
	eventDescEventType := eventFields[2].Descriptor()
	// event.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	event.EventTypeValidator = eventDescEventType.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[6].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
}
