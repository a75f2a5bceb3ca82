// Package event defines the immutable fact record at the heart of the saga
// core, along with the fail-fast guards that keep malformed facts out of the
// store: identifier validation, payload rules, the event-type registry, and
// the version migrator used when replaying older payloads.
package event

import (
	"encoding/json"
	"time"

	"github.com/apothek/sagacore/pkg/errmodel"
	"github.com/apothek/sagacore/pkg/store"
)

// MetaSchemaVersion is the metadata key carrying the payload schema version.
// Records without it are treated as version 1.
const MetaSchemaVersion = "schema_version"

// Event is an immutable fact. Once constructed (and a fortiori once appended)
// its fields never change; mutation happens only by recording further events.
type Event struct {
	// AggregateUUID identifies the entity the fact belongs to.
	AggregateUUID string `json:"aggregate_uuid"`
	// AggregateType is the logical stream name, e.g. "subscription_renewal_saga".
	AggregateType string `json:"aggregate_type"`
	// Type is the dotted event name used for routing and migration lookup.
	Type string `json:"event_type"`
	// Payload carries the fact's data as primitive/array values.
	Payload map[string]any `json:"event_data"`
	// Metadata carries tracing/context values, never business logic inputs.
	Metadata map[string]any `json:"metadata,omitempty"`
	// OccurredAt is the time of fact creation, not of storage.
	OccurredAt time.Time `json:"occurred_at"`
}

// Option configures event construction.
type Option func(*Event)

// WithMetadata attaches tracing/context values to the event.
func WithMetadata(meta map[string]any) Option {
	return func(e *Event) { e.Metadata = meta }
}

// WithOccurredAt overrides the creation timestamp (defaults to now, UTC).
func WithOccurredAt(t time.Time) Option {
	return func(e *Event) { e.OccurredAt = t }
}

// New validates and constructs an Event. Validation failures are returned,
// never stored: the identifier must be a well-formed UUID, stream and event
// type names must be non-empty, and the payload must satisfy the given rules.
func New(aggregateUUID, aggregateType, eventType string, payload map[string]any, rules []Rule, opts ...Option) (Event, error) {
	if err := ValidateIdentifier(aggregateUUID); err != nil {
		return Event{}, err
	}
	if aggregateType == "" {
		return Event{}, errmodel.Validation("empty_aggregate_type", "aggregate type is empty", nil)
	}
	if eventType == "" {
		return Event{}, errmodel.Validation("empty_event_type", "event type is empty", nil)
	}
	if len(rules) > 0 {
		if err := ValidatePayload(payload, rules...); err != nil {
			return Event{}, err
		}
	}
	e := Event{
		AggregateUUID: aggregateUUID,
		AggregateType: aggregateType,
		Type:          eventType,
		Payload:       payload,
		OccurredAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e, nil
}

// SchemaVersion reports the payload schema version from metadata, defaulting
// to 1 for events written before versioning existed.
func (e Event) SchemaVersion() int {
	if e.Metadata == nil {
		return 1
	}
	switch v := e.Metadata[MetaSchemaVersion].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 1
	}
}

// ToRecord converts the event to its persisted representation.
func ToRecord(e Event) store.EventRecord {
	var payload, meta json.RawMessage
	if e.Payload != nil {
		b, _ := json.Marshal(e.Payload)
		payload = b
	}
	if e.Metadata != nil {
		b, _ := json.Marshal(e.Metadata)
		meta = b
	}
	return store.EventRecord{
		AggregateUUID: e.AggregateUUID,
		AggregateType: e.AggregateType,
		EventType:     e.Type,
		Payload:       payload,
		Metadata:      meta,
		OccurredAt:    e.OccurredAt,
	}
}

// FromRecord converts a persisted record back into an Event.
func FromRecord(r store.EventRecord) (Event, error) {
	var payload, meta map[string]any
	if len(r.Payload) > 0 {
		if err := json.Unmarshal(r.Payload, &payload); err != nil {
			return Event{}, errmodel.System("bad_payload_json", "event payload is not valid JSON", map[string]any{"id": r.ID, "event_type": r.EventType}, err)
		}
	}
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &meta); err != nil {
			return Event{}, errmodel.System("bad_metadata_json", "event metadata is not valid JSON", map[string]any{"id": r.ID, "event_type": r.EventType}, err)
		}
	}
	return Event{
		AggregateUUID: r.AggregateUUID,
		AggregateType: r.AggregateType,
		Type:          r.EventType,
		Payload:       payload,
		Metadata:      meta,
		OccurredAt:    r.OccurredAt,
	}, nil
}
