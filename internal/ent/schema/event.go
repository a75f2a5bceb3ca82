package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the append-only event log.
// The autoincrement row id is the store-assigned sequence establishing the
// stable global replay order; rows are never updated or deleted.
type Event struct{ ent.Schema }

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("aggregate_uuid").NotEmpty(),
		// Logical stream name, e.g. "subscription_renewal_saga".
		field.String("aggregate_type").NotEmpty(),
		// Dotted event name used for routing and migration lookup.
		field.String("event_type").NotEmpty(),
		// JSON payload; compatible with Postgres (JSONB) and SQLite (TEXT/BLOB).
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		// Time of fact creation, not of storage.
		field.Time("occurred_at").Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("aggregate_uuid", "aggregate_type"),
		index.Fields("aggregate_type"),
		index.Fields("event_type"),
	}
}
