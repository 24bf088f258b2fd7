package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the AuditEvent entity.
// Append-only: application code never updates or deletes rows. Retained for
// at least the configured audit retention period (default 7 years).
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.Enum("event_type").
			Values("create", "update", "delete", "process_start",
				"process_complete", "process_error", "source_verification",
				"conflict_resolution", "data_export", "user_access").
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.String("request_id").
			Optional().
			Immutable().
			Comment("Back-reference only; audit events are never owned"),
		field.JSON("old_values", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("new_values", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("actor").
			Default("system").
			Immutable(),
		field.String("correlation_id").
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("ip_address").
			Optional().
			Immutable(),
		field.String("user_agent").
			Optional().
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Archive marker set by retention, never a hard delete"),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("request_id"),
		index.Fields("correlation_id"),
		index.Fields("timestamp"),
	}
}
