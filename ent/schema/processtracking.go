package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessTracking holds the schema definition for the ProcessTracking entity.
// Exactly one row per AnalysisRequest; carries the status state machine,
// progress, and per-stage timing.
type ProcessTracking struct {
	ent.Schema
}

// Fields of the ProcessTracking.
func (ProcessTracking) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tracking_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("submitted", "collecting", "verifying", "merging",
				"summarizing", "completed", "failed", "cancelled").
			Default("submitted"),
		field.Int("progress_percent").
			Default(0).
			Min(0).
			Max(100),
		field.Int("categories_total").
			Default(0),
		field.Int("categories_completed").
			Default(0),
		field.Time("estimated_completion_at").
			Optional().
			Nillable(),
		field.Time("collecting_started_at").Optional().Nillable(),
		field.Time("collecting_completed_at").Optional().Nillable(),
		field.Time("verifying_started_at").Optional().Nillable(),
		field.Time("verifying_completed_at").Optional().Nillable(),
		field.Time("merging_started_at").Optional().Nillable(),
		field.Time("merging_completed_at").Optional().Nillable(),
		field.Time("summarizing_started_at").Optional().Nillable(),
		field.Time("summarizing_completed_at").Optional().Nillable(),
		field.String("error_details").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Archive marker set by retention"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProcessTracking.
func (ProcessTracking) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", AnalysisRequest.Type).
			Ref("tracking").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProcessTracking.
func (ProcessTracking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "updated_at"),
	}
}
