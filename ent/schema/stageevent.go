package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent holds the schema definition for the StageEvent entity: one row
// per pipeline stage execution (or skip) for a (request, category) pair.
type StageEvent struct {
	ent.Schema
}

// Fields of the StageEvent.
func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_event_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("category_id").
			Immutable(),
		field.Enum("stage_name").
			Values("collect", "verify", "merge", "summarize"),
		field.Int("stage_order"),
		field.Bool("executed").
			Default(false),
		field.Bool("skipped").
			Default(false),
		field.String("input_digest").
			Optional().
			Comment("SHA-256 of stage input, for idempotency checks"),
		field.String("output_digest").
			Optional(),
		field.Int("duration_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StageEvent.
func (StageEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", AnalysisRequest.Type).
			Ref("stage_events").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageEvent.
func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "category_id", "stage_name").
			Unique(),
		index.Fields("request_id", "created_at"),
	}
}
