package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SummaryHistory holds the schema definition for the SummaryHistory entity:
// one row per summary generation attempt, success or failure.
type SummaryHistory struct {
	ent.Schema
}

// Fields of the SummaryHistory.
func (SummaryHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("category_result_id").
			Immutable(),
		field.String("style_name"),
		field.String("provider").
			Optional(),
		field.String("model").
			Optional(),
		field.Text("generated_summary").
			Optional().
			Comment("Empty when generation failed"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("generation_time_ms").
			Default(0),
		field.Int("tokens_used").
			Default(0),
		field.Float("cost_estimate").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SummaryHistory.
func (SummaryHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_result_id", "created_at"),
	}
}
