package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoringParameter holds the schema definition for the ScoringParameter
// entity: reference data declaring each scored parameter and its weight.
// Weights across all active parameters sum to 1.0.
type ScoringParameter struct {
	ent.Schema
}

// Fields of the ScoringParameter.
func (ScoringParameter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("parameter_id").
			Unique().
			Immutable(),
		field.Enum("name").
			Values("dose", "molecular_weight", "melting_point", "log_p"),
		field.Float("weight").
			Min(0).
			Max(1),
		field.String("unit"),
		field.Int("display_order"),
		field.Text("extraction_instruction").
			Optional().
			Comment("Parameter-specific instruction for dedicated LLM queries"),
	}
}

// Indexes of the ScoringParameter.
func (ScoringParameter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
