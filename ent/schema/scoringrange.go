package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoringRange holds the schema definition for the ScoringRange entity:
// one rubric row mapping (parameter, delivery route, value interval) to a
// score. The seeded set covers the real line for every pair; values outside
// every interval fall into the out-of-range bucket at scoring time.
type ScoringRange struct {
	ent.Schema
}

// Fields of the ScoringRange.
func (ScoringRange) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("range_id").
			Unique().
			Immutable(),
		field.Enum("parameter").
			Values("dose", "molecular_weight", "melting_point", "log_p"),
		field.Enum("delivery_method").
			Values("transdermal", "transmucosal"),
		field.Float("min_value").
			Optional().
			Nillable().
			Comment("Inclusive lower bound; nil = unbounded below"),
		field.Float("max_value").
			Optional().
			Nillable().
			Comment("Inclusive upper bound; nil = unbounded above"),
		field.Int("score").
			Min(0).
			Max(9),
		field.Bool("is_exclusion").
			Default(false),
		field.String("range_text"),
	}
}

// Indexes of the ScoringRange.
func (ScoringRange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parameter", "delivery_method"),
	}
}
