package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParameterResult holds the schema definition for the ParameterResult entity:
// one scored physicochemical parameter for one request and delivery route.
type ParameterResult struct {
	ent.Schema
}

// Fields of the ParameterResult.
func (ParameterResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("parameter_result_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.Enum("parameter").
			Values("dose", "molecular_weight", "melting_point", "log_p"),
		field.Enum("delivery_method").
			Values("transdermal", "transmucosal"),
		field.Float("extracted_value").
			Optional().
			Nillable(),
		field.String("unit").
			Optional(),
		field.Int("score").
			Optional().
			Nillable().
			Min(0).
			Max(9),
		field.Float("weighted_score").
			Default(0),
		field.Text("rationale").
			Optional(),
		field.String("range_text").
			Optional(),
		field.Bool("is_exclusion").
			Default(false),
		field.Enum("extraction_method").
			Values("phase1_summary", "dedicated_llm", "live_search", "none"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ParameterResult.
func (ParameterResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", AnalysisRequest.Type).
			Ref("parameter_results").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ParameterResult.
func (ParameterResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "parameter", "delivery_method").
			Unique(),
	}
}
