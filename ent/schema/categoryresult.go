package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryResult holds the schema definition for the CategoryResult entity.
// One row per (request, category); the stage executor is its sole writer.
type CategoryResult struct {
	ent.Schema
}

// Fields of the CategoryResult.
func (CategoryResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("category_id").
			Immutable(),
		field.String("category_name"),
		field.Text("summary").
			Optional().
			Comment("Final per-category prose summary"),
		field.Float("confidence_score").
			Default(0).
			Min(0).
			Max(1),
		field.Float("data_quality_score").
			Default(0).
			Min(0).
			Max(1),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "skipped").
			Default("pending"),
		field.String("skip_reason").
			Optional().
			Nillable(),
		field.Int("processing_time_ms").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("api_calls_made").
			Default(0),
		field.Int("token_count").
			Default(0),
		field.Float("cost_estimate").
			Default(0),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Archive marker set by retention"),
	}
}

// Edges of the CategoryResult.
func (CategoryResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", AnalysisRequest.Type).
			Ref("category_results").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
		edge.To("provider_responses", ProviderResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("merged_data", MergedData.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conflicts", SourceConflict.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CategoryResult.
func (CategoryResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "category_id").
			Unique(),
		index.Fields("status"),
	}
}
