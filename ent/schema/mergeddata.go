package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MergedData holds the schema definition for the MergedData entity: the
// canonical merged artifact for one category result.
type MergedData struct {
	ent.Schema
}

// Fields of the MergedData.
func (MergedData) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("merged_id").
			Unique().
			Immutable(),
		field.String("category_result_id").
			Unique().
			Immutable(),
		field.Text("merged_text"),
		field.JSON("structured_data", map[string]interface{}{}).
			Optional().
			Comment("Category-shaped typed payload; validated on write"),
		field.Float("confidence").
			Default(0).
			Min(0).
			Max(1),
		field.JSON("source_references", []map[string]interface{}{}).
			Optional().
			Comment("{provider, model, weight, authority_score} per source"),
		field.Enum("merge_method").
			Values("llm_assisted", "fallback_weighted", "summary_extraction", "none"),
		field.JSON("key_findings", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MergedData.
func (MergedData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category_result", CategoryResult.Type).
			Ref("merged_data").
			Field("category_result_id").
			Unique().
			Required().
			Immutable(),
	}
}
