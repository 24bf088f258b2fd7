package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PharmaCategory holds the schema definition for the PharmaCategory entity.
// Reference data: one row per analysis category, not per request.
type PharmaCategory struct {
	ent.Schema
}

// Fields of the PharmaCategory.
func (PharmaCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("category_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Stable snake_case key used in the final report document"),
		field.Int("phase").
			Min(1).
			Max(2),
		field.Int("display_order").
			Comment("Phase 2 categories execute sequentially in this order"),
		field.Bool("is_active").
			Default(true),
		field.Text("prompt_template"),
		field.JSON("verification_criteria", map[string]interface{}{}).
			Optional().
			Comment("Structural rules evaluated by the category validator"),
		field.JSON("processing_rules", map[string]interface{}{}).
			Optional(),
		field.String("conflict_resolution_strategy").
			Default("authority_weighted"),
	}
}

// Edges of the PharmaCategory.
func (PharmaCategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("dependents", CategoryDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("requirements", CategoryDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PharmaCategory.
func (PharmaCategory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phase", "display_order"),
	}
}
