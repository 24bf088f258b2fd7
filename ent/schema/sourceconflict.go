package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceConflict holds the schema definition for the SourceConflict entity:
// one reconciled disagreement between provider responses.
type SourceConflict struct {
	ent.Schema
}

// Fields of the SourceConflict.
func (SourceConflict) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conflict_id").
			Unique().
			Immutable(),
		field.String("category_result_id").
			Immutable(),
		field.String("conflict_type"),
		field.Text("description"),
		field.JSON("conflicting_source_ids", []string{}).
			Optional(),
		field.String("resolution_strategy"),
		field.Time("resolved_at").
			Default(time.Now),
		field.Float("confidence_impact").
			Default(0),
		field.Bool("is_critical").
			Default(false),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Archive marker set by retention"),
	}
}

// Edges of the SourceConflict.
func (SourceConflict) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category_result", CategoryResult.Type).
			Ref("conflicts").
			Field("category_result_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SourceConflict.
func (SourceConflict) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_result_id"),
	}
}
