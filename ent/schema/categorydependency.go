package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryDependency holds the schema definition for the CategoryDependency
// entity: a directed edge (dependent → required). The graph must be acyclic;
// config validation enforces this at load time.
type CategoryDependency struct {
	ent.Schema
}

// Fields of the CategoryDependency.
func (CategoryDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dependency_id").
			Unique().
			Immutable(),
		field.String("dependent_id").
			Immutable(),
		field.String("required_id").
			Immutable(),
	}
}

// Edges of the CategoryDependency.
func (CategoryDependency) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dependent", PharmaCategory.Type).
			Ref("dependents").
			Field("dependent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("required", PharmaCategory.Type).
			Ref("requirements").
			Field("required_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CategoryDependency.
func (CategoryDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dependent_id", "required_id").
			Unique(),
	}
}
