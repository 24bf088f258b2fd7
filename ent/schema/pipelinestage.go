package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineStage holds the schema definition for the PipelineStage entity:
// reference data for the four fixed stages and their enable toggles.
// Environment toggles override the stored flags at config load.
type PipelineStage struct {
	ent.Schema
}

// Fields of the PipelineStage.
func (PipelineStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.Enum("name").
			Values("collect", "verify", "merge", "summarize"),
		field.Int("stage_order").
			Unique(),
		field.Bool("enabled").
			Default(true),
	}
}

// Indexes of the PipelineStage.
func (PipelineStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
