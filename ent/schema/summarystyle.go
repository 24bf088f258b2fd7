package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SummaryStyle holds the schema definition for the SummaryStyle entity:
// per-category summary generation configuration.
type SummaryStyle struct {
	ent.Schema
}

// Fields of the SummaryStyle.
func (SummaryStyle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("style_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.Text("system_prompt"),
		field.Text("user_template").
			Comment("Go text/template; receives .DrugName and .MergedText"),
		field.Enum("length_type").
			Values("compact", "standard", "deep").
			Default("standard"),
		field.Int("target_word_count").
			Default(300),
	}
}
