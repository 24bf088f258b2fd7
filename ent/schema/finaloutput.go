package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// FinalOutput holds the schema definition for the FinalOutput entity: the
// composed final report document plus denormalized headline fields.
type FinalOutput struct {
	ent.Schema
}

// Fields of the FinalOutput.
func (FinalOutput) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("output_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Unique().
			Immutable(),
		field.JSON("document", map[string]interface{}{}).
			Comment("Composed report JSON, persisted verbatim"),
		field.Float("td_score").
			Default(0),
		field.Float("tm_score").
			Default(0),
		field.String("td_verdict"),
		field.String("tm_verdict"),
		field.String("go_decision"),
		field.String("investment_priority"),
		field.String("risk_level"),
		field.Int("version").
			Default(1),
		field.Time("generated_at").
			Default(time.Now),
	}
}

// Edges of the FinalOutput.
func (FinalOutput) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", AnalysisRequest.Type).
			Ref("final_output").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}
