package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisRequest holds the schema definition for the AnalysisRequest entity.
// One request analyzes one drug for one delivery route.
type AnalysisRequest struct {
	ent.Schema
}

// Fields of the AnalysisRequest.
func (AnalysisRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("drug_name").
			NotEmpty().
			MaxLen(255),
		field.Enum("delivery_method").
			Values("transdermal", "transmucosal").
			Default("transdermal"),
		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),
		field.String("callback_url").
			Optional().
			Nillable(),
		field.String("correlation_id").
			Comment("Propagated through every audit event for this request"),
		field.Int("drug_count").
			Default(1).
			Comment("Number of drugs in the originating submission (for ETA)"),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete (archive) under retention policy"),
	}
}

// Edges of the AnalysisRequest.
func (AnalysisRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tracking", ProcessTracking.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("category_results", CategoryResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("parameter_results", ParameterResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("stage_events", StageEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("final_output", FinalOutput.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnalysisRequest.
func (AnalysisRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("drug_name"),
		index.Fields("correlation_id"),
		index.Fields("created_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
