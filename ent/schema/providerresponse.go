package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProviderResponse holds the schema definition for the ProviderResponse
// entity: one raw provider reply, persisted verbatim for audit.
type ProviderResponse struct {
	ent.Schema
}

// Fields of the ProviderResponse.
func (ProviderResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("response_id").
			Unique().
			Immutable(),
		field.String("category_result_id").
			Immutable(),
		field.String("provider"),
		field.String("model"),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.JSON("query_parameters", map[string]interface{}{}).
			Optional(),
		field.Text("raw_text"),
		field.JSON("cited_urls", []string{}).
			Optional().
			Comment("Source URLs for citation-returning providers"),
		field.Int("latency_ms").
			Default(0),
		field.Int("token_count").
			Default(0),
		field.Float("cost").
			Default(0),
		field.String("checksum").
			Comment("SHA-256 over raw_text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("retention_expires_at").
			Comment("Creation + configured retention (default 7 years)"),
	}
}

// Edges of the ProviderResponse.
func (ProviderResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category_result", CategoryResult.Type).
			Ref("provider_responses").
			Field("category_result_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProviderResponse.
func (ProviderResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_result_id", "created_at"),
		index.Fields("retention_expires_at"),
	}
}
