package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateBucket holds the schema definition for the RateBucket entity: one
// fixed-window rate-limit counter shared across replicas. Consumed via an
// atomic upsert-and-increment; the in-process token bucket is the fallback
// when the store is unreachable.
type RateBucket struct {
	ent.Schema
}

// Fields of the RateBucket.
func (RateBucket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bucket_id").
			Unique().
			Immutable().
			Comment("key + window start, e.g. 'submit:2026-08-24T10:15:00Z'"),
		field.String("key"),
		field.Time("window_start"),
		field.Int("count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RateBucket.
func (RateBucket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key", "window_start").
			Unique(),
		index.Fields("window_start"),
	}
}
