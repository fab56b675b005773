package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelUsage holds the schema definition for the ModelUsage entity.
// One row per LM invocation; written at-least-once, deduplicated downstream.
type ModelUsage struct {
	ent.Schema
}

// Annotations of the ModelUsage.
func (ModelUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "model_usage"},
	}
}

// Fields of the ModelUsage.
func (ModelUsage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable(),
		field.Int("chat_id").
			Optional().
			Nillable(),
		field.String("model_name"),
		field.String("provider"),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Int("query_size").
			Default(0).
			Comment("Request size in characters"),
		field.Int("response_size").
			Default(0).
			Comment("Response size in characters"),
		field.Float("cost").
			Default(0),
		field.Time("timestamp").
			Default(time.Now),
		field.Bool("is_streaming").
			Default(false),
		field.Int("request_time_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the ModelUsage.
func (ModelUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("usage_records").
			Field("user_id").
			Unique(),
	}
}

// Indexes of the ModelUsage.
func (ModelUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("model_name"),
		index.Fields("provider"),
	}
}
