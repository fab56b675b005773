package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// MessageFeedback holds the schema definition for the MessageFeedback entity.
// At most one feedback row per message; stores a snapshot of the model
// settings that produced the rated response.
type MessageFeedback struct {
	ent.Schema
}

// Annotations of the MessageFeedback.
func (MessageFeedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "message_feedback"},
	}
}

// Fields of the MessageFeedback.
func (MessageFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.Int("message_id").
			Unique(),
		field.Int("rating").
			Optional().
			Nillable().
			Min(1).
			Max(5),
		field.String("model_name").
			Optional().
			Nillable(),
		field.String("model_provider").
			Optional().
			Nillable(),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.Int("max_tokens").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
