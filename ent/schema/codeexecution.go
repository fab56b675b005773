package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CodeExecution holds the schema definition for the CodeExecution entity.
// Tracks generated code and the outcome of running it in the sandbox.
type CodeExecution struct {
	ent.Schema
}

// Fields of the CodeExecution.
func (CodeExecution) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable(),
		field.Int("chat_id").
			Optional().
			Nillable(),
		field.Int("message_id").
			Optional().
			Nillable(),
		field.Text("initial_code").
			Optional().
			Comment("Code as first produced by the agents"),
		field.Text("latest_code").
			Optional().
			Comment("Most recent edited/fixed version"),
		field.Bool("is_successful").
			Optional().
			Nillable(),
		field.JSON("failed_agents", []string{}).
			Optional(),
		field.JSON("error_messages", map[string]string{}).
			Optional().
			Comment("Agent name -> error output"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CodeExecution.
func (CodeExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("chat_id"),
	}
}
