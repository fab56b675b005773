package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserTemplatePreference holds the schema definition for the
// UserTemplatePreference entity: per-user enablement and usage counters
// for one agent template. At most one row per (user, template) pair.
type UserTemplatePreference struct {
	ent.Schema
}

// Fields of the UserTemplatePreference.
func (UserTemplatePreference) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Int("template_id"),
		field.Bool("is_enabled").
			Default(false),
		field.Int("usage_count").
			Default(0),
		field.Time("last_used_at").
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

// Edges of the UserTemplatePreference.
func (UserTemplatePreference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("template_preferences").
			Field("user_id").
			Unique().
			Required(),
		edge.From("template", AgentTemplate.Type).
			Ref("user_preferences").
			Field("template_id").
			Unique().
			Required(),
	}
}

// Indexes of the UserTemplatePreference.
func (UserTemplatePreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "template_id").
			Unique(),
		index.Fields("user_id", "is_enabled"),
	}
}
