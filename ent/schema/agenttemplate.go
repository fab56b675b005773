package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentTemplate holds the schema definition for the AgentTemplate entity.
// A template is the stored definition of an agent: its prompt, category,
// and whether it participates in planner mode, individual mode, or both.
type AgentTemplate struct {
	ent.Schema
}

// Fields of the AgentTemplate.
func (AgentTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("template_name").
			Unique(),
		field.String("display_name"),
		field.Text("description"),
		field.Text("prompt_template"),
		field.String("icon_url").
			Optional().
			Nillable(),
		field.String("category").
			Comment("e.g. Data Manipulation, Data Modelling, Data Visualization"),
		field.Bool("is_premium_only").
			Default(false),
		field.Enum("variant_type").
			Values("individual", "planner", "both").
			Default("individual"),
		field.String("base_agent").
			Optional().
			Nillable().
			Comment("Name of the sibling template this one derives from"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentTemplate.
func (AgentTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user_preferences", UserTemplatePreference.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentTemplate.
func (AgentTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("variant_type", "is_active"),
	}
}
