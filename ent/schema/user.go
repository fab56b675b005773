package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username"),
		field.String("email").
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chats", Chat.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("template_preferences", UserTemplatePreference.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("usage_records", ModelUsage.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("deep_analysis_reports", DeepAnalysisReport.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
