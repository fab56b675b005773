package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeepAnalysisReport holds the schema definition for the DeepAnalysisReport
// entity. One row per deep-analysis run; the row is created pending before
// the pipeline starts and updated after every stage so progress survives
// restarts.
type DeepAnalysisReport struct {
	ent.Schema
}

// Fields of the DeepAnalysisReport.
func (DeepAnalysisReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_uuid").
			Unique().
			Immutable(),
		field.Int("user_id").
			Optional().
			Nillable(),
		field.Text("goal"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Time("start_time").
			Default(time.Now),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Int("duration_seconds").
			Optional().
			Nillable(),
		field.Text("deep_questions").
			Optional(),
		field.Text("deep_plan").
			Optional(),
		field.JSON("summaries", []string{}).
			Optional(),
		field.Text("analysis_code").
			Optional(),
		field.JSON("plotly_figures", json.RawMessage{}).
			Optional().
			Comment("JSON-serialized figure bundles for transport"),
		field.JSON("synthesis", []string{}).
			Optional(),
		field.Text("final_conclusion").
			Optional(),
		field.Text("html_report").
			Optional(),
		field.String("report_summary").
			Optional().
			Comment("Short summary derived from the conclusion (max ~200 chars)"),
		field.Int("progress_percentage").
			Default(0).
			Min(0).
			Max(100),
		field.JSON("steps_completed", []string{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("model_provider").
			Optional().
			Nillable(),
		field.String("model_name").
			Optional().
			Nillable(),
		field.Int("total_tokens_used").
			Default(0),
		field.Float("estimated_cost").
			Default(0),
		field.Int("credits_consumed").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DeepAnalysisReport.
func (DeepAnalysisReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("deep_analysis_reports").
			Field("user_id").
			Unique(),
	}
}

// Indexes of the DeepAnalysisReport.
func (DeepAnalysisReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id", "created_at"),
		index.Fields("status", "start_time"),
	}
}
