// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentTemplatesColumns holds the columns for the "agent_templates" table.
	AgentTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "template_name", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "prompt_template", Type: field.TypeString, Size: 2147483647},
		{Name: "icon_url", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString},
		{Name: "is_premium_only", Type: field.TypeBool, Default: false},
		{Name: "variant_type", Type: field.TypeEnum, Enums: []string{"individual", "planner", "both"}, Default: "individual"},
		{Name: "base_agent", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentTemplatesTable holds the schema information for the "agent_templates" table.
	AgentTemplatesTable = &schema.Table{
		Name:       "agent_templates",
		Columns:    AgentTemplatesColumns,
		PrimaryKey: []*schema.Column{AgentTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agenttemplate_category",
				Unique:  false,
				Columns: []*schema.Column{AgentTemplatesColumns[6]},
			},
			{
				Name:    "agenttemplate_variant_type_is_active",
				Unique:  false,
				Columns: []*schema.Column{AgentTemplatesColumns[8], AgentTemplatesColumns[10]},
			},
		},
	}
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Default: "New Chat"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chats_users_chats",
				Columns:    []*schema.Column{ChatsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chat_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[3], ChatsColumns[2]},
			},
		},
	}
	// CodeExecutionsColumns holds the columns for the "code_executions" table.
	CodeExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "chat_id", Type: field.TypeInt, Nullable: true},
		{Name: "message_id", Type: field.TypeInt, Nullable: true},
		{Name: "initial_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "latest_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_successful", Type: field.TypeBool, Nullable: true},
		{Name: "failed_agents", Type: field.TypeJSON, Nullable: true},
		{Name: "error_messages", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CodeExecutionsTable holds the schema information for the "code_executions" table.
	CodeExecutionsTable = &schema.Table{
		Name:       "code_executions",
		Columns:    CodeExecutionsColumns,
		PrimaryKey: []*schema.Column{CodeExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "codeexecution_user_id",
				Unique:  false,
				Columns: []*schema.Column{CodeExecutionsColumns[1]},
			},
			{
				Name:    "codeexecution_chat_id",
				Unique:  false,
				Columns: []*schema.Column{CodeExecutionsColumns[2]},
			},
		},
	}
	// DeepAnalysisReportsColumns holds the columns for the "deep_analysis_reports" table.
	DeepAnalysisReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_uuid", Type: field.TypeString, Unique: true},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "deep_questions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "deep_plan", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summaries", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plotly_figures", Type: field.TypeJSON, Nullable: true},
		{Name: "synthesis", Type: field.TypeJSON, Nullable: true},
		{Name: "final_conclusion", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "html_report", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "report_summary", Type: field.TypeString, Nullable: true},
		{Name: "progress_percentage", Type: field.TypeInt, Default: 0},
		{Name: "steps_completed", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "model_provider", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "total_tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "credits_consumed", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// DeepAnalysisReportsTable holds the schema information for the "deep_analysis_reports" table.
	DeepAnalysisReportsTable = &schema.Table{
		Name:       "deep_analysis_reports",
		Columns:    DeepAnalysisReportsColumns,
		PrimaryKey: []*schema.Column{DeepAnalysisReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deep_analysis_reports_users_deep_analysis_reports",
				Columns:    []*schema.Column{DeepAnalysisReportsColumns[26]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deepanalysisreport_status",
				Unique:  false,
				Columns: []*schema.Column{DeepAnalysisReportsColumns[3]},
			},
			{
				Name:    "deepanalysisreport_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeepAnalysisReportsColumns[26], DeepAnalysisReportsColumns[24]},
			},
			{
				Name:    "deepanalysisreport_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{DeepAnalysisReportsColumns[3], DeepAnalysisReportsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_uuid", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_report_uuid",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sender", Type: field.TypeEnum, Enums: []string{"user", "ai"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_chats_messages",
				Columns:    []*schema.Column{MessagesColumns[4]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_chat_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[3]},
			},
		},
	}
	// MessageFeedbackColumns holds the columns for the "message_feedback" table.
	MessageFeedbackColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "message_id", Type: field.TypeInt, Unique: true},
		{Name: "rating", Type: field.TypeInt, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_provider", Type: field.TypeString, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MessageFeedbackTable holds the schema information for the "message_feedback" table.
	MessageFeedbackTable = &schema.Table{
		Name:       "message_feedback",
		Columns:    MessageFeedbackColumns,
		PrimaryKey: []*schema.Column{MessageFeedbackColumns[0]},
	}
	// ModelUsageColumns holds the columns for the "model_usage" table.
	ModelUsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chat_id", Type: field.TypeInt, Nullable: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "query_size", Type: field.TypeInt, Default: 0},
		{Name: "response_size", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "is_streaming", Type: field.TypeBool, Default: false},
		{Name: "request_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// ModelUsageTable holds the schema information for the "model_usage" table.
	ModelUsageTable = &schema.Table{
		Name:       "model_usage",
		Columns:    ModelUsageColumns,
		PrimaryKey: []*schema.Column{ModelUsageColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "model_usage_users_usage_records",
				Columns:    []*schema.Column{ModelUsageColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "modelusage_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ModelUsageColumns[13], ModelUsageColumns[10]},
			},
			{
				Name:    "modelusage_model_name",
				Unique:  false,
				Columns: []*schema.Column{ModelUsageColumns[2]},
			},
			{
				Name:    "modelusage_provider",
				Unique:  false,
				Columns: []*schema.Column{ModelUsageColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserTemplatePreferencesColumns holds the columns for the "user_template_preferences" table.
	UserTemplatePreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "is_enabled", Type: field.TypeBool, Default: false},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "template_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// UserTemplatePreferencesTable holds the schema information for the "user_template_preferences" table.
	UserTemplatePreferencesTable = &schema.Table{
		Name:       "user_template_preferences",
		Columns:    UserTemplatePreferencesColumns,
		PrimaryKey: []*schema.Column{UserTemplatePreferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_template_preferences_agent_templates_user_preferences",
				Columns:    []*schema.Column{UserTemplatePreferencesColumns[6]},
				RefColumns: []*schema.Column{AgentTemplatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "user_template_preferences_users_template_preferences",
				Columns:    []*schema.Column{UserTemplatePreferencesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usertemplatepreference_user_id_template_id",
				Unique:  true,
				Columns: []*schema.Column{UserTemplatePreferencesColumns[7], UserTemplatePreferencesColumns[6]},
			},
			{
				Name:    "usertemplatepreference_user_id_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{UserTemplatePreferencesColumns[7], UserTemplatePreferencesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentTemplatesTable,
		ChatsTable,
		CodeExecutionsTable,
		DeepAnalysisReportsTable,
		EventsTable,
		MessagesTable,
		MessageFeedbackTable,
		ModelUsageTable,
		UsersTable,
		UserTemplatePreferencesTable,
	}
)

func init() {
	ChatsTable.ForeignKeys[0].RefTable = UsersTable
	DeepAnalysisReportsTable.ForeignKeys[0].RefTable = UsersTable
	MessagesTable.ForeignKeys[0].RefTable = ChatsTable
	MessageFeedbackTable.Annotation = &entsql.Annotation{
		Table: "message_feedback",
	}
	ModelUsageTable.ForeignKeys[0].RefTable = UsersTable
	ModelUsageTable.Annotation = &entsql.Annotation{
		Table: "model_usage",
	}
	UserTemplatePreferencesTable.ForeignKeys[0].RefTable = AgentTemplatesTable
	UserTemplatePreferencesTable.ForeignKeys[1].RefTable = UsersTable
}
