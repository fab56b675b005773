// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeChats holds the string denoting the chats edge name in mutations.
	EdgeChats = "chats"
	// EdgeTemplatePreferences holds the string denoting the template_preferences edge name in mutations.
	EdgeTemplatePreferences = "template_preferences"
	// EdgeUsageRecords holds the string denoting the usage_records edge name in mutations.
	EdgeUsageRecords = "usage_records"
	// EdgeDeepAnalysisReports holds the string denoting the deep_analysis_reports edge name in mutations.
	EdgeDeepAnalysisReports = "deep_analysis_reports"
	// Table holds the table name of the user in the database.
	Table = "users"
	// ChatsTable is the table that holds the chats relation/edge.
	ChatsTable = "chats"
	// ChatsInverseTable is the table name for the Chat entity.
	// It exists in this package in order to avoid circular dependency with the "chat" package.
	ChatsInverseTable = "chats"
	// ChatsColumn is the table column denoting the chats relation/edge.
	ChatsColumn = "user_id"
	// TemplatePreferencesTable is the table that holds the template_preferences relation/edge.
	TemplatePreferencesTable = "user_template_preferences"
	// TemplatePreferencesInverseTable is the table name for the UserTemplatePreference entity.
	// It exists in this package in order to avoid circular dependency with the "usertemplatepreference" package.
	TemplatePreferencesInverseTable = "user_template_preferences"
	// TemplatePreferencesColumn is the table column denoting the template_preferences relation/edge.
	TemplatePreferencesColumn = "user_id"
	// UsageRecordsTable is the table that holds the usage_records relation/edge.
	UsageRecordsTable = "model_usage"
	// UsageRecordsInverseTable is the table name for the ModelUsage entity.
	// It exists in this package in order to avoid circular dependency with the "modelusage" package.
	UsageRecordsInverseTable = "model_usage"
	// UsageRecordsColumn is the table column denoting the usage_records relation/edge.
	UsageRecordsColumn = "user_id"
	// DeepAnalysisReportsTable is the table that holds the deep_analysis_reports relation/edge.
	DeepAnalysisReportsTable = "deep_analysis_reports"
	// DeepAnalysisReportsInverseTable is the table name for the DeepAnalysisReport entity.
	// It exists in this package in order to avoid circular dependency with the "deepanalysisreport" package.
	DeepAnalysisReportsInverseTable = "deep_analysis_reports"
	// DeepAnalysisReportsColumn is the table column denoting the deep_analysis_reports relation/edge.
	DeepAnalysisReportsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldEmail,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByChatsCount orders the results by chats count.
func ByChatsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatsStep(), opts...)
	}
}

// ByChats orders the results by chats terms.
func ByChats(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTemplatePreferencesCount orders the results by template_preferences count.
func ByTemplatePreferencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTemplatePreferencesStep(), opts...)
	}
}

// ByTemplatePreferences orders the results by template_preferences terms.
func ByTemplatePreferences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplatePreferencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUsageRecordsCount orders the results by usage_records count.
func ByUsageRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsageRecordsStep(), opts...)
	}
}

// ByUsageRecords orders the results by usage_records terms.
func ByUsageRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsageRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDeepAnalysisReportsCount orders the results by deep_analysis_reports count.
func ByDeepAnalysisReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeepAnalysisReportsStep(), opts...)
	}
}

// ByDeepAnalysisReports orders the results by deep_analysis_reports terms.
func ByDeepAnalysisReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeepAnalysisReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatsTable, ChatsColumn),
	)
}
func newTemplatePreferencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplatePreferencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TemplatePreferencesTable, TemplatePreferencesColumn),
	)
}
func newUsageRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsageRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsageRecordsTable, UsageRecordsColumn),
	)
}
func newDeepAnalysisReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeepAnalysisReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeepAnalysisReportsTable, DeepAnalysisReportsColumn),
	)
}
