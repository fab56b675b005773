// Code generated by ent, DO NOT EDIT.

package deepanalysisreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deepanalysisreport type in the database.
	Label = "deep_analysis_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportUUID holds the string denoting the report_uuid field in the database.
	FieldReportUUID = "report_uuid"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldDeepQuestions holds the string denoting the deep_questions field in the database.
	FieldDeepQuestions = "deep_questions"
	// FieldDeepPlan holds the string denoting the deep_plan field in the database.
	FieldDeepPlan = "deep_plan"
	// FieldSummaries holds the string denoting the summaries field in the database.
	FieldSummaries = "summaries"
	// FieldAnalysisCode holds the string denoting the analysis_code field in the database.
	FieldAnalysisCode = "analysis_code"
	// FieldPlotlyFigures holds the string denoting the plotly_figures field in the database.
	FieldPlotlyFigures = "plotly_figures"
	// FieldSynthesis holds the string denoting the synthesis field in the database.
	FieldSynthesis = "synthesis"
	// FieldFinalConclusion holds the string denoting the final_conclusion field in the database.
	FieldFinalConclusion = "final_conclusion"
	// FieldHTMLReport holds the string denoting the html_report field in the database.
	FieldHTMLReport = "html_report"
	// FieldReportSummary holds the string denoting the report_summary field in the database.
	FieldReportSummary = "report_summary"
	// FieldProgressPercentage holds the string denoting the progress_percentage field in the database.
	FieldProgressPercentage = "progress_percentage"
	// FieldStepsCompleted holds the string denoting the steps_completed field in the database.
	FieldStepsCompleted = "steps_completed"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldModelProvider holds the string denoting the model_provider field in the database.
	FieldModelProvider = "model_provider"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldTotalTokensUsed holds the string denoting the total_tokens_used field in the database.
	FieldTotalTokensUsed = "total_tokens_used"
	// FieldEstimatedCost holds the string denoting the estimated_cost field in the database.
	FieldEstimatedCost = "estimated_cost"
	// FieldCreditsConsumed holds the string denoting the credits_consumed field in the database.
	FieldCreditsConsumed = "credits_consumed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the deepanalysisreport in the database.
	Table = "deep_analysis_reports"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "deep_analysis_reports"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for deepanalysisreport fields.
var Columns = []string{
	FieldID,
	FieldReportUUID,
	FieldUserID,
	FieldGoal,
	FieldStatus,
	FieldStartTime,
	FieldEndTime,
	FieldDurationSeconds,
	FieldDeepQuestions,
	FieldDeepPlan,
	FieldSummaries,
	FieldAnalysisCode,
	FieldPlotlyFigures,
	FieldSynthesis,
	FieldFinalConclusion,
	FieldHTMLReport,
	FieldReportSummary,
	FieldProgressPercentage,
	FieldStepsCompleted,
	FieldErrorMessage,
	FieldModelProvider,
	FieldModelName,
	FieldTotalTokensUsed,
	FieldEstimatedCost,
	FieldCreditsConsumed,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultStartTime holds the default value on creation for the "start_time" field.
	DefaultStartTime func() time.Time
	// DefaultProgressPercentage holds the default value on creation for the "progress_percentage" field.
	DefaultProgressPercentage int
	// ProgressPercentageValidator is a validator for the "progress_percentage" field. It is called by the builders before save.
	ProgressPercentageValidator func(int) error
	// DefaultTotalTokensUsed holds the default value on creation for the "total_tokens_used" field.
	DefaultTotalTokensUsed int
	// DefaultEstimatedCost holds the default value on creation for the "estimated_cost" field.
	DefaultEstimatedCost float64
	// DefaultCreditsConsumed holds the default value on creation for the "credits_consumed" field.
	DefaultCreditsConsumed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("deepanalysisreport: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeepAnalysisReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportUUID orders the results by the report_uuid field.
func ByReportUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportUUID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByDeepQuestions orders the results by the deep_questions field.
func ByDeepQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeepQuestions, opts...).ToFunc()
}

// ByDeepPlan orders the results by the deep_plan field.
func ByDeepPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeepPlan, opts...).ToFunc()
}

// ByAnalysisCode orders the results by the analysis_code field.
func ByAnalysisCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisCode, opts...).ToFunc()
}

// ByFinalConclusion orders the results by the final_conclusion field.
func ByFinalConclusion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalConclusion, opts...).ToFunc()
}

// ByHTMLReport orders the results by the html_report field.
func ByHTMLReport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHTMLReport, opts...).ToFunc()
}

// ByReportSummary orders the results by the report_summary field.
func ByReportSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportSummary, opts...).ToFunc()
}

// ByProgressPercentage orders the results by the progress_percentage field.
func ByProgressPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercentage, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByModelProvider orders the results by the model_provider field.
func ByModelProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelProvider, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByTotalTokensUsed orders the results by the total_tokens_used field.
func ByTotalTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokensUsed, opts...).ToFunc()
}

// ByEstimatedCost orders the results by the estimated_cost field.
func ByEstimatedCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCost, opts...).ToFunc()
}

// ByCreditsConsumed orders the results by the credits_consumed field.
func ByCreditsConsumed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsConsumed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
