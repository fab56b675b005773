// Code generated by ent, DO NOT EDIT.

package deepanalysisreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldID, id))
}

// ReportUUID applies equality check predicate on the "report_uuid" field. It's identical to ReportUUIDEQ.
func ReportUUID(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldReportUUID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldUserID, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldGoal, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldEndTime, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldDurationSeconds, v))
}

// DeepQuestions applies equality check predicate on the "deep_questions" field. It's identical to DeepQuestionsEQ.
func DeepQuestions(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldDeepQuestions, v))
}

// DeepPlan applies equality check predicate on the "deep_plan" field. It's identical to DeepPlanEQ.
func DeepPlan(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldDeepPlan, v))
}

// AnalysisCode applies equality check predicate on the "analysis_code" field. It's identical to AnalysisCodeEQ.
func AnalysisCode(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldAnalysisCode, v))
}

// FinalConclusion applies equality check predicate on the "final_conclusion" field. It's identical to FinalConclusionEQ.
func FinalConclusion(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldFinalConclusion, v))
}

// HTMLReport applies equality check predicate on the "html_report" field. It's identical to HTMLReportEQ.
func HTMLReport(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldHTMLReport, v))
}

// ReportSummary applies equality check predicate on the "report_summary" field. It's identical to ReportSummaryEQ.
func ReportSummary(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldReportSummary, v))
}

// ProgressPercentage applies equality check predicate on the "progress_percentage" field. It's identical to ProgressPercentageEQ.
func ProgressPercentage(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldProgressPercentage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldErrorMessage, v))
}

// ModelProvider applies equality check predicate on the "model_provider" field. It's identical to ModelProviderEQ.
func ModelProvider(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldModelProvider, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldModelName, v))
}

// TotalTokensUsed applies equality check predicate on the "total_tokens_used" field. It's identical to TotalTokensUsedEQ.
func TotalTokensUsed(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldTotalTokensUsed, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldEstimatedCost, v))
}

// CreditsConsumed applies equality check predicate on the "credits_consumed" field. It's identical to CreditsConsumedEQ.
func CreditsConsumed(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldCreditsConsumed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportUUIDEQ applies the EQ predicate on the "report_uuid" field.
func ReportUUIDEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldReportUUID, v))
}

// ReportUUIDNEQ applies the NEQ predicate on the "report_uuid" field.
func ReportUUIDNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldReportUUID, v))
}

// ReportUUIDIn applies the In predicate on the "report_uuid" field.
func ReportUUIDIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldReportUUID, vs...))
}

// ReportUUIDNotIn applies the NotIn predicate on the "report_uuid" field.
func ReportUUIDNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldReportUUID, vs...))
}

// ReportUUIDGT applies the GT predicate on the "report_uuid" field.
func ReportUUIDGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldReportUUID, v))
}

// ReportUUIDGTE applies the GTE predicate on the "report_uuid" field.
func ReportUUIDGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldReportUUID, v))
}

// ReportUUIDLT applies the LT predicate on the "report_uuid" field.
func ReportUUIDLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldReportUUID, v))
}

// ReportUUIDLTE applies the LTE predicate on the "report_uuid" field.
func ReportUUIDLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldReportUUID, v))
}

// ReportUUIDContains applies the Contains predicate on the "report_uuid" field.
func ReportUUIDContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldReportUUID, v))
}

// ReportUUIDHasPrefix applies the HasPrefix predicate on the "report_uuid" field.
func ReportUUIDHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldReportUUID, v))
}

// ReportUUIDHasSuffix applies the HasSuffix predicate on the "report_uuid" field.
func ReportUUIDHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldReportUUID, v))
}

// ReportUUIDEqualFold applies the EqualFold predicate on the "report_uuid" field.
func ReportUUIDEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldReportUUID, v))
}

// ReportUUIDContainsFold applies the ContainsFold predicate on the "report_uuid" field.
func ReportUUIDContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldReportUUID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldUserID))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldGoal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldStatus, vs...))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldEndTime))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldDurationSeconds))
}

// DeepQuestionsEQ applies the EQ predicate on the "deep_questions" field.
func DeepQuestionsEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldDeepQuestions, v))
}

// DeepQuestionsNEQ applies the NEQ predicate on the "deep_questions" field.
func DeepQuestionsNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldDeepQuestions, v))
}

// DeepQuestionsIn applies the In predicate on the "deep_questions" field.
func DeepQuestionsIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldDeepQuestions, vs...))
}

// DeepQuestionsNotIn applies the NotIn predicate on the "deep_questions" field.
func DeepQuestionsNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldDeepQuestions, vs...))
}

// DeepQuestionsGT applies the GT predicate on the "deep_questions" field.
func DeepQuestionsGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldDeepQuestions, v))
}

// DeepQuestionsGTE applies the GTE predicate on the "deep_questions" field.
func DeepQuestionsGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldDeepQuestions, v))
}

// DeepQuestionsLT applies the LT predicate on the "deep_questions" field.
func DeepQuestionsLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldDeepQuestions, v))
}

// DeepQuestionsLTE applies the LTE predicate on the "deep_questions" field.
func DeepQuestionsLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldDeepQuestions, v))
}

// DeepQuestionsContains applies the Contains predicate on the "deep_questions" field.
func DeepQuestionsContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldDeepQuestions, v))
}

// DeepQuestionsHasPrefix applies the HasPrefix predicate on the "deep_questions" field.
func DeepQuestionsHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldDeepQuestions, v))
}

// DeepQuestionsHasSuffix applies the HasSuffix predicate on the "deep_questions" field.
func DeepQuestionsHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldDeepQuestions, v))
}

// DeepQuestionsIsNil applies the IsNil predicate on the "deep_questions" field.
func DeepQuestionsIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldDeepQuestions))
}

// DeepQuestionsNotNil applies the NotNil predicate on the "deep_questions" field.
func DeepQuestionsNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldDeepQuestions))
}

// DeepQuestionsEqualFold applies the EqualFold predicate on the "deep_questions" field.
func DeepQuestionsEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldDeepQuestions, v))
}

// DeepQuestionsContainsFold applies the ContainsFold predicate on the "deep_questions" field.
func DeepQuestionsContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldDeepQuestions, v))
}

// DeepPlanEQ applies the EQ predicate on the "deep_plan" field.
func DeepPlanEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldDeepPlan, v))
}

// DeepPlanNEQ applies the NEQ predicate on the "deep_plan" field.
func DeepPlanNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldDeepPlan, v))
}

// DeepPlanIn applies the In predicate on the "deep_plan" field.
func DeepPlanIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldDeepPlan, vs...))
}

// DeepPlanNotIn applies the NotIn predicate on the "deep_plan" field.
func DeepPlanNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldDeepPlan, vs...))
}

// DeepPlanGT applies the GT predicate on the "deep_plan" field.
func DeepPlanGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldDeepPlan, v))
}

// DeepPlanGTE applies the GTE predicate on the "deep_plan" field.
func DeepPlanGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldDeepPlan, v))
}

// DeepPlanLT applies the LT predicate on the "deep_plan" field.
func DeepPlanLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldDeepPlan, v))
}

// DeepPlanLTE applies the LTE predicate on the "deep_plan" field.
func DeepPlanLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldDeepPlan, v))
}

// DeepPlanContains applies the Contains predicate on the "deep_plan" field.
func DeepPlanContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldDeepPlan, v))
}

// DeepPlanHasPrefix applies the HasPrefix predicate on the "deep_plan" field.
func DeepPlanHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldDeepPlan, v))
}

// DeepPlanHasSuffix applies the HasSuffix predicate on the "deep_plan" field.
func DeepPlanHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldDeepPlan, v))
}

// DeepPlanIsNil applies the IsNil predicate on the "deep_plan" field.
func DeepPlanIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldDeepPlan))
}

// DeepPlanNotNil applies the NotNil predicate on the "deep_plan" field.
func DeepPlanNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldDeepPlan))
}

// DeepPlanEqualFold applies the EqualFold predicate on the "deep_plan" field.
func DeepPlanEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldDeepPlan, v))
}

// DeepPlanContainsFold applies the ContainsFold predicate on the "deep_plan" field.
func DeepPlanContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldDeepPlan, v))
}

// SummariesIsNil applies the IsNil predicate on the "summaries" field.
func SummariesIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldSummaries))
}

// SummariesNotNil applies the NotNil predicate on the "summaries" field.
func SummariesNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldSummaries))
}

// AnalysisCodeEQ applies the EQ predicate on the "analysis_code" field.
func AnalysisCodeEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldAnalysisCode, v))
}

// AnalysisCodeNEQ applies the NEQ predicate on the "analysis_code" field.
func AnalysisCodeNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldAnalysisCode, v))
}

// AnalysisCodeIn applies the In predicate on the "analysis_code" field.
func AnalysisCodeIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldAnalysisCode, vs...))
}

// AnalysisCodeNotIn applies the NotIn predicate on the "analysis_code" field.
func AnalysisCodeNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldAnalysisCode, vs...))
}

// AnalysisCodeGT applies the GT predicate on the "analysis_code" field.
func AnalysisCodeGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldAnalysisCode, v))
}

// AnalysisCodeGTE applies the GTE predicate on the "analysis_code" field.
func AnalysisCodeGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldAnalysisCode, v))
}

// AnalysisCodeLT applies the LT predicate on the "analysis_code" field.
func AnalysisCodeLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldAnalysisCode, v))
}

// AnalysisCodeLTE applies the LTE predicate on the "analysis_code" field.
func AnalysisCodeLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldAnalysisCode, v))
}

// AnalysisCodeContains applies the Contains predicate on the "analysis_code" field.
func AnalysisCodeContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldAnalysisCode, v))
}

// AnalysisCodeHasPrefix applies the HasPrefix predicate on the "analysis_code" field.
func AnalysisCodeHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldAnalysisCode, v))
}

// AnalysisCodeHasSuffix applies the HasSuffix predicate on the "analysis_code" field.
func AnalysisCodeHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldAnalysisCode, v))
}

// AnalysisCodeIsNil applies the IsNil predicate on the "analysis_code" field.
func AnalysisCodeIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldAnalysisCode))
}

// AnalysisCodeNotNil applies the NotNil predicate on the "analysis_code" field.
func AnalysisCodeNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldAnalysisCode))
}

// AnalysisCodeEqualFold applies the EqualFold predicate on the "analysis_code" field.
func AnalysisCodeEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldAnalysisCode, v))
}

// AnalysisCodeContainsFold applies the ContainsFold predicate on the "analysis_code" field.
func AnalysisCodeContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldAnalysisCode, v))
}

// PlotlyFiguresIsNil applies the IsNil predicate on the "plotly_figures" field.
func PlotlyFiguresIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldPlotlyFigures))
}

// PlotlyFiguresNotNil applies the NotNil predicate on the "plotly_figures" field.
func PlotlyFiguresNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldPlotlyFigures))
}

// SynthesisIsNil applies the IsNil predicate on the "synthesis" field.
func SynthesisIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldSynthesis))
}

// SynthesisNotNil applies the NotNil predicate on the "synthesis" field.
func SynthesisNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldSynthesis))
}

// FinalConclusionEQ applies the EQ predicate on the "final_conclusion" field.
func FinalConclusionEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldFinalConclusion, v))
}

// FinalConclusionNEQ applies the NEQ predicate on the "final_conclusion" field.
func FinalConclusionNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldFinalConclusion, v))
}

// FinalConclusionIn applies the In predicate on the "final_conclusion" field.
func FinalConclusionIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldFinalConclusion, vs...))
}

// FinalConclusionNotIn applies the NotIn predicate on the "final_conclusion" field.
func FinalConclusionNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldFinalConclusion, vs...))
}

// FinalConclusionGT applies the GT predicate on the "final_conclusion" field.
func FinalConclusionGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldFinalConclusion, v))
}

// FinalConclusionGTE applies the GTE predicate on the "final_conclusion" field.
func FinalConclusionGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldFinalConclusion, v))
}

// FinalConclusionLT applies the LT predicate on the "final_conclusion" field.
func FinalConclusionLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldFinalConclusion, v))
}

// FinalConclusionLTE applies the LTE predicate on the "final_conclusion" field.
func FinalConclusionLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldFinalConclusion, v))
}

// FinalConclusionContains applies the Contains predicate on the "final_conclusion" field.
func FinalConclusionContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldFinalConclusion, v))
}

// FinalConclusionHasPrefix applies the HasPrefix predicate on the "final_conclusion" field.
func FinalConclusionHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldFinalConclusion, v))
}

// FinalConclusionHasSuffix applies the HasSuffix predicate on the "final_conclusion" field.
func FinalConclusionHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldFinalConclusion, v))
}

// FinalConclusionIsNil applies the IsNil predicate on the "final_conclusion" field.
func FinalConclusionIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldFinalConclusion))
}

// FinalConclusionNotNil applies the NotNil predicate on the "final_conclusion" field.
func FinalConclusionNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldFinalConclusion))
}

// FinalConclusionEqualFold applies the EqualFold predicate on the "final_conclusion" field.
func FinalConclusionEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldFinalConclusion, v))
}

// FinalConclusionContainsFold applies the ContainsFold predicate on the "final_conclusion" field.
func FinalConclusionContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldFinalConclusion, v))
}

// HTMLReportEQ applies the EQ predicate on the "html_report" field.
func HTMLReportEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldHTMLReport, v))
}

// HTMLReportNEQ applies the NEQ predicate on the "html_report" field.
func HTMLReportNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldHTMLReport, v))
}

// HTMLReportIn applies the In predicate on the "html_report" field.
func HTMLReportIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldHTMLReport, vs...))
}

// HTMLReportNotIn applies the NotIn predicate on the "html_report" field.
func HTMLReportNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldHTMLReport, vs...))
}

// HTMLReportGT applies the GT predicate on the "html_report" field.
func HTMLReportGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldHTMLReport, v))
}

// HTMLReportGTE applies the GTE predicate on the "html_report" field.
func HTMLReportGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldHTMLReport, v))
}

// HTMLReportLT applies the LT predicate on the "html_report" field.
func HTMLReportLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldHTMLReport, v))
}

// HTMLReportLTE applies the LTE predicate on the "html_report" field.
func HTMLReportLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldHTMLReport, v))
}

// HTMLReportContains applies the Contains predicate on the "html_report" field.
func HTMLReportContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldHTMLReport, v))
}

// HTMLReportHasPrefix applies the HasPrefix predicate on the "html_report" field.
func HTMLReportHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldHTMLReport, v))
}

// HTMLReportHasSuffix applies the HasSuffix predicate on the "html_report" field.
func HTMLReportHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldHTMLReport, v))
}

// HTMLReportIsNil applies the IsNil predicate on the "html_report" field.
func HTMLReportIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldHTMLReport))
}

// HTMLReportNotNil applies the NotNil predicate on the "html_report" field.
func HTMLReportNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldHTMLReport))
}

// HTMLReportEqualFold applies the EqualFold predicate on the "html_report" field.
func HTMLReportEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldHTMLReport, v))
}

// HTMLReportContainsFold applies the ContainsFold predicate on the "html_report" field.
func HTMLReportContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldHTMLReport, v))
}

// ReportSummaryEQ applies the EQ predicate on the "report_summary" field.
func ReportSummaryEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldReportSummary, v))
}

// ReportSummaryNEQ applies the NEQ predicate on the "report_summary" field.
func ReportSummaryNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldReportSummary, v))
}

// ReportSummaryIn applies the In predicate on the "report_summary" field.
func ReportSummaryIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldReportSummary, vs...))
}

// ReportSummaryNotIn applies the NotIn predicate on the "report_summary" field.
func ReportSummaryNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldReportSummary, vs...))
}

// ReportSummaryGT applies the GT predicate on the "report_summary" field.
func ReportSummaryGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldReportSummary, v))
}

// ReportSummaryGTE applies the GTE predicate on the "report_summary" field.
func ReportSummaryGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldReportSummary, v))
}

// ReportSummaryLT applies the LT predicate on the "report_summary" field.
func ReportSummaryLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldReportSummary, v))
}

// ReportSummaryLTE applies the LTE predicate on the "report_summary" field.
func ReportSummaryLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldReportSummary, v))
}

// ReportSummaryContains applies the Contains predicate on the "report_summary" field.
func ReportSummaryContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldReportSummary, v))
}

// ReportSummaryHasPrefix applies the HasPrefix predicate on the "report_summary" field.
func ReportSummaryHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldReportSummary, v))
}

// ReportSummaryHasSuffix applies the HasSuffix predicate on the "report_summary" field.
func ReportSummaryHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldReportSummary, v))
}

// ReportSummaryIsNil applies the IsNil predicate on the "report_summary" field.
func ReportSummaryIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldReportSummary))
}

// ReportSummaryNotNil applies the NotNil predicate on the "report_summary" field.
func ReportSummaryNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldReportSummary))
}

// ReportSummaryEqualFold applies the EqualFold predicate on the "report_summary" field.
func ReportSummaryEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldReportSummary, v))
}

// ReportSummaryContainsFold applies the ContainsFold predicate on the "report_summary" field.
func ReportSummaryContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldReportSummary, v))
}

// ProgressPercentageEQ applies the EQ predicate on the "progress_percentage" field.
func ProgressPercentageEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldProgressPercentage, v))
}

// ProgressPercentageNEQ applies the NEQ predicate on the "progress_percentage" field.
func ProgressPercentageNEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldProgressPercentage, v))
}

// ProgressPercentageIn applies the In predicate on the "progress_percentage" field.
func ProgressPercentageIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageNotIn applies the NotIn predicate on the "progress_percentage" field.
func ProgressPercentageNotIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageGT applies the GT predicate on the "progress_percentage" field.
func ProgressPercentageGT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldProgressPercentage, v))
}

// ProgressPercentageGTE applies the GTE predicate on the "progress_percentage" field.
func ProgressPercentageGTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldProgressPercentage, v))
}

// ProgressPercentageLT applies the LT predicate on the "progress_percentage" field.
func ProgressPercentageLT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldProgressPercentage, v))
}

// ProgressPercentageLTE applies the LTE predicate on the "progress_percentage" field.
func ProgressPercentageLTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldProgressPercentage, v))
}

// StepsCompletedIsNil applies the IsNil predicate on the "steps_completed" field.
func StepsCompletedIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldStepsCompleted))
}

// StepsCompletedNotNil applies the NotNil predicate on the "steps_completed" field.
func StepsCompletedNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldStepsCompleted))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ModelProviderEQ applies the EQ predicate on the "model_provider" field.
func ModelProviderEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldModelProvider, v))
}

// ModelProviderNEQ applies the NEQ predicate on the "model_provider" field.
func ModelProviderNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldModelProvider, v))
}

// ModelProviderIn applies the In predicate on the "model_provider" field.
func ModelProviderIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldModelProvider, vs...))
}

// ModelProviderNotIn applies the NotIn predicate on the "model_provider" field.
func ModelProviderNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldModelProvider, vs...))
}

// ModelProviderGT applies the GT predicate on the "model_provider" field.
func ModelProviderGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldModelProvider, v))
}

// ModelProviderGTE applies the GTE predicate on the "model_provider" field.
func ModelProviderGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldModelProvider, v))
}

// ModelProviderLT applies the LT predicate on the "model_provider" field.
func ModelProviderLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldModelProvider, v))
}

// ModelProviderLTE applies the LTE predicate on the "model_provider" field.
func ModelProviderLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldModelProvider, v))
}

// ModelProviderContains applies the Contains predicate on the "model_provider" field.
func ModelProviderContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldModelProvider, v))
}

// ModelProviderHasPrefix applies the HasPrefix predicate on the "model_provider" field.
func ModelProviderHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldModelProvider, v))
}

// ModelProviderHasSuffix applies the HasSuffix predicate on the "model_provider" field.
func ModelProviderHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldModelProvider, v))
}

// ModelProviderIsNil applies the IsNil predicate on the "model_provider" field.
func ModelProviderIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldModelProvider))
}

// ModelProviderNotNil applies the NotNil predicate on the "model_provider" field.
func ModelProviderNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldModelProvider))
}

// ModelProviderEqualFold applies the EqualFold predicate on the "model_provider" field.
func ModelProviderEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldModelProvider, v))
}

// ModelProviderContainsFold applies the ContainsFold predicate on the "model_provider" field.
func ModelProviderContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldModelProvider, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldContainsFold(FieldModelName, v))
}

// TotalTokensUsedEQ applies the EQ predicate on the "total_tokens_used" field.
func TotalTokensUsedEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldTotalTokensUsed, v))
}

// TotalTokensUsedNEQ applies the NEQ predicate on the "total_tokens_used" field.
func TotalTokensUsedNEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldTotalTokensUsed, v))
}

// TotalTokensUsedIn applies the In predicate on the "total_tokens_used" field.
func TotalTokensUsedIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldTotalTokensUsed, vs...))
}

// TotalTokensUsedNotIn applies the NotIn predicate on the "total_tokens_used" field.
func TotalTokensUsedNotIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldTotalTokensUsed, vs...))
}

// TotalTokensUsedGT applies the GT predicate on the "total_tokens_used" field.
func TotalTokensUsedGT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldTotalTokensUsed, v))
}

// TotalTokensUsedGTE applies the GTE predicate on the "total_tokens_used" field.
func TotalTokensUsedGTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldTotalTokensUsed, v))
}

// TotalTokensUsedLT applies the LT predicate on the "total_tokens_used" field.
func TotalTokensUsedLT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldTotalTokensUsed, v))
}

// TotalTokensUsedLTE applies the LTE predicate on the "total_tokens_used" field.
func TotalTokensUsedLTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldTotalTokensUsed, v))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v float64) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldEstimatedCost, v))
}

// CreditsConsumedEQ applies the EQ predicate on the "credits_consumed" field.
func CreditsConsumedEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldCreditsConsumed, v))
}

// CreditsConsumedNEQ applies the NEQ predicate on the "credits_consumed" field.
func CreditsConsumedNEQ(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldCreditsConsumed, v))
}

// CreditsConsumedIn applies the In predicate on the "credits_consumed" field.
func CreditsConsumedIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldCreditsConsumed, vs...))
}

// CreditsConsumedNotIn applies the NotIn predicate on the "credits_consumed" field.
func CreditsConsumedNotIn(vs ...int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldCreditsConsumed, vs...))
}

// CreditsConsumedGT applies the GT predicate on the "credits_consumed" field.
func CreditsConsumedGT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldCreditsConsumed, v))
}

// CreditsConsumedGTE applies the GTE predicate on the "credits_consumed" field.
func CreditsConsumedGTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldCreditsConsumed, v))
}

// CreditsConsumedLT applies the LT predicate on the "credits_consumed" field.
func CreditsConsumedLT(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldCreditsConsumed, v))
}

// CreditsConsumedLTE applies the LTE predicate on the "credits_consumed" field.
func CreditsConsumedLTE(v int) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldCreditsConsumed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeepAnalysisReport) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeepAnalysisReport) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeepAnalysisReport) predicate.DeepAnalysisReport {
	return predicate.DeepAnalysisReport(sql.NotPredicates(p))
}
