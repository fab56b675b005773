// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/predicate"
	"github.com/autoanalyst/analyst/ent/user"
)

// DeepAnalysisReportUpdate is the builder for updating DeepAnalysisReport entities.
type DeepAnalysisReportUpdate struct {
	config
	hooks    []Hook
	mutation *DeepAnalysisReportMutation
}

// Where appends a list predicates to the DeepAnalysisReportUpdate builder.
func (_u *DeepAnalysisReportUpdate) Where(ps ...predicate.DeepAnalysisReport) *DeepAnalysisReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DeepAnalysisReportUpdate) SetUserID(v int) *DeepAnalysisReportUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableUserID(v *int) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DeepAnalysisReportUpdate) ClearUserID() *DeepAnalysisReportUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *DeepAnalysisReportUpdate) SetGoal(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableGoal(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeepAnalysisReportUpdate) SetStatus(v deepanalysisreport.Status) *DeepAnalysisReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableStatus(v *deepanalysisreport.Status) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DeepAnalysisReportUpdate) SetStartTime(v time.Time) *DeepAnalysisReportUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableStartTime(v *time.Time) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DeepAnalysisReportUpdate) SetEndTime(v time.Time) *DeepAnalysisReportUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableEndTime(v *time.Time) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *DeepAnalysisReportUpdate) ClearEndTime() *DeepAnalysisReportUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *DeepAnalysisReportUpdate) SetDurationSeconds(v int) *DeepAnalysisReportUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableDurationSeconds(v *int) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *DeepAnalysisReportUpdate) AddDurationSeconds(v int) *DeepAnalysisReportUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *DeepAnalysisReportUpdate) ClearDurationSeconds() *DeepAnalysisReportUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetDeepQuestions sets the "deep_questions" field.
func (_u *DeepAnalysisReportUpdate) SetDeepQuestions(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetDeepQuestions(v)
	return _u
}

// SetNillableDeepQuestions sets the "deep_questions" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableDeepQuestions(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetDeepQuestions(*v)
	}
	return _u
}

// ClearDeepQuestions clears the value of the "deep_questions" field.
func (_u *DeepAnalysisReportUpdate) ClearDeepQuestions() *DeepAnalysisReportUpdate {
	_u.mutation.ClearDeepQuestions()
	return _u
}

// SetDeepPlan sets the "deep_plan" field.
func (_u *DeepAnalysisReportUpdate) SetDeepPlan(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetDeepPlan(v)
	return _u
}

// SetNillableDeepPlan sets the "deep_plan" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableDeepPlan(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetDeepPlan(*v)
	}
	return _u
}

// ClearDeepPlan clears the value of the "deep_plan" field.
func (_u *DeepAnalysisReportUpdate) ClearDeepPlan() *DeepAnalysisReportUpdate {
	_u.mutation.ClearDeepPlan()
	return _u
}

// SetSummaries sets the "summaries" field.
func (_u *DeepAnalysisReportUpdate) SetSummaries(v []string) *DeepAnalysisReportUpdate {
	_u.mutation.SetSummaries(v)
	return _u
}

// AppendSummaries appends value to the "summaries" field.
func (_u *DeepAnalysisReportUpdate) AppendSummaries(v []string) *DeepAnalysisReportUpdate {
	_u.mutation.AppendSummaries(v)
	return _u
}

// ClearSummaries clears the value of the "summaries" field.
func (_u *DeepAnalysisReportUpdate) ClearSummaries() *DeepAnalysisReportUpdate {
	_u.mutation.ClearSummaries()
	return _u
}

// SetAnalysisCode sets the "analysis_code" field.
func (_u *DeepAnalysisReportUpdate) SetAnalysisCode(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetAnalysisCode(v)
	return _u
}

// SetNillableAnalysisCode sets the "analysis_code" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableAnalysisCode(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetAnalysisCode(*v)
	}
	return _u
}

// ClearAnalysisCode clears the value of the "analysis_code" field.
func (_u *DeepAnalysisReportUpdate) ClearAnalysisCode() *DeepAnalysisReportUpdate {
	_u.mutation.ClearAnalysisCode()
	return _u
}

// SetPlotlyFigures sets the "plotly_figures" field.
func (_u *DeepAnalysisReportUpdate) SetPlotlyFigures(v json.RawMessage) *DeepAnalysisReportUpdate {
	_u.mutation.SetPlotlyFigures(v)
	return _u
}

// AppendPlotlyFigures appends value to the "plotly_figures" field.
func (_u *DeepAnalysisReportUpdate) AppendPlotlyFigures(v json.RawMessage) *DeepAnalysisReportUpdate {
	_u.mutation.AppendPlotlyFigures(v)
	return _u
}

// ClearPlotlyFigures clears the value of the "plotly_figures" field.
func (_u *DeepAnalysisReportUpdate) ClearPlotlyFigures() *DeepAnalysisReportUpdate {
	_u.mutation.ClearPlotlyFigures()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *DeepAnalysisReportUpdate) SetSynthesis(v []string) *DeepAnalysisReportUpdate {
	_u.mutation.SetSynthesis(v)
	return _u
}

// AppendSynthesis appends value to the "synthesis" field.
func (_u *DeepAnalysisReportUpdate) AppendSynthesis(v []string) *DeepAnalysisReportUpdate {
	_u.mutation.AppendSynthesis(v)
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *DeepAnalysisReportUpdate) ClearSynthesis() *DeepAnalysisReportUpdate {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetFinalConclusion sets the "final_conclusion" field.
func (_u *DeepAnalysisReportUpdate) SetFinalConclusion(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetFinalConclusion(v)
	return _u
}

// SetNillableFinalConclusion sets the "final_conclusion" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableFinalConclusion(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetFinalConclusion(*v)
	}
	return _u
}

// ClearFinalConclusion clears the value of the "final_conclusion" field.
func (_u *DeepAnalysisReportUpdate) ClearFinalConclusion() *DeepAnalysisReportUpdate {
	_u.mutation.ClearFinalConclusion()
	return _u
}

// SetHTMLReport sets the "html_report" field.
func (_u *DeepAnalysisReportUpdate) SetHTMLReport(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetHTMLReport(v)
	return _u
}

// SetNillableHTMLReport sets the "html_report" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableHTMLReport(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetHTMLReport(*v)
	}
	return _u
}

// ClearHTMLReport clears the value of the "html_report" field.
func (_u *DeepAnalysisReportUpdate) ClearHTMLReport() *DeepAnalysisReportUpdate {
	_u.mutation.ClearHTMLReport()
	return _u
}

// SetReportSummary sets the "report_summary" field.
func (_u *DeepAnalysisReportUpdate) SetReportSummary(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetReportSummary(v)
	return _u
}

// SetNillableReportSummary sets the "report_summary" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableReportSummary(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetReportSummary(*v)
	}
	return _u
}

// ClearReportSummary clears the value of the "report_summary" field.
func (_u *DeepAnalysisReportUpdate) ClearReportSummary() *DeepAnalysisReportUpdate {
	_u.mutation.ClearReportSummary()
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *DeepAnalysisReportUpdate) SetProgressPercentage(v int) *DeepAnalysisReportUpdate {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableProgressPercentage(v *int) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *DeepAnalysisReportUpdate) AddProgressPercentage(v int) *DeepAnalysisReportUpdate {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetStepsCompleted sets the "steps_completed" field.
func (_u *DeepAnalysisReportUpdate) SetStepsCompleted(v []string) *DeepAnalysisReportUpdate {
	_u.mutation.SetStepsCompleted(v)
	return _u
}

// AppendStepsCompleted appends value to the "steps_completed" field.
func (_u *DeepAnalysisReportUpdate) AppendStepsCompleted(v []string) *DeepAnalysisReportUpdate {
	_u.mutation.AppendStepsCompleted(v)
	return _u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (_u *DeepAnalysisReportUpdate) ClearStepsCompleted() *DeepAnalysisReportUpdate {
	_u.mutation.ClearStepsCompleted()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeepAnalysisReportUpdate) SetErrorMessage(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableErrorMessage(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeepAnalysisReportUpdate) ClearErrorMessage() *DeepAnalysisReportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelProvider sets the "model_provider" field.
func (_u *DeepAnalysisReportUpdate) SetModelProvider(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetModelProvider(v)
	return _u
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableModelProvider(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetModelProvider(*v)
	}
	return _u
}

// ClearModelProvider clears the value of the "model_provider" field.
func (_u *DeepAnalysisReportUpdate) ClearModelProvider() *DeepAnalysisReportUpdate {
	_u.mutation.ClearModelProvider()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *DeepAnalysisReportUpdate) SetModelName(v string) *DeepAnalysisReportUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableModelName(v *string) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *DeepAnalysisReportUpdate) ClearModelName() *DeepAnalysisReportUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (_u *DeepAnalysisReportUpdate) SetTotalTokensUsed(v int) *DeepAnalysisReportUpdate {
	_u.mutation.ResetTotalTokensUsed()
	_u.mutation.SetTotalTokensUsed(v)
	return _u
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableTotalTokensUsed(v *int) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetTotalTokensUsed(*v)
	}
	return _u
}

// AddTotalTokensUsed adds value to the "total_tokens_used" field.
func (_u *DeepAnalysisReportUpdate) AddTotalTokensUsed(v int) *DeepAnalysisReportUpdate {
	_u.mutation.AddTotalTokensUsed(v)
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *DeepAnalysisReportUpdate) SetEstimatedCost(v float64) *DeepAnalysisReportUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableEstimatedCost(v *float64) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *DeepAnalysisReportUpdate) AddEstimatedCost(v float64) *DeepAnalysisReportUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_u *DeepAnalysisReportUpdate) SetCreditsConsumed(v int) *DeepAnalysisReportUpdate {
	_u.mutation.ResetCreditsConsumed()
	_u.mutation.SetCreditsConsumed(v)
	return _u
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdate) SetNillableCreditsConsumed(v *int) *DeepAnalysisReportUpdate {
	if v != nil {
		_u.SetCreditsConsumed(*v)
	}
	return _u
}

// AddCreditsConsumed adds value to the "credits_consumed" field.
func (_u *DeepAnalysisReportUpdate) AddCreditsConsumed(v int) *DeepAnalysisReportUpdate {
	_u.mutation.AddCreditsConsumed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeepAnalysisReportUpdate) SetUpdatedAt(v time.Time) *DeepAnalysisReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DeepAnalysisReportUpdate) SetUser(v *User) *DeepAnalysisReportUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DeepAnalysisReportMutation object of the builder.
func (_u *DeepAnalysisReportUpdate) Mutation() *DeepAnalysisReportMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DeepAnalysisReportUpdate) ClearUser() *DeepAnalysisReportUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeepAnalysisReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeepAnalysisReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeepAnalysisReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeepAnalysisReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeepAnalysisReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deepanalysisreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeepAnalysisReportUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deepanalysisreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeepAnalysisReport.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercentage(); ok {
		if err := deepanalysisreport.ProgressPercentageValidator(v); err != nil {
			return &ValidationError{Name: "progress_percentage", err: fmt.Errorf(`ent: validator failed for field "DeepAnalysisReport.progress_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *DeepAnalysisReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deepanalysisreport.Table, deepanalysisreport.Columns, sqlgraph.NewFieldSpec(deepanalysisreport.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(deepanalysisreport.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deepanalysisreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(deepanalysisreport.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(deepanalysisreport.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(deepanalysisreport.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(deepanalysisreport.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(deepanalysisreport.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(deepanalysisreport.FieldDurationSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.DeepQuestions(); ok {
		_spec.SetField(deepanalysisreport.FieldDeepQuestions, field.TypeString, value)
	}
	if _u.mutation.DeepQuestionsCleared() {
		_spec.ClearField(deepanalysisreport.FieldDeepQuestions, field.TypeString)
	}
	if value, ok := _u.mutation.DeepPlan(); ok {
		_spec.SetField(deepanalysisreport.FieldDeepPlan, field.TypeString, value)
	}
	if _u.mutation.DeepPlanCleared() {
		_spec.ClearField(deepanalysisreport.FieldDeepPlan, field.TypeString)
	}
	if value, ok := _u.mutation.Summaries(); ok {
		_spec.SetField(deepanalysisreport.FieldSummaries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSummaries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldSummaries, value)
		})
	}
	if _u.mutation.SummariesCleared() {
		_spec.ClearField(deepanalysisreport.FieldSummaries, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisCode(); ok {
		_spec.SetField(deepanalysisreport.FieldAnalysisCode, field.TypeString, value)
	}
	if _u.mutation.AnalysisCodeCleared() {
		_spec.ClearField(deepanalysisreport.FieldAnalysisCode, field.TypeString)
	}
	if value, ok := _u.mutation.PlotlyFigures(); ok {
		_spec.SetField(deepanalysisreport.FieldPlotlyFigures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlotlyFigures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldPlotlyFigures, value)
		})
	}
	if _u.mutation.PlotlyFiguresCleared() {
		_spec.ClearField(deepanalysisreport.FieldPlotlyFigures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(deepanalysisreport.FieldSynthesis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynthesis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldSynthesis, value)
		})
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(deepanalysisreport.FieldSynthesis, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalConclusion(); ok {
		_spec.SetField(deepanalysisreport.FieldFinalConclusion, field.TypeString, value)
	}
	if _u.mutation.FinalConclusionCleared() {
		_spec.ClearField(deepanalysisreport.FieldFinalConclusion, field.TypeString)
	}
	if value, ok := _u.mutation.HTMLReport(); ok {
		_spec.SetField(deepanalysisreport.FieldHTMLReport, field.TypeString, value)
	}
	if _u.mutation.HTMLReportCleared() {
		_spec.ClearField(deepanalysisreport.FieldHTMLReport, field.TypeString)
	}
	if value, ok := _u.mutation.ReportSummary(); ok {
		_spec.SetField(deepanalysisreport.FieldReportSummary, field.TypeString, value)
	}
	if _u.mutation.ReportSummaryCleared() {
		_spec.ClearField(deepanalysisreport.FieldReportSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(deepanalysisreport.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(deepanalysisreport.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepsCompleted(); ok {
		_spec.SetField(deepanalysisreport.FieldStepsCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldStepsCompleted, value)
		})
	}
	if _u.mutation.StepsCompletedCleared() {
		_spec.ClearField(deepanalysisreport.FieldStepsCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deepanalysisreport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deepanalysisreport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelProvider(); ok {
		_spec.SetField(deepanalysisreport.FieldModelProvider, field.TypeString, value)
	}
	if _u.mutation.ModelProviderCleared() {
		_spec.ClearField(deepanalysisreport.FieldModelProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(deepanalysisreport.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(deepanalysisreport.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTokensUsed(); ok {
		_spec.SetField(deepanalysisreport.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokensUsed(); ok {
		_spec.AddField(deepanalysisreport.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(deepanalysisreport.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(deepanalysisreport.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditsConsumed(); ok {
		_spec.SetField(deepanalysisreport.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsConsumed(); ok {
		_spec.AddField(deepanalysisreport.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deepanalysisreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deepanalysisreport.UserTable,
			Columns: []string{deepanalysisreport.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deepanalysisreport.UserTable,
			Columns: []string{deepanalysisreport.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deepanalysisreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeepAnalysisReportUpdateOne is the builder for updating a single DeepAnalysisReport entity.
type DeepAnalysisReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeepAnalysisReportMutation
}

// SetUserID sets the "user_id" field.
func (_u *DeepAnalysisReportUpdateOne) SetUserID(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableUserID(v *int) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DeepAnalysisReportUpdateOne) ClearUserID() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *DeepAnalysisReportUpdateOne) SetGoal(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableGoal(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeepAnalysisReportUpdateOne) SetStatus(v deepanalysisreport.Status) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableStatus(v *deepanalysisreport.Status) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DeepAnalysisReportUpdateOne) SetStartTime(v time.Time) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableStartTime(v *time.Time) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DeepAnalysisReportUpdateOne) SetEndTime(v time.Time) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableEndTime(v *time.Time) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *DeepAnalysisReportUpdateOne) ClearEndTime() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *DeepAnalysisReportUpdateOne) SetDurationSeconds(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableDurationSeconds(v *int) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *DeepAnalysisReportUpdateOne) AddDurationSeconds(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *DeepAnalysisReportUpdateOne) ClearDurationSeconds() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetDeepQuestions sets the "deep_questions" field.
func (_u *DeepAnalysisReportUpdateOne) SetDeepQuestions(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetDeepQuestions(v)
	return _u
}

// SetNillableDeepQuestions sets the "deep_questions" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableDeepQuestions(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetDeepQuestions(*v)
	}
	return _u
}

// ClearDeepQuestions clears the value of the "deep_questions" field.
func (_u *DeepAnalysisReportUpdateOne) ClearDeepQuestions() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearDeepQuestions()
	return _u
}

// SetDeepPlan sets the "deep_plan" field.
func (_u *DeepAnalysisReportUpdateOne) SetDeepPlan(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetDeepPlan(v)
	return _u
}

// SetNillableDeepPlan sets the "deep_plan" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableDeepPlan(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetDeepPlan(*v)
	}
	return _u
}

// ClearDeepPlan clears the value of the "deep_plan" field.
func (_u *DeepAnalysisReportUpdateOne) ClearDeepPlan() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearDeepPlan()
	return _u
}

// SetSummaries sets the "summaries" field.
func (_u *DeepAnalysisReportUpdateOne) SetSummaries(v []string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetSummaries(v)
	return _u
}

// AppendSummaries appends value to the "summaries" field.
func (_u *DeepAnalysisReportUpdateOne) AppendSummaries(v []string) *DeepAnalysisReportUpdateOne {
	_u.mutation.AppendSummaries(v)
	return _u
}

// ClearSummaries clears the value of the "summaries" field.
func (_u *DeepAnalysisReportUpdateOne) ClearSummaries() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearSummaries()
	return _u
}

// SetAnalysisCode sets the "analysis_code" field.
func (_u *DeepAnalysisReportUpdateOne) SetAnalysisCode(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetAnalysisCode(v)
	return _u
}

// SetNillableAnalysisCode sets the "analysis_code" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableAnalysisCode(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetAnalysisCode(*v)
	}
	return _u
}

// ClearAnalysisCode clears the value of the "analysis_code" field.
func (_u *DeepAnalysisReportUpdateOne) ClearAnalysisCode() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearAnalysisCode()
	return _u
}

// SetPlotlyFigures sets the "plotly_figures" field.
func (_u *DeepAnalysisReportUpdateOne) SetPlotlyFigures(v json.RawMessage) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetPlotlyFigures(v)
	return _u
}

// AppendPlotlyFigures appends value to the "plotly_figures" field.
func (_u *DeepAnalysisReportUpdateOne) AppendPlotlyFigures(v json.RawMessage) *DeepAnalysisReportUpdateOne {
	_u.mutation.AppendPlotlyFigures(v)
	return _u
}

// ClearPlotlyFigures clears the value of the "plotly_figures" field.
func (_u *DeepAnalysisReportUpdateOne) ClearPlotlyFigures() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearPlotlyFigures()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *DeepAnalysisReportUpdateOne) SetSynthesis(v []string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetSynthesis(v)
	return _u
}

// AppendSynthesis appends value to the "synthesis" field.
func (_u *DeepAnalysisReportUpdateOne) AppendSynthesis(v []string) *DeepAnalysisReportUpdateOne {
	_u.mutation.AppendSynthesis(v)
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *DeepAnalysisReportUpdateOne) ClearSynthesis() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetFinalConclusion sets the "final_conclusion" field.
func (_u *DeepAnalysisReportUpdateOne) SetFinalConclusion(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetFinalConclusion(v)
	return _u
}

// SetNillableFinalConclusion sets the "final_conclusion" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableFinalConclusion(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetFinalConclusion(*v)
	}
	return _u
}

// ClearFinalConclusion clears the value of the "final_conclusion" field.
func (_u *DeepAnalysisReportUpdateOne) ClearFinalConclusion() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearFinalConclusion()
	return _u
}

// SetHTMLReport sets the "html_report" field.
func (_u *DeepAnalysisReportUpdateOne) SetHTMLReport(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetHTMLReport(v)
	return _u
}

// SetNillableHTMLReport sets the "html_report" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableHTMLReport(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetHTMLReport(*v)
	}
	return _u
}

// ClearHTMLReport clears the value of the "html_report" field.
func (_u *DeepAnalysisReportUpdateOne) ClearHTMLReport() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearHTMLReport()
	return _u
}

// SetReportSummary sets the "report_summary" field.
func (_u *DeepAnalysisReportUpdateOne) SetReportSummary(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetReportSummary(v)
	return _u
}

// SetNillableReportSummary sets the "report_summary" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableReportSummary(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetReportSummary(*v)
	}
	return _u
}

// ClearReportSummary clears the value of the "report_summary" field.
func (_u *DeepAnalysisReportUpdateOne) ClearReportSummary() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearReportSummary()
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *DeepAnalysisReportUpdateOne) SetProgressPercentage(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableProgressPercentage(v *int) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *DeepAnalysisReportUpdateOne) AddProgressPercentage(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetStepsCompleted sets the "steps_completed" field.
func (_u *DeepAnalysisReportUpdateOne) SetStepsCompleted(v []string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetStepsCompleted(v)
	return _u
}

// AppendStepsCompleted appends value to the "steps_completed" field.
func (_u *DeepAnalysisReportUpdateOne) AppendStepsCompleted(v []string) *DeepAnalysisReportUpdateOne {
	_u.mutation.AppendStepsCompleted(v)
	return _u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (_u *DeepAnalysisReportUpdateOne) ClearStepsCompleted() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearStepsCompleted()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeepAnalysisReportUpdateOne) SetErrorMessage(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableErrorMessage(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeepAnalysisReportUpdateOne) ClearErrorMessage() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelProvider sets the "model_provider" field.
func (_u *DeepAnalysisReportUpdateOne) SetModelProvider(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetModelProvider(v)
	return _u
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableModelProvider(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetModelProvider(*v)
	}
	return _u
}

// ClearModelProvider clears the value of the "model_provider" field.
func (_u *DeepAnalysisReportUpdateOne) ClearModelProvider() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearModelProvider()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *DeepAnalysisReportUpdateOne) SetModelName(v string) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableModelName(v *string) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *DeepAnalysisReportUpdateOne) ClearModelName() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (_u *DeepAnalysisReportUpdateOne) SetTotalTokensUsed(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.ResetTotalTokensUsed()
	_u.mutation.SetTotalTokensUsed(v)
	return _u
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableTotalTokensUsed(v *int) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetTotalTokensUsed(*v)
	}
	return _u
}

// AddTotalTokensUsed adds value to the "total_tokens_used" field.
func (_u *DeepAnalysisReportUpdateOne) AddTotalTokensUsed(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.AddTotalTokensUsed(v)
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *DeepAnalysisReportUpdateOne) SetEstimatedCost(v float64) *DeepAnalysisReportUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableEstimatedCost(v *float64) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *DeepAnalysisReportUpdateOne) AddEstimatedCost(v float64) *DeepAnalysisReportUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_u *DeepAnalysisReportUpdateOne) SetCreditsConsumed(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.ResetCreditsConsumed()
	_u.mutation.SetCreditsConsumed(v)
	return _u
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_u *DeepAnalysisReportUpdateOne) SetNillableCreditsConsumed(v *int) *DeepAnalysisReportUpdateOne {
	if v != nil {
		_u.SetCreditsConsumed(*v)
	}
	return _u
}

// AddCreditsConsumed adds value to the "credits_consumed" field.
func (_u *DeepAnalysisReportUpdateOne) AddCreditsConsumed(v int) *DeepAnalysisReportUpdateOne {
	_u.mutation.AddCreditsConsumed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeepAnalysisReportUpdateOne) SetUpdatedAt(v time.Time) *DeepAnalysisReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DeepAnalysisReportUpdateOne) SetUser(v *User) *DeepAnalysisReportUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DeepAnalysisReportMutation object of the builder.
func (_u *DeepAnalysisReportUpdateOne) Mutation() *DeepAnalysisReportMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DeepAnalysisReportUpdateOne) ClearUser() *DeepAnalysisReportUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the DeepAnalysisReportUpdate builder.
func (_u *DeepAnalysisReportUpdateOne) Where(ps ...predicate.DeepAnalysisReport) *DeepAnalysisReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeepAnalysisReportUpdateOne) Select(field string, fields ...string) *DeepAnalysisReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeepAnalysisReport entity.
func (_u *DeepAnalysisReportUpdateOne) Save(ctx context.Context) (*DeepAnalysisReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeepAnalysisReportUpdateOne) SaveX(ctx context.Context) *DeepAnalysisReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeepAnalysisReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeepAnalysisReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeepAnalysisReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deepanalysisreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeepAnalysisReportUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deepanalysisreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeepAnalysisReport.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercentage(); ok {
		if err := deepanalysisreport.ProgressPercentageValidator(v); err != nil {
			return &ValidationError{Name: "progress_percentage", err: fmt.Errorf(`ent: validator failed for field "DeepAnalysisReport.progress_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *DeepAnalysisReportUpdateOne) sqlSave(ctx context.Context) (_node *DeepAnalysisReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deepanalysisreport.Table, deepanalysisreport.Columns, sqlgraph.NewFieldSpec(deepanalysisreport.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeepAnalysisReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deepanalysisreport.FieldID)
		for _, f := range fields {
			if !deepanalysisreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deepanalysisreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(deepanalysisreport.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deepanalysisreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(deepanalysisreport.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(deepanalysisreport.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(deepanalysisreport.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(deepanalysisreport.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(deepanalysisreport.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(deepanalysisreport.FieldDurationSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.DeepQuestions(); ok {
		_spec.SetField(deepanalysisreport.FieldDeepQuestions, field.TypeString, value)
	}
	if _u.mutation.DeepQuestionsCleared() {
		_spec.ClearField(deepanalysisreport.FieldDeepQuestions, field.TypeString)
	}
	if value, ok := _u.mutation.DeepPlan(); ok {
		_spec.SetField(deepanalysisreport.FieldDeepPlan, field.TypeString, value)
	}
	if _u.mutation.DeepPlanCleared() {
		_spec.ClearField(deepanalysisreport.FieldDeepPlan, field.TypeString)
	}
	if value, ok := _u.mutation.Summaries(); ok {
		_spec.SetField(deepanalysisreport.FieldSummaries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSummaries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldSummaries, value)
		})
	}
	if _u.mutation.SummariesCleared() {
		_spec.ClearField(deepanalysisreport.FieldSummaries, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisCode(); ok {
		_spec.SetField(deepanalysisreport.FieldAnalysisCode, field.TypeString, value)
	}
	if _u.mutation.AnalysisCodeCleared() {
		_spec.ClearField(deepanalysisreport.FieldAnalysisCode, field.TypeString)
	}
	if value, ok := _u.mutation.PlotlyFigures(); ok {
		_spec.SetField(deepanalysisreport.FieldPlotlyFigures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlotlyFigures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldPlotlyFigures, value)
		})
	}
	if _u.mutation.PlotlyFiguresCleared() {
		_spec.ClearField(deepanalysisreport.FieldPlotlyFigures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(deepanalysisreport.FieldSynthesis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynthesis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldSynthesis, value)
		})
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(deepanalysisreport.FieldSynthesis, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalConclusion(); ok {
		_spec.SetField(deepanalysisreport.FieldFinalConclusion, field.TypeString, value)
	}
	if _u.mutation.FinalConclusionCleared() {
		_spec.ClearField(deepanalysisreport.FieldFinalConclusion, field.TypeString)
	}
	if value, ok := _u.mutation.HTMLReport(); ok {
		_spec.SetField(deepanalysisreport.FieldHTMLReport, field.TypeString, value)
	}
	if _u.mutation.HTMLReportCleared() {
		_spec.ClearField(deepanalysisreport.FieldHTMLReport, field.TypeString)
	}
	if value, ok := _u.mutation.ReportSummary(); ok {
		_spec.SetField(deepanalysisreport.FieldReportSummary, field.TypeString, value)
	}
	if _u.mutation.ReportSummaryCleared() {
		_spec.ClearField(deepanalysisreport.FieldReportSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(deepanalysisreport.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(deepanalysisreport.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepsCompleted(); ok {
		_spec.SetField(deepanalysisreport.FieldStepsCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deepanalysisreport.FieldStepsCompleted, value)
		})
	}
	if _u.mutation.StepsCompletedCleared() {
		_spec.ClearField(deepanalysisreport.FieldStepsCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deepanalysisreport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deepanalysisreport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelProvider(); ok {
		_spec.SetField(deepanalysisreport.FieldModelProvider, field.TypeString, value)
	}
	if _u.mutation.ModelProviderCleared() {
		_spec.ClearField(deepanalysisreport.FieldModelProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(deepanalysisreport.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(deepanalysisreport.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTokensUsed(); ok {
		_spec.SetField(deepanalysisreport.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokensUsed(); ok {
		_spec.AddField(deepanalysisreport.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(deepanalysisreport.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(deepanalysisreport.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditsConsumed(); ok {
		_spec.SetField(deepanalysisreport.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsConsumed(); ok {
		_spec.AddField(deepanalysisreport.FieldCreditsConsumed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deepanalysisreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deepanalysisreport.UserTable,
			Columns: []string{deepanalysisreport.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deepanalysisreport.UserTable,
			Columns: []string{deepanalysisreport.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DeepAnalysisReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deepanalysisreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
