// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/user"
)

// DeepAnalysisReportCreate is the builder for creating a DeepAnalysisReport entity.
type DeepAnalysisReportCreate struct {
	config
	mutation *DeepAnalysisReportMutation
	hooks    []Hook
}

// SetReportUUID sets the "report_uuid" field.
func (_c *DeepAnalysisReportCreate) SetReportUUID(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetReportUUID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DeepAnalysisReportCreate) SetUserID(v int) *DeepAnalysisReportCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableUserID(v *int) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetGoal sets the "goal" field.
func (_c *DeepAnalysisReportCreate) SetGoal(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeepAnalysisReportCreate) SetStatus(v deepanalysisreport.Status) *DeepAnalysisReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableStatus(v *deepanalysisreport.Status) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *DeepAnalysisReportCreate) SetStartTime(v time.Time) *DeepAnalysisReportCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableStartTime(v *time.Time) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *DeepAnalysisReportCreate) SetEndTime(v time.Time) *DeepAnalysisReportCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableEndTime(v *time.Time) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *DeepAnalysisReportCreate) SetDurationSeconds(v int) *DeepAnalysisReportCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableDurationSeconds(v *int) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetDeepQuestions sets the "deep_questions" field.
func (_c *DeepAnalysisReportCreate) SetDeepQuestions(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetDeepQuestions(v)
	return _c
}

// SetNillableDeepQuestions sets the "deep_questions" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableDeepQuestions(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetDeepQuestions(*v)
	}
	return _c
}

// SetDeepPlan sets the "deep_plan" field.
func (_c *DeepAnalysisReportCreate) SetDeepPlan(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetDeepPlan(v)
	return _c
}

// SetNillableDeepPlan sets the "deep_plan" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableDeepPlan(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetDeepPlan(*v)
	}
	return _c
}

// SetSummaries sets the "summaries" field.
func (_c *DeepAnalysisReportCreate) SetSummaries(v []string) *DeepAnalysisReportCreate {
	_c.mutation.SetSummaries(v)
	return _c
}

// SetAnalysisCode sets the "analysis_code" field.
func (_c *DeepAnalysisReportCreate) SetAnalysisCode(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetAnalysisCode(v)
	return _c
}

// SetNillableAnalysisCode sets the "analysis_code" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableAnalysisCode(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetAnalysisCode(*v)
	}
	return _c
}

// SetPlotlyFigures sets the "plotly_figures" field.
func (_c *DeepAnalysisReportCreate) SetPlotlyFigures(v json.RawMessage) *DeepAnalysisReportCreate {
	_c.mutation.SetPlotlyFigures(v)
	return _c
}

// SetSynthesis sets the "synthesis" field.
func (_c *DeepAnalysisReportCreate) SetSynthesis(v []string) *DeepAnalysisReportCreate {
	_c.mutation.SetSynthesis(v)
	return _c
}

// SetFinalConclusion sets the "final_conclusion" field.
func (_c *DeepAnalysisReportCreate) SetFinalConclusion(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetFinalConclusion(v)
	return _c
}

// SetNillableFinalConclusion sets the "final_conclusion" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableFinalConclusion(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetFinalConclusion(*v)
	}
	return _c
}

// SetHTMLReport sets the "html_report" field.
func (_c *DeepAnalysisReportCreate) SetHTMLReport(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetHTMLReport(v)
	return _c
}

// SetNillableHTMLReport sets the "html_report" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableHTMLReport(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetHTMLReport(*v)
	}
	return _c
}

// SetReportSummary sets the "report_summary" field.
func (_c *DeepAnalysisReportCreate) SetReportSummary(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetReportSummary(v)
	return _c
}

// SetNillableReportSummary sets the "report_summary" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableReportSummary(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetReportSummary(*v)
	}
	return _c
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_c *DeepAnalysisReportCreate) SetProgressPercentage(v int) *DeepAnalysisReportCreate {
	_c.mutation.SetProgressPercentage(v)
	return _c
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableProgressPercentage(v *int) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetProgressPercentage(*v)
	}
	return _c
}

// SetStepsCompleted sets the "steps_completed" field.
func (_c *DeepAnalysisReportCreate) SetStepsCompleted(v []string) *DeepAnalysisReportCreate {
	_c.mutation.SetStepsCompleted(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeepAnalysisReportCreate) SetErrorMessage(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableErrorMessage(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelProvider sets the "model_provider" field.
func (_c *DeepAnalysisReportCreate) SetModelProvider(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetModelProvider(v)
	return _c
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableModelProvider(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetModelProvider(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *DeepAnalysisReportCreate) SetModelName(v string) *DeepAnalysisReportCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableModelName(v *string) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (_c *DeepAnalysisReportCreate) SetTotalTokensUsed(v int) *DeepAnalysisReportCreate {
	_c.mutation.SetTotalTokensUsed(v)
	return _c
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableTotalTokensUsed(v *int) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetTotalTokensUsed(*v)
	}
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *DeepAnalysisReportCreate) SetEstimatedCost(v float64) *DeepAnalysisReportCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableEstimatedCost(v *float64) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (_c *DeepAnalysisReportCreate) SetCreditsConsumed(v int) *DeepAnalysisReportCreate {
	_c.mutation.SetCreditsConsumed(v)
	return _c
}

// SetNillableCreditsConsumed sets the "credits_consumed" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableCreditsConsumed(v *int) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetCreditsConsumed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeepAnalysisReportCreate) SetCreatedAt(v time.Time) *DeepAnalysisReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableCreatedAt(v *time.Time) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeepAnalysisReportCreate) SetUpdatedAt(v time.Time) *DeepAnalysisReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeepAnalysisReportCreate) SetNillableUpdatedAt(v *time.Time) *DeepAnalysisReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DeepAnalysisReportCreate) SetUser(v *User) *DeepAnalysisReportCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DeepAnalysisReportMutation object of the builder.
func (_c *DeepAnalysisReportCreate) Mutation() *DeepAnalysisReportMutation {
	return _c.mutation
}

// Save creates the DeepAnalysisReport in the database.
func (_c *DeepAnalysisReportCreate) Save(ctx context.Context) (*DeepAnalysisReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeepAnalysisReportCreate) SaveX(ctx context.Context) *DeepAnalysisReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeepAnalysisReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeepAnalysisReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeepAnalysisReportCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deepanalysisreport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		v := deepanalysisreport.DefaultStartTime()
		_c.mutation.SetStartTime(v)
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		v := deepanalysisreport.DefaultProgressPercentage
		_c.mutation.SetProgressPercentage(v)
	}
	if _, ok := _c.mutation.TotalTokensUsed(); !ok {
		v := deepanalysisreport.DefaultTotalTokensUsed
		_c.mutation.SetTotalTokensUsed(v)
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		v := deepanalysisreport.DefaultEstimatedCost
		_c.mutation.SetEstimatedCost(v)
	}
	if _, ok := _c.mutation.CreditsConsumed(); !ok {
		v := deepanalysisreport.DefaultCreditsConsumed
		_c.mutation.SetCreditsConsumed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deepanalysisreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deepanalysisreport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeepAnalysisReportCreate) check() error {
	if _, ok := _c.mutation.ReportUUID(); !ok {
		return &ValidationError{Name: "report_uuid", err: errors.New(`ent: missing required field "DeepAnalysisReport.report_uuid"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "DeepAnalysisReport.goal"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeepAnalysisReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deepanalysisreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeepAnalysisReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "DeepAnalysisReport.start_time"`)}
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		return &ValidationError{Name: "progress_percentage", err: errors.New(`ent: missing required field "DeepAnalysisReport.progress_percentage"`)}
	}
	if v, ok := _c.mutation.ProgressPercentage(); ok {
		if err := deepanalysisreport.ProgressPercentageValidator(v); err != nil {
			return &ValidationError{Name: "progress_percentage", err: fmt.Errorf(`ent: validator failed for field "DeepAnalysisReport.progress_percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTokensUsed(); !ok {
		return &ValidationError{Name: "total_tokens_used", err: errors.New(`ent: missing required field "DeepAnalysisReport.total_tokens_used"`)}
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		return &ValidationError{Name: "estimated_cost", err: errors.New(`ent: missing required field "DeepAnalysisReport.estimated_cost"`)}
	}
	if _, ok := _c.mutation.CreditsConsumed(); !ok {
		return &ValidationError{Name: "credits_consumed", err: errors.New(`ent: missing required field "DeepAnalysisReport.credits_consumed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeepAnalysisReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DeepAnalysisReport.updated_at"`)}
	}
	return nil
}

func (_c *DeepAnalysisReportCreate) sqlSave(ctx context.Context) (*DeepAnalysisReport, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeepAnalysisReportCreate) createSpec() (*DeepAnalysisReport, *sqlgraph.CreateSpec) {
	var (
		_node = &DeepAnalysisReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deepanalysisreport.Table, sqlgraph.NewFieldSpec(deepanalysisreport.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReportUUID(); ok {
		_spec.SetField(deepanalysisreport.FieldReportUUID, field.TypeString, value)
		_node.ReportUUID = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(deepanalysisreport.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deepanalysisreport.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(deepanalysisreport.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(deepanalysisreport.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(deepanalysisreport.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.DeepQuestions(); ok {
		_spec.SetField(deepanalysisreport.FieldDeepQuestions, field.TypeString, value)
		_node.DeepQuestions = value
	}
	if value, ok := _c.mutation.DeepPlan(); ok {
		_spec.SetField(deepanalysisreport.FieldDeepPlan, field.TypeString, value)
		_node.DeepPlan = value
	}
	if value, ok := _c.mutation.Summaries(); ok {
		_spec.SetField(deepanalysisreport.FieldSummaries, field.TypeJSON, value)
		_node.Summaries = value
	}
	if value, ok := _c.mutation.AnalysisCode(); ok {
		_spec.SetField(deepanalysisreport.FieldAnalysisCode, field.TypeString, value)
		_node.AnalysisCode = value
	}
	if value, ok := _c.mutation.PlotlyFigures(); ok {
		_spec.SetField(deepanalysisreport.FieldPlotlyFigures, field.TypeJSON, value)
		_node.PlotlyFigures = value
	}
	if value, ok := _c.mutation.Synthesis(); ok {
		_spec.SetField(deepanalysisreport.FieldSynthesis, field.TypeJSON, value)
		_node.Synthesis = value
	}
	if value, ok := _c.mutation.FinalConclusion(); ok {
		_spec.SetField(deepanalysisreport.FieldFinalConclusion, field.TypeString, value)
		_node.FinalConclusion = value
	}
	if value, ok := _c.mutation.HTMLReport(); ok {
		_spec.SetField(deepanalysisreport.FieldHTMLReport, field.TypeString, value)
		_node.HTMLReport = value
	}
	if value, ok := _c.mutation.ReportSummary(); ok {
		_spec.SetField(deepanalysisreport.FieldReportSummary, field.TypeString, value)
		_node.ReportSummary = value
	}
	if value, ok := _c.mutation.ProgressPercentage(); ok {
		_spec.SetField(deepanalysisreport.FieldProgressPercentage, field.TypeInt, value)
		_node.ProgressPercentage = value
	}
	if value, ok := _c.mutation.StepsCompleted(); ok {
		_spec.SetField(deepanalysisreport.FieldStepsCompleted, field.TypeJSON, value)
		_node.StepsCompleted = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deepanalysisreport.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelProvider(); ok {
		_spec.SetField(deepanalysisreport.FieldModelProvider, field.TypeString, value)
		_node.ModelProvider = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(deepanalysisreport.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.TotalTokensUsed(); ok {
		_spec.SetField(deepanalysisreport.FieldTotalTokensUsed, field.TypeInt, value)
		_node.TotalTokensUsed = value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(deepanalysisreport.FieldEstimatedCost, field.TypeFloat64, value)
		_node.EstimatedCost = value
	}
	if value, ok := _c.mutation.CreditsConsumed(); ok {
		_spec.SetField(deepanalysisreport.FieldCreditsConsumed, field.TypeInt, value)
		_node.CreditsConsumed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deepanalysisreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deepanalysisreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeepAnalysisReportCreateBulk is the builder for creating many DeepAnalysisReport entities in bulk.
type DeepAnalysisReportCreateBulk struct {
	config
	err      error
	builders []*DeepAnalysisReportCreate
}

// Save creates the DeepAnalysisReport entities in the database.
func (_c *DeepAnalysisReportCreateBulk) Save(ctx context.Context) ([]*DeepAnalysisReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeepAnalysisReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeepAnalysisReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DeepAnalysisReportCreateBulk) SaveX(ctx context.Context) []*DeepAnalysisReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeepAnalysisReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeepAnalysisReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
