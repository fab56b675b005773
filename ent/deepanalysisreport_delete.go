// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// DeepAnalysisReportDelete is the builder for deleting a DeepAnalysisReport entity.
type DeepAnalysisReportDelete struct {
	config
	hooks    []Hook
	mutation *DeepAnalysisReportMutation
}

// Where appends a list predicates to the DeepAnalysisReportDelete builder.
func (_d *DeepAnalysisReportDelete) Where(ps ...predicate.DeepAnalysisReport) *DeepAnalysisReportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeepAnalysisReportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeepAnalysisReportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeepAnalysisReportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deepanalysisreport.Table, sqlgraph.NewFieldSpec(deepanalysisreport.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeepAnalysisReportDeleteOne is the builder for deleting a single DeepAnalysisReport entity.
type DeepAnalysisReportDeleteOne struct {
	_d *DeepAnalysisReportDelete
}

// Where appends a list predicates to the DeepAnalysisReportDelete builder.
func (_d *DeepAnalysisReportDeleteOne) Where(ps ...predicate.DeepAnalysisReport) *DeepAnalysisReportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeepAnalysisReportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deepanalysisreport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeepAnalysisReportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
