// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/predicate"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// UserTemplatePreferenceDelete is the builder for deleting a UserTemplatePreference entity.
type UserTemplatePreferenceDelete struct {
	config
	hooks    []Hook
	mutation *UserTemplatePreferenceMutation
}

// Where appends a list predicates to the UserTemplatePreferenceDelete builder.
func (_d *UserTemplatePreferenceDelete) Where(ps ...predicate.UserTemplatePreference) *UserTemplatePreferenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserTemplatePreferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserTemplatePreferenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserTemplatePreferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(usertemplatepreference.Table, sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt))
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

// UserTemplatePreferenceDeleteOne is the builder for deleting a single UserTemplatePreference entity.
type UserTemplatePreferenceDeleteOne struct {
	_d *UserTemplatePreferenceDelete
}

// Where appends a list predicates to the UserTemplatePreferenceDelete builder.
func (_d *UserTemplatePreferenceDeleteOne) Where(ps ...predicate.UserTemplatePreference) *UserTemplatePreferenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserTemplatePreferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{usertemplatepreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserTemplatePreferenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
