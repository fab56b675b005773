// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/predicate"
	"github.com/autoanalyst/analyst/ent/user"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// UserTemplatePreferenceUpdate is the builder for updating UserTemplatePreference entities.
type UserTemplatePreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *UserTemplatePreferenceMutation
}

// Where appends a list predicates to the UserTemplatePreferenceUpdate builder.
func (_u *UserTemplatePreferenceUpdate) Where(ps ...predicate.UserTemplatePreference) *UserTemplatePreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserTemplatePreferenceUpdate) SetUserID(v int) *UserTemplatePreferenceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdate) SetNillableUserID(v *int) *UserTemplatePreferenceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *UserTemplatePreferenceUpdate) SetTemplateID(v int) *UserTemplatePreferenceUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdate) SetNillableTemplateID(v *int) *UserTemplatePreferenceUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *UserTemplatePreferenceUpdate) SetIsEnabled(v bool) *UserTemplatePreferenceUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdate) SetNillableIsEnabled(v *bool) *UserTemplatePreferenceUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *UserTemplatePreferenceUpdate) SetUsageCount(v int) *UserTemplatePreferenceUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdate) SetNillableUsageCount(v *int) *UserTemplatePreferenceUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *UserTemplatePreferenceUpdate) AddUsageCount(v int) *UserTemplatePreferenceUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UserTemplatePreferenceUpdate) SetLastUsedAt(v time.Time) *UserTemplatePreferenceUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdate) SetNillableLastUsedAt(v *time.Time) *UserTemplatePreferenceUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *UserTemplatePreferenceUpdate) ClearLastUsedAt() *UserTemplatePreferenceUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserTemplatePreferenceUpdate) SetUpdatedAt(v time.Time) *UserTemplatePreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserTemplatePreferenceUpdate) SetUser(v *User) *UserTemplatePreferenceUpdate {
	return _u.SetUserID(v.ID)
}

// SetTemplate sets the "template" edge to the AgentTemplate entity.
func (_u *UserTemplatePreferenceUpdate) SetTemplate(v *AgentTemplate) *UserTemplatePreferenceUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the UserTemplatePreferenceMutation object of the builder.
func (_u *UserTemplatePreferenceUpdate) Mutation() *UserTemplatePreferenceMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserTemplatePreferenceUpdate) ClearUser() *UserTemplatePreferenceUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearTemplate clears the "template" edge to the AgentTemplate entity.
func (_u *UserTemplatePreferenceUpdate) ClearTemplate() *UserTemplatePreferenceUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserTemplatePreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserTemplatePreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserTemplatePreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserTemplatePreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserTemplatePreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usertemplatepreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserTemplatePreferenceUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTemplatePreference.user"`)
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTemplatePreference.template"`)
	}
	return nil
}

func (_u *UserTemplatePreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usertemplatepreference.Table, usertemplatepreference.Columns, sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(usertemplatepreference.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(usertemplatepreference.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(usertemplatepreference.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(usertemplatepreference.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertemplatepreference.UserTable,
			Columns: []string{usertemplatepreference.UserColumn},
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
			Table:   usertemplatepreference.UserTable,
			Columns: []string{usertemplatepreference.UserColumn},
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
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertemplatepreference.TemplateTable,
			Columns: []string{usertemplatepreference.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertemplatepreference.TemplateTable,
			Columns: []string{usertemplatepreference.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usertemplatepreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserTemplatePreferenceUpdateOne is the builder for updating a single UserTemplatePreference entity.
type UserTemplatePreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserTemplatePreferenceMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserTemplatePreferenceUpdateOne) SetUserID(v int) *UserTemplatePreferenceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdateOne) SetNillableUserID(v *int) *UserTemplatePreferenceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *UserTemplatePreferenceUpdateOne) SetTemplateID(v int) *UserTemplatePreferenceUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdateOne) SetNillableTemplateID(v *int) *UserTemplatePreferenceUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *UserTemplatePreferenceUpdateOne) SetIsEnabled(v bool) *UserTemplatePreferenceUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdateOne) SetNillableIsEnabled(v *bool) *UserTemplatePreferenceUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *UserTemplatePreferenceUpdateOne) SetUsageCount(v int) *UserTemplatePreferenceUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdateOne) SetNillableUsageCount(v *int) *UserTemplatePreferenceUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *UserTemplatePreferenceUpdateOne) AddUsageCount(v int) *UserTemplatePreferenceUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UserTemplatePreferenceUpdateOne) SetLastUsedAt(v time.Time) *UserTemplatePreferenceUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UserTemplatePreferenceUpdateOne) SetNillableLastUsedAt(v *time.Time) *UserTemplatePreferenceUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *UserTemplatePreferenceUpdateOne) ClearLastUsedAt() *UserTemplatePreferenceUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserTemplatePreferenceUpdateOne) SetUpdatedAt(v time.Time) *UserTemplatePreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserTemplatePreferenceUpdateOne) SetUser(v *User) *UserTemplatePreferenceUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetTemplate sets the "template" edge to the AgentTemplate entity.
func (_u *UserTemplatePreferenceUpdateOne) SetTemplate(v *AgentTemplate) *UserTemplatePreferenceUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the UserTemplatePreferenceMutation object of the builder.
func (_u *UserTemplatePreferenceUpdateOne) Mutation() *UserTemplatePreferenceMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserTemplatePreferenceUpdateOne) ClearUser() *UserTemplatePreferenceUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearTemplate clears the "template" edge to the AgentTemplate entity.
func (_u *UserTemplatePreferenceUpdateOne) ClearTemplate() *UserTemplatePreferenceUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the UserTemplatePreferenceUpdate builder.
func (_u *UserTemplatePreferenceUpdateOne) Where(ps ...predicate.UserTemplatePreference) *UserTemplatePreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserTemplatePreferenceUpdateOne) Select(field string, fields ...string) *UserTemplatePreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserTemplatePreference entity.
func (_u *UserTemplatePreferenceUpdateOne) Save(ctx context.Context) (*UserTemplatePreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserTemplatePreferenceUpdateOne) SaveX(ctx context.Context) *UserTemplatePreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserTemplatePreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserTemplatePreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserTemplatePreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usertemplatepreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserTemplatePreferenceUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTemplatePreference.user"`)
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTemplatePreference.template"`)
	}
	return nil
}

func (_u *UserTemplatePreferenceUpdateOne) sqlSave(ctx context.Context) (_node *UserTemplatePreference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usertemplatepreference.Table, usertemplatepreference.Columns, sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserTemplatePreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usertemplatepreference.FieldID)
		for _, f := range fields {
			if !usertemplatepreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usertemplatepreference.FieldID {
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
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(usertemplatepreference.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(usertemplatepreference.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(usertemplatepreference.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(usertemplatepreference.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertemplatepreference.UserTable,
			Columns: []string{usertemplatepreference.UserColumn},
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
			Table:   usertemplatepreference.UserTable,
			Columns: []string{usertemplatepreference.UserColumn},
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
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertemplatepreference.TemplateTable,
			Columns: []string{usertemplatepreference.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertemplatepreference.TemplateTable,
			Columns: []string{usertemplatepreference.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserTemplatePreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usertemplatepreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
