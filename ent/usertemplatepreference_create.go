// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/user"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// UserTemplatePreferenceCreate is the builder for creating a UserTemplatePreference entity.
type UserTemplatePreferenceCreate struct {
	config
	mutation *UserTemplatePreferenceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserTemplatePreferenceCreate) SetUserID(v int) *UserTemplatePreferenceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *UserTemplatePreferenceCreate) SetTemplateID(v int) *UserTemplatePreferenceCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *UserTemplatePreferenceCreate) SetIsEnabled(v bool) *UserTemplatePreferenceCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *UserTemplatePreferenceCreate) SetNillableIsEnabled(v *bool) *UserTemplatePreferenceCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *UserTemplatePreferenceCreate) SetUsageCount(v int) *UserTemplatePreferenceCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *UserTemplatePreferenceCreate) SetNillableUsageCount(v *int) *UserTemplatePreferenceCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *UserTemplatePreferenceCreate) SetLastUsedAt(v time.Time) *UserTemplatePreferenceCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *UserTemplatePreferenceCreate) SetNillableLastUsedAt(v *time.Time) *UserTemplatePreferenceCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserTemplatePreferenceCreate) SetCreatedAt(v time.Time) *UserTemplatePreferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserTemplatePreferenceCreate) SetNillableCreatedAt(v *time.Time) *UserTemplatePreferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserTemplatePreferenceCreate) SetUpdatedAt(v time.Time) *UserTemplatePreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserTemplatePreferenceCreate) SetNillableUpdatedAt(v *time.Time) *UserTemplatePreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserTemplatePreferenceCreate) SetUser(v *User) *UserTemplatePreferenceCreate {
	return _c.SetUserID(v.ID)
}

// SetTemplate sets the "template" edge to the AgentTemplate entity.
func (_c *UserTemplatePreferenceCreate) SetTemplate(v *AgentTemplate) *UserTemplatePreferenceCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the UserTemplatePreferenceMutation object of the builder.
func (_c *UserTemplatePreferenceCreate) Mutation() *UserTemplatePreferenceMutation {
	return _c.mutation
}

// Save creates the UserTemplatePreference in the database.
func (_c *UserTemplatePreferenceCreate) Save(ctx context.Context) (*UserTemplatePreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserTemplatePreferenceCreate) SaveX(ctx context.Context) *UserTemplatePreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserTemplatePreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserTemplatePreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserTemplatePreferenceCreate) defaults() {
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := usertemplatepreference.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := usertemplatepreference.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usertemplatepreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usertemplatepreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserTemplatePreferenceCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserTemplatePreference.user_id"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "UserTemplatePreference.template_id"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "UserTemplatePreference.is_enabled"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "UserTemplatePreference.usage_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserTemplatePreference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserTemplatePreference.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UserTemplatePreference.user"`)}
	}
	if len(_c.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required edge "UserTemplatePreference.template"`)}
	}
	return nil
}

func (_c *UserTemplatePreferenceCreate) sqlSave(ctx context.Context) (*UserTemplatePreference, error) {
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

func (_c *UserTemplatePreferenceCreate) createSpec() (*UserTemplatePreference, *sqlgraph.CreateSpec) {
	var (
		_node = &UserTemplatePreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usertemplatepreference.Table, sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(usertemplatepreference.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(usertemplatepreference.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usertemplatepreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_node.TemplateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserTemplatePreferenceCreateBulk is the builder for creating many UserTemplatePreference entities in bulk.
type UserTemplatePreferenceCreateBulk struct {
	config
	err      error
	builders []*UserTemplatePreferenceCreate
}

// Save creates the UserTemplatePreference entities in the database.
func (_c *UserTemplatePreferenceCreateBulk) Save(ctx context.Context) ([]*UserTemplatePreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserTemplatePreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserTemplatePreferenceMutation)
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
func (_c *UserTemplatePreferenceCreateBulk) SaveX(ctx context.Context) []*UserTemplatePreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserTemplatePreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserTemplatePreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
