// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/codeexecution"
)

// CodeExecutionCreate is the builder for creating a CodeExecution entity.
type CodeExecutionCreate struct {
	config
	mutation *CodeExecutionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CodeExecutionCreate) SetUserID(v int) *CodeExecutionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableUserID(v *int) *CodeExecutionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *CodeExecutionCreate) SetChatID(v int) *CodeExecutionCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableChatID(v *int) *CodeExecutionCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *CodeExecutionCreate) SetMessageID(v int) *CodeExecutionCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableMessageID(v *int) *CodeExecutionCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetInitialCode sets the "initial_code" field.
func (_c *CodeExecutionCreate) SetInitialCode(v string) *CodeExecutionCreate {
	_c.mutation.SetInitialCode(v)
	return _c
}

// SetNillableInitialCode sets the "initial_code" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableInitialCode(v *string) *CodeExecutionCreate {
	if v != nil {
		_c.SetInitialCode(*v)
	}
	return _c
}

// SetLatestCode sets the "latest_code" field.
func (_c *CodeExecutionCreate) SetLatestCode(v string) *CodeExecutionCreate {
	_c.mutation.SetLatestCode(v)
	return _c
}

// SetNillableLatestCode sets the "latest_code" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableLatestCode(v *string) *CodeExecutionCreate {
	if v != nil {
		_c.SetLatestCode(*v)
	}
	return _c
}

// SetIsSuccessful sets the "is_successful" field.
func (_c *CodeExecutionCreate) SetIsSuccessful(v bool) *CodeExecutionCreate {
	_c.mutation.SetIsSuccessful(v)
	return _c
}

// SetNillableIsSuccessful sets the "is_successful" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableIsSuccessful(v *bool) *CodeExecutionCreate {
	if v != nil {
		_c.SetIsSuccessful(*v)
	}
	return _c
}

// SetFailedAgents sets the "failed_agents" field.
func (_c *CodeExecutionCreate) SetFailedAgents(v []string) *CodeExecutionCreate {
	_c.mutation.SetFailedAgents(v)
	return _c
}

// SetErrorMessages sets the "error_messages" field.
func (_c *CodeExecutionCreate) SetErrorMessages(v map[string]string) *CodeExecutionCreate {
	_c.mutation.SetErrorMessages(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodeExecutionCreate) SetCreatedAt(v time.Time) *CodeExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableCreatedAt(v *time.Time) *CodeExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CodeExecutionCreate) SetUpdatedAt(v time.Time) *CodeExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CodeExecutionCreate) SetNillableUpdatedAt(v *time.Time) *CodeExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CodeExecutionMutation object of the builder.
func (_c *CodeExecutionCreate) Mutation() *CodeExecutionMutation {
	return _c.mutation
}

// Save creates the CodeExecution in the database.
func (_c *CodeExecutionCreate) Save(ctx context.Context) (*CodeExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeExecutionCreate) SaveX(ctx context.Context) *CodeExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodeExecutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codeexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := codeexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeExecutionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodeExecution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CodeExecution.updated_at"`)}
	}
	return nil
}

func (_c *CodeExecutionCreate) sqlSave(ctx context.Context) (*CodeExecution, error) {
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

func (_c *CodeExecutionCreate) createSpec() (*CodeExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codeexecution.Table, sqlgraph.NewFieldSpec(codeexecution.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(codeexecution.FieldUserID, field.TypeInt, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(codeexecution.FieldChatID, field.TypeInt, value)
		_node.ChatID = &value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(codeexecution.FieldMessageID, field.TypeInt, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.InitialCode(); ok {
		_spec.SetField(codeexecution.FieldInitialCode, field.TypeString, value)
		_node.InitialCode = value
	}
	if value, ok := _c.mutation.LatestCode(); ok {
		_spec.SetField(codeexecution.FieldLatestCode, field.TypeString, value)
		_node.LatestCode = value
	}
	if value, ok := _c.mutation.IsSuccessful(); ok {
		_spec.SetField(codeexecution.FieldIsSuccessful, field.TypeBool, value)
		_node.IsSuccessful = &value
	}
	if value, ok := _c.mutation.FailedAgents(); ok {
		_spec.SetField(codeexecution.FieldFailedAgents, field.TypeJSON, value)
		_node.FailedAgents = value
	}
	if value, ok := _c.mutation.ErrorMessages(); ok {
		_spec.SetField(codeexecution.FieldErrorMessages, field.TypeJSON, value)
		_node.ErrorMessages = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codeexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(codeexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CodeExecutionCreateBulk is the builder for creating many CodeExecution entities in bulk.
type CodeExecutionCreateBulk struct {
	config
	err      error
	builders []*CodeExecutionCreate
}

// Save creates the CodeExecution entities in the database.
func (_c *CodeExecutionCreateBulk) Save(ctx context.Context) ([]*CodeExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeExecutionMutation)
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
func (_c *CodeExecutionCreateBulk) SaveX(ctx context.Context) []*CodeExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
