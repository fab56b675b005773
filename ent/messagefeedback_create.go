// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/messagefeedback"
)

// MessageFeedbackCreate is the builder for creating a MessageFeedback entity.
type MessageFeedbackCreate struct {
	config
	mutation *MessageFeedbackMutation
	hooks    []Hook
}

// SetMessageID sets the "message_id" field.
func (_c *MessageFeedbackCreate) SetMessageID(v int) *MessageFeedbackCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *MessageFeedbackCreate) SetRating(v int) *MessageFeedbackCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableRating(v *int) *MessageFeedbackCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *MessageFeedbackCreate) SetModelName(v string) *MessageFeedbackCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableModelName(v *string) *MessageFeedbackCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetModelProvider sets the "model_provider" field.
func (_c *MessageFeedbackCreate) SetModelProvider(v string) *MessageFeedbackCreate {
	_c.mutation.SetModelProvider(v)
	return _c
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableModelProvider(v *string) *MessageFeedbackCreate {
	if v != nil {
		_c.SetModelProvider(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *MessageFeedbackCreate) SetTemperature(v float64) *MessageFeedbackCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableTemperature(v *float64) *MessageFeedbackCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *MessageFeedbackCreate) SetMaxTokens(v int) *MessageFeedbackCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableMaxTokens(v *int) *MessageFeedbackCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageFeedbackCreate) SetCreatedAt(v time.Time) *MessageFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableCreatedAt(v *time.Time) *MessageFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MessageFeedbackCreate) SetUpdatedAt(v time.Time) *MessageFeedbackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MessageFeedbackCreate) SetNillableUpdatedAt(v *time.Time) *MessageFeedbackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MessageFeedbackMutation object of the builder.
func (_c *MessageFeedbackCreate) Mutation() *MessageFeedbackMutation {
	return _c.mutation
}

// Save creates the MessageFeedback in the database.
func (_c *MessageFeedbackCreate) Save(ctx context.Context) (*MessageFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageFeedbackCreate) SaveX(ctx context.Context) *MessageFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagefeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := messagefeedback.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageFeedbackCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageFeedback.message_id"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := messagefeedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "MessageFeedback.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageFeedback.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MessageFeedback.updated_at"`)}
	}
	return nil
}

func (_c *MessageFeedbackCreate) sqlSave(ctx context.Context) (*MessageFeedback, error) {
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

func (_c *MessageFeedbackCreate) createSpec() (*MessageFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagefeedback.Table, sqlgraph.NewFieldSpec(messagefeedback.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(messagefeedback.FieldMessageID, field.TypeInt, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(messagefeedback.FieldRating, field.TypeInt, value)
		_node.Rating = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(messagefeedback.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.ModelProvider(); ok {
		_spec.SetField(messagefeedback.FieldModelProvider, field.TypeString, value)
		_node.ModelProvider = &value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(messagefeedback.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(messagefeedback.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagefeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(messagefeedback.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MessageFeedbackCreateBulk is the builder for creating many MessageFeedback entities in bulk.
type MessageFeedbackCreateBulk struct {
	config
	err      error
	builders []*MessageFeedbackCreate
}

// Save creates the MessageFeedback entities in the database.
func (_c *MessageFeedbackCreateBulk) Save(ctx context.Context) ([]*MessageFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageFeedbackMutation)
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
func (_c *MessageFeedbackCreateBulk) SaveX(ctx context.Context) []*MessageFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
