// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/user"
)

// ModelUsageCreate is the builder for creating a ModelUsage entity.
type ModelUsageCreate struct {
	config
	mutation *ModelUsageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ModelUsageCreate) SetUserID(v int) *ModelUsageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableUserID(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *ModelUsageCreate) SetChatID(v int) *ModelUsageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableChatID(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ModelUsageCreate) SetModelName(v string) *ModelUsageCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ModelUsageCreate) SetProvider(v string) *ModelUsageCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *ModelUsageCreate) SetPromptTokens(v int) *ModelUsageCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillablePromptTokens(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *ModelUsageCreate) SetCompletionTokens(v int) *ModelUsageCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableCompletionTokens(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ModelUsageCreate) SetTotalTokens(v int) *ModelUsageCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableTotalTokens(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetQuerySize sets the "query_size" field.
func (_c *ModelUsageCreate) SetQuerySize(v int) *ModelUsageCreate {
	_c.mutation.SetQuerySize(v)
	return _c
}

// SetNillableQuerySize sets the "query_size" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableQuerySize(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetQuerySize(*v)
	}
	return _c
}

// SetResponseSize sets the "response_size" field.
func (_c *ModelUsageCreate) SetResponseSize(v int) *ModelUsageCreate {
	_c.mutation.SetResponseSize(v)
	return _c
}

// SetNillableResponseSize sets the "response_size" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableResponseSize(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetResponseSize(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *ModelUsageCreate) SetCost(v float64) *ModelUsageCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableCost(v *float64) *ModelUsageCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ModelUsageCreate) SetTimestamp(v time.Time) *ModelUsageCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableTimestamp(v *time.Time) *ModelUsageCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetIsStreaming sets the "is_streaming" field.
func (_c *ModelUsageCreate) SetIsStreaming(v bool) *ModelUsageCreate {
	_c.mutation.SetIsStreaming(v)
	return _c
}

// SetNillableIsStreaming sets the "is_streaming" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableIsStreaming(v *bool) *ModelUsageCreate {
	if v != nil {
		_c.SetIsStreaming(*v)
	}
	return _c
}

// SetRequestTimeMs sets the "request_time_ms" field.
func (_c *ModelUsageCreate) SetRequestTimeMs(v int) *ModelUsageCreate {
	_c.mutation.SetRequestTimeMs(v)
	return _c
}

// SetNillableRequestTimeMs sets the "request_time_ms" field if the given value is not nil.
func (_c *ModelUsageCreate) SetNillableRequestTimeMs(v *int) *ModelUsageCreate {
	if v != nil {
		_c.SetRequestTimeMs(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ModelUsageCreate) SetUser(v *User) *ModelUsageCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ModelUsageMutation object of the builder.
func (_c *ModelUsageCreate) Mutation() *ModelUsageMutation {
	return _c.mutation
}

// Save creates the ModelUsage in the database.
func (_c *ModelUsageCreate) Save(ctx context.Context) (*ModelUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelUsageCreate) SaveX(ctx context.Context) *ModelUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelUsageCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := modelusage.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := modelusage.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := modelusage.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.QuerySize(); !ok {
		v := modelusage.DefaultQuerySize
		_c.mutation.SetQuerySize(v)
	}
	if _, ok := _c.mutation.ResponseSize(); !ok {
		v := modelusage.DefaultResponseSize
		_c.mutation.SetResponseSize(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := modelusage.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := modelusage.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IsStreaming(); !ok {
		v := modelusage.DefaultIsStreaming
		_c.mutation.SetIsStreaming(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelUsageCreate) check() error {
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "ModelUsage.model_name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelUsage.provider"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "ModelUsage.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "ModelUsage.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ModelUsage.total_tokens"`)}
	}
	if _, ok := _c.mutation.QuerySize(); !ok {
		return &ValidationError{Name: "query_size", err: errors.New(`ent: missing required field "ModelUsage.query_size"`)}
	}
	if _, ok := _c.mutation.ResponseSize(); !ok {
		return &ValidationError{Name: "response_size", err: errors.New(`ent: missing required field "ModelUsage.response_size"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "ModelUsage.cost"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ModelUsage.timestamp"`)}
	}
	if _, ok := _c.mutation.IsStreaming(); !ok {
		return &ValidationError{Name: "is_streaming", err: errors.New(`ent: missing required field "ModelUsage.is_streaming"`)}
	}
	return nil
}

func (_c *ModelUsageCreate) sqlSave(ctx context.Context) (*ModelUsage, error) {
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

func (_c *ModelUsageCreate) createSpec() (*ModelUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelusage.Table, sqlgraph.NewFieldSpec(modelusage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(modelusage.FieldChatID, field.TypeInt, value)
		_node.ChatID = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(modelusage.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelusage.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(modelusage.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(modelusage.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(modelusage.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.QuerySize(); ok {
		_spec.SetField(modelusage.FieldQuerySize, field.TypeInt, value)
		_node.QuerySize = value
	}
	if value, ok := _c.mutation.ResponseSize(); ok {
		_spec.SetField(modelusage.FieldResponseSize, field.TypeInt, value)
		_node.ResponseSize = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(modelusage.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(modelusage.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.IsStreaming(); ok {
		_spec.SetField(modelusage.FieldIsStreaming, field.TypeBool, value)
		_node.IsStreaming = value
	}
	if value, ok := _c.mutation.RequestTimeMs(); ok {
		_spec.SetField(modelusage.FieldRequestTimeMs, field.TypeInt, value)
		_node.RequestTimeMs = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   modelusage.UserTable,
			Columns: []string{modelusage.UserColumn},
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

// ModelUsageCreateBulk is the builder for creating many ModelUsage entities in bulk.
type ModelUsageCreateBulk struct {
	config
	err      error
	builders []*ModelUsageCreate
}

// Save creates the ModelUsage entities in the database.
func (_c *ModelUsageCreateBulk) Save(ctx context.Context) ([]*ModelUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelUsageMutation)
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
func (_c *ModelUsageCreateBulk) SaveX(ctx context.Context) []*ModelUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
