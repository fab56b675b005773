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
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/predicate"
	"github.com/autoanalyst/analyst/ent/user"
)

// ModelUsageUpdate is the builder for updating ModelUsage entities.
type ModelUsageUpdate struct {
	config
	hooks    []Hook
	mutation *ModelUsageMutation
}

// Where appends a list predicates to the ModelUsageUpdate builder.
func (_u *ModelUsageUpdate) Where(ps ...predicate.ModelUsage) *ModelUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ModelUsageUpdate) SetUserID(v int) *ModelUsageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableUserID(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ModelUsageUpdate) ClearUserID() *ModelUsageUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ModelUsageUpdate) SetChatID(v int) *ModelUsageUpdate {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableChatID(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *ModelUsageUpdate) AddChatID(v int) *ModelUsageUpdate {
	_u.mutation.AddChatID(v)
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *ModelUsageUpdate) ClearChatID() *ModelUsageUpdate {
	_u.mutation.ClearChatID()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ModelUsageUpdate) SetModelName(v string) *ModelUsageUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableModelName(v *string) *ModelUsageUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelUsageUpdate) SetProvider(v string) *ModelUsageUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableProvider(v *string) *ModelUsageUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ModelUsageUpdate) SetPromptTokens(v int) *ModelUsageUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillablePromptTokens(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ModelUsageUpdate) AddPromptTokens(v int) *ModelUsageUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *ModelUsageUpdate) SetCompletionTokens(v int) *ModelUsageUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableCompletionTokens(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *ModelUsageUpdate) AddCompletionTokens(v int) *ModelUsageUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ModelUsageUpdate) SetTotalTokens(v int) *ModelUsageUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableTotalTokens(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ModelUsageUpdate) AddTotalTokens(v int) *ModelUsageUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetQuerySize sets the "query_size" field.
func (_u *ModelUsageUpdate) SetQuerySize(v int) *ModelUsageUpdate {
	_u.mutation.ResetQuerySize()
	_u.mutation.SetQuerySize(v)
	return _u
}

// SetNillableQuerySize sets the "query_size" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableQuerySize(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetQuerySize(*v)
	}
	return _u
}

// AddQuerySize adds value to the "query_size" field.
func (_u *ModelUsageUpdate) AddQuerySize(v int) *ModelUsageUpdate {
	_u.mutation.AddQuerySize(v)
	return _u
}

// SetResponseSize sets the "response_size" field.
func (_u *ModelUsageUpdate) SetResponseSize(v int) *ModelUsageUpdate {
	_u.mutation.ResetResponseSize()
	_u.mutation.SetResponseSize(v)
	return _u
}

// SetNillableResponseSize sets the "response_size" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableResponseSize(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetResponseSize(*v)
	}
	return _u
}

// AddResponseSize adds value to the "response_size" field.
func (_u *ModelUsageUpdate) AddResponseSize(v int) *ModelUsageUpdate {
	_u.mutation.AddResponseSize(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *ModelUsageUpdate) SetCost(v float64) *ModelUsageUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableCost(v *float64) *ModelUsageUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ModelUsageUpdate) AddCost(v float64) *ModelUsageUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ModelUsageUpdate) SetTimestamp(v time.Time) *ModelUsageUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableTimestamp(v *time.Time) *ModelUsageUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetIsStreaming sets the "is_streaming" field.
func (_u *ModelUsageUpdate) SetIsStreaming(v bool) *ModelUsageUpdate {
	_u.mutation.SetIsStreaming(v)
	return _u
}

// SetNillableIsStreaming sets the "is_streaming" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableIsStreaming(v *bool) *ModelUsageUpdate {
	if v != nil {
		_u.SetIsStreaming(*v)
	}
	return _u
}

// SetRequestTimeMs sets the "request_time_ms" field.
func (_u *ModelUsageUpdate) SetRequestTimeMs(v int) *ModelUsageUpdate {
	_u.mutation.ResetRequestTimeMs()
	_u.mutation.SetRequestTimeMs(v)
	return _u
}

// SetNillableRequestTimeMs sets the "request_time_ms" field if the given value is not nil.
func (_u *ModelUsageUpdate) SetNillableRequestTimeMs(v *int) *ModelUsageUpdate {
	if v != nil {
		_u.SetRequestTimeMs(*v)
	}
	return _u
}

// AddRequestTimeMs adds value to the "request_time_ms" field.
func (_u *ModelUsageUpdate) AddRequestTimeMs(v int) *ModelUsageUpdate {
	_u.mutation.AddRequestTimeMs(v)
	return _u
}

// ClearRequestTimeMs clears the value of the "request_time_ms" field.
func (_u *ModelUsageUpdate) ClearRequestTimeMs() *ModelUsageUpdate {
	_u.mutation.ClearRequestTimeMs()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ModelUsageUpdate) SetUser(v *User) *ModelUsageUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ModelUsageMutation object of the builder.
func (_u *ModelUsageUpdate) Mutation() *ModelUsageMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ModelUsageUpdate) ClearUser() *ModelUsageUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelusage.Table, modelusage.Columns, sqlgraph.NewFieldSpec(modelusage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(modelusage.FieldChatID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(modelusage.FieldChatID, field.TypeInt, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(modelusage.FieldChatID, field.TypeInt)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(modelusage.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelusage.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(modelusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(modelusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(modelusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(modelusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(modelusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(modelusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuerySize(); ok {
		_spec.SetField(modelusage.FieldQuerySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuerySize(); ok {
		_spec.AddField(modelusage.FieldQuerySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseSize(); ok {
		_spec.SetField(modelusage.FieldResponseSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseSize(); ok {
		_spec.AddField(modelusage.FieldResponseSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(modelusage.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(modelusage.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(modelusage.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsStreaming(); ok {
		_spec.SetField(modelusage.FieldIsStreaming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestTimeMs(); ok {
		_spec.SetField(modelusage.FieldRequestTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestTimeMs(); ok {
		_spec.AddField(modelusage.FieldRequestTimeMs, field.TypeInt, value)
	}
	if _u.mutation.RequestTimeMsCleared() {
		_spec.ClearField(modelusage.FieldRequestTimeMs, field.TypeInt)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelUsageUpdateOne is the builder for updating a single ModelUsage entity.
type ModelUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelUsageMutation
}

// SetUserID sets the "user_id" field.
func (_u *ModelUsageUpdateOne) SetUserID(v int) *ModelUsageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableUserID(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ModelUsageUpdateOne) ClearUserID() *ModelUsageUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ModelUsageUpdateOne) SetChatID(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableChatID(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *ModelUsageUpdateOne) AddChatID(v int) *ModelUsageUpdateOne {
	_u.mutation.AddChatID(v)
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *ModelUsageUpdateOne) ClearChatID() *ModelUsageUpdateOne {
	_u.mutation.ClearChatID()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ModelUsageUpdateOne) SetModelName(v string) *ModelUsageUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableModelName(v *string) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelUsageUpdateOne) SetProvider(v string) *ModelUsageUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableProvider(v *string) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ModelUsageUpdateOne) SetPromptTokens(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillablePromptTokens(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ModelUsageUpdateOne) AddPromptTokens(v int) *ModelUsageUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *ModelUsageUpdateOne) SetCompletionTokens(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableCompletionTokens(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *ModelUsageUpdateOne) AddCompletionTokens(v int) *ModelUsageUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ModelUsageUpdateOne) SetTotalTokens(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableTotalTokens(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ModelUsageUpdateOne) AddTotalTokens(v int) *ModelUsageUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetQuerySize sets the "query_size" field.
func (_u *ModelUsageUpdateOne) SetQuerySize(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetQuerySize()
	_u.mutation.SetQuerySize(v)
	return _u
}

// SetNillableQuerySize sets the "query_size" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableQuerySize(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetQuerySize(*v)
	}
	return _u
}

// AddQuerySize adds value to the "query_size" field.
func (_u *ModelUsageUpdateOne) AddQuerySize(v int) *ModelUsageUpdateOne {
	_u.mutation.AddQuerySize(v)
	return _u
}

// SetResponseSize sets the "response_size" field.
func (_u *ModelUsageUpdateOne) SetResponseSize(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetResponseSize()
	_u.mutation.SetResponseSize(v)
	return _u
}

// SetNillableResponseSize sets the "response_size" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableResponseSize(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetResponseSize(*v)
	}
	return _u
}

// AddResponseSize adds value to the "response_size" field.
func (_u *ModelUsageUpdateOne) AddResponseSize(v int) *ModelUsageUpdateOne {
	_u.mutation.AddResponseSize(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *ModelUsageUpdateOne) SetCost(v float64) *ModelUsageUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableCost(v *float64) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ModelUsageUpdateOne) AddCost(v float64) *ModelUsageUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ModelUsageUpdateOne) SetTimestamp(v time.Time) *ModelUsageUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableTimestamp(v *time.Time) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetIsStreaming sets the "is_streaming" field.
func (_u *ModelUsageUpdateOne) SetIsStreaming(v bool) *ModelUsageUpdateOne {
	_u.mutation.SetIsStreaming(v)
	return _u
}

// SetNillableIsStreaming sets the "is_streaming" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableIsStreaming(v *bool) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetIsStreaming(*v)
	}
	return _u
}

// SetRequestTimeMs sets the "request_time_ms" field.
func (_u *ModelUsageUpdateOne) SetRequestTimeMs(v int) *ModelUsageUpdateOne {
	_u.mutation.ResetRequestTimeMs()
	_u.mutation.SetRequestTimeMs(v)
	return _u
}

// SetNillableRequestTimeMs sets the "request_time_ms" field if the given value is not nil.
func (_u *ModelUsageUpdateOne) SetNillableRequestTimeMs(v *int) *ModelUsageUpdateOne {
	if v != nil {
		_u.SetRequestTimeMs(*v)
	}
	return _u
}

// AddRequestTimeMs adds value to the "request_time_ms" field.
func (_u *ModelUsageUpdateOne) AddRequestTimeMs(v int) *ModelUsageUpdateOne {
	_u.mutation.AddRequestTimeMs(v)
	return _u
}

// ClearRequestTimeMs clears the value of the "request_time_ms" field.
func (_u *ModelUsageUpdateOne) ClearRequestTimeMs() *ModelUsageUpdateOne {
	_u.mutation.ClearRequestTimeMs()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ModelUsageUpdateOne) SetUser(v *User) *ModelUsageUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ModelUsageMutation object of the builder.
func (_u *ModelUsageUpdateOne) Mutation() *ModelUsageMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ModelUsageUpdateOne) ClearUser() *ModelUsageUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ModelUsageUpdate builder.
func (_u *ModelUsageUpdateOne) Where(ps ...predicate.ModelUsage) *ModelUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelUsageUpdateOne) Select(field string, fields ...string) *ModelUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelUsage entity.
func (_u *ModelUsageUpdateOne) Save(ctx context.Context) (*ModelUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelUsageUpdateOne) SaveX(ctx context.Context) *ModelUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelUsageUpdateOne) sqlSave(ctx context.Context) (_node *ModelUsage, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelusage.Table, modelusage.Columns, sqlgraph.NewFieldSpec(modelusage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelusage.FieldID)
		for _, f := range fields {
			if !modelusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelusage.FieldID {
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
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(modelusage.FieldChatID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(modelusage.FieldChatID, field.TypeInt, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(modelusage.FieldChatID, field.TypeInt)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(modelusage.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelusage.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(modelusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(modelusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(modelusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(modelusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(modelusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(modelusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuerySize(); ok {
		_spec.SetField(modelusage.FieldQuerySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuerySize(); ok {
		_spec.AddField(modelusage.FieldQuerySize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseSize(); ok {
		_spec.SetField(modelusage.FieldResponseSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseSize(); ok {
		_spec.AddField(modelusage.FieldResponseSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(modelusage.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(modelusage.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(modelusage.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsStreaming(); ok {
		_spec.SetField(modelusage.FieldIsStreaming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestTimeMs(); ok {
		_spec.SetField(modelusage.FieldRequestTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestTimeMs(); ok {
		_spec.AddField(modelusage.FieldRequestTimeMs, field.TypeInt, value)
	}
	if _u.mutation.RequestTimeMsCleared() {
		_spec.ClearField(modelusage.FieldRequestTimeMs, field.TypeInt)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ModelUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
