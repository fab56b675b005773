// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/codeexecution"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// CodeExecutionUpdate is the builder for updating CodeExecution entities.
type CodeExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *CodeExecutionMutation
}

// Where appends a list predicates to the CodeExecutionUpdate builder.
func (_u *CodeExecutionUpdate) Where(ps ...predicate.CodeExecution) *CodeExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CodeExecutionUpdate) SetUserID(v int) *CodeExecutionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CodeExecutionUpdate) SetNillableUserID(v *int) *CodeExecutionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CodeExecutionUpdate) AddUserID(v int) *CodeExecutionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CodeExecutionUpdate) ClearUserID() *CodeExecutionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *CodeExecutionUpdate) SetChatID(v int) *CodeExecutionUpdate {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *CodeExecutionUpdate) SetNillableChatID(v *int) *CodeExecutionUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *CodeExecutionUpdate) AddChatID(v int) *CodeExecutionUpdate {
	_u.mutation.AddChatID(v)
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *CodeExecutionUpdate) ClearChatID() *CodeExecutionUpdate {
	_u.mutation.ClearChatID()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *CodeExecutionUpdate) SetMessageID(v int) *CodeExecutionUpdate {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *CodeExecutionUpdate) SetNillableMessageID(v *int) *CodeExecutionUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *CodeExecutionUpdate) AddMessageID(v int) *CodeExecutionUpdate {
	_u.mutation.AddMessageID(v)
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *CodeExecutionUpdate) ClearMessageID() *CodeExecutionUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetInitialCode sets the "initial_code" field.
func (_u *CodeExecutionUpdate) SetInitialCode(v string) *CodeExecutionUpdate {
	_u.mutation.SetInitialCode(v)
	return _u
}

// SetNillableInitialCode sets the "initial_code" field if the given value is not nil.
func (_u *CodeExecutionUpdate) SetNillableInitialCode(v *string) *CodeExecutionUpdate {
	if v != nil {
		_u.SetInitialCode(*v)
	}
	return _u
}

// ClearInitialCode clears the value of the "initial_code" field.
func (_u *CodeExecutionUpdate) ClearInitialCode() *CodeExecutionUpdate {
	_u.mutation.ClearInitialCode()
	return _u
}

// SetLatestCode sets the "latest_code" field.
func (_u *CodeExecutionUpdate) SetLatestCode(v string) *CodeExecutionUpdate {
	_u.mutation.SetLatestCode(v)
	return _u
}

// SetNillableLatestCode sets the "latest_code" field if the given value is not nil.
func (_u *CodeExecutionUpdate) SetNillableLatestCode(v *string) *CodeExecutionUpdate {
	if v != nil {
		_u.SetLatestCode(*v)
	}
	return _u
}

// ClearLatestCode clears the value of the "latest_code" field.
func (_u *CodeExecutionUpdate) ClearLatestCode() *CodeExecutionUpdate {
	_u.mutation.ClearLatestCode()
	return _u
}

// SetIsSuccessful sets the "is_successful" field.
func (_u *CodeExecutionUpdate) SetIsSuccessful(v bool) *CodeExecutionUpdate {
	_u.mutation.SetIsSuccessful(v)
	return _u
}

// SetNillableIsSuccessful sets the "is_successful" field if the given value is not nil.
func (_u *CodeExecutionUpdate) SetNillableIsSuccessful(v *bool) *CodeExecutionUpdate {
	if v != nil {
		_u.SetIsSuccessful(*v)
	}
	return _u
}

// ClearIsSuccessful clears the value of the "is_successful" field.
func (_u *CodeExecutionUpdate) ClearIsSuccessful() *CodeExecutionUpdate {
	_u.mutation.ClearIsSuccessful()
	return _u
}

// SetFailedAgents sets the "failed_agents" field.
func (_u *CodeExecutionUpdate) SetFailedAgents(v []string) *CodeExecutionUpdate {
	_u.mutation.SetFailedAgents(v)
	return _u
}

// AppendFailedAgents appends value to the "failed_agents" field.
func (_u *CodeExecutionUpdate) AppendFailedAgents(v []string) *CodeExecutionUpdate {
	_u.mutation.AppendFailedAgents(v)
	return _u
}

// ClearFailedAgents clears the value of the "failed_agents" field.
func (_u *CodeExecutionUpdate) ClearFailedAgents() *CodeExecutionUpdate {
	_u.mutation.ClearFailedAgents()
	return _u
}

// SetErrorMessages sets the "error_messages" field.
func (_u *CodeExecutionUpdate) SetErrorMessages(v map[string]string) *CodeExecutionUpdate {
	_u.mutation.SetErrorMessages(v)
	return _u
}

// ClearErrorMessages clears the value of the "error_messages" field.
func (_u *CodeExecutionUpdate) ClearErrorMessages() *CodeExecutionUpdate {
	_u.mutation.ClearErrorMessages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CodeExecutionUpdate) SetUpdatedAt(v time.Time) *CodeExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CodeExecutionMutation object of the builder.
func (_u *CodeExecutionUpdate) Mutation() *CodeExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CodeExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := codeexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CodeExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(codeexecution.Table, codeexecution.Columns, sqlgraph.NewFieldSpec(codeexecution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(codeexecution.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(codeexecution.FieldUserID, field.TypeInt, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(codeexecution.FieldUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(codeexecution.FieldChatID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(codeexecution.FieldChatID, field.TypeInt, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(codeexecution.FieldChatID, field.TypeInt)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(codeexecution.FieldMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(codeexecution.FieldMessageID, field.TypeInt, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(codeexecution.FieldMessageID, field.TypeInt)
	}
	if value, ok := _u.mutation.InitialCode(); ok {
		_spec.SetField(codeexecution.FieldInitialCode, field.TypeString, value)
	}
	if _u.mutation.InitialCodeCleared() {
		_spec.ClearField(codeexecution.FieldInitialCode, field.TypeString)
	}
	if value, ok := _u.mutation.LatestCode(); ok {
		_spec.SetField(codeexecution.FieldLatestCode, field.TypeString, value)
	}
	if _u.mutation.LatestCodeCleared() {
		_spec.ClearField(codeexecution.FieldLatestCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsSuccessful(); ok {
		_spec.SetField(codeexecution.FieldIsSuccessful, field.TypeBool, value)
	}
	if _u.mutation.IsSuccessfulCleared() {
		_spec.ClearField(codeexecution.FieldIsSuccessful, field.TypeBool)
	}
	if value, ok := _u.mutation.FailedAgents(); ok {
		_spec.SetField(codeexecution.FieldFailedAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codeexecution.FieldFailedAgents, value)
		})
	}
	if _u.mutation.FailedAgentsCleared() {
		_spec.ClearField(codeexecution.FieldFailedAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessages(); ok {
		_spec.SetField(codeexecution.FieldErrorMessages, field.TypeJSON, value)
	}
	if _u.mutation.ErrorMessagesCleared() {
		_spec.ClearField(codeexecution.FieldErrorMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(codeexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codeexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeExecutionUpdateOne is the builder for updating a single CodeExecution entity.
type CodeExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeExecutionMutation
}

// SetUserID sets the "user_id" field.
func (_u *CodeExecutionUpdateOne) SetUserID(v int) *CodeExecutionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CodeExecutionUpdateOne) SetNillableUserID(v *int) *CodeExecutionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CodeExecutionUpdateOne) AddUserID(v int) *CodeExecutionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CodeExecutionUpdateOne) ClearUserID() *CodeExecutionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *CodeExecutionUpdateOne) SetChatID(v int) *CodeExecutionUpdateOne {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *CodeExecutionUpdateOne) SetNillableChatID(v *int) *CodeExecutionUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *CodeExecutionUpdateOne) AddChatID(v int) *CodeExecutionUpdateOne {
	_u.mutation.AddChatID(v)
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *CodeExecutionUpdateOne) ClearChatID() *CodeExecutionUpdateOne {
	_u.mutation.ClearChatID()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *CodeExecutionUpdateOne) SetMessageID(v int) *CodeExecutionUpdateOne {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *CodeExecutionUpdateOne) SetNillableMessageID(v *int) *CodeExecutionUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *CodeExecutionUpdateOne) AddMessageID(v int) *CodeExecutionUpdateOne {
	_u.mutation.AddMessageID(v)
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *CodeExecutionUpdateOne) ClearMessageID() *CodeExecutionUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetInitialCode sets the "initial_code" field.
func (_u *CodeExecutionUpdateOne) SetInitialCode(v string) *CodeExecutionUpdateOne {
	_u.mutation.SetInitialCode(v)
	return _u
}

// SetNillableInitialCode sets the "initial_code" field if the given value is not nil.
func (_u *CodeExecutionUpdateOne) SetNillableInitialCode(v *string) *CodeExecutionUpdateOne {
	if v != nil {
		_u.SetInitialCode(*v)
	}
	return _u
}

// ClearInitialCode clears the value of the "initial_code" field.
func (_u *CodeExecutionUpdateOne) ClearInitialCode() *CodeExecutionUpdateOne {
	_u.mutation.ClearInitialCode()
	return _u
}

// SetLatestCode sets the "latest_code" field.
func (_u *CodeExecutionUpdateOne) SetLatestCode(v string) *CodeExecutionUpdateOne {
	_u.mutation.SetLatestCode(v)
	return _u
}

// SetNillableLatestCode sets the "latest_code" field if the given value is not nil.
func (_u *CodeExecutionUpdateOne) SetNillableLatestCode(v *string) *CodeExecutionUpdateOne {
	if v != nil {
		_u.SetLatestCode(*v)
	}
	return _u
}

// ClearLatestCode clears the value of the "latest_code" field.
func (_u *CodeExecutionUpdateOne) ClearLatestCode() *CodeExecutionUpdateOne {
	_u.mutation.ClearLatestCode()
	return _u
}

// SetIsSuccessful sets the "is_successful" field.
func (_u *CodeExecutionUpdateOne) SetIsSuccessful(v bool) *CodeExecutionUpdateOne {
	_u.mutation.SetIsSuccessful(v)
	return _u
}

// SetNillableIsSuccessful sets the "is_successful" field if the given value is not nil.
func (_u *CodeExecutionUpdateOne) SetNillableIsSuccessful(v *bool) *CodeExecutionUpdateOne {
	if v != nil {
		_u.SetIsSuccessful(*v)
	}
	return _u
}

// ClearIsSuccessful clears the value of the "is_successful" field.
func (_u *CodeExecutionUpdateOne) ClearIsSuccessful() *CodeExecutionUpdateOne {
	_u.mutation.ClearIsSuccessful()
	return _u
}

// SetFailedAgents sets the "failed_agents" field.
func (_u *CodeExecutionUpdateOne) SetFailedAgents(v []string) *CodeExecutionUpdateOne {
	_u.mutation.SetFailedAgents(v)
	return _u
}

// AppendFailedAgents appends value to the "failed_agents" field.
func (_u *CodeExecutionUpdateOne) AppendFailedAgents(v []string) *CodeExecutionUpdateOne {
	_u.mutation.AppendFailedAgents(v)
	return _u
}

// ClearFailedAgents clears the value of the "failed_agents" field.
func (_u *CodeExecutionUpdateOne) ClearFailedAgents() *CodeExecutionUpdateOne {
	_u.mutation.ClearFailedAgents()
	return _u
}

// SetErrorMessages sets the "error_messages" field.
func (_u *CodeExecutionUpdateOne) SetErrorMessages(v map[string]string) *CodeExecutionUpdateOne {
	_u.mutation.SetErrorMessages(v)
	return _u
}

// ClearErrorMessages clears the value of the "error_messages" field.
func (_u *CodeExecutionUpdateOne) ClearErrorMessages() *CodeExecutionUpdateOne {
	_u.mutation.ClearErrorMessages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CodeExecutionUpdateOne) SetUpdatedAt(v time.Time) *CodeExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CodeExecutionMutation object of the builder.
func (_u *CodeExecutionUpdateOne) Mutation() *CodeExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodeExecutionUpdate builder.
func (_u *CodeExecutionUpdateOne) Where(ps ...predicate.CodeExecution) *CodeExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeExecutionUpdateOne) Select(field string, fields ...string) *CodeExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeExecution entity.
func (_u *CodeExecutionUpdateOne) Save(ctx context.Context) (*CodeExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeExecutionUpdateOne) SaveX(ctx context.Context) *CodeExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CodeExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := codeexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CodeExecutionUpdateOne) sqlSave(ctx context.Context) (_node *CodeExecution, err error) {
	_spec := sqlgraph.NewUpdateSpec(codeexecution.Table, codeexecution.Columns, sqlgraph.NewFieldSpec(codeexecution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codeexecution.FieldID)
		for _, f := range fields {
			if !codeexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codeexecution.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(codeexecution.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(codeexecution.FieldUserID, field.TypeInt, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(codeexecution.FieldUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(codeexecution.FieldChatID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(codeexecution.FieldChatID, field.TypeInt, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(codeexecution.FieldChatID, field.TypeInt)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(codeexecution.FieldMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(codeexecution.FieldMessageID, field.TypeInt, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(codeexecution.FieldMessageID, field.TypeInt)
	}
	if value, ok := _u.mutation.InitialCode(); ok {
		_spec.SetField(codeexecution.FieldInitialCode, field.TypeString, value)
	}
	if _u.mutation.InitialCodeCleared() {
		_spec.ClearField(codeexecution.FieldInitialCode, field.TypeString)
	}
	if value, ok := _u.mutation.LatestCode(); ok {
		_spec.SetField(codeexecution.FieldLatestCode, field.TypeString, value)
	}
	if _u.mutation.LatestCodeCleared() {
		_spec.ClearField(codeexecution.FieldLatestCode, field.TypeString)
	}
	if value, ok := _u.mutation.IsSuccessful(); ok {
		_spec.SetField(codeexecution.FieldIsSuccessful, field.TypeBool, value)
	}
	if _u.mutation.IsSuccessfulCleared() {
		_spec.ClearField(codeexecution.FieldIsSuccessful, field.TypeBool)
	}
	if value, ok := _u.mutation.FailedAgents(); ok {
		_spec.SetField(codeexecution.FieldFailedAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codeexecution.FieldFailedAgents, value)
		})
	}
	if _u.mutation.FailedAgentsCleared() {
		_spec.ClearField(codeexecution.FieldFailedAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessages(); ok {
		_spec.SetField(codeexecution.FieldErrorMessages, field.TypeJSON, value)
	}
	if _u.mutation.ErrorMessagesCleared() {
		_spec.ClearField(codeexecution.FieldErrorMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(codeexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CodeExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codeexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
