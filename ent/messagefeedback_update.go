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
	"github.com/autoanalyst/analyst/ent/messagefeedback"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// MessageFeedbackUpdate is the builder for updating MessageFeedback entities.
type MessageFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *MessageFeedbackMutation
}

// Where appends a list predicates to the MessageFeedbackUpdate builder.
func (_u *MessageFeedbackUpdate) Where(ps ...predicate.MessageFeedback) *MessageFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *MessageFeedbackUpdate) SetMessageID(v int) *MessageFeedbackUpdate {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageFeedbackUpdate) SetNillableMessageID(v *int) *MessageFeedbackUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *MessageFeedbackUpdate) AddMessageID(v int) *MessageFeedbackUpdate {
	_u.mutation.AddMessageID(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *MessageFeedbackUpdate) SetRating(v int) *MessageFeedbackUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *MessageFeedbackUpdate) SetNillableRating(v *int) *MessageFeedbackUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *MessageFeedbackUpdate) AddRating(v int) *MessageFeedbackUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *MessageFeedbackUpdate) ClearRating() *MessageFeedbackUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *MessageFeedbackUpdate) SetModelName(v string) *MessageFeedbackUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *MessageFeedbackUpdate) SetNillableModelName(v *string) *MessageFeedbackUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *MessageFeedbackUpdate) ClearModelName() *MessageFeedbackUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelProvider sets the "model_provider" field.
func (_u *MessageFeedbackUpdate) SetModelProvider(v string) *MessageFeedbackUpdate {
	_u.mutation.SetModelProvider(v)
	return _u
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_u *MessageFeedbackUpdate) SetNillableModelProvider(v *string) *MessageFeedbackUpdate {
	if v != nil {
		_u.SetModelProvider(*v)
	}
	return _u
}

// ClearModelProvider clears the value of the "model_provider" field.
func (_u *MessageFeedbackUpdate) ClearModelProvider() *MessageFeedbackUpdate {
	_u.mutation.ClearModelProvider()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *MessageFeedbackUpdate) SetTemperature(v float64) *MessageFeedbackUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *MessageFeedbackUpdate) SetNillableTemperature(v *float64) *MessageFeedbackUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *MessageFeedbackUpdate) AddTemperature(v float64) *MessageFeedbackUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *MessageFeedbackUpdate) ClearTemperature() *MessageFeedbackUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *MessageFeedbackUpdate) SetMaxTokens(v int) *MessageFeedbackUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *MessageFeedbackUpdate) SetNillableMaxTokens(v *int) *MessageFeedbackUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *MessageFeedbackUpdate) AddMaxTokens(v int) *MessageFeedbackUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (_u *MessageFeedbackUpdate) ClearMaxTokens() *MessageFeedbackUpdate {
	_u.mutation.ClearMaxTokens()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageFeedbackUpdate) SetUpdatedAt(v time.Time) *MessageFeedbackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageFeedbackMutation object of the builder.
func (_u *MessageFeedbackUpdate) Mutation() *MessageFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageFeedbackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageFeedbackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := messagefeedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageFeedbackUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := messagefeedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "MessageFeedback.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagefeedback.Table, messagefeedback.Columns, sqlgraph.NewFieldSpec(messagefeedback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messagefeedback.FieldMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(messagefeedback.FieldMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(messagefeedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(messagefeedback.FieldRating, field.TypeInt, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(messagefeedback.FieldRating, field.TypeInt)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(messagefeedback.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(messagefeedback.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelProvider(); ok {
		_spec.SetField(messagefeedback.FieldModelProvider, field.TypeString, value)
	}
	if _u.mutation.ModelProviderCleared() {
		_spec.ClearField(messagefeedback.FieldModelProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(messagefeedback.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(messagefeedback.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(messagefeedback.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(messagefeedback.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(messagefeedback.FieldMaxTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxTokensCleared() {
		_spec.ClearField(messagefeedback.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(messagefeedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageFeedbackUpdateOne is the builder for updating a single MessageFeedback entity.
type MessageFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageFeedbackMutation
}

// SetMessageID sets the "message_id" field.
func (_u *MessageFeedbackUpdateOne) SetMessageID(v int) *MessageFeedbackUpdateOne {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageFeedbackUpdateOne) SetNillableMessageID(v *int) *MessageFeedbackUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *MessageFeedbackUpdateOne) AddMessageID(v int) *MessageFeedbackUpdateOne {
	_u.mutation.AddMessageID(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *MessageFeedbackUpdateOne) SetRating(v int) *MessageFeedbackUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *MessageFeedbackUpdateOne) SetNillableRating(v *int) *MessageFeedbackUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *MessageFeedbackUpdateOne) AddRating(v int) *MessageFeedbackUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *MessageFeedbackUpdateOne) ClearRating() *MessageFeedbackUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *MessageFeedbackUpdateOne) SetModelName(v string) *MessageFeedbackUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *MessageFeedbackUpdateOne) SetNillableModelName(v *string) *MessageFeedbackUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *MessageFeedbackUpdateOne) ClearModelName() *MessageFeedbackUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetModelProvider sets the "model_provider" field.
func (_u *MessageFeedbackUpdateOne) SetModelProvider(v string) *MessageFeedbackUpdateOne {
	_u.mutation.SetModelProvider(v)
	return _u
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_u *MessageFeedbackUpdateOne) SetNillableModelProvider(v *string) *MessageFeedbackUpdateOne {
	if v != nil {
		_u.SetModelProvider(*v)
	}
	return _u
}

// ClearModelProvider clears the value of the "model_provider" field.
func (_u *MessageFeedbackUpdateOne) ClearModelProvider() *MessageFeedbackUpdateOne {
	_u.mutation.ClearModelProvider()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *MessageFeedbackUpdateOne) SetTemperature(v float64) *MessageFeedbackUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *MessageFeedbackUpdateOne) SetNillableTemperature(v *float64) *MessageFeedbackUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *MessageFeedbackUpdateOne) AddTemperature(v float64) *MessageFeedbackUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *MessageFeedbackUpdateOne) ClearTemperature() *MessageFeedbackUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *MessageFeedbackUpdateOne) SetMaxTokens(v int) *MessageFeedbackUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *MessageFeedbackUpdateOne) SetNillableMaxTokens(v *int) *MessageFeedbackUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *MessageFeedbackUpdateOne) AddMaxTokens(v int) *MessageFeedbackUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (_u *MessageFeedbackUpdateOne) ClearMaxTokens() *MessageFeedbackUpdateOne {
	_u.mutation.ClearMaxTokens()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageFeedbackUpdateOne) SetUpdatedAt(v time.Time) *MessageFeedbackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageFeedbackMutation object of the builder.
func (_u *MessageFeedbackUpdateOne) Mutation() *MessageFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageFeedbackUpdate builder.
func (_u *MessageFeedbackUpdateOne) Where(ps ...predicate.MessageFeedback) *MessageFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageFeedbackUpdateOne) Select(field string, fields ...string) *MessageFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageFeedback entity.
func (_u *MessageFeedbackUpdateOne) Save(ctx context.Context) (*MessageFeedback, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageFeedbackUpdateOne) SaveX(ctx context.Context) *MessageFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageFeedbackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := messagefeedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageFeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := messagefeedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "MessageFeedback.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *MessageFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagefeedback.Table, messagefeedback.Columns, sqlgraph.NewFieldSpec(messagefeedback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagefeedback.FieldID)
		for _, f := range fields {
			if !messagefeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagefeedback.FieldID {
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
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messagefeedback.FieldMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(messagefeedback.FieldMessageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(messagefeedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(messagefeedback.FieldRating, field.TypeInt, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(messagefeedback.FieldRating, field.TypeInt)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(messagefeedback.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(messagefeedback.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelProvider(); ok {
		_spec.SetField(messagefeedback.FieldModelProvider, field.TypeString, value)
	}
	if _u.mutation.ModelProviderCleared() {
		_spec.ClearField(messagefeedback.FieldModelProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(messagefeedback.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(messagefeedback.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(messagefeedback.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(messagefeedback.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(messagefeedback.FieldMaxTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxTokensCleared() {
		_spec.ClearField(messagefeedback.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(messagefeedback.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MessageFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
