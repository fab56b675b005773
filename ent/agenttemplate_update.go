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
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// AgentTemplateUpdate is the builder for updating AgentTemplate entities.
type AgentTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentTemplateMutation
}

// Where appends a list predicates to the AgentTemplateUpdate builder.
func (_u *AgentTemplateUpdate) Where(ps ...predicate.AgentTemplate) *AgentTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *AgentTemplateUpdate) SetTemplateName(v string) *AgentTemplateUpdate {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableTemplateName(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentTemplateUpdate) SetDisplayName(v string) *AgentTemplateUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableDisplayName(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentTemplateUpdate) SetDescription(v string) *AgentTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableDescription(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *AgentTemplateUpdate) SetPromptTemplate(v string) *AgentTemplateUpdate {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillablePromptTemplate(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetIconURL sets the "icon_url" field.
func (_u *AgentTemplateUpdate) SetIconURL(v string) *AgentTemplateUpdate {
	_u.mutation.SetIconURL(v)
	return _u
}

// SetNillableIconURL sets the "icon_url" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableIconURL(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetIconURL(*v)
	}
	return _u
}

// ClearIconURL clears the value of the "icon_url" field.
func (_u *AgentTemplateUpdate) ClearIconURL() *AgentTemplateUpdate {
	_u.mutation.ClearIconURL()
	return _u
}

// SetCategory sets the "category" field.
func (_u *AgentTemplateUpdate) SetCategory(v string) *AgentTemplateUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableCategory(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsPremiumOnly sets the "is_premium_only" field.
func (_u *AgentTemplateUpdate) SetIsPremiumOnly(v bool) *AgentTemplateUpdate {
	_u.mutation.SetIsPremiumOnly(v)
	return _u
}

// SetNillableIsPremiumOnly sets the "is_premium_only" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableIsPremiumOnly(v *bool) *AgentTemplateUpdate {
	if v != nil {
		_u.SetIsPremiumOnly(*v)
	}
	return _u
}

// SetVariantType sets the "variant_type" field.
func (_u *AgentTemplateUpdate) SetVariantType(v agenttemplate.VariantType) *AgentTemplateUpdate {
	_u.mutation.SetVariantType(v)
	return _u
}

// SetNillableVariantType sets the "variant_type" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableVariantType(v *agenttemplate.VariantType) *AgentTemplateUpdate {
	if v != nil {
		_u.SetVariantType(*v)
	}
	return _u
}

// SetBaseAgent sets the "base_agent" field.
func (_u *AgentTemplateUpdate) SetBaseAgent(v string) *AgentTemplateUpdate {
	_u.mutation.SetBaseAgent(v)
	return _u
}

// SetNillableBaseAgent sets the "base_agent" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableBaseAgent(v *string) *AgentTemplateUpdate {
	if v != nil {
		_u.SetBaseAgent(*v)
	}
	return _u
}

// ClearBaseAgent clears the value of the "base_agent" field.
func (_u *AgentTemplateUpdate) ClearBaseAgent() *AgentTemplateUpdate {
	_u.mutation.ClearBaseAgent()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentTemplateUpdate) SetIsActive(v bool) *AgentTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentTemplateUpdate) SetNillableIsActive(v *bool) *AgentTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentTemplateUpdate) SetUpdatedAt(v time.Time) *AgentTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUserPreferenceIDs adds the "user_preferences" edge to the UserTemplatePreference entity by IDs.
func (_u *AgentTemplateUpdate) AddUserPreferenceIDs(ids ...int) *AgentTemplateUpdate {
	_u.mutation.AddUserPreferenceIDs(ids...)
	return _u
}

// AddUserPreferences adds the "user_preferences" edges to the UserTemplatePreference entity.
func (_u *AgentTemplateUpdate) AddUserPreferences(v ...*UserTemplatePreference) *AgentTemplateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserPreferenceIDs(ids...)
}

// Mutation returns the AgentTemplateMutation object of the builder.
func (_u *AgentTemplateUpdate) Mutation() *AgentTemplateMutation {
	return _u.mutation
}

// ClearUserPreferences clears all "user_preferences" edges to the UserTemplatePreference entity.
func (_u *AgentTemplateUpdate) ClearUserPreferences() *AgentTemplateUpdate {
	_u.mutation.ClearUserPreferences()
	return _u
}

// RemoveUserPreferenceIDs removes the "user_preferences" edge to UserTemplatePreference entities by IDs.
func (_u *AgentTemplateUpdate) RemoveUserPreferenceIDs(ids ...int) *AgentTemplateUpdate {
	_u.mutation.RemoveUserPreferenceIDs(ids...)
	return _u
}

// RemoveUserPreferences removes "user_preferences" edges to UserTemplatePreference entities.
func (_u *AgentTemplateUpdate) RemoveUserPreferences(v ...*UserTemplatePreference) *AgentTemplateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserPreferenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agenttemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTemplateUpdate) check() error {
	if v, ok := _u.mutation.VariantType(); ok {
		if err := agenttemplate.VariantTypeValidator(v); err != nil {
			return &ValidationError{Name: "variant_type", err: fmt.Errorf(`ent: validator failed for field "AgentTemplate.variant_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttemplate.Table, agenttemplate.Columns, sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(agenttemplate.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agenttemplate.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agenttemplate.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(agenttemplate.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IconURL(); ok {
		_spec.SetField(agenttemplate.FieldIconURL, field.TypeString, value)
	}
	if _u.mutation.IconURLCleared() {
		_spec.ClearField(agenttemplate.FieldIconURL, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(agenttemplate.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPremiumOnly(); ok {
		_spec.SetField(agenttemplate.FieldIsPremiumOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VariantType(); ok {
		_spec.SetField(agenttemplate.FieldVariantType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseAgent(); ok {
		_spec.SetField(agenttemplate.FieldBaseAgent, field.TypeString, value)
	}
	if _u.mutation.BaseAgentCleared() {
		_spec.ClearField(agenttemplate.FieldBaseAgent, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agenttemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agenttemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttemplate.UserPreferencesTable,
			Columns: []string{agenttemplate.UserPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserPreferencesIDs(); len(nodes) > 0 && !_u.mutation.UserPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttemplate.UserPreferencesTable,
			Columns: []string{agenttemplate.UserPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserPreferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttemplate.UserPreferencesTable,
			Columns: []string{agenttemplate.UserPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentTemplateUpdateOne is the builder for updating a single AgentTemplate entity.
type AgentTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentTemplateMutation
}

// SetTemplateName sets the "template_name" field.
func (_u *AgentTemplateUpdateOne) SetTemplateName(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableTemplateName(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentTemplateUpdateOne) SetDisplayName(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableDisplayName(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentTemplateUpdateOne) SetDescription(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableDescription(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *AgentTemplateUpdateOne) SetPromptTemplate(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillablePromptTemplate(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetIconURL sets the "icon_url" field.
func (_u *AgentTemplateUpdateOne) SetIconURL(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetIconURL(v)
	return _u
}

// SetNillableIconURL sets the "icon_url" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableIconURL(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetIconURL(*v)
	}
	return _u
}

// ClearIconURL clears the value of the "icon_url" field.
func (_u *AgentTemplateUpdateOne) ClearIconURL() *AgentTemplateUpdateOne {
	_u.mutation.ClearIconURL()
	return _u
}

// SetCategory sets the "category" field.
func (_u *AgentTemplateUpdateOne) SetCategory(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableCategory(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsPremiumOnly sets the "is_premium_only" field.
func (_u *AgentTemplateUpdateOne) SetIsPremiumOnly(v bool) *AgentTemplateUpdateOne {
	_u.mutation.SetIsPremiumOnly(v)
	return _u
}

// SetNillableIsPremiumOnly sets the "is_premium_only" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableIsPremiumOnly(v *bool) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetIsPremiumOnly(*v)
	}
	return _u
}

// SetVariantType sets the "variant_type" field.
func (_u *AgentTemplateUpdateOne) SetVariantType(v agenttemplate.VariantType) *AgentTemplateUpdateOne {
	_u.mutation.SetVariantType(v)
	return _u
}

// SetNillableVariantType sets the "variant_type" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableVariantType(v *agenttemplate.VariantType) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetVariantType(*v)
	}
	return _u
}

// SetBaseAgent sets the "base_agent" field.
func (_u *AgentTemplateUpdateOne) SetBaseAgent(v string) *AgentTemplateUpdateOne {
	_u.mutation.SetBaseAgent(v)
	return _u
}

// SetNillableBaseAgent sets the "base_agent" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableBaseAgent(v *string) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetBaseAgent(*v)
	}
	return _u
}

// ClearBaseAgent clears the value of the "base_agent" field.
func (_u *AgentTemplateUpdateOne) ClearBaseAgent() *AgentTemplateUpdateOne {
	_u.mutation.ClearBaseAgent()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentTemplateUpdateOne) SetIsActive(v bool) *AgentTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentTemplateUpdateOne) SetNillableIsActive(v *bool) *AgentTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentTemplateUpdateOne) SetUpdatedAt(v time.Time) *AgentTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUserPreferenceIDs adds the "user_preferences" edge to the UserTemplatePreference entity by IDs.
func (_u *AgentTemplateUpdateOne) AddUserPreferenceIDs(ids ...int) *AgentTemplateUpdateOne {
	_u.mutation.AddUserPreferenceIDs(ids...)
	return _u
}

// AddUserPreferences adds the "user_preferences" edges to the UserTemplatePreference entity.
func (_u *AgentTemplateUpdateOne) AddUserPreferences(v ...*UserTemplatePreference) *AgentTemplateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserPreferenceIDs(ids...)
}

// Mutation returns the AgentTemplateMutation object of the builder.
func (_u *AgentTemplateUpdateOne) Mutation() *AgentTemplateMutation {
	return _u.mutation
}

// ClearUserPreferences clears all "user_preferences" edges to the UserTemplatePreference entity.
func (_u *AgentTemplateUpdateOne) ClearUserPreferences() *AgentTemplateUpdateOne {
	_u.mutation.ClearUserPreferences()
	return _u
}

// RemoveUserPreferenceIDs removes the "user_preferences" edge to UserTemplatePreference entities by IDs.
func (_u *AgentTemplateUpdateOne) RemoveUserPreferenceIDs(ids ...int) *AgentTemplateUpdateOne {
	_u.mutation.RemoveUserPreferenceIDs(ids...)
	return _u
}

// RemoveUserPreferences removes "user_preferences" edges to UserTemplatePreference entities.
func (_u *AgentTemplateUpdateOne) RemoveUserPreferences(v ...*UserTemplatePreference) *AgentTemplateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserPreferenceIDs(ids...)
}

// Where appends a list predicates to the AgentTemplateUpdate builder.
func (_u *AgentTemplateUpdateOne) Where(ps ...predicate.AgentTemplate) *AgentTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentTemplateUpdateOne) Select(field string, fields ...string) *AgentTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentTemplate entity.
func (_u *AgentTemplateUpdateOne) Save(ctx context.Context) (*AgentTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTemplateUpdateOne) SaveX(ctx context.Context) *AgentTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agenttemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.VariantType(); ok {
		if err := agenttemplate.VariantTypeValidator(v); err != nil {
			return &ValidationError{Name: "variant_type", err: fmt.Errorf(`ent: validator failed for field "AgentTemplate.variant_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentTemplateUpdateOne) sqlSave(ctx context.Context) (_node *AgentTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttemplate.Table, agenttemplate.Columns, sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttemplate.FieldID)
		for _, f := range fields {
			if !agenttemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttemplate.FieldID {
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
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(agenttemplate.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agenttemplate.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agenttemplate.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(agenttemplate.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IconURL(); ok {
		_spec.SetField(agenttemplate.FieldIconURL, field.TypeString, value)
	}
	if _u.mutation.IconURLCleared() {
		_spec.ClearField(agenttemplate.FieldIconURL, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(agenttemplate.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPremiumOnly(); ok {
		_spec.SetField(agenttemplate.FieldIsPremiumOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VariantType(); ok {
		_spec.SetField(agenttemplate.FieldVariantType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseAgent(); ok {
		_spec.SetField(agenttemplate.FieldBaseAgent, field.TypeString, value)
	}
	if _u.mutation.BaseAgentCleared() {
		_spec.ClearField(agenttemplate.FieldBaseAgent, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agenttemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agenttemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttemplate.UserPreferencesTable,
			Columns: []string{agenttemplate.UserPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserPreferencesIDs(); len(nodes) > 0 && !_u.mutation.UserPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttemplate.UserPreferencesTable,
			Columns: []string{agenttemplate.UserPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserPreferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttemplate.UserPreferencesTable,
			Columns: []string{agenttemplate.UserPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertemplatepreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
