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
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// AgentTemplateCreate is the builder for creating a AgentTemplate entity.
type AgentTemplateCreate struct {
	config
	mutation *AgentTemplateMutation
	hooks    []Hook
}

// SetTemplateName sets the "template_name" field.
func (_c *AgentTemplateCreate) SetTemplateName(v string) *AgentTemplateCreate {
	_c.mutation.SetTemplateName(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *AgentTemplateCreate) SetDisplayName(v string) *AgentTemplateCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentTemplateCreate) SetDescription(v string) *AgentTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetPromptTemplate sets the "prompt_template" field.
func (_c *AgentTemplateCreate) SetPromptTemplate(v string) *AgentTemplateCreate {
	_c.mutation.SetPromptTemplate(v)
	return _c
}

// SetIconURL sets the "icon_url" field.
func (_c *AgentTemplateCreate) SetIconURL(v string) *AgentTemplateCreate {
	_c.mutation.SetIconURL(v)
	return _c
}

// SetNillableIconURL sets the "icon_url" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableIconURL(v *string) *AgentTemplateCreate {
	if v != nil {
		_c.SetIconURL(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *AgentTemplateCreate) SetCategory(v string) *AgentTemplateCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetIsPremiumOnly sets the "is_premium_only" field.
func (_c *AgentTemplateCreate) SetIsPremiumOnly(v bool) *AgentTemplateCreate {
	_c.mutation.SetIsPremiumOnly(v)
	return _c
}

// SetNillableIsPremiumOnly sets the "is_premium_only" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableIsPremiumOnly(v *bool) *AgentTemplateCreate {
	if v != nil {
		_c.SetIsPremiumOnly(*v)
	}
	return _c
}

// SetVariantType sets the "variant_type" field.
func (_c *AgentTemplateCreate) SetVariantType(v agenttemplate.VariantType) *AgentTemplateCreate {
	_c.mutation.SetVariantType(v)
	return _c
}

// SetNillableVariantType sets the "variant_type" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableVariantType(v *agenttemplate.VariantType) *AgentTemplateCreate {
	if v != nil {
		_c.SetVariantType(*v)
	}
	return _c
}

// SetBaseAgent sets the "base_agent" field.
func (_c *AgentTemplateCreate) SetBaseAgent(v string) *AgentTemplateCreate {
	_c.mutation.SetBaseAgent(v)
	return _c
}

// SetNillableBaseAgent sets the "base_agent" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableBaseAgent(v *string) *AgentTemplateCreate {
	if v != nil {
		_c.SetBaseAgent(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AgentTemplateCreate) SetIsActive(v bool) *AgentTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableIsActive(v *bool) *AgentTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentTemplateCreate) SetCreatedAt(v time.Time) *AgentTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableCreatedAt(v *time.Time) *AgentTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentTemplateCreate) SetUpdatedAt(v time.Time) *AgentTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentTemplateCreate) SetNillableUpdatedAt(v *time.Time) *AgentTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddUserPreferenceIDs adds the "user_preferences" edge to the UserTemplatePreference entity by IDs.
func (_c *AgentTemplateCreate) AddUserPreferenceIDs(ids ...int) *AgentTemplateCreate {
	_c.mutation.AddUserPreferenceIDs(ids...)
	return _c
}

// AddUserPreferences adds the "user_preferences" edges to the UserTemplatePreference entity.
func (_c *AgentTemplateCreate) AddUserPreferences(v ...*UserTemplatePreference) *AgentTemplateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserPreferenceIDs(ids...)
}

// Mutation returns the AgentTemplateMutation object of the builder.
func (_c *AgentTemplateCreate) Mutation() *AgentTemplateMutation {
	return _c.mutation
}

// Save creates the AgentTemplate in the database.
func (_c *AgentTemplateCreate) Save(ctx context.Context) (*AgentTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentTemplateCreate) SaveX(ctx context.Context) *AgentTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentTemplateCreate) defaults() {
	if _, ok := _c.mutation.IsPremiumOnly(); !ok {
		v := agenttemplate.DefaultIsPremiumOnly
		_c.mutation.SetIsPremiumOnly(v)
	}
	if _, ok := _c.mutation.VariantType(); !ok {
		v := agenttemplate.DefaultVariantType
		_c.mutation.SetVariantType(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := agenttemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agenttemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agenttemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentTemplateCreate) check() error {
	if _, ok := _c.mutation.TemplateName(); !ok {
		return &ValidationError{Name: "template_name", err: errors.New(`ent: missing required field "AgentTemplate.template_name"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "AgentTemplate.display_name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "AgentTemplate.description"`)}
	}
	if _, ok := _c.mutation.PromptTemplate(); !ok {
		return &ValidationError{Name: "prompt_template", err: errors.New(`ent: missing required field "AgentTemplate.prompt_template"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AgentTemplate.category"`)}
	}
	if _, ok := _c.mutation.IsPremiumOnly(); !ok {
		return &ValidationError{Name: "is_premium_only", err: errors.New(`ent: missing required field "AgentTemplate.is_premium_only"`)}
	}
	if _, ok := _c.mutation.VariantType(); !ok {
		return &ValidationError{Name: "variant_type", err: errors.New(`ent: missing required field "AgentTemplate.variant_type"`)}
	}
	if v, ok := _c.mutation.VariantType(); ok {
		if err := agenttemplate.VariantTypeValidator(v); err != nil {
			return &ValidationError{Name: "variant_type", err: fmt.Errorf(`ent: validator failed for field "AgentTemplate.variant_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AgentTemplate.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentTemplate.updated_at"`)}
	}
	return nil
}

func (_c *AgentTemplateCreate) sqlSave(ctx context.Context) (*AgentTemplate, error) {
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

func (_c *AgentTemplateCreate) createSpec() (*AgentTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenttemplate.Table, sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TemplateName(); ok {
		_spec.SetField(agenttemplate.FieldTemplateName, field.TypeString, value)
		_node.TemplateName = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(agenttemplate.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agenttemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PromptTemplate(); ok {
		_spec.SetField(agenttemplate.FieldPromptTemplate, field.TypeString, value)
		_node.PromptTemplate = value
	}
	if value, ok := _c.mutation.IconURL(); ok {
		_spec.SetField(agenttemplate.FieldIconURL, field.TypeString, value)
		_node.IconURL = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(agenttemplate.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.IsPremiumOnly(); ok {
		_spec.SetField(agenttemplate.FieldIsPremiumOnly, field.TypeBool, value)
		_node.IsPremiumOnly = value
	}
	if value, ok := _c.mutation.VariantType(); ok {
		_spec.SetField(agenttemplate.FieldVariantType, field.TypeEnum, value)
		_node.VariantType = value
	}
	if value, ok := _c.mutation.BaseAgent(); ok {
		_spec.SetField(agenttemplate.FieldBaseAgent, field.TypeString, value)
		_node.BaseAgent = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(agenttemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agenttemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agenttemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserPreferencesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentTemplateCreateBulk is the builder for creating many AgentTemplate entities in bulk.
type AgentTemplateCreateBulk struct {
	config
	err      error
	builders []*AgentTemplateCreate
}

// Save creates the AgentTemplate entities in the database.
func (_c *AgentTemplateCreateBulk) Save(ctx context.Context) ([]*AgentTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentTemplateMutation)
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
func (_c *AgentTemplateCreateBulk) SaveX(ctx context.Context) []*AgentTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
