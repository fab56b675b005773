// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/chat"
	"github.com/autoanalyst/analyst/ent/codeexecution"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/event"
	"github.com/autoanalyst/analyst/ent/message"
	"github.com/autoanalyst/analyst/ent/messagefeedback"
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/predicate"
	"github.com/autoanalyst/analyst/ent/user"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentTemplate          = "AgentTemplate"
	TypeChat                   = "Chat"
	TypeCodeExecution          = "CodeExecution"
	TypeDeepAnalysisReport     = "DeepAnalysisReport"
	TypeEvent                  = "Event"
	TypeMessage                = "Message"
	TypeMessageFeedback        = "MessageFeedback"
	TypeModelUsage             = "ModelUsage"
	TypeUser                   = "User"
	TypeUserTemplatePreference = "UserTemplatePreference"
)

// AgentTemplateMutation represents an operation that mutates the AgentTemplate nodes in the graph.
type AgentTemplateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	template_name           *string
	display_name            *string
	description             *string
	prompt_template         *string
	icon_url                *string
	category                *string
	is_premium_only         *bool
	variant_type            *agenttemplate.VariantType
	base_agent              *string
	is_active               *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	user_preferences        map[int]struct{}
	removeduser_preferences map[int]struct{}
	cleareduser_preferences bool
	done                    bool
	oldValue                func(context.Context) (*AgentTemplate, error)
	predicates              []predicate.AgentTemplate
}

var _ ent.Mutation = (*AgentTemplateMutation)(nil)

// agenttemplateOption allows management of the mutation configuration using functional options.
type agenttemplateOption func(*AgentTemplateMutation)

// newAgentTemplateMutation creates new mutation for the AgentTemplate entity.
func newAgentTemplateMutation(c config, op Op, opts ...agenttemplateOption) *AgentTemplateMutation {
	m := &AgentTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentTemplateID sets the ID field of the mutation.
func withAgentTemplateID(id int) agenttemplateOption {
	return func(m *AgentTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentTemplate
		)
		m.oldValue = func(ctx context.Context) (*AgentTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentTemplate sets the old AgentTemplate of the mutation.
func withAgentTemplate(node *AgentTemplate) agenttemplateOption {
	return func(m *AgentTemplateMutation) {
		m.oldValue = func(context.Context) (*AgentTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentTemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentTemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateName sets the "template_name" field.
func (m *AgentTemplateMutation) SetTemplateName(s string) {
	m.template_name = &s
}

// TemplateName returns the value of the "template_name" field in the mutation.
func (m *AgentTemplateMutation) TemplateName() (r string, exists bool) {
	v := m.template_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateName returns the old "template_name" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldTemplateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateName: %w", err)
	}
	return oldValue.TemplateName, nil
}

// ResetTemplateName resets all changes to the "template_name" field.
func (m *AgentTemplateMutation) ResetTemplateName() {
	m.template_name = nil
}

// SetDisplayName sets the "display_name" field.
func (m *AgentTemplateMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AgentTemplateMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AgentTemplateMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetDescription sets the "description" field.
func (m *AgentTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentTemplateMutation) ResetDescription() {
	m.description = nil
}

// SetPromptTemplate sets the "prompt_template" field.
func (m *AgentTemplateMutation) SetPromptTemplate(s string) {
	m.prompt_template = &s
}

// PromptTemplate returns the value of the "prompt_template" field in the mutation.
func (m *AgentTemplateMutation) PromptTemplate() (r string, exists bool) {
	v := m.prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplate returns the old "prompt_template" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplate: %w", err)
	}
	return oldValue.PromptTemplate, nil
}

// ResetPromptTemplate resets all changes to the "prompt_template" field.
func (m *AgentTemplateMutation) ResetPromptTemplate() {
	m.prompt_template = nil
}

// SetIconURL sets the "icon_url" field.
func (m *AgentTemplateMutation) SetIconURL(s string) {
	m.icon_url = &s
}

// IconURL returns the value of the "icon_url" field in the mutation.
func (m *AgentTemplateMutation) IconURL() (r string, exists bool) {
	v := m.icon_url
	if v == nil {
		return
	}
	return *v, true
}

// OldIconURL returns the old "icon_url" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldIconURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIconURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIconURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIconURL: %w", err)
	}
	return oldValue.IconURL, nil
}

// ClearIconURL clears the value of the "icon_url" field.
func (m *AgentTemplateMutation) ClearIconURL() {
	m.icon_url = nil
	m.clearedFields[agenttemplate.FieldIconURL] = struct{}{}
}

// IconURLCleared returns if the "icon_url" field was cleared in this mutation.
func (m *AgentTemplateMutation) IconURLCleared() bool {
	_, ok := m.clearedFields[agenttemplate.FieldIconURL]
	return ok
}

// ResetIconURL resets all changes to the "icon_url" field.
func (m *AgentTemplateMutation) ResetIconURL() {
	m.icon_url = nil
	delete(m.clearedFields, agenttemplate.FieldIconURL)
}

// SetCategory sets the "category" field.
func (m *AgentTemplateMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AgentTemplateMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AgentTemplateMutation) ResetCategory() {
	m.category = nil
}

// SetIsPremiumOnly sets the "is_premium_only" field.
func (m *AgentTemplateMutation) SetIsPremiumOnly(b bool) {
	m.is_premium_only = &b
}

// IsPremiumOnly returns the value of the "is_premium_only" field in the mutation.
func (m *AgentTemplateMutation) IsPremiumOnly() (r bool, exists bool) {
	v := m.is_premium_only
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPremiumOnly returns the old "is_premium_only" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldIsPremiumOnly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPremiumOnly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPremiumOnly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPremiumOnly: %w", err)
	}
	return oldValue.IsPremiumOnly, nil
}

// ResetIsPremiumOnly resets all changes to the "is_premium_only" field.
func (m *AgentTemplateMutation) ResetIsPremiumOnly() {
	m.is_premium_only = nil
}

// SetVariantType sets the "variant_type" field.
func (m *AgentTemplateMutation) SetVariantType(at agenttemplate.VariantType) {
	m.variant_type = &at
}

// VariantType returns the value of the "variant_type" field in the mutation.
func (m *AgentTemplateMutation) VariantType() (r agenttemplate.VariantType, exists bool) {
	v := m.variant_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantType returns the old "variant_type" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldVariantType(ctx context.Context) (v agenttemplate.VariantType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantType: %w", err)
	}
	return oldValue.VariantType, nil
}

// ResetVariantType resets all changes to the "variant_type" field.
func (m *AgentTemplateMutation) ResetVariantType() {
	m.variant_type = nil
}

// SetBaseAgent sets the "base_agent" field.
func (m *AgentTemplateMutation) SetBaseAgent(s string) {
	m.base_agent = &s
}

// BaseAgent returns the value of the "base_agent" field in the mutation.
func (m *AgentTemplateMutation) BaseAgent() (r string, exists bool) {
	v := m.base_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseAgent returns the old "base_agent" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldBaseAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseAgent: %w", err)
	}
	return oldValue.BaseAgent, nil
}

// ClearBaseAgent clears the value of the "base_agent" field.
func (m *AgentTemplateMutation) ClearBaseAgent() {
	m.base_agent = nil
	m.clearedFields[agenttemplate.FieldBaseAgent] = struct{}{}
}

// BaseAgentCleared returns if the "base_agent" field was cleared in this mutation.
func (m *AgentTemplateMutation) BaseAgentCleared() bool {
	_, ok := m.clearedFields[agenttemplate.FieldBaseAgent]
	return ok
}

// ResetBaseAgent resets all changes to the "base_agent" field.
func (m *AgentTemplateMutation) ResetBaseAgent() {
	m.base_agent = nil
	delete(m.clearedFields, agenttemplate.FieldBaseAgent)
}

// SetIsActive sets the "is_active" field.
func (m *AgentTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AgentTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AgentTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentTemplate entity.
// If the AgentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUserPreferenceIDs adds the "user_preferences" edge to the UserTemplatePreference entity by ids.
func (m *AgentTemplateMutation) AddUserPreferenceIDs(ids ...int) {
	if m.user_preferences == nil {
		m.user_preferences = make(map[int]struct{})
	}
	for i := range ids {
		m.user_preferences[ids[i]] = struct{}{}
	}
}

// ClearUserPreferences clears the "user_preferences" edge to the UserTemplatePreference entity.
func (m *AgentTemplateMutation) ClearUserPreferences() {
	m.cleareduser_preferences = true
}

// UserPreferencesCleared reports if the "user_preferences" edge to the UserTemplatePreference entity was cleared.
func (m *AgentTemplateMutation) UserPreferencesCleared() bool {
	return m.cleareduser_preferences
}

// RemoveUserPreferenceIDs removes the "user_preferences" edge to the UserTemplatePreference entity by IDs.
func (m *AgentTemplateMutation) RemoveUserPreferenceIDs(ids ...int) {
	if m.removeduser_preferences == nil {
		m.removeduser_preferences = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.user_preferences, ids[i])
		m.removeduser_preferences[ids[i]] = struct{}{}
	}
}

// RemovedUserPreferences returns the removed IDs of the "user_preferences" edge to the UserTemplatePreference entity.
func (m *AgentTemplateMutation) RemovedUserPreferencesIDs() (ids []int) {
	for id := range m.removeduser_preferences {
		ids = append(ids, id)
	}
	return
}

// UserPreferencesIDs returns the "user_preferences" edge IDs in the mutation.
func (m *AgentTemplateMutation) UserPreferencesIDs() (ids []int) {
	for id := range m.user_preferences {
		ids = append(ids, id)
	}
	return
}

// ResetUserPreferences resets all changes to the "user_preferences" edge.
func (m *AgentTemplateMutation) ResetUserPreferences() {
	m.user_preferences = nil
	m.cleareduser_preferences = false
	m.removeduser_preferences = nil
}

// Where appends a list predicates to the AgentTemplateMutation builder.
func (m *AgentTemplateMutation) Where(ps ...predicate.AgentTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentTemplate).
func (m *AgentTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentTemplateMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.template_name != nil {
		fields = append(fields, agenttemplate.FieldTemplateName)
	}
	if m.display_name != nil {
		fields = append(fields, agenttemplate.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, agenttemplate.FieldDescription)
	}
	if m.prompt_template != nil {
		fields = append(fields, agenttemplate.FieldPromptTemplate)
	}
	if m.icon_url != nil {
		fields = append(fields, agenttemplate.FieldIconURL)
	}
	if m.category != nil {
		fields = append(fields, agenttemplate.FieldCategory)
	}
	if m.is_premium_only != nil {
		fields = append(fields, agenttemplate.FieldIsPremiumOnly)
	}
	if m.variant_type != nil {
		fields = append(fields, agenttemplate.FieldVariantType)
	}
	if m.base_agent != nil {
		fields = append(fields, agenttemplate.FieldBaseAgent)
	}
	if m.is_active != nil {
		fields = append(fields, agenttemplate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, agenttemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agenttemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttemplate.FieldTemplateName:
		return m.TemplateName()
	case agenttemplate.FieldDisplayName:
		return m.DisplayName()
	case agenttemplate.FieldDescription:
		return m.Description()
	case agenttemplate.FieldPromptTemplate:
		return m.PromptTemplate()
	case agenttemplate.FieldIconURL:
		return m.IconURL()
	case agenttemplate.FieldCategory:
		return m.Category()
	case agenttemplate.FieldIsPremiumOnly:
		return m.IsPremiumOnly()
	case agenttemplate.FieldVariantType:
		return m.VariantType()
	case agenttemplate.FieldBaseAgent:
		return m.BaseAgent()
	case agenttemplate.FieldIsActive:
		return m.IsActive()
	case agenttemplate.FieldCreatedAt:
		return m.CreatedAt()
	case agenttemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttemplate.FieldTemplateName:
		return m.OldTemplateName(ctx)
	case agenttemplate.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case agenttemplate.FieldDescription:
		return m.OldDescription(ctx)
	case agenttemplate.FieldPromptTemplate:
		return m.OldPromptTemplate(ctx)
	case agenttemplate.FieldIconURL:
		return m.OldIconURL(ctx)
	case agenttemplate.FieldCategory:
		return m.OldCategory(ctx)
	case agenttemplate.FieldIsPremiumOnly:
		return m.OldIsPremiumOnly(ctx)
	case agenttemplate.FieldVariantType:
		return m.OldVariantType(ctx)
	case agenttemplate.FieldBaseAgent:
		return m.OldBaseAgent(ctx)
	case agenttemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case agenttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agenttemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttemplate.FieldTemplateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateName(v)
		return nil
	case agenttemplate.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case agenttemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agenttemplate.FieldPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplate(v)
		return nil
	case agenttemplate.FieldIconURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIconURL(v)
		return nil
	case agenttemplate.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case agenttemplate.FieldIsPremiumOnly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPremiumOnly(v)
		return nil
	case agenttemplate.FieldVariantType:
		v, ok := value.(agenttemplate.VariantType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantType(v)
		return nil
	case agenttemplate.FieldBaseAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseAgent(v)
		return nil
	case agenttemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case agenttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agenttemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttemplate.FieldIconURL) {
		fields = append(fields, agenttemplate.FieldIconURL)
	}
	if m.FieldCleared(agenttemplate.FieldBaseAgent) {
		fields = append(fields, agenttemplate.FieldBaseAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentTemplateMutation) ClearField(name string) error {
	switch name {
	case agenttemplate.FieldIconURL:
		m.ClearIconURL()
		return nil
	case agenttemplate.FieldBaseAgent:
		m.ClearBaseAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentTemplateMutation) ResetField(name string) error {
	switch name {
	case agenttemplate.FieldTemplateName:
		m.ResetTemplateName()
		return nil
	case agenttemplate.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case agenttemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case agenttemplate.FieldPromptTemplate:
		m.ResetPromptTemplate()
		return nil
	case agenttemplate.FieldIconURL:
		m.ResetIconURL()
		return nil
	case agenttemplate.FieldCategory:
		m.ResetCategory()
		return nil
	case agenttemplate.FieldIsPremiumOnly:
		m.ResetIsPremiumOnly()
		return nil
	case agenttemplate.FieldVariantType:
		m.ResetVariantType()
		return nil
	case agenttemplate.FieldBaseAgent:
		m.ResetBaseAgent()
		return nil
	case agenttemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case agenttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agenttemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user_preferences != nil {
		edges = append(edges, agenttemplate.EdgeUserPreferences)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttemplate.EdgeUserPreferences:
		ids := make([]ent.Value, 0, len(m.user_preferences))
		for id := range m.user_preferences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeduser_preferences != nil {
		edges = append(edges, agenttemplate.EdgeUserPreferences)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agenttemplate.EdgeUserPreferences:
		ids := make([]ent.Value, 0, len(m.removeduser_preferences))
		for id := range m.removeduser_preferences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser_preferences {
		edges = append(edges, agenttemplate.EdgeUserPreferences)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttemplate.EdgeUserPreferences:
		return m.cleareduser_preferences
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentTemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentTemplateMutation) ResetEdge(name string) error {
	switch name {
	case agenttemplate.EdgeUserPreferences:
		m.ResetUserPreferences()
		return nil
	}
	return fmt.Errorf("unknown AgentTemplate edge %s", name)
}

// ChatMutation represents an operation that mutates the Chat nodes in the graph.
type ChatMutation struct {
	config
	op              Op
	typ             string
	id              *int
	title           *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	user            *int
	cleareduser     bool
	messages        map[int]struct{}
	removedmessages map[int]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*Chat, error)
	predicates      []predicate.Chat
}

var _ ent.Mutation = (*ChatMutation)(nil)

// chatOption allows management of the mutation configuration using functional options.
type chatOption func(*ChatMutation)

// newChatMutation creates new mutation for the Chat entity.
func newChatMutation(c config, op Op, opts ...chatOption) *ChatMutation {
	m := &ChatMutation{
		config:        c,
		op:            op,
		typ:           TypeChat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatID sets the ID field of the mutation.
func withChatID(id int) chatOption {
	return func(m *ChatMutation) {
		var (
			err   error
			once  sync.Once
			value *Chat
		)
		m.oldValue = func(ctx context.Context) (*Chat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChat sets the old Chat of the mutation.
func withChat(node *Chat) chatOption {
	return func(m *ChatMutation) {
		m.oldValue = func(context.Context) (*Chat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ChatMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatMutation) ResetTitle() {
	m.title = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ChatMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[chat.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ChatMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[chat.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, chat.FieldUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ChatMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[chat.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ChatMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ChatMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ChatMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ChatMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ChatMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ChatMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ChatMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ChatMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChatMutation builder.
func (m *ChatMutation) Where(ps ...predicate.Chat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chat).
func (m *ChatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.title != nil {
		fields = append(fields, chat.FieldTitle)
	}
	if m.user != nil {
		fields = append(fields, chat.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, chat.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldTitle:
		return m.Title()
	case chat.FieldUserID:
		return m.UserID()
	case chat.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chat.FieldTitle:
		return m.OldTitle(ctx)
	case chat.FieldUserID:
		return m.OldUserID(ctx)
	case chat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chat.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chat.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Chat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chat.FieldUserID) {
		fields = append(fields, chat.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMutation) ClearField(name string) error {
	switch name {
	case chat.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown Chat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMutation) ResetField(name string) error {
	switch name {
	case chat.FieldTitle:
		m.ResetTitle()
		return nil
	case chat.FieldUserID:
		m.ResetUserID()
		return nil
	case chat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, chat.EdgeUser)
	}
	if m.messages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, chat.EdgeUser)
	}
	if m.clearedmessages {
		edges = append(edges, chat.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMutation) EdgeCleared(name string) bool {
	switch name {
	case chat.EdgeUser:
		return m.cleareduser
	case chat.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMutation) ClearEdge(name string) error {
	switch name {
	case chat.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Chat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMutation) ResetEdge(name string) error {
	switch name {
	case chat.EdgeUser:
		m.ResetUser()
		return nil
	case chat.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Chat edge %s", name)
}

// CodeExecutionMutation represents an operation that mutates the CodeExecution nodes in the graph.
type CodeExecutionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *int
	adduser_id          *int
	chat_id             *int
	addchat_id          *int
	message_id          *int
	addmessage_id       *int
	initial_code        *string
	latest_code         *string
	is_successful       *bool
	failed_agents       *[]string
	appendfailed_agents []string
	error_messages      *map[string]string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*CodeExecution, error)
	predicates          []predicate.CodeExecution
}

var _ ent.Mutation = (*CodeExecutionMutation)(nil)

// codeexecutionOption allows management of the mutation configuration using functional options.
type codeexecutionOption func(*CodeExecutionMutation)

// newCodeExecutionMutation creates new mutation for the CodeExecution entity.
func newCodeExecutionMutation(c config, op Op, opts ...codeexecutionOption) *CodeExecutionMutation {
	m := &CodeExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeExecutionID sets the ID field of the mutation.
func withCodeExecutionID(id int) codeexecutionOption {
	return func(m *CodeExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeExecution
		)
		m.oldValue = func(ctx context.Context) (*CodeExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeExecution sets the old CodeExecution of the mutation.
func withCodeExecution(node *CodeExecution) codeexecutionOption {
	return func(m *CodeExecutionMutation) {
		m.oldValue = func(context.Context) (*CodeExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CodeExecutionMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CodeExecutionMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *CodeExecutionMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *CodeExecutionMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearUserID clears the value of the "user_id" field.
func (m *CodeExecutionMutation) ClearUserID() {
	m.user_id = nil
	m.adduser_id = nil
	m.clearedFields[codeexecution.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *CodeExecutionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CodeExecutionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
	delete(m.clearedFields, codeexecution.FieldUserID)
}

// SetChatID sets the "chat_id" field.
func (m *CodeExecutionMutation) SetChatID(i int) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *CodeExecutionMutation) ChatID() (r int, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldChatID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *CodeExecutionMutation) AddChatID(i int) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *CodeExecutionMutation) AddedChatID() (r int, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearChatID clears the value of the "chat_id" field.
func (m *CodeExecutionMutation) ClearChatID() {
	m.chat_id = nil
	m.addchat_id = nil
	m.clearedFields[codeexecution.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *CodeExecutionMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *CodeExecutionMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
	delete(m.clearedFields, codeexecution.FieldChatID)
}

// SetMessageID sets the "message_id" field.
func (m *CodeExecutionMutation) SetMessageID(i int) {
	m.message_id = &i
	m.addmessage_id = nil
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *CodeExecutionMutation) MessageID() (r int, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldMessageID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// AddMessageID adds i to the "message_id" field.
func (m *CodeExecutionMutation) AddMessageID(i int) {
	if m.addmessage_id != nil {
		*m.addmessage_id += i
	} else {
		m.addmessage_id = &i
	}
}

// AddedMessageID returns the value that was added to the "message_id" field in this mutation.
func (m *CodeExecutionMutation) AddedMessageID() (r int, exists bool) {
	v := m.addmessage_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMessageID clears the value of the "message_id" field.
func (m *CodeExecutionMutation) ClearMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
	m.clearedFields[codeexecution.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *CodeExecutionMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *CodeExecutionMutation) ResetMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
	delete(m.clearedFields, codeexecution.FieldMessageID)
}

// SetInitialCode sets the "initial_code" field.
func (m *CodeExecutionMutation) SetInitialCode(s string) {
	m.initial_code = &s
}

// InitialCode returns the value of the "initial_code" field in the mutation.
func (m *CodeExecutionMutation) InitialCode() (r string, exists bool) {
	v := m.initial_code
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialCode returns the old "initial_code" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldInitialCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialCode: %w", err)
	}
	return oldValue.InitialCode, nil
}

// ClearInitialCode clears the value of the "initial_code" field.
func (m *CodeExecutionMutation) ClearInitialCode() {
	m.initial_code = nil
	m.clearedFields[codeexecution.FieldInitialCode] = struct{}{}
}

// InitialCodeCleared returns if the "initial_code" field was cleared in this mutation.
func (m *CodeExecutionMutation) InitialCodeCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldInitialCode]
	return ok
}

// ResetInitialCode resets all changes to the "initial_code" field.
func (m *CodeExecutionMutation) ResetInitialCode() {
	m.initial_code = nil
	delete(m.clearedFields, codeexecution.FieldInitialCode)
}

// SetLatestCode sets the "latest_code" field.
func (m *CodeExecutionMutation) SetLatestCode(s string) {
	m.latest_code = &s
}

// LatestCode returns the value of the "latest_code" field in the mutation.
func (m *CodeExecutionMutation) LatestCode() (r string, exists bool) {
	v := m.latest_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestCode returns the old "latest_code" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldLatestCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestCode: %w", err)
	}
	return oldValue.LatestCode, nil
}

// ClearLatestCode clears the value of the "latest_code" field.
func (m *CodeExecutionMutation) ClearLatestCode() {
	m.latest_code = nil
	m.clearedFields[codeexecution.FieldLatestCode] = struct{}{}
}

// LatestCodeCleared returns if the "latest_code" field was cleared in this mutation.
func (m *CodeExecutionMutation) LatestCodeCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldLatestCode]
	return ok
}

// ResetLatestCode resets all changes to the "latest_code" field.
func (m *CodeExecutionMutation) ResetLatestCode() {
	m.latest_code = nil
	delete(m.clearedFields, codeexecution.FieldLatestCode)
}

// SetIsSuccessful sets the "is_successful" field.
func (m *CodeExecutionMutation) SetIsSuccessful(b bool) {
	m.is_successful = &b
}

// IsSuccessful returns the value of the "is_successful" field in the mutation.
func (m *CodeExecutionMutation) IsSuccessful() (r bool, exists bool) {
	v := m.is_successful
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuccessful returns the old "is_successful" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldIsSuccessful(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuccessful is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuccessful requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuccessful: %w", err)
	}
	return oldValue.IsSuccessful, nil
}

// ClearIsSuccessful clears the value of the "is_successful" field.
func (m *CodeExecutionMutation) ClearIsSuccessful() {
	m.is_successful = nil
	m.clearedFields[codeexecution.FieldIsSuccessful] = struct{}{}
}

// IsSuccessfulCleared returns if the "is_successful" field was cleared in this mutation.
func (m *CodeExecutionMutation) IsSuccessfulCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldIsSuccessful]
	return ok
}

// ResetIsSuccessful resets all changes to the "is_successful" field.
func (m *CodeExecutionMutation) ResetIsSuccessful() {
	m.is_successful = nil
	delete(m.clearedFields, codeexecution.FieldIsSuccessful)
}

// SetFailedAgents sets the "failed_agents" field.
func (m *CodeExecutionMutation) SetFailedAgents(s []string) {
	m.failed_agents = &s
	m.appendfailed_agents = nil
}

// FailedAgents returns the value of the "failed_agents" field in the mutation.
func (m *CodeExecutionMutation) FailedAgents() (r []string, exists bool) {
	v := m.failed_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAgents returns the old "failed_agents" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldFailedAgents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAgents: %w", err)
	}
	return oldValue.FailedAgents, nil
}

// AppendFailedAgents adds s to the "failed_agents" field.
func (m *CodeExecutionMutation) AppendFailedAgents(s []string) {
	m.appendfailed_agents = append(m.appendfailed_agents, s...)
}

// AppendedFailedAgents returns the list of values that were appended to the "failed_agents" field in this mutation.
func (m *CodeExecutionMutation) AppendedFailedAgents() ([]string, bool) {
	if len(m.appendfailed_agents) == 0 {
		return nil, false
	}
	return m.appendfailed_agents, true
}

// ClearFailedAgents clears the value of the "failed_agents" field.
func (m *CodeExecutionMutation) ClearFailedAgents() {
	m.failed_agents = nil
	m.appendfailed_agents = nil
	m.clearedFields[codeexecution.FieldFailedAgents] = struct{}{}
}

// FailedAgentsCleared returns if the "failed_agents" field was cleared in this mutation.
func (m *CodeExecutionMutation) FailedAgentsCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldFailedAgents]
	return ok
}

// ResetFailedAgents resets all changes to the "failed_agents" field.
func (m *CodeExecutionMutation) ResetFailedAgents() {
	m.failed_agents = nil
	m.appendfailed_agents = nil
	delete(m.clearedFields, codeexecution.FieldFailedAgents)
}

// SetErrorMessages sets the "error_messages" field.
func (m *CodeExecutionMutation) SetErrorMessages(value map[string]string) {
	m.error_messages = &value
}

// ErrorMessages returns the value of the "error_messages" field in the mutation.
func (m *CodeExecutionMutation) ErrorMessages() (r map[string]string, exists bool) {
	v := m.error_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessages returns the old "error_messages" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldErrorMessages(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessages: %w", err)
	}
	return oldValue.ErrorMessages, nil
}

// ClearErrorMessages clears the value of the "error_messages" field.
func (m *CodeExecutionMutation) ClearErrorMessages() {
	m.error_messages = nil
	m.clearedFields[codeexecution.FieldErrorMessages] = struct{}{}
}

// ErrorMessagesCleared returns if the "error_messages" field was cleared in this mutation.
func (m *CodeExecutionMutation) ErrorMessagesCleared() bool {
	_, ok := m.clearedFields[codeexecution.FieldErrorMessages]
	return ok
}

// ResetErrorMessages resets all changes to the "error_messages" field.
func (m *CodeExecutionMutation) ResetErrorMessages() {
	m.error_messages = nil
	delete(m.clearedFields, codeexecution.FieldErrorMessages)
}

// SetCreatedAt sets the "created_at" field.
func (m *CodeExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CodeExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CodeExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CodeExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CodeExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CodeExecution entity.
// If the CodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CodeExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CodeExecutionMutation builder.
func (m *CodeExecutionMutation) Where(ps ...predicate.CodeExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeExecution).
func (m *CodeExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, codeexecution.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, codeexecution.FieldChatID)
	}
	if m.message_id != nil {
		fields = append(fields, codeexecution.FieldMessageID)
	}
	if m.initial_code != nil {
		fields = append(fields, codeexecution.FieldInitialCode)
	}
	if m.latest_code != nil {
		fields = append(fields, codeexecution.FieldLatestCode)
	}
	if m.is_successful != nil {
		fields = append(fields, codeexecution.FieldIsSuccessful)
	}
	if m.failed_agents != nil {
		fields = append(fields, codeexecution.FieldFailedAgents)
	}
	if m.error_messages != nil {
		fields = append(fields, codeexecution.FieldErrorMessages)
	}
	if m.created_at != nil {
		fields = append(fields, codeexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, codeexecution.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codeexecution.FieldUserID:
		return m.UserID()
	case codeexecution.FieldChatID:
		return m.ChatID()
	case codeexecution.FieldMessageID:
		return m.MessageID()
	case codeexecution.FieldInitialCode:
		return m.InitialCode()
	case codeexecution.FieldLatestCode:
		return m.LatestCode()
	case codeexecution.FieldIsSuccessful:
		return m.IsSuccessful()
	case codeexecution.FieldFailedAgents:
		return m.FailedAgents()
	case codeexecution.FieldErrorMessages:
		return m.ErrorMessages()
	case codeexecution.FieldCreatedAt:
		return m.CreatedAt()
	case codeexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codeexecution.FieldUserID:
		return m.OldUserID(ctx)
	case codeexecution.FieldChatID:
		return m.OldChatID(ctx)
	case codeexecution.FieldMessageID:
		return m.OldMessageID(ctx)
	case codeexecution.FieldInitialCode:
		return m.OldInitialCode(ctx)
	case codeexecution.FieldLatestCode:
		return m.OldLatestCode(ctx)
	case codeexecution.FieldIsSuccessful:
		return m.OldIsSuccessful(ctx)
	case codeexecution.FieldFailedAgents:
		return m.OldFailedAgents(ctx)
	case codeexecution.FieldErrorMessages:
		return m.OldErrorMessages(ctx)
	case codeexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case codeexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CodeExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codeexecution.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case codeexecution.FieldChatID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case codeexecution.FieldMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case codeexecution.FieldInitialCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialCode(v)
		return nil
	case codeexecution.FieldLatestCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestCode(v)
		return nil
	case codeexecution.FieldIsSuccessful:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuccessful(v)
		return nil
	case codeexecution.FieldFailedAgents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAgents(v)
		return nil
	case codeexecution.FieldErrorMessages:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessages(v)
		return nil
	case codeexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case codeexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CodeExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeExecutionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, codeexecution.FieldUserID)
	}
	if m.addchat_id != nil {
		fields = append(fields, codeexecution.FieldChatID)
	}
	if m.addmessage_id != nil {
		fields = append(fields, codeexecution.FieldMessageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codeexecution.FieldUserID:
		return m.AddedUserID()
	case codeexecution.FieldChatID:
		return m.AddedChatID()
	case codeexecution.FieldMessageID:
		return m.AddedMessageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codeexecution.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case codeexecution.FieldChatID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case codeexecution.FieldMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageID(v)
		return nil
	}
	return fmt.Errorf("unknown CodeExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codeexecution.FieldUserID) {
		fields = append(fields, codeexecution.FieldUserID)
	}
	if m.FieldCleared(codeexecution.FieldChatID) {
		fields = append(fields, codeexecution.FieldChatID)
	}
	if m.FieldCleared(codeexecution.FieldMessageID) {
		fields = append(fields, codeexecution.FieldMessageID)
	}
	if m.FieldCleared(codeexecution.FieldInitialCode) {
		fields = append(fields, codeexecution.FieldInitialCode)
	}
	if m.FieldCleared(codeexecution.FieldLatestCode) {
		fields = append(fields, codeexecution.FieldLatestCode)
	}
	if m.FieldCleared(codeexecution.FieldIsSuccessful) {
		fields = append(fields, codeexecution.FieldIsSuccessful)
	}
	if m.FieldCleared(codeexecution.FieldFailedAgents) {
		fields = append(fields, codeexecution.FieldFailedAgents)
	}
	if m.FieldCleared(codeexecution.FieldErrorMessages) {
		fields = append(fields, codeexecution.FieldErrorMessages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeExecutionMutation) ClearField(name string) error {
	switch name {
	case codeexecution.FieldUserID:
		m.ClearUserID()
		return nil
	case codeexecution.FieldChatID:
		m.ClearChatID()
		return nil
	case codeexecution.FieldMessageID:
		m.ClearMessageID()
		return nil
	case codeexecution.FieldInitialCode:
		m.ClearInitialCode()
		return nil
	case codeexecution.FieldLatestCode:
		m.ClearLatestCode()
		return nil
	case codeexecution.FieldIsSuccessful:
		m.ClearIsSuccessful()
		return nil
	case codeexecution.FieldFailedAgents:
		m.ClearFailedAgents()
		return nil
	case codeexecution.FieldErrorMessages:
		m.ClearErrorMessages()
		return nil
	}
	return fmt.Errorf("unknown CodeExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeExecutionMutation) ResetField(name string) error {
	switch name {
	case codeexecution.FieldUserID:
		m.ResetUserID()
		return nil
	case codeexecution.FieldChatID:
		m.ResetChatID()
		return nil
	case codeexecution.FieldMessageID:
		m.ResetMessageID()
		return nil
	case codeexecution.FieldInitialCode:
		m.ResetInitialCode()
		return nil
	case codeexecution.FieldLatestCode:
		m.ResetLatestCode()
		return nil
	case codeexecution.FieldIsSuccessful:
		m.ResetIsSuccessful()
		return nil
	case codeexecution.FieldFailedAgents:
		m.ResetFailedAgents()
		return nil
	case codeexecution.FieldErrorMessages:
		m.ResetErrorMessages()
		return nil
	case codeexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case codeexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CodeExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CodeExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CodeExecution edge %s", name)
}

// DeepAnalysisReportMutation represents an operation that mutates the DeepAnalysisReport nodes in the graph.
type DeepAnalysisReportMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	report_uuid            *string
	goal                   *string
	status                 *deepanalysisreport.Status
	start_time             *time.Time
	end_time               *time.Time
	duration_seconds       *int
	addduration_seconds    *int
	deep_questions         *string
	deep_plan              *string
	summaries              *[]string
	appendsummaries        []string
	analysis_code          *string
	plotly_figures         *json.RawMessage
	appendplotly_figures   json.RawMessage
	synthesis              *[]string
	appendsynthesis        []string
	final_conclusion       *string
	html_report            *string
	report_summary         *string
	progress_percentage    *int
	addprogress_percentage *int
	steps_completed        *[]string
	appendsteps_completed  []string
	error_message          *string
	model_provider         *string
	model_name             *string
	total_tokens_used      *int
	addtotal_tokens_used   *int
	estimated_cost         *float64
	addestimated_cost      *float64
	credits_consumed       *int
	addcredits_consumed    *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	user                   *int
	cleareduser            bool
	done                   bool
	oldValue               func(context.Context) (*DeepAnalysisReport, error)
	predicates             []predicate.DeepAnalysisReport
}

var _ ent.Mutation = (*DeepAnalysisReportMutation)(nil)

// deepanalysisreportOption allows management of the mutation configuration using functional options.
type deepanalysisreportOption func(*DeepAnalysisReportMutation)

// newDeepAnalysisReportMutation creates new mutation for the DeepAnalysisReport entity.
func newDeepAnalysisReportMutation(c config, op Op, opts ...deepanalysisreportOption) *DeepAnalysisReportMutation {
	m := &DeepAnalysisReportMutation{
		config:        c,
		op:            op,
		typ:           TypeDeepAnalysisReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeepAnalysisReportID sets the ID field of the mutation.
func withDeepAnalysisReportID(id int) deepanalysisreportOption {
	return func(m *DeepAnalysisReportMutation) {
		var (
			err   error
			once  sync.Once
			value *DeepAnalysisReport
		)
		m.oldValue = func(ctx context.Context) (*DeepAnalysisReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeepAnalysisReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeepAnalysisReport sets the old DeepAnalysisReport of the mutation.
func withDeepAnalysisReport(node *DeepAnalysisReport) deepanalysisreportOption {
	return func(m *DeepAnalysisReportMutation) {
		m.oldValue = func(context.Context) (*DeepAnalysisReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeepAnalysisReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeepAnalysisReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeepAnalysisReportMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeepAnalysisReportMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeepAnalysisReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportUUID sets the "report_uuid" field.
func (m *DeepAnalysisReportMutation) SetReportUUID(s string) {
	m.report_uuid = &s
}

// ReportUUID returns the value of the "report_uuid" field in the mutation.
func (m *DeepAnalysisReportMutation) ReportUUID() (r string, exists bool) {
	v := m.report_uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldReportUUID returns the old "report_uuid" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldReportUUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportUUID: %w", err)
	}
	return oldValue.ReportUUID, nil
}

// ResetReportUUID resets all changes to the "report_uuid" field.
func (m *DeepAnalysisReportMutation) ResetReportUUID() {
	m.report_uuid = nil
}

// SetUserID sets the "user_id" field.
func (m *DeepAnalysisReportMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DeepAnalysisReportMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *DeepAnalysisReportMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[deepanalysisreport.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DeepAnalysisReportMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, deepanalysisreport.FieldUserID)
}

// SetGoal sets the "goal" field.
func (m *DeepAnalysisReportMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *DeepAnalysisReportMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *DeepAnalysisReportMutation) ResetGoal() {
	m.goal = nil
}

// SetStatus sets the "status" field.
func (m *DeepAnalysisReportMutation) SetStatus(d deepanalysisreport.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeepAnalysisReportMutation) Status() (r deepanalysisreport.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldStatus(ctx context.Context) (v deepanalysisreport.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeepAnalysisReportMutation) ResetStatus() {
	m.status = nil
}

// SetStartTime sets the "start_time" field.
func (m *DeepAnalysisReportMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *DeepAnalysisReportMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *DeepAnalysisReportMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *DeepAnalysisReportMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *DeepAnalysisReportMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *DeepAnalysisReportMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[deepanalysisreport.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *DeepAnalysisReportMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, deepanalysisreport.FieldEndTime)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *DeepAnalysisReportMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *DeepAnalysisReportMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldDurationSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *DeepAnalysisReportMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *DeepAnalysisReportMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *DeepAnalysisReportMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[deepanalysisreport.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *DeepAnalysisReportMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, deepanalysisreport.FieldDurationSeconds)
}

// SetDeepQuestions sets the "deep_questions" field.
func (m *DeepAnalysisReportMutation) SetDeepQuestions(s string) {
	m.deep_questions = &s
}

// DeepQuestions returns the value of the "deep_questions" field in the mutation.
func (m *DeepAnalysisReportMutation) DeepQuestions() (r string, exists bool) {
	v := m.deep_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldDeepQuestions returns the old "deep_questions" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldDeepQuestions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeepQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeepQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeepQuestions: %w", err)
	}
	return oldValue.DeepQuestions, nil
}

// ClearDeepQuestions clears the value of the "deep_questions" field.
func (m *DeepAnalysisReportMutation) ClearDeepQuestions() {
	m.deep_questions = nil
	m.clearedFields[deepanalysisreport.FieldDeepQuestions] = struct{}{}
}

// DeepQuestionsCleared returns if the "deep_questions" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) DeepQuestionsCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldDeepQuestions]
	return ok
}

// ResetDeepQuestions resets all changes to the "deep_questions" field.
func (m *DeepAnalysisReportMutation) ResetDeepQuestions() {
	m.deep_questions = nil
	delete(m.clearedFields, deepanalysisreport.FieldDeepQuestions)
}

// SetDeepPlan sets the "deep_plan" field.
func (m *DeepAnalysisReportMutation) SetDeepPlan(s string) {
	m.deep_plan = &s
}

// DeepPlan returns the value of the "deep_plan" field in the mutation.
func (m *DeepAnalysisReportMutation) DeepPlan() (r string, exists bool) {
	v := m.deep_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldDeepPlan returns the old "deep_plan" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldDeepPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeepPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeepPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeepPlan: %w", err)
	}
	return oldValue.DeepPlan, nil
}

// ClearDeepPlan clears the value of the "deep_plan" field.
func (m *DeepAnalysisReportMutation) ClearDeepPlan() {
	m.deep_plan = nil
	m.clearedFields[deepanalysisreport.FieldDeepPlan] = struct{}{}
}

// DeepPlanCleared returns if the "deep_plan" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) DeepPlanCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldDeepPlan]
	return ok
}

// ResetDeepPlan resets all changes to the "deep_plan" field.
func (m *DeepAnalysisReportMutation) ResetDeepPlan() {
	m.deep_plan = nil
	delete(m.clearedFields, deepanalysisreport.FieldDeepPlan)
}

// SetSummaries sets the "summaries" field.
func (m *DeepAnalysisReportMutation) SetSummaries(s []string) {
	m.summaries = &s
	m.appendsummaries = nil
}

// Summaries returns the value of the "summaries" field in the mutation.
func (m *DeepAnalysisReportMutation) Summaries() (r []string, exists bool) {
	v := m.summaries
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaries returns the old "summaries" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldSummaries(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaries: %w", err)
	}
	return oldValue.Summaries, nil
}

// AppendSummaries adds s to the "summaries" field.
func (m *DeepAnalysisReportMutation) AppendSummaries(s []string) {
	m.appendsummaries = append(m.appendsummaries, s...)
}

// AppendedSummaries returns the list of values that were appended to the "summaries" field in this mutation.
func (m *DeepAnalysisReportMutation) AppendedSummaries() ([]string, bool) {
	if len(m.appendsummaries) == 0 {
		return nil, false
	}
	return m.appendsummaries, true
}

// ClearSummaries clears the value of the "summaries" field.
func (m *DeepAnalysisReportMutation) ClearSummaries() {
	m.summaries = nil
	m.appendsummaries = nil
	m.clearedFields[deepanalysisreport.FieldSummaries] = struct{}{}
}

// SummariesCleared returns if the "summaries" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) SummariesCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldSummaries]
	return ok
}

// ResetSummaries resets all changes to the "summaries" field.
func (m *DeepAnalysisReportMutation) ResetSummaries() {
	m.summaries = nil
	m.appendsummaries = nil
	delete(m.clearedFields, deepanalysisreport.FieldSummaries)
}

// SetAnalysisCode sets the "analysis_code" field.
func (m *DeepAnalysisReportMutation) SetAnalysisCode(s string) {
	m.analysis_code = &s
}

// AnalysisCode returns the value of the "analysis_code" field in the mutation.
func (m *DeepAnalysisReportMutation) AnalysisCode() (r string, exists bool) {
	v := m.analysis_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisCode returns the old "analysis_code" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldAnalysisCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisCode: %w", err)
	}
	return oldValue.AnalysisCode, nil
}

// ClearAnalysisCode clears the value of the "analysis_code" field.
func (m *DeepAnalysisReportMutation) ClearAnalysisCode() {
	m.analysis_code = nil
	m.clearedFields[deepanalysisreport.FieldAnalysisCode] = struct{}{}
}

// AnalysisCodeCleared returns if the "analysis_code" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) AnalysisCodeCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldAnalysisCode]
	return ok
}

// ResetAnalysisCode resets all changes to the "analysis_code" field.
func (m *DeepAnalysisReportMutation) ResetAnalysisCode() {
	m.analysis_code = nil
	delete(m.clearedFields, deepanalysisreport.FieldAnalysisCode)
}

// SetPlotlyFigures sets the "plotly_figures" field.
func (m *DeepAnalysisReportMutation) SetPlotlyFigures(jm json.RawMessage) {
	m.plotly_figures = &jm
	m.appendplotly_figures = nil
}

// PlotlyFigures returns the value of the "plotly_figures" field in the mutation.
func (m *DeepAnalysisReportMutation) PlotlyFigures() (r json.RawMessage, exists bool) {
	v := m.plotly_figures
	if v == nil {
		return
	}
	return *v, true
}

// OldPlotlyFigures returns the old "plotly_figures" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldPlotlyFigures(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlotlyFigures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlotlyFigures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlotlyFigures: %w", err)
	}
	return oldValue.PlotlyFigures, nil
}

// AppendPlotlyFigures adds jm to the "plotly_figures" field.
func (m *DeepAnalysisReportMutation) AppendPlotlyFigures(jm json.RawMessage) {
	m.appendplotly_figures = append(m.appendplotly_figures, jm...)
}

// AppendedPlotlyFigures returns the list of values that were appended to the "plotly_figures" field in this mutation.
func (m *DeepAnalysisReportMutation) AppendedPlotlyFigures() (json.RawMessage, bool) {
	if len(m.appendplotly_figures) == 0 {
		return nil, false
	}
	return m.appendplotly_figures, true
}

// ClearPlotlyFigures clears the value of the "plotly_figures" field.
func (m *DeepAnalysisReportMutation) ClearPlotlyFigures() {
	m.plotly_figures = nil
	m.appendplotly_figures = nil
	m.clearedFields[deepanalysisreport.FieldPlotlyFigures] = struct{}{}
}

// PlotlyFiguresCleared returns if the "plotly_figures" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) PlotlyFiguresCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldPlotlyFigures]
	return ok
}

// ResetPlotlyFigures resets all changes to the "plotly_figures" field.
func (m *DeepAnalysisReportMutation) ResetPlotlyFigures() {
	m.plotly_figures = nil
	m.appendplotly_figures = nil
	delete(m.clearedFields, deepanalysisreport.FieldPlotlyFigures)
}

// SetSynthesis sets the "synthesis" field.
func (m *DeepAnalysisReportMutation) SetSynthesis(s []string) {
	m.synthesis = &s
	m.appendsynthesis = nil
}

// Synthesis returns the value of the "synthesis" field in the mutation.
func (m *DeepAnalysisReportMutation) Synthesis() (r []string, exists bool) {
	v := m.synthesis
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesis returns the old "synthesis" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldSynthesis(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesis: %w", err)
	}
	return oldValue.Synthesis, nil
}

// AppendSynthesis adds s to the "synthesis" field.
func (m *DeepAnalysisReportMutation) AppendSynthesis(s []string) {
	m.appendsynthesis = append(m.appendsynthesis, s...)
}

// AppendedSynthesis returns the list of values that were appended to the "synthesis" field in this mutation.
func (m *DeepAnalysisReportMutation) AppendedSynthesis() ([]string, bool) {
	if len(m.appendsynthesis) == 0 {
		return nil, false
	}
	return m.appendsynthesis, true
}

// ClearSynthesis clears the value of the "synthesis" field.
func (m *DeepAnalysisReportMutation) ClearSynthesis() {
	m.synthesis = nil
	m.appendsynthesis = nil
	m.clearedFields[deepanalysisreport.FieldSynthesis] = struct{}{}
}

// SynthesisCleared returns if the "synthesis" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) SynthesisCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldSynthesis]
	return ok
}

// ResetSynthesis resets all changes to the "synthesis" field.
func (m *DeepAnalysisReportMutation) ResetSynthesis() {
	m.synthesis = nil
	m.appendsynthesis = nil
	delete(m.clearedFields, deepanalysisreport.FieldSynthesis)
}

// SetFinalConclusion sets the "final_conclusion" field.
func (m *DeepAnalysisReportMutation) SetFinalConclusion(s string) {
	m.final_conclusion = &s
}

// FinalConclusion returns the value of the "final_conclusion" field in the mutation.
func (m *DeepAnalysisReportMutation) FinalConclusion() (r string, exists bool) {
	v := m.final_conclusion
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalConclusion returns the old "final_conclusion" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldFinalConclusion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalConclusion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalConclusion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalConclusion: %w", err)
	}
	return oldValue.FinalConclusion, nil
}

// ClearFinalConclusion clears the value of the "final_conclusion" field.
func (m *DeepAnalysisReportMutation) ClearFinalConclusion() {
	m.final_conclusion = nil
	m.clearedFields[deepanalysisreport.FieldFinalConclusion] = struct{}{}
}

// FinalConclusionCleared returns if the "final_conclusion" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) FinalConclusionCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldFinalConclusion]
	return ok
}

// ResetFinalConclusion resets all changes to the "final_conclusion" field.
func (m *DeepAnalysisReportMutation) ResetFinalConclusion() {
	m.final_conclusion = nil
	delete(m.clearedFields, deepanalysisreport.FieldFinalConclusion)
}

// SetHTMLReport sets the "html_report" field.
func (m *DeepAnalysisReportMutation) SetHTMLReport(s string) {
	m.html_report = &s
}

// HTMLReport returns the value of the "html_report" field in the mutation.
func (m *DeepAnalysisReportMutation) HTMLReport() (r string, exists bool) {
	v := m.html_report
	if v == nil {
		return
	}
	return *v, true
}

// OldHTMLReport returns the old "html_report" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldHTMLReport(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTMLReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTMLReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTMLReport: %w", err)
	}
	return oldValue.HTMLReport, nil
}

// ClearHTMLReport clears the value of the "html_report" field.
func (m *DeepAnalysisReportMutation) ClearHTMLReport() {
	m.html_report = nil
	m.clearedFields[deepanalysisreport.FieldHTMLReport] = struct{}{}
}

// HTMLReportCleared returns if the "html_report" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) HTMLReportCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldHTMLReport]
	return ok
}

// ResetHTMLReport resets all changes to the "html_report" field.
func (m *DeepAnalysisReportMutation) ResetHTMLReport() {
	m.html_report = nil
	delete(m.clearedFields, deepanalysisreport.FieldHTMLReport)
}

// SetReportSummary sets the "report_summary" field.
func (m *DeepAnalysisReportMutation) SetReportSummary(s string) {
	m.report_summary = &s
}

// ReportSummary returns the value of the "report_summary" field in the mutation.
func (m *DeepAnalysisReportMutation) ReportSummary() (r string, exists bool) {
	v := m.report_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldReportSummary returns the old "report_summary" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldReportSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportSummary: %w", err)
	}
	return oldValue.ReportSummary, nil
}

// ClearReportSummary clears the value of the "report_summary" field.
func (m *DeepAnalysisReportMutation) ClearReportSummary() {
	m.report_summary = nil
	m.clearedFields[deepanalysisreport.FieldReportSummary] = struct{}{}
}

// ReportSummaryCleared returns if the "report_summary" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) ReportSummaryCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldReportSummary]
	return ok
}

// ResetReportSummary resets all changes to the "report_summary" field.
func (m *DeepAnalysisReportMutation) ResetReportSummary() {
	m.report_summary = nil
	delete(m.clearedFields, deepanalysisreport.FieldReportSummary)
}

// SetProgressPercentage sets the "progress_percentage" field.
func (m *DeepAnalysisReportMutation) SetProgressPercentage(i int) {
	m.progress_percentage = &i
	m.addprogress_percentage = nil
}

// ProgressPercentage returns the value of the "progress_percentage" field in the mutation.
func (m *DeepAnalysisReportMutation) ProgressPercentage() (r int, exists bool) {
	v := m.progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercentage returns the old "progress_percentage" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldProgressPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercentage: %w", err)
	}
	return oldValue.ProgressPercentage, nil
}

// AddProgressPercentage adds i to the "progress_percentage" field.
func (m *DeepAnalysisReportMutation) AddProgressPercentage(i int) {
	if m.addprogress_percentage != nil {
		*m.addprogress_percentage += i
	} else {
		m.addprogress_percentage = &i
	}
}

// AddedProgressPercentage returns the value that was added to the "progress_percentage" field in this mutation.
func (m *DeepAnalysisReportMutation) AddedProgressPercentage() (r int, exists bool) {
	v := m.addprogress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercentage resets all changes to the "progress_percentage" field.
func (m *DeepAnalysisReportMutation) ResetProgressPercentage() {
	m.progress_percentage = nil
	m.addprogress_percentage = nil
}

// SetStepsCompleted sets the "steps_completed" field.
func (m *DeepAnalysisReportMutation) SetStepsCompleted(s []string) {
	m.steps_completed = &s
	m.appendsteps_completed = nil
}

// StepsCompleted returns the value of the "steps_completed" field in the mutation.
func (m *DeepAnalysisReportMutation) StepsCompleted() (r []string, exists bool) {
	v := m.steps_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsCompleted returns the old "steps_completed" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldStepsCompleted(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsCompleted: %w", err)
	}
	return oldValue.StepsCompleted, nil
}

// AppendStepsCompleted adds s to the "steps_completed" field.
func (m *DeepAnalysisReportMutation) AppendStepsCompleted(s []string) {
	m.appendsteps_completed = append(m.appendsteps_completed, s...)
}

// AppendedStepsCompleted returns the list of values that were appended to the "steps_completed" field in this mutation.
func (m *DeepAnalysisReportMutation) AppendedStepsCompleted() ([]string, bool) {
	if len(m.appendsteps_completed) == 0 {
		return nil, false
	}
	return m.appendsteps_completed, true
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (m *DeepAnalysisReportMutation) ClearStepsCompleted() {
	m.steps_completed = nil
	m.appendsteps_completed = nil
	m.clearedFields[deepanalysisreport.FieldStepsCompleted] = struct{}{}
}

// StepsCompletedCleared returns if the "steps_completed" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) StepsCompletedCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldStepsCompleted]
	return ok
}

// ResetStepsCompleted resets all changes to the "steps_completed" field.
func (m *DeepAnalysisReportMutation) ResetStepsCompleted() {
	m.steps_completed = nil
	m.appendsteps_completed = nil
	delete(m.clearedFields, deepanalysisreport.FieldStepsCompleted)
}

// SetErrorMessage sets the "error_message" field.
func (m *DeepAnalysisReportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeepAnalysisReportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DeepAnalysisReportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[deepanalysisreport.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeepAnalysisReportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, deepanalysisreport.FieldErrorMessage)
}

// SetModelProvider sets the "model_provider" field.
func (m *DeepAnalysisReportMutation) SetModelProvider(s string) {
	m.model_provider = &s
}

// ModelProvider returns the value of the "model_provider" field in the mutation.
func (m *DeepAnalysisReportMutation) ModelProvider() (r string, exists bool) {
	v := m.model_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldModelProvider returns the old "model_provider" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldModelProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelProvider: %w", err)
	}
	return oldValue.ModelProvider, nil
}

// ClearModelProvider clears the value of the "model_provider" field.
func (m *DeepAnalysisReportMutation) ClearModelProvider() {
	m.model_provider = nil
	m.clearedFields[deepanalysisreport.FieldModelProvider] = struct{}{}
}

// ModelProviderCleared returns if the "model_provider" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) ModelProviderCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldModelProvider]
	return ok
}

// ResetModelProvider resets all changes to the "model_provider" field.
func (m *DeepAnalysisReportMutation) ResetModelProvider() {
	m.model_provider = nil
	delete(m.clearedFields, deepanalysisreport.FieldModelProvider)
}

// SetModelName sets the "model_name" field.
func (m *DeepAnalysisReportMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *DeepAnalysisReportMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *DeepAnalysisReportMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[deepanalysisreport.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *DeepAnalysisReportMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[deepanalysisreport.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *DeepAnalysisReportMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, deepanalysisreport.FieldModelName)
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (m *DeepAnalysisReportMutation) SetTotalTokensUsed(i int) {
	m.total_tokens_used = &i
	m.addtotal_tokens_used = nil
}

// TotalTokensUsed returns the value of the "total_tokens_used" field in the mutation.
func (m *DeepAnalysisReportMutation) TotalTokensUsed() (r int, exists bool) {
	v := m.total_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokensUsed returns the old "total_tokens_used" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldTotalTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokensUsed: %w", err)
	}
	return oldValue.TotalTokensUsed, nil
}

// AddTotalTokensUsed adds i to the "total_tokens_used" field.
func (m *DeepAnalysisReportMutation) AddTotalTokensUsed(i int) {
	if m.addtotal_tokens_used != nil {
		*m.addtotal_tokens_used += i
	} else {
		m.addtotal_tokens_used = &i
	}
}

// AddedTotalTokensUsed returns the value that was added to the "total_tokens_used" field in this mutation.
func (m *DeepAnalysisReportMutation) AddedTotalTokensUsed() (r int, exists bool) {
	v := m.addtotal_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokensUsed resets all changes to the "total_tokens_used" field.
func (m *DeepAnalysisReportMutation) ResetTotalTokensUsed() {
	m.total_tokens_used = nil
	m.addtotal_tokens_used = nil
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *DeepAnalysisReportMutation) SetEstimatedCost(f float64) {
	m.estimated_cost = &f
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *DeepAnalysisReportMutation) EstimatedCost() (r float64, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldEstimatedCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds f to the "estimated_cost" field.
func (m *DeepAnalysisReportMutation) AddEstimatedCost(f float64) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += f
	} else {
		m.addestimated_cost = &f
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *DeepAnalysisReportMutation) AddedEstimatedCost() (r float64, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *DeepAnalysisReportMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
}

// SetCreditsConsumed sets the "credits_consumed" field.
func (m *DeepAnalysisReportMutation) SetCreditsConsumed(i int) {
	m.credits_consumed = &i
	m.addcredits_consumed = nil
}

// CreditsConsumed returns the value of the "credits_consumed" field in the mutation.
func (m *DeepAnalysisReportMutation) CreditsConsumed() (r int, exists bool) {
	v := m.credits_consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsConsumed returns the old "credits_consumed" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldCreditsConsumed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsConsumed: %w", err)
	}
	return oldValue.CreditsConsumed, nil
}

// AddCreditsConsumed adds i to the "credits_consumed" field.
func (m *DeepAnalysisReportMutation) AddCreditsConsumed(i int) {
	if m.addcredits_consumed != nil {
		*m.addcredits_consumed += i
	} else {
		m.addcredits_consumed = &i
	}
}

// AddedCreditsConsumed returns the value that was added to the "credits_consumed" field in this mutation.
func (m *DeepAnalysisReportMutation) AddedCreditsConsumed() (r int, exists bool) {
	v := m.addcredits_consumed
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsConsumed resets all changes to the "credits_consumed" field.
func (m *DeepAnalysisReportMutation) ResetCreditsConsumed() {
	m.credits_consumed = nil
	m.addcredits_consumed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeepAnalysisReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeepAnalysisReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeepAnalysisReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DeepAnalysisReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DeepAnalysisReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DeepAnalysisReport entity.
// If the DeepAnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeepAnalysisReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DeepAnalysisReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *DeepAnalysisReportMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[deepanalysisreport.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DeepAnalysisReportMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DeepAnalysisReportMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DeepAnalysisReportMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the DeepAnalysisReportMutation builder.
func (m *DeepAnalysisReportMutation) Where(ps ...predicate.DeepAnalysisReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeepAnalysisReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeepAnalysisReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeepAnalysisReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeepAnalysisReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeepAnalysisReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeepAnalysisReport).
func (m *DeepAnalysisReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeepAnalysisReportMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.report_uuid != nil {
		fields = append(fields, deepanalysisreport.FieldReportUUID)
	}
	if m.user != nil {
		fields = append(fields, deepanalysisreport.FieldUserID)
	}
	if m.goal != nil {
		fields = append(fields, deepanalysisreport.FieldGoal)
	}
	if m.status != nil {
		fields = append(fields, deepanalysisreport.FieldStatus)
	}
	if m.start_time != nil {
		fields = append(fields, deepanalysisreport.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, deepanalysisreport.FieldEndTime)
	}
	if m.duration_seconds != nil {
		fields = append(fields, deepanalysisreport.FieldDurationSeconds)
	}
	if m.deep_questions != nil {
		fields = append(fields, deepanalysisreport.FieldDeepQuestions)
	}
	if m.deep_plan != nil {
		fields = append(fields, deepanalysisreport.FieldDeepPlan)
	}
	if m.summaries != nil {
		fields = append(fields, deepanalysisreport.FieldSummaries)
	}
	if m.analysis_code != nil {
		fields = append(fields, deepanalysisreport.FieldAnalysisCode)
	}
	if m.plotly_figures != nil {
		fields = append(fields, deepanalysisreport.FieldPlotlyFigures)
	}
	if m.synthesis != nil {
		fields = append(fields, deepanalysisreport.FieldSynthesis)
	}
	if m.final_conclusion != nil {
		fields = append(fields, deepanalysisreport.FieldFinalConclusion)
	}
	if m.html_report != nil {
		fields = append(fields, deepanalysisreport.FieldHTMLReport)
	}
	if m.report_summary != nil {
		fields = append(fields, deepanalysisreport.FieldReportSummary)
	}
	if m.progress_percentage != nil {
		fields = append(fields, deepanalysisreport.FieldProgressPercentage)
	}
	if m.steps_completed != nil {
		fields = append(fields, deepanalysisreport.FieldStepsCompleted)
	}
	if m.error_message != nil {
		fields = append(fields, deepanalysisreport.FieldErrorMessage)
	}
	if m.model_provider != nil {
		fields = append(fields, deepanalysisreport.FieldModelProvider)
	}
	if m.model_name != nil {
		fields = append(fields, deepanalysisreport.FieldModelName)
	}
	if m.total_tokens_used != nil {
		fields = append(fields, deepanalysisreport.FieldTotalTokensUsed)
	}
	if m.estimated_cost != nil {
		fields = append(fields, deepanalysisreport.FieldEstimatedCost)
	}
	if m.credits_consumed != nil {
		fields = append(fields, deepanalysisreport.FieldCreditsConsumed)
	}
	if m.created_at != nil {
		fields = append(fields, deepanalysisreport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deepanalysisreport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeepAnalysisReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deepanalysisreport.FieldReportUUID:
		return m.ReportUUID()
	case deepanalysisreport.FieldUserID:
		return m.UserID()
	case deepanalysisreport.FieldGoal:
		return m.Goal()
	case deepanalysisreport.FieldStatus:
		return m.Status()
	case deepanalysisreport.FieldStartTime:
		return m.StartTime()
	case deepanalysisreport.FieldEndTime:
		return m.EndTime()
	case deepanalysisreport.FieldDurationSeconds:
		return m.DurationSeconds()
	case deepanalysisreport.FieldDeepQuestions:
		return m.DeepQuestions()
	case deepanalysisreport.FieldDeepPlan:
		return m.DeepPlan()
	case deepanalysisreport.FieldSummaries:
		return m.Summaries()
	case deepanalysisreport.FieldAnalysisCode:
		return m.AnalysisCode()
	case deepanalysisreport.FieldPlotlyFigures:
		return m.PlotlyFigures()
	case deepanalysisreport.FieldSynthesis:
		return m.Synthesis()
	case deepanalysisreport.FieldFinalConclusion:
		return m.FinalConclusion()
	case deepanalysisreport.FieldHTMLReport:
		return m.HTMLReport()
	case deepanalysisreport.FieldReportSummary:
		return m.ReportSummary()
	case deepanalysisreport.FieldProgressPercentage:
		return m.ProgressPercentage()
	case deepanalysisreport.FieldStepsCompleted:
		return m.StepsCompleted()
	case deepanalysisreport.FieldErrorMessage:
		return m.ErrorMessage()
	case deepanalysisreport.FieldModelProvider:
		return m.ModelProvider()
	case deepanalysisreport.FieldModelName:
		return m.ModelName()
	case deepanalysisreport.FieldTotalTokensUsed:
		return m.TotalTokensUsed()
	case deepanalysisreport.FieldEstimatedCost:
		return m.EstimatedCost()
	case deepanalysisreport.FieldCreditsConsumed:
		return m.CreditsConsumed()
	case deepanalysisreport.FieldCreatedAt:
		return m.CreatedAt()
	case deepanalysisreport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeepAnalysisReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deepanalysisreport.FieldReportUUID:
		return m.OldReportUUID(ctx)
	case deepanalysisreport.FieldUserID:
		return m.OldUserID(ctx)
	case deepanalysisreport.FieldGoal:
		return m.OldGoal(ctx)
	case deepanalysisreport.FieldStatus:
		return m.OldStatus(ctx)
	case deepanalysisreport.FieldStartTime:
		return m.OldStartTime(ctx)
	case deepanalysisreport.FieldEndTime:
		return m.OldEndTime(ctx)
	case deepanalysisreport.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case deepanalysisreport.FieldDeepQuestions:
		return m.OldDeepQuestions(ctx)
	case deepanalysisreport.FieldDeepPlan:
		return m.OldDeepPlan(ctx)
	case deepanalysisreport.FieldSummaries:
		return m.OldSummaries(ctx)
	case deepanalysisreport.FieldAnalysisCode:
		return m.OldAnalysisCode(ctx)
	case deepanalysisreport.FieldPlotlyFigures:
		return m.OldPlotlyFigures(ctx)
	case deepanalysisreport.FieldSynthesis:
		return m.OldSynthesis(ctx)
	case deepanalysisreport.FieldFinalConclusion:
		return m.OldFinalConclusion(ctx)
	case deepanalysisreport.FieldHTMLReport:
		return m.OldHTMLReport(ctx)
	case deepanalysisreport.FieldReportSummary:
		return m.OldReportSummary(ctx)
	case deepanalysisreport.FieldProgressPercentage:
		return m.OldProgressPercentage(ctx)
	case deepanalysisreport.FieldStepsCompleted:
		return m.OldStepsCompleted(ctx)
	case deepanalysisreport.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deepanalysisreport.FieldModelProvider:
		return m.OldModelProvider(ctx)
	case deepanalysisreport.FieldModelName:
		return m.OldModelName(ctx)
	case deepanalysisreport.FieldTotalTokensUsed:
		return m.OldTotalTokensUsed(ctx)
	case deepanalysisreport.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	case deepanalysisreport.FieldCreditsConsumed:
		return m.OldCreditsConsumed(ctx)
	case deepanalysisreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deepanalysisreport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeepAnalysisReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeepAnalysisReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deepanalysisreport.FieldReportUUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportUUID(v)
		return nil
	case deepanalysisreport.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case deepanalysisreport.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case deepanalysisreport.FieldStatus:
		v, ok := value.(deepanalysisreport.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deepanalysisreport.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case deepanalysisreport.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case deepanalysisreport.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case deepanalysisreport.FieldDeepQuestions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeepQuestions(v)
		return nil
	case deepanalysisreport.FieldDeepPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeepPlan(v)
		return nil
	case deepanalysisreport.FieldSummaries:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaries(v)
		return nil
	case deepanalysisreport.FieldAnalysisCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisCode(v)
		return nil
	case deepanalysisreport.FieldPlotlyFigures:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlotlyFigures(v)
		return nil
	case deepanalysisreport.FieldSynthesis:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesis(v)
		return nil
	case deepanalysisreport.FieldFinalConclusion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalConclusion(v)
		return nil
	case deepanalysisreport.FieldHTMLReport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTMLReport(v)
		return nil
	case deepanalysisreport.FieldReportSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportSummary(v)
		return nil
	case deepanalysisreport.FieldProgressPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercentage(v)
		return nil
	case deepanalysisreport.FieldStepsCompleted:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsCompleted(v)
		return nil
	case deepanalysisreport.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deepanalysisreport.FieldModelProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelProvider(v)
		return nil
	case deepanalysisreport.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case deepanalysisreport.FieldTotalTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokensUsed(v)
		return nil
	case deepanalysisreport.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	case deepanalysisreport.FieldCreditsConsumed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsConsumed(v)
		return nil
	case deepanalysisreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deepanalysisreport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeepAnalysisReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeepAnalysisReportMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, deepanalysisreport.FieldDurationSeconds)
	}
	if m.addprogress_percentage != nil {
		fields = append(fields, deepanalysisreport.FieldProgressPercentage)
	}
	if m.addtotal_tokens_used != nil {
		fields = append(fields, deepanalysisreport.FieldTotalTokensUsed)
	}
	if m.addestimated_cost != nil {
		fields = append(fields, deepanalysisreport.FieldEstimatedCost)
	}
	if m.addcredits_consumed != nil {
		fields = append(fields, deepanalysisreport.FieldCreditsConsumed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeepAnalysisReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deepanalysisreport.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case deepanalysisreport.FieldProgressPercentage:
		return m.AddedProgressPercentage()
	case deepanalysisreport.FieldTotalTokensUsed:
		return m.AddedTotalTokensUsed()
	case deepanalysisreport.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	case deepanalysisreport.FieldCreditsConsumed:
		return m.AddedCreditsConsumed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeepAnalysisReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deepanalysisreport.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case deepanalysisreport.FieldProgressPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercentage(v)
		return nil
	case deepanalysisreport.FieldTotalTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokensUsed(v)
		return nil
	case deepanalysisreport.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	case deepanalysisreport.FieldCreditsConsumed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsConsumed(v)
		return nil
	}
	return fmt.Errorf("unknown DeepAnalysisReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeepAnalysisReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deepanalysisreport.FieldUserID) {
		fields = append(fields, deepanalysisreport.FieldUserID)
	}
	if m.FieldCleared(deepanalysisreport.FieldEndTime) {
		fields = append(fields, deepanalysisreport.FieldEndTime)
	}
	if m.FieldCleared(deepanalysisreport.FieldDurationSeconds) {
		fields = append(fields, deepanalysisreport.FieldDurationSeconds)
	}
	if m.FieldCleared(deepanalysisreport.FieldDeepQuestions) {
		fields = append(fields, deepanalysisreport.FieldDeepQuestions)
	}
	if m.FieldCleared(deepanalysisreport.FieldDeepPlan) {
		fields = append(fields, deepanalysisreport.FieldDeepPlan)
	}
	if m.FieldCleared(deepanalysisreport.FieldSummaries) {
		fields = append(fields, deepanalysisreport.FieldSummaries)
	}
	if m.FieldCleared(deepanalysisreport.FieldAnalysisCode) {
		fields = append(fields, deepanalysisreport.FieldAnalysisCode)
	}
	if m.FieldCleared(deepanalysisreport.FieldPlotlyFigures) {
		fields = append(fields, deepanalysisreport.FieldPlotlyFigures)
	}
	if m.FieldCleared(deepanalysisreport.FieldSynthesis) {
		fields = append(fields, deepanalysisreport.FieldSynthesis)
	}
	if m.FieldCleared(deepanalysisreport.FieldFinalConclusion) {
		fields = append(fields, deepanalysisreport.FieldFinalConclusion)
	}
	if m.FieldCleared(deepanalysisreport.FieldHTMLReport) {
		fields = append(fields, deepanalysisreport.FieldHTMLReport)
	}
	if m.FieldCleared(deepanalysisreport.FieldReportSummary) {
		fields = append(fields, deepanalysisreport.FieldReportSummary)
	}
	if m.FieldCleared(deepanalysisreport.FieldStepsCompleted) {
		fields = append(fields, deepanalysisreport.FieldStepsCompleted)
	}
	if m.FieldCleared(deepanalysisreport.FieldErrorMessage) {
		fields = append(fields, deepanalysisreport.FieldErrorMessage)
	}
	if m.FieldCleared(deepanalysisreport.FieldModelProvider) {
		fields = append(fields, deepanalysisreport.FieldModelProvider)
	}
	if m.FieldCleared(deepanalysisreport.FieldModelName) {
		fields = append(fields, deepanalysisreport.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeepAnalysisReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeepAnalysisReportMutation) ClearField(name string) error {
	switch name {
	case deepanalysisreport.FieldUserID:
		m.ClearUserID()
		return nil
	case deepanalysisreport.FieldEndTime:
		m.ClearEndTime()
		return nil
	case deepanalysisreport.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case deepanalysisreport.FieldDeepQuestions:
		m.ClearDeepQuestions()
		return nil
	case deepanalysisreport.FieldDeepPlan:
		m.ClearDeepPlan()
		return nil
	case deepanalysisreport.FieldSummaries:
		m.ClearSummaries()
		return nil
	case deepanalysisreport.FieldAnalysisCode:
		m.ClearAnalysisCode()
		return nil
	case deepanalysisreport.FieldPlotlyFigures:
		m.ClearPlotlyFigures()
		return nil
	case deepanalysisreport.FieldSynthesis:
		m.ClearSynthesis()
		return nil
	case deepanalysisreport.FieldFinalConclusion:
		m.ClearFinalConclusion()
		return nil
	case deepanalysisreport.FieldHTMLReport:
		m.ClearHTMLReport()
		return nil
	case deepanalysisreport.FieldReportSummary:
		m.ClearReportSummary()
		return nil
	case deepanalysisreport.FieldStepsCompleted:
		m.ClearStepsCompleted()
		return nil
	case deepanalysisreport.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case deepanalysisreport.FieldModelProvider:
		m.ClearModelProvider()
		return nil
	case deepanalysisreport.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown DeepAnalysisReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeepAnalysisReportMutation) ResetField(name string) error {
	switch name {
	case deepanalysisreport.FieldReportUUID:
		m.ResetReportUUID()
		return nil
	case deepanalysisreport.FieldUserID:
		m.ResetUserID()
		return nil
	case deepanalysisreport.FieldGoal:
		m.ResetGoal()
		return nil
	case deepanalysisreport.FieldStatus:
		m.ResetStatus()
		return nil
	case deepanalysisreport.FieldStartTime:
		m.ResetStartTime()
		return nil
	case deepanalysisreport.FieldEndTime:
		m.ResetEndTime()
		return nil
	case deepanalysisreport.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case deepanalysisreport.FieldDeepQuestions:
		m.ResetDeepQuestions()
		return nil
	case deepanalysisreport.FieldDeepPlan:
		m.ResetDeepPlan()
		return nil
	case deepanalysisreport.FieldSummaries:
		m.ResetSummaries()
		return nil
	case deepanalysisreport.FieldAnalysisCode:
		m.ResetAnalysisCode()
		return nil
	case deepanalysisreport.FieldPlotlyFigures:
		m.ResetPlotlyFigures()
		return nil
	case deepanalysisreport.FieldSynthesis:
		m.ResetSynthesis()
		return nil
	case deepanalysisreport.FieldFinalConclusion:
		m.ResetFinalConclusion()
		return nil
	case deepanalysisreport.FieldHTMLReport:
		m.ResetHTMLReport()
		return nil
	case deepanalysisreport.FieldReportSummary:
		m.ResetReportSummary()
		return nil
	case deepanalysisreport.FieldProgressPercentage:
		m.ResetProgressPercentage()
		return nil
	case deepanalysisreport.FieldStepsCompleted:
		m.ResetStepsCompleted()
		return nil
	case deepanalysisreport.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deepanalysisreport.FieldModelProvider:
		m.ResetModelProvider()
		return nil
	case deepanalysisreport.FieldModelName:
		m.ResetModelName()
		return nil
	case deepanalysisreport.FieldTotalTokensUsed:
		m.ResetTotalTokensUsed()
		return nil
	case deepanalysisreport.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	case deepanalysisreport.FieldCreditsConsumed:
		m.ResetCreditsConsumed()
		return nil
	case deepanalysisreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deepanalysisreport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeepAnalysisReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeepAnalysisReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, deepanalysisreport.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeepAnalysisReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deepanalysisreport.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeepAnalysisReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeepAnalysisReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeepAnalysisReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, deepanalysisreport.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeepAnalysisReportMutation) EdgeCleared(name string) bool {
	switch name {
	case deepanalysisreport.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeepAnalysisReportMutation) ClearEdge(name string) error {
	switch name {
	case deepanalysisreport.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown DeepAnalysisReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeepAnalysisReportMutation) ResetEdge(name string) error {
	switch name {
	case deepanalysisreport.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown DeepAnalysisReport edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	report_uuid   *string
	channel       *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportUUID sets the "report_uuid" field.
func (m *EventMutation) SetReportUUID(s string) {
	m.report_uuid = &s
}

// ReportUUID returns the value of the "report_uuid" field in the mutation.
func (m *EventMutation) ReportUUID() (r string, exists bool) {
	v := m.report_uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldReportUUID returns the old "report_uuid" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldReportUUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportUUID: %w", err)
	}
	return oldValue.ReportUUID, nil
}

// ResetReportUUID resets all changes to the "report_uuid" field.
func (m *EventMutation) ResetReportUUID() {
	m.report_uuid = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.report_uuid != nil {
		fields = append(fields, event.FieldReportUUID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldReportUUID:
		return m.ReportUUID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldReportUUID:
		return m.OldReportUUID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldReportUUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportUUID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldReportUUID:
		m.ResetReportUUID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sender        *message.Sender
	content       *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	chat          *int
	clearedchat   bool
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *MessageMutation) SetChatID(i int) {
	m.chat = &i
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MessageMutation) ChatID() (r int, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChatID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MessageMutation) ResetChatID() {
	m.chat = nil
}

// SetSender sets the "sender" field.
func (m *MessageMutation) SetSender(value message.Sender) {
	m.sender = &value
}

// Sender returns the value of the "sender" field in the mutation.
func (m *MessageMutation) Sender() (r message.Sender, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSender(ctx context.Context) (v message.Sender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *MessageMutation) ResetSender() {
	m.sender = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MessageMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MessageMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MessageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *MessageMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[message.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *MessageMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ChatIDs() (ids []int) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *MessageMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.chat != nil {
		fields = append(fields, message.FieldChatID)
	}
	if m.sender != nil {
		fields = append(fields, message.FieldSender)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.timestamp != nil {
		fields = append(fields, message.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldChatID:
		return m.ChatID()
	case message.FieldSender:
		return m.Sender()
	case message.FieldContent:
		return m.Content()
	case message.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldChatID:
		return m.OldChatID(ctx)
	case message.FieldSender:
		return m.OldSender(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldChatID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case message.FieldSender:
		v, ok := value.(message.Sender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldChatID:
		m.ResetChatID()
		return nil
	case message.FieldSender:
		m.ResetSender()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, message.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, message.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MessageFeedbackMutation represents an operation that mutates the MessageFeedback nodes in the graph.
type MessageFeedbackMutation struct {
	config
	op             Op
	typ            string
	id             *int
	message_id     *int
	addmessage_id  *int
	rating         *int
	addrating      *int
	model_name     *string
	model_provider *string
	temperature    *float64
	addtemperature *float64
	max_tokens     *int
	addmax_tokens  *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MessageFeedback, error)
	predicates     []predicate.MessageFeedback
}

var _ ent.Mutation = (*MessageFeedbackMutation)(nil)

// messagefeedbackOption allows management of the mutation configuration using functional options.
type messagefeedbackOption func(*MessageFeedbackMutation)

// newMessageFeedbackMutation creates new mutation for the MessageFeedback entity.
func newMessageFeedbackMutation(c config, op Op, opts ...messagefeedbackOption) *MessageFeedbackMutation {
	m := &MessageFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageFeedbackID sets the ID field of the mutation.
func withMessageFeedbackID(id int) messagefeedbackOption {
	return func(m *MessageFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageFeedback
		)
		m.oldValue = func(ctx context.Context) (*MessageFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageFeedback sets the old MessageFeedback of the mutation.
func withMessageFeedback(node *MessageFeedback) messagefeedbackOption {
	return func(m *MessageFeedbackMutation) {
		m.oldValue = func(context.Context) (*MessageFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageFeedbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageFeedbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageFeedbackMutation) SetMessageID(i int) {
	m.message_id = &i
	m.addmessage_id = nil
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageFeedbackMutation) MessageID() (r int, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// AddMessageID adds i to the "message_id" field.
func (m *MessageFeedbackMutation) AddMessageID(i int) {
	if m.addmessage_id != nil {
		*m.addmessage_id += i
	} else {
		m.addmessage_id = &i
	}
}

// AddedMessageID returns the value that was added to the "message_id" field in this mutation.
func (m *MessageFeedbackMutation) AddedMessageID() (r int, exists bool) {
	v := m.addmessage_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageFeedbackMutation) ResetMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
}

// SetRating sets the "rating" field.
func (m *MessageFeedbackMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *MessageFeedbackMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *MessageFeedbackMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *MessageFeedbackMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *MessageFeedbackMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[messagefeedback.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *MessageFeedbackMutation) RatingCleared() bool {
	_, ok := m.clearedFields[messagefeedback.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *MessageFeedbackMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, messagefeedback.FieldRating)
}

// SetModelName sets the "model_name" field.
func (m *MessageFeedbackMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *MessageFeedbackMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *MessageFeedbackMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[messagefeedback.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *MessageFeedbackMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[messagefeedback.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *MessageFeedbackMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, messagefeedback.FieldModelName)
}

// SetModelProvider sets the "model_provider" field.
func (m *MessageFeedbackMutation) SetModelProvider(s string) {
	m.model_provider = &s
}

// ModelProvider returns the value of the "model_provider" field in the mutation.
func (m *MessageFeedbackMutation) ModelProvider() (r string, exists bool) {
	v := m.model_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldModelProvider returns the old "model_provider" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldModelProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelProvider: %w", err)
	}
	return oldValue.ModelProvider, nil
}

// ClearModelProvider clears the value of the "model_provider" field.
func (m *MessageFeedbackMutation) ClearModelProvider() {
	m.model_provider = nil
	m.clearedFields[messagefeedback.FieldModelProvider] = struct{}{}
}

// ModelProviderCleared returns if the "model_provider" field was cleared in this mutation.
func (m *MessageFeedbackMutation) ModelProviderCleared() bool {
	_, ok := m.clearedFields[messagefeedback.FieldModelProvider]
	return ok
}

// ResetModelProvider resets all changes to the "model_provider" field.
func (m *MessageFeedbackMutation) ResetModelProvider() {
	m.model_provider = nil
	delete(m.clearedFields, messagefeedback.FieldModelProvider)
}

// SetTemperature sets the "temperature" field.
func (m *MessageFeedbackMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *MessageFeedbackMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *MessageFeedbackMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *MessageFeedbackMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *MessageFeedbackMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[messagefeedback.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *MessageFeedbackMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[messagefeedback.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *MessageFeedbackMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, messagefeedback.FieldTemperature)
}

// SetMaxTokens sets the "max_tokens" field.
func (m *MessageFeedbackMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *MessageFeedbackMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldMaxTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *MessageFeedbackMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *MessageFeedbackMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (m *MessageFeedbackMutation) ClearMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	m.clearedFields[messagefeedback.FieldMaxTokens] = struct{}{}
}

// MaxTokensCleared returns if the "max_tokens" field was cleared in this mutation.
func (m *MessageFeedbackMutation) MaxTokensCleared() bool {
	_, ok := m.clearedFields[messagefeedback.FieldMaxTokens]
	return ok
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *MessageFeedbackMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	delete(m.clearedFields, messagefeedback.FieldMaxTokens)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageFeedbackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageFeedbackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MessageFeedback entity.
// If the MessageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageFeedbackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageFeedbackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MessageFeedbackMutation builder.
func (m *MessageFeedbackMutation) Where(ps ...predicate.MessageFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageFeedback).
func (m *MessageFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.message_id != nil {
		fields = append(fields, messagefeedback.FieldMessageID)
	}
	if m.rating != nil {
		fields = append(fields, messagefeedback.FieldRating)
	}
	if m.model_name != nil {
		fields = append(fields, messagefeedback.FieldModelName)
	}
	if m.model_provider != nil {
		fields = append(fields, messagefeedback.FieldModelProvider)
	}
	if m.temperature != nil {
		fields = append(fields, messagefeedback.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, messagefeedback.FieldMaxTokens)
	}
	if m.created_at != nil {
		fields = append(fields, messagefeedback.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, messagefeedback.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagefeedback.FieldMessageID:
		return m.MessageID()
	case messagefeedback.FieldRating:
		return m.Rating()
	case messagefeedback.FieldModelName:
		return m.ModelName()
	case messagefeedback.FieldModelProvider:
		return m.ModelProvider()
	case messagefeedback.FieldTemperature:
		return m.Temperature()
	case messagefeedback.FieldMaxTokens:
		return m.MaxTokens()
	case messagefeedback.FieldCreatedAt:
		return m.CreatedAt()
	case messagefeedback.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagefeedback.FieldMessageID:
		return m.OldMessageID(ctx)
	case messagefeedback.FieldRating:
		return m.OldRating(ctx)
	case messagefeedback.FieldModelName:
		return m.OldModelName(ctx)
	case messagefeedback.FieldModelProvider:
		return m.OldModelProvider(ctx)
	case messagefeedback.FieldTemperature:
		return m.OldTemperature(ctx)
	case messagefeedback.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case messagefeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case messagefeedback.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagefeedback.FieldMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messagefeedback.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case messagefeedback.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case messagefeedback.FieldModelProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelProvider(v)
		return nil
	case messagefeedback.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case messagefeedback.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case messagefeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case messagefeedback.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_id != nil {
		fields = append(fields, messagefeedback.FieldMessageID)
	}
	if m.addrating != nil {
		fields = append(fields, messagefeedback.FieldRating)
	}
	if m.addtemperature != nil {
		fields = append(fields, messagefeedback.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, messagefeedback.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case messagefeedback.FieldMessageID:
		return m.AddedMessageID()
	case messagefeedback.FieldRating:
		return m.AddedRating()
	case messagefeedback.FieldTemperature:
		return m.AddedTemperature()
	case messagefeedback.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case messagefeedback.FieldMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageID(v)
		return nil
	case messagefeedback.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case messagefeedback.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case messagefeedback.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown MessageFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messagefeedback.FieldRating) {
		fields = append(fields, messagefeedback.FieldRating)
	}
	if m.FieldCleared(messagefeedback.FieldModelName) {
		fields = append(fields, messagefeedback.FieldModelName)
	}
	if m.FieldCleared(messagefeedback.FieldModelProvider) {
		fields = append(fields, messagefeedback.FieldModelProvider)
	}
	if m.FieldCleared(messagefeedback.FieldTemperature) {
		fields = append(fields, messagefeedback.FieldTemperature)
	}
	if m.FieldCleared(messagefeedback.FieldMaxTokens) {
		fields = append(fields, messagefeedback.FieldMaxTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageFeedbackMutation) ClearField(name string) error {
	switch name {
	case messagefeedback.FieldRating:
		m.ClearRating()
		return nil
	case messagefeedback.FieldModelName:
		m.ClearModelName()
		return nil
	case messagefeedback.FieldModelProvider:
		m.ClearModelProvider()
		return nil
	case messagefeedback.FieldTemperature:
		m.ClearTemperature()
		return nil
	case messagefeedback.FieldMaxTokens:
		m.ClearMaxTokens()
		return nil
	}
	return fmt.Errorf("unknown MessageFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageFeedbackMutation) ResetField(name string) error {
	switch name {
	case messagefeedback.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messagefeedback.FieldRating:
		m.ResetRating()
		return nil
	case messagefeedback.FieldModelName:
		m.ResetModelName()
		return nil
	case messagefeedback.FieldModelProvider:
		m.ResetModelProvider()
		return nil
	case messagefeedback.FieldTemperature:
		m.ResetTemperature()
		return nil
	case messagefeedback.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case messagefeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case messagefeedback.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MessageFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MessageFeedback edge %s", name)
}

// ModelUsageMutation represents an operation that mutates the ModelUsage nodes in the graph.
type ModelUsageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	chat_id              *int
	addchat_id           *int
	model_name           *string
	provider             *string
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	total_tokens         *int
	addtotal_tokens      *int
	query_size           *int
	addquery_size        *int
	response_size        *int
	addresponse_size     *int
	cost                 *float64
	addcost              *float64
	timestamp            *time.Time
	is_streaming         *bool
	request_time_ms      *int
	addrequest_time_ms   *int
	clearedFields        map[string]struct{}
	user                 *int
	cleareduser          bool
	done                 bool
	oldValue             func(context.Context) (*ModelUsage, error)
	predicates           []predicate.ModelUsage
}

var _ ent.Mutation = (*ModelUsageMutation)(nil)

// modelusageOption allows management of the mutation configuration using functional options.
type modelusageOption func(*ModelUsageMutation)

// newModelUsageMutation creates new mutation for the ModelUsage entity.
func newModelUsageMutation(c config, op Op, opts ...modelusageOption) *ModelUsageMutation {
	m := &ModelUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeModelUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelUsageID sets the ID field of the mutation.
func withModelUsageID(id int) modelusageOption {
	return func(m *ModelUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelUsage
		)
		m.oldValue = func(ctx context.Context) (*ModelUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelUsage sets the old ModelUsage of the mutation.
func withModelUsage(node *ModelUsage) modelusageOption {
	return func(m *ModelUsageMutation) {
		m.oldValue = func(context.Context) (*ModelUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelUsageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelUsageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ModelUsageMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ModelUsageMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ModelUsageMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[modelusage.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ModelUsageMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[modelusage.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ModelUsageMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, modelusage.FieldUserID)
}

// SetChatID sets the "chat_id" field.
func (m *ModelUsageMutation) SetChatID(i int) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ModelUsageMutation) ChatID() (r int, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldChatID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *ModelUsageMutation) AddChatID(i int) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *ModelUsageMutation) AddedChatID() (r int, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearChatID clears the value of the "chat_id" field.
func (m *ModelUsageMutation) ClearChatID() {
	m.chat_id = nil
	m.addchat_id = nil
	m.clearedFields[modelusage.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *ModelUsageMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[modelusage.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ModelUsageMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
	delete(m.clearedFields, modelusage.FieldChatID)
}

// SetModelName sets the "model_name" field.
func (m *ModelUsageMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ModelUsageMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ModelUsageMutation) ResetModelName() {
	m.model_name = nil
}

// SetProvider sets the "provider" field.
func (m *ModelUsageMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelUsageMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelUsageMutation) ResetProvider() {
	m.provider = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *ModelUsageMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *ModelUsageMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *ModelUsageMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *ModelUsageMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *ModelUsageMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *ModelUsageMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *ModelUsageMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *ModelUsageMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *ModelUsageMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *ModelUsageMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ModelUsageMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ModelUsageMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ModelUsageMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ModelUsageMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ModelUsageMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetQuerySize sets the "query_size" field.
func (m *ModelUsageMutation) SetQuerySize(i int) {
	m.query_size = &i
	m.addquery_size = nil
}

// QuerySize returns the value of the "query_size" field in the mutation.
func (m *ModelUsageMutation) QuerySize() (r int, exists bool) {
	v := m.query_size
	if v == nil {
		return
	}
	return *v, true
}

// OldQuerySize returns the old "query_size" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldQuerySize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuerySize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuerySize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuerySize: %w", err)
	}
	return oldValue.QuerySize, nil
}

// AddQuerySize adds i to the "query_size" field.
func (m *ModelUsageMutation) AddQuerySize(i int) {
	if m.addquery_size != nil {
		*m.addquery_size += i
	} else {
		m.addquery_size = &i
	}
}

// AddedQuerySize returns the value that was added to the "query_size" field in this mutation.
func (m *ModelUsageMutation) AddedQuerySize() (r int, exists bool) {
	v := m.addquery_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuerySize resets all changes to the "query_size" field.
func (m *ModelUsageMutation) ResetQuerySize() {
	m.query_size = nil
	m.addquery_size = nil
}

// SetResponseSize sets the "response_size" field.
func (m *ModelUsageMutation) SetResponseSize(i int) {
	m.response_size = &i
	m.addresponse_size = nil
}

// ResponseSize returns the value of the "response_size" field in the mutation.
func (m *ModelUsageMutation) ResponseSize() (r int, exists bool) {
	v := m.response_size
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSize returns the old "response_size" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldResponseSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSize: %w", err)
	}
	return oldValue.ResponseSize, nil
}

// AddResponseSize adds i to the "response_size" field.
func (m *ModelUsageMutation) AddResponseSize(i int) {
	if m.addresponse_size != nil {
		*m.addresponse_size += i
	} else {
		m.addresponse_size = &i
	}
}

// AddedResponseSize returns the value that was added to the "response_size" field in this mutation.
func (m *ModelUsageMutation) AddedResponseSize() (r int, exists bool) {
	v := m.addresponse_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseSize resets all changes to the "response_size" field.
func (m *ModelUsageMutation) ResetResponseSize() {
	m.response_size = nil
	m.addresponse_size = nil
}

// SetCost sets the "cost" field.
func (m *ModelUsageMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ModelUsageMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ModelUsageMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ModelUsageMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *ModelUsageMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ModelUsageMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ModelUsageMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ModelUsageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetIsStreaming sets the "is_streaming" field.
func (m *ModelUsageMutation) SetIsStreaming(b bool) {
	m.is_streaming = &b
}

// IsStreaming returns the value of the "is_streaming" field in the mutation.
func (m *ModelUsageMutation) IsStreaming() (r bool, exists bool) {
	v := m.is_streaming
	if v == nil {
		return
	}
	return *v, true
}

// OldIsStreaming returns the old "is_streaming" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldIsStreaming(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsStreaming is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsStreaming requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsStreaming: %w", err)
	}
	return oldValue.IsStreaming, nil
}

// ResetIsStreaming resets all changes to the "is_streaming" field.
func (m *ModelUsageMutation) ResetIsStreaming() {
	m.is_streaming = nil
}

// SetRequestTimeMs sets the "request_time_ms" field.
func (m *ModelUsageMutation) SetRequestTimeMs(i int) {
	m.request_time_ms = &i
	m.addrequest_time_ms = nil
}

// RequestTimeMs returns the value of the "request_time_ms" field in the mutation.
func (m *ModelUsageMutation) RequestTimeMs() (r int, exists bool) {
	v := m.request_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestTimeMs returns the old "request_time_ms" field's value of the ModelUsage entity.
// If the ModelUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelUsageMutation) OldRequestTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestTimeMs: %w", err)
	}
	return oldValue.RequestTimeMs, nil
}

// AddRequestTimeMs adds i to the "request_time_ms" field.
func (m *ModelUsageMutation) AddRequestTimeMs(i int) {
	if m.addrequest_time_ms != nil {
		*m.addrequest_time_ms += i
	} else {
		m.addrequest_time_ms = &i
	}
}

// AddedRequestTimeMs returns the value that was added to the "request_time_ms" field in this mutation.
func (m *ModelUsageMutation) AddedRequestTimeMs() (r int, exists bool) {
	v := m.addrequest_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearRequestTimeMs clears the value of the "request_time_ms" field.
func (m *ModelUsageMutation) ClearRequestTimeMs() {
	m.request_time_ms = nil
	m.addrequest_time_ms = nil
	m.clearedFields[modelusage.FieldRequestTimeMs] = struct{}{}
}

// RequestTimeMsCleared returns if the "request_time_ms" field was cleared in this mutation.
func (m *ModelUsageMutation) RequestTimeMsCleared() bool {
	_, ok := m.clearedFields[modelusage.FieldRequestTimeMs]
	return ok
}

// ResetRequestTimeMs resets all changes to the "request_time_ms" field.
func (m *ModelUsageMutation) ResetRequestTimeMs() {
	m.request_time_ms = nil
	m.addrequest_time_ms = nil
	delete(m.clearedFields, modelusage.FieldRequestTimeMs)
}

// ClearUser clears the "user" edge to the User entity.
func (m *ModelUsageMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[modelusage.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ModelUsageMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ModelUsageMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ModelUsageMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the ModelUsageMutation builder.
func (m *ModelUsageMutation) Where(ps ...predicate.ModelUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelUsage).
func (m *ModelUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelUsageMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user != nil {
		fields = append(fields, modelusage.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, modelusage.FieldChatID)
	}
	if m.model_name != nil {
		fields = append(fields, modelusage.FieldModelName)
	}
	if m.provider != nil {
		fields = append(fields, modelusage.FieldProvider)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, modelusage.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, modelusage.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, modelusage.FieldTotalTokens)
	}
	if m.query_size != nil {
		fields = append(fields, modelusage.FieldQuerySize)
	}
	if m.response_size != nil {
		fields = append(fields, modelusage.FieldResponseSize)
	}
	if m.cost != nil {
		fields = append(fields, modelusage.FieldCost)
	}
	if m.timestamp != nil {
		fields = append(fields, modelusage.FieldTimestamp)
	}
	if m.is_streaming != nil {
		fields = append(fields, modelusage.FieldIsStreaming)
	}
	if m.request_time_ms != nil {
		fields = append(fields, modelusage.FieldRequestTimeMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelusage.FieldUserID:
		return m.UserID()
	case modelusage.FieldChatID:
		return m.ChatID()
	case modelusage.FieldModelName:
		return m.ModelName()
	case modelusage.FieldProvider:
		return m.Provider()
	case modelusage.FieldPromptTokens:
		return m.PromptTokens()
	case modelusage.FieldCompletionTokens:
		return m.CompletionTokens()
	case modelusage.FieldTotalTokens:
		return m.TotalTokens()
	case modelusage.FieldQuerySize:
		return m.QuerySize()
	case modelusage.FieldResponseSize:
		return m.ResponseSize()
	case modelusage.FieldCost:
		return m.Cost()
	case modelusage.FieldTimestamp:
		return m.Timestamp()
	case modelusage.FieldIsStreaming:
		return m.IsStreaming()
	case modelusage.FieldRequestTimeMs:
		return m.RequestTimeMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelusage.FieldUserID:
		return m.OldUserID(ctx)
	case modelusage.FieldChatID:
		return m.OldChatID(ctx)
	case modelusage.FieldModelName:
		return m.OldModelName(ctx)
	case modelusage.FieldProvider:
		return m.OldProvider(ctx)
	case modelusage.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case modelusage.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case modelusage.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case modelusage.FieldQuerySize:
		return m.OldQuerySize(ctx)
	case modelusage.FieldResponseSize:
		return m.OldResponseSize(ctx)
	case modelusage.FieldCost:
		return m.OldCost(ctx)
	case modelusage.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case modelusage.FieldIsStreaming:
		return m.OldIsStreaming(ctx)
	case modelusage.FieldRequestTimeMs:
		return m.OldRequestTimeMs(ctx)
	}
	return nil, fmt.Errorf("unknown ModelUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelusage.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case modelusage.FieldChatID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case modelusage.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case modelusage.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case modelusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case modelusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case modelusage.FieldQuerySize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuerySize(v)
		return nil
	case modelusage.FieldResponseSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSize(v)
		return nil
	case modelusage.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case modelusage.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case modelusage.FieldIsStreaming:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsStreaming(v)
		return nil
	case modelusage.FieldRequestTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown ModelUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelUsageMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, modelusage.FieldChatID)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, modelusage.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, modelusage.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, modelusage.FieldTotalTokens)
	}
	if m.addquery_size != nil {
		fields = append(fields, modelusage.FieldQuerySize)
	}
	if m.addresponse_size != nil {
		fields = append(fields, modelusage.FieldResponseSize)
	}
	if m.addcost != nil {
		fields = append(fields, modelusage.FieldCost)
	}
	if m.addrequest_time_ms != nil {
		fields = append(fields, modelusage.FieldRequestTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelusage.FieldChatID:
		return m.AddedChatID()
	case modelusage.FieldPromptTokens:
		return m.AddedPromptTokens()
	case modelusage.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case modelusage.FieldTotalTokens:
		return m.AddedTotalTokens()
	case modelusage.FieldQuerySize:
		return m.AddedQuerySize()
	case modelusage.FieldResponseSize:
		return m.AddedResponseSize()
	case modelusage.FieldCost:
		return m.AddedCost()
	case modelusage.FieldRequestTimeMs:
		return m.AddedRequestTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelusage.FieldChatID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case modelusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case modelusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case modelusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case modelusage.FieldQuerySize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuerySize(v)
		return nil
	case modelusage.FieldResponseSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseSize(v)
		return nil
	case modelusage.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case modelusage.FieldRequestTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown ModelUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelusage.FieldUserID) {
		fields = append(fields, modelusage.FieldUserID)
	}
	if m.FieldCleared(modelusage.FieldChatID) {
		fields = append(fields, modelusage.FieldChatID)
	}
	if m.FieldCleared(modelusage.FieldRequestTimeMs) {
		fields = append(fields, modelusage.FieldRequestTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelUsageMutation) ClearField(name string) error {
	switch name {
	case modelusage.FieldUserID:
		m.ClearUserID()
		return nil
	case modelusage.FieldChatID:
		m.ClearChatID()
		return nil
	case modelusage.FieldRequestTimeMs:
		m.ClearRequestTimeMs()
		return nil
	}
	return fmt.Errorf("unknown ModelUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelUsageMutation) ResetField(name string) error {
	switch name {
	case modelusage.FieldUserID:
		m.ResetUserID()
		return nil
	case modelusage.FieldChatID:
		m.ResetChatID()
		return nil
	case modelusage.FieldModelName:
		m.ResetModelName()
		return nil
	case modelusage.FieldProvider:
		m.ResetProvider()
		return nil
	case modelusage.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case modelusage.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case modelusage.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case modelusage.FieldQuerySize:
		m.ResetQuerySize()
		return nil
	case modelusage.FieldResponseSize:
		m.ResetResponseSize()
		return nil
	case modelusage.FieldCost:
		m.ResetCost()
		return nil
	case modelusage.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case modelusage.FieldIsStreaming:
		m.ResetIsStreaming()
		return nil
	case modelusage.FieldRequestTimeMs:
		m.ResetRequestTimeMs()
		return nil
	}
	return fmt.Errorf("unknown ModelUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, modelusage.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case modelusage.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, modelusage.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case modelusage.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelUsageMutation) ClearEdge(name string) error {
	switch name {
	case modelusage.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown ModelUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelUsageMutation) ResetEdge(name string) error {
	switch name {
	case modelusage.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown ModelUsage edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	username                     *string
	email                        *string
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	chats                        map[int]struct{}
	removedchats                 map[int]struct{}
	clearedchats                 bool
	template_preferences         map[int]struct{}
	removedtemplate_preferences  map[int]struct{}
	clearedtemplate_preferences  bool
	usage_records                map[int]struct{}
	removedusage_records         map[int]struct{}
	clearedusage_records         bool
	deep_analysis_reports        map[int]struct{}
	removeddeep_analysis_reports map[int]struct{}
	cleareddeep_analysis_reports bool
	done                         bool
	oldValue                     func(context.Context) (*User, error)
	predicates                   []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddChatIDs adds the "chats" edge to the Chat entity by ids.
func (m *UserMutation) AddChatIDs(ids ...int) {
	if m.chats == nil {
		m.chats = make(map[int]struct{})
	}
	for i := range ids {
		m.chats[ids[i]] = struct{}{}
	}
}

// ClearChats clears the "chats" edge to the Chat entity.
func (m *UserMutation) ClearChats() {
	m.clearedchats = true
}

// ChatsCleared reports if the "chats" edge to the Chat entity was cleared.
func (m *UserMutation) ChatsCleared() bool {
	return m.clearedchats
}

// RemoveChatIDs removes the "chats" edge to the Chat entity by IDs.
func (m *UserMutation) RemoveChatIDs(ids ...int) {
	if m.removedchats == nil {
		m.removedchats = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chats, ids[i])
		m.removedchats[ids[i]] = struct{}{}
	}
}

// RemovedChats returns the removed IDs of the "chats" edge to the Chat entity.
func (m *UserMutation) RemovedChatsIDs() (ids []int) {
	for id := range m.removedchats {
		ids = append(ids, id)
	}
	return
}

// ChatsIDs returns the "chats" edge IDs in the mutation.
func (m *UserMutation) ChatsIDs() (ids []int) {
	for id := range m.chats {
		ids = append(ids, id)
	}
	return
}

// ResetChats resets all changes to the "chats" edge.
func (m *UserMutation) ResetChats() {
	m.chats = nil
	m.clearedchats = false
	m.removedchats = nil
}

// AddTemplatePreferenceIDs adds the "template_preferences" edge to the UserTemplatePreference entity by ids.
func (m *UserMutation) AddTemplatePreferenceIDs(ids ...int) {
	if m.template_preferences == nil {
		m.template_preferences = make(map[int]struct{})
	}
	for i := range ids {
		m.template_preferences[ids[i]] = struct{}{}
	}
}

// ClearTemplatePreferences clears the "template_preferences" edge to the UserTemplatePreference entity.
func (m *UserMutation) ClearTemplatePreferences() {
	m.clearedtemplate_preferences = true
}

// TemplatePreferencesCleared reports if the "template_preferences" edge to the UserTemplatePreference entity was cleared.
func (m *UserMutation) TemplatePreferencesCleared() bool {
	return m.clearedtemplate_preferences
}

// RemoveTemplatePreferenceIDs removes the "template_preferences" edge to the UserTemplatePreference entity by IDs.
func (m *UserMutation) RemoveTemplatePreferenceIDs(ids ...int) {
	if m.removedtemplate_preferences == nil {
		m.removedtemplate_preferences = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.template_preferences, ids[i])
		m.removedtemplate_preferences[ids[i]] = struct{}{}
	}
}

// RemovedTemplatePreferences returns the removed IDs of the "template_preferences" edge to the UserTemplatePreference entity.
func (m *UserMutation) RemovedTemplatePreferencesIDs() (ids []int) {
	for id := range m.removedtemplate_preferences {
		ids = append(ids, id)
	}
	return
}

// TemplatePreferencesIDs returns the "template_preferences" edge IDs in the mutation.
func (m *UserMutation) TemplatePreferencesIDs() (ids []int) {
	for id := range m.template_preferences {
		ids = append(ids, id)
	}
	return
}

// ResetTemplatePreferences resets all changes to the "template_preferences" edge.
func (m *UserMutation) ResetTemplatePreferences() {
	m.template_preferences = nil
	m.clearedtemplate_preferences = false
	m.removedtemplate_preferences = nil
}

// AddUsageRecordIDs adds the "usage_records" edge to the ModelUsage entity by ids.
func (m *UserMutation) AddUsageRecordIDs(ids ...int) {
	if m.usage_records == nil {
		m.usage_records = make(map[int]struct{})
	}
	for i := range ids {
		m.usage_records[ids[i]] = struct{}{}
	}
}

// ClearUsageRecords clears the "usage_records" edge to the ModelUsage entity.
func (m *UserMutation) ClearUsageRecords() {
	m.clearedusage_records = true
}

// UsageRecordsCleared reports if the "usage_records" edge to the ModelUsage entity was cleared.
func (m *UserMutation) UsageRecordsCleared() bool {
	return m.clearedusage_records
}

// RemoveUsageRecordIDs removes the "usage_records" edge to the ModelUsage entity by IDs.
func (m *UserMutation) RemoveUsageRecordIDs(ids ...int) {
	if m.removedusage_records == nil {
		m.removedusage_records = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.usage_records, ids[i])
		m.removedusage_records[ids[i]] = struct{}{}
	}
}

// RemovedUsageRecords returns the removed IDs of the "usage_records" edge to the ModelUsage entity.
func (m *UserMutation) RemovedUsageRecordsIDs() (ids []int) {
	for id := range m.removedusage_records {
		ids = append(ids, id)
	}
	return
}

// UsageRecordsIDs returns the "usage_records" edge IDs in the mutation.
func (m *UserMutation) UsageRecordsIDs() (ids []int) {
	for id := range m.usage_records {
		ids = append(ids, id)
	}
	return
}

// ResetUsageRecords resets all changes to the "usage_records" edge.
func (m *UserMutation) ResetUsageRecords() {
	m.usage_records = nil
	m.clearedusage_records = false
	m.removedusage_records = nil
}

// AddDeepAnalysisReportIDs adds the "deep_analysis_reports" edge to the DeepAnalysisReport entity by ids.
func (m *UserMutation) AddDeepAnalysisReportIDs(ids ...int) {
	if m.deep_analysis_reports == nil {
		m.deep_analysis_reports = make(map[int]struct{})
	}
	for i := range ids {
		m.deep_analysis_reports[ids[i]] = struct{}{}
	}
}

// ClearDeepAnalysisReports clears the "deep_analysis_reports" edge to the DeepAnalysisReport entity.
func (m *UserMutation) ClearDeepAnalysisReports() {
	m.cleareddeep_analysis_reports = true
}

// DeepAnalysisReportsCleared reports if the "deep_analysis_reports" edge to the DeepAnalysisReport entity was cleared.
func (m *UserMutation) DeepAnalysisReportsCleared() bool {
	return m.cleareddeep_analysis_reports
}

// RemoveDeepAnalysisReportIDs removes the "deep_analysis_reports" edge to the DeepAnalysisReport entity by IDs.
func (m *UserMutation) RemoveDeepAnalysisReportIDs(ids ...int) {
	if m.removeddeep_analysis_reports == nil {
		m.removeddeep_analysis_reports = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deep_analysis_reports, ids[i])
		m.removeddeep_analysis_reports[ids[i]] = struct{}{}
	}
}

// RemovedDeepAnalysisReports returns the removed IDs of the "deep_analysis_reports" edge to the DeepAnalysisReport entity.
func (m *UserMutation) RemovedDeepAnalysisReportsIDs() (ids []int) {
	for id := range m.removeddeep_analysis_reports {
		ids = append(ids, id)
	}
	return
}

// DeepAnalysisReportsIDs returns the "deep_analysis_reports" edge IDs in the mutation.
func (m *UserMutation) DeepAnalysisReportsIDs() (ids []int) {
	for id := range m.deep_analysis_reports {
		ids = append(ids, id)
	}
	return
}

// ResetDeepAnalysisReports resets all changes to the "deep_analysis_reports" edge.
func (m *UserMutation) ResetDeepAnalysisReports() {
	m.deep_analysis_reports = nil
	m.cleareddeep_analysis_reports = false
	m.removeddeep_analysis_reports = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.chats != nil {
		edges = append(edges, user.EdgeChats)
	}
	if m.template_preferences != nil {
		edges = append(edges, user.EdgeTemplatePreferences)
	}
	if m.usage_records != nil {
		edges = append(edges, user.EdgeUsageRecords)
	}
	if m.deep_analysis_reports != nil {
		edges = append(edges, user.EdgeDeepAnalysisReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeChats:
		ids := make([]ent.Value, 0, len(m.chats))
		for id := range m.chats {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTemplatePreferences:
		ids := make([]ent.Value, 0, len(m.template_preferences))
		for id := range m.template_preferences {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUsageRecords:
		ids := make([]ent.Value, 0, len(m.usage_records))
		for id := range m.usage_records {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDeepAnalysisReports:
		ids := make([]ent.Value, 0, len(m.deep_analysis_reports))
		for id := range m.deep_analysis_reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchats != nil {
		edges = append(edges, user.EdgeChats)
	}
	if m.removedtemplate_preferences != nil {
		edges = append(edges, user.EdgeTemplatePreferences)
	}
	if m.removedusage_records != nil {
		edges = append(edges, user.EdgeUsageRecords)
	}
	if m.removeddeep_analysis_reports != nil {
		edges = append(edges, user.EdgeDeepAnalysisReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeChats:
		ids := make([]ent.Value, 0, len(m.removedchats))
		for id := range m.removedchats {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTemplatePreferences:
		ids := make([]ent.Value, 0, len(m.removedtemplate_preferences))
		for id := range m.removedtemplate_preferences {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUsageRecords:
		ids := make([]ent.Value, 0, len(m.removedusage_records))
		for id := range m.removedusage_records {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDeepAnalysisReports:
		ids := make([]ent.Value, 0, len(m.removeddeep_analysis_reports))
		for id := range m.removeddeep_analysis_reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedchats {
		edges = append(edges, user.EdgeChats)
	}
	if m.clearedtemplate_preferences {
		edges = append(edges, user.EdgeTemplatePreferences)
	}
	if m.clearedusage_records {
		edges = append(edges, user.EdgeUsageRecords)
	}
	if m.cleareddeep_analysis_reports {
		edges = append(edges, user.EdgeDeepAnalysisReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeChats:
		return m.clearedchats
	case user.EdgeTemplatePreferences:
		return m.clearedtemplate_preferences
	case user.EdgeUsageRecords:
		return m.clearedusage_records
	case user.EdgeDeepAnalysisReports:
		return m.cleareddeep_analysis_reports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeChats:
		m.ResetChats()
		return nil
	case user.EdgeTemplatePreferences:
		m.ResetTemplatePreferences()
		return nil
	case user.EdgeUsageRecords:
		m.ResetUsageRecords()
		return nil
	case user.EdgeDeepAnalysisReports:
		m.ResetDeepAnalysisReports()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserTemplatePreferenceMutation represents an operation that mutates the UserTemplatePreference nodes in the graph.
type UserTemplatePreferenceMutation struct {
	config
	op              Op
	typ             string
	id              *int
	is_enabled      *bool
	usage_count     *int
	addusage_count  *int
	last_used_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	user            *int
	cleareduser     bool
	template        *int
	clearedtemplate bool
	done            bool
	oldValue        func(context.Context) (*UserTemplatePreference, error)
	predicates      []predicate.UserTemplatePreference
}

var _ ent.Mutation = (*UserTemplatePreferenceMutation)(nil)

// usertemplatepreferenceOption allows management of the mutation configuration using functional options.
type usertemplatepreferenceOption func(*UserTemplatePreferenceMutation)

// newUserTemplatePreferenceMutation creates new mutation for the UserTemplatePreference entity.
func newUserTemplatePreferenceMutation(c config, op Op, opts ...usertemplatepreferenceOption) *UserTemplatePreferenceMutation {
	m := &UserTemplatePreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeUserTemplatePreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserTemplatePreferenceID sets the ID field of the mutation.
func withUserTemplatePreferenceID(id int) usertemplatepreferenceOption {
	return func(m *UserTemplatePreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *UserTemplatePreference
		)
		m.oldValue = func(ctx context.Context) (*UserTemplatePreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserTemplatePreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserTemplatePreference sets the old UserTemplatePreference of the mutation.
func withUserTemplatePreference(node *UserTemplatePreference) usertemplatepreferenceOption {
	return func(m *UserTemplatePreferenceMutation) {
		m.oldValue = func(context.Context) (*UserTemplatePreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserTemplatePreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserTemplatePreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserTemplatePreferenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserTemplatePreferenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserTemplatePreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserTemplatePreferenceMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserTemplatePreferenceMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserTemplatePreferenceMutation) ResetUserID() {
	m.user = nil
}

// SetTemplateID sets the "template_id" field.
func (m *UserTemplatePreferenceMutation) SetTemplateID(i int) {
	m.template = &i
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *UserTemplatePreferenceMutation) TemplateID() (r int, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldTemplateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *UserTemplatePreferenceMutation) ResetTemplateID() {
	m.template = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *UserTemplatePreferenceMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *UserTemplatePreferenceMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *UserTemplatePreferenceMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *UserTemplatePreferenceMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *UserTemplatePreferenceMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *UserTemplatePreferenceMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *UserTemplatePreferenceMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *UserTemplatePreferenceMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserTemplatePreferenceMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserTemplatePreferenceMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserTemplatePreferenceMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usertemplatepreference.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserTemplatePreferenceMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usertemplatepreference.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserTemplatePreferenceMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usertemplatepreference.FieldLastUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserTemplatePreferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserTemplatePreferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserTemplatePreferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserTemplatePreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserTemplatePreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserTemplatePreference entity.
// If the UserTemplatePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTemplatePreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserTemplatePreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserTemplatePreferenceMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usertemplatepreference.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserTemplatePreferenceMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserTemplatePreferenceMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserTemplatePreferenceMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearTemplate clears the "template" edge to the AgentTemplate entity.
func (m *UserTemplatePreferenceMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[usertemplatepreference.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the AgentTemplate entity was cleared.
func (m *UserTemplatePreferenceMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *UserTemplatePreferenceMutation) TemplateIDs() (ids []int) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *UserTemplatePreferenceMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the UserTemplatePreferenceMutation builder.
func (m *UserTemplatePreferenceMutation) Where(ps ...predicate.UserTemplatePreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserTemplatePreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserTemplatePreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserTemplatePreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserTemplatePreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserTemplatePreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserTemplatePreference).
func (m *UserTemplatePreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserTemplatePreferenceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, usertemplatepreference.FieldUserID)
	}
	if m.template != nil {
		fields = append(fields, usertemplatepreference.FieldTemplateID)
	}
	if m.is_enabled != nil {
		fields = append(fields, usertemplatepreference.FieldIsEnabled)
	}
	if m.usage_count != nil {
		fields = append(fields, usertemplatepreference.FieldUsageCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, usertemplatepreference.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, usertemplatepreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usertemplatepreference.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserTemplatePreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usertemplatepreference.FieldUserID:
		return m.UserID()
	case usertemplatepreference.FieldTemplateID:
		return m.TemplateID()
	case usertemplatepreference.FieldIsEnabled:
		return m.IsEnabled()
	case usertemplatepreference.FieldUsageCount:
		return m.UsageCount()
	case usertemplatepreference.FieldLastUsedAt:
		return m.LastUsedAt()
	case usertemplatepreference.FieldCreatedAt:
		return m.CreatedAt()
	case usertemplatepreference.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserTemplatePreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usertemplatepreference.FieldUserID:
		return m.OldUserID(ctx)
	case usertemplatepreference.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case usertemplatepreference.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case usertemplatepreference.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case usertemplatepreference.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usertemplatepreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usertemplatepreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserTemplatePreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserTemplatePreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usertemplatepreference.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usertemplatepreference.FieldTemplateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case usertemplatepreference.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case usertemplatepreference.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case usertemplatepreference.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usertemplatepreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usertemplatepreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserTemplatePreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserTemplatePreferenceMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, usertemplatepreference.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserTemplatePreferenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usertemplatepreference.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserTemplatePreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usertemplatepreference.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown UserTemplatePreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserTemplatePreferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usertemplatepreference.FieldLastUsedAt) {
		fields = append(fields, usertemplatepreference.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserTemplatePreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserTemplatePreferenceMutation) ClearField(name string) error {
	switch name {
	case usertemplatepreference.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown UserTemplatePreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserTemplatePreferenceMutation) ResetField(name string) error {
	switch name {
	case usertemplatepreference.FieldUserID:
		m.ResetUserID()
		return nil
	case usertemplatepreference.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case usertemplatepreference.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case usertemplatepreference.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case usertemplatepreference.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usertemplatepreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usertemplatepreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserTemplatePreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserTemplatePreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, usertemplatepreference.EdgeUser)
	}
	if m.template != nil {
		edges = append(edges, usertemplatepreference.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserTemplatePreferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usertemplatepreference.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case usertemplatepreference.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserTemplatePreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserTemplatePreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserTemplatePreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, usertemplatepreference.EdgeUser)
	}
	if m.clearedtemplate {
		edges = append(edges, usertemplatepreference.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserTemplatePreferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case usertemplatepreference.EdgeUser:
		return m.cleareduser
	case usertemplatepreference.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserTemplatePreferenceMutation) ClearEdge(name string) error {
	switch name {
	case usertemplatepreference.EdgeUser:
		m.ClearUser()
		return nil
	case usertemplatepreference.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown UserTemplatePreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserTemplatePreferenceMutation) ResetEdge(name string) error {
	switch name {
	case usertemplatepreference.EdgeUser:
		m.ResetUser()
		return nil
	case usertemplatepreference.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown UserTemplatePreference edge %s", name)
}
