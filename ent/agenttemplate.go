// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
)

// AgentTemplate is the model entity for the AgentTemplate schema.
type AgentTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TemplateName holds the value of the "template_name" field.
	TemplateName string `json:"template_name,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// PromptTemplate holds the value of the "prompt_template" field.
	PromptTemplate string `json:"prompt_template,omitempty"`
	// IconURL holds the value of the "icon_url" field.
	IconURL *string `json:"icon_url,omitempty"`
	// e.g. Data Manipulation, Data Modelling, Data Visualization
	Category string `json:"category,omitempty"`
	// IsPremiumOnly holds the value of the "is_premium_only" field.
	IsPremiumOnly bool `json:"is_premium_only,omitempty"`
	// VariantType holds the value of the "variant_type" field.
	VariantType agenttemplate.VariantType `json:"variant_type,omitempty"`
	// Name of the sibling template this one derives from
	BaseAgent *string `json:"base_agent,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentTemplateQuery when eager-loading is set.
	Edges        AgentTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentTemplateEdges holds the relations/edges for other nodes in the graph.
type AgentTemplateEdges struct {
	// UserPreferences holds the value of the user_preferences edge.
	UserPreferences []*UserTemplatePreference `json:"user_preferences,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserPreferencesOrErr returns the UserPreferences value or an error if the edge
// was not loaded in eager-loading.
func (e AgentTemplateEdges) UserPreferencesOrErr() ([]*UserTemplatePreference, error) {
	if e.loadedTypes[0] {
		return e.UserPreferences, nil
	}
	return nil, &NotLoadedError{edge: "user_preferences"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttemplate.FieldIsPremiumOnly, agenttemplate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case agenttemplate.FieldID:
			values[i] = new(sql.NullInt64)
		case agenttemplate.FieldTemplateName, agenttemplate.FieldDisplayName, agenttemplate.FieldDescription, agenttemplate.FieldPromptTemplate, agenttemplate.FieldIconURL, agenttemplate.FieldCategory, agenttemplate.FieldVariantType, agenttemplate.FieldBaseAgent:
			values[i] = new(sql.NullString)
		case agenttemplate.FieldCreatedAt, agenttemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentTemplate fields.
func (_m *AgentTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttemplate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agenttemplate.FieldTemplateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_name", values[i])
			} else if value.Valid {
				_m.TemplateName = value.String
			}
		case agenttemplate.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case agenttemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case agenttemplate.FieldPromptTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_template", values[i])
			} else if value.Valid {
				_m.PromptTemplate = value.String
			}
		case agenttemplate.FieldIconURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon_url", values[i])
			} else if value.Valid {
				_m.IconURL = new(string)
				*_m.IconURL = value.String
			}
		case agenttemplate.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case agenttemplate.FieldIsPremiumOnly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_premium_only", values[i])
			} else if value.Valid {
				_m.IsPremiumOnly = value.Bool
			}
		case agenttemplate.FieldVariantType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant_type", values[i])
			} else if value.Valid {
				_m.VariantType = agenttemplate.VariantType(value.String)
			}
		case agenttemplate.FieldBaseAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_agent", values[i])
			} else if value.Valid {
				_m.BaseAgent = new(string)
				*_m.BaseAgent = value.String
			}
		case agenttemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case agenttemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agenttemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *AgentTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUserPreferences queries the "user_preferences" edge of the AgentTemplate entity.
func (_m *AgentTemplate) QueryUserPreferences() *UserTemplatePreferenceQuery {
	return NewAgentTemplateClient(_m.config).QueryUserPreferences(_m)
}

// Update returns a builder for updating this AgentTemplate.
// Note that you need to call AgentTemplate.Unwrap() before calling this method if this AgentTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentTemplate) Update() *AgentTemplateUpdateOne {
	return NewAgentTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentTemplate) Unwrap() *AgentTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("AgentTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("template_name=")
	builder.WriteString(_m.TemplateName)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("prompt_template=")
	builder.WriteString(_m.PromptTemplate)
	builder.WriteString(", ")
	if v := _m.IconURL; v != nil {
		builder.WriteString("icon_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("is_premium_only=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPremiumOnly))
	builder.WriteString(", ")
	builder.WriteString("variant_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.VariantType))
	builder.WriteString(", ")
	if v := _m.BaseAgent; v != nil {
		builder.WriteString("base_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentTemplates is a parsable slice of AgentTemplate.
type AgentTemplates []*AgentTemplate
