// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/codeexecution"
)

// CodeExecution is the model entity for the CodeExecution schema.
type CodeExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *int `json:"user_id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID *int `json:"chat_id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID *int `json:"message_id,omitempty"`
	// Code as first produced by the agents
	InitialCode string `json:"initial_code,omitempty"`
	// Most recent edited/fixed version
	LatestCode string `json:"latest_code,omitempty"`
	// IsSuccessful holds the value of the "is_successful" field.
	IsSuccessful *bool `json:"is_successful,omitempty"`
	// FailedAgents holds the value of the "failed_agents" field.
	FailedAgents []string `json:"failed_agents,omitempty"`
	// Agent name -> error output
	ErrorMessages map[string]string `json:"error_messages,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codeexecution.FieldFailedAgents, codeexecution.FieldErrorMessages:
			values[i] = new([]byte)
		case codeexecution.FieldIsSuccessful:
			values[i] = new(sql.NullBool)
		case codeexecution.FieldID, codeexecution.FieldUserID, codeexecution.FieldChatID, codeexecution.FieldMessageID:
			values[i] = new(sql.NullInt64)
		case codeexecution.FieldInitialCode, codeexecution.FieldLatestCode:
			values[i] = new(sql.NullString)
		case codeexecution.FieldCreatedAt, codeexecution.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeExecution fields.
func (_m *CodeExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codeexecution.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case codeexecution.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(int)
				*_m.UserID = int(value.Int64)
			}
		case codeexecution.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = new(int)
				*_m.ChatID = int(value.Int64)
			}
		case codeexecution.FieldMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(int)
				*_m.MessageID = int(value.Int64)
			}
		case codeexecution.FieldInitialCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_code", values[i])
			} else if value.Valid {
				_m.InitialCode = value.String
			}
		case codeexecution.FieldLatestCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_code", values[i])
			} else if value.Valid {
				_m.LatestCode = value.String
			}
		case codeexecution.FieldIsSuccessful:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_successful", values[i])
			} else if value.Valid {
				_m.IsSuccessful = new(bool)
				*_m.IsSuccessful = value.Bool
			}
		case codeexecution.FieldFailedAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedAgents); err != nil {
					return fmt.Errorf("unmarshal field failed_agents: %w", err)
				}
			}
		case codeexecution.FieldErrorMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorMessages); err != nil {
					return fmt.Errorf("unmarshal field error_messages: %w", err)
				}
			}
		case codeexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case codeexecution.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CodeExecution.
// This includes values selected through modifiers, order, etc.
func (_m *CodeExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CodeExecution.
// Note that you need to call CodeExecution.Unwrap() before calling this method if this CodeExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeExecution) Update() *CodeExecutionUpdateOne {
	return NewCodeExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeExecution) Unwrap() *CodeExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeExecution) String() string {
	var builder strings.Builder
	builder.WriteString("CodeExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ChatID; v != nil {
		builder.WriteString("chat_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("initial_code=")
	builder.WriteString(_m.InitialCode)
	builder.WriteString(", ")
	builder.WriteString("latest_code=")
	builder.WriteString(_m.LatestCode)
	builder.WriteString(", ")
	if v := _m.IsSuccessful; v != nil {
		builder.WriteString("is_successful=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("failed_agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedAgents))
	builder.WriteString(", ")
	builder.WriteString("error_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorMessages))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CodeExecutions is a parsable slice of CodeExecution.
type CodeExecutions []*CodeExecution
