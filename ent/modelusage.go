// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/user"
)

// ModelUsage is the model entity for the ModelUsage schema.
type ModelUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *int `json:"user_id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID *int `json:"chat_id,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// Request size in characters
	QuerySize int `json:"query_size,omitempty"`
	// Response size in characters
	ResponseSize int `json:"response_size,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost float64 `json:"cost,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// IsStreaming holds the value of the "is_streaming" field.
	IsStreaming bool `json:"is_streaming,omitempty"`
	// RequestTimeMs holds the value of the "request_time_ms" field.
	RequestTimeMs *int `json:"request_time_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ModelUsageQuery when eager-loading is set.
	Edges        ModelUsageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ModelUsageEdges holds the relations/edges for other nodes in the graph.
type ModelUsageEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ModelUsageEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelusage.FieldIsStreaming:
			values[i] = new(sql.NullBool)
		case modelusage.FieldCost:
			values[i] = new(sql.NullFloat64)
		case modelusage.FieldID, modelusage.FieldUserID, modelusage.FieldChatID, modelusage.FieldPromptTokens, modelusage.FieldCompletionTokens, modelusage.FieldTotalTokens, modelusage.FieldQuerySize, modelusage.FieldResponseSize, modelusage.FieldRequestTimeMs:
			values[i] = new(sql.NullInt64)
		case modelusage.FieldModelName, modelusage.FieldProvider:
			values[i] = new(sql.NullString)
		case modelusage.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelUsage fields.
func (_m *ModelUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelusage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case modelusage.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(int)
				*_m.UserID = int(value.Int64)
			}
		case modelusage.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = new(int)
				*_m.ChatID = int(value.Int64)
			}
		case modelusage.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case modelusage.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case modelusage.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case modelusage.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case modelusage.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case modelusage.FieldQuerySize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field query_size", values[i])
			} else if value.Valid {
				_m.QuerySize = int(value.Int64)
			}
		case modelusage.FieldResponseSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_size", values[i])
			} else if value.Valid {
				_m.ResponseSize = int(value.Int64)
			}
		case modelusage.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case modelusage.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case modelusage.FieldIsStreaming:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_streaming", values[i])
			} else if value.Valid {
				_m.IsStreaming = value.Bool
			}
		case modelusage.FieldRequestTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_time_ms", values[i])
			} else if value.Valid {
				_m.RequestTimeMs = new(int)
				*_m.RequestTimeMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelUsage.
// This includes values selected through modifiers, order, etc.
func (_m *ModelUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ModelUsage entity.
func (_m *ModelUsage) QueryUser() *UserQuery {
	return NewModelUsageClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this ModelUsage.
// Note that you need to call ModelUsage.Unwrap() before calling this method if this ModelUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelUsage) Update() *ModelUsageUpdateOne {
	return NewModelUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelUsage) Unwrap() *ModelUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelUsage) String() string {
	var builder strings.Builder
	builder.WriteString("ModelUsage(")
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
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("query_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuerySize))
	builder.WriteString(", ")
	builder.WriteString("response_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseSize))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_streaming=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStreaming))
	builder.WriteString(", ")
	if v := _m.RequestTimeMs; v != nil {
		builder.WriteString("request_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ModelUsages is a parsable slice of ModelUsage.
type ModelUsages []*ModelUsage
