// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Chats holds the value of the chats edge.
	Chats []*Chat `json:"chats,omitempty"`
	// TemplatePreferences holds the value of the template_preferences edge.
	TemplatePreferences []*UserTemplatePreference `json:"template_preferences,omitempty"`
	// UsageRecords holds the value of the usage_records edge.
	UsageRecords []*ModelUsage `json:"usage_records,omitempty"`
	// DeepAnalysisReports holds the value of the deep_analysis_reports edge.
	DeepAnalysisReports []*DeepAnalysisReport `json:"deep_analysis_reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ChatsOrErr returns the Chats value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ChatsOrErr() ([]*Chat, error) {
	if e.loadedTypes[0] {
		return e.Chats, nil
	}
	return nil, &NotLoadedError{edge: "chats"}
}

// TemplatePreferencesOrErr returns the TemplatePreferences value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TemplatePreferencesOrErr() ([]*UserTemplatePreference, error) {
	if e.loadedTypes[1] {
		return e.TemplatePreferences, nil
	}
	return nil, &NotLoadedError{edge: "template_preferences"}
}

// UsageRecordsOrErr returns the UsageRecords value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) UsageRecordsOrErr() ([]*ModelUsage, error) {
	if e.loadedTypes[2] {
		return e.UsageRecords, nil
	}
	return nil, &NotLoadedError{edge: "usage_records"}
}

// DeepAnalysisReportsOrErr returns the DeepAnalysisReports value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DeepAnalysisReportsOrErr() ([]*DeepAnalysisReport, error) {
	if e.loadedTypes[3] {
		return e.DeepAnalysisReports, nil
	}
	return nil, &NotLoadedError{edge: "deep_analysis_reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			values[i] = new(sql.NullInt64)
		case user.FieldUsername, user.FieldEmail:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case user.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChats queries the "chats" edge of the User entity.
func (_m *User) QueryChats() *ChatQuery {
	return NewUserClient(_m.config).QueryChats(_m)
}

// QueryTemplatePreferences queries the "template_preferences" edge of the User entity.
func (_m *User) QueryTemplatePreferences() *UserTemplatePreferenceQuery {
	return NewUserClient(_m.config).QueryTemplatePreferences(_m)
}

// QueryUsageRecords queries the "usage_records" edge of the User entity.
func (_m *User) QueryUsageRecords() *ModelUsageQuery {
	return NewUserClient(_m.config).QueryUsageRecords(_m)
}

// QueryDeepAnalysisReports queries the "deep_analysis_reports" edge of the User entity.
func (_m *User) QueryDeepAnalysisReports() *DeepAnalysisReportQuery {
	return NewUserClient(_m.config).QueryDeepAnalysisReports(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
