// Code generated by ent, DO NOT EDIT.

package codeexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the codeexecution type in the database.
	Label = "code_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldInitialCode holds the string denoting the initial_code field in the database.
	FieldInitialCode = "initial_code"
	// FieldLatestCode holds the string denoting the latest_code field in the database.
	FieldLatestCode = "latest_code"
	// FieldIsSuccessful holds the string denoting the is_successful field in the database.
	FieldIsSuccessful = "is_successful"
	// FieldFailedAgents holds the string denoting the failed_agents field in the database.
	FieldFailedAgents = "failed_agents"
	// FieldErrorMessages holds the string denoting the error_messages field in the database.
	FieldErrorMessages = "error_messages"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the codeexecution in the database.
	Table = "code_executions"
)

// Columns holds all SQL columns for codeexecution fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldChatID,
	FieldMessageID,
	FieldInitialCode,
	FieldLatestCode,
	FieldIsSuccessful,
	FieldFailedAgents,
	FieldErrorMessages,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CodeExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByInitialCode orders the results by the initial_code field.
func ByInitialCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialCode, opts...).ToFunc()
}

// ByLatestCode orders the results by the latest_code field.
func ByLatestCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestCode, opts...).ToFunc()
}

// ByIsSuccessful orders the results by the is_successful field.
func ByIsSuccessful(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSuccessful, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
