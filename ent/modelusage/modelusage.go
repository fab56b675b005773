// Code generated by ent, DO NOT EDIT.

package modelusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the modelusage type in the database.
	Label = "model_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldQuerySize holds the string denoting the query_size field in the database.
	FieldQuerySize = "query_size"
	// FieldResponseSize holds the string denoting the response_size field in the database.
	FieldResponseSize = "response_size"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldIsStreaming holds the string denoting the is_streaming field in the database.
	FieldIsStreaming = "is_streaming"
	// FieldRequestTimeMs holds the string denoting the request_time_ms field in the database.
	FieldRequestTimeMs = "request_time_ms"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the modelusage in the database.
	Table = "model_usage"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "model_usage"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for modelusage fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldChatID,
	FieldModelName,
	FieldProvider,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldTotalTokens,
	FieldQuerySize,
	FieldResponseSize,
	FieldCost,
	FieldTimestamp,
	FieldIsStreaming,
	FieldRequestTimeMs,
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
	// DefaultPromptTokens holds the default value on creation for the "prompt_tokens" field.
	DefaultPromptTokens int
	// DefaultCompletionTokens holds the default value on creation for the "completion_tokens" field.
	DefaultCompletionTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultQuerySize holds the default value on creation for the "query_size" field.
	DefaultQuerySize int
	// DefaultResponseSize holds the default value on creation for the "response_size" field.
	DefaultResponseSize int
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultIsStreaming holds the default value on creation for the "is_streaming" field.
	DefaultIsStreaming bool
)

// OrderOption defines the ordering options for the ModelUsage queries.
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

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByQuerySize orders the results by the query_size field.
func ByQuerySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuerySize, opts...).ToFunc()
}

// ByResponseSize orders the results by the response_size field.
func ByResponseSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseSize, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByIsStreaming orders the results by the is_streaming field.
func ByIsStreaming(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStreaming, opts...).ToFunc()
}

// ByRequestTimeMs orders the results by the request_time_ms field.
func ByRequestTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestTimeMs, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
