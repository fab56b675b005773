// Code generated by ent, DO NOT EDIT.

package modelusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldUserID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldChatID, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldModelName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldProvider, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldTotalTokens, v))
}

// QuerySize applies equality check predicate on the "query_size" field. It's identical to QuerySizeEQ.
func QuerySize(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldQuerySize, v))
}

// ResponseSize applies equality check predicate on the "response_size" field. It's identical to ResponseSizeEQ.
func ResponseSize(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldResponseSize, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldCost, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldTimestamp, v))
}

// IsStreaming applies equality check predicate on the "is_streaming" field. It's identical to IsStreamingEQ.
func IsStreaming(v bool) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldIsStreaming, v))
}

// RequestTimeMs applies equality check predicate on the "request_time_ms" field. It's identical to RequestTimeMsEQ.
func RequestTimeMs(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldRequestTimeMs, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotNull(FieldUserID))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldChatID, v))
}

// ChatIDIsNil applies the IsNil predicate on the "chat_id" field.
func ChatIDIsNil() predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIsNull(FieldChatID))
}

// ChatIDNotNil applies the NotNil predicate on the "chat_id" field.
func ChatIDNotNil() predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotNull(FieldChatID))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldContainsFold(FieldModelName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldContainsFold(FieldProvider, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldCompletionTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldTotalTokens, v))
}

// QuerySizeEQ applies the EQ predicate on the "query_size" field.
func QuerySizeEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldQuerySize, v))
}

// QuerySizeNEQ applies the NEQ predicate on the "query_size" field.
func QuerySizeNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldQuerySize, v))
}

// QuerySizeIn applies the In predicate on the "query_size" field.
func QuerySizeIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldQuerySize, vs...))
}

// QuerySizeNotIn applies the NotIn predicate on the "query_size" field.
func QuerySizeNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldQuerySize, vs...))
}

// QuerySizeGT applies the GT predicate on the "query_size" field.
func QuerySizeGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldQuerySize, v))
}

// QuerySizeGTE applies the GTE predicate on the "query_size" field.
func QuerySizeGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldQuerySize, v))
}

// QuerySizeLT applies the LT predicate on the "query_size" field.
func QuerySizeLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldQuerySize, v))
}

// QuerySizeLTE applies the LTE predicate on the "query_size" field.
func QuerySizeLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldQuerySize, v))
}

// ResponseSizeEQ applies the EQ predicate on the "response_size" field.
func ResponseSizeEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldResponseSize, v))
}

// ResponseSizeNEQ applies the NEQ predicate on the "response_size" field.
func ResponseSizeNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldResponseSize, v))
}

// ResponseSizeIn applies the In predicate on the "response_size" field.
func ResponseSizeIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldResponseSize, vs...))
}

// ResponseSizeNotIn applies the NotIn predicate on the "response_size" field.
func ResponseSizeNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldResponseSize, vs...))
}

// ResponseSizeGT applies the GT predicate on the "response_size" field.
func ResponseSizeGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldResponseSize, v))
}

// ResponseSizeGTE applies the GTE predicate on the "response_size" field.
func ResponseSizeGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldResponseSize, v))
}

// ResponseSizeLT applies the LT predicate on the "response_size" field.
func ResponseSizeLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldResponseSize, v))
}

// ResponseSizeLTE applies the LTE predicate on the "response_size" field.
func ResponseSizeLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldResponseSize, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldCost, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldTimestamp, v))
}

// IsStreamingEQ applies the EQ predicate on the "is_streaming" field.
func IsStreamingEQ(v bool) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldIsStreaming, v))
}

// IsStreamingNEQ applies the NEQ predicate on the "is_streaming" field.
func IsStreamingNEQ(v bool) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldIsStreaming, v))
}

// RequestTimeMsEQ applies the EQ predicate on the "request_time_ms" field.
func RequestTimeMsEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldEQ(FieldRequestTimeMs, v))
}

// RequestTimeMsNEQ applies the NEQ predicate on the "request_time_ms" field.
func RequestTimeMsNEQ(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNEQ(FieldRequestTimeMs, v))
}

// RequestTimeMsIn applies the In predicate on the "request_time_ms" field.
func RequestTimeMsIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIn(FieldRequestTimeMs, vs...))
}

// RequestTimeMsNotIn applies the NotIn predicate on the "request_time_ms" field.
func RequestTimeMsNotIn(vs ...int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotIn(FieldRequestTimeMs, vs...))
}

// RequestTimeMsGT applies the GT predicate on the "request_time_ms" field.
func RequestTimeMsGT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGT(FieldRequestTimeMs, v))
}

// RequestTimeMsGTE applies the GTE predicate on the "request_time_ms" field.
func RequestTimeMsGTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldGTE(FieldRequestTimeMs, v))
}

// RequestTimeMsLT applies the LT predicate on the "request_time_ms" field.
func RequestTimeMsLT(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLT(FieldRequestTimeMs, v))
}

// RequestTimeMsLTE applies the LTE predicate on the "request_time_ms" field.
func RequestTimeMsLTE(v int) predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldLTE(FieldRequestTimeMs, v))
}

// RequestTimeMsIsNil applies the IsNil predicate on the "request_time_ms" field.
func RequestTimeMsIsNil() predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldIsNull(FieldRequestTimeMs))
}

// RequestTimeMsNotNil applies the NotNil predicate on the "request_time_ms" field.
func RequestTimeMsNotNil() predicate.ModelUsage {
	return predicate.ModelUsage(sql.FieldNotNull(FieldRequestTimeMs))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ModelUsage {
	return predicate.ModelUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ModelUsage {
	return predicate.ModelUsage(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelUsage) predicate.ModelUsage {
	return predicate.ModelUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelUsage) predicate.ModelUsage {
	return predicate.ModelUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelUsage) predicate.ModelUsage {
	return predicate.ModelUsage(sql.NotPredicates(p))
}
