// Code generated by ent, DO NOT EDIT.

package codeexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldUserID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldChatID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldMessageID, v))
}

// InitialCode applies equality check predicate on the "initial_code" field. It's identical to InitialCodeEQ.
func InitialCode(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldInitialCode, v))
}

// LatestCode applies equality check predicate on the "latest_code" field. It's identical to LatestCodeEQ.
func LatestCode(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldLatestCode, v))
}

// IsSuccessful applies equality check predicate on the "is_successful" field. It's identical to IsSuccessfulEQ.
func IsSuccessful(v bool) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldIsSuccessful, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldUserID))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldChatID, v))
}

// ChatIDIsNil applies the IsNil predicate on the "chat_id" field.
func ChatIDIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldChatID))
}

// ChatIDNotNil applies the NotNil predicate on the "chat_id" field.
func ChatIDNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldChatID))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v int) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldMessageID))
}

// InitialCodeEQ applies the EQ predicate on the "initial_code" field.
func InitialCodeEQ(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldInitialCode, v))
}

// InitialCodeNEQ applies the NEQ predicate on the "initial_code" field.
func InitialCodeNEQ(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldInitialCode, v))
}

// InitialCodeIn applies the In predicate on the "initial_code" field.
func InitialCodeIn(vs ...string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldInitialCode, vs...))
}

// InitialCodeNotIn applies the NotIn predicate on the "initial_code" field.
func InitialCodeNotIn(vs ...string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldInitialCode, vs...))
}

// InitialCodeGT applies the GT predicate on the "initial_code" field.
func InitialCodeGT(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldInitialCode, v))
}

// InitialCodeGTE applies the GTE predicate on the "initial_code" field.
func InitialCodeGTE(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldInitialCode, v))
}

// InitialCodeLT applies the LT predicate on the "initial_code" field.
func InitialCodeLT(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldInitialCode, v))
}

// InitialCodeLTE applies the LTE predicate on the "initial_code" field.
func InitialCodeLTE(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldInitialCode, v))
}

// InitialCodeContains applies the Contains predicate on the "initial_code" field.
func InitialCodeContains(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldContains(FieldInitialCode, v))
}

// InitialCodeHasPrefix applies the HasPrefix predicate on the "initial_code" field.
func InitialCodeHasPrefix(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldHasPrefix(FieldInitialCode, v))
}

// InitialCodeHasSuffix applies the HasSuffix predicate on the "initial_code" field.
func InitialCodeHasSuffix(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldHasSuffix(FieldInitialCode, v))
}

// InitialCodeIsNil applies the IsNil predicate on the "initial_code" field.
func InitialCodeIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldInitialCode))
}

// InitialCodeNotNil applies the NotNil predicate on the "initial_code" field.
func InitialCodeNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldInitialCode))
}

// InitialCodeEqualFold applies the EqualFold predicate on the "initial_code" field.
func InitialCodeEqualFold(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEqualFold(FieldInitialCode, v))
}

// InitialCodeContainsFold applies the ContainsFold predicate on the "initial_code" field.
func InitialCodeContainsFold(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldContainsFold(FieldInitialCode, v))
}

// LatestCodeEQ applies the EQ predicate on the "latest_code" field.
func LatestCodeEQ(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldLatestCode, v))
}

// LatestCodeNEQ applies the NEQ predicate on the "latest_code" field.
func LatestCodeNEQ(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldLatestCode, v))
}

// LatestCodeIn applies the In predicate on the "latest_code" field.
func LatestCodeIn(vs ...string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldLatestCode, vs...))
}

// LatestCodeNotIn applies the NotIn predicate on the "latest_code" field.
func LatestCodeNotIn(vs ...string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldLatestCode, vs...))
}

// LatestCodeGT applies the GT predicate on the "latest_code" field.
func LatestCodeGT(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldLatestCode, v))
}

// LatestCodeGTE applies the GTE predicate on the "latest_code" field.
func LatestCodeGTE(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldLatestCode, v))
}

// LatestCodeLT applies the LT predicate on the "latest_code" field.
func LatestCodeLT(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldLatestCode, v))
}

// LatestCodeLTE applies the LTE predicate on the "latest_code" field.
func LatestCodeLTE(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldLatestCode, v))
}

// LatestCodeContains applies the Contains predicate on the "latest_code" field.
func LatestCodeContains(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldContains(FieldLatestCode, v))
}

// LatestCodeHasPrefix applies the HasPrefix predicate on the "latest_code" field.
func LatestCodeHasPrefix(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldHasPrefix(FieldLatestCode, v))
}

// LatestCodeHasSuffix applies the HasSuffix predicate on the "latest_code" field.
func LatestCodeHasSuffix(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldHasSuffix(FieldLatestCode, v))
}

// LatestCodeIsNil applies the IsNil predicate on the "latest_code" field.
func LatestCodeIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldLatestCode))
}

// LatestCodeNotNil applies the NotNil predicate on the "latest_code" field.
func LatestCodeNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldLatestCode))
}

// LatestCodeEqualFold applies the EqualFold predicate on the "latest_code" field.
func LatestCodeEqualFold(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEqualFold(FieldLatestCode, v))
}

// LatestCodeContainsFold applies the ContainsFold predicate on the "latest_code" field.
func LatestCodeContainsFold(v string) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldContainsFold(FieldLatestCode, v))
}

// IsSuccessfulEQ applies the EQ predicate on the "is_successful" field.
func IsSuccessfulEQ(v bool) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldIsSuccessful, v))
}

// IsSuccessfulNEQ applies the NEQ predicate on the "is_successful" field.
func IsSuccessfulNEQ(v bool) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldIsSuccessful, v))
}

// IsSuccessfulIsNil applies the IsNil predicate on the "is_successful" field.
func IsSuccessfulIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldIsSuccessful))
}

// IsSuccessfulNotNil applies the NotNil predicate on the "is_successful" field.
func IsSuccessfulNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldIsSuccessful))
}

// FailedAgentsIsNil applies the IsNil predicate on the "failed_agents" field.
func FailedAgentsIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldFailedAgents))
}

// FailedAgentsNotNil applies the NotNil predicate on the "failed_agents" field.
func FailedAgentsNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldFailedAgents))
}

// ErrorMessagesIsNil applies the IsNil predicate on the "error_messages" field.
func ErrorMessagesIsNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIsNull(FieldErrorMessages))
}

// ErrorMessagesNotNil applies the NotNil predicate on the "error_messages" field.
func ErrorMessagesNotNil() predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotNull(FieldErrorMessages))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CodeExecution {
	return predicate.CodeExecution(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeExecution) predicate.CodeExecution {
	return predicate.CodeExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeExecution) predicate.CodeExecution {
	return predicate.CodeExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeExecution) predicate.CodeExecution {
	return predicate.CodeExecution(sql.NotPredicates(p))
}
