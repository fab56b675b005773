// Code generated by ent, DO NOT EDIT.

package messagefeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldMessageID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldRating, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldModelName, v))
}

// ModelProvider applies equality check predicate on the "model_provider" field. It's identical to ModelProviderEQ.
func ModelProvider(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldModelProvider, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldTemperature, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldMaxTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldUpdatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldMessageID, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldRating, v))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotNull(FieldRating))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldContainsFold(FieldModelName, v))
}

// ModelProviderEQ applies the EQ predicate on the "model_provider" field.
func ModelProviderEQ(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldModelProvider, v))
}

// ModelProviderNEQ applies the NEQ predicate on the "model_provider" field.
func ModelProviderNEQ(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldModelProvider, v))
}

// ModelProviderIn applies the In predicate on the "model_provider" field.
func ModelProviderIn(vs ...string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldModelProvider, vs...))
}

// ModelProviderNotIn applies the NotIn predicate on the "model_provider" field.
func ModelProviderNotIn(vs ...string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldModelProvider, vs...))
}

// ModelProviderGT applies the GT predicate on the "model_provider" field.
func ModelProviderGT(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldModelProvider, v))
}

// ModelProviderGTE applies the GTE predicate on the "model_provider" field.
func ModelProviderGTE(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldModelProvider, v))
}

// ModelProviderLT applies the LT predicate on the "model_provider" field.
func ModelProviderLT(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldModelProvider, v))
}

// ModelProviderLTE applies the LTE predicate on the "model_provider" field.
func ModelProviderLTE(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldModelProvider, v))
}

// ModelProviderContains applies the Contains predicate on the "model_provider" field.
func ModelProviderContains(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldContains(FieldModelProvider, v))
}

// ModelProviderHasPrefix applies the HasPrefix predicate on the "model_provider" field.
func ModelProviderHasPrefix(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldHasPrefix(FieldModelProvider, v))
}

// ModelProviderHasSuffix applies the HasSuffix predicate on the "model_provider" field.
func ModelProviderHasSuffix(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldHasSuffix(FieldModelProvider, v))
}

// ModelProviderIsNil applies the IsNil predicate on the "model_provider" field.
func ModelProviderIsNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIsNull(FieldModelProvider))
}

// ModelProviderNotNil applies the NotNil predicate on the "model_provider" field.
func ModelProviderNotNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotNull(FieldModelProvider))
}

// ModelProviderEqualFold applies the EqualFold predicate on the "model_provider" field.
func ModelProviderEqualFold(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEqualFold(FieldModelProvider, v))
}

// ModelProviderContainsFold applies the ContainsFold predicate on the "model_provider" field.
func ModelProviderContainsFold(v string) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldContainsFold(FieldModelProvider, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotNull(FieldTemperature))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldMaxTokens, v))
}

// MaxTokensIsNil applies the IsNil predicate on the "max_tokens" field.
func MaxTokensIsNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIsNull(FieldMaxTokens))
}

// MaxTokensNotNil applies the NotNil predicate on the "max_tokens" field.
func MaxTokensNotNil() predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotNull(FieldMaxTokens))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageFeedback) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageFeedback) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageFeedback) predicate.MessageFeedback {
	return predicate.MessageFeedback(sql.NotPredicates(p))
}
