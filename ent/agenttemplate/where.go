// Code generated by ent, DO NOT EDIT.

package agenttemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoanalyst/analyst/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldID, id))
}

// TemplateName applies equality check predicate on the "template_name" field. It's identical to TemplateNameEQ.
func TemplateName(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldTemplateName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldDescription, v))
}

// PromptTemplate applies equality check predicate on the "prompt_template" field. It's identical to PromptTemplateEQ.
func PromptTemplate(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldPromptTemplate, v))
}

// IconURL applies equality check predicate on the "icon_url" field. It's identical to IconURLEQ.
func IconURL(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldIconURL, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldCategory, v))
}

// IsPremiumOnly applies equality check predicate on the "is_premium_only" field. It's identical to IsPremiumOnlyEQ.
func IsPremiumOnly(v bool) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldIsPremiumOnly, v))
}

// BaseAgent applies equality check predicate on the "base_agent" field. It's identical to BaseAgentEQ.
func BaseAgent(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldBaseAgent, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// TemplateNameEQ applies the EQ predicate on the "template_name" field.
func TemplateNameEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldTemplateName, v))
}

// TemplateNameNEQ applies the NEQ predicate on the "template_name" field.
func TemplateNameNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldTemplateName, v))
}

// TemplateNameIn applies the In predicate on the "template_name" field.
func TemplateNameIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldTemplateName, vs...))
}

// TemplateNameNotIn applies the NotIn predicate on the "template_name" field.
func TemplateNameNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldTemplateName, vs...))
}

// TemplateNameGT applies the GT predicate on the "template_name" field.
func TemplateNameGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldTemplateName, v))
}

// TemplateNameGTE applies the GTE predicate on the "template_name" field.
func TemplateNameGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldTemplateName, v))
}

// TemplateNameLT applies the LT predicate on the "template_name" field.
func TemplateNameLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldTemplateName, v))
}

// TemplateNameLTE applies the LTE predicate on the "template_name" field.
func TemplateNameLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldTemplateName, v))
}

// TemplateNameContains applies the Contains predicate on the "template_name" field.
func TemplateNameContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldTemplateName, v))
}

// TemplateNameHasPrefix applies the HasPrefix predicate on the "template_name" field.
func TemplateNameHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldTemplateName, v))
}

// TemplateNameHasSuffix applies the HasSuffix predicate on the "template_name" field.
func TemplateNameHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldTemplateName, v))
}

// TemplateNameEqualFold applies the EqualFold predicate on the "template_name" field.
func TemplateNameEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldTemplateName, v))
}

// TemplateNameContainsFold applies the ContainsFold predicate on the "template_name" field.
func TemplateNameContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldTemplateName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// PromptTemplateEQ applies the EQ predicate on the "prompt_template" field.
func PromptTemplateEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldPromptTemplate, v))
}

// PromptTemplateNEQ applies the NEQ predicate on the "prompt_template" field.
func PromptTemplateNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldPromptTemplate, v))
}

// PromptTemplateIn applies the In predicate on the "prompt_template" field.
func PromptTemplateIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldPromptTemplate, vs...))
}

// PromptTemplateNotIn applies the NotIn predicate on the "prompt_template" field.
func PromptTemplateNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldPromptTemplate, vs...))
}

// PromptTemplateGT applies the GT predicate on the "prompt_template" field.
func PromptTemplateGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldPromptTemplate, v))
}

// PromptTemplateGTE applies the GTE predicate on the "prompt_template" field.
func PromptTemplateGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldPromptTemplate, v))
}

// PromptTemplateLT applies the LT predicate on the "prompt_template" field.
func PromptTemplateLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldPromptTemplate, v))
}

// PromptTemplateLTE applies the LTE predicate on the "prompt_template" field.
func PromptTemplateLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldPromptTemplate, v))
}

// PromptTemplateContains applies the Contains predicate on the "prompt_template" field.
func PromptTemplateContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldPromptTemplate, v))
}

// PromptTemplateHasPrefix applies the HasPrefix predicate on the "prompt_template" field.
func PromptTemplateHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldPromptTemplate, v))
}

// PromptTemplateHasSuffix applies the HasSuffix predicate on the "prompt_template" field.
func PromptTemplateHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldPromptTemplate, v))
}

// PromptTemplateEqualFold applies the EqualFold predicate on the "prompt_template" field.
func PromptTemplateEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldPromptTemplate, v))
}

// PromptTemplateContainsFold applies the ContainsFold predicate on the "prompt_template" field.
func PromptTemplateContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldPromptTemplate, v))
}

// IconURLEQ applies the EQ predicate on the "icon_url" field.
func IconURLEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldIconURL, v))
}

// IconURLNEQ applies the NEQ predicate on the "icon_url" field.
func IconURLNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldIconURL, v))
}

// IconURLIn applies the In predicate on the "icon_url" field.
func IconURLIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldIconURL, vs...))
}

// IconURLNotIn applies the NotIn predicate on the "icon_url" field.
func IconURLNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldIconURL, vs...))
}

// IconURLGT applies the GT predicate on the "icon_url" field.
func IconURLGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldIconURL, v))
}

// IconURLGTE applies the GTE predicate on the "icon_url" field.
func IconURLGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldIconURL, v))
}

// IconURLLT applies the LT predicate on the "icon_url" field.
func IconURLLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldIconURL, v))
}

// IconURLLTE applies the LTE predicate on the "icon_url" field.
func IconURLLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldIconURL, v))
}

// IconURLContains applies the Contains predicate on the "icon_url" field.
func IconURLContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldIconURL, v))
}

// IconURLHasPrefix applies the HasPrefix predicate on the "icon_url" field.
func IconURLHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldIconURL, v))
}

// IconURLHasSuffix applies the HasSuffix predicate on the "icon_url" field.
func IconURLHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldIconURL, v))
}

// IconURLIsNil applies the IsNil predicate on the "icon_url" field.
func IconURLIsNil() predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIsNull(FieldIconURL))
}

// IconURLNotNil applies the NotNil predicate on the "icon_url" field.
func IconURLNotNil() predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotNull(FieldIconURL))
}

// IconURLEqualFold applies the EqualFold predicate on the "icon_url" field.
func IconURLEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldIconURL, v))
}

// IconURLContainsFold applies the ContainsFold predicate on the "icon_url" field.
func IconURLContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldIconURL, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldCategory, v))
}

// IsPremiumOnlyEQ applies the EQ predicate on the "is_premium_only" field.
func IsPremiumOnlyEQ(v bool) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldIsPremiumOnly, v))
}

// IsPremiumOnlyNEQ applies the NEQ predicate on the "is_premium_only" field.
func IsPremiumOnlyNEQ(v bool) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldIsPremiumOnly, v))
}

// VariantTypeEQ applies the EQ predicate on the "variant_type" field.
func VariantTypeEQ(v VariantType) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldVariantType, v))
}

// VariantTypeNEQ applies the NEQ predicate on the "variant_type" field.
func VariantTypeNEQ(v VariantType) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldVariantType, v))
}

// VariantTypeIn applies the In predicate on the "variant_type" field.
func VariantTypeIn(vs ...VariantType) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldVariantType, vs...))
}

// VariantTypeNotIn applies the NotIn predicate on the "variant_type" field.
func VariantTypeNotIn(vs ...VariantType) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldVariantType, vs...))
}

// BaseAgentEQ applies the EQ predicate on the "base_agent" field.
func BaseAgentEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldBaseAgent, v))
}

// BaseAgentNEQ applies the NEQ predicate on the "base_agent" field.
func BaseAgentNEQ(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldBaseAgent, v))
}

// BaseAgentIn applies the In predicate on the "base_agent" field.
func BaseAgentIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldBaseAgent, vs...))
}

// BaseAgentNotIn applies the NotIn predicate on the "base_agent" field.
func BaseAgentNotIn(vs ...string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldBaseAgent, vs...))
}

// BaseAgentGT applies the GT predicate on the "base_agent" field.
func BaseAgentGT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldBaseAgent, v))
}

// BaseAgentGTE applies the GTE predicate on the "base_agent" field.
func BaseAgentGTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldBaseAgent, v))
}

// BaseAgentLT applies the LT predicate on the "base_agent" field.
func BaseAgentLT(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldBaseAgent, v))
}

// BaseAgentLTE applies the LTE predicate on the "base_agent" field.
func BaseAgentLTE(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldBaseAgent, v))
}

// BaseAgentContains applies the Contains predicate on the "base_agent" field.
func BaseAgentContains(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContains(FieldBaseAgent, v))
}

// BaseAgentHasPrefix applies the HasPrefix predicate on the "base_agent" field.
func BaseAgentHasPrefix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasPrefix(FieldBaseAgent, v))
}

// BaseAgentHasSuffix applies the HasSuffix predicate on the "base_agent" field.
func BaseAgentHasSuffix(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldHasSuffix(FieldBaseAgent, v))
}

// BaseAgentIsNil applies the IsNil predicate on the "base_agent" field.
func BaseAgentIsNil() predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIsNull(FieldBaseAgent))
}

// BaseAgentNotNil applies the NotNil predicate on the "base_agent" field.
func BaseAgentNotNil() predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotNull(FieldBaseAgent))
}

// BaseAgentEqualFold applies the EqualFold predicate on the "base_agent" field.
func BaseAgentEqualFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEqualFold(FieldBaseAgent, v))
}

// BaseAgentContainsFold applies the ContainsFold predicate on the "base_agent" field.
func BaseAgentContainsFold(v string) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldContainsFold(FieldBaseAgent, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUserPreferences applies the HasEdge predicate on the "user_preferences" edge.
func HasUserPreferences() predicate.AgentTemplate {
	return predicate.AgentTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UserPreferencesTable, UserPreferencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserPreferencesWith applies the HasEdge predicate on the "user_preferences" edge with a given conditions (other predicates).
func HasUserPreferencesWith(preds ...predicate.UserTemplatePreference) predicate.AgentTemplate {
	return predicate.AgentTemplate(func(s *sql.Selector) {
		step := newUserPreferencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentTemplate) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentTemplate) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentTemplate) predicate.AgentTemplate {
	return predicate.AgentTemplate(sql.NotPredicates(p))
}
