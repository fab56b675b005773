// Code generated by ent, DO NOT EDIT.

package agenttemplate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agenttemplate type in the database.
	Label = "agent_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTemplateName holds the string denoting the template_name field in the database.
	FieldTemplateName = "template_name"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPromptTemplate holds the string denoting the prompt_template field in the database.
	FieldPromptTemplate = "prompt_template"
	// FieldIconURL holds the string denoting the icon_url field in the database.
	FieldIconURL = "icon_url"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIsPremiumOnly holds the string denoting the is_premium_only field in the database.
	FieldIsPremiumOnly = "is_premium_only"
	// FieldVariantType holds the string denoting the variant_type field in the database.
	FieldVariantType = "variant_type"
	// FieldBaseAgent holds the string denoting the base_agent field in the database.
	FieldBaseAgent = "base_agent"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUserPreferences holds the string denoting the user_preferences edge name in mutations.
	EdgeUserPreferences = "user_preferences"
	// Table holds the table name of the agenttemplate in the database.
	Table = "agent_templates"
	// UserPreferencesTable is the table that holds the user_preferences relation/edge.
	UserPreferencesTable = "user_template_preferences"
	// UserPreferencesInverseTable is the table name for the UserTemplatePreference entity.
	// It exists in this package in order to avoid circular dependency with the "usertemplatepreference" package.
	UserPreferencesInverseTable = "user_template_preferences"
	// UserPreferencesColumn is the table column denoting the user_preferences relation/edge.
	UserPreferencesColumn = "template_id"
)

// Columns holds all SQL columns for agenttemplate fields.
var Columns = []string{
	FieldID,
	FieldTemplateName,
	FieldDisplayName,
	FieldDescription,
	FieldPromptTemplate,
	FieldIconURL,
	FieldCategory,
	FieldIsPremiumOnly,
	FieldVariantType,
	FieldBaseAgent,
	FieldIsActive,
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
	// DefaultIsPremiumOnly holds the default value on creation for the "is_premium_only" field.
	DefaultIsPremiumOnly bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// VariantType defines the type for the "variant_type" enum field.
type VariantType string

// VariantTypeIndividual is the default value of the VariantType enum.
const DefaultVariantType = VariantTypeIndividual

// VariantType values.
const (
	VariantTypeIndividual VariantType = "individual"
	VariantTypePlanner    VariantType = "planner"
	VariantTypeBoth       VariantType = "both"
)

func (vt VariantType) String() string {
	return string(vt)
}

// VariantTypeValidator is a validator for the "variant_type" field enum values. It is called by the builders before save.
func VariantTypeValidator(vt VariantType) error {
	switch vt {
	case VariantTypeIndividual, VariantTypePlanner, VariantTypeBoth:
		return nil
	default:
		return fmt.Errorf("agenttemplate: invalid enum value for variant_type field: %q", vt)
	}
}

// OrderOption defines the ordering options for the AgentTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateName orders the results by the template_name field.
func ByTemplateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateName, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPromptTemplate orders the results by the prompt_template field.
func ByPromptTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTemplate, opts...).ToFunc()
}

// ByIconURL orders the results by the icon_url field.
func ByIconURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIconURL, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIsPremiumOnly orders the results by the is_premium_only field.
func ByIsPremiumOnly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPremiumOnly, opts...).ToFunc()
}

// ByVariantType orders the results by the variant_type field.
func ByVariantType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantType, opts...).ToFunc()
}

// ByBaseAgent orders the results by the base_agent field.
func ByBaseAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseAgent, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserPreferencesCount orders the results by user_preferences count.
func ByUserPreferencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserPreferencesStep(), opts...)
	}
}

// ByUserPreferences orders the results by user_preferences terms.
func ByUserPreferences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserPreferencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserPreferencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserPreferencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserPreferencesTable, UserPreferencesColumn),
	)
}
