// Code generated by ent, DO NOT EDIT.

package pharmacategory

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pharmacategory type in the database.
	Label = "pharma_category"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "category_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldDisplayOrder holds the string denoting the display_order field in the database.
	FieldDisplayOrder = "display_order"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldPromptTemplate holds the string denoting the prompt_template field in the database.
	FieldPromptTemplate = "prompt_template"
	// FieldVerificationCriteria holds the string denoting the verification_criteria field in the database.
	FieldVerificationCriteria = "verification_criteria"
	// FieldProcessingRules holds the string denoting the processing_rules field in the database.
	FieldProcessingRules = "processing_rules"
	// FieldConflictResolutionStrategy holds the string denoting the conflict_resolution_strategy field in the database.
	FieldConflictResolutionStrategy = "conflict_resolution_strategy"
	// EdgeDependents holds the string denoting the dependents edge name in mutations.
	EdgeDependents = "dependents"
	// EdgeRequirements holds the string denoting the requirements edge name in mutations.
	EdgeRequirements = "requirements"
	// CategoryDependencyFieldID holds the string denoting the ID field of the CategoryDependency.
	CategoryDependencyFieldID = "dependency_id"
	// Table holds the table name of the pharmacategory in the database.
	Table = "pharma_categories"
	// DependentsTable is the table that holds the dependents relation/edge.
	DependentsTable = "category_dependencies"
	// DependentsInverseTable is the table name for the CategoryDependency entity.
	// It exists in this package in order to avoid circular dependency with the "categorydependency" package.
	DependentsInverseTable = "category_dependencies"
	// DependentsColumn is the table column denoting the dependents relation/edge.
	DependentsColumn = "dependent_id"
	// RequirementsTable is the table that holds the requirements relation/edge.
	RequirementsTable = "category_dependencies"
	// RequirementsInverseTable is the table name for the CategoryDependency entity.
	// It exists in this package in order to avoid circular dependency with the "categorydependency" package.
	RequirementsInverseTable = "category_dependencies"
	// RequirementsColumn is the table column denoting the requirements relation/edge.
	RequirementsColumn = "required_id"
)

// Columns holds all SQL columns for pharmacategory fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldKey,
	FieldPhase,
	FieldDisplayOrder,
	FieldIsActive,
	FieldPromptTemplate,
	FieldVerificationCriteria,
	FieldProcessingRules,
	FieldConflictResolutionStrategy,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	PhaseValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultConflictResolutionStrategy holds the default value on creation for the "conflict_resolution_strategy" field.
	DefaultConflictResolutionStrategy string
)

// OrderOption defines the ordering options for the PharmaCategory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByDisplayOrder orders the results by the display_order field.
func ByDisplayOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayOrder, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByPromptTemplate orders the results by the prompt_template field.
func ByPromptTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTemplate, opts...).ToFunc()
}

// ByConflictResolutionStrategy orders the results by the conflict_resolution_strategy field.
func ByConflictResolutionStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictResolutionStrategy, opts...).ToFunc()
}

// ByDependentsCount orders the results by dependents count.
func ByDependentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependentsStep(), opts...)
	}
}

// ByDependents orders the results by dependents terms.
func ByDependents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRequirementsCount orders the results by requirements count.
func ByRequirementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRequirementsStep(), opts...)
	}
}

// ByRequirements orders the results by requirements terms.
func ByRequirements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequirementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDependentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DependentsInverseTable, CategoryDependencyFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DependentsTable, DependentsColumn),
	)
}
func newRequirementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequirementsInverseTable, CategoryDependencyFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RequirementsTable, RequirementsColumn),
	)
}
