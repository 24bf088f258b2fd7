// Code generated by ent, DO NOT EDIT.

package sourceconflict

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sourceconflict type in the database.
	Label = "source_conflict"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conflict_id"
	// FieldCategoryResultID holds the string denoting the category_result_id field in the database.
	FieldCategoryResultID = "category_result_id"
	// FieldConflictType holds the string denoting the conflict_type field in the database.
	FieldConflictType = "conflict_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldConflictingSourceIds holds the string denoting the conflicting_source_ids field in the database.
	FieldConflictingSourceIds = "conflicting_source_ids"
	// FieldResolutionStrategy holds the string denoting the resolution_strategy field in the database.
	FieldResolutionStrategy = "resolution_strategy"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldConfidenceImpact holds the string denoting the confidence_impact field in the database.
	FieldConfidenceImpact = "confidence_impact"
	// FieldIsCritical holds the string denoting the is_critical field in the database.
	FieldIsCritical = "is_critical"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeCategoryResult holds the string denoting the category_result edge name in mutations.
	EdgeCategoryResult = "category_result"
	// CategoryResultFieldID holds the string denoting the ID field of the CategoryResult.
	CategoryResultFieldID = "result_id"
	// Table holds the table name of the sourceconflict in the database.
	Table = "source_conflicts"
	// CategoryResultTable is the table that holds the category_result relation/edge.
	CategoryResultTable = "source_conflicts"
	// CategoryResultInverseTable is the table name for the CategoryResult entity.
	// It exists in this package in order to avoid circular dependency with the "categoryresult" package.
	CategoryResultInverseTable = "category_results"
	// CategoryResultColumn is the table column denoting the category_result relation/edge.
	CategoryResultColumn = "category_result_id"
)

// Columns holds all SQL columns for sourceconflict fields.
var Columns = []string{
	FieldID,
	FieldCategoryResultID,
	FieldConflictType,
	FieldDescription,
	FieldConflictingSourceIds,
	FieldResolutionStrategy,
	FieldResolvedAt,
	FieldConfidenceImpact,
	FieldIsCritical,
	FieldDeletedAt,
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
	// DefaultResolvedAt holds the default value on creation for the "resolved_at" field.
	DefaultResolvedAt func() time.Time
	// DefaultConfidenceImpact holds the default value on creation for the "confidence_impact" field.
	DefaultConfidenceImpact float64
	// DefaultIsCritical holds the default value on creation for the "is_critical" field.
	DefaultIsCritical bool
)

// OrderOption defines the ordering options for the SourceConflict queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryResultID orders the results by the category_result_id field.
func ByCategoryResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryResultID, opts...).ToFunc()
}

// ByConflictType orders the results by the conflict_type field.
func ByConflictType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByResolutionStrategy orders the results by the resolution_strategy field.
func ByResolutionStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionStrategy, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByConfidenceImpact orders the results by the confidence_impact field.
func ByConfidenceImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceImpact, opts...).ToFunc()
}

// ByIsCritical orders the results by the is_critical field.
func ByIsCritical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCritical, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCategoryResultField orders the results by category_result field.
func ByCategoryResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryResultStep(), sql.OrderByField(field, opts...))
	}
}
func newCategoryResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryResultInverseTable, CategoryResultFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CategoryResultTable, CategoryResultColumn),
	)
}
