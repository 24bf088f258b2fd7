// Code generated by ent, DO NOT EDIT.

package mergeddata

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mergeddata type in the database.
	Label = "merged_data"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "merged_id"
	// FieldCategoryResultID holds the string denoting the category_result_id field in the database.
	FieldCategoryResultID = "category_result_id"
	// FieldMergedText holds the string denoting the merged_text field in the database.
	FieldMergedText = "merged_text"
	// FieldStructuredData holds the string denoting the structured_data field in the database.
	FieldStructuredData = "structured_data"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceReferences holds the string denoting the source_references field in the database.
	FieldSourceReferences = "source_references"
	// FieldMergeMethod holds the string denoting the merge_method field in the database.
	FieldMergeMethod = "merge_method"
	// FieldKeyFindings holds the string denoting the key_findings field in the database.
	FieldKeyFindings = "key_findings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCategoryResult holds the string denoting the category_result edge name in mutations.
	EdgeCategoryResult = "category_result"
	// CategoryResultFieldID holds the string denoting the ID field of the CategoryResult.
	CategoryResultFieldID = "result_id"
	// Table holds the table name of the mergeddata in the database.
	Table = "merged_data"
	// CategoryResultTable is the table that holds the category_result relation/edge.
	CategoryResultTable = "merged_data"
	// CategoryResultInverseTable is the table name for the CategoryResult entity.
	// It exists in this package in order to avoid circular dependency with the "categoryresult" package.
	CategoryResultInverseTable = "category_results"
	// CategoryResultColumn is the table column denoting the category_result relation/edge.
	CategoryResultColumn = "category_result_id"
)

// Columns holds all SQL columns for mergeddata fields.
var Columns = []string{
	FieldID,
	FieldCategoryResultID,
	FieldMergedText,
	FieldStructuredData,
	FieldConfidence,
	FieldSourceReferences,
	FieldMergeMethod,
	FieldKeyFindings,
	FieldCreatedAt,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// MergeMethod defines the type for the "merge_method" enum field.
type MergeMethod string

// MergeMethod values.
const (
	MergeMethodLlmAssisted       MergeMethod = "llm_assisted"
	MergeMethodFallbackWeighted  MergeMethod = "fallback_weighted"
	MergeMethodSummaryExtraction MergeMethod = "summary_extraction"
	MergeMethodNone              MergeMethod = "none"
)

func (mm MergeMethod) String() string {
	return string(mm)
}

// MergeMethodValidator is a validator for the "merge_method" field enum values. It is called by the builders before save.
func MergeMethodValidator(mm MergeMethod) error {
	switch mm {
	case MergeMethodLlmAssisted, MergeMethodFallbackWeighted, MergeMethodSummaryExtraction, MergeMethodNone:
		return nil
	default:
		return fmt.Errorf("mergeddata: invalid enum value for merge_method field: %q", mm)
	}
}

// OrderOption defines the ordering options for the MergedData queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryResultID orders the results by the category_result_id field.
func ByCategoryResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryResultID, opts...).ToFunc()
}

// ByMergedText orders the results by the merged_text field.
func ByMergedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByMergeMethod orders the results by the merge_method field.
func ByMergeMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergeMethod, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, CategoryResultTable, CategoryResultColumn),
	)
}
