// Code generated by ent, DO NOT EDIT.

package summaryhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the summaryhistory type in the database.
	Label = "summary_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "history_id"
	// FieldCategoryResultID holds the string denoting the category_result_id field in the database.
	FieldCategoryResultID = "category_result_id"
	// FieldStyleName holds the string denoting the style_name field in the database.
	FieldStyleName = "style_name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldGeneratedSummary holds the string denoting the generated_summary field in the database.
	FieldGeneratedSummary = "generated_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldGenerationTimeMs holds the string denoting the generation_time_ms field in the database.
	FieldGenerationTimeMs = "generation_time_ms"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the summaryhistory in the database.
	Table = "summary_histories"
)

// Columns holds all SQL columns for summaryhistory fields.
var Columns = []string{
	FieldID,
	FieldCategoryResultID,
	FieldStyleName,
	FieldProvider,
	FieldModel,
	FieldGeneratedSummary,
	FieldErrorMessage,
	FieldGenerationTimeMs,
	FieldTokensUsed,
	FieldCostEstimate,
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
	// DefaultGenerationTimeMs holds the default value on creation for the "generation_time_ms" field.
	DefaultGenerationTimeMs int
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SummaryHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryResultID orders the results by the category_result_id field.
func ByCategoryResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryResultID, opts...).ToFunc()
}

// ByStyleName orders the results by the style_name field.
func ByStyleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyleName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByGeneratedSummary orders the results by the generated_summary field.
func ByGeneratedSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByGenerationTimeMs orders the results by the generation_time_ms field.
func ByGenerationTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTimeMs, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
