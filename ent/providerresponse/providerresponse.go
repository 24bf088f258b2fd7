// Code generated by ent, DO NOT EDIT.

package providerresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the providerresponse type in the database.
	Label = "provider_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "response_id"
	// FieldCategoryResultID holds the string denoting the category_result_id field in the database.
	FieldCategoryResultID = "category_result_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldQueryParameters holds the string denoting the query_parameters field in the database.
	FieldQueryParameters = "query_parameters"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldCitedUrls holds the string denoting the cited_urls field in the database.
	FieldCitedUrls = "cited_urls"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRetentionExpiresAt holds the string denoting the retention_expires_at field in the database.
	FieldRetentionExpiresAt = "retention_expires_at"
	// EdgeCategoryResult holds the string denoting the category_result edge name in mutations.
	EdgeCategoryResult = "category_result"
	// CategoryResultFieldID holds the string denoting the ID field of the CategoryResult.
	CategoryResultFieldID = "result_id"
	// Table holds the table name of the providerresponse in the database.
	Table = "provider_responses"
	// CategoryResultTable is the table that holds the category_result relation/edge.
	CategoryResultTable = "provider_responses"
	// CategoryResultInverseTable is the table name for the CategoryResult entity.
	// It exists in this package in order to avoid circular dependency with the "categoryresult" package.
	CategoryResultInverseTable = "category_results"
	// CategoryResultColumn is the table column denoting the category_result relation/edge.
	CategoryResultColumn = "category_result_id"
)

// Columns holds all SQL columns for providerresponse fields.
var Columns = []string{
	FieldID,
	FieldCategoryResultID,
	FieldProvider,
	FieldModel,
	FieldTemperature,
	FieldQueryParameters,
	FieldRawText,
	FieldCitedUrls,
	FieldLatencyMs,
	FieldTokenCount,
	FieldCost,
	FieldChecksum,
	FieldCreatedAt,
	FieldRetentionExpiresAt,
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
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProviderResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryResultID orders the results by the category_result_id field.
func ByCategoryResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryResultID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRetentionExpiresAt orders the results by the retention_expires_at field.
func ByRetentionExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionExpiresAt, opts...).ToFunc()
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
