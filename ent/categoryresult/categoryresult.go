// Code generated by ent, DO NOT EDIT.

package categoryresult

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the categoryresult type in the database.
	Label = "category_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldCategoryName holds the string denoting the category_name field in the database.
	FieldCategoryName = "category_name"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldDataQualityScore holds the string denoting the data_quality_score field in the database.
	FieldDataQualityScore = "data_quality_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldAPICallsMade holds the string denoting the api_calls_made field in the database.
	FieldAPICallsMade = "api_calls_made"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// EdgeProviderResponses holds the string denoting the provider_responses edge name in mutations.
	EdgeProviderResponses = "provider_responses"
	// EdgeMergedData holds the string denoting the merged_data edge name in mutations.
	EdgeMergedData = "merged_data"
	// EdgeConflicts holds the string denoting the conflicts edge name in mutations.
	EdgeConflicts = "conflicts"
	// AnalysisRequestFieldID holds the string denoting the ID field of the AnalysisRequest.
	AnalysisRequestFieldID = "request_id"
	// ProviderResponseFieldID holds the string denoting the ID field of the ProviderResponse.
	ProviderResponseFieldID = "response_id"
	// MergedDataFieldID holds the string denoting the ID field of the MergedData.
	MergedDataFieldID = "merged_id"
	// SourceConflictFieldID holds the string denoting the ID field of the SourceConflict.
	SourceConflictFieldID = "conflict_id"
	// Table holds the table name of the categoryresult in the database.
	Table = "category_results"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "category_results"
	// RequestInverseTable is the table name for the AnalysisRequest entity.
	// It exists in this package in order to avoid circular dependency with the "analysisrequest" package.
	RequestInverseTable = "analysis_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
	// ProviderResponsesTable is the table that holds the provider_responses relation/edge.
	ProviderResponsesTable = "provider_responses"
	// ProviderResponsesInverseTable is the table name for the ProviderResponse entity.
	// It exists in this package in order to avoid circular dependency with the "providerresponse" package.
	ProviderResponsesInverseTable = "provider_responses"
	// ProviderResponsesColumn is the table column denoting the provider_responses relation/edge.
	ProviderResponsesColumn = "category_result_id"
	// MergedDataTable is the table that holds the merged_data relation/edge.
	MergedDataTable = "merged_data"
	// MergedDataInverseTable is the table name for the MergedData entity.
	// It exists in this package in order to avoid circular dependency with the "mergeddata" package.
	MergedDataInverseTable = "merged_data"
	// MergedDataColumn is the table column denoting the merged_data relation/edge.
	MergedDataColumn = "category_result_id"
	// ConflictsTable is the table that holds the conflicts relation/edge.
	ConflictsTable = "source_conflicts"
	// ConflictsInverseTable is the table name for the SourceConflict entity.
	// It exists in this package in order to avoid circular dependency with the "sourceconflict" package.
	ConflictsInverseTable = "source_conflicts"
	// ConflictsColumn is the table column denoting the conflicts relation/edge.
	ConflictsColumn = "category_result_id"
)

// Columns holds all SQL columns for categoryresult fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldCategoryID,
	FieldCategoryName,
	FieldSummary,
	FieldConfidenceScore,
	FieldDataQualityScore,
	FieldStatus,
	FieldSkipReason,
	FieldProcessingTimeMs,
	FieldRetryCount,
	FieldErrorMessage,
	FieldStartedAt,
	FieldCompletedAt,
	FieldAPICallsMade,
	FieldTokenCount,
	FieldCostEstimate,
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
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	ConfidenceScoreValidator func(float64) error
	// DefaultDataQualityScore holds the default value on creation for the "data_quality_score" field.
	DefaultDataQualityScore float64
	// DataQualityScoreValidator is a validator for the "data_quality_score" field. It is called by the builders before save.
	DataQualityScoreValidator func(float64) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultAPICallsMade holds the default value on creation for the "api_calls_made" field.
	DefaultAPICallsMade int
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("categoryresult: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CategoryResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByCategoryName orders the results by the category_name field.
func ByCategoryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryName, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByDataQualityScore orders the results by the data_quality_score field.
func ByDataQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataQualityScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAPICallsMade orders the results by the api_calls_made field.
func ByAPICallsMade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPICallsMade, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}

// ByProviderResponsesCount orders the results by provider_responses count.
func ByProviderResponsesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProviderResponsesStep(), opts...)
	}
}

// ByProviderResponses orders the results by provider_responses terms.
func ByProviderResponses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProviderResponsesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMergedDataField orders the results by merged_data field.
func ByMergedDataField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMergedDataStep(), sql.OrderByField(field, opts...))
	}
}

// ByConflictsCount orders the results by conflicts count.
func ByConflictsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConflictsStep(), opts...)
	}
}

// ByConflicts orders the results by conflicts terms.
func ByConflicts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConflictsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, AnalysisRequestFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
func newProviderResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProviderResponsesInverseTable, ProviderResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProviderResponsesTable, ProviderResponsesColumn),
	)
}
func newMergedDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MergedDataInverseTable, MergedDataFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MergedDataTable, MergedDataColumn),
	)
}
func newConflictsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConflictsInverseTable, SourceConflictFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConflictsTable, ConflictsColumn),
	)
}
