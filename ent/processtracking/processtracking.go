// Code generated by ent, DO NOT EDIT.

package processtracking

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the processtracking type in the database.
	Label = "process_tracking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tracking_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgressPercent holds the string denoting the progress_percent field in the database.
	FieldProgressPercent = "progress_percent"
	// FieldCategoriesTotal holds the string denoting the categories_total field in the database.
	FieldCategoriesTotal = "categories_total"
	// FieldCategoriesCompleted holds the string denoting the categories_completed field in the database.
	FieldCategoriesCompleted = "categories_completed"
	// FieldEstimatedCompletionAt holds the string denoting the estimated_completion_at field in the database.
	FieldEstimatedCompletionAt = "estimated_completion_at"
	// FieldCollectingStartedAt holds the string denoting the collecting_started_at field in the database.
	FieldCollectingStartedAt = "collecting_started_at"
	// FieldCollectingCompletedAt holds the string denoting the collecting_completed_at field in the database.
	FieldCollectingCompletedAt = "collecting_completed_at"
	// FieldVerifyingStartedAt holds the string denoting the verifying_started_at field in the database.
	FieldVerifyingStartedAt = "verifying_started_at"
	// FieldVerifyingCompletedAt holds the string denoting the verifying_completed_at field in the database.
	FieldVerifyingCompletedAt = "verifying_completed_at"
	// FieldMergingStartedAt holds the string denoting the merging_started_at field in the database.
	FieldMergingStartedAt = "merging_started_at"
	// FieldMergingCompletedAt holds the string denoting the merging_completed_at field in the database.
	FieldMergingCompletedAt = "merging_completed_at"
	// FieldSummarizingStartedAt holds the string denoting the summarizing_started_at field in the database.
	FieldSummarizingStartedAt = "summarizing_started_at"
	// FieldSummarizingCompletedAt holds the string denoting the summarizing_completed_at field in the database.
	FieldSummarizingCompletedAt = "summarizing_completed_at"
	// FieldErrorDetails holds the string denoting the error_details field in the database.
	FieldErrorDetails = "error_details"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// AnalysisRequestFieldID holds the string denoting the ID field of the AnalysisRequest.
	AnalysisRequestFieldID = "request_id"
	// Table holds the table name of the processtracking in the database.
	Table = "process_trackings"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "process_trackings"
	// RequestInverseTable is the table name for the AnalysisRequest entity.
	// It exists in this package in order to avoid circular dependency with the "analysisrequest" package.
	RequestInverseTable = "analysis_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for processtracking fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldStatus,
	FieldProgressPercent,
	FieldCategoriesTotal,
	FieldCategoriesCompleted,
	FieldEstimatedCompletionAt,
	FieldCollectingStartedAt,
	FieldCollectingCompletedAt,
	FieldVerifyingStartedAt,
	FieldVerifyingCompletedAt,
	FieldMergingStartedAt,
	FieldMergingCompletedAt,
	FieldSummarizingStartedAt,
	FieldSummarizingCompletedAt,
	FieldErrorDetails,
	FieldDeletedAt,
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
	// DefaultProgressPercent holds the default value on creation for the "progress_percent" field.
	DefaultProgressPercent int
	// ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	ProgressPercentValidator func(int) error
	// DefaultCategoriesTotal holds the default value on creation for the "categories_total" field.
	DefaultCategoriesTotal int
	// DefaultCategoriesCompleted holds the default value on creation for the "categories_completed" field.
	DefaultCategoriesCompleted int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusSubmitted is the default value of the Status enum.
const DefaultStatus = StatusSubmitted

// Status values.
const (
	StatusSubmitted   Status = "submitted"
	StatusCollecting  Status = "collecting"
	StatusVerifying   Status = "verifying"
	StatusMerging     Status = "merging"
	StatusSummarizing Status = "summarizing"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSubmitted, StatusCollecting, StatusVerifying, StatusMerging, StatusSummarizing, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("processtracking: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProcessTracking queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgressPercent orders the results by the progress_percent field.
func ByProgressPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercent, opts...).ToFunc()
}

// ByCategoriesTotal orders the results by the categories_total field.
func ByCategoriesTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoriesTotal, opts...).ToFunc()
}

// ByCategoriesCompleted orders the results by the categories_completed field.
func ByCategoriesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoriesCompleted, opts...).ToFunc()
}

// ByEstimatedCompletionAt orders the results by the estimated_completion_at field.
func ByEstimatedCompletionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCompletionAt, opts...).ToFunc()
}

// ByCollectingStartedAt orders the results by the collecting_started_at field.
func ByCollectingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectingStartedAt, opts...).ToFunc()
}

// ByCollectingCompletedAt orders the results by the collecting_completed_at field.
func ByCollectingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectingCompletedAt, opts...).ToFunc()
}

// ByVerifyingStartedAt orders the results by the verifying_started_at field.
func ByVerifyingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifyingStartedAt, opts...).ToFunc()
}

// ByVerifyingCompletedAt orders the results by the verifying_completed_at field.
func ByVerifyingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifyingCompletedAt, opts...).ToFunc()
}

// ByMergingStartedAt orders the results by the merging_started_at field.
func ByMergingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergingStartedAt, opts...).ToFunc()
}

// ByMergingCompletedAt orders the results by the merging_completed_at field.
func ByMergingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergingCompletedAt, opts...).ToFunc()
}

// BySummarizingStartedAt orders the results by the summarizing_started_at field.
func BySummarizingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummarizingStartedAt, opts...).ToFunc()
}

// BySummarizingCompletedAt orders the results by the summarizing_completed_at field.
func BySummarizingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummarizingCompletedAt, opts...).ToFunc()
}

// ByErrorDetails orders the results by the error_details field.
func ByErrorDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorDetails, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, AnalysisRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
	)
}
