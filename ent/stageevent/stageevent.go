// Code generated by ent, DO NOT EDIT.

package stageevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stageevent type in the database.
	Label = "stage_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_event_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldStageOrder holds the string denoting the stage_order field in the database.
	FieldStageOrder = "stage_order"
	// FieldExecuted holds the string denoting the executed field in the database.
	FieldExecuted = "executed"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldInputDigest holds the string denoting the input_digest field in the database.
	FieldInputDigest = "input_digest"
	// FieldOutputDigest holds the string denoting the output_digest field in the database.
	FieldOutputDigest = "output_digest"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// AnalysisRequestFieldID holds the string denoting the ID field of the AnalysisRequest.
	AnalysisRequestFieldID = "request_id"
	// Table holds the table name of the stageevent in the database.
	Table = "stage_events"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "stage_events"
	// RequestInverseTable is the table name for the AnalysisRequest entity.
	// It exists in this package in order to avoid circular dependency with the "analysisrequest" package.
	RequestInverseTable = "analysis_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for stageevent fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldCategoryID,
	FieldStageName,
	FieldStageOrder,
	FieldExecuted,
	FieldSkipped,
	FieldInputDigest,
	FieldOutputDigest,
	FieldDurationMs,
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
	// DefaultExecuted holds the default value on creation for the "executed" field.
	DefaultExecuted bool
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped bool
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// StageName defines the type for the "stage_name" enum field.
type StageName string

// StageName values.
const (
	StageNameCollect   StageName = "collect"
	StageNameVerify    StageName = "verify"
	StageNameMerge     StageName = "merge"
	StageNameSummarize StageName = "summarize"
)

func (sn StageName) String() string {
	return string(sn)
}

// StageNameValidator is a validator for the "stage_name" field enum values. It is called by the builders before save.
func StageNameValidator(sn StageName) error {
	switch sn {
	case StageNameCollect, StageNameVerify, StageNameMerge, StageNameSummarize:
		return nil
	default:
		return fmt.Errorf("stageevent: invalid enum value for stage_name field: %q", sn)
	}
}

// OrderOption defines the ordering options for the StageEvent queries.
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

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByStageOrder orders the results by the stage_order field.
func ByStageOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageOrder, opts...).ToFunc()
}

// ByExecuted orders the results by the executed field.
func ByExecuted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecuted, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByInputDigest orders the results by the input_digest field.
func ByInputDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputDigest, opts...).ToFunc()
}

// ByOutputDigest orders the results by the output_digest field.
func ByOutputDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDigest, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
