// Code generated by ent, DO NOT EDIT.

package analysisrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysisrequest type in the database.
	Label = "analysis_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldDrugName holds the string denoting the drug_name field in the database.
	FieldDrugName = "drug_name"
	// FieldDeliveryMethod holds the string denoting the delivery_method field in the database.
	FieldDeliveryMethod = "delivery_method"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCallbackURL holds the string denoting the callback_url field in the database.
	FieldCallbackURL = "callback_url"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldDrugCount holds the string denoting the drug_count field in the database.
	FieldDrugCount = "drug_count"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeTracking holds the string denoting the tracking edge name in mutations.
	EdgeTracking = "tracking"
	// EdgeCategoryResults holds the string denoting the category_results edge name in mutations.
	EdgeCategoryResults = "category_results"
	// EdgeParameterResults holds the string denoting the parameter_results edge name in mutations.
	EdgeParameterResults = "parameter_results"
	// EdgeStageEvents holds the string denoting the stage_events edge name in mutations.
	EdgeStageEvents = "stage_events"
	// EdgeFinalOutput holds the string denoting the final_output edge name in mutations.
	EdgeFinalOutput = "final_output"
	// ProcessTrackingFieldID holds the string denoting the ID field of the ProcessTracking.
	ProcessTrackingFieldID = "tracking_id"
	// CategoryResultFieldID holds the string denoting the ID field of the CategoryResult.
	CategoryResultFieldID = "result_id"
	// ParameterResultFieldID holds the string denoting the ID field of the ParameterResult.
	ParameterResultFieldID = "parameter_result_id"
	// StageEventFieldID holds the string denoting the ID field of the StageEvent.
	StageEventFieldID = "stage_event_id"
	// FinalOutputFieldID holds the string denoting the ID field of the FinalOutput.
	FinalOutputFieldID = "output_id"
	// Table holds the table name of the analysisrequest in the database.
	Table = "analysis_requests"
	// TrackingTable is the table that holds the tracking relation/edge.
	TrackingTable = "process_trackings"
	// TrackingInverseTable is the table name for the ProcessTracking entity.
	// It exists in this package in order to avoid circular dependency with the "processtracking" package.
	TrackingInverseTable = "process_trackings"
	// TrackingColumn is the table column denoting the tracking relation/edge.
	TrackingColumn = "request_id"
	// CategoryResultsTable is the table that holds the category_results relation/edge.
	CategoryResultsTable = "category_results"
	// CategoryResultsInverseTable is the table name for the CategoryResult entity.
	// It exists in this package in order to avoid circular dependency with the "categoryresult" package.
	CategoryResultsInverseTable = "category_results"
	// CategoryResultsColumn is the table column denoting the category_results relation/edge.
	CategoryResultsColumn = "request_id"
	// ParameterResultsTable is the table that holds the parameter_results relation/edge.
	ParameterResultsTable = "parameter_results"
	// ParameterResultsInverseTable is the table name for the ParameterResult entity.
	// It exists in this package in order to avoid circular dependency with the "parameterresult" package.
	ParameterResultsInverseTable = "parameter_results"
	// ParameterResultsColumn is the table column denoting the parameter_results relation/edge.
	ParameterResultsColumn = "request_id"
	// StageEventsTable is the table that holds the stage_events relation/edge.
	StageEventsTable = "stage_events"
	// StageEventsInverseTable is the table name for the StageEvent entity.
	// It exists in this package in order to avoid circular dependency with the "stageevent" package.
	StageEventsInverseTable = "stage_events"
	// StageEventsColumn is the table column denoting the stage_events relation/edge.
	StageEventsColumn = "request_id"
	// FinalOutputTable is the table that holds the final_output relation/edge.
	FinalOutputTable = "final_outputs"
	// FinalOutputInverseTable is the table name for the FinalOutput entity.
	// It exists in this package in order to avoid circular dependency with the "finaloutput" package.
	FinalOutputInverseTable = "final_outputs"
	// FinalOutputColumn is the table column denoting the final_output relation/edge.
	FinalOutputColumn = "request_id"
)

// Columns holds all SQL columns for analysisrequest fields.
var Columns = []string{
	FieldID,
	FieldDrugName,
	FieldDeliveryMethod,
	FieldPriority,
	FieldCallbackURL,
	FieldCorrelationID,
	FieldDrugCount,
	FieldRetryCount,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastInteractionAt,
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
	// DrugNameValidator is a validator for the "drug_name" field. It is called by the builders before save.
	DrugNameValidator func(string) error
	// DefaultDrugCount holds the default value on creation for the "drug_count" field.
	DefaultDrugCount int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DeliveryMethod defines the type for the "delivery_method" enum field.
type DeliveryMethod string

// DeliveryMethodTransdermal is the default value of the DeliveryMethod enum.
const DefaultDeliveryMethod = DeliveryMethodTransdermal

// DeliveryMethod values.
const (
	DeliveryMethodTransdermal  DeliveryMethod = "transdermal"
	DeliveryMethodTransmucosal DeliveryMethod = "transmucosal"
)

func (dm DeliveryMethod) String() string {
	return string(dm)
}

// DeliveryMethodValidator is a validator for the "delivery_method" field enum values. It is called by the builders before save.
func DeliveryMethodValidator(dm DeliveryMethod) error {
	switch dm {
	case DeliveryMethodTransdermal, DeliveryMethodTransmucosal:
		return nil
	default:
		return fmt.Errorf("analysisrequest: invalid enum value for delivery_method field: %q", dm)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("analysisrequest: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the AnalysisRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDrugName orders the results by the drug_name field.
func ByDrugName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrugName, opts...).ToFunc()
}

// ByDeliveryMethod orders the results by the delivery_method field.
func ByDeliveryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryMethod, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCallbackURL orders the results by the callback_url field.
func ByCallbackURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallbackURL, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByDrugCount orders the results by the drug_count field.
func ByDrugCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrugCount, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByTrackingField orders the results by tracking field.
func ByTrackingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrackingStep(), sql.OrderByField(field, opts...))
	}
}

// ByCategoryResultsCount orders the results by category_results count.
func ByCategoryResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCategoryResultsStep(), opts...)
	}
}

// ByCategoryResults orders the results by category_results terms.
func ByCategoryResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByParameterResultsCount orders the results by parameter_results count.
func ByParameterResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParameterResultsStep(), opts...)
	}
}

// ByParameterResults orders the results by parameter_results terms.
func ByParameterResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParameterResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStageEventsCount orders the results by stage_events count.
func ByStageEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageEventsStep(), opts...)
	}
}

// ByStageEvents orders the results by stage_events terms.
func ByStageEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFinalOutputField orders the results by final_output field.
func ByFinalOutputField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFinalOutputStep(), sql.OrderByField(field, opts...))
	}
}
func newTrackingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrackingInverseTable, ProcessTrackingFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TrackingTable, TrackingColumn),
	)
}
func newCategoryResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryResultsInverseTable, CategoryResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CategoryResultsTable, CategoryResultsColumn),
	)
}
func newParameterResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParameterResultsInverseTable, ParameterResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParameterResultsTable, ParameterResultsColumn),
	)
}
func newStageEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageEventsInverseTable, StageEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageEventsTable, StageEventsColumn),
	)
}
func newFinalOutputStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FinalOutputInverseTable, FinalOutputFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, FinalOutputTable, FinalOutputColumn),
	)
}
