// Code generated by ent, DO NOT EDIT.

package parameterresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the parameterresult type in the database.
	Label = "parameter_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "parameter_result_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldParameter holds the string denoting the parameter field in the database.
	FieldParameter = "parameter"
	// FieldDeliveryMethod holds the string denoting the delivery_method field in the database.
	FieldDeliveryMethod = "delivery_method"
	// FieldExtractedValue holds the string denoting the extracted_value field in the database.
	FieldExtractedValue = "extracted_value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldWeightedScore holds the string denoting the weighted_score field in the database.
	FieldWeightedScore = "weighted_score"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldRangeText holds the string denoting the range_text field in the database.
	FieldRangeText = "range_text"
	// FieldIsExclusion holds the string denoting the is_exclusion field in the database.
	FieldIsExclusion = "is_exclusion"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// AnalysisRequestFieldID holds the string denoting the ID field of the AnalysisRequest.
	AnalysisRequestFieldID = "request_id"
	// Table holds the table name of the parameterresult in the database.
	Table = "parameter_results"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "parameter_results"
	// RequestInverseTable is the table name for the AnalysisRequest entity.
	// It exists in this package in order to avoid circular dependency with the "analysisrequest" package.
	RequestInverseTable = "analysis_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for parameterresult fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldParameter,
	FieldDeliveryMethod,
	FieldExtractedValue,
	FieldUnit,
	FieldScore,
	FieldWeightedScore,
	FieldRationale,
	FieldRangeText,
	FieldIsExclusion,
	FieldExtractionMethod,
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
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultWeightedScore holds the default value on creation for the "weighted_score" field.
	DefaultWeightedScore float64
	// DefaultIsExclusion holds the default value on creation for the "is_exclusion" field.
	DefaultIsExclusion bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Parameter defines the type for the "parameter" enum field.
type Parameter string

// Parameter values.
const (
	ParameterDose            Parameter = "dose"
	ParameterMolecularWeight Parameter = "molecular_weight"
	ParameterMeltingPoint    Parameter = "melting_point"
	ParameterLogP            Parameter = "log_p"
)

func (pa Parameter) String() string {
	return string(pa)
}

// ParameterValidator is a validator for the "parameter" field enum values. It is called by the builders before save.
func ParameterValidator(pa Parameter) error {
	switch pa {
	case ParameterDose, ParameterMolecularWeight, ParameterMeltingPoint, ParameterLogP:
		return nil
	default:
		return fmt.Errorf("parameterresult: invalid enum value for parameter field: %q", pa)
	}
}

// DeliveryMethod defines the type for the "delivery_method" enum field.
type DeliveryMethod string

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
		return fmt.Errorf("parameterresult: invalid enum value for delivery_method field: %q", dm)
	}
}

// ExtractionMethod defines the type for the "extraction_method" enum field.
type ExtractionMethod string

// ExtractionMethod values.
const (
	ExtractionMethodPhase1Summary ExtractionMethod = "phase1_summary"
	ExtractionMethodDedicatedLlm  ExtractionMethod = "dedicated_llm"
	ExtractionMethodLiveSearch    ExtractionMethod = "live_search"
	ExtractionMethodNone          ExtractionMethod = "none"
)

func (em ExtractionMethod) String() string {
	return string(em)
}

// ExtractionMethodValidator is a validator for the "extraction_method" field enum values. It is called by the builders before save.
func ExtractionMethodValidator(em ExtractionMethod) error {
	switch em {
	case ExtractionMethodPhase1Summary, ExtractionMethodDedicatedLlm, ExtractionMethodLiveSearch, ExtractionMethodNone:
		return nil
	default:
		return fmt.Errorf("parameterresult: invalid enum value for extraction_method field: %q", em)
	}
}

// OrderOption defines the ordering options for the ParameterResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByParameter orders the results by the parameter field.
func ByParameter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameter, opts...).ToFunc()
}

// ByDeliveryMethod orders the results by the delivery_method field.
func ByDeliveryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryMethod, opts...).ToFunc()
}

// ByExtractedValue orders the results by the extracted_value field.
func ByExtractedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByWeightedScore orders the results by the weighted_score field.
func ByWeightedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightedScore, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByRangeText orders the results by the range_text field.
func ByRangeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRangeText, opts...).ToFunc()
}

// ByIsExclusion orders the results by the is_exclusion field.
func ByIsExclusion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsExclusion, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
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
