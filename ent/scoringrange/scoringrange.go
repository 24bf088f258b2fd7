// Code generated by ent, DO NOT EDIT.

package scoringrange

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scoringrange type in the database.
	Label = "scoring_range"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "range_id"
	// FieldParameter holds the string denoting the parameter field in the database.
	FieldParameter = "parameter"
	// FieldDeliveryMethod holds the string denoting the delivery_method field in the database.
	FieldDeliveryMethod = "delivery_method"
	// FieldMinValue holds the string denoting the min_value field in the database.
	FieldMinValue = "min_value"
	// FieldMaxValue holds the string denoting the max_value field in the database.
	FieldMaxValue = "max_value"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldIsExclusion holds the string denoting the is_exclusion field in the database.
	FieldIsExclusion = "is_exclusion"
	// FieldRangeText holds the string denoting the range_text field in the database.
	FieldRangeText = "range_text"
	// Table holds the table name of the scoringrange in the database.
	Table = "scoring_ranges"
)

// Columns holds all SQL columns for scoringrange fields.
var Columns = []string{
	FieldID,
	FieldParameter,
	FieldDeliveryMethod,
	FieldMinValue,
	FieldMaxValue,
	FieldScore,
	FieldIsExclusion,
	FieldRangeText,
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
	// DefaultIsExclusion holds the default value on creation for the "is_exclusion" field.
	DefaultIsExclusion bool
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
		return fmt.Errorf("scoringrange: invalid enum value for parameter field: %q", pa)
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
		return fmt.Errorf("scoringrange: invalid enum value for delivery_method field: %q", dm)
	}
}

// OrderOption defines the ordering options for the ScoringRange queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParameter orders the results by the parameter field.
func ByParameter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameter, opts...).ToFunc()
}

// ByDeliveryMethod orders the results by the delivery_method field.
func ByDeliveryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryMethod, opts...).ToFunc()
}

// ByMinValue orders the results by the min_value field.
func ByMinValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinValue, opts...).ToFunc()
}

// ByMaxValue orders the results by the max_value field.
func ByMaxValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxValue, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByIsExclusion orders the results by the is_exclusion field.
func ByIsExclusion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsExclusion, opts...).ToFunc()
}

// ByRangeText orders the results by the range_text field.
func ByRangeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRangeText, opts...).ToFunc()
}
