// Code generated by ent, DO NOT EDIT.

package scoringparameter

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scoringparameter type in the database.
	Label = "scoring_parameter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "parameter_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldDisplayOrder holds the string denoting the display_order field in the database.
	FieldDisplayOrder = "display_order"
	// FieldExtractionInstruction holds the string denoting the extraction_instruction field in the database.
	FieldExtractionInstruction = "extraction_instruction"
	// Table holds the table name of the scoringparameter in the database.
	Table = "scoring_parameters"
)

// Columns holds all SQL columns for scoringparameter fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldWeight,
	FieldUnit,
	FieldDisplayOrder,
	FieldExtractionInstruction,
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
	// WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	WeightValidator func(float64) error
)

// Name defines the type for the "name" enum field.
type Name string

// Name values.
const (
	NameDose            Name = "dose"
	NameMolecularWeight Name = "molecular_weight"
	NameMeltingPoint    Name = "melting_point"
	NameLogP            Name = "log_p"
)

func (n Name) String() string {
	return string(n)
}

// NameValidator is a validator for the "name" field enum values. It is called by the builders before save.
func NameValidator(n Name) error {
	switch n {
	case NameDose, NameMolecularWeight, NameMeltingPoint, NameLogP:
		return nil
	default:
		return fmt.Errorf("scoringparameter: invalid enum value for name field: %q", n)
	}
}

// OrderOption defines the ordering options for the ScoringParameter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByDisplayOrder orders the results by the display_order field.
func ByDisplayOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayOrder, opts...).ToFunc()
}

// ByExtractionInstruction orders the results by the extraction_instruction field.
func ByExtractionInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionInstruction, opts...).ToFunc()
}
