// Code generated by ent, DO NOT EDIT.

package pipelinestage

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pipelinestage type in the database.
	Label = "pipeline_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStageOrder holds the string denoting the stage_order field in the database.
	FieldStageOrder = "stage_order"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// Table holds the table name of the pipelinestage in the database.
	Table = "pipeline_stages"
)

// Columns holds all SQL columns for pipelinestage fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStageOrder,
	FieldEnabled,
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
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
)

// Name defines the type for the "name" enum field.
type Name string

// Name values.
const (
	NameCollect   Name = "collect"
	NameVerify    Name = "verify"
	NameMerge     Name = "merge"
	NameSummarize Name = "summarize"
)

func (n Name) String() string {
	return string(n)
}

// NameValidator is a validator for the "name" field enum values. It is called by the builders before save.
func NameValidator(n Name) error {
	switch n {
	case NameCollect, NameVerify, NameMerge, NameSummarize:
		return nil
	default:
		return fmt.Errorf("pipelinestage: invalid enum value for name field: %q", n)
	}
}

// OrderOption defines the ordering options for the PipelineStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStageOrder orders the results by the stage_order field.
func ByStageOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageOrder, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}
