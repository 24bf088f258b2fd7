// Code generated by ent, DO NOT EDIT.

package summarystyle

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the summarystyle type in the database.
	Label = "summary_style"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "style_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldUserTemplate holds the string denoting the user_template field in the database.
	FieldUserTemplate = "user_template"
	// FieldLengthType holds the string denoting the length_type field in the database.
	FieldLengthType = "length_type"
	// FieldTargetWordCount holds the string denoting the target_word_count field in the database.
	FieldTargetWordCount = "target_word_count"
	// Table holds the table name of the summarystyle in the database.
	Table = "summary_styles"
)

// Columns holds all SQL columns for summarystyle fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSystemPrompt,
	FieldUserTemplate,
	FieldLengthType,
	FieldTargetWordCount,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultTargetWordCount holds the default value on creation for the "target_word_count" field.
	DefaultTargetWordCount int
)

// LengthType defines the type for the "length_type" enum field.
type LengthType string

// LengthTypeStandard is the default value of the LengthType enum.
const DefaultLengthType = LengthTypeStandard

// LengthType values.
const (
	LengthTypeCompact  LengthType = "compact"
	LengthTypeStandard LengthType = "standard"
	LengthTypeDeep     LengthType = "deep"
)

func (lt LengthType) String() string {
	return string(lt)
}

// LengthTypeValidator is a validator for the "length_type" field enum values. It is called by the builders before save.
func LengthTypeValidator(lt LengthType) error {
	switch lt {
	case LengthTypeCompact, LengthTypeStandard, LengthTypeDeep:
		return nil
	default:
		return fmt.Errorf("summarystyle: invalid enum value for length_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the SummaryStyle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByUserTemplate orders the results by the user_template field.
func ByUserTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserTemplate, opts...).ToFunc()
}

// ByLengthType orders the results by the length_type field.
func ByLengthType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLengthType, opts...).ToFunc()
}

// ByTargetWordCount orders the results by the target_word_count field.
func ByTargetWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetWordCount, opts...).ToFunc()
}
