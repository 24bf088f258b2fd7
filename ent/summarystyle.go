// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
)

// SummaryStyle is the model entity for the SummaryStyle schema.
type SummaryStyle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// Go text/template; receives .DrugName and .MergedText
	UserTemplate string `json:"user_template,omitempty"`
	// LengthType holds the value of the "length_type" field.
	LengthType summarystyle.LengthType `json:"length_type,omitempty"`
	// TargetWordCount holds the value of the "target_word_count" field.
	TargetWordCount int `json:"target_word_count,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummaryStyle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summarystyle.FieldTargetWordCount:
			values[i] = new(sql.NullInt64)
		case summarystyle.FieldID, summarystyle.FieldName, summarystyle.FieldSystemPrompt, summarystyle.FieldUserTemplate, summarystyle.FieldLengthType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummaryStyle fields.
func (_m *SummaryStyle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summarystyle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case summarystyle.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case summarystyle.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case summarystyle.FieldUserTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_template", values[i])
			} else if value.Valid {
				_m.UserTemplate = value.String
			}
		case summarystyle.FieldLengthType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field length_type", values[i])
			} else if value.Valid {
				_m.LengthType = summarystyle.LengthType(value.String)
			}
		case summarystyle.FieldTargetWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_word_count", values[i])
			} else if value.Valid {
				_m.TargetWordCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SummaryStyle.
// This includes values selected through modifiers, order, etc.
func (_m *SummaryStyle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SummaryStyle.
// Note that you need to call SummaryStyle.Unwrap() before calling this method if this SummaryStyle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SummaryStyle) Update() *SummaryStyleUpdateOne {
	return NewSummaryStyleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SummaryStyle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SummaryStyle) Unwrap() *SummaryStyle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummaryStyle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SummaryStyle) String() string {
	var builder strings.Builder
	builder.WriteString("SummaryStyle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("user_template=")
	builder.WriteString(_m.UserTemplate)
	builder.WriteString(", ")
	builder.WriteString("length_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LengthType))
	builder.WriteString(", ")
	builder.WriteString("target_word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetWordCount))
	builder.WriteByte(')')
	return builder.String()
}

// SummaryStyles is a parsable slice of SummaryStyle.
type SummaryStyles []*SummaryStyle
