// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
)

// ScoringParameter is the model entity for the ScoringParameter schema.
type ScoringParameter struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name scoringparameter.Name `json:"name,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// Parameter-specific instruction for dedicated LLM queries
	ExtractionInstruction string `json:"extraction_instruction,omitempty"`
	selectValues          sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoringParameter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoringparameter.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case scoringparameter.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case scoringparameter.FieldID, scoringparameter.FieldName, scoringparameter.FieldUnit, scoringparameter.FieldExtractionInstruction:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoringParameter fields.
func (_m *ScoringParameter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoringparameter.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scoringparameter.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = scoringparameter.Name(value.String)
			}
		case scoringparameter.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case scoringparameter.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case scoringparameter.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case scoringparameter.FieldExtractionInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_instruction", values[i])
			} else if value.Valid {
				_m.ExtractionInstruction = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoringParameter.
// This includes values selected through modifiers, order, etc.
func (_m *ScoringParameter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScoringParameter.
// Note that you need to call ScoringParameter.Unwrap() before calling this method if this ScoringParameter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoringParameter) Update() *ScoringParameterUpdateOne {
	return NewScoringParameterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoringParameter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoringParameter) Unwrap() *ScoringParameter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoringParameter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoringParameter) String() string {
	var builder strings.Builder
	builder.WriteString("ScoringParameter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(fmt.Sprintf("%v", _m.Name))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("extraction_instruction=")
	builder.WriteString(_m.ExtractionInstruction)
	builder.WriteByte(')')
	return builder.String()
}

// ScoringParameters is a parsable slice of ScoringParameter.
type ScoringParameters []*ScoringParameter
