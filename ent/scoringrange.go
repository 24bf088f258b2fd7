// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
)

// ScoringRange is the model entity for the ScoringRange schema.
type ScoringRange struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Parameter holds the value of the "parameter" field.
	Parameter scoringrange.Parameter `json:"parameter,omitempty"`
	// DeliveryMethod holds the value of the "delivery_method" field.
	DeliveryMethod scoringrange.DeliveryMethod `json:"delivery_method,omitempty"`
	// Inclusive lower bound; nil = unbounded below
	MinValue *float64 `json:"min_value,omitempty"`
	// Inclusive upper bound; nil = unbounded above
	MaxValue *float64 `json:"max_value,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// IsExclusion holds the value of the "is_exclusion" field.
	IsExclusion bool `json:"is_exclusion,omitempty"`
	// RangeText holds the value of the "range_text" field.
	RangeText    string `json:"range_text,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoringRange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoringrange.FieldIsExclusion:
			values[i] = new(sql.NullBool)
		case scoringrange.FieldMinValue, scoringrange.FieldMaxValue:
			values[i] = new(sql.NullFloat64)
		case scoringrange.FieldScore:
			values[i] = new(sql.NullInt64)
		case scoringrange.FieldID, scoringrange.FieldParameter, scoringrange.FieldDeliveryMethod, scoringrange.FieldRangeText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoringRange fields.
func (_m *ScoringRange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoringrange.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scoringrange.FieldParameter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter", values[i])
			} else if value.Valid {
				_m.Parameter = scoringrange.Parameter(value.String)
			}
		case scoringrange.FieldDeliveryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_method", values[i])
			} else if value.Valid {
				_m.DeliveryMethod = scoringrange.DeliveryMethod(value.String)
			}
		case scoringrange.FieldMinValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_value", values[i])
			} else if value.Valid {
				_m.MinValue = new(float64)
				*_m.MinValue = value.Float64
			}
		case scoringrange.FieldMaxValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_value", values[i])
			} else if value.Valid {
				_m.MaxValue = new(float64)
				*_m.MaxValue = value.Float64
			}
		case scoringrange.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case scoringrange.FieldIsExclusion:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_exclusion", values[i])
			} else if value.Valid {
				_m.IsExclusion = value.Bool
			}
		case scoringrange.FieldRangeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field range_text", values[i])
			} else if value.Valid {
				_m.RangeText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoringRange.
// This includes values selected through modifiers, order, etc.
func (_m *ScoringRange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScoringRange.
// Note that you need to call ScoringRange.Unwrap() before calling this method if this ScoringRange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoringRange) Update() *ScoringRangeUpdateOne {
	return NewScoringRangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoringRange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoringRange) Unwrap() *ScoringRange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoringRange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoringRange) String() string {
	var builder strings.Builder
	builder.WriteString("ScoringRange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parameter=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameter))
	builder.WriteString(", ")
	builder.WriteString("delivery_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryMethod))
	builder.WriteString(", ")
	if v := _m.MinValue; v != nil {
		builder.WriteString("min_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxValue; v != nil {
		builder.WriteString("max_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("is_exclusion=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsExclusion))
	builder.WriteString(", ")
	builder.WriteString("range_text=")
	builder.WriteString(_m.RangeText)
	builder.WriteByte(')')
	return builder.String()
}

// ScoringRanges is a parsable slice of ScoringRange.
type ScoringRanges []*ScoringRange
