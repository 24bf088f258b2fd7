// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
)

// ParameterResult is the model entity for the ParameterResult schema.
type ParameterResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Parameter holds the value of the "parameter" field.
	Parameter parameterresult.Parameter `json:"parameter,omitempty"`
	// DeliveryMethod holds the value of the "delivery_method" field.
	DeliveryMethod parameterresult.DeliveryMethod `json:"delivery_method,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue *float64 `json:"extracted_value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Score holds the value of the "score" field.
	Score *int `json:"score,omitempty"`
	// WeightedScore holds the value of the "weighted_score" field.
	WeightedScore float64 `json:"weighted_score,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// RangeText holds the value of the "range_text" field.
	RangeText string `json:"range_text,omitempty"`
	// IsExclusion holds the value of the "is_exclusion" field.
	IsExclusion bool `json:"is_exclusion,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod parameterresult.ExtractionMethod `json:"extraction_method,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParameterResultQuery when eager-loading is set.
	Edges        ParameterResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParameterResultEdges holds the relations/edges for other nodes in the graph.
type ParameterResultEdges struct {
	// Request holds the value of the request edge.
	Request *AnalysisRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParameterResultEdges) RequestOrErr() (*AnalysisRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParameterResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parameterresult.FieldIsExclusion:
			values[i] = new(sql.NullBool)
		case parameterresult.FieldExtractedValue, parameterresult.FieldWeightedScore:
			values[i] = new(sql.NullFloat64)
		case parameterresult.FieldScore:
			values[i] = new(sql.NullInt64)
		case parameterresult.FieldID, parameterresult.FieldRequestID, parameterresult.FieldParameter, parameterresult.FieldDeliveryMethod, parameterresult.FieldUnit, parameterresult.FieldRationale, parameterresult.FieldRangeText, parameterresult.FieldExtractionMethod:
			values[i] = new(sql.NullString)
		case parameterresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParameterResult fields.
func (_m *ParameterResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parameterresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case parameterresult.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case parameterresult.FieldParameter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter", values[i])
			} else if value.Valid {
				_m.Parameter = parameterresult.Parameter(value.String)
			}
		case parameterresult.FieldDeliveryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_method", values[i])
			} else if value.Valid {
				_m.DeliveryMethod = parameterresult.DeliveryMethod(value.String)
			}
		case parameterresult.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = new(float64)
				*_m.ExtractedValue = value.Float64
			}
		case parameterresult.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case parameterresult.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case parameterresult.FieldWeightedScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weighted_score", values[i])
			} else if value.Valid {
				_m.WeightedScore = value.Float64
			}
		case parameterresult.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case parameterresult.FieldRangeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field range_text", values[i])
			} else if value.Valid {
				_m.RangeText = value.String
			}
		case parameterresult.FieldIsExclusion:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_exclusion", values[i])
			} else if value.Valid {
				_m.IsExclusion = value.Bool
			}
		case parameterresult.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = parameterresult.ExtractionMethod(value.String)
			}
		case parameterresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParameterResult.
// This includes values selected through modifiers, order, etc.
func (_m *ParameterResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the ParameterResult entity.
func (_m *ParameterResult) QueryRequest() *AnalysisRequestQuery {
	return NewParameterResultClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this ParameterResult.
// Note that you need to call ParameterResult.Unwrap() before calling this method if this ParameterResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParameterResult) Update() *ParameterResultUpdateOne {
	return NewParameterResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParameterResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParameterResult) Unwrap() *ParameterResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParameterResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParameterResult) String() string {
	var builder strings.Builder
	builder.WriteString("ParameterResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("parameter=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameter))
	builder.WriteString(", ")
	builder.WriteString("delivery_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryMethod))
	builder.WriteString(", ")
	if v := _m.ExtractedValue; v != nil {
		builder.WriteString("extracted_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("weighted_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightedScore))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("range_text=")
	builder.WriteString(_m.RangeText)
	builder.WriteString(", ")
	builder.WriteString("is_exclusion=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsExclusion))
	builder.WriteString(", ")
	builder.WriteString("extraction_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionMethod))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ParameterResults is a parsable slice of ParameterResult.
type ParameterResults []*ParameterResult
