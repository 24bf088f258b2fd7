// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
)

// StageEvent is the model entity for the StageEvent schema.
type StageEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName stageevent.StageName `json:"stage_name,omitempty"`
	// StageOrder holds the value of the "stage_order" field.
	StageOrder int `json:"stage_order,omitempty"`
	// Executed holds the value of the "executed" field.
	Executed bool `json:"executed,omitempty"`
	// Skipped holds the value of the "skipped" field.
	Skipped bool `json:"skipped,omitempty"`
	// SHA-256 of stage input, for idempotency checks
	InputDigest string `json:"input_digest,omitempty"`
	// OutputDigest holds the value of the "output_digest" field.
	OutputDigest string `json:"output_digest,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageEventQuery when eager-loading is set.
	Edges        StageEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageEventEdges holds the relations/edges for other nodes in the graph.
type StageEventEdges struct {
	// Request holds the value of the request edge.
	Request *AnalysisRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEventEdges) RequestOrErr() (*AnalysisRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stageevent.FieldExecuted, stageevent.FieldSkipped:
			values[i] = new(sql.NullBool)
		case stageevent.FieldStageOrder, stageevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case stageevent.FieldID, stageevent.FieldRequestID, stageevent.FieldCategoryID, stageevent.FieldStageName, stageevent.FieldInputDigest, stageevent.FieldOutputDigest:
			values[i] = new(sql.NullString)
		case stageevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageEvent fields.
func (_m *StageEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stageevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stageevent.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case stageevent.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case stageevent.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = stageevent.StageName(value.String)
			}
		case stageevent.FieldStageOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_order", values[i])
			} else if value.Valid {
				_m.StageOrder = int(value.Int64)
			}
		case stageevent.FieldExecuted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field executed", values[i])
			} else if value.Valid {
				_m.Executed = value.Bool
			}
		case stageevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = value.Bool
			}
		case stageevent.FieldInputDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_digest", values[i])
			} else if value.Valid {
				_m.InputDigest = value.String
			}
		case stageevent.FieldOutputDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_digest", values[i])
			} else if value.Valid {
				_m.OutputDigest = value.String
			}
		case stageevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case stageevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StageEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StageEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the StageEvent entity.
func (_m *StageEvent) QueryRequest() *AnalysisRequestQuery {
	return NewStageEventClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this StageEvent.
// Note that you need to call StageEvent.Unwrap() before calling this method if this StageEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageEvent) Update() *StageEventUpdateOne {
	return NewStageEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageEvent) Unwrap() *StageEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StageEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageName))
	builder.WriteString(", ")
	builder.WriteString("stage_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageOrder))
	builder.WriteString(", ")
	builder.WriteString("executed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Executed))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("input_digest=")
	builder.WriteString(_m.InputDigest)
	builder.WriteString(", ")
	builder.WriteString("output_digest=")
	builder.WriteString(_m.OutputDigest)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StageEvents is a parsable slice of StageEvent.
type StageEvents []*StageEvent
