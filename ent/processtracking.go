// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
)

// ProcessTracking is the model entity for the ProcessTracking schema.
type ProcessTracking struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Status holds the value of the "status" field.
	Status processtracking.Status `json:"status,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// CategoriesTotal holds the value of the "categories_total" field.
	CategoriesTotal int `json:"categories_total,omitempty"`
	// CategoriesCompleted holds the value of the "categories_completed" field.
	CategoriesCompleted int `json:"categories_completed,omitempty"`
	// EstimatedCompletionAt holds the value of the "estimated_completion_at" field.
	EstimatedCompletionAt *time.Time `json:"estimated_completion_at,omitempty"`
	// CollectingStartedAt holds the value of the "collecting_started_at" field.
	CollectingStartedAt *time.Time `json:"collecting_started_at,omitempty"`
	// CollectingCompletedAt holds the value of the "collecting_completed_at" field.
	CollectingCompletedAt *time.Time `json:"collecting_completed_at,omitempty"`
	// VerifyingStartedAt holds the value of the "verifying_started_at" field.
	VerifyingStartedAt *time.Time `json:"verifying_started_at,omitempty"`
	// VerifyingCompletedAt holds the value of the "verifying_completed_at" field.
	VerifyingCompletedAt *time.Time `json:"verifying_completed_at,omitempty"`
	// MergingStartedAt holds the value of the "merging_started_at" field.
	MergingStartedAt *time.Time `json:"merging_started_at,omitempty"`
	// MergingCompletedAt holds the value of the "merging_completed_at" field.
	MergingCompletedAt *time.Time `json:"merging_completed_at,omitempty"`
	// SummarizingStartedAt holds the value of the "summarizing_started_at" field.
	SummarizingStartedAt *time.Time `json:"summarizing_started_at,omitempty"`
	// SummarizingCompletedAt holds the value of the "summarizing_completed_at" field.
	SummarizingCompletedAt *time.Time `json:"summarizing_completed_at,omitempty"`
	// ErrorDetails holds the value of the "error_details" field.
	ErrorDetails *string `json:"error_details,omitempty"`
	// Archive marker set by retention
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessTrackingQuery when eager-loading is set.
	Edges        ProcessTrackingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessTrackingEdges holds the relations/edges for other nodes in the graph.
type ProcessTrackingEdges struct {
	// Request holds the value of the request edge.
	Request *AnalysisRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessTrackingEdges) RequestOrErr() (*AnalysisRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessTracking) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processtracking.FieldProgressPercent, processtracking.FieldCategoriesTotal, processtracking.FieldCategoriesCompleted:
			values[i] = new(sql.NullInt64)
		case processtracking.FieldID, processtracking.FieldRequestID, processtracking.FieldStatus, processtracking.FieldErrorDetails:
			values[i] = new(sql.NullString)
		case processtracking.FieldEstimatedCompletionAt, processtracking.FieldCollectingStartedAt, processtracking.FieldCollectingCompletedAt, processtracking.FieldVerifyingStartedAt, processtracking.FieldVerifyingCompletedAt, processtracking.FieldMergingStartedAt, processtracking.FieldMergingCompletedAt, processtracking.FieldSummarizingStartedAt, processtracking.FieldSummarizingCompletedAt, processtracking.FieldDeletedAt, processtracking.FieldCreatedAt, processtracking.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessTracking fields.
func (_m *ProcessTracking) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processtracking.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case processtracking.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case processtracking.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = processtracking.Status(value.String)
			}
		case processtracking.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = int(value.Int64)
			}
		case processtracking.FieldCategoriesTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field categories_total", values[i])
			} else if value.Valid {
				_m.CategoriesTotal = int(value.Int64)
			}
		case processtracking.FieldCategoriesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field categories_completed", values[i])
			} else if value.Valid {
				_m.CategoriesCompleted = int(value.Int64)
			}
		case processtracking.FieldEstimatedCompletionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_completion_at", values[i])
			} else if value.Valid {
				_m.EstimatedCompletionAt = new(time.Time)
				*_m.EstimatedCompletionAt = value.Time
			}
		case processtracking.FieldCollectingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collecting_started_at", values[i])
			} else if value.Valid {
				_m.CollectingStartedAt = new(time.Time)
				*_m.CollectingStartedAt = value.Time
			}
		case processtracking.FieldCollectingCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collecting_completed_at", values[i])
			} else if value.Valid {
				_m.CollectingCompletedAt = new(time.Time)
				*_m.CollectingCompletedAt = value.Time
			}
		case processtracking.FieldVerifyingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verifying_started_at", values[i])
			} else if value.Valid {
				_m.VerifyingStartedAt = new(time.Time)
				*_m.VerifyingStartedAt = value.Time
			}
		case processtracking.FieldVerifyingCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verifying_completed_at", values[i])
			} else if value.Valid {
				_m.VerifyingCompletedAt = new(time.Time)
				*_m.VerifyingCompletedAt = value.Time
			}
		case processtracking.FieldMergingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field merging_started_at", values[i])
			} else if value.Valid {
				_m.MergingStartedAt = new(time.Time)
				*_m.MergingStartedAt = value.Time
			}
		case processtracking.FieldMergingCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field merging_completed_at", values[i])
			} else if value.Valid {
				_m.MergingCompletedAt = new(time.Time)
				*_m.MergingCompletedAt = value.Time
			}
		case processtracking.FieldSummarizingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field summarizing_started_at", values[i])
			} else if value.Valid {
				_m.SummarizingStartedAt = new(time.Time)
				*_m.SummarizingStartedAt = value.Time
			}
		case processtracking.FieldSummarizingCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field summarizing_completed_at", values[i])
			} else if value.Valid {
				_m.SummarizingCompletedAt = new(time.Time)
				*_m.SummarizingCompletedAt = value.Time
			}
		case processtracking.FieldErrorDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_details", values[i])
			} else if value.Valid {
				_m.ErrorDetails = new(string)
				*_m.ErrorDetails = value.String
			}
		case processtracking.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case processtracking.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processtracking.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessTracking.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessTracking) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the ProcessTracking entity.
func (_m *ProcessTracking) QueryRequest() *AnalysisRequestQuery {
	return NewProcessTrackingClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this ProcessTracking.
// Note that you need to call ProcessTracking.Unwrap() before calling this method if this ProcessTracking
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessTracking) Update() *ProcessTrackingUpdateOne {
	return NewProcessTrackingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessTracking entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessTracking) Unwrap() *ProcessTracking {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessTracking is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessTracking) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessTracking(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("categories_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoriesTotal))
	builder.WriteString(", ")
	builder.WriteString("categories_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoriesCompleted))
	builder.WriteString(", ")
	if v := _m.EstimatedCompletionAt; v != nil {
		builder.WriteString("estimated_completion_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CollectingStartedAt; v != nil {
		builder.WriteString("collecting_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CollectingCompletedAt; v != nil {
		builder.WriteString("collecting_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VerifyingStartedAt; v != nil {
		builder.WriteString("verifying_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VerifyingCompletedAt; v != nil {
		builder.WriteString("verifying_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MergingStartedAt; v != nil {
		builder.WriteString("merging_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MergingCompletedAt; v != nil {
		builder.WriteString("merging_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SummarizingStartedAt; v != nil {
		builder.WriteString("summarizing_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SummarizingCompletedAt; v != nil {
		builder.WriteString("summarizing_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorDetails; v != nil {
		builder.WriteString("error_details=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessTrackings is a parsable slice of ProcessTracking.
type ProcessTrackings []*ProcessTracking
