// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
)

// AnalysisRequest is the model entity for the AnalysisRequest schema.
type AnalysisRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DrugName holds the value of the "drug_name" field.
	DrugName string `json:"drug_name,omitempty"`
	// DeliveryMethod holds the value of the "delivery_method" field.
	DeliveryMethod analysisrequest.DeliveryMethod `json:"delivery_method,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority analysisrequest.Priority `json:"priority,omitempty"`
	// CallbackURL holds the value of the "callback_url" field.
	CallbackURL *string `json:"callback_url,omitempty"`
	// Propagated through every audit event for this request
	CorrelationID string `json:"correlation_id,omitempty"`
	// Number of drugs in the originating submission (for ETA)
	DrugCount int `json:"drug_count,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Heartbeat for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Soft delete (archive) under retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisRequestQuery when eager-loading is set.
	Edges        AnalysisRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisRequestEdges holds the relations/edges for other nodes in the graph.
type AnalysisRequestEdges struct {
	// Tracking holds the value of the tracking edge.
	Tracking *ProcessTracking `json:"tracking,omitempty"`
	// CategoryResults holds the value of the category_results edge.
	CategoryResults []*CategoryResult `json:"category_results,omitempty"`
	// ParameterResults holds the value of the parameter_results edge.
	ParameterResults []*ParameterResult `json:"parameter_results,omitempty"`
	// StageEvents holds the value of the stage_events edge.
	StageEvents []*StageEvent `json:"stage_events,omitempty"`
	// FinalOutput holds the value of the final_output edge.
	FinalOutput *FinalOutput `json:"final_output,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// TrackingOrErr returns the Tracking value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisRequestEdges) TrackingOrErr() (*ProcessTracking, error) {
	if e.Tracking != nil {
		return e.Tracking, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: processtracking.Label}
	}
	return nil, &NotLoadedError{edge: "tracking"}
}

// CategoryResultsOrErr returns the CategoryResults value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisRequestEdges) CategoryResultsOrErr() ([]*CategoryResult, error) {
	if e.loadedTypes[1] {
		return e.CategoryResults, nil
	}
	return nil, &NotLoadedError{edge: "category_results"}
}

// ParameterResultsOrErr returns the ParameterResults value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisRequestEdges) ParameterResultsOrErr() ([]*ParameterResult, error) {
	if e.loadedTypes[2] {
		return e.ParameterResults, nil
	}
	return nil, &NotLoadedError{edge: "parameter_results"}
}

// StageEventsOrErr returns the StageEvents value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisRequestEdges) StageEventsOrErr() ([]*StageEvent, error) {
	if e.loadedTypes[3] {
		return e.StageEvents, nil
	}
	return nil, &NotLoadedError{edge: "stage_events"}
}

// FinalOutputOrErr returns the FinalOutput value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisRequestEdges) FinalOutputOrErr() (*FinalOutput, error) {
	if e.FinalOutput != nil {
		return e.FinalOutput, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: finaloutput.Label}
	}
	return nil, &NotLoadedError{edge: "final_output"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrequest.FieldDrugCount, analysisrequest.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case analysisrequest.FieldID, analysisrequest.FieldDrugName, analysisrequest.FieldDeliveryMethod, analysisrequest.FieldPriority, analysisrequest.FieldCallbackURL, analysisrequest.FieldCorrelationID, analysisrequest.FieldPodID:
			values[i] = new(sql.NullString)
		case analysisrequest.FieldCreatedAt, analysisrequest.FieldUpdatedAt, analysisrequest.FieldCompletedAt, analysisrequest.FieldLastInteractionAt, analysisrequest.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRequest fields.
func (_m *AnalysisRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysisrequest.FieldDrugName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drug_name", values[i])
			} else if value.Valid {
				_m.DrugName = value.String
			}
		case analysisrequest.FieldDeliveryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_method", values[i])
			} else if value.Valid {
				_m.DeliveryMethod = analysisrequest.DeliveryMethod(value.String)
			}
		case analysisrequest.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = analysisrequest.Priority(value.String)
			}
		case analysisrequest.FieldCallbackURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field callback_url", values[i])
			} else if value.Valid {
				_m.CallbackURL = new(string)
				*_m.CallbackURL = value.String
			}
		case analysisrequest.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case analysisrequest.FieldDrugCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drug_count", values[i])
			} else if value.Valid {
				_m.DrugCount = int(value.Int64)
			}
		case analysisrequest.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case analysisrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case analysisrequest.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case analysisrequest.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case analysisrequest.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case analysisrequest.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRequest.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTracking queries the "tracking" edge of the AnalysisRequest entity.
func (_m *AnalysisRequest) QueryTracking() *ProcessTrackingQuery {
	return NewAnalysisRequestClient(_m.config).QueryTracking(_m)
}

// QueryCategoryResults queries the "category_results" edge of the AnalysisRequest entity.
func (_m *AnalysisRequest) QueryCategoryResults() *CategoryResultQuery {
	return NewAnalysisRequestClient(_m.config).QueryCategoryResults(_m)
}

// QueryParameterResults queries the "parameter_results" edge of the AnalysisRequest entity.
func (_m *AnalysisRequest) QueryParameterResults() *ParameterResultQuery {
	return NewAnalysisRequestClient(_m.config).QueryParameterResults(_m)
}

// QueryStageEvents queries the "stage_events" edge of the AnalysisRequest entity.
func (_m *AnalysisRequest) QueryStageEvents() *StageEventQuery {
	return NewAnalysisRequestClient(_m.config).QueryStageEvents(_m)
}

// QueryFinalOutput queries the "final_output" edge of the AnalysisRequest entity.
func (_m *AnalysisRequest) QueryFinalOutput() *FinalOutputQuery {
	return NewAnalysisRequestClient(_m.config).QueryFinalOutput(_m)
}

// Update returns a builder for updating this AnalysisRequest.
// Note that you need to call AnalysisRequest.Unwrap() before calling this method if this AnalysisRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRequest) Update() *AnalysisRequestUpdateOne {
	return NewAnalysisRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRequest) Unwrap() *AnalysisRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRequest) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("drug_name=")
	builder.WriteString(_m.DrugName)
	builder.WriteString(", ")
	builder.WriteString("delivery_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryMethod))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.CallbackURL; v != nil {
		builder.WriteString("callback_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("drug_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrugCount))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRequests is a parsable slice of AnalysisRequest.
type AnalysisRequests []*AnalysisRequest
