// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
)

// CategoryResult is the model entity for the CategoryResult schema.
type CategoryResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// CategoryName holds the value of the "category_name" field.
	CategoryName string `json:"category_name,omitempty"`
	// Final per-category prose summary
	Summary string `json:"summary,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// DataQualityScore holds the value of the "data_quality_score" field.
	DataQualityScore float64 `json:"data_quality_score,omitempty"`
	// Status holds the value of the "status" field.
	Status categoryresult.Status `json:"status,omitempty"`
	// SkipReason holds the value of the "skip_reason" field.
	SkipReason *string `json:"skip_reason,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs *int `json:"processing_time_ms,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// APICallsMade holds the value of the "api_calls_made" field.
	APICallsMade int `json:"api_calls_made,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount int `json:"token_count,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// Archive marker set by retention
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CategoryResultQuery when eager-loading is set.
	Edges        CategoryResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CategoryResultEdges holds the relations/edges for other nodes in the graph.
type CategoryResultEdges struct {
	// Request holds the value of the request edge.
	Request *AnalysisRequest `json:"request,omitempty"`
	// ProviderResponses holds the value of the provider_responses edge.
	ProviderResponses []*ProviderResponse `json:"provider_responses,omitempty"`
	// MergedData holds the value of the merged_data edge.
	MergedData *MergedData `json:"merged_data,omitempty"`
	// Conflicts holds the value of the conflicts edge.
	Conflicts []*SourceConflict `json:"conflicts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryResultEdges) RequestOrErr() (*AnalysisRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// ProviderResponsesOrErr returns the ProviderResponses value or an error if the edge
// was not loaded in eager-loading.
func (e CategoryResultEdges) ProviderResponsesOrErr() ([]*ProviderResponse, error) {
	if e.loadedTypes[1] {
		return e.ProviderResponses, nil
	}
	return nil, &NotLoadedError{edge: "provider_responses"}
}

// MergedDataOrErr returns the MergedData value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryResultEdges) MergedDataOrErr() (*MergedData, error) {
	if e.MergedData != nil {
		return e.MergedData, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: mergeddata.Label}
	}
	return nil, &NotLoadedError{edge: "merged_data"}
}

// ConflictsOrErr returns the Conflicts value or an error if the edge
// was not loaded in eager-loading.
func (e CategoryResultEdges) ConflictsOrErr() ([]*SourceConflict, error) {
	if e.loadedTypes[3] {
		return e.Conflicts, nil
	}
	return nil, &NotLoadedError{edge: "conflicts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categoryresult.FieldConfidenceScore, categoryresult.FieldDataQualityScore, categoryresult.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case categoryresult.FieldProcessingTimeMs, categoryresult.FieldRetryCount, categoryresult.FieldAPICallsMade, categoryresult.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case categoryresult.FieldID, categoryresult.FieldRequestID, categoryresult.FieldCategoryID, categoryresult.FieldCategoryName, categoryresult.FieldSummary, categoryresult.FieldStatus, categoryresult.FieldSkipReason, categoryresult.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case categoryresult.FieldStartedAt, categoryresult.FieldCompletedAt, categoryresult.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryResult fields.
func (_m *CategoryResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categoryresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case categoryresult.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case categoryresult.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case categoryresult.FieldCategoryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_name", values[i])
			} else if value.Valid {
				_m.CategoryName = value.String
			}
		case categoryresult.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case categoryresult.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case categoryresult.FieldDataQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field data_quality_score", values[i])
			} else if value.Valid {
				_m.DataQualityScore = value.Float64
			}
		case categoryresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = categoryresult.Status(value.String)
			}
		case categoryresult.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = new(string)
				*_m.SkipReason = value.String
			}
		case categoryresult.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = new(int)
				*_m.ProcessingTimeMs = int(value.Int64)
			}
		case categoryresult.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case categoryresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case categoryresult.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case categoryresult.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case categoryresult.FieldAPICallsMade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_calls_made", values[i])
			} else if value.Valid {
				_m.APICallsMade = int(value.Int64)
			}
		case categoryresult.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case categoryresult.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case categoryresult.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryResult.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the CategoryResult entity.
func (_m *CategoryResult) QueryRequest() *AnalysisRequestQuery {
	return NewCategoryResultClient(_m.config).QueryRequest(_m)
}

// QueryProviderResponses queries the "provider_responses" edge of the CategoryResult entity.
func (_m *CategoryResult) QueryProviderResponses() *ProviderResponseQuery {
	return NewCategoryResultClient(_m.config).QueryProviderResponses(_m)
}

// QueryMergedData queries the "merged_data" edge of the CategoryResult entity.
func (_m *CategoryResult) QueryMergedData() *MergedDataQuery {
	return NewCategoryResultClient(_m.config).QueryMergedData(_m)
}

// QueryConflicts queries the "conflicts" edge of the CategoryResult entity.
func (_m *CategoryResult) QueryConflicts() *SourceConflictQuery {
	return NewCategoryResultClient(_m.config).QueryConflicts(_m)
}

// Update returns a builder for updating this CategoryResult.
// Note that you need to call CategoryResult.Unwrap() before calling this method if this CategoryResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryResult) Update() *CategoryResultUpdateOne {
	return NewCategoryResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryResult) Unwrap() *CategoryResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryResult) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("category_name=")
	builder.WriteString(_m.CategoryName)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("data_quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataQualityScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SkipReason; v != nil {
		builder.WriteString("skip_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessingTimeMs; v != nil {
		builder.WriteString("processing_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("api_calls_made=")
	builder.WriteString(fmt.Sprintf("%v", _m.APICallsMade))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CategoryResults is a parsable slice of CategoryResult.
type CategoryResults []*CategoryResult
