// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/summaryhistory"
)

// SummaryHistory is the model entity for the SummaryHistory schema.
type SummaryHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CategoryResultID holds the value of the "category_result_id" field.
	CategoryResultID string `json:"category_result_id,omitempty"`
	// StyleName holds the value of the "style_name" field.
	StyleName string `json:"style_name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Empty when generation failed
	GeneratedSummary string `json:"generated_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// GenerationTimeMs holds the value of the "generation_time_ms" field.
	GenerationTimeMs int `json:"generation_time_ms,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummaryHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summaryhistory.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case summaryhistory.FieldGenerationTimeMs, summaryhistory.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case summaryhistory.FieldID, summaryhistory.FieldCategoryResultID, summaryhistory.FieldStyleName, summaryhistory.FieldProvider, summaryhistory.FieldModel, summaryhistory.FieldGeneratedSummary, summaryhistory.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case summaryhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummaryHistory fields.
func (_m *SummaryHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summaryhistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case summaryhistory.FieldCategoryResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_result_id", values[i])
			} else if value.Valid {
				_m.CategoryResultID = value.String
			}
		case summaryhistory.FieldStyleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style_name", values[i])
			} else if value.Valid {
				_m.StyleName = value.String
			}
		case summaryhistory.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case summaryhistory.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case summaryhistory.FieldGeneratedSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_summary", values[i])
			} else if value.Valid {
				_m.GeneratedSummary = value.String
			}
		case summaryhistory.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case summaryhistory.FieldGenerationTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_time_ms", values[i])
			} else if value.Valid {
				_m.GenerationTimeMs = int(value.Int64)
			}
		case summaryhistory.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case summaryhistory.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case summaryhistory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SummaryHistory.
// This includes values selected through modifiers, order, etc.
func (_m *SummaryHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SummaryHistory.
// Note that you need to call SummaryHistory.Unwrap() before calling this method if this SummaryHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SummaryHistory) Update() *SummaryHistoryUpdateOne {
	return NewSummaryHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SummaryHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SummaryHistory) Unwrap() *SummaryHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummaryHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SummaryHistory) String() string {
	var builder strings.Builder
	builder.WriteString("SummaryHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_result_id=")
	builder.WriteString(_m.CategoryResultID)
	builder.WriteString(", ")
	builder.WriteString("style_name=")
	builder.WriteString(_m.StyleName)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("generated_summary=")
	builder.WriteString(_m.GeneratedSummary)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("generation_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerationTimeMs))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SummaryHistories is a parsable slice of SummaryHistory.
type SummaryHistories []*SummaryHistory
