// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
)

// FinalOutput is the model entity for the FinalOutput schema.
type FinalOutput struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Composed report JSON, persisted verbatim
	Document map[string]interface{} `json:"document,omitempty"`
	// TdScore holds the value of the "td_score" field.
	TdScore float64 `json:"td_score,omitempty"`
	// TmScore holds the value of the "tm_score" field.
	TmScore float64 `json:"tm_score,omitempty"`
	// TdVerdict holds the value of the "td_verdict" field.
	TdVerdict string `json:"td_verdict,omitempty"`
	// TmVerdict holds the value of the "tm_verdict" field.
	TmVerdict string `json:"tm_verdict,omitempty"`
	// GoDecision holds the value of the "go_decision" field.
	GoDecision string `json:"go_decision,omitempty"`
	// InvestmentPriority holds the value of the "investment_priority" field.
	InvestmentPriority string `json:"investment_priority,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel string `json:"risk_level,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinalOutputQuery when eager-loading is set.
	Edges        FinalOutputEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FinalOutputEdges holds the relations/edges for other nodes in the graph.
type FinalOutputEdges struct {
	// Request holds the value of the request edge.
	Request *AnalysisRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinalOutputEdges) RequestOrErr() (*AnalysisRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinalOutput) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case finaloutput.FieldDocument:
			values[i] = new([]byte)
		case finaloutput.FieldTdScore, finaloutput.FieldTmScore:
			values[i] = new(sql.NullFloat64)
		case finaloutput.FieldVersion:
			values[i] = new(sql.NullInt64)
		case finaloutput.FieldID, finaloutput.FieldRequestID, finaloutput.FieldTdVerdict, finaloutput.FieldTmVerdict, finaloutput.FieldGoDecision, finaloutput.FieldInvestmentPriority, finaloutput.FieldRiskLevel:
			values[i] = new(sql.NullString)
		case finaloutput.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinalOutput fields.
func (_m *FinalOutput) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case finaloutput.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case finaloutput.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case finaloutput.FieldDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Document); err != nil {
					return fmt.Errorf("unmarshal field document: %w", err)
				}
			}
		case finaloutput.FieldTdScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field td_score", values[i])
			} else if value.Valid {
				_m.TdScore = value.Float64
			}
		case finaloutput.FieldTmScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tm_score", values[i])
			} else if value.Valid {
				_m.TmScore = value.Float64
			}
		case finaloutput.FieldTdVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field td_verdict", values[i])
			} else if value.Valid {
				_m.TdVerdict = value.String
			}
		case finaloutput.FieldTmVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tm_verdict", values[i])
			} else if value.Valid {
				_m.TmVerdict = value.String
			}
		case finaloutput.FieldGoDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field go_decision", values[i])
			} else if value.Valid {
				_m.GoDecision = value.String
			}
		case finaloutput.FieldInvestmentPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investment_priority", values[i])
			} else if value.Valid {
				_m.InvestmentPriority = value.String
			}
		case finaloutput.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case finaloutput.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case finaloutput.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FinalOutput.
// This includes values selected through modifiers, order, etc.
func (_m *FinalOutput) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the FinalOutput entity.
func (_m *FinalOutput) QueryRequest() *AnalysisRequestQuery {
	return NewFinalOutputClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this FinalOutput.
// Note that you need to call FinalOutput.Unwrap() before calling this method if this FinalOutput
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinalOutput) Update() *FinalOutputUpdateOne {
	return NewFinalOutputClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinalOutput entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinalOutput) Unwrap() *FinalOutput {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinalOutput is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinalOutput) String() string {
	var builder strings.Builder
	builder.WriteString("FinalOutput(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("document=")
	builder.WriteString(fmt.Sprintf("%v", _m.Document))
	builder.WriteString(", ")
	builder.WriteString("td_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TdScore))
	builder.WriteString(", ")
	builder.WriteString("tm_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TmScore))
	builder.WriteString(", ")
	builder.WriteString("td_verdict=")
	builder.WriteString(_m.TdVerdict)
	builder.WriteString(", ")
	builder.WriteString("tm_verdict=")
	builder.WriteString(_m.TmVerdict)
	builder.WriteString(", ")
	builder.WriteString("go_decision=")
	builder.WriteString(_m.GoDecision)
	builder.WriteString(", ")
	builder.WriteString("investment_priority=")
	builder.WriteString(_m.InvestmentPriority)
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FinalOutputs is a parsable slice of FinalOutput.
type FinalOutputs []*FinalOutput
