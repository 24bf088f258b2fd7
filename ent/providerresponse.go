// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
)

// ProviderResponse is the model entity for the ProviderResponse schema.
type ProviderResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CategoryResultID holds the value of the "category_result_id" field.
	CategoryResultID string `json:"category_result_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// QueryParameters holds the value of the "query_parameters" field.
	QueryParameters map[string]interface{} `json:"query_parameters,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Source URLs for citation-returning providers
	CitedUrls []string `json:"cited_urls,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount int `json:"token_count,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost float64 `json:"cost,omitempty"`
	// SHA-256 over raw_text
	Checksum string `json:"checksum,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Creation + configured retention (default 7 years)
	RetentionExpiresAt time.Time `json:"retention_expires_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProviderResponseQuery when eager-loading is set.
	Edges        ProviderResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProviderResponseEdges holds the relations/edges for other nodes in the graph.
type ProviderResponseEdges struct {
	// CategoryResult holds the value of the category_result edge.
	CategoryResult *CategoryResult `json:"category_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryResultOrErr returns the CategoryResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProviderResponseEdges) CategoryResultOrErr() (*CategoryResult, error) {
	if e.CategoryResult != nil {
		return e.CategoryResult, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: categoryresult.Label}
	}
	return nil, &NotLoadedError{edge: "category_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case providerresponse.FieldQueryParameters, providerresponse.FieldCitedUrls:
			values[i] = new([]byte)
		case providerresponse.FieldTemperature, providerresponse.FieldCost:
			values[i] = new(sql.NullFloat64)
		case providerresponse.FieldLatencyMs, providerresponse.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case providerresponse.FieldID, providerresponse.FieldCategoryResultID, providerresponse.FieldProvider, providerresponse.FieldModel, providerresponse.FieldRawText, providerresponse.FieldChecksum:
			values[i] = new(sql.NullString)
		case providerresponse.FieldCreatedAt, providerresponse.FieldRetentionExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderResponse fields.
func (_m *ProviderResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case providerresponse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case providerresponse.FieldCategoryResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_result_id", values[i])
			} else if value.Valid {
				_m.CategoryResultID = value.String
			}
		case providerresponse.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case providerresponse.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case providerresponse.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case providerresponse.FieldQueryParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field query_parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QueryParameters); err != nil {
					return fmt.Errorf("unmarshal field query_parameters: %w", err)
				}
			}
		case providerresponse.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case providerresponse.FieldCitedUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cited_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CitedUrls); err != nil {
					return fmt.Errorf("unmarshal field cited_urls: %w", err)
				}
			}
		case providerresponse.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case providerresponse.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case providerresponse.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case providerresponse.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case providerresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case providerresponse.FieldRetentionExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retention_expires_at", values[i])
			} else if value.Valid {
				_m.RetentionExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderResponse.
// This includes values selected through modifiers, order, etc.
func (_m *ProviderResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategoryResult queries the "category_result" edge of the ProviderResponse entity.
func (_m *ProviderResponse) QueryCategoryResult() *CategoryResultQuery {
	return NewProviderResponseClient(_m.config).QueryCategoryResult(_m)
}

// Update returns a builder for updating this ProviderResponse.
// Note that you need to call ProviderResponse.Unwrap() before calling this method if this ProviderResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProviderResponse) Update() *ProviderResponseUpdateOne {
	return NewProviderResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProviderResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProviderResponse) Unwrap() *ProviderResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProviderResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProviderResponse) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_result_id=")
	builder.WriteString(_m.CategoryResultID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("query_parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryParameters))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("cited_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.CitedUrls))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("retention_expires_at=")
	builder.WriteString(_m.RetentionExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProviderResponses is a parsable slice of ProviderResponse.
type ProviderResponses []*ProviderResponse
