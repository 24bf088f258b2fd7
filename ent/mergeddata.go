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
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
)

// MergedData is the model entity for the MergedData schema.
type MergedData struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CategoryResultID holds the value of the "category_result_id" field.
	CategoryResultID string `json:"category_result_id,omitempty"`
	// MergedText holds the value of the "merged_text" field.
	MergedText string `json:"merged_text,omitempty"`
	// Category-shaped typed payload; validated on write
	StructuredData map[string]interface{} `json:"structured_data,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// {provider, model, weight, authority_score} per source
	SourceReferences []map[string]interface{} `json:"source_references,omitempty"`
	// MergeMethod holds the value of the "merge_method" field.
	MergeMethod mergeddata.MergeMethod `json:"merge_method,omitempty"`
	// KeyFindings holds the value of the "key_findings" field.
	KeyFindings []string `json:"key_findings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MergedDataQuery when eager-loading is set.
	Edges        MergedDataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MergedDataEdges holds the relations/edges for other nodes in the graph.
type MergedDataEdges struct {
	// CategoryResult holds the value of the category_result edge.
	CategoryResult *CategoryResult `json:"category_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryResultOrErr returns the CategoryResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MergedDataEdges) CategoryResultOrErr() (*CategoryResult, error) {
	if e.CategoryResult != nil {
		return e.CategoryResult, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: categoryresult.Label}
	}
	return nil, &NotLoadedError{edge: "category_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergedData) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergeddata.FieldStructuredData, mergeddata.FieldSourceReferences, mergeddata.FieldKeyFindings:
			values[i] = new([]byte)
		case mergeddata.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case mergeddata.FieldID, mergeddata.FieldCategoryResultID, mergeddata.FieldMergedText, mergeddata.FieldMergeMethod:
			values[i] = new(sql.NullString)
		case mergeddata.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergedData fields.
func (_m *MergedData) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergeddata.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mergeddata.FieldCategoryResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_result_id", values[i])
			} else if value.Valid {
				_m.CategoryResultID = value.String
			}
		case mergeddata.FieldMergedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_text", values[i])
			} else if value.Valid {
				_m.MergedText = value.String
			}
		case mergeddata.FieldStructuredData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StructuredData); err != nil {
					return fmt.Errorf("unmarshal field structured_data: %w", err)
				}
			}
		case mergeddata.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case mergeddata.FieldSourceReferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_references", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceReferences); err != nil {
					return fmt.Errorf("unmarshal field source_references: %w", err)
				}
			}
		case mergeddata.FieldMergeMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merge_method", values[i])
			} else if value.Valid {
				_m.MergeMethod = mergeddata.MergeMethod(value.String)
			}
		case mergeddata.FieldKeyFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyFindings); err != nil {
					return fmt.Errorf("unmarshal field key_findings: %w", err)
				}
			}
		case mergeddata.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MergedData.
// This includes values selected through modifiers, order, etc.
func (_m *MergedData) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategoryResult queries the "category_result" edge of the MergedData entity.
func (_m *MergedData) QueryCategoryResult() *CategoryResultQuery {
	return NewMergedDataClient(_m.config).QueryCategoryResult(_m)
}

// Update returns a builder for updating this MergedData.
// Note that you need to call MergedData.Unwrap() before calling this method if this MergedData
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergedData) Update() *MergedDataUpdateOne {
	return NewMergedDataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergedData entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergedData) Unwrap() *MergedData {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergedData is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergedData) String() string {
	var builder strings.Builder
	builder.WriteString("MergedData(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_result_id=")
	builder.WriteString(_m.CategoryResultID)
	builder.WriteString(", ")
	builder.WriteString("merged_text=")
	builder.WriteString(_m.MergedText)
	builder.WriteString(", ")
	builder.WriteString("structured_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuredData))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source_references=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceReferences))
	builder.WriteString(", ")
	builder.WriteString("merge_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.MergeMethod))
	builder.WriteString(", ")
	builder.WriteString("key_findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyFindings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MergedDataSlice is a parsable slice of MergedData.
type MergedDataSlice []*MergedData
