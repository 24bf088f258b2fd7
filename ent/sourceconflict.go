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
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
)

// SourceConflict is the model entity for the SourceConflict schema.
type SourceConflict struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CategoryResultID holds the value of the "category_result_id" field.
	CategoryResultID string `json:"category_result_id,omitempty"`
	// ConflictType holds the value of the "conflict_type" field.
	ConflictType string `json:"conflict_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ConflictingSourceIds holds the value of the "conflicting_source_ids" field.
	ConflictingSourceIds []string `json:"conflicting_source_ids,omitempty"`
	// ResolutionStrategy holds the value of the "resolution_strategy" field.
	ResolutionStrategy string `json:"resolution_strategy,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt time.Time `json:"resolved_at,omitempty"`
	// ConfidenceImpact holds the value of the "confidence_impact" field.
	ConfidenceImpact float64 `json:"confidence_impact,omitempty"`
	// IsCritical holds the value of the "is_critical" field.
	IsCritical bool `json:"is_critical,omitempty"`
	// Archive marker set by retention
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceConflictQuery when eager-loading is set.
	Edges        SourceConflictEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceConflictEdges holds the relations/edges for other nodes in the graph.
type SourceConflictEdges struct {
	// CategoryResult holds the value of the category_result edge.
	CategoryResult *CategoryResult `json:"category_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryResultOrErr returns the CategoryResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceConflictEdges) CategoryResultOrErr() (*CategoryResult, error) {
	if e.CategoryResult != nil {
		return e.CategoryResult, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: categoryresult.Label}
	}
	return nil, &NotLoadedError{edge: "category_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceConflict) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourceconflict.FieldConflictingSourceIds:
			values[i] = new([]byte)
		case sourceconflict.FieldIsCritical:
			values[i] = new(sql.NullBool)
		case sourceconflict.FieldConfidenceImpact:
			values[i] = new(sql.NullFloat64)
		case sourceconflict.FieldID, sourceconflict.FieldCategoryResultID, sourceconflict.FieldConflictType, sourceconflict.FieldDescription, sourceconflict.FieldResolutionStrategy:
			values[i] = new(sql.NullString)
		case sourceconflict.FieldResolvedAt, sourceconflict.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceConflict fields.
func (_m *SourceConflict) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourceconflict.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sourceconflict.FieldCategoryResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_result_id", values[i])
			} else if value.Valid {
				_m.CategoryResultID = value.String
			}
		case sourceconflict.FieldConflictType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_type", values[i])
			} else if value.Valid {
				_m.ConflictType = value.String
			}
		case sourceconflict.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case sourceconflict.FieldConflictingSourceIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conflicting_source_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConflictingSourceIds); err != nil {
					return fmt.Errorf("unmarshal field conflicting_source_ids: %w", err)
				}
			}
		case sourceconflict.FieldResolutionStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_strategy", values[i])
			} else if value.Valid {
				_m.ResolutionStrategy = value.String
			}
		case sourceconflict.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = value.Time
			}
		case sourceconflict.FieldConfidenceImpact:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_impact", values[i])
			} else if value.Valid {
				_m.ConfidenceImpact = value.Float64
			}
		case sourceconflict.FieldIsCritical:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_critical", values[i])
			} else if value.Valid {
				_m.IsCritical = value.Bool
			}
		case sourceconflict.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SourceConflict.
// This includes values selected through modifiers, order, etc.
func (_m *SourceConflict) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategoryResult queries the "category_result" edge of the SourceConflict entity.
func (_m *SourceConflict) QueryCategoryResult() *CategoryResultQuery {
	return NewSourceConflictClient(_m.config).QueryCategoryResult(_m)
}

// Update returns a builder for updating this SourceConflict.
// Note that you need to call SourceConflict.Unwrap() before calling this method if this SourceConflict
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceConflict) Update() *SourceConflictUpdateOne {
	return NewSourceConflictClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceConflict entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceConflict) Unwrap() *SourceConflict {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceConflict is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceConflict) String() string {
	var builder strings.Builder
	builder.WriteString("SourceConflict(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_result_id=")
	builder.WriteString(_m.CategoryResultID)
	builder.WriteString(", ")
	builder.WriteString("conflict_type=")
	builder.WriteString(_m.ConflictType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("conflicting_source_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictingSourceIds))
	builder.WriteString(", ")
	builder.WriteString("resolution_strategy=")
	builder.WriteString(_m.ResolutionStrategy)
	builder.WriteString(", ")
	builder.WriteString("resolved_at=")
	builder.WriteString(_m.ResolvedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("confidence_impact=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceImpact))
	builder.WriteString(", ")
	builder.WriteString("is_critical=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCritical))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SourceConflicts is a parsable slice of SourceConflict.
type SourceConflicts []*SourceConflict
