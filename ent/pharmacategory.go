// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
)

// PharmaCategory is the model entity for the PharmaCategory schema.
type PharmaCategory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Stable snake_case key used in the final report document
	Key string `json:"key,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase int `json:"phase,omitempty"`
	// Phase 2 categories execute sequentially in this order
	DisplayOrder int `json:"display_order,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// PromptTemplate holds the value of the "prompt_template" field.
	PromptTemplate string `json:"prompt_template,omitempty"`
	// Structural rules evaluated by the category validator
	VerificationCriteria map[string]interface{} `json:"verification_criteria,omitempty"`
	// ProcessingRules holds the value of the "processing_rules" field.
	ProcessingRules map[string]interface{} `json:"processing_rules,omitempty"`
	// ConflictResolutionStrategy holds the value of the "conflict_resolution_strategy" field.
	ConflictResolutionStrategy string `json:"conflict_resolution_strategy,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PharmaCategoryQuery when eager-loading is set.
	Edges        PharmaCategoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PharmaCategoryEdges holds the relations/edges for other nodes in the graph.
type PharmaCategoryEdges struct {
	// Dependents holds the value of the dependents edge.
	Dependents []*CategoryDependency `json:"dependents,omitempty"`
	// Requirements holds the value of the requirements edge.
	Requirements []*CategoryDependency `json:"requirements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DependentsOrErr returns the Dependents value or an error if the edge
// was not loaded in eager-loading.
func (e PharmaCategoryEdges) DependentsOrErr() ([]*CategoryDependency, error) {
	if e.loadedTypes[0] {
		return e.Dependents, nil
	}
	return nil, &NotLoadedError{edge: "dependents"}
}

// RequirementsOrErr returns the Requirements value or an error if the edge
// was not loaded in eager-loading.
func (e PharmaCategoryEdges) RequirementsOrErr() ([]*CategoryDependency, error) {
	if e.loadedTypes[1] {
		return e.Requirements, nil
	}
	return nil, &NotLoadedError{edge: "requirements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PharmaCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pharmacategory.FieldVerificationCriteria, pharmacategory.FieldProcessingRules:
			values[i] = new([]byte)
		case pharmacategory.FieldIsActive:
			values[i] = new(sql.NullBool)
		case pharmacategory.FieldPhase, pharmacategory.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case pharmacategory.FieldID, pharmacategory.FieldName, pharmacategory.FieldKey, pharmacategory.FieldPromptTemplate, pharmacategory.FieldConflictResolutionStrategy:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PharmaCategory fields.
func (_m *PharmaCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pharmacategory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pharmacategory.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pharmacategory.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case pharmacategory.FieldPhase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = int(value.Int64)
			}
		case pharmacategory.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case pharmacategory.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case pharmacategory.FieldPromptTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_template", values[i])
			} else if value.Valid {
				_m.PromptTemplate = value.String
			}
		case pharmacategory.FieldVerificationCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verification_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VerificationCriteria); err != nil {
					return fmt.Errorf("unmarshal field verification_criteria: %w", err)
				}
			}
		case pharmacategory.FieldProcessingRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processing_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessingRules); err != nil {
					return fmt.Errorf("unmarshal field processing_rules: %w", err)
				}
			}
		case pharmacategory.FieldConflictResolutionStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_resolution_strategy", values[i])
			} else if value.Valid {
				_m.ConflictResolutionStrategy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PharmaCategory.
// This includes values selected through modifiers, order, etc.
func (_m *PharmaCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDependents queries the "dependents" edge of the PharmaCategory entity.
func (_m *PharmaCategory) QueryDependents() *CategoryDependencyQuery {
	return NewPharmaCategoryClient(_m.config).QueryDependents(_m)
}

// QueryRequirements queries the "requirements" edge of the PharmaCategory entity.
func (_m *PharmaCategory) QueryRequirements() *CategoryDependencyQuery {
	return NewPharmaCategoryClient(_m.config).QueryRequirements(_m)
}

// Update returns a builder for updating this PharmaCategory.
// Note that you need to call PharmaCategory.Unwrap() before calling this method if this PharmaCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PharmaCategory) Update() *PharmaCategoryUpdateOne {
	return NewPharmaCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PharmaCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PharmaCategory) Unwrap() *PharmaCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PharmaCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PharmaCategory) String() string {
	var builder strings.Builder
	builder.WriteString("PharmaCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("prompt_template=")
	builder.WriteString(_m.PromptTemplate)
	builder.WriteString(", ")
	builder.WriteString("verification_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationCriteria))
	builder.WriteString(", ")
	builder.WriteString("processing_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingRules))
	builder.WriteString(", ")
	builder.WriteString("conflict_resolution_strategy=")
	builder.WriteString(_m.ConflictResolutionStrategy)
	builder.WriteByte(')')
	return builder.String()
}

// PharmaCategories is a parsable slice of PharmaCategory.
type PharmaCategories []*PharmaCategory
