// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
)

// CategoryDependency is the model entity for the CategoryDependency schema.
type CategoryDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DependentID holds the value of the "dependent_id" field.
	DependentID string `json:"dependent_id,omitempty"`
	// RequiredID holds the value of the "required_id" field.
	RequiredID string `json:"required_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CategoryDependencyQuery when eager-loading is set.
	Edges        CategoryDependencyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CategoryDependencyEdges holds the relations/edges for other nodes in the graph.
type CategoryDependencyEdges struct {
	// Dependent holds the value of the dependent edge.
	Dependent *PharmaCategory `json:"dependent,omitempty"`
	// Required holds the value of the required edge.
	Required *PharmaCategory `json:"required,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DependentOrErr returns the Dependent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryDependencyEdges) DependentOrErr() (*PharmaCategory, error) {
	if e.Dependent != nil {
		return e.Dependent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pharmacategory.Label}
	}
	return nil, &NotLoadedError{edge: "dependent"}
}

// RequiredOrErr returns the Required value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryDependencyEdges) RequiredOrErr() (*PharmaCategory, error) {
	if e.Required != nil {
		return e.Required, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: pharmacategory.Label}
	}
	return nil, &NotLoadedError{edge: "required"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categorydependency.FieldID, categorydependency.FieldDependentID, categorydependency.FieldRequiredID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryDependency fields.
func (_m *CategoryDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categorydependency.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case categorydependency.FieldDependentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dependent_id", values[i])
			} else if value.Valid {
				_m.DependentID = value.String
			}
		case categorydependency.FieldRequiredID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_id", values[i])
			} else if value.Valid {
				_m.RequiredID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryDependency.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDependent queries the "dependent" edge of the CategoryDependency entity.
func (_m *CategoryDependency) QueryDependent() *PharmaCategoryQuery {
	return NewCategoryDependencyClient(_m.config).QueryDependent(_m)
}

// QueryRequired queries the "required" edge of the CategoryDependency entity.
func (_m *CategoryDependency) QueryRequired() *PharmaCategoryQuery {
	return NewCategoryDependencyClient(_m.config).QueryRequired(_m)
}

// Update returns a builder for updating this CategoryDependency.
// Note that you need to call CategoryDependency.Unwrap() before calling this method if this CategoryDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryDependency) Update() *CategoryDependencyUpdateOne {
	return NewCategoryDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryDependency) Unwrap() *CategoryDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryDependency) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dependent_id=")
	builder.WriteString(_m.DependentID)
	builder.WriteString(", ")
	builder.WriteString("required_id=")
	builder.WriteString(_m.RequiredID)
	builder.WriteByte(')')
	return builder.String()
}

// CategoryDependencies is a parsable slice of CategoryDependency.
type CategoryDependencies []*CategoryDependency
