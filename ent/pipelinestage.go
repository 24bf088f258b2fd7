// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/pipelinestage"
)

// PipelineStage is the model entity for the PipelineStage schema.
type PipelineStage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name pipelinestage.Name `json:"name,omitempty"`
	// StageOrder holds the value of the "stage_order" field.
	StageOrder int `json:"stage_order,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled      bool `json:"enabled,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestage.FieldEnabled:
			values[i] = new(sql.NullBool)
		case pipelinestage.FieldStageOrder:
			values[i] = new(sql.NullInt64)
		case pipelinestage.FieldID, pipelinestage.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStage fields.
func (_m *PipelineStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinestage.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = pipelinestage.Name(value.String)
			}
		case pipelinestage.FieldStageOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_order", values[i])
			} else if value.Valid {
				_m.StageOrder = int(value.Int64)
			}
		case pipelinestage.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStage.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineStage.
// Note that you need to call PipelineStage.Unwrap() before calling this method if this PipelineStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStage) Update() *PipelineStageUpdateOne {
	return NewPipelineStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStage) Unwrap() *PipelineStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStage) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(fmt.Sprintf("%v", _m.Name))
	builder.WriteString(", ")
	builder.WriteString("stage_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageOrder))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineStages is a parsable slice of PipelineStage.
type PipelineStages []*PipelineStage
