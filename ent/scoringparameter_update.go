// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
)

// ScoringParameterUpdate is the builder for updating ScoringParameter entities.
type ScoringParameterUpdate struct {
	config
	hooks    []Hook
	mutation *ScoringParameterMutation
}

// Where appends a list predicates to the ScoringParameterUpdate builder.
func (_u *ScoringParameterUpdate) Where(ps ...predicate.ScoringParameter) *ScoringParameterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScoringParameterUpdate) SetName(v scoringparameter.Name) *ScoringParameterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScoringParameterUpdate) SetNillableName(v *scoringparameter.Name) *ScoringParameterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *ScoringParameterUpdate) SetWeight(v float64) *ScoringParameterUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *ScoringParameterUpdate) SetNillableWeight(v *float64) *ScoringParameterUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *ScoringParameterUpdate) AddWeight(v float64) *ScoringParameterUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ScoringParameterUpdate) SetUnit(v string) *ScoringParameterUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ScoringParameterUpdate) SetNillableUnit(v *string) *ScoringParameterUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ScoringParameterUpdate) SetDisplayOrder(v int) *ScoringParameterUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ScoringParameterUpdate) SetNillableDisplayOrder(v *int) *ScoringParameterUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ScoringParameterUpdate) AddDisplayOrder(v int) *ScoringParameterUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetExtractionInstruction sets the "extraction_instruction" field.
func (_u *ScoringParameterUpdate) SetExtractionInstruction(v string) *ScoringParameterUpdate {
	_u.mutation.SetExtractionInstruction(v)
	return _u
}

// SetNillableExtractionInstruction sets the "extraction_instruction" field if the given value is not nil.
func (_u *ScoringParameterUpdate) SetNillableExtractionInstruction(v *string) *ScoringParameterUpdate {
	if v != nil {
		_u.SetExtractionInstruction(*v)
	}
	return _u
}

// ClearExtractionInstruction clears the value of the "extraction_instruction" field.
func (_u *ScoringParameterUpdate) ClearExtractionInstruction() *ScoringParameterUpdate {
	_u.mutation.ClearExtractionInstruction()
	return _u
}

// Mutation returns the ScoringParameterMutation object of the builder.
func (_u *ScoringParameterUpdate) Mutation() *ScoringParameterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoringParameterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoringParameterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoringParameterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoringParameterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoringParameterUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scoringparameter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScoringParameter.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weight(); ok {
		if err := scoringparameter.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "ScoringParameter.weight": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoringParameterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoringparameter.Table, scoringparameter.Columns, sqlgraph.NewFieldSpec(scoringparameter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scoringparameter.FieldName, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(scoringparameter.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(scoringparameter.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(scoringparameter.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(scoringparameter.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(scoringparameter.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionInstruction(); ok {
		_spec.SetField(scoringparameter.FieldExtractionInstruction, field.TypeString, value)
	}
	if _u.mutation.ExtractionInstructionCleared() {
		_spec.ClearField(scoringparameter.FieldExtractionInstruction, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoringparameter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoringParameterUpdateOne is the builder for updating a single ScoringParameter entity.
type ScoringParameterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoringParameterMutation
}

// SetName sets the "name" field.
func (_u *ScoringParameterUpdateOne) SetName(v scoringparameter.Name) *ScoringParameterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScoringParameterUpdateOne) SetNillableName(v *scoringparameter.Name) *ScoringParameterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *ScoringParameterUpdateOne) SetWeight(v float64) *ScoringParameterUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *ScoringParameterUpdateOne) SetNillableWeight(v *float64) *ScoringParameterUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *ScoringParameterUpdateOne) AddWeight(v float64) *ScoringParameterUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ScoringParameterUpdateOne) SetUnit(v string) *ScoringParameterUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ScoringParameterUpdateOne) SetNillableUnit(v *string) *ScoringParameterUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ScoringParameterUpdateOne) SetDisplayOrder(v int) *ScoringParameterUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ScoringParameterUpdateOne) SetNillableDisplayOrder(v *int) *ScoringParameterUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ScoringParameterUpdateOne) AddDisplayOrder(v int) *ScoringParameterUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetExtractionInstruction sets the "extraction_instruction" field.
func (_u *ScoringParameterUpdateOne) SetExtractionInstruction(v string) *ScoringParameterUpdateOne {
	_u.mutation.SetExtractionInstruction(v)
	return _u
}

// SetNillableExtractionInstruction sets the "extraction_instruction" field if the given value is not nil.
func (_u *ScoringParameterUpdateOne) SetNillableExtractionInstruction(v *string) *ScoringParameterUpdateOne {
	if v != nil {
		_u.SetExtractionInstruction(*v)
	}
	return _u
}

// ClearExtractionInstruction clears the value of the "extraction_instruction" field.
func (_u *ScoringParameterUpdateOne) ClearExtractionInstruction() *ScoringParameterUpdateOne {
	_u.mutation.ClearExtractionInstruction()
	return _u
}

// Mutation returns the ScoringParameterMutation object of the builder.
func (_u *ScoringParameterUpdateOne) Mutation() *ScoringParameterMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoringParameterUpdate builder.
func (_u *ScoringParameterUpdateOne) Where(ps ...predicate.ScoringParameter) *ScoringParameterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoringParameterUpdateOne) Select(field string, fields ...string) *ScoringParameterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoringParameter entity.
func (_u *ScoringParameterUpdateOne) Save(ctx context.Context) (*ScoringParameter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoringParameterUpdateOne) SaveX(ctx context.Context) *ScoringParameter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoringParameterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoringParameterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoringParameterUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scoringparameter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScoringParameter.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weight(); ok {
		if err := scoringparameter.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "ScoringParameter.weight": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoringParameterUpdateOne) sqlSave(ctx context.Context) (_node *ScoringParameter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoringparameter.Table, scoringparameter.Columns, sqlgraph.NewFieldSpec(scoringparameter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoringParameter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoringparameter.FieldID)
		for _, f := range fields {
			if !scoringparameter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoringparameter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scoringparameter.FieldName, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(scoringparameter.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(scoringparameter.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(scoringparameter.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(scoringparameter.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(scoringparameter.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionInstruction(); ok {
		_spec.SetField(scoringparameter.FieldExtractionInstruction, field.TypeString, value)
	}
	if _u.mutation.ExtractionInstructionCleared() {
		_spec.ClearField(scoringparameter.FieldExtractionInstruction, field.TypeString)
	}
	_node = &ScoringParameter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoringparameter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
