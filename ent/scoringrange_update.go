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
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
)

// ScoringRangeUpdate is the builder for updating ScoringRange entities.
type ScoringRangeUpdate struct {
	config
	hooks    []Hook
	mutation *ScoringRangeMutation
}

// Where appends a list predicates to the ScoringRangeUpdate builder.
func (_u *ScoringRangeUpdate) Where(ps ...predicate.ScoringRange) *ScoringRangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParameter sets the "parameter" field.
func (_u *ScoringRangeUpdate) SetParameter(v scoringrange.Parameter) *ScoringRangeUpdate {
	_u.mutation.SetParameter(v)
	return _u
}

// SetNillableParameter sets the "parameter" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableParameter(v *scoringrange.Parameter) *ScoringRangeUpdate {
	if v != nil {
		_u.SetParameter(*v)
	}
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *ScoringRangeUpdate) SetDeliveryMethod(v scoringrange.DeliveryMethod) *ScoringRangeUpdate {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableDeliveryMethod(v *scoringrange.DeliveryMethod) *ScoringRangeUpdate {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// SetMinValue sets the "min_value" field.
func (_u *ScoringRangeUpdate) SetMinValue(v float64) *ScoringRangeUpdate {
	_u.mutation.ResetMinValue()
	_u.mutation.SetMinValue(v)
	return _u
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableMinValue(v *float64) *ScoringRangeUpdate {
	if v != nil {
		_u.SetMinValue(*v)
	}
	return _u
}

// AddMinValue adds value to the "min_value" field.
func (_u *ScoringRangeUpdate) AddMinValue(v float64) *ScoringRangeUpdate {
	_u.mutation.AddMinValue(v)
	return _u
}

// ClearMinValue clears the value of the "min_value" field.
func (_u *ScoringRangeUpdate) ClearMinValue() *ScoringRangeUpdate {
	_u.mutation.ClearMinValue()
	return _u
}

// SetMaxValue sets the "max_value" field.
func (_u *ScoringRangeUpdate) SetMaxValue(v float64) *ScoringRangeUpdate {
	_u.mutation.ResetMaxValue()
	_u.mutation.SetMaxValue(v)
	return _u
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableMaxValue(v *float64) *ScoringRangeUpdate {
	if v != nil {
		_u.SetMaxValue(*v)
	}
	return _u
}

// AddMaxValue adds value to the "max_value" field.
func (_u *ScoringRangeUpdate) AddMaxValue(v float64) *ScoringRangeUpdate {
	_u.mutation.AddMaxValue(v)
	return _u
}

// ClearMaxValue clears the value of the "max_value" field.
func (_u *ScoringRangeUpdate) ClearMaxValue() *ScoringRangeUpdate {
	_u.mutation.ClearMaxValue()
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoringRangeUpdate) SetScore(v int) *ScoringRangeUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableScore(v *int) *ScoringRangeUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoringRangeUpdate) AddScore(v int) *ScoringRangeUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetIsExclusion sets the "is_exclusion" field.
func (_u *ScoringRangeUpdate) SetIsExclusion(v bool) *ScoringRangeUpdate {
	_u.mutation.SetIsExclusion(v)
	return _u
}

// SetNillableIsExclusion sets the "is_exclusion" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableIsExclusion(v *bool) *ScoringRangeUpdate {
	if v != nil {
		_u.SetIsExclusion(*v)
	}
	return _u
}

// SetRangeText sets the "range_text" field.
func (_u *ScoringRangeUpdate) SetRangeText(v string) *ScoringRangeUpdate {
	_u.mutation.SetRangeText(v)
	return _u
}

// SetNillableRangeText sets the "range_text" field if the given value is not nil.
func (_u *ScoringRangeUpdate) SetNillableRangeText(v *string) *ScoringRangeUpdate {
	if v != nil {
		_u.SetRangeText(*v)
	}
	return _u
}

// Mutation returns the ScoringRangeMutation object of the builder.
func (_u *ScoringRangeUpdate) Mutation() *ScoringRangeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoringRangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoringRangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoringRangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoringRangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoringRangeUpdate) check() error {
	if v, ok := _u.mutation.Parameter(); ok {
		if err := scoringrange.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.parameter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryMethod(); ok {
		if err := scoringrange.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.delivery_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := scoringrange.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.score": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoringRangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoringrange.Table, scoringrange.Columns, sqlgraph.NewFieldSpec(scoringrange.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Parameter(); ok {
		_spec.SetField(scoringrange.FieldParameter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(scoringrange.FieldDeliveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinValue(); ok {
		_spec.SetField(scoringrange.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinValue(); ok {
		_spec.AddField(scoringrange.FieldMinValue, field.TypeFloat64, value)
	}
	if _u.mutation.MinValueCleared() {
		_spec.ClearField(scoringrange.FieldMinValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxValue(); ok {
		_spec.SetField(scoringrange.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxValue(); ok {
		_spec.AddField(scoringrange.FieldMaxValue, field.TypeFloat64, value)
	}
	if _u.mutation.MaxValueCleared() {
		_spec.ClearField(scoringrange.FieldMaxValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoringrange.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoringrange.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsExclusion(); ok {
		_spec.SetField(scoringrange.FieldIsExclusion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RangeText(); ok {
		_spec.SetField(scoringrange.FieldRangeText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoringrange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoringRangeUpdateOne is the builder for updating a single ScoringRange entity.
type ScoringRangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoringRangeMutation
}

// SetParameter sets the "parameter" field.
func (_u *ScoringRangeUpdateOne) SetParameter(v scoringrange.Parameter) *ScoringRangeUpdateOne {
	_u.mutation.SetParameter(v)
	return _u
}

// SetNillableParameter sets the "parameter" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableParameter(v *scoringrange.Parameter) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetParameter(*v)
	}
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *ScoringRangeUpdateOne) SetDeliveryMethod(v scoringrange.DeliveryMethod) *ScoringRangeUpdateOne {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableDeliveryMethod(v *scoringrange.DeliveryMethod) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// SetMinValue sets the "min_value" field.
func (_u *ScoringRangeUpdateOne) SetMinValue(v float64) *ScoringRangeUpdateOne {
	_u.mutation.ResetMinValue()
	_u.mutation.SetMinValue(v)
	return _u
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableMinValue(v *float64) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetMinValue(*v)
	}
	return _u
}

// AddMinValue adds value to the "min_value" field.
func (_u *ScoringRangeUpdateOne) AddMinValue(v float64) *ScoringRangeUpdateOne {
	_u.mutation.AddMinValue(v)
	return _u
}

// ClearMinValue clears the value of the "min_value" field.
func (_u *ScoringRangeUpdateOne) ClearMinValue() *ScoringRangeUpdateOne {
	_u.mutation.ClearMinValue()
	return _u
}

// SetMaxValue sets the "max_value" field.
func (_u *ScoringRangeUpdateOne) SetMaxValue(v float64) *ScoringRangeUpdateOne {
	_u.mutation.ResetMaxValue()
	_u.mutation.SetMaxValue(v)
	return _u
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableMaxValue(v *float64) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetMaxValue(*v)
	}
	return _u
}

// AddMaxValue adds value to the "max_value" field.
func (_u *ScoringRangeUpdateOne) AddMaxValue(v float64) *ScoringRangeUpdateOne {
	_u.mutation.AddMaxValue(v)
	return _u
}

// ClearMaxValue clears the value of the "max_value" field.
func (_u *ScoringRangeUpdateOne) ClearMaxValue() *ScoringRangeUpdateOne {
	_u.mutation.ClearMaxValue()
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoringRangeUpdateOne) SetScore(v int) *ScoringRangeUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableScore(v *int) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoringRangeUpdateOne) AddScore(v int) *ScoringRangeUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetIsExclusion sets the "is_exclusion" field.
func (_u *ScoringRangeUpdateOne) SetIsExclusion(v bool) *ScoringRangeUpdateOne {
	_u.mutation.SetIsExclusion(v)
	return _u
}

// SetNillableIsExclusion sets the "is_exclusion" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableIsExclusion(v *bool) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetIsExclusion(*v)
	}
	return _u
}

// SetRangeText sets the "range_text" field.
func (_u *ScoringRangeUpdateOne) SetRangeText(v string) *ScoringRangeUpdateOne {
	_u.mutation.SetRangeText(v)
	return _u
}

// SetNillableRangeText sets the "range_text" field if the given value is not nil.
func (_u *ScoringRangeUpdateOne) SetNillableRangeText(v *string) *ScoringRangeUpdateOne {
	if v != nil {
		_u.SetRangeText(*v)
	}
	return _u
}

// Mutation returns the ScoringRangeMutation object of the builder.
func (_u *ScoringRangeUpdateOne) Mutation() *ScoringRangeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoringRangeUpdate builder.
func (_u *ScoringRangeUpdateOne) Where(ps ...predicate.ScoringRange) *ScoringRangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoringRangeUpdateOne) Select(field string, fields ...string) *ScoringRangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoringRange entity.
func (_u *ScoringRangeUpdateOne) Save(ctx context.Context) (*ScoringRange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoringRangeUpdateOne) SaveX(ctx context.Context) *ScoringRange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoringRangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoringRangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoringRangeUpdateOne) check() error {
	if v, ok := _u.mutation.Parameter(); ok {
		if err := scoringrange.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.parameter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryMethod(); ok {
		if err := scoringrange.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.delivery_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := scoringrange.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.score": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoringRangeUpdateOne) sqlSave(ctx context.Context) (_node *ScoringRange, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoringrange.Table, scoringrange.Columns, sqlgraph.NewFieldSpec(scoringrange.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoringRange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoringrange.FieldID)
		for _, f := range fields {
			if !scoringrange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoringrange.FieldID {
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
	if value, ok := _u.mutation.Parameter(); ok {
		_spec.SetField(scoringrange.FieldParameter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(scoringrange.FieldDeliveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinValue(); ok {
		_spec.SetField(scoringrange.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinValue(); ok {
		_spec.AddField(scoringrange.FieldMinValue, field.TypeFloat64, value)
	}
	if _u.mutation.MinValueCleared() {
		_spec.ClearField(scoringrange.FieldMinValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxValue(); ok {
		_spec.SetField(scoringrange.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxValue(); ok {
		_spec.AddField(scoringrange.FieldMaxValue, field.TypeFloat64, value)
	}
	if _u.mutation.MaxValueCleared() {
		_spec.ClearField(scoringrange.FieldMaxValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoringrange.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoringrange.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsExclusion(); ok {
		_spec.SetField(scoringrange.FieldIsExclusion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RangeText(); ok {
		_spec.SetField(scoringrange.FieldRangeText, field.TypeString, value)
	}
	_node = &ScoringRange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoringrange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
