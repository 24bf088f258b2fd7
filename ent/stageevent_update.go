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
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
)

// StageEventUpdate is the builder for updating StageEvent entities.
type StageEventUpdate struct {
	config
	hooks    []Hook
	mutation *StageEventMutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdate) Where(ps ...predicate.StageEvent) *StageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageEventUpdate) SetStageName(v stageevent.StageName) *StageEventUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableStageName(v *stageevent.StageName) *StageEventUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageOrder sets the "stage_order" field.
func (_u *StageEventUpdate) SetStageOrder(v int) *StageEventUpdate {
	_u.mutation.ResetStageOrder()
	_u.mutation.SetStageOrder(v)
	return _u
}

// SetNillableStageOrder sets the "stage_order" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableStageOrder(v *int) *StageEventUpdate {
	if v != nil {
		_u.SetStageOrder(*v)
	}
	return _u
}

// AddStageOrder adds value to the "stage_order" field.
func (_u *StageEventUpdate) AddStageOrder(v int) *StageEventUpdate {
	_u.mutation.AddStageOrder(v)
	return _u
}

// SetExecuted sets the "executed" field.
func (_u *StageEventUpdate) SetExecuted(v bool) *StageEventUpdate {
	_u.mutation.SetExecuted(v)
	return _u
}

// SetNillableExecuted sets the "executed" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableExecuted(v *bool) *StageEventUpdate {
	if v != nil {
		_u.SetExecuted(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *StageEventUpdate) SetSkipped(v bool) *StageEventUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableSkipped(v *bool) *StageEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetInputDigest sets the "input_digest" field.
func (_u *StageEventUpdate) SetInputDigest(v string) *StageEventUpdate {
	_u.mutation.SetInputDigest(v)
	return _u
}

// SetNillableInputDigest sets the "input_digest" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableInputDigest(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetInputDigest(*v)
	}
	return _u
}

// ClearInputDigest clears the value of the "input_digest" field.
func (_u *StageEventUpdate) ClearInputDigest() *StageEventUpdate {
	_u.mutation.ClearInputDigest()
	return _u
}

// SetOutputDigest sets the "output_digest" field.
func (_u *StageEventUpdate) SetOutputDigest(v string) *StageEventUpdate {
	_u.mutation.SetOutputDigest(v)
	return _u
}

// SetNillableOutputDigest sets the "output_digest" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableOutputDigest(v *string) *StageEventUpdate {
	if v != nil {
		_u.SetOutputDigest(*v)
	}
	return _u
}

// ClearOutputDigest clears the value of the "output_digest" field.
func (_u *StageEventUpdate) ClearOutputDigest() *StageEventUpdate {
	_u.mutation.ClearOutputDigest()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageEventUpdate) SetDurationMs(v int) *StageEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageEventUpdate) SetNillableDurationMs(v *int) *StageEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageEventUpdate) AddDurationMs(v int) *StageEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdate) Mutation() *StageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdate) check() error {
	if v, ok := _u.mutation.StageName(); ok {
		if err := stageevent.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "StageEvent.stage_name": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageEvent.request"`)
	}
	return nil
}

func (_u *StageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageevent.FieldStageName, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageOrder(); ok {
		_spec.SetField(stageevent.FieldStageOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageOrder(); ok {
		_spec.AddField(stageevent.FieldStageOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Executed(); ok {
		_spec.SetField(stageevent.FieldExecuted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(stageevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputDigest(); ok {
		_spec.SetField(stageevent.FieldInputDigest, field.TypeString, value)
	}
	if _u.mutation.InputDigestCleared() {
		_spec.ClearField(stageevent.FieldInputDigest, field.TypeString)
	}
	if value, ok := _u.mutation.OutputDigest(); ok {
		_spec.SetField(stageevent.FieldOutputDigest, field.TypeString, value)
	}
	if _u.mutation.OutputDigestCleared() {
		_spec.ClearField(stageevent.FieldOutputDigest, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageevent.FieldDurationMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageEventUpdateOne is the builder for updating a single StageEvent entity.
type StageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageEventMutation
}

// SetStageName sets the "stage_name" field.
func (_u *StageEventUpdateOne) SetStageName(v stageevent.StageName) *StageEventUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableStageName(v *stageevent.StageName) *StageEventUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageOrder sets the "stage_order" field.
func (_u *StageEventUpdateOne) SetStageOrder(v int) *StageEventUpdateOne {
	_u.mutation.ResetStageOrder()
	_u.mutation.SetStageOrder(v)
	return _u
}

// SetNillableStageOrder sets the "stage_order" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableStageOrder(v *int) *StageEventUpdateOne {
	if v != nil {
		_u.SetStageOrder(*v)
	}
	return _u
}

// AddStageOrder adds value to the "stage_order" field.
func (_u *StageEventUpdateOne) AddStageOrder(v int) *StageEventUpdateOne {
	_u.mutation.AddStageOrder(v)
	return _u
}

// SetExecuted sets the "executed" field.
func (_u *StageEventUpdateOne) SetExecuted(v bool) *StageEventUpdateOne {
	_u.mutation.SetExecuted(v)
	return _u
}

// SetNillableExecuted sets the "executed" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableExecuted(v *bool) *StageEventUpdateOne {
	if v != nil {
		_u.SetExecuted(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *StageEventUpdateOne) SetSkipped(v bool) *StageEventUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableSkipped(v *bool) *StageEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetInputDigest sets the "input_digest" field.
func (_u *StageEventUpdateOne) SetInputDigest(v string) *StageEventUpdateOne {
	_u.mutation.SetInputDigest(v)
	return _u
}

// SetNillableInputDigest sets the "input_digest" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableInputDigest(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetInputDigest(*v)
	}
	return _u
}

// ClearInputDigest clears the value of the "input_digest" field.
func (_u *StageEventUpdateOne) ClearInputDigest() *StageEventUpdateOne {
	_u.mutation.ClearInputDigest()
	return _u
}

// SetOutputDigest sets the "output_digest" field.
func (_u *StageEventUpdateOne) SetOutputDigest(v string) *StageEventUpdateOne {
	_u.mutation.SetOutputDigest(v)
	return _u
}

// SetNillableOutputDigest sets the "output_digest" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableOutputDigest(v *string) *StageEventUpdateOne {
	if v != nil {
		_u.SetOutputDigest(*v)
	}
	return _u
}

// ClearOutputDigest clears the value of the "output_digest" field.
func (_u *StageEventUpdateOne) ClearOutputDigest() *StageEventUpdateOne {
	_u.mutation.ClearOutputDigest()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageEventUpdateOne) SetDurationMs(v int) *StageEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageEventUpdateOne) SetNillableDurationMs(v *int) *StageEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageEventUpdateOne) AddDurationMs(v int) *StageEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the StageEventMutation object of the builder.
func (_u *StageEventUpdateOne) Mutation() *StageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageEventUpdate builder.
func (_u *StageEventUpdateOne) Where(ps ...predicate.StageEvent) *StageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageEventUpdateOne) Select(field string, fields ...string) *StageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageEvent entity.
func (_u *StageEventUpdateOne) Save(ctx context.Context) (*StageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEventUpdateOne) SaveX(ctx context.Context) *StageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageEventUpdateOne) check() error {
	if v, ok := _u.mutation.StageName(); ok {
		if err := stageevent.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "StageEvent.stage_name": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageEvent.request"`)
	}
	return nil
}

func (_u *StageEventUpdateOne) sqlSave(ctx context.Context) (_node *StageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageevent.Table, stageevent.Columns, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageevent.FieldID)
		for _, f := range fields {
			if !stageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageevent.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageevent.FieldStageName, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageOrder(); ok {
		_spec.SetField(stageevent.FieldStageOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageOrder(); ok {
		_spec.AddField(stageevent.FieldStageOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Executed(); ok {
		_spec.SetField(stageevent.FieldExecuted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(stageevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputDigest(); ok {
		_spec.SetField(stageevent.FieldInputDigest, field.TypeString, value)
	}
	if _u.mutation.InputDigestCleared() {
		_spec.ClearField(stageevent.FieldInputDigest, field.TypeString)
	}
	if value, ok := _u.mutation.OutputDigest(); ok {
		_spec.SetField(stageevent.FieldOutputDigest, field.TypeString, value)
	}
	if _u.mutation.OutputDigestCleared() {
		_spec.ClearField(stageevent.FieldOutputDigest, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageevent.FieldDurationMs, field.TypeInt, value)
	}
	_node = &StageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
