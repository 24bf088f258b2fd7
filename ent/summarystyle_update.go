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
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
)

// SummaryStyleUpdate is the builder for updating SummaryStyle entities.
type SummaryStyleUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryStyleMutation
}

// Where appends a list predicates to the SummaryStyleUpdate builder.
func (_u *SummaryStyleUpdate) Where(ps ...predicate.SummaryStyle) *SummaryStyleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SummaryStyleUpdate) SetName(v string) *SummaryStyleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SummaryStyleUpdate) SetNillableName(v *string) *SummaryStyleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *SummaryStyleUpdate) SetSystemPrompt(v string) *SummaryStyleUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *SummaryStyleUpdate) SetNillableSystemPrompt(v *string) *SummaryStyleUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetUserTemplate sets the "user_template" field.
func (_u *SummaryStyleUpdate) SetUserTemplate(v string) *SummaryStyleUpdate {
	_u.mutation.SetUserTemplate(v)
	return _u
}

// SetNillableUserTemplate sets the "user_template" field if the given value is not nil.
func (_u *SummaryStyleUpdate) SetNillableUserTemplate(v *string) *SummaryStyleUpdate {
	if v != nil {
		_u.SetUserTemplate(*v)
	}
	return _u
}

// SetLengthType sets the "length_type" field.
func (_u *SummaryStyleUpdate) SetLengthType(v summarystyle.LengthType) *SummaryStyleUpdate {
	_u.mutation.SetLengthType(v)
	return _u
}

// SetNillableLengthType sets the "length_type" field if the given value is not nil.
func (_u *SummaryStyleUpdate) SetNillableLengthType(v *summarystyle.LengthType) *SummaryStyleUpdate {
	if v != nil {
		_u.SetLengthType(*v)
	}
	return _u
}

// SetTargetWordCount sets the "target_word_count" field.
func (_u *SummaryStyleUpdate) SetTargetWordCount(v int) *SummaryStyleUpdate {
	_u.mutation.ResetTargetWordCount()
	_u.mutation.SetTargetWordCount(v)
	return _u
}

// SetNillableTargetWordCount sets the "target_word_count" field if the given value is not nil.
func (_u *SummaryStyleUpdate) SetNillableTargetWordCount(v *int) *SummaryStyleUpdate {
	if v != nil {
		_u.SetTargetWordCount(*v)
	}
	return _u
}

// AddTargetWordCount adds value to the "target_word_count" field.
func (_u *SummaryStyleUpdate) AddTargetWordCount(v int) *SummaryStyleUpdate {
	_u.mutation.AddTargetWordCount(v)
	return _u
}

// Mutation returns the SummaryStyleMutation object of the builder.
func (_u *SummaryStyleUpdate) Mutation() *SummaryStyleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryStyleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryStyleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryStyleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryStyleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryStyleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := summarystyle.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SummaryStyle.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LengthType(); ok {
		if err := summarystyle.LengthTypeValidator(v); err != nil {
			return &ValidationError{Name: "length_type", err: fmt.Errorf(`ent: validator failed for field "SummaryStyle.length_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryStyleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarystyle.Table, summarystyle.Columns, sqlgraph.NewFieldSpec(summarystyle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(summarystyle.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(summarystyle.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserTemplate(); ok {
		_spec.SetField(summarystyle.FieldUserTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthType(); ok {
		_spec.SetField(summarystyle.FieldLengthType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetWordCount(); ok {
		_spec.SetField(summarystyle.FieldTargetWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetWordCount(); ok {
		_spec.AddField(summarystyle.FieldTargetWordCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarystyle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryStyleUpdateOne is the builder for updating a single SummaryStyle entity.
type SummaryStyleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryStyleMutation
}

// SetName sets the "name" field.
func (_u *SummaryStyleUpdateOne) SetName(v string) *SummaryStyleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SummaryStyleUpdateOne) SetNillableName(v *string) *SummaryStyleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *SummaryStyleUpdateOne) SetSystemPrompt(v string) *SummaryStyleUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *SummaryStyleUpdateOne) SetNillableSystemPrompt(v *string) *SummaryStyleUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetUserTemplate sets the "user_template" field.
func (_u *SummaryStyleUpdateOne) SetUserTemplate(v string) *SummaryStyleUpdateOne {
	_u.mutation.SetUserTemplate(v)
	return _u
}

// SetNillableUserTemplate sets the "user_template" field if the given value is not nil.
func (_u *SummaryStyleUpdateOne) SetNillableUserTemplate(v *string) *SummaryStyleUpdateOne {
	if v != nil {
		_u.SetUserTemplate(*v)
	}
	return _u
}

// SetLengthType sets the "length_type" field.
func (_u *SummaryStyleUpdateOne) SetLengthType(v summarystyle.LengthType) *SummaryStyleUpdateOne {
	_u.mutation.SetLengthType(v)
	return _u
}

// SetNillableLengthType sets the "length_type" field if the given value is not nil.
func (_u *SummaryStyleUpdateOne) SetNillableLengthType(v *summarystyle.LengthType) *SummaryStyleUpdateOne {
	if v != nil {
		_u.SetLengthType(*v)
	}
	return _u
}

// SetTargetWordCount sets the "target_word_count" field.
func (_u *SummaryStyleUpdateOne) SetTargetWordCount(v int) *SummaryStyleUpdateOne {
	_u.mutation.ResetTargetWordCount()
	_u.mutation.SetTargetWordCount(v)
	return _u
}

// SetNillableTargetWordCount sets the "target_word_count" field if the given value is not nil.
func (_u *SummaryStyleUpdateOne) SetNillableTargetWordCount(v *int) *SummaryStyleUpdateOne {
	if v != nil {
		_u.SetTargetWordCount(*v)
	}
	return _u
}

// AddTargetWordCount adds value to the "target_word_count" field.
func (_u *SummaryStyleUpdateOne) AddTargetWordCount(v int) *SummaryStyleUpdateOne {
	_u.mutation.AddTargetWordCount(v)
	return _u
}

// Mutation returns the SummaryStyleMutation object of the builder.
func (_u *SummaryStyleUpdateOne) Mutation() *SummaryStyleMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryStyleUpdate builder.
func (_u *SummaryStyleUpdateOne) Where(ps ...predicate.SummaryStyle) *SummaryStyleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryStyleUpdateOne) Select(field string, fields ...string) *SummaryStyleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummaryStyle entity.
func (_u *SummaryStyleUpdateOne) Save(ctx context.Context) (*SummaryStyle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryStyleUpdateOne) SaveX(ctx context.Context) *SummaryStyle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryStyleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryStyleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryStyleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := summarystyle.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SummaryStyle.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LengthType(); ok {
		if err := summarystyle.LengthTypeValidator(v); err != nil {
			return &ValidationError{Name: "length_type", err: fmt.Errorf(`ent: validator failed for field "SummaryStyle.length_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryStyleUpdateOne) sqlSave(ctx context.Context) (_node *SummaryStyle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarystyle.Table, summarystyle.Columns, sqlgraph.NewFieldSpec(summarystyle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryStyle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summarystyle.FieldID)
		for _, f := range fields {
			if !summarystyle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summarystyle.FieldID {
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
		_spec.SetField(summarystyle.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(summarystyle.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserTemplate(); ok {
		_spec.SetField(summarystyle.FieldUserTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.LengthType(); ok {
		_spec.SetField(summarystyle.FieldLengthType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetWordCount(); ok {
		_spec.SetField(summarystyle.FieldTargetWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetWordCount(); ok {
		_spec.AddField(summarystyle.FieldTargetWordCount, field.TypeInt, value)
	}
	_node = &SummaryStyle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarystyle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
