// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
)

// SummaryStyleCreate is the builder for creating a SummaryStyle entity.
type SummaryStyleCreate struct {
	config
	mutation *SummaryStyleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SummaryStyleCreate) SetName(v string) *SummaryStyleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *SummaryStyleCreate) SetSystemPrompt(v string) *SummaryStyleCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetUserTemplate sets the "user_template" field.
func (_c *SummaryStyleCreate) SetUserTemplate(v string) *SummaryStyleCreate {
	_c.mutation.SetUserTemplate(v)
	return _c
}

// SetLengthType sets the "length_type" field.
func (_c *SummaryStyleCreate) SetLengthType(v summarystyle.LengthType) *SummaryStyleCreate {
	_c.mutation.SetLengthType(v)
	return _c
}

// SetNillableLengthType sets the "length_type" field if the given value is not nil.
func (_c *SummaryStyleCreate) SetNillableLengthType(v *summarystyle.LengthType) *SummaryStyleCreate {
	if v != nil {
		_c.SetLengthType(*v)
	}
	return _c
}

// SetTargetWordCount sets the "target_word_count" field.
func (_c *SummaryStyleCreate) SetTargetWordCount(v int) *SummaryStyleCreate {
	_c.mutation.SetTargetWordCount(v)
	return _c
}

// SetNillableTargetWordCount sets the "target_word_count" field if the given value is not nil.
func (_c *SummaryStyleCreate) SetNillableTargetWordCount(v *int) *SummaryStyleCreate {
	if v != nil {
		_c.SetTargetWordCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryStyleCreate) SetID(v string) *SummaryStyleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SummaryStyleMutation object of the builder.
func (_c *SummaryStyleCreate) Mutation() *SummaryStyleMutation {
	return _c.mutation
}

// Save creates the SummaryStyle in the database.
func (_c *SummaryStyleCreate) Save(ctx context.Context) (*SummaryStyle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryStyleCreate) SaveX(ctx context.Context) *SummaryStyle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryStyleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryStyleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryStyleCreate) defaults() {
	if _, ok := _c.mutation.LengthType(); !ok {
		v := summarystyle.DefaultLengthType
		_c.mutation.SetLengthType(v)
	}
	if _, ok := _c.mutation.TargetWordCount(); !ok {
		v := summarystyle.DefaultTargetWordCount
		_c.mutation.SetTargetWordCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryStyleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SummaryStyle.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := summarystyle.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SummaryStyle.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "SummaryStyle.system_prompt"`)}
	}
	if _, ok := _c.mutation.UserTemplate(); !ok {
		return &ValidationError{Name: "user_template", err: errors.New(`ent: missing required field "SummaryStyle.user_template"`)}
	}
	if _, ok := _c.mutation.LengthType(); !ok {
		return &ValidationError{Name: "length_type", err: errors.New(`ent: missing required field "SummaryStyle.length_type"`)}
	}
	if v, ok := _c.mutation.LengthType(); ok {
		if err := summarystyle.LengthTypeValidator(v); err != nil {
			return &ValidationError{Name: "length_type", err: fmt.Errorf(`ent: validator failed for field "SummaryStyle.length_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetWordCount(); !ok {
		return &ValidationError{Name: "target_word_count", err: errors.New(`ent: missing required field "SummaryStyle.target_word_count"`)}
	}
	return nil
}

func (_c *SummaryStyleCreate) sqlSave(ctx context.Context) (*SummaryStyle, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SummaryStyle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryStyleCreate) createSpec() (*SummaryStyle, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryStyle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summarystyle.Table, sqlgraph.NewFieldSpec(summarystyle.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(summarystyle.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(summarystyle.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.UserTemplate(); ok {
		_spec.SetField(summarystyle.FieldUserTemplate, field.TypeString, value)
		_node.UserTemplate = value
	}
	if value, ok := _c.mutation.LengthType(); ok {
		_spec.SetField(summarystyle.FieldLengthType, field.TypeEnum, value)
		_node.LengthType = value
	}
	if value, ok := _c.mutation.TargetWordCount(); ok {
		_spec.SetField(summarystyle.FieldTargetWordCount, field.TypeInt, value)
		_node.TargetWordCount = value
	}
	return _node, _spec
}

// SummaryStyleCreateBulk is the builder for creating many SummaryStyle entities in bulk.
type SummaryStyleCreateBulk struct {
	config
	err      error
	builders []*SummaryStyleCreate
}

// Save creates the SummaryStyle entities in the database.
func (_c *SummaryStyleCreateBulk) Save(ctx context.Context) ([]*SummaryStyle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummaryStyle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryStyleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SummaryStyleCreateBulk) SaveX(ctx context.Context) []*SummaryStyle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryStyleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryStyleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
