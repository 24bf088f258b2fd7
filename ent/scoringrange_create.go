// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
)

// ScoringRangeCreate is the builder for creating a ScoringRange entity.
type ScoringRangeCreate struct {
	config
	mutation *ScoringRangeMutation
	hooks    []Hook
}

// SetParameter sets the "parameter" field.
func (_c *ScoringRangeCreate) SetParameter(v scoringrange.Parameter) *ScoringRangeCreate {
	_c.mutation.SetParameter(v)
	return _c
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_c *ScoringRangeCreate) SetDeliveryMethod(v scoringrange.DeliveryMethod) *ScoringRangeCreate {
	_c.mutation.SetDeliveryMethod(v)
	return _c
}

// SetMinValue sets the "min_value" field.
func (_c *ScoringRangeCreate) SetMinValue(v float64) *ScoringRangeCreate {
	_c.mutation.SetMinValue(v)
	return _c
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_c *ScoringRangeCreate) SetNillableMinValue(v *float64) *ScoringRangeCreate {
	if v != nil {
		_c.SetMinValue(*v)
	}
	return _c
}

// SetMaxValue sets the "max_value" field.
func (_c *ScoringRangeCreate) SetMaxValue(v float64) *ScoringRangeCreate {
	_c.mutation.SetMaxValue(v)
	return _c
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_c *ScoringRangeCreate) SetNillableMaxValue(v *float64) *ScoringRangeCreate {
	if v != nil {
		_c.SetMaxValue(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ScoringRangeCreate) SetScore(v int) *ScoringRangeCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetIsExclusion sets the "is_exclusion" field.
func (_c *ScoringRangeCreate) SetIsExclusion(v bool) *ScoringRangeCreate {
	_c.mutation.SetIsExclusion(v)
	return _c
}

// SetNillableIsExclusion sets the "is_exclusion" field if the given value is not nil.
func (_c *ScoringRangeCreate) SetNillableIsExclusion(v *bool) *ScoringRangeCreate {
	if v != nil {
		_c.SetIsExclusion(*v)
	}
	return _c
}

// SetRangeText sets the "range_text" field.
func (_c *ScoringRangeCreate) SetRangeText(v string) *ScoringRangeCreate {
	_c.mutation.SetRangeText(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScoringRangeCreate) SetID(v string) *ScoringRangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScoringRangeMutation object of the builder.
func (_c *ScoringRangeCreate) Mutation() *ScoringRangeMutation {
	return _c.mutation
}

// Save creates the ScoringRange in the database.
func (_c *ScoringRangeCreate) Save(ctx context.Context) (*ScoringRange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoringRangeCreate) SaveX(ctx context.Context) *ScoringRange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoringRangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoringRangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoringRangeCreate) defaults() {
	if _, ok := _c.mutation.IsExclusion(); !ok {
		v := scoringrange.DefaultIsExclusion
		_c.mutation.SetIsExclusion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoringRangeCreate) check() error {
	if _, ok := _c.mutation.Parameter(); !ok {
		return &ValidationError{Name: "parameter", err: errors.New(`ent: missing required field "ScoringRange.parameter"`)}
	}
	if v, ok := _c.mutation.Parameter(); ok {
		if err := scoringrange.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.parameter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveryMethod(); !ok {
		return &ValidationError{Name: "delivery_method", err: errors.New(`ent: missing required field "ScoringRange.delivery_method"`)}
	}
	if v, ok := _c.mutation.DeliveryMethod(); ok {
		if err := scoringrange.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.delivery_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ScoringRange.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := scoringrange.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoringRange.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsExclusion(); !ok {
		return &ValidationError{Name: "is_exclusion", err: errors.New(`ent: missing required field "ScoringRange.is_exclusion"`)}
	}
	if _, ok := _c.mutation.RangeText(); !ok {
		return &ValidationError{Name: "range_text", err: errors.New(`ent: missing required field "ScoringRange.range_text"`)}
	}
	return nil
}

func (_c *ScoringRangeCreate) sqlSave(ctx context.Context) (*ScoringRange, error) {
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
			return nil, fmt.Errorf("unexpected ScoringRange.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoringRangeCreate) createSpec() (*ScoringRange, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoringRange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoringrange.Table, sqlgraph.NewFieldSpec(scoringrange.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Parameter(); ok {
		_spec.SetField(scoringrange.FieldParameter, field.TypeEnum, value)
		_node.Parameter = value
	}
	if value, ok := _c.mutation.DeliveryMethod(); ok {
		_spec.SetField(scoringrange.FieldDeliveryMethod, field.TypeEnum, value)
		_node.DeliveryMethod = value
	}
	if value, ok := _c.mutation.MinValue(); ok {
		_spec.SetField(scoringrange.FieldMinValue, field.TypeFloat64, value)
		_node.MinValue = &value
	}
	if value, ok := _c.mutation.MaxValue(); ok {
		_spec.SetField(scoringrange.FieldMaxValue, field.TypeFloat64, value)
		_node.MaxValue = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scoringrange.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.IsExclusion(); ok {
		_spec.SetField(scoringrange.FieldIsExclusion, field.TypeBool, value)
		_node.IsExclusion = value
	}
	if value, ok := _c.mutation.RangeText(); ok {
		_spec.SetField(scoringrange.FieldRangeText, field.TypeString, value)
		_node.RangeText = value
	}
	return _node, _spec
}

// ScoringRangeCreateBulk is the builder for creating many ScoringRange entities in bulk.
type ScoringRangeCreateBulk struct {
	config
	err      error
	builders []*ScoringRangeCreate
}

// Save creates the ScoringRange entities in the database.
func (_c *ScoringRangeCreateBulk) Save(ctx context.Context) ([]*ScoringRange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoringRange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoringRangeMutation)
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
func (_c *ScoringRangeCreateBulk) SaveX(ctx context.Context) []*ScoringRange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoringRangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoringRangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
