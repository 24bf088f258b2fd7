// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
)

// ScoringParameterCreate is the builder for creating a ScoringParameter entity.
type ScoringParameterCreate struct {
	config
	mutation *ScoringParameterMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScoringParameterCreate) SetName(v scoringparameter.Name) *ScoringParameterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *ScoringParameterCreate) SetWeight(v float64) *ScoringParameterCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ScoringParameterCreate) SetUnit(v string) *ScoringParameterCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *ScoringParameterCreate) SetDisplayOrder(v int) *ScoringParameterCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetExtractionInstruction sets the "extraction_instruction" field.
func (_c *ScoringParameterCreate) SetExtractionInstruction(v string) *ScoringParameterCreate {
	_c.mutation.SetExtractionInstruction(v)
	return _c
}

// SetNillableExtractionInstruction sets the "extraction_instruction" field if the given value is not nil.
func (_c *ScoringParameterCreate) SetNillableExtractionInstruction(v *string) *ScoringParameterCreate {
	if v != nil {
		_c.SetExtractionInstruction(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScoringParameterCreate) SetID(v string) *ScoringParameterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScoringParameterMutation object of the builder.
func (_c *ScoringParameterCreate) Mutation() *ScoringParameterMutation {
	return _c.mutation
}

// Save creates the ScoringParameter in the database.
func (_c *ScoringParameterCreate) Save(ctx context.Context) (*ScoringParameter, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoringParameterCreate) SaveX(ctx context.Context) *ScoringParameter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoringParameterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoringParameterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoringParameterCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScoringParameter.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := scoringparameter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScoringParameter.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "ScoringParameter.weight"`)}
	}
	if v, ok := _c.mutation.Weight(); ok {
		if err := scoringparameter.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "ScoringParameter.weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "ScoringParameter.unit"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "ScoringParameter.display_order"`)}
	}
	return nil
}

func (_c *ScoringParameterCreate) sqlSave(ctx context.Context) (*ScoringParameter, error) {
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
			return nil, fmt.Errorf("unexpected ScoringParameter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoringParameterCreate) createSpec() (*ScoringParameter, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoringParameter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoringparameter.Table, sqlgraph.NewFieldSpec(scoringparameter.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scoringparameter.FieldName, field.TypeEnum, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(scoringparameter.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(scoringparameter.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(scoringparameter.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.ExtractionInstruction(); ok {
		_spec.SetField(scoringparameter.FieldExtractionInstruction, field.TypeString, value)
		_node.ExtractionInstruction = value
	}
	return _node, _spec
}

// ScoringParameterCreateBulk is the builder for creating many ScoringParameter entities in bulk.
type ScoringParameterCreateBulk struct {
	config
	err      error
	builders []*ScoringParameterCreate
}

// Save creates the ScoringParameter entities in the database.
func (_c *ScoringParameterCreateBulk) Save(ctx context.Context) ([]*ScoringParameter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoringParameter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoringParameterMutation)
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
func (_c *ScoringParameterCreateBulk) SaveX(ctx context.Context) []*ScoringParameter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoringParameterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoringParameterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
