// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/pipelinestage"
)

// PipelineStageCreate is the builder for creating a PipelineStage entity.
type PipelineStageCreate struct {
	config
	mutation *PipelineStageMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PipelineStageCreate) SetName(v pipelinestage.Name) *PipelineStageCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStageOrder sets the "stage_order" field.
func (_c *PipelineStageCreate) SetStageOrder(v int) *PipelineStageCreate {
	_c.mutation.SetStageOrder(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PipelineStageCreate) SetEnabled(v bool) *PipelineStageCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PipelineStageCreate) SetNillableEnabled(v *bool) *PipelineStageCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineStageCreate) SetID(v string) *PipelineStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineStageMutation object of the builder.
func (_c *PipelineStageCreate) Mutation() *PipelineStageMutation {
	return _c.mutation
}

// Save creates the PipelineStage in the database.
func (_c *PipelineStageCreate) Save(ctx context.Context) (*PipelineStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStageCreate) SaveX(ctx context.Context) *PipelineStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStageCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := pipelinestage.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStageCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineStage.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pipelinestage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStage.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageOrder(); !ok {
		return &ValidationError{Name: "stage_order", err: errors.New(`ent: missing required field "PipelineStage.stage_order"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PipelineStage.enabled"`)}
	}
	return nil
}

func (_c *PipelineStageCreate) sqlSave(ctx context.Context) (*PipelineStage, error) {
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
			return nil, fmt.Errorf("unexpected PipelineStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineStageCreate) createSpec() (*PipelineStage, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestage.Table, sqlgraph.NewFieldSpec(pipelinestage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelinestage.FieldName, field.TypeEnum, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StageOrder(); ok {
		_spec.SetField(pipelinestage.FieldStageOrder, field.TypeInt, value)
		_node.StageOrder = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(pipelinestage.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	return _node, _spec
}

// PipelineStageCreateBulk is the builder for creating many PipelineStage entities in bulk.
type PipelineStageCreateBulk struct {
	config
	err      error
	builders []*PipelineStageCreate
}

// Save creates the PipelineStage entities in the database.
func (_c *PipelineStageCreateBulk) Save(ctx context.Context) ([]*PipelineStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStageMutation)
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
func (_c *PipelineStageCreateBulk) SaveX(ctx context.Context) []*PipelineStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
