// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
)

// CategoryDependencyCreate is the builder for creating a CategoryDependency entity.
type CategoryDependencyCreate struct {
	config
	mutation *CategoryDependencyMutation
	hooks    []Hook
}

// SetDependentID sets the "dependent_id" field.
func (_c *CategoryDependencyCreate) SetDependentID(v string) *CategoryDependencyCreate {
	_c.mutation.SetDependentID(v)
	return _c
}

// SetRequiredID sets the "required_id" field.
func (_c *CategoryDependencyCreate) SetRequiredID(v string) *CategoryDependencyCreate {
	_c.mutation.SetRequiredID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CategoryDependencyCreate) SetID(v string) *CategoryDependencyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDependent sets the "dependent" edge to the PharmaCategory entity.
func (_c *CategoryDependencyCreate) SetDependent(v *PharmaCategory) *CategoryDependencyCreate {
	return _c.SetDependentID(v.ID)
}

// SetRequired sets the "required" edge to the PharmaCategory entity.
func (_c *CategoryDependencyCreate) SetRequired(v *PharmaCategory) *CategoryDependencyCreate {
	return _c.SetRequiredID(v.ID)
}

// Mutation returns the CategoryDependencyMutation object of the builder.
func (_c *CategoryDependencyCreate) Mutation() *CategoryDependencyMutation {
	return _c.mutation
}

// Save creates the CategoryDependency in the database.
func (_c *CategoryDependencyCreate) Save(ctx context.Context) (*CategoryDependency, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryDependencyCreate) SaveX(ctx context.Context) *CategoryDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryDependencyCreate) check() error {
	if _, ok := _c.mutation.DependentID(); !ok {
		return &ValidationError{Name: "dependent_id", err: errors.New(`ent: missing required field "CategoryDependency.dependent_id"`)}
	}
	if _, ok := _c.mutation.RequiredID(); !ok {
		return &ValidationError{Name: "required_id", err: errors.New(`ent: missing required field "CategoryDependency.required_id"`)}
	}
	if len(_c.mutation.DependentIDs()) == 0 {
		return &ValidationError{Name: "dependent", err: errors.New(`ent: missing required edge "CategoryDependency.dependent"`)}
	}
	if len(_c.mutation.RequiredIDs()) == 0 {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required edge "CategoryDependency.required"`)}
	}
	return nil
}

func (_c *CategoryDependencyCreate) sqlSave(ctx context.Context) (*CategoryDependency, error) {
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
			return nil, fmt.Errorf("unexpected CategoryDependency.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CategoryDependencyCreate) createSpec() (*CategoryDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categorydependency.Table, sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if nodes := _c.mutation.DependentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categorydependency.DependentTable,
			Columns: []string{categorydependency.DependentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DependentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RequiredIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categorydependency.RequiredTable,
			Columns: []string{categorydependency.RequiredColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequiredID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CategoryDependencyCreateBulk is the builder for creating many CategoryDependency entities in bulk.
type CategoryDependencyCreateBulk struct {
	config
	err      error
	builders []*CategoryDependencyCreate
}

// Save creates the CategoryDependency entities in the database.
func (_c *CategoryDependencyCreateBulk) Save(ctx context.Context) ([]*CategoryDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryDependencyMutation)
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
func (_c *CategoryDependencyCreateBulk) SaveX(ctx context.Context) []*CategoryDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
