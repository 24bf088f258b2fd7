// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
)

// SourceConflictCreate is the builder for creating a SourceConflict entity.
type SourceConflictCreate struct {
	config
	mutation *SourceConflictMutation
	hooks    []Hook
}

// SetCategoryResultID sets the "category_result_id" field.
func (_c *SourceConflictCreate) SetCategoryResultID(v string) *SourceConflictCreate {
	_c.mutation.SetCategoryResultID(v)
	return _c
}

// SetConflictType sets the "conflict_type" field.
func (_c *SourceConflictCreate) SetConflictType(v string) *SourceConflictCreate {
	_c.mutation.SetConflictType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SourceConflictCreate) SetDescription(v string) *SourceConflictCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetConflictingSourceIds sets the "conflicting_source_ids" field.
func (_c *SourceConflictCreate) SetConflictingSourceIds(v []string) *SourceConflictCreate {
	_c.mutation.SetConflictingSourceIds(v)
	return _c
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (_c *SourceConflictCreate) SetResolutionStrategy(v string) *SourceConflictCreate {
	_c.mutation.SetResolutionStrategy(v)
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *SourceConflictCreate) SetResolvedAt(v time.Time) *SourceConflictCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *SourceConflictCreate) SetNillableResolvedAt(v *time.Time) *SourceConflictCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetConfidenceImpact sets the "confidence_impact" field.
func (_c *SourceConflictCreate) SetConfidenceImpact(v float64) *SourceConflictCreate {
	_c.mutation.SetConfidenceImpact(v)
	return _c
}

// SetNillableConfidenceImpact sets the "confidence_impact" field if the given value is not nil.
func (_c *SourceConflictCreate) SetNillableConfidenceImpact(v *float64) *SourceConflictCreate {
	if v != nil {
		_c.SetConfidenceImpact(*v)
	}
	return _c
}

// SetIsCritical sets the "is_critical" field.
func (_c *SourceConflictCreate) SetIsCritical(v bool) *SourceConflictCreate {
	_c.mutation.SetIsCritical(v)
	return _c
}

// SetNillableIsCritical sets the "is_critical" field if the given value is not nil.
func (_c *SourceConflictCreate) SetNillableIsCritical(v *bool) *SourceConflictCreate {
	if v != nil {
		_c.SetIsCritical(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SourceConflictCreate) SetDeletedAt(v time.Time) *SourceConflictCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SourceConflictCreate) SetNillableDeletedAt(v *time.Time) *SourceConflictCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceConflictCreate) SetID(v string) *SourceConflictCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCategoryResult sets the "category_result" edge to the CategoryResult entity.
func (_c *SourceConflictCreate) SetCategoryResult(v *CategoryResult) *SourceConflictCreate {
	return _c.SetCategoryResultID(v.ID)
}

// Mutation returns the SourceConflictMutation object of the builder.
func (_c *SourceConflictCreate) Mutation() *SourceConflictMutation {
	return _c.mutation
}

// Save creates the SourceConflict in the database.
func (_c *SourceConflictCreate) Save(ctx context.Context) (*SourceConflict, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceConflictCreate) SaveX(ctx context.Context) *SourceConflict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceConflictCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceConflictCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceConflictCreate) defaults() {
	if _, ok := _c.mutation.ResolvedAt(); !ok {
		v := sourceconflict.DefaultResolvedAt()
		_c.mutation.SetResolvedAt(v)
	}
	if _, ok := _c.mutation.ConfidenceImpact(); !ok {
		v := sourceconflict.DefaultConfidenceImpact
		_c.mutation.SetConfidenceImpact(v)
	}
	if _, ok := _c.mutation.IsCritical(); !ok {
		v := sourceconflict.DefaultIsCritical
		_c.mutation.SetIsCritical(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceConflictCreate) check() error {
	if _, ok := _c.mutation.CategoryResultID(); !ok {
		return &ValidationError{Name: "category_result_id", err: errors.New(`ent: missing required field "SourceConflict.category_result_id"`)}
	}
	if _, ok := _c.mutation.ConflictType(); !ok {
		return &ValidationError{Name: "conflict_type", err: errors.New(`ent: missing required field "SourceConflict.conflict_type"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "SourceConflict.description"`)}
	}
	if _, ok := _c.mutation.ResolutionStrategy(); !ok {
		return &ValidationError{Name: "resolution_strategy", err: errors.New(`ent: missing required field "SourceConflict.resolution_strategy"`)}
	}
	if _, ok := _c.mutation.ResolvedAt(); !ok {
		return &ValidationError{Name: "resolved_at", err: errors.New(`ent: missing required field "SourceConflict.resolved_at"`)}
	}
	if _, ok := _c.mutation.ConfidenceImpact(); !ok {
		return &ValidationError{Name: "confidence_impact", err: errors.New(`ent: missing required field "SourceConflict.confidence_impact"`)}
	}
	if _, ok := _c.mutation.IsCritical(); !ok {
		return &ValidationError{Name: "is_critical", err: errors.New(`ent: missing required field "SourceConflict.is_critical"`)}
	}
	if len(_c.mutation.CategoryResultIDs()) == 0 {
		return &ValidationError{Name: "category_result", err: errors.New(`ent: missing required edge "SourceConflict.category_result"`)}
	}
	return nil
}

func (_c *SourceConflictCreate) sqlSave(ctx context.Context) (*SourceConflict, error) {
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
			return nil, fmt.Errorf("unexpected SourceConflict.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceConflictCreate) createSpec() (*SourceConflict, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceConflict{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourceconflict.Table, sqlgraph.NewFieldSpec(sourceconflict.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConflictType(); ok {
		_spec.SetField(sourceconflict.FieldConflictType, field.TypeString, value)
		_node.ConflictType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sourceconflict.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ConflictingSourceIds(); ok {
		_spec.SetField(sourceconflict.FieldConflictingSourceIds, field.TypeJSON, value)
		_node.ConflictingSourceIds = value
	}
	if value, ok := _c.mutation.ResolutionStrategy(); ok {
		_spec.SetField(sourceconflict.FieldResolutionStrategy, field.TypeString, value)
		_node.ResolutionStrategy = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(sourceconflict.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = value
	}
	if value, ok := _c.mutation.ConfidenceImpact(); ok {
		_spec.SetField(sourceconflict.FieldConfidenceImpact, field.TypeFloat64, value)
		_node.ConfidenceImpact = value
	}
	if value, ok := _c.mutation.IsCritical(); ok {
		_spec.SetField(sourceconflict.FieldIsCritical, field.TypeBool, value)
		_node.IsCritical = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(sourceconflict.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.CategoryResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourceconflict.CategoryResultTable,
			Columns: []string{sourceconflict.CategoryResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CategoryResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SourceConflictCreateBulk is the builder for creating many SourceConflict entities in bulk.
type SourceConflictCreateBulk struct {
	config
	err      error
	builders []*SourceConflictCreate
}

// Save creates the SourceConflict entities in the database.
func (_c *SourceConflictCreateBulk) Save(ctx context.Context) ([]*SourceConflict, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceConflict, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceConflictMutation)
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
func (_c *SourceConflictCreateBulk) SaveX(ctx context.Context) []*SourceConflict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceConflictCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceConflictCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
