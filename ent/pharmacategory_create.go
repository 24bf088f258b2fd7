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

// PharmaCategoryCreate is the builder for creating a PharmaCategory entity.
type PharmaCategoryCreate struct {
	config
	mutation *PharmaCategoryMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PharmaCategoryCreate) SetName(v string) *PharmaCategoryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *PharmaCategoryCreate) SetKey(v string) *PharmaCategoryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *PharmaCategoryCreate) SetPhase(v int) *PharmaCategoryCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *PharmaCategoryCreate) SetDisplayOrder(v int) *PharmaCategoryCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PharmaCategoryCreate) SetIsActive(v bool) *PharmaCategoryCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PharmaCategoryCreate) SetNillableIsActive(v *bool) *PharmaCategoryCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPromptTemplate sets the "prompt_template" field.
func (_c *PharmaCategoryCreate) SetPromptTemplate(v string) *PharmaCategoryCreate {
	_c.mutation.SetPromptTemplate(v)
	return _c
}

// SetVerificationCriteria sets the "verification_criteria" field.
func (_c *PharmaCategoryCreate) SetVerificationCriteria(v map[string]interface{}) *PharmaCategoryCreate {
	_c.mutation.SetVerificationCriteria(v)
	return _c
}

// SetProcessingRules sets the "processing_rules" field.
func (_c *PharmaCategoryCreate) SetProcessingRules(v map[string]interface{}) *PharmaCategoryCreate {
	_c.mutation.SetProcessingRules(v)
	return _c
}

// SetConflictResolutionStrategy sets the "conflict_resolution_strategy" field.
func (_c *PharmaCategoryCreate) SetConflictResolutionStrategy(v string) *PharmaCategoryCreate {
	_c.mutation.SetConflictResolutionStrategy(v)
	return _c
}

// SetNillableConflictResolutionStrategy sets the "conflict_resolution_strategy" field if the given value is not nil.
func (_c *PharmaCategoryCreate) SetNillableConflictResolutionStrategy(v *string) *PharmaCategoryCreate {
	if v != nil {
		_c.SetConflictResolutionStrategy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PharmaCategoryCreate) SetID(v string) *PharmaCategoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDependentIDs adds the "dependents" edge to the CategoryDependency entity by IDs.
func (_c *PharmaCategoryCreate) AddDependentIDs(ids ...string) *PharmaCategoryCreate {
	_c.mutation.AddDependentIDs(ids...)
	return _c
}

// AddDependents adds the "dependents" edges to the CategoryDependency entity.
func (_c *PharmaCategoryCreate) AddDependents(v ...*CategoryDependency) *PharmaCategoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependentIDs(ids...)
}

// AddRequirementIDs adds the "requirements" edge to the CategoryDependency entity by IDs.
func (_c *PharmaCategoryCreate) AddRequirementIDs(ids ...string) *PharmaCategoryCreate {
	_c.mutation.AddRequirementIDs(ids...)
	return _c
}

// AddRequirements adds the "requirements" edges to the CategoryDependency entity.
func (_c *PharmaCategoryCreate) AddRequirements(v ...*CategoryDependency) *PharmaCategoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRequirementIDs(ids...)
}

// Mutation returns the PharmaCategoryMutation object of the builder.
func (_c *PharmaCategoryCreate) Mutation() *PharmaCategoryMutation {
	return _c.mutation
}

// Save creates the PharmaCategory in the database.
func (_c *PharmaCategoryCreate) Save(ctx context.Context) (*PharmaCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PharmaCategoryCreate) SaveX(ctx context.Context) *PharmaCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PharmaCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PharmaCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PharmaCategoryCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := pharmacategory.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ConflictResolutionStrategy(); !ok {
		v := pharmacategory.DefaultConflictResolutionStrategy
		_c.mutation.SetConflictResolutionStrategy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PharmaCategoryCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PharmaCategory.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pharmacategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "PharmaCategory.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := pharmacategory.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "PharmaCategory.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := pharmacategory.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "PharmaCategory.display_order"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PharmaCategory.is_active"`)}
	}
	if _, ok := _c.mutation.PromptTemplate(); !ok {
		return &ValidationError{Name: "prompt_template", err: errors.New(`ent: missing required field "PharmaCategory.prompt_template"`)}
	}
	if _, ok := _c.mutation.ConflictResolutionStrategy(); !ok {
		return &ValidationError{Name: "conflict_resolution_strategy", err: errors.New(`ent: missing required field "PharmaCategory.conflict_resolution_strategy"`)}
	}
	return nil
}

func (_c *PharmaCategoryCreate) sqlSave(ctx context.Context) (*PharmaCategory, error) {
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
			return nil, fmt.Errorf("unexpected PharmaCategory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PharmaCategoryCreate) createSpec() (*PharmaCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &PharmaCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pharmacategory.Table, sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pharmacategory.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(pharmacategory.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(pharmacategory.FieldPhase, field.TypeInt, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(pharmacategory.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(pharmacategory.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.PromptTemplate(); ok {
		_spec.SetField(pharmacategory.FieldPromptTemplate, field.TypeString, value)
		_node.PromptTemplate = value
	}
	if value, ok := _c.mutation.VerificationCriteria(); ok {
		_spec.SetField(pharmacategory.FieldVerificationCriteria, field.TypeJSON, value)
		_node.VerificationCriteria = value
	}
	if value, ok := _c.mutation.ProcessingRules(); ok {
		_spec.SetField(pharmacategory.FieldProcessingRules, field.TypeJSON, value)
		_node.ProcessingRules = value
	}
	if value, ok := _c.mutation.ConflictResolutionStrategy(); ok {
		_spec.SetField(pharmacategory.FieldConflictResolutionStrategy, field.TypeString, value)
		_node.ConflictResolutionStrategy = value
	}
	if nodes := _c.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PharmaCategoryCreateBulk is the builder for creating many PharmaCategory entities in bulk.
type PharmaCategoryCreateBulk struct {
	config
	err      error
	builders []*PharmaCategoryCreate
}

// Save creates the PharmaCategory entities in the database.
func (_c *PharmaCategoryCreateBulk) Save(ctx context.Context) ([]*PharmaCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PharmaCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PharmaCategoryMutation)
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
func (_c *PharmaCategoryCreateBulk) SaveX(ctx context.Context) []*PharmaCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PharmaCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PharmaCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
