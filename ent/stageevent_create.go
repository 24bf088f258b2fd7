// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
)

// StageEventCreate is the builder for creating a StageEvent entity.
type StageEventCreate struct {
	config
	mutation *StageEventMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *StageEventCreate) SetRequestID(v string) *StageEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *StageEventCreate) SetCategoryID(v string) *StageEventCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageEventCreate) SetStageName(v stageevent.StageName) *StageEventCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStageOrder sets the "stage_order" field.
func (_c *StageEventCreate) SetStageOrder(v int) *StageEventCreate {
	_c.mutation.SetStageOrder(v)
	return _c
}

// SetExecuted sets the "executed" field.
func (_c *StageEventCreate) SetExecuted(v bool) *StageEventCreate {
	_c.mutation.SetExecuted(v)
	return _c
}

// SetNillableExecuted sets the "executed" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableExecuted(v *bool) *StageEventCreate {
	if v != nil {
		_c.SetExecuted(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *StageEventCreate) SetSkipped(v bool) *StageEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableSkipped(v *bool) *StageEventCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetInputDigest sets the "input_digest" field.
func (_c *StageEventCreate) SetInputDigest(v string) *StageEventCreate {
	_c.mutation.SetInputDigest(v)
	return _c
}

// SetNillableInputDigest sets the "input_digest" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableInputDigest(v *string) *StageEventCreate {
	if v != nil {
		_c.SetInputDigest(*v)
	}
	return _c
}

// SetOutputDigest sets the "output_digest" field.
func (_c *StageEventCreate) SetOutputDigest(v string) *StageEventCreate {
	_c.mutation.SetOutputDigest(v)
	return _c
}

// SetNillableOutputDigest sets the "output_digest" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableOutputDigest(v *string) *StageEventCreate {
	if v != nil {
		_c.SetOutputDigest(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageEventCreate) SetDurationMs(v int) *StageEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableDurationMs(v *int) *StageEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageEventCreate) SetCreatedAt(v time.Time) *StageEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageEventCreate) SetNillableCreatedAt(v *time.Time) *StageEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageEventCreate) SetID(v string) *StageEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the AnalysisRequest entity.
func (_c *StageEventCreate) SetRequest(v *AnalysisRequest) *StageEventCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the StageEventMutation object of the builder.
func (_c *StageEventCreate) Mutation() *StageEventMutation {
	return _c.mutation
}

// Save creates the StageEvent in the database.
func (_c *StageEventCreate) Save(ctx context.Context) (*StageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageEventCreate) SaveX(ctx context.Context) *StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageEventCreate) defaults() {
	if _, ok := _c.mutation.Executed(); !ok {
		v := stageevent.DefaultExecuted
		_c.mutation.SetExecuted(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := stageevent.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := stageevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageEventCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "StageEvent.request_id"`)}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "StageEvent.category_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "StageEvent.stage_name"`)}
	}
	if v, ok := _c.mutation.StageName(); ok {
		if err := stageevent.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "StageEvent.stage_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageOrder(); !ok {
		return &ValidationError{Name: "stage_order", err: errors.New(`ent: missing required field "StageEvent.stage_order"`)}
	}
	if _, ok := _c.mutation.Executed(); !ok {
		return &ValidationError{Name: "executed", err: errors.New(`ent: missing required field "StageEvent.executed"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "StageEvent.skipped"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "StageEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageEvent.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "StageEvent.request"`)}
	}
	return nil
}

func (_c *StageEventCreate) sqlSave(ctx context.Context) (*StageEvent, error) {
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
			return nil, fmt.Errorf("unexpected StageEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageEventCreate) createSpec() (*StageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageevent.Table, sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(stageevent.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stageevent.FieldStageName, field.TypeEnum, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StageOrder(); ok {
		_spec.SetField(stageevent.FieldStageOrder, field.TypeInt, value)
		_node.StageOrder = value
	}
	if value, ok := _c.mutation.Executed(); ok {
		_spec.SetField(stageevent.FieldExecuted, field.TypeBool, value)
		_node.Executed = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(stageevent.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.InputDigest(); ok {
		_spec.SetField(stageevent.FieldInputDigest, field.TypeString, value)
		_node.InputDigest = value
	}
	if value, ok := _c.mutation.OutputDigest(); ok {
		_spec.SetField(stageevent.FieldOutputDigest, field.TypeString, value)
		_node.OutputDigest = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stageevent.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageevent.RequestTable,
			Columns: []string{stageevent.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageEventCreateBulk is the builder for creating many StageEvent entities in bulk.
type StageEventCreateBulk struct {
	config
	err      error
	builders []*StageEventCreate
}

// Save creates the StageEvent entities in the database.
func (_c *StageEventCreateBulk) Save(ctx context.Context) ([]*StageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageEventMutation)
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
func (_c *StageEventCreateBulk) SaveX(ctx context.Context) []*StageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
