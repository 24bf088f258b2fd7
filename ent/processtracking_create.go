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
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
)

// ProcessTrackingCreate is the builder for creating a ProcessTracking entity.
type ProcessTrackingCreate struct {
	config
	mutation *ProcessTrackingMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *ProcessTrackingCreate) SetRequestID(v string) *ProcessTrackingCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessTrackingCreate) SetStatus(v processtracking.Status) *ProcessTrackingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableStatus(v *processtracking.Status) *ProcessTrackingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *ProcessTrackingCreate) SetProgressPercent(v int) *ProcessTrackingCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableProgressPercent(v *int) *ProcessTrackingCreate {
	if v != nil {
		_c.SetProgressPercent(*v)
	}
	return _c
}

// SetCategoriesTotal sets the "categories_total" field.
func (_c *ProcessTrackingCreate) SetCategoriesTotal(v int) *ProcessTrackingCreate {
	_c.mutation.SetCategoriesTotal(v)
	return _c
}

// SetNillableCategoriesTotal sets the "categories_total" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableCategoriesTotal(v *int) *ProcessTrackingCreate {
	if v != nil {
		_c.SetCategoriesTotal(*v)
	}
	return _c
}

// SetCategoriesCompleted sets the "categories_completed" field.
func (_c *ProcessTrackingCreate) SetCategoriesCompleted(v int) *ProcessTrackingCreate {
	_c.mutation.SetCategoriesCompleted(v)
	return _c
}

// SetNillableCategoriesCompleted sets the "categories_completed" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableCategoriesCompleted(v *int) *ProcessTrackingCreate {
	if v != nil {
		_c.SetCategoriesCompleted(*v)
	}
	return _c
}

// SetEstimatedCompletionAt sets the "estimated_completion_at" field.
func (_c *ProcessTrackingCreate) SetEstimatedCompletionAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetEstimatedCompletionAt(v)
	return _c
}

// SetNillableEstimatedCompletionAt sets the "estimated_completion_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableEstimatedCompletionAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetEstimatedCompletionAt(*v)
	}
	return _c
}

// SetCollectingStartedAt sets the "collecting_started_at" field.
func (_c *ProcessTrackingCreate) SetCollectingStartedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetCollectingStartedAt(v)
	return _c
}

// SetNillableCollectingStartedAt sets the "collecting_started_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableCollectingStartedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetCollectingStartedAt(*v)
	}
	return _c
}

// SetCollectingCompletedAt sets the "collecting_completed_at" field.
func (_c *ProcessTrackingCreate) SetCollectingCompletedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetCollectingCompletedAt(v)
	return _c
}

// SetNillableCollectingCompletedAt sets the "collecting_completed_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableCollectingCompletedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetCollectingCompletedAt(*v)
	}
	return _c
}

// SetVerifyingStartedAt sets the "verifying_started_at" field.
func (_c *ProcessTrackingCreate) SetVerifyingStartedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetVerifyingStartedAt(v)
	return _c
}

// SetNillableVerifyingStartedAt sets the "verifying_started_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableVerifyingStartedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetVerifyingStartedAt(*v)
	}
	return _c
}

// SetVerifyingCompletedAt sets the "verifying_completed_at" field.
func (_c *ProcessTrackingCreate) SetVerifyingCompletedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetVerifyingCompletedAt(v)
	return _c
}

// SetNillableVerifyingCompletedAt sets the "verifying_completed_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableVerifyingCompletedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetVerifyingCompletedAt(*v)
	}
	return _c
}

// SetMergingStartedAt sets the "merging_started_at" field.
func (_c *ProcessTrackingCreate) SetMergingStartedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetMergingStartedAt(v)
	return _c
}

// SetNillableMergingStartedAt sets the "merging_started_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableMergingStartedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetMergingStartedAt(*v)
	}
	return _c
}

// SetMergingCompletedAt sets the "merging_completed_at" field.
func (_c *ProcessTrackingCreate) SetMergingCompletedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetMergingCompletedAt(v)
	return _c
}

// SetNillableMergingCompletedAt sets the "merging_completed_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableMergingCompletedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetMergingCompletedAt(*v)
	}
	return _c
}

// SetSummarizingStartedAt sets the "summarizing_started_at" field.
func (_c *ProcessTrackingCreate) SetSummarizingStartedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetSummarizingStartedAt(v)
	return _c
}

// SetNillableSummarizingStartedAt sets the "summarizing_started_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableSummarizingStartedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetSummarizingStartedAt(*v)
	}
	return _c
}

// SetSummarizingCompletedAt sets the "summarizing_completed_at" field.
func (_c *ProcessTrackingCreate) SetSummarizingCompletedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetSummarizingCompletedAt(v)
	return _c
}

// SetNillableSummarizingCompletedAt sets the "summarizing_completed_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableSummarizingCompletedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetSummarizingCompletedAt(*v)
	}
	return _c
}

// SetErrorDetails sets the "error_details" field.
func (_c *ProcessTrackingCreate) SetErrorDetails(v string) *ProcessTrackingCreate {
	_c.mutation.SetErrorDetails(v)
	return _c
}

// SetNillableErrorDetails sets the "error_details" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableErrorDetails(v *string) *ProcessTrackingCreate {
	if v != nil {
		_c.SetErrorDetails(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ProcessTrackingCreate) SetDeletedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableDeletedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessTrackingCreate) SetCreatedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableCreatedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessTrackingCreate) SetUpdatedAt(v time.Time) *ProcessTrackingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessTrackingCreate) SetNillableUpdatedAt(v *time.Time) *ProcessTrackingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessTrackingCreate) SetID(v string) *ProcessTrackingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the AnalysisRequest entity.
func (_c *ProcessTrackingCreate) SetRequest(v *AnalysisRequest) *ProcessTrackingCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the ProcessTrackingMutation object of the builder.
func (_c *ProcessTrackingCreate) Mutation() *ProcessTrackingMutation {
	return _c.mutation
}

// Save creates the ProcessTracking in the database.
func (_c *ProcessTrackingCreate) Save(ctx context.Context) (*ProcessTracking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessTrackingCreate) SaveX(ctx context.Context) *ProcessTracking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessTrackingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessTrackingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessTrackingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processtracking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		v := processtracking.DefaultProgressPercent
		_c.mutation.SetProgressPercent(v)
	}
	if _, ok := _c.mutation.CategoriesTotal(); !ok {
		v := processtracking.DefaultCategoriesTotal
		_c.mutation.SetCategoriesTotal(v)
	}
	if _, ok := _c.mutation.CategoriesCompleted(); !ok {
		v := processtracking.DefaultCategoriesCompleted
		_c.mutation.SetCategoriesCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processtracking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processtracking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessTrackingCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ProcessTracking.request_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessTracking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processtracking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessTracking.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "ProcessTracking.progress_percent"`)}
	}
	if v, ok := _c.mutation.ProgressPercent(); ok {
		if err := processtracking.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "ProcessTracking.progress_percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoriesTotal(); !ok {
		return &ValidationError{Name: "categories_total", err: errors.New(`ent: missing required field "ProcessTracking.categories_total"`)}
	}
	if _, ok := _c.mutation.CategoriesCompleted(); !ok {
		return &ValidationError{Name: "categories_completed", err: errors.New(`ent: missing required field "ProcessTracking.categories_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessTracking.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessTracking.updated_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "ProcessTracking.request"`)}
	}
	return nil
}

func (_c *ProcessTrackingCreate) sqlSave(ctx context.Context) (*ProcessTracking, error) {
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
			return nil, fmt.Errorf("unexpected ProcessTracking.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessTrackingCreate) createSpec() (*ProcessTracking, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessTracking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processtracking.Table, sqlgraph.NewFieldSpec(processtracking.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processtracking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(processtracking.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.CategoriesTotal(); ok {
		_spec.SetField(processtracking.FieldCategoriesTotal, field.TypeInt, value)
		_node.CategoriesTotal = value
	}
	if value, ok := _c.mutation.CategoriesCompleted(); ok {
		_spec.SetField(processtracking.FieldCategoriesCompleted, field.TypeInt, value)
		_node.CategoriesCompleted = value
	}
	if value, ok := _c.mutation.EstimatedCompletionAt(); ok {
		_spec.SetField(processtracking.FieldEstimatedCompletionAt, field.TypeTime, value)
		_node.EstimatedCompletionAt = &value
	}
	if value, ok := _c.mutation.CollectingStartedAt(); ok {
		_spec.SetField(processtracking.FieldCollectingStartedAt, field.TypeTime, value)
		_node.CollectingStartedAt = &value
	}
	if value, ok := _c.mutation.CollectingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldCollectingCompletedAt, field.TypeTime, value)
		_node.CollectingCompletedAt = &value
	}
	if value, ok := _c.mutation.VerifyingStartedAt(); ok {
		_spec.SetField(processtracking.FieldVerifyingStartedAt, field.TypeTime, value)
		_node.VerifyingStartedAt = &value
	}
	if value, ok := _c.mutation.VerifyingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldVerifyingCompletedAt, field.TypeTime, value)
		_node.VerifyingCompletedAt = &value
	}
	if value, ok := _c.mutation.MergingStartedAt(); ok {
		_spec.SetField(processtracking.FieldMergingStartedAt, field.TypeTime, value)
		_node.MergingStartedAt = &value
	}
	if value, ok := _c.mutation.MergingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldMergingCompletedAt, field.TypeTime, value)
		_node.MergingCompletedAt = &value
	}
	if value, ok := _c.mutation.SummarizingStartedAt(); ok {
		_spec.SetField(processtracking.FieldSummarizingStartedAt, field.TypeTime, value)
		_node.SummarizingStartedAt = &value
	}
	if value, ok := _c.mutation.SummarizingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldSummarizingCompletedAt, field.TypeTime, value)
		_node.SummarizingCompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorDetails(); ok {
		_spec.SetField(processtracking.FieldErrorDetails, field.TypeString, value)
		_node.ErrorDetails = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(processtracking.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processtracking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processtracking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   processtracking.RequestTable,
			Columns: []string{processtracking.RequestColumn},
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

// ProcessTrackingCreateBulk is the builder for creating many ProcessTracking entities in bulk.
type ProcessTrackingCreateBulk struct {
	config
	err      error
	builders []*ProcessTrackingCreate
}

// Save creates the ProcessTracking entities in the database.
func (_c *ProcessTrackingCreateBulk) Save(ctx context.Context) ([]*ProcessTracking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessTracking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessTrackingMutation)
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
func (_c *ProcessTrackingCreateBulk) SaveX(ctx context.Context) []*ProcessTracking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessTrackingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessTrackingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
