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
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
)

// AnalysisRequestCreate is the builder for creating a AnalysisRequest entity.
type AnalysisRequestCreate struct {
	config
	mutation *AnalysisRequestMutation
	hooks    []Hook
}

// SetDrugName sets the "drug_name" field.
func (_c *AnalysisRequestCreate) SetDrugName(v string) *AnalysisRequestCreate {
	_c.mutation.SetDrugName(v)
	return _c
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_c *AnalysisRequestCreate) SetDeliveryMethod(v analysisrequest.DeliveryMethod) *AnalysisRequestCreate {
	_c.mutation.SetDeliveryMethod(v)
	return _c
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableDeliveryMethod(v *analysisrequest.DeliveryMethod) *AnalysisRequestCreate {
	if v != nil {
		_c.SetDeliveryMethod(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AnalysisRequestCreate) SetPriority(v analysisrequest.Priority) *AnalysisRequestCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillablePriority(v *analysisrequest.Priority) *AnalysisRequestCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCallbackURL sets the "callback_url" field.
func (_c *AnalysisRequestCreate) SetCallbackURL(v string) *AnalysisRequestCreate {
	_c.mutation.SetCallbackURL(v)
	return _c
}

// SetNillableCallbackURL sets the "callback_url" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableCallbackURL(v *string) *AnalysisRequestCreate {
	if v != nil {
		_c.SetCallbackURL(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *AnalysisRequestCreate) SetCorrelationID(v string) *AnalysisRequestCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetDrugCount sets the "drug_count" field.
func (_c *AnalysisRequestCreate) SetDrugCount(v int) *AnalysisRequestCreate {
	_c.mutation.SetDrugCount(v)
	return _c
}

// SetNillableDrugCount sets the "drug_count" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableDrugCount(v *int) *AnalysisRequestCreate {
	if v != nil {
		_c.SetDrugCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *AnalysisRequestCreate) SetRetryCount(v int) *AnalysisRequestCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableRetryCount(v *int) *AnalysisRequestCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisRequestCreate) SetCreatedAt(v time.Time) *AnalysisRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableCreatedAt(v *time.Time) *AnalysisRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalysisRequestCreate) SetUpdatedAt(v time.Time) *AnalysisRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableUpdatedAt(v *time.Time) *AnalysisRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisRequestCreate) SetCompletedAt(v time.Time) *AnalysisRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableCompletedAt(v *time.Time) *AnalysisRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AnalysisRequestCreate) SetPodID(v string) *AnalysisRequestCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillablePodID(v *string) *AnalysisRequestCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *AnalysisRequestCreate) SetLastInteractionAt(v time.Time) *AnalysisRequestCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableLastInteractionAt(v *time.Time) *AnalysisRequestCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AnalysisRequestCreate) SetDeletedAt(v time.Time) *AnalysisRequestCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableDeletedAt(v *time.Time) *AnalysisRequestCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisRequestCreate) SetID(v string) *AnalysisRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTrackingID sets the "tracking" edge to the ProcessTracking entity by ID.
func (_c *AnalysisRequestCreate) SetTrackingID(id string) *AnalysisRequestCreate {
	_c.mutation.SetTrackingID(id)
	return _c
}

// SetNillableTrackingID sets the "tracking" edge to the ProcessTracking entity by ID if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableTrackingID(id *string) *AnalysisRequestCreate {
	if id != nil {
		_c = _c.SetTrackingID(*id)
	}
	return _c
}

// SetTracking sets the "tracking" edge to the ProcessTracking entity.
func (_c *AnalysisRequestCreate) SetTracking(v *ProcessTracking) *AnalysisRequestCreate {
	return _c.SetTrackingID(v.ID)
}

// AddCategoryResultIDs adds the "category_results" edge to the CategoryResult entity by IDs.
func (_c *AnalysisRequestCreate) AddCategoryResultIDs(ids ...string) *AnalysisRequestCreate {
	_c.mutation.AddCategoryResultIDs(ids...)
	return _c
}

// AddCategoryResults adds the "category_results" edges to the CategoryResult entity.
func (_c *AnalysisRequestCreate) AddCategoryResults(v ...*CategoryResult) *AnalysisRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCategoryResultIDs(ids...)
}

// AddParameterResultIDs adds the "parameter_results" edge to the ParameterResult entity by IDs.
func (_c *AnalysisRequestCreate) AddParameterResultIDs(ids ...string) *AnalysisRequestCreate {
	_c.mutation.AddParameterResultIDs(ids...)
	return _c
}

// AddParameterResults adds the "parameter_results" edges to the ParameterResult entity.
func (_c *AnalysisRequestCreate) AddParameterResults(v ...*ParameterResult) *AnalysisRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParameterResultIDs(ids...)
}

// AddStageEventIDs adds the "stage_events" edge to the StageEvent entity by IDs.
func (_c *AnalysisRequestCreate) AddStageEventIDs(ids ...string) *AnalysisRequestCreate {
	_c.mutation.AddStageEventIDs(ids...)
	return _c
}

// AddStageEvents adds the "stage_events" edges to the StageEvent entity.
func (_c *AnalysisRequestCreate) AddStageEvents(v ...*StageEvent) *AnalysisRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageEventIDs(ids...)
}

// SetFinalOutputID sets the "final_output" edge to the FinalOutput entity by ID.
func (_c *AnalysisRequestCreate) SetFinalOutputID(id string) *AnalysisRequestCreate {
	_c.mutation.SetFinalOutputID(id)
	return _c
}

// SetNillableFinalOutputID sets the "final_output" edge to the FinalOutput entity by ID if the given value is not nil.
func (_c *AnalysisRequestCreate) SetNillableFinalOutputID(id *string) *AnalysisRequestCreate {
	if id != nil {
		_c = _c.SetFinalOutputID(*id)
	}
	return _c
}

// SetFinalOutput sets the "final_output" edge to the FinalOutput entity.
func (_c *AnalysisRequestCreate) SetFinalOutput(v *FinalOutput) *AnalysisRequestCreate {
	return _c.SetFinalOutputID(v.ID)
}

// Mutation returns the AnalysisRequestMutation object of the builder.
func (_c *AnalysisRequestCreate) Mutation() *AnalysisRequestMutation {
	return _c.mutation
}

// Save creates the AnalysisRequest in the database.
func (_c *AnalysisRequestCreate) Save(ctx context.Context) (*AnalysisRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRequestCreate) SaveX(ctx context.Context) *AnalysisRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRequestCreate) defaults() {
	if _, ok := _c.mutation.DeliveryMethod(); !ok {
		v := analysisrequest.DefaultDeliveryMethod
		_c.mutation.SetDeliveryMethod(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := analysisrequest.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.DrugCount(); !ok {
		v := analysisrequest.DefaultDrugCount
		_c.mutation.SetDrugCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := analysisrequest.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analysisrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRequestCreate) check() error {
	if _, ok := _c.mutation.DrugName(); !ok {
		return &ValidationError{Name: "drug_name", err: errors.New(`ent: missing required field "AnalysisRequest.drug_name"`)}
	}
	if v, ok := _c.mutation.DrugName(); ok {
		if err := analysisrequest.DrugNameValidator(v); err != nil {
			return &ValidationError{Name: "drug_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.drug_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveryMethod(); !ok {
		return &ValidationError{Name: "delivery_method", err: errors.New(`ent: missing required field "AnalysisRequest.delivery_method"`)}
	}
	if v, ok := _c.mutation.DeliveryMethod(); ok {
		if err := analysisrequest.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.delivery_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AnalysisRequest.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := analysisrequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "AnalysisRequest.correlation_id"`)}
	}
	if _, ok := _c.mutation.DrugCount(); !ok {
		return &ValidationError{Name: "drug_count", err: errors.New(`ent: missing required field "AnalysisRequest.drug_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "AnalysisRequest.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnalysisRequest.updated_at"`)}
	}
	return nil
}

func (_c *AnalysisRequestCreate) sqlSave(ctx context.Context) (*AnalysisRequest, error) {
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
			return nil, fmt.Errorf("unexpected AnalysisRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisRequestCreate) createSpec() (*AnalysisRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrequest.Table, sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DrugName(); ok {
		_spec.SetField(analysisrequest.FieldDrugName, field.TypeString, value)
		_node.DrugName = value
	}
	if value, ok := _c.mutation.DeliveryMethod(); ok {
		_spec.SetField(analysisrequest.FieldDeliveryMethod, field.TypeEnum, value)
		_node.DeliveryMethod = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(analysisrequest.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CallbackURL(); ok {
		_spec.SetField(analysisrequest.FieldCallbackURL, field.TypeString, value)
		_node.CallbackURL = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(analysisrequest.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.DrugCount(); ok {
		_spec.SetField(analysisrequest.FieldDrugCount, field.TypeInt, value)
		_node.DrugCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(analysisrequest.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(analysisrequest.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysisrequest.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(analysisrequest.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TrackingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysisrequest.TrackingTable,
			Columns: []string{analysisrequest.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processtracking.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoryResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrequest.CategoryResultsTable,
			Columns: []string{analysisrequest.CategoryResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParameterResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrequest.ParameterResultsTable,
			Columns: []string{analysisrequest.ParameterResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parameterresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisrequest.StageEventsTable,
			Columns: []string{analysisrequest.StageEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FinalOutputIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysisrequest.FinalOutputTable,
			Columns: []string{analysisrequest.FinalOutputColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finaloutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisRequestCreateBulk is the builder for creating many AnalysisRequest entities in bulk.
type AnalysisRequestCreateBulk struct {
	config
	err      error
	builders []*AnalysisRequestCreate
}

// Save creates the AnalysisRequest entities in the database.
func (_c *AnalysisRequestCreateBulk) Save(ctx context.Context) ([]*AnalysisRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRequestMutation)
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
func (_c *AnalysisRequestCreateBulk) SaveX(ctx context.Context) []*AnalysisRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
