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
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
)

// CategoryResultCreate is the builder for creating a CategoryResult entity.
type CategoryResultCreate struct {
	config
	mutation *CategoryResultMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *CategoryResultCreate) SetRequestID(v string) *CategoryResultCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *CategoryResultCreate) SetCategoryID(v string) *CategoryResultCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetCategoryName sets the "category_name" field.
func (_c *CategoryResultCreate) SetCategoryName(v string) *CategoryResultCreate {
	_c.mutation.SetCategoryName(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CategoryResultCreate) SetSummary(v string) *CategoryResultCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableSummary(v *string) *CategoryResultCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *CategoryResultCreate) SetConfidenceScore(v float64) *CategoryResultCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableConfidenceScore(v *float64) *CategoryResultCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetDataQualityScore sets the "data_quality_score" field.
func (_c *CategoryResultCreate) SetDataQualityScore(v float64) *CategoryResultCreate {
	_c.mutation.SetDataQualityScore(v)
	return _c
}

// SetNillableDataQualityScore sets the "data_quality_score" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableDataQualityScore(v *float64) *CategoryResultCreate {
	if v != nil {
		_c.SetDataQualityScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CategoryResultCreate) SetStatus(v categoryresult.Status) *CategoryResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableStatus(v *categoryresult.Status) *CategoryResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *CategoryResultCreate) SetSkipReason(v string) *CategoryResultCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableSkipReason(v *string) *CategoryResultCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *CategoryResultCreate) SetProcessingTimeMs(v int) *CategoryResultCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableProcessingTimeMs(v *int) *CategoryResultCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *CategoryResultCreate) SetRetryCount(v int) *CategoryResultCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableRetryCount(v *int) *CategoryResultCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CategoryResultCreate) SetErrorMessage(v string) *CategoryResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableErrorMessage(v *string) *CategoryResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CategoryResultCreate) SetStartedAt(v time.Time) *CategoryResultCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableStartedAt(v *time.Time) *CategoryResultCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CategoryResultCreate) SetCompletedAt(v time.Time) *CategoryResultCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableCompletedAt(v *time.Time) *CategoryResultCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetAPICallsMade sets the "api_calls_made" field.
func (_c *CategoryResultCreate) SetAPICallsMade(v int) *CategoryResultCreate {
	_c.mutation.SetAPICallsMade(v)
	return _c
}

// SetNillableAPICallsMade sets the "api_calls_made" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableAPICallsMade(v *int) *CategoryResultCreate {
	if v != nil {
		_c.SetAPICallsMade(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *CategoryResultCreate) SetTokenCount(v int) *CategoryResultCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableTokenCount(v *int) *CategoryResultCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *CategoryResultCreate) SetCostEstimate(v float64) *CategoryResultCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableCostEstimate(v *float64) *CategoryResultCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CategoryResultCreate) SetDeletedAt(v time.Time) *CategoryResultCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableDeletedAt(v *time.Time) *CategoryResultCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CategoryResultCreate) SetID(v string) *CategoryResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the AnalysisRequest entity.
func (_c *CategoryResultCreate) SetRequest(v *AnalysisRequest) *CategoryResultCreate {
	return _c.SetRequestID(v.ID)
}

// AddProviderResponseIDs adds the "provider_responses" edge to the ProviderResponse entity by IDs.
func (_c *CategoryResultCreate) AddProviderResponseIDs(ids ...string) *CategoryResultCreate {
	_c.mutation.AddProviderResponseIDs(ids...)
	return _c
}

// AddProviderResponses adds the "provider_responses" edges to the ProviderResponse entity.
func (_c *CategoryResultCreate) AddProviderResponses(v ...*ProviderResponse) *CategoryResultCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProviderResponseIDs(ids...)
}

// SetMergedDataID sets the "merged_data" edge to the MergedData entity by ID.
func (_c *CategoryResultCreate) SetMergedDataID(id string) *CategoryResultCreate {
	_c.mutation.SetMergedDataID(id)
	return _c
}

// SetNillableMergedDataID sets the "merged_data" edge to the MergedData entity by ID if the given value is not nil.
func (_c *CategoryResultCreate) SetNillableMergedDataID(id *string) *CategoryResultCreate {
	if id != nil {
		_c = _c.SetMergedDataID(*id)
	}
	return _c
}

// SetMergedData sets the "merged_data" edge to the MergedData entity.
func (_c *CategoryResultCreate) SetMergedData(v *MergedData) *CategoryResultCreate {
	return _c.SetMergedDataID(v.ID)
}

// AddConflictIDs adds the "conflicts" edge to the SourceConflict entity by IDs.
func (_c *CategoryResultCreate) AddConflictIDs(ids ...string) *CategoryResultCreate {
	_c.mutation.AddConflictIDs(ids...)
	return _c
}

// AddConflicts adds the "conflicts" edges to the SourceConflict entity.
func (_c *CategoryResultCreate) AddConflicts(v ...*SourceConflict) *CategoryResultCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConflictIDs(ids...)
}

// Mutation returns the CategoryResultMutation object of the builder.
func (_c *CategoryResultCreate) Mutation() *CategoryResultMutation {
	return _c.mutation
}

// Save creates the CategoryResult in the database.
func (_c *CategoryResultCreate) Save(ctx context.Context) (*CategoryResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryResultCreate) SaveX(ctx context.Context) *CategoryResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryResultCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := categoryresult.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.DataQualityScore(); !ok {
		v := categoryresult.DefaultDataQualityScore
		_c.mutation.SetDataQualityScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := categoryresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := categoryresult.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.APICallsMade(); !ok {
		v := categoryresult.DefaultAPICallsMade
		_c.mutation.SetAPICallsMade(v)
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := categoryresult.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := categoryresult.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryResultCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "CategoryResult.request_id"`)}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "CategoryResult.category_id"`)}
	}
	if _, ok := _c.mutation.CategoryName(); !ok {
		return &ValidationError{Name: "category_name", err: errors.New(`ent: missing required field "CategoryResult.category_name"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "CategoryResult.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := categoryresult.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataQualityScore(); !ok {
		return &ValidationError{Name: "data_quality_score", err: errors.New(`ent: missing required field "CategoryResult.data_quality_score"`)}
	}
	if v, ok := _c.mutation.DataQualityScore(); ok {
		if err := categoryresult.DataQualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "data_quality_score", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.data_quality_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CategoryResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := categoryresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "CategoryResult.retry_count"`)}
	}
	if _, ok := _c.mutation.APICallsMade(); !ok {
		return &ValidationError{Name: "api_calls_made", err: errors.New(`ent: missing required field "CategoryResult.api_calls_made"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "CategoryResult.token_count"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "CategoryResult.cost_estimate"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "CategoryResult.request"`)}
	}
	return nil
}

func (_c *CategoryResultCreate) sqlSave(ctx context.Context) (*CategoryResult, error) {
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
			return nil, fmt.Errorf("unexpected CategoryResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CategoryResultCreate) createSpec() (*CategoryResult, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categoryresult.Table, sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(categoryresult.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.CategoryName(); ok {
		_spec.SetField(categoryresult.FieldCategoryName, field.TypeString, value)
		_node.CategoryName = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(categoryresult.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(categoryresult.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.DataQualityScore(); ok {
		_spec.SetField(categoryresult.FieldDataQualityScore, field.TypeFloat64, value)
		_node.DataQualityScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(categoryresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(categoryresult.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(categoryresult.FieldProcessingTimeMs, field.TypeInt, value)
		_node.ProcessingTimeMs = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(categoryresult.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(categoryresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(categoryresult.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(categoryresult.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.APICallsMade(); ok {
		_spec.SetField(categoryresult.FieldAPICallsMade, field.TypeInt, value)
		_node.APICallsMade = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(categoryresult.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(categoryresult.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(categoryresult.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryresult.RequestTable,
			Columns: []string{categoryresult.RequestColumn},
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
	if nodes := _c.mutation.ProviderResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   categoryresult.ProviderResponsesTable,
			Columns: []string{categoryresult.ProviderResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MergedDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   categoryresult.MergedDataTable,
			Columns: []string{categoryresult.MergedDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeddata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConflictsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   categoryresult.ConflictsTable,
			Columns: []string{categoryresult.ConflictsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourceconflict.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CategoryResultCreateBulk is the builder for creating many CategoryResult entities in bulk.
type CategoryResultCreateBulk struct {
	config
	err      error
	builders []*CategoryResultCreate
}

// Save creates the CategoryResult entities in the database.
func (_c *CategoryResultCreateBulk) Save(ctx context.Context) ([]*CategoryResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryResultMutation)
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
func (_c *CategoryResultCreateBulk) SaveX(ctx context.Context) []*CategoryResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
