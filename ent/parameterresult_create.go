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
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
)

// ParameterResultCreate is the builder for creating a ParameterResult entity.
type ParameterResultCreate struct {
	config
	mutation *ParameterResultMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *ParameterResultCreate) SetRequestID(v string) *ParameterResultCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetParameter sets the "parameter" field.
func (_c *ParameterResultCreate) SetParameter(v parameterresult.Parameter) *ParameterResultCreate {
	_c.mutation.SetParameter(v)
	return _c
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_c *ParameterResultCreate) SetDeliveryMethod(v parameterresult.DeliveryMethod) *ParameterResultCreate {
	_c.mutation.SetDeliveryMethod(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *ParameterResultCreate) SetExtractedValue(v float64) *ParameterResultCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableExtractedValue(v *float64) *ParameterResultCreate {
	if v != nil {
		_c.SetExtractedValue(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ParameterResultCreate) SetUnit(v string) *ParameterResultCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableUnit(v *string) *ParameterResultCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ParameterResultCreate) SetScore(v int) *ParameterResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableScore(v *int) *ParameterResultCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetWeightedScore sets the "weighted_score" field.
func (_c *ParameterResultCreate) SetWeightedScore(v float64) *ParameterResultCreate {
	_c.mutation.SetWeightedScore(v)
	return _c
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableWeightedScore(v *float64) *ParameterResultCreate {
	if v != nil {
		_c.SetWeightedScore(*v)
	}
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *ParameterResultCreate) SetRationale(v string) *ParameterResultCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableRationale(v *string) *ParameterResultCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetRangeText sets the "range_text" field.
func (_c *ParameterResultCreate) SetRangeText(v string) *ParameterResultCreate {
	_c.mutation.SetRangeText(v)
	return _c
}

// SetNillableRangeText sets the "range_text" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableRangeText(v *string) *ParameterResultCreate {
	if v != nil {
		_c.SetRangeText(*v)
	}
	return _c
}

// SetIsExclusion sets the "is_exclusion" field.
func (_c *ParameterResultCreate) SetIsExclusion(v bool) *ParameterResultCreate {
	_c.mutation.SetIsExclusion(v)
	return _c
}

// SetNillableIsExclusion sets the "is_exclusion" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableIsExclusion(v *bool) *ParameterResultCreate {
	if v != nil {
		_c.SetIsExclusion(*v)
	}
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *ParameterResultCreate) SetExtractionMethod(v parameterresult.ExtractionMethod) *ParameterResultCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParameterResultCreate) SetCreatedAt(v time.Time) *ParameterResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParameterResultCreate) SetNillableCreatedAt(v *time.Time) *ParameterResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParameterResultCreate) SetID(v string) *ParameterResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the AnalysisRequest entity.
func (_c *ParameterResultCreate) SetRequest(v *AnalysisRequest) *ParameterResultCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the ParameterResultMutation object of the builder.
func (_c *ParameterResultCreate) Mutation() *ParameterResultMutation {
	return _c.mutation
}

// Save creates the ParameterResult in the database.
func (_c *ParameterResultCreate) Save(ctx context.Context) (*ParameterResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParameterResultCreate) SaveX(ctx context.Context) *ParameterResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParameterResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParameterResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParameterResultCreate) defaults() {
	if _, ok := _c.mutation.WeightedScore(); !ok {
		v := parameterresult.DefaultWeightedScore
		_c.mutation.SetWeightedScore(v)
	}
	if _, ok := _c.mutation.IsExclusion(); !ok {
		v := parameterresult.DefaultIsExclusion
		_c.mutation.SetIsExclusion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parameterresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParameterResultCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ParameterResult.request_id"`)}
	}
	if _, ok := _c.mutation.Parameter(); !ok {
		return &ValidationError{Name: "parameter", err: errors.New(`ent: missing required field "ParameterResult.parameter"`)}
	}
	if v, ok := _c.mutation.Parameter(); ok {
		if err := parameterresult.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.parameter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveryMethod(); !ok {
		return &ValidationError{Name: "delivery_method", err: errors.New(`ent: missing required field "ParameterResult.delivery_method"`)}
	}
	if v, ok := _c.mutation.DeliveryMethod(); ok {
		if err := parameterresult.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.delivery_method": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := parameterresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeightedScore(); !ok {
		return &ValidationError{Name: "weighted_score", err: errors.New(`ent: missing required field "ParameterResult.weighted_score"`)}
	}
	if _, ok := _c.mutation.IsExclusion(); !ok {
		return &ValidationError{Name: "is_exclusion", err: errors.New(`ent: missing required field "ParameterResult.is_exclusion"`)}
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "ParameterResult.extraction_method"`)}
	}
	if v, ok := _c.mutation.ExtractionMethod(); ok {
		if err := parameterresult.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.extraction_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ParameterResult.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "ParameterResult.request"`)}
	}
	return nil
}

func (_c *ParameterResultCreate) sqlSave(ctx context.Context) (*ParameterResult, error) {
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
			return nil, fmt.Errorf("unexpected ParameterResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParameterResultCreate) createSpec() (*ParameterResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ParameterResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parameterresult.Table, sqlgraph.NewFieldSpec(parameterresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Parameter(); ok {
		_spec.SetField(parameterresult.FieldParameter, field.TypeEnum, value)
		_node.Parameter = value
	}
	if value, ok := _c.mutation.DeliveryMethod(); ok {
		_spec.SetField(parameterresult.FieldDeliveryMethod, field.TypeEnum, value)
		_node.DeliveryMethod = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(parameterresult.FieldExtractedValue, field.TypeFloat64, value)
		_node.ExtractedValue = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(parameterresult.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(parameterresult.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.WeightedScore(); ok {
		_spec.SetField(parameterresult.FieldWeightedScore, field.TypeFloat64, value)
		_node.WeightedScore = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(parameterresult.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.RangeText(); ok {
		_spec.SetField(parameterresult.FieldRangeText, field.TypeString, value)
		_node.RangeText = value
	}
	if value, ok := _c.mutation.IsExclusion(); ok {
		_spec.SetField(parameterresult.FieldIsExclusion, field.TypeBool, value)
		_node.IsExclusion = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(parameterresult.FieldExtractionMethod, field.TypeEnum, value)
		_node.ExtractionMethod = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parameterresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parameterresult.RequestTable,
			Columns: []string{parameterresult.RequestColumn},
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

// ParameterResultCreateBulk is the builder for creating many ParameterResult entities in bulk.
type ParameterResultCreateBulk struct {
	config
	err      error
	builders []*ParameterResultCreate
}

// Save creates the ParameterResult entities in the database.
func (_c *ParameterResultCreateBulk) Save(ctx context.Context) ([]*ParameterResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParameterResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParameterResultMutation)
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
func (_c *ParameterResultCreateBulk) SaveX(ctx context.Context) []*ParameterResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParameterResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParameterResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
