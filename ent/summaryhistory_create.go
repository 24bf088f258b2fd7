// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/summaryhistory"
)

// SummaryHistoryCreate is the builder for creating a SummaryHistory entity.
type SummaryHistoryCreate struct {
	config
	mutation *SummaryHistoryMutation
	hooks    []Hook
}

// SetCategoryResultID sets the "category_result_id" field.
func (_c *SummaryHistoryCreate) SetCategoryResultID(v string) *SummaryHistoryCreate {
	_c.mutation.SetCategoryResultID(v)
	return _c
}

// SetStyleName sets the "style_name" field.
func (_c *SummaryHistoryCreate) SetStyleName(v string) *SummaryHistoryCreate {
	_c.mutation.SetStyleName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *SummaryHistoryCreate) SetProvider(v string) *SummaryHistoryCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableProvider(v *string) *SummaryHistoryCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *SummaryHistoryCreate) SetModel(v string) *SummaryHistoryCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableModel(v *string) *SummaryHistoryCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetGeneratedSummary sets the "generated_summary" field.
func (_c *SummaryHistoryCreate) SetGeneratedSummary(v string) *SummaryHistoryCreate {
	_c.mutation.SetGeneratedSummary(v)
	return _c
}

// SetNillableGeneratedSummary sets the "generated_summary" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableGeneratedSummary(v *string) *SummaryHistoryCreate {
	if v != nil {
		_c.SetGeneratedSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SummaryHistoryCreate) SetErrorMessage(v string) *SummaryHistoryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableErrorMessage(v *string) *SummaryHistoryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_c *SummaryHistoryCreate) SetGenerationTimeMs(v int) *SummaryHistoryCreate {
	_c.mutation.SetGenerationTimeMs(v)
	return _c
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableGenerationTimeMs(v *int) *SummaryHistoryCreate {
	if v != nil {
		_c.SetGenerationTimeMs(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *SummaryHistoryCreate) SetTokensUsed(v int) *SummaryHistoryCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableTokensUsed(v *int) *SummaryHistoryCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *SummaryHistoryCreate) SetCostEstimate(v float64) *SummaryHistoryCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableCostEstimate(v *float64) *SummaryHistoryCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryHistoryCreate) SetCreatedAt(v time.Time) *SummaryHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryHistoryCreate) SetNillableCreatedAt(v *time.Time) *SummaryHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryHistoryCreate) SetID(v string) *SummaryHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SummaryHistoryMutation object of the builder.
func (_c *SummaryHistoryCreate) Mutation() *SummaryHistoryMutation {
	return _c.mutation
}

// Save creates the SummaryHistory in the database.
func (_c *SummaryHistoryCreate) Save(ctx context.Context) (*SummaryHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryHistoryCreate) SaveX(ctx context.Context) *SummaryHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryHistoryCreate) defaults() {
	if _, ok := _c.mutation.GenerationTimeMs(); !ok {
		v := summaryhistory.DefaultGenerationTimeMs
		_c.mutation.SetGenerationTimeMs(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := summaryhistory.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := summaryhistory.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summaryhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryHistoryCreate) check() error {
	if _, ok := _c.mutation.CategoryResultID(); !ok {
		return &ValidationError{Name: "category_result_id", err: errors.New(`ent: missing required field "SummaryHistory.category_result_id"`)}
	}
	if _, ok := _c.mutation.StyleName(); !ok {
		return &ValidationError{Name: "style_name", err: errors.New(`ent: missing required field "SummaryHistory.style_name"`)}
	}
	if _, ok := _c.mutation.GenerationTimeMs(); !ok {
		return &ValidationError{Name: "generation_time_ms", err: errors.New(`ent: missing required field "SummaryHistory.generation_time_ms"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "SummaryHistory.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "SummaryHistory.cost_estimate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SummaryHistory.created_at"`)}
	}
	return nil
}

func (_c *SummaryHistoryCreate) sqlSave(ctx context.Context) (*SummaryHistory, error) {
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
			return nil, fmt.Errorf("unexpected SummaryHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryHistoryCreate) createSpec() (*SummaryHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summaryhistory.Table, sqlgraph.NewFieldSpec(summaryhistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CategoryResultID(); ok {
		_spec.SetField(summaryhistory.FieldCategoryResultID, field.TypeString, value)
		_node.CategoryResultID = value
	}
	if value, ok := _c.mutation.StyleName(); ok {
		_spec.SetField(summaryhistory.FieldStyleName, field.TypeString, value)
		_node.StyleName = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(summaryhistory.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(summaryhistory.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.GeneratedSummary(); ok {
		_spec.SetField(summaryhistory.FieldGeneratedSummary, field.TypeString, value)
		_node.GeneratedSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(summaryhistory.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.GenerationTimeMs(); ok {
		_spec.SetField(summaryhistory.FieldGenerationTimeMs, field.TypeInt, value)
		_node.GenerationTimeMs = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(summaryhistory.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(summaryhistory.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summaryhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SummaryHistoryCreateBulk is the builder for creating many SummaryHistory entities in bulk.
type SummaryHistoryCreateBulk struct {
	config
	err      error
	builders []*SummaryHistoryCreate
}

// Save creates the SummaryHistory entities in the database.
func (_c *SummaryHistoryCreateBulk) Save(ctx context.Context) ([]*SummaryHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummaryHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryHistoryMutation)
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
func (_c *SummaryHistoryCreateBulk) SaveX(ctx context.Context) []*SummaryHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
