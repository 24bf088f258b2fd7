// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/summaryhistory"
)

// SummaryHistoryUpdate is the builder for updating SummaryHistory entities.
type SummaryHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryHistoryMutation
}

// Where appends a list predicates to the SummaryHistoryUpdate builder.
func (_u *SummaryHistoryUpdate) Where(ps ...predicate.SummaryHistory) *SummaryHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStyleName sets the "style_name" field.
func (_u *SummaryHistoryUpdate) SetStyleName(v string) *SummaryHistoryUpdate {
	_u.mutation.SetStyleName(v)
	return _u
}

// SetNillableStyleName sets the "style_name" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableStyleName(v *string) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetStyleName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SummaryHistoryUpdate) SetProvider(v string) *SummaryHistoryUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableProvider(v *string) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *SummaryHistoryUpdate) ClearProvider() *SummaryHistoryUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *SummaryHistoryUpdate) SetModel(v string) *SummaryHistoryUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableModel(v *string) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SummaryHistoryUpdate) ClearModel() *SummaryHistoryUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetGeneratedSummary sets the "generated_summary" field.
func (_u *SummaryHistoryUpdate) SetGeneratedSummary(v string) *SummaryHistoryUpdate {
	_u.mutation.SetGeneratedSummary(v)
	return _u
}

// SetNillableGeneratedSummary sets the "generated_summary" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableGeneratedSummary(v *string) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetGeneratedSummary(*v)
	}
	return _u
}

// ClearGeneratedSummary clears the value of the "generated_summary" field.
func (_u *SummaryHistoryUpdate) ClearGeneratedSummary() *SummaryHistoryUpdate {
	_u.mutation.ClearGeneratedSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SummaryHistoryUpdate) SetErrorMessage(v string) *SummaryHistoryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableErrorMessage(v *string) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SummaryHistoryUpdate) ClearErrorMessage() *SummaryHistoryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *SummaryHistoryUpdate) SetGenerationTimeMs(v int) *SummaryHistoryUpdate {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableGenerationTimeMs(v *int) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *SummaryHistoryUpdate) AddGenerationTimeMs(v int) *SummaryHistoryUpdate {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *SummaryHistoryUpdate) SetTokensUsed(v int) *SummaryHistoryUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableTokensUsed(v *int) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *SummaryHistoryUpdate) AddTokensUsed(v int) *SummaryHistoryUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *SummaryHistoryUpdate) SetCostEstimate(v float64) *SummaryHistoryUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *SummaryHistoryUpdate) SetNillableCostEstimate(v *float64) *SummaryHistoryUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *SummaryHistoryUpdate) AddCostEstimate(v float64) *SummaryHistoryUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// Mutation returns the SummaryHistoryMutation object of the builder.
func (_u *SummaryHistoryUpdate) Mutation() *SummaryHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SummaryHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summaryhistory.Table, summaryhistory.Columns, sqlgraph.NewFieldSpec(summaryhistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StyleName(); ok {
		_spec.SetField(summaryhistory.FieldStyleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(summaryhistory.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(summaryhistory.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(summaryhistory.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(summaryhistory.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedSummary(); ok {
		_spec.SetField(summaryhistory.FieldGeneratedSummary, field.TypeString, value)
	}
	if _u.mutation.GeneratedSummaryCleared() {
		_spec.ClearField(summaryhistory.FieldGeneratedSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(summaryhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(summaryhistory.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(summaryhistory.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(summaryhistory.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(summaryhistory.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(summaryhistory.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(summaryhistory.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(summaryhistory.FieldCostEstimate, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summaryhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryHistoryUpdateOne is the builder for updating a single SummaryHistory entity.
type SummaryHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryHistoryMutation
}

// SetStyleName sets the "style_name" field.
func (_u *SummaryHistoryUpdateOne) SetStyleName(v string) *SummaryHistoryUpdateOne {
	_u.mutation.SetStyleName(v)
	return _u
}

// SetNillableStyleName sets the "style_name" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableStyleName(v *string) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetStyleName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SummaryHistoryUpdateOne) SetProvider(v string) *SummaryHistoryUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableProvider(v *string) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *SummaryHistoryUpdateOne) ClearProvider() *SummaryHistoryUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *SummaryHistoryUpdateOne) SetModel(v string) *SummaryHistoryUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableModel(v *string) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SummaryHistoryUpdateOne) ClearModel() *SummaryHistoryUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetGeneratedSummary sets the "generated_summary" field.
func (_u *SummaryHistoryUpdateOne) SetGeneratedSummary(v string) *SummaryHistoryUpdateOne {
	_u.mutation.SetGeneratedSummary(v)
	return _u
}

// SetNillableGeneratedSummary sets the "generated_summary" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableGeneratedSummary(v *string) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetGeneratedSummary(*v)
	}
	return _u
}

// ClearGeneratedSummary clears the value of the "generated_summary" field.
func (_u *SummaryHistoryUpdateOne) ClearGeneratedSummary() *SummaryHistoryUpdateOne {
	_u.mutation.ClearGeneratedSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SummaryHistoryUpdateOne) SetErrorMessage(v string) *SummaryHistoryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableErrorMessage(v *string) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SummaryHistoryUpdateOne) ClearErrorMessage() *SummaryHistoryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *SummaryHistoryUpdateOne) SetGenerationTimeMs(v int) *SummaryHistoryUpdateOne {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableGenerationTimeMs(v *int) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *SummaryHistoryUpdateOne) AddGenerationTimeMs(v int) *SummaryHistoryUpdateOne {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *SummaryHistoryUpdateOne) SetTokensUsed(v int) *SummaryHistoryUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableTokensUsed(v *int) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *SummaryHistoryUpdateOne) AddTokensUsed(v int) *SummaryHistoryUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *SummaryHistoryUpdateOne) SetCostEstimate(v float64) *SummaryHistoryUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *SummaryHistoryUpdateOne) SetNillableCostEstimate(v *float64) *SummaryHistoryUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *SummaryHistoryUpdateOne) AddCostEstimate(v float64) *SummaryHistoryUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// Mutation returns the SummaryHistoryMutation object of the builder.
func (_u *SummaryHistoryUpdateOne) Mutation() *SummaryHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryHistoryUpdate builder.
func (_u *SummaryHistoryUpdateOne) Where(ps ...predicate.SummaryHistory) *SummaryHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryHistoryUpdateOne) Select(field string, fields ...string) *SummaryHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummaryHistory entity.
func (_u *SummaryHistoryUpdateOne) Save(ctx context.Context) (*SummaryHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryHistoryUpdateOne) SaveX(ctx context.Context) *SummaryHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SummaryHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SummaryHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(summaryhistory.Table, summaryhistory.Columns, sqlgraph.NewFieldSpec(summaryhistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summaryhistory.FieldID)
		for _, f := range fields {
			if !summaryhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summaryhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StyleName(); ok {
		_spec.SetField(summaryhistory.FieldStyleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(summaryhistory.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(summaryhistory.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(summaryhistory.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(summaryhistory.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedSummary(); ok {
		_spec.SetField(summaryhistory.FieldGeneratedSummary, field.TypeString, value)
	}
	if _u.mutation.GeneratedSummaryCleared() {
		_spec.ClearField(summaryhistory.FieldGeneratedSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(summaryhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(summaryhistory.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(summaryhistory.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(summaryhistory.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(summaryhistory.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(summaryhistory.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(summaryhistory.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(summaryhistory.FieldCostEstimate, field.TypeFloat64, value)
	}
	_node = &SummaryHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summaryhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
