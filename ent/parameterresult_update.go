// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ParameterResultUpdate is the builder for updating ParameterResult entities.
type ParameterResultUpdate struct {
	config
	hooks    []Hook
	mutation *ParameterResultMutation
}

// Where appends a list predicates to the ParameterResultUpdate builder.
func (_u *ParameterResultUpdate) Where(ps ...predicate.ParameterResult) *ParameterResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParameter sets the "parameter" field.
func (_u *ParameterResultUpdate) SetParameter(v parameterresult.Parameter) *ParameterResultUpdate {
	_u.mutation.SetParameter(v)
	return _u
}

// SetNillableParameter sets the "parameter" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableParameter(v *parameterresult.Parameter) *ParameterResultUpdate {
	if v != nil {
		_u.SetParameter(*v)
	}
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *ParameterResultUpdate) SetDeliveryMethod(v parameterresult.DeliveryMethod) *ParameterResultUpdate {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableDeliveryMethod(v *parameterresult.DeliveryMethod) *ParameterResultUpdate {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ParameterResultUpdate) SetExtractedValue(v float64) *ParameterResultUpdate {
	_u.mutation.ResetExtractedValue()
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableExtractedValue(v *float64) *ParameterResultUpdate {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// AddExtractedValue adds value to the "extracted_value" field.
func (_u *ParameterResultUpdate) AddExtractedValue(v float64) *ParameterResultUpdate {
	_u.mutation.AddExtractedValue(v)
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ParameterResultUpdate) ClearExtractedValue() *ParameterResultUpdate {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ParameterResultUpdate) SetUnit(v string) *ParameterResultUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableUnit(v *string) *ParameterResultUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *ParameterResultUpdate) ClearUnit() *ParameterResultUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetScore sets the "score" field.
func (_u *ParameterResultUpdate) SetScore(v int) *ParameterResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableScore(v *int) *ParameterResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ParameterResultUpdate) AddScore(v int) *ParameterResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ParameterResultUpdate) ClearScore() *ParameterResultUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetWeightedScore sets the "weighted_score" field.
func (_u *ParameterResultUpdate) SetWeightedScore(v float64) *ParameterResultUpdate {
	_u.mutation.ResetWeightedScore()
	_u.mutation.SetWeightedScore(v)
	return _u
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableWeightedScore(v *float64) *ParameterResultUpdate {
	if v != nil {
		_u.SetWeightedScore(*v)
	}
	return _u
}

// AddWeightedScore adds value to the "weighted_score" field.
func (_u *ParameterResultUpdate) AddWeightedScore(v float64) *ParameterResultUpdate {
	_u.mutation.AddWeightedScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ParameterResultUpdate) SetRationale(v string) *ParameterResultUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableRationale(v *string) *ParameterResultUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ParameterResultUpdate) ClearRationale() *ParameterResultUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetRangeText sets the "range_text" field.
func (_u *ParameterResultUpdate) SetRangeText(v string) *ParameterResultUpdate {
	_u.mutation.SetRangeText(v)
	return _u
}

// SetNillableRangeText sets the "range_text" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableRangeText(v *string) *ParameterResultUpdate {
	if v != nil {
		_u.SetRangeText(*v)
	}
	return _u
}

// ClearRangeText clears the value of the "range_text" field.
func (_u *ParameterResultUpdate) ClearRangeText() *ParameterResultUpdate {
	_u.mutation.ClearRangeText()
	return _u
}

// SetIsExclusion sets the "is_exclusion" field.
func (_u *ParameterResultUpdate) SetIsExclusion(v bool) *ParameterResultUpdate {
	_u.mutation.SetIsExclusion(v)
	return _u
}

// SetNillableIsExclusion sets the "is_exclusion" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableIsExclusion(v *bool) *ParameterResultUpdate {
	if v != nil {
		_u.SetIsExclusion(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ParameterResultUpdate) SetExtractionMethod(v parameterresult.ExtractionMethod) *ParameterResultUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ParameterResultUpdate) SetNillableExtractionMethod(v *parameterresult.ExtractionMethod) *ParameterResultUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// Mutation returns the ParameterResultMutation object of the builder.
func (_u *ParameterResultUpdate) Mutation() *ParameterResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParameterResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParameterResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParameterResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParameterResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParameterResultUpdate) check() error {
	if v, ok := _u.mutation.Parameter(); ok {
		if err := parameterresult.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.parameter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryMethod(); ok {
		if err := parameterresult.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.delivery_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := parameterresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := parameterresult.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParameterResult.request"`)
	}
	return nil
}

func (_u *ParameterResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parameterresult.Table, parameterresult.Columns, sqlgraph.NewFieldSpec(parameterresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Parameter(); ok {
		_spec.SetField(parameterresult.FieldParameter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(parameterresult.FieldDeliveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(parameterresult.FieldExtractedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedValue(); ok {
		_spec.AddField(parameterresult.FieldExtractedValue, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(parameterresult.FieldExtractedValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(parameterresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(parameterresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(parameterresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(parameterresult.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(parameterresult.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.WeightedScore(); ok {
		_spec.SetField(parameterresult.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedScore(); ok {
		_spec.AddField(parameterresult.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(parameterresult.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(parameterresult.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.RangeText(); ok {
		_spec.SetField(parameterresult.FieldRangeText, field.TypeString, value)
	}
	if _u.mutation.RangeTextCleared() {
		_spec.ClearField(parameterresult.FieldRangeText, field.TypeString)
	}
	if value, ok := _u.mutation.IsExclusion(); ok {
		_spec.SetField(parameterresult.FieldIsExclusion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(parameterresult.FieldExtractionMethod, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parameterresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParameterResultUpdateOne is the builder for updating a single ParameterResult entity.
type ParameterResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParameterResultMutation
}

// SetParameter sets the "parameter" field.
func (_u *ParameterResultUpdateOne) SetParameter(v parameterresult.Parameter) *ParameterResultUpdateOne {
	_u.mutation.SetParameter(v)
	return _u
}

// SetNillableParameter sets the "parameter" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableParameter(v *parameterresult.Parameter) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetParameter(*v)
	}
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *ParameterResultUpdateOne) SetDeliveryMethod(v parameterresult.DeliveryMethod) *ParameterResultUpdateOne {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableDeliveryMethod(v *parameterresult.DeliveryMethod) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ParameterResultUpdateOne) SetExtractedValue(v float64) *ParameterResultUpdateOne {
	_u.mutation.ResetExtractedValue()
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableExtractedValue(v *float64) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// AddExtractedValue adds value to the "extracted_value" field.
func (_u *ParameterResultUpdateOne) AddExtractedValue(v float64) *ParameterResultUpdateOne {
	_u.mutation.AddExtractedValue(v)
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ParameterResultUpdateOne) ClearExtractedValue() *ParameterResultUpdateOne {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ParameterResultUpdateOne) SetUnit(v string) *ParameterResultUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableUnit(v *string) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *ParameterResultUpdateOne) ClearUnit() *ParameterResultUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetScore sets the "score" field.
func (_u *ParameterResultUpdateOne) SetScore(v int) *ParameterResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableScore(v *int) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ParameterResultUpdateOne) AddScore(v int) *ParameterResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ParameterResultUpdateOne) ClearScore() *ParameterResultUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetWeightedScore sets the "weighted_score" field.
func (_u *ParameterResultUpdateOne) SetWeightedScore(v float64) *ParameterResultUpdateOne {
	_u.mutation.ResetWeightedScore()
	_u.mutation.SetWeightedScore(v)
	return _u
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableWeightedScore(v *float64) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetWeightedScore(*v)
	}
	return _u
}

// AddWeightedScore adds value to the "weighted_score" field.
func (_u *ParameterResultUpdateOne) AddWeightedScore(v float64) *ParameterResultUpdateOne {
	_u.mutation.AddWeightedScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ParameterResultUpdateOne) SetRationale(v string) *ParameterResultUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableRationale(v *string) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ParameterResultUpdateOne) ClearRationale() *ParameterResultUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetRangeText sets the "range_text" field.
func (_u *ParameterResultUpdateOne) SetRangeText(v string) *ParameterResultUpdateOne {
	_u.mutation.SetRangeText(v)
	return _u
}

// SetNillableRangeText sets the "range_text" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableRangeText(v *string) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetRangeText(*v)
	}
	return _u
}

// ClearRangeText clears the value of the "range_text" field.
func (_u *ParameterResultUpdateOne) ClearRangeText() *ParameterResultUpdateOne {
	_u.mutation.ClearRangeText()
	return _u
}

// SetIsExclusion sets the "is_exclusion" field.
func (_u *ParameterResultUpdateOne) SetIsExclusion(v bool) *ParameterResultUpdateOne {
	_u.mutation.SetIsExclusion(v)
	return _u
}

// SetNillableIsExclusion sets the "is_exclusion" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableIsExclusion(v *bool) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetIsExclusion(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ParameterResultUpdateOne) SetExtractionMethod(v parameterresult.ExtractionMethod) *ParameterResultUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ParameterResultUpdateOne) SetNillableExtractionMethod(v *parameterresult.ExtractionMethod) *ParameterResultUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// Mutation returns the ParameterResultMutation object of the builder.
func (_u *ParameterResultUpdateOne) Mutation() *ParameterResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParameterResultUpdate builder.
func (_u *ParameterResultUpdateOne) Where(ps ...predicate.ParameterResult) *ParameterResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParameterResultUpdateOne) Select(field string, fields ...string) *ParameterResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParameterResult entity.
func (_u *ParameterResultUpdateOne) Save(ctx context.Context) (*ParameterResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParameterResultUpdateOne) SaveX(ctx context.Context) *ParameterResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParameterResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParameterResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParameterResultUpdateOne) check() error {
	if v, ok := _u.mutation.Parameter(); ok {
		if err := parameterresult.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.parameter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryMethod(); ok {
		if err := parameterresult.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.delivery_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := parameterresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := parameterresult.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ParameterResult.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParameterResult.request"`)
	}
	return nil
}

func (_u *ParameterResultUpdateOne) sqlSave(ctx context.Context) (_node *ParameterResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parameterresult.Table, parameterresult.Columns, sqlgraph.NewFieldSpec(parameterresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParameterResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parameterresult.FieldID)
		for _, f := range fields {
			if !parameterresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parameterresult.FieldID {
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
	if value, ok := _u.mutation.Parameter(); ok {
		_spec.SetField(parameterresult.FieldParameter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(parameterresult.FieldDeliveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(parameterresult.FieldExtractedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedValue(); ok {
		_spec.AddField(parameterresult.FieldExtractedValue, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(parameterresult.FieldExtractedValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(parameterresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(parameterresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(parameterresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(parameterresult.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(parameterresult.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.WeightedScore(); ok {
		_spec.SetField(parameterresult.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedScore(); ok {
		_spec.AddField(parameterresult.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(parameterresult.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(parameterresult.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.RangeText(); ok {
		_spec.SetField(parameterresult.FieldRangeText, field.TypeString, value)
	}
	if _u.mutation.RangeTextCleared() {
		_spec.ClearField(parameterresult.FieldRangeText, field.TypeString)
	}
	if value, ok := _u.mutation.IsExclusion(); ok {
		_spec.SetField(parameterresult.FieldIsExclusion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(parameterresult.FieldExtractionMethod, field.TypeEnum, value)
	}
	_node = &ParameterResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parameterresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
