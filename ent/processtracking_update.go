// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
)

// ProcessTrackingUpdate is the builder for updating ProcessTracking entities.
type ProcessTrackingUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessTrackingMutation
}

// Where appends a list predicates to the ProcessTrackingUpdate builder.
func (_u *ProcessTrackingUpdate) Where(ps ...predicate.ProcessTracking) *ProcessTrackingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessTrackingUpdate) SetStatus(v processtracking.Status) *ProcessTrackingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableStatus(v *processtracking.Status) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *ProcessTrackingUpdate) SetProgressPercent(v int) *ProcessTrackingUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableProgressPercent(v *int) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *ProcessTrackingUpdate) AddProgressPercent(v int) *ProcessTrackingUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetCategoriesTotal sets the "categories_total" field.
func (_u *ProcessTrackingUpdate) SetCategoriesTotal(v int) *ProcessTrackingUpdate {
	_u.mutation.ResetCategoriesTotal()
	_u.mutation.SetCategoriesTotal(v)
	return _u
}

// SetNillableCategoriesTotal sets the "categories_total" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableCategoriesTotal(v *int) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetCategoriesTotal(*v)
	}
	return _u
}

// AddCategoriesTotal adds value to the "categories_total" field.
func (_u *ProcessTrackingUpdate) AddCategoriesTotal(v int) *ProcessTrackingUpdate {
	_u.mutation.AddCategoriesTotal(v)
	return _u
}

// SetCategoriesCompleted sets the "categories_completed" field.
func (_u *ProcessTrackingUpdate) SetCategoriesCompleted(v int) *ProcessTrackingUpdate {
	_u.mutation.ResetCategoriesCompleted()
	_u.mutation.SetCategoriesCompleted(v)
	return _u
}

// SetNillableCategoriesCompleted sets the "categories_completed" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableCategoriesCompleted(v *int) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetCategoriesCompleted(*v)
	}
	return _u
}

// AddCategoriesCompleted adds value to the "categories_completed" field.
func (_u *ProcessTrackingUpdate) AddCategoriesCompleted(v int) *ProcessTrackingUpdate {
	_u.mutation.AddCategoriesCompleted(v)
	return _u
}

// SetEstimatedCompletionAt sets the "estimated_completion_at" field.
func (_u *ProcessTrackingUpdate) SetEstimatedCompletionAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetEstimatedCompletionAt(v)
	return _u
}

// SetNillableEstimatedCompletionAt sets the "estimated_completion_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableEstimatedCompletionAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetEstimatedCompletionAt(*v)
	}
	return _u
}

// ClearEstimatedCompletionAt clears the value of the "estimated_completion_at" field.
func (_u *ProcessTrackingUpdate) ClearEstimatedCompletionAt() *ProcessTrackingUpdate {
	_u.mutation.ClearEstimatedCompletionAt()
	return _u
}

// SetCollectingStartedAt sets the "collecting_started_at" field.
func (_u *ProcessTrackingUpdate) SetCollectingStartedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetCollectingStartedAt(v)
	return _u
}

// SetNillableCollectingStartedAt sets the "collecting_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableCollectingStartedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetCollectingStartedAt(*v)
	}
	return _u
}

// ClearCollectingStartedAt clears the value of the "collecting_started_at" field.
func (_u *ProcessTrackingUpdate) ClearCollectingStartedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearCollectingStartedAt()
	return _u
}

// SetCollectingCompletedAt sets the "collecting_completed_at" field.
func (_u *ProcessTrackingUpdate) SetCollectingCompletedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetCollectingCompletedAt(v)
	return _u
}

// SetNillableCollectingCompletedAt sets the "collecting_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableCollectingCompletedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetCollectingCompletedAt(*v)
	}
	return _u
}

// ClearCollectingCompletedAt clears the value of the "collecting_completed_at" field.
func (_u *ProcessTrackingUpdate) ClearCollectingCompletedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearCollectingCompletedAt()
	return _u
}

// SetVerifyingStartedAt sets the "verifying_started_at" field.
func (_u *ProcessTrackingUpdate) SetVerifyingStartedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetVerifyingStartedAt(v)
	return _u
}

// SetNillableVerifyingStartedAt sets the "verifying_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableVerifyingStartedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetVerifyingStartedAt(*v)
	}
	return _u
}

// ClearVerifyingStartedAt clears the value of the "verifying_started_at" field.
func (_u *ProcessTrackingUpdate) ClearVerifyingStartedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearVerifyingStartedAt()
	return _u
}

// SetVerifyingCompletedAt sets the "verifying_completed_at" field.
func (_u *ProcessTrackingUpdate) SetVerifyingCompletedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetVerifyingCompletedAt(v)
	return _u
}

// SetNillableVerifyingCompletedAt sets the "verifying_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableVerifyingCompletedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetVerifyingCompletedAt(*v)
	}
	return _u
}

// ClearVerifyingCompletedAt clears the value of the "verifying_completed_at" field.
func (_u *ProcessTrackingUpdate) ClearVerifyingCompletedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearVerifyingCompletedAt()
	return _u
}

// SetMergingStartedAt sets the "merging_started_at" field.
func (_u *ProcessTrackingUpdate) SetMergingStartedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetMergingStartedAt(v)
	return _u
}

// SetNillableMergingStartedAt sets the "merging_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableMergingStartedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetMergingStartedAt(*v)
	}
	return _u
}

// ClearMergingStartedAt clears the value of the "merging_started_at" field.
func (_u *ProcessTrackingUpdate) ClearMergingStartedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearMergingStartedAt()
	return _u
}

// SetMergingCompletedAt sets the "merging_completed_at" field.
func (_u *ProcessTrackingUpdate) SetMergingCompletedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetMergingCompletedAt(v)
	return _u
}

// SetNillableMergingCompletedAt sets the "merging_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableMergingCompletedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetMergingCompletedAt(*v)
	}
	return _u
}

// ClearMergingCompletedAt clears the value of the "merging_completed_at" field.
func (_u *ProcessTrackingUpdate) ClearMergingCompletedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearMergingCompletedAt()
	return _u
}

// SetSummarizingStartedAt sets the "summarizing_started_at" field.
func (_u *ProcessTrackingUpdate) SetSummarizingStartedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetSummarizingStartedAt(v)
	return _u
}

// SetNillableSummarizingStartedAt sets the "summarizing_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableSummarizingStartedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetSummarizingStartedAt(*v)
	}
	return _u
}

// ClearSummarizingStartedAt clears the value of the "summarizing_started_at" field.
func (_u *ProcessTrackingUpdate) ClearSummarizingStartedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearSummarizingStartedAt()
	return _u
}

// SetSummarizingCompletedAt sets the "summarizing_completed_at" field.
func (_u *ProcessTrackingUpdate) SetSummarizingCompletedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetSummarizingCompletedAt(v)
	return _u
}

// SetNillableSummarizingCompletedAt sets the "summarizing_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableSummarizingCompletedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetSummarizingCompletedAt(*v)
	}
	return _u
}

// ClearSummarizingCompletedAt clears the value of the "summarizing_completed_at" field.
func (_u *ProcessTrackingUpdate) ClearSummarizingCompletedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearSummarizingCompletedAt()
	return _u
}

// SetErrorDetails sets the "error_details" field.
func (_u *ProcessTrackingUpdate) SetErrorDetails(v string) *ProcessTrackingUpdate {
	_u.mutation.SetErrorDetails(v)
	return _u
}

// SetNillableErrorDetails sets the "error_details" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableErrorDetails(v *string) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetErrorDetails(*v)
	}
	return _u
}

// ClearErrorDetails clears the value of the "error_details" field.
func (_u *ProcessTrackingUpdate) ClearErrorDetails() *ProcessTrackingUpdate {
	_u.mutation.ClearErrorDetails()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProcessTrackingUpdate) SetDeletedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdate) SetNillableDeletedAt(v *time.Time) *ProcessTrackingUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProcessTrackingUpdate) ClearDeletedAt() *ProcessTrackingUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessTrackingUpdate) SetUpdatedAt(v time.Time) *ProcessTrackingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProcessTrackingMutation object of the builder.
func (_u *ProcessTrackingUpdate) Mutation() *ProcessTrackingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessTrackingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessTrackingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessTrackingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessTrackingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessTrackingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processtracking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessTrackingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processtracking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessTracking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercent(); ok {
		if err := processtracking.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "ProcessTracking.progress_percent": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessTracking.request"`)
	}
	return nil
}

func (_u *ProcessTrackingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processtracking.Table, processtracking.Columns, sqlgraph.NewFieldSpec(processtracking.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processtracking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(processtracking.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(processtracking.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoriesTotal(); ok {
		_spec.SetField(processtracking.FieldCategoriesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCategoriesTotal(); ok {
		_spec.AddField(processtracking.FieldCategoriesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoriesCompleted(); ok {
		_spec.SetField(processtracking.FieldCategoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCategoriesCompleted(); ok {
		_spec.AddField(processtracking.FieldCategoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCompletionAt(); ok {
		_spec.SetField(processtracking.FieldEstimatedCompletionAt, field.TypeTime, value)
	}
	if _u.mutation.EstimatedCompletionAtCleared() {
		_spec.ClearField(processtracking.FieldEstimatedCompletionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectingStartedAt(); ok {
		_spec.SetField(processtracking.FieldCollectingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.CollectingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldCollectingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldCollectingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CollectingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldCollectingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifyingStartedAt(); ok {
		_spec.SetField(processtracking.FieldVerifyingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifyingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldVerifyingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifyingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldVerifyingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifyingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldVerifyingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MergingStartedAt(); ok {
		_spec.SetField(processtracking.FieldMergingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.MergingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldMergingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MergingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldMergingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.MergingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldMergingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SummarizingStartedAt(); ok {
		_spec.SetField(processtracking.FieldSummarizingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldSummarizingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SummarizingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldSummarizingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldSummarizingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorDetails(); ok {
		_spec.SetField(processtracking.FieldErrorDetails, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailsCleared() {
		_spec.ClearField(processtracking.FieldErrorDetails, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(processtracking.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(processtracking.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processtracking.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processtracking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessTrackingUpdateOne is the builder for updating a single ProcessTracking entity.
type ProcessTrackingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessTrackingMutation
}

// SetStatus sets the "status" field.
func (_u *ProcessTrackingUpdateOne) SetStatus(v processtracking.Status) *ProcessTrackingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableStatus(v *processtracking.Status) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *ProcessTrackingUpdateOne) SetProgressPercent(v int) *ProcessTrackingUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableProgressPercent(v *int) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *ProcessTrackingUpdateOne) AddProgressPercent(v int) *ProcessTrackingUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetCategoriesTotal sets the "categories_total" field.
func (_u *ProcessTrackingUpdateOne) SetCategoriesTotal(v int) *ProcessTrackingUpdateOne {
	_u.mutation.ResetCategoriesTotal()
	_u.mutation.SetCategoriesTotal(v)
	return _u
}

// SetNillableCategoriesTotal sets the "categories_total" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableCategoriesTotal(v *int) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetCategoriesTotal(*v)
	}
	return _u
}

// AddCategoriesTotal adds value to the "categories_total" field.
func (_u *ProcessTrackingUpdateOne) AddCategoriesTotal(v int) *ProcessTrackingUpdateOne {
	_u.mutation.AddCategoriesTotal(v)
	return _u
}

// SetCategoriesCompleted sets the "categories_completed" field.
func (_u *ProcessTrackingUpdateOne) SetCategoriesCompleted(v int) *ProcessTrackingUpdateOne {
	_u.mutation.ResetCategoriesCompleted()
	_u.mutation.SetCategoriesCompleted(v)
	return _u
}

// SetNillableCategoriesCompleted sets the "categories_completed" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableCategoriesCompleted(v *int) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetCategoriesCompleted(*v)
	}
	return _u
}

// AddCategoriesCompleted adds value to the "categories_completed" field.
func (_u *ProcessTrackingUpdateOne) AddCategoriesCompleted(v int) *ProcessTrackingUpdateOne {
	_u.mutation.AddCategoriesCompleted(v)
	return _u
}

// SetEstimatedCompletionAt sets the "estimated_completion_at" field.
func (_u *ProcessTrackingUpdateOne) SetEstimatedCompletionAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetEstimatedCompletionAt(v)
	return _u
}

// SetNillableEstimatedCompletionAt sets the "estimated_completion_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableEstimatedCompletionAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetEstimatedCompletionAt(*v)
	}
	return _u
}

// ClearEstimatedCompletionAt clears the value of the "estimated_completion_at" field.
func (_u *ProcessTrackingUpdateOne) ClearEstimatedCompletionAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearEstimatedCompletionAt()
	return _u
}

// SetCollectingStartedAt sets the "collecting_started_at" field.
func (_u *ProcessTrackingUpdateOne) SetCollectingStartedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetCollectingStartedAt(v)
	return _u
}

// SetNillableCollectingStartedAt sets the "collecting_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableCollectingStartedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetCollectingStartedAt(*v)
	}
	return _u
}

// ClearCollectingStartedAt clears the value of the "collecting_started_at" field.
func (_u *ProcessTrackingUpdateOne) ClearCollectingStartedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearCollectingStartedAt()
	return _u
}

// SetCollectingCompletedAt sets the "collecting_completed_at" field.
func (_u *ProcessTrackingUpdateOne) SetCollectingCompletedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetCollectingCompletedAt(v)
	return _u
}

// SetNillableCollectingCompletedAt sets the "collecting_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableCollectingCompletedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetCollectingCompletedAt(*v)
	}
	return _u
}

// ClearCollectingCompletedAt clears the value of the "collecting_completed_at" field.
func (_u *ProcessTrackingUpdateOne) ClearCollectingCompletedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearCollectingCompletedAt()
	return _u
}

// SetVerifyingStartedAt sets the "verifying_started_at" field.
func (_u *ProcessTrackingUpdateOne) SetVerifyingStartedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetVerifyingStartedAt(v)
	return _u
}

// SetNillableVerifyingStartedAt sets the "verifying_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableVerifyingStartedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetVerifyingStartedAt(*v)
	}
	return _u
}

// ClearVerifyingStartedAt clears the value of the "verifying_started_at" field.
func (_u *ProcessTrackingUpdateOne) ClearVerifyingStartedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearVerifyingStartedAt()
	return _u
}

// SetVerifyingCompletedAt sets the "verifying_completed_at" field.
func (_u *ProcessTrackingUpdateOne) SetVerifyingCompletedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetVerifyingCompletedAt(v)
	return _u
}

// SetNillableVerifyingCompletedAt sets the "verifying_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableVerifyingCompletedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetVerifyingCompletedAt(*v)
	}
	return _u
}

// ClearVerifyingCompletedAt clears the value of the "verifying_completed_at" field.
func (_u *ProcessTrackingUpdateOne) ClearVerifyingCompletedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearVerifyingCompletedAt()
	return _u
}

// SetMergingStartedAt sets the "merging_started_at" field.
func (_u *ProcessTrackingUpdateOne) SetMergingStartedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetMergingStartedAt(v)
	return _u
}

// SetNillableMergingStartedAt sets the "merging_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableMergingStartedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetMergingStartedAt(*v)
	}
	return _u
}

// ClearMergingStartedAt clears the value of the "merging_started_at" field.
func (_u *ProcessTrackingUpdateOne) ClearMergingStartedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearMergingStartedAt()
	return _u
}

// SetMergingCompletedAt sets the "merging_completed_at" field.
func (_u *ProcessTrackingUpdateOne) SetMergingCompletedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetMergingCompletedAt(v)
	return _u
}

// SetNillableMergingCompletedAt sets the "merging_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableMergingCompletedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetMergingCompletedAt(*v)
	}
	return _u
}

// ClearMergingCompletedAt clears the value of the "merging_completed_at" field.
func (_u *ProcessTrackingUpdateOne) ClearMergingCompletedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearMergingCompletedAt()
	return _u
}

// SetSummarizingStartedAt sets the "summarizing_started_at" field.
func (_u *ProcessTrackingUpdateOne) SetSummarizingStartedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetSummarizingStartedAt(v)
	return _u
}

// SetNillableSummarizingStartedAt sets the "summarizing_started_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableSummarizingStartedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetSummarizingStartedAt(*v)
	}
	return _u
}

// ClearSummarizingStartedAt clears the value of the "summarizing_started_at" field.
func (_u *ProcessTrackingUpdateOne) ClearSummarizingStartedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearSummarizingStartedAt()
	return _u
}

// SetSummarizingCompletedAt sets the "summarizing_completed_at" field.
func (_u *ProcessTrackingUpdateOne) SetSummarizingCompletedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetSummarizingCompletedAt(v)
	return _u
}

// SetNillableSummarizingCompletedAt sets the "summarizing_completed_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableSummarizingCompletedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetSummarizingCompletedAt(*v)
	}
	return _u
}

// ClearSummarizingCompletedAt clears the value of the "summarizing_completed_at" field.
func (_u *ProcessTrackingUpdateOne) ClearSummarizingCompletedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearSummarizingCompletedAt()
	return _u
}

// SetErrorDetails sets the "error_details" field.
func (_u *ProcessTrackingUpdateOne) SetErrorDetails(v string) *ProcessTrackingUpdateOne {
	_u.mutation.SetErrorDetails(v)
	return _u
}

// SetNillableErrorDetails sets the "error_details" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableErrorDetails(v *string) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetErrorDetails(*v)
	}
	return _u
}

// ClearErrorDetails clears the value of the "error_details" field.
func (_u *ProcessTrackingUpdateOne) ClearErrorDetails() *ProcessTrackingUpdateOne {
	_u.mutation.ClearErrorDetails()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProcessTrackingUpdateOne) SetDeletedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProcessTrackingUpdateOne) SetNillableDeletedAt(v *time.Time) *ProcessTrackingUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProcessTrackingUpdateOne) ClearDeletedAt() *ProcessTrackingUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessTrackingUpdateOne) SetUpdatedAt(v time.Time) *ProcessTrackingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProcessTrackingMutation object of the builder.
func (_u *ProcessTrackingUpdateOne) Mutation() *ProcessTrackingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessTrackingUpdate builder.
func (_u *ProcessTrackingUpdateOne) Where(ps ...predicate.ProcessTracking) *ProcessTrackingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessTrackingUpdateOne) Select(field string, fields ...string) *ProcessTrackingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessTracking entity.
func (_u *ProcessTrackingUpdateOne) Save(ctx context.Context) (*ProcessTracking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessTrackingUpdateOne) SaveX(ctx context.Context) *ProcessTracking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessTrackingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessTrackingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessTrackingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processtracking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessTrackingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processtracking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessTracking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressPercent(); ok {
		if err := processtracking.ProgressPercentValidator(v); err != nil {
			return &ValidationError{Name: "progress_percent", err: fmt.Errorf(`ent: validator failed for field "ProcessTracking.progress_percent": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessTracking.request"`)
	}
	return nil
}

func (_u *ProcessTrackingUpdateOne) sqlSave(ctx context.Context) (_node *ProcessTracking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processtracking.Table, processtracking.Columns, sqlgraph.NewFieldSpec(processtracking.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessTracking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processtracking.FieldID)
		for _, f := range fields {
			if !processtracking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processtracking.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processtracking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(processtracking.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(processtracking.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoriesTotal(); ok {
		_spec.SetField(processtracking.FieldCategoriesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCategoriesTotal(); ok {
		_spec.AddField(processtracking.FieldCategoriesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoriesCompleted(); ok {
		_spec.SetField(processtracking.FieldCategoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCategoriesCompleted(); ok {
		_spec.AddField(processtracking.FieldCategoriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCompletionAt(); ok {
		_spec.SetField(processtracking.FieldEstimatedCompletionAt, field.TypeTime, value)
	}
	if _u.mutation.EstimatedCompletionAtCleared() {
		_spec.ClearField(processtracking.FieldEstimatedCompletionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectingStartedAt(); ok {
		_spec.SetField(processtracking.FieldCollectingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.CollectingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldCollectingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldCollectingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CollectingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldCollectingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifyingStartedAt(); ok {
		_spec.SetField(processtracking.FieldVerifyingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifyingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldVerifyingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifyingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldVerifyingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifyingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldVerifyingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MergingStartedAt(); ok {
		_spec.SetField(processtracking.FieldMergingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.MergingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldMergingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MergingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldMergingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.MergingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldMergingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SummarizingStartedAt(); ok {
		_spec.SetField(processtracking.FieldSummarizingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizingStartedAtCleared() {
		_spec.ClearField(processtracking.FieldSummarizingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SummarizingCompletedAt(); ok {
		_spec.SetField(processtracking.FieldSummarizingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizingCompletedAtCleared() {
		_spec.ClearField(processtracking.FieldSummarizingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorDetails(); ok {
		_spec.SetField(processtracking.FieldErrorDetails, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailsCleared() {
		_spec.ClearField(processtracking.FieldErrorDetails, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(processtracking.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(processtracking.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processtracking.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProcessTracking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processtracking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
