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
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
)

// CategoryResultUpdate is the builder for updating CategoryResult entities.
type CategoryResultUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryResultMutation
}

// Where appends a list predicates to the CategoryResultUpdate builder.
func (_u *CategoryResultUpdate) Where(ps ...predicate.CategoryResult) *CategoryResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *CategoryResultUpdate) SetCategoryName(v string) *CategoryResultUpdate {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableCategoryName(v *string) *CategoryResultUpdate {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CategoryResultUpdate) SetSummary(v string) *CategoryResultUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableSummary(v *string) *CategoryResultUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CategoryResultUpdate) ClearSummary() *CategoryResultUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *CategoryResultUpdate) SetConfidenceScore(v float64) *CategoryResultUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableConfidenceScore(v *float64) *CategoryResultUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *CategoryResultUpdate) AddConfidenceScore(v float64) *CategoryResultUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetDataQualityScore sets the "data_quality_score" field.
func (_u *CategoryResultUpdate) SetDataQualityScore(v float64) *CategoryResultUpdate {
	_u.mutation.ResetDataQualityScore()
	_u.mutation.SetDataQualityScore(v)
	return _u
}

// SetNillableDataQualityScore sets the "data_quality_score" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableDataQualityScore(v *float64) *CategoryResultUpdate {
	if v != nil {
		_u.SetDataQualityScore(*v)
	}
	return _u
}

// AddDataQualityScore adds value to the "data_quality_score" field.
func (_u *CategoryResultUpdate) AddDataQualityScore(v float64) *CategoryResultUpdate {
	_u.mutation.AddDataQualityScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CategoryResultUpdate) SetStatus(v categoryresult.Status) *CategoryResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableStatus(v *categoryresult.Status) *CategoryResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *CategoryResultUpdate) SetSkipReason(v string) *CategoryResultUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableSkipReason(v *string) *CategoryResultUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *CategoryResultUpdate) ClearSkipReason() *CategoryResultUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *CategoryResultUpdate) SetProcessingTimeMs(v int) *CategoryResultUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableProcessingTimeMs(v *int) *CategoryResultUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *CategoryResultUpdate) AddProcessingTimeMs(v int) *CategoryResultUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *CategoryResultUpdate) ClearProcessingTimeMs() *CategoryResultUpdate {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *CategoryResultUpdate) SetRetryCount(v int) *CategoryResultUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableRetryCount(v *int) *CategoryResultUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *CategoryResultUpdate) AddRetryCount(v int) *CategoryResultUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CategoryResultUpdate) SetErrorMessage(v string) *CategoryResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableErrorMessage(v *string) *CategoryResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CategoryResultUpdate) ClearErrorMessage() *CategoryResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CategoryResultUpdate) SetStartedAt(v time.Time) *CategoryResultUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableStartedAt(v *time.Time) *CategoryResultUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CategoryResultUpdate) ClearStartedAt() *CategoryResultUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CategoryResultUpdate) SetCompletedAt(v time.Time) *CategoryResultUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableCompletedAt(v *time.Time) *CategoryResultUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CategoryResultUpdate) ClearCompletedAt() *CategoryResultUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAPICallsMade sets the "api_calls_made" field.
func (_u *CategoryResultUpdate) SetAPICallsMade(v int) *CategoryResultUpdate {
	_u.mutation.ResetAPICallsMade()
	_u.mutation.SetAPICallsMade(v)
	return _u
}

// SetNillableAPICallsMade sets the "api_calls_made" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableAPICallsMade(v *int) *CategoryResultUpdate {
	if v != nil {
		_u.SetAPICallsMade(*v)
	}
	return _u
}

// AddAPICallsMade adds value to the "api_calls_made" field.
func (_u *CategoryResultUpdate) AddAPICallsMade(v int) *CategoryResultUpdate {
	_u.mutation.AddAPICallsMade(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *CategoryResultUpdate) SetTokenCount(v int) *CategoryResultUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableTokenCount(v *int) *CategoryResultUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *CategoryResultUpdate) AddTokenCount(v int) *CategoryResultUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *CategoryResultUpdate) SetCostEstimate(v float64) *CategoryResultUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableCostEstimate(v *float64) *CategoryResultUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *CategoryResultUpdate) AddCostEstimate(v float64) *CategoryResultUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CategoryResultUpdate) SetDeletedAt(v time.Time) *CategoryResultUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableDeletedAt(v *time.Time) *CategoryResultUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CategoryResultUpdate) ClearDeletedAt() *CategoryResultUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddProviderResponseIDs adds the "provider_responses" edge to the ProviderResponse entity by IDs.
func (_u *CategoryResultUpdate) AddProviderResponseIDs(ids ...string) *CategoryResultUpdate {
	_u.mutation.AddProviderResponseIDs(ids...)
	return _u
}

// AddProviderResponses adds the "provider_responses" edges to the ProviderResponse entity.
func (_u *CategoryResultUpdate) AddProviderResponses(v ...*ProviderResponse) *CategoryResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProviderResponseIDs(ids...)
}

// SetMergedDataID sets the "merged_data" edge to the MergedData entity by ID.
func (_u *CategoryResultUpdate) SetMergedDataID(id string) *CategoryResultUpdate {
	_u.mutation.SetMergedDataID(id)
	return _u
}

// SetNillableMergedDataID sets the "merged_data" edge to the MergedData entity by ID if the given value is not nil.
func (_u *CategoryResultUpdate) SetNillableMergedDataID(id *string) *CategoryResultUpdate {
	if id != nil {
		_u = _u.SetMergedDataID(*id)
	}
	return _u
}

// SetMergedData sets the "merged_data" edge to the MergedData entity.
func (_u *CategoryResultUpdate) SetMergedData(v *MergedData) *CategoryResultUpdate {
	return _u.SetMergedDataID(v.ID)
}

// AddConflictIDs adds the "conflicts" edge to the SourceConflict entity by IDs.
func (_u *CategoryResultUpdate) AddConflictIDs(ids ...string) *CategoryResultUpdate {
	_u.mutation.AddConflictIDs(ids...)
	return _u
}

// AddConflicts adds the "conflicts" edges to the SourceConflict entity.
func (_u *CategoryResultUpdate) AddConflicts(v ...*SourceConflict) *CategoryResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConflictIDs(ids...)
}

// Mutation returns the CategoryResultMutation object of the builder.
func (_u *CategoryResultUpdate) Mutation() *CategoryResultMutation {
	return _u.mutation
}

// ClearProviderResponses clears all "provider_responses" edges to the ProviderResponse entity.
func (_u *CategoryResultUpdate) ClearProviderResponses() *CategoryResultUpdate {
	_u.mutation.ClearProviderResponses()
	return _u
}

// RemoveProviderResponseIDs removes the "provider_responses" edge to ProviderResponse entities by IDs.
func (_u *CategoryResultUpdate) RemoveProviderResponseIDs(ids ...string) *CategoryResultUpdate {
	_u.mutation.RemoveProviderResponseIDs(ids...)
	return _u
}

// RemoveProviderResponses removes "provider_responses" edges to ProviderResponse entities.
func (_u *CategoryResultUpdate) RemoveProviderResponses(v ...*ProviderResponse) *CategoryResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProviderResponseIDs(ids...)
}

// ClearMergedData clears the "merged_data" edge to the MergedData entity.
func (_u *CategoryResultUpdate) ClearMergedData() *CategoryResultUpdate {
	_u.mutation.ClearMergedData()
	return _u
}

// ClearConflicts clears all "conflicts" edges to the SourceConflict entity.
func (_u *CategoryResultUpdate) ClearConflicts() *CategoryResultUpdate {
	_u.mutation.ClearConflicts()
	return _u
}

// RemoveConflictIDs removes the "conflicts" edge to SourceConflict entities by IDs.
func (_u *CategoryResultUpdate) RemoveConflictIDs(ids ...string) *CategoryResultUpdate {
	_u.mutation.RemoveConflictIDs(ids...)
	return _u
}

// RemoveConflicts removes "conflicts" edges to SourceConflict entities.
func (_u *CategoryResultUpdate) RemoveConflicts(v ...*SourceConflict) *CategoryResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConflictIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryResultUpdate) check() error {
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := categoryresult.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataQualityScore(); ok {
		if err := categoryresult.DataQualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "data_quality_score", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.data_quality_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := categoryresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryResult.request"`)
	}
	return nil
}

func (_u *CategoryResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryresult.Table, categoryresult.Columns, sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(categoryresult.FieldCategoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(categoryresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(categoryresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(categoryresult.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(categoryresult.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DataQualityScore(); ok {
		_spec.SetField(categoryresult.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDataQualityScore(); ok {
		_spec.AddField(categoryresult.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(categoryresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(categoryresult.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(categoryresult.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(categoryresult.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(categoryresult.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(categoryresult.FieldProcessingTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(categoryresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(categoryresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(categoryresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(categoryresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(categoryresult.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(categoryresult.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(categoryresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(categoryresult.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.APICallsMade(); ok {
		_spec.SetField(categoryresult.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICallsMade(); ok {
		_spec.AddField(categoryresult.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(categoryresult.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(categoryresult.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(categoryresult.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(categoryresult.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(categoryresult.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(categoryresult.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ProviderResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProviderResponsesIDs(); len(nodes) > 0 && !_u.mutation.ProviderResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MergedDataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergedDataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConflictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConflictsIDs(); len(nodes) > 0 && !_u.mutation.ConflictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConflictsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryResultUpdateOne is the builder for updating a single CategoryResult entity.
type CategoryResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryResultMutation
}

// SetCategoryName sets the "category_name" field.
func (_u *CategoryResultUpdateOne) SetCategoryName(v string) *CategoryResultUpdateOne {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableCategoryName(v *string) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CategoryResultUpdateOne) SetSummary(v string) *CategoryResultUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableSummary(v *string) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CategoryResultUpdateOne) ClearSummary() *CategoryResultUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *CategoryResultUpdateOne) SetConfidenceScore(v float64) *CategoryResultUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableConfidenceScore(v *float64) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *CategoryResultUpdateOne) AddConfidenceScore(v float64) *CategoryResultUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetDataQualityScore sets the "data_quality_score" field.
func (_u *CategoryResultUpdateOne) SetDataQualityScore(v float64) *CategoryResultUpdateOne {
	_u.mutation.ResetDataQualityScore()
	_u.mutation.SetDataQualityScore(v)
	return _u
}

// SetNillableDataQualityScore sets the "data_quality_score" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableDataQualityScore(v *float64) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetDataQualityScore(*v)
	}
	return _u
}

// AddDataQualityScore adds value to the "data_quality_score" field.
func (_u *CategoryResultUpdateOne) AddDataQualityScore(v float64) *CategoryResultUpdateOne {
	_u.mutation.AddDataQualityScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CategoryResultUpdateOne) SetStatus(v categoryresult.Status) *CategoryResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableStatus(v *categoryresult.Status) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *CategoryResultUpdateOne) SetSkipReason(v string) *CategoryResultUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableSkipReason(v *string) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *CategoryResultUpdateOne) ClearSkipReason() *CategoryResultUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *CategoryResultUpdateOne) SetProcessingTimeMs(v int) *CategoryResultUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableProcessingTimeMs(v *int) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *CategoryResultUpdateOne) AddProcessingTimeMs(v int) *CategoryResultUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *CategoryResultUpdateOne) ClearProcessingTimeMs() *CategoryResultUpdateOne {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *CategoryResultUpdateOne) SetRetryCount(v int) *CategoryResultUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableRetryCount(v *int) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *CategoryResultUpdateOne) AddRetryCount(v int) *CategoryResultUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CategoryResultUpdateOne) SetErrorMessage(v string) *CategoryResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableErrorMessage(v *string) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CategoryResultUpdateOne) ClearErrorMessage() *CategoryResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CategoryResultUpdateOne) SetStartedAt(v time.Time) *CategoryResultUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableStartedAt(v *time.Time) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CategoryResultUpdateOne) ClearStartedAt() *CategoryResultUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CategoryResultUpdateOne) SetCompletedAt(v time.Time) *CategoryResultUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableCompletedAt(v *time.Time) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CategoryResultUpdateOne) ClearCompletedAt() *CategoryResultUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAPICallsMade sets the "api_calls_made" field.
func (_u *CategoryResultUpdateOne) SetAPICallsMade(v int) *CategoryResultUpdateOne {
	_u.mutation.ResetAPICallsMade()
	_u.mutation.SetAPICallsMade(v)
	return _u
}

// SetNillableAPICallsMade sets the "api_calls_made" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableAPICallsMade(v *int) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetAPICallsMade(*v)
	}
	return _u
}

// AddAPICallsMade adds value to the "api_calls_made" field.
func (_u *CategoryResultUpdateOne) AddAPICallsMade(v int) *CategoryResultUpdateOne {
	_u.mutation.AddAPICallsMade(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *CategoryResultUpdateOne) SetTokenCount(v int) *CategoryResultUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableTokenCount(v *int) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *CategoryResultUpdateOne) AddTokenCount(v int) *CategoryResultUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *CategoryResultUpdateOne) SetCostEstimate(v float64) *CategoryResultUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableCostEstimate(v *float64) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *CategoryResultUpdateOne) AddCostEstimate(v float64) *CategoryResultUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CategoryResultUpdateOne) SetDeletedAt(v time.Time) *CategoryResultUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableDeletedAt(v *time.Time) *CategoryResultUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CategoryResultUpdateOne) ClearDeletedAt() *CategoryResultUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddProviderResponseIDs adds the "provider_responses" edge to the ProviderResponse entity by IDs.
func (_u *CategoryResultUpdateOne) AddProviderResponseIDs(ids ...string) *CategoryResultUpdateOne {
	_u.mutation.AddProviderResponseIDs(ids...)
	return _u
}

// AddProviderResponses adds the "provider_responses" edges to the ProviderResponse entity.
func (_u *CategoryResultUpdateOne) AddProviderResponses(v ...*ProviderResponse) *CategoryResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProviderResponseIDs(ids...)
}

// SetMergedDataID sets the "merged_data" edge to the MergedData entity by ID.
func (_u *CategoryResultUpdateOne) SetMergedDataID(id string) *CategoryResultUpdateOne {
	_u.mutation.SetMergedDataID(id)
	return _u
}

// SetNillableMergedDataID sets the "merged_data" edge to the MergedData entity by ID if the given value is not nil.
func (_u *CategoryResultUpdateOne) SetNillableMergedDataID(id *string) *CategoryResultUpdateOne {
	if id != nil {
		_u = _u.SetMergedDataID(*id)
	}
	return _u
}

// SetMergedData sets the "merged_data" edge to the MergedData entity.
func (_u *CategoryResultUpdateOne) SetMergedData(v *MergedData) *CategoryResultUpdateOne {
	return _u.SetMergedDataID(v.ID)
}

// AddConflictIDs adds the "conflicts" edge to the SourceConflict entity by IDs.
func (_u *CategoryResultUpdateOne) AddConflictIDs(ids ...string) *CategoryResultUpdateOne {
	_u.mutation.AddConflictIDs(ids...)
	return _u
}

// AddConflicts adds the "conflicts" edges to the SourceConflict entity.
func (_u *CategoryResultUpdateOne) AddConflicts(v ...*SourceConflict) *CategoryResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConflictIDs(ids...)
}

// Mutation returns the CategoryResultMutation object of the builder.
func (_u *CategoryResultUpdateOne) Mutation() *CategoryResultMutation {
	return _u.mutation
}

// ClearProviderResponses clears all "provider_responses" edges to the ProviderResponse entity.
func (_u *CategoryResultUpdateOne) ClearProviderResponses() *CategoryResultUpdateOne {
	_u.mutation.ClearProviderResponses()
	return _u
}

// RemoveProviderResponseIDs removes the "provider_responses" edge to ProviderResponse entities by IDs.
func (_u *CategoryResultUpdateOne) RemoveProviderResponseIDs(ids ...string) *CategoryResultUpdateOne {
	_u.mutation.RemoveProviderResponseIDs(ids...)
	return _u
}

// RemoveProviderResponses removes "provider_responses" edges to ProviderResponse entities.
func (_u *CategoryResultUpdateOne) RemoveProviderResponses(v ...*ProviderResponse) *CategoryResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProviderResponseIDs(ids...)
}

// ClearMergedData clears the "merged_data" edge to the MergedData entity.
func (_u *CategoryResultUpdateOne) ClearMergedData() *CategoryResultUpdateOne {
	_u.mutation.ClearMergedData()
	return _u
}

// ClearConflicts clears all "conflicts" edges to the SourceConflict entity.
func (_u *CategoryResultUpdateOne) ClearConflicts() *CategoryResultUpdateOne {
	_u.mutation.ClearConflicts()
	return _u
}

// RemoveConflictIDs removes the "conflicts" edge to SourceConflict entities by IDs.
func (_u *CategoryResultUpdateOne) RemoveConflictIDs(ids ...string) *CategoryResultUpdateOne {
	_u.mutation.RemoveConflictIDs(ids...)
	return _u
}

// RemoveConflicts removes "conflicts" edges to SourceConflict entities.
func (_u *CategoryResultUpdateOne) RemoveConflicts(v ...*SourceConflict) *CategoryResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConflictIDs(ids...)
}

// Where appends a list predicates to the CategoryResultUpdate builder.
func (_u *CategoryResultUpdateOne) Where(ps ...predicate.CategoryResult) *CategoryResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryResultUpdateOne) Select(field string, fields ...string) *CategoryResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryResult entity.
func (_u *CategoryResultUpdateOne) Save(ctx context.Context) (*CategoryResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryResultUpdateOne) SaveX(ctx context.Context) *CategoryResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryResultUpdateOne) check() error {
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := categoryresult.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataQualityScore(); ok {
		if err := categoryresult.DataQualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "data_quality_score", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.data_quality_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := categoryresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CategoryResult.status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryResult.request"`)
	}
	return nil
}

func (_u *CategoryResultUpdateOne) sqlSave(ctx context.Context) (_node *CategoryResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryresult.Table, categoryresult.Columns, sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryresult.FieldID)
		for _, f := range fields {
			if !categoryresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categoryresult.FieldID {
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
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(categoryresult.FieldCategoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(categoryresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(categoryresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(categoryresult.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(categoryresult.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DataQualityScore(); ok {
		_spec.SetField(categoryresult.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDataQualityScore(); ok {
		_spec.AddField(categoryresult.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(categoryresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(categoryresult.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(categoryresult.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(categoryresult.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(categoryresult.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(categoryresult.FieldProcessingTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(categoryresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(categoryresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(categoryresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(categoryresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(categoryresult.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(categoryresult.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(categoryresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(categoryresult.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.APICallsMade(); ok {
		_spec.SetField(categoryresult.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICallsMade(); ok {
		_spec.AddField(categoryresult.FieldAPICallsMade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(categoryresult.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(categoryresult.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(categoryresult.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(categoryresult.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(categoryresult.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(categoryresult.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ProviderResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProviderResponsesIDs(); len(nodes) > 0 && !_u.mutation.ProviderResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MergedDataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergedDataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConflictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConflictsIDs(); len(nodes) > 0 && !_u.mutation.ConflictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConflictsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CategoryResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
