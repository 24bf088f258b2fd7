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
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
)

// AnalysisRequestUpdate is the builder for updating AnalysisRequest entities.
type AnalysisRequestUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRequestMutation
}

// Where appends a list predicates to the AnalysisRequestUpdate builder.
func (_u *AnalysisRequestUpdate) Where(ps ...predicate.AnalysisRequest) *AnalysisRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrugName sets the "drug_name" field.
func (_u *AnalysisRequestUpdate) SetDrugName(v string) *AnalysisRequestUpdate {
	_u.mutation.SetDrugName(v)
	return _u
}

// SetNillableDrugName sets the "drug_name" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableDrugName(v *string) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetDrugName(*v)
	}
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *AnalysisRequestUpdate) SetDeliveryMethod(v analysisrequest.DeliveryMethod) *AnalysisRequestUpdate {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableDeliveryMethod(v *analysisrequest.DeliveryMethod) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AnalysisRequestUpdate) SetPriority(v analysisrequest.Priority) *AnalysisRequestUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillablePriority(v *analysisrequest.Priority) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCallbackURL sets the "callback_url" field.
func (_u *AnalysisRequestUpdate) SetCallbackURL(v string) *AnalysisRequestUpdate {
	_u.mutation.SetCallbackURL(v)
	return _u
}

// SetNillableCallbackURL sets the "callback_url" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableCallbackURL(v *string) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetCallbackURL(*v)
	}
	return _u
}

// ClearCallbackURL clears the value of the "callback_url" field.
func (_u *AnalysisRequestUpdate) ClearCallbackURL() *AnalysisRequestUpdate {
	_u.mutation.ClearCallbackURL()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *AnalysisRequestUpdate) SetCorrelationID(v string) *AnalysisRequestUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableCorrelationID(v *string) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetDrugCount sets the "drug_count" field.
func (_u *AnalysisRequestUpdate) SetDrugCount(v int) *AnalysisRequestUpdate {
	_u.mutation.ResetDrugCount()
	_u.mutation.SetDrugCount(v)
	return _u
}

// SetNillableDrugCount sets the "drug_count" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableDrugCount(v *int) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetDrugCount(*v)
	}
	return _u
}

// AddDrugCount adds value to the "drug_count" field.
func (_u *AnalysisRequestUpdate) AddDrugCount(v int) *AnalysisRequestUpdate {
	_u.mutation.AddDrugCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *AnalysisRequestUpdate) SetRetryCount(v int) *AnalysisRequestUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableRetryCount(v *int) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *AnalysisRequestUpdate) AddRetryCount(v int) *AnalysisRequestUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisRequestUpdate) SetUpdatedAt(v time.Time) *AnalysisRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisRequestUpdate) SetCompletedAt(v time.Time) *AnalysisRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisRequestUpdate) ClearCompletedAt() *AnalysisRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisRequestUpdate) SetPodID(v string) *AnalysisRequestUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillablePodID(v *string) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisRequestUpdate) ClearPodID() *AnalysisRequestUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AnalysisRequestUpdate) SetLastInteractionAt(v time.Time) *AnalysisRequestUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableLastInteractionAt(v *time.Time) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AnalysisRequestUpdate) ClearLastInteractionAt() *AnalysisRequestUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AnalysisRequestUpdate) SetDeletedAt(v time.Time) *AnalysisRequestUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableDeletedAt(v *time.Time) *AnalysisRequestUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AnalysisRequestUpdate) ClearDeletedAt() *AnalysisRequestUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTrackingID sets the "tracking" edge to the ProcessTracking entity by ID.
func (_u *AnalysisRequestUpdate) SetTrackingID(id string) *AnalysisRequestUpdate {
	_u.mutation.SetTrackingID(id)
	return _u
}

// SetNillableTrackingID sets the "tracking" edge to the ProcessTracking entity by ID if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableTrackingID(id *string) *AnalysisRequestUpdate {
	if id != nil {
		_u = _u.SetTrackingID(*id)
	}
	return _u
}

// SetTracking sets the "tracking" edge to the ProcessTracking entity.
func (_u *AnalysisRequestUpdate) SetTracking(v *ProcessTracking) *AnalysisRequestUpdate {
	return _u.SetTrackingID(v.ID)
}

// AddCategoryResultIDs adds the "category_results" edge to the CategoryResult entity by IDs.
func (_u *AnalysisRequestUpdate) AddCategoryResultIDs(ids ...string) *AnalysisRequestUpdate {
	_u.mutation.AddCategoryResultIDs(ids...)
	return _u
}

// AddCategoryResults adds the "category_results" edges to the CategoryResult entity.
func (_u *AnalysisRequestUpdate) AddCategoryResults(v ...*CategoryResult) *AnalysisRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryResultIDs(ids...)
}

// AddParameterResultIDs adds the "parameter_results" edge to the ParameterResult entity by IDs.
func (_u *AnalysisRequestUpdate) AddParameterResultIDs(ids ...string) *AnalysisRequestUpdate {
	_u.mutation.AddParameterResultIDs(ids...)
	return _u
}

// AddParameterResults adds the "parameter_results" edges to the ParameterResult entity.
func (_u *AnalysisRequestUpdate) AddParameterResults(v ...*ParameterResult) *AnalysisRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParameterResultIDs(ids...)
}

// AddStageEventIDs adds the "stage_events" edge to the StageEvent entity by IDs.
func (_u *AnalysisRequestUpdate) AddStageEventIDs(ids ...string) *AnalysisRequestUpdate {
	_u.mutation.AddStageEventIDs(ids...)
	return _u
}

// AddStageEvents adds the "stage_events" edges to the StageEvent entity.
func (_u *AnalysisRequestUpdate) AddStageEvents(v ...*StageEvent) *AnalysisRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageEventIDs(ids...)
}

// SetFinalOutputID sets the "final_output" edge to the FinalOutput entity by ID.
func (_u *AnalysisRequestUpdate) SetFinalOutputID(id string) *AnalysisRequestUpdate {
	_u.mutation.SetFinalOutputID(id)
	return _u
}

// SetNillableFinalOutputID sets the "final_output" edge to the FinalOutput entity by ID if the given value is not nil.
func (_u *AnalysisRequestUpdate) SetNillableFinalOutputID(id *string) *AnalysisRequestUpdate {
	if id != nil {
		_u = _u.SetFinalOutputID(*id)
	}
	return _u
}

// SetFinalOutput sets the "final_output" edge to the FinalOutput entity.
func (_u *AnalysisRequestUpdate) SetFinalOutput(v *FinalOutput) *AnalysisRequestUpdate {
	return _u.SetFinalOutputID(v.ID)
}

// Mutation returns the AnalysisRequestMutation object of the builder.
func (_u *AnalysisRequestUpdate) Mutation() *AnalysisRequestMutation {
	return _u.mutation
}

// ClearTracking clears the "tracking" edge to the ProcessTracking entity.
func (_u *AnalysisRequestUpdate) ClearTracking() *AnalysisRequestUpdate {
	_u.mutation.ClearTracking()
	return _u
}

// ClearCategoryResults clears all "category_results" edges to the CategoryResult entity.
func (_u *AnalysisRequestUpdate) ClearCategoryResults() *AnalysisRequestUpdate {
	_u.mutation.ClearCategoryResults()
	return _u
}

// RemoveCategoryResultIDs removes the "category_results" edge to CategoryResult entities by IDs.
func (_u *AnalysisRequestUpdate) RemoveCategoryResultIDs(ids ...string) *AnalysisRequestUpdate {
	_u.mutation.RemoveCategoryResultIDs(ids...)
	return _u
}

// RemoveCategoryResults removes "category_results" edges to CategoryResult entities.
func (_u *AnalysisRequestUpdate) RemoveCategoryResults(v ...*CategoryResult) *AnalysisRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryResultIDs(ids...)
}

// ClearParameterResults clears all "parameter_results" edges to the ParameterResult entity.
func (_u *AnalysisRequestUpdate) ClearParameterResults() *AnalysisRequestUpdate {
	_u.mutation.ClearParameterResults()
	return _u
}

// RemoveParameterResultIDs removes the "parameter_results" edge to ParameterResult entities by IDs.
func (_u *AnalysisRequestUpdate) RemoveParameterResultIDs(ids ...string) *AnalysisRequestUpdate {
	_u.mutation.RemoveParameterResultIDs(ids...)
	return _u
}

// RemoveParameterResults removes "parameter_results" edges to ParameterResult entities.
func (_u *AnalysisRequestUpdate) RemoveParameterResults(v ...*ParameterResult) *AnalysisRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParameterResultIDs(ids...)
}

// ClearStageEvents clears all "stage_events" edges to the StageEvent entity.
func (_u *AnalysisRequestUpdate) ClearStageEvents() *AnalysisRequestUpdate {
	_u.mutation.ClearStageEvents()
	return _u
}

// RemoveStageEventIDs removes the "stage_events" edge to StageEvent entities by IDs.
func (_u *AnalysisRequestUpdate) RemoveStageEventIDs(ids ...string) *AnalysisRequestUpdate {
	_u.mutation.RemoveStageEventIDs(ids...)
	return _u
}

// RemoveStageEvents removes "stage_events" edges to StageEvent entities.
func (_u *AnalysisRequestUpdate) RemoveStageEvents(v ...*StageEvent) *AnalysisRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageEventIDs(ids...)
}

// ClearFinalOutput clears the "final_output" edge to the FinalOutput entity.
func (_u *AnalysisRequestUpdate) ClearFinalOutput() *AnalysisRequestUpdate {
	_u.mutation.ClearFinalOutput()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysisrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRequestUpdate) check() error {
	if v, ok := _u.mutation.DrugName(); ok {
		if err := analysisrequest.DrugNameValidator(v); err != nil {
			return &ValidationError{Name: "drug_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.drug_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryMethod(); ok {
		if err := analysisrequest.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.delivery_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := analysisrequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrequest.Table, analysisrequest.Columns, sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DrugName(); ok {
		_spec.SetField(analysisrequest.FieldDrugName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(analysisrequest.FieldDeliveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(analysisrequest.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CallbackURL(); ok {
		_spec.SetField(analysisrequest.FieldCallbackURL, field.TypeString, value)
	}
	if _u.mutation.CallbackURLCleared() {
		_spec.ClearField(analysisrequest.FieldCallbackURL, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(analysisrequest.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrugCount(); ok {
		_spec.SetField(analysisrequest.FieldDrugCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrugCount(); ok {
		_spec.AddField(analysisrequest.FieldDrugCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(analysisrequest.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(analysisrequest.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisrequest.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisrequest.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysisrequest.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(analysisrequest.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(analysisrequest.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(analysisrequest.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TrackingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoryResultsIDs(); len(nodes) > 0 && !_u.mutation.CategoryResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParameterResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParameterResultsIDs(); len(nodes) > 0 && !_u.mutation.ParameterResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParameterResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageEventsIDs(); len(nodes) > 0 && !_u.mutation.StageEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinalOutputCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinalOutputIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRequestUpdateOne is the builder for updating a single AnalysisRequest entity.
type AnalysisRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRequestMutation
}

// SetDrugName sets the "drug_name" field.
func (_u *AnalysisRequestUpdateOne) SetDrugName(v string) *AnalysisRequestUpdateOne {
	_u.mutation.SetDrugName(v)
	return _u
}

// SetNillableDrugName sets the "drug_name" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableDrugName(v *string) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetDrugName(*v)
	}
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *AnalysisRequestUpdateOne) SetDeliveryMethod(v analysisrequest.DeliveryMethod) *AnalysisRequestUpdateOne {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableDeliveryMethod(v *analysisrequest.DeliveryMethod) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AnalysisRequestUpdateOne) SetPriority(v analysisrequest.Priority) *AnalysisRequestUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillablePriority(v *analysisrequest.Priority) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCallbackURL sets the "callback_url" field.
func (_u *AnalysisRequestUpdateOne) SetCallbackURL(v string) *AnalysisRequestUpdateOne {
	_u.mutation.SetCallbackURL(v)
	return _u
}

// SetNillableCallbackURL sets the "callback_url" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableCallbackURL(v *string) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetCallbackURL(*v)
	}
	return _u
}

// ClearCallbackURL clears the value of the "callback_url" field.
func (_u *AnalysisRequestUpdateOne) ClearCallbackURL() *AnalysisRequestUpdateOne {
	_u.mutation.ClearCallbackURL()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *AnalysisRequestUpdateOne) SetCorrelationID(v string) *AnalysisRequestUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableCorrelationID(v *string) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetDrugCount sets the "drug_count" field.
func (_u *AnalysisRequestUpdateOne) SetDrugCount(v int) *AnalysisRequestUpdateOne {
	_u.mutation.ResetDrugCount()
	_u.mutation.SetDrugCount(v)
	return _u
}

// SetNillableDrugCount sets the "drug_count" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableDrugCount(v *int) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetDrugCount(*v)
	}
	return _u
}

// AddDrugCount adds value to the "drug_count" field.
func (_u *AnalysisRequestUpdateOne) AddDrugCount(v int) *AnalysisRequestUpdateOne {
	_u.mutation.AddDrugCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *AnalysisRequestUpdateOne) SetRetryCount(v int) *AnalysisRequestUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableRetryCount(v *int) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *AnalysisRequestUpdateOne) AddRetryCount(v int) *AnalysisRequestUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisRequestUpdateOne) SetUpdatedAt(v time.Time) *AnalysisRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisRequestUpdateOne) SetCompletedAt(v time.Time) *AnalysisRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisRequestUpdateOne) ClearCompletedAt() *AnalysisRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisRequestUpdateOne) SetPodID(v string) *AnalysisRequestUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillablePodID(v *string) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisRequestUpdateOne) ClearPodID() *AnalysisRequestUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AnalysisRequestUpdateOne) SetLastInteractionAt(v time.Time) *AnalysisRequestUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableLastInteractionAt(v *time.Time) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AnalysisRequestUpdateOne) ClearLastInteractionAt() *AnalysisRequestUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AnalysisRequestUpdateOne) SetDeletedAt(v time.Time) *AnalysisRequestUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableDeletedAt(v *time.Time) *AnalysisRequestUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AnalysisRequestUpdateOne) ClearDeletedAt() *AnalysisRequestUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTrackingID sets the "tracking" edge to the ProcessTracking entity by ID.
func (_u *AnalysisRequestUpdateOne) SetTrackingID(id string) *AnalysisRequestUpdateOne {
	_u.mutation.SetTrackingID(id)
	return _u
}

// SetNillableTrackingID sets the "tracking" edge to the ProcessTracking entity by ID if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableTrackingID(id *string) *AnalysisRequestUpdateOne {
	if id != nil {
		_u = _u.SetTrackingID(*id)
	}
	return _u
}

// SetTracking sets the "tracking" edge to the ProcessTracking entity.
func (_u *AnalysisRequestUpdateOne) SetTracking(v *ProcessTracking) *AnalysisRequestUpdateOne {
	return _u.SetTrackingID(v.ID)
}

// AddCategoryResultIDs adds the "category_results" edge to the CategoryResult entity by IDs.
func (_u *AnalysisRequestUpdateOne) AddCategoryResultIDs(ids ...string) *AnalysisRequestUpdateOne {
	_u.mutation.AddCategoryResultIDs(ids...)
	return _u
}

// AddCategoryResults adds the "category_results" edges to the CategoryResult entity.
func (_u *AnalysisRequestUpdateOne) AddCategoryResults(v ...*CategoryResult) *AnalysisRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryResultIDs(ids...)
}

// AddParameterResultIDs adds the "parameter_results" edge to the ParameterResult entity by IDs.
func (_u *AnalysisRequestUpdateOne) AddParameterResultIDs(ids ...string) *AnalysisRequestUpdateOne {
	_u.mutation.AddParameterResultIDs(ids...)
	return _u
}

// AddParameterResults adds the "parameter_results" edges to the ParameterResult entity.
func (_u *AnalysisRequestUpdateOne) AddParameterResults(v ...*ParameterResult) *AnalysisRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParameterResultIDs(ids...)
}

// AddStageEventIDs adds the "stage_events" edge to the StageEvent entity by IDs.
func (_u *AnalysisRequestUpdateOne) AddStageEventIDs(ids ...string) *AnalysisRequestUpdateOne {
	_u.mutation.AddStageEventIDs(ids...)
	return _u
}

// AddStageEvents adds the "stage_events" edges to the StageEvent entity.
func (_u *AnalysisRequestUpdateOne) AddStageEvents(v ...*StageEvent) *AnalysisRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageEventIDs(ids...)
}

// SetFinalOutputID sets the "final_output" edge to the FinalOutput entity by ID.
func (_u *AnalysisRequestUpdateOne) SetFinalOutputID(id string) *AnalysisRequestUpdateOne {
	_u.mutation.SetFinalOutputID(id)
	return _u
}

// SetNillableFinalOutputID sets the "final_output" edge to the FinalOutput entity by ID if the given value is not nil.
func (_u *AnalysisRequestUpdateOne) SetNillableFinalOutputID(id *string) *AnalysisRequestUpdateOne {
	if id != nil {
		_u = _u.SetFinalOutputID(*id)
	}
	return _u
}

// SetFinalOutput sets the "final_output" edge to the FinalOutput entity.
func (_u *AnalysisRequestUpdateOne) SetFinalOutput(v *FinalOutput) *AnalysisRequestUpdateOne {
	return _u.SetFinalOutputID(v.ID)
}

// Mutation returns the AnalysisRequestMutation object of the builder.
func (_u *AnalysisRequestUpdateOne) Mutation() *AnalysisRequestMutation {
	return _u.mutation
}

// ClearTracking clears the "tracking" edge to the ProcessTracking entity.
func (_u *AnalysisRequestUpdateOne) ClearTracking() *AnalysisRequestUpdateOne {
	_u.mutation.ClearTracking()
	return _u
}

// ClearCategoryResults clears all "category_results" edges to the CategoryResult entity.
func (_u *AnalysisRequestUpdateOne) ClearCategoryResults() *AnalysisRequestUpdateOne {
	_u.mutation.ClearCategoryResults()
	return _u
}

// RemoveCategoryResultIDs removes the "category_results" edge to CategoryResult entities by IDs.
func (_u *AnalysisRequestUpdateOne) RemoveCategoryResultIDs(ids ...string) *AnalysisRequestUpdateOne {
	_u.mutation.RemoveCategoryResultIDs(ids...)
	return _u
}

// RemoveCategoryResults removes "category_results" edges to CategoryResult entities.
func (_u *AnalysisRequestUpdateOne) RemoveCategoryResults(v ...*CategoryResult) *AnalysisRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryResultIDs(ids...)
}

// ClearParameterResults clears all "parameter_results" edges to the ParameterResult entity.
func (_u *AnalysisRequestUpdateOne) ClearParameterResults() *AnalysisRequestUpdateOne {
	_u.mutation.ClearParameterResults()
	return _u
}

// RemoveParameterResultIDs removes the "parameter_results" edge to ParameterResult entities by IDs.
func (_u *AnalysisRequestUpdateOne) RemoveParameterResultIDs(ids ...string) *AnalysisRequestUpdateOne {
	_u.mutation.RemoveParameterResultIDs(ids...)
	return _u
}

// RemoveParameterResults removes "parameter_results" edges to ParameterResult entities.
func (_u *AnalysisRequestUpdateOne) RemoveParameterResults(v ...*ParameterResult) *AnalysisRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParameterResultIDs(ids...)
}

// ClearStageEvents clears all "stage_events" edges to the StageEvent entity.
func (_u *AnalysisRequestUpdateOne) ClearStageEvents() *AnalysisRequestUpdateOne {
	_u.mutation.ClearStageEvents()
	return _u
}

// RemoveStageEventIDs removes the "stage_events" edge to StageEvent entities by IDs.
func (_u *AnalysisRequestUpdateOne) RemoveStageEventIDs(ids ...string) *AnalysisRequestUpdateOne {
	_u.mutation.RemoveStageEventIDs(ids...)
	return _u
}

// RemoveStageEvents removes "stage_events" edges to StageEvent entities.
func (_u *AnalysisRequestUpdateOne) RemoveStageEvents(v ...*StageEvent) *AnalysisRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageEventIDs(ids...)
}

// ClearFinalOutput clears the "final_output" edge to the FinalOutput entity.
func (_u *AnalysisRequestUpdateOne) ClearFinalOutput() *AnalysisRequestUpdateOne {
	_u.mutation.ClearFinalOutput()
	return _u
}

// Where appends a list predicates to the AnalysisRequestUpdate builder.
func (_u *AnalysisRequestUpdateOne) Where(ps ...predicate.AnalysisRequest) *AnalysisRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRequestUpdateOne) Select(field string, fields ...string) *AnalysisRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRequest entity.
func (_u *AnalysisRequestUpdateOne) Save(ctx context.Context) (*AnalysisRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRequestUpdateOne) SaveX(ctx context.Context) *AnalysisRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysisrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRequestUpdateOne) check() error {
	if v, ok := _u.mutation.DrugName(); ok {
		if err := analysisrequest.DrugNameValidator(v); err != nil {
			return &ValidationError{Name: "drug_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.drug_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryMethod(); ok {
		if err := analysisrequest.DeliveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "delivery_method", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.delivery_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := analysisrequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AnalysisRequest.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRequestUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrequest.Table, analysisrequest.Columns, sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrequest.FieldID)
		for _, f := range fields {
			if !analysisrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrequest.FieldID {
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
	if value, ok := _u.mutation.DrugName(); ok {
		_spec.SetField(analysisrequest.FieldDrugName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(analysisrequest.FieldDeliveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(analysisrequest.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CallbackURL(); ok {
		_spec.SetField(analysisrequest.FieldCallbackURL, field.TypeString, value)
	}
	if _u.mutation.CallbackURLCleared() {
		_spec.ClearField(analysisrequest.FieldCallbackURL, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(analysisrequest.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrugCount(); ok {
		_spec.SetField(analysisrequest.FieldDrugCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrugCount(); ok {
		_spec.AddField(analysisrequest.FieldDrugCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(analysisrequest.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(analysisrequest.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisrequest.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisrequest.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysisrequest.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(analysisrequest.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(analysisrequest.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(analysisrequest.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TrackingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoryResultsIDs(); len(nodes) > 0 && !_u.mutation.CategoryResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParameterResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParameterResultsIDs(); len(nodes) > 0 && !_u.mutation.ParameterResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParameterResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageEventsIDs(); len(nodes) > 0 && !_u.mutation.StageEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinalOutputCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinalOutputIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
