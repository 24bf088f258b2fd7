// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// PharmaCategoryUpdate is the builder for updating PharmaCategory entities.
type PharmaCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *PharmaCategoryMutation
}

// Where appends a list predicates to the PharmaCategoryUpdate builder.
func (_u *PharmaCategoryUpdate) Where(ps ...predicate.PharmaCategory) *PharmaCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PharmaCategoryUpdate) SetName(v string) *PharmaCategoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillableName(v *string) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *PharmaCategoryUpdate) SetKey(v string) *PharmaCategoryUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillableKey(v *string) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PharmaCategoryUpdate) SetPhase(v int) *PharmaCategoryUpdate {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillablePhase(v *int) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *PharmaCategoryUpdate) AddPhase(v int) *PharmaCategoryUpdate {
	_u.mutation.AddPhase(v)
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *PharmaCategoryUpdate) SetDisplayOrder(v int) *PharmaCategoryUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillableDisplayOrder(v *int) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *PharmaCategoryUpdate) AddDisplayOrder(v int) *PharmaCategoryUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PharmaCategoryUpdate) SetIsActive(v bool) *PharmaCategoryUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillableIsActive(v *bool) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *PharmaCategoryUpdate) SetPromptTemplate(v string) *PharmaCategoryUpdate {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillablePromptTemplate(v *string) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetVerificationCriteria sets the "verification_criteria" field.
func (_u *PharmaCategoryUpdate) SetVerificationCriteria(v map[string]interface{}) *PharmaCategoryUpdate {
	_u.mutation.SetVerificationCriteria(v)
	return _u
}

// ClearVerificationCriteria clears the value of the "verification_criteria" field.
func (_u *PharmaCategoryUpdate) ClearVerificationCriteria() *PharmaCategoryUpdate {
	_u.mutation.ClearVerificationCriteria()
	return _u
}

// SetProcessingRules sets the "processing_rules" field.
func (_u *PharmaCategoryUpdate) SetProcessingRules(v map[string]interface{}) *PharmaCategoryUpdate {
	_u.mutation.SetProcessingRules(v)
	return _u
}

// ClearProcessingRules clears the value of the "processing_rules" field.
func (_u *PharmaCategoryUpdate) ClearProcessingRules() *PharmaCategoryUpdate {
	_u.mutation.ClearProcessingRules()
	return _u
}

// SetConflictResolutionStrategy sets the "conflict_resolution_strategy" field.
func (_u *PharmaCategoryUpdate) SetConflictResolutionStrategy(v string) *PharmaCategoryUpdate {
	_u.mutation.SetConflictResolutionStrategy(v)
	return _u
}

// SetNillableConflictResolutionStrategy sets the "conflict_resolution_strategy" field if the given value is not nil.
func (_u *PharmaCategoryUpdate) SetNillableConflictResolutionStrategy(v *string) *PharmaCategoryUpdate {
	if v != nil {
		_u.SetConflictResolutionStrategy(*v)
	}
	return _u
}

// AddDependentIDs adds the "dependents" edge to the CategoryDependency entity by IDs.
func (_u *PharmaCategoryUpdate) AddDependentIDs(ids ...string) *PharmaCategoryUpdate {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdate) AddDependents(v ...*CategoryDependency) *PharmaCategoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// AddRequirementIDs adds the "requirements" edge to the CategoryDependency entity by IDs.
func (_u *PharmaCategoryUpdate) AddRequirementIDs(ids ...string) *PharmaCategoryUpdate {
	_u.mutation.AddRequirementIDs(ids...)
	return _u
}

// AddRequirements adds the "requirements" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdate) AddRequirements(v ...*CategoryDependency) *PharmaCategoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequirementIDs(ids...)
}

// Mutation returns the PharmaCategoryMutation object of the builder.
func (_u *PharmaCategoryUpdate) Mutation() *PharmaCategoryMutation {
	return _u.mutation
}

// ClearDependents clears all "dependents" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdate) ClearDependents() *PharmaCategoryUpdate {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to CategoryDependency entities by IDs.
func (_u *PharmaCategoryUpdate) RemoveDependentIDs(ids ...string) *PharmaCategoryUpdate {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to CategoryDependency entities.
func (_u *PharmaCategoryUpdate) RemoveDependents(v ...*CategoryDependency) *PharmaCategoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// ClearRequirements clears all "requirements" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdate) ClearRequirements() *PharmaCategoryUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// RemoveRequirementIDs removes the "requirements" edge to CategoryDependency entities by IDs.
func (_u *PharmaCategoryUpdate) RemoveRequirementIDs(ids ...string) *PharmaCategoryUpdate {
	_u.mutation.RemoveRequirementIDs(ids...)
	return _u
}

// RemoveRequirements removes "requirements" edges to CategoryDependency entities.
func (_u *PharmaCategoryUpdate) RemoveRequirements(v ...*CategoryDependency) *PharmaCategoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequirementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PharmaCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PharmaCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PharmaCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PharmaCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PharmaCategoryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pharmacategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := pharmacategory.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := pharmacategory.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PharmaCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pharmacategory.Table, pharmacategory.Columns, sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pharmacategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(pharmacategory.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(pharmacategory.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(pharmacategory.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(pharmacategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(pharmacategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(pharmacategory.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(pharmacategory.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerificationCriteria(); ok {
		_spec.SetField(pharmacategory.FieldVerificationCriteria, field.TypeJSON, value)
	}
	if _u.mutation.VerificationCriteriaCleared() {
		_spec.ClearField(pharmacategory.FieldVerificationCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingRules(); ok {
		_spec.SetField(pharmacategory.FieldProcessingRules, field.TypeJSON, value)
	}
	if _u.mutation.ProcessingRulesCleared() {
		_spec.ClearField(pharmacategory.FieldProcessingRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictResolutionStrategy(); ok {
		_spec.SetField(pharmacategory.FieldConflictResolutionStrategy, field.TypeString, value)
	}
	if _u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequirementsIDs(); len(nodes) > 0 && !_u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pharmacategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PharmaCategoryUpdateOne is the builder for updating a single PharmaCategory entity.
type PharmaCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PharmaCategoryMutation
}

// SetName sets the "name" field.
func (_u *PharmaCategoryUpdateOne) SetName(v string) *PharmaCategoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillableName(v *string) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *PharmaCategoryUpdateOne) SetKey(v string) *PharmaCategoryUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillableKey(v *string) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PharmaCategoryUpdateOne) SetPhase(v int) *PharmaCategoryUpdateOne {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillablePhase(v *int) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *PharmaCategoryUpdateOne) AddPhase(v int) *PharmaCategoryUpdateOne {
	_u.mutation.AddPhase(v)
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *PharmaCategoryUpdateOne) SetDisplayOrder(v int) *PharmaCategoryUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillableDisplayOrder(v *int) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *PharmaCategoryUpdateOne) AddDisplayOrder(v int) *PharmaCategoryUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PharmaCategoryUpdateOne) SetIsActive(v bool) *PharmaCategoryUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillableIsActive(v *bool) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *PharmaCategoryUpdateOne) SetPromptTemplate(v string) *PharmaCategoryUpdateOne {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillablePromptTemplate(v *string) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetVerificationCriteria sets the "verification_criteria" field.
func (_u *PharmaCategoryUpdateOne) SetVerificationCriteria(v map[string]interface{}) *PharmaCategoryUpdateOne {
	_u.mutation.SetVerificationCriteria(v)
	return _u
}

// ClearVerificationCriteria clears the value of the "verification_criteria" field.
func (_u *PharmaCategoryUpdateOne) ClearVerificationCriteria() *PharmaCategoryUpdateOne {
	_u.mutation.ClearVerificationCriteria()
	return _u
}

// SetProcessingRules sets the "processing_rules" field.
func (_u *PharmaCategoryUpdateOne) SetProcessingRules(v map[string]interface{}) *PharmaCategoryUpdateOne {
	_u.mutation.SetProcessingRules(v)
	return _u
}

// ClearProcessingRules clears the value of the "processing_rules" field.
func (_u *PharmaCategoryUpdateOne) ClearProcessingRules() *PharmaCategoryUpdateOne {
	_u.mutation.ClearProcessingRules()
	return _u
}

// SetConflictResolutionStrategy sets the "conflict_resolution_strategy" field.
func (_u *PharmaCategoryUpdateOne) SetConflictResolutionStrategy(v string) *PharmaCategoryUpdateOne {
	_u.mutation.SetConflictResolutionStrategy(v)
	return _u
}

// SetNillableConflictResolutionStrategy sets the "conflict_resolution_strategy" field if the given value is not nil.
func (_u *PharmaCategoryUpdateOne) SetNillableConflictResolutionStrategy(v *string) *PharmaCategoryUpdateOne {
	if v != nil {
		_u.SetConflictResolutionStrategy(*v)
	}
	return _u
}

// AddDependentIDs adds the "dependents" edge to the CategoryDependency entity by IDs.
func (_u *PharmaCategoryUpdateOne) AddDependentIDs(ids ...string) *PharmaCategoryUpdateOne {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdateOne) AddDependents(v ...*CategoryDependency) *PharmaCategoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// AddRequirementIDs adds the "requirements" edge to the CategoryDependency entity by IDs.
func (_u *PharmaCategoryUpdateOne) AddRequirementIDs(ids ...string) *PharmaCategoryUpdateOne {
	_u.mutation.AddRequirementIDs(ids...)
	return _u
}

// AddRequirements adds the "requirements" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdateOne) AddRequirements(v ...*CategoryDependency) *PharmaCategoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequirementIDs(ids...)
}

// Mutation returns the PharmaCategoryMutation object of the builder.
func (_u *PharmaCategoryUpdateOne) Mutation() *PharmaCategoryMutation {
	return _u.mutation
}

// ClearDependents clears all "dependents" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdateOne) ClearDependents() *PharmaCategoryUpdateOne {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to CategoryDependency entities by IDs.
func (_u *PharmaCategoryUpdateOne) RemoveDependentIDs(ids ...string) *PharmaCategoryUpdateOne {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to CategoryDependency entities.
func (_u *PharmaCategoryUpdateOne) RemoveDependents(v ...*CategoryDependency) *PharmaCategoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// ClearRequirements clears all "requirements" edges to the CategoryDependency entity.
func (_u *PharmaCategoryUpdateOne) ClearRequirements() *PharmaCategoryUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// RemoveRequirementIDs removes the "requirements" edge to CategoryDependency entities by IDs.
func (_u *PharmaCategoryUpdateOne) RemoveRequirementIDs(ids ...string) *PharmaCategoryUpdateOne {
	_u.mutation.RemoveRequirementIDs(ids...)
	return _u
}

// RemoveRequirements removes "requirements" edges to CategoryDependency entities.
func (_u *PharmaCategoryUpdateOne) RemoveRequirements(v ...*CategoryDependency) *PharmaCategoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequirementIDs(ids...)
}

// Where appends a list predicates to the PharmaCategoryUpdate builder.
func (_u *PharmaCategoryUpdateOne) Where(ps ...predicate.PharmaCategory) *PharmaCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PharmaCategoryUpdateOne) Select(field string, fields ...string) *PharmaCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PharmaCategory entity.
func (_u *PharmaCategoryUpdateOne) Save(ctx context.Context) (*PharmaCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PharmaCategoryUpdateOne) SaveX(ctx context.Context) *PharmaCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PharmaCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PharmaCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PharmaCategoryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pharmacategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := pharmacategory.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := pharmacategory.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PharmaCategory.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PharmaCategoryUpdateOne) sqlSave(ctx context.Context) (_node *PharmaCategory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pharmacategory.Table, pharmacategory.Columns, sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PharmaCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pharmacategory.FieldID)
		for _, f := range fields {
			if !pharmacategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pharmacategory.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pharmacategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(pharmacategory.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(pharmacategory.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(pharmacategory.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(pharmacategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(pharmacategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(pharmacategory.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(pharmacategory.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerificationCriteria(); ok {
		_spec.SetField(pharmacategory.FieldVerificationCriteria, field.TypeJSON, value)
	}
	if _u.mutation.VerificationCriteriaCleared() {
		_spec.ClearField(pharmacategory.FieldVerificationCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingRules(); ok {
		_spec.SetField(pharmacategory.FieldProcessingRules, field.TypeJSON, value)
	}
	if _u.mutation.ProcessingRulesCleared() {
		_spec.ClearField(pharmacategory.FieldProcessingRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictResolutionStrategy(); ok {
		_spec.SetField(pharmacategory.FieldConflictResolutionStrategy, field.TypeString, value)
	}
	if _u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.DependentsTable,
			Columns: []string{pharmacategory.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequirementsIDs(); len(nodes) > 0 && !_u.mutation.RequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pharmacategory.RequirementsTable,
			Columns: []string{pharmacategory.RequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PharmaCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pharmacategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
