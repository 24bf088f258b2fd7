// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
)

// SourceConflictUpdate is the builder for updating SourceConflict entities.
type SourceConflictUpdate struct {
	config
	hooks    []Hook
	mutation *SourceConflictMutation
}

// Where appends a list predicates to the SourceConflictUpdate builder.
func (_u *SourceConflictUpdate) Where(ps ...predicate.SourceConflict) *SourceConflictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConflictType sets the "conflict_type" field.
func (_u *SourceConflictUpdate) SetConflictType(v string) *SourceConflictUpdate {
	_u.mutation.SetConflictType(v)
	return _u
}

// SetNillableConflictType sets the "conflict_type" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableConflictType(v *string) *SourceConflictUpdate {
	if v != nil {
		_u.SetConflictType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SourceConflictUpdate) SetDescription(v string) *SourceConflictUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableDescription(v *string) *SourceConflictUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetConflictingSourceIds sets the "conflicting_source_ids" field.
func (_u *SourceConflictUpdate) SetConflictingSourceIds(v []string) *SourceConflictUpdate {
	_u.mutation.SetConflictingSourceIds(v)
	return _u
}

// AppendConflictingSourceIds appends value to the "conflicting_source_ids" field.
func (_u *SourceConflictUpdate) AppendConflictingSourceIds(v []string) *SourceConflictUpdate {
	_u.mutation.AppendConflictingSourceIds(v)
	return _u
}

// ClearConflictingSourceIds clears the value of the "conflicting_source_ids" field.
func (_u *SourceConflictUpdate) ClearConflictingSourceIds() *SourceConflictUpdate {
	_u.mutation.ClearConflictingSourceIds()
	return _u
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (_u *SourceConflictUpdate) SetResolutionStrategy(v string) *SourceConflictUpdate {
	_u.mutation.SetResolutionStrategy(v)
	return _u
}

// SetNillableResolutionStrategy sets the "resolution_strategy" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableResolutionStrategy(v *string) *SourceConflictUpdate {
	if v != nil {
		_u.SetResolutionStrategy(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *SourceConflictUpdate) SetResolvedAt(v time.Time) *SourceConflictUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableResolvedAt(v *time.Time) *SourceConflictUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// SetConfidenceImpact sets the "confidence_impact" field.
func (_u *SourceConflictUpdate) SetConfidenceImpact(v float64) *SourceConflictUpdate {
	_u.mutation.ResetConfidenceImpact()
	_u.mutation.SetConfidenceImpact(v)
	return _u
}

// SetNillableConfidenceImpact sets the "confidence_impact" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableConfidenceImpact(v *float64) *SourceConflictUpdate {
	if v != nil {
		_u.SetConfidenceImpact(*v)
	}
	return _u
}

// AddConfidenceImpact adds value to the "confidence_impact" field.
func (_u *SourceConflictUpdate) AddConfidenceImpact(v float64) *SourceConflictUpdate {
	_u.mutation.AddConfidenceImpact(v)
	return _u
}

// SetIsCritical sets the "is_critical" field.
func (_u *SourceConflictUpdate) SetIsCritical(v bool) *SourceConflictUpdate {
	_u.mutation.SetIsCritical(v)
	return _u
}

// SetNillableIsCritical sets the "is_critical" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableIsCritical(v *bool) *SourceConflictUpdate {
	if v != nil {
		_u.SetIsCritical(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SourceConflictUpdate) SetDeletedAt(v time.Time) *SourceConflictUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SourceConflictUpdate) SetNillableDeletedAt(v *time.Time) *SourceConflictUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SourceConflictUpdate) ClearDeletedAt() *SourceConflictUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the SourceConflictMutation object of the builder.
func (_u *SourceConflictUpdate) Mutation() *SourceConflictMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceConflictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceConflictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceConflictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceConflictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceConflictUpdate) check() error {
	if _u.mutation.CategoryResultCleared() && len(_u.mutation.CategoryResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceConflict.category_result"`)
	}
	return nil
}

func (_u *SourceConflictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourceconflict.Table, sourceconflict.Columns, sqlgraph.NewFieldSpec(sourceconflict.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConflictType(); ok {
		_spec.SetField(sourceconflict.FieldConflictType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sourceconflict.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConflictingSourceIds(); ok {
		_spec.SetField(sourceconflict.FieldConflictingSourceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflictingSourceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sourceconflict.FieldConflictingSourceIds, value)
		})
	}
	if _u.mutation.ConflictingSourceIdsCleared() {
		_spec.ClearField(sourceconflict.FieldConflictingSourceIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolutionStrategy(); ok {
		_spec.SetField(sourceconflict.FieldResolutionStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(sourceconflict.FieldResolvedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfidenceImpact(); ok {
		_spec.SetField(sourceconflict.FieldConfidenceImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceImpact(); ok {
		_spec.AddField(sourceconflict.FieldConfidenceImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCritical(); ok {
		_spec.SetField(sourceconflict.FieldIsCritical, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(sourceconflict.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(sourceconflict.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourceconflict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceConflictUpdateOne is the builder for updating a single SourceConflict entity.
type SourceConflictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceConflictMutation
}

// SetConflictType sets the "conflict_type" field.
func (_u *SourceConflictUpdateOne) SetConflictType(v string) *SourceConflictUpdateOne {
	_u.mutation.SetConflictType(v)
	return _u
}

// SetNillableConflictType sets the "conflict_type" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableConflictType(v *string) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetConflictType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SourceConflictUpdateOne) SetDescription(v string) *SourceConflictUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableDescription(v *string) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetConflictingSourceIds sets the "conflicting_source_ids" field.
func (_u *SourceConflictUpdateOne) SetConflictingSourceIds(v []string) *SourceConflictUpdateOne {
	_u.mutation.SetConflictingSourceIds(v)
	return _u
}

// AppendConflictingSourceIds appends value to the "conflicting_source_ids" field.
func (_u *SourceConflictUpdateOne) AppendConflictingSourceIds(v []string) *SourceConflictUpdateOne {
	_u.mutation.AppendConflictingSourceIds(v)
	return _u
}

// ClearConflictingSourceIds clears the value of the "conflicting_source_ids" field.
func (_u *SourceConflictUpdateOne) ClearConflictingSourceIds() *SourceConflictUpdateOne {
	_u.mutation.ClearConflictingSourceIds()
	return _u
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (_u *SourceConflictUpdateOne) SetResolutionStrategy(v string) *SourceConflictUpdateOne {
	_u.mutation.SetResolutionStrategy(v)
	return _u
}

// SetNillableResolutionStrategy sets the "resolution_strategy" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableResolutionStrategy(v *string) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetResolutionStrategy(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *SourceConflictUpdateOne) SetResolvedAt(v time.Time) *SourceConflictUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableResolvedAt(v *time.Time) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// SetConfidenceImpact sets the "confidence_impact" field.
func (_u *SourceConflictUpdateOne) SetConfidenceImpact(v float64) *SourceConflictUpdateOne {
	_u.mutation.ResetConfidenceImpact()
	_u.mutation.SetConfidenceImpact(v)
	return _u
}

// SetNillableConfidenceImpact sets the "confidence_impact" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableConfidenceImpact(v *float64) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetConfidenceImpact(*v)
	}
	return _u
}

// AddConfidenceImpact adds value to the "confidence_impact" field.
func (_u *SourceConflictUpdateOne) AddConfidenceImpact(v float64) *SourceConflictUpdateOne {
	_u.mutation.AddConfidenceImpact(v)
	return _u
}

// SetIsCritical sets the "is_critical" field.
func (_u *SourceConflictUpdateOne) SetIsCritical(v bool) *SourceConflictUpdateOne {
	_u.mutation.SetIsCritical(v)
	return _u
}

// SetNillableIsCritical sets the "is_critical" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableIsCritical(v *bool) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetIsCritical(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SourceConflictUpdateOne) SetDeletedAt(v time.Time) *SourceConflictUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SourceConflictUpdateOne) SetNillableDeletedAt(v *time.Time) *SourceConflictUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SourceConflictUpdateOne) ClearDeletedAt() *SourceConflictUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the SourceConflictMutation object of the builder.
func (_u *SourceConflictUpdateOne) Mutation() *SourceConflictMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceConflictUpdate builder.
func (_u *SourceConflictUpdateOne) Where(ps ...predicate.SourceConflict) *SourceConflictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceConflictUpdateOne) Select(field string, fields ...string) *SourceConflictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceConflict entity.
func (_u *SourceConflictUpdateOne) Save(ctx context.Context) (*SourceConflict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceConflictUpdateOne) SaveX(ctx context.Context) *SourceConflict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceConflictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceConflictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceConflictUpdateOne) check() error {
	if _u.mutation.CategoryResultCleared() && len(_u.mutation.CategoryResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceConflict.category_result"`)
	}
	return nil
}

func (_u *SourceConflictUpdateOne) sqlSave(ctx context.Context) (_node *SourceConflict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourceconflict.Table, sourceconflict.Columns, sqlgraph.NewFieldSpec(sourceconflict.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceConflict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourceconflict.FieldID)
		for _, f := range fields {
			if !sourceconflict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourceconflict.FieldID {
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
	if value, ok := _u.mutation.ConflictType(); ok {
		_spec.SetField(sourceconflict.FieldConflictType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sourceconflict.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConflictingSourceIds(); ok {
		_spec.SetField(sourceconflict.FieldConflictingSourceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflictingSourceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sourceconflict.FieldConflictingSourceIds, value)
		})
	}
	if _u.mutation.ConflictingSourceIdsCleared() {
		_spec.ClearField(sourceconflict.FieldConflictingSourceIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolutionStrategy(); ok {
		_spec.SetField(sourceconflict.FieldResolutionStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(sourceconflict.FieldResolvedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfidenceImpact(); ok {
		_spec.SetField(sourceconflict.FieldConfidenceImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceImpact(); ok {
		_spec.AddField(sourceconflict.FieldConfidenceImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCritical(); ok {
		_spec.SetField(sourceconflict.FieldIsCritical, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(sourceconflict.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(sourceconflict.FieldDeletedAt, field.TypeTime)
	}
	_node = &SourceConflict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourceconflict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
