// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// MergedDataUpdate is the builder for updating MergedData entities.
type MergedDataUpdate struct {
	config
	hooks    []Hook
	mutation *MergedDataMutation
}

// Where appends a list predicates to the MergedDataUpdate builder.
func (_u *MergedDataUpdate) Where(ps ...predicate.MergedData) *MergedDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMergedText sets the "merged_text" field.
func (_u *MergedDataUpdate) SetMergedText(v string) *MergedDataUpdate {
	_u.mutation.SetMergedText(v)
	return _u
}

// SetNillableMergedText sets the "merged_text" field if the given value is not nil.
func (_u *MergedDataUpdate) SetNillableMergedText(v *string) *MergedDataUpdate {
	if v != nil {
		_u.SetMergedText(*v)
	}
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *MergedDataUpdate) SetStructuredData(v map[string]interface{}) *MergedDataUpdate {
	_u.mutation.SetStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *MergedDataUpdate) ClearStructuredData() *MergedDataUpdate {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MergedDataUpdate) SetConfidence(v float64) *MergedDataUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MergedDataUpdate) SetNillableConfidence(v *float64) *MergedDataUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MergedDataUpdate) AddConfidence(v float64) *MergedDataUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceReferences sets the "source_references" field.
func (_u *MergedDataUpdate) SetSourceReferences(v []map[string]interface{}) *MergedDataUpdate {
	_u.mutation.SetSourceReferences(v)
	return _u
}

// AppendSourceReferences appends value to the "source_references" field.
func (_u *MergedDataUpdate) AppendSourceReferences(v []map[string]interface{}) *MergedDataUpdate {
	_u.mutation.AppendSourceReferences(v)
	return _u
}

// ClearSourceReferences clears the value of the "source_references" field.
func (_u *MergedDataUpdate) ClearSourceReferences() *MergedDataUpdate {
	_u.mutation.ClearSourceReferences()
	return _u
}

// SetMergeMethod sets the "merge_method" field.
func (_u *MergedDataUpdate) SetMergeMethod(v mergeddata.MergeMethod) *MergedDataUpdate {
	_u.mutation.SetMergeMethod(v)
	return _u
}

// SetNillableMergeMethod sets the "merge_method" field if the given value is not nil.
func (_u *MergedDataUpdate) SetNillableMergeMethod(v *mergeddata.MergeMethod) *MergedDataUpdate {
	if v != nil {
		_u.SetMergeMethod(*v)
	}
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *MergedDataUpdate) SetKeyFindings(v []string) *MergedDataUpdate {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *MergedDataUpdate) AppendKeyFindings(v []string) *MergedDataUpdate {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *MergedDataUpdate) ClearKeyFindings() *MergedDataUpdate {
	_u.mutation.ClearKeyFindings()
	return _u
}

// Mutation returns the MergedDataMutation object of the builder.
func (_u *MergedDataUpdate) Mutation() *MergedDataMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MergedDataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergedDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MergedDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergedDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergedDataUpdate) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := mergeddata.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MergedData.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MergeMethod(); ok {
		if err := mergeddata.MergeMethodValidator(v); err != nil {
			return &ValidationError{Name: "merge_method", err: fmt.Errorf(`ent: validator failed for field "MergedData.merge_method": %w`, err)}
		}
	}
	if _u.mutation.CategoryResultCleared() && len(_u.mutation.CategoryResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MergedData.category_result"`)
	}
	return nil
}

func (_u *MergedDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergeddata.Table, mergeddata.Columns, sqlgraph.NewFieldSpec(mergeddata.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MergedText(); ok {
		_spec.SetField(mergeddata.FieldMergedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(mergeddata.FieldStructuredData, field.TypeJSON, value)
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(mergeddata.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mergeddata.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mergeddata.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceReferences(); ok {
		_spec.SetField(mergeddata.FieldSourceReferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceReferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeddata.FieldSourceReferences, value)
		})
	}
	if _u.mutation.SourceReferencesCleared() {
		_spec.ClearField(mergeddata.FieldSourceReferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.MergeMethod(); ok {
		_spec.SetField(mergeddata.FieldMergeMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(mergeddata.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeddata.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(mergeddata.FieldKeyFindings, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MergedDataUpdateOne is the builder for updating a single MergedData entity.
type MergedDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MergedDataMutation
}

// SetMergedText sets the "merged_text" field.
func (_u *MergedDataUpdateOne) SetMergedText(v string) *MergedDataUpdateOne {
	_u.mutation.SetMergedText(v)
	return _u
}

// SetNillableMergedText sets the "merged_text" field if the given value is not nil.
func (_u *MergedDataUpdateOne) SetNillableMergedText(v *string) *MergedDataUpdateOne {
	if v != nil {
		_u.SetMergedText(*v)
	}
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *MergedDataUpdateOne) SetStructuredData(v map[string]interface{}) *MergedDataUpdateOne {
	_u.mutation.SetStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *MergedDataUpdateOne) ClearStructuredData() *MergedDataUpdateOne {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MergedDataUpdateOne) SetConfidence(v float64) *MergedDataUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MergedDataUpdateOne) SetNillableConfidence(v *float64) *MergedDataUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MergedDataUpdateOne) AddConfidence(v float64) *MergedDataUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceReferences sets the "source_references" field.
func (_u *MergedDataUpdateOne) SetSourceReferences(v []map[string]interface{}) *MergedDataUpdateOne {
	_u.mutation.SetSourceReferences(v)
	return _u
}

// AppendSourceReferences appends value to the "source_references" field.
func (_u *MergedDataUpdateOne) AppendSourceReferences(v []map[string]interface{}) *MergedDataUpdateOne {
	_u.mutation.AppendSourceReferences(v)
	return _u
}

// ClearSourceReferences clears the value of the "source_references" field.
func (_u *MergedDataUpdateOne) ClearSourceReferences() *MergedDataUpdateOne {
	_u.mutation.ClearSourceReferences()
	return _u
}

// SetMergeMethod sets the "merge_method" field.
func (_u *MergedDataUpdateOne) SetMergeMethod(v mergeddata.MergeMethod) *MergedDataUpdateOne {
	_u.mutation.SetMergeMethod(v)
	return _u
}

// SetNillableMergeMethod sets the "merge_method" field if the given value is not nil.
func (_u *MergedDataUpdateOne) SetNillableMergeMethod(v *mergeddata.MergeMethod) *MergedDataUpdateOne {
	if v != nil {
		_u.SetMergeMethod(*v)
	}
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *MergedDataUpdateOne) SetKeyFindings(v []string) *MergedDataUpdateOne {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *MergedDataUpdateOne) AppendKeyFindings(v []string) *MergedDataUpdateOne {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *MergedDataUpdateOne) ClearKeyFindings() *MergedDataUpdateOne {
	_u.mutation.ClearKeyFindings()
	return _u
}

// Mutation returns the MergedDataMutation object of the builder.
func (_u *MergedDataUpdateOne) Mutation() *MergedDataMutation {
	return _u.mutation
}

// Where appends a list predicates to the MergedDataUpdate builder.
func (_u *MergedDataUpdateOne) Where(ps ...predicate.MergedData) *MergedDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MergedDataUpdateOne) Select(field string, fields ...string) *MergedDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MergedData entity.
func (_u *MergedDataUpdateOne) Save(ctx context.Context) (*MergedData, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergedDataUpdateOne) SaveX(ctx context.Context) *MergedData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MergedDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergedDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergedDataUpdateOne) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := mergeddata.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MergedData.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MergeMethod(); ok {
		if err := mergeddata.MergeMethodValidator(v); err != nil {
			return &ValidationError{Name: "merge_method", err: fmt.Errorf(`ent: validator failed for field "MergedData.merge_method": %w`, err)}
		}
	}
	if _u.mutation.CategoryResultCleared() && len(_u.mutation.CategoryResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MergedData.category_result"`)
	}
	return nil
}

func (_u *MergedDataUpdateOne) sqlSave(ctx context.Context) (_node *MergedData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergeddata.Table, mergeddata.Columns, sqlgraph.NewFieldSpec(mergeddata.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MergedData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mergeddata.FieldID)
		for _, f := range fields {
			if !mergeddata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mergeddata.FieldID {
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
	if value, ok := _u.mutation.MergedText(); ok {
		_spec.SetField(mergeddata.FieldMergedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(mergeddata.FieldStructuredData, field.TypeJSON, value)
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(mergeddata.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mergeddata.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mergeddata.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceReferences(); ok {
		_spec.SetField(mergeddata.FieldSourceReferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceReferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeddata.FieldSourceReferences, value)
		})
	}
	if _u.mutation.SourceReferencesCleared() {
		_spec.ClearField(mergeddata.FieldSourceReferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.MergeMethod(); ok {
		_spec.SetField(mergeddata.FieldMergeMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(mergeddata.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeddata.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(mergeddata.FieldKeyFindings, field.TypeJSON)
	}
	_node = &MergedData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
