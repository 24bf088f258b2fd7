// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
)

// MergedDataCreate is the builder for creating a MergedData entity.
type MergedDataCreate struct {
	config
	mutation *MergedDataMutation
	hooks    []Hook
}

// SetCategoryResultID sets the "category_result_id" field.
func (_c *MergedDataCreate) SetCategoryResultID(v string) *MergedDataCreate {
	_c.mutation.SetCategoryResultID(v)
	return _c
}

// SetMergedText sets the "merged_text" field.
func (_c *MergedDataCreate) SetMergedText(v string) *MergedDataCreate {
	_c.mutation.SetMergedText(v)
	return _c
}

// SetStructuredData sets the "structured_data" field.
func (_c *MergedDataCreate) SetStructuredData(v map[string]interface{}) *MergedDataCreate {
	_c.mutation.SetStructuredData(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MergedDataCreate) SetConfidence(v float64) *MergedDataCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *MergedDataCreate) SetNillableConfidence(v *float64) *MergedDataCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourceReferences sets the "source_references" field.
func (_c *MergedDataCreate) SetSourceReferences(v []map[string]interface{}) *MergedDataCreate {
	_c.mutation.SetSourceReferences(v)
	return _c
}

// SetMergeMethod sets the "merge_method" field.
func (_c *MergedDataCreate) SetMergeMethod(v mergeddata.MergeMethod) *MergedDataCreate {
	_c.mutation.SetMergeMethod(v)
	return _c
}

// SetKeyFindings sets the "key_findings" field.
func (_c *MergedDataCreate) SetKeyFindings(v []string) *MergedDataCreate {
	_c.mutation.SetKeyFindings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergedDataCreate) SetCreatedAt(v time.Time) *MergedDataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergedDataCreate) SetNillableCreatedAt(v *time.Time) *MergedDataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MergedDataCreate) SetID(v string) *MergedDataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCategoryResult sets the "category_result" edge to the CategoryResult entity.
func (_c *MergedDataCreate) SetCategoryResult(v *CategoryResult) *MergedDataCreate {
	return _c.SetCategoryResultID(v.ID)
}

// Mutation returns the MergedDataMutation object of the builder.
func (_c *MergedDataCreate) Mutation() *MergedDataMutation {
	return _c.mutation
}

// Save creates the MergedData in the database.
func (_c *MergedDataCreate) Save(ctx context.Context) (*MergedData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergedDataCreate) SaveX(ctx context.Context) *MergedData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergedDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergedDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergedDataCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := mergeddata.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergeddata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergedDataCreate) check() error {
	if _, ok := _c.mutation.CategoryResultID(); !ok {
		return &ValidationError{Name: "category_result_id", err: errors.New(`ent: missing required field "MergedData.category_result_id"`)}
	}
	if _, ok := _c.mutation.MergedText(); !ok {
		return &ValidationError{Name: "merged_text", err: errors.New(`ent: missing required field "MergedData.merged_text"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MergedData.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := mergeddata.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MergedData.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MergeMethod(); !ok {
		return &ValidationError{Name: "merge_method", err: errors.New(`ent: missing required field "MergedData.merge_method"`)}
	}
	if v, ok := _c.mutation.MergeMethod(); ok {
		if err := mergeddata.MergeMethodValidator(v); err != nil {
			return &ValidationError{Name: "merge_method", err: fmt.Errorf(`ent: validator failed for field "MergedData.merge_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergedData.created_at"`)}
	}
	if len(_c.mutation.CategoryResultIDs()) == 0 {
		return &ValidationError{Name: "category_result", err: errors.New(`ent: missing required edge "MergedData.category_result"`)}
	}
	return nil
}

func (_c *MergedDataCreate) sqlSave(ctx context.Context) (*MergedData, error) {
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
			return nil, fmt.Errorf("unexpected MergedData.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MergedDataCreate) createSpec() (*MergedData, *sqlgraph.CreateSpec) {
	var (
		_node = &MergedData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergeddata.Table, sqlgraph.NewFieldSpec(mergeddata.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MergedText(); ok {
		_spec.SetField(mergeddata.FieldMergedText, field.TypeString, value)
		_node.MergedText = value
	}
	if value, ok := _c.mutation.StructuredData(); ok {
		_spec.SetField(mergeddata.FieldStructuredData, field.TypeJSON, value)
		_node.StructuredData = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(mergeddata.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourceReferences(); ok {
		_spec.SetField(mergeddata.FieldSourceReferences, field.TypeJSON, value)
		_node.SourceReferences = value
	}
	if value, ok := _c.mutation.MergeMethod(); ok {
		_spec.SetField(mergeddata.FieldMergeMethod, field.TypeEnum, value)
		_node.MergeMethod = value
	}
	if value, ok := _c.mutation.KeyFindings(); ok {
		_spec.SetField(mergeddata.FieldKeyFindings, field.TypeJSON, value)
		_node.KeyFindings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergeddata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CategoryResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   mergeddata.CategoryResultTable,
			Columns: []string{mergeddata.CategoryResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CategoryResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MergedDataCreateBulk is the builder for creating many MergedData entities in bulk.
type MergedDataCreateBulk struct {
	config
	err      error
	builders []*MergedDataCreate
}

// Save creates the MergedData entities in the database.
func (_c *MergedDataCreateBulk) Save(ctx context.Context) ([]*MergedData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergedData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergedDataMutation)
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
func (_c *MergedDataCreateBulk) SaveX(ctx context.Context) []*MergedData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergedDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergedDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
