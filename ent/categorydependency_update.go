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
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// CategoryDependencyUpdate is the builder for updating CategoryDependency entities.
type CategoryDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryDependencyMutation
}

// Where appends a list predicates to the CategoryDependencyUpdate builder.
func (_u *CategoryDependencyUpdate) Where(ps ...predicate.CategoryDependency) *CategoryDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CategoryDependencyMutation object of the builder.
func (_u *CategoryDependencyUpdate) Mutation() *CategoryDependencyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryDependencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryDependencyUpdate) check() error {
	if _u.mutation.DependentCleared() && len(_u.mutation.DependentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryDependency.dependent"`)
	}
	if _u.mutation.RequiredCleared() && len(_u.mutation.RequiredIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryDependency.required"`)
	}
	return nil
}

func (_u *CategoryDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorydependency.Table, categorydependency.Columns, sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorydependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryDependencyUpdateOne is the builder for updating a single CategoryDependency entity.
type CategoryDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryDependencyMutation
}

// Mutation returns the CategoryDependencyMutation object of the builder.
func (_u *CategoryDependencyUpdateOne) Mutation() *CategoryDependencyMutation {
	return _u.mutation
}

// Where appends a list predicates to the CategoryDependencyUpdate builder.
func (_u *CategoryDependencyUpdateOne) Where(ps ...predicate.CategoryDependency) *CategoryDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryDependencyUpdateOne) Select(field string, fields ...string) *CategoryDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryDependency entity.
func (_u *CategoryDependencyUpdateOne) Save(ctx context.Context) (*CategoryDependency, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryDependencyUpdateOne) SaveX(ctx context.Context) *CategoryDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryDependencyUpdateOne) check() error {
	if _u.mutation.DependentCleared() && len(_u.mutation.DependentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryDependency.dependent"`)
	}
	if _u.mutation.RequiredCleared() && len(_u.mutation.RequiredIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryDependency.required"`)
	}
	return nil
}

func (_u *CategoryDependencyUpdateOne) sqlSave(ctx context.Context) (_node *CategoryDependency, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorydependency.Table, categorydependency.Columns, sqlgraph.NewFieldSpec(categorydependency.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categorydependency.FieldID)
		for _, f := range fields {
			if !categorydependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categorydependency.FieldID {
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
	_node = &CategoryDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorydependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
