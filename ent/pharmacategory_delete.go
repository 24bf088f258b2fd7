// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// PharmaCategoryDelete is the builder for deleting a PharmaCategory entity.
type PharmaCategoryDelete struct {
	config
	hooks    []Hook
	mutation *PharmaCategoryMutation
}

// Where appends a list predicates to the PharmaCategoryDelete builder.
func (_d *PharmaCategoryDelete) Where(ps ...predicate.PharmaCategory) *PharmaCategoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PharmaCategoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PharmaCategoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PharmaCategoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pharmacategory.Table, sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PharmaCategoryDeleteOne is the builder for deleting a single PharmaCategory entity.
type PharmaCategoryDeleteOne struct {
	_d *PharmaCategoryDelete
}

// Where appends a list predicates to the PharmaCategoryDelete builder.
func (_d *PharmaCategoryDeleteOne) Where(ps ...predicate.PharmaCategory) *PharmaCategoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PharmaCategoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pharmacategory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PharmaCategoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
