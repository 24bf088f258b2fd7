// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// AnalysisRequestDelete is the builder for deleting a AnalysisRequest entity.
type AnalysisRequestDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisRequestMutation
}

// Where appends a list predicates to the AnalysisRequestDelete builder.
func (_d *AnalysisRequestDelete) Where(ps ...predicate.AnalysisRequest) *AnalysisRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisrequest.Table, sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString))
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

// AnalysisRequestDeleteOne is the builder for deleting a single AnalysisRequest entity.
type AnalysisRequestDeleteOne struct {
	_d *AnalysisRequestDelete
}

// Where appends a list predicates to the AnalysisRequestDelete builder.
func (_d *AnalysisRequestDeleteOne) Where(ps ...predicate.AnalysisRequest) *AnalysisRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
