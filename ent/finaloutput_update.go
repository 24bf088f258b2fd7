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
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// FinalOutputUpdate is the builder for updating FinalOutput entities.
type FinalOutputUpdate struct {
	config
	hooks    []Hook
	mutation *FinalOutputMutation
}

// Where appends a list predicates to the FinalOutputUpdate builder.
func (_u *FinalOutputUpdate) Where(ps ...predicate.FinalOutput) *FinalOutputUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocument sets the "document" field.
func (_u *FinalOutputUpdate) SetDocument(v map[string]interface{}) *FinalOutputUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetTdScore sets the "td_score" field.
func (_u *FinalOutputUpdate) SetTdScore(v float64) *FinalOutputUpdate {
	_u.mutation.ResetTdScore()
	_u.mutation.SetTdScore(v)
	return _u
}

// SetNillableTdScore sets the "td_score" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableTdScore(v *float64) *FinalOutputUpdate {
	if v != nil {
		_u.SetTdScore(*v)
	}
	return _u
}

// AddTdScore adds value to the "td_score" field.
func (_u *FinalOutputUpdate) AddTdScore(v float64) *FinalOutputUpdate {
	_u.mutation.AddTdScore(v)
	return _u
}

// SetTmScore sets the "tm_score" field.
func (_u *FinalOutputUpdate) SetTmScore(v float64) *FinalOutputUpdate {
	_u.mutation.ResetTmScore()
	_u.mutation.SetTmScore(v)
	return _u
}

// SetNillableTmScore sets the "tm_score" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableTmScore(v *float64) *FinalOutputUpdate {
	if v != nil {
		_u.SetTmScore(*v)
	}
	return _u
}

// AddTmScore adds value to the "tm_score" field.
func (_u *FinalOutputUpdate) AddTmScore(v float64) *FinalOutputUpdate {
	_u.mutation.AddTmScore(v)
	return _u
}

// SetTdVerdict sets the "td_verdict" field.
func (_u *FinalOutputUpdate) SetTdVerdict(v string) *FinalOutputUpdate {
	_u.mutation.SetTdVerdict(v)
	return _u
}

// SetNillableTdVerdict sets the "td_verdict" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableTdVerdict(v *string) *FinalOutputUpdate {
	if v != nil {
		_u.SetTdVerdict(*v)
	}
	return _u
}

// SetTmVerdict sets the "tm_verdict" field.
func (_u *FinalOutputUpdate) SetTmVerdict(v string) *FinalOutputUpdate {
	_u.mutation.SetTmVerdict(v)
	return _u
}

// SetNillableTmVerdict sets the "tm_verdict" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableTmVerdict(v *string) *FinalOutputUpdate {
	if v != nil {
		_u.SetTmVerdict(*v)
	}
	return _u
}

// SetGoDecision sets the "go_decision" field.
func (_u *FinalOutputUpdate) SetGoDecision(v string) *FinalOutputUpdate {
	_u.mutation.SetGoDecision(v)
	return _u
}

// SetNillableGoDecision sets the "go_decision" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableGoDecision(v *string) *FinalOutputUpdate {
	if v != nil {
		_u.SetGoDecision(*v)
	}
	return _u
}

// SetInvestmentPriority sets the "investment_priority" field.
func (_u *FinalOutputUpdate) SetInvestmentPriority(v string) *FinalOutputUpdate {
	_u.mutation.SetInvestmentPriority(v)
	return _u
}

// SetNillableInvestmentPriority sets the "investment_priority" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableInvestmentPriority(v *string) *FinalOutputUpdate {
	if v != nil {
		_u.SetInvestmentPriority(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *FinalOutputUpdate) SetRiskLevel(v string) *FinalOutputUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableRiskLevel(v *string) *FinalOutputUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *FinalOutputUpdate) SetVersion(v int) *FinalOutputUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableVersion(v *int) *FinalOutputUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FinalOutputUpdate) AddVersion(v int) *FinalOutputUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *FinalOutputUpdate) SetGeneratedAt(v time.Time) *FinalOutputUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *FinalOutputUpdate) SetNillableGeneratedAt(v *time.Time) *FinalOutputUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// Mutation returns the FinalOutputMutation object of the builder.
func (_u *FinalOutputUpdate) Mutation() *FinalOutputMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinalOutputUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinalOutputUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinalOutputUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinalOutputUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinalOutputUpdate) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinalOutput.request"`)
	}
	return nil
}

func (_u *FinalOutputUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finaloutput.Table, finaloutput.Columns, sqlgraph.NewFieldSpec(finaloutput.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(finaloutput.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TdScore(); ok {
		_spec.SetField(finaloutput.FieldTdScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTdScore(); ok {
		_spec.AddField(finaloutput.FieldTdScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TmScore(); ok {
		_spec.SetField(finaloutput.FieldTmScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTmScore(); ok {
		_spec.AddField(finaloutput.FieldTmScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TdVerdict(); ok {
		_spec.SetField(finaloutput.FieldTdVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.TmVerdict(); ok {
		_spec.SetField(finaloutput.FieldTmVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoDecision(); ok {
		_spec.SetField(finaloutput.FieldGoDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestmentPriority(); ok {
		_spec.SetField(finaloutput.FieldInvestmentPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(finaloutput.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(finaloutput.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(finaloutput.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(finaloutput.FieldGeneratedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finaloutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinalOutputUpdateOne is the builder for updating a single FinalOutput entity.
type FinalOutputUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinalOutputMutation
}

// SetDocument sets the "document" field.
func (_u *FinalOutputUpdateOne) SetDocument(v map[string]interface{}) *FinalOutputUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetTdScore sets the "td_score" field.
func (_u *FinalOutputUpdateOne) SetTdScore(v float64) *FinalOutputUpdateOne {
	_u.mutation.ResetTdScore()
	_u.mutation.SetTdScore(v)
	return _u
}

// SetNillableTdScore sets the "td_score" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableTdScore(v *float64) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetTdScore(*v)
	}
	return _u
}

// AddTdScore adds value to the "td_score" field.
func (_u *FinalOutputUpdateOne) AddTdScore(v float64) *FinalOutputUpdateOne {
	_u.mutation.AddTdScore(v)
	return _u
}

// SetTmScore sets the "tm_score" field.
func (_u *FinalOutputUpdateOne) SetTmScore(v float64) *FinalOutputUpdateOne {
	_u.mutation.ResetTmScore()
	_u.mutation.SetTmScore(v)
	return _u
}

// SetNillableTmScore sets the "tm_score" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableTmScore(v *float64) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetTmScore(*v)
	}
	return _u
}

// AddTmScore adds value to the "tm_score" field.
func (_u *FinalOutputUpdateOne) AddTmScore(v float64) *FinalOutputUpdateOne {
	_u.mutation.AddTmScore(v)
	return _u
}

// SetTdVerdict sets the "td_verdict" field.
func (_u *FinalOutputUpdateOne) SetTdVerdict(v string) *FinalOutputUpdateOne {
	_u.mutation.SetTdVerdict(v)
	return _u
}

// SetNillableTdVerdict sets the "td_verdict" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableTdVerdict(v *string) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetTdVerdict(*v)
	}
	return _u
}

// SetTmVerdict sets the "tm_verdict" field.
func (_u *FinalOutputUpdateOne) SetTmVerdict(v string) *FinalOutputUpdateOne {
	_u.mutation.SetTmVerdict(v)
	return _u
}

// SetNillableTmVerdict sets the "tm_verdict" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableTmVerdict(v *string) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetTmVerdict(*v)
	}
	return _u
}

// SetGoDecision sets the "go_decision" field.
func (_u *FinalOutputUpdateOne) SetGoDecision(v string) *FinalOutputUpdateOne {
	_u.mutation.SetGoDecision(v)
	return _u
}

// SetNillableGoDecision sets the "go_decision" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableGoDecision(v *string) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetGoDecision(*v)
	}
	return _u
}

// SetInvestmentPriority sets the "investment_priority" field.
func (_u *FinalOutputUpdateOne) SetInvestmentPriority(v string) *FinalOutputUpdateOne {
	_u.mutation.SetInvestmentPriority(v)
	return _u
}

// SetNillableInvestmentPriority sets the "investment_priority" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableInvestmentPriority(v *string) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetInvestmentPriority(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *FinalOutputUpdateOne) SetRiskLevel(v string) *FinalOutputUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableRiskLevel(v *string) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *FinalOutputUpdateOne) SetVersion(v int) *FinalOutputUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableVersion(v *int) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FinalOutputUpdateOne) AddVersion(v int) *FinalOutputUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *FinalOutputUpdateOne) SetGeneratedAt(v time.Time) *FinalOutputUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *FinalOutputUpdateOne) SetNillableGeneratedAt(v *time.Time) *FinalOutputUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// Mutation returns the FinalOutputMutation object of the builder.
func (_u *FinalOutputUpdateOne) Mutation() *FinalOutputMutation {
	return _u.mutation
}

// Where appends a list predicates to the FinalOutputUpdate builder.
func (_u *FinalOutputUpdateOne) Where(ps ...predicate.FinalOutput) *FinalOutputUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinalOutputUpdateOne) Select(field string, fields ...string) *FinalOutputUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinalOutput entity.
func (_u *FinalOutputUpdateOne) Save(ctx context.Context) (*FinalOutput, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinalOutputUpdateOne) SaveX(ctx context.Context) *FinalOutput {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinalOutputUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinalOutputUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinalOutputUpdateOne) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinalOutput.request"`)
	}
	return nil
}

func (_u *FinalOutputUpdateOne) sqlSave(ctx context.Context) (_node *FinalOutput, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finaloutput.Table, finaloutput.Columns, sqlgraph.NewFieldSpec(finaloutput.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinalOutput.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finaloutput.FieldID)
		for _, f := range fields {
			if !finaloutput.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finaloutput.FieldID {
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
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(finaloutput.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TdScore(); ok {
		_spec.SetField(finaloutput.FieldTdScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTdScore(); ok {
		_spec.AddField(finaloutput.FieldTdScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TmScore(); ok {
		_spec.SetField(finaloutput.FieldTmScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTmScore(); ok {
		_spec.AddField(finaloutput.FieldTmScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TdVerdict(); ok {
		_spec.SetField(finaloutput.FieldTdVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.TmVerdict(); ok {
		_spec.SetField(finaloutput.FieldTmVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoDecision(); ok {
		_spec.SetField(finaloutput.FieldGoDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestmentPriority(); ok {
		_spec.SetField(finaloutput.FieldInvestmentPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(finaloutput.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(finaloutput.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(finaloutput.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(finaloutput.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &FinalOutput{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finaloutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
