// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
)

// FinalOutputCreate is the builder for creating a FinalOutput entity.
type FinalOutputCreate struct {
	config
	mutation *FinalOutputMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *FinalOutputCreate) SetRequestID(v string) *FinalOutputCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDocument sets the "document" field.
func (_c *FinalOutputCreate) SetDocument(v map[string]interface{}) *FinalOutputCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetTdScore sets the "td_score" field.
func (_c *FinalOutputCreate) SetTdScore(v float64) *FinalOutputCreate {
	_c.mutation.SetTdScore(v)
	return _c
}

// SetNillableTdScore sets the "td_score" field if the given value is not nil.
func (_c *FinalOutputCreate) SetNillableTdScore(v *float64) *FinalOutputCreate {
	if v != nil {
		_c.SetTdScore(*v)
	}
	return _c
}

// SetTmScore sets the "tm_score" field.
func (_c *FinalOutputCreate) SetTmScore(v float64) *FinalOutputCreate {
	_c.mutation.SetTmScore(v)
	return _c
}

// SetNillableTmScore sets the "tm_score" field if the given value is not nil.
func (_c *FinalOutputCreate) SetNillableTmScore(v *float64) *FinalOutputCreate {
	if v != nil {
		_c.SetTmScore(*v)
	}
	return _c
}

// SetTdVerdict sets the "td_verdict" field.
func (_c *FinalOutputCreate) SetTdVerdict(v string) *FinalOutputCreate {
	_c.mutation.SetTdVerdict(v)
	return _c
}

// SetTmVerdict sets the "tm_verdict" field.
func (_c *FinalOutputCreate) SetTmVerdict(v string) *FinalOutputCreate {
	_c.mutation.SetTmVerdict(v)
	return _c
}

// SetGoDecision sets the "go_decision" field.
func (_c *FinalOutputCreate) SetGoDecision(v string) *FinalOutputCreate {
	_c.mutation.SetGoDecision(v)
	return _c
}

// SetInvestmentPriority sets the "investment_priority" field.
func (_c *FinalOutputCreate) SetInvestmentPriority(v string) *FinalOutputCreate {
	_c.mutation.SetInvestmentPriority(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *FinalOutputCreate) SetRiskLevel(v string) *FinalOutputCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *FinalOutputCreate) SetVersion(v int) *FinalOutputCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *FinalOutputCreate) SetNillableVersion(v *int) *FinalOutputCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *FinalOutputCreate) SetGeneratedAt(v time.Time) *FinalOutputCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *FinalOutputCreate) SetNillableGeneratedAt(v *time.Time) *FinalOutputCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FinalOutputCreate) SetID(v string) *FinalOutputCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the AnalysisRequest entity.
func (_c *FinalOutputCreate) SetRequest(v *AnalysisRequest) *FinalOutputCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the FinalOutputMutation object of the builder.
func (_c *FinalOutputCreate) Mutation() *FinalOutputMutation {
	return _c.mutation
}

// Save creates the FinalOutput in the database.
func (_c *FinalOutputCreate) Save(ctx context.Context) (*FinalOutput, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinalOutputCreate) SaveX(ctx context.Context) *FinalOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinalOutputCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinalOutputCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinalOutputCreate) defaults() {
	if _, ok := _c.mutation.TdScore(); !ok {
		v := finaloutput.DefaultTdScore
		_c.mutation.SetTdScore(v)
	}
	if _, ok := _c.mutation.TmScore(); !ok {
		v := finaloutput.DefaultTmScore
		_c.mutation.SetTmScore(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := finaloutput.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := finaloutput.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinalOutputCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "FinalOutput.request_id"`)}
	}
	if _, ok := _c.mutation.Document(); !ok {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required field "FinalOutput.document"`)}
	}
	if _, ok := _c.mutation.TdScore(); !ok {
		return &ValidationError{Name: "td_score", err: errors.New(`ent: missing required field "FinalOutput.td_score"`)}
	}
	if _, ok := _c.mutation.TmScore(); !ok {
		return &ValidationError{Name: "tm_score", err: errors.New(`ent: missing required field "FinalOutput.tm_score"`)}
	}
	if _, ok := _c.mutation.TdVerdict(); !ok {
		return &ValidationError{Name: "td_verdict", err: errors.New(`ent: missing required field "FinalOutput.td_verdict"`)}
	}
	if _, ok := _c.mutation.TmVerdict(); !ok {
		return &ValidationError{Name: "tm_verdict", err: errors.New(`ent: missing required field "FinalOutput.tm_verdict"`)}
	}
	if _, ok := _c.mutation.GoDecision(); !ok {
		return &ValidationError{Name: "go_decision", err: errors.New(`ent: missing required field "FinalOutput.go_decision"`)}
	}
	if _, ok := _c.mutation.InvestmentPriority(); !ok {
		return &ValidationError{Name: "investment_priority", err: errors.New(`ent: missing required field "FinalOutput.investment_priority"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "FinalOutput.risk_level"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "FinalOutput.version"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "FinalOutput.generated_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "FinalOutput.request"`)}
	}
	return nil
}

func (_c *FinalOutputCreate) sqlSave(ctx context.Context) (*FinalOutput, error) {
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
			return nil, fmt.Errorf("unexpected FinalOutput.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FinalOutputCreate) createSpec() (*FinalOutput, *sqlgraph.CreateSpec) {
	var (
		_node = &FinalOutput{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finaloutput.Table, sqlgraph.NewFieldSpec(finaloutput.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(finaloutput.FieldDocument, field.TypeJSON, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.TdScore(); ok {
		_spec.SetField(finaloutput.FieldTdScore, field.TypeFloat64, value)
		_node.TdScore = value
	}
	if value, ok := _c.mutation.TmScore(); ok {
		_spec.SetField(finaloutput.FieldTmScore, field.TypeFloat64, value)
		_node.TmScore = value
	}
	if value, ok := _c.mutation.TdVerdict(); ok {
		_spec.SetField(finaloutput.FieldTdVerdict, field.TypeString, value)
		_node.TdVerdict = value
	}
	if value, ok := _c.mutation.TmVerdict(); ok {
		_spec.SetField(finaloutput.FieldTmVerdict, field.TypeString, value)
		_node.TmVerdict = value
	}
	if value, ok := _c.mutation.GoDecision(); ok {
		_spec.SetField(finaloutput.FieldGoDecision, field.TypeString, value)
		_node.GoDecision = value
	}
	if value, ok := _c.mutation.InvestmentPriority(); ok {
		_spec.SetField(finaloutput.FieldInvestmentPriority, field.TypeString, value)
		_node.InvestmentPriority = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(finaloutput.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(finaloutput.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(finaloutput.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   finaloutput.RequestTable,
			Columns: []string{finaloutput.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FinalOutputCreateBulk is the builder for creating many FinalOutput entities in bulk.
type FinalOutputCreateBulk struct {
	config
	err      error
	builders []*FinalOutputCreate
}

// Save creates the FinalOutput entities in the database.
func (_c *FinalOutputCreateBulk) Save(ctx context.Context) ([]*FinalOutput, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinalOutput, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinalOutputMutation)
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
func (_c *FinalOutputCreateBulk) SaveX(ctx context.Context) []*FinalOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinalOutputCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinalOutputCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
