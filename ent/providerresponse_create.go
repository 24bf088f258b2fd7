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
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
)

// ProviderResponseCreate is the builder for creating a ProviderResponse entity.
type ProviderResponseCreate struct {
	config
	mutation *ProviderResponseMutation
	hooks    []Hook
}

// SetCategoryResultID sets the "category_result_id" field.
func (_c *ProviderResponseCreate) SetCategoryResultID(v string) *ProviderResponseCreate {
	_c.mutation.SetCategoryResultID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProviderResponseCreate) SetProvider(v string) *ProviderResponseCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ProviderResponseCreate) SetModel(v string) *ProviderResponseCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *ProviderResponseCreate) SetTemperature(v float64) *ProviderResponseCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableTemperature(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetQueryParameters sets the "query_parameters" field.
func (_c *ProviderResponseCreate) SetQueryParameters(v map[string]interface{}) *ProviderResponseCreate {
	_c.mutation.SetQueryParameters(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ProviderResponseCreate) SetRawText(v string) *ProviderResponseCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetCitedUrls sets the "cited_urls" field.
func (_c *ProviderResponseCreate) SetCitedUrls(v []string) *ProviderResponseCreate {
	_c.mutation.SetCitedUrls(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ProviderResponseCreate) SetLatencyMs(v int) *ProviderResponseCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableLatencyMs(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ProviderResponseCreate) SetTokenCount(v int) *ProviderResponseCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableTokenCount(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *ProviderResponseCreate) SetCost(v float64) *ProviderResponseCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableCost(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *ProviderResponseCreate) SetChecksum(v string) *ProviderResponseCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderResponseCreate) SetCreatedAt(v time.Time) *ProviderResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableCreatedAt(v *time.Time) *ProviderResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRetentionExpiresAt sets the "retention_expires_at" field.
func (_c *ProviderResponseCreate) SetRetentionExpiresAt(v time.Time) *ProviderResponseCreate {
	_c.mutation.SetRetentionExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderResponseCreate) SetID(v string) *ProviderResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCategoryResult sets the "category_result" edge to the CategoryResult entity.
func (_c *ProviderResponseCreate) SetCategoryResult(v *CategoryResult) *ProviderResponseCreate {
	return _c.SetCategoryResultID(v.ID)
}

// Mutation returns the ProviderResponseMutation object of the builder.
func (_c *ProviderResponseCreate) Mutation() *ProviderResponseMutation {
	return _c.mutation
}

// Save creates the ProviderResponse in the database.
func (_c *ProviderResponseCreate) Save(ctx context.Context) (*ProviderResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderResponseCreate) SaveX(ctx context.Context) *ProviderResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderResponseCreate) defaults() {
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := providerresponse.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := providerresponse.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := providerresponse.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := providerresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderResponseCreate) check() error {
	if _, ok := _c.mutation.CategoryResultID(); !ok {
		return &ValidationError{Name: "category_result_id", err: errors.New(`ent: missing required field "ProviderResponse.category_result_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderResponse.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ProviderResponse.model"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "ProviderResponse.raw_text"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ProviderResponse.latency_ms"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "ProviderResponse.token_count"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "ProviderResponse.cost"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "ProviderResponse.checksum"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderResponse.created_at"`)}
	}
	if _, ok := _c.mutation.RetentionExpiresAt(); !ok {
		return &ValidationError{Name: "retention_expires_at", err: errors.New(`ent: missing required field "ProviderResponse.retention_expires_at"`)}
	}
	if len(_c.mutation.CategoryResultIDs()) == 0 {
		return &ValidationError{Name: "category_result", err: errors.New(`ent: missing required edge "ProviderResponse.category_result"`)}
	}
	return nil
}

func (_c *ProviderResponseCreate) sqlSave(ctx context.Context) (*ProviderResponse, error) {
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
			return nil, fmt.Errorf("unexpected ProviderResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderResponseCreate) createSpec() (*ProviderResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providerresponse.Table, sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(providerresponse.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(providerresponse.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(providerresponse.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.QueryParameters(); ok {
		_spec.SetField(providerresponse.FieldQueryParameters, field.TypeJSON, value)
		_node.QueryParameters = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(providerresponse.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.CitedUrls(); ok {
		_spec.SetField(providerresponse.FieldCitedUrls, field.TypeJSON, value)
		_node.CitedUrls = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(providerresponse.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(providerresponse.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(providerresponse.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(providerresponse.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(providerresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RetentionExpiresAt(); ok {
		_spec.SetField(providerresponse.FieldRetentionExpiresAt, field.TypeTime, value)
		_node.RetentionExpiresAt = value
	}
	if nodes := _c.mutation.CategoryResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   providerresponse.CategoryResultTable,
			Columns: []string{providerresponse.CategoryResultColumn},
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

// ProviderResponseCreateBulk is the builder for creating many ProviderResponse entities in bulk.
type ProviderResponseCreateBulk struct {
	config
	err      error
	builders []*ProviderResponseCreate
}

// Save creates the ProviderResponse entities in the database.
func (_c *ProviderResponseCreateBulk) Save(ctx context.Context) ([]*ProviderResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderResponseMutation)
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
func (_c *ProviderResponseCreateBulk) SaveX(ctx context.Context) []*ProviderResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
