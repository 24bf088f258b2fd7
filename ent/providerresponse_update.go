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
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
)

// ProviderResponseUpdate is the builder for updating ProviderResponse entities.
type ProviderResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderResponseMutation
}

// Where appends a list predicates to the ProviderResponseUpdate builder.
func (_u *ProviderResponseUpdate) Where(ps ...predicate.ProviderResponse) *ProviderResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderResponseUpdate) SetProvider(v string) *ProviderResponseUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableProvider(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ProviderResponseUpdate) SetModel(v string) *ProviderResponseUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableModel(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ProviderResponseUpdate) SetTemperature(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableTemperature(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ProviderResponseUpdate) AddTemperature(v float64) *ProviderResponseUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ProviderResponseUpdate) ClearTemperature() *ProviderResponseUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetQueryParameters sets the "query_parameters" field.
func (_u *ProviderResponseUpdate) SetQueryParameters(v map[string]interface{}) *ProviderResponseUpdate {
	_u.mutation.SetQueryParameters(v)
	return _u
}

// ClearQueryParameters clears the value of the "query_parameters" field.
func (_u *ProviderResponseUpdate) ClearQueryParameters() *ProviderResponseUpdate {
	_u.mutation.ClearQueryParameters()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ProviderResponseUpdate) SetRawText(v string) *ProviderResponseUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableRawText(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetCitedUrls sets the "cited_urls" field.
func (_u *ProviderResponseUpdate) SetCitedUrls(v []string) *ProviderResponseUpdate {
	_u.mutation.SetCitedUrls(v)
	return _u
}

// AppendCitedUrls appends value to the "cited_urls" field.
func (_u *ProviderResponseUpdate) AppendCitedUrls(v []string) *ProviderResponseUpdate {
	_u.mutation.AppendCitedUrls(v)
	return _u
}

// ClearCitedUrls clears the value of the "cited_urls" field.
func (_u *ProviderResponseUpdate) ClearCitedUrls() *ProviderResponseUpdate {
	_u.mutation.ClearCitedUrls()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ProviderResponseUpdate) SetLatencyMs(v int) *ProviderResponseUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableLatencyMs(v *int) *ProviderResponseUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ProviderResponseUpdate) AddLatencyMs(v int) *ProviderResponseUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ProviderResponseUpdate) SetTokenCount(v int) *ProviderResponseUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableTokenCount(v *int) *ProviderResponseUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ProviderResponseUpdate) AddTokenCount(v int) *ProviderResponseUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *ProviderResponseUpdate) SetCost(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableCost(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ProviderResponseUpdate) AddCost(v float64) *ProviderResponseUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ProviderResponseUpdate) SetChecksum(v string) *ProviderResponseUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableChecksum(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetRetentionExpiresAt sets the "retention_expires_at" field.
func (_u *ProviderResponseUpdate) SetRetentionExpiresAt(v time.Time) *ProviderResponseUpdate {
	_u.mutation.SetRetentionExpiresAt(v)
	return _u
}

// SetNillableRetentionExpiresAt sets the "retention_expires_at" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableRetentionExpiresAt(v *time.Time) *ProviderResponseUpdate {
	if v != nil {
		_u.SetRetentionExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ProviderResponseMutation object of the builder.
func (_u *ProviderResponseUpdate) Mutation() *ProviderResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderResponseUpdate) check() error {
	if _u.mutation.CategoryResultCleared() && len(_u.mutation.CategoryResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProviderResponse.category_result"`)
	}
	return nil
}

func (_u *ProviderResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerresponse.Table, providerresponse.Columns, sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providerresponse.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(providerresponse.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(providerresponse.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(providerresponse.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(providerresponse.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QueryParameters(); ok {
		_spec.SetField(providerresponse.FieldQueryParameters, field.TypeJSON, value)
	}
	if _u.mutation.QueryParametersCleared() {
		_spec.ClearField(providerresponse.FieldQueryParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(providerresponse.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitedUrls(); ok {
		_spec.SetField(providerresponse.FieldCitedUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitedUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldCitedUrls, value)
		})
	}
	if _u.mutation.CitedUrlsCleared() {
		_spec.ClearField(providerresponse.FieldCitedUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(providerresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(providerresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(providerresponse.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(providerresponse.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(providerresponse.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(providerresponse.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(providerresponse.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetentionExpiresAt(); ok {
		_spec.SetField(providerresponse.FieldRetentionExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderResponseUpdateOne is the builder for updating a single ProviderResponse entity.
type ProviderResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderResponseMutation
}

// SetProvider sets the "provider" field.
func (_u *ProviderResponseUpdateOne) SetProvider(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableProvider(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ProviderResponseUpdateOne) SetModel(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableModel(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ProviderResponseUpdateOne) SetTemperature(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableTemperature(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ProviderResponseUpdateOne) AddTemperature(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ProviderResponseUpdateOne) ClearTemperature() *ProviderResponseUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetQueryParameters sets the "query_parameters" field.
func (_u *ProviderResponseUpdateOne) SetQueryParameters(v map[string]interface{}) *ProviderResponseUpdateOne {
	_u.mutation.SetQueryParameters(v)
	return _u
}

// ClearQueryParameters clears the value of the "query_parameters" field.
func (_u *ProviderResponseUpdateOne) ClearQueryParameters() *ProviderResponseUpdateOne {
	_u.mutation.ClearQueryParameters()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ProviderResponseUpdateOne) SetRawText(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableRawText(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetCitedUrls sets the "cited_urls" field.
func (_u *ProviderResponseUpdateOne) SetCitedUrls(v []string) *ProviderResponseUpdateOne {
	_u.mutation.SetCitedUrls(v)
	return _u
}

// AppendCitedUrls appends value to the "cited_urls" field.
func (_u *ProviderResponseUpdateOne) AppendCitedUrls(v []string) *ProviderResponseUpdateOne {
	_u.mutation.AppendCitedUrls(v)
	return _u
}

// ClearCitedUrls clears the value of the "cited_urls" field.
func (_u *ProviderResponseUpdateOne) ClearCitedUrls() *ProviderResponseUpdateOne {
	_u.mutation.ClearCitedUrls()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ProviderResponseUpdateOne) SetLatencyMs(v int) *ProviderResponseUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableLatencyMs(v *int) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ProviderResponseUpdateOne) AddLatencyMs(v int) *ProviderResponseUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ProviderResponseUpdateOne) SetTokenCount(v int) *ProviderResponseUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableTokenCount(v *int) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ProviderResponseUpdateOne) AddTokenCount(v int) *ProviderResponseUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *ProviderResponseUpdateOne) SetCost(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableCost(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ProviderResponseUpdateOne) AddCost(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ProviderResponseUpdateOne) SetChecksum(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableChecksum(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetRetentionExpiresAt sets the "retention_expires_at" field.
func (_u *ProviderResponseUpdateOne) SetRetentionExpiresAt(v time.Time) *ProviderResponseUpdateOne {
	_u.mutation.SetRetentionExpiresAt(v)
	return _u
}

// SetNillableRetentionExpiresAt sets the "retention_expires_at" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableRetentionExpiresAt(v *time.Time) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetRetentionExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ProviderResponseMutation object of the builder.
func (_u *ProviderResponseUpdateOne) Mutation() *ProviderResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderResponseUpdate builder.
func (_u *ProviderResponseUpdateOne) Where(ps ...predicate.ProviderResponse) *ProviderResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderResponseUpdateOne) Select(field string, fields ...string) *ProviderResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderResponse entity.
func (_u *ProviderResponseUpdateOne) Save(ctx context.Context) (*ProviderResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderResponseUpdateOne) SaveX(ctx context.Context) *ProviderResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderResponseUpdateOne) check() error {
	if _u.mutation.CategoryResultCleared() && len(_u.mutation.CategoryResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProviderResponse.category_result"`)
	}
	return nil
}

func (_u *ProviderResponseUpdateOne) sqlSave(ctx context.Context) (_node *ProviderResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerresponse.Table, providerresponse.Columns, sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerresponse.FieldID)
		for _, f := range fields {
			if !providerresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providerresponse.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providerresponse.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(providerresponse.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(providerresponse.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(providerresponse.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(providerresponse.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QueryParameters(); ok {
		_spec.SetField(providerresponse.FieldQueryParameters, field.TypeJSON, value)
	}
	if _u.mutation.QueryParametersCleared() {
		_spec.ClearField(providerresponse.FieldQueryParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(providerresponse.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitedUrls(); ok {
		_spec.SetField(providerresponse.FieldCitedUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitedUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldCitedUrls, value)
		})
	}
	if _u.mutation.CitedUrlsCleared() {
		_spec.ClearField(providerresponse.FieldCitedUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(providerresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(providerresponse.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(providerresponse.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(providerresponse.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(providerresponse.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(providerresponse.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(providerresponse.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetentionExpiresAt(); ok {
		_spec.SetField(providerresponse.FieldRetentionExpiresAt, field.TypeTime, value)
	}
	_node = &ProviderResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
