// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
)

// CategoryResultQuery is the builder for querying CategoryResult entities.
type CategoryResultQuery struct {
	config
	ctx                   *QueryContext
	order                 []categoryresult.OrderOption
	inters                []Interceptor
	predicates            []predicate.CategoryResult
	withRequest           *AnalysisRequestQuery
	withProviderResponses *ProviderResponseQuery
	withMergedData        *MergedDataQuery
	withConflicts         *SourceConflictQuery
	modifiers             []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CategoryResultQuery builder.
func (_q *CategoryResultQuery) Where(ps ...predicate.CategoryResult) *CategoryResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CategoryResultQuery) Limit(limit int) *CategoryResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CategoryResultQuery) Offset(offset int) *CategoryResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CategoryResultQuery) Unique(unique bool) *CategoryResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CategoryResultQuery) Order(o ...categoryresult.OrderOption) *CategoryResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRequest chains the current query on the "request" edge.
func (_q *CategoryResultQuery) QueryRequest() *AnalysisRequestQuery {
	query := (&AnalysisRequestClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, selector),
			sqlgraph.To(analysisrequest.Table, analysisrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, categoryresult.RequestTable, categoryresult.RequestColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProviderResponses chains the current query on the "provider_responses" edge.
func (_q *CategoryResultQuery) QueryProviderResponses() *ProviderResponseQuery {
	query := (&ProviderResponseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, selector),
			sqlgraph.To(providerresponse.Table, providerresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, categoryresult.ProviderResponsesTable, categoryresult.ProviderResponsesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMergedData chains the current query on the "merged_data" edge.
func (_q *CategoryResultQuery) QueryMergedData() *MergedDataQuery {
	query := (&MergedDataClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, selector),
			sqlgraph.To(mergeddata.Table, mergeddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, categoryresult.MergedDataTable, categoryresult.MergedDataColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConflicts chains the current query on the "conflicts" edge.
func (_q *CategoryResultQuery) QueryConflicts() *SourceConflictQuery {
	query := (&SourceConflictClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, selector),
			sqlgraph.To(sourceconflict.Table, sourceconflict.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, categoryresult.ConflictsTable, categoryresult.ConflictsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CategoryResult entity from the query.
// Returns a *NotFoundError when no CategoryResult was found.
func (_q *CategoryResultQuery) First(ctx context.Context) (*CategoryResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{categoryresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CategoryResultQuery) FirstX(ctx context.Context) *CategoryResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CategoryResult ID from the query.
// Returns a *NotFoundError when no CategoryResult ID was found.
func (_q *CategoryResultQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{categoryresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CategoryResultQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CategoryResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CategoryResult entity is found.
// Returns a *NotFoundError when no CategoryResult entities are found.
func (_q *CategoryResultQuery) Only(ctx context.Context) (*CategoryResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{categoryresult.Label}
	default:
		return nil, &NotSingularError{categoryresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CategoryResultQuery) OnlyX(ctx context.Context) *CategoryResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CategoryResult ID in the query.
// Returns a *NotSingularError when more than one CategoryResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CategoryResultQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{categoryresult.Label}
	default:
		err = &NotSingularError{categoryresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CategoryResultQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CategoryResults.
func (_q *CategoryResultQuery) All(ctx context.Context) ([]*CategoryResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CategoryResult, *CategoryResultQuery]()
	return withInterceptors[[]*CategoryResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CategoryResultQuery) AllX(ctx context.Context) []*CategoryResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CategoryResult IDs.
func (_q *CategoryResultQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(categoryresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CategoryResultQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CategoryResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CategoryResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CategoryResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CategoryResultQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CategoryResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CategoryResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CategoryResultQuery) Clone() *CategoryResultQuery {
	if _q == nil {
		return nil
	}
	return &CategoryResultQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]categoryresult.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.CategoryResult{}, _q.predicates...),
		withRequest:           _q.withRequest.Clone(),
		withProviderResponses: _q.withProviderResponses.Clone(),
		withMergedData:        _q.withMergedData.Clone(),
		withConflicts:         _q.withConflicts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRequest tells the query-builder to eager-load the nodes that are connected to
// the "request" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CategoryResultQuery) WithRequest(opts ...func(*AnalysisRequestQuery)) *CategoryResultQuery {
	query := (&AnalysisRequestClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequest = query
	return _q
}

// WithProviderResponses tells the query-builder to eager-load the nodes that are connected to
// the "provider_responses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CategoryResultQuery) WithProviderResponses(opts ...func(*ProviderResponseQuery)) *CategoryResultQuery {
	query := (&ProviderResponseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProviderResponses = query
	return _q
}

// WithMergedData tells the query-builder to eager-load the nodes that are connected to
// the "merged_data" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CategoryResultQuery) WithMergedData(opts ...func(*MergedDataQuery)) *CategoryResultQuery {
	query := (&MergedDataClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMergedData = query
	return _q
}

// WithConflicts tells the query-builder to eager-load the nodes that are connected to
// the "conflicts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CategoryResultQuery) WithConflicts(opts ...func(*SourceConflictQuery)) *CategoryResultQuery {
	query := (&SourceConflictClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConflicts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RequestID string `json:"request_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CategoryResult.Query().
//		GroupBy(categoryresult.FieldRequestID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CategoryResultQuery) GroupBy(field string, fields ...string) *CategoryResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CategoryResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = categoryresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RequestID string `json:"request_id,omitempty"`
//	}
//
//	client.CategoryResult.Query().
//		Select(categoryresult.FieldRequestID).
//		Scan(ctx, &v)
func (_q *CategoryResultQuery) Select(fields ...string) *CategoryResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CategoryResultSelect{CategoryResultQuery: _q}
	sbuild.label = categoryresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CategoryResultSelect configured with the given aggregations.
func (_q *CategoryResultQuery) Aggregate(fns ...AggregateFunc) *CategoryResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CategoryResultQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !categoryresult.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CategoryResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CategoryResult, error) {
	var (
		nodes       = []*CategoryResult{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withRequest != nil,
			_q.withProviderResponses != nil,
			_q.withMergedData != nil,
			_q.withConflicts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CategoryResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CategoryResult{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRequest; query != nil {
		if err := _q.loadRequest(ctx, query, nodes, nil,
			func(n *CategoryResult, e *AnalysisRequest) { n.Edges.Request = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProviderResponses; query != nil {
		if err := _q.loadProviderResponses(ctx, query, nodes,
			func(n *CategoryResult) { n.Edges.ProviderResponses = []*ProviderResponse{} },
			func(n *CategoryResult, e *ProviderResponse) {
				n.Edges.ProviderResponses = append(n.Edges.ProviderResponses, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withMergedData; query != nil {
		if err := _q.loadMergedData(ctx, query, nodes, nil,
			func(n *CategoryResult, e *MergedData) { n.Edges.MergedData = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConflicts; query != nil {
		if err := _q.loadConflicts(ctx, query, nodes,
			func(n *CategoryResult) { n.Edges.Conflicts = []*SourceConflict{} },
			func(n *CategoryResult, e *SourceConflict) { n.Edges.Conflicts = append(n.Edges.Conflicts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CategoryResultQuery) loadRequest(ctx context.Context, query *AnalysisRequestQuery, nodes []*CategoryResult, init func(*CategoryResult), assign func(*CategoryResult, *AnalysisRequest)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CategoryResult)
	for i := range nodes {
		fk := nodes[i].RequestID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(analysisrequest.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "request_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CategoryResultQuery) loadProviderResponses(ctx context.Context, query *ProviderResponseQuery, nodes []*CategoryResult, init func(*CategoryResult), assign func(*CategoryResult, *ProviderResponse)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CategoryResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(providerresponse.FieldCategoryResultID)
	}
	query.Where(predicate.ProviderResponse(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(categoryresult.ProviderResponsesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CategoryResultID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "category_result_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CategoryResultQuery) loadMergedData(ctx context.Context, query *MergedDataQuery, nodes []*CategoryResult, init func(*CategoryResult), assign func(*CategoryResult, *MergedData)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CategoryResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(mergeddata.FieldCategoryResultID)
	}
	query.Where(predicate.MergedData(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(categoryresult.MergedDataColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CategoryResultID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "category_result_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CategoryResultQuery) loadConflicts(ctx context.Context, query *SourceConflictQuery, nodes []*CategoryResult, init func(*CategoryResult), assign func(*CategoryResult, *SourceConflict)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CategoryResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(sourceconflict.FieldCategoryResultID)
	}
	query.Where(predicate.SourceConflict(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(categoryresult.ConflictsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CategoryResultID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "category_result_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CategoryResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CategoryResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(categoryresult.Table, categoryresult.Columns, sqlgraph.NewFieldSpec(categoryresult.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryresult.FieldID)
		for i := range fields {
			if fields[i] != categoryresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRequest != nil {
			_spec.Node.AddColumnOnce(categoryresult.FieldRequestID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CategoryResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(categoryresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = categoryresult.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *CategoryResultQuery) ForUpdate(opts ...sql.LockOption) *CategoryResultQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *CategoryResultQuery) ForShare(opts ...sql.LockOption) *CategoryResultQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CategoryResultGroupBy is the group-by builder for CategoryResult entities.
type CategoryResultGroupBy struct {
	selector
	build *CategoryResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CategoryResultGroupBy) Aggregate(fns ...AggregateFunc) *CategoryResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CategoryResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CategoryResultQuery, *CategoryResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CategoryResultGroupBy) sqlScan(ctx context.Context, root *CategoryResultQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CategoryResultSelect is the builder for selecting fields of CategoryResult entities.
type CategoryResultSelect struct {
	*CategoryResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CategoryResultSelect) Aggregate(fns ...AggregateFunc) *CategoryResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CategoryResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CategoryResultQuery, *CategoryResultSelect](ctx, _s.CategoryResultQuery, _s, _s.inters, v)
}

func (_s *CategoryResultSelect) sqlScan(ctx context.Context, root *CategoryResultQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
