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
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
)

// AnalysisRequestQuery is the builder for querying AnalysisRequest entities.
type AnalysisRequestQuery struct {
	config
	ctx                  *QueryContext
	order                []analysisrequest.OrderOption
	inters               []Interceptor
	predicates           []predicate.AnalysisRequest
	withTracking         *ProcessTrackingQuery
	withCategoryResults  *CategoryResultQuery
	withParameterResults *ParameterResultQuery
	withStageEvents      *StageEventQuery
	withFinalOutput      *FinalOutputQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnalysisRequestQuery builder.
func (_q *AnalysisRequestQuery) Where(ps ...predicate.AnalysisRequest) *AnalysisRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AnalysisRequestQuery) Limit(limit int) *AnalysisRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AnalysisRequestQuery) Offset(offset int) *AnalysisRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AnalysisRequestQuery) Unique(unique bool) *AnalysisRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AnalysisRequestQuery) Order(o ...analysisrequest.OrderOption) *AnalysisRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTracking chains the current query on the "tracking" edge.
func (_q *AnalysisRequestQuery) QueryTracking() *ProcessTrackingQuery {
	query := (&ProcessTrackingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, selector),
			sqlgraph.To(processtracking.Table, processtracking.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, analysisrequest.TrackingTable, analysisrequest.TrackingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCategoryResults chains the current query on the "category_results" edge.
func (_q *AnalysisRequestQuery) QueryCategoryResults() *CategoryResultQuery {
	query := (&CategoryResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, selector),
			sqlgraph.To(categoryresult.Table, categoryresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrequest.CategoryResultsTable, analysisrequest.CategoryResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParameterResults chains the current query on the "parameter_results" edge.
func (_q *AnalysisRequestQuery) QueryParameterResults() *ParameterResultQuery {
	query := (&ParameterResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, selector),
			sqlgraph.To(parameterresult.Table, parameterresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrequest.ParameterResultsTable, analysisrequest.ParameterResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStageEvents chains the current query on the "stage_events" edge.
func (_q *AnalysisRequestQuery) QueryStageEvents() *StageEventQuery {
	query := (&StageEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, selector),
			sqlgraph.To(stageevent.Table, stageevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrequest.StageEventsTable, analysisrequest.StageEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFinalOutput chains the current query on the "final_output" edge.
func (_q *AnalysisRequestQuery) QueryFinalOutput() *FinalOutputQuery {
	query := (&FinalOutputClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, selector),
			sqlgraph.To(finaloutput.Table, finaloutput.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, analysisrequest.FinalOutputTable, analysisrequest.FinalOutputColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AnalysisRequest entity from the query.
// Returns a *NotFoundError when no AnalysisRequest was found.
func (_q *AnalysisRequestQuery) First(ctx context.Context) (*AnalysisRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{analysisrequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AnalysisRequestQuery) FirstX(ctx context.Context) *AnalysisRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AnalysisRequest ID from the query.
// Returns a *NotFoundError when no AnalysisRequest ID was found.
func (_q *AnalysisRequestQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{analysisrequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AnalysisRequestQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AnalysisRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AnalysisRequest entity is found.
// Returns a *NotFoundError when no AnalysisRequest entities are found.
func (_q *AnalysisRequestQuery) Only(ctx context.Context) (*AnalysisRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{analysisrequest.Label}
	default:
		return nil, &NotSingularError{analysisrequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AnalysisRequestQuery) OnlyX(ctx context.Context) *AnalysisRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AnalysisRequest ID in the query.
// Returns a *NotSingularError when more than one AnalysisRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AnalysisRequestQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{analysisrequest.Label}
	default:
		err = &NotSingularError{analysisrequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AnalysisRequestQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AnalysisRequests.
func (_q *AnalysisRequestQuery) All(ctx context.Context) ([]*AnalysisRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AnalysisRequest, *AnalysisRequestQuery]()
	return withInterceptors[[]*AnalysisRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AnalysisRequestQuery) AllX(ctx context.Context) []*AnalysisRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AnalysisRequest IDs.
func (_q *AnalysisRequestQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(analysisrequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AnalysisRequestQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AnalysisRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AnalysisRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AnalysisRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AnalysisRequestQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AnalysisRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnalysisRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AnalysisRequestQuery) Clone() *AnalysisRequestQuery {
	if _q == nil {
		return nil
	}
	return &AnalysisRequestQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]analysisrequest.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.AnalysisRequest{}, _q.predicates...),
		withTracking:         _q.withTracking.Clone(),
		withCategoryResults:  _q.withCategoryResults.Clone(),
		withParameterResults: _q.withParameterResults.Clone(),
		withStageEvents:      _q.withStageEvents.Clone(),
		withFinalOutput:      _q.withFinalOutput.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTracking tells the query-builder to eager-load the nodes that are connected to
// the "tracking" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisRequestQuery) WithTracking(opts ...func(*ProcessTrackingQuery)) *AnalysisRequestQuery {
	query := (&ProcessTrackingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTracking = query
	return _q
}

// WithCategoryResults tells the query-builder to eager-load the nodes that are connected to
// the "category_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisRequestQuery) WithCategoryResults(opts ...func(*CategoryResultQuery)) *AnalysisRequestQuery {
	query := (&CategoryResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCategoryResults = query
	return _q
}

// WithParameterResults tells the query-builder to eager-load the nodes that are connected to
// the "parameter_results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisRequestQuery) WithParameterResults(opts ...func(*ParameterResultQuery)) *AnalysisRequestQuery {
	query := (&ParameterResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParameterResults = query
	return _q
}

// WithStageEvents tells the query-builder to eager-load the nodes that are connected to
// the "stage_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisRequestQuery) WithStageEvents(opts ...func(*StageEventQuery)) *AnalysisRequestQuery {
	query := (&StageEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageEvents = query
	return _q
}

// WithFinalOutput tells the query-builder to eager-load the nodes that are connected to
// the "final_output" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisRequestQuery) WithFinalOutput(opts ...func(*FinalOutputQuery)) *AnalysisRequestQuery {
	query := (&FinalOutputClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFinalOutput = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DrugName string `json:"drug_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AnalysisRequest.Query().
//		GroupBy(analysisrequest.FieldDrugName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AnalysisRequestQuery) GroupBy(field string, fields ...string) *AnalysisRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnalysisRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = analysisrequest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DrugName string `json:"drug_name,omitempty"`
//	}
//
//	client.AnalysisRequest.Query().
//		Select(analysisrequest.FieldDrugName).
//		Scan(ctx, &v)
func (_q *AnalysisRequestQuery) Select(fields ...string) *AnalysisRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AnalysisRequestSelect{AnalysisRequestQuery: _q}
	sbuild.label = analysisrequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnalysisRequestSelect configured with the given aggregations.
func (_q *AnalysisRequestQuery) Aggregate(fns ...AggregateFunc) *AnalysisRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AnalysisRequestQuery) prepareQuery(ctx context.Context) error {
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
		if !analysisrequest.ValidColumn(f) {
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

func (_q *AnalysisRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AnalysisRequest, error) {
	var (
		nodes       = []*AnalysisRequest{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withTracking != nil,
			_q.withCategoryResults != nil,
			_q.withParameterResults != nil,
			_q.withStageEvents != nil,
			_q.withFinalOutput != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AnalysisRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AnalysisRequest{config: _q.config}
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
	if query := _q.withTracking; query != nil {
		if err := _q.loadTracking(ctx, query, nodes, nil,
			func(n *AnalysisRequest, e *ProcessTracking) { n.Edges.Tracking = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCategoryResults; query != nil {
		if err := _q.loadCategoryResults(ctx, query, nodes,
			func(n *AnalysisRequest) { n.Edges.CategoryResults = []*CategoryResult{} },
			func(n *AnalysisRequest, e *CategoryResult) {
				n.Edges.CategoryResults = append(n.Edges.CategoryResults, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withParameterResults; query != nil {
		if err := _q.loadParameterResults(ctx, query, nodes,
			func(n *AnalysisRequest) { n.Edges.ParameterResults = []*ParameterResult{} },
			func(n *AnalysisRequest, e *ParameterResult) {
				n.Edges.ParameterResults = append(n.Edges.ParameterResults, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withStageEvents; query != nil {
		if err := _q.loadStageEvents(ctx, query, nodes,
			func(n *AnalysisRequest) { n.Edges.StageEvents = []*StageEvent{} },
			func(n *AnalysisRequest, e *StageEvent) { n.Edges.StageEvents = append(n.Edges.StageEvents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFinalOutput; query != nil {
		if err := _q.loadFinalOutput(ctx, query, nodes, nil,
			func(n *AnalysisRequest, e *FinalOutput) { n.Edges.FinalOutput = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AnalysisRequestQuery) loadTracking(ctx context.Context, query *ProcessTrackingQuery, nodes []*AnalysisRequest, init func(*AnalysisRequest), assign func(*AnalysisRequest, *ProcessTracking)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AnalysisRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processtracking.FieldRequestID)
	}
	query.Where(predicate.ProcessTracking(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysisrequest.TrackingColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnalysisRequestQuery) loadCategoryResults(ctx context.Context, query *CategoryResultQuery, nodes []*AnalysisRequest, init func(*AnalysisRequest), assign func(*AnalysisRequest, *CategoryResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AnalysisRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(categoryresult.FieldRequestID)
	}
	query.Where(predicate.CategoryResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysisrequest.CategoryResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnalysisRequestQuery) loadParameterResults(ctx context.Context, query *ParameterResultQuery, nodes []*AnalysisRequest, init func(*AnalysisRequest), assign func(*AnalysisRequest, *ParameterResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AnalysisRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(parameterresult.FieldRequestID)
	}
	query.Where(predicate.ParameterResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysisrequest.ParameterResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnalysisRequestQuery) loadStageEvents(ctx context.Context, query *StageEventQuery, nodes []*AnalysisRequest, init func(*AnalysisRequest), assign func(*AnalysisRequest, *StageEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AnalysisRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(stageevent.FieldRequestID)
	}
	query.Where(predicate.StageEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysisrequest.StageEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnalysisRequestQuery) loadFinalOutput(ctx context.Context, query *FinalOutputQuery, nodes []*AnalysisRequest, init func(*AnalysisRequest), assign func(*AnalysisRequest, *FinalOutput)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AnalysisRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(finaloutput.FieldRequestID)
	}
	query.Where(predicate.FinalOutput(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysisrequest.FinalOutputColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AnalysisRequestQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *AnalysisRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(analysisrequest.Table, analysisrequest.Columns, sqlgraph.NewFieldSpec(analysisrequest.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrequest.FieldID)
		for i := range fields {
			if fields[i] != analysisrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *AnalysisRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(analysisrequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = analysisrequest.Columns
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
func (_q *AnalysisRequestQuery) ForUpdate(opts ...sql.LockOption) *AnalysisRequestQuery {
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
func (_q *AnalysisRequestQuery) ForShare(opts ...sql.LockOption) *AnalysisRequestQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// AnalysisRequestGroupBy is the group-by builder for AnalysisRequest entities.
type AnalysisRequestGroupBy struct {
	selector
	build *AnalysisRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AnalysisRequestGroupBy) Aggregate(fns ...AggregateFunc) *AnalysisRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AnalysisRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnalysisRequestQuery, *AnalysisRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AnalysisRequestGroupBy) sqlScan(ctx context.Context, root *AnalysisRequestQuery, v any) error {
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

// AnalysisRequestSelect is the builder for selecting fields of AnalysisRequest entities.
type AnalysisRequestSelect struct {
	*AnalysisRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AnalysisRequestSelect) Aggregate(fns ...AggregateFunc) *AnalysisRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AnalysisRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnalysisRequestQuery, *AnalysisRequestSelect](ctx, _s.AnalysisRequestQuery, _s, _s.inters, v)
}

func (_s *AnalysisRequestSelect) sqlScan(ctx context.Context, root *AnalysisRequestQuery, v any) error {
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
