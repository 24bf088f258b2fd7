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
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// PharmaCategoryQuery is the builder for querying PharmaCategory entities.
type PharmaCategoryQuery struct {
	config
	ctx              *QueryContext
	order            []pharmacategory.OrderOption
	inters           []Interceptor
	predicates       []predicate.PharmaCategory
	withDependents   *CategoryDependencyQuery
	withRequirements *CategoryDependencyQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PharmaCategoryQuery builder.
func (_q *PharmaCategoryQuery) Where(ps ...predicate.PharmaCategory) *PharmaCategoryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PharmaCategoryQuery) Limit(limit int) *PharmaCategoryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PharmaCategoryQuery) Offset(offset int) *PharmaCategoryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PharmaCategoryQuery) Unique(unique bool) *PharmaCategoryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PharmaCategoryQuery) Order(o ...pharmacategory.OrderOption) *PharmaCategoryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDependents chains the current query on the "dependents" edge.
func (_q *PharmaCategoryQuery) QueryDependents() *CategoryDependencyQuery {
	query := (&CategoryDependencyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pharmacategory.Table, pharmacategory.FieldID, selector),
			sqlgraph.To(categorydependency.Table, categorydependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pharmacategory.DependentsTable, pharmacategory.DependentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRequirements chains the current query on the "requirements" edge.
func (_q *PharmaCategoryQuery) QueryRequirements() *CategoryDependencyQuery {
	query := (&CategoryDependencyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pharmacategory.Table, pharmacategory.FieldID, selector),
			sqlgraph.To(categorydependency.Table, categorydependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pharmacategory.RequirementsTable, pharmacategory.RequirementsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PharmaCategory entity from the query.
// Returns a *NotFoundError when no PharmaCategory was found.
func (_q *PharmaCategoryQuery) First(ctx context.Context) (*PharmaCategory, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pharmacategory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PharmaCategoryQuery) FirstX(ctx context.Context) *PharmaCategory {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PharmaCategory ID from the query.
// Returns a *NotFoundError when no PharmaCategory ID was found.
func (_q *PharmaCategoryQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pharmacategory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PharmaCategoryQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PharmaCategory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PharmaCategory entity is found.
// Returns a *NotFoundError when no PharmaCategory entities are found.
func (_q *PharmaCategoryQuery) Only(ctx context.Context) (*PharmaCategory, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pharmacategory.Label}
	default:
		return nil, &NotSingularError{pharmacategory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PharmaCategoryQuery) OnlyX(ctx context.Context) *PharmaCategory {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PharmaCategory ID in the query.
// Returns a *NotSingularError when more than one PharmaCategory ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PharmaCategoryQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pharmacategory.Label}
	default:
		err = &NotSingularError{pharmacategory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PharmaCategoryQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PharmaCategories.
func (_q *PharmaCategoryQuery) All(ctx context.Context) ([]*PharmaCategory, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PharmaCategory, *PharmaCategoryQuery]()
	return withInterceptors[[]*PharmaCategory](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PharmaCategoryQuery) AllX(ctx context.Context) []*PharmaCategory {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PharmaCategory IDs.
func (_q *PharmaCategoryQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pharmacategory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PharmaCategoryQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PharmaCategoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PharmaCategoryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PharmaCategoryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PharmaCategoryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PharmaCategoryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PharmaCategoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PharmaCategoryQuery) Clone() *PharmaCategoryQuery {
	if _q == nil {
		return nil
	}
	return &PharmaCategoryQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]pharmacategory.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.PharmaCategory{}, _q.predicates...),
		withDependents:   _q.withDependents.Clone(),
		withRequirements: _q.withRequirements.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDependents tells the query-builder to eager-load the nodes that are connected to
// the "dependents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PharmaCategoryQuery) WithDependents(opts ...func(*CategoryDependencyQuery)) *PharmaCategoryQuery {
	query := (&CategoryDependencyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDependents = query
	return _q
}

// WithRequirements tells the query-builder to eager-load the nodes that are connected to
// the "requirements" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PharmaCategoryQuery) WithRequirements(opts ...func(*CategoryDependencyQuery)) *PharmaCategoryQuery {
	query := (&CategoryDependencyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequirements = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PharmaCategory.Query().
//		GroupBy(pharmacategory.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PharmaCategoryQuery) GroupBy(field string, fields ...string) *PharmaCategoryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PharmaCategoryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pharmacategory.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.PharmaCategory.Query().
//		Select(pharmacategory.FieldName).
//		Scan(ctx, &v)
func (_q *PharmaCategoryQuery) Select(fields ...string) *PharmaCategorySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PharmaCategorySelect{PharmaCategoryQuery: _q}
	sbuild.label = pharmacategory.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PharmaCategorySelect configured with the given aggregations.
func (_q *PharmaCategoryQuery) Aggregate(fns ...AggregateFunc) *PharmaCategorySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PharmaCategoryQuery) prepareQuery(ctx context.Context) error {
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
		if !pharmacategory.ValidColumn(f) {
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

func (_q *PharmaCategoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PharmaCategory, error) {
	var (
		nodes       = []*PharmaCategory{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDependents != nil,
			_q.withRequirements != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PharmaCategory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PharmaCategory{config: _q.config}
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
	if query := _q.withDependents; query != nil {
		if err := _q.loadDependents(ctx, query, nodes,
			func(n *PharmaCategory) { n.Edges.Dependents = []*CategoryDependency{} },
			func(n *PharmaCategory, e *CategoryDependency) { n.Edges.Dependents = append(n.Edges.Dependents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRequirements; query != nil {
		if err := _q.loadRequirements(ctx, query, nodes,
			func(n *PharmaCategory) { n.Edges.Requirements = []*CategoryDependency{} },
			func(n *PharmaCategory, e *CategoryDependency) { n.Edges.Requirements = append(n.Edges.Requirements, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PharmaCategoryQuery) loadDependents(ctx context.Context, query *CategoryDependencyQuery, nodes []*PharmaCategory, init func(*PharmaCategory), assign func(*PharmaCategory, *CategoryDependency)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PharmaCategory)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(categorydependency.FieldDependentID)
	}
	query.Where(predicate.CategoryDependency(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pharmacategory.DependentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DependentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "dependent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PharmaCategoryQuery) loadRequirements(ctx context.Context, query *CategoryDependencyQuery, nodes []*PharmaCategory, init func(*PharmaCategory), assign func(*PharmaCategory, *CategoryDependency)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PharmaCategory)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(categorydependency.FieldRequiredID)
	}
	query.Where(predicate.CategoryDependency(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pharmacategory.RequirementsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequiredID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "required_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PharmaCategoryQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *PharmaCategoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pharmacategory.Table, pharmacategory.Columns, sqlgraph.NewFieldSpec(pharmacategory.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pharmacategory.FieldID)
		for i := range fields {
			if fields[i] != pharmacategory.FieldID {
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

func (_q *PharmaCategoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pharmacategory.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pharmacategory.Columns
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
func (_q *PharmaCategoryQuery) ForUpdate(opts ...sql.LockOption) *PharmaCategoryQuery {
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
func (_q *PharmaCategoryQuery) ForShare(opts ...sql.LockOption) *PharmaCategoryQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PharmaCategoryGroupBy is the group-by builder for PharmaCategory entities.
type PharmaCategoryGroupBy struct {
	selector
	build *PharmaCategoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PharmaCategoryGroupBy) Aggregate(fns ...AggregateFunc) *PharmaCategoryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PharmaCategoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PharmaCategoryQuery, *PharmaCategoryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PharmaCategoryGroupBy) sqlScan(ctx context.Context, root *PharmaCategoryQuery, v any) error {
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

// PharmaCategorySelect is the builder for selecting fields of PharmaCategory entities.
type PharmaCategorySelect struct {
	*PharmaCategoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PharmaCategorySelect) Aggregate(fns ...AggregateFunc) *PharmaCategorySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PharmaCategorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PharmaCategoryQuery, *PharmaCategorySelect](ctx, _s.PharmaCategoryQuery, _s, _s.inters, v)
}

func (_s *PharmaCategorySelect) sqlScan(ctx context.Context, root *PharmaCategoryQuery, v any) error {
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
