// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/predicate"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// AgentTemplateQuery is the builder for querying AgentTemplate entities.
type AgentTemplateQuery struct {
	config
	ctx                 *QueryContext
	order               []agenttemplate.OrderOption
	inters              []Interceptor
	predicates          []predicate.AgentTemplate
	withUserPreferences *UserTemplatePreferenceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentTemplateQuery builder.
func (_q *AgentTemplateQuery) Where(ps ...predicate.AgentTemplate) *AgentTemplateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentTemplateQuery) Limit(limit int) *AgentTemplateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentTemplateQuery) Offset(offset int) *AgentTemplateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentTemplateQuery) Unique(unique bool) *AgentTemplateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentTemplateQuery) Order(o ...agenttemplate.OrderOption) *AgentTemplateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUserPreferences chains the current query on the "user_preferences" edge.
func (_q *AgentTemplateQuery) QueryUserPreferences() *UserTemplatePreferenceQuery {
	query := (&UserTemplatePreferenceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttemplate.Table, agenttemplate.FieldID, selector),
			sqlgraph.To(usertemplatepreference.Table, usertemplatepreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agenttemplate.UserPreferencesTable, agenttemplate.UserPreferencesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentTemplate entity from the query.
// Returns a *NotFoundError when no AgentTemplate was found.
func (_q *AgentTemplateQuery) First(ctx context.Context) (*AgentTemplate, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agenttemplate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentTemplateQuery) FirstX(ctx context.Context) *AgentTemplate {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentTemplate ID from the query.
// Returns a *NotFoundError when no AgentTemplate ID was found.
func (_q *AgentTemplateQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agenttemplate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentTemplateQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentTemplate entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentTemplate entity is found.
// Returns a *NotFoundError when no AgentTemplate entities are found.
func (_q *AgentTemplateQuery) Only(ctx context.Context) (*AgentTemplate, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agenttemplate.Label}
	default:
		return nil, &NotSingularError{agenttemplate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentTemplateQuery) OnlyX(ctx context.Context) *AgentTemplate {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentTemplate ID in the query.
// Returns a *NotSingularError when more than one AgentTemplate ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentTemplateQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agenttemplate.Label}
	default:
		err = &NotSingularError{agenttemplate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentTemplateQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentTemplates.
func (_q *AgentTemplateQuery) All(ctx context.Context) ([]*AgentTemplate, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentTemplate, *AgentTemplateQuery]()
	return withInterceptors[[]*AgentTemplate](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentTemplateQuery) AllX(ctx context.Context) []*AgentTemplate {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentTemplate IDs.
func (_q *AgentTemplateQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agenttemplate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentTemplateQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentTemplateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentTemplateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentTemplateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentTemplateQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AgentTemplateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentTemplateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentTemplateQuery) Clone() *AgentTemplateQuery {
	if _q == nil {
		return nil
	}
	return &AgentTemplateQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]agenttemplate.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.AgentTemplate{}, _q.predicates...),
		withUserPreferences: _q.withUserPreferences.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUserPreferences tells the query-builder to eager-load the nodes that are connected to
// the "user_preferences" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentTemplateQuery) WithUserPreferences(opts ...func(*UserTemplatePreferenceQuery)) *AgentTemplateQuery {
	query := (&UserTemplatePreferenceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserPreferences = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TemplateName string `json:"template_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentTemplate.Query().
//		GroupBy(agenttemplate.FieldTemplateName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentTemplateQuery) GroupBy(field string, fields ...string) *AgentTemplateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentTemplateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agenttemplate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TemplateName string `json:"template_name,omitempty"`
//	}
//
//	client.AgentTemplate.Query().
//		Select(agenttemplate.FieldTemplateName).
//		Scan(ctx, &v)
func (_q *AgentTemplateQuery) Select(fields ...string) *AgentTemplateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentTemplateSelect{AgentTemplateQuery: _q}
	sbuild.label = agenttemplate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentTemplateSelect configured with the given aggregations.
func (_q *AgentTemplateQuery) Aggregate(fns ...AggregateFunc) *AgentTemplateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentTemplateQuery) prepareQuery(ctx context.Context) error {
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
		if !agenttemplate.ValidColumn(f) {
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

func (_q *AgentTemplateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentTemplate, error) {
	var (
		nodes       = []*AgentTemplate{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withUserPreferences != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentTemplate).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentTemplate{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withUserPreferences; query != nil {
		if err := _q.loadUserPreferences(ctx, query, nodes,
			func(n *AgentTemplate) { n.Edges.UserPreferences = []*UserTemplatePreference{} },
			func(n *AgentTemplate, e *UserTemplatePreference) {
				n.Edges.UserPreferences = append(n.Edges.UserPreferences, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentTemplateQuery) loadUserPreferences(ctx context.Context, query *UserTemplatePreferenceQuery, nodes []*AgentTemplate, init func(*AgentTemplate), assign func(*AgentTemplate, *UserTemplatePreference)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*AgentTemplate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(usertemplatepreference.FieldTemplateID)
	}
	query.Where(predicate.UserTemplatePreference(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agenttemplate.UserPreferencesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TemplateID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "template_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AgentTemplateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentTemplateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agenttemplate.Table, agenttemplate.Columns, sqlgraph.NewFieldSpec(agenttemplate.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttemplate.FieldID)
		for i := range fields {
			if fields[i] != agenttemplate.FieldID {
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

func (_q *AgentTemplateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agenttemplate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agenttemplate.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// AgentTemplateGroupBy is the group-by builder for AgentTemplate entities.
type AgentTemplateGroupBy struct {
	selector
	build *AgentTemplateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentTemplateGroupBy) Aggregate(fns ...AggregateFunc) *AgentTemplateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentTemplateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentTemplateQuery, *AgentTemplateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentTemplateGroupBy) sqlScan(ctx context.Context, root *AgentTemplateQuery, v any) error {
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

// AgentTemplateSelect is the builder for selecting fields of AgentTemplate entities.
type AgentTemplateSelect struct {
	*AgentTemplateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentTemplateSelect) Aggregate(fns ...AggregateFunc) *AgentTemplateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentTemplateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentTemplateQuery, *AgentTemplateSelect](ctx, _s.AgentTemplateQuery, _s, _s.inters, v)
}

func (_s *AgentTemplateSelect) sqlScan(ctx context.Context, root *AgentTemplateQuery, v any) error {
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
