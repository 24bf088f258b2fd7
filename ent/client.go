// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/owais-symtera/cognito-sub001/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/pipelinestage"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/ratebucket"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
	"github.com/owais-symtera/cognito-sub001/ent/summaryhistory"
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisRequest is the client for interacting with the AnalysisRequest builders.
	AnalysisRequest *AnalysisRequestClient
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// CategoryDependency is the client for interacting with the CategoryDependency builders.
	CategoryDependency *CategoryDependencyClient
	// CategoryResult is the client for interacting with the CategoryResult builders.
	CategoryResult *CategoryResultClient
	// FinalOutput is the client for interacting with the FinalOutput builders.
	FinalOutput *FinalOutputClient
	// MergedData is the client for interacting with the MergedData builders.
	MergedData *MergedDataClient
	// ParameterResult is the client for interacting with the ParameterResult builders.
	ParameterResult *ParameterResultClient
	// PharmaCategory is the client for interacting with the PharmaCategory builders.
	PharmaCategory *PharmaCategoryClient
	// PipelineStage is the client for interacting with the PipelineStage builders.
	PipelineStage *PipelineStageClient
	// ProcessTracking is the client for interacting with the ProcessTracking builders.
	ProcessTracking *ProcessTrackingClient
	// ProviderResponse is the client for interacting with the ProviderResponse builders.
	ProviderResponse *ProviderResponseClient
	// RateBucket is the client for interacting with the RateBucket builders.
	RateBucket *RateBucketClient
	// ScoringParameter is the client for interacting with the ScoringParameter builders.
	ScoringParameter *ScoringParameterClient
	// ScoringRange is the client for interacting with the ScoringRange builders.
	ScoringRange *ScoringRangeClient
	// SourceConflict is the client for interacting with the SourceConflict builders.
	SourceConflict *SourceConflictClient
	// StageEvent is the client for interacting with the StageEvent builders.
	StageEvent *StageEventClient
	// SummaryHistory is the client for interacting with the SummaryHistory builders.
	SummaryHistory *SummaryHistoryClient
	// SummaryStyle is the client for interacting with the SummaryStyle builders.
	SummaryStyle *SummaryStyleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisRequest = NewAnalysisRequestClient(c.config)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.CategoryDependency = NewCategoryDependencyClient(c.config)
	c.CategoryResult = NewCategoryResultClient(c.config)
	c.FinalOutput = NewFinalOutputClient(c.config)
	c.MergedData = NewMergedDataClient(c.config)
	c.ParameterResult = NewParameterResultClient(c.config)
	c.PharmaCategory = NewPharmaCategoryClient(c.config)
	c.PipelineStage = NewPipelineStageClient(c.config)
	c.ProcessTracking = NewProcessTrackingClient(c.config)
	c.ProviderResponse = NewProviderResponseClient(c.config)
	c.RateBucket = NewRateBucketClient(c.config)
	c.ScoringParameter = NewScoringParameterClient(c.config)
	c.ScoringRange = NewScoringRangeClient(c.config)
	c.SourceConflict = NewSourceConflictClient(c.config)
	c.StageEvent = NewStageEventClient(c.config)
	c.SummaryHistory = NewSummaryHistoryClient(c.config)
	c.SummaryStyle = NewSummaryStyleClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AnalysisRequest:    NewAnalysisRequestClient(cfg),
		AuditEvent:         NewAuditEventClient(cfg),
		CategoryDependency: NewCategoryDependencyClient(cfg),
		CategoryResult:     NewCategoryResultClient(cfg),
		FinalOutput:        NewFinalOutputClient(cfg),
		MergedData:         NewMergedDataClient(cfg),
		ParameterResult:    NewParameterResultClient(cfg),
		PharmaCategory:     NewPharmaCategoryClient(cfg),
		PipelineStage:      NewPipelineStageClient(cfg),
		ProcessTracking:    NewProcessTrackingClient(cfg),
		ProviderResponse:   NewProviderResponseClient(cfg),
		RateBucket:         NewRateBucketClient(cfg),
		ScoringParameter:   NewScoringParameterClient(cfg),
		ScoringRange:       NewScoringRangeClient(cfg),
		SourceConflict:     NewSourceConflictClient(cfg),
		StageEvent:         NewStageEventClient(cfg),
		SummaryHistory:     NewSummaryHistoryClient(cfg),
		SummaryStyle:       NewSummaryStyleClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AnalysisRequest:    NewAnalysisRequestClient(cfg),
		AuditEvent:         NewAuditEventClient(cfg),
		CategoryDependency: NewCategoryDependencyClient(cfg),
		CategoryResult:     NewCategoryResultClient(cfg),
		FinalOutput:        NewFinalOutputClient(cfg),
		MergedData:         NewMergedDataClient(cfg),
		ParameterResult:    NewParameterResultClient(cfg),
		PharmaCategory:     NewPharmaCategoryClient(cfg),
		PipelineStage:      NewPipelineStageClient(cfg),
		ProcessTracking:    NewProcessTrackingClient(cfg),
		ProviderResponse:   NewProviderResponseClient(cfg),
		RateBucket:         NewRateBucketClient(cfg),
		ScoringParameter:   NewScoringParameterClient(cfg),
		ScoringRange:       NewScoringRangeClient(cfg),
		SourceConflict:     NewSourceConflictClient(cfg),
		StageEvent:         NewStageEventClient(cfg),
		SummaryHistory:     NewSummaryHistoryClient(cfg),
		SummaryStyle:       NewSummaryStyleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisRequest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AnalysisRequest, c.AuditEvent, c.CategoryDependency, c.CategoryResult,
		c.FinalOutput, c.MergedData, c.ParameterResult, c.PharmaCategory,
		c.PipelineStage, c.ProcessTracking, c.ProviderResponse, c.RateBucket,
		c.ScoringParameter, c.ScoringRange, c.SourceConflict, c.StageEvent,
		c.SummaryHistory, c.SummaryStyle,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnalysisRequest, c.AuditEvent, c.CategoryDependency, c.CategoryResult,
		c.FinalOutput, c.MergedData, c.ParameterResult, c.PharmaCategory,
		c.PipelineStage, c.ProcessTracking, c.ProviderResponse, c.RateBucket,
		c.ScoringParameter, c.ScoringRange, c.SourceConflict, c.StageEvent,
		c.SummaryHistory, c.SummaryStyle,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisRequestMutation:
		return c.AnalysisRequest.mutate(ctx, m)
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *CategoryDependencyMutation:
		return c.CategoryDependency.mutate(ctx, m)
	case *CategoryResultMutation:
		return c.CategoryResult.mutate(ctx, m)
	case *FinalOutputMutation:
		return c.FinalOutput.mutate(ctx, m)
	case *MergedDataMutation:
		return c.MergedData.mutate(ctx, m)
	case *ParameterResultMutation:
		return c.ParameterResult.mutate(ctx, m)
	case *PharmaCategoryMutation:
		return c.PharmaCategory.mutate(ctx, m)
	case *PipelineStageMutation:
		return c.PipelineStage.mutate(ctx, m)
	case *ProcessTrackingMutation:
		return c.ProcessTracking.mutate(ctx, m)
	case *ProviderResponseMutation:
		return c.ProviderResponse.mutate(ctx, m)
	case *RateBucketMutation:
		return c.RateBucket.mutate(ctx, m)
	case *ScoringParameterMutation:
		return c.ScoringParameter.mutate(ctx, m)
	case *ScoringRangeMutation:
		return c.ScoringRange.mutate(ctx, m)
	case *SourceConflictMutation:
		return c.SourceConflict.mutate(ctx, m)
	case *StageEventMutation:
		return c.StageEvent.mutate(ctx, m)
	case *SummaryHistoryMutation:
		return c.SummaryHistory.mutate(ctx, m)
	case *SummaryStyleMutation:
		return c.SummaryStyle.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisRequestClient is a client for the AnalysisRequest schema.
type AnalysisRequestClient struct {
	config
}

// NewAnalysisRequestClient returns a client for the AnalysisRequest from the given config.
func NewAnalysisRequestClient(c config) *AnalysisRequestClient {
	return &AnalysisRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisrequest.Hooks(f(g(h())))`.
func (c *AnalysisRequestClient) Use(hooks ...Hook) {
	c.hooks.AnalysisRequest = append(c.hooks.AnalysisRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisrequest.Intercept(f(g(h())))`.
func (c *AnalysisRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisRequest = append(c.inters.AnalysisRequest, interceptors...)
}

// Create returns a builder for creating a AnalysisRequest entity.
func (c *AnalysisRequestClient) Create() *AnalysisRequestCreate {
	mutation := newAnalysisRequestMutation(c.config, OpCreate)
	return &AnalysisRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisRequest entities.
func (c *AnalysisRequestClient) CreateBulk(builders ...*AnalysisRequestCreate) *AnalysisRequestCreateBulk {
	return &AnalysisRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisRequestClient) MapCreateBulk(slice any, setFunc func(*AnalysisRequestCreate, int)) *AnalysisRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisRequestCreateBulk{err: fmt.Errorf("calling to AnalysisRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisRequest.
func (c *AnalysisRequestClient) Update() *AnalysisRequestUpdate {
	mutation := newAnalysisRequestMutation(c.config, OpUpdate)
	return &AnalysisRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisRequestClient) UpdateOne(_m *AnalysisRequest) *AnalysisRequestUpdateOne {
	mutation := newAnalysisRequestMutation(c.config, OpUpdateOne, withAnalysisRequest(_m))
	return &AnalysisRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisRequestClient) UpdateOneID(id string) *AnalysisRequestUpdateOne {
	mutation := newAnalysisRequestMutation(c.config, OpUpdateOne, withAnalysisRequestID(id))
	return &AnalysisRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisRequest.
func (c *AnalysisRequestClient) Delete() *AnalysisRequestDelete {
	mutation := newAnalysisRequestMutation(c.config, OpDelete)
	return &AnalysisRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisRequestClient) DeleteOne(_m *AnalysisRequest) *AnalysisRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisRequestClient) DeleteOneID(id string) *AnalysisRequestDeleteOne {
	builder := c.Delete().Where(analysisrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisRequestDeleteOne{builder}
}

// Query returns a query builder for AnalysisRequest.
func (c *AnalysisRequestClient) Query() *AnalysisRequestQuery {
	return &AnalysisRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisRequest entity by its id.
func (c *AnalysisRequestClient) Get(ctx context.Context, id string) (*AnalysisRequest, error) {
	return c.Query().Where(analysisrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisRequestClient) GetX(ctx context.Context, id string) *AnalysisRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTracking queries the tracking edge of a AnalysisRequest.
func (c *AnalysisRequestClient) QueryTracking(_m *AnalysisRequest) *ProcessTrackingQuery {
	query := (&ProcessTrackingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, id),
			sqlgraph.To(processtracking.Table, processtracking.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, analysisrequest.TrackingTable, analysisrequest.TrackingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCategoryResults queries the category_results edge of a AnalysisRequest.
func (c *AnalysisRequestClient) QueryCategoryResults(_m *AnalysisRequest) *CategoryResultQuery {
	query := (&CategoryResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, id),
			sqlgraph.To(categoryresult.Table, categoryresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrequest.CategoryResultsTable, analysisrequest.CategoryResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParameterResults queries the parameter_results edge of a AnalysisRequest.
func (c *AnalysisRequestClient) QueryParameterResults(_m *AnalysisRequest) *ParameterResultQuery {
	query := (&ParameterResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, id),
			sqlgraph.To(parameterresult.Table, parameterresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrequest.ParameterResultsTable, analysisrequest.ParameterResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStageEvents queries the stage_events edge of a AnalysisRequest.
func (c *AnalysisRequestClient) QueryStageEvents(_m *AnalysisRequest) *StageEventQuery {
	query := (&StageEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, id),
			sqlgraph.To(stageevent.Table, stageevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisrequest.StageEventsTable, analysisrequest.StageEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFinalOutput queries the final_output edge of a AnalysisRequest.
func (c *AnalysisRequestClient) QueryFinalOutput(_m *AnalysisRequest) *FinalOutputQuery {
	query := (&FinalOutputClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrequest.Table, analysisrequest.FieldID, id),
			sqlgraph.To(finaloutput.Table, finaloutput.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, analysisrequest.FinalOutputTable, analysisrequest.FinalOutputColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisRequestClient) Hooks() []Hook {
	return c.hooks.AnalysisRequest
}

// Interceptors returns the client interceptors.
func (c *AnalysisRequestClient) Interceptors() []Interceptor {
	return c.inters.AnalysisRequest
}

func (c *AnalysisRequestClient) mutate(ctx context.Context, m *AnalysisRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisRequest mutation op: %q", m.Op())
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id string) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id string) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id string) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id string) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// CategoryDependencyClient is a client for the CategoryDependency schema.
type CategoryDependencyClient struct {
	config
}

// NewCategoryDependencyClient returns a client for the CategoryDependency from the given config.
func NewCategoryDependencyClient(c config) *CategoryDependencyClient {
	return &CategoryDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categorydependency.Hooks(f(g(h())))`.
func (c *CategoryDependencyClient) Use(hooks ...Hook) {
	c.hooks.CategoryDependency = append(c.hooks.CategoryDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categorydependency.Intercept(f(g(h())))`.
func (c *CategoryDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryDependency = append(c.inters.CategoryDependency, interceptors...)
}

// Create returns a builder for creating a CategoryDependency entity.
func (c *CategoryDependencyClient) Create() *CategoryDependencyCreate {
	mutation := newCategoryDependencyMutation(c.config, OpCreate)
	return &CategoryDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryDependency entities.
func (c *CategoryDependencyClient) CreateBulk(builders ...*CategoryDependencyCreate) *CategoryDependencyCreateBulk {
	return &CategoryDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryDependencyClient) MapCreateBulk(slice any, setFunc func(*CategoryDependencyCreate, int)) *CategoryDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryDependencyCreateBulk{err: fmt.Errorf("calling to CategoryDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryDependency.
func (c *CategoryDependencyClient) Update() *CategoryDependencyUpdate {
	mutation := newCategoryDependencyMutation(c.config, OpUpdate)
	return &CategoryDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryDependencyClient) UpdateOne(_m *CategoryDependency) *CategoryDependencyUpdateOne {
	mutation := newCategoryDependencyMutation(c.config, OpUpdateOne, withCategoryDependency(_m))
	return &CategoryDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryDependencyClient) UpdateOneID(id string) *CategoryDependencyUpdateOne {
	mutation := newCategoryDependencyMutation(c.config, OpUpdateOne, withCategoryDependencyID(id))
	return &CategoryDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryDependency.
func (c *CategoryDependencyClient) Delete() *CategoryDependencyDelete {
	mutation := newCategoryDependencyMutation(c.config, OpDelete)
	return &CategoryDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryDependencyClient) DeleteOne(_m *CategoryDependency) *CategoryDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryDependencyClient) DeleteOneID(id string) *CategoryDependencyDeleteOne {
	builder := c.Delete().Where(categorydependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryDependencyDeleteOne{builder}
}

// Query returns a query builder for CategoryDependency.
func (c *CategoryDependencyClient) Query() *CategoryDependencyQuery {
	return &CategoryDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryDependency entity by its id.
func (c *CategoryDependencyClient) Get(ctx context.Context, id string) (*CategoryDependency, error) {
	return c.Query().Where(categorydependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryDependencyClient) GetX(ctx context.Context, id string) *CategoryDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDependent queries the dependent edge of a CategoryDependency.
func (c *CategoryDependencyClient) QueryDependent(_m *CategoryDependency) *PharmaCategoryQuery {
	query := (&PharmaCategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categorydependency.Table, categorydependency.FieldID, id),
			sqlgraph.To(pharmacategory.Table, pharmacategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, categorydependency.DependentTable, categorydependency.DependentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRequired queries the required edge of a CategoryDependency.
func (c *CategoryDependencyClient) QueryRequired(_m *CategoryDependency) *PharmaCategoryQuery {
	query := (&PharmaCategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categorydependency.Table, categorydependency.FieldID, id),
			sqlgraph.To(pharmacategory.Table, pharmacategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, categorydependency.RequiredTable, categorydependency.RequiredColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CategoryDependencyClient) Hooks() []Hook {
	return c.hooks.CategoryDependency
}

// Interceptors returns the client interceptors.
func (c *CategoryDependencyClient) Interceptors() []Interceptor {
	return c.inters.CategoryDependency
}

func (c *CategoryDependencyClient) mutate(ctx context.Context, m *CategoryDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryDependency mutation op: %q", m.Op())
	}
}

// CategoryResultClient is a client for the CategoryResult schema.
type CategoryResultClient struct {
	config
}

// NewCategoryResultClient returns a client for the CategoryResult from the given config.
func NewCategoryResultClient(c config) *CategoryResultClient {
	return &CategoryResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categoryresult.Hooks(f(g(h())))`.
func (c *CategoryResultClient) Use(hooks ...Hook) {
	c.hooks.CategoryResult = append(c.hooks.CategoryResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categoryresult.Intercept(f(g(h())))`.
func (c *CategoryResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryResult = append(c.inters.CategoryResult, interceptors...)
}

// Create returns a builder for creating a CategoryResult entity.
func (c *CategoryResultClient) Create() *CategoryResultCreate {
	mutation := newCategoryResultMutation(c.config, OpCreate)
	return &CategoryResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryResult entities.
func (c *CategoryResultClient) CreateBulk(builders ...*CategoryResultCreate) *CategoryResultCreateBulk {
	return &CategoryResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryResultClient) MapCreateBulk(slice any, setFunc func(*CategoryResultCreate, int)) *CategoryResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryResultCreateBulk{err: fmt.Errorf("calling to CategoryResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryResult.
func (c *CategoryResultClient) Update() *CategoryResultUpdate {
	mutation := newCategoryResultMutation(c.config, OpUpdate)
	return &CategoryResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryResultClient) UpdateOne(_m *CategoryResult) *CategoryResultUpdateOne {
	mutation := newCategoryResultMutation(c.config, OpUpdateOne, withCategoryResult(_m))
	return &CategoryResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryResultClient) UpdateOneID(id string) *CategoryResultUpdateOne {
	mutation := newCategoryResultMutation(c.config, OpUpdateOne, withCategoryResultID(id))
	return &CategoryResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryResult.
func (c *CategoryResultClient) Delete() *CategoryResultDelete {
	mutation := newCategoryResultMutation(c.config, OpDelete)
	return &CategoryResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryResultClient) DeleteOne(_m *CategoryResult) *CategoryResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryResultClient) DeleteOneID(id string) *CategoryResultDeleteOne {
	builder := c.Delete().Where(categoryresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryResultDeleteOne{builder}
}

// Query returns a query builder for CategoryResult.
func (c *CategoryResultClient) Query() *CategoryResultQuery {
	return &CategoryResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryResult},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryResult entity by its id.
func (c *CategoryResultClient) Get(ctx context.Context, id string) (*CategoryResult, error) {
	return c.Query().Where(categoryresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryResultClient) GetX(ctx context.Context, id string) *CategoryResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a CategoryResult.
func (c *CategoryResultClient) QueryRequest(_m *CategoryResult) *AnalysisRequestQuery {
	query := (&AnalysisRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, id),
			sqlgraph.To(analysisrequest.Table, analysisrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, categoryresult.RequestTable, categoryresult.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProviderResponses queries the provider_responses edge of a CategoryResult.
func (c *CategoryResultClient) QueryProviderResponses(_m *CategoryResult) *ProviderResponseQuery {
	query := (&ProviderResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, id),
			sqlgraph.To(providerresponse.Table, providerresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, categoryresult.ProviderResponsesTable, categoryresult.ProviderResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMergedData queries the merged_data edge of a CategoryResult.
func (c *CategoryResultClient) QueryMergedData(_m *CategoryResult) *MergedDataQuery {
	query := (&MergedDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, id),
			sqlgraph.To(mergeddata.Table, mergeddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, categoryresult.MergedDataTable, categoryresult.MergedDataColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConflicts queries the conflicts edge of a CategoryResult.
func (c *CategoryResultClient) QueryConflicts(_m *CategoryResult) *SourceConflictQuery {
	query := (&SourceConflictClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryresult.Table, categoryresult.FieldID, id),
			sqlgraph.To(sourceconflict.Table, sourceconflict.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, categoryresult.ConflictsTable, categoryresult.ConflictsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CategoryResultClient) Hooks() []Hook {
	return c.hooks.CategoryResult
}

// Interceptors returns the client interceptors.
func (c *CategoryResultClient) Interceptors() []Interceptor {
	return c.inters.CategoryResult
}

func (c *CategoryResultClient) mutate(ctx context.Context, m *CategoryResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryResult mutation op: %q", m.Op())
	}
}

// FinalOutputClient is a client for the FinalOutput schema.
type FinalOutputClient struct {
	config
}

// NewFinalOutputClient returns a client for the FinalOutput from the given config.
func NewFinalOutputClient(c config) *FinalOutputClient {
	return &FinalOutputClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `finaloutput.Hooks(f(g(h())))`.
func (c *FinalOutputClient) Use(hooks ...Hook) {
	c.hooks.FinalOutput = append(c.hooks.FinalOutput, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `finaloutput.Intercept(f(g(h())))`.
func (c *FinalOutputClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinalOutput = append(c.inters.FinalOutput, interceptors...)
}

// Create returns a builder for creating a FinalOutput entity.
func (c *FinalOutputClient) Create() *FinalOutputCreate {
	mutation := newFinalOutputMutation(c.config, OpCreate)
	return &FinalOutputCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinalOutput entities.
func (c *FinalOutputClient) CreateBulk(builders ...*FinalOutputCreate) *FinalOutputCreateBulk {
	return &FinalOutputCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinalOutputClient) MapCreateBulk(slice any, setFunc func(*FinalOutputCreate, int)) *FinalOutputCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinalOutputCreateBulk{err: fmt.Errorf("calling to FinalOutputClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinalOutputCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinalOutputCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinalOutput.
func (c *FinalOutputClient) Update() *FinalOutputUpdate {
	mutation := newFinalOutputMutation(c.config, OpUpdate)
	return &FinalOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinalOutputClient) UpdateOne(_m *FinalOutput) *FinalOutputUpdateOne {
	mutation := newFinalOutputMutation(c.config, OpUpdateOne, withFinalOutput(_m))
	return &FinalOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinalOutputClient) UpdateOneID(id string) *FinalOutputUpdateOne {
	mutation := newFinalOutputMutation(c.config, OpUpdateOne, withFinalOutputID(id))
	return &FinalOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinalOutput.
func (c *FinalOutputClient) Delete() *FinalOutputDelete {
	mutation := newFinalOutputMutation(c.config, OpDelete)
	return &FinalOutputDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinalOutputClient) DeleteOne(_m *FinalOutput) *FinalOutputDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinalOutputClient) DeleteOneID(id string) *FinalOutputDeleteOne {
	builder := c.Delete().Where(finaloutput.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinalOutputDeleteOne{builder}
}

// Query returns a query builder for FinalOutput.
func (c *FinalOutputClient) Query() *FinalOutputQuery {
	return &FinalOutputQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinalOutput},
		inters: c.Interceptors(),
	}
}

// Get returns a FinalOutput entity by its id.
func (c *FinalOutputClient) Get(ctx context.Context, id string) (*FinalOutput, error) {
	return c.Query().Where(finaloutput.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinalOutputClient) GetX(ctx context.Context, id string) *FinalOutput {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a FinalOutput.
func (c *FinalOutputClient) QueryRequest(_m *FinalOutput) *AnalysisRequestQuery {
	query := (&AnalysisRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(finaloutput.Table, finaloutput.FieldID, id),
			sqlgraph.To(analysisrequest.Table, analysisrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, finaloutput.RequestTable, finaloutput.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinalOutputClient) Hooks() []Hook {
	return c.hooks.FinalOutput
}

// Interceptors returns the client interceptors.
func (c *FinalOutputClient) Interceptors() []Interceptor {
	return c.inters.FinalOutput
}

func (c *FinalOutputClient) mutate(ctx context.Context, m *FinalOutputMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinalOutputCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinalOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinalOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinalOutputDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinalOutput mutation op: %q", m.Op())
	}
}

// MergedDataClient is a client for the MergedData schema.
type MergedDataClient struct {
	config
}

// NewMergedDataClient returns a client for the MergedData from the given config.
func NewMergedDataClient(c config) *MergedDataClient {
	return &MergedDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergeddata.Hooks(f(g(h())))`.
func (c *MergedDataClient) Use(hooks ...Hook) {
	c.hooks.MergedData = append(c.hooks.MergedData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergeddata.Intercept(f(g(h())))`.
func (c *MergedDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergedData = append(c.inters.MergedData, interceptors...)
}

// Create returns a builder for creating a MergedData entity.
func (c *MergedDataClient) Create() *MergedDataCreate {
	mutation := newMergedDataMutation(c.config, OpCreate)
	return &MergedDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergedData entities.
func (c *MergedDataClient) CreateBulk(builders ...*MergedDataCreate) *MergedDataCreateBulk {
	return &MergedDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergedDataClient) MapCreateBulk(slice any, setFunc func(*MergedDataCreate, int)) *MergedDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergedDataCreateBulk{err: fmt.Errorf("calling to MergedDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergedDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergedDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergedData.
func (c *MergedDataClient) Update() *MergedDataUpdate {
	mutation := newMergedDataMutation(c.config, OpUpdate)
	return &MergedDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergedDataClient) UpdateOne(_m *MergedData) *MergedDataUpdateOne {
	mutation := newMergedDataMutation(c.config, OpUpdateOne, withMergedData(_m))
	return &MergedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergedDataClient) UpdateOneID(id string) *MergedDataUpdateOne {
	mutation := newMergedDataMutation(c.config, OpUpdateOne, withMergedDataID(id))
	return &MergedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergedData.
func (c *MergedDataClient) Delete() *MergedDataDelete {
	mutation := newMergedDataMutation(c.config, OpDelete)
	return &MergedDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergedDataClient) DeleteOne(_m *MergedData) *MergedDataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergedDataClient) DeleteOneID(id string) *MergedDataDeleteOne {
	builder := c.Delete().Where(mergeddata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergedDataDeleteOne{builder}
}

// Query returns a query builder for MergedData.
func (c *MergedDataClient) Query() *MergedDataQuery {
	return &MergedDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergedData},
		inters: c.Interceptors(),
	}
}

// Get returns a MergedData entity by its id.
func (c *MergedDataClient) Get(ctx context.Context, id string) (*MergedData, error) {
	return c.Query().Where(mergeddata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergedDataClient) GetX(ctx context.Context, id string) *MergedData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategoryResult queries the category_result edge of a MergedData.
func (c *MergedDataClient) QueryCategoryResult(_m *MergedData) *CategoryResultQuery {
	query := (&CategoryResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mergeddata.Table, mergeddata.FieldID, id),
			sqlgraph.To(categoryresult.Table, categoryresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, mergeddata.CategoryResultTable, mergeddata.CategoryResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MergedDataClient) Hooks() []Hook {
	return c.hooks.MergedData
}

// Interceptors returns the client interceptors.
func (c *MergedDataClient) Interceptors() []Interceptor {
	return c.inters.MergedData
}

func (c *MergedDataClient) mutate(ctx context.Context, m *MergedDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergedDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergedDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergedDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergedData mutation op: %q", m.Op())
	}
}

// ParameterResultClient is a client for the ParameterResult schema.
type ParameterResultClient struct {
	config
}

// NewParameterResultClient returns a client for the ParameterResult from the given config.
func NewParameterResultClient(c config) *ParameterResultClient {
	return &ParameterResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parameterresult.Hooks(f(g(h())))`.
func (c *ParameterResultClient) Use(hooks ...Hook) {
	c.hooks.ParameterResult = append(c.hooks.ParameterResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parameterresult.Intercept(f(g(h())))`.
func (c *ParameterResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParameterResult = append(c.inters.ParameterResult, interceptors...)
}

// Create returns a builder for creating a ParameterResult entity.
func (c *ParameterResultClient) Create() *ParameterResultCreate {
	mutation := newParameterResultMutation(c.config, OpCreate)
	return &ParameterResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParameterResult entities.
func (c *ParameterResultClient) CreateBulk(builders ...*ParameterResultCreate) *ParameterResultCreateBulk {
	return &ParameterResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParameterResultClient) MapCreateBulk(slice any, setFunc func(*ParameterResultCreate, int)) *ParameterResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParameterResultCreateBulk{err: fmt.Errorf("calling to ParameterResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParameterResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParameterResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParameterResult.
func (c *ParameterResultClient) Update() *ParameterResultUpdate {
	mutation := newParameterResultMutation(c.config, OpUpdate)
	return &ParameterResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParameterResultClient) UpdateOne(_m *ParameterResult) *ParameterResultUpdateOne {
	mutation := newParameterResultMutation(c.config, OpUpdateOne, withParameterResult(_m))
	return &ParameterResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParameterResultClient) UpdateOneID(id string) *ParameterResultUpdateOne {
	mutation := newParameterResultMutation(c.config, OpUpdateOne, withParameterResultID(id))
	return &ParameterResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParameterResult.
func (c *ParameterResultClient) Delete() *ParameterResultDelete {
	mutation := newParameterResultMutation(c.config, OpDelete)
	return &ParameterResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParameterResultClient) DeleteOne(_m *ParameterResult) *ParameterResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParameterResultClient) DeleteOneID(id string) *ParameterResultDeleteOne {
	builder := c.Delete().Where(parameterresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParameterResultDeleteOne{builder}
}

// Query returns a query builder for ParameterResult.
func (c *ParameterResultClient) Query() *ParameterResultQuery {
	return &ParameterResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParameterResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ParameterResult entity by its id.
func (c *ParameterResultClient) Get(ctx context.Context, id string) (*ParameterResult, error) {
	return c.Query().Where(parameterresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParameterResultClient) GetX(ctx context.Context, id string) *ParameterResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a ParameterResult.
func (c *ParameterResultClient) QueryRequest(_m *ParameterResult) *AnalysisRequestQuery {
	query := (&AnalysisRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parameterresult.Table, parameterresult.FieldID, id),
			sqlgraph.To(analysisrequest.Table, analysisrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parameterresult.RequestTable, parameterresult.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParameterResultClient) Hooks() []Hook {
	return c.hooks.ParameterResult
}

// Interceptors returns the client interceptors.
func (c *ParameterResultClient) Interceptors() []Interceptor {
	return c.inters.ParameterResult
}

func (c *ParameterResultClient) mutate(ctx context.Context, m *ParameterResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParameterResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParameterResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParameterResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParameterResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParameterResult mutation op: %q", m.Op())
	}
}

// PharmaCategoryClient is a client for the PharmaCategory schema.
type PharmaCategoryClient struct {
	config
}

// NewPharmaCategoryClient returns a client for the PharmaCategory from the given config.
func NewPharmaCategoryClient(c config) *PharmaCategoryClient {
	return &PharmaCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pharmacategory.Hooks(f(g(h())))`.
func (c *PharmaCategoryClient) Use(hooks ...Hook) {
	c.hooks.PharmaCategory = append(c.hooks.PharmaCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pharmacategory.Intercept(f(g(h())))`.
func (c *PharmaCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.PharmaCategory = append(c.inters.PharmaCategory, interceptors...)
}

// Create returns a builder for creating a PharmaCategory entity.
func (c *PharmaCategoryClient) Create() *PharmaCategoryCreate {
	mutation := newPharmaCategoryMutation(c.config, OpCreate)
	return &PharmaCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PharmaCategory entities.
func (c *PharmaCategoryClient) CreateBulk(builders ...*PharmaCategoryCreate) *PharmaCategoryCreateBulk {
	return &PharmaCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PharmaCategoryClient) MapCreateBulk(slice any, setFunc func(*PharmaCategoryCreate, int)) *PharmaCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PharmaCategoryCreateBulk{err: fmt.Errorf("calling to PharmaCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PharmaCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PharmaCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PharmaCategory.
func (c *PharmaCategoryClient) Update() *PharmaCategoryUpdate {
	mutation := newPharmaCategoryMutation(c.config, OpUpdate)
	return &PharmaCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PharmaCategoryClient) UpdateOne(_m *PharmaCategory) *PharmaCategoryUpdateOne {
	mutation := newPharmaCategoryMutation(c.config, OpUpdateOne, withPharmaCategory(_m))
	return &PharmaCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PharmaCategoryClient) UpdateOneID(id string) *PharmaCategoryUpdateOne {
	mutation := newPharmaCategoryMutation(c.config, OpUpdateOne, withPharmaCategoryID(id))
	return &PharmaCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PharmaCategory.
func (c *PharmaCategoryClient) Delete() *PharmaCategoryDelete {
	mutation := newPharmaCategoryMutation(c.config, OpDelete)
	return &PharmaCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PharmaCategoryClient) DeleteOne(_m *PharmaCategory) *PharmaCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PharmaCategoryClient) DeleteOneID(id string) *PharmaCategoryDeleteOne {
	builder := c.Delete().Where(pharmacategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PharmaCategoryDeleteOne{builder}
}

// Query returns a query builder for PharmaCategory.
func (c *PharmaCategoryClient) Query() *PharmaCategoryQuery {
	return &PharmaCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePharmaCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a PharmaCategory entity by its id.
func (c *PharmaCategoryClient) Get(ctx context.Context, id string) (*PharmaCategory, error) {
	return c.Query().Where(pharmacategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PharmaCategoryClient) GetX(ctx context.Context, id string) *PharmaCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDependents queries the dependents edge of a PharmaCategory.
func (c *PharmaCategoryClient) QueryDependents(_m *PharmaCategory) *CategoryDependencyQuery {
	query := (&CategoryDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pharmacategory.Table, pharmacategory.FieldID, id),
			sqlgraph.To(categorydependency.Table, categorydependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pharmacategory.DependentsTable, pharmacategory.DependentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRequirements queries the requirements edge of a PharmaCategory.
func (c *PharmaCategoryClient) QueryRequirements(_m *PharmaCategory) *CategoryDependencyQuery {
	query := (&CategoryDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pharmacategory.Table, pharmacategory.FieldID, id),
			sqlgraph.To(categorydependency.Table, categorydependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pharmacategory.RequirementsTable, pharmacategory.RequirementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PharmaCategoryClient) Hooks() []Hook {
	return c.hooks.PharmaCategory
}

// Interceptors returns the client interceptors.
func (c *PharmaCategoryClient) Interceptors() []Interceptor {
	return c.inters.PharmaCategory
}

func (c *PharmaCategoryClient) mutate(ctx context.Context, m *PharmaCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PharmaCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PharmaCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PharmaCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PharmaCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PharmaCategory mutation op: %q", m.Op())
	}
}

// PipelineStageClient is a client for the PipelineStage schema.
type PipelineStageClient struct {
	config
}

// NewPipelineStageClient returns a client for the PipelineStage from the given config.
func NewPipelineStageClient(c config) *PipelineStageClient {
	return &PipelineStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestage.Hooks(f(g(h())))`.
func (c *PipelineStageClient) Use(hooks ...Hook) {
	c.hooks.PipelineStage = append(c.hooks.PipelineStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestage.Intercept(f(g(h())))`.
func (c *PipelineStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStage = append(c.inters.PipelineStage, interceptors...)
}

// Create returns a builder for creating a PipelineStage entity.
func (c *PipelineStageClient) Create() *PipelineStageCreate {
	mutation := newPipelineStageMutation(c.config, OpCreate)
	return &PipelineStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStage entities.
func (c *PipelineStageClient) CreateBulk(builders ...*PipelineStageCreate) *PipelineStageCreateBulk {
	return &PipelineStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStageClient) MapCreateBulk(slice any, setFunc func(*PipelineStageCreate, int)) *PipelineStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStageCreateBulk{err: fmt.Errorf("calling to PipelineStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStage.
func (c *PipelineStageClient) Update() *PipelineStageUpdate {
	mutation := newPipelineStageMutation(c.config, OpUpdate)
	return &PipelineStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStageClient) UpdateOne(_m *PipelineStage) *PipelineStageUpdateOne {
	mutation := newPipelineStageMutation(c.config, OpUpdateOne, withPipelineStage(_m))
	return &PipelineStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStageClient) UpdateOneID(id string) *PipelineStageUpdateOne {
	mutation := newPipelineStageMutation(c.config, OpUpdateOne, withPipelineStageID(id))
	return &PipelineStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStage.
func (c *PipelineStageClient) Delete() *PipelineStageDelete {
	mutation := newPipelineStageMutation(c.config, OpDelete)
	return &PipelineStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStageClient) DeleteOne(_m *PipelineStage) *PipelineStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStageClient) DeleteOneID(id string) *PipelineStageDeleteOne {
	builder := c.Delete().Where(pipelinestage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStageDeleteOne{builder}
}

// Query returns a query builder for PipelineStage.
func (c *PipelineStageClient) Query() *PipelineStageQuery {
	return &PipelineStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStage},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStage entity by its id.
func (c *PipelineStageClient) Get(ctx context.Context, id string) (*PipelineStage, error) {
	return c.Query().Where(pipelinestage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStageClient) GetX(ctx context.Context, id string) *PipelineStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineStageClient) Hooks() []Hook {
	return c.hooks.PipelineStage
}

// Interceptors returns the client interceptors.
func (c *PipelineStageClient) Interceptors() []Interceptor {
	return c.inters.PipelineStage
}

func (c *PipelineStageClient) mutate(ctx context.Context, m *PipelineStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStage mutation op: %q", m.Op())
	}
}

// ProcessTrackingClient is a client for the ProcessTracking schema.
type ProcessTrackingClient struct {
	config
}

// NewProcessTrackingClient returns a client for the ProcessTracking from the given config.
func NewProcessTrackingClient(c config) *ProcessTrackingClient {
	return &ProcessTrackingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processtracking.Hooks(f(g(h())))`.
func (c *ProcessTrackingClient) Use(hooks ...Hook) {
	c.hooks.ProcessTracking = append(c.hooks.ProcessTracking, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processtracking.Intercept(f(g(h())))`.
func (c *ProcessTrackingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessTracking = append(c.inters.ProcessTracking, interceptors...)
}

// Create returns a builder for creating a ProcessTracking entity.
func (c *ProcessTrackingClient) Create() *ProcessTrackingCreate {
	mutation := newProcessTrackingMutation(c.config, OpCreate)
	return &ProcessTrackingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessTracking entities.
func (c *ProcessTrackingClient) CreateBulk(builders ...*ProcessTrackingCreate) *ProcessTrackingCreateBulk {
	return &ProcessTrackingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessTrackingClient) MapCreateBulk(slice any, setFunc func(*ProcessTrackingCreate, int)) *ProcessTrackingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessTrackingCreateBulk{err: fmt.Errorf("calling to ProcessTrackingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessTrackingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessTrackingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessTracking.
func (c *ProcessTrackingClient) Update() *ProcessTrackingUpdate {
	mutation := newProcessTrackingMutation(c.config, OpUpdate)
	return &ProcessTrackingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessTrackingClient) UpdateOne(_m *ProcessTracking) *ProcessTrackingUpdateOne {
	mutation := newProcessTrackingMutation(c.config, OpUpdateOne, withProcessTracking(_m))
	return &ProcessTrackingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessTrackingClient) UpdateOneID(id string) *ProcessTrackingUpdateOne {
	mutation := newProcessTrackingMutation(c.config, OpUpdateOne, withProcessTrackingID(id))
	return &ProcessTrackingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessTracking.
func (c *ProcessTrackingClient) Delete() *ProcessTrackingDelete {
	mutation := newProcessTrackingMutation(c.config, OpDelete)
	return &ProcessTrackingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessTrackingClient) DeleteOne(_m *ProcessTracking) *ProcessTrackingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessTrackingClient) DeleteOneID(id string) *ProcessTrackingDeleteOne {
	builder := c.Delete().Where(processtracking.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessTrackingDeleteOne{builder}
}

// Query returns a query builder for ProcessTracking.
func (c *ProcessTrackingClient) Query() *ProcessTrackingQuery {
	return &ProcessTrackingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessTracking},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessTracking entity by its id.
func (c *ProcessTrackingClient) Get(ctx context.Context, id string) (*ProcessTracking, error) {
	return c.Query().Where(processtracking.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessTrackingClient) GetX(ctx context.Context, id string) *ProcessTracking {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a ProcessTracking.
func (c *ProcessTrackingClient) QueryRequest(_m *ProcessTracking) *AnalysisRequestQuery {
	query := (&AnalysisRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processtracking.Table, processtracking.FieldID, id),
			sqlgraph.To(analysisrequest.Table, analysisrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, processtracking.RequestTable, processtracking.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessTrackingClient) Hooks() []Hook {
	return c.hooks.ProcessTracking
}

// Interceptors returns the client interceptors.
func (c *ProcessTrackingClient) Interceptors() []Interceptor {
	return c.inters.ProcessTracking
}

func (c *ProcessTrackingClient) mutate(ctx context.Context, m *ProcessTrackingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessTrackingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessTrackingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessTrackingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessTrackingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessTracking mutation op: %q", m.Op())
	}
}

// ProviderResponseClient is a client for the ProviderResponse schema.
type ProviderResponseClient struct {
	config
}

// NewProviderResponseClient returns a client for the ProviderResponse from the given config.
func NewProviderResponseClient(c config) *ProviderResponseClient {
	return &ProviderResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providerresponse.Hooks(f(g(h())))`.
func (c *ProviderResponseClient) Use(hooks ...Hook) {
	c.hooks.ProviderResponse = append(c.hooks.ProviderResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providerresponse.Intercept(f(g(h())))`.
func (c *ProviderResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderResponse = append(c.inters.ProviderResponse, interceptors...)
}

// Create returns a builder for creating a ProviderResponse entity.
func (c *ProviderResponseClient) Create() *ProviderResponseCreate {
	mutation := newProviderResponseMutation(c.config, OpCreate)
	return &ProviderResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderResponse entities.
func (c *ProviderResponseClient) CreateBulk(builders ...*ProviderResponseCreate) *ProviderResponseCreateBulk {
	return &ProviderResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderResponseClient) MapCreateBulk(slice any, setFunc func(*ProviderResponseCreate, int)) *ProviderResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderResponseCreateBulk{err: fmt.Errorf("calling to ProviderResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderResponse.
func (c *ProviderResponseClient) Update() *ProviderResponseUpdate {
	mutation := newProviderResponseMutation(c.config, OpUpdate)
	return &ProviderResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderResponseClient) UpdateOne(_m *ProviderResponse) *ProviderResponseUpdateOne {
	mutation := newProviderResponseMutation(c.config, OpUpdateOne, withProviderResponse(_m))
	return &ProviderResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderResponseClient) UpdateOneID(id string) *ProviderResponseUpdateOne {
	mutation := newProviderResponseMutation(c.config, OpUpdateOne, withProviderResponseID(id))
	return &ProviderResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderResponse.
func (c *ProviderResponseClient) Delete() *ProviderResponseDelete {
	mutation := newProviderResponseMutation(c.config, OpDelete)
	return &ProviderResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderResponseClient) DeleteOne(_m *ProviderResponse) *ProviderResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderResponseClient) DeleteOneID(id string) *ProviderResponseDeleteOne {
	builder := c.Delete().Where(providerresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderResponseDeleteOne{builder}
}

// Query returns a query builder for ProviderResponse.
func (c *ProviderResponseClient) Query() *ProviderResponseQuery {
	return &ProviderResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderResponse entity by its id.
func (c *ProviderResponseClient) Get(ctx context.Context, id string) (*ProviderResponse, error) {
	return c.Query().Where(providerresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderResponseClient) GetX(ctx context.Context, id string) *ProviderResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategoryResult queries the category_result edge of a ProviderResponse.
func (c *ProviderResponseClient) QueryCategoryResult(_m *ProviderResponse) *CategoryResultQuery {
	query := (&CategoryResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(providerresponse.Table, providerresponse.FieldID, id),
			sqlgraph.To(categoryresult.Table, categoryresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, providerresponse.CategoryResultTable, providerresponse.CategoryResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProviderResponseClient) Hooks() []Hook {
	return c.hooks.ProviderResponse
}

// Interceptors returns the client interceptors.
func (c *ProviderResponseClient) Interceptors() []Interceptor {
	return c.inters.ProviderResponse
}

func (c *ProviderResponseClient) mutate(ctx context.Context, m *ProviderResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderResponse mutation op: %q", m.Op())
	}
}

// RateBucketClient is a client for the RateBucket schema.
type RateBucketClient struct {
	config
}

// NewRateBucketClient returns a client for the RateBucket from the given config.
func NewRateBucketClient(c config) *RateBucketClient {
	return &RateBucketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ratebucket.Hooks(f(g(h())))`.
func (c *RateBucketClient) Use(hooks ...Hook) {
	c.hooks.RateBucket = append(c.hooks.RateBucket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ratebucket.Intercept(f(g(h())))`.
func (c *RateBucketClient) Intercept(interceptors ...Interceptor) {
	c.inters.RateBucket = append(c.inters.RateBucket, interceptors...)
}

// Create returns a builder for creating a RateBucket entity.
func (c *RateBucketClient) Create() *RateBucketCreate {
	mutation := newRateBucketMutation(c.config, OpCreate)
	return &RateBucketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RateBucket entities.
func (c *RateBucketClient) CreateBulk(builders ...*RateBucketCreate) *RateBucketCreateBulk {
	return &RateBucketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RateBucketClient) MapCreateBulk(slice any, setFunc func(*RateBucketCreate, int)) *RateBucketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RateBucketCreateBulk{err: fmt.Errorf("calling to RateBucketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RateBucketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RateBucketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RateBucket.
func (c *RateBucketClient) Update() *RateBucketUpdate {
	mutation := newRateBucketMutation(c.config, OpUpdate)
	return &RateBucketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RateBucketClient) UpdateOne(_m *RateBucket) *RateBucketUpdateOne {
	mutation := newRateBucketMutation(c.config, OpUpdateOne, withRateBucket(_m))
	return &RateBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RateBucketClient) UpdateOneID(id string) *RateBucketUpdateOne {
	mutation := newRateBucketMutation(c.config, OpUpdateOne, withRateBucketID(id))
	return &RateBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RateBucket.
func (c *RateBucketClient) Delete() *RateBucketDelete {
	mutation := newRateBucketMutation(c.config, OpDelete)
	return &RateBucketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RateBucketClient) DeleteOne(_m *RateBucket) *RateBucketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RateBucketClient) DeleteOneID(id string) *RateBucketDeleteOne {
	builder := c.Delete().Where(ratebucket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RateBucketDeleteOne{builder}
}

// Query returns a query builder for RateBucket.
func (c *RateBucketClient) Query() *RateBucketQuery {
	return &RateBucketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRateBucket},
		inters: c.Interceptors(),
	}
}

// Get returns a RateBucket entity by its id.
func (c *RateBucketClient) Get(ctx context.Context, id string) (*RateBucket, error) {
	return c.Query().Where(ratebucket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RateBucketClient) GetX(ctx context.Context, id string) *RateBucket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RateBucketClient) Hooks() []Hook {
	return c.hooks.RateBucket
}

// Interceptors returns the client interceptors.
func (c *RateBucketClient) Interceptors() []Interceptor {
	return c.inters.RateBucket
}

func (c *RateBucketClient) mutate(ctx context.Context, m *RateBucketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RateBucketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RateBucketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RateBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RateBucketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RateBucket mutation op: %q", m.Op())
	}
}

// ScoringParameterClient is a client for the ScoringParameter schema.
type ScoringParameterClient struct {
	config
}

// NewScoringParameterClient returns a client for the ScoringParameter from the given config.
func NewScoringParameterClient(c config) *ScoringParameterClient {
	return &ScoringParameterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoringparameter.Hooks(f(g(h())))`.
func (c *ScoringParameterClient) Use(hooks ...Hook) {
	c.hooks.ScoringParameter = append(c.hooks.ScoringParameter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoringparameter.Intercept(f(g(h())))`.
func (c *ScoringParameterClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoringParameter = append(c.inters.ScoringParameter, interceptors...)
}

// Create returns a builder for creating a ScoringParameter entity.
func (c *ScoringParameterClient) Create() *ScoringParameterCreate {
	mutation := newScoringParameterMutation(c.config, OpCreate)
	return &ScoringParameterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoringParameter entities.
func (c *ScoringParameterClient) CreateBulk(builders ...*ScoringParameterCreate) *ScoringParameterCreateBulk {
	return &ScoringParameterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoringParameterClient) MapCreateBulk(slice any, setFunc func(*ScoringParameterCreate, int)) *ScoringParameterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoringParameterCreateBulk{err: fmt.Errorf("calling to ScoringParameterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoringParameterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoringParameterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoringParameter.
func (c *ScoringParameterClient) Update() *ScoringParameterUpdate {
	mutation := newScoringParameterMutation(c.config, OpUpdate)
	return &ScoringParameterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoringParameterClient) UpdateOne(_m *ScoringParameter) *ScoringParameterUpdateOne {
	mutation := newScoringParameterMutation(c.config, OpUpdateOne, withScoringParameter(_m))
	return &ScoringParameterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoringParameterClient) UpdateOneID(id string) *ScoringParameterUpdateOne {
	mutation := newScoringParameterMutation(c.config, OpUpdateOne, withScoringParameterID(id))
	return &ScoringParameterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoringParameter.
func (c *ScoringParameterClient) Delete() *ScoringParameterDelete {
	mutation := newScoringParameterMutation(c.config, OpDelete)
	return &ScoringParameterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoringParameterClient) DeleteOne(_m *ScoringParameter) *ScoringParameterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoringParameterClient) DeleteOneID(id string) *ScoringParameterDeleteOne {
	builder := c.Delete().Where(scoringparameter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoringParameterDeleteOne{builder}
}

// Query returns a query builder for ScoringParameter.
func (c *ScoringParameterClient) Query() *ScoringParameterQuery {
	return &ScoringParameterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoringParameter},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoringParameter entity by its id.
func (c *ScoringParameterClient) Get(ctx context.Context, id string) (*ScoringParameter, error) {
	return c.Query().Where(scoringparameter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoringParameterClient) GetX(ctx context.Context, id string) *ScoringParameter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoringParameterClient) Hooks() []Hook {
	return c.hooks.ScoringParameter
}

// Interceptors returns the client interceptors.
func (c *ScoringParameterClient) Interceptors() []Interceptor {
	return c.inters.ScoringParameter
}

func (c *ScoringParameterClient) mutate(ctx context.Context, m *ScoringParameterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoringParameterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoringParameterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoringParameterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoringParameterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoringParameter mutation op: %q", m.Op())
	}
}

// ScoringRangeClient is a client for the ScoringRange schema.
type ScoringRangeClient struct {
	config
}

// NewScoringRangeClient returns a client for the ScoringRange from the given config.
func NewScoringRangeClient(c config) *ScoringRangeClient {
	return &ScoringRangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoringrange.Hooks(f(g(h())))`.
func (c *ScoringRangeClient) Use(hooks ...Hook) {
	c.hooks.ScoringRange = append(c.hooks.ScoringRange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoringrange.Intercept(f(g(h())))`.
func (c *ScoringRangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoringRange = append(c.inters.ScoringRange, interceptors...)
}

// Create returns a builder for creating a ScoringRange entity.
func (c *ScoringRangeClient) Create() *ScoringRangeCreate {
	mutation := newScoringRangeMutation(c.config, OpCreate)
	return &ScoringRangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoringRange entities.
func (c *ScoringRangeClient) CreateBulk(builders ...*ScoringRangeCreate) *ScoringRangeCreateBulk {
	return &ScoringRangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoringRangeClient) MapCreateBulk(slice any, setFunc func(*ScoringRangeCreate, int)) *ScoringRangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoringRangeCreateBulk{err: fmt.Errorf("calling to ScoringRangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoringRangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoringRangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoringRange.
func (c *ScoringRangeClient) Update() *ScoringRangeUpdate {
	mutation := newScoringRangeMutation(c.config, OpUpdate)
	return &ScoringRangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoringRangeClient) UpdateOne(_m *ScoringRange) *ScoringRangeUpdateOne {
	mutation := newScoringRangeMutation(c.config, OpUpdateOne, withScoringRange(_m))
	return &ScoringRangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoringRangeClient) UpdateOneID(id string) *ScoringRangeUpdateOne {
	mutation := newScoringRangeMutation(c.config, OpUpdateOne, withScoringRangeID(id))
	return &ScoringRangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoringRange.
func (c *ScoringRangeClient) Delete() *ScoringRangeDelete {
	mutation := newScoringRangeMutation(c.config, OpDelete)
	return &ScoringRangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoringRangeClient) DeleteOne(_m *ScoringRange) *ScoringRangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoringRangeClient) DeleteOneID(id string) *ScoringRangeDeleteOne {
	builder := c.Delete().Where(scoringrange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoringRangeDeleteOne{builder}
}

// Query returns a query builder for ScoringRange.
func (c *ScoringRangeClient) Query() *ScoringRangeQuery {
	return &ScoringRangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoringRange},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoringRange entity by its id.
func (c *ScoringRangeClient) Get(ctx context.Context, id string) (*ScoringRange, error) {
	return c.Query().Where(scoringrange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoringRangeClient) GetX(ctx context.Context, id string) *ScoringRange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoringRangeClient) Hooks() []Hook {
	return c.hooks.ScoringRange
}

// Interceptors returns the client interceptors.
func (c *ScoringRangeClient) Interceptors() []Interceptor {
	return c.inters.ScoringRange
}

func (c *ScoringRangeClient) mutate(ctx context.Context, m *ScoringRangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoringRangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoringRangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoringRangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoringRangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoringRange mutation op: %q", m.Op())
	}
}

// SourceConflictClient is a client for the SourceConflict schema.
type SourceConflictClient struct {
	config
}

// NewSourceConflictClient returns a client for the SourceConflict from the given config.
func NewSourceConflictClient(c config) *SourceConflictClient {
	return &SourceConflictClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourceconflict.Hooks(f(g(h())))`.
func (c *SourceConflictClient) Use(hooks ...Hook) {
	c.hooks.SourceConflict = append(c.hooks.SourceConflict, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourceconflict.Intercept(f(g(h())))`.
func (c *SourceConflictClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceConflict = append(c.inters.SourceConflict, interceptors...)
}

// Create returns a builder for creating a SourceConflict entity.
func (c *SourceConflictClient) Create() *SourceConflictCreate {
	mutation := newSourceConflictMutation(c.config, OpCreate)
	return &SourceConflictCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceConflict entities.
func (c *SourceConflictClient) CreateBulk(builders ...*SourceConflictCreate) *SourceConflictCreateBulk {
	return &SourceConflictCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceConflictClient) MapCreateBulk(slice any, setFunc func(*SourceConflictCreate, int)) *SourceConflictCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceConflictCreateBulk{err: fmt.Errorf("calling to SourceConflictClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceConflictCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceConflictCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceConflict.
func (c *SourceConflictClient) Update() *SourceConflictUpdate {
	mutation := newSourceConflictMutation(c.config, OpUpdate)
	return &SourceConflictUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceConflictClient) UpdateOne(_m *SourceConflict) *SourceConflictUpdateOne {
	mutation := newSourceConflictMutation(c.config, OpUpdateOne, withSourceConflict(_m))
	return &SourceConflictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceConflictClient) UpdateOneID(id string) *SourceConflictUpdateOne {
	mutation := newSourceConflictMutation(c.config, OpUpdateOne, withSourceConflictID(id))
	return &SourceConflictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceConflict.
func (c *SourceConflictClient) Delete() *SourceConflictDelete {
	mutation := newSourceConflictMutation(c.config, OpDelete)
	return &SourceConflictDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceConflictClient) DeleteOne(_m *SourceConflict) *SourceConflictDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceConflictClient) DeleteOneID(id string) *SourceConflictDeleteOne {
	builder := c.Delete().Where(sourceconflict.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceConflictDeleteOne{builder}
}

// Query returns a query builder for SourceConflict.
func (c *SourceConflictClient) Query() *SourceConflictQuery {
	return &SourceConflictQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceConflict},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceConflict entity by its id.
func (c *SourceConflictClient) Get(ctx context.Context, id string) (*SourceConflict, error) {
	return c.Query().Where(sourceconflict.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceConflictClient) GetX(ctx context.Context, id string) *SourceConflict {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategoryResult queries the category_result edge of a SourceConflict.
func (c *SourceConflictClient) QueryCategoryResult(_m *SourceConflict) *CategoryResultQuery {
	query := (&CategoryResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourceconflict.Table, sourceconflict.FieldID, id),
			sqlgraph.To(categoryresult.Table, categoryresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourceconflict.CategoryResultTable, sourceconflict.CategoryResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceConflictClient) Hooks() []Hook {
	return c.hooks.SourceConflict
}

// Interceptors returns the client interceptors.
func (c *SourceConflictClient) Interceptors() []Interceptor {
	return c.inters.SourceConflict
}

func (c *SourceConflictClient) mutate(ctx context.Context, m *SourceConflictMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceConflictCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceConflictUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceConflictUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceConflictDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceConflict mutation op: %q", m.Op())
	}
}

// StageEventClient is a client for the StageEvent schema.
type StageEventClient struct {
	config
}

// NewStageEventClient returns a client for the StageEvent from the given config.
func NewStageEventClient(c config) *StageEventClient {
	return &StageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageevent.Hooks(f(g(h())))`.
func (c *StageEventClient) Use(hooks ...Hook) {
	c.hooks.StageEvent = append(c.hooks.StageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageevent.Intercept(f(g(h())))`.
func (c *StageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageEvent = append(c.inters.StageEvent, interceptors...)
}

// Create returns a builder for creating a StageEvent entity.
func (c *StageEventClient) Create() *StageEventCreate {
	mutation := newStageEventMutation(c.config, OpCreate)
	return &StageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageEvent entities.
func (c *StageEventClient) CreateBulk(builders ...*StageEventCreate) *StageEventCreateBulk {
	return &StageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageEventClient) MapCreateBulk(slice any, setFunc func(*StageEventCreate, int)) *StageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageEventCreateBulk{err: fmt.Errorf("calling to StageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageEvent.
func (c *StageEventClient) Update() *StageEventUpdate {
	mutation := newStageEventMutation(c.config, OpUpdate)
	return &StageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageEventClient) UpdateOne(_m *StageEvent) *StageEventUpdateOne {
	mutation := newStageEventMutation(c.config, OpUpdateOne, withStageEvent(_m))
	return &StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageEventClient) UpdateOneID(id string) *StageEventUpdateOne {
	mutation := newStageEventMutation(c.config, OpUpdateOne, withStageEventID(id))
	return &StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageEvent.
func (c *StageEventClient) Delete() *StageEventDelete {
	mutation := newStageEventMutation(c.config, OpDelete)
	return &StageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageEventClient) DeleteOne(_m *StageEvent) *StageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageEventClient) DeleteOneID(id string) *StageEventDeleteOne {
	builder := c.Delete().Where(stageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageEventDeleteOne{builder}
}

// Query returns a query builder for StageEvent.
func (c *StageEventClient) Query() *StageEventQuery {
	return &StageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StageEvent entity by its id.
func (c *StageEventClient) Get(ctx context.Context, id string) (*StageEvent, error) {
	return c.Query().Where(stageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageEventClient) GetX(ctx context.Context, id string) *StageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a StageEvent.
func (c *StageEventClient) QueryRequest(_m *StageEvent) *AnalysisRequestQuery {
	query := (&AnalysisRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stageevent.Table, stageevent.FieldID, id),
			sqlgraph.To(analysisrequest.Table, analysisrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stageevent.RequestTable, stageevent.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageEventClient) Hooks() []Hook {
	return c.hooks.StageEvent
}

// Interceptors returns the client interceptors.
func (c *StageEventClient) Interceptors() []Interceptor {
	return c.inters.StageEvent
}

func (c *StageEventClient) mutate(ctx context.Context, m *StageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageEvent mutation op: %q", m.Op())
	}
}

// SummaryHistoryClient is a client for the SummaryHistory schema.
type SummaryHistoryClient struct {
	config
}

// NewSummaryHistoryClient returns a client for the SummaryHistory from the given config.
func NewSummaryHistoryClient(c config) *SummaryHistoryClient {
	return &SummaryHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summaryhistory.Hooks(f(g(h())))`.
func (c *SummaryHistoryClient) Use(hooks ...Hook) {
	c.hooks.SummaryHistory = append(c.hooks.SummaryHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summaryhistory.Intercept(f(g(h())))`.
func (c *SummaryHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryHistory = append(c.inters.SummaryHistory, interceptors...)
}

// Create returns a builder for creating a SummaryHistory entity.
func (c *SummaryHistoryClient) Create() *SummaryHistoryCreate {
	mutation := newSummaryHistoryMutation(c.config, OpCreate)
	return &SummaryHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryHistory entities.
func (c *SummaryHistoryClient) CreateBulk(builders ...*SummaryHistoryCreate) *SummaryHistoryCreateBulk {
	return &SummaryHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryHistoryClient) MapCreateBulk(slice any, setFunc func(*SummaryHistoryCreate, int)) *SummaryHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryHistoryCreateBulk{err: fmt.Errorf("calling to SummaryHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryHistory.
func (c *SummaryHistoryClient) Update() *SummaryHistoryUpdate {
	mutation := newSummaryHistoryMutation(c.config, OpUpdate)
	return &SummaryHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryHistoryClient) UpdateOne(_m *SummaryHistory) *SummaryHistoryUpdateOne {
	mutation := newSummaryHistoryMutation(c.config, OpUpdateOne, withSummaryHistory(_m))
	return &SummaryHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryHistoryClient) UpdateOneID(id string) *SummaryHistoryUpdateOne {
	mutation := newSummaryHistoryMutation(c.config, OpUpdateOne, withSummaryHistoryID(id))
	return &SummaryHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryHistory.
func (c *SummaryHistoryClient) Delete() *SummaryHistoryDelete {
	mutation := newSummaryHistoryMutation(c.config, OpDelete)
	return &SummaryHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryHistoryClient) DeleteOne(_m *SummaryHistory) *SummaryHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryHistoryClient) DeleteOneID(id string) *SummaryHistoryDeleteOne {
	builder := c.Delete().Where(summaryhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryHistoryDeleteOne{builder}
}

// Query returns a query builder for SummaryHistory.
func (c *SummaryHistoryClient) Query() *SummaryHistoryQuery {
	return &SummaryHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryHistory entity by its id.
func (c *SummaryHistoryClient) Get(ctx context.Context, id string) (*SummaryHistory, error) {
	return c.Query().Where(summaryhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryHistoryClient) GetX(ctx context.Context, id string) *SummaryHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SummaryHistoryClient) Hooks() []Hook {
	return c.hooks.SummaryHistory
}

// Interceptors returns the client interceptors.
func (c *SummaryHistoryClient) Interceptors() []Interceptor {
	return c.inters.SummaryHistory
}

func (c *SummaryHistoryClient) mutate(ctx context.Context, m *SummaryHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryHistory mutation op: %q", m.Op())
	}
}

// SummaryStyleClient is a client for the SummaryStyle schema.
type SummaryStyleClient struct {
	config
}

// NewSummaryStyleClient returns a client for the SummaryStyle from the given config.
func NewSummaryStyleClient(c config) *SummaryStyleClient {
	return &SummaryStyleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summarystyle.Hooks(f(g(h())))`.
func (c *SummaryStyleClient) Use(hooks ...Hook) {
	c.hooks.SummaryStyle = append(c.hooks.SummaryStyle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summarystyle.Intercept(f(g(h())))`.
func (c *SummaryStyleClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryStyle = append(c.inters.SummaryStyle, interceptors...)
}

// Create returns a builder for creating a SummaryStyle entity.
func (c *SummaryStyleClient) Create() *SummaryStyleCreate {
	mutation := newSummaryStyleMutation(c.config, OpCreate)
	return &SummaryStyleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryStyle entities.
func (c *SummaryStyleClient) CreateBulk(builders ...*SummaryStyleCreate) *SummaryStyleCreateBulk {
	return &SummaryStyleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryStyleClient) MapCreateBulk(slice any, setFunc func(*SummaryStyleCreate, int)) *SummaryStyleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryStyleCreateBulk{err: fmt.Errorf("calling to SummaryStyleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryStyleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryStyleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryStyle.
func (c *SummaryStyleClient) Update() *SummaryStyleUpdate {
	mutation := newSummaryStyleMutation(c.config, OpUpdate)
	return &SummaryStyleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryStyleClient) UpdateOne(_m *SummaryStyle) *SummaryStyleUpdateOne {
	mutation := newSummaryStyleMutation(c.config, OpUpdateOne, withSummaryStyle(_m))
	return &SummaryStyleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryStyleClient) UpdateOneID(id string) *SummaryStyleUpdateOne {
	mutation := newSummaryStyleMutation(c.config, OpUpdateOne, withSummaryStyleID(id))
	return &SummaryStyleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryStyle.
func (c *SummaryStyleClient) Delete() *SummaryStyleDelete {
	mutation := newSummaryStyleMutation(c.config, OpDelete)
	return &SummaryStyleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryStyleClient) DeleteOne(_m *SummaryStyle) *SummaryStyleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryStyleClient) DeleteOneID(id string) *SummaryStyleDeleteOne {
	builder := c.Delete().Where(summarystyle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryStyleDeleteOne{builder}
}

// Query returns a query builder for SummaryStyle.
func (c *SummaryStyleClient) Query() *SummaryStyleQuery {
	return &SummaryStyleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryStyle},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryStyle entity by its id.
func (c *SummaryStyleClient) Get(ctx context.Context, id string) (*SummaryStyle, error) {
	return c.Query().Where(summarystyle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryStyleClient) GetX(ctx context.Context, id string) *SummaryStyle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SummaryStyleClient) Hooks() []Hook {
	return c.hooks.SummaryStyle
}

// Interceptors returns the client interceptors.
func (c *SummaryStyleClient) Interceptors() []Interceptor {
	return c.inters.SummaryStyle
}

func (c *SummaryStyleClient) mutate(ctx context.Context, m *SummaryStyleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryStyleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryStyleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryStyleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryStyleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryStyle mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisRequest, AuditEvent, CategoryDependency, CategoryResult, FinalOutput,
		MergedData, ParameterResult, PharmaCategory, PipelineStage, ProcessTracking,
		ProviderResponse, RateBucket, ScoringParameter, ScoringRange, SourceConflict,
		StageEvent, SummaryHistory, SummaryStyle []ent.Hook
	}
	inters struct {
		AnalysisRequest, AuditEvent, CategoryDependency, CategoryResult, FinalOutput,
		MergedData, ParameterResult, PharmaCategory, PipelineStage, ProcessTracking,
		ProviderResponse, RateBucket, ScoringParameter, ScoringRange, SourceConflict,
		StageEvent, SummaryHistory, SummaryStyle []ent.Interceptor
	}
)
