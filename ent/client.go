// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/regsentry/regsentry/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/ent/flag"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Audit is the client for interacting with the Audit builders.
	Audit *AuditClient
	// AuditChunkResult is the client for interacting with the AuditChunkResult builders.
	AuditChunkResult *AuditChunkResultClient
	// AuditorQuestion is the client for interacting with the AuditorQuestion builders.
	AuditorQuestion *AuditorQuestionClient
	// Chunk is the client for interacting with the Chunk builders.
	Chunk *ChunkClient
	// Citation is the client for interacting with the Citation builders.
	Citation *CitationClient
	// ComplianceScore is the client for interacting with the ComplianceScore builders.
	ComplianceScore *ComplianceScoreClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Flag is the client for interacting with the Flag builders.
	Flag *FlagClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Audit = NewAuditClient(c.config)
	c.AuditChunkResult = NewAuditChunkResultClient(c.config)
	c.AuditorQuestion = NewAuditorQuestionClient(c.config)
	c.Chunk = NewChunkClient(c.config)
	c.Citation = NewCitationClient(c.config)
	c.ComplianceScore = NewComplianceScoreClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Flag = NewFlagClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Audit:            NewAuditClient(cfg),
		AuditChunkResult: NewAuditChunkResultClient(cfg),
		AuditorQuestion:  NewAuditorQuestionClient(cfg),
		Chunk:            NewChunkClient(cfg),
		Citation:         NewCitationClient(cfg),
		ComplianceScore:  NewComplianceScoreClient(cfg),
		Document:         NewDocumentClient(cfg),
		Flag:             NewFlagClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Audit:            NewAuditClient(cfg),
		AuditChunkResult: NewAuditChunkResultClient(cfg),
		AuditorQuestion:  NewAuditorQuestionClient(cfg),
		Chunk:            NewChunkClient(cfg),
		Citation:         NewCitationClient(cfg),
		ComplianceScore:  NewComplianceScoreClient(cfg),
		Document:         NewDocumentClient(cfg),
		Flag:             NewFlagClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Audit.
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
		c.Audit, c.AuditChunkResult, c.AuditorQuestion, c.Chunk, c.Citation,
		c.ComplianceScore, c.Document, c.Flag,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Audit, c.AuditChunkResult, c.AuditorQuestion, c.Chunk, c.Citation,
		c.ComplianceScore, c.Document, c.Flag,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditMutation:
		return c.Audit.mutate(ctx, m)
	case *AuditChunkResultMutation:
		return c.AuditChunkResult.mutate(ctx, m)
	case *AuditorQuestionMutation:
		return c.AuditorQuestion.mutate(ctx, m)
	case *ChunkMutation:
		return c.Chunk.mutate(ctx, m)
	case *CitationMutation:
		return c.Citation.mutate(ctx, m)
	case *ComplianceScoreMutation:
		return c.ComplianceScore.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *FlagMutation:
		return c.Flag.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditClient is a client for the Audit schema.
type AuditClient struct {
	config
}

// NewAuditClient returns a client for the Audit from the given config.
func NewAuditClient(c config) *AuditClient {
	return &AuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audit.Hooks(f(g(h())))`.
func (c *AuditClient) Use(hooks ...Hook) {
	c.hooks.Audit = append(c.hooks.Audit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audit.Intercept(f(g(h())))`.
func (c *AuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.Audit = append(c.inters.Audit, interceptors...)
}

// Create returns a builder for creating a Audit entity.
func (c *AuditClient) Create() *AuditCreate {
	mutation := newAuditMutation(c.config, OpCreate)
	return &AuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Audit entities.
func (c *AuditClient) CreateBulk(builders ...*AuditCreate) *AuditCreateBulk {
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditClient) MapCreateBulk(slice any, setFunc func(*AuditCreate, int)) *AuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditCreateBulk{err: fmt.Errorf("calling to AuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Audit.
func (c *AuditClient) Update() *AuditUpdate {
	mutation := newAuditMutation(c.config, OpUpdate)
	return &AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditClient) UpdateOne(_m *Audit) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAudit(_m))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditClient) UpdateOneID(id int) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAuditID(id))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Audit.
func (c *AuditClient) Delete() *AuditDelete {
	mutation := newAuditMutation(c.config, OpDelete)
	return &AuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditClient) DeleteOne(_m *Audit) *AuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditClient) DeleteOneID(id int) *AuditDeleteOne {
	builder := c.Delete().Where(audit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditDeleteOne{builder}
}

// Query returns a query builder for Audit.
func (c *AuditClient) Query() *AuditQuery {
	return &AuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a Audit entity by its id.
func (c *AuditClient) Get(ctx context.Context, id int) (*Audit, error) {
	return c.Query().Where(audit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditClient) GetX(ctx context.Context, id int) *Audit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Audit.
func (c *AuditClient) QueryDocument(_m *Audit) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, audit.DocumentTable, audit.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChunkResults queries the chunk_results edge of a Audit.
func (c *AuditClient) QueryChunkResults(_m *Audit) *AuditChunkResultQuery {
	query := (&AuditChunkResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditchunkresult.Table, auditchunkresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ChunkResultsTable, audit.ChunkResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFlags queries the flags edge of a Audit.
func (c *AuditClient) QueryFlags(_m *Audit) *FlagQuery {
	query := (&FlagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(flag.Table, flag.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.FlagsTable, audit.FlagsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Audit.
func (c *AuditClient) QueryQuestions(_m *Audit) *AuditorQuestionQuery {
	query := (&AuditorQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditorquestion.Table, auditorquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.QuestionsTable, audit.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScores queries the scores edge of a Audit.
func (c *AuditClient) QueryScores(_m *Audit) *ComplianceScoreQuery {
	query := (&ComplianceScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(compliancescore.Table, compliancescore.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ScoresTable, audit.ScoresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditClient) Hooks() []Hook {
	return c.hooks.Audit
}

// Interceptors returns the client interceptors.
func (c *AuditClient) Interceptors() []Interceptor {
	return c.inters.Audit
}

func (c *AuditClient) mutate(ctx context.Context, m *AuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Audit mutation op: %q", m.Op())
	}
}

// AuditChunkResultClient is a client for the AuditChunkResult schema.
type AuditChunkResultClient struct {
	config
}

// NewAuditChunkResultClient returns a client for the AuditChunkResult from the given config.
func NewAuditChunkResultClient(c config) *AuditChunkResultClient {
	return &AuditChunkResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditchunkresult.Hooks(f(g(h())))`.
func (c *AuditChunkResultClient) Use(hooks ...Hook) {
	c.hooks.AuditChunkResult = append(c.hooks.AuditChunkResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditchunkresult.Intercept(f(g(h())))`.
func (c *AuditChunkResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditChunkResult = append(c.inters.AuditChunkResult, interceptors...)
}

// Create returns a builder for creating a AuditChunkResult entity.
func (c *AuditChunkResultClient) Create() *AuditChunkResultCreate {
	mutation := newAuditChunkResultMutation(c.config, OpCreate)
	return &AuditChunkResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditChunkResult entities.
func (c *AuditChunkResultClient) CreateBulk(builders ...*AuditChunkResultCreate) *AuditChunkResultCreateBulk {
	return &AuditChunkResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditChunkResultClient) MapCreateBulk(slice any, setFunc func(*AuditChunkResultCreate, int)) *AuditChunkResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditChunkResultCreateBulk{err: fmt.Errorf("calling to AuditChunkResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditChunkResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditChunkResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditChunkResult.
func (c *AuditChunkResultClient) Update() *AuditChunkResultUpdate {
	mutation := newAuditChunkResultMutation(c.config, OpUpdate)
	return &AuditChunkResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditChunkResultClient) UpdateOne(_m *AuditChunkResult) *AuditChunkResultUpdateOne {
	mutation := newAuditChunkResultMutation(c.config, OpUpdateOne, withAuditChunkResult(_m))
	return &AuditChunkResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditChunkResultClient) UpdateOneID(id int) *AuditChunkResultUpdateOne {
	mutation := newAuditChunkResultMutation(c.config, OpUpdateOne, withAuditChunkResultID(id))
	return &AuditChunkResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditChunkResult.
func (c *AuditChunkResultClient) Delete() *AuditChunkResultDelete {
	mutation := newAuditChunkResultMutation(c.config, OpDelete)
	return &AuditChunkResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditChunkResultClient) DeleteOne(_m *AuditChunkResult) *AuditChunkResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditChunkResultClient) DeleteOneID(id int) *AuditChunkResultDeleteOne {
	builder := c.Delete().Where(auditchunkresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditChunkResultDeleteOne{builder}
}

// Query returns a query builder for AuditChunkResult.
func (c *AuditChunkResultClient) Query() *AuditChunkResultQuery {
	return &AuditChunkResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditChunkResult},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditChunkResult entity by its id.
func (c *AuditChunkResultClient) Get(ctx context.Context, id int) (*AuditChunkResult, error) {
	return c.Query().Where(auditchunkresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditChunkResultClient) GetX(ctx context.Context, id int) *AuditChunkResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditChunkResult.
func (c *AuditChunkResultClient) QueryAudit(_m *AuditChunkResult) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditchunkresult.Table, auditchunkresult.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditchunkresult.AuditTable, auditchunkresult.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditChunkResultClient) Hooks() []Hook {
	return c.hooks.AuditChunkResult
}

// Interceptors returns the client interceptors.
func (c *AuditChunkResultClient) Interceptors() []Interceptor {
	return c.inters.AuditChunkResult
}

func (c *AuditChunkResultClient) mutate(ctx context.Context, m *AuditChunkResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditChunkResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditChunkResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditChunkResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditChunkResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditChunkResult mutation op: %q", m.Op())
	}
}

// AuditorQuestionClient is a client for the AuditorQuestion schema.
type AuditorQuestionClient struct {
	config
}

// NewAuditorQuestionClient returns a client for the AuditorQuestion from the given config.
func NewAuditorQuestionClient(c config) *AuditorQuestionClient {
	return &AuditorQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditorquestion.Hooks(f(g(h())))`.
func (c *AuditorQuestionClient) Use(hooks ...Hook) {
	c.hooks.AuditorQuestion = append(c.hooks.AuditorQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditorquestion.Intercept(f(g(h())))`.
func (c *AuditorQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditorQuestion = append(c.inters.AuditorQuestion, interceptors...)
}

// Create returns a builder for creating a AuditorQuestion entity.
func (c *AuditorQuestionClient) Create() *AuditorQuestionCreate {
	mutation := newAuditorQuestionMutation(c.config, OpCreate)
	return &AuditorQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditorQuestion entities.
func (c *AuditorQuestionClient) CreateBulk(builders ...*AuditorQuestionCreate) *AuditorQuestionCreateBulk {
	return &AuditorQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditorQuestionClient) MapCreateBulk(slice any, setFunc func(*AuditorQuestionCreate, int)) *AuditorQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditorQuestionCreateBulk{err: fmt.Errorf("calling to AuditorQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditorQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditorQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditorQuestion.
func (c *AuditorQuestionClient) Update() *AuditorQuestionUpdate {
	mutation := newAuditorQuestionMutation(c.config, OpUpdate)
	return &AuditorQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditorQuestionClient) UpdateOne(_m *AuditorQuestion) *AuditorQuestionUpdateOne {
	mutation := newAuditorQuestionMutation(c.config, OpUpdateOne, withAuditorQuestion(_m))
	return &AuditorQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditorQuestionClient) UpdateOneID(id int) *AuditorQuestionUpdateOne {
	mutation := newAuditorQuestionMutation(c.config, OpUpdateOne, withAuditorQuestionID(id))
	return &AuditorQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditorQuestion.
func (c *AuditorQuestionClient) Delete() *AuditorQuestionDelete {
	mutation := newAuditorQuestionMutation(c.config, OpDelete)
	return &AuditorQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditorQuestionClient) DeleteOne(_m *AuditorQuestion) *AuditorQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditorQuestionClient) DeleteOneID(id int) *AuditorQuestionDeleteOne {
	builder := c.Delete().Where(auditorquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditorQuestionDeleteOne{builder}
}

// Query returns a query builder for AuditorQuestion.
func (c *AuditorQuestionClient) Query() *AuditorQuestionQuery {
	return &AuditorQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditorQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditorQuestion entity by its id.
func (c *AuditorQuestionClient) Get(ctx context.Context, id int) (*AuditorQuestion, error) {
	return c.Query().Where(auditorquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditorQuestionClient) GetX(ctx context.Context, id int) *AuditorQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditorQuestion.
func (c *AuditorQuestionClient) QueryAudit(_m *AuditorQuestion) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditorquestion.Table, auditorquestion.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditorquestion.AuditTable, auditorquestion.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditorQuestionClient) Hooks() []Hook {
	return c.hooks.AuditorQuestion
}

// Interceptors returns the client interceptors.
func (c *AuditorQuestionClient) Interceptors() []Interceptor {
	return c.inters.AuditorQuestion
}

func (c *AuditorQuestionClient) mutate(ctx context.Context, m *AuditorQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditorQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditorQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditorQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditorQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditorQuestion mutation op: %q", m.Op())
	}
}

// ChunkClient is a client for the Chunk schema.
type ChunkClient struct {
	config
}

// NewChunkClient returns a client for the Chunk from the given config.
func NewChunkClient(c config) *ChunkClient {
	return &ChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chunk.Hooks(f(g(h())))`.
func (c *ChunkClient) Use(hooks ...Hook) {
	c.hooks.Chunk = append(c.hooks.Chunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chunk.Intercept(f(g(h())))`.
func (c *ChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chunk = append(c.inters.Chunk, interceptors...)
}

// Create returns a builder for creating a Chunk entity.
func (c *ChunkClient) Create() *ChunkCreate {
	mutation := newChunkMutation(c.config, OpCreate)
	return &ChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chunk entities.
func (c *ChunkClient) CreateBulk(builders ...*ChunkCreate) *ChunkCreateBulk {
	return &ChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChunkClient) MapCreateBulk(slice any, setFunc func(*ChunkCreate, int)) *ChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChunkCreateBulk{err: fmt.Errorf("calling to ChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chunk.
func (c *ChunkClient) Update() *ChunkUpdate {
	mutation := newChunkMutation(c.config, OpUpdate)
	return &ChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChunkClient) UpdateOne(_m *Chunk) *ChunkUpdateOne {
	mutation := newChunkMutation(c.config, OpUpdateOne, withChunk(_m))
	return &ChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChunkClient) UpdateOneID(id int) *ChunkUpdateOne {
	mutation := newChunkMutation(c.config, OpUpdateOne, withChunkID(id))
	return &ChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chunk.
func (c *ChunkClient) Delete() *ChunkDelete {
	mutation := newChunkMutation(c.config, OpDelete)
	return &ChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChunkClient) DeleteOne(_m *Chunk) *ChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChunkClient) DeleteOneID(id int) *ChunkDeleteOne {
	builder := c.Delete().Where(chunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChunkDeleteOne{builder}
}

// Query returns a query builder for Chunk.
func (c *ChunkClient) Query() *ChunkQuery {
	return &ChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a Chunk entity by its id.
func (c *ChunkClient) Get(ctx context.Context, id int) (*Chunk, error) {
	return c.Query().Where(chunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChunkClient) GetX(ctx context.Context, id int) *Chunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Chunk.
func (c *ChunkClient) QueryDocument(_m *Chunk) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chunk.Table, chunk.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chunk.DocumentTable, chunk.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChunkClient) Hooks() []Hook {
	return c.hooks.Chunk
}

// Interceptors returns the client interceptors.
func (c *ChunkClient) Interceptors() []Interceptor {
	return c.inters.Chunk
}

func (c *ChunkClient) mutate(ctx context.Context, m *ChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chunk mutation op: %q", m.Op())
	}
}

// CitationClient is a client for the Citation schema.
type CitationClient struct {
	config
}

// NewCitationClient returns a client for the Citation from the given config.
func NewCitationClient(c config) *CitationClient {
	return &CitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `citation.Hooks(f(g(h())))`.
func (c *CitationClient) Use(hooks ...Hook) {
	c.hooks.Citation = append(c.hooks.Citation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `citation.Intercept(f(g(h())))`.
func (c *CitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Citation = append(c.inters.Citation, interceptors...)
}

// Create returns a builder for creating a Citation entity.
func (c *CitationClient) Create() *CitationCreate {
	mutation := newCitationMutation(c.config, OpCreate)
	return &CitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Citation entities.
func (c *CitationClient) CreateBulk(builders ...*CitationCreate) *CitationCreateBulk {
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CitationClient) MapCreateBulk(slice any, setFunc func(*CitationCreate, int)) *CitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CitationCreateBulk{err: fmt.Errorf("calling to CitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Citation.
func (c *CitationClient) Update() *CitationUpdate {
	mutation := newCitationMutation(c.config, OpUpdate)
	return &CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CitationClient) UpdateOne(_m *Citation) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitation(_m))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CitationClient) UpdateOneID(id int) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitationID(id))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Citation.
func (c *CitationClient) Delete() *CitationDelete {
	mutation := newCitationMutation(c.config, OpDelete)
	return &CitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CitationClient) DeleteOne(_m *Citation) *CitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CitationClient) DeleteOneID(id int) *CitationDeleteOne {
	builder := c.Delete().Where(citation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CitationDeleteOne{builder}
}

// Query returns a query builder for Citation.
func (c *CitationClient) Query() *CitationQuery {
	return &CitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCitation},
		inters: c.Interceptors(),
	}
}

// Get returns a Citation entity by its id.
func (c *CitationClient) Get(ctx context.Context, id int) (*Citation, error) {
	return c.Query().Where(citation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CitationClient) GetX(ctx context.Context, id int) *Citation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFlag queries the flag edge of a Citation.
func (c *CitationClient) QueryFlag(_m *Citation) *FlagQuery {
	query := (&FlagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(flag.Table, flag.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.FlagTable, citation.FlagColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CitationClient) Hooks() []Hook {
	return c.hooks.Citation
}

// Interceptors returns the client interceptors.
func (c *CitationClient) Interceptors() []Interceptor {
	return c.inters.Citation
}

func (c *CitationClient) mutate(ctx context.Context, m *CitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Citation mutation op: %q", m.Op())
	}
}

// ComplianceScoreClient is a client for the ComplianceScore schema.
type ComplianceScoreClient struct {
	config
}

// NewComplianceScoreClient returns a client for the ComplianceScore from the given config.
func NewComplianceScoreClient(c config) *ComplianceScoreClient {
	return &ComplianceScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compliancescore.Hooks(f(g(h())))`.
func (c *ComplianceScoreClient) Use(hooks ...Hook) {
	c.hooks.ComplianceScore = append(c.hooks.ComplianceScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compliancescore.Intercept(f(g(h())))`.
func (c *ComplianceScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.ComplianceScore = append(c.inters.ComplianceScore, interceptors...)
}

// Create returns a builder for creating a ComplianceScore entity.
func (c *ComplianceScoreClient) Create() *ComplianceScoreCreate {
	mutation := newComplianceScoreMutation(c.config, OpCreate)
	return &ComplianceScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ComplianceScore entities.
func (c *ComplianceScoreClient) CreateBulk(builders ...*ComplianceScoreCreate) *ComplianceScoreCreateBulk {
	return &ComplianceScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComplianceScoreClient) MapCreateBulk(slice any, setFunc func(*ComplianceScoreCreate, int)) *ComplianceScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComplianceScoreCreateBulk{err: fmt.Errorf("calling to ComplianceScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComplianceScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComplianceScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ComplianceScore.
func (c *ComplianceScoreClient) Update() *ComplianceScoreUpdate {
	mutation := newComplianceScoreMutation(c.config, OpUpdate)
	return &ComplianceScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComplianceScoreClient) UpdateOne(_m *ComplianceScore) *ComplianceScoreUpdateOne {
	mutation := newComplianceScoreMutation(c.config, OpUpdateOne, withComplianceScore(_m))
	return &ComplianceScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComplianceScoreClient) UpdateOneID(id int) *ComplianceScoreUpdateOne {
	mutation := newComplianceScoreMutation(c.config, OpUpdateOne, withComplianceScoreID(id))
	return &ComplianceScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ComplianceScore.
func (c *ComplianceScoreClient) Delete() *ComplianceScoreDelete {
	mutation := newComplianceScoreMutation(c.config, OpDelete)
	return &ComplianceScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComplianceScoreClient) DeleteOne(_m *ComplianceScore) *ComplianceScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComplianceScoreClient) DeleteOneID(id int) *ComplianceScoreDeleteOne {
	builder := c.Delete().Where(compliancescore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComplianceScoreDeleteOne{builder}
}

// Query returns a query builder for ComplianceScore.
func (c *ComplianceScoreClient) Query() *ComplianceScoreQuery {
	return &ComplianceScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComplianceScore},
		inters: c.Interceptors(),
	}
}

// Get returns a ComplianceScore entity by its id.
func (c *ComplianceScoreClient) Get(ctx context.Context, id int) (*ComplianceScore, error) {
	return c.Query().Where(compliancescore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComplianceScoreClient) GetX(ctx context.Context, id int) *ComplianceScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a ComplianceScore.
func (c *ComplianceScoreClient) QueryAudit(_m *ComplianceScore) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compliancescore.Table, compliancescore.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, compliancescore.AuditTable, compliancescore.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ComplianceScoreClient) Hooks() []Hook {
	return c.hooks.ComplianceScore
}

// Interceptors returns the client interceptors.
func (c *ComplianceScoreClient) Interceptors() []Interceptor {
	return c.inters.ComplianceScore
}

func (c *ComplianceScoreClient) mutate(ctx context.Context, m *ComplianceScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComplianceScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComplianceScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComplianceScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComplianceScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ComplianceScore mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id int) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id int) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id int) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id int) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunks queries the chunks edge of a Document.
func (c *DocumentClient) QueryChunks(_m *Document) *ChunkQuery {
	query := (&ChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(chunk.Table, chunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ChunksTable, document.ChunksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAudits queries the audits edge of a Document.
func (c *DocumentClient) QueryAudits(_m *Document) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.AuditsTable, document.AuditsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// FlagClient is a client for the Flag schema.
type FlagClient struct {
	config
}

// NewFlagClient returns a client for the Flag from the given config.
func NewFlagClient(c config) *FlagClient {
	return &FlagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flag.Hooks(f(g(h())))`.
func (c *FlagClient) Use(hooks ...Hook) {
	c.hooks.Flag = append(c.hooks.Flag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flag.Intercept(f(g(h())))`.
func (c *FlagClient) Intercept(interceptors ...Interceptor) {
	c.inters.Flag = append(c.inters.Flag, interceptors...)
}

// Create returns a builder for creating a Flag entity.
func (c *FlagClient) Create() *FlagCreate {
	mutation := newFlagMutation(c.config, OpCreate)
	return &FlagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Flag entities.
func (c *FlagClient) CreateBulk(builders ...*FlagCreate) *FlagCreateBulk {
	return &FlagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlagClient) MapCreateBulk(slice any, setFunc func(*FlagCreate, int)) *FlagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlagCreateBulk{err: fmt.Errorf("calling to FlagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Flag.
func (c *FlagClient) Update() *FlagUpdate {
	mutation := newFlagMutation(c.config, OpUpdate)
	return &FlagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlagClient) UpdateOne(_m *Flag) *FlagUpdateOne {
	mutation := newFlagMutation(c.config, OpUpdateOne, withFlag(_m))
	return &FlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlagClient) UpdateOneID(id int) *FlagUpdateOne {
	mutation := newFlagMutation(c.config, OpUpdateOne, withFlagID(id))
	return &FlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Flag.
func (c *FlagClient) Delete() *FlagDelete {
	mutation := newFlagMutation(c.config, OpDelete)
	return &FlagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlagClient) DeleteOne(_m *Flag) *FlagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlagClient) DeleteOneID(id int) *FlagDeleteOne {
	builder := c.Delete().Where(flag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlagDeleteOne{builder}
}

// Query returns a query builder for Flag.
func (c *FlagClient) Query() *FlagQuery {
	return &FlagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlag},
		inters: c.Interceptors(),
	}
}

// Get returns a Flag entity by its id.
func (c *FlagClient) Get(ctx context.Context, id int) (*Flag, error) {
	return c.Query().Where(flag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlagClient) GetX(ctx context.Context, id int) *Flag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a Flag.
func (c *FlagClient) QueryAudit(_m *Flag) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flag.Table, flag.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, flag.AuditTable, flag.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Flag.
func (c *FlagClient) QueryCitations(_m *Flag) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flag.Table, flag.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, flag.CitationsTable, flag.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FlagClient) Hooks() []Hook {
	return c.hooks.Flag
}

// Interceptors returns the client interceptors.
func (c *FlagClient) Interceptors() []Interceptor {
	return c.inters.Flag
}

func (c *FlagClient) mutate(ctx context.Context, m *FlagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Flag mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Audit, AuditChunkResult, AuditorQuestion, Chunk, Citation, ComplianceScore,
		Document, Flag []ent.Hook
	}
	inters struct {
		Audit, AuditChunkResult, AuditorQuestion, Chunk, Citation, ComplianceScore,
		Document, Flag []ent.Interceptor
	}
)
