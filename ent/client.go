// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/autoanalyst/analyst/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/chat"
	"github.com/autoanalyst/analyst/ent/codeexecution"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/event"
	"github.com/autoanalyst/analyst/ent/message"
	"github.com/autoanalyst/analyst/ent/messagefeedback"
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/user"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentTemplate is the client for interacting with the AgentTemplate builders.
	AgentTemplate *AgentTemplateClient
	// Chat is the client for interacting with the Chat builders.
	Chat *ChatClient
	// CodeExecution is the client for interacting with the CodeExecution builders.
	CodeExecution *CodeExecutionClient
	// DeepAnalysisReport is the client for interacting with the DeepAnalysisReport builders.
	DeepAnalysisReport *DeepAnalysisReportClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MessageFeedback is the client for interacting with the MessageFeedback builders.
	MessageFeedback *MessageFeedbackClient
	// ModelUsage is the client for interacting with the ModelUsage builders.
	ModelUsage *ModelUsageClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserTemplatePreference is the client for interacting with the UserTemplatePreference builders.
	UserTemplatePreference *UserTemplatePreferenceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentTemplate = NewAgentTemplateClient(c.config)
	c.Chat = NewChatClient(c.config)
	c.CodeExecution = NewCodeExecutionClient(c.config)
	c.DeepAnalysisReport = NewDeepAnalysisReportClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MessageFeedback = NewMessageFeedbackClient(c.config)
	c.ModelUsage = NewModelUsageClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserTemplatePreference = NewUserTemplatePreferenceClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		AgentTemplate:          NewAgentTemplateClient(cfg),
		Chat:                   NewChatClient(cfg),
		CodeExecution:          NewCodeExecutionClient(cfg),
		DeepAnalysisReport:     NewDeepAnalysisReportClient(cfg),
		Event:                  NewEventClient(cfg),
		Message:                NewMessageClient(cfg),
		MessageFeedback:        NewMessageFeedbackClient(cfg),
		ModelUsage:             NewModelUsageClient(cfg),
		User:                   NewUserClient(cfg),
		UserTemplatePreference: NewUserTemplatePreferenceClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		AgentTemplate:          NewAgentTemplateClient(cfg),
		Chat:                   NewChatClient(cfg),
		CodeExecution:          NewCodeExecutionClient(cfg),
		DeepAnalysisReport:     NewDeepAnalysisReportClient(cfg),
		Event:                  NewEventClient(cfg),
		Message:                NewMessageClient(cfg),
		MessageFeedback:        NewMessageFeedbackClient(cfg),
		ModelUsage:             NewModelUsageClient(cfg),
		User:                   NewUserClient(cfg),
		UserTemplatePreference: NewUserTemplatePreferenceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentTemplate.
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
		c.AgentTemplate, c.Chat, c.CodeExecution, c.DeepAnalysisReport, c.Event,
		c.Message, c.MessageFeedback, c.ModelUsage, c.User, c.UserTemplatePreference,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentTemplate, c.Chat, c.CodeExecution, c.DeepAnalysisReport, c.Event,
		c.Message, c.MessageFeedback, c.ModelUsage, c.User, c.UserTemplatePreference,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentTemplateMutation:
		return c.AgentTemplate.mutate(ctx, m)
	case *ChatMutation:
		return c.Chat.mutate(ctx, m)
	case *CodeExecutionMutation:
		return c.CodeExecution.mutate(ctx, m)
	case *DeepAnalysisReportMutation:
		return c.DeepAnalysisReport.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MessageFeedbackMutation:
		return c.MessageFeedback.mutate(ctx, m)
	case *ModelUsageMutation:
		return c.ModelUsage.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserTemplatePreferenceMutation:
		return c.UserTemplatePreference.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentTemplateClient is a client for the AgentTemplate schema.
type AgentTemplateClient struct {
	config
}

// NewAgentTemplateClient returns a client for the AgentTemplate from the given config.
func NewAgentTemplateClient(c config) *AgentTemplateClient {
	return &AgentTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agenttemplate.Hooks(f(g(h())))`.
func (c *AgentTemplateClient) Use(hooks ...Hook) {
	c.hooks.AgentTemplate = append(c.hooks.AgentTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agenttemplate.Intercept(f(g(h())))`.
func (c *AgentTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentTemplate = append(c.inters.AgentTemplate, interceptors...)
}

// Create returns a builder for creating a AgentTemplate entity.
func (c *AgentTemplateClient) Create() *AgentTemplateCreate {
	mutation := newAgentTemplateMutation(c.config, OpCreate)
	return &AgentTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentTemplate entities.
func (c *AgentTemplateClient) CreateBulk(builders ...*AgentTemplateCreate) *AgentTemplateCreateBulk {
	return &AgentTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentTemplateClient) MapCreateBulk(slice any, setFunc func(*AgentTemplateCreate, int)) *AgentTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentTemplateCreateBulk{err: fmt.Errorf("calling to AgentTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentTemplate.
func (c *AgentTemplateClient) Update() *AgentTemplateUpdate {
	mutation := newAgentTemplateMutation(c.config, OpUpdate)
	return &AgentTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentTemplateClient) UpdateOne(_m *AgentTemplate) *AgentTemplateUpdateOne {
	mutation := newAgentTemplateMutation(c.config, OpUpdateOne, withAgentTemplate(_m))
	return &AgentTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentTemplateClient) UpdateOneID(id int) *AgentTemplateUpdateOne {
	mutation := newAgentTemplateMutation(c.config, OpUpdateOne, withAgentTemplateID(id))
	return &AgentTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentTemplate.
func (c *AgentTemplateClient) Delete() *AgentTemplateDelete {
	mutation := newAgentTemplateMutation(c.config, OpDelete)
	return &AgentTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentTemplateClient) DeleteOne(_m *AgentTemplate) *AgentTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentTemplateClient) DeleteOneID(id int) *AgentTemplateDeleteOne {
	builder := c.Delete().Where(agenttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentTemplateDeleteOne{builder}
}

// Query returns a query builder for AgentTemplate.
func (c *AgentTemplateClient) Query() *AgentTemplateQuery {
	return &AgentTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentTemplate entity by its id.
func (c *AgentTemplateClient) Get(ctx context.Context, id int) (*AgentTemplate, error) {
	return c.Query().Where(agenttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentTemplateClient) GetX(ctx context.Context, id int) *AgentTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUserPreferences queries the user_preferences edge of a AgentTemplate.
func (c *AgentTemplateClient) QueryUserPreferences(_m *AgentTemplate) *UserTemplatePreferenceQuery {
	query := (&UserTemplatePreferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttemplate.Table, agenttemplate.FieldID, id),
			sqlgraph.To(usertemplatepreference.Table, usertemplatepreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agenttemplate.UserPreferencesTable, agenttemplate.UserPreferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentTemplateClient) Hooks() []Hook {
	return c.hooks.AgentTemplate
}

// Interceptors returns the client interceptors.
func (c *AgentTemplateClient) Interceptors() []Interceptor {
	return c.inters.AgentTemplate
}

func (c *AgentTemplateClient) mutate(ctx context.Context, m *AgentTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentTemplate mutation op: %q", m.Op())
	}
}

// ChatClient is a client for the Chat schema.
type ChatClient struct {
	config
}

// NewChatClient returns a client for the Chat from the given config.
func NewChatClient(c config) *ChatClient {
	return &ChatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chat.Hooks(f(g(h())))`.
func (c *ChatClient) Use(hooks ...Hook) {
	c.hooks.Chat = append(c.hooks.Chat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chat.Intercept(f(g(h())))`.
func (c *ChatClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chat = append(c.inters.Chat, interceptors...)
}

// Create returns a builder for creating a Chat entity.
func (c *ChatClient) Create() *ChatCreate {
	mutation := newChatMutation(c.config, OpCreate)
	return &ChatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chat entities.
func (c *ChatClient) CreateBulk(builders ...*ChatCreate) *ChatCreateBulk {
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatClient) MapCreateBulk(slice any, setFunc func(*ChatCreate, int)) *ChatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatCreateBulk{err: fmt.Errorf("calling to ChatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chat.
func (c *ChatClient) Update() *ChatUpdate {
	mutation := newChatMutation(c.config, OpUpdate)
	return &ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatClient) UpdateOne(_m *Chat) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChat(_m))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatClient) UpdateOneID(id int) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChatID(id))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chat.
func (c *ChatClient) Delete() *ChatDelete {
	mutation := newChatMutation(c.config, OpDelete)
	return &ChatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatClient) DeleteOne(_m *Chat) *ChatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatClient) DeleteOneID(id int) *ChatDeleteOne {
	builder := c.Delete().Where(chat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatDeleteOne{builder}
}

// Query returns a query builder for Chat.
func (c *ChatClient) Query() *ChatQuery {
	return &ChatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChat},
		inters: c.Interceptors(),
	}
}

// Get returns a Chat entity by its id.
func (c *ChatClient) Get(ctx context.Context, id int) (*Chat, error) {
	return c.Query().Where(chat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatClient) GetX(ctx context.Context, id int) *Chat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Chat.
func (c *ChatClient) QueryUser(_m *Chat) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chat.UserTable, chat.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Chat.
func (c *ChatClient) QueryMessages(_m *Chat) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.MessagesTable, chat.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatClient) Hooks() []Hook {
	return c.hooks.Chat
}

// Interceptors returns the client interceptors.
func (c *ChatClient) Interceptors() []Interceptor {
	return c.inters.Chat
}

func (c *ChatClient) mutate(ctx context.Context, m *ChatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chat mutation op: %q", m.Op())
	}
}

// CodeExecutionClient is a client for the CodeExecution schema.
type CodeExecutionClient struct {
	config
}

// NewCodeExecutionClient returns a client for the CodeExecution from the given config.
func NewCodeExecutionClient(c config) *CodeExecutionClient {
	return &CodeExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `codeexecution.Hooks(f(g(h())))`.
func (c *CodeExecutionClient) Use(hooks ...Hook) {
	c.hooks.CodeExecution = append(c.hooks.CodeExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `codeexecution.Intercept(f(g(h())))`.
func (c *CodeExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CodeExecution = append(c.inters.CodeExecution, interceptors...)
}

// Create returns a builder for creating a CodeExecution entity.
func (c *CodeExecutionClient) Create() *CodeExecutionCreate {
	mutation := newCodeExecutionMutation(c.config, OpCreate)
	return &CodeExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CodeExecution entities.
func (c *CodeExecutionClient) CreateBulk(builders ...*CodeExecutionCreate) *CodeExecutionCreateBulk {
	return &CodeExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CodeExecutionClient) MapCreateBulk(slice any, setFunc func(*CodeExecutionCreate, int)) *CodeExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CodeExecutionCreateBulk{err: fmt.Errorf("calling to CodeExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CodeExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CodeExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CodeExecution.
func (c *CodeExecutionClient) Update() *CodeExecutionUpdate {
	mutation := newCodeExecutionMutation(c.config, OpUpdate)
	return &CodeExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CodeExecutionClient) UpdateOne(_m *CodeExecution) *CodeExecutionUpdateOne {
	mutation := newCodeExecutionMutation(c.config, OpUpdateOne, withCodeExecution(_m))
	return &CodeExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CodeExecutionClient) UpdateOneID(id int) *CodeExecutionUpdateOne {
	mutation := newCodeExecutionMutation(c.config, OpUpdateOne, withCodeExecutionID(id))
	return &CodeExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CodeExecution.
func (c *CodeExecutionClient) Delete() *CodeExecutionDelete {
	mutation := newCodeExecutionMutation(c.config, OpDelete)
	return &CodeExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CodeExecutionClient) DeleteOne(_m *CodeExecution) *CodeExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CodeExecutionClient) DeleteOneID(id int) *CodeExecutionDeleteOne {
	builder := c.Delete().Where(codeexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CodeExecutionDeleteOne{builder}
}

// Query returns a query builder for CodeExecution.
func (c *CodeExecutionClient) Query() *CodeExecutionQuery {
	return &CodeExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCodeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a CodeExecution entity by its id.
func (c *CodeExecutionClient) Get(ctx context.Context, id int) (*CodeExecution, error) {
	return c.Query().Where(codeexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CodeExecutionClient) GetX(ctx context.Context, id int) *CodeExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CodeExecutionClient) Hooks() []Hook {
	return c.hooks.CodeExecution
}

// Interceptors returns the client interceptors.
func (c *CodeExecutionClient) Interceptors() []Interceptor {
	return c.inters.CodeExecution
}

func (c *CodeExecutionClient) mutate(ctx context.Context, m *CodeExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CodeExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CodeExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CodeExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CodeExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CodeExecution mutation op: %q", m.Op())
	}
}

// DeepAnalysisReportClient is a client for the DeepAnalysisReport schema.
type DeepAnalysisReportClient struct {
	config
}

// NewDeepAnalysisReportClient returns a client for the DeepAnalysisReport from the given config.
func NewDeepAnalysisReportClient(c config) *DeepAnalysisReportClient {
	return &DeepAnalysisReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deepanalysisreport.Hooks(f(g(h())))`.
func (c *DeepAnalysisReportClient) Use(hooks ...Hook) {
	c.hooks.DeepAnalysisReport = append(c.hooks.DeepAnalysisReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deepanalysisreport.Intercept(f(g(h())))`.
func (c *DeepAnalysisReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeepAnalysisReport = append(c.inters.DeepAnalysisReport, interceptors...)
}

// Create returns a builder for creating a DeepAnalysisReport entity.
func (c *DeepAnalysisReportClient) Create() *DeepAnalysisReportCreate {
	mutation := newDeepAnalysisReportMutation(c.config, OpCreate)
	return &DeepAnalysisReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeepAnalysisReport entities.
func (c *DeepAnalysisReportClient) CreateBulk(builders ...*DeepAnalysisReportCreate) *DeepAnalysisReportCreateBulk {
	return &DeepAnalysisReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeepAnalysisReportClient) MapCreateBulk(slice any, setFunc func(*DeepAnalysisReportCreate, int)) *DeepAnalysisReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeepAnalysisReportCreateBulk{err: fmt.Errorf("calling to DeepAnalysisReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeepAnalysisReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeepAnalysisReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeepAnalysisReport.
func (c *DeepAnalysisReportClient) Update() *DeepAnalysisReportUpdate {
	mutation := newDeepAnalysisReportMutation(c.config, OpUpdate)
	return &DeepAnalysisReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeepAnalysisReportClient) UpdateOne(_m *DeepAnalysisReport) *DeepAnalysisReportUpdateOne {
	mutation := newDeepAnalysisReportMutation(c.config, OpUpdateOne, withDeepAnalysisReport(_m))
	return &DeepAnalysisReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeepAnalysisReportClient) UpdateOneID(id int) *DeepAnalysisReportUpdateOne {
	mutation := newDeepAnalysisReportMutation(c.config, OpUpdateOne, withDeepAnalysisReportID(id))
	return &DeepAnalysisReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeepAnalysisReport.
func (c *DeepAnalysisReportClient) Delete() *DeepAnalysisReportDelete {
	mutation := newDeepAnalysisReportMutation(c.config, OpDelete)
	return &DeepAnalysisReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeepAnalysisReportClient) DeleteOne(_m *DeepAnalysisReport) *DeepAnalysisReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeepAnalysisReportClient) DeleteOneID(id int) *DeepAnalysisReportDeleteOne {
	builder := c.Delete().Where(deepanalysisreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeepAnalysisReportDeleteOne{builder}
}

// Query returns a query builder for DeepAnalysisReport.
func (c *DeepAnalysisReportClient) Query() *DeepAnalysisReportQuery {
	return &DeepAnalysisReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeepAnalysisReport},
		inters: c.Interceptors(),
	}
}

// Get returns a DeepAnalysisReport entity by its id.
func (c *DeepAnalysisReportClient) Get(ctx context.Context, id int) (*DeepAnalysisReport, error) {
	return c.Query().Where(deepanalysisreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeepAnalysisReportClient) GetX(ctx context.Context, id int) *DeepAnalysisReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a DeepAnalysisReport.
func (c *DeepAnalysisReportClient) QueryUser(_m *DeepAnalysisReport) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deepanalysisreport.Table, deepanalysisreport.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deepanalysisreport.UserTable, deepanalysisreport.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeepAnalysisReportClient) Hooks() []Hook {
	return c.hooks.DeepAnalysisReport
}

// Interceptors returns the client interceptors.
func (c *DeepAnalysisReportClient) Interceptors() []Interceptor {
	return c.inters.DeepAnalysisReport
}

func (c *DeepAnalysisReportClient) mutate(ctx context.Context, m *DeepAnalysisReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeepAnalysisReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeepAnalysisReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeepAnalysisReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeepAnalysisReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeepAnalysisReport mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChat queries the chat edge of a Message.
func (c *MessageClient) QueryChat(_m *Message) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ChatTable, message.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// MessageFeedbackClient is a client for the MessageFeedback schema.
type MessageFeedbackClient struct {
	config
}

// NewMessageFeedbackClient returns a client for the MessageFeedback from the given config.
func NewMessageFeedbackClient(c config) *MessageFeedbackClient {
	return &MessageFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagefeedback.Hooks(f(g(h())))`.
func (c *MessageFeedbackClient) Use(hooks ...Hook) {
	c.hooks.MessageFeedback = append(c.hooks.MessageFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagefeedback.Intercept(f(g(h())))`.
func (c *MessageFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageFeedback = append(c.inters.MessageFeedback, interceptors...)
}

// Create returns a builder for creating a MessageFeedback entity.
func (c *MessageFeedbackClient) Create() *MessageFeedbackCreate {
	mutation := newMessageFeedbackMutation(c.config, OpCreate)
	return &MessageFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageFeedback entities.
func (c *MessageFeedbackClient) CreateBulk(builders ...*MessageFeedbackCreate) *MessageFeedbackCreateBulk {
	return &MessageFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageFeedbackClient) MapCreateBulk(slice any, setFunc func(*MessageFeedbackCreate, int)) *MessageFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageFeedbackCreateBulk{err: fmt.Errorf("calling to MessageFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageFeedback.
func (c *MessageFeedbackClient) Update() *MessageFeedbackUpdate {
	mutation := newMessageFeedbackMutation(c.config, OpUpdate)
	return &MessageFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageFeedbackClient) UpdateOne(_m *MessageFeedback) *MessageFeedbackUpdateOne {
	mutation := newMessageFeedbackMutation(c.config, OpUpdateOne, withMessageFeedback(_m))
	return &MessageFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageFeedbackClient) UpdateOneID(id int) *MessageFeedbackUpdateOne {
	mutation := newMessageFeedbackMutation(c.config, OpUpdateOne, withMessageFeedbackID(id))
	return &MessageFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageFeedback.
func (c *MessageFeedbackClient) Delete() *MessageFeedbackDelete {
	mutation := newMessageFeedbackMutation(c.config, OpDelete)
	return &MessageFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageFeedbackClient) DeleteOne(_m *MessageFeedback) *MessageFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageFeedbackClient) DeleteOneID(id int) *MessageFeedbackDeleteOne {
	builder := c.Delete().Where(messagefeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageFeedbackDeleteOne{builder}
}

// Query returns a query builder for MessageFeedback.
func (c *MessageFeedbackClient) Query() *MessageFeedbackQuery {
	return &MessageFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageFeedback entity by its id.
func (c *MessageFeedbackClient) Get(ctx context.Context, id int) (*MessageFeedback, error) {
	return c.Query().Where(messagefeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageFeedbackClient) GetX(ctx context.Context, id int) *MessageFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageFeedbackClient) Hooks() []Hook {
	return c.hooks.MessageFeedback
}

// Interceptors returns the client interceptors.
func (c *MessageFeedbackClient) Interceptors() []Interceptor {
	return c.inters.MessageFeedback
}

func (c *MessageFeedbackClient) mutate(ctx context.Context, m *MessageFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageFeedback mutation op: %q", m.Op())
	}
}

// ModelUsageClient is a client for the ModelUsage schema.
type ModelUsageClient struct {
	config
}

// NewModelUsageClient returns a client for the ModelUsage from the given config.
func NewModelUsageClient(c config) *ModelUsageClient {
	return &ModelUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelusage.Hooks(f(g(h())))`.
func (c *ModelUsageClient) Use(hooks ...Hook) {
	c.hooks.ModelUsage = append(c.hooks.ModelUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelusage.Intercept(f(g(h())))`.
func (c *ModelUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelUsage = append(c.inters.ModelUsage, interceptors...)
}

// Create returns a builder for creating a ModelUsage entity.
func (c *ModelUsageClient) Create() *ModelUsageCreate {
	mutation := newModelUsageMutation(c.config, OpCreate)
	return &ModelUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelUsage entities.
func (c *ModelUsageClient) CreateBulk(builders ...*ModelUsageCreate) *ModelUsageCreateBulk {
	return &ModelUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelUsageClient) MapCreateBulk(slice any, setFunc func(*ModelUsageCreate, int)) *ModelUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelUsageCreateBulk{err: fmt.Errorf("calling to ModelUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelUsage.
func (c *ModelUsageClient) Update() *ModelUsageUpdate {
	mutation := newModelUsageMutation(c.config, OpUpdate)
	return &ModelUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelUsageClient) UpdateOne(_m *ModelUsage) *ModelUsageUpdateOne {
	mutation := newModelUsageMutation(c.config, OpUpdateOne, withModelUsage(_m))
	return &ModelUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelUsageClient) UpdateOneID(id int) *ModelUsageUpdateOne {
	mutation := newModelUsageMutation(c.config, OpUpdateOne, withModelUsageID(id))
	return &ModelUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelUsage.
func (c *ModelUsageClient) Delete() *ModelUsageDelete {
	mutation := newModelUsageMutation(c.config, OpDelete)
	return &ModelUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelUsageClient) DeleteOne(_m *ModelUsage) *ModelUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelUsageClient) DeleteOneID(id int) *ModelUsageDeleteOne {
	builder := c.Delete().Where(modelusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelUsageDeleteOne{builder}
}

// Query returns a query builder for ModelUsage.
func (c *ModelUsageClient) Query() *ModelUsageQuery {
	return &ModelUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelUsage entity by its id.
func (c *ModelUsageClient) Get(ctx context.Context, id int) (*ModelUsage, error) {
	return c.Query().Where(modelusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelUsageClient) GetX(ctx context.Context, id int) *ModelUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a ModelUsage.
func (c *ModelUsageClient) QueryUser(_m *ModelUsage) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(modelusage.Table, modelusage.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, modelusage.UserTable, modelusage.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ModelUsageClient) Hooks() []Hook {
	return c.hooks.ModelUsage
}

// Interceptors returns the client interceptors.
func (c *ModelUsageClient) Interceptors() []Interceptor {
	return c.inters.ModelUsage
}

func (c *ModelUsageClient) mutate(ctx context.Context, m *ModelUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelUsage mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChats queries the chats edge of a User.
func (c *UserClient) QueryChats(_m *User) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ChatsTable, user.ChatsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplatePreferences queries the template_preferences edge of a User.
func (c *UserClient) QueryTemplatePreferences(_m *User) *UserTemplatePreferenceQuery {
	query := (&UserTemplatePreferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(usertemplatepreference.Table, usertemplatepreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TemplatePreferencesTable, user.TemplatePreferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsageRecords queries the usage_records edge of a User.
func (c *UserClient) QueryUsageRecords(_m *User) *ModelUsageQuery {
	query := (&ModelUsageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(modelusage.Table, modelusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.UsageRecordsTable, user.UsageRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeepAnalysisReports queries the deep_analysis_reports edge of a User.
func (c *UserClient) QueryDeepAnalysisReports(_m *User) *DeepAnalysisReportQuery {
	query := (&DeepAnalysisReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(deepanalysisreport.Table, deepanalysisreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.DeepAnalysisReportsTable, user.DeepAnalysisReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserTemplatePreferenceClient is a client for the UserTemplatePreference schema.
type UserTemplatePreferenceClient struct {
	config
}

// NewUserTemplatePreferenceClient returns a client for the UserTemplatePreference from the given config.
func NewUserTemplatePreferenceClient(c config) *UserTemplatePreferenceClient {
	return &UserTemplatePreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usertemplatepreference.Hooks(f(g(h())))`.
func (c *UserTemplatePreferenceClient) Use(hooks ...Hook) {
	c.hooks.UserTemplatePreference = append(c.hooks.UserTemplatePreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usertemplatepreference.Intercept(f(g(h())))`.
func (c *UserTemplatePreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserTemplatePreference = append(c.inters.UserTemplatePreference, interceptors...)
}

// Create returns a builder for creating a UserTemplatePreference entity.
func (c *UserTemplatePreferenceClient) Create() *UserTemplatePreferenceCreate {
	mutation := newUserTemplatePreferenceMutation(c.config, OpCreate)
	return &UserTemplatePreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserTemplatePreference entities.
func (c *UserTemplatePreferenceClient) CreateBulk(builders ...*UserTemplatePreferenceCreate) *UserTemplatePreferenceCreateBulk {
	return &UserTemplatePreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserTemplatePreferenceClient) MapCreateBulk(slice any, setFunc func(*UserTemplatePreferenceCreate, int)) *UserTemplatePreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserTemplatePreferenceCreateBulk{err: fmt.Errorf("calling to UserTemplatePreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserTemplatePreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserTemplatePreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserTemplatePreference.
func (c *UserTemplatePreferenceClient) Update() *UserTemplatePreferenceUpdate {
	mutation := newUserTemplatePreferenceMutation(c.config, OpUpdate)
	return &UserTemplatePreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserTemplatePreferenceClient) UpdateOne(_m *UserTemplatePreference) *UserTemplatePreferenceUpdateOne {
	mutation := newUserTemplatePreferenceMutation(c.config, OpUpdateOne, withUserTemplatePreference(_m))
	return &UserTemplatePreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserTemplatePreferenceClient) UpdateOneID(id int) *UserTemplatePreferenceUpdateOne {
	mutation := newUserTemplatePreferenceMutation(c.config, OpUpdateOne, withUserTemplatePreferenceID(id))
	return &UserTemplatePreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserTemplatePreference.
func (c *UserTemplatePreferenceClient) Delete() *UserTemplatePreferenceDelete {
	mutation := newUserTemplatePreferenceMutation(c.config, OpDelete)
	return &UserTemplatePreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserTemplatePreferenceClient) DeleteOne(_m *UserTemplatePreference) *UserTemplatePreferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserTemplatePreferenceClient) DeleteOneID(id int) *UserTemplatePreferenceDeleteOne {
	builder := c.Delete().Where(usertemplatepreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserTemplatePreferenceDeleteOne{builder}
}

// Query returns a query builder for UserTemplatePreference.
func (c *UserTemplatePreferenceClient) Query() *UserTemplatePreferenceQuery {
	return &UserTemplatePreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserTemplatePreference},
		inters: c.Interceptors(),
	}
}

// Get returns a UserTemplatePreference entity by its id.
func (c *UserTemplatePreferenceClient) Get(ctx context.Context, id int) (*UserTemplatePreference, error) {
	return c.Query().Where(usertemplatepreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserTemplatePreferenceClient) GetX(ctx context.Context, id int) *UserTemplatePreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserTemplatePreference.
func (c *UserTemplatePreferenceClient) QueryUser(_m *UserTemplatePreference) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usertemplatepreference.Table, usertemplatepreference.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usertemplatepreference.UserTable, usertemplatepreference.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a UserTemplatePreference.
func (c *UserTemplatePreferenceClient) QueryTemplate(_m *UserTemplatePreference) *AgentTemplateQuery {
	query := (&AgentTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usertemplatepreference.Table, usertemplatepreference.FieldID, id),
			sqlgraph.To(agenttemplate.Table, agenttemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usertemplatepreference.TemplateTable, usertemplatepreference.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserTemplatePreferenceClient) Hooks() []Hook {
	return c.hooks.UserTemplatePreference
}

// Interceptors returns the client interceptors.
func (c *UserTemplatePreferenceClient) Interceptors() []Interceptor {
	return c.inters.UserTemplatePreference
}

func (c *UserTemplatePreferenceClient) mutate(ctx context.Context, m *UserTemplatePreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserTemplatePreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserTemplatePreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserTemplatePreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserTemplatePreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserTemplatePreference mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentTemplate, Chat, CodeExecution, DeepAnalysisReport, Event, Message,
		MessageFeedback, ModelUsage, User, UserTemplatePreference []ent.Hook
	}
	inters struct {
		AgentTemplate, Chat, CodeExecution, DeepAnalysisReport, Event, Message,
		MessageFeedback, ModelUsage, User, UserTemplatePreference []ent.Interceptor
	}
)
