// Package api exposes the HTTP surface: chat (individual and planned),
// deep-analysis runs, template preferences, session state, and health.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/database"
	"github.com/autoanalyst/analyst/pkg/events"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/orchestrator"
	"github.com/autoanalyst/analyst/pkg/planner"
	"github.com/autoanalyst/analyst/pkg/queue"
	"github.com/autoanalyst/analyst/pkg/registry"
	"github.com/autoanalyst/analyst/pkg/services"
	"github.com/autoanalyst/analyst/pkg/session"
	"github.com/autoanalyst/analyst/pkg/usage"
)

// OrchestratorFactory builds an executor for one session's model
// configuration and chat binding. Handlers call it per request so
// sessions can switch models without restarting anything.
type OrchestratorFactory func(ctx context.Context, cfg models.ModelConfig, chatID *int) (*orchestrator.Orchestrator, error)

// NewOrchestratorFactory is the production factory: registry-backed
// signatures, provider clients from the LM factory, and usage tracking
// attributed to the session's chat.
func NewOrchestratorFactory(reg *registry.Registry, factory *llm.Factory, usageSvc *services.UsageService) OrchestratorFactory {
	return func(ctx context.Context, cfg models.ModelConfig, chatID *int) (*orchestrator.Orchestrator, error) {
		client, err := factory.ClientFor(ctx, cfg.Provider)
		if err != nil {
			return nil, fmt.Errorf("failed to build LM client for %q: %w", cfg.Provider, err)
		}
		pl := planner.New(client, cfg)
		return orchestrator.New(reg, pl, client, cfg, usage.NewTracker(usageSvc, cfg, chatID)), nil
	}
}

// Deps collects everything the server needs. Optional fields may be nil
// and disable the corresponding routes' side effects.
type Deps struct {
	Config        *config.Config
	DB            *database.Client
	Sessions      *session.Manager
	Orchestrators OrchestratorFactory
	Pool          *queue.WorkerPool
	LLM           *llm.Factory
	Broker        *events.Broker

	Templates *services.TemplateService
	Chats     *services.ChatService
	Feedback  *services.FeedbackService
	Reports   *services.ReportService
	CodeExec  *services.CodeExecutionService
	Users     *services.UserService
}

// Server is the HTTP API server.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	sessions *session.Manager
	orch     OrchestratorFactory
	pool     *queue.WorkerPool
	llm      *llm.Factory
	broker   *events.Broker

	templates *services.TemplateService
	chats     *services.ChatService
	feedback  *services.FeedbackService
	reports   *services.ReportService
	codeExec  *services.CodeExecutionService
	users     *services.UserService

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		cfg:       deps.Config,
		db:        deps.DB,
		sessions:  deps.Sessions,
		orch:      deps.Orchestrators,
		pool:      deps.Pool,
		llm:       deps.LLM,
		broker:    deps.Broker,
		templates: deps.Templates,
		chats:     deps.Chats,
		feedback:  deps.Feedback,
		reports:   deps.Reports,
		codeExec:  deps.CodeExec,
		users:     deps.Users,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	r.POST("/chat", s.plannedChatHandler)
	r.POST("/chat/:agent", s.individualChatHandler)

	r.POST("/deep_analysis", s.submitDeepAnalysisHandler)
	r.POST("/deep_analysis_streaming", s.streamDeepAnalysisHandler)
	r.GET("/deep_analysis", s.listDeepAnalysesHandler)
	r.GET("/deep_analysis/:report_uuid", s.getDeepAnalysisHandler)
	r.GET("/deep_analysis/:report_uuid/stream", s.streamProgressHandler)
	r.POST("/deep_analysis/:report_uuid/cancel", s.cancelDeepAnalysisHandler)
	r.POST("/deep_analysis/download_report", s.downloadReportHandler)

	r.GET("/agents", s.listAgentsHandler)
	r.GET("/templates", s.listTemplatesHandler)
	r.GET("/templates/categories", s.listCategoriesHandler)
	r.GET("/templates/category/:category", s.listTemplatesByCategoryHandler)
	r.GET("/templates/user/:user_id", s.listUserPreferencesHandler)
	r.GET("/templates/user/:user_id/enabled", s.listEnabledTemplatesHandler)
	r.POST("/templates/:template_id/toggle", s.toggleTemplateHandler)
	r.POST("/templates/bulk_toggle", s.bulkToggleHandler)

	r.POST("/users", s.getOrCreateUserHandler)

	r.POST("/session/dataset", s.bindDatasetHandler)
	r.POST("/session/user", s.bindUserHandler)
	r.POST("/session/model", s.setModelHandler)
	r.DELETE("/session/:session_id", s.clearSessionHandler)

	r.POST("/chats", s.createChatHandler)
	r.GET("/chats/:chat_id/messages", s.listMessagesHandler)
	r.POST("/chats/:chat_id/name", s.nameChatHandler)

	r.POST("/feedback", s.upsertFeedbackHandler)
	r.GET("/feedback/:message_id", s.getFeedbackHandler)

	return r
}

// Start begins serving on addr. Blocks until the listener fails.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestTimeout returns the interactive request cap.
func (s *Server) requestTimeout() time.Duration {
	if s.cfg != nil && s.cfg.Defaults != nil && s.cfg.Defaults.RequestTimeout > 0 {
		return s.cfg.Defaults.RequestTimeout
	}
	return 120 * time.Second
}

// maxRecentMessages returns how much chat history is folded into queries.
func (s *Server) maxRecentMessages() int {
	if s.cfg != nil && s.cfg.Defaults != nil && s.cfg.Defaults.MaxRecentMessages > 0 {
		return s.cfg.Defaults.MaxRecentMessages
	}
	return 10
}
