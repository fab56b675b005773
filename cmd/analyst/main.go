// Analyst server — plans and executes multi-agent data analyses over
// HTTP, runs deep analyses on a background worker pool, and streams
// progress to clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/philippgille/chromem-go"

	"github.com/autoanalyst/analyst/pkg/api"
	"github.com/autoanalyst/analyst/pkg/cleanup"
	"github.com/autoanalyst/analyst/pkg/config"
	"github.com/autoanalyst/analyst/pkg/database"
	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/events"
	"github.com/autoanalyst/analyst/pkg/llm"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/queue"
	"github.com/autoanalyst/analyst/pkg/registry"
	"github.com/autoanalyst/analyst/pkg/retriever"
	"github.com/autoanalyst/analyst/pkg/services"
	"github.com/autoanalyst/analyst/pkg/session"
	"github.com/autoanalyst/analyst/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting analyst",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	templateService := services.NewTemplateService(dbClient.Client)
	chatService := services.NewChatService(dbClient.Client)
	feedbackService := services.NewFeedbackService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	reportService := services.NewReportService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	codeExecService := services.NewCodeExecutionService(dbClient.Client)
	userService := services.NewUserService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time sweep for reports orphaned by a previous process
	if err := queue.CleanupStartupOrphans(ctx, reportService); err != nil {
		slog.Error("Failed to sweep orphaned reports", "error", err)
		// Non-fatal — continue
	}

	// 5. Progress event infrastructure: persist-and-notify publisher,
	// broker with catchup, and a dedicated LISTEN connection.
	publisher := events.NewProgressPublisher(dbClient.DB())
	broker := events.NewBroker(events.NewEventServiceAdapter(eventService))
	listener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	broker.SetListener(listener)
	slog.Info("Progress event infrastructure initialized")

	// 6. Agent registry and LM provider factory
	agentRegistry := registry.New(templateService)
	llmFactory := llm.NewFactory(cfg.LLMProviderRegistry)

	defaultModel, err := defaultModelConfig(cfg)
	if err != nil {
		slog.Error("Failed to resolve default model", "error", err)
		os.Exit(1)
	}
	slog.Info("Default model resolved",
		"provider", defaultModel.Provider, "model", defaultModel.Model)

	// 7. Session manager: deep analyzers built here carry persistence
	// and progress publishing.
	analyzerFactory := func(ctx context.Context, agents []*models.AgentSignature, modelCfg models.ModelConfig, rets *retriever.Set) (*deep.Analyzer, error) {
		client, err := llmFactory.ClientFor(ctx, modelCfg.Provider)
		if err != nil {
			return nil, err
		}
		return deep.NewAnalyzer(agents, client, modelCfg, rets, reportService, publisher), nil
	}
	sessions := session.NewManager(agentRegistry, analyzerFactory, defaultModel)
	if embed := stylingEmbedding(cfg); embed != nil {
		sessions.SetEmbedding(embed)
		slog.Info("Vector styling index enabled")
	} else {
		slog.Info("No embedding provider available, styling index is static")
	}

	// 8. Background workers
	pool := queue.NewWorkerPool(cfg.Queue)
	pool.Start(ctx)

	cleanupService := cleanup.NewService(cfg.Retention, reportService, eventService)
	cleanupService.Start(ctx)

	// 9. HTTP server
	server := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient,
		Sessions:      sessions,
		Orchestrators: api.NewOrchestratorFactory(agentRegistry, llmFactory, usageService),
		Pool:          pool,
		LLM:           llmFactory,
		Broker:        broker,
		Templates:     templateService,
		Chats:         chatService,
		Feedback:      feedbackService,
		Reports:       reportService,
		CodeExec:      codeExecService,
		Users:         userService,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Analyst started successfully", "workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop intake, drain workers, then the rest
	pool.Stop()
	cleanupService.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// stylingEmbedding returns an embedding function for the per-session
// styling index when an OpenAI-compatible key is configured, nil
// otherwise.
func stylingEmbedding(cfg *config.Config) chromem.EmbeddingFunc {
	for name, provider := range cfg.LLMProviderRegistry.GetAll() {
		if provider.Type != config.ProviderOpenAI || provider.APIKeyEnv == "" {
			continue
		}
		apiKey := os.Getenv(provider.APIKeyEnv)
		if apiKey == "" {
			continue
		}
		slog.Info("Using provider for styling embeddings", "provider", name)
		return chromem.NewEmbeddingFuncOpenAI(apiKey, chromem.EmbeddingModelOpenAI3Small)
	}
	return nil
}

// defaultModelConfig derives the session default from the configured
// default provider.
func defaultModelConfig(cfg *config.Config) (models.ModelConfig, error) {
	providerName := cfg.Defaults.LLMProvider
	provider, err := cfg.GetLLMProvider(providerName)
	if err != nil {
		return models.ModelConfig{}, err
	}
	return models.ModelConfig{
		Provider:    providerName,
		Model:       provider.Model,
		MaxTokens:   provider.MaxTokens,
		Temperature: provider.Temperature,
	}, nil
}
