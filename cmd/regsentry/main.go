// RegSentry audit engine server — provides the HTTP API, manages queue
// workers, and drives AI-assisted compliance audits over uploaded manuals.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/regsentry/regsentry/pkg/analysis"
	"github.com/regsentry/regsentry/pkg/api"
	"github.com/regsentry/regsentry/pkg/chunker"
	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/database"
	"github.com/regsentry/regsentry/pkg/embedding"
	"github.com/regsentry/regsentry/pkg/ingest"
	"github.com/regsentry/regsentry/pkg/queue"
	"github.com/regsentry/regsentry/pkg/retrieval"
	"github.com/regsentry/regsentry/pkg/runner"
	"github.com/regsentry/regsentry/pkg/services"
	"github.com/regsentry/regsentry/pkg/tokenizer"
	"github.com/regsentry/regsentry/pkg/vectorstore"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*envPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	slog.Info("Starting RegSentry",
		"http_port", httpPort,
		"pod_id", podID,
		"data_root", cfg.DataRoot)

	// 2. Data layout
	layout := ingest.NewLayout(cfg.DataRoot)
	if err := layout.Ensure(); err != nil {
		slog.Error("Failed to prepare data layout", "error", err)
		os.Exit(1)
	}

	// 3. Database (relational + vector, same Postgres)
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

	store, err := vectorstore.NewPGStore(ctx, dbConfig.DSN())
	if err != nil {
		slog.Error("Failed to connect vector store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. Domain services
	docService := services.NewDocumentService(dbClient.Client)
	chunkService := services.NewChunkService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	resultService := services.NewResultService(dbClient.Client)
	flagService := services.NewFlagService(dbClient.Client)
	scoreService := services.NewScoreService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Analysis and retrieval stack
	estimator := tokenizer.New(cfg.Context.Tokenizer)

	var embedder embedding.Engine
	openaiEmbedder, err := embedding.NewOpenAIEngine(cfg.EmbeddingAPIBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModel)
	if err != nil {
		slog.Error("Failed to initialize embedding engine", "error", err)
		os.Exit(1)
	}
	embedder = embedding.NewCachedEngine(openaiEmbedder, layout.EmbeddingCacheDir())

	var analyzer analysis.Client
	var questionGen services.QuestionGenerator
	if cfg.LLMAPIKey != "" {
		llmClient, err := analysis.NewLLMClient(cfg)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		analyzer = llmClient
		questionGen = llmClient
		slog.Info("LLM client initialized", "model", cfg.LLMModelCompliance)
	} else {
		analyzer = analysis.NewEchoClient()
		slog.Warn("No LLM API key configured, using echo analyzer")
	}
	questionService := services.NewQuestionService(dbClient.Client, questionGen)

	builder := retrieval.NewBuilder(chunkService, store, embedder, estimator, cfg.Context)
	recursiveBuilder := retrieval.NewRecursiveBuilder(builder)

	// 6. Ingest pipeline
	splitter := chunker.New(chunker.Config{
		Size:             cfg.Chunk.Size,
		Overlap:          cfg.Chunk.Overlap,
		MaxSectionTokens: cfg.Chunk.MaxSectionTokens,
	}, estimator)
	pipeline := ingest.NewPipeline(layout, docService, chunkService, splitter, embedder, store)

	// 7. Audit runner and worker pool
	auditRunner := runner.New(runner.Deps{
		Config:    cfg,
		Audits:    auditService,
		Chunks:    chunkService,
		Results:   resultService,
		Flags:     flagService,
		Scores:    scoreService,
		Questions: questionService,
		Builder:   recursiveBuilder,
		Analyzer:  analyzer,
		Recursive: true,
	})

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, auditRunner)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server
	server := api.NewServer(api.Deps{
		Config:    cfg,
		DB:        dbClient,
		Docs:      docService,
		Audits:    auditService,
		Flags:     flagService,
		Scores:    scoreService,
		Questions: questionService,
		Layout:    layout,
		Pipeline:  pipeline,
		Pool:      workerPool,
	})

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RegSentry started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: workers first (audits stay resumable), then
	// the HTTP server with its own budget.
	workerPool.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
