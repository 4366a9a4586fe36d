// Package api exposes the HTTP surface of the audit engine: document
// upload, audit lifecycle, flag and score listings, health.
package api

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/database"
	"github.com/regsentry/regsentry/pkg/ingest"
	"github.com/regsentry/regsentry/pkg/queue"
	"github.com/regsentry/regsentry/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	cfg       *config.Config
	dbClient  *database.Client
	docs      *services.DocumentService
	audits    *services.AuditService
	flags     *services.FlagService
	scores    *services.ScoreService
	questions *services.QuestionService
	layout    *ingest.Layout
	pipeline  *ingest.Pipeline
	pool      *queue.WorkerPool
	logger    *slog.Logger
}

// Deps bundles the collaborators the server needs.
type Deps struct {
	Config    *config.Config
	DB        *database.Client
	Docs      *services.DocumentService
	Audits    *services.AuditService
	Flags     *services.FlagService
	Scores    *services.ScoreService
	Questions *services.QuestionService
	Layout    *ingest.Layout
	Pipeline  *ingest.Pipeline
	Pool      *queue.WorkerPool
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		cfg:       deps.Config,
		dbClient:  deps.DB,
		docs:      deps.Docs,
		audits:    deps.Audits,
		flags:     deps.Flags,
		scores:    deps.Scores,
		questions: deps.Questions,
		layout:    deps.Layout,
		pipeline:  deps.Pipeline,
		pool:      deps.Pool,
		logger:    slog.Default().With("component", "api"),
	}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:   []string{"X-Request-ID"},
	}))

	r.GET("/health", s.healthHandler)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/documents", s.createDocumentHandler)
		apiGroup.GET("/documents", s.listDocumentsHandler)

		apiGroup.POST("/audits", s.createAuditHandler)
		apiGroup.GET("/audits", s.listAuditsHandler)
		apiGroup.GET("/audits/:id", s.getAuditHandler)
		apiGroup.GET("/audits/:id/status", s.auditStatusHandler)
		apiGroup.POST("/audits/:id/resume", s.resumeAuditHandler)
		apiGroup.GET("/audits/:id/flags", s.listFlagsHandler)
	}

	r.GET("/scores/", s.scoreHistoryHandler)

	return r
}
