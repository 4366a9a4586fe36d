// Package config defines the explicit configuration surface of the audit
// engine. Every option is settable per deployment through environment
// variables; defaults live in defaults.go.
package config

import "time"

// Config is the umbrella configuration object used throughout the application.
type Config struct {
	// Data layout
	DataRoot string

	// LLM endpoint
	LLMAPIKey          string
	LLMAPIBaseURL      string
	LLMModelCompliance string
	LLMRequestTimeout  time.Duration

	// Query-side embedding generation
	EmbeddingModel      string
	EmbeddingAPIBaseURL string

	// Chunking (C2)
	Chunk ChunkConfig

	// Context assembly (C4/C5)
	Context ContextConfig

	// Refinement loop (C10.1)
	Refinement RefinementConfig

	// Audit runner pacing and backoff (C6/C10)
	ChunkProcessingDelay time.Duration
	RateLimitBackoffBase time.Duration
	RateLimitMaxWait     time.Duration
	AnalysisMaxRetries   int

	// Worker pool (C11)
	Queue QueueConfig

	// Logging
	LogLevel string
	LogJSON  bool
}

// ChunkConfig controls the section-aware and token-window chunkers.
type ChunkConfig struct {
	Size             int
	Overlap          int
	Tokenizer        string
	MaxSectionTokens int
}

// ContextConfig controls retrieval breadth and token budgets for the
// context builder.
type ContextConfig struct {
	ManualWindow int

	ManualTokenLimit     int
	RegulationTokenLimit int
	GuidanceTokenLimit   int
	EvidenceTokenLimit   int

	RegulationTopK int
	GuidanceTopK   int
	EvidenceTopK   int

	TotalTokenLimit int
	Tokenizer       string
}

// RefinementConfig bounds agent-requested re-retrieval.
type RefinementConfig struct {
	MaxAttempts     int
	ManualWindow    int
	TokenMultiplier float64
	IncludeEvidence bool
}

// QueueConfig contains worker pool configuration for background audit
// execution.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per process.
	WorkerCount int

	// MaxConcurrentAudits is the global limit of audits running at once,
	// enforced by a database COUNT(*) check.
	MaxConcurrentAudits int

	// PollInterval is the base interval for checking queued audits.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// GracefulShutdownTimeout is the max time to wait for running audits
	// to reach a safe point during shutdown.
	GracefulShutdownTimeout time.Duration
}
