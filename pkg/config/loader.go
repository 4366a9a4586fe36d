package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load .env from envPath if present (existing environment wins)
//  2. Start from built-in defaults
//  3. Apply environment variable overrides
//  4. Validate the result
func Initialize(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Could not load .env file, continuing with existing environment",
				"path", envPath, "error", err)
		} else {
			slog.Info("Loaded environment", "path", envPath)
		}
	}

	cfg := DefaultConfig()
	applyEnv(cfg)

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.DataRoot, "DATA_ROOT")

	setString(&cfg.LLMAPIKey, "LLM_API_KEY")
	setString(&cfg.LLMAPIBaseURL, "LLM_API_BASE_URL")
	setString(&cfg.LLMModelCompliance, "LLM_MODEL_COMPLIANCE")
	setDuration(&cfg.LLMRequestTimeout, "LLM_REQUEST_TIMEOUT")

	setString(&cfg.EmbeddingModel, "EMBEDDING_MODEL")
	setString(&cfg.EmbeddingAPIBaseURL, "EMBEDDING_API_BASE_URL")

	setInt(&cfg.Chunk.Size, "CHUNK_SIZE")
	setInt(&cfg.Chunk.Overlap, "CHUNK_OVERLAP")
	setString(&cfg.Chunk.Tokenizer, "CHUNK_TOKENIZER")
	setInt(&cfg.Chunk.MaxSectionTokens, "CHUNK_MAX_SECTION_TOKENS")

	setInt(&cfg.Context.ManualWindow, "CONTEXT_MANUAL_WINDOW")
	setInt(&cfg.Context.ManualTokenLimit, "CONTEXT_MANUAL_TOKEN_LIMIT")
	setInt(&cfg.Context.RegulationTokenLimit, "CONTEXT_REGULATION_TOKEN_LIMIT")
	setInt(&cfg.Context.GuidanceTokenLimit, "CONTEXT_GUIDANCE_TOKEN_LIMIT")
	setInt(&cfg.Context.EvidenceTokenLimit, "CONTEXT_EVIDENCE_TOKEN_LIMIT")
	setInt(&cfg.Context.RegulationTopK, "CONTEXT_REGULATION_TOP_K")
	setInt(&cfg.Context.GuidanceTopK, "CONTEXT_GUIDANCE_TOP_K")
	setInt(&cfg.Context.EvidenceTopK, "CONTEXT_EVIDENCE_TOP_K")
	setInt(&cfg.Context.TotalTokenLimit, "CONTEXT_TOTAL_TOKEN_LIMIT")
	setString(&cfg.Context.Tokenizer, "CONTEXT_TOKENIZER")

	setInt(&cfg.Refinement.MaxAttempts, "REFINEMENT_MAX_ATTEMPTS")
	setInt(&cfg.Refinement.ManualWindow, "REFINEMENT_MANUAL_WINDOW")
	setFloat(&cfg.Refinement.TokenMultiplier, "REFINEMENT_TOKEN_MULTIPLIER")
	setBool(&cfg.Refinement.IncludeEvidence, "REFINEMENT_INCLUDE_EVIDENCE")

	setDuration(&cfg.ChunkProcessingDelay, "CHUNK_PROCESSING_DELAY")
	setDuration(&cfg.RateLimitBackoffBase, "RATE_LIMIT_BACKOFF_BASE")
	setDuration(&cfg.RateLimitMaxWait, "RATE_LIMIT_MAX_WAIT")
	setInt(&cfg.AnalysisMaxRetries, "ANALYSIS_MAX_RETRIES")

	setInt(&cfg.Queue.WorkerCount, "QUEUE_WORKER_COUNT")
	setInt(&cfg.Queue.MaxConcurrentAudits, "QUEUE_MAX_CONCURRENT_AUDITS")
	setDuration(&cfg.Queue.PollInterval, "QUEUE_POLL_INTERVAL")
	setDuration(&cfg.Queue.PollIntervalJitter, "QUEUE_POLL_INTERVAL_JITTER")
	setDuration(&cfg.Queue.GracefulShutdownTimeout, "QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT")

	setString(&cfg.LogLevel, "LOG_LEVEL")
	setBool(&cfg.LogJSON, "LOG_JSON")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		} else {
			slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		} else {
			slog.Warn("Ignoring non-numeric environment value", "key", key, "value", v)
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		} else {
			slog.Warn("Ignoring non-boolean environment value", "key", key, "value", v)
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		} else if n, err := strconv.Atoi(v); err == nil {
			// Bare integers are seconds.
			*dst = time.Duration(n) * time.Second
		} else {
			slog.Warn("Ignoring unparseable duration value", "key", key, "value", v)
		}
	}
}
