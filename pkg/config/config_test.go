package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 6000, cfg.Context.TotalTokenLimit)
	assert.Equal(t, 5*time.Second, cfg.ChunkProcessingDelay)
	assert.Equal(t, 2, cfg.AnalysisMaxRetries)
	assert.Equal(t, 120*time.Second, cfg.RateLimitMaxWait)

	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("CONTEXT_TOTAL_TOKEN_LIMIT", "8000")
	t.Setenv("CHUNK_PROCESSING_DELAY", "2s")
	t.Setenv("RATE_LIMIT_MAX_WAIT", "60") // bare integer means seconds
	t.Setenv("REFINEMENT_INCLUDE_EVIDENCE", "true")
	t.Setenv("LLM_MODEL_COMPLIANCE", "gpt-4o-mini")

	cfg, err := Initialize("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Context.TotalTokenLimit)
	assert.Equal(t, 2*time.Second, cfg.ChunkProcessingDelay)
	assert.Equal(t, 60*time.Second, cfg.RateLimitMaxWait)
	assert.True(t, cfg.Refinement.IncludeEvidence)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModelCompliance)
}

func TestValidator_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "zero chunk size",
			mutate: func(c *Config) { c.Chunk.Size = 0 },
			want:   "chunk_size",
		},
		{
			name:   "overlap not below size",
			mutate: func(c *Config) { c.Chunk.Overlap = c.Chunk.Size },
			want:   "chunk_overlap",
		},
		{
			name:   "negative manual window",
			mutate: func(c *Config) { c.Context.ManualWindow = -1 },
			want:   "context_manual_window",
		},
		{
			name:   "zero total budget",
			mutate: func(c *Config) { c.Context.TotalTokenLimit = 0 },
			want:   "context_total_token_limit",
		},
		{
			name:   "zero token multiplier",
			mutate: func(c *Config) { c.Refinement.TokenMultiplier = 0 },
			want:   "refinement_token_multiplier",
		},
		{
			name:   "zero workers",
			mutate: func(c *Config) { c.Queue.WorkerCount = 0 },
			want:   "queue_worker_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
