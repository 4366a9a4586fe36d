package config

import "time"

// DefaultConfig returns the built-in defaults. Loader applies environment
// overrides on top of this.
func DefaultConfig() *Config {
	return &Config{
		DataRoot: "./data",

		LLMAPIBaseURL:      "https://api.openai.com/v1",
		LLMModelCompliance: "gpt-4o",
		LLMRequestTimeout:  60 * time.Second,

		EmbeddingModel:      "text-embedding-3-small",
		EmbeddingAPIBaseURL: "https://api.openai.com/v1",

		Chunk: ChunkConfig{
			Size:             512,
			Overlap:          64,
			Tokenizer:        "cl100k_base",
			MaxSectionTokens: 2000,
		},

		Context: ContextConfig{
			ManualWindow:         2,
			ManualTokenLimit:     2000,
			RegulationTokenLimit: 2000,
			GuidanceTokenLimit:   1500,
			EvidenceTokenLimit:   1000,
			RegulationTopK:       5,
			GuidanceTopK:         3,
			EvidenceTopK:         3,
			TotalTokenLimit:      6000,
			Tokenizer:            "cl100k_base",
		},

		Refinement: RefinementConfig{
			MaxAttempts:     1,
			ManualWindow:    4,
			TokenMultiplier: 1.5,
			IncludeEvidence: false,
		},

		ChunkProcessingDelay: 5 * time.Second,
		RateLimitBackoffBase: 10 * time.Second,
		RateLimitMaxWait:     120 * time.Second,
		AnalysisMaxRetries:   2,

		Queue: QueueConfig{
			WorkerCount:             2,
			MaxConcurrentAudits:     2,
			PollInterval:            1 * time.Second,
			PollIntervalJitter:      500 * time.Millisecond,
			GracefulShutdownTimeout: 2 * time.Minute,
		},

		LogLevel: "info",
		LogJSON:  false,
	}
}
