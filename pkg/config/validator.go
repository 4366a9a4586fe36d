package config

import "fmt"

// ConfigValidator validates configuration with clear error messages.
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error).
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateChunking(); err != nil {
		return fmt.Errorf("chunking validation failed: %w", err)
	}
	if err := v.validateContext(); err != nil {
		return fmt.Errorf("context validation failed: %w", err)
	}
	if err := v.validateRefinement(); err != nil {
		return fmt.Errorf("refinement validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateChunking() error {
	c := v.cfg.Chunk
	if c.Size <= 0 {
		return NewValidationError("chunk_size", fmt.Errorf("must be positive, got %d", c.Size))
	}
	if c.Overlap < 0 || c.Overlap >= c.Size {
		return NewValidationError("chunk_overlap", fmt.Errorf("must be in [0, chunk_size), got %d", c.Overlap))
	}
	if c.MaxSectionTokens <= 0 {
		return NewValidationError("chunk_max_section_tokens", fmt.Errorf("must be positive, got %d", c.MaxSectionTokens))
	}
	return nil
}

func (v *ConfigValidator) validateContext() error {
	c := v.cfg.Context
	if c.ManualWindow < 0 {
		return NewValidationError("context_manual_window", fmt.Errorf("must be non-negative, got %d", c.ManualWindow))
	}
	for name, limit := range map[string]int{
		"context_manual_token_limit":     c.ManualTokenLimit,
		"context_regulation_token_limit": c.RegulationTokenLimit,
		"context_guidance_token_limit":   c.GuidanceTokenLimit,
		"context_evidence_token_limit":   c.EvidenceTokenLimit,
		"context_total_token_limit":      c.TotalTokenLimit,
	} {
		if limit <= 0 {
			return NewValidationError(name, fmt.Errorf("must be positive, got %d", limit))
		}
	}
	for name, k := range map[string]int{
		"context_regulation_top_k": c.RegulationTopK,
		"context_guidance_top_k":   c.GuidanceTopK,
		"context_evidence_top_k":   c.EvidenceTopK,
	} {
		if k <= 0 {
			return NewValidationError(name, fmt.Errorf("must be positive, got %d", k))
		}
	}
	return nil
}

func (v *ConfigValidator) validateRefinement() error {
	r := v.cfg.Refinement
	if r.MaxAttempts < 0 {
		return NewValidationError("refinement_max_attempts", fmt.Errorf("must be non-negative, got %d", r.MaxAttempts))
	}
	if r.ManualWindow < 0 {
		return NewValidationError("refinement_manual_window", fmt.Errorf("must be non-negative, got %d", r.ManualWindow))
	}
	if r.TokenMultiplier <= 0 {
		return NewValidationError("refinement_token_multiplier", fmt.Errorf("must be positive, got %v", r.TokenMultiplier))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount <= 0 {
		return NewValidationError("queue_worker_count", fmt.Errorf("must be positive, got %d", q.WorkerCount))
	}
	if q.MaxConcurrentAudits <= 0 {
		return NewValidationError("queue_max_concurrent_audits", fmt.Errorf("must be positive, got %d", q.MaxConcurrentAudits))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue_poll_interval", fmt.Errorf("must be positive, got %v", q.PollInterval))
	}
	return nil
}
