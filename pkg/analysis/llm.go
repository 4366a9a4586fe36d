package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
)

// LLMClient calls an OpenAI-compatible chat completions endpoint with a
// JSON-object response format and bounded retries.
type LLMClient struct {
	baseURL    string
	apiKey     string
	model      string
	maxRetries int
	backoff    time.Duration
	maxWait    time.Duration

	httpClient *http.Client
	logger     *slog.Logger

	// sleep is swappable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ Client = (*LLMClient)(nil)

// NewLLMClient creates an LLMClient from the application config.
func NewLLMClient(cfg *config.Config) (*LLMClient, error) {
	if cfg.LLMAPIBaseURL == "" {
		return nil, fmt.Errorf("LLM API base URL is required")
	}
	if cfg.LLMModelCompliance == "" {
		return nil, fmt.Errorf("LLM compliance model is required")
	}

	return &LLMClient{
		baseURL:    strings.TrimRight(cfg.LLMAPIBaseURL, "/"),
		apiKey:     cfg.LLMAPIKey,
		model:      cfg.LLMModelCompliance,
		maxRetries: cfg.AnalysisMaxRetries,
		backoff:    cfg.RateLimitBackoffBase,
		maxWait:    cfg.RateLimitMaxWait,
		httpClient: &http.Client{Timeout: cfg.LLMRequestTimeout},
		logger:     slog.Default().With("component", "analysis_client"),
		sleep:      sleepCtx,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Analyze runs the compliance analysis for one chunk. Rate limits are
// retried with Retry-After or exponential backoff up to maxRetries; 404 is a
// fatal configuration error; other failures get one retry.
func (c *LLMClient) Analyze(ctx context.Context, chunk *models.ChunkRecord, bundle *retrieval.Bundle) (*models.NormalizedAnalysis, error) {
	messages := []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt(chunk, bundle)},
	}

	obs := usageObserver(ctx)

	var lastErr error
	rateLimited := 0
	transientRetried := false

	for attempt := 1; ; attempt++ {
		content, tokens, status, retryAfter, err := c.complete(ctx, messages)
		switch {
		case err == nil:
			if obs != nil && tokens > 0 {
				obs.TokensUsed(tokens)
			}
			parsed, perr := parseAnalysis(content)
			if perr == nil {
				return parsed, nil
			}
			lastErr = perr
			c.logger.Warn("Analysis response failed validation",
				"chunk_id", chunk.ChunkID, "attempt", attempt, "error", perr)
			if transientRetried {
				return nil, &AnalysisError{Message: "response validation failed after retry", Err: lastErr}
			}
			transientRetried = true
			if obs != nil {
				obs.AnalysisRetried()
			}

		case status == http.StatusTooManyRequests:
			rateLimited++
			lastErr = err
			if rateLimited > c.maxRetries {
				return nil, NewRateLimitExhausted(rateLimited, lastErr)
			}
			if obs != nil {
				obs.AnalysisRetried()
			}
			wait := c.rateLimitWait(retryAfter, rateLimited)
			c.logger.Warn("Rate limited, backing off",
				"chunk_id", chunk.ChunkID, "wait", wait, "attempt", rateLimited)
			if serr := c.sleep(ctx, wait); serr != nil {
				return nil, &AnalysisError{Message: "canceled during rate-limit backoff", Err: serr}
			}
			continue

		case status == http.StatusNotFound:
			// Wrong model or endpoint path. Retrying cannot help.
			return nil, &AnalysisError{Message: "LLM endpoint or model not found", Err: err}

		default:
			lastErr = err
			if transientRetried {
				return nil, &AnalysisError{Message: "LLM call failed after retry", Err: lastErr}
			}
			transientRetried = true
			if obs != nil {
				obs.AnalysisRetried()
			}
			c.logger.Warn("Transient LLM failure, retrying once",
				"chunk_id", chunk.ChunkID, "error", err)
			if serr := c.sleep(ctx, c.backoff); serr != nil {
				return nil, &AnalysisError{Message: "canceled during backoff", Err: serr}
			}
		}
	}
}

// rateLimitWait honors Retry-After when present (clamped to maxWait), else
// applies base * 2^(attempt-1) capped at maxWait.
func (c *LLMClient) rateLimitWait(retryAfter time.Duration, attempt int) time.Duration {
	if retryAfter > 0 {
		if retryAfter > c.maxWait {
			return c.maxWait
		}
		return retryAfter
	}
	wait := c.backoff
	for i := 1; i < attempt; i++ {
		wait *= 2
		if wait >= c.maxWait {
			return c.maxWait
		}
	}
	if wait > c.maxWait {
		return c.maxWait
	}
	return wait
}

// complete issues one chat completion call. On HTTP errors it returns the
// status code and any Retry-After duration alongside the error. On success
// it also returns the provider-reported total token count.
func (c *LLMClient) complete(ctx context.Context, messages []chatMessage) (content string, tokens, status int, retryAfter time.Duration, err error) {
	reqBody := chatRequest{Model: c.model, Messages: messages}
	reqBody.ResponseFormat.Type = "json_object"

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", 0, resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After")),
			fmt.Errorf("chat endpoint returned status %d: %s",
				resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", 0, 0, 0, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", 0, 0, 0, fmt.Errorf("chat response contained no choices")
	}
	return parsed.Choices[0].Message.Content, parsed.Usage.TotalTokens, http.StatusOK, 0, nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
