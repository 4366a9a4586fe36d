package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/config"
	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
)

func testChunk() *models.ChunkRecord {
	return &models.ChunkRecord{
		ChunkID:       "D_0_0",
		ChunkIndex:    0,
		ParentHeading: "Scope",
		Content:       "This manual covers maintenance.",
	}
}

func testBundle() *retrieval.Bundle {
	return &retrieval.Bundle{
		Focus: retrieval.Slice{ChunkID: "D_0_0", Heading: "Scope", Content: "This manual covers maintenance."},
	}
}

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	require.NoError(t, json.NewEncoder(w).Encode(reply))
}

func newTestClient(t *testing.T, serverURL string) (*LLMClient, *[]time.Duration) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.LLMAPIBaseURL = serverURL
	cfg.LLMAPIKey = "test-key"
	cfg.LLMModelCompliance = "test-model"
	cfg.LLMRequestTimeout = 5 * time.Second

	client, err := NewLLMClient(cfg)
	require.NoError(t, err)

	var sleeps []time.Duration
	client.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return client, &sleeps
}

func TestLLMClient_HappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		chatReply(t, w, validResponse)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	a, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.NoError(t, err)
	assert.Equal(t, models.FlagGreen, a.Flag)
}

func TestLLMClient_RateLimitBackoffThenSuccess(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		chatReply(t, w, validResponse)
	}))
	defer server.Close()

	client, sleeps := newTestClient(t, server.URL)
	a, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.NoError(t, err)
	assert.Equal(t, models.FlagGreen, a.Flag)

	// No Retry-After header: exponential backoff 10s then 20s.
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 10*time.Second, (*sleeps)[0])
	assert.Equal(t, 20*time.Second, (*sleeps)[1])
}

func TestLLMClient_RetryAfterHonoredAndClamped(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.Header().Set("Retry-After", "600")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			chatReply(t, w, validResponse)
		}
	}))
	defer server.Close()

	client, sleeps := newTestClient(t, server.URL)
	_, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.NoError(t, err)

	require.Len(t, *sleeps, 2)
	assert.Equal(t, 7*time.Second, (*sleeps)[0])
	// 600s clamped to the configured 120s maximum.
	assert.Equal(t, 120*time.Second, (*sleeps)[1])
}

func TestLLMClient_RateLimitExhaustion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	_, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.Error(t, err)

	var exhausted *RateLimitExhaustedError
	require.ErrorAs(t, err, &exhausted)
	// Default budget: 2 retries after the first rate-limited call.
	assert.Equal(t, 3, exhausted.Attempts)
}

func TestLLMClient_NotFoundIsFatalWithoutRetry(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, sleeps := newTestClient(t, server.URL)
	_, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	var exhausted *RateLimitExhaustedError
	assert.False(t, errors.As(err, &exhausted))
	assert.Equal(t, int64(1), calls.Load())
	assert.Empty(t, *sleeps)
}

func TestLLMClient_TransientErrorRetriedOnce(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		chatReply(t, w, validResponse)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	a, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.NoError(t, err)
	assert.Equal(t, models.FlagGreen, a.Flag)
	assert.Equal(t, int64(2), calls.Load())
}

type recordingObserver struct {
	mu      sync.Mutex
	retries int
	tokens  int
}

func (o *recordingObserver) AnalysisRetried() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.retries++
}

func (o *recordingObserver) TokensUsed(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tokens += n
}

func TestLLMClient_ReportsRetriesAndUsageToObserver(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		reply := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": validResponse}},
			},
			"usage": map[string]any{"total_tokens": 321},
		}
		require.NoError(t, json.NewEncoder(w).Encode(reply))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	obs := &recordingObserver{}
	ctx := WithUsageObserver(context.Background(), obs)

	_, err := client.Analyze(ctx, testChunk(), testBundle())
	require.NoError(t, err)
	assert.Equal(t, 1, obs.retries)
	assert.Equal(t, 321, obs.tokens)
}

func TestLLMClient_NoObserverIsFine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		chatReply(t, w, validResponse)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	_, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.NoError(t, err)
}

func TestLLMClient_InvalidResponseRetriedThenFails(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		chatReply(t, w, `{"flag": "BLUE"}`)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	_, err := client.Analyze(context.Background(), testChunk(), testBundle())
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, int64(2), calls.Load())
}
