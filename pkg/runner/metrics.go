package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/regsentry/regsentry/pkg/analysis"
)

// metricsEmitInterval is the wall-clock period between metric log events
// while an audit runs.
const metricsEmitInterval = 60 * time.Second

// Metrics is the per-audit counter set. The runner updates chunk counters
// from the audit's own task and installs itself as the analysis client's
// usage observer; the mutex also guards the periodic emitter goroutine.
type Metrics struct {
	mu sync.Mutex

	auditID         string
	startedAt       time.Time
	chunksProcessed int
	contextTokens   int
	retryCount      int
	tokenUsage      int
}

var _ analysis.UsageObserver = (*Metrics)(nil)

// NewMetrics creates a counter set for one audit run.
func NewMetrics(auditID string) *Metrics {
	return &Metrics{
		auditID:   auditID,
		startedAt: time.Now(),
	}
}

// ChunkProcessed records one committed chunk and the token size of the
// context bundle it was analyzed with.
func (m *Metrics) ChunkProcessed(tokens int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunksProcessed++
	m.contextTokens += tokens
}

// AnalysisRetried records one analysis retry reported by the LLM client.
func (m *Metrics) AnalysisRetried() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retryCount++
}

// TokensUsed records the provider-reported token usage of one LLM call.
func (m *Metrics) TokensUsed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenUsage += n
}

// Emit writes the counters as one structured log event.
func (m *Metrics) Emit(logger *slog.Logger, event string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := time.Since(m.startedAt)
	perMinute := 0.0
	if elapsed > 0 {
		perMinute = float64(m.chunksProcessed) / elapsed.Minutes()
	}

	logger.Info(event,
		"audit_id", m.auditID,
		"chunks_processed", m.chunksProcessed,
		"retry_count", m.retryCount,
		"token_usage", m.tokenUsage,
		"context_tokens", m.contextTokens,
		"chunks_per_minute", perMinute,
		"elapsed", elapsed.Round(time.Second).String(),
	)
}

// StartPeriodicEmit emits the counters every metricsEmitInterval until ctx
// is canceled.
func (m *Metrics) StartPeriodicEmit(ctx context.Context, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(metricsEmitInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Emit(logger, "Audit metrics")
			}
		}
	}()
}
