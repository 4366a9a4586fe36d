package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regsentry/regsentry/pkg/analysis"
)

func TestMetricsAccumulatesObserverEvents(t *testing.T) {
	m := NewMetrics("audit-1")

	// The analysis client only sees the observer interface.
	var obs analysis.UsageObserver = m
	obs.AnalysisRetried()
	obs.AnalysisRetried()
	obs.TokensUsed(100)
	obs.TokensUsed(50)

	m.ChunkProcessed(900)

	assert.Equal(t, 2, m.retryCount)
	assert.Equal(t, 150, m.tokenUsage)
	assert.Equal(t, 900, m.contextTokens)
	assert.Equal(t, 1, m.chunksProcessed)
}
