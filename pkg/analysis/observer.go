package analysis

import "context"

// UsageObserver receives retry and token-usage events from a Client call.
// Implementations must be safe for concurrent use; one LLMClient serves
// every worker.
type UsageObserver interface {
	// AnalysisRetried is called each time a call is about to be retried,
	// whether for rate limiting, a transient failure, or a validation
	// failure.
	AnalysisRetried()
	// TokensUsed reports the provider's total_tokens for one successful
	// completion call.
	TokensUsed(n int)
}

type observerCtxKey struct{}

// WithUsageObserver attaches obs to ctx so the client can report per-call
// retries and token usage to the caller that owns the run.
func WithUsageObserver(ctx context.Context, obs UsageObserver) context.Context {
	return context.WithValue(ctx, observerCtxKey{}, obs)
}

func usageObserver(ctx context.Context) UsageObserver {
	obs, _ := ctx.Value(observerCtxKey{}).(UsageObserver)
	return obs
}
