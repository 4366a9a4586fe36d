package analysis

import "fmt"

// AnalysisError is a terminal analysis failure: validation failed after the
// final retry, or the endpoint returned a non-retryable error.
type AnalysisError struct {
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("analysis failed: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// RateLimitExhaustedError means the endpoint kept returning 429 past the
// retry budget. The runner turns it into a user-facing failure reason naming
// audit progress.
type RateLimitExhaustedError struct {
	AnalysisError
	Attempts int
}

// NewRateLimitExhausted creates a RateLimitExhaustedError after attempts
// tries.
func NewRateLimitExhausted(attempts int, err error) *RateLimitExhaustedError {
	return &RateLimitExhaustedError{
		AnalysisError: AnalysisError{
			Message: fmt.Sprintf("rate limit not lifted after %d attempts", attempts),
			Err:     err,
		},
		Attempts: attempts,
	}
}
