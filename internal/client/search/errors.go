package search

import "fmt"

// RateLimitedError is returned when a cooldown is active. No network call is
// made; the caller should present RemainingSeconds as a countdown.
type RateLimitedError struct {
	RemainingSeconds int64
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %ds", e.RemainingSeconds)
}

// RequestFailedError wraps a non-credential failure (network error, 5xx,
// malformed body). Rotation stops immediately on these: switching keys would
// not help.
type RequestFailedError struct {
	Cause error
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("search request failed: %v", e.Cause)
}

func (e *RequestFailedError) Unwrap() error { return e.Cause }
