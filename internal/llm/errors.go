package llm

import "fmt"

// UpstreamError is a non-success status from the completion API. The body is
// kept verbatim for diagnostics (quota messages, invalid-key details).
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// ExhaustedError means every configured credential was tried and failed for
// one Send call. It carries the last underlying error.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d credential(s) exhausted: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}
