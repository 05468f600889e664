package pipeline

import "fmt"

// FetchError indicates the transcript location was unreachable or returned a
// non-success response
type FetchError struct {
	URL    string
	Status int
	Err    error
}

// Error implements error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch transcript %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch transcript %s: unexpected status %d", e.URL, e.Status)
}

// Unwrap exposes the wrapped cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError indicates a malformed transcript record. The whole parse fails:
// downstream speaker attribution depends on a complete, well-ordered sequence.
type ParseError struct {
	Line int
	Err  error
}

// Error implements error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse transcript line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the wrapped cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResolutionError indicates an identity-pool lookup failed. Unknown speaker
// ids are not errors; only storage failures surface here.
type ResolutionError struct {
	Pool string
	Err  error
}

// Error implements error interface
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve speakers (%s pool): %v", e.Pool, e.Err)
}

// Unwrap exposes the wrapped cause
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// SummarizationError carries the original provider failure so the outcome
// committer can classify it
type SummarizationError struct {
	Err error
}

// Error implements error interface
func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed: %v", e.Err)
}

// Unwrap exposes the wrapped cause
func (e *SummarizationError) Unwrap() error {
	return e.Err
}
