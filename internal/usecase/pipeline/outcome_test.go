package pipeline

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/meetwise-team/meeting-pipeline/pkg/llm"
)

func TestClassifyOutcome_Success(t *testing.T) {
	outcome := ClassifyOutcome("### Overview\nGood meeting.", nil)
	if outcome.Kind != OutcomeSuccess {
		t.Fatalf("expected success, got %v", outcome.Kind)
	}
	if outcome.Summary != "### Overview\nGood meeting." {
		t.Fatalf("summary must be passed through verbatim, got %q", outcome.Summary)
	}
}

func TestClassifyOutcome_RateLimitedByStatusCode(t *testing.T) {
	err := &SummarizationError{Err: &llm.APIError{StatusCode: http.StatusTooManyRequests, Body: "slow down"}}
	outcome := ClassifyOutcome("", err)
	if outcome.Kind != OutcomeRateLimited {
		t.Fatalf("expected rate limited, got %v", outcome.Kind)
	}
	if outcome.Summary != RateLimitedSummary {
		t.Fatalf("unexpected placeholder: %q", outcome.Summary)
	}
}

func TestClassifyOutcome_RateLimitedBySubstring(t *testing.T) {
	cases := []error{
		errors.New("provider said: Rate Limit exceeded"),
		errors.New("upstream returned 429"),
		fmt.Errorf("wrapped: %w", errors.New("rate limit reached")),
	}
	for _, err := range cases {
		outcome := ClassifyOutcome("", &SummarizationError{Err: err})
		if outcome.Kind != OutcomeRateLimited {
			t.Fatalf("expected rate limited for %v, got %v", err, outcome.Kind)
		}
	}
}

func TestClassifyOutcome_GenericFailure(t *testing.T) {
	err := &SummarizationError{Err: errors.New("model exploded")}
	outcome := ClassifyOutcome("", err)
	if outcome.Kind != OutcomeFailed {
		t.Fatalf("expected failed, got %v", outcome.Kind)
	}
	if outcome.Summary != FailedSummary {
		t.Fatalf("unexpected placeholder: %q", outcome.Summary)
	}
}

func TestClassifyOutcome_ServerErrorIsNotRateLimit(t *testing.T) {
	err := &SummarizationError{Err: &llm.APIError{StatusCode: http.StatusInternalServerError, Body: "oops"}}
	outcome := ClassifyOutcome("", err)
	if outcome.Kind != OutcomeFailed {
		t.Fatalf("expected failed, got %v", outcome.Kind)
	}
}

type statusCodeErr struct{ code int }

func (e statusCodeErr) Error() string   { return "provider error" }
func (e statusCodeErr) StatusCode() int { return e.code }

func TestIsRateLimitError_TypedStatusAccessor(t *testing.T) {
	if !IsRateLimitError(fmt.Errorf("call failed: %w", statusCodeErr{code: 429})) {
		t.Fatal("expected typed 429 to classify as rate limit")
	}
	if IsRateLimitError(statusCodeErr{code: 500}) {
		t.Fatal("typed 500 must not classify as rate limit")
	}
}

func TestIsRateLimitError_Nil(t *testing.T) {
	if IsRateLimitError(nil) {
		t.Fatal("nil is not a rate limit error")
	}
}
