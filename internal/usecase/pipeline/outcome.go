package pipeline

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
	"github.com/meetwise-team/meeting-pipeline/pkg/llm"
)

// Placeholder summaries stored when summarization does not succeed. The
// meeting is still completed in both cases.
const (
	RateLimitedSummary = "Summary unavailable due to rate limiting. Please try again later."
	FailedSummary      = "Summary unavailable due to an error during processing."
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRateLimited
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of the summarization stage. Summary holds
// either the model output verbatim or one of the placeholder strings.
type Outcome struct {
	Kind    OutcomeKind
	Summary string
}

// ClassifyOutcome maps a summarization result onto a terminal outcome.
// Rate-limit failures and all other failures get distinct placeholders.
func ClassifyOutcome(summary string, err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Summary: summary}
	}
	if IsRateLimitError(err) {
		return Outcome{Kind: OutcomeRateLimited, Summary: RateLimitedSummary}
	}
	return Outcome{Kind: OutcomeFailed, Summary: FailedSummary}
}

// statusCarrier matches provider error types that expose an HTTP status or
// provider error code as an int
type statusCarrier interface{ HTTPStatus() int }
type statusCoder interface{ StatusCode() int }
type coder interface{ Code() int }
type statuser interface{ Status() int }

// IsRateLimitError reports whether err looks like an upstream 429. It checks
// typed status accessors anywhere in the chain first, then falls back to
// message substrings.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *llm.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return true
	}

	var hs statusCarrier
	if errors.As(err, &hs) && hs.HTTPStatus() == http.StatusTooManyRequests {
		return true
	}
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() == http.StatusTooManyRequests {
		return true
	}
	var cd coder
	if errors.As(err, &cd) && cd.Code() == http.StatusTooManyRequests {
		return true
	}
	var st statuser
	if errors.As(err, &st) && st.Status() == http.StatusTooManyRequests {
		return true
	}

	msg := err.Error()
	if strings.Contains(msg, "429") {
		return true
	}
	return strings.Contains(strings.ToLower(msg), "rate limit")
}

// OutcomeCommitter writes the terminal outcome back onto the meeting row
type OutcomeCommitter struct {
	meetings repositories.MeetingRepository
	logger   *zap.Logger
}

func NewOutcomeCommitter(meetings repositories.MeetingRepository, logger *zap.Logger) *OutcomeCommitter {
	return &OutcomeCommitter{meetings: meetings, logger: logger}
}

// Commit stores the outcome summary and transitions the meeting to
// completed. Every outcome kind commits, placeholders included.
func (c *OutcomeCommitter) Commit(ctx context.Context, meetingID string, outcome Outcome) error {
	if err := c.meetings.CompleteWithSummary(ctx, meetingID, outcome.Summary); err != nil {
		return err
	}
	if c.logger != nil {
		c.logger.Info("✅ Meeting completed",
			zap.String("meeting_id", meetingID),
			zap.String("outcome", outcome.Kind.String()),
		)
	}
	return nil
}
