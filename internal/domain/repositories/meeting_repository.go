package repositories

import (
	"context"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

// MeetingRepository defines the pipeline's contract with the meeting store.
// The pipeline reads one row and writes exactly the summary/status pair.
type MeetingRepository interface {
	// FindByID retrieves a meeting by ID
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// CompleteWithSummary sets the summary text and drives the meeting to
	// completed status in a single row-atomic update
	CompleteWithSummary(ctx context.Context, id string, summary string) error
}
