package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

// ProcessingJobRepository defines the interface for processing job data access
type ProcessingJobRepository interface {
	// Create creates a new processing job
	Create(ctx context.Context, job *entities.ProcessingJob) error

	// FindByID retrieves a job by ID (nil when not found)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ProcessingJob, error)

	// FindByEventID retrieves a job by its trigger event ID (nil when not found)
	FindByEventID(ctx context.Context, eventID string) (*entities.ProcessingJob, error)

	// ListByStatus retrieves jobs with a given status, oldest first
	ListByStatus(ctx context.Context, status entities.ProcessingJobStatus, limit int) ([]entities.ProcessingJob, error)

	// Claim atomically moves a pending job to running. Returns false when
	// another worker already claimed it.
	Claim(ctx context.Context, id uuid.UUID) (bool, error)

	// SaveCheckpoint durably records one step's output snapshot
	SaveCheckpoint(ctx context.Context, id uuid.UUID, step string, snapshot json.RawMessage) error

	// MarkCompleted marks a job as finished with a terminal commit
	MarkCompleted(ctx context.Context, id uuid.UUID) error

	// MarkFailed marks a job as failed with its cause
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error

	// RequeueStalled moves running jobs whose claim predates cutoff back to
	// pending so a live worker can pick them up. Returns the number requeued.
	RequeueStalled(ctx context.Context, cutoff time.Time) (int64, error)
}
