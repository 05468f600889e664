package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
)

// processingJobRepository implements the ProcessingJobRepository interface
type processingJobRepository struct {
	db *gorm.DB
}

// NewProcessingJobRepository creates a new processing job repository
func NewProcessingJobRepository(db *gorm.DB) repositories.ProcessingJobRepository {
	return &processingJobRepository{db: db}
}

// Create creates a new processing job
func (r *processingJobRepository) Create(ctx context.Context, job *entities.ProcessingJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID retrieves a job by ID
func (r *processingJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ProcessingJob, error) {
	var job entities.ProcessingJob
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// FindByEventID retrieves a job by its trigger event ID
func (r *processingJobRepository) FindByEventID(ctx context.Context, eventID string) (*entities.ProcessingJob, error) {
	var job entities.ProcessingJob
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// ListByStatus retrieves jobs with a given status, oldest first
func (r *processingJobRepository) ListByStatus(ctx context.Context, status entities.ProcessingJobStatus, limit int) ([]entities.ProcessingJob, error) {
	if limit == 0 {
		limit = 100
	}
	var jobs []entities.ProcessingJob
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Claim atomically moves a pending job to running. The WHERE status guard
// means only one worker's UPDATE affects the row when several see the same
// pending job.
func (r *processingJobRepository) Claim(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.ProcessingJob{}).
		Where("id = ? AND status = ?", id, entities.ProcessingJobStatusPending).
		Updates(map[string]interface{}{
			"status":     entities.ProcessingJobStatusRunning,
			"started_at": time.Now(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SaveCheckpoint durably records one step's output snapshot
func (r *processingJobRepository) SaveCheckpoint(ctx context.Context, id uuid.UUID, step string, snapshot json.RawMessage) error {
	return r.db.WithContext(ctx).
		Model(&entities.ProcessingJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"checkpoints": gorm.Expr(
				"jsonb_set(COALESCE(checkpoints, '{}'::jsonb), ARRAY[?], ?::jsonb)",
				step, string(snapshot),
			),
			"updated_at": time.Now(),
		}).Error
}

// MarkCompleted marks a job as finished with a terminal commit
func (r *processingJobRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.ProcessingJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       entities.ProcessingJobStatusCompleted,
			"completed_at": time.Now(),
			"updated_at":   time.Now(),
		}).Error
}

// RequeueStalled recovers jobs orphaned by a crashed worker. Checkpoints are
// kept on the row, so the next run skips steps that already completed.
func (r *processingJobRepository) RequeueStalled(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.ProcessingJob{}).
		Where("status = ? AND started_at < ?", entities.ProcessingJobStatusRunning, cutoff).
		Updates(map[string]interface{}{
			"status":     entities.ProcessingJobStatusPending,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// MarkFailed marks a job as failed with its cause
func (r *processingJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	return r.db.WithContext(ctx).
		Model(&entities.ProcessingJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       entities.ProcessingJobStatusFailed,
			"last_error":   errMsg,
			"completed_at": time.Now(),
			"updated_at":   time.Now(),
		}).Error
}
