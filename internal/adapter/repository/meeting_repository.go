package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// FindByID retrieves a meeting by ID
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// CompleteWithSummary writes the summary and completed status in one update.
// Row-level atomicity of the single UPDATE is the only isolation this
// pipeline relies on.
func (r *meetingRepository) CompleteWithSummary(ctx context.Context, id string, summary string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary": summary,
			"status":  entities.MeetingStatusCompleted,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
