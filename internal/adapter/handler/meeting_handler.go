package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/errors"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/cache"
)

// MeetingHandler serves processed meeting reads
type MeetingHandler struct {
	meetings repositories.MeetingRepository
	cache    *cache.SummaryCache
	logger   *zap.Logger
}

// NewMeetingHandler creates a new meeting read handler
func NewMeetingHandler(meetings repositories.MeetingRepository, summaryCache *cache.SummaryCache, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{
		meetings: meetings,
		cache:    summaryCache,
		logger:   logger,
	}
}

// GetMeeting returns a meeting with its summary, cache-aside through Redis
func (h *MeetingHandler) GetMeeting(c echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return HandleError(c, h.logger, errors.ErrInvalidArgument("meeting id is required"))
	}

	ctx := c.Request().Context()

	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx, meetingID); ok {
			return c.JSONBlob(http.StatusOK, payload)
		}
	}

	meeting, err := h.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	payload, err := json.Marshal(meeting)
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	// Only completed meetings are cacheable: their summary is immutable
	if h.cache != nil && meeting.IsCompleted() {
		if err := h.cache.Set(ctx, meetingID, payload); err != nil && h.logger != nil {
			h.logger.Warn("⚠️ Failed to cache meeting", zap.String("meeting_id", meetingID), zap.Error(err))
		}
	}

	return c.JSONBlob(http.StatusOK, payload)
}
