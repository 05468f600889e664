package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/errors"
	dto "github.com/meetwise-team/meeting-pipeline/internal/adapter/dto/pipeline"
	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/cache"
	pipelineUsecase "github.com/meetwise-team/meeting-pipeline/internal/usecase/pipeline"
	"github.com/meetwise-team/meeting-pipeline/pkg/signature"
)

const signatureHeader = "X-Webhook-Signature"

// PipelineHandler receives meetings/processing trigger events
type PipelineHandler struct {
	service       pipelineUsecase.Service
	deduper       *cache.EventDeduper
	webhookSecret string
	logger        *zap.Logger
}

// NewPipelineHandler creates a new pipeline webhook handler
func NewPipelineHandler(service pipelineUsecase.Service, deduper *cache.EventDeduper, webhookSecret string, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{
		service:       service,
		deduper:       deduper,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleTrigger validates the webhook and enqueues a processing job.
// Signature verification needs the raw body, so binding happens manually.
func (h *PipelineHandler) HandleTrigger(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(c, h.logger, errors.ErrInvalidPayload())
	}

	if h.webhookSecret != "" {
		if !signature.VerifyHMAC(h.webhookSecret, body, c.Request().Header.Get(signatureHeader)) {
			if h.logger != nil {
				h.logger.Warn("⚠️ Webhook signature rejected", zap.String("path", c.Path()))
			}
			return HandleError(c, h.logger, errors.ErrInvalidSignature())
		}
	}

	var req dto.TriggerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return HandleError(c, h.logger, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(c, h.logger, errors.ErrInvalidArgument(err.Error()))
	}

	ctx := c.Request().Context()

	// Fast duplicate check; the unique index on event_id is the real guard,
	// so a Redis miss here just means a round trip to the database.
	if h.deduper != nil {
		fresh, err := h.deduper.Accept(ctx, req.EventID)
		if err != nil && h.logger != nil {
			h.logger.Warn("⚠️ Event dedup check unavailable", zap.Error(err))
		}
		if err == nil && !fresh {
			return HandleSuccess(c, http.StatusOK, dto.TriggerResponse{
				MeetingID: req.MeetingID,
				Status:    "accepted",
				Duplicate: true,
			})
		}
	}

	job, err := h.service.EnqueueJob(ctx, pipelineUsecase.ProcessingEvent{
		EventID:       req.EventID,
		MeetingID:     req.MeetingID,
		TranscriptURL: req.TranscriptURL,
	})
	if err != nil {
		return HandleError(c, h.logger, err)
	}

	return HandleSuccess(c, http.StatusAccepted, dto.TriggerResponse{
		JobID:     job.ID.String(),
		MeetingID: job.MeetingID,
		Status:    string(job.Status),
	})
}
