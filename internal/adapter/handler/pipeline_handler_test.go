package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	pipelineUsecase "github.com/meetwise-team/meeting-pipeline/internal/usecase/pipeline"
	pkgvalidator "github.com/meetwise-team/meeting-pipeline/pkg/validator"
)

type fakePipelineService struct {
	enqueued []pipelineUsecase.ProcessingEvent
	err      error
}

func (f *fakePipelineService) EnqueueJob(ctx context.Context, event pipelineUsecase.ProcessingEvent) (*entities.ProcessingJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.enqueued = append(f.enqueued, event)
	return entities.NewProcessingJob(event.MeetingID, event.EventID, event.TranscriptURL), nil
}

func (f *fakePipelineService) ProcessJob(ctx context.Context, jobID uuid.UUID, workerID int) error {
	return nil
}

func (f *fakePipelineService) StartWorkerPool(ctx context.Context) {}

func (f *fakePipelineService) StopWorkerPool() {}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newTriggerContext(t *testing.T, body, signatureHex string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/meetings-processing", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signatureHex != "" {
		req.Header.Set(signatureHeader, signatureHex)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleTrigger_ValidSignature(t *testing.T) {
	svc := &fakePipelineService{}
	h := NewPipelineHandler(svc, nil, "secret", nil)

	body := `{"event_id":"evt-1","meeting_id":"m1","transcript_url":"http://example.com/t.jsonl"}`
	c, rec := newTriggerContext(t, body, sign("secret", []byte(body)))

	if err := h.HandleTrigger(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.enqueued) != 1 || svc.enqueued[0].EventID != "evt-1" {
		t.Fatalf("expected one enqueued event, got %+v", svc.enqueued)
	}
}

func TestHandleTrigger_BadSignature(t *testing.T) {
	svc := &fakePipelineService{}
	h := NewPipelineHandler(svc, nil, "secret", nil)

	body := `{"event_id":"evt-1","meeting_id":"m1","transcript_url":"http://example.com/t.jsonl"}`
	c, rec := newTriggerContext(t, body, sign("wrong-secret", []byte(body)))

	if err := h.HandleTrigger(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(svc.enqueued) != 0 {
		t.Fatal("rejected request must not enqueue")
	}
}

func TestHandleTrigger_MissingFields(t *testing.T) {
	svc := &fakePipelineService{}
	h := NewPipelineHandler(svc, nil, "secret", nil)

	body := `{"event_id":"evt-1"}`
	c, rec := newTriggerContext(t, body, sign("secret", []byte(body)))

	if err := h.HandleTrigger(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleTrigger_NoSecretSkipsVerification(t *testing.T) {
	svc := &fakePipelineService{}
	h := NewPipelineHandler(svc, nil, "", nil)

	body := `{"event_id":"evt-1","meeting_id":"m1","transcript_url":"http://example.com/t.jsonl"}`
	c, rec := newTriggerContext(t, body, "")

	if err := h.HandleTrigger(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}
