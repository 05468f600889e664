package pipeline

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/storage"
)

// TranscriptFetcher retrieves raw transcript content from its hosted URL
type TranscriptFetcher struct {
	client  *http.Client
	archive *storage.TranscriptArchive
	logger  *zap.Logger
}

// NewTranscriptFetcher constructs a fetcher. archive may be nil when
// transcript archival is disabled.
func NewTranscriptFetcher(archive *storage.TranscriptArchive, logger *zap.Logger) *TranscriptFetcher {
	return &TranscriptFetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		archive: archive,
		logger:  logger,
	}
}

// Fetch downloads the raw transcript for a meeting. Any transport failure or
// non-2xx response is a FetchError; the orchestrator treats it as
// job-terminating rather than retrying here.
func (f *TranscriptFetcher) Fetch(ctx context.Context, meetingID, transcriptURL string) (string, error) {
	// Trim to handle URLs stored with a trailing newline
	cleanURL := strings.TrimSpace(transcriptURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cleanURL, nil)
	if err != nil {
		return "", &FetchError{URL: cleanURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: cleanURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: cleanURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: cleanURL, Err: err}
	}

	if f.logger != nil {
		f.logger.Info("📥 Transcript fetched",
			zap.String("meeting_id", meetingID),
			zap.Int("bytes", len(body)),
		)
	}

	// Archival is best effort; a storage hiccup must not fail the job
	if f.archive != nil {
		if objectName, err := f.archive.Store(ctx, meetingID, body); err != nil {
			if f.logger != nil {
				f.logger.Warn("⚠️ Failed to archive transcript",
					zap.String("meeting_id", meetingID),
					zap.Error(err),
				)
			}
		} else if f.logger != nil {
			f.logger.Info("✅ Transcript archived",
				zap.String("meeting_id", meetingID),
				zap.String("object", objectName),
			)
		}
	}

	return string(body), nil
}
