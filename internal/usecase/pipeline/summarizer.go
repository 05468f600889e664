package pipeline

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/pkg/llm"
)

// SummarizationInvoker produces a markdown summary of an enriched transcript
// through a single LLM call. The call is made exactly once per job run, no
// internal retries.
type SummarizationInvoker struct {
	provider llm.Provider
	logger   *zap.Logger
}

func NewSummarizationInvoker(provider llm.Provider, logger *zap.Logger) *SummarizationInvoker {
	return &SummarizationInvoker{provider: provider, logger: logger}
}

// Summarize serializes the enriched transcript to JSON and asks the provider
// for a summary. Provider failures are wrapped so callers can classify them.
func (s *SummarizationInvoker) Summarize(ctx context.Context, enriched []entities.EnrichedTranscriptEvent) (string, error) {
	payload, err := json.Marshal(enriched)
	if err != nil {
		return "", &SummarizationError{Err: err}
	}

	if s.logger != nil {
		s.logger.Info("🔄 Requesting summary",
			zap.String("provider", s.provider.Name()),
			zap.Int("event_count", len(enriched)),
		)
	}

	summary, err := s.provider.Complete(ctx, summarizerSystemPrompt, summarizeUserPromptPrefix+string(payload))
	if err != nil {
		return "", &SummarizationError{Err: err}
	}

	return summary, nil
}
