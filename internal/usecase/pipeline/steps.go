package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
)

// Step names double as checkpoint keys in the job's checkpoints column
const (
	StepFetchTranscript = "fetch-transcript"
	StepParseTranscript = "parse-transcript"
	StepAddSpeakers     = "add-speakers"
	StepSaveSummary     = "save-summary"
	StepSaveRateLimited = "save-rate-limited"
	StepSaveError       = "save-error"
)

// runStep executes fn once per job lifetime. When the job already carries a
// checkpoint for the step, the stored snapshot is returned and fn is skipped,
// so a re-run after a crash never repeats completed work.
func runStep[T any](ctx context.Context, jobs repositories.ProcessingJobRepository, job *entities.ProcessingJob, step string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	if snapshot, ok := job.Checkpoint(step); ok {
		if err := json.Unmarshal(snapshot, &result); err != nil {
			return result, fmt.Errorf("decode checkpoint %q: %w", step, err)
		}
		return result, nil
	}

	result, err := fn(ctx)
	if err != nil {
		return result, err
	}

	snapshot, err := json.Marshal(result)
	if err != nil {
		return result, fmt.Errorf("encode checkpoint %q: %w", step, err)
	}
	if err := jobs.SaveCheckpoint(ctx, job.ID, step, snapshot); err != nil {
		return result, fmt.Errorf("save checkpoint %q: %w", step, err)
	}
	job.SetCheckpoint(step, snapshot)

	return result, nil
}
