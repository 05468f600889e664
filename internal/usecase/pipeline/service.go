package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
	"github.com/meetwise-team/meeting-pipeline/pkg/jobcontext"
)

// ProcessingEvent is one "meeting ended, transcript ready" trigger
type ProcessingEvent struct {
	EventID       string
	MeetingID     string
	TranscriptURL string
}

// Service enqueues transcript processing jobs and runs them on a worker pool
type Service interface {
	// EnqueueJob records a pending job for the event. Idempotent per event
	// id: re-delivery of an already-enqueued event returns the existing job.
	EnqueueJob(ctx context.Context, event ProcessingEvent) (*entities.ProcessingJob, error)

	// ProcessJob claims and runs a single job to a terminal state
	ProcessJob(ctx context.Context, jobID uuid.UUID, workerID int) error

	// StartWorkerPool launches the polling workers and the stalled-job sweeper
	StartWorkerPool(ctx context.Context)

	// StopWorkerPool signals the workers to stop and waits for in-flight jobs
	StopWorkerPool()
}

type service struct {
	jobs     repositories.ProcessingJobRepository
	meetings repositories.MeetingRepository

	fetcher    *TranscriptFetcher
	parser     *Parser
	resolver   *SpeakerResolver
	summarizer *SummarizationInvoker
	committer  *OutcomeCommitter

	workerCount  int
	pollInterval time.Duration
	jobTimeout   time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	logger *zap.Logger
}

// NewService wires the pipeline stages onto a job-backed worker pool
func NewService(
	jobs repositories.ProcessingJobRepository,
	meetings repositories.MeetingRepository,
	fetcher *TranscriptFetcher,
	parser *Parser,
	resolver *SpeakerResolver,
	summarizer *SummarizationInvoker,
	committer *OutcomeCommitter,
	workerCount int,
	pollInterval time.Duration,
	jobTimeout time.Duration,
	logger *zap.Logger,
) Service {
	if workerCount <= 0 {
		workerCount = 2
	}
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	if jobTimeout <= 0 {
		jobTimeout = 5 * time.Minute
	}
	return &service{
		jobs:         jobs,
		meetings:     meetings,
		fetcher:      fetcher,
		parser:       parser,
		resolver:     resolver,
		summarizer:   summarizer,
		committer:    committer,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		jobTimeout:   jobTimeout,
		stopChan:     make(chan struct{}),
		logger:       logger,
	}
}

func (s *service) EnqueueJob(ctx context.Context, event ProcessingEvent) (*entities.ProcessingJob, error) {
	if event.MeetingID == "" || event.TranscriptURL == "" {
		return nil, entities.ErrInvalidRequest
	}

	if event.EventID != "" {
		existing, err := s.jobs.FindByEventID(ctx, event.EventID)
		if err != nil {
			return nil, fmt.Errorf("lookup event %s: %w", event.EventID, err)
		}
		if existing != nil {
			if s.logger != nil {
				s.logger.Info("⚠️ Duplicate trigger event, returning existing job",
					zap.String("event_id", event.EventID),
					zap.String("job_id", existing.ID.String()),
				)
			}
			return existing, nil
		}
	}

	if _, err := s.meetings.FindByID(ctx, event.MeetingID); err != nil {
		return nil, err
	}

	job := entities.NewProcessingJob(event.MeetingID, event.EventID, event.TranscriptURL)
	if err := s.jobs.Create(ctx, job); err != nil {
		// Unique index on event_id closes the check-then-create race: the
		// concurrent insert won, so hand back its job.
		if event.EventID != "" {
			if existing, lookupErr := s.jobs.FindByEventID(ctx, event.EventID); lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("create job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("📥 Processing job enqueued",
			zap.String("job_id", job.ID.String()),
			zap.String("meeting_id", job.MeetingID),
			zap.String("event_id", job.EventID),
		)
	}
	return job, nil
}

func (s *service) ProcessJob(ctx context.Context, jobID uuid.UUID, workerID int) error {
	claimed, err := s.jobs.Claim(ctx, jobID)
	if err != nil {
		return fmt.Errorf("claim job %s: %w", jobID, err)
	}
	if !claimed {
		return entities.ErrJobNotClaimable
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job %s: %w", jobID, err)
	}
	if job == nil {
		return entities.ErrJobNotFound
	}

	jobCtx, cancel := jobcontext.JobBegin(ctx, job.ID, job.MeetingID, workerID, s.jobTimeout)
	defer cancel()

	runErr := jobcontext.Run(jobCtx, func(ctx context.Context) error {
		return s.runJob(ctx, job)
	})
	if runErr != nil {
		if s.logger != nil {
			s.logger.Error("❌ Job failed",
				zap.String("job_id", job.ID.String()),
				zap.String("meeting_id", job.MeetingID),
				zap.Error(runErr),
			)
		}
		if markErr := s.jobs.MarkFailed(context.WithoutCancel(ctx), job.ID, runErr.Error()); markErr != nil && s.logger != nil {
			s.logger.Error("❌ Failed to mark job failed", zap.String("job_id", job.ID.String()), zap.Error(markErr))
		}
		return runErr
	}

	if err := s.jobs.MarkCompleted(context.WithoutCancel(ctx), job.ID); err != nil {
		return fmt.Errorf("mark job %s completed: %w", jobID, err)
	}

	if s.logger != nil {
		elapsed := time.Duration(0)
		if start, ok := jobcontext.GetJobStartTime(jobCtx); ok {
			elapsed = time.Since(start)
		}
		s.logger.Info("✅ Job completed",
			zap.String("job_id", job.ID.String()),
			zap.String("meeting_id", job.MeetingID),
			zap.Duration("elapsed", elapsed),
		)
	}
	return nil
}

// runJob drives one job through the pipeline stages. Fetch, parse and resolve
// failures abort the run and leave the meeting untouched; once the transcript
// is enriched, every summarization outcome commits a completed meeting.
func (s *service) runJob(ctx context.Context, job *entities.ProcessingJob) error {
	raw, err := runStep(ctx, s.jobs, job, StepFetchTranscript, func(ctx context.Context) (string, error) {
		return s.fetcher.Fetch(ctx, job.MeetingID, job.TranscriptURL)
	})
	if err != nil {
		return err
	}

	events, err := runStep(ctx, s.jobs, job, StepParseTranscript, func(ctx context.Context) ([]entities.TranscriptEvent, error) {
		return s.parser.Parse(raw)
	})
	if err != nil {
		return err
	}

	enriched, err := runStep(ctx, s.jobs, job, StepAddSpeakers, func(ctx context.Context) ([]entities.EnrichedTranscriptEvent, error) {
		return s.resolver.Resolve(ctx, events)
	})
	if err != nil {
		return err
	}

	// Deliberately not checkpointed: a resumed job whose previous run died
	// mid-call re-issues the request rather than trusting a half-written
	// snapshot.
	summary, sumErr := s.summarizer.Summarize(ctx, enriched)
	outcome := ClassifyOutcome(summary, sumErr)

	if sumErr != nil && s.logger != nil {
		s.logger.Warn("⚠️ Summarization did not succeed, committing placeholder",
			zap.String("job_id", job.ID.String()),
			zap.String("outcome", outcome.Kind.String()),
			zap.Error(sumErr),
		)
	}

	commitStep := StepSaveSummary
	switch outcome.Kind {
	case OutcomeRateLimited:
		commitStep = StepSaveRateLimited
	case OutcomeFailed:
		commitStep = StepSaveError
	}

	_, err = runStep(ctx, s.jobs, job, commitStep, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.committer.Commit(ctx, job.MeetingID, outcome)
	})
	return err
}

func (s *service) StartWorkerPool(ctx context.Context) {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}
	s.wg.Add(1)
	go s.sweeper(ctx)

	if s.logger != nil {
		s.logger.Info("👷 Worker pool started",
			zap.Int("worker_count", s.workerCount),
			zap.Duration("poll_interval", s.pollInterval),
		)
	}
}

func (s *service) StopWorkerPool() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
	if s.logger != nil {
		s.logger.Info("👷 Worker pool stopped")
	}
}

// worker polls for pending jobs on a ticker. Claim arbitrates between
// workers that see the same pending job; losing a claim is routine.
func (s *service) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.drainPending(ctx, workerID)
		}
	}
}

func (s *service) drainPending(ctx context.Context, workerID int) {
	jobs, err := s.jobs.ListByStatus(ctx, entities.ProcessingJobStatusPending, 10)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to list pending jobs", zap.Int("worker_id", workerID), zap.Error(err))
		}
		return
	}

	for i := range jobs {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		default:
		}

		if err := s.ProcessJob(ctx, jobs[i].ID, workerID); err != nil {
			if errors.Is(err, entities.ErrJobNotClaimable) {
				continue
			}
			// Already logged and marked failed inside ProcessJob
		}
	}
}

// sweeper requeues jobs whose worker died mid-run. The cutoff is twice the
// job timeout so a slow-but-alive run is never stolen.
func (s *service) sweeper(ctx context.Context) {
	defer s.wg.Done()

	interval := s.jobTimeout
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * s.jobTimeout)
			requeued, err := s.jobs.RequeueStalled(ctx, cutoff)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to requeue stalled jobs", zap.Error(err))
				}
				continue
			}
			if requeued > 0 && s.logger != nil {
				s.logger.Warn("🔄 Requeued stalled jobs", zap.Int64("count", requeued))
			}
		}
	}
}
