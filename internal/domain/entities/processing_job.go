package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProcessingJobStatus represents the status of a transcript processing job
type ProcessingJobStatus string

const (
	ProcessingJobStatusPending   ProcessingJobStatus = "pending"   // Waiting to be claimed by a worker
	ProcessingJobStatusRunning   ProcessingJobStatus = "running"   // Pipeline executing
	ProcessingJobStatusCompleted ProcessingJobStatus = "completed" // Terminal commit written
	ProcessingJobStatusFailed    ProcessingJobStatus = "failed"    // Failed before the summarization safety net
)

// StepCheckpoints maps a pipeline step name to its persisted output snapshot.
// A checkpointed step is computed at most once per job: on resumption the
// snapshot is decoded instead of re-running the step.
type StepCheckpoints map[string]json.RawMessage

// Scan implements sql.Scanner interface for GORM
func (c *StepCheckpoints) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// Value implements driver.Valuer interface for GORM
func (c StepCheckpoints) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal(StepCheckpoints{})
	}
	return json.Marshal(c)
}

// ProcessingJob is the durable record of one pipeline invocation, created
// from one trigger event. Step outputs are checkpointed on the row; the job
// itself is never retried automatically.
type ProcessingJob struct {
	ID            uuid.UUID           `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID     string              `json:"meeting_id" gorm:"type:varchar(64);not null;index"`
	EventID       string              `json:"event_id" gorm:"type:varchar(128);uniqueIndex"`
	TranscriptURL string              `json:"transcript_url" gorm:"type:text;not null"`
	Status        ProcessingJobStatus `json:"status" gorm:"type:varchar(20);not null;index;default:'pending'"`
	Checkpoints   StepCheckpoints     `json:"checkpoints,omitempty" gorm:"type:jsonb"`
	LastError     *string             `json:"last_error,omitempty" gorm:"type:text"`
	StartedAt     *time.Time          `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty" gorm:"type:timestamp"`
	CreatedAt     time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewProcessingJob creates a pending job for a trigger event
func NewProcessingJob(meetingID, eventID, transcriptURL string) *ProcessingJob {
	return &ProcessingJob{
		ID:            uuid.New(),
		MeetingID:     meetingID,
		EventID:       eventID,
		TranscriptURL: transcriptURL,
		Status:        ProcessingJobStatusPending,
		Checkpoints:   StepCheckpoints{},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// Checkpoint returns the stored snapshot for a step, if present
func (j *ProcessingJob) Checkpoint(step string) (json.RawMessage, bool) {
	if j.Checkpoints == nil {
		return nil, false
	}
	raw, ok := j.Checkpoints[step]
	return raw, ok
}

// SetCheckpoint records a step's output snapshot in memory
func (j *ProcessingJob) SetCheckpoint(step string, raw json.RawMessage) {
	if j.Checkpoints == nil {
		j.Checkpoints = StepCheckpoints{}
	}
	j.Checkpoints[step] = raw
}

// IsTerminal checks if the job has finished, successfully or not
func (j *ProcessingJob) IsTerminal() bool {
	return j.Status == ProcessingJobStatusCompleted || j.Status == ProcessingJobStatusFailed
}

// MarkAsRunning marks the job as claimed by a worker
func (j *ProcessingJob) MarkAsRunning() {
	now := time.Now()
	j.Status = ProcessingJobStatusRunning
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted marks the job as finished with a terminal commit
func (j *ProcessingJob) MarkAsCompleted() {
	now := time.Now()
	j.Status = ProcessingJobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks the job as failed with its cause
func (j *ProcessingJob) MarkAsFailed(errMsg string) {
	now := time.Now()
	j.Status = ProcessingJobStatusFailed
	j.LastError = &errMsg
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// TableName specifies the table name for GORM
func (ProcessingJob) TableName() string {
	return "processing_jobs"
}
