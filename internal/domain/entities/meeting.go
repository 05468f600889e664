package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MeetingStatus represents the lifecycle status of a meeting
type MeetingStatus string

const (
	MeetingStatusUpcoming   MeetingStatus = "upcoming"
	MeetingStatusActive     MeetingStatus = "active"
	MeetingStatusProcessing MeetingStatus = "processing"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusCancelled  MeetingStatus = "cancelled"
)

// Meeting represents a meeting record owned by the product backend.
// The pipeline has update access to summary and status for one row per run;
// it only ever transitions a meeting to completed so a record can never be
// left stuck in processing by a summarization failure.
type Meeting struct {
	ID        string         `json:"id" gorm:"type:varchar(64);primary_key"`
	Name      string         `json:"name" gorm:"type:varchar(255);not null"`
	HostID    string         `json:"host_id" gorm:"type:varchar(64);index"`
	AgentID   string         `json:"agent_id" gorm:"type:varchar(64);index"`
	Status    MeetingStatus  `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index"`
	Summary   *string        `json:"summary,omitempty" gorm:"type:text"`
	StartedAt *time.Time     `json:"started_at,omitempty"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsCompleted checks if the meeting has a terminal summary state
func (m *Meeting) IsCompleted() bool {
	return m.Status == MeetingStatusCompleted
}

// IsProcessing checks if the meeting is awaiting pipeline output
func (m *Meeting) IsProcessing() bool {
	return m.Status == MeetingStatusProcessing
}
