package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Agent represents an automated meeting participant.
// Agents share the speaker-id space with users in transcripts: a transcript
// event's speaker id may reference either pool.
type Agent struct {
	ID           string         `json:"id" gorm:"type:varchar(64);primary_key"`
	Name         string         `json:"name" gorm:"type:varchar(255);not null"`
	UserID       string         `json:"user_id" gorm:"type:varchar(64);index"`
	Instructions string         `json:"instructions" gorm:"type:text"`
	Settings     datatypes.JSON `json:"settings,omitempty" gorm:"type:jsonb;default:'{}'"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Agent
func (Agent) TableName() string {
	return "agents"
}

// IdentityID implements Identity
func (a *Agent) IdentityID() string {
	return a.ID
}

// DisplayName implements Identity
func (a *Agent) DisplayName() string {
	return a.Name
}
