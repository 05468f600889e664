package pipeline

// TriggerRequest is the payload of the meetings/processing webhook
type TriggerRequest struct {
	EventID       string `json:"event_id" validate:"required"`
	MeetingID     string `json:"meeting_id" validate:"required"`
	TranscriptURL string `json:"transcript_url" validate:"required,url"`
}

// TriggerResponse acknowledges an accepted trigger
type TriggerResponse struct {
	JobID     string `json:"job_id"`
	MeetingID string `json:"meeting_id"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate,omitempty"`
}
