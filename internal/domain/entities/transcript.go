package entities

// TranscriptEvent is one timestamped utterance decoded from a transcript
// record. Immutable once parsed; start/end are offsets in seconds.
type TranscriptEvent struct {
	SpeakerID string  `json:"speaker_id"`
	Type      string  `json:"type,omitempty"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Text      string  `json:"text"`
}

// TranscriptSpeaker is the resolved display identity attached to an event
type TranscriptSpeaker struct {
	Name string `json:"name"`
}

// UnknownSpeakerName is attached when a speaker id matches neither pool
const UnknownSpeakerName = "Unknown"

// EnrichedTranscriptEvent is a TranscriptEvent plus its resolved speaker.
// Every parsed event yields exactly one enriched event, in original order,
// and Speaker.Name is never empty.
type EnrichedTranscriptEvent struct {
	TranscriptEvent
	Speaker TranscriptSpeaker `json:"user"`
}
