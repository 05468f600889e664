package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

// Parser decodes newline-delimited JSON transcripts into ordered event
// sequences
type Parser struct{}

// NewParser constructs a Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes one transcript event per non-blank line, preserving input
// order exactly. A malformed line fails the whole parse: partial sequences
// would corrupt downstream speaker attribution.
func (p *Parser) Parse(raw string) ([]entities.TranscriptEvent, error) {
	lines := strings.Split(raw, "\n")
	events := make([]entities.TranscriptEvent, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var event entities.TranscriptEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		events = append(events, event)
	}

	return events, nil
}
