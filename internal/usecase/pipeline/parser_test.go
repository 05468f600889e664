package pipeline

import (
	"errors"
	"testing"
)

func TestParse_ValidTranscript(t *testing.T) {
	raw := `{"speaker_id":"u1","type":"speech","start":0,"end":1.5,"text":"hello"}
{"speaker_id":"a1","type":"speech","start":1.5,"end":3,"text":"hi there"}
`

	p := NewParser()
	events, err := p.Parse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].SpeakerID != "u1" || events[0].Text != "hello" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].SpeakerID != "a1" {
		t.Fatalf("events out of order: %+v", events[1])
	}
}

func TestParse_SkipsBlankLines(t *testing.T) {
	raw := "\n{\"speaker_id\":\"u1\",\"text\":\"one\"}\n\n   \n{\"speaker_id\":\"u2\",\"text\":\"two\"}\n\n"

	p := NewParser()
	events, err := p.Parse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestParse_MalformedLineFailsWholeParse(t *testing.T) {
	raw := `{"speaker_id":"u1","text":"ok"}
not json at all
{"speaker_id":"u2","text":"never reached"}`

	p := NewParser()
	_, err := p.Parse(raw)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Line != 2 {
		t.Fatalf("expected failure on line 2, got %d", parseErr.Line)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser()
	events, err := p.Parse("")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
