package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

type capturingProvider struct {
	system string
	prompt string
	reply  string
	err    error
}

func (p *capturingProvider) Name() string { return "capturing" }

func (p *capturingProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	p.system = system
	p.prompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestSummarize_PromptCarriesEnrichedTranscript(t *testing.T) {
	provider := &capturingProvider{reply: "### Overview\nShort."}
	s := NewSummarizationInvoker(provider, nil)

	enriched := []entities.EnrichedTranscriptEvent{
		{
			TranscriptEvent: entities.TranscriptEvent{SpeakerID: "u1", Start: 0, End: 2, Text: "hello"},
			Speaker:         entities.TranscriptSpeaker{Name: "Alice"},
		},
	}

	got, err := s.Summarize(context.Background(), enriched)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if got != "### Overview\nShort." {
		t.Fatalf("unexpected summary %q", got)
	}

	if !strings.HasPrefix(provider.prompt, "Summarize the following transcript: ") {
		t.Fatalf("prompt missing prefix: %q", provider.prompt)
	}
	if !strings.Contains(provider.system, "### Overview") || !strings.Contains(provider.system, "### Notes") {
		t.Fatal("system instruction missing required sections")
	}

	// The serialized transcript must attach the speaker under "user"
	payload := strings.TrimPrefix(provider.prompt, "Summarize the following transcript: ")
	var decoded []map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("prompt payload is not valid JSON: %v", err)
	}
	speaker, ok := decoded[0]["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object in payload, got %+v", decoded[0])
	}
	if speaker["name"] != "Alice" {
		t.Fatalf("unexpected speaker name %v", speaker["name"])
	}
}

func TestSummarize_WrapsProviderFailure(t *testing.T) {
	boom := errors.New("provider down")
	s := NewSummarizationInvoker(&capturingProvider{err: boom}, nil)

	_, err := s.Summarize(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var sumErr *SummarizationError
	if !errors.As(err, &sumErr) {
		t.Fatalf("expected SummarizationError, got %T", err)
	}
	if !errors.Is(err, boom) {
		t.Fatal("expected wrapped cause to survive")
	}
}
