package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/meetwise-team/meeting-pipeline/pkg/config"
)

// GeminiProvider generates completions through the Gemini API
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider from the provided config.
func NewGeminiProvider(ctx context.Context, cfg *config.LLMConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Name identifies the backend for logs
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Complete sends the system instruction and prompt as one content block and
// returns the concatenated text parts of the first candidate.
func (p *GeminiProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	full := system + "\n\n" + prompt

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(full), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
