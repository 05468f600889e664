package llm

import "context"

// Provider is the interface for generative-text backends.
type Provider interface {
	// Complete submits one system instruction and one user prompt and
	// returns the first text message of the model's output. A single
	// request/response exchange: no retries, no streaming.
	Complete(ctx context.Context, system, prompt string) (string, error)
	Name() string
}
