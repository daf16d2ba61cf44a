package service

import "context"

// AIService is the text-generation collaborator: one prompt in, one
// completion out, no retries, no streaming.
type AIService interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider and model for the tools-used trail.
	Name() string
}
