package llm

import (
	"context"
	"errors"
)

// Client abstracts text-completion providers for project assessment.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest carries one prompt exchange to a provider.
type CompletionRequest struct {
	// System is an optional system instruction.
	System string
	// Prompt is the user prompt.
	Prompt string
	// APIKey overrides the configured credential for this call when set.
	APIKey string
}

// ErrTimeout marks a provider call that exceeded the client timeout.
var ErrTimeout = errors.New("llm request timeout")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
