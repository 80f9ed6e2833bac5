package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for accessibility analysis.
type Client interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
}

// CompletionInput captures the inputs for one completion call.
type CompletionInput struct {
	System string
	Prompt string
}

// ErrNotConfigured is returned when no provider credential is available.
var ErrNotConfigured = errors.New("LLM client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, input CompletionInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
