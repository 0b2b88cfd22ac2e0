package port

import "context"

// CompletionInput carries a single text completion request.
type CompletionInput struct {
	Prompt    string
	MaxTokens int
}

// CompletionOutput contains the completion text from an LLM provider.
type CompletionOutput struct {
	Text      string
	ModelUsed string
}

// TextCompleter abstracts a single-attempt LLM text completion call. Retry
// and backoff policy belongs to the caller, not the implementation.
type TextCompleter interface {
	Complete(ctx context.Context, input CompletionInput) (*CompletionOutput, error)
}
