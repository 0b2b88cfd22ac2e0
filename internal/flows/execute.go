package flows

import (
	"context"
	"fmt"
	"strings"

	"promptpilot/internal/domain"
	"promptpilot/internal/port"
	"promptpilot/internal/promptgen"
)

// Execute substitutes the document text into an engineered prompt and runs
// it. The prompt must contain the document placeholder token; prompts
// produced in file content mode cannot be executed this way.
func Execute(ctx context.Context, completer port.TextCompleter, engineeredPrompt, documentText string) (string, error) {
	if !strings.Contains(engineeredPrompt, promptgen.DocumentPlaceholder) {
		return "", domain.ErrPlaceholderMissing
	}

	finalPrompt := strings.Replace(engineeredPrompt, promptgen.DocumentPlaceholder, documentText, 1)

	out, err := completer.Complete(ctx, port.CompletionInput{Prompt: finalPrompt})
	if err != nil {
		return "", fmt.Errorf("executing prompt: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", domain.ErrEmptyCompletion
	}
	return out.Text, nil
}
