package flows

import (
	"context"
	"fmt"
	"strings"

	"promptpilot/internal/domain"
	"promptpilot/internal/port"
)

const refineMetaPrompt = `You are an AI assistant that refines user-provided instructions for clarity and effectiveness when they are part of a larger prompt for another LLM.
Given the user's custom instructions below, rephrase or enhance them.
Maintain the original intent but make them more direct, concise, and actionable for an LLM.
Respond with a single JSON object of the form {"refined_instructions": "..."} and nothing else.

User Instructions:
%s
`

// Refine asks the LLM to tighten free-text user instructions. Callers treat
// any error as non-fatal and fall back to the original text.
func Refine(ctx context.Context, completer port.TextCompleter, instructions string) (string, error) {
	out, err := completer.Complete(ctx, port.CompletionInput{
		Prompt: fmt.Sprintf(refineMetaPrompt, instructions),
	})
	if err != nil {
		return "", fmt.Errorf("refining instructions: %w", err)
	}

	var parsed struct {
		RefinedInstructions string `json:"refined_instructions"`
	}
	if err := decodeJSONOutput(out.Text, &parsed); err != nil {
		return "", err
	}
	if strings.TrimSpace(parsed.RefinedInstructions) == "" {
		return "", domain.ErrEmptyCompletion
	}
	return parsed.RefinedInstructions, nil
}
