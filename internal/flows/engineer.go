package flows

import (
	"context"
	"fmt"
	"strings"

	"promptpilot/internal/domain"
	"promptpilot/internal/port"
)

const engineerMetaPrompt = `You are an AI assistant that optimizes prompts for other LLMs.
Given the 'raw prompt' below, analyze it and re-engineer it for maximum clarity, effectiveness, and to elicit the best possible response.

**CRITICAL INSTRUCTION: If the Raw Prompt explicitly states that the goal is to 'generate downloadable file content', 'provide content for a downloadable file', or that the 'entire output must be the file content itself', your engineered prompt MUST preserve and EMPHASIZE this directive. The primary task in the engineered prompt should be unmistakably about generating or providing a downloadable file or its complete content. For example, the engineered prompt could start with a very direct command like "Your primary mission: Generate and provide the complete, raw content for a downloadable [FORMAT] file."**

You can restructure, rephrase, or add other elements as long as the core request defined by 'Document Type', 'Primary Goal', and 'Details to Extract' (if present in the raw prompt) is also preserved.
If the raw prompt contains the literal token [PASTE DOCUMENT TEXT HERE], your engineered prompt must contain that exact token exactly once so the document text can still be substituted in later.
Respond with a single JSON object of the form {"engineered_prompt": "..."} and nothing else.

Raw Prompt:
%s
`

// Engineer asks the LLM to restructure a rendered prompt. Unlike Refine,
// callers must treat any error as terminal for the request.
func Engineer(ctx context.Context, completer port.TextCompleter, rawPrompt string) (string, error) {
	out, err := completer.Complete(ctx, port.CompletionInput{
		Prompt: fmt.Sprintf(engineerMetaPrompt, rawPrompt),
	})
	if err != nil {
		return "", fmt.Errorf("engineering prompt: %w", err)
	}

	var parsed struct {
		EngineeredPrompt string `json:"engineered_prompt"`
	}
	if err := decodeJSONOutput(out.Text, &parsed); err != nil {
		return "", err
	}
	if strings.TrimSpace(parsed.EngineeredPrompt) == "" {
		return "", domain.ErrEmptyCompletion
	}
	return parsed.EngineeredPrompt, nil
}
