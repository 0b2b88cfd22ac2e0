package flows

import (
	"context"
	"fmt"
	"strings"

	"promptpilot/internal/port"
)

// SuggestionInput carries the current selection state used to propose
// additional fields.
type SuggestionInput struct {
	DocumentType    string
	PrimaryGoal     string
	SelectedDetails []string
	CustomDetails   []string
}

const suggestMetaPrompt = `Based on the user's current selections for building a prompt to extract information from a "%s", suggest 3-5 concise options for additional details they might want to extract.
The user's primary goal is "%s".

They have already selected the following standard details (if any):
%s
They have also added the following custom details (if any):
%s
Consider the document type and primary goal. Suggest options that are distinct from what's already selected and are commonly relevant.
Respond with a single JSON object of the form {"suggested_options": ["...", "..."]} and nothing else. Do not suggest details already listed.
Be concise. For example, if "Invoice Number" is already selected, do not suggest it again.
If the user has selected "Vendor Name", "Invoice Date", and "Total Amount" for an "Invoice", you might suggest: ["Due Date", "Item Description", "Tax Amount"].
`

// Suggest asks the LLM for additional field labels relevant to the current
// selection. Failures here are advisory only.
func Suggest(ctx context.Context, completer port.TextCompleter, input SuggestionInput) ([]string, error) {
	goal := input.PrimaryGoal
	if goal == "" {
		goal = "not yet specified"
	}

	out, err := completer.Complete(ctx, port.CompletionInput{
		Prompt: fmt.Sprintf(suggestMetaPrompt, input.DocumentType, goal,
			bulletList(input.SelectedDetails), bulletList(input.CustomDetails)),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching suggestions: %w", err)
	}

	var parsed struct {
		SuggestedOptions []string `json:"suggested_options"`
	}
	if err := decodeJSONOutput(out.Text, &parsed); err != nil {
		return nil, err
	}

	// The meta-prompt already asks for distinct options; the model does not
	// always comply, so repeats of chosen details are dropped here too.
	chosen := make(map[string]bool, len(input.SelectedDetails)+len(input.CustomDetails))
	for _, d := range input.SelectedDetails {
		chosen[strings.ToLower(strings.TrimSpace(d))] = true
	}
	for _, d := range input.CustomDetails {
		chosen[strings.ToLower(strings.TrimSpace(d))] = true
	}

	suggestions := parsed.SuggestedOptions[:0:0]
	for _, s := range parsed.SuggestedOptions {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" || chosen[strings.ToLower(trimmed)] {
			continue
		}
		suggestions = append(suggestions, trimmed)
	}
	return suggestions, nil
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- None\n"
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
