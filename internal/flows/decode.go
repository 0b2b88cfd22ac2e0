// Package flows contains the single-purpose LLM calls: instruction
// refinement, prompt engineering, field suggestions, and prompt execution.
// Each flow issues exactly one completion attempt and leaves retry policy to
// the caller.
package flows

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeJSONOutput unmarshals an LLM completion into v, tolerating markdown
// code fences around the JSON body.
func decodeJSONOutput(text string, v interface{}) error {
	cleaned := stripCodeFence(text)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("parsing LLM JSON output: %w (raw: %s)", err, truncate(cleaned, 500))
	}
	return nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
