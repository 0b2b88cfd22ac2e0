package noop

import (
	"context"
	"log"

	"promptpilot/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs shared prompts to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendPromptEmail(_ context.Context, toEmail, subject, promptText string) error {
	log.Printf("[NOOP EMAIL] Prompt email to %s (subject %q, %d bytes)", toEmail, subject, len(promptText))
	return nil
}
