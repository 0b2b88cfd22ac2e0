package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendPromptEmail(ctx context.Context, toEmail, subject, promptText string) error
}
