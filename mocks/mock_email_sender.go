package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPromptEmail(ctx context.Context, toEmail, subject, promptText string) error {
	args := m.Called(ctx, toEmail, subject, promptText)
	return args.Error(0)
}
