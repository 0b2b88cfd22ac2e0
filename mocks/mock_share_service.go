package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShareService is a mock implementation of service.ShareService.
type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) SharePrompt(ctx context.Context, sessionID, runID uuid.UUID, toEmail, subject string) error {
	args := m.Called(ctx, sessionID, runID, toEmail, subject)
	return args.Error(0)
}
