package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"promptpilot/internal/domain"
)

// MockPromptService is a mock implementation of service.PromptService.
type MockPromptService struct {
	mock.Mock
}

func (m *MockPromptService) Generate(ctx context.Context, sessionID uuid.UUID, sel domain.Selection) (*domain.PromptRun, error) {
	args := m.Called(ctx, sessionID, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptRun), args.Error(1)
}

func (m *MockPromptService) Preview(ctx context.Context, sessionID uuid.UUID, sel domain.Selection) (string, error) {
	args := m.Called(ctx, sessionID, sel)
	return args.String(0), args.Error(1)
}

func (m *MockPromptService) GetRun(ctx context.Context, sessionID, runID uuid.UUID) (*domain.PromptRun, error) {
	args := m.Called(ctx, sessionID, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptRun), args.Error(1)
}

func (m *MockPromptService) ListRuns(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.PromptRun, int, error) {
	args := m.Called(ctx, sessionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PromptRun), args.Int(1), args.Error(2)
}

func (m *MockPromptService) DeleteRun(ctx context.Context, sessionID, runID uuid.UUID) error {
	args := m.Called(ctx, sessionID, runID)
	return args.Error(0)
}

func (m *MockPromptService) ExecuteRun(ctx context.Context, sessionID, runID uuid.UUID, documentText string) (string, error) {
	args := m.Called(ctx, sessionID, runID, documentText)
	return args.String(0), args.Error(1)
}

func (m *MockPromptService) DownloadURL(ctx context.Context, sessionID, runID uuid.UUID) (string, error) {
	args := m.Called(ctx, sessionID, runID)
	return args.String(0), args.Error(1)
}
