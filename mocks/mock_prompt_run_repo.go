package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"promptpilot/internal/domain"
)

// MockPromptRunRepo is a mock implementation of port.PromptRunRepository.
type MockPromptRunRepo struct {
	mock.Mock
}

func (m *MockPromptRunRepo) Create(ctx context.Context, run *domain.PromptRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockPromptRunRepo) GetByID(ctx context.Context, sessionID, runID uuid.UUID) (*domain.PromptRun, error) {
	args := m.Called(ctx, sessionID, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptRun), args.Error(1)
}

func (m *MockPromptRunRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.PromptRun, int, error) {
	args := m.Called(ctx, sessionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PromptRun), args.Int(1), args.Error(2)
}

func (m *MockPromptRunRepo) Update(ctx context.Context, run *domain.PromptRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockPromptRunRepo) Delete(ctx context.Context, sessionID, runID uuid.UUID) error {
	args := m.Called(ctx, sessionID, runID)
	return args.Error(0)
}
