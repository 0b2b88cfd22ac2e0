package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"promptpilot/internal/flows"
)

// MockSuggestionService is a mock implementation of service.SuggestionService.
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) SuggestFields(ctx context.Context, input flows.SuggestionInput) ([]string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
