package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"promptpilot/internal/domain"
)

// MockUserDocTypeRepo is a mock implementation of port.UserDocTypeRepository.
type MockUserDocTypeRepo struct {
	mock.Mock
}

func (m *MockUserDocTypeRepo) Upsert(ctx context.Context, docType *domain.UserDocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

func (m *MockUserDocTypeRepo) GetByID(ctx context.Context, sessionID uuid.UUID, typeID string) (*domain.UserDocumentType, error) {
	args := m.Called(ctx, sessionID, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDocumentType), args.Error(1)
}

func (m *MockUserDocTypeRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.UserDocumentType, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserDocumentType), args.Error(1)
}

func (m *MockUserDocTypeRepo) Delete(ctx context.Context, sessionID uuid.UUID, typeID string) error {
	args := m.Called(ctx, sessionID, typeID)
	return args.Error(0)
}
