package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"promptpilot/internal/catalog"
	"promptpilot/internal/domain"
	"promptpilot/internal/service"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CatalogForSession(ctx context.Context, sessionID uuid.UUID) (*catalog.Catalog, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Catalog), args.Error(1)
}

func (m *MockCatalogService) ListDocumentTypes(ctx context.Context, sessionID uuid.UUID) ([]domain.DocumentType, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockCatalogService) ListOutputFormats() []domain.OutputFormat {
	args := m.Called()
	return args.Get(0).([]domain.OutputFormat)
}

func (m *MockCatalogService) CreateDocumentType(ctx context.Context, sessionID uuid.UUID, input service.CreateDocTypeInput) (*domain.DocumentType, error) {
	args := m.Called(ctx, sessionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockCatalogService) DeleteDocumentType(ctx context.Context, sessionID uuid.UUID, typeID string) error {
	args := m.Called(ctx, sessionID, typeID)
	return args.Error(0)
}
