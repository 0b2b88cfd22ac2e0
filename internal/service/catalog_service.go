package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"promptpilot/internal/catalog"
	"promptpilot/internal/domain"
	"promptpilot/internal/port"
)

// CreateDocTypeInput is the DTO for creating or replacing a session-defined
// document type.
type CreateDocTypeInput struct {
	ID    string        `json:"id" binding:"required"`
	Label string        `json:"label" binding:"required"`
	Icon  string        `json:"icon"`
	Goals []domain.Goal `json:"goals" binding:"required,min=1"`
}

// CatalogService resolves the per-session document type catalog and manages
// session-defined document types. Built-in types are immutable.
type CatalogService interface {
	CatalogForSession(ctx context.Context, sessionID uuid.UUID) (*catalog.Catalog, error)
	ListDocumentTypes(ctx context.Context, sessionID uuid.UUID) ([]domain.DocumentType, error)
	ListOutputFormats() []domain.OutputFormat
	CreateDocumentType(ctx context.Context, sessionID uuid.UUID, input CreateDocTypeInput) (*domain.DocumentType, error)
	DeleteDocumentType(ctx context.Context, sessionID uuid.UUID, typeID string) error
}

type catalogService struct {
	docTypeRepo port.UserDocTypeRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(docTypeRepo port.UserDocTypeRepository) CatalogService {
	return &catalogService{docTypeRepo: docTypeRepo}
}

func (s *catalogService) CatalogForSession(ctx context.Context, sessionID uuid.UUID) (*catalog.Catalog, error) {
	stored, err := s.docTypeRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("catalog.CatalogForSession: %w", err)
	}

	overlay := make([]domain.DocumentType, 0, len(stored))
	for i := range stored {
		dt, err := stored[i].ToDocumentType()
		if err != nil {
			// A corrupt stored row must not take the whole catalog down.
			continue
		}
		overlay = append(overlay, dt)
	}
	return catalog.New(overlay), nil
}

func (s *catalogService) ListDocumentTypes(ctx context.Context, sessionID uuid.UUID) ([]domain.DocumentType, error) {
	cat, err := s.CatalogForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cat.DocumentTypes(), nil
}

func (s *catalogService) ListOutputFormats() []domain.OutputFormat {
	return catalog.NewBuiltin().OutputFormats()
}

func (s *catalogService) CreateDocumentType(ctx context.Context, sessionID uuid.UUID, input CreateDocTypeInput) (*domain.DocumentType, error) {
	id := strings.TrimSpace(input.ID)
	label := strings.TrimSpace(input.Label)
	if id == "" || label == "" {
		return nil, domain.ErrMissingDocumentType
	}
	if catalog.IsBuiltinDocumentType(id) || catalog.IsBuiltinDocumentTypeLabel(label) {
		return nil, domain.ErrBuiltinImmutable
	}

	stored, err := s.docTypeRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateDocumentType: %w", err)
	}
	for i := range stored {
		if stored[i].TypeID != id && stored[i].Label == label {
			return nil, domain.ErrDuplicateDocumentType
		}
	}

	goalsJSON, err := json.Marshal(input.Goals)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateDocumentType marshal goals: %w", err)
	}

	row := &domain.UserDocumentType{
		SessionID: sessionID,
		TypeID:    id,
		Label:     label,
		Icon:      string(domain.ResolveIcon(input.Icon)),
		Goals:     goalsJSON,
	}
	if err := s.docTypeRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("catalog.CreateDocumentType: %w", err)
	}

	dt, err := row.ToDocumentType()
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateDocumentType: %w", err)
	}
	return &dt, nil
}

func (s *catalogService) DeleteDocumentType(ctx context.Context, sessionID uuid.UUID, typeID string) error {
	if catalog.IsBuiltinDocumentType(typeID) {
		return domain.ErrBuiltinImmutable
	}
	if err := s.docTypeRepo.Delete(ctx, sessionID, typeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("catalog.DeleteDocumentType: %w", err)
	}
	return nil
}
