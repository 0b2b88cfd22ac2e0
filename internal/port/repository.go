package port

import (
	"context"

	"github.com/google/uuid"

	"promptpilot/internal/domain"
)

// PromptRunRepository defines the contract for prompt run persistence.
// All query methods include sessionID to scope runs to their owning session.
type PromptRunRepository interface {
	Create(ctx context.Context, run *domain.PromptRun) error
	GetByID(ctx context.Context, sessionID, runID uuid.UUID) (*domain.PromptRun, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.PromptRun, int, error)
	Update(ctx context.Context, run *domain.PromptRun) error
	Delete(ctx context.Context, sessionID, runID uuid.UUID) error
}

// UserDocTypeRepository defines the contract for session-defined document
// type persistence.
type UserDocTypeRepository interface {
	Upsert(ctx context.Context, docType *domain.UserDocumentType) error
	GetByID(ctx context.Context, sessionID uuid.UUID, typeID string) (*domain.UserDocumentType, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.UserDocumentType, error)
	Delete(ctx context.Context, sessionID uuid.UUID, typeID string) error
}
