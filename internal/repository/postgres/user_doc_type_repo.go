package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"promptpilot/internal/domain"
	"promptpilot/internal/port"
)

type userDocTypeRepo struct {
	db *sqlx.DB
}

// NewUserDocTypeRepo creates a new PostgreSQL-backed UserDocTypeRepository.
func NewUserDocTypeRepo(db *sqlx.DB) port.UserDocTypeRepository {
	return &userDocTypeRepo{db: db}
}

func (r *userDocTypeRepo) Upsert(ctx context.Context, docType *domain.UserDocumentType) error {
	now := time.Now().UTC()
	docType.UpdatedAt = now
	if docType.CreatedAt.IsZero() {
		docType.CreatedAt = now
	}

	query := `INSERT INTO user_document_types (session_id, type_id, label, icon, goals, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id, type_id) DO UPDATE SET
			label = EXCLUDED.label, icon = EXCLUDED.icon, goals = EXCLUDED.goals, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		docType.SessionID, docType.TypeID, docType.Label, docType.Icon,
		docType.Goals, docType.CreatedAt, docType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("userDocTypeRepo.Upsert: %w", err)
	}
	return nil
}

func (r *userDocTypeRepo) GetByID(ctx context.Context, sessionID uuid.UUID, typeID string) (*domain.UserDocumentType, error) {
	var docType domain.UserDocumentType
	err := r.db.GetContext(ctx, &docType,
		"SELECT * FROM user_document_types WHERE session_id = $1 AND type_id = $2", sessionID, typeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("userDocTypeRepo.GetByID: %w", err)
	}
	return &docType, nil
}

func (r *userDocTypeRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.UserDocumentType, error) {
	var docTypes []domain.UserDocumentType
	err := r.db.SelectContext(ctx, &docTypes,
		"SELECT * FROM user_document_types WHERE session_id = $1 ORDER BY created_at ASC", sessionID)
	if err != nil {
		return nil, fmt.Errorf("userDocTypeRepo.ListBySession: %w", err)
	}
	return docTypes, nil
}

func (r *userDocTypeRepo) Delete(ctx context.Context, sessionID uuid.UUID, typeID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM user_document_types WHERE session_id = $1 AND type_id = $2", sessionID, typeID)
	if err != nil {
		return fmt.Errorf("userDocTypeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
