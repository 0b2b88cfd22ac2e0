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

type promptRunRepo struct {
	db *sqlx.DB
}

// NewPromptRunRepo creates a new PostgreSQL-backed PromptRunRepository.
func NewPromptRunRepo(db *sqlx.DB) port.PromptRunRepository {
	return &promptRunRepo{db: db}
}

func (r *promptRunRepo) Create(ctx context.Context, run *domain.PromptRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	now := time.Now().UTC()
	run.CreatedAt = now
	run.UpdatedAt = now

	query := `INSERT INTO prompt_runs
		(id, session_id, selection, status, raw_prompt, engineered_prompt, refine_warning, model_used, error_message, artifact_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.SessionID, run.Selection, run.Status, run.RawPrompt,
		run.EngineeredPrompt, run.RefineWarning, run.ModelUsed, run.ErrorMessage,
		run.ArtifactKey, run.CreatedAt, run.UpdatedAt)
	if err != nil {
		return fmt.Errorf("promptRunRepo.Create: %w", err)
	}
	return nil
}

func (r *promptRunRepo) GetByID(ctx context.Context, sessionID, runID uuid.UUID) (*domain.PromptRun, error) {
	var run domain.PromptRun
	err := r.db.GetContext(ctx, &run,
		"SELECT * FROM prompt_runs WHERE session_id = $1 AND id = $2", sessionID, runID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("promptRunRepo.GetByID: %w", err)
	}
	return &run, nil
}

func (r *promptRunRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.PromptRun, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM prompt_runs WHERE session_id = $1", sessionID)
	if err != nil {
		return nil, 0, fmt.Errorf("promptRunRepo.ListBySession count: %w", err)
	}

	var runs []domain.PromptRun
	err = r.db.SelectContext(ctx, &runs,
		"SELECT * FROM prompt_runs WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		sessionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("promptRunRepo.ListBySession: %w", err)
	}
	return runs, total, nil
}

func (r *promptRunRepo) Update(ctx context.Context, run *domain.PromptRun) error {
	run.UpdatedAt = time.Now().UTC()
	query := `UPDATE prompt_runs SET
		status = $1, raw_prompt = $2, engineered_prompt = $3, refine_warning = $4,
		model_used = $5, error_message = $6, artifact_key = $7, updated_at = $8
		WHERE session_id = $9 AND id = $10`
	result, err := r.db.ExecContext(ctx, query,
		run.Status, run.RawPrompt, run.EngineeredPrompt, run.RefineWarning,
		run.ModelUsed, run.ErrorMessage, run.ArtifactKey, run.UpdatedAt,
		run.SessionID, run.ID)
	if err != nil {
		return fmt.Errorf("promptRunRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *promptRunRepo) Delete(ctx context.Context, sessionID, runID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM prompt_runs WHERE session_id = $1 AND id = $2", sessionID, runID)
	if err != nil {
		return fmt.Errorf("promptRunRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
