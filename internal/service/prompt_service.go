package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"promptpilot/internal/domain"
	"promptpilot/internal/flows"
	"promptpilot/internal/port"
	"promptpilot/internal/promptgen"
)

// PromptService runs the two-stage generation pipeline and manages the
// resulting prompt runs.
type PromptService interface {
	Generate(ctx context.Context, sessionID uuid.UUID, sel domain.Selection) (*domain.PromptRun, error)
	Preview(ctx context.Context, sessionID uuid.UUID, sel domain.Selection) (string, error)
	GetRun(ctx context.Context, sessionID, runID uuid.UUID) (*domain.PromptRun, error)
	ListRuns(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.PromptRun, int, error)
	DeleteRun(ctx context.Context, sessionID, runID uuid.UUID) error
	ExecuteRun(ctx context.Context, sessionID, runID uuid.UUID, documentText string) (string, error)
	DownloadURL(ctx context.Context, sessionID, runID uuid.UUID) (string, error)
}

// PromptServiceDeps bundles the collaborators of the pipeline. Storage may be
// nil, in which case artifact upload and download are disabled.
type PromptServiceDeps struct {
	RunRepo       port.PromptRunRepository
	Catalog       CatalogService
	Refiner       port.TextCompleter
	Engineer      port.TextCompleter
	Executor      port.TextCompleter
	Storage       port.ObjectStorage
	Bucket        string
	PresignExpiry int64
	EngineerModel string
}

type promptService struct {
	deps PromptServiceDeps
}

// NewPromptService creates a new PromptService implementation.
func NewPromptService(deps PromptServiceDeps) PromptService {
	return &promptService{deps: deps}
}

func validateSelection(sel *domain.Selection) error {
	if strings.TrimSpace(sel.DocumentTypeID) == "" {
		return domain.ErrMissingDocumentType
	}
	if strings.TrimSpace(string(sel.OutputFormatID)) == "" {
		return domain.ErrMissingOutputFormat
	}
	return nil
}

// Generate runs refine, render and engineer in order. Refinement is advisory:
// a refiner failure is recorded on the run as RefineWarning and rendering
// proceeds with the caller's original instructions. Engineering is mandatory:
// on failure the run ends in RunStateFailed and the returned error wraps
// domain.ErrEngineeringFailed.
func (s *promptService) Generate(ctx context.Context, sessionID uuid.UUID, sel domain.Selection) (*domain.PromptRun, error) {
	if err := validateSelection(&sel); err != nil {
		return nil, err
	}

	selJSON, err := json.Marshal(sel)
	if err != nil {
		return nil, fmt.Errorf("prompt.Generate marshal selection: %w", err)
	}

	run := &domain.PromptRun{
		ID:        uuid.New(),
		SessionID: sessionID,
		Selection: selJSON,
		Status:    domain.RunStateIdle,
	}
	if err := s.deps.RunRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("prompt.Generate: %w", err)
	}

	// Stage one: refine free-form instructions, when present.
	var refinedPtr *string
	if strings.TrimSpace(sel.FreeInstructions) != "" {
		run.Status = domain.RunStateRefining
		refined, err := flows.Refine(ctx, s.deps.Refiner, sel.FreeInstructions)
		if err != nil {
			run.RefineWarning = fmt.Sprintf("instruction refinement unavailable, using original instructions: %v", err)
		} else {
			refinedPtr = &refined
		}
	}

	// Deterministic assembly of the raw prompt.
	run.Status = domain.RunStateRendering
	cat, err := s.deps.Catalog.CatalogForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("prompt.Generate: %w", err)
	}
	run.RawPrompt = promptgen.Render(sel, cat, refinedPtr)

	// Stage two: engineer the raw prompt into the final artifact.
	run.Status = domain.RunStateEngineering
	engineered, err := flows.Engineer(ctx, s.deps.Engineer, run.RawPrompt)
	if err != nil {
		run.Status = domain.RunStateFailed
		run.ErrorMessage = err.Error()
		if updateErr := s.deps.RunRepo.Update(ctx, run); updateErr != nil {
			log.Printf("[ERROR] persisting failed run %s: %v", run.ID, updateErr)
		}
		return run, fmt.Errorf("%w: %v", domain.ErrEngineeringFailed, err)
	}

	run.EngineeredPrompt = engineered
	run.ModelUsed = s.deps.EngineerModel
	run.Status = domain.RunStateDone
	s.uploadArtifact(ctx, run)

	if err := s.deps.RunRepo.Update(ctx, run); err != nil {
		return nil, fmt.Errorf("prompt.Generate: %w", err)
	}
	return run, nil
}

// uploadArtifact stores the engineered prompt as a text object. Upload is
// best effort: a storage failure leaves ArtifactKey empty and the run intact.
func (s *promptService) uploadArtifact(ctx context.Context, run *domain.PromptRun) {
	if s.deps.Storage == nil {
		return
	}
	key := fmt.Sprintf("runs/%s/%s.txt", run.SessionID, run.ID)
	_, err := s.deps.Storage.Upload(ctx, port.UploadInput{
		Bucket:      s.deps.Bucket,
		Key:         key,
		Body:        strings.NewReader(run.EngineeredPrompt),
		ContentType: "text/plain; charset=utf-8",
		Size:        int64(len(run.EngineeredPrompt)),
	})
	if err != nil {
		log.Printf("[WARN] artifact upload for run %s failed: %v", run.ID, err)
		return
	}
	run.ArtifactKey = key
}

// Preview assembles the raw prompt without calling any completion provider
// and without persisting anything.
func (s *promptService) Preview(ctx context.Context, sessionID uuid.UUID, sel domain.Selection) (string, error) {
	if err := validateSelection(&sel); err != nil {
		return "", err
	}
	cat, err := s.deps.Catalog.CatalogForSession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("prompt.Preview: %w", err)
	}
	return promptgen.Render(sel, cat, nil), nil
}

func (s *promptService) GetRun(ctx context.Context, sessionID, runID uuid.UUID) (*domain.PromptRun, error) {
	return s.deps.RunRepo.GetByID(ctx, sessionID, runID)
}

func (s *promptService) ListRuns(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.PromptRun, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.deps.RunRepo.ListBySession(ctx, sessionID, offset, limit)
}

func (s *promptService) DeleteRun(ctx context.Context, sessionID, runID uuid.UUID) error {
	run, err := s.deps.RunRepo.GetByID(ctx, sessionID, runID)
	if err != nil {
		return err
	}
	if run.ArtifactKey != "" && s.deps.Storage != nil {
		if err := s.deps.Storage.Delete(ctx, s.deps.Bucket, run.ArtifactKey); err != nil {
			log.Printf("[WARN] artifact delete for run %s failed: %v", run.ID, err)
		}
	}
	return s.deps.RunRepo.Delete(ctx, sessionID, runID)
}

// ExecuteRun substitutes documentText into a completed run's engineered
// prompt and sends it to the completion provider.
func (s *promptService) ExecuteRun(ctx context.Context, sessionID, runID uuid.UUID, documentText string) (string, error) {
	run, err := s.deps.RunRepo.GetByID(ctx, sessionID, runID)
	if err != nil {
		return "", err
	}
	if run.Status != domain.RunStateDone {
		return "", domain.ErrRunNotComplete
	}
	return flows.Execute(ctx, s.deps.Executor, run.EngineeredPrompt, documentText)
}

// DownloadURL returns a presigned URL for the run's stored artifact.
func (s *promptService) DownloadURL(ctx context.Context, sessionID, runID uuid.UUID) (string, error) {
	run, err := s.deps.RunRepo.GetByID(ctx, sessionID, runID)
	if err != nil {
		return "", err
	}
	if run.Status != domain.RunStateDone {
		return "", domain.ErrRunNotComplete
	}
	if run.ArtifactKey == "" || s.deps.Storage == nil {
		return "", domain.ErrNotFound
	}
	url, err := s.deps.Storage.GetPresignedURL(ctx, s.deps.Bucket, run.ArtifactKey, s.deps.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("prompt.DownloadURL: %w", err)
	}
	return url, nil
}
