package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"promptpilot/internal/domain"
	"promptpilot/internal/port"
)

// ShareService emails a completed run's engineered prompt.
type ShareService interface {
	SharePrompt(ctx context.Context, sessionID, runID uuid.UUID, toEmail, subject string) error
}

type shareService struct {
	runRepo port.PromptRunRepository
	sender  port.EmailSender
}

// NewShareService creates a new ShareService implementation.
func NewShareService(runRepo port.PromptRunRepository, sender port.EmailSender) ShareService {
	return &shareService{runRepo: runRepo, sender: sender}
}

func (s *shareService) SharePrompt(ctx context.Context, sessionID, runID uuid.UUID, toEmail, subject string) error {
	run, err := s.runRepo.GetByID(ctx, sessionID, runID)
	if err != nil {
		return err
	}
	if run.Status != domain.RunStateDone {
		return domain.ErrRunNotComplete
	}
	if strings.TrimSpace(subject) == "" {
		subject = "Your PromptPilot extraction prompt"
	}
	if err := s.sender.SendPromptEmail(ctx, toEmail, subject, run.EngineeredPrompt); err != nil {
		return fmt.Errorf("share.SharePrompt: %w", err)
	}
	return nil
}
