package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/domain"
	"promptpilot/internal/service"
	"promptpilot/mocks"
)

func TestSharePrompt_SendsEngineeredPrompt(t *testing.T) {
	sessionID, runID := uuid.New(), uuid.New()
	runRepo := new(mocks.MockPromptRunRepo)
	runRepo.On("GetByID", mock.Anything, sessionID, runID).
		Return(&domain.PromptRun{
			ID:               runID,
			Status:           domain.RunStateDone,
			EngineeredPrompt: "the final prompt",
		}, nil)

	sender := new(mocks.MockEmailSender)
	sender.On("SendPromptEmail", mock.Anything, "acct@example.com", "Monthly statements", "the final prompt").
		Return(nil)

	svc := service.NewShareService(runRepo, sender)
	err := svc.SharePrompt(context.Background(), sessionID, runID, "acct@example.com", "Monthly statements")

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSharePrompt_DefaultSubject(t *testing.T) {
	sessionID, runID := uuid.New(), uuid.New()
	runRepo := new(mocks.MockPromptRunRepo)
	runRepo.On("GetByID", mock.Anything, sessionID, runID).
		Return(&domain.PromptRun{ID: runID, Status: domain.RunStateDone, EngineeredPrompt: "p"}, nil)

	sender := new(mocks.MockEmailSender)
	sender.On("SendPromptEmail", mock.Anything, "acct@example.com", "Your PromptPilot extraction prompt", "p").
		Return(nil)

	svc := service.NewShareService(runRepo, sender)
	require.NoError(t, svc.SharePrompt(context.Background(), sessionID, runID, "acct@example.com", "  "))
	sender.AssertExpectations(t)
}

func TestSharePrompt_IncompleteRun(t *testing.T) {
	sessionID, runID := uuid.New(), uuid.New()
	runRepo := new(mocks.MockPromptRunRepo)
	runRepo.On("GetByID", mock.Anything, sessionID, runID).
		Return(&domain.PromptRun{ID: runID, Status: domain.RunStateFailed}, nil)

	sender := new(mocks.MockEmailSender)
	svc := service.NewShareService(runRepo, sender)

	err := svc.SharePrompt(context.Background(), sessionID, runID, "acct@example.com", "")
	assert.ErrorIs(t, err, domain.ErrRunNotComplete)
	sender.AssertNotCalled(t, "SendPromptEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
