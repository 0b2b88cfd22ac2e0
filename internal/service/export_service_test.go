package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"promptpilot/internal/csvexport"
	"promptpilot/internal/domain"
	"promptpilot/internal/service"
	"promptpilot/mocks"
)

const exportPageSize = 500

func exportRun(sessionID uuid.UUID) domain.PromptRun {
	sel, _ := json.Marshal(domain.Selection{
		DocumentTypeID:      "invoice",
		SelectedFieldLabels: []string{"Invoice Number"},
		OutputFormatID:      domain.FormatCSV,
	})
	return domain.PromptRun{
		ID:        uuid.New(),
		SessionID: sessionID,
		Selection: sel,
		Status:    domain.RunStateDone,
		ModelUsed: "gemini-2.0-flash",
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestExportCSV_WritesBOMAndRows(t *testing.T) {
	sessionID := uuid.New()
	run := exportRun(sessionID)
	runRepo := new(mocks.MockPromptRunRepo)
	runRepo.On("ListBySession", mock.Anything, sessionID, 0, exportPageSize).
		Return([]domain.PromptRun{run}, 1, nil)

	svc := service.NewExportService(runRepo)
	data, filename, err := svc.ExportCSV(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, "prompt_runs.csv", filename)
	assert.True(t, bytes.HasPrefix(data, csvexport.BOM))
	assert.Contains(t, string(data), "Run ID")
	assert.Contains(t, string(data), run.ID.String())
	assert.Contains(t, string(data), "invoice")
}

func TestExportCSV_Paginates(t *testing.T) {
	sessionID := uuid.New()
	first, second := exportRun(sessionID), exportRun(sessionID)
	firstPage := make([]domain.PromptRun, exportPageSize)
	for i := range firstPage {
		firstPage[i] = first
	}

	runRepo := new(mocks.MockPromptRunRepo)
	runRepo.On("ListBySession", mock.Anything, sessionID, 0, exportPageSize).
		Return(firstPage, exportPageSize+1, nil)
	runRepo.On("ListBySession", mock.Anything, sessionID, exportPageSize, exportPageSize).
		Return([]domain.PromptRun{second}, exportPageSize+1, nil)

	svc := service.NewExportService(runRepo)
	data, _, err := svc.ExportCSV(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Contains(t, string(data), second.ID.String())
	runRepo.AssertNumberOfCalls(t, "ListBySession", 2)
}

func TestExportXLSX_RoundTrips(t *testing.T) {
	sessionID := uuid.New()
	run := exportRun(sessionID)
	runRepo := new(mocks.MockPromptRunRepo)
	runRepo.On("ListBySession", mock.Anything, sessionID, 0, exportPageSize).
		Return([]domain.PromptRun{run}, 1, nil)

	svc := service.NewExportService(runRepo)
	data, filename, err := svc.ExportXLSX(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, "prompt_runs.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Prompt Runs")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvexport.Columns(), rows[0])
	assert.Equal(t, run.ID.String(), rows[1][0])
	assert.Equal(t, "done", rows[1][1])
}
