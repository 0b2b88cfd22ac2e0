package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"promptpilot/mocks"
)

func TestExportCSV_SetsDownloadHeaders(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := NewExportHandler(exportSvc)

	sessionID := uuid.New()
	exportSvc.On("ExportCSV", mock.Anything, sessionID).
		Return([]byte("\xef\xbb\xbfRun ID,Status\n"), "prompt_runs.csv", nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts/export/csv", nil)
	setSession(c, sessionID)
	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "prompt_runs.csv")
	assert.Contains(t, w.Body.String(), "Run ID")
}

func TestExportXLSX_SetsDownloadHeaders(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := NewExportHandler(exportSvc)

	sessionID := uuid.New()
	exportSvc.On("ExportXLSX", mock.Anything, sessionID).
		Return([]byte{0x50, 0x4b, 0x03, 0x04}, "prompt_runs.xlsx", nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts/export/xlsx", nil)
	setSession(c, sessionID)
	h.ExportXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "prompt_runs.xlsx")
}

func TestExportCSV_MissingSession(t *testing.T) {
	exportSvc := new(mocks.MockExportService)
	h := NewExportHandler(exportSvc)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts/export/csv", nil)
	h.ExportCSV(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	exportSvc.AssertNotCalled(t, "ExportCSV", mock.Anything, mock.Anything)
}
