package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/domain"
	"promptpilot/internal/middleware"
	"promptpilot/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func setSession(c *gin.Context, sessionID uuid.UUID) {
	c.Set(middleware.ContextKeySessionID, sessionID)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGenerate_Success(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID := uuid.New()
	sel := domain.Selection{DocumentTypeID: "invoice", OutputFormatID: domain.FormatCSV}
	run := &domain.PromptRun{
		ID:               uuid.New(),
		SessionID:        sessionID,
		Status:           domain.RunStateDone,
		EngineeredPrompt: "engineered",
	}
	promptSvc.On("Generate", mock.Anything, sessionID, sel).Return(run, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts", sel)
	setSession(c, sessionID)
	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), "engineered")
	// Internal fields never reach the wire.
	assert.NotContains(t, w.Body.String(), "raw_prompt")
}

func TestGenerate_EngineeringFailure(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID := uuid.New()
	sel := domain.Selection{DocumentTypeID: "invoice", OutputFormatID: domain.FormatCSV}
	failed := &domain.PromptRun{
		ID:           uuid.New(),
		Status:       domain.RunStateFailed,
		ErrorMessage: "provider exploded",
	}
	promptSvc.On("Generate", mock.Anything, sessionID, sel).
		Return(failed, fmt.Errorf("%w: provider exploded", domain.ErrEngineeringFailed))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts", sel)
	setSession(c, sessionID)
	h.Generate(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PROMPT_ENGINEERING_FAILED", resp.Error.Code)
	// The failed run record is still returned so the client can show it.
	assert.Contains(t, w.Body.String(), failed.ID.String())
}

func TestGenerate_IncompleteSelection(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID := uuid.New()
	sel := domain.Selection{OutputFormatID: domain.FormatCSV}
	promptSvc.On("Generate", mock.Anything, sessionID, sel).
		Return(nil, domain.ErrMissingDocumentType)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts", sel)
	setSession(c, sessionID)
	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "MISSING_DOCUMENT_TYPE", resp.Error.Code)
}

func TestGenerate_MissingSession(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts", domain.Selection{})
	h.Generate(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	promptSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreview_ReturnsPrompt(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID := uuid.New()
	sel := domain.Selection{DocumentTypeID: "invoice", OutputFormatID: domain.FormatCSV}
	promptSvc.On("Preview", mock.Anything, sessionID, sel).Return("assembled prompt", nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts/preview", sel)
	setSession(c, sessionID)
	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "assembled prompt")
}

func TestList_Paginates(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID := uuid.New()
	runs := []domain.PromptRun{{ID: uuid.New(), Status: domain.RunStateDone}}
	promptSvc.On("ListRuns", mock.Anything, sessionID, 5, 10).Return(runs, 42, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts?offset=5&limit=10", nil)
	setSession(c, sessionID)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 42, resp.Meta.Total)
	assert.Equal(t, 5, resp.Meta.Offset)
	assert.Equal(t, 10, resp.Meta.Limit)
}

func TestGet_InvalidRunID(t *testing.T) {
	h := NewPromptHandler(new(mocks.MockPromptService))

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts/not-a-uuid", nil)
	setSession(c, uuid.New())
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_RUN_ID", resp.Error.Code)
}

func TestGet_NotFound(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID, runID := uuid.New(), uuid.New()
	promptSvc.On("GetRun", mock.Anything, sessionID, runID).Return(nil, domain.ErrNotFound)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts/"+runID.String(), nil)
	setSession(c, sessionID)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExecute_RunNotComplete(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID, runID := uuid.New(), uuid.New()
	promptSvc.On("ExecuteRun", mock.Anything, sessionID, runID, "doc body").
		Return("", domain.ErrRunNotComplete)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts/"+runID.String()+"/execute",
		ExecuteRequest{DocumentText: "doc body"})
	setSession(c, sessionID)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}
	h.Execute(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "RUN_NOT_COMPLETE", resp.Error.Code)
}

func TestExecute_Success(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID, runID := uuid.New(), uuid.New()
	promptSvc.On("ExecuteRun", mock.Anything, sessionID, runID, "doc body").
		Return("Invoice Number,Total\nINV-1,100", nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/prompts/"+runID.String()+"/execute",
		ExecuteRequest{DocumentText: "doc body"})
	setSession(c, sessionID)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}
	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INV-1")
}

func TestDownload_ReturnsURL(t *testing.T) {
	promptSvc := new(mocks.MockPromptService)
	h := NewPromptHandler(promptSvc)

	sessionID, runID := uuid.New(), uuid.New()
	promptSvc.On("DownloadURL", mock.Anything, sessionID, runID).
		Return("https://signed.example/artifact.txt", nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/prompts/"+runID.String()+"/download", nil)
	setSession(c, sessionID)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://signed.example/artifact.txt")
}
