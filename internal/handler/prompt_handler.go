package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promptpilot/internal/domain"
	"promptpilot/internal/service"
)

// PromptHandler handles prompt generation and run management endpoints.
type PromptHandler struct {
	promptService service.PromptService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(promptService service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// parseRunID extracts and validates the :id path parameter.
func parseRunID(c *gin.Context) (uuid.UUID, bool) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_RUN_ID", "run id must be a valid UUID")
		return uuid.Nil, false
	}
	return runID, true
}

// Generate handles POST /api/v1/prompts
// @Summary Generate an engineered prompt
// @Description Run the full pipeline: optional instruction refinement, deterministic prompt assembly, then prompt engineering. A refiner failure downgrades to the original instructions; an engineering failure records the run as failed.
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body domain.Selection true "Prompt selection"
// @Success 201 {object} Response{data=domain.PromptRun} "Completed run"
// @Failure 400 {object} ErrorResponseBody "Incomplete selection"
// @Failure 502 {object} ErrorResponseBody "Prompt engineering failed"
// @Security BearerAuth
// @Router /prompts [post]
func (h *PromptHandler) Generate(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	var sel domain.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed selection body")
		return
	}

	run, err := h.promptService.Generate(c.Request.Context(), sessionID, sel)
	if err != nil {
		if errors.Is(err, domain.ErrEngineeringFailed) && run != nil {
			// The failed run is still recorded and listed in history.
			c.JSON(http.StatusBadGateway, APIResponse{
				Success: false,
				Data:    run,
				Error:   &APIError{Code: "PROMPT_ENGINEERING_FAILED", Message: "prompt engineering failed; the run has been recorded as failed"},
			})
			return
		}
		HandleError(c, err)
		return
	}

	RespondCreated(c, run)
}

// Preview handles POST /api/v1/prompts/preview
// @Summary Preview the assembled prompt
// @Description Assemble the raw prompt for the given selection without any provider calls and without persisting a run.
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body domain.Selection true "Prompt selection"
// @Success 200 {object} Response{data=PromptPreview} "Assembled prompt"
// @Failure 400 {object} ErrorResponseBody "Incomplete selection"
// @Security BearerAuth
// @Router /prompts/preview [post]
func (h *PromptHandler) Preview(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	var sel domain.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed selection body")
		return
	}

	prompt, err := h.promptService.Preview(c.Request.Context(), sessionID, sel)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, PromptPreview{Prompt: prompt})
}

// List handles GET /api/v1/prompts
// @Summary List prompt runs
// @Description List the session's prompt runs, newest first.
// @Tags prompts
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} Response{data=[]domain.PromptRun} "Prompt runs"
// @Security BearerAuth
// @Router /prompts [get]
func (h *PromptHandler) List(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, total, err := h.promptService.ListRuns(c.Request.Context(), sessionID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, runs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/prompts/:id
// @Summary Get a prompt run
// @Tags prompts
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=domain.PromptRun} "Prompt run"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /prompts/{id} [get]
func (h *PromptHandler) Get(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	run, err := h.promptService.GetRun(c.Request.Context(), sessionID, runID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, run)
}

// Delete handles DELETE /api/v1/prompts/:id
// @Summary Delete a prompt run
// @Description Delete a run and its stored artifact, if any.
// @Tags prompts
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /prompts/{id} [delete]
func (h *PromptHandler) Delete(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	if err := h.promptService.DeleteRun(c.Request.Context(), sessionID, runID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "prompt run deleted"})
}

// Execute handles POST /api/v1/prompts/:id/execute
// @Summary Execute a completed run against a document
// @Description Substitute the document text into the engineered prompt and send it to the completion provider.
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param request body ExecuteRequest true "Document text"
// @Success 200 {object} Response{data=ExecutionResult} "Extraction output"
// @Failure 409 {object} ErrorResponseBody "Run not complete or placeholder missing"
// @Security BearerAuth
// @Router /prompts/{id}/execute [post]
func (h *PromptHandler) Execute(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_text is required")
		return
	}

	output, err := h.promptService.ExecuteRun(c.Request.Context(), sessionID, runID, req.DocumentText)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ExecutionResult{Output: output})
}

// Download handles GET /api/v1/prompts/:id/download
// @Summary Get a download URL for the prompt artifact
// @Description Return a presigned URL for the stored engineered prompt.
// @Tags prompts
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Response{data=DownloadURLResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "No stored artifact"
// @Failure 409 {object} ErrorResponseBody "Run not complete"
// @Security BearerAuth
// @Router /prompts/{id}/download [get]
func (h *PromptHandler) Download(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	url, err := h.promptService.DownloadURL(c.Request.Context(), sessionID, runID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DownloadURLResponse{DownloadURL: url})
}
