package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptpilot/internal/service"
)

// ShareHandler handles prompt sharing endpoints.
type ShareHandler struct {
	shareService service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// Share handles POST /api/v1/prompts/:id/share
// @Summary Email a completed run's prompt
// @Description Send the engineered prompt of a completed run to the given address.
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param request body ShareRequest true "Recipient"
// @Success 200 {object} Response{data=MessageResponse} "Sent"
// @Failure 409 {object} ErrorResponseBody "Run not complete"
// @Security BearerAuth
// @Router /prompts/{id}/share [post]
func (h *ShareHandler) Share(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a valid email address is required")
		return
	}

	if err := h.shareService.SharePrompt(c.Request.Context(), sessionID, runID, req.Email, req.Subject); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "prompt sent"})
}
