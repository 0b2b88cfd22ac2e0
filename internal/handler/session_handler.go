package handler

import (
	"github.com/gin-gonic/gin"

	"promptpilot/internal/service"
)

// SessionHandler handles anonymous session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
// @Summary Start an anonymous session
// @Description Issue a bearer token scoping prompt runs and custom document types. No credentials are required.
// @Tags sessions
// @Produce json
// @Success 201 {object} Response{data=service.SessionToken} "New session token"
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	token, err := h.sessionService.IssueToken()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, token)
}
