package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptpilot/internal/flows"
	"promptpilot/internal/service"
)

// SuggestionHandler handles context-aware field suggestion endpoints.
type SuggestionHandler struct {
	suggestionService service.SuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(suggestionService service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// Suggest handles POST /api/v1/suggestions
// @Summary Suggest additional fields
// @Description Suggest extraction fields based on the current document type, goal, and already selected details.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body SuggestRequest true "Current form context"
// @Success 200 {object} Response{data=SuggestionsResult} "Suggested field labels"
// @Failure 502 {object} ErrorResponseBody "Provider returned no usable output"
// @Security BearerAuth
// @Router /suggestions [post]
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	if _, ok := extractSessionID(c); !ok {
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_type is required")
		return
	}

	suggestions, err := h.suggestionService.SuggestFields(c.Request.Context(), flows.SuggestionInput{
		DocumentType:    req.DocumentType,
		PrimaryGoal:     req.PrimaryGoal,
		SelectedDetails: req.SelectedDetails,
		CustomDetails:   req.CustomDetails,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, SuggestionsResult{Suggestions: suggestions})
}
