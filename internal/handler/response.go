package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promptpilot/internal/domain"
	"promptpilot/internal/llm"
	"promptpilot/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var rateErr *llm.RateLimitError
	if errors.As(err, &rateErr) {
		return http.StatusTooManyRequests, "RATE_LIMITED", "the completion provider is rate limiting requests; retry later"
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrMissingDocumentType):
		return http.StatusBadRequest, "MISSING_DOCUMENT_TYPE", "a document type must be selected"
	case errors.Is(err, domain.ErrMissingOutputFormat):
		return http.StatusBadRequest, "MISSING_OUTPUT_FORMAT", "an output format must be selected"
	case errors.Is(err, domain.ErrBuiltinImmutable):
		return http.StatusConflict, "BUILTIN_IMMUTABLE", "built-in document types cannot be modified or removed"
	case errors.Is(err, domain.ErrDuplicateDocumentType):
		return http.StatusConflict, "DUPLICATE_DOCUMENT_TYPE", "a document type with this label already exists"
	case errors.Is(err, domain.ErrEngineeringFailed):
		return http.StatusBadGateway, "PROMPT_ENGINEERING_FAILED", "prompt engineering failed; the run has been recorded as failed"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return http.StatusBadGateway, "EMPTY_COMPLETION", "the completion provider returned an empty result"
	case errors.Is(err, domain.ErrPlaceholderMissing):
		return http.StatusConflict, "PLACEHOLDER_MISSING", "the engineered prompt has no document placeholder"
	case errors.Is(err, domain.ErrRunNotComplete):
		return http.StatusConflict, "RUN_NOT_COMPLETE", "the run has not completed successfully"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractSessionID extracts the session ID from the request context. Returns
// false if the session context is missing (error response already written).
func extractSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return uuid.Nil, false
	}
	return sessionID, true
}

// HandleError maps a domain error and sends the appropriate error response.
// Provider rate-limit errors carry their retry delay through as a
// Retry-After header.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	var rateErr *llm.RateLimitError
	if errors.As(err, &rateErr) {
		c.Header("Retry-After", strconv.Itoa(int(rateErr.RetryAfter.Seconds())))
	}
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		session := "-"
		if sessionID, serr := middleware.GetSessionID(c); serr == nil {
			session = sessionID.String()
		}
		log.Printf("[%s] session=%s internal error: %v", requestID, session, err)
	}
	RespondError(c, status, code, msg)
}
