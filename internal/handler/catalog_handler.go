package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptpilot/internal/service"
)

// CatalogHandler handles document type and output format catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListDocumentTypes handles GET /api/v1/document-types
// @Summary List document types
// @Description List built-in document types merged with the session's custom types.
// @Tags catalog
// @Produce json
// @Success 200 {object} Response{data=[]domain.DocumentType} "Document types"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /document-types [get]
func (h *CatalogHandler) ListDocumentTypes(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	types, err := h.catalogService.ListDocumentTypes(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, types)
}

// ListOutputFormats handles GET /api/v1/output-formats
// @Summary List output formats
// @Description List the supported output formats. The set is fixed.
// @Tags catalog
// @Produce json
// @Success 200 {object} Response{data=[]domain.OutputFormat} "Output formats"
// @Security BearerAuth
// @Router /output-formats [get]
func (h *CatalogHandler) ListOutputFormats(c *gin.Context) {
	RespondOK(c, h.catalogService.ListOutputFormats())
}

// CreateDocumentType handles POST /api/v1/document-types
// @Summary Create a custom document type
// @Description Create or replace a session-scoped document type. Built-in ids and labels are reserved.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body service.CreateDocTypeInput true "Document type definition"
// @Success 201 {object} Response{data=domain.DocumentType} "Created document type"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 409 {object} ErrorResponseBody "Conflicts with a built-in or existing type"
// @Security BearerAuth
// @Router /document-types [post]
func (h *CatalogHandler) CreateDocumentType(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	var req service.CreateDocTypeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "id, label, and at least one goal are required")
		return
	}

	docType, err := h.catalogService.CreateDocumentType(c.Request.Context(), sessionID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, docType)
}

// DeleteDocumentType handles DELETE /api/v1/document-types/:id
// @Summary Delete a custom document type
// @Description Delete a session-scoped document type. Built-in types cannot be deleted.
// @Tags catalog
// @Produce json
// @Param id path string true "Document type ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Failure 409 {object} ErrorResponseBody "Built-in type"
// @Security BearerAuth
// @Router /document-types/{id} [delete]
func (h *CatalogHandler) DeleteDocumentType(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteDocumentType(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document type deleted"})
}
