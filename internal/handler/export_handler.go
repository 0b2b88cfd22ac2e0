package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptpilot/internal/service"
)

// ExportHandler handles run history export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV handles GET /api/v1/prompts/export/csv
// @Summary Export run history as CSV
// @Description Download all of the session's prompt runs as a UTF-8 CSV file with a BOM.
// @Tags exports
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /prompts/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.ExportCSV(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportXLSX handles GET /api/v1/prompts/export/xlsx
// @Summary Export run history as a workbook
// @Description Download all of the session's prompt runs as a single-sheet XLSX workbook.
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX file"
// @Security BearerAuth
// @Router /prompts/export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	data, filename, err := h.exportService.ExportXLSX(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
