package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"promptpilot/internal/csvexport"
	"promptpilot/internal/domain"
	"promptpilot/internal/port"
)

const exportPageSize = 500

// ExportService renders a session's prompt run history as a downloadable file.
type ExportService interface {
	ExportCSV(ctx context.Context, sessionID uuid.UUID) ([]byte, string, error)
	ExportXLSX(ctx context.Context, sessionID uuid.UUID) ([]byte, string, error)
}

type exportService struct {
	runRepo port.PromptRunRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(runRepo port.PromptRunRepository) ExportService {
	return &exportService{runRepo: runRepo}
}

func (s *exportService) collectRuns(ctx context.Context, sessionID uuid.UUID) ([][]domain.PromptRun, error) {
	var pages [][]domain.PromptRun
	offset := 0
	for {
		runs, total, err := s.runRepo.ListBySession(ctx, sessionID, offset, exportPageSize)
		if err != nil {
			return nil, fmt.Errorf("export.collectRuns: %w", err)
		}
		pages = append(pages, runs)
		offset += len(runs)
		if len(runs) == 0 || offset >= total {
			return pages, nil
		}
	}
}

// ExportCSV writes all runs of the session as UTF-8 CSV with a BOM so the
// file opens cleanly in Excel.
func (s *exportService) ExportCSV(ctx context.Context, sessionID uuid.UUID) ([]byte, string, error) {
	pages, err := s.collectRuns(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", fmt.Errorf("export.ExportCSV: %w", err)
	}
	for _, runs := range pages {
		if err := w.WriteRuns(runs); err != nil {
			return nil, "", fmt.Errorf("export.ExportCSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("export.ExportCSV: %w", err)
	}
	return buf.Bytes(), csvexport.BuildFilename("prompt_runs", "csv"), nil
}

// ExportXLSX writes all runs of the session as a single-sheet workbook.
func (s *exportService) ExportXLSX(ctx context.Context, sessionID uuid.UUID) ([]byte, string, error) {
	pages, err := s.collectRuns(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Prompt Runs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
	}

	header := make([]interface{}, 0, len(csvexport.Columns()))
	for _, col := range csvexport.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
	}

	rowIdx := 2
	for _, runs := range pages {
		for i := range runs {
			row := csvexport.RunToRow(&runs[i])
			cells := make([]interface{}, 0, len(row))
			for _, c := range row {
				cells = append(cells, c)
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx)
			if err != nil {
				return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
			}
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
			}
			rowIdx++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
	}
	return buf.Bytes(), csvexport.BuildFilename("prompt_runs", "xlsx"), nil
}
