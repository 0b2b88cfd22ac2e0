package csvexport

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/domain"
)

func TestWriteRuns(t *testing.T) {
	sel, err := json.Marshal(domain.Selection{
		DocumentTypeID:      "invoice",
		SelectedFieldLabels: []string{"Invoice Number", "Total Amount"},
		OutputFormatID:      domain.FormatCSV,
	})
	require.NoError(t, err)

	run := domain.PromptRun{
		ID:        uuid.New(),
		Status:    domain.RunStateDone,
		Selection: sel,
		ModelUsed: "gemini-2.0-flash",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRuns([]domain.PromptRun{run}))
	w.Flush()
	require.NoError(t, w.Error())

	out := buf.String()
	assert.Contains(t, out, "Run ID,Status,Document Type,Output Format,Fields")
	assert.Contains(t, out, run.ID.String())
	assert.Contains(t, out, "invoice,csv,Invoice Number; Total Amount,No")
	assert.Contains(t, out, "2026-08-01T12:00:00Z")
}

func TestRunToRow_InvalidSelection(t *testing.T) {
	run := domain.PromptRun{
		ID:        uuid.New(),
		Status:    domain.RunStateFailed,
		Selection: json.RawMessage(`{not json`),
	}

	row := RunToRow(&run)
	assert.Equal(t, string(domain.RunStateFailed), row[1])
	assert.Empty(t, row[2])
	assert.Empty(t, row[4])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "My_Runs_2026", SanitizeFilename("My Runs! (2026)"))
	assert.Equal(t, "a_b", SanitizeFilename("a___b"))
}
