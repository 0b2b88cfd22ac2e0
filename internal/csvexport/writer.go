package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"promptpilot/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for run history exports.
var columns = []string{
	"Run ID",
	"Status",
	"Document Type",
	"Output Format",
	"Fields",
	"File Content Mode",
	"Model Used",
	"Refine Warning",
	"Error",
	"Created At",
}

// Writer wraps csv.Writer for exporting prompt runs as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRuns converts a batch of prompt runs to CSV rows and writes them.
func (w *Writer) WriteRuns(runs []domain.PromptRun) error {
	for i := range runs {
		if err := w.csv.Write(RunToRow(&runs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// RunToRow converts a single run to a string slice matching Columns. If the
// stored selection JSON is invalid, the selection columns are left empty.
func RunToRow(run *domain.PromptRun) []string {
	row := make([]string, len(columns))
	row[0] = run.ID.String()
	row[1] = string(run.Status)
	row[6] = run.ModelUsed
	row[7] = run.RefineWarning
	row[8] = run.ErrorMessage
	row[9] = run.CreatedAt.Format(time.RFC3339)

	var sel domain.Selection
	if len(run.Selection) == 0 || json.Unmarshal(run.Selection, &sel) != nil {
		return row
	}
	row[2] = sel.DocumentTypeID
	row[3] = string(sel.OutputFormatID)
	row[4] = strings.Join(sel.FieldLabels(), "; ")
	row[5] = formatBool(sel.FileContentMode)
	return row
}

// Columns returns a copy of the export header labels.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
