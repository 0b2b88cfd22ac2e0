// Package promptgen renders a field selection into the full instruction text
// sent to an LLM. Rendering is a pure function of its inputs.
package promptgen

import (
	"fmt"
	"strings"

	"promptpilot/internal/catalog"
	"promptpilot/internal/domain"
)

// DocumentPlaceholder is the literal token the caller substitutes the source
// document text into before executing the prompt. It appears exactly once in
// every rendered prompt unless file content mode is active.
const DocumentPlaceholder = "[PASTE DOCUMENT TEXT HERE]"

// FileContentDirective is the sentence that marks a prompt as a file
// generation request. The engineering stage keys off this exact text, so it
// must not be reworded independently of that flow.
const FileContentDirective = "Your entire output must be the file content itself."

const (
	fallbackDocumentTypeLabel = "General Document"
	fallbackGoalLabel         = "Extract relevant data from the document"
)

// Render assembles the complete prompt for the given selection. Unknown
// document type and output format ids degrade to fallback labels rather than
// failing. refinedInstructions, when non-nil, replaces the selection's free
// instructions verbatim without mutating the selection.
func Render(sel domain.Selection, cat *catalog.Catalog, refinedInstructions *string) string {
	docLabel, goalLabel, suggested := resolveContext(sel.DocumentTypeID, cat)

	fields := sel.FieldLabels()
	if len(fields) == 0 {
		fields = suggested
	}

	formatLabel := string(sel.OutputFormatID)
	if f, ok := cat.LookupOutputFormat(sel.OutputFormatID); ok {
		formatLabel = f.Label
	}

	instructions := sel.FreeInstructions
	if refinedInstructions != nil {
		instructions = *refinedInstructions
	}

	var b strings.Builder
	if sel.FileContentMode {
		writeFileContentPreamble(&b)
	} else {
		writeExtractionPreamble(&b)
	}
	writeDocumentContext(&b, docLabel, goalLabel)
	writeDetailsSection(&b, fields)
	writeFormatSection(&b, sel.OutputFormatID, formatLabel, fields)
	writeDataHandlingRules(&b)
	hasInstructions := strings.TrimSpace(instructions) != ""
	if hasInstructions {
		writeCustomInstructions(&b, instructions)
	}
	if sel.FileContentMode {
		writeFileContentClosing(&b)
	} else {
		writeDocumentSection(&b, hasInstructions)
	}
	return b.String()
}

// resolveContext maps a document type id to the labels and suggested field
// labels used by the prompt body. A miss is never an error.
func resolveContext(id string, cat *catalog.Catalog) (docLabel, goalLabel string, suggested []string) {
	docLabel = id
	goalLabel = fallbackGoalLabel
	if id == "" {
		docLabel = fallbackDocumentTypeLabel
		return
	}
	dt, ok := cat.LookupDocumentType(id)
	if !ok {
		return
	}
	docLabel = dt.Label
	goal, ok := catalog.FirstGoal(dt)
	if !ok {
		return
	}
	goalLabel = goal.Label
	for _, f := range goal.SuggestedFields {
		suggested = append(suggested, f.Label)
	}
	return
}

func writeExtractionPreamble(b *strings.Builder) {
	b.WriteString(`You are an expert AI assistant specializing in data extraction and analysis from documents.
Your main task is to meticulously process the provided document based on the specifications below.
`)
}

func writeFileContentPreamble(b *strings.Builder) {
	b.WriteString(`You are an expert AI assistant that produces complete, ready-to-save file content.
` + FileContentDirective + ` Do not include greetings, explanations, code fences, or any other text before or after the content, because the response is saved directly as a downloadable file.
`)
}

func writeDocumentContext(b *strings.Builder, docLabel, goalLabel string) {
	fmt.Fprintf(b, `
### 1. Document Context
- **Document Type:** %s
- **Primary Goal:** %s
`, docLabel, goalLabel)
}

func writeDetailsSection(b *strings.Builder, fields []string) {
	b.WriteString(`
### 2. Details to Extract or Focus On
Based on the Primary Goal, focus on extracting the following details:
`)
	if len(fields) == 0 {
		b.WriteString("- No specific details were pre-selected. Use your expert judgment based on the Primary Goal and Document Type to identify and extract relevant information.\n")
		return
	}
	for _, f := range fields {
		fmt.Fprintf(b, "- %s\n", f)
	}
}

func writeFormatSection(b *strings.Builder, id domain.OutputFormatID, label string, fields []string) {
	fmt.Fprintf(b, "\n### 3. Output Format: %s\n", label)
	if !domain.KnownOutputFormats[id] {
		// Unrecognized ids get the generic sections only.
		return
	}
	switch id {
	case domain.FormatCSV:
		writeCSVRules(b, fields)
	case domain.FormatList:
		writeListRules(b)
	case domain.FormatBullets:
		writeBulletRules(b)
	}
}

func writeDataHandlingRules(b *strings.Builder) {
	b.WriteString(`
### 4. Formatting Rules & Handling Data
- **Dates:** If extracting dates, format them as YYYY-MM-DD unless explicitly stated otherwise in the "Custom Instructions".
- **Amounts/Numbers:** If extracting monetary values or numerical data, provide them as raw numbers (e.g., 1234.50 or 1234). Do not include currency symbols (like $, ₹) or thousands separators (like commas in 1,234) unless required by "Custom Instructions".
- **Text Cleanup:** Strip any leading/trailing unnecessary whitespace from extracted text values. Ensure newlines within a field value are handled appropriately for the chosen output format (e.g., typically escaped or removed for single-line CSV records, but they may be preserved in bulleted list outputs).
- **Multiple Records:** If the document appears to contain multiple distinct records or items relevant to the Primary Goal (e.g., multiple line items in an invoice, multiple transactions in a statement), ensure each is processed and represented separately according to the Output Format chosen (e.g., a new row in CSV, a new list block, a new bullet group).

`)
}

func writeCustomInstructions(b *strings.Builder, instructions string) {
	fmt.Fprintf(b, `### 5. Special Instructions or Clarifications (User-Provided)
Follow these additional instructions carefully:
%s

`, instructions)
}

func writeDocumentSection(b *strings.Builder, hasInstructions bool) {
	section := 5
	if hasInstructions {
		section = 6
	}
	fmt.Fprintf(b, `
### %d. Document for Processing
Please analyze the document content provided below and fulfill the request. Ensure accuracy and completeness based on the information available in the document.

%s
--- End of Document ---
`, section, DocumentPlaceholder)
}

func writeFileContentClosing(b *strings.Builder) {
	b.WriteString(`
Produce the complete file content now. Remember that your entire response is saved verbatim as the file, so output nothing except the file content itself.
`)
}
