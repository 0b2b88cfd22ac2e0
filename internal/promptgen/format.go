package promptgen

import (
	"fmt"
	"strings"
)

// genericCSVHeader is used when no field labels are available at all. A CSV
// example must never show a blank header row.
const genericCSVHeader = "Header1,Header2,Header3"

func writeCSVRules(b *strings.Builder, fields []string) {
	b.WriteString(`Provide the result in CSV (Comma Separated Values) format.
- **Headers:** The first line MUST be a header row. The column names in the header should exactly match the "Details to Extract" listed above, in the same order.
- **Data Rows:** Each subsequent line should represent a distinct record or item found in the document.
- **Field Order:** Maintain the order of fields in each row as listed in the "Details to Extract".
- **Missing Data:** If a value for a specific detail is not found or is not applicable for a record, leave the field blank but RETAIN THE COMMA to ensure correct column alignment.
- **Quoting:** If a value contains a comma, a newline, or a double quote, wrap the value in double quotes and double any embedded quotes.
- **Example CSV Output Structure (illustrative, actual headers will depend on your "Details to Extract"):**
`)
	header := genericCSVHeader
	row1 := "record1_val1,record1_val2,record1_val3"
	row2 := "record2_val1,,record2_val3"
	if len(fields) > 0 {
		header = strings.Join(fields, ",")
		first := make([]string, len(fields))
		second := make([]string, len(fields))
		for i := range fields {
			first[i] = fmt.Sprintf("record1_value_for_detail%d", i+1)
			if i == 1 {
				// Blank field with the comma retained, demonstrating
				// column alignment for missing data.
				second[i] = ""
			} else {
				second[i] = fmt.Sprintf("record2_value_for_detail%d", i+1)
			}
		}
		row1 = strings.Join(first, ",")
		row2 = strings.Join(second, ",")
	}
	fmt.Fprintf(b, "  ```csv\n  %s\n  %s\n  %s\n  ```\n", header, row1, row2)
}

func writeListRules(b *strings.Builder) {
	b.WriteString(`- Present the information as a structured list.
- Clearly label each extracted piece of information as a "Key: Value" pair, one per line.
- Separate multiple records with a blank line so each record reads as its own block.
`)
}

func writeBulletRules(b *strings.Builder) {
	b.WriteString(`- Present the information as a series of bullet points, one bullet per extracted detail, in the order listed above.
- Use indented sub-bullets when a detail needs elaboration.
- Start a new bullet group for each distinct record found in the document.
`)
}
