// Package tabular parses the optional CSV attached to a journal entry.
//
// Uploads are cut down to a small preview (rows x cols) before anything else
// sees them: the same preview feeds both the model prompt and the schema
// builder.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a parsed CSV grid. Rows may be ragged.
type Table struct {
	Rows [][]string
}

// Parse reads CSV text into a Table. Malformed rows are skipped rather than
// failing the whole upload.
func Parse(text string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("csv contains no readable rows")
	}

	return &Table{Rows: rows}, nil
}

// Limit returns a table holding only the first maxRows rows and maxCols
// columns. Row slices are shared with the receiver, not copied.
func (t *Table) Limit(maxRows, maxCols int) *Table {
	rows := t.Rows
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > maxCols {
			row = row[:maxCols]
		}
		out[i] = row
	}

	return &Table{Rows: out}
}

// Trim returns the table re-encoded as CSV, limited to the first maxRows rows
// and maxCols columns. This is the only form the prompt builder ever sees.
func (t *Table) Trim(maxRows, maxCols int) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	for _, row := range t.Limit(maxRows, maxCols).Rows {
		// Write errors only occur on the underlying writer; strings.Builder
		// never fails.
		_ = w.Write(row)
	}
	w.Flush()

	return strings.TrimSpace(b.String())
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}
