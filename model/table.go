package model

import (
	"encoding/json"
	"strings"
)

// Table is a raw table: an unvalidated row-major grid of cell strings.
// Rows are not required to have equal lengths.
type Table struct {
	Rows [][]string
}

// NewTable creates a table from rows. The rows are copied.
func NewTable(rows ...[]string) *Table {
	t := &Table{Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		t.Rows = append(t.Rows, append([]string{}, row...))
	}
	return t
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Cell returns the cell at the given row and column (0-indexed).
// The second result is false when the position is out of range.
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][col], true
}

// Header returns a copy of the first row, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return append([]string{}, t.Rows[0]...)
}

// IsRectangular reports whether every row has the same length as the first.
func (t *Table) IsRectangular() bool {
	for _, row := range t.Rows {
		if len(row) != t.ColCount() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return NewTable(t.Rows...)
}

// Transpose returns a new table with rows and columns swapped: cell [i][j]
// of the result is cell [j][i] of t. The width of the first row decides the
// number of output rows; cells missing from shorter rows become empty
// strings and cells beyond the first row's width are dropped.
func (t *Table) Transpose() *Table {
	out := &Table{Rows: make([][]string, 0, t.ColCount())}
	for i := 0; i < t.ColCount(); i++ {
		row := make([]string, len(t.Rows))
		for j, src := range t.Rows {
			if i < len(src) {
				row[j] = src[i]
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Equal reports whether two tables hold the same cells.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if t.Rows[i][j] != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// GetText returns the cells as tab-separated lines.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// MarshalJSON encodes the table as an array of string arrays. An empty
// table encodes as [] rather than null.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return json.Marshal(rows)
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(escapeMarkdownCell(cell))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	// Header row
	writeRow(t.Rows[0])

	// Separator
	for range t.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	// Data rows
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// escapeMarkdownCell keeps cell text on one line and protects pipes.
func escapeMarkdownCell(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", `\|`)
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, text := range row {
			// Escape quotes and wrap in quotes if necessary
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
