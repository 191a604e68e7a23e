package tables

import "fmt"

// DiagnosticKind classifies an irregularity in a marker stream.
type DiagnosticKind int

const (
	// NestedTable: a table started inside another table. The nested table
	// is skipped.
	NestedTable DiagnosticKind = iota
	// StrayTableEnd: a table end with no open table.
	StrayTableEnd
	// StrayRow: a row boundary outside a table, or a row end with no open row.
	StrayRow
	// StrayCell: cell content outside a row.
	StrayCell
	// UnterminatedRow: a row was still open when a new row started or the
	// table closed. Its cells are dropped.
	UnterminatedRow
	// UnterminatedTable: the stream ended inside a table.
	UnterminatedTable
	// RaggedRows: a completed table has rows of different lengths.
	RaggedRows
)

// String returns the name of the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case NestedTable:
		return "nested_table"
	case StrayTableEnd:
		return "stray_table_end"
	case StrayRow:
		return "stray_row"
	case StrayCell:
		return "stray_cell"
	case UnterminatedRow:
		return "unterminated_row"
	case UnterminatedTable:
		return "unterminated_table"
	case RaggedRows:
		return "ragged_rows"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic records one irregularity the session recovered from.
type Diagnostic struct {
	Kind DiagnosticKind

	// Marker is the 0-based index of the marker that triggered it
	Marker int

	// Table is the 0-based index of the affected table, or -1
	Table int

	Message string
}

// String formats the diagnostic for humans.
func (d Diagnostic) String() string {
	if d.Table >= 0 {
		return fmt.Sprintf("%s at marker %d (table %d): %s", d.Kind, d.Marker, d.Table+1, d.Message)
	}
	return fmt.Sprintf("%s at marker %d: %s", d.Kind, d.Marker, d.Message)
}
