package model

import (
	"fmt"
	"strings"
)

// Mode controls whether a table's rows or its columns are treated as
// records.
type Mode int

const (
	// Rows treats the first row as the header row. This is the default.
	Rows Mode = iota
	// Columns transposes the table first, so the first column becomes the
	// header row.
	Columns
)

// String returns "rows" or "columns".
func (m Mode) String() string {
	switch m {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "rows" or "columns" (case-insensitive). The empty string
// yields Rows.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rows", "row":
		return Rows, nil
	case "columns", "column", "cols":
		return Columns, nil
	default:
		return Rows, fmt.Errorf("unknown table mode %q", s)
	}
}

// Orient returns t as a row-oriented table for the mode: t itself for Rows,
// its transpose for Columns.
func (m Mode) Orient(t *Table) *Table {
	if m == Columns {
		return t.Transpose()
	}
	return t
}
