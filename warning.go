package mdtables

import (
	"fmt"
	"strings"

	"github.com/tsawler/mdtables/tables"
)

// Warning describes irregular table structure that extraction recovered
// from. Warnings never prevent a result from being returned.
type Warning struct {
	Kind tables.DiagnosticKind

	// Table is the 1-based number of the affected table, or 0 when the
	// issue is not tied to a table.
	Table int

	Message string
}

// String formats the warning for humans.
func (w Warning) String() string {
	if w.Table > 0 {
		return fmt.Sprintf("table %d: %s", w.Table, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into one line per warning.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}

func warningsFromDiagnostics(diags []tables.Diagnostic) []Warning {
	if len(diags) == 0 {
		return nil
	}
	warnings := make([]Warning, 0, len(diags))
	for _, d := range diags {
		warnings = append(warnings, Warning{
			Kind:    d.Kind,
			Table:   d.Table + 1,
			Message: d.Message,
		})
	}
	return warnings
}
