package tables

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tsawler/mdtables/marker"
	"github.com/tsawler/mdtables/model"
)

// ErrMalformed is returned in strict mode when the marker stream does not
// describe well-formed tables.
var ErrMalformed = errors.New("malformed table markers")

// Config holds session configuration
type Config struct {
	// Orientation applied to every completed table
	Mode model.Mode

	// Return ErrMalformed on the first irregularity instead of recovering
	Strict bool

	// Receives one debug event per diagnostic
	Logger zerolog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Mode:   model.Rows,
		Strict: false,
		Logger: zerolog.Nop(),
	}
}

// Session walks a single marker stream and assembles the tables it
// describes. A Session is not safe for concurrent use; create one per
// stream.
type Session struct {
	config Config

	inTable bool
	inRow   bool
	depth   int // nesting depth of ignored tables inside the current one

	row   []string
	table [][]string

	tables      []*model.Table
	diagnostics []Diagnostic
	index       int // position of the next marker
	err         error
}

// NewSession creates a session in the initial state: not in a table, not
// in a row, no completed tables.
func NewSession(config Config) *Session {
	return &Session{
		config: config,
		tables: make([]*model.Table, 0),
	}
}

// Feed processes one marker. It returns an error only in strict mode, and
// once an error has been returned every later call returns it again.
func (s *Session) Feed(m marker.Marker) error {
	if s.err != nil {
		return s.err
	}
	defer func() { s.index++ }()

	// Markers inside a nested table are skipped until it closes.
	if s.depth > 0 {
		switch m.Kind {
		case marker.TableStart:
			s.depth++
		case marker.TableEnd:
			s.depth--
		}
		return nil
	}

	switch m.Kind {
	case marker.TableStart:
		if s.inTable {
			s.depth++
			return s.report(NestedTable, "table start inside a table; nested table ignored")
		}
		s.inTable = true
		s.inRow = false
		s.table = make([][]string, 0)

	case marker.TableEnd:
		if !s.inTable {
			return s.report(StrayTableEnd, "table end outside a table")
		}
		if s.inRow {
			if err := s.report(UnterminatedRow, "table closed with an open row; row dropped"); err != nil {
				return err
			}
		}
		s.inTable = false
		s.inRow = false
		return s.finishTable()

	case marker.RowStart:
		if !s.inTable {
			return s.report(StrayRow, "row start outside a table")
		}
		if s.inRow {
			if err := s.report(UnterminatedRow, "row start inside an open row; partial row dropped"); err != nil {
				return err
			}
		}
		s.inRow = true
		s.row = make([]string, 0)

	case marker.RowEnd:
		if !s.inTable || !s.inRow {
			return s.report(StrayRow, "row end without an open row")
		}
		s.inRow = false
		s.table = append(s.table, s.row)
		s.row = nil

	case marker.CellContent:
		if !s.inRow {
			return s.report(StrayCell, fmt.Sprintf("cell %q outside a row", m.Text))
		}
		s.row = append(s.row, m.Text)

	default:
		// Unknown kinds are not part of the table vocabulary.
	}

	return nil
}

// FeedAll processes markers in order and stops at the first error.
func (s *Session) FeedAll(markers []marker.Marker) error {
	for _, m := range markers {
		if err := s.Feed(m); err != nil {
			return err
		}
	}
	return nil
}

// finishTable orients the buffered table and appends it to the results.
func (s *Session) finishTable() error {
	table := &model.Table{Rows: s.table}
	s.table = nil

	if !table.IsRectangular() {
		if err := s.reportTable(RaggedRows, len(s.tables), "rows have different numbers of cells"); err != nil {
			return err
		}
	}

	s.tables = append(s.tables, s.config.Mode.Orient(table))
	return nil
}

// Finish ends the stream and returns the completed tables in document
// order. A table still open at this point is dropped.
func (s *Session) Finish() ([]*model.Table, error) {
	if s.err != nil {
		return s.tables, s.err
	}
	if s.inTable {
		if err := s.report(UnterminatedTable, "stream ended inside a table; table dropped"); err != nil {
			return s.tables, err
		}
		s.inTable = false
		s.inRow = false
		s.table = nil
	}
	return s.tables, nil
}

// Tables returns the tables completed so far.
func (s *Session) Tables() []*model.Table {
	return s.tables
}

// Diagnostics returns the irregularities recorded so far.
func (s *Session) Diagnostics() []Diagnostic {
	return s.diagnostics
}

func (s *Session) report(kind DiagnosticKind, msg string) error {
	table := -1
	if s.inTable {
		table = len(s.tables)
	}
	return s.reportTable(kind, table, msg)
}

func (s *Session) reportTable(kind DiagnosticKind, table int, msg string) error {
	d := Diagnostic{Kind: kind, Marker: s.index, Table: table, Message: msg}
	s.diagnostics = append(s.diagnostics, d)

	s.config.Logger.Debug().
		Str("kind", kind.String()).
		Int("marker", d.Marker).
		Int("table", d.Table).
		Msg(msg)

	if s.config.Strict {
		s.err = fmt.Errorf("%w: %s", ErrMalformed, d)
		return s.err
	}
	return nil
}

// Extract runs a fresh session over markers and returns the tables found,
// in document order. The result is never nil.
func Extract(markers []marker.Marker, config Config) ([]*model.Table, []Diagnostic, error) {
	s := NewSession(config)
	if err := s.FeedAll(markers); err != nil {
		return s.Tables(), s.Diagnostics(), err
	}
	tables, err := s.Finish()
	return tables, s.Diagnostics(), err
}
