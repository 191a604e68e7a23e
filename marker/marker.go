// Package marker defines the structural events a tokenizer emits for the
// tables found in a document.
//
// A tokenizer turns source text into an ordered, append-only stream of
// markers. Only five kinds exist; everything else a tokenizer knows about
// (headings, paragraphs, inline formatting) is dropped before it reaches
// the table extractor:
//
//	TableStart
//	  RowStart  CellContent("Name")  CellContent("Head")  RowEnd
//	  RowStart  CellContent("Mittens")  CellContent("BLACK")  RowEnd
//	TableEnd
package marker

import "fmt"

// Kind identifies the type of a Marker.
type Kind int

const (
	// TableStart opens a table.
	TableStart Kind = iota
	// TableEnd closes the most recently opened table.
	TableEnd
	// RowStart opens a row inside a table.
	RowStart
	// RowEnd closes the current row.
	RowEnd
	// CellContent carries the text of one cell in the current row.
	CellContent
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case TableStart:
		return "TableStart"
	case TableEnd:
		return "TableEnd"
	case RowStart:
		return "RowStart"
	case RowEnd:
		return "RowEnd"
	case CellContent:
		return "CellContent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Marker is a single structural event. Text is only meaningful for
// CellContent markers.
type Marker struct {
	Kind Kind
	Text string
}

// String returns a compact debug representation.
func (m Marker) String() string {
	if m.Kind == CellContent {
		return fmt.Sprintf("CellContent(%q)", m.Text)
	}
	return m.Kind.String()
}

// TableOpen returns a TableStart marker.
func TableOpen() Marker { return Marker{Kind: TableStart} }

// TableClose returns a TableEnd marker.
func TableClose() Marker { return Marker{Kind: TableEnd} }

// RowOpen returns a RowStart marker.
func RowOpen() Marker { return Marker{Kind: RowStart} }

// RowClose returns a RowEnd marker.
func RowClose() Marker { return Marker{Kind: RowEnd} }

// Cell returns a CellContent marker carrying text verbatim.
func Cell(text string) Marker { return Marker{Kind: CellContent, Text: text} }

// Tokenizer converts source text into a marker stream.
type Tokenizer interface {
	Tokenize(src []byte) ([]Marker, error)
}

// TokenizerFunc adapts an ordinary function to the Tokenizer interface.
type TokenizerFunc func(src []byte) ([]Marker, error)

// Tokenize calls f(src).
func (f TokenizerFunc) Tokenize(src []byte) ([]Marker, error) {
	return f(src)
}

// Builder accumulates markers for a stream. The zero value is ready to use.
type Builder struct {
	markers []Marker
}

// Table appends a complete table, one row per element of rows.
func (b *Builder) Table(rows ...[]string) *Builder {
	b.markers = append(b.markers, TableOpen())
	for _, row := range rows {
		b.Row(row...)
	}
	b.markers = append(b.markers, TableClose())
	return b
}

// Row appends a RowStart, one CellContent per cell and a RowEnd.
func (b *Builder) Row(cells ...string) *Builder {
	b.markers = append(b.markers, RowOpen())
	for _, c := range cells {
		b.markers = append(b.markers, Cell(c))
	}
	b.markers = append(b.markers, RowClose())
	return b
}

// Add appends arbitrary markers.
func (b *Builder) Add(ms ...Marker) *Builder {
	b.markers = append(b.markers, ms...)
	return b
}

// Markers returns the accumulated stream.
func (b *Builder) Markers() []Marker {
	return b.markers
}
