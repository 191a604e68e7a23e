// Package htmldoc provides a table marker tokenizer for HTML documents.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/mdtables/marker"
)

// Tokenizer implements marker.Tokenizer for HTML. Tables are read from
// <table>, <tr>, <td> and <th> elements; the rest of the document is
// ignored. Like browsers it tolerates omitted end tags: a new row or cell
// closes the previous one, and anything still open at the end of the input
// is closed.
type Tokenizer struct{}

// NewTokenizer creates an HTML tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize implements marker.Tokenizer.
func (t *Tokenizer) Tokenize(src []byte) ([]marker.Marker, error) {
	return t.TokenizeReader(bytes.NewReader(src))
}

// TokenizeReader reads HTML from r and returns its table markers.
func (t *Tokenizer) TokenizeReader(r io.Reader) ([]marker.Marker, error) {
	z := html.NewTokenizer(r)
	st := &tableState{markers: make([]marker.Marker, 0)}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenizing HTML: %w", err)
			}
			st.closeAll()
			return st.markers, nil

		case html.StartTagToken:
			name, _ := z.TagName()
			st.startTag(string(name), false)

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			st.startTag(string(name), true)

		case html.EndTagToken:
			name, _ := z.TagName()
			st.endTag(string(name))

		case html.TextToken:
			st.text(z.Text())
		}
	}
}

// frame tracks one open table.
type frame struct {
	rowOpen  bool
	cellOpen bool
	cell     strings.Builder
}

type tableState struct {
	stack   []*frame
	skip    string // element whose content is being skipped
	markers []marker.Marker
}

func (s *tableState) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *tableState) startTag(name string, selfClosing bool) {
	if s.skip != "" {
		return
	}
	if shouldSkipElement(name) {
		if !selfClosing {
			s.skip = name
		}
		return
	}

	if name == "table" {
		s.stack = append(s.stack, &frame{})
		s.markers = append(s.markers, marker.TableOpen())
		return
	}

	f := s.top()
	if f == nil {
		return
	}

	switch name {
	case "tr":
		s.closeCell(f)
		s.closeRow(f)
		f.rowOpen = true
		s.markers = append(s.markers, marker.RowOpen())

	case "td", "th":
		s.closeCell(f)
		if !f.rowOpen {
			f.rowOpen = true
			s.markers = append(s.markers, marker.RowOpen())
		}
		f.cellOpen = true
		f.cell.Reset()

	case "br":
		if f.cellOpen {
			f.cell.WriteString("\n")
		}
	}
}

func (s *tableState) endTag(name string) {
	if s.skip != "" {
		if name == s.skip {
			s.skip = ""
		}
		return
	}

	f := s.top()
	if f == nil {
		return
	}

	switch name {
	case "td", "th":
		s.closeCell(f)

	case "tr":
		s.closeCell(f)
		s.closeRow(f)

	case "table":
		s.closeTable(f)
	}
}

func (s *tableState) text(data []byte) {
	if s.skip != "" {
		return
	}
	if f := s.top(); f != nil && f.cellOpen {
		f.cell.Write(data)
	}
}

func (s *tableState) closeCell(f *frame) {
	if !f.cellOpen {
		return
	}
	f.cellOpen = false
	s.markers = append(s.markers, marker.Cell(strings.TrimSpace(f.cell.String())))
	f.cell.Reset()
}

func (s *tableState) closeRow(f *frame) {
	if !f.rowOpen {
		return
	}
	f.rowOpen = false
	s.markers = append(s.markers, marker.RowClose())
}

func (s *tableState) closeTable(f *frame) {
	s.closeCell(f)
	s.closeRow(f)
	s.markers = append(s.markers, marker.TableClose())
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *tableState) closeAll() {
	for f := s.top(); f != nil; f = s.top() {
		s.closeTable(f)
	}
}

// shouldSkipElement returns true if the element's content is never table text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object":
		return true
	}
	return false
}
