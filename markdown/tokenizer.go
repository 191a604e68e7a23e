// Package markdown turns Markdown text into a table marker stream using the
// goldmark parser with GitHub Flavored Markdown tables.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/mdtables/marker"
)

// Tokenizer implements marker.Tokenizer for Markdown. It holds no per-call
// state, so a single instance can serve concurrent callers.
type Tokenizer struct {
	md   goldmark.Markdown
	html marker.Tokenizer
}

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	extensions []goldmark.Extender
	html       marker.Tokenizer
}

// WithExtensions replaces the default goldmark extensions (GFM). The list
// must include a table extension for any tables to be found.
func WithExtensions(exts ...goldmark.Extender) Option {
	return func(c *config) {
		c.extensions = exts
	}
}

// WithHTMLTables makes raw HTML blocks in the document a source of tables
// as well. Consecutive HTML blocks are joined before being handed to tok,
// so an HTML table interrupted by blank lines is still read as one.
func WithHTMLTables(tok marker.Tokenizer) Option {
	return func(c *config) {
		c.html = tok
	}
}

// NewTokenizer builds a Markdown tokenizer.
func NewTokenizer(opts ...Option) *Tokenizer {
	c := config{
		extensions: []goldmark.Extender{extension.GFM},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &Tokenizer{
		md:   goldmark.New(goldmark.WithExtensions(c.extensions...)),
		html: c.html,
	}
}

// Tokenize parses src and emits one marker per table boundary, row
// boundary and cell, in document order. The header row of a table is
// emitted as an ordinary row.
func (t *Tokenizer) Tokenize(src []byte) ([]marker.Marker, error) {
	doc := t.md.Parser().Parse(text.NewReader(src))

	w := &walker{src: src, html: t.html, markers: make([]marker.Marker, 0)}
	if err := ast.Walk(doc, w.visit); err != nil {
		return nil, err
	}
	if err := w.flushHTML(); err != nil {
		return nil, err
	}

	return w.markers, nil
}

type walker struct {
	src     []byte
	html    marker.Tokenizer
	pending bytes.Buffer // raw HTML blocks not yet tokenized
	markers []marker.Marker
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering && n.Type() == ast.TypeBlock {
		if block, ok := n.(*ast.HTMLBlock); ok {
			if w.html != nil {
				w.pending.Write(rawBlock(block, w.src))
			}
			return ast.WalkSkipChildren, nil
		}
		if err := w.flushHTML(); err != nil {
			return ast.WalkStop, err
		}
	}

	switch node := n.(type) {
	case *extast.Table:
		if entering {
			w.markers = append(w.markers, marker.TableOpen())
		} else {
			w.markers = append(w.markers, marker.TableClose())
		}

	case *extast.TableHeader, *extast.TableRow:
		if entering {
			w.markers = append(w.markers, marker.RowOpen())
		} else {
			w.markers = append(w.markers, marker.RowClose())
		}

	case *extast.TableCell:
		if entering {
			w.markers = append(w.markers, marker.Cell(cellText(node, w.src)))
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

func (w *walker) flushHTML() error {
	if w.pending.Len() == 0 {
		return nil
	}
	defer w.pending.Reset()

	ms, err := w.html.Tokenize(w.pending.Bytes())
	if err != nil {
		return fmt.Errorf("tokenizing embedded HTML: %w", err)
	}
	w.markers = append(w.markers, ms...)
	return nil
}

// cellText returns the cell's source text, already trimmed by the table
// parser, with escaped pipes resolved. Inline markup is left as written.
func cellText(cell *extast.TableCell, src []byte) string {
	lines := cell.Lines()
	if lines.Len() == 0 {
		return unescapePipes(inlineText(cell, src))
	}

	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return unescapePipes(sb.String())
}

// inlineText concatenates the text segments below n.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(src))
		case *ast.String:
			sb.Write(v.Value)
		default:
			sb.WriteString(inlineText(c, src))
		}
	}
	return sb.String()
}

func unescapePipes(s string) string {
	return strings.ReplaceAll(s, `\|`, "|")
}

// rawBlock returns the source lines of an HTML block, closing line included.
func rawBlock(block *ast.HTMLBlock, src []byte) []byte {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	if block.HasClosure() {
		buf.Write(block.ClosureLine.Value(src))
	}
	return buf.Bytes()
}
