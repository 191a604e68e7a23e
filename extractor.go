package mdtables

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/tsawler/mdtables/format"
	"github.com/tsawler/mdtables/htmldoc"
	"github.com/tsawler/mdtables/markdown"
	"github.com/tsawler/mdtables/marker"
	"github.com/tsawler/mdtables/model"
	"github.com/tsawler/mdtables/tables"
)

// Extractor provides a fluent interface for extracting tables from Markdown
// and HTML text. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	source []byte

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:  e.source,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Mode sets the table orientation. model.Rows (the default) treats each
// table's first row as the header; model.Columns treats the first column as
// the header.
//
// Example:
//
//	obj, _, err := mdtables.FromString(md).Mode(model.Columns).Object()
func (e *Extractor) Mode(mode model.Mode) *Extractor {
	newExt := e.clone()
	switch mode {
	case model.Rows, model.Columns:
		newExt.options.mode = mode
	default:
		if newExt.err == nil {
			newExt.err = fmt.Errorf("unknown table mode %v", mode)
		}
	}
	return newExt
}

// ModeName sets the table orientation by name ("rows" or "columns").
//
// Example:
//
//	tables, _, err := mdtables.FromString(md).ModeName("columns").Tables()
func (e *Extractor) ModeName(name string) *Extractor {
	mode, err := model.ParseMode(name)
	if err != nil {
		newExt := e.clone()
		if newExt.err == nil {
			newExt.err = err
		}
		return newExt
	}
	return e.Mode(mode)
}

// Rows treats the first row of each table as the header row. This is the
// default.
func (e *Extractor) Rows() *Extractor {
	return e.Mode(model.Rows)
}

// Columns treats the first column of each table as the header row.
// Tables are transposed as they are extracted.
//
// Example:
//
//	obj, _, err := mdtables.FromString(md).Columns().Object()
func (e *Extractor) Columns() *Extractor {
	return e.Mode(model.Columns)
}

// LowercaseKeys lowercases record keys and column keys when tables are
// converted to objects. Cell values keep their case.
//
// Example:
//
//	obj, _, err := mdtables.FromString(md).LowercaseKeys().Object()
//	v, _ := obj.Get("mittens", "head")
func (e *Extractor) LowercaseKeys() *Extractor {
	newExt := e.clone()
	newExt.options.lowercaseKeys = true
	return newExt
}

// KeyLanguage sets the language whose casing rules LowercaseKeys applies.
// The default, language.Und, is locale-independent.
//
// Example:
//
//	obj, _, err := mdtables.FromString(md).LowercaseKeys().KeyLanguage(language.Turkish).Object()
func (e *Extractor) KeyLanguage(tag language.Tag) *Extractor {
	newExt := e.clone()
	newExt.options.keyLanguage = tag
	return newExt
}

// Format sets the source format. format.Unknown detects HTML documents
// from their content and treats everything else as Markdown.
//
// Example:
//
//	tables, _, err := mdtables.FromString(page).Format(format.HTML).Tables()
func (e *Extractor) Format(f format.Format) *Extractor {
	newExt := e.clone()
	newExt.options.format = f
	return newExt
}

// HTMLTables makes raw HTML <table> blocks embedded in Markdown a source of
// tables as well as Markdown pipe tables.
func (e *Extractor) HTMLTables() *Extractor {
	newExt := e.clone()
	newExt.options.htmlTables = true
	return newExt
}

// Strict makes irregular table structure an error wrapping
// tables.ErrMalformed instead of a warning.
//
// Example:
//
//	_, _, err := mdtables.FromString(page).Format(format.HTML).Strict().Tables()
//	if errors.Is(err, tables.ErrMalformed) {
//	    // handle error
//	}
func (e *Extractor) Strict() *Extractor {
	newExt := e.clone()
	newExt.options.strict = true
	return newExt
}

// Logger sets the logger that receives debug events about extraction.
// Nothing is logged by default.
func (e *Extractor) Logger(logger zerolog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// Tokenizer replaces the tokenizer chosen from the source format.
func (e *Extractor) Tokenizer(tok marker.Tokenizer) *Extractor {
	newExt := e.clone()
	newExt.options.tokenizer = tok
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables extracts every table as a row-major grid, in document order.
// The slice is empty, not nil, when the source has no tables.
//
// Returns the tables, any warnings about irregular table structure that
// extraction recovered from, and an error if tokenization failed or strict
// mode rejected the input.
//
// Example:
//
//	tables, warnings, err := mdtables.FromString(md).Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", mdtables.FormatWarnings(warnings))
//	}
func (e *Extractor) Tables() ([]*model.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	markers, err := e.tokenizer().Tokenize(e.source)
	if err != nil {
		return nil, nil, err
	}

	config := tables.Config{
		Mode:   e.options.mode,
		Strict: e.options.strict,
		Logger: e.options.logger,
	}
	found, diags, err := tables.Extract(markers, config)
	warnings := warningsFromDiagnostics(diags)
	if err != nil {
		return nil, warnings, err
	}

	e.options.logger.Debug().
		Int("markers", len(markers)).
		Int("tables", len(found)).
		Int("warnings", len(warnings)).
		Str("mode", e.options.mode.String()).
		Msg("extracted tables")

	return found, warnings, nil
}

// Table extracts the first table. The table is nil when the source has no
// tables; a table with no data rows is returned as a non-nil table.
//
// Example:
//
//	table, _, err := mdtables.FromString(md).Table()
//	if table == nil {
//	    // no table found
//	}
func (e *Extractor) Table() (*model.Table, []Warning, error) {
	found, warnings, err := e.Tables()
	if err != nil || len(found) == 0 {
		return nil, warnings, err
	}
	return found[0], warnings, nil
}

// Objects extracts every table as a keyed object, in document order.
//
// Example:
//
//	objects, _, err := mdtables.FromString(md).Objects()
//	v, ok := objects[1].Get("Y", "Data")
func (e *Extractor) Objects() ([]*model.Object, []Warning, error) {
	found, warnings, err := e.Tables()
	if err != nil {
		return nil, warnings, err
	}
	return tables.ToObjects(found, e.convertOptions()), warnings, nil
}

// Object extracts the first table as a keyed object. The object is nil
// when the source has no tables.
//
// Example:
//
//	obj, _, err := mdtables.FromString(md).Object()
//	v, ok := obj.Get("Mittens", "Head")
func (e *Extractor) Object() (*model.Object, []Warning, error) {
	table, warnings, err := e.Table()
	if err != nil || table == nil {
		return nil, warnings, err
	}
	return tables.ToObject(table, e.convertOptions()), warnings, nil
}

// JSON extracts the first table as the JSON encoding of its keyed object.
// The second result is false when the source has no tables.
//
// Example:
//
//	text, ok, err := mdtables.FromString(md).JSON()
func (e *Extractor) JSON() (string, bool, error) {
	obj, _, err := e.Object()
	if err != nil || obj == nil {
		return "", false, err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return "", false, fmt.Errorf("encoding table: %w", err)
	}
	return string(data), true, nil
}

// JSONAll extracts every table as the JSON encoding of its keyed object,
// in document order.
//
// Example:
//
//	texts, err := mdtables.FromString(md).JSONAll()
func (e *Extractor) JSONAll() ([]string, error) {
	objects, _, err := e.Objects()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(objects))
	for i, obj := range objects {
		data, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("encoding table %d: %w", i+1, err)
		}
		out = append(out, string(data))
	}
	return out, nil
}

// ============================================================================
// Helpers
// ============================================================================

// tokenizer returns the configured tokenizer, or one chosen from the
// source format.
func (e *Extractor) tokenizer() marker.Tokenizer {
	if e.options.tokenizer != nil {
		return e.options.tokenizer
	}

	f := e.options.format
	if f == format.Unknown {
		f = format.DetectFromContent(e.source)
	}

	if f == format.HTML {
		return htmldoc.NewTokenizer()
	}

	var opts []markdown.Option
	if e.options.htmlTables {
		opts = append(opts, markdown.WithHTMLTables(htmldoc.NewTokenizer()))
	}
	return markdown.NewTokenizer(opts...)
}

func (e *Extractor) convertOptions() tables.ConvertOptions {
	return tables.ConvertOptions{
		LowercaseKeys: e.options.lowercaseKeys,
		Language:      e.options.keyLanguage,
	}
}
