// Package mdtables provides a fluent API for extracting the tables embedded
// in Markdown text as grids, keyed objects, or JSON.
//
// Basic usage:
//
//	obj, warnings, err := mdtables.FromString(md).Object()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", mdtables.FormatWarnings(warnings))
//	}
//	head, _ := obj.Get("Mittens", "Head")
//
// With options:
//
//	objects, _, err := mdtables.FromString(md).
//	    Columns().
//	    LowercaseKeys().
//	    Objects()
//
// Each table's first row supplies the column keys and the first cell of
// every other row the record key. In columns mode the table is transposed
// first, so the first column supplies the keys instead.
//
// For lower-level control, the tables package exposes the extraction
// session and converter, and the markdown and htmldoc packages the
// tokenizers.
package mdtables

import (
	"github.com/tsawler/mdtables/model"
)

// FromString creates an Extractor for Markdown text.
//
// Example:
//
//	tables, _, err := mdtables.FromString(md).Tables()
func FromString(markdown string) *Extractor {
	return FromBytes([]byte(markdown))
}

// FromBytes creates an Extractor for Markdown text held in a byte slice.
// The slice is not copied and must not be modified while the Extractor is
// in use.
func FromBytes(src []byte) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	texts := mdtables.Must(mdtables.FromString(md).JSONAll())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a call to Tables(), Table(), Objects()
// or Object() and panics if the error is non-nil. It discards warnings and
// returns just the value.
//
// Example:
//
//	obj := mdtables.MustValue(mdtables.FromString(md).Object())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExtractTable returns the first table in markdown, or nil if there is none.
// lowercaseKeys has no effect on grids; it is accepted so every Extract
// function shares one signature.
func ExtractTable(markdown string, mode model.Mode, lowercaseKeys bool) (*model.Table, error) {
	table, _, err := newExtractor(markdown, mode, lowercaseKeys).Table()
	return table, err
}

// ExtractAllTables returns every table in markdown, in document order.
func ExtractAllTables(markdown string, mode model.Mode, lowercaseKeys bool) ([]*model.Table, error) {
	found, _, err := newExtractor(markdown, mode, lowercaseKeys).Tables()
	return found, err
}

// ExtractObject returns the first table in markdown as a keyed object, or
// nil if there is none.
func ExtractObject(markdown string, mode model.Mode, lowercaseKeys bool) (*model.Object, error) {
	obj, _, err := newExtractor(markdown, mode, lowercaseKeys).Object()
	return obj, err
}

// ExtractAllObjects returns every table in markdown as a keyed object.
func ExtractAllObjects(markdown string, mode model.Mode, lowercaseKeys bool) ([]*model.Object, error) {
	objects, _, err := newExtractor(markdown, mode, lowercaseKeys).Objects()
	return objects, err
}

// Extract returns the JSON encoding of the first table's keyed object.
// The second result is false if markdown has no tables.
func Extract(markdown string, mode model.Mode, lowercaseKeys bool) (string, bool, error) {
	return newExtractor(markdown, mode, lowercaseKeys).JSON()
}

// ExtractAll returns the JSON encoding of every table's keyed object.
func ExtractAll(markdown string, mode model.Mode, lowercaseKeys bool) ([]string, error) {
	return newExtractor(markdown, mode, lowercaseKeys).JSONAll()
}

func newExtractor(markdown string, mode model.Mode, lowercaseKeys bool) *Extractor {
	e := FromString(markdown).Mode(mode)
	if lowercaseKeys {
		e = e.LowercaseKeys()
	}
	return e
}
