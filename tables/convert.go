package tables

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/mdtables/model"
)

// ConvertOptions controls table-to-object conversion.
type ConvertOptions struct {
	// Lowercase every record key and column key. Values are never changed.
	LowercaseKeys bool

	// Language used for lowercasing. The zero value (language.Und) applies
	// locale-independent rules.
	Language language.Tag
}

// ToObject converts a row-oriented table into a keyed object.
//
// Row 0 is the header row: its first cell is the corner label and the rest
// are column keys. Every later row contributes one record keyed by its first
// cell, with each remaining cell stored under the column key at the same
// position. The table is only read; the caller's rows are never modified.
//
// Irregular input degrades without error:
//   - a zero-row table yields an empty object
//   - a row shorter than the header yields fewer fields
//   - cells beyond the last column key are dropped
//   - an empty row has no record key and is skipped
//   - a repeated record key replaces the earlier record, a repeated column
//     key overwrites the earlier field (last write wins)
func ToObject(t *model.Table, opts ConvertOptions) *model.Object {
	obj := model.NewObject()
	if t == nil || len(t.Rows) == 0 {
		return obj
	}

	fold := func(s string) string { return s }
	if opts.LowercaseKeys {
		// A Caser is stateful, so each conversion gets its own.
		fold = cases.Lower(opts.Language).String
	}

	header := t.Rows[0]
	columns := make([]string, 0, len(header))
	for i := 1; i < len(header); i++ {
		columns = append(columns, fold(header[i]))
	}

	for _, row := range t.Rows[1:] {
		if len(row) == 0 {
			continue
		}
		record := obj.NewRecord(fold(row[0]))
		for k := 1; k < len(row) && k-1 < len(columns); k++ {
			record.Set(columns[k-1], row[k])
		}
	}

	return obj
}

// ToObjects converts each table in order.
func ToObjects(tables []*model.Table, opts ConvertOptions) []*model.Object {
	objects := make([]*model.Object, 0, len(tables))
	for _, t := range tables {
		objects = append(objects, ToObject(t, opts))
	}
	return objects
}
