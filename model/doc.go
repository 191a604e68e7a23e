// Package model provides the data structures produced by table extraction.
//
// # Tables
//
// A [Table] is a raw, unvalidated row-major grid of cell strings exactly as
// it was found in the source document:
//
//	t := model.NewTable(
//	    []string{"Name", "Head"},
//	    []string{"Mittens", "BLACK"},
//	)
//	t.Transpose() // [[Name Mittens] [Head BLACK]]
//
// Export methods ToMarkdown() and ToCSV() render a table for display.
//
// # Orientation
//
// [Mode] selects whether a table's rows ([Rows]) or columns ([Columns]) are
// records. After orientation both yield the same row-oriented grid.
//
// # Objects
//
// An [Object] is the keyed form of a table. The first row supplies the
// column keys and the first cell of every other row the record key:
//
//	v, ok := obj.Get("Mittens", "Head") // "BLACK", true
//
// Objects preserve document order, so their JSON encoding lists records and
// fields in the order they appear in the table.
package model
