// Package tables assembles tables from a marker stream and converts them into
// keyed objects.
//
// # Extraction
//
// A [Session] consumes markers one at a time, tracking whether it is inside
// a table and inside a row. Each completed table is oriented according to
// [Config].Mode and appended to the results in document order:
//
//	tables, diags, err := tables.Extract(markers, tables.DefaultConfig())
//
// The session never fails on irregular input by default. It recovers and
// records a [Diagnostic] instead:
//
//   - a table start inside a table skips the nested table entirely
//   - a table end, row boundary or cell outside its container is ignored
//   - a row left open when the next row starts or the table ends is dropped
//   - a table left open at the end of the stream is dropped
//   - tables with rows of different lengths are kept as they are
//
// With Config.Strict set, the first irregularity is returned as an error
// wrapping [ErrMalformed].
//
// # Conversion
//
// [ToObject] turns a row-oriented table into a [model.Object], using the
// first row as column keys and the first cell of each later row as the
// record key:
//
//	obj := tables.ToObject(table, tables.ConvertOptions{LowercaseKeys: true})
//	v, _ := obj.Get("mittens", "head")
package tables
