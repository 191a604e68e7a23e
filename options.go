package mdtables

import (
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/tsawler/mdtables/format"
	"github.com/tsawler/mdtables/marker"
	"github.com/tsawler/mdtables/model"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Orientation
	mode model.Mode

	// Object conversion
	lowercaseKeys bool
	keyLanguage   language.Tag

	// Source handling
	format     format.Format // Unknown means detect from content
	htmlTables bool          // Also read raw HTML blocks in Markdown
	tokenizer  marker.Tokenizer

	// Irregular input
	strict bool

	logger zerolog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		mode:          model.Rows,
		lowercaseKeys: false,
		keyLanguage:   language.Und,
		format:        format.Markdown,
		htmlTables:    false,
		tokenizer:     nil, // nil means chosen from format
		strict:        false,
		logger:        zerolog.Nop(),
	}
}

// clone creates a copy of ExtractOptions. Every field is a value or an
// immutable reference, so a shallow copy is enough.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
