// Package format provides source format detection for the mdtables library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported source format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markdown indicates Markdown text.
	Markdown
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines format from a filename extension. No file is opened.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".mdown", ".mkd":
		return Markdown
	case ".html", ".htm", ".xhtml":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromContent inspects the start of data. Content that looks like an
// HTML document is HTML; everything else is treated as Markdown, which
// accepts any text.
func DetectFromContent(data []byte) Format {
	if detectHTMLMagic(data) {
		return HTML
	}
	return Markdown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]
	if len(data) > 512 {
		data = data[:512]
	}

	// Check for common HTML signatures (case-insensitive for DOCTYPE)
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}
