// Package output renders command results for the terminal.
//
// The json formatter produces the compact machine-readable form used in
// JSON mode. The yaml and table formatters are the human renderings; the
// Manager picks between them by name.
package output

import (
	"encoding/json"
	"io"
)

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format formats the given data according to the formatter's rules
	// and writes the output to the provided writer.
	Format(w io.Writer, data any, config *FormatConfig) error

	// Name returns the name of the formatter (e.g., "json", "yaml", "table").
	Name() string

	// Supports returns true if the formatter can handle the given data type.
	Supports(data any) bool
}

// FormatConfig contains configuration options for formatting output.
type FormatConfig struct {
	// Colors enables colored output
	Colors bool

	// Compact reduces whitespace in output
	Compact bool

	// ShowHeaders controls header display (for tables)
	ShowHeaders bool

	// MaxWidth truncates table cells longer than this many bytes. Zero
	// disables truncation.
	MaxWidth int
}

// NewFormatConfig creates a new FormatConfig with sensible defaults.
func NewFormatConfig() *FormatConfig {
	return &FormatConfig{
		Colors:      true,
		ShowHeaders: true,
		MaxWidth:    60,
	}
}

// WithColors sets the colors option.
func (c *FormatConfig) WithColors(colors bool) *FormatConfig {
	c.Colors = colors
	return c
}

// WithCompact sets the compact option.
func (c *FormatConfig) WithCompact(compact bool) *FormatConfig {
	c.Compact = compact
	return c
}

// WithMaxWidth sets the maximum width for table cells.
func (c *FormatConfig) WithMaxWidth(width int) *FormatConfig {
	c.MaxWidth = width
	return c
}

// Normalize converts values decoded with json.Decoder.UseNumber into plain
// Go numbers so human formatters print 1500.5 rather than "1500.5". Maps and
// slices are copied; anything else is returned unchanged.
func Normalize(data any) any {
	switch v := data.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = Normalize(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, value := range v {
			out[i] = Normalize(value)
		}
		return out
	default:
		return data
	}
}
