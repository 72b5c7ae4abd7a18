package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Manager manages output formatting and provides high-level formatting methods.
type Manager struct {
	formatters    map[string]Formatter
	defaultFormat string
	config        *FormatConfig
}

// NewManager creates a new output manager with default formatters. The
// default format is yaml.
func NewManager() *Manager {
	m := &Manager{
		formatters:    make(map[string]Formatter),
		defaultFormat: "yaml",
		config:        NewFormatConfig(),
	}

	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(NewYAMLFormatter())
	m.RegisterFormatter(NewTableFormatter())

	return m
}

// RegisterFormatter registers a new formatter.
func (m *Manager) RegisterFormatter(formatter Formatter) {
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name.
func (m *Manager) GetFormatter(name string) (Formatter, error) {
	formatter, ok := m.formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("formatter '%s' not found", name)
	}
	return formatter, nil
}

// SetDefaultFormat sets the default output format. Unknown formats are
// rejected.
func (m *Manager) SetDefaultFormat(format string) error {
	if !m.IsFormatSupported(format) {
		return fmt.Errorf("unsupported output format %q, expected one of: %s",
			format, strings.Join(m.GetSupportedFormats(), ", "))
	}
	m.defaultFormat = strings.ToLower(format)
	return nil
}

// DefaultFormat returns the format used when none is given.
func (m *Manager) DefaultFormat() string {
	return m.defaultFormat
}

// SetConfig sets the format configuration.
func (m *Manager) SetConfig(config *FormatConfig) {
	m.config = config
}

// GetConfig returns the current format configuration.
func (m *Manager) GetConfig() *FormatConfig {
	return m.config
}

// Format formats data using the specified format.
func (m *Manager) Format(w io.Writer, data any, format string) error {
	if format == "" {
		format = m.defaultFormat
	}

	formatter, err := m.GetFormatter(format)
	if err != nil {
		return err
	}

	if !formatter.Supports(data) {
		return fmt.Errorf("formatter '%s' does not support data type %T", format, data)
	}

	return formatter.Format(w, data, m.config)
}

// IsFormatSupported checks if a format is supported.
func (m *Manager) IsFormatSupported(format string) bool {
	_, ok := m.formatters[strings.ToLower(format)]
	return ok
}

// GetSupportedFormats returns the sorted names of all registered formatters.
func (m *Manager) GetSupportedFormats() []string {
	formats := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}
