package output

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewManager(t *testing.T) {
	manager := NewManager()

	if manager.DefaultFormat() != "yaml" {
		t.Errorf("Expected default format 'yaml', got '%s'", manager.DefaultFormat())
	}
	if manager.GetConfig() == nil {
		t.Error("Expected config to be initialized")
	}

	formats := strings.Join(manager.GetSupportedFormats(), ",")
	if formats != "json,table,yaml" {
		t.Errorf("Expected json,table,yaml, got %s", formats)
	}
}

func TestManagerSetDefaultFormat(t *testing.T) {
	manager := NewManager()

	if err := manager.SetDefaultFormat("TABLE"); err != nil {
		t.Fatalf("SetDefaultFormat failed: %v", err)
	}
	if manager.DefaultFormat() != "table" {
		t.Errorf("Expected 'table', got '%s'", manager.DefaultFormat())
	}

	err := manager.SetDefaultFormat("xml")
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "json, table, yaml") {
		t.Errorf("Expected supported formats in error, got %v", err)
	}
	if manager.DefaultFormat() != "table" {
		t.Error("Default format should be unchanged after a rejected update")
	}
}

func TestManagerFormat(t *testing.T) {
	manager := NewManager()
	manager.SetConfig(NewFormatConfig().WithColors(false))

	var buf bytes.Buffer
	if err := manager.Format(&buf, map[string]any{"status": true}, ""); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if buf.String() != "status: true\n" {
		t.Errorf("Expected yaml output, got %q", buf.String())
	}

	if err := manager.Format(&buf, "scalar", "table"); err == nil {
		t.Error("Expected table to reject scalar data")
	}
	if err := manager.Format(&buf, "x", "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

type upperFormatter struct{}

func (upperFormatter) Name() string { return "upper" }
func (upperFormatter) Supports(any) bool { return true }
func (upperFormatter) Format(w io.Writer, data any, _ *FormatConfig) error {
	_, err := io.WriteString(w, strings.ToUpper(data.(string)))
	return err
}

func TestManagerRegisterFormatter(t *testing.T) {
	manager := NewManager()
	manager.RegisterFormatter(upperFormatter{})

	var buf bytes.Buffer
	if err := manager.Format(&buf, "ok", "upper"); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if buf.String() != "OK" {
		t.Errorf("Expected OK, got %q", buf.String())
	}
}
