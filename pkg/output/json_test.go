package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatterName(t *testing.T) {
	formatter := NewJSONFormatter()
	if formatter.Name() != "json" {
		t.Errorf("Expected name 'json', got '%s'", formatter.Name())
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "hello", `"hello"`},
		{"number preserved", json.Number("1500.50"), "1500.50"},
		{"object", map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
		{"array", []any{"a", 1, true}, `["a",1,true]`},
		{"html not escaped", map[string]any{"url": "https://x.test/?a=1&b=<2>"}, `{"url":"https://x.test/?a=1&b=<2>"}`},
		{"empty array", []any{}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalJSON(tt.data)
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestMarshalJSONUnsupported(t *testing.T) {
	if _, err := MarshalJSON(map[string]any{"ch": make(chan int)}); err == nil {
		t.Error("Expected error for channel value")
	}
}

func TestJSONFormatterFormat(t *testing.T) {
	formatter := NewJSONFormatter()
	data := map[string]any{"name": "Ada"}

	var compact bytes.Buffer
	if err := formatter.Format(&compact, data, NewFormatConfig().WithCompact(true)); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if compact.String() != `{"name":"Ada"}` {
		t.Errorf("Unexpected compact output: %q", compact.String())
	}

	var pretty bytes.Buffer
	if err := formatter.Format(&pretty, data, nil); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(pretty.String(), "\n  \"name\": \"Ada\"\n") {
		t.Errorf("Expected indented output, got %q", pretty.String())
	}
	if !strings.HasSuffix(pretty.String(), "\n") {
		t.Error("Expected trailing newline in pretty output")
	}
}
