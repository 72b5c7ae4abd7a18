package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestYAMLFormatterFormat(t *testing.T) {
	formatter := NewYAMLFormatter()

	type envelope struct {
		Status  bool   `yaml:"status"`
		Message string `yaml:"message"`
		Data    any    `yaml:"data"`
	}

	data := envelope{
		Status:  true,
		Message: "Successful",
		Data: Normalize(map[string]any{
			"NGN": map[string]any{"available_balance": json.Number("1500.5")},
		}),
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, data, nil); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	expected := "status: true\nmessage: Successful\ndata:\n  NGN:\n    available_balance: 1500.5\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, buf.String())
	}
}

func TestYAMLFormatterNil(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLFormatter().Format(&buf, nil, nil); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if buf.String() != "null\n" {
		t.Errorf("Expected null, got %q", buf.String())
	}
}

func TestYAMLFormatterNumbersUnquoted(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"amount": json.Number("200"), "code": "044"}
	if err := NewYAMLFormatter().Format(&buf, data, nil); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "amount: 200\n") {
		t.Errorf("Expected unquoted number, got %q", out)
	}
	if !strings.Contains(out, `code: "044"`) {
		t.Errorf("Expected string that looks numeric to stay quoted, got %q", out)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{"int", json.Number("42"), int64(42)},
		{"float", json.Number("1.25"), 1.25},
		{"string untouched", "42", "42"},
		{"nested", map[string]any{"a": []any{json.Number("1")}}, map[string]any{"a": []any{int64(1)}}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Normalize(%v) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}
