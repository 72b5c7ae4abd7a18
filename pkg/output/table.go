package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// Column describes one table column.
type Column struct {
	Field  string
	Header string
}

// TableFormatter formats output as a table using pterm.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the formatter name.
func (f *TableFormatter) Name() string {
	return "table"
}

// Supports returns true if the formatter can handle the given data type.
// Table formatter supports non-empty slices, non-empty maps and structs.
func (f *TableFormatter) Supports(data any) bool {
	if data == nil {
		return false
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	case reflect.Struct:
		return true
	case reflect.Ptr:
		if v.IsNil() {
			return false
		}
		return f.Supports(v.Elem().Interface())
	default:
		return false
	}
}

// Format formats the data as a table and writes it to the writer.
func (f *TableFormatter) Format(w io.Writer, data any, config *FormatConfig) error {
	if config == nil {
		config = NewFormatConfig()
	}

	if data == nil {
		return fmt.Errorf("cannot format nil data as table")
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("cannot format nil pointer as table")
		}
		v = v.Elem()
	}

	var tableData [][]string
	var err error

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		tableData, err = f.formatSlice(v, config)
	case reflect.Map:
		tableData, err = f.formatMap(v, config)
	case reflect.Struct:
		tableData, err = f.formatStruct(v, config)
	default:
		return fmt.Errorf("unsupported data type for table formatting: %s", v.Kind())
	}
	if err != nil {
		return err
	}

	table := pterm.DefaultTable.WithHasHeader(config.ShowHeaders)
	if config.Colors {
		table = table.WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold))
	} else {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}

	rendered, err := table.WithData(tableData).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = io.WriteString(w, rendered+"\n")
	return err
}

// formatSlice formats a slice as a table with one row per element.
func (f *TableFormatter) formatSlice(v reflect.Value, config *FormatConfig) ([][]string, error) {
	if v.Len() == 0 {
		return nil, fmt.Errorf("empty slice")
	}

	columns := f.detectColumns(v)
	if len(columns) == 0 {
		// Scalars: a single VALUE column.
		columns = []Column{{Header: "VALUE"}}
	}

	tableData := make([][]string, 0, v.Len()+1)

	if config.ShowHeaders {
		headers := make([]string, len(columns))
		for i, col := range columns {
			headers[i] = col.Header
		}
		tableData = append(tableData, headers)
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		row := make([]string, len(columns))
		for j, col := range columns {
			var value any
			if col.Field == "" {
				value = elem.Interface()
			} else {
				value = f.extractField(elem, col.Field)
			}
			row[j] = f.truncate(f.formatValue(value), config.MaxWidth)
		}
		tableData = append(tableData, row)
	}

	return tableData, nil
}

// formatMap formats a map as a two-column key-value table.
func (f *TableFormatter) formatMap(v reflect.Value, config *FormatConfig) ([][]string, error) {
	if v.Len() == 0 {
		return nil, fmt.Errorf("empty map")
	}

	tableData := make([][]string, 0, v.Len()+1)
	if config.ShowHeaders {
		tableData = append(tableData, []string{"KEY", "VALUE"})
	}

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})

	for _, key := range keys {
		tableData = append(tableData, []string{
			fmt.Sprint(key.Interface()),
			f.truncate(f.formatValue(v.MapIndex(key).Interface()), config.MaxWidth),
		})
	}

	return tableData, nil
}

// formatStruct formats a struct as a two-column field-value table.
func (f *TableFormatter) formatStruct(v reflect.Value, config *FormatConfig) ([][]string, error) {
	t := v.Type()
	tableData := make([][]string, 0, t.NumField()+1)

	if config.ShowHeaders {
		tableData = append(tableData, []string{"FIELD", "VALUE"})
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tableData = append(tableData, []string{
			fieldName(field),
			f.truncate(f.formatValue(v.Field(i).Interface()), config.MaxWidth),
		})
	}

	return tableData, nil
}

// detectColumns collects columns across every element, so rows whose maps
// carry different keys still line up. Map columns are sorted by key.
func (f *TableFormatter) detectColumns(v reflect.Value) []Column {
	first := indirect(v.Index(0))

	if first.Kind() == reflect.Struct {
		var columns []Column
		t := first.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := fieldName(field)
			columns = append(columns, Column{Field: name, Header: strings.ToUpper(name)})
		}
		return columns
	}

	seen := make(map[string]bool)
	for i := 0; i < v.Len(); i++ {
		elem := indirect(v.Index(i))
		if elem.Kind() != reflect.Map {
			continue
		}
		for _, key := range elem.MapKeys() {
			seen[fmt.Sprint(key.Interface())] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	columns := make([]Column, len(keys))
	for i, key := range keys {
		columns[i] = Column{Field: key, Header: strings.ToUpper(key)}
	}
	return columns
}

// extractField extracts a field value from a map or struct.
func (f *TableFormatter) extractField(v reflect.Value, field string) any {
	v = indirect(v)

	switch v.Kind() {
	case reflect.Map:
		for _, key := range v.MapKeys() {
			if fmt.Sprint(key.Interface()) == field {
				return v.MapIndex(key).Interface()
			}
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() && fieldName(t.Field(i)) == field {
				return v.Field(i).Interface()
			}
		}
	}

	return nil
}

// formatValue formats a cell value. Nested maps and slices are rendered as
// compact JSON.
func (f *TableFormatter) formatValue(value any) string {
	if value == nil {
		return ""
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		value = v.Elem().Interface()
		v = v.Elem()
	}

	switch val := value.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(val)
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if out, err := MarshalJSON(value); err == nil {
			return string(out)
		}
	}

	return fmt.Sprintf("%v", value)
}

func (f *TableFormatter) truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// fieldName returns the json tag name of a struct field, or its Go name.
func fieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
