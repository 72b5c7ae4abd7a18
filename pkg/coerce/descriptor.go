package coerce

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Descriptor describes the expected type of a structured argument.
type Descriptor[T any] struct {
	// Name is the model name shown in error messages.
	Name string
	// Example is a sample JSON value shown after a failure.
	Example string
	// Native is the JSON kind that decodes directly into T without field
	// construction. KindInvalid means none.
	Native Kind
	// Required lists the object fields that must be present.
	Required []string

	construct func(raw json.RawMessage) (T, error)
}

// build constructs one T from a single JSON value.
func (d Descriptor[T]) build(raw json.RawMessage) (T, error) {
	if d.construct == nil {
		var zero T
		return zero, fmt.Errorf("descriptor %s has no constructor", d.Name)
	}
	return d.construct(raw)
}

// WithExample returns a copy of d carrying an example value.
func (d Descriptor[T]) WithExample(example string) Descriptor[T] {
	d.Example = example
	return d
}

// Struct describes a struct type built from a JSON object whose keys are
// the struct's json field names. Unknown keys, missing required keys and
// mistyped values all fail construction.
func Struct[T any](name string, required ...string) Descriptor[T] {
	d := Descriptor[T]{
		Name:     name,
		Required: required,
	}
	d.construct = func(raw json.RawMessage) (T, error) {
		var value T

		if kind := KindOf(raw); kind != KindObject {
			return value, fmt.Errorf("got a JSON %s, want a JSON object", kind)
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return value, err
		}

		var missing []string
		for _, field := range required {
			v, ok := fields[field]
			if !ok || KindOf(v) == KindNull {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return value, fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
		}

		if err := decodeStrict(raw, &value); err != nil {
			return value, err
		}
		return value, nil
	}
	return d
}

// Map describes a free-form JSON object such as request metadata.
func Map(name string) Descriptor[map[string]any] {
	d := Descriptor[map[string]any]{
		Name:   name,
		Native: KindObject,
	}
	d.construct = func(raw json.RawMessage) (map[string]any, error) {
		if kind := KindOf(raw); kind != KindObject {
			return nil, fmt.Errorf("got a JSON %s, want a JSON object", kind)
		}
		var value map[string]any
		if err := decodeStrict(raw, &value); err != nil {
			return nil, err
		}
		return value, nil
	}
	return d
}

// Enum describes a string drawn from a closed set of legal values.
func Enum[T ~string](name string, values ...T) Descriptor[T] {
	d := Descriptor[T]{
		Name: name,
	}
	d.construct = func(raw json.RawMessage) (T, error) {
		var value T
		if kind := KindOf(raw); kind != KindString {
			return value, fmt.Errorf("got a JSON %s, want a JSON string", kind)
		}

		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return value, err
		}

		if !slices.Contains(values, T(s)) {
			legal := make([]string, len(values))
			for i, v := range values {
				legal[i] = string(v)
			}
			return value, fmt.Errorf("%q is not one of: %s", s, strings.Join(legal, ", "))
		}
		return T(s), nil
	}
	return d
}
