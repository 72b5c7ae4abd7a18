package dispatch

import "github.com/gray-adeyi/korapay-cli/pkg/coerce"

// Input holds one invocation's parsed primitive values, keyed by
// parameter name. Unset optional flags are absent.
type Input struct {
	values map[string]any
}

// NewInput builds an Input from already-parsed values.
func NewInput(values map[string]any) *Input {
	if values == nil {
		values = make(map[string]any)
	}
	return &Input{values: values}
}

// Has reports whether name was supplied.
func (in *Input) Has(name string) bool {
	_, ok := in.values[name]
	return ok
}

// String returns a string parameter, or "" when unset.
func (in *Input) String(name string) string {
	s, _ := in.values[name].(string)
	return s
}

// Float returns a number parameter, or 0 when unset.
func (in *Input) Float(name string) float64 {
	f, _ := in.values[name].(float64)
	return f
}

// Bool returns a boolean parameter, or false when unset.
func (in *Input) Bool(name string) bool {
	b, _ := in.values[name].(bool)
	return b
}

// Value returns a string-backed enum parameter as T.
func Value[T ~string](in *Input, name string) T {
	return T(in.String(name))
}

// Decode coerces the JSON text in parameter name into a single T. An unset
// optional parameter yields the zero value and no error.
func Decode[T any](in *Input, name string, desc coerce.Descriptor[T]) (T, error) {
	var zero T
	if !in.Has(name) {
		return zero, nil
	}
	return coerce.One(in.String(name), name, desc)
}

// DecodeMany coerces the JSON text in parameter name into a list of T. An
// unset optional parameter yields nil and no error.
func DecodeMany[T any](in *Input, name string, desc coerce.Descriptor[T]) ([]T, error) {
	if !in.Has(name) {
		return nil, nil
	}
	return coerce.Many(in.String(name), name, desc)
}
