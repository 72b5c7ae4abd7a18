// Package coerce turns JSON text typed on the command line into typed values.
//
// CLI arguments are flat strings, so nested provider parameters (a card, a
// metadata object, a list of payout orders) are passed as JSON and coerced
// into Go values here. Coercion is fail-fast: it either returns a complete
// value or an *Error naming the argument and the expected shape.
//
// # Decision
//
// The raw text is decoded and classified by Kind, then exactly one strategy
// applies:
//
//  1. native: the value already has the descriptor's native kind (for
//     example a JSON object for a map descriptor) and decodes straight into T
//  2. single: a JSON object with many=false is built into one T
//  3. list: a JSON array with many=true is built element by element; any
//     element failure aborts the whole list
//  4. reject: every other combination, including arrays with many=false and
//     objects with many=true
//
// # Example Usage
//
//	card, err := coerce.One(raw, "card", coerce.Struct[korapay.Card]("Card", "number", "cvv"))
//	orders, err := coerce.Many(raw, "payouts", coerce.Struct[korapay.PayoutOrder]("PayoutOrder", "amount"))
package coerce

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a decoded JSON value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "invalid"
	}
}

// KindOf classifies a syntactically valid JSON value by its first token.
func KindOf(raw json.RawMessage) Kind {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return KindInvalid
	}

	switch c := trimmed[0]; {
	case c == '{':
		return KindObject
	case c == '[':
		return KindArray
	case c == '"':
		return KindString
	case c == 't' || c == 'f':
		return KindBool
	case c == 'n':
		return KindNull
	case c == '-' || (c >= '0' && c <= '9'):
		return KindNumber
	default:
		return KindInvalid
	}
}

// Request is one coercion: the raw text, the argument label used in error
// messages, and whether a list of the expected type is wanted.
type Request struct {
	Raw   string
	Label string
	Many  bool
}

// Parse runs a coercion request against desc. With Many unset the result
// holds exactly one element.
func Parse[T any](req Request, desc Descriptor[T]) ([]T, error) {
	raw := json.RawMessage(strings.TrimSpace(req.Raw))
	if !json.Valid(raw) {
		return nil, newError(req, desc, errors.New("not valid JSON"))
	}

	kind := KindOf(raw)

	switch {
	case !req.Many && desc.Native != KindInvalid && kind == desc.Native:
		var value T
		if err := decodeStrict(raw, &value); err != nil {
			return nil, newError(req, desc, err)
		}
		return []T{value}, nil

	case !req.Many && kind == KindObject:
		value, err := desc.build(raw)
		if err != nil {
			return nil, newError(req, desc, err)
		}
		return []T{value}, nil

	case req.Many && kind == KindArray:
		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, newError(req, desc, err)
		}

		values := make([]T, 0, len(elements))
		for i, element := range elements {
			value, err := desc.build(element)
			if err != nil {
				return nil, newError(req, desc, fmt.Errorf("element %d: %w", i, err))
			}
			values = append(values, value)
		}
		return values, nil

	default:
		want := KindObject
		if req.Many {
			want = KindArray
		}
		return nil, newError(req, desc, fmt.Errorf("got a JSON %s, want a JSON %s", kind, want))
	}
}

// One coerces raw into a single T.
func One[T any](raw, label string, desc Descriptor[T]) (T, error) {
	values, err := Parse(Request{Raw: raw, Label: label}, desc)
	if err != nil {
		var zero T
		return zero, err
	}
	return values[0], nil
}

// Many coerces raw into a list of T, preserving input order.
func Many[T any](raw, label string, desc Descriptor[T]) ([]T, error) {
	return Parse(Request{Raw: raw, Label: label, Many: true}, desc)
}

// decodeStrict decodes raw into v, rejecting unknown object fields and
// keeping numbers exact.
func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	return dec.Decode(v)
}

// Error reports a failed coercion. It never carries a partial value.
type Error struct {
	Label   string
	Type    string
	Many    bool
	Example string
	Err     error
}

func (e *Error) Error() string {
	shape := fmt.Sprintf("`%s`", e.Type)
	if e.Many {
		shape = "`list` of " + shape
	}

	msg := fmt.Sprintf("unable to parse value in `%s` option or argument, expects a json decodable string that can be parsed into a %s model: %v",
		e.Label, shape, e.Err)
	if e.Example != "" {
		example := e.Example
		if e.Many {
			example = "[" + example + "]"
		}
		msg += "\nexample: " + example
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError[T any](req Request, desc Descriptor[T], err error) *Error {
	return &Error{
		Label:   req.Label,
		Type:    desc.Name,
		Many:    req.Many,
		Example: desc.Example,
		Err:     err,
	}
}
