package coerce

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCard struct {
	Name   string `json:"name,omitempty"`
	Number string `json:"number"`
	CVV    string `json:"cvv"`
}

type testPayout struct {
	Reference string  `json:"reference,omitempty"`
	Amount    float64 `json:"amount"`
}

type testChannel string

var (
	cardType    = Struct[testCard]("Card", "number", "cvv")
	payoutType  = Struct[testPayout]("PayoutOrder", "amount")
	channelType = Enum[testChannel]("PaymentChannel", "card", "bank_transfer")
	metadata    = Map("dict")
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{`{"a":1}`, KindObject},
		{`  [1,2]`, KindArray},
		{`"x"`, KindString},
		{`-1.5`, KindNumber},
		{`42`, KindNumber},
		{`true`, KindBool},
		{`false`, KindBool},
		{`null`, KindNull},
		{``, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(json.RawMessage(tt.raw)))
		})
	}
}

func TestOne_Card(t *testing.T) {
	card, err := One(`{"number":"4111","cvv":"123"}`, "card", cardType)
	require.NoError(t, err)
	assert.Equal(t, testCard{Number: "4111", CVV: "123"}, card)
}

func TestOne_FieldsEqualMapping(t *testing.T) {
	raw := `{"name":"Ada Lovelace","number":"5188513618552975","cvv":"123"}`

	card, err := One(raw, "card", cardType)
	require.NoError(t, err)

	var mapping map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &mapping))
	assert.Equal(t, mapping["name"], card.Name)
	assert.Equal(t, mapping["number"], card.Number)
	assert.Equal(t, mapping["cvv"], card.CVV)
}

func TestMany_Payouts(t *testing.T) {
	payouts, err := Many(`[{"amount":10},{"amount":20}]`, "payouts", payoutType)
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	assert.Equal(t, 10.0, payouts[0].Amount)
	assert.Equal(t, 20.0, payouts[1].Amount)
}

func TestMany_PreservesOrder(t *testing.T) {
	payouts, err := Many(`[{"reference":"c","amount":3},{"reference":"a","amount":1},{"reference":"b","amount":2}]`, "payouts", payoutType)
	require.NoError(t, err)

	refs := make([]string, len(payouts))
	for i, p := range payouts {
		refs[i] = p.Reference
	}
	assert.Equal(t, []string{"c", "a", "b"}, refs)
}

func TestMany_EmptyArray(t *testing.T) {
	payouts, err := Many(`[]`, "payouts", payoutType)
	require.NoError(t, err)
	assert.Empty(t, payouts)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		many bool
		want string
	}{
		{name: "not json", raw: `{number: 4111}`, want: "not valid JSON"},
		{name: "empty text", raw: ``, want: "not valid JSON"},
		{name: "trailing garbage", raw: `{"number":"1","cvv":"2"} x`, want: "not valid JSON"},
		{name: "array for single", raw: `[{"number":"1","cvv":"2"}]`, want: "got a JSON array, want a JSON object"},
		{name: "object for many", raw: `{"number":"1","cvv":"2"}`, many: true, want: "got a JSON object, want a JSON array"},
		{name: "scalar", raw: `"4111"`, want: "got a JSON string"},
		{name: "null", raw: `null`, want: "got a JSON null"},
		{name: "unknown field", raw: `{"number":"1","cvv":"2","pan":"3"}`, want: "unknown field"},
		{name: "missing field", raw: `{"number":"1"}`, want: "missing required field(s): cvv"},
		{name: "null required field", raw: `{"number":"1","cvv":null}`, want: "missing required field(s): cvv"},
		{name: "wrong field type", raw: `{"number":4111,"cvv":"2"}`, want: "cannot unmarshal number"},
		{name: "bad element", raw: `[{"number":"1","cvv":"2"},{"number":"3"}]`, many: true, want: "element 1"},
		{name: "scalar element", raw: `[{"number":"1","cvv":"2"},5]`, many: true, want: "element 1: got a JSON number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Parse(Request{Raw: tt.raw, Label: "card", Many: tt.many}, cardType)
			require.Error(t, err)
			assert.Nil(t, values, "failures never return partial values")

			var coerceErr *Error
			require.True(t, errors.As(err, &coerceErr))
			assert.Equal(t, "card", coerceErr.Label)
			assert.Equal(t, "Card", coerceErr.Type)
			assert.Equal(t, tt.many, coerceErr.Many)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_ArrayAlwaysRejectedForSingle(t *testing.T) {
	inputs := []string{`[]`, `[{"amount":1}]`, `[1,2]`, `[[{"amount":1}]]`}
	for _, raw := range inputs {
		_, err := One(raw, "payouts", payoutType)
		assert.Error(t, err, raw)

		_, err = One(raw, "metadata", metadata)
		assert.Error(t, err, raw)
	}
}

func TestParse_ObjectAlwaysRejectedForMany(t *testing.T) {
	inputs := []string{`{}`, `{"amount":1}`, `{"a":{"b":1}}`}
	for _, raw := range inputs {
		_, err := Many(raw, "payouts", payoutType)
		assert.Error(t, err, raw)

		_, err = Many(raw, "metadata", metadata)
		assert.Error(t, err, raw)
	}
}

func TestMap_Native(t *testing.T) {
	value, err := One(`{"order_id":"abc","attempt":2,"nested":{"ok":true}}`, "metadata", metadata)
	require.NoError(t, err)

	assert.Equal(t, "abc", value["order_id"])
	assert.Equal(t, json.Number("2"), value["attempt"])
	assert.Equal(t, map[string]any{"ok": true}, value["nested"])
}

func TestMap_ManyBuildsEachElement(t *testing.T) {
	values, err := Many(`[{"a":1},{"b":2}]`, "items", metadata)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Contains(t, values[0], "a")
	assert.Contains(t, values[1], "b")
}

func TestEnum(t *testing.T) {
	channels, err := Many(`["card","bank_transfer"]`, "channels", channelType)
	require.NoError(t, err)
	assert.Equal(t, []testChannel{"card", "bank_transfer"}, channels)

	_, err = Many(`["card","cash"]`, "channels", channelType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"cash" is not one of: card, bank_transfer`)
	assert.Contains(t, err.Error(), "`list` of `PaymentChannel`")

	_, err = Many(`[{"channel":"card"}]`, "channels", channelType)
	assert.Error(t, err)
}

func TestError_Message(t *testing.T) {
	_, err := Many(`nope`, "payouts", payoutType.WithExample(`{"amount":100}`))
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "unable to parse value in `payouts` option or argument"))
	assert.Contains(t, msg, "`list` of `PayoutOrder` model")
	assert.Contains(t, msg, `example: [{"amount":100}]`)

	_, err = One(`nope`, "card", cardType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "into a `Card` model")
	assert.NotContains(t, err.Error(), "example:")
}
