package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gray-adeyi/korapay-cli/internal/pipeline"
	"github.com/gray-adeyi/korapay-cli/pkg/coerce"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
	"github.com/gray-adeyi/korapay-cli/pkg/settings"
)

// stubProvider counts calls; methods not overridden panic through the nil
// embedded interface.
type stubProvider struct {
	korapay.Provider
	calls   int
	country korapay.Country
	card    korapay.Card
	charge  korapay.CardChargeRequest
	err     error
}

func (s *stubProvider) GetBalances(context.Context) (*korapay.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &korapay.Response{
		Status:  true,
		Message: "Successful",
		Data:    map[string]any{"NGN": map[string]any{"available_balance": json.Number("100")}},
	}, nil
}

func (s *stubProvider) GetBanks(_ context.Context, country korapay.Country) (*korapay.Response, error) {
	s.calls++
	s.country = country
	return &korapay.Response{Status: true, Message: "ok", Data: []any{}}, nil
}

func (s *stubProvider) ChargeViaCard(_ context.Context, req korapay.CardChargeRequest) (*korapay.Response, error) {
	s.calls++
	s.card = req.Card
	s.charge = req
	return &korapay.Response{Status: true, Message: "ok", Data: map[string]any{"status": "processing"}}, nil
}

var testCommands = []Command{
	{
		Name:  "get-balances",
		Short: "Retrieve balances",
		Bind: func(*Input) (Call, error) {
			return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
				return p.GetBalances(ctx)
			}, nil
		},
	},
	{
		Name:  "get-banks",
		Short: "List banks",
		Args: []Param{
			{Name: "country", Type: TypeEnum, Values: korapay.Strings(korapay.Countries)},
		},
		Bind: func(in *Input) (Call, error) {
			country := Value[korapay.Country](in, "country")
			return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
				return p.GetBanks(ctx, country)
			}, nil
		},
	},
	{
		Name:  "charge",
		Short: "Charge a card",
		Args: []Param{
			{Name: "card", Usage: "card details", JSON: true},
			{Name: "amount", Type: TypeNumber},
		},
		Flags: []Param{
			{Name: "currency", Type: TypeEnum, Values: korapay.Strings(korapay.Currencies)},
			{Name: "merchant_bears_cost", Type: TypeBool},
			{Name: "fee", Type: TypeNumber},
			{Name: "metadata", JSON: true},
		},
		Bind: func(in *Input) (Call, error) {
			card, err := Decode(in, "card", coerce.Struct[korapay.Card]("Card", "number", "cvv"))
			if err != nil {
				return nil, err
			}
			metadata, err := Decode(in, "metadata", coerce.Map("dict"))
			if err != nil {
				return nil, err
			}
			req := korapay.CardChargeRequest{Card: card, Amount: in.Float("amount"), Metadata: metadata}
			return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
				return p.ChargeViaCard(ctx, req)
			}, nil
		},
	},
}

type harness struct {
	root     *cobra.Command
	out      bytes.Buffer
	provider *stubProvider
	store    *settings.Service
}

func newHarness(t *testing.T, withCredentials bool) *harness {
	t.Helper()

	h := &harness{
		provider: &stubProvider{},
		store:    settings.NewService(settings.NewMemoryBackend()),
	}
	if withCredentials {
		require.NoError(t, h.store.SetAll(context.Background(), settings.Record{
			settings.PublicKey:     "pk_test_1",
			settings.SecretKey:     "sk_test_1",
			settings.EncryptionKey: "0123456789abcdef0123456789abcdef",
		}))
	}

	rt := &Runtime{
		Settings: h.store,
		NewProvider: func(settings.Credentials) (korapay.Provider, error) {
			return h.provider, nil
		},
		Printer: pipeline.NewPrinter(&h.out, nil),
	}

	h.root = &cobra.Command{Use: "korapay", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, Register(h.root, rt, testCommands...))
	return h
}

func (h *harness) run(args ...string) error {
	h.root.SetArgs(args)
	h.root.SetOut(&bytes.Buffer{})
	h.root.SetErr(&bytes.Buffer{})
	return h.root.Execute()
}

func requireKind(t *testing.T, err error, want pipeline.Kind) {
	t.Helper()
	var failure *pipeline.Failure
	require.True(t, errors.As(err, &failure), "expected a pipeline failure, got %v", err)
	assert.Equal(t, want, failure.Kind)
	assert.Equal(t, 1, pipeline.ExitCode(err))
}

func TestRegister_InjectsJSONFlag(t *testing.T) {
	h := newHarness(t, true)

	for _, c := range h.root.Commands() {
		assert.NotNil(t, c.Flags().Lookup(JSONFlag), "command %s has no --json flag", c.Name())
	}
}

func TestRun_MissingCredentialsNeverCallsProvider(t *testing.T) {
	h := newHarness(t, false)

	err := h.run("get-balances")
	requireKind(t, err, pipeline.KindConfig)
	assert.Contains(t, err.Error(), settings.PublicKey)
	assert.Zero(t, h.provider.calls)
	assert.Empty(t, h.out.String())
}

func TestRun_JSONMode(t *testing.T) {
	h := newHarness(t, true)

	require.NoError(t, h.run("get-balances", "--json"))
	assert.Equal(t, `{"NGN":{"available_balance":100}}`+"\n", h.out.String())
	assert.Equal(t, 1, h.provider.calls)
}

func TestRun_HumanMode(t *testing.T) {
	h := newHarness(t, true)

	require.NoError(t, h.run("get-balances"))
	assert.Equal(t, "status: true\nmessage: Successful\ndata:\n  NGN:\n    available_balance: 100\n", h.out.String())
}

func TestRun_EnumArgument(t *testing.T) {
	h := newHarness(t, true)

	require.NoError(t, h.run("get-banks", "KE"))
	assert.Equal(t, korapay.CountryKenya, h.provider.country)

	err := h.run("get-banks", "XX")
	requireKind(t, err, pipeline.KindInput)
	assert.Contains(t, err.Error(), "`country`")
	assert.Equal(t, 1, h.provider.calls)
}

func TestRun_InputFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "wrong argument count",
			args:    []string{"get-banks"},
			wantMsg: "accepts 1 arg(s)",
		},
		{
			name:    "bad number",
			args:    []string{"charge", `{"number":"4111","cvv":"123"}`, "ten"},
			wantMsg: "argument `amount`: expected a number",
		},
		{
			name:    "not a number argument",
			args:    []string{"charge", `{"number":"4111","cvv":"123"}`, "NaN"},
			wantMsg: "argument `amount`: expected a number",
		},
		{
			name:    "infinite argument",
			args:    []string{"charge", `{"number":"4111","cvv":"123"}`, "--", "-Inf"},
			wantMsg: "argument `amount`: expected a number",
		},
		{
			name:    "infinite flag",
			args:    []string{"charge", `{"number":"4111","cvv":"123"}`, "10", "--fee", "Inf"},
			wantMsg: "flag --fee: expected a number",
		},
		{
			name:    "bad enum flag",
			args:    []string{"charge", `{"number":"4111","cvv":"123"}`, "10", "--currency", "BTC"},
			wantMsg: "flag --currency: value 'BTC' not in allowed values",
		},
		{
			name:    "malformed structured argument",
			args:    []string{"charge", `{"number":`, "10"},
			wantMsg: "unable to parse value in `card` option or argument",
		},
		{
			name:    "list for a single object",
			args:    []string{"charge", `[{"number":"4111","cvv":"123"}]`, "10"},
			wantMsg: "want a JSON object",
		},
		{
			name:    "missing required field",
			args:    []string{"charge", `{"number":"4111"}`, "10"},
			wantMsg: "missing required field(s): cvv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, true)

			err := h.run(tt.args...)
			requireKind(t, err, pipeline.KindInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, h.provider.calls)
			assert.Empty(t, h.out.String())
		})
	}
}

func TestRun_StructuredArgument(t *testing.T) {
	h := newHarness(t, true)

	require.NoError(t, h.run("charge", `{"number":"4111","cvv":"123"}`, "10", "--currency", "NGN", "--merchant-bears-cost"))
	assert.Equal(t, korapay.Card{Number: "4111", CVV: "123"}, h.provider.card)
}

func TestRun_EmptyStructuredFlagIsUnset(t *testing.T) {
	h := newHarness(t, true)

	require.NoError(t, h.run("charge", `{"number":"4111","cvv":"123"}`, "10", "--metadata", ""))
	assert.Nil(t, h.provider.charge.Metadata)

	require.NoError(t, h.run("charge", `{"number":"4111","cvv":"123"}`, "10", "--metadata", `{"order":"o1"}`))
	assert.Equal(t, map[string]any{"order": "o1"}, h.provider.charge.Metadata)
	assert.Equal(t, 2, h.provider.calls)
}

func TestRun_ProviderFailurePrintsNothing(t *testing.T) {
	h := newHarness(t, true)
	h.provider.err = &korapay.ClientError{StatusCode: 401, Message: "Invalid authorization key"}

	err := h.run("get-balances", "--json")
	requireKind(t, err, pipeline.KindProvider)
	assert.Contains(t, err.Error(), "Invalid authorization key")
	assert.Empty(t, h.out.String())
}

func TestRun_ProviderFactoryFailure(t *testing.T) {
	h := newHarness(t, true)
	rt := &Runtime{
		Settings: h.store,
		NewProvider: func(settings.Credentials) (korapay.Provider, error) {
			return nil, errors.New("bad base url")
		},
		Printer: pipeline.NewPrinter(&h.out, nil),
	}
	root := &cobra.Command{Use: "korapay", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, Register(root, rt, testCommands[0]))

	root.SetArgs([]string{"get-balances"})
	requireKind(t, root.Execute(), pipeline.KindConfig)
}

func TestCommand_Help(t *testing.T) {
	c := testCommands[2]

	assert.Equal(t, "charge <card> <amount>", c.use())

	long := c.long()
	assert.Contains(t, long, "Arguments:")
	assert.Contains(t, long, "card    string  card details (JSON)")
	assert.Contains(t, long, "amount  number")
	assert.Equal(t, "Retrieve balances", testCommands[0].long())
}

func TestCommand_NilBind(t *testing.T) {
	_, err := Command{Name: "empty"}.bind(NewInput(nil))
	assert.EqualError(t, err, "command empty has no handler")
}

func TestInput(t *testing.T) {
	in := NewInput(map[string]any{"name": "x", "amount": 2.5, "flag": true, "country": "GH"})

	assert.True(t, in.Has("name"))
	assert.False(t, in.Has("missing"))
	assert.Equal(t, "x", in.String("name"))
	assert.Equal(t, 2.5, in.Float("amount"))
	assert.True(t, in.Bool("flag"))
	assert.Equal(t, korapay.CountryGhana, Value[korapay.Country](in, "country"))

	meta, err := Decode(in, "metadata", coerce.Map("dict"))
	require.NoError(t, err)
	assert.Nil(t, meta)

	channels, err := DecodeMany(in, "channels", coerce.Enum("PaymentChannel", korapay.PaymentChannels...))
	require.NoError(t, err)
	assert.Nil(t, channels)
}

func TestParseArg(t *testing.T) {
	v, err := parseArg(Param{Name: "merchant_bears_cost", Type: TypeBool}, "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = parseArg(Param{Name: "merchant_bears_cost", Type: TypeBool}, "maybe")
	assert.EqualError(t, err, "invalid value \"maybe\" for argument `merchant_bears_cost`: expected true or false")

	v, err = parseArg(Param{Name: "amount", Type: TypeNumber}, " 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	for _, raw := range []string{"NaN", "Inf", "-Inf", "+Infinity"} {
		_, err = parseArg(Param{Name: "amount", Type: TypeNumber}, raw)
		assert.EqualError(t, err, fmt.Sprintf("invalid value %q for argument `amount`: expected a number", raw))
	}
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "redirect-url", flagName("redirect_url"))
	assert.Equal(t, "default-channel", flagName("Default Channel"))
}
