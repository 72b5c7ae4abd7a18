// Package commands declares the Korapay payment commands and the config
// group.
//
// Each payment command maps one-to-one onto a korapay.Provider method.
// Required parameters are positional, in the provider's order; optional
// ones are flags. Parameters holding nested values take JSON text.
package commands

import (
	"context"
	"slices"

	"github.com/gray-adeyi/korapay-cli/internal/dispatch"
	"github.com/gray-adeyi/korapay-cli/pkg/coerce"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
)

// Payments returns every payment command.
func Payments() []dispatch.Command {
	return slices.Concat(chargeCommands(), accountCommands(), payoutCommands())
}

// Structured argument types.
var (
	cardType = coerce.Struct[korapay.Card]("Card", "number", "cvv").
		WithExample(`{"name":"Test Cards","number":"5130000052131820","cvv":"419","expiry_month":"12","expiry_year":"32","pin":"0000"}`)

	authorizationType = coerce.Struct[korapay.Authorization]("Authorization").
		WithExample(`{"pin":"0000"}`)

	metadataType = coerce.Map("dict").WithExample(`{"order_id":"ord_123"}`)

	channelType = coerce.Enum("PaymentChannel", korapay.PaymentChannels...).WithExample(`"card"`)

	payoutType = coerce.Struct[korapay.PayoutOrder]("PayoutOrder", "amount").
		WithExample(`{"reference":"po_1","amount":1000,"bank_code":"033","account_number":"0000000000","customer_email":"jane@example.com"}`)
)

func text(name, usage string) dispatch.Param {
	return dispatch.Param{Name: name, Usage: usage, Type: dispatch.TypeString}
}

func number(name, usage string) dispatch.Param {
	return dispatch.Param{Name: name, Usage: usage, Type: dispatch.TypeNumber}
}

func flag(name, usage string) dispatch.Param {
	return dispatch.Param{Name: name, Usage: usage, Type: dispatch.TypeBool}
}

func structured(name, usage string) dispatch.Param {
	return dispatch.Param{Name: name, Usage: usage, Type: dispatch.TypeString, JSON: true}
}

func enum[T ~string](name, usage string, values []T) dispatch.Param {
	return dispatch.Param{Name: name, Usage: usage, Type: dispatch.TypeEnum, Values: korapay.Strings(values)}
}

var (
	referenceArg   = text("reference", "Unique reference for the transaction")
	transactionArg = text("transaction_reference", "Reference of an existing transaction")
	amountArg      = number("amount", "Amount to charge or pay out")
	currencyArg    = enum("currency", "Transaction currency", korapay.Currencies)
	countryArg     = enum("country", "Country code", korapay.Countries)
	emailArg       = text("customer_email", "Customer's email address")
	metadataFlag   = structured("metadata", "Up to 5 key-value pairs attached to the transaction")
)

// keyed is the shape of every provider method that takes a single
// identifier.
type keyed func(p korapay.Provider, ctx context.Context, key string) (*korapay.Response, error)

// lookup declares a command that passes one string argument to method.
func lookup(name, short, long string, arg dispatch.Param, method keyed) dispatch.Command {
	return dispatch.Command{
		Name:  name,
		Short: short,
		Long:  long,
		Args:  []dispatch.Param{arg},
		Bind: func(in *dispatch.Input) (dispatch.Call, error) {
			key := in.String(arg.Name)
			return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
				return method(p, ctx, key)
			}, nil
		},
	}
}

// call adapts a request value and a provider method into a dispatch.Call.
func call[R any](req R, method func(p korapay.Provider, ctx context.Context, req R) (*korapay.Response, error)) dispatch.Call {
	return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
		return method(p, ctx, req)
	}
}
