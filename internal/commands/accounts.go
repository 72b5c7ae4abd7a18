package commands

import (
	"context"

	"github.com/gray-adeyi/korapay-cli/internal/dispatch"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
)

func accountCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:  "create-virtual-bank-account",
			Short: "Create a virtual bank account",
			Long: `Create a virtual bank account.

A virtual bank account is a dedicated account number that can receive
payments from a customer any number of times.`,
			Args: []dispatch.Param{
				text("account_name", "Name on the account"),
				text("account_reference", "Unique reference for the account"),
				text("bank_code", "Code of the issuing bank"),
				text("customer_name", "Customer's name"),
				text("bvn", "Customer's bank verification number"),
			},
			Flags: []dispatch.Param{
				text("customer_email", "Customer's email address"),
				text("nin", "Customer's national identification number"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				return call(korapay.VirtualBankAccountRequest{
					AccountName:      in.String("account_name"),
					AccountReference: in.String("account_reference"),
					BankCode:         in.String("bank_code"),
					CustomerName:     in.String("customer_name"),
					BVN:              in.String("bvn"),
					CustomerEmail:    in.String("customer_email"),
					NIN:              in.String("nin"),
				}, korapay.Provider.CreateVirtualBankAccount), nil
			},
		},
		lookup("get-virtual-bank-account", "Retrieve a virtual bank account", "",
			text("account_reference", "Reference used when the account was created"),
			korapay.Provider.GetVirtualBankAccount),
		lookup("get-virtual-bank-account-transactions", "Retrieve the transactions of a virtual bank account", "",
			text("account_number", "Virtual account number"),
			korapay.Provider.GetVirtualBankAccountTransactions),
		{
			Name:  "credit-sandbox-virtual-bank-account",
			Short: "Credit a virtual bank account in the sandbox",
			Args: []dispatch.Param{
				text("account_number", "Virtual account number"),
				amountArg,
				currencyArg,
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				account := in.String("account_number")
				amount := in.Float("amount")
				currency := dispatch.Value[korapay.Currency](in, "currency")

				return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
					return p.CreditSandboxVirtualBankAccount(ctx, account, amount, currency)
				}, nil
			},
		},
		{
			Name:  "resolve-bank-account",
			Short: "Resolve a bank account to its holder's name",
			Args: []dispatch.Param{
				text("bank_code", "Bank code"),
				text("account_number", "Account number"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				bank, account := in.String("bank_code"), in.String("account_number")
				return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
					return p.ResolveBankAccount(ctx, bank, account)
				}, nil
			},
		},
		{
			Name:  "get-balances",
			Short: "Retrieve your pending and available balances",
			Bind: func(*dispatch.Input) (dispatch.Call, error) {
				return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
					return p.GetBalances(ctx)
				}, nil
			},
		},
		{
			Name:  "get-banks",
			Short: "List the banks Korapay supports in a country",
			Args:  []dispatch.Param{countryArg},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				return call(dispatch.Value[korapay.Country](in, "country"), korapay.Provider.GetBanks), nil
			},
		},
		{
			Name:  "get-mmo",
			Short: "List the mobile money operators Korapay supports in a country",
			Args:  []dispatch.Param{countryArg},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				return call(dispatch.Value[korapay.Country](in, "country"), korapay.Provider.GetMMO), nil
			},
		},
	}
}
