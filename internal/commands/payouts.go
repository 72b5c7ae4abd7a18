package commands

import (
	"github.com/gray-adeyi/korapay-cli/internal/dispatch"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
)

func payoutCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:  "payout-to-bank-account",
			Short: "Send a single disbursement to a bank account",
			Args: []dispatch.Param{
				referenceArg,
				amountArg,
				currencyArg,
				text("bank_code", "Recipient's bank code"),
				text("account_number", "Recipient's account number"),
				emailArg,
			},
			Flags: []dispatch.Param{
				text("narration", "Transaction description"),
				text("customer_name", "Recipient's name"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				return call(korapay.BankPayoutRequest{
					Reference:     in.String("reference"),
					Amount:        in.Float("amount"),
					Currency:      dispatch.Value[korapay.Currency](in, "currency"),
					BankCode:      in.String("bank_code"),
					AccountNumber: in.String("account_number"),
					CustomerEmail: in.String("customer_email"),
					Narration:     in.String("narration"),
					CustomerName:  in.String("customer_name"),
				}, korapay.Provider.PayoutToBankAccount), nil
			},
		},
		{
			Name:  "payout-to-mobile-money",
			Short: "Send a single disbursement to a mobile money wallet",
			Args: []dispatch.Param{
				referenceArg,
				amountArg,
				currencyArg,
				enum("mobile_money_operator", "Wallet operator", korapay.MobileMoneyOperators),
				text("mobile_number", "Recipient's wallet number"),
				emailArg,
			},
			Flags: []dispatch.Param{
				text("customer_name", "Recipient's name"),
				text("narration", "Transaction description"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				return call(korapay.MobileMoneyPayoutRequest{
					Reference:     in.String("reference"),
					Amount:        in.Float("amount"),
					Currency:      dispatch.Value[korapay.Currency](in, "currency"),
					Operator:      dispatch.Value[korapay.MobileMoneyOperator](in, "mobile_money_operator"),
					MobileNumber:  in.String("mobile_number"),
					CustomerEmail: in.String("customer_email"),
					CustomerName:  in.String("customer_name"),
					Narration:     in.String("narration"),
				}, korapay.Provider.PayoutToMobileMoney), nil
			},
		},
		{
			Name:  "bulk-payout-to-bank-account",
			Short: "Send a batch of disbursements to bank accounts",
			Args: []dispatch.Param{
				text("batch_reference", "Unique reference for the batch"),
				text("description", "Batch description"),
				flag("merchant_bears_cost", "Charge the fee to the merchant (true or false)"),
				currencyArg,
				structured("payouts", "List of payout orders"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				payouts, err := dispatch.DecodeMany(in, "payouts", payoutType)
				if err != nil {
					return nil, err
				}

				return call(korapay.BulkPayoutRequest{
					BatchReference:    in.String("batch_reference"),
					Description:       in.String("description"),
					MerchantBearsCost: in.Bool("merchant_bears_cost"),
					Currency:          dispatch.Value[korapay.Currency](in, "currency"),
					Payouts:           payouts,
				}, korapay.Provider.BulkPayoutToBankAccount), nil
			},
		},
		lookup("get-payouts", "Retrieve a bulk payout", "",
			text("bulk_reference", "Reference of the batch"), korapay.Provider.GetPayouts),
		lookup("get-bulk-transaction", "Retrieve the transactions in a bulk payout", "",
			text("bulk_reference", "Reference of the batch"), korapay.Provider.GetBulkTransaction),
		lookup("get-payout-transaction", "Retrieve the status and details of a payout",
			"Retrieve the status and details of a payout by its reference, for example to verify it settled.",
			transactionArg, korapay.Provider.GetPayoutTransaction),
	}
}
