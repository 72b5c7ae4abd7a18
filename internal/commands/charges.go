package commands

import (
	"context"

	"github.com/gray-adeyi/korapay-cli/internal/dispatch"
	"github.com/gray-adeyi/korapay-cli/pkg/korapay"
)

func chargeCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:  "charge-via-card",
			Short: "Accept debit card payments",
			Args: []dispatch.Param{
				referenceArg,
				text("customer_name", "Customer's name"),
				emailArg,
				structured("card", "Card details"),
				amountArg,
				currencyArg,
			},
			Flags: []dispatch.Param{
				text("redirect_url", "URL to redirect the customer to after payment"),
				metadataFlag,
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				card, err := dispatch.Decode(in, "card", cardType)
				if err != nil {
					return nil, err
				}
				metadata, err := dispatch.Decode(in, "metadata", metadataType)
				if err != nil {
					return nil, err
				}

				return call(korapay.CardChargeRequest{
					Reference:     in.String("reference"),
					CustomerName:  in.String("customer_name"),
					CustomerEmail: in.String("customer_email"),
					Card:          card,
					Amount:        in.Float("amount"),
					Currency:      dispatch.Value[korapay.Currency](in, "currency"),
					RedirectURL:   in.String("redirect_url"),
					Metadata:      metadata,
				}, korapay.Provider.ChargeViaCard), nil
			},
		},
		{
			Name:  "authorize-card-charge",
			Short: "Authorize a pending charge on a debit card",
			Long: `Authorize a pending charge on a debit card.

The authorization holds whichever value the charge asked for: pin, otp,
avs or phone.`,
			Args: []dispatch.Param{
				transactionArg,
				structured("authorization", "Authorization details"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				authorization, err := dispatch.Decode(in, "authorization", authorizationType)
				if err != nil {
					return nil, err
				}
				reference := in.String("transaction_reference")

				return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
					return p.AuthorizeCardCharge(ctx, reference, authorization)
				}, nil
			},
		},
		lookup("resend-card-otp", "Resend the one time password for a pending card charge", "",
			transactionArg, korapay.Provider.ResendCardOTP),
		{
			Name:  "charge-via-bank-transfer",
			Short: "Accept payments via bank transfer",
			Args: []dispatch.Param{
				referenceArg,
				emailArg,
				amountArg,
				currencyArg,
			},
			Flags: []dispatch.Param{
				text("customer_name", "Customer's name"),
				text("account_name", "Name shown on the temporary account"),
				text("narration", "Transaction description"),
				text("notification_url", "Webhook URL for this transaction"),
				flag("merchant_bears_cost", "Charge the fee to the merchant instead of the customer"),
				metadataFlag,
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				metadata, err := dispatch.Decode(in, "metadata", metadataType)
				if err != nil {
					return nil, err
				}

				return call(korapay.BankTransferChargeRequest{
					Reference:         in.String("reference"),
					CustomerEmail:     in.String("customer_email"),
					Amount:            in.Float("amount"),
					Currency:          dispatch.Value[korapay.Currency](in, "currency"),
					CustomerName:      in.String("customer_name"),
					AccountName:       in.String("account_name"),
					Narration:         in.String("narration"),
					NotificationURL:   in.String("notification_url"),
					MerchantBearsCost: in.Bool("merchant_bears_cost"),
					Metadata:          metadata,
				}, korapay.Provider.ChargeViaBankTransfer), nil
			},
		},
		{
			Name:  "charge-via-mobile-money",
			Short: "Accept payments via mobile money",
			Long: `Accept payments via mobile money.

Korapay supports mobile money collections in Kenyan Shillings (M-Pesa, Airtel,
Equitel) and Ghanaian Cedis (MTN MoMo, AirtelTigo).`,
			Args: []dispatch.Param{
				referenceArg,
				emailArg,
				amountArg,
				text("mobile_money_number", "Wallet phone number"),
				currencyArg,
			},
			Flags: []dispatch.Param{
				text("notification_url", "Webhook URL for this transaction"),
				text("customer_name", "Customer's name"),
				text("redirect_url", "URL to redirect the customer to after payment"),
				flag("merchant_bears_cost", "Charge the fee to the merchant instead of the customer"),
				text("description", "Transaction description"),
				metadataFlag,
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				metadata, err := dispatch.Decode(in, "metadata", metadataType)
				if err != nil {
					return nil, err
				}

				return call(korapay.MobileMoneyChargeRequest{
					Reference:         in.String("reference"),
					CustomerEmail:     in.String("customer_email"),
					Amount:            in.Float("amount"),
					MobileMoneyNumber: in.String("mobile_money_number"),
					Currency:          dispatch.Value[korapay.Currency](in, "currency"),
					NotificationURL:   in.String("notification_url"),
					CustomerName:      in.String("customer_name"),
					RedirectURL:       in.String("redirect_url"),
					MerchantBearsCost: in.Bool("merchant_bears_cost"),
					Description:       in.String("description"),
					Metadata:          metadata,
				}, korapay.Provider.ChargeViaMobileMoney), nil
			},
		},
		{
			Name:  "authorize-mobile-money-charge",
			Short: "Authorize a mobile money charge with the OTP sent to the wallet owner",
			Long: `Authorize a mobile money charge with the OTP sent to the wallet owner.

Use this when the charge response has auth_model OTP. After the OTP is
accepted, the wallet owner receives an STK prompt to enter their PIN.`,
			Args: []dispatch.Param{
				referenceArg,
				text("token", "OTP received by the wallet owner"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				reference, token := in.String("reference"), in.String("token")
				return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
					return p.AuthorizeMobileMoneyCharge(ctx, reference, token)
				}, nil
			},
		},
		lookup("resend-mobile-money-otp", "Resend the OTP for a pending mobile money charge",
			"Resend the OTP for a pending mobile money charge when the first one expired or never arrived.",
			transactionArg, korapay.Provider.ResendMobileMoneyOTP),
		lookup("resend-stk", "Resend the STK prompt", "",
			transactionArg, korapay.Provider.ResendSTK),
		{
			Name:  "authorize-stk",
			Short: "Authorize an STK prompt in the sandbox",
			Args: []dispatch.Param{
				referenceArg,
				text("pin", "Wallet PIN"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				reference, pin := in.String("reference"), in.String("pin")
				return func(ctx context.Context, p korapay.Provider) (*korapay.Response, error) {
					return p.AuthorizeSTK(ctx, reference, pin)
				}, nil
			},
		},
		{
			Name:  "initiate-charge",
			Short: "Initiate a checkout charge across several payment channels",
			Args: []dispatch.Param{
				referenceArg,
				amountArg,
				currencyArg,
				text("narration", "Transaction description"),
				text("notification_url", "Webhook URL for this transaction"),
				emailArg,
			},
			Flags: []dispatch.Param{
				text("customer_name", "Customer's name"),
				structured("channels", "List of payment channels to offer"),
				enum("default_channel", "Channel selected when checkout opens", korapay.PaymentChannels),
				text("redirect_url", "URL to redirect the customer to after payment"),
			},
			Bind: func(in *dispatch.Input) (dispatch.Call, error) {
				channels, err := dispatch.DecodeMany(in, "channels", channelType)
				if err != nil {
					return nil, err
				}

				return call(korapay.InitiateChargeRequest{
					Reference:       in.String("reference"),
					Amount:          in.Float("amount"),
					Currency:        dispatch.Value[korapay.Currency](in, "currency"),
					Narration:       in.String("narration"),
					NotificationURL: in.String("notification_url"),
					CustomerEmail:   in.String("customer_email"),
					CustomerName:    in.String("customer_name"),
					Channels:        channels,
					DefaultChannel:  dispatch.Value[korapay.PaymentChannel](in, "default_channel"),
					RedirectURL:     in.String("redirect_url"),
				}, korapay.Provider.InitiateCharge), nil
			},
		},
		lookup("get-charge", "Retrieve a charge", "",
			referenceArg, korapay.Provider.GetCharge),
	}
}
