package korapay

import "slices"

// Currency is an ISO 4217 code accepted by Korapay.
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyKES Currency = "KES"
	CurrencyGHS Currency = "GHS"
	CurrencyZAR Currency = "ZAR"
	CurrencyUSD Currency = "USD"
	CurrencyXAF Currency = "XAF"
	CurrencyXOF Currency = "XOF"
	CurrencyEGP Currency = "EGP"
)

// Currencies lists every legal Currency.
var Currencies = []Currency{
	CurrencyNGN, CurrencyKES, CurrencyGHS, CurrencyZAR,
	CurrencyUSD, CurrencyXAF, CurrencyXOF, CurrencyEGP,
}

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool { return slices.Contains(Currencies, c) }

// Country is an ISO 3166 alpha-2 code used to filter banks and operators.
type Country string

const (
	CountryNigeria     Country = "NG"
	CountryKenya       Country = "KE"
	CountryGhana       Country = "GH"
	CountrySouthAfrica Country = "ZA"
	CountryCameroon    Country = "CM"
	CountryIvoryCoast  Country = "CI"
	CountryEgypt       Country = "EG"
)

// Countries lists every legal Country.
var Countries = []Country{
	CountryNigeria, CountryKenya, CountryGhana, CountrySouthAfrica,
	CountryCameroon, CountryIvoryCoast, CountryEgypt,
}

// Valid reports whether c is a known country.
func (c Country) Valid() bool { return slices.Contains(Countries, c) }

// PaymentChannel is a checkout channel offered to a customer.
type PaymentChannel string

const (
	ChannelCard         PaymentChannel = "card"
	ChannelBankTransfer PaymentChannel = "bank_transfer"
	ChannelMobileMoney  PaymentChannel = "mobile_money"
	ChannelPayWithBank  PaymentChannel = "pay_with_bank"
)

// PaymentChannels lists every legal PaymentChannel.
var PaymentChannels = []PaymentChannel{
	ChannelCard, ChannelBankTransfer, ChannelMobileMoney, ChannelPayWithBank,
}

// Valid reports whether c is a known channel.
func (c PaymentChannel) Valid() bool { return slices.Contains(PaymentChannels, c) }

// MobileMoneyOperator identifies a wallet provider for mobile money payouts.
type MobileMoneyOperator string

const (
	OperatorSafaricomKE MobileMoneyOperator = "safaricom-ke"
	OperatorAirtelKE    MobileMoneyOperator = "airtel-ke"
	OperatorEquitelKE   MobileMoneyOperator = "equitel-ke"
	OperatorMTNGH       MobileMoneyOperator = "mtn-gh"
	OperatorAirtelTigo  MobileMoneyOperator = "airteltigo-gh"
	OperatorVodafoneGH  MobileMoneyOperator = "vodafone-gh"
	OperatorMTNCM       MobileMoneyOperator = "mtn-cm"
	OperatorOrangeCM    MobileMoneyOperator = "orange-cm"
	OperatorMTNCI       MobileMoneyOperator = "mtn-ci"
	OperatorOrangeCI    MobileMoneyOperator = "orange-ci"
	OperatorMoovCI      MobileMoneyOperator = "moov-ci"
	OperatorWaveCI      MobileMoneyOperator = "wave-ci"
)

// MobileMoneyOperators lists every legal MobileMoneyOperator.
var MobileMoneyOperators = []MobileMoneyOperator{
	OperatorSafaricomKE, OperatorAirtelKE, OperatorEquitelKE,
	OperatorMTNGH, OperatorAirtelTigo, OperatorVodafoneGH,
	OperatorMTNCM, OperatorOrangeCM,
	OperatorMTNCI, OperatorOrangeCI, OperatorMoovCI, OperatorWaveCI,
}

// Valid reports whether o is a known operator.
func (o MobileMoneyOperator) Valid() bool { return slices.Contains(MobileMoneyOperators, o) }

// Strings converts a list of string-backed enum values to plain strings.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
