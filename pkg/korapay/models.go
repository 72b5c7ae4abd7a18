package korapay

// Card is a debit card supplied for a card charge.
type Card struct {
	Name        string `json:"name,omitempty"`
	Number      string `json:"number"`
	CVV         string `json:"cvv"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
	Pin         string `json:"pin,omitempty"`
}

// AVS is address verification data for card authorization.
type AVS struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
	Address string `json:"address"`
	ZipCode string `json:"zip_code"`
}

// Authorization completes a pending card charge. Exactly one field is
// normally set, depending on the auth model the charge returned.
type Authorization struct {
	Pin   string `json:"pin,omitempty"`
	OTP   string `json:"otp,omitempty"`
	AVS   *AVS   `json:"avs,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PayoutOrder is one line item of a bulk bank payout.
type PayoutOrder struct {
	Reference     string  `json:"reference,omitempty"`
	Amount        float64 `json:"amount"`
	BankCode      string  `json:"bank_code,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	Narration     string  `json:"narration,omitempty"`
}

// Customer identifies the payer or payee.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// CardChargeRequest charges a debit card.
type CardChargeRequest struct {
	Reference     string
	CustomerName  string
	CustomerEmail string
	Card          Card
	Amount        float64
	Currency      Currency
	RedirectURL   string
	Metadata      map[string]any
}

// BankTransferChargeRequest collects a payment into a temporary account.
type BankTransferChargeRequest struct {
	Reference         string
	CustomerEmail     string
	Amount            float64
	Currency          Currency
	CustomerName      string
	AccountName       string
	Narration         string
	NotificationURL   string
	MerchantBearsCost bool
	Metadata          map[string]any
}

// VirtualBankAccountRequest creates a permanent virtual account.
type VirtualBankAccountRequest struct {
	AccountName      string
	AccountReference string
	BankCode         string
	CustomerName     string
	BVN              string
	CustomerEmail    string
	NIN              string
}

// MobileMoneyChargeRequest charges a mobile money wallet.
type MobileMoneyChargeRequest struct {
	Reference         string
	CustomerEmail     string
	Amount            float64
	MobileMoneyNumber string
	Currency          Currency
	NotificationURL   string
	CustomerName      string
	RedirectURL       string
	MerchantBearsCost bool
	Description       string
	Metadata          map[string]any
}

// InitiateChargeRequest starts a hosted checkout across channels.
type InitiateChargeRequest struct {
	Reference       string
	Amount          float64
	Currency        Currency
	Narration       string
	NotificationURL string
	CustomerEmail   string
	CustomerName    string
	Channels        []PaymentChannel
	DefaultChannel  PaymentChannel
	RedirectURL     string
}

// BankPayoutRequest disburses to a bank account.
type BankPayoutRequest struct {
	Reference     string
	Amount        float64
	Currency      Currency
	BankCode      string
	AccountNumber string
	CustomerEmail string
	Narration     string
	CustomerName  string
}

// MobileMoneyPayoutRequest disburses to a mobile money wallet.
type MobileMoneyPayoutRequest struct {
	Reference     string
	Amount        float64
	Currency      Currency
	Operator      MobileMoneyOperator
	MobileNumber  string
	CustomerEmail string
	CustomerName  string
	Narration     string
}

// BulkPayoutRequest disburses to several bank accounts in one batch.
type BulkPayoutRequest struct {
	BatchReference    string
	Description       string
	MerchantBearsCost bool
	Currency          Currency
	Payouts           []PayoutOrder
}
