package korapay

import "context"

// Provider is the set of payment operations the CLI exposes. *Client
// implements it; tests substitute stubs.
type Provider interface {
	ChargeViaCard(ctx context.Context, req CardChargeRequest) (*Response, error)
	AuthorizeCardCharge(ctx context.Context, transactionReference string, authorization Authorization) (*Response, error)
	ResendCardOTP(ctx context.Context, transactionReference string) (*Response, error)
	ChargeViaBankTransfer(ctx context.Context, req BankTransferChargeRequest) (*Response, error)
	CreateVirtualBankAccount(ctx context.Context, req VirtualBankAccountRequest) (*Response, error)
	GetVirtualBankAccount(ctx context.Context, accountReference string) (*Response, error)
	GetVirtualBankAccountTransactions(ctx context.Context, accountNumber string) (*Response, error)
	CreditSandboxVirtualBankAccount(ctx context.Context, accountNumber string, amount float64, currency Currency) (*Response, error)
	ChargeViaMobileMoney(ctx context.Context, req MobileMoneyChargeRequest) (*Response, error)
	AuthorizeMobileMoneyCharge(ctx context.Context, reference, token string) (*Response, error)
	ResendMobileMoneyOTP(ctx context.Context, transactionReference string) (*Response, error)
	ResendSTK(ctx context.Context, transactionReference string) (*Response, error)
	AuthorizeSTK(ctx context.Context, reference, pin string) (*Response, error)
	InitiateCharge(ctx context.Context, req InitiateChargeRequest) (*Response, error)
	GetCharge(ctx context.Context, reference string) (*Response, error)
	ResolveBankAccount(ctx context.Context, bankCode, accountNumber string) (*Response, error)
	GetBalances(ctx context.Context) (*Response, error)
	GetBanks(ctx context.Context, country Country) (*Response, error)
	GetMMO(ctx context.Context, country Country) (*Response, error)
	PayoutToBankAccount(ctx context.Context, req BankPayoutRequest) (*Response, error)
	PayoutToMobileMoney(ctx context.Context, req MobileMoneyPayoutRequest) (*Response, error)
	BulkPayoutToBankAccount(ctx context.Context, req BulkPayoutRequest) (*Response, error)
	GetPayouts(ctx context.Context, bulkReference string) (*Response, error)
	GetBulkTransaction(ctx context.Context, bulkReference string) (*Response, error)
	GetPayoutTransaction(ctx context.Context, transactionReference string) (*Response, error)
}

var _ Provider = (*Client)(nil)
