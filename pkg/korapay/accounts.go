package korapay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateVirtualBankAccount creates a permanent virtual account for a customer.
func (c *Client) CreateVirtualBankAccount(ctx context.Context, req VirtualBankAccountRequest) (*Response, error) {
	kyc := map[string]string{"bvn": req.BVN}
	if req.NIN != "" {
		kyc["nin"] = req.NIN
	}

	return c.do(ctx, http.MethodPost, "virtual-bank-account", useSecretKey, nil, map[string]any{
		"account_name":      req.AccountName,
		"account_reference": req.AccountReference,
		"permanent":         true,
		"bank_code":         req.BankCode,
		"customer":          Customer{Name: req.CustomerName, Email: req.CustomerEmail},
		"kyc":               kyc,
	})
}

// GetVirtualBankAccount retrieves a virtual account by its reference.
func (c *Client) GetVirtualBankAccount(ctx context.Context, accountReference string) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("virtual-bank-account/%s", url.PathEscape(accountReference)), useSecretKey, nil, nil)
}

// GetVirtualBankAccountTransactions lists transactions on a virtual account.
func (c *Client) GetVirtualBankAccountTransactions(ctx context.Context, accountNumber string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "virtual-bank-account/transactions", useSecretKey,
		url.Values{"account_number": {accountNumber}}, nil)
}

// CreditSandboxVirtualBankAccount credits a virtual account. Sandbox only.
func (c *Client) CreditSandboxVirtualBankAccount(ctx context.Context, accountNumber string, amount float64, currency Currency) (*Response, error) {
	return c.do(ctx, http.MethodPost, "virtual-bank-account/sandbox/credit", useSecretKey, nil, map[string]any{
		"account_number": accountNumber,
		"amount":         amount,
		"currency":       currency,
	})
}

// ResolveBankAccount looks up the holder of a bank account.
func (c *Client) ResolveBankAccount(ctx context.Context, bankCode, accountNumber string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "misc/banks/resolve", useSecretKey, nil, map[string]any{
		"bank":    bankCode,
		"account": accountNumber,
	})
}

// GetBalances retrieves pending and available balances.
func (c *Client) GetBalances(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "balances", useSecretKey, nil, nil)
}

// GetBanks lists supported banks in a country.
func (c *Client) GetBanks(ctx context.Context, country Country) (*Response, error) {
	return c.do(ctx, http.MethodGet, "misc/banks", usePublicKey,
		url.Values{"countryCode": {string(country)}}, nil)
}

// GetMMO lists supported mobile money operators in a country.
func (c *Client) GetMMO(ctx context.Context, country Country) (*Response, error) {
	return c.do(ctx, http.MethodGet, "misc/mobile-money", usePublicKey,
		url.Values{"countryCode": {string(country)}}, nil)
}
