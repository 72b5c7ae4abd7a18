package korapay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PayoutToBankAccount disburses to a single bank account.
func (c *Client) PayoutToBankAccount(ctx context.Context, req BankPayoutRequest) (*Response, error) {
	destination := map[string]any{
		"type":     "bank_account",
		"amount":   req.Amount,
		"currency": req.Currency,
		"bank_account": map[string]string{
			"bank":    req.BankCode,
			"account": req.AccountNumber,
		},
		"customer": Customer{Name: req.CustomerName, Email: req.CustomerEmail},
	}
	setIf(destination, "narration", req.Narration)

	return c.do(ctx, http.MethodPost, "transactions/disburse", useSecretKey, nil, map[string]any{
		"reference":   req.Reference,
		"destination": destination,
	})
}

// PayoutToMobileMoney disburses to a single mobile money wallet.
func (c *Client) PayoutToMobileMoney(ctx context.Context, req MobileMoneyPayoutRequest) (*Response, error) {
	destination := map[string]any{
		"type":     "mobile_money",
		"amount":   req.Amount,
		"currency": req.Currency,
		"mobile_money": map[string]string{
			"operator":      string(req.Operator),
			"mobile_number": req.MobileNumber,
		},
		"customer": Customer{Name: req.CustomerName, Email: req.CustomerEmail},
	}
	setIf(destination, "narration", req.Narration)

	return c.do(ctx, http.MethodPost, "transactions/disburse", useSecretKey, nil, map[string]any{
		"reference":   req.Reference,
		"destination": destination,
	})
}

// BulkPayoutToBankAccount disburses a batch of bank payouts.
func (c *Client) BulkPayoutToBankAccount(ctx context.Context, req BulkPayoutRequest) (*Response, error) {
	payouts := make([]map[string]any, 0, len(req.Payouts))
	for _, order := range req.Payouts {
		payout := map[string]any{
			"reference": order.Reference,
			"amount":    order.Amount,
			"type":      "bank_account",
			"bank_account": map[string]string{
				"bank":    order.BankCode,
				"account": order.AccountNumber,
			},
			"customer": Customer{Name: order.CustomerName, Email: order.CustomerEmail},
		}
		setIf(payout, "narration", order.Narration)
		payouts = append(payouts, payout)
	}

	return c.do(ctx, http.MethodPost, "transactions/disburse/bulk", useSecretKey, nil, map[string]any{
		"batch_reference":     req.BatchReference,
		"description":         req.Description,
		"merchant_bears_cost": req.MerchantBearsCost,
		"currency":            req.Currency,
		"payouts":             payouts,
	})
}

// GetPayouts retrieves the payouts in a bulk batch.
func (c *Client) GetPayouts(ctx context.Context, bulkReference string) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("transactions/bulk/%s/payout", url.PathEscape(bulkReference)), useSecretKey, nil, nil)
}

// GetBulkTransaction retrieves a bulk batch.
func (c *Client) GetBulkTransaction(ctx context.Context, bulkReference string) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("transactions/bulk/%s", url.PathEscape(bulkReference)), useSecretKey, nil, nil)
}

// GetPayoutTransaction retrieves a single disbursement by reference.
func (c *Client) GetPayoutTransaction(ctx context.Context, transactionReference string) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("transactions/%s", url.PathEscape(transactionReference)), useSecretKey, nil, nil)
}
