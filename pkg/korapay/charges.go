package korapay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ChargeViaCard accepts a debit card payment. The charge payload is
// encrypted with the encryption key before it leaves the process.
func (c *Client) ChargeViaCard(ctx context.Context, req CardChargeRequest) (*Response, error) {
	if c.encryptionKey == "" {
		return nil, &ClientError{Message: "encryption key is required for card charges"}
	}

	payload := map[string]any{
		"reference": req.Reference,
		"card":      req.Card,
		"amount":    req.Amount,
		"currency":  req.Currency,
		"customer":  Customer{Name: req.CustomerName, Email: req.CustomerEmail},
	}
	if req.RedirectURL != "" {
		payload["redirect_url"] = req.RedirectURL
	}
	if req.Metadata != nil {
		payload["metadata"] = req.Metadata
	}

	plain, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{Message: "failed to marshal card charge", Err: err}
	}

	encrypted, err := EncryptPayload(c.encryptionKey, plain)
	if err != nil {
		return nil, &ClientError{Message: "failed to encrypt card charge", Err: err}
	}

	return c.do(ctx, http.MethodPost, "charges/card", useSecretKey, nil, map[string]any{
		"charge_data": encrypted,
	})
}

// AuthorizeCardCharge completes a pending card charge.
func (c *Client) AuthorizeCardCharge(ctx context.Context, transactionReference string, authorization Authorization) (*Response, error) {
	return c.do(ctx, http.MethodPost, "charges/card/authorize", useSecretKey, nil, map[string]any{
		"transaction_reference": transactionReference,
		"authorization":         authorization,
	})
}

// ResendCardOTP resends the OTP for a pending card charge.
func (c *Client) ResendCardOTP(ctx context.Context, transactionReference string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "charges/card/resend-otp", useSecretKey, nil, map[string]any{
		"transaction_reference": transactionReference,
	})
}

// ChargeViaBankTransfer accepts a payment through a one-time bank account.
func (c *Client) ChargeViaBankTransfer(ctx context.Context, req BankTransferChargeRequest) (*Response, error) {
	body := map[string]any{
		"reference":           req.Reference,
		"amount":              req.Amount,
		"currency":            req.Currency,
		"customer":            Customer{Name: req.CustomerName, Email: req.CustomerEmail},
		"merchant_bears_cost": req.MerchantBearsCost,
	}
	setIf(body, "account_name", req.AccountName)
	setIf(body, "narration", req.Narration)
	setIf(body, "notification_url", req.NotificationURL)
	if req.Metadata != nil {
		body["metadata"] = req.Metadata
	}

	return c.do(ctx, http.MethodPost, "charges/bank-transfer", useSecretKey, nil, body)
}

// ChargeViaMobileMoney accepts a mobile money payment.
func (c *Client) ChargeViaMobileMoney(ctx context.Context, req MobileMoneyChargeRequest) (*Response, error) {
	body := map[string]any{
		"reference":           req.Reference,
		"amount":              req.Amount,
		"currency":            req.Currency,
		"customer":            Customer{Name: req.CustomerName, Email: req.CustomerEmail},
		"mobile_money":        map[string]string{"number": req.MobileMoneyNumber},
		"merchant_bears_cost": req.MerchantBearsCost,
	}
	setIf(body, "notification_url", req.NotificationURL)
	setIf(body, "redirect_url", req.RedirectURL)
	setIf(body, "description", req.Description)
	if req.Metadata != nil {
		body["metadata"] = req.Metadata
	}

	return c.do(ctx, http.MethodPost, "charges/mobile-money", useSecretKey, nil, body)
}

// AuthorizeMobileMoneyCharge submits the OTP for a mobile money charge.
func (c *Client) AuthorizeMobileMoneyCharge(ctx context.Context, reference, token string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "charges/mobile-money/authorize", useSecretKey, nil, map[string]any{
		"reference": reference,
		"token":     token,
	})
}

// ResendMobileMoneyOTP resends the OTP for a mobile money charge.
func (c *Client) ResendMobileMoneyOTP(ctx context.Context, transactionReference string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "charges/mobile-money/resend-otp", useSecretKey, nil, map[string]any{
		"transaction_reference": transactionReference,
	})
}

// ResendSTK resends the STK prompt to the wallet owner's phone.
func (c *Client) ResendSTK(ctx context.Context, transactionReference string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "charges/mobile-money/resend-stk", useSecretKey, nil, map[string]any{
		"transaction_reference": transactionReference,
	})
}

// AuthorizeSTK answers an STK prompt. Sandbox only.
func (c *Client) AuthorizeSTK(ctx context.Context, reference, pin string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "charges/mobile-money/sandbox/authorize-stk", useSecretKey, nil, map[string]any{
		"reference": reference,
		"pin":       pin,
	})
}

// InitiateCharge starts a checkout supporting several payment channels.
func (c *Client) InitiateCharge(ctx context.Context, req InitiateChargeRequest) (*Response, error) {
	body := map[string]any{
		"reference":        req.Reference,
		"amount":           req.Amount,
		"currency":         req.Currency,
		"narration":        req.Narration,
		"notification_url": req.NotificationURL,
		"customer":         Customer{Name: req.CustomerName, Email: req.CustomerEmail},
	}
	if len(req.Channels) > 0 {
		body["channels"] = req.Channels
	}
	setIf(body, "default_channel", string(req.DefaultChannel))
	setIf(body, "redirect_url", req.RedirectURL)

	return c.do(ctx, http.MethodPost, "charges/initialize", useSecretKey, nil, body)
}

// GetCharge retrieves a charge by reference.
func (c *Client) GetCharge(ctx context.Context, reference string) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("charges/%s", url.PathEscape(reference)), useSecretKey, nil, nil)
}

func setIf(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}
