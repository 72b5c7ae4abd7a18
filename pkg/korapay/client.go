// Package korapay is a small client for Korapay's merchant API.
//
// Every operation returns a *Response carrying the provider's status,
// message and data payload, or a *ClientError when the request failed for any
// reason: transport, authentication, validation or a server-side error. The
// client never retries.
package korapay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// DefaultBaseURL is the live merchant API root.
const DefaultBaseURL = "https://api.korapay.com/merchant/api/v1"

// Response is the envelope every Korapay endpoint returns. RawData holds
// the data member exactly as the provider sent it, key order included; it
// is empty for responses built in memory and when data is null.
type Response struct {
	Status  bool            `json:"status" yaml:"status"`
	Message string          `json:"message" yaml:"message"`
	Data    any             `json:"data" yaml:"data"`
	RawData json.RawMessage `json:"-" yaml:"-"`
}

// ClientError is the provider-level failure signal.
type ClientError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ClientError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// Config configures a Client.
type Config struct {
	PublicKey     string
	SecretKey     string
	EncryptionKey string
	BaseURL       string
	HTTPClient    *http.Client
	Timeout       time.Duration
	Logger        *pterm.Logger
}

// Client calls the Korapay API.
type Client struct {
	publicKey     string
	secretKey     string
	encryptionKey string
	baseURL       string
	httpClient    *http.Client
	logger        *pterm.Logger
}

// NewClient creates a client. Only the secret key is strictly required; the
// public key is used for lookup endpoints and the encryption key for card
// charges.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("client config is required")
	}
	if config.SecretKey == "" {
		return nil, fmt.Errorf("secret key is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		publicKey:     config.PublicKey,
		secretKey:     config.SecretKey,
		encryptionKey: config.EncryptionKey,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    httpClient,
		logger:        config.Logger,
	}, nil
}

type keyKind int

const (
	useSecretKey keyKind = iota
	usePublicKey
)

// do sends one request and decodes the response envelope.
func (c *Client) do(ctx context.Context, method, path string, key keyKind, query url.Values, body any) (*Response, error) {
	reqURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, &ClientError{Message: "failed to marshal request body", Err: err}
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, &ClientError{Message: "failed to create request", Err: err}
	}

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	token := c.secretKey
	if key == usePublicKey && c.publicKey != "" {
		token = c.publicKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.debug("sending request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Message: "HTTP request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	c.debug("received response", "status", resp.StatusCode, "bytes", len(respBody))

	return decodeResponse(resp.StatusCode, respBody)
}

// decodeResponse turns a raw HTTP response into a Response or ClientError.
func decodeResponse(statusCode int, body []byte) (*Response, error) {
	var envelope Response
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		if statusCode >= 400 {
			return nil, &ClientError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
		}
		return nil, &ClientError{StatusCode: statusCode, Message: "malformed response", Err: err}
	}

	if statusCode >= 400 || !envelope.Status {
		msg := envelope.Message
		if msg == "" {
			msg = http.StatusText(statusCode)
		}
		return nil, &ClientError{StatusCode: statusCode, Message: msg}
	}

	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err == nil && envelope.Data != nil {
		envelope.RawData = raw.Data
	}

	return &envelope, nil
}

func (c *Client) debug(msg string, kv ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, c.logger.Args(kv...))
}
