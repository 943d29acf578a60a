// Package billing provides the upstream client for the payments
// provider (Stripe).
//
// It speaks the Stripe REST API directly: form-encoded POSTs and GETs
// with a bearer credential, the API version pinned via the stripe-go
// constant. Responses decode into explicit record types; an upstream
// error object decodes into *Error so callers can branch on it without
// string inspection. There are no retries, no circuit breaking, and no
// timeout beyond the injected http.Client's.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	stripe "github.com/stripe/stripe-go/v82"
)

// defaultAPIBase is the production Stripe API base URL, overridable in
// tests via Config.BaseURL.
const defaultAPIBase = "https://api.stripe.com"

// Config holds the settings for constructing a Client.
type Config struct {
	SecretKey string
	BaseURL   string // override for testing; defaults to defaultAPIBase
}

// Client issues authenticated requests against the Stripe REST API.
type Client struct {
	http      *http.Client
	secretKey string
	baseURL   string
	logger    *zerolog.Logger
}

// NewClient creates a billing Client.
func NewClient(httpClient *http.Client, cfg Config, logger *zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAPIBase
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		http:      httpClient,
		secretKey: cfg.SecretKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

// Error is the upstream error object the payments provider returns
// inside the {"error": {...}} body. It satisfies the error interface so
// callers can errors.As on it and branch on Status or Code.
type Error struct {
	Status  int    `json:"-"`
	Type    string `json:"type"`
	Code    string `json:"code"`
	Param   string `json:"param"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stripe: %s", e.Message)
	}
	return fmt.Sprintf("stripe: status %d", e.Status)
}

// NotFound reports whether the upstream error means the requested
// resource does not exist (e.g. "No such customer").
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound || e.Code == "resource_missing"
}

type errorResponse struct {
	Error *Error `json:"error"`
}

// doGet performs an authenticated GET request.
func (c *Client) doGet(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	return c.http.Do(req)
}

// doPost performs an authenticated POST with a form-encoded body, the
// wire format the Stripe API expects.
func (c *Client) doPost(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setHeaders(req)

	return c.http.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Stripe-Version", stripe.APIVersion)
}

// decode reads the response body into out, converting upstream error
// bodies into *Error and transport-level decode failures into wrapped
// plain errors.
func (c *Client) decode(resp *http.Response, operation string, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s: reading stripe response", operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr != nil || errResp.Error == nil {
			return errors.Errorf("%s: stripe returned status %d with non-JSON body", operation, resp.StatusCode)
		}
		errResp.Error.Status = resp.StatusCode

		c.logger.Warn().
			Str("operation", operation).
			Int("status", resp.StatusCode).
			Str("code", errResp.Error.Code).
			Msg("stripe API returned an error")

		return errResp.Error
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "%s: decoding stripe response", operation)
	}

	return nil
}
