// Package authprovider provides the upstream client for the hosted
// auth provider's (Clerk) Backend API.
//
// It follows the same contract as the billing client: direct REST
// calls with a bearer credential, explicit response records, and a
// typed *Error for upstream error objects. Session validation on
// incoming requests is handled separately by the Clerk middleware; this
// client covers the user-management operations the handlers proxy.
package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// defaultAPIBase is the production Clerk Backend API base URL,
// overridable in tests via Config.BaseURL.
const defaultAPIBase = "https://api.clerk.com"

// Config holds the settings for constructing a Client.
type Config struct {
	SecretKey string
	BaseURL   string // override for testing; defaults to defaultAPIBase
}

// Client issues authenticated requests against the Clerk Backend API.
type Client struct {
	http      *http.Client
	secretKey string
	baseURL   string
	logger    *zerolog.Logger
}

// NewClient creates an auth provider Client.
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

// User is the subset of the Clerk user object this application reads.
type User struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
}

// EmailAddress is one of a user's registered email addresses.
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the user's first registered email address, or
// empty when none exists.
func (u *User) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// DisplayName joins the user's first and last name.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	return name
}

// SignInToken is a single-use token the hosted sign-in flow exchanges
// for a session.
type SignInToken struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	URL    string `json:"url"`
	UserID string `json:"user_id"`
}

// Error is the upstream error reported by the auth provider, reduced
// to the first entry of its errors array.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("clerk: %s", e.Message)
	}
	return fmt.Sprintf("clerk: status %d", e.Status)
}

// NotFound reports whether the upstream error means the requested
// resource does not exist.
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// errorResponse matches Clerk's {"errors": [{...}]} error body.
type errorResponse struct {
	Errors []struct {
		Code        string `json:"code"`
		Message     string `json:"message"`
		LongMessage string `json:"long_message"`
	} `json:"errors"`
}

// FindUserByEmail looks up a user by email address. It returns nil
// (and no error) when no user matches.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	params := url.Values{}
	params.Set("email_address", email)
	params.Set("limit", "1")

	resp, err := c.doGet(ctx, "/v1/users", params)
	if err != nil {
		return nil, errors.Wrap(err, "FindUserByEmail: clerk request failed")
	}

	var users []User
	if err := c.decode(resp, "FindUserByEmail", &users); err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// GetUser retrieves a user by id.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	resp, err := c.doGet(ctx, "/v1/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "GetUser: clerk request failed")
	}

	var user User
	if err := c.decode(resp, "GetUser", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// createUserRequest is the JSON body for user creation.
type createUserRequest struct {
	EmailAddress []string `json:"email_address"`
	Password     string   `json:"password,omitempty"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
}

// CreateUser creates a user record with the provider (sign-up). The
// provider owns password hashing and uniqueness enforcement.
func (c *Client) CreateUser(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	resp, err := c.doPost(ctx, "/v1/users", createUserRequest{
		EmailAddress: []string{email},
		Password:     password,
		FirstName:    firstName,
		LastName:     lastName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "CreateUser: clerk request failed")
	}

	var user User
	if err := c.decode(resp, "CreateUser", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// createSignInTokenRequest is the JSON body for sign-in token minting.
type createSignInTokenRequest struct {
	UserID           string `json:"user_id"`
	ExpiresInSeconds int    `json:"expires_in_seconds,omitempty"`
}

// CreateSignInToken mints a single-use sign-in token for the user,
// used by the sign-in and password-reset flows.
func (c *Client) CreateSignInToken(ctx context.Context, userID string, expiresInSeconds int) (*SignInToken, error) {
	resp, err := c.doPost(ctx, "/v1/sign_in_tokens", createSignInTokenRequest{
		UserID:           userID,
		ExpiresInSeconds: expiresInSeconds,
	})
	if err != nil {
		return nil, errors.Wrap(err, "CreateSignInToken: clerk request failed")
	}

	var token SignInToken
	if err := c.decode(resp, "CreateSignInToken", &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// RevokeSession revokes an active session (sign-out).
func (c *Client) RevokeSession(ctx context.Context, sessionID string) error {
	resp, err := c.doPost(ctx, "/v1/sessions/"+url.PathEscape(sessionID)+"/revoke", nil)
	if err != nil {
		return errors.Wrap(err, "RevokeSession: clerk request failed")
	}

	var out map[string]any
	return c.decode(resp, "RevokeSession", &out)
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
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.http.Do(req)
}

// doPost performs an authenticated POST with a JSON body (the wire
// format the Clerk Backend API expects). body may be nil.
func (c *Client) doPost(ctx context.Context, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

// decode reads the response body into out, converting upstream error
// bodies into *Error and decode failures into wrapped plain errors.
func (c *Client) decode(resp *http.Response, operation string, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s: reading clerk response", operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr != nil || len(errResp.Errors) == 0 {
			return errors.Errorf("%s: clerk returned status %d with non-JSON body", operation, resp.StatusCode)
		}

		first := errResp.Errors[0]
		message := first.LongMessage
		if message == "" {
			message = first.Message
		}

		c.logger.Warn().
			Str("operation", operation).
			Int("status", resp.StatusCode).
			Str("code", first.Code).
			Msg("clerk API returned an error")

		return &Error{
			Status:  resp.StatusCode,
			Code:    first.Code,
			Message: message,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "%s: decoding clerk response", operation)
	}

	return nil
}
