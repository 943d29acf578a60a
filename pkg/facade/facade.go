// Package facade is the Go client for the LeagueLink backend API.
//
// Frontend layers (server-rendered pages, CLIs, other services) use
// it instead of hand-building HTTP requests: it carries the session
// token, speaks the backend's JSON envelopes, and surfaces error
// envelopes as typed errors.
package facade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the backend API on behalf of one session.
type Client struct {
	baseURL      string
	http         *http.Client
	sessionToken string
}

// New creates a Client for the given backend base URL, e.g.
// "https://api.leaguelink.app". A nil httpClient gets a sane default.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// SetSessionToken sets the bearer token sent on authenticated calls.
// Pass empty to clear it.
func (c *Client) SetSessionToken(token string) {
	c.sessionToken = token
}

// APIError is the backend's error envelope surfaced as a Go error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Profile mirrors the backend profile record.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
	Handicap    *float64  `json:"handicap"`
	HomeCourse  string    `json:"homeCourse"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileInput is the writable subset of a profile.
type ProfileInput struct {
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Handicap    *float64 `json:"handicap,omitempty"`
	HomeCourse  string   `json:"homeCourse,omitempty"`
}

// SetupIntent is the response of the create-setup-intent endpoint.
type SetupIntent struct {
	ClientSecret string `json:"clientSecret"`
	CustomerID   string `json:"customerId"`
}

// SentEmail is the response of the send-email endpoint.
type SentEmail struct {
	ID string `json:"id"`
}

// SignUpResult identifies a newly created account.
type SignUpResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// SignInResult carries the single-use token to exchange for a
// session.
type SignInResult struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Status is the generic acknowledgement for fire-and-forget calls.
type Status struct {
	Sent bool `json:"sent"`
}

// GetProfile fetches the session owner's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertProfile saves the session owner's profile.
func (c *Client) UpsertProfile(ctx context.Context, in ProfileInput) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSetupIntent starts card collection for the given account.
func (c *Client) CreateSetupIntent(ctx context.Context, email, userID string) (*SetupIntent, error) {
	body := map[string]string{"email": email, "userId": userID}

	var out SetupIntent
	if err := c.do(ctx, http.MethodPost, "/api/create-setup-intent", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendEmail dispatches a transactional template to the recipient.
func (c *Client) SendEmail(ctx context.Context, emailType, to string, data map[string]string) (*SentEmail, error) {
	body := map[string]any{"type": emailType, "to": to}
	if len(data) > 0 {
		body["data"] = data
	}

	var out SentEmail
	if err := c.do(ctx, http.MethodPost, "/api/send-email", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp creates an account.
func (c *Client) SignUp(ctx context.Context, email, password, firstName, lastName string) (*SignUpResult, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}

	var out SignUpResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn requests a single-use sign-in token for the account.
func (c *Client) SignIn(ctx context.Context, email string) (*SignInResult, error) {
	body := map[string]string{"email": email}

	var out SignInResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut revokes the current session.
func (c *Client) SignOut(ctx context.Context) (*Status, error) {
	var out Status
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-out", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the backend to email a reset link. The
// response is identical whether or not the email has an account.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*Status, error) {
	body := map[string]string{"email": email}

	var out Status
	if err := c.do(ctx, http.MethodPost, "/api/auth/request-password-reset", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one request/response cycle: JSON-encode the body, attach
// the session token, decode either the success payload or the
// {"error": message} envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("facade: encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("facade: building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("facade: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("facade: reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope struct {
			Error string `json:"error"`
		}
		message := http.StatusText(resp.StatusCode)
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Error != "" {
			message = envelope.Error
		}

		return &APIError{
			Status:  resp.StatusCode,
			Message: message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("facade: decoding response: %w", err)
	}

	return nil
}
