package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/config"
	"github.com/leaguelink/backend/internal/errs"
	"github.com/leaguelink/backend/internal/lib/authprovider"
	"github.com/leaguelink/backend/internal/lib/email"
	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/service"
)

type mailerDouble struct {
	lastMessage email.Message
	sent        int
}

func (d *mailerDouble) Send(ctx context.Context, msg email.Message) (string, error) {
	d.lastMessage = msg
	d.sent++
	return "msg_1", nil
}

func newAuthService(t *testing.T, clerkHandler http.HandlerFunc, mailer email.Sender) *service.AuthService {
	t.Helper()

	logger := zerolog.Nop()

	cfg := &config.Config{}
	cfg.Primary.Env = "test"
	cfg.Auth.PasswordResetURL = "https://leaguelink.app/reset-password"

	s := &server.Server{
		Config: cfg,
		Logger: &logger,
		Mailer: mailer,
	}

	if clerkHandler != nil {
		srv := httptest.NewServer(clerkHandler)
		t.Cleanup(srv.Close)

		s.Auth = authprovider.NewClient(srv.Client(), authprovider.Config{
			SecretKey: "sk_clerk_test",
			BaseURL:   srv.URL,
		}, &logger)
	}

	return service.NewAuthService(s, service.NewEmailService(s))
}

func TestRequestPasswordResetSendsLink(t *testing.T) {
	mailer := &mailerDouble{}

	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/users":
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{
					"id":         "user_1",
					"first_name": "Jordan",
					"email_addresses": []map[string]any{
						{"id": "idn_1", "email_address": "golfer@example.com"},
					},
				},
			})
		case "/v1/sign_in_tokens":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":      "sit_1",
				"token":   "tok_reset",
				"user_id": "user_1",
			})
		default:
			t.Fatalf("unexpected clerk call: %s", r.URL.Path)
		}
	}, mailer)

	result, err := svc.RequestPasswordReset(context.Background(), "golfer@example.com")

	require.NoError(t, err)
	assert.True(t, result.Sent)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "golfer@example.com", mailer.lastMessage.To)
	assert.Contains(t, mailer.lastMessage.HTML, "https://leaguelink.app/reset-password?token=tok_reset")
}

func TestRequestPasswordResetUnknownEmailStillSucceeds(t *testing.T) {
	mailer := &mailerDouble{}

	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{})
	}, mailer)

	result, err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.True(t, result.Sent)
	assert.Zero(t, mailer.sent, "no email should go out for unknown accounts")
}

func TestRequestPasswordResetNotConfigured(t *testing.T) {
	svc := newAuthService(t, nil, &mailerDouble{})

	_, err := svc.RequestPasswordReset(context.Background(), "golfer@example.com")

	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Server configuration error", httpErr.Message)
}

func TestSignInMintsToken(t *testing.T) {
	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/users":
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"id": "user_1"},
			})
		case "/v1/sign_in_tokens":
			_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok_abc", "user_id": "user_1"})
		default:
			t.Fatalf("unexpected clerk call: %s", r.URL.Path)
		}
	}, &mailerDouble{})

	result, err := svc.SignIn(context.Background(), "golfer@example.com")

	require.NoError(t, err)
	assert.Equal(t, "user_1", result.UserID)
	assert.Equal(t, "tok_abc", result.Token)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{})
	}, &mailerDouble{})

	_, err := svc.SignIn(context.Background(), "nobody@example.com")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Account not found", httpErr.Message)
}

func TestSignUpSendsWelcomeEmail(t *testing.T) {
	mailer := &mailerDouble{}

	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         "user_9",
			"first_name": "Sam",
			"email_addresses": []map[string]any{
				{"id": "idn_9", "email_address": "new@example.com"},
			},
		})
	}, mailer)

	result, err := svc.SignUp(context.Background(), "new@example.com", "hunter2hunter2", "Sam", "")

	require.NoError(t, err)
	assert.Equal(t, "user_9", result.UserID)
	assert.Equal(t, "new@example.com", result.Email)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "new@example.com", mailer.lastMessage.To)
}
