package authprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/lib/authprovider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *authprovider.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	return authprovider.NewClient(srv.Client(), authprovider.Config{
		SecretKey: "sk_clerk_test",
		BaseURL:   srv.URL,
	}, &logger)
}

func TestFindUserByEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users", r.URL.Path)
		assert.Equal(t, "golfer@example.com", r.URL.Query().Get("email_address"))
		assert.Equal(t, "Bearer sk_clerk_test", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":         "user_1",
				"first_name": "Jordan",
				"last_name":  "Lee",
				"email_addresses": []map[string]any{
					{"id": "idn_1", "email_address": "golfer@example.com"},
				},
			},
		})
	})

	user, err := client.FindUserByEmail(context.Background(), "golfer@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user_1", user.ID)
	assert.Equal(t, "golfer@example.com", user.PrimaryEmail())
	assert.Equal(t, "Jordan Lee", user.DisplayName())
}

func TestFindUserByEmailNoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{})
	})

	user, err := client.FindUserByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUserSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{"new@example.com"}, body["email_address"])
		assert.Equal(t, "Sam", body["first_name"])

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "user_2"})
	})

	user, err := client.CreateUser(context.Background(), "new@example.com", "hunter2hunter2", "Sam", "")

	require.NoError(t, err)
	assert.Equal(t, "user_2", user.ID)
}

func TestUpstreamErrorParsing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{
				{
					"code":         "form_identifier_exists",
					"message":      "is taken",
					"long_message": "That email address is taken. Please try another.",
				},
			},
		})
	})

	_, err := client.CreateUser(context.Background(), "dupe@example.com", "hunter2hunter2", "", "")

	require.Error(t, err)

	var authErr *authprovider.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnprocessableEntity, authErr.Status)
	assert.Equal(t, "form_identifier_exists", authErr.Code)
	assert.Equal(t, "That email address is taken. Please try another.", authErr.Message)
}

func TestCreateSignInToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sign_in_tokens", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user_1", body["user_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "sit_1",
			"token":   "tok_abc",
			"user_id": "user_1",
		})
	})

	token, err := client.CreateSignInToken(context.Background(), "user_1", 3600)

	require.NoError(t, err)
	assert.Equal(t, "tok_abc", token.Token)
}

func TestRevokeSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/sess_1/revoke", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "sess_1", "status": "revoked"})
	})

	err := client.RevokeSession(context.Background(), "sess_1")

	require.NoError(t, err)
}
