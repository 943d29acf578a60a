package billing_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/billing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *billing.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	return billing.NewClient(srv.Client(), billing.Config{
		SecretKey: "sk_test_123",
		BaseURL:   srv.URL,
	}, &logger)
}

func TestFindCustomerByEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/customers", r.URL.Path)
		assert.Equal(t, "golfer@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "cus_1", "email": "golfer@example.com"},
			},
			"has_more": false,
		})
	})

	customer, err := client.FindCustomerByEmail(context.Background(), "golfer@example.com")

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "cus_1", customer.ID)
}

func TestFindCustomerByEmailNoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}, "has_more": false})
	})

	customer, err := client.FindCustomerByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCreateCustomerSendsMetadata(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/customers", r.URL.Path)
		assert.Equal(t, "golfer@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "user_42", r.PostForm.Get("metadata[user_id]"))

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "cus_2", "email": "golfer@example.com"})
	})

	customer, err := client.CreateCustomer(context.Background(), "golfer@example.com", "user_42")

	require.NoError(t, err)
	assert.Equal(t, "cus_2", customer.ID)
}

func TestCreateSetupIntent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/setup_intents", r.URL.Path)
		assert.Equal(t, "cus_1", r.PostForm.Get("customer"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))
		assert.Equal(t, "off_session", r.PostForm.Get("usage"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "seti_1",
			"client_secret": "seti_1_secret_x",
			"status":        "requires_payment_method",
		})
	})

	intent, err := client.CreateSetupIntent(context.Background(), "cus_1")

	require.NoError(t, err)
	assert.Equal(t, "seti_1_secret_x", intent.ClientSecret)
}

func TestUpstreamErrorDecodesToTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "invalid_request_error",
				"code":    "resource_missing",
				"message": "No such customer: 'cus_missing'",
			},
		})
	})

	_, err := client.GetCustomer(context.Background(), "cus_missing")

	require.Error(t, err)

	var billingErr *billing.Error
	require.ErrorAs(t, err, &billingErr)
	assert.True(t, billingErr.NotFound())
	assert.Equal(t, "No such customer: 'cus_missing'", billingErr.Message)
	assert.Equal(t, http.StatusNotFound, billingErr.Status)
}

func TestNonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.GetCustomer(context.Background(), "cus_1")

	require.Error(t, err)

	var billingErr *billing.Error
	assert.False(t, errors.As(err, &billingErr), "non-JSON bodies should stay plain errors")
}
