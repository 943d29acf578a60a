package facade_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/pkg/facade"
)

func TestGetProfileSendsSessionToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "Bearer sess_token_1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "user_1",
			"email":       "golfer@example.com",
			"displayName": "Jordan Lee",
		})
	}))
	t.Cleanup(srv.Close)

	client := facade.New(srv.URL, srv.Client())
	client.SetSessionToken("sess_token_1")

	profile, err := client.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user_1", profile.ID)
	assert.Equal(t, "Jordan Lee", profile.DisplayName)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required fields: email, userId"}`))
	}))
	t.Cleanup(srv.Close)

	client := facade.New(srv.URL, srv.Client())

	_, err := client.CreateSetupIntent(context.Background(), "", "")

	require.Error(t, err)

	var apiErr *facade.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing required fields: email, userId", apiErr.Message)
}

func TestSendEmailOmitsEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "welcome", body["type"])
		_, hasData := body["data"]
		assert.False(t, hasData)

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "msg_1"})
	}))
	t.Cleanup(srv.Close)

	client := facade.New(srv.URL, srv.Client())

	sent, err := client.SendEmail(context.Background(), "welcome", "golfer@example.com", nil)

	require.NoError(t, err)
	assert.Equal(t, "msg_1", sent.ID)
}

func TestNonJSONErrorBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream blew up"))
	}))
	t.Cleanup(srv.Close)

	client := facade.New(srv.URL, srv.Client())

	_, err := client.SignIn(context.Background(), "golfer@example.com")

	var apiErr *facade.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}
