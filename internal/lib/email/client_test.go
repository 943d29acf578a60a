package email

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/errs"
)

func newStubClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	logger := zerolog.Nop()
	c := NewClient("re_test_key", "LeagueLink", "notifications@leaguelink.app", &logger)

	parsed, err := url.Parse(baseURL + "/")
	require.NoError(t, err)
	c.client.BaseURL = parsed

	return c
}

func TestSendProviderErrorIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid to address"}`))
	}))
	defer srv.Close()

	c := newStubClient(t, srv.URL)

	_, err := c.Send(context.Background(), Message{
		To:      "not-an-address",
		Subject: "Welcome",
		HTML:    "<p>hi</p>",
	})

	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
	assert.Equal(t, "Failed to send email", httpErr.Message)
}

func TestSendTransportErrorStaysPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := newStubClient(t, baseURL)

	_, err := c.Send(context.Background(), Message{
		To:      "a@b.com",
		Subject: "Welcome",
		HTML:    "<p>hi</p>",
	})

	require.Error(t, err)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr), "transport failure must not carry an envelope status")
}

func TestSendCanceledContextStaysPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer srv.Close()

	c := newStubClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, Message{
		To:      "a@b.com",
		Subject: "Welcome",
		HTML:    "<p>hi</p>",
	})

	require.Error(t, err)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr), "canceled request must not carry an envelope status")
}
