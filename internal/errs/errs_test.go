package errs_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/errs"
)

func TestEnvelopeSerialization(t *testing.T) {
	e := errs.NewBadRequestError("Missing required fields: email")

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	// The status travels in the HTTP status line, never in the body.
	assert.JSONEq(t, `{"error":"Missing required fields: email"}`, string(raw))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *errs.HTTPError
		status  int
		message string
	}{
		{"bad_request", errs.NewBadRequestError("nope"), http.StatusBadRequest, "nope"},
		{"unauthorized", errs.NewUnauthorizedError("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{"not_found", errs.NewNotFoundError("Customer not found"), http.StatusNotFound, "Customer not found"},
		{"method_not_allowed", errs.NewMethodNotAllowedError(), http.StatusMethodNotAllowed, "Method not allowed"},
		{"configuration", errs.NewConfigurationError(), http.StatusInternalServerError, "Server configuration error"},
		{"internal", errs.NewInternalServerError(), http.StatusInternalServerError, "Internal server error"},
		{"upstream", errs.NewUpstreamError("No such customer"), http.StatusBadGateway, "No such customer"},
		{"upstream_fallback", errs.NewUpstreamError(""), http.StatusBadGateway, "Upstream service error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}
