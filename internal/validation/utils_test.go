package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/errs"
	"github.com/leaguelink/backend/internal/validation"
)

type samplePayload struct {
	Email  string `json:"email" validate:"required,email"`
	UserID string `json:"userId" validate:"required"`
}

func (p *samplePayload) Validate() error {
	return validation.Struct(p)
}

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"email":"golfer@example.com","userId":"user_1"}`)

	var payload samplePayload
	err := validation.BindAndValidate(c, &payload)

	require.NoError(t, err)
	assert.Equal(t, "golfer@example.com", payload.Email)
	assert.Equal(t, "user_1", payload.UserID)
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newContext(t, `{}`)

	var payload samplePayload
	err := validation.BindAndValidate(c, &payload)

	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Missing required fields: email, userId", httpErr.Message)
}

func TestBindAndValidateInvalidEmail(t *testing.T) {
	c := newContext(t, `{"email":"not-an-email","userId":"user_1"}`)

	var payload samplePayload
	err := validation.BindAndValidate(c, &payload)

	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "email must be a valid email address", httpErr.Message)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(t, `{"email": `)

	var payload samplePayload
	err := validation.BindAndValidate(c, &payload)

	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid JSON body", httpErr.Message)
}
