package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/service"
	"github.com/leaguelink/backend/internal/validation"
)

// EmailHandler serves the transactional email function endpoint.
type EmailHandler struct {
	Handler
	email *service.EmailService
}

// NewEmailHandler constructs an EmailHandler.
func NewEmailHandler(s *server.Server, email *service.EmailService) *EmailHandler {
	return &EmailHandler{
		Handler: NewHandler(s),
		email:   email,
	}
}

// SendEmailRequest is the payload for POST /api/send-email. Data
// carries the template substitutions and may be omitted.
type SendEmailRequest struct {
	Type string            `json:"type" validate:"required"`
	To   string            `json:"to" validate:"required,email"`
	Data map[string]string `json:"data"`
}

func (r *SendEmailRequest) Validate() error {
	return validation.Struct(r)
}

// SendEmail renders the named template and dispatches it through the
// mail provider, returning the provider's message id.
func (h *EmailHandler) SendEmail(c echo.Context, req *SendEmailRequest) (*service.SendResult, error) {
	return h.email.Send(c.Request().Context(), req.Type, req.To, req.Data)
}
