package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/leaguelink/backend/internal/errs"
	"github.com/leaguelink/backend/internal/lib/email"
	"github.com/leaguelink/backend/internal/server"
)

// EmailService renders transactional templates and dispatches them
// through the configured mail provider.
type EmailService struct {
	server *server.Server
}

// NewEmailService creates an EmailService.
func NewEmailService(s *server.Server) *EmailService {
	return &EmailService{
		server: s,
	}
}

// SendResult carries the provider's message id back to the caller.
type SendResult struct {
	ID string `json:"id"`
}

// Send renders the named template with the given substitutions and
// sends it to the recipient. Unknown template names are a client
// error; provider failures surface as upstream errors from the
// sender.
func (s *EmailService) Send(ctx context.Context, templateName, to string, data map[string]string) (*SendResult, error) {
	sender, err := s.sender()
	if err != nil {
		return nil, err
	}

	subject, html, err := email.Render(email.Template(templateName), data)
	if err != nil {
		if errors.Is(err, email.ErrUnknownTemplate) {
			return nil, errs.NewBadRequestError(fmt.Sprintf("Unknown email type: %s", templateName))
		}
		return nil, errors.Wrap(err, "failed to render email template")
	}

	id, err := sender.Send(ctx, email.Message{
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Str("template", templateName).
		Str("message_id", id).
		Msg("email dispatched")

	return &SendResult{ID: id}, nil
}

// sender returns the configured mail sender, or a configuration error
// when the deployment has no email credentials.
func (s *EmailService) sender() (email.Sender, error) {
	if s.server.Mailer == nil {
		s.server.Logger.Error().Msg("email request received but no mail client is configured")
		return nil, errs.NewConfigurationError()
	}
	return s.server.Mailer, nil
}
