// Package email provides email template rendering and a sending
// client.
//
// Rendering is pure string composition over a fixed template registry.
// Sending goes through Resend (resend-go); handlers depend on the
// Sender interface so tests can substitute a double.
package email

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/leaguelink/backend/internal/errs"
)

// Message is a fully rendered email ready for dispatch.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender dispatches a rendered message and returns the delivery
// provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Client sends email through the Resend API.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client with the given credential and
// sender identity ("Name <address>").
func NewClient(apiKey, fromName, fromAddress string, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromAddress),
		logger: logger,
	}
}

// Send dispatches msg via Resend and returns the provider message id.
//
// Provider-reported failures come back as upstream envelope errors so
// the handler layer maps them to 502 without inspecting provider
// detail; the raw error is logged here only. Transport failures, where
// the provider never answered, are returned as wrapped plain errors so
// the global handler reports a generic 500.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("failed to send email")

		if isTransportError(err) {
			return "", errors.Wrap(err, "email: send request failed")
		}

		return "", errs.NewUpstreamError("Failed to send email")
	}

	c.logger.Info().
		Str("to", msg.To).
		Str("id", sent.Id).
		Msg("email dispatched")

	return sent.Id, nil
}

// isTransportError reports whether err comes from the HTTP transport
// rather than a provider-reported response. resend-go returns the
// http.Client's *url.Error untouched when the request never completes;
// anything else means the provider answered with an error body.
func isTransportError(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
