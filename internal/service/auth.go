package service

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/leaguelink/backend/internal/errs"
	"github.com/leaguelink/backend/internal/lib/authprovider"
	"github.com/leaguelink/backend/internal/lib/email"
	"github.com/leaguelink/backend/internal/server"
)

// signInTokenTTL is how long a minted sign-in token stays valid, in
// seconds. Covers both the sign-in exchange and the password-reset
// link.
const signInTokenTTL = 3600

// AuthService proxies account operations to the hosted auth provider.
// The provider owns credentials and sessions; this service only
// chains provider calls and email dispatch.
type AuthService struct {
	server *server.Server
	email  *EmailService
}

// NewAuthService creates an AuthService.
func NewAuthService(s *server.Server, emailService *EmailService) *AuthService {
	return &AuthService{
		server: s,
		email:  emailService,
	}
}

// SignUpResult identifies the account created with the provider.
type SignUpResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// SignInResult carries the single-use token the browser exchanges for
// a session.
type SignInResult struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// StatusResult is the generic acknowledgement for fire-and-forget
// auth operations.
type StatusResult struct {
	Sent bool `json:"sent"`
}

// SignUp creates the account with the auth provider and sends the
// welcome email when mail is configured. A mail failure does not fail
// the sign-up.
func (s *AuthService) SignUp(ctx context.Context, emailAddr, password, firstName, lastName string) (*SignUpResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	user, err := client.CreateUser(ctx, emailAddr, password, firstName, lastName)
	if err != nil {
		return nil, s.mapAuthError(err, "failed to create user")
	}

	if s.server.Mailer != nil {
		if _, err := s.email.Send(ctx, string(email.TemplateWelcome), emailAddr, map[string]string{
			"name": user.DisplayName(),
		}); err != nil {
			s.server.Logger.Warn().Err(err).Msg("welcome email failed, continuing")
		}
	}

	return &SignUpResult{
		UserID: user.ID,
		Email:  user.PrimaryEmail(),
	}, nil
}

// SignIn mints a single-use sign-in token for the account registered
// under the given email. Unknown emails are a 404 so the login form
// can distinguish them from bad provider state.
func (s *AuthService) SignIn(ctx context.Context, emailAddr string) (*SignInResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	user, err := client.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		return nil, s.mapAuthError(err, "failed to look up user")
	}
	if user == nil {
		return nil, errs.NewNotFoundError("Account not found")
	}

	token, err := client.CreateSignInToken(ctx, user.ID, signInTokenTTL)
	if err != nil {
		return nil, s.mapAuthError(err, "failed to create sign-in token")
	}

	return &SignInResult{
		UserID: user.ID,
		Token:  token.Token,
	}, nil
}

// SignOut revokes the given session with the provider.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) (*StatusResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	if err := client.RevokeSession(ctx, sessionID); err != nil {
		return nil, s.mapAuthError(err, "failed to revoke session")
	}

	return &StatusResult{Sent: true}, nil
}

// RequestPasswordReset looks up the account, mints a sign-in token
// and emails a reset link built on the configured reset URL. Unknown
// emails still return success so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) (*StatusResult, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	user, err := client.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		return nil, s.mapAuthError(err, "failed to look up user")
	}
	if user == nil {
		s.server.Logger.Info().Msg("password reset requested for unknown email")
		return &StatusResult{Sent: true}, nil
	}

	token, err := client.CreateSignInToken(ctx, user.ID, signInTokenTTL)
	if err != nil {
		return nil, s.mapAuthError(err, "failed to create sign-in token")
	}

	resetLink := s.server.Config.Auth.PasswordResetURL + "?token=" + token.Token

	if _, err := s.email.Send(ctx, string(email.TemplatePasswordReset), emailAddr, map[string]string{
		"name": user.DisplayName(),
		"link": resetLink,
	}); err != nil {
		return nil, err
	}

	return &StatusResult{Sent: true}, nil
}

// client returns the auth provider client, or a configuration error
// when the deployment has no auth credentials.
func (s *AuthService) client() (*authprovider.Client, error) {
	if s.server.Auth == nil {
		s.server.Logger.Error().Msg("auth request received but no auth provider client is configured")
		return nil, errs.NewConfigurationError()
	}
	return s.server.Auth, nil
}

// mapAuthError converts auth provider failures into envelope errors,
// mirroring the billing mapping: provider errors become 502s with the
// provider's message, transport failures stay plain errors for the
// global handler.
func (s *AuthService) mapAuthError(err error, logMessage string) error {
	var authErr *authprovider.Error
	if errors.As(err, &authErr) {
		if authErr.Status == http.StatusUnprocessableEntity || authErr.Status == http.StatusBadRequest {
			return errs.NewBadRequestError(authErr.Message)
		}
		if authErr.NotFound() {
			return errs.NewNotFoundError("Account not found")
		}

		s.server.Logger.Warn().Err(err).Msg(logMessage)
		return errs.NewUpstreamError(authErr.Message)
	}

	s.server.Logger.Error().Err(err).Msg(logMessage)
	return err
}
