package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/leaguelink/backend/internal/middleware"
	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/service"
	"github.com/leaguelink/backend/internal/validation"
)

// AuthHandler serves the account endpoints proxied to the hosted auth
// provider.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// SignUpRequest is the payload for POST /api/auth/sign-up.
type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

func (r *SignUpRequest) Validate() error {
	return validation.Struct(r)
}

// SignUp creates the account with the auth provider.
func (h *AuthHandler) SignUp(c echo.Context, req *SignUpRequest) (*service.SignUpResult, error) {
	return h.auth.SignUp(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName)
}

// SignInRequest is the payload for POST /api/auth/sign-in.
type SignInRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *SignInRequest) Validate() error {
	return validation.Struct(r)
}

// SignIn mints a single-use sign-in token for the account.
func (h *AuthHandler) SignIn(c echo.Context, req *SignInRequest) (*service.SignInResult, error) {
	return h.auth.SignIn(c.Request().Context(), req.Email)
}

// SignOutRequest is the (empty) payload for POST /api/auth/sign-out;
// the session to revoke comes from the authenticated context.
type SignOutRequest struct{}

func (r *SignOutRequest) Validate() error {
	return nil
}

// SignOut revokes the caller's session with the provider.
func (h *AuthHandler) SignOut(c echo.Context, req *SignOutRequest) (*service.StatusResult, error) {
	return h.auth.SignOut(c.Request().Context(), middleware.GetSessionID(c))
}

// PasswordResetRequest is the payload for POST /api/auth/request-password-reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *PasswordResetRequest) Validate() error {
	return validation.Struct(r)
}

// RequestPasswordReset emails a reset link to the account, answering
// identically for unknown addresses.
func (h *AuthHandler) RequestPasswordReset(c echo.Context, req *PasswordResetRequest) (*service.StatusResult, error) {
	return h.auth.RequestPasswordReset(c.Request().Context(), req.Email)
}
