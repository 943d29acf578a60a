// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leaguelink/backend/internal/handler"
	"github.com/leaguelink/backend/internal/middleware"
	"github.com/leaguelink/backend/internal/server"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered.
//
// Both CORS middlewares are registered globally with path-based
// skippers rather than per group: group middleware never runs for
// unmatched methods, and the function endpoints must answer preflight
// and 405 with their CORS headers intact.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.FunctionCORS())
	e.Use(m.Global.CORS())

	registerFunctionRoutes(e, h)
	registerAuthRoutes(e, h)
	registerProfileRoutes(e, h, m)
	registerSystemRoutes(e, h)

	return e
}

// registerFunctionRoutes wires the browser-called function endpoints.
// They are POST-only; preflight OPTIONS is answered by FunctionCORS
// before routing.
func registerFunctionRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	api.POST("/create-setup-intent", handler.Handle(h.Payments.CreateSetupIntent, http.StatusOK))
	api.POST("/create-subscription", handler.Handle(h.Payments.CreateSubscription, http.StatusOK))
	api.POST("/create-portal-session", handler.Handle(h.Payments.CreatePortalSession, http.StatusOK))
	api.POST("/send-email", handler.Handle(h.Email.SendEmail, http.StatusOK))
}

// registerAuthRoutes wires the account endpoints proxied to the
// hosted auth provider.
func registerAuthRoutes(e *echo.Echo, h *handler.Handlers) {
	auth := e.Group("/api/auth")

	auth.POST("/sign-up", handler.Handle(h.Auth.SignUp, http.StatusOK))
	auth.POST("/sign-in", handler.Handle(h.Auth.SignIn, http.StatusOK))
	auth.POST("/request-password-reset", handler.Handle(h.Auth.RequestPasswordReset, http.StatusOK))
}

// registerProfileRoutes wires the authenticated member endpoints.
func registerProfileRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	profile := e.Group("/api", m.Auth.RequireAuth)

	profile.GET("/profile", h.Profile.GetProfile)
	profile.PUT("/profile", handler.Handle(h.Profile.UpsertProfile, http.StatusOK))
	profile.POST("/auth/sign-out", handler.Handle(h.Auth.SignOut, http.StatusOK))
}
