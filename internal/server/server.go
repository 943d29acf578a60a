// Package server defines the core Server struct that composes the
// app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - database pool
//   - upstream clients (billing, email, auth provider)
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/leaguelink/backend/internal/billing"
	"github.com/leaguelink/backend/internal/config"
	"github.com/leaguelink/backend/internal/database"
	"github.com/leaguelink/backend/internal/lib/authprovider"
	"github.com/leaguelink/backend/internal/lib/email"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// DB holds the PostgreSQL pool wrapper.
	DB *database.Database

	// Billing is the payment provider client. It is nil when no
	// billing secret key is configured; the service layer turns
	// that into a configuration error per request rather than
	// failing startup.
	Billing *billing.Client

	// Mailer sends transactional email. Nil when no email API key
	// is configured.
	Mailer email.Sender

	// Auth is the auth provider's Backend API client. Nil when no
	// auth secret key is configured.
	Auth *authprovider.Client

	// httpServer is the standard library HTTP server instance,
	// configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// The database must be reachable; the upstream provider clients are
// optional and remain nil when their credentials are absent, so that
// deployments without (say) billing still serve the rest of the API.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &Server{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}

	if cfg.Stripe.SecretKey != "" {
		s.Billing = billing.NewClient(nil, billing.Config{
			SecretKey: cfg.Stripe.SecretKey,
			BaseURL:   cfg.Stripe.APIBaseURL,
		}, logger)
	} else {
		logger.Warn().Msg("no billing secret key configured, payment endpoints will refuse requests")
	}

	if cfg.Email.ResendAPIKey != "" {
		s.Mailer = email.NewClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromAddress, logger)
	} else {
		logger.Warn().Msg("no email API key configured, email endpoints will refuse requests")
	}

	if cfg.Auth.SecretKey != "" {
		// The SDK's session middleware reads the key from this
		// package-level setting.
		clerk.SetKey(cfg.Auth.SecretKey)

		s.Auth = authprovider.NewClient(nil, authprovider.Config{
			SecretKey: cfg.Auth.SecretKey,
			BaseURL:   cfg.Auth.APIBaseURL,
		}, logger)
	} else {
		logger.Warn().Msg("no auth secret key configured, auth endpoints will refuse requests")
	}

	return s, nil
}

// SetupHTTPServer configures the internal net/http server with the
// given router as its handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be
// called first and blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server and closes the database
// pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
