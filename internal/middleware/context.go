package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/leaguelink/backend/internal/server"
)

const (
	// UserIDKey is the Echo context key under which auth middleware
	// stores the authenticated user's id.
	UserIDKey = "user_id"

	// SessionIDKey is the Echo context key for the Clerk session id.
	SessionIDKey = "session_id"

	// LoggerKey is the key for the request-scoped logger, in both the
	// Echo context and the request's context.Context.
	LoggerKey = "logger"
)

// ContextEnhancer builds a request-scoped logger with request_id,
// method, path and ip fields and stores it in both the Echo context
// and the Go request context, so layers that only see a
// context.Context can still log with correlation fields.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the Echo middleware.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			// Auth middleware runs later for guarded routes, so the
			// user id is only present when a prior middleware set it.
			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetUserID reads the authenticated user id from Echo context, or
// empty when no auth middleware ran.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetSessionID reads the Clerk session id from Echo context.
func GetSessionID(c echo.Context) string {
	if sessionID, ok := c.Get(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from Echo context,
// falling back to a no-op logger when EnhanceContext has not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
