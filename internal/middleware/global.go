package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/leaguelink/backend/internal/errs"
	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/sqlerr"
)

// functionPaths are the browser-called function endpoints that carry
// the fixed permissive CORS policy instead of the config-driven one.
var functionPaths = map[string]bool{
	"/api/create-setup-intent":   true,
	"/api/create-subscription":   true,
	"/api/create-portal-session": true,
	"/api/send-email":            true,
}

// isFunctionPath reports whether the request targets one of the
// function endpoints.
func isFunctionPath(c echo.Context) bool {
	return functionPaths[c.Request().URL.Path]
}

// GlobalMiddlewares groups global middleware and the global error
// handler. The struct form gives middleware access to shared app
// dependencies on *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns the config-driven CORS middleware used by everything
// except the function endpoints. Registered globally (not per group)
// so preflight and method-mismatch responses still carry the headers.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      isFunctionPath,
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// FunctionCORS returns the fixed CORS policy for the function
// endpoints: any origin, the browser client's standard headers, POST
// plus preflight. Preflight requests short-circuit here with a 204.
func (global *GlobalMiddlewares) FunctionCORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return !isFunctionPath(c)
		},
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
	})
}

// RequestLogger returns Echo's request logger middleware with a
// custom LogValuesFunc that writes one structured "API" line per
// request through the request-scoped zerolog logger.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error the final status is
			// decided later by the global error handler, so derive
			// it from the error type to avoid logging status=200.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}
			if userID := GetUserID(c); userID != "" {
				e = e.Str("user_id", userID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware, translating
// handler panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP
// server. Every handler error ends up here and is translated into
// the {"error": message} envelope.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	// Keep the original error for logging; err may be replaced with
	// a sanitized version for the client.
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound:
				err = errs.NewNotFoundError("Route not found")
			case http.StatusMethodNotAllowed:
				err = errs.NewMethodNotAllowedError()
			}
		} else {
			// Likely a database or unknown error; sqlerr classifies
			// driver errors and falls back to a generic 500.
			err = sqlerr.HandleError(err)
		}
	}

	var echoErr *echo.HTTPError
	var status int
	var message string

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Status
		message = httpErr.Message

	case errors.As(err, &echoErr):
		status = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(echoErr.Code)
		}

	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	logger := GetLogger(c)

	var e *zerolog.Event
	if status >= 500 {
		e = logger.Error().Stack().Err(originalErr)
	} else {
		e = logger.Warn()
	}
	e.Int("status", status).Msg(message)

	if !c.Response().Committed {
		_ = c.JSON(status, errs.HTTPError{
			Status:  status,
			Message: message,
		})
	}
}
