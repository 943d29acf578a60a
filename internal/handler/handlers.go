package handler

import (
	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers, keeping
// router setup to a single object.
type Handlers struct {
	Health   *HealthHandler
	Payments *PaymentsHandler
	Email    *EmailHandler
	Profile  *ProfileHandler
	Auth     *AuthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Payments: NewPaymentsHandler(s, services.Billing),
		Email:    NewEmailHandler(s, services.Email),
		Profile:  NewProfileHandler(s, services.Profile),
		Auth:     NewAuthHandler(s, services.Auth),
	}
}
