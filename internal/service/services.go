package service

import (
	"github.com/leaguelink/backend/internal/repository"
	"github.com/leaguelink/backend/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Billing *BillingService
	Email   *EmailService
	Profile *ProfileService
	Auth    *AuthService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	emailService := NewEmailService(s)

	return &Services{
		Billing: NewBillingService(s),
		Email:   emailService,
		Profile: NewProfileService(s, repos.Profile),
		Auth:    NewAuthService(s, emailService),
	}, nil
}
