package repository

import (
	"github.com/leaguelink/backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Profile *ProfileRepository
}

// NewRepositories constructs the repository container from the
// application's shared dependencies.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Profile: NewProfileRepository(s.DB.Pool, s.Logger),
	}
}
