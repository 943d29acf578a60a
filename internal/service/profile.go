package service

import (
	"context"

	"github.com/leaguelink/backend/internal/repository"
	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/sqlerr"
)

// ProfileService manages member profiles.
type ProfileService struct {
	server *server.Server
	repo   *repository.ProfileRepository
}

// NewProfileService creates a ProfileService.
func NewProfileService(s *server.Server, repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		server: s,
		repo:   repo,
	}
}

// Get fetches the profile owned by the given user id.
func (s *ProfileService) Get(ctx context.Context, userID string) (*repository.Profile, error) {
	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return profile, nil
}

// Upsert saves the caller's profile. The id and email come from the
// authenticated session, never from the request body, so a member can
// only ever write their own row.
func (s *ProfileService) Upsert(ctx context.Context, profile *repository.Profile) (*repository.Profile, error) {
	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return saved, nil
}
