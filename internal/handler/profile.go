package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leaguelink/backend/internal/middleware"
	"github.com/leaguelink/backend/internal/repository"
	"github.com/leaguelink/backend/internal/server"
	"github.com/leaguelink/backend/internal/service"
	"github.com/leaguelink/backend/internal/validation"
)

// ProfileHandler serves the authenticated member profile endpoints.
type ProfileHandler struct {
	Handler
	profile *service.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(s *server.Server, profile *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		Handler: NewHandler(s),
		profile: profile,
	}
}

// GetProfile returns the caller's profile. The profile key is the
// authenticated user id set by the auth middleware, so there is no
// request body to validate.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)

	profile, err := h.profile.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// UpsertProfileRequest is the payload for PUT /api/profile. The id
// and email are taken from the session, never the body.
type UpsertProfileRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	DisplayName string   `json:"displayName" validate:"required,max=100"`
	AvatarURL   string   `json:"avatarUrl" validate:"omitempty,url"`
	Handicap    *float64 `json:"handicap"`
	HomeCourse  string   `json:"homeCourse" validate:"max=200"`
}

func (r *UpsertProfileRequest) Validate() error {
	return validation.Struct(r)
}

// UpsertProfile saves the caller's profile.
func (h *ProfileHandler) UpsertProfile(c echo.Context, req *UpsertProfileRequest) (*repository.Profile, error) {
	return h.profile.Upsert(c.Request().Context(), &repository.Profile{
		ID:          middleware.GetUserID(c),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Handicap:    req.Handicap,
		HomeCourse:  req.HomeCourse,
	})
}
