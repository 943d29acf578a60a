package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Profile is a member's profile record. The id is the auth provider's
// user id, so profiles are keyed to the identity that owns them.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
	Handicap    *float64  `json:"handicap"`
	HomeCourse  string    `json:"homeCourse"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileRepository persists member profiles.
type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zerolog.Logger
}

// NewProfileRepository creates a ProfileRepository.
func NewProfileRepository(db *pgxpool.Pool, logger *zerolog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// Get fetches a profile by user id. A missing row surfaces as a
// wrapped pgx.ErrNoRows for the service layer to classify.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT id, email, display_name, avatar_url, handicap, home_course, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var p Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.Email,
		&p.DisplayName,
		&p.AvatarURL,
		&p.Handicap,
		&p.HomeCourse,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "ProfileRepository.Get: query failed")
	}

	return &p, nil
}

// Upsert inserts the profile or updates it in place when a row with
// the same user id already exists.
func (r *ProfileRepository) Upsert(ctx context.Context, p *Profile) (*Profile, error) {
	query := `
		INSERT INTO profiles (id, email, display_name, avatar_url, handicap, home_course)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			handicap = EXCLUDED.handicap,
			home_course = EXCLUDED.home_course,
			updated_at = now()
		RETURNING id, email, display_name, avatar_url, handicap, home_course, created_at, updated_at`

	var saved Profile
	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.Email,
		p.DisplayName,
		p.AvatarURL,
		p.Handicap,
		p.HomeCourse,
	).Scan(
		&saved.ID,
		&saved.Email,
		&saved.DisplayName,
		&saved.AvatarURL,
		&saved.Handicap,
		&saved.HomeCourse,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "ProfileRepository.Upsert: query failed")
	}

	return &saved, nil
}
