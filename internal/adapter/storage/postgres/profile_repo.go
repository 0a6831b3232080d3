package postgres

import (
	"context"
	"errors"
	"fmt"

	"vcard-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ports.ProfileRepository. Profiles are owned by
// the identity provider; this repo is read-only.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetByID fetches a profile by UUID, or nil if none exists.
func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT id, display_name, role FROM profiles WHERE id = $1`

	p := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.DisplayName, &p.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

// GetRole returns the user's role, or "" when no profile exists.
func (r *ProfileRepo) GetRole(ctx context.Context, id uuid.UUID) (string, error) {
	query := `SELECT role FROM profiles WHERE id = $1`

	var role string
	err := r.pool.QueryRow(ctx, query, id).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get profile role: %w", err)
	}
	return role, nil
}
