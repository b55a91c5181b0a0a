package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	"github.com/kash-money/kash_backend/internal/models"
	"github.com/kash-money/kash_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, name, auth_provider, provider_user_id, created_at, last_updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindUserByID retrieves a user by internal ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1;
	`
	m, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	u := mapping.ToDomainUser(m)
	return &u, nil
}

// FindUserByProviderID retrieves a user by identity-provider subject.
func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE auth_provider = $1 AND provider_user_id = $2;
	`
	m, err := scanUser(r.pool.QueryRow(ctx, query, string(provider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider ID: %w", err)
	}

	u := mapping.ToDomainUser(m)
	return &u, nil
}

// SaveUser inserts a user synced from the identity provider.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (user_id, email, name, auth_provider, provider_user_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.Name,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to save user %s", m.UserID))
	}
	return nil
}

// UpdateUser refreshes the provider-synced profile fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	query := `
		UPDATE users
		SET email = $2, name = $3, last_updated_at = $4
		WHERE user_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, m.UserID, m.Email, m.Name, m.LastUpdatedAt)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update user %s", m.UserID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
