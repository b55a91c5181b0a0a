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

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepository
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, user_id, name, kind, color, icon, is_default, created_at, last_updated_at`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.Kind,
		&m.Color,
		&m.Icon,
		&m.IsDefault,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveCategory inserts a new category. Duplicate (user, name, kind) triples
// surface as ErrDuplicate via the unique index.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, user_id, name, kind, color, icon, is_default, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Kind,
		m.Color,
		m.Icon,
		m.IsDefault,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to save category %s", m.CategoryID))
	}
	return nil
}

// FindCategoryByID retrieves one of the user's categories.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE category_id = $1 AND user_id = $2;
	`
	m, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	cat := mapping.ToDomainCategory(m)
	return &cat, nil
}

// ListCategories retrieves the user's categories ordered by name, optionally
// filtered by kind.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string, kind *domain.CategoryKind) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = $1
	`
	args := []any{userID}
	if kind != nil {
		query += ` AND kind = $2`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	ms := []models.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row for user %s: %w", userID, err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows for user %s: %w", userID, rows.Err())
	}

	return mapping.ToDomainCategorySlice(ms), nil
}

// UpdateCategory updates a category's display fields. Kind is immutable.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $3, color = $4, icon = $5, last_updated_at = $6
		WHERE category_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Color,
		m.Icon,
		m.LastUpdatedAt,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update category %s", m.CategoryID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. The ON DELETE SET NULL rules on
// transactions and budgets null out their references, so history survives
// uncategorized.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	query := `
		DELETE FROM categories
		WHERE category_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
