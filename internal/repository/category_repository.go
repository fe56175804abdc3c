package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-api/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// FindByID returns the category with the given id, or (nil, nil) when no such
// category exists.
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, create_time, update_time
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &c, nil
}

// FindAll returns every category ordered by id.
func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, create_time, update_time
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	return categories, nil
}

// Create inserts the category and fills in the store-assigned id and
// timestamps.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, create_time, update_time
	`, category.Name, category.Description).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update replaces the category's name and description and refreshes the
// update timestamp, writing the new timestamp back into the entity.
func (r *PostgresCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE categories
		SET name = $2, description = $3, update_time = NOW()
		WHERE id = $1
		RETURNING update_time
	`, category.ID, category.Name, category.Description).Scan(&category.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update category %d: no such row", category.ID)
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ExistsByID reports whether a category with the given id exists.
func (r *PostgresCategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category exists: %w", err)
	}
	return exists, nil
}

// ExistsByName reports whether a category with the given name exists.
// Matching is exact.
func (r *PostgresCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category name exists: %w", err)
	}
	return exists, nil
}

// DeleteByID removes the category with the given id. Articles referencing it
// are left untouched; their category reference dangles.
func (r *PostgresCategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
