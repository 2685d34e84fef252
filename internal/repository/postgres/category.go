package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

const categoryColumns = "id, name, description, image, created_at, updated_at"

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a CategoryRepository backed by Postgres.
func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Find(ctx context.Context, f repository.CategoryFilter) ([]entity.Category, int, error) {
	var b whereBuilder
	b.contains("name", f.Name)

	query := "SELECT " + categoryColumns + " FROM categories" + b.clause() + " ORDER BY created_at" + pageClause(f.Page)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []entity.Category{}
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// Count is a second round trip; no snapshot guarantee with the page.
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories"+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return categories, total, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *entity.Category) error {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO categories (id, name, description, image) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at",
		c.ID, c.Name, c.Description, c.Image,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

var categoryPatchColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"img":         "image",
}

func (r *categoryRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args := buildUpdate("categories", categoryPatchColumns, patch, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRowContext(ctx, "DELETE FROM categories WHERE id = $1 RETURNING "+categoryColumns, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return &c, nil
}
