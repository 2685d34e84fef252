package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

const supplierColumns = "id, name, email, phone, address, created_at, updated_at"

type supplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a SupplierRepository backed by Postgres.
func NewSupplierRepository(db *sql.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Find(ctx context.Context, f repository.SupplierFilter) ([]entity.Supplier, int, error) {
	var b whereBuilder
	b.contains("name", f.Name)

	query := "SELECT " + supplierColumns + " FROM suppliers" + b.clause() + " ORDER BY created_at" + pageClause(f.Page)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []entity.Supplier{}
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM suppliers"+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return suppliers, total, nil
}

func (r *supplierRepository) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.db.QueryRowContext(ctx, "SELECT "+supplierColumns+" FROM suppliers WHERE id = $1", id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier: %w", err)
	}
	return &s, nil
}

func (r *supplierRepository) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO suppliers (id, name, email, phone, address) VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at",
		s.ID, s.Name, s.Email, s.Phone, s.Address,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert supplier: %w", err)
	}
	return nil
}

var supplierPatchColumns = map[string]string{
	"name":        "name",
	"email":       "email",
	"phoneNumber": "phone",
	"address":     "address",
}

func (r *supplierRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args := buildUpdate("suppliers", supplierPatchColumns, patch, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.db.QueryRowContext(ctx, "DELETE FROM suppliers WHERE id = $1 RETURNING "+supplierColumns, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete supplier: %w", err)
	}
	return &s, nil
}
