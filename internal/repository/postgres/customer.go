package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

const customerColumns = "id, first_name, last_name, email, phone, address, birthday, password, created_at, updated_at"

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a CustomerRepository backed by Postgres.
func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func scanCustomer(row interface{ Scan(...any) error }) (*entity.Customer, error) {
	var c entity.Customer
	var birthday sql.NullTime
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&birthday, &c.Password, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if birthday.Valid {
		c.Birthday = &birthday.Time
	}
	return &c, nil
}

func (r *customerRepository) Find(ctx context.Context, f repository.CustomerFilter) ([]entity.Customer, int, error) {
	var b whereBuilder
	b.contains("first_name", f.FirstName)
	b.contains("last_name", f.LastName)

	query := "SELECT " + customerColumns + " FROM customers" + b.clause() + " ORDER BY created_at" + pageClause(f.Page)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []entity.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers"+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	return c, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE email = $1", email))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer by email: %w", err)
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *entity.Customer) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO customers (id, first_name, last_name, email, phone, address, birthday, password)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.Birthday, c.Password,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

var customerPatchColumns = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"phoneNumber": "phone",
	"address":     "address",
	"birthday":    "birthday",
	"password":    "password",
}

func (r *customerRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args := buildUpdate("customers", customerPatchColumns, patch, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		"DELETE FROM customers WHERE id = $1 RETURNING "+customerColumns, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}
	return c, nil
}
