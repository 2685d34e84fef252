package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

const employeeColumns = "id, first_name, last_name, email, phone, address, birthday, password, created_at, updated_at"

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates an EmployeeRepository backed by Postgres.
func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row interface{ Scan(...any) error }) (*entity.Employee, error) {
	var e entity.Employee
	var birthday sql.NullTime
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Address,
		&birthday, &e.Password, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if birthday.Valid {
		e.Birthday = &birthday.Time
	}
	e.FullName = e.ComputedFullName()
	return &e, nil
}

func (r *employeeRepository) Find(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int, error) {
	var b whereBuilder
	b.contains("first_name", f.FirstName)
	b.contains("last_name", f.LastName)

	query := "SELECT " + employeeColumns + " FROM employees" + b.clause() + " ORDER BY created_at" + pageClause(f.Page)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []entity.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees"+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return employees, total, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employees WHERE email = $1", email))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee by email: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO employees (id, first_name, last_name, email, phone, address, birthday, password)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.Birthday, e.Password,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	e.FullName = e.ComputedFullName()
	return nil
}

var employeePatchColumns = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"phoneNumber": "phone",
	"address":     "address",
	"birthday":    "birthday",
	"password":    "password",
}

func (r *employeeRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args := buildUpdate("employees", employeePatchColumns, patch, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx,
		"DELETE FROM employees WHERE id = $1 RETURNING "+employeeColumns, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete employee: %w", err)
	}
	return e, nil
}
