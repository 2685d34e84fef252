package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates an OrderRepository backed by Postgres.
func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Find(ctx context.Context, f repository.OrderFilter) ([]entity.Order, int, error) {
	var b whereBuilder
	b.equal("customer_id", f.CustomerID)
	b.equal("employee_id", f.EmployeeID)
	b.equal("status", f.Status)

	query := "SELECT id, customer_id, employee_id, status, created_at, updated_at FROM orders" +
		b.clause() + " ORDER BY created_at DESC" + pageClause(f.Page)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		if err := r.resolve(ctx, &orders[i]); err != nil {
			return nil, 0, err
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders"+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return orders, total, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.QueryRowContext(ctx,
		"SELECT id, customer_id, employee_id, status, created_at, updated_at FROM orders WHERE id = $1", id).
		Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	if err := r.resolve(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// resolve loads line items with their products, the customer and the
// employee. References that no longer exist stay unresolved: foreign keys
// are weak, deletes do not cascade into orders.
func (r *orderRepository) resolve(ctx context.Context, o *entity.Order) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY id", o.ID)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	o.Items = []entity.OrderItem{}
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range o.Items {
		p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+" WHERE p.id = $1", o.Items[i].ProductID))
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to resolve order product: %w", err)
		}
		o.Items[i].Product = p
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", o.CustomerID))
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to resolve order customer: %w", err)
	}
	o.Customer = customer

	employee, err := scanEmployee(r.db.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE id = $1", o.EmployeeID))
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to resolve order employee: %w", err)
	}
	o.Employee = employee

	o.Total = o.ComputedTotal()
	return nil
}

// Create stores the order, its line items and the stock decrements in one
// transaction. A decrement that would go negative matches no row and aborts
// the whole order with ErrInsufficientStock.
func (r *orderRepository) Create(ctx context.Context, o *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		"INSERT INTO orders (id, customer_id, employee_id, status) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at",
		o.ID, o.CustomerID, o.EmployeeID, o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)",
			o.ID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			"UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1",
			item.Quantity, item.ProductID,
		)
		if err != nil {
			return fmt.Errorf("failed to update product stock: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("product %s: %w", item.ProductID, repository.ErrInsufficientStock)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Order saved", "order_id", o.ID, "items", len(o.Items))
	return r.resolve(ctx, o)
}

var orderPatchColumns = map[string]string{
	"customerId": "customer_id",
	"employeeId": "employee_id",
	"status":     "status",
}

func (r *orderRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args := buildUpdate("orders", orderPatchColumns, patch, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	// Line items go with the order via ON DELETE CASCADE, so capture them
	// first for the response body.
	found, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx,
		"DELETE FROM orders WHERE id = $1 RETURNING id, customer_id, employee_id, status, created_at, updated_at", id).
		Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}
	found.Status = o.Status
	return found, nil
}
