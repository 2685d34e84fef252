package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed inserts a starter catalog when the database is empty, so a fresh
// deployment has something to browse.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	electronics := uuid.New().String()
	furniture := uuid.New().String()
	categories := []struct{ id, name, description string }{
		{electronics, "Electronics", "Computers, peripherals and gadgets"},
		{furniture, "Furniture", "Office and home furniture"},
	}
	for _, c := range categories {
		if _, err := db.Exec(
			"INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)",
			c.id, c.name, c.description,
		); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.name, err)
		}
	}

	acme := uuid.New().String()
	northwind := uuid.New().String()
	suppliers := []struct{ id, name, email, phone, address string }{
		{acme, "Acme Distribution", "sales@acme.example.com", "0321234567", "12 Le Loi, District 1"},
		{northwind, "Northwind Trading", "contact@northwind.example.com", "0987654321", "45 Tran Hung Dao, District 5"},
	}
	for _, s := range suppliers {
		if _, err := db.Exec(
			"INSERT INTO suppliers (id, name, email, phone, address) VALUES ($1, $2, $3, $4, $5)",
			s.id, s.name, s.email, s.phone, s.address,
		); err != nil {
			return fmt.Errorf("failed to seed supplier %s: %w", s.name, err)
		}
	}

	products := []struct {
		name            string
		price, discount float64
		stock           int
		description     string
		categoryID      string
		supplierID      string
	}{
		{"Wireless Noise-Cancelling Headphones", 349.99, 10, 50, "Over-ear headphones with active noise cancellation.", electronics, acme},
		{"Mechanical Keyboard RGB", 179.99, 0, 120, "Cherry MX switches with per-key RGB lighting.", electronics, acme},
		{"Ultrawide Curved Monitor 34\"", 699.99, 5, 30, "UWQHD 144Hz IPS panel with USB-C.", electronics, northwind},
		{"Ergonomic Office Chair", 549.99, 15, 25, "Adjustable lumbar support and 4D armrests.", furniture, northwind},
	}
	for _, p := range products {
		if _, err := db.Exec(
			`INSERT INTO products (id, name, price, discount, stock, description, image, category_id, supplier_id)
			 VALUES ($1, $2, $3, $4, $5, $6, '', $7, $8)`,
			uuid.New().String(), p.name, p.price, p.discount, p.stock, p.description, p.categoryID, p.supplierID,
		); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.name, err)
		}
	}

	slog.Info("Seeded catalog", "categories", len(categories), "suppliers", len(suppliers), "products", len(products))
	return nil
}
