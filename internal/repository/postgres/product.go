package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

// productSelect joins the category and supplier references so reads come
// back resolved in a single round trip. The joins are LEFT because foreign
// keys are weak references: deleting a category does not cascade.
const productSelect = `
	SELECT p.id, p.name, p.price, p.discount, p.stock, p.description, p.image,
	       p.category_id, p.supplier_id, p.created_at, p.updated_at,
	       c.id, c.name, c.description, c.image, c.created_at, c.updated_at,
	       s.id, s.name, s.email, s.phone, s.address, s.created_at, s.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id`

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a ProductRepository backed by Postgres.
func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func scanProduct(row interface{ Scan(...any) error }) (*entity.Product, error) {
	var p entity.Product
	var (
		catID, catName, catDesc, catImage    sql.NullString
		catCreated, catUpdated               sql.NullTime
		supID, supName, supEmail             sql.NullString
		supPhone, supAddress                 sql.NullString
		supCreated, supUpdated               sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Discount, &p.Stock, &p.Description, &p.Image,
		&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catDesc, &catImage, &catCreated, &catUpdated,
		&supID, &supName, &supEmail, &supPhone, &supAddress, &supCreated, &supUpdated,
	)
	if err != nil {
		return nil, err
	}
	if catID.Valid {
		p.Category = &entity.Category{
			ID:          catID.String,
			Name:        catName.String,
			Description: catDesc.String,
			Image:       catImage.String,
			CreatedAt:   catCreated.Time,
			UpdatedAt:   catUpdated.Time,
		}
	}
	if supID.Valid {
		p.Supplier = &entity.Supplier{
			ID:        supID.String,
			Name:      supName.String,
			Email:     supEmail.String,
			Phone:     supPhone.String,
			Address:   supAddress.String,
			CreatedAt: supCreated.Time,
			UpdatedAt: supUpdated.Time,
		}
	}
	p.Total = p.DiscountedTotal()
	return &p, nil
}

func (r *productRepository) Find(ctx context.Context, f repository.ProductFilter) ([]entity.Product, int, error) {
	var b whereBuilder
	b.equal("p.category_id", f.CategoryID)
	b.equal("p.supplier_id", f.SupplierID)
	b.contains("p.name", f.Name)
	b.contains("p.description", f.Description)
	b.between("p.stock", f.Stock)
	b.between("p.price", f.Price)
	b.between("p.discount", f.Discount)

	query := productSelect + b.clause() + " ORDER BY p.created_at" + pageClause(f.Page)
	rows, err := r.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products p"+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}
	return products, total, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+" WHERE p.id = $1", id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return p, nil
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (id, name, price, discount, stock, description, image, category_id, supplier_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Price, p.Discount, p.Stock, p.Description, p.Image, p.CategoryID, p.SupplierID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	p.Total = p.DiscountedTotal()
	return nil
}

var productPatchColumns = map[string]string{
	"name":        "name",
	"price":       "price",
	"discount":    "discount",
	"stock":       "stock",
	"description": "description",
	"img":         "image",
	"categoryId":  "category_id",
	"supplierId":  "supplier_id",
}

func (r *productRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args := buildUpdate("products", productPatchColumns, patch, id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM products WHERE id = $1
		 RETURNING id, name, price, discount, stock, description, image, category_id, supplier_id, created_at, updated_at`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Discount, &p.Stock, &p.Description, &p.Image,
			&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	p.Total = p.DiscountedTotal()
	return &p, nil
}
