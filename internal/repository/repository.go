package repository

import (
	"context"
	"errors"

	"github.com/phamanh/retail-store-backend/internal/entity"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("object not found")

// ErrInsufficientStock is returned when an order would drive a product's
// stock negative. The whole order transaction is rolled back.
var ErrInsufficientStock = errors.New("insufficient stock")

// Range is an inclusive numeric filter; a nil bound matches everything on
// that side.
type Range struct {
	Start *float64
	End   *float64
}

// Page is skip/limit pagination. A zero Limit means no limit.
type Page struct {
	Skip  int
	Limit int
}

type CategoryFilter struct {
	Name string
	Page
}

type SupplierFilter struct {
	Name string
	Page
}

type ProductFilter struct {
	CategoryID  string
	SupplierID  string
	Name        string
	Description string
	Stock       Range
	Price       Range
	Discount    Range
	Page
}

type CustomerFilter struct {
	FirstName string
	LastName  string
	Page
}

type EmployeeFilter struct {
	FirstName string
	LastName  string
	Page
}

type OrderFilter struct {
	CustomerID string
	EmployeeID string
	Status     string
	Page
}

// CategoryRepository persists categories. Find returns the matching page
// plus the total count ignoring pagination.
type CategoryRepository interface {
	Find(ctx context.Context, f CategoryFilter) ([]entity.Category, int, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) (*entity.Category, error)
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	Find(ctx context.Context, f SupplierFilter) ([]entity.Supplier, int, error)
	FindByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) (*entity.Supplier, error)
}

// ProductRepository persists products. Reads resolve the category and
// supplier references and attach the derived total.
type ProductRepository interface {
	Find(ctx context.Context, f ProductFilter) ([]entity.Product, int, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) (*entity.Product, error)
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Find(ctx context.Context, f CustomerFilter) ([]entity.Customer, int, error)
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) (*entity.Customer, error)
}

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	Find(ctx context.Context, f EmployeeFilter) ([]entity.Employee, int, error)
	FindByID(ctx context.Context, id string) (*entity.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	Create(ctx context.Context, e *entity.Employee) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) (*entity.Employee, error)
}

// OrderRepository persists orders. Create runs the order insert, line-item
// inserts and stock decrements in one transaction, failing with
// ErrInsufficientStock when any decrement would go negative. Reads resolve
// customer, employee and line-item products.
type OrderRepository interface {
	Find(ctx context.Context, f OrderFilter) ([]entity.Order, int, error)
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	Create(ctx context.Context, o *entity.Order) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) (*entity.Order, error)
}

// CartRepository stores carts as productID->quantity maps keyed by customer.
type CartRepository interface {
	AddItem(ctx context.Context, customerID, productID string, quantity int) error
	Items(ctx context.Context, customerID string) (map[string]int, error)
	RemoveItem(ctx context.Context, customerID, productID string) error
	Clear(ctx context.Context, customerID string) error
}
