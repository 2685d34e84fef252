package entity

import (
	"time"
)

// Category groups products. Referenced by Product.CategoryID.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"img,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Supplier provides products. Referenced by Product.SupplierID.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phoneNumber,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Product is a catalog item. Category and Supplier are resolved references
// populated by the repository on reads; Total is derived, never stored.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	Image       string    `json:"img"`
	CategoryID  string    `json:"categoryId"`
	SupplierID  string    `json:"supplierId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Total    float64   `json:"total"`
	Category *Category `json:"category,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
}

// DiscountedTotal returns the effective price after discount.
func (p *Product) DiscountedTotal() float64 {
	return p.Price * (100 - p.Discount) / 100
}

// Customer is a shopper account. Password holds the bcrypt hash and is never
// serialized.
type Customer struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phoneNumber,omitempty"`
	Address   string     `json:"address,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Password  string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Employee is a staff account. Password holds the bcrypt hash and is never
// serialized; FullName is derived.
type Employee struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phoneNumber,omitempty"`
	Address   string     `json:"address"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Password  string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	FullName string `json:"fullName"`
}

// ComputedFullName joins first and last name.
func (e *Employee) ComputedFullName() string {
	return e.FirstName + " " + e.LastName
}

// OrderItem is a line item within an order. Product is resolved on reads.
type OrderItem struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// Order references a customer, the employee who handled it, and its line
// items. Customer, Employee and item Products are resolved on reads; Total is
// derived from the resolved products' discounted prices.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	EmployeeID string      `json:"employeeId"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"orderDetails"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`

	Total    float64   `json:"total"`
	Customer *Customer `json:"customer,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}

// ComputedTotal sums quantity times discounted price over resolved items.
// Items whose product is not resolved contribute nothing.
func (o *Order) ComputedTotal() float64 {
	var total float64
	for _, item := range o.Items {
		if item.Product != nil {
			total += item.Product.DiscountedTotal() * float64(item.Quantity)
		}
	}
	return total
}

// OrderPlaced is published to the message broker after an order commits.
type OrderPlaced struct {
	OrderID    string      `json:"order_id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"total_price"`
	PlacedAt   time.Time   `json:"placed_at"`
}

// CartItem is one product line in a customer's cart.
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Cart is a customer's cart with product references resolved.
type Cart struct {
	CustomerID string     `json:"customerId"`
	Items      []CartItem `json:"items"`
}
