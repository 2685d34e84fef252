// Package http is the delivery layer: route registration, per-entity CRUD
// handlers, validation and session middleware, and response envelopes.
package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/phamanh/retail-store-backend/internal/repository"
	"github.com/phamanh/retail-store-backend/internal/service"
)

// Handler holds the HTTP surface and its dependencies.
type Handler struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	employees  repository.EmployeeRepository
	orders     repository.OrderRepository

	auth     *service.AuthService
	orderSvc *service.OrderService
	cartSvc  *service.CartService
}

func NewHandler(
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
	orders repository.OrderRepository,
	auth *service.AuthService,
	orderSvc *service.OrderService,
	cartSvc *service.CartService,
) *Handler {
	return &Handler{
		categories: categories,
		suppliers:  suppliers,
		products:   products,
		customers:  customers,
		employees:  employees,
		orders:     orders,
		auth:       auth,
		orderSvc:   orderSvc,
		cartSvc:    cartSvc,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", validated(categoryListSchema, h.listCategories))
	mux.HandleFunc("GET /categories/{id}", validated(getIDSchema, h.getCategory))
	mux.HandleFunc("POST /categories", validated(categoryCreateSchema, h.createCategory))
	mux.HandleFunc("PATCH /categories/{id}", validated(categoryPatchSchema, h.updateCategory))
	mux.HandleFunc("DELETE /categories/{id}", validated(getIDSchema, h.deleteCategory))

	mux.HandleFunc("GET /suppliers", validated(supplierListSchema, h.listSuppliers))
	mux.HandleFunc("GET /suppliers/{id}", validated(getIDSchema, h.getSupplier))
	mux.HandleFunc("POST /suppliers", validated(supplierCreateSchema, h.createSupplier))
	mux.HandleFunc("PATCH /suppliers/{id}", validated(supplierPatchSchema, h.updateSupplier))
	mux.HandleFunc("DELETE /suppliers/{id}", validated(getIDSchema, h.deleteSupplier))

	mux.HandleFunc("GET /products", validated(productListSchema, h.listProducts))
	mux.HandleFunc("GET /products/{id}", validated(getIDSchema, h.getProduct))
	mux.HandleFunc("POST /products", validated(productCreateSchema, h.createProduct))
	mux.HandleFunc("PATCH /products/{id}", validated(productPatchSchema, h.updateProduct))
	mux.HandleFunc("DELETE /products/{id}", validated(getIDSchema, h.deleteProduct))

	mux.HandleFunc("GET /customers", validated(customerListSchema, h.listCustomers))
	mux.HandleFunc("GET /customers/{id}", validated(getIDSchema, h.getCustomer))
	mux.HandleFunc("POST /customers", validated(customerCreateSchema, h.createCustomer))
	mux.HandleFunc("PATCH /customers/{id}", validated(customerPatchSchema, h.updateCustomer))
	mux.HandleFunc("DELETE /customers/{id}", validated(getIDSchema, h.deleteCustomer))
	mux.HandleFunc("POST /customers/login", validated(loginSchema, h.loginCustomer))
	mux.HandleFunc("GET /customers/profile", authenticated(h.auth, h.customerProfile))

	mux.HandleFunc("GET /employees", validated(employeeListSchema, h.listEmployees))
	mux.HandleFunc("GET /employees/{id}", validated(getIDSchema, h.getEmployee))
	mux.HandleFunc("POST /employees", validated(employeeCreateSchema, h.createEmployee))
	mux.HandleFunc("PATCH /employees/{id}", validated(employeePatchSchema, h.updateEmployee))
	mux.HandleFunc("DELETE /employees/{id}", validated(getIDSchema, h.deleteEmployee))
	mux.HandleFunc("POST /employees/login", validated(loginSchema, h.loginEmployee))
	mux.HandleFunc("GET /employees/profile", authenticated(h.auth, h.employeeProfile))

	mux.HandleFunc("GET /orders", validated(orderListSchema, h.listOrders))
	mux.HandleFunc("GET /orders/{id}", validated(getIDSchema, h.getOrder))
	mux.HandleFunc("POST /orders", validated(orderCreateSchema, h.createOrder))
	mux.HandleFunc("PATCH /orders/{id}", validated(orderPatchSchema, h.updateOrder))
	mux.HandleFunc("DELETE /orders/{id}", validated(getIDSchema, h.deleteOrder))

	mux.HandleFunc("POST /carts", validated(cartCreateSchema, h.addCartItem))
	mux.HandleFunc("GET /carts/{customerId}", validated(cartCustomerSchema, h.getCart))
	mux.HandleFunc("DELETE /carts/{customerId}", validated(cartCustomerSchema, h.clearCart))
	mux.HandleFunc("DELETE /carts/{customerId}/{productId}", validated(cartItemSchema, h.removeCartItem))
}

// EnableCORS wraps the mux for browser clients.
func EnableCORS(next http.Handler) http.Handler {
	return enableCORS(next)
}

// pageFrom reads validated skip/limit query parameters.
func pageFrom(q url.Values) repository.Page {
	var p repository.Page
	p.Skip, _ = strconv.Atoi(q.Get("skip"))
	p.Limit, _ = strconv.Atoi(q.Get("limit"))
	return p
}

// rangeFrom reads a validated inclusive numeric range; absent bounds stay
// nil and match everything on their side.
func rangeFrom(q url.Values, start, end string) repository.Range {
	var r repository.Range
	if v := q.Get(start); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			r.Start = &n
		}
	}
	if v := q.Get(end); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			r.End = &n
		}
	}
	return r
}
