package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

// CartService joins the Redis cart store with the product catalog so cart
// reads come back with product references resolved.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem adds quantity of a product to the customer's cart. Adding the same
// product again increments the existing line.
func (s *CartService) AddItem(ctx context.Context, customerID, productID string, quantity int) error {
	// Reject references to products that don't exist; the cart itself has
	// no foreign keys to enforce this.
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.cartRepo.AddItem(ctx, customerID, productID, quantity)
}

// Get returns the customer's cart with products resolved. An empty cart is a
// cart with no items, not an error.
func (s *CartService) Get(ctx context.Context, customerID string) (*entity.Cart, error) {
	items, err := s.cartRepo.Items(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Stable line order for responses.
	productIDs := make([]string, 0, len(items))
	for productID := range items {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{}}
	for _, productID := range productIDs {
		quantity := items[productID]
		product, err := s.productRepo.FindByID(ctx, productID)
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
			// The product was deleted since it was carted; drop the line.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cart product: %w", err)
		}
		cart.Items = append(cart.Items, entity.CartItem{Product: product, Quantity: quantity})
	}
	return cart, nil
}

// RemoveItem removes one product line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, customerID, productID string) error {
	return s.cartRepo.RemoveItem(ctx, customerID, productID)
}

// Clear removes the whole cart.
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	return s.cartRepo.Clear(ctx, customerID)
}
