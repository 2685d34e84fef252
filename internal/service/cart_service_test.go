package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

type fakeProductRepo struct {
	repository.ProductRepository
	byID map[string]*entity.Product
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

type fakeCartRepo struct {
	carts map[string]map[string]int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]map[string]int{}}
}

func (f *fakeCartRepo) AddItem(_ context.Context, customerID, productID string, quantity int) error {
	if f.carts[customerID] == nil {
		f.carts[customerID] = map[string]int{}
	}
	f.carts[customerID][productID] += quantity
	return nil
}

func (f *fakeCartRepo) Items(_ context.Context, customerID string) (map[string]int, error) {
	items := map[string]int{}
	for productID, quantity := range f.carts[customerID] {
		items[productID] = quantity
	}
	return items, nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, customerID, productID string) error {
	delete(f.carts[customerID], productID)
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, customerID string) error {
	delete(f.carts, customerID)
	return nil
}

func newTestCart(products map[string]*entity.Product) (*CartService, *fakeCartRepo) {
	carts := newFakeCartRepo()
	return NewCartService(carts, &fakeProductRepo{byID: products}), carts
}

func TestCartAddItemRejectsUnknownProduct(t *testing.T) {
	svc, carts := newTestCart(map[string]*entity.Product{})

	err := svc.AddItem(context.Background(), "cus-1", "missing", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, carts.carts["cus-1"])
}

func TestCartAddItemAccumulates(t *testing.T) {
	svc, _ := newTestCart(map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Keyboard", Price: 50},
	})

	require.NoError(t, svc.AddItem(context.Background(), "cus-1", "prod-1", 2))
	require.NoError(t, svc.AddItem(context.Background(), "cus-1", "prod-1", 3))

	cart, err := svc.Get(context.Background(), "cus-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "Keyboard", cart.Items[0].Product.Name)
}

func TestCartGetEmpty(t *testing.T) {
	svc, _ := newTestCart(map[string]*entity.Product{})

	cart, err := svc.Get(context.Background(), "cus-1")
	require.NoError(t, err)
	assert.Equal(t, "cus-1", cart.CustomerID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCartGetDropsDeletedProducts(t *testing.T) {
	products := map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Keyboard"},
		"prod-2": {ID: "prod-2", Name: "Mouse"},
	}
	svc, _ := newTestCart(products)

	require.NoError(t, svc.AddItem(context.Background(), "cus-1", "prod-1", 1))
	require.NoError(t, svc.AddItem(context.Background(), "cus-1", "prod-2", 1))

	delete(products, "prod-1")

	cart, err := svc.Get(context.Background(), "cus-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-2", cart.Items[0].Product.ID)
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, _ := newTestCart(map[string]*entity.Product{
		"prod-1": {ID: "prod-1"},
		"prod-2": {ID: "prod-2"},
	})

	require.NoError(t, svc.AddItem(context.Background(), "cus-1", "prod-1", 1))
	require.NoError(t, svc.AddItem(context.Background(), "cus-1", "prod-2", 1))

	require.NoError(t, svc.RemoveItem(context.Background(), "cus-1", "prod-1"))
	cart, err := svc.Get(context.Background(), "cus-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-2", cart.Items[0].Product.ID)

	require.NoError(t, svc.Clear(context.Background(), "cus-1"))
	cart, err = svc.Get(context.Background(), "cus-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
