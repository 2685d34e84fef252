package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

type fakeOrderRepo struct {
	repository.OrderRepository
	created *entity.Order
	err     error
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	f.created = o
	return nil
}

type capturingPublisher struct {
	events chan publishedEvent
}

type publishedEvent struct {
	topic string
	key   string
	event any
}

func (p *capturingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.events <- publishedEvent{topic: topic, key: key, event: event}
	return nil
}

func TestPlaceOrderAssignsIDAndPublishes(t *testing.T) {
	repo := &fakeOrderRepo{}
	pub := &capturingPublisher{events: make(chan publishedEvent, 1)}
	svc := NewOrderService(repo, pub)

	order := &entity.Order{
		CustomerID: "cus-1",
		Items:      []entity.OrderItem{{ProductID: "prod-1", Quantity: 2}},
	}
	require.NoError(t, svc.PlaceOrder(context.Background(), order))

	_, err := uuid.Parse(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "placed", order.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, order.ID, repo.created.ID)

	select {
	case got := <-pub.events:
		assert.Equal(t, "orders.placed", got.topic)
		assert.Equal(t, order.ID, got.key)
		placed, ok := got.event.(entity.OrderPlaced)
		require.True(t, ok)
		assert.Equal(t, order.ID, placed.OrderID)
		assert.Equal(t, "cus-1", placed.CustomerID)
	case <-time.After(2 * time.Second):
		t.Fatal("order-placed event was never published")
	}
}

func TestPlaceOrderPropagatesRepoError(t *testing.T) {
	repo := &fakeOrderRepo{err: repository.ErrInsufficientStock}
	pub := &capturingPublisher{events: make(chan publishedEvent, 1)}
	svc := NewOrderService(repo, pub)

	err := svc.PlaceOrder(context.Background(), &entity.Order{CustomerID: "cus-1"})
	assert.True(t, errors.Is(err, repository.ErrInsufficientStock))

	select {
	case <-pub.events:
		t.Fatal("no event should be published when the insert fails")
	case <-time.After(50 * time.Millisecond):
	}
}
