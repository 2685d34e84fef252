package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/messaging"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

// OrderService orchestrates order placement: the transactional insert with
// stock decrements, then the order-placed event.
type OrderService struct {
	orderRepo repository.OrderRepository
	publisher messaging.Publisher
}

func NewOrderService(orderRepo repository.OrderRepository, publisher messaging.Publisher) *OrderService {
	return &OrderService{orderRepo: orderRepo, publisher: publisher}
}

// PlaceOrder assigns the order an id, stores it (stock decrements included,
// all-or-nothing) and publishes an order-placed event. The publish is
// fire-and-forget relative to the caller: a broker failure is logged, never
// surfaced.
func (s *OrderService) PlaceOrder(ctx context.Context, o *entity.Order) error {
	o.ID = uuid.New().String()
	if o.Status == "" {
		o.Status = "placed"
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return err
	}

	event := entity.OrderPlaced{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Items:      o.Items,
		TotalPrice: o.Total,
		PlacedAt:   time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.publisher.PublishEvent(ctx, "orders.placed", event.OrderID, event); err != nil {
			slog.Error("Failed to publish OrderPlaced event", "order_id", event.OrderID, "err", err)
		}
	}()

	return nil
}
