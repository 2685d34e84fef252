// Package redis stores shopping carts in Redis, one hash per customer.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phamanh/retail-store-backend/internal/repository"
)

// NewClient connects to Redis and verifies the connection.
func NewClient(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("Redis connected", "addr", addr)
	return client, nil
}

type cartRepository struct {
	client *redis.Client
}

// NewCartRepository creates a CartRepository backed by Redis.
func NewCartRepository(client *redis.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func cartKey(customerID string) string {
	return "cart:" + customerID
}

func (r *cartRepository) AddItem(ctx context.Context, customerID, productID string, quantity int) error {
	if err := r.client.HIncrBy(ctx, cartKey(customerID), productID, int64(quantity)).Err(); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *cartRepository) Items(ctx context.Context, customerID string) (map[string]int, error) {
	raw, err := r.client.HGetAll(ctx, cartKey(customerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	items := make(map[string]int, len(raw))
	for productID, qty := range raw {
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart quantity for %s: %w", productID, err)
		}
		items[productID] = n
	}
	return items, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, customerID, productID string) error {
	if err := r.client.HDel(ctx, cartKey(customerID), productID).Err(); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, customerID string) error {
	if err := r.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
