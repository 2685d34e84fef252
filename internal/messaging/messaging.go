package messaging

import "context"

// Publisher publishes events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}
