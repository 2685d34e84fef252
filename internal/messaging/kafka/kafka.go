package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/phamanh/retail-store-backend/internal/messaging"
)

type kafkaPublisher struct {
	brokers []string
}

// NewPublisher creates a Kafka-backed publisher. Writers are created per
// publish; kafka-go writers are cheap and connect lazily.
func NewPublisher(brokers []string) messaging.Publisher {
	return &kafkaPublisher{brokers: brokers}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	w := &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(k.brokers...),
		Topic:    topic,
		Balancer: &kafkaGo.LeastBytes{},
	}
	defer w.Close()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return w.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
