package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Topic carrying entity change events.
const Topic = "legalcase_events"

// KafkaProducer publishes entity change events. A nil *KafkaProducer is a
// valid no-op producer, so services never need to branch on whether kafka is
// configured.
type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer dials the broker once to fail fast on a bad address.
func NewKafkaProducer(broker string) (*KafkaProducer, error) {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	return &KafkaProducer{writer: writer}, nil
}

// Publish sends one JSON event. Failures are logged, not surfaced: the write
// that triggered the event has already committed and must not be failed
// retroactively.
func (p *KafkaProducer) Publish(ctx context.Context, event string, payload any) {
	if p == nil {
		return
	}

	body := map[string]any{
		"event":   event,
		"payload": payload,
	}
	value, err := json.Marshal(body)
	if err != nil {
		log.Printf("Failed to marshal event %q: %v", event, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: value,
	}); err != nil {
		log.Printf("Failed to publish event %q: %v", event, err)
	}
}

func (p *KafkaProducer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
