package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher using Kafka
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a Kafka-backed publisher for order events
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishOrderPlaced publishes an order-placed event to Kafka. Messages are
// keyed by sale id so events for one sale land on one partition in order.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.SaleID, 10)),
		Value: data,
	}
	if event.RequestID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   "request_id",
			Value: []byte(event.RequestID),
		})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[Kafka] Order event published",
		slog.Int64("sale_id", event.SaleID),
		slog.Int64("customer_id", event.CustomerID),
	)

	return nil
}

// Close flushes and releases the Kafka writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
