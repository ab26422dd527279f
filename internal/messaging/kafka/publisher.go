package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"go-workforce/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event is what a Publisher sends: Key orders events of one aggregate.
type Event struct {
	Topic         string
	Key           string
	EventType     string
	AggregateType string
	Payload       any
}

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error {
	return nil
}

// MessageWriter is the part of *kafkago.Writer a publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type writerPublisher struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewPublisher(writer MessageWriter, logger ...*zap.Logger) Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &writerPublisher{writer: writer, logger: l}
}

func (p *writerPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := BuildMessage(ctx, event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			zap.String("topic", event.Topic),
			zap.String("event_type", event.EventType),
			zap.String("key", event.Key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("event published",
		zap.String("topic", event.Topic),
		zap.String("event_type", event.EventType),
		zap.String("key", event.Key),
	)
	return nil
}

// BuildMessage encodes the payload as JSON and carries the event type,
// aggregate type and request id as headers.
func BuildMessage(ctx context.Context, event Event) (kafkago.Message, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("marshal %s event: %w", event.EventType, err)
	}

	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(rid)})
	}

	return kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.Key),
		Value:   payload,
		Headers: headers,
	}, nil
}
