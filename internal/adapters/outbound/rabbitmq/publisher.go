package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// Publishing is confirmed by the broker accepting the frame, not by consumer
// delivery, so a short timeout is enough.
const PUBLISH_TIMEOUT = 5 * time.Second

// publishChannel is the slice of *amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPEventPublisher implements domain.EventPublisher on a topic exchange.
//
// A single AMQP channel is shared by all callers; amqp091 channels are not
// safe for concurrent publishing, so sends are serialized with a mutex.
type AMQPEventPublisher struct {
	channel publishChannel
	mu      sync.Mutex
}

// NewAMQPEventPublisher creates a new instance of AMQPEventPublisher.
func NewAMQPEventPublisher(channel publishChannel) *AMQPEventPublisher {
	return &AMQPEventPublisher{channel: channel}
}

// PublishEvent publishes the event to the exchange under its kind as routing
// key. Messages are marked persistent so they survive a broker restart.
func (p *AMQPEventPublisher) PublishEvent(ctx context.Context, event domain.DomainEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("event_kind", string(event.EventKind())),
		attribute.String("exchange", ExchangeName),
	))
	defer span.End()

	body, err := json.Marshal(event)
	if err != nil {
		err = domain.NewSerializationErr(fmt.Sprintf("failed to encode %s event", event.EventKind()), err)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	publishCtx, cancel := context.WithTimeout(spanCtx, PUBLISH_TIMEOUT)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(
		publishCtx,
		ExchangeName,
		string(event.EventKind()),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	); err != nil {
		err = domain.NewBrokerErr(fmt.Sprintf("failed to publish %s event", event.EventKind()), err)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	return nil
}

// InitPublisher initializes the AMQPEventPublisher implementation.
type InitPublisher struct {
	Channel *amqp.Channel `resolve:""`
}

// Initialize registers the AMQPEventPublisher as the implementation of EventPublisher.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewAMQPEventPublisher(i.Channel))
	return ctx, nil
}
