package domain

import (
	"context"
	"time"
)

// EventKind identifies the kind of a domain event. Its value doubles as the
// broker routing key for the event.
type EventKind string

const (
	// EventKind_GiftCreated represents the event emitted after a gift is persisted.
	EventKind_GiftCreated EventKind = "gift.created"
	// EventKind_MessageCreated represents the event emitted after a message is persisted.
	EventKind_MessageCreated EventKind = "message.created"
)

// DomainEvent is an immutable fact about a completed state change, published
// for asynchronous consumption. Implementations are flat payload records that
// marshal directly to the wire format.
type DomainEvent interface {
	// EventKind returns the kind of the event.
	EventKind() EventKind
}

// GiftCreatedEvent is the payload published after a gift is created.
type GiftCreatedEvent struct {
	GiftID         string    `json:"GiftId"`
	Title          string    `json:"Title"`
	RecipientEmail string    `json:"RecipientEmail"`
	SenderEmail    string    `json:"SenderEmail"`
	CreatedAt      time.Time `json:"CreatedAt"`
}

// EventKind returns EventKind_GiftCreated.
func (GiftCreatedEvent) EventKind() EventKind {
	return EventKind_GiftCreated
}

// MessageCreatedEvent is the payload published after a message is created.
type MessageCreatedEvent struct {
	MessageID      string    `json:"MessageId"`
	Content        string    `json:"Content"`
	RecipientEmail string    `json:"RecipientEmail"`
	SenderEmail    string    `json:"SenderEmail"`
	MessageType    string    `json:"MessageType"`
	CreatedAt      time.Time `json:"CreatedAt"`
}

// EventKind returns EventKind_MessageCreated.
func (MessageCreatedEvent) EventKind() EventKind {
	return EventKind_MessageCreated
}

// EventPublisher defines the interface for publishing domain events to the broker.
//
// PublishEvent is synchronous and does not retry: a SerializationErr means the
// payload could not be encoded, a BrokerErr means the broker hand-off failed.
// Callers decide whether a failed publish fails their own operation.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event DomainEvent) error
}
