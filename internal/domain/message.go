package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultMessageType is used when a message is created without an explicit type.
const DefaultMessageType = "birthday"

// Message represents a personal message sent from one user to another.
type Message struct {
	ID             uuid.UUID
	Content        string
	SenderEmail    string
	RecipientEmail string
	RecipientName  *string
	MessageType    string
	CreatedAt      time.Time
}

// MessageRepository defines the interface for managing messages.
type MessageRepository interface {
	// CreateMessage persists a new message.
	CreateMessage(ctx context.Context, message Message) error
	// GetMessage retrieves a message by its ID. The second return value reports whether it was found.
	GetMessage(ctx context.Context, id uuid.UUID) (Message, bool, error)
	// ListMessagesBySender retrieves messages sent by the given email, newest first.
	ListMessagesBySender(ctx context.Context, senderEmail string) ([]Message, error)
	// ListMessagesByRecipient retrieves messages addressed to the given email, newest first.
	ListMessagesByRecipient(ctx context.Context, recipientEmail string) ([]Message, error)
}
