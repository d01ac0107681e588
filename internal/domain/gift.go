package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GiftStatus represents the delivery lifecycle status of a gift.
type GiftStatus string

const (
	// GiftStatus_Pending indicates the gift has been created but not yet delivered.
	GiftStatus_Pending GiftStatus = "pending"
	// GiftStatus_Delivered indicates the gift has reached its recipient.
	GiftStatus_Delivered GiftStatus = "delivered"
)

// Gift represents a gift sent from one user to another.
type Gift struct {
	ID             uuid.UUID
	Title          string
	Description    string
	SenderEmail    string
	RecipientEmail string
	RecipientName  *string
	Status         GiftStatus
	CreatedAt      time.Time
}

// GiftRepository defines the interface for managing gifts.
type GiftRepository interface {
	// CreateGift persists a new gift.
	CreateGift(ctx context.Context, gift Gift) error
	// GetGift retrieves a gift by its ID. The second return value reports whether it was found.
	GetGift(ctx context.Context, id uuid.UUID) (Gift, bool, error)
	// ListGiftsBySender retrieves gifts sent by the given email, newest first.
	ListGiftsBySender(ctx context.Context, senderEmail string) ([]Gift, error)
	// ListGiftsByRecipient retrieves gifts addressed to the given email, newest first.
	ListGiftsByRecipient(ctx context.Context, recipientEmail string) ([]Gift, error)
}
