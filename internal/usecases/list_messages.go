package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// ListMessages defines the interface for message queries.
type ListMessages interface {
	// BySender returns messages sent by the given email, newest first.
	BySender(ctx context.Context, senderEmail string) ([]domain.Message, error)
	// ByRecipient returns messages addressed to the given email, newest first.
	ByRecipient(ctx context.Context, recipientEmail string) ([]domain.Message, error)
	// ByID returns the message with the given ID, or NotFoundErr.
	ByID(ctx context.Context, id uuid.UUID) (domain.Message, error)
}

// ListMessagesImpl is the implementation of the ListMessages use case.
type ListMessagesImpl struct {
	messages domain.MessageRepository
}

// NewListMessagesImpl creates a new instance of ListMessagesImpl.
func NewListMessagesImpl(messages domain.MessageRepository) ListMessagesImpl {
	return ListMessagesImpl{messages: messages}
}

func (lm ListMessagesImpl) BySender(ctx context.Context, senderEmail string) ([]domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := lm.messages.ListMessagesBySender(spanCtx, senderEmail)
	telemetry.RecordErrorAndStatus(span, err)
	return messages, err
}

func (lm ListMessagesImpl) ByRecipient(ctx context.Context, recipientEmail string) ([]domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := lm.messages.ListMessagesByRecipient(spanCtx, recipientEmail)
	telemetry.RecordErrorAndStatus(span, err)
	return messages, err
}

func (lm ListMessagesImpl) ByID(ctx context.Context, id uuid.UUID) (domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	message, found, err := lm.messages.GetMessage(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Message{}, err
	}
	if !found {
		return domain.Message{}, domain.NewNotFoundErr("message not found")
	}
	return message, nil
}

// InitListMessages initializes the ListMessages use case and registers it in the dependency container.
type InitListMessages struct {
	Messages domain.MessageRepository `resolve:""`
}

// Initialize registers the ListMessagesImpl use case in the dependency container.
func (ilm InitListMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListMessages](NewListMessagesImpl(ilm.Messages))
	return ctx, nil
}
