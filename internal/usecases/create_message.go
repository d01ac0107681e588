package usecases

import (
	"context"
	"log"
	"net/mail"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// CreateMessage defines the interface for the CreateMessage use case.
type CreateMessage interface {
	Execute(ctx context.Context, content, senderEmail, recipientEmail, messageType string) (domain.Message, error)
}

// CreateMessageImpl is the implementation of the CreateMessage use case.
//
// Like CreateGift, the message.created publish is awaited but best-effort:
// the message is considered created once persisted, regardless of whether
// downstream consumers were notified.
type CreateMessageImpl struct {
	messages     domain.MessageRepository
	users        domain.UserRepository
	publisher    domain.EventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	createUUID   func() uuid.UUID
}

// NewCreateMessageImpl creates a new instance of CreateMessageImpl.
func NewCreateMessageImpl(
	messages domain.MessageRepository,
	users domain.UserRepository,
	publisher domain.EventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) CreateMessageImpl {
	return CreateMessageImpl{
		messages:     messages,
		users:        users,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute creates a new message and notifies downstream consumers.
func (cm CreateMessageImpl) Execute(ctx context.Context, content, senderEmail, recipientEmail, messageType string) (domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateCreateMessageInputParams(content, senderEmail, recipientEmail); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Message{}, err
	}

	if messageType == "" {
		messageType = domain.DefaultMessageType
	}

	message := domain.Message{
		ID:             cm.createUUID(),
		Content:        content,
		SenderEmail:    senderEmail,
		RecipientEmail: recipientEmail,
		RecipientName:  cm.lookupRecipientName(spanCtx, recipientEmail),
		MessageType:    messageType,
		CreatedAt:      cm.timeProvider.Now(),
	}

	if err := cm.messages.CreateMessage(spanCtx, message); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Message{}, err
	}

	event := domain.MessageCreatedEvent{
		MessageID:      message.ID.String(),
		Content:        message.Content,
		RecipientEmail: message.RecipientEmail,
		SenderEmail:    message.SenderEmail,
		MessageType:    message.MessageType,
		CreatedAt:      message.CreatedAt,
	}
	if err := cm.publisher.PublishEvent(spanCtx, event); err != nil {
		cm.logger.Printf("CreateMessage: failed to publish %s event for message %s: %v", event.EventKind(), message.ID, err)
		RecordEventPublished(spanCtx, event.EventKind(), false)
	} else {
		RecordEventPublished(spanCtx, event.EventKind(), true)
	}

	return message, nil
}

func (cm CreateMessageImpl) lookupRecipientName(ctx context.Context, recipientEmail string) *string {
	recipient, found, err := cm.users.GetUserByEmail(ctx, recipientEmail)
	if err != nil {
		cm.logger.Printf("CreateMessage: recipient lookup failed for %s: %v", recipientEmail, err)
		return nil
	}
	if !found {
		return nil
	}
	return recipient.Name
}

func validateCreateMessageInputParams(content, senderEmail, recipientEmail string) error {
	if content == "" {
		return domain.NewValidationErr("content cannot be empty")
	}
	if _, err := mail.ParseAddress(senderEmail); err != nil {
		return domain.NewValidationErr("sender email is not a valid address")
	}
	if _, err := mail.ParseAddress(recipientEmail); err != nil {
		return domain.NewValidationErr("recipient email is not a valid address")
	}
	return nil
}

// InitCreateMessage initializes the CreateMessage use case and registers it in the dependency container.
type InitCreateMessage struct {
	Messages     domain.MessageRepository   `resolve:""`
	Users        domain.UserRepository      `resolve:""`
	Publisher    domain.EventPublisher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the CreateMessageImpl use case in the dependency container.
func (icm InitCreateMessage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateMessage](NewCreateMessageImpl(icm.Messages, icm.Users, icm.Publisher, icm.TimeProvider, icm.Logger))
	return ctx, nil
}
