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

// CreateGift defines the interface for the CreateGift use case.
type CreateGift interface {
	Execute(ctx context.Context, title, description, senderEmail, recipientEmail string) (domain.Gift, error)
}

// CreateGiftImpl is the implementation of the CreateGift use case.
//
// It persists the gift, then publishes a gift.created event. The publish is
// awaited but best-effort: a publish failure is logged and discarded, never
// failing the creation of an already-persisted gift.
type CreateGiftImpl struct {
	gifts        domain.GiftRepository
	users        domain.UserRepository
	publisher    domain.EventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	createUUID   func() uuid.UUID
}

// NewCreateGiftImpl creates a new instance of CreateGiftImpl.
func NewCreateGiftImpl(
	gifts domain.GiftRepository,
	users domain.UserRepository,
	publisher domain.EventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) CreateGiftImpl {
	return CreateGiftImpl{
		gifts:        gifts,
		users:        users,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute creates a new gift and notifies downstream consumers.
func (cg CreateGiftImpl) Execute(ctx context.Context, title, description, senderEmail, recipientEmail string) (domain.Gift, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateCreateGiftInputParams(title, senderEmail, recipientEmail); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, err
	}

	gift := domain.Gift{
		ID:             cg.createUUID(),
		Title:          title,
		Description:    description,
		SenderEmail:    senderEmail,
		RecipientEmail: recipientEmail,
		RecipientName:  cg.lookupRecipientName(spanCtx, recipientEmail),
		Status:         domain.GiftStatus_Pending,
		CreatedAt:      cg.timeProvider.Now(),
	}

	if err := cg.gifts.CreateGift(spanCtx, gift); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, err
	}

	event := domain.GiftCreatedEvent{
		GiftID:         gift.ID.String(),
		Title:          gift.Title,
		RecipientEmail: gift.RecipientEmail,
		SenderEmail:    gift.SenderEmail,
		CreatedAt:      gift.CreatedAt,
	}
	if err := cg.publisher.PublishEvent(spanCtx, event); err != nil {
		// The gift is already persisted; notification is not critical path.
		cg.logger.Printf("CreateGift: failed to publish %s event for gift %s: %v", event.EventKind(), gift.ID, err)
		RecordEventPublished(spanCtx, event.EventKind(), false)
	} else {
		RecordEventPublished(spanCtx, event.EventKind(), true)
	}

	return gift, nil
}

// lookupRecipientName resolves the recipient's display name from the user
// store. Unknown recipients are allowed; the gift simply carries no name.
func (cg CreateGiftImpl) lookupRecipientName(ctx context.Context, recipientEmail string) *string {
	recipient, found, err := cg.users.GetUserByEmail(ctx, recipientEmail)
	if err != nil {
		cg.logger.Printf("CreateGift: recipient lookup failed for %s: %v", recipientEmail, err)
		return nil
	}
	if !found {
		return nil
	}
	return recipient.Name
}

func validateCreateGiftInputParams(title, senderEmail, recipientEmail string) error {
	if title == "" {
		return domain.NewValidationErr("title cannot be empty")
	}
	if _, err := mail.ParseAddress(senderEmail); err != nil {
		return domain.NewValidationErr("sender email is not a valid address")
	}
	if _, err := mail.ParseAddress(recipientEmail); err != nil {
		return domain.NewValidationErr("recipient email is not a valid address")
	}
	return nil
}

// InitCreateGift initializes the CreateGift use case and registers it in the dependency container.
type InitCreateGift struct {
	Gifts        domain.GiftRepository      `resolve:""`
	Users        domain.UserRepository      `resolve:""`
	Publisher    domain.EventPublisher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the CreateGiftImpl use case in the dependency container.
func (icg InitCreateGift) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateGift](NewCreateGiftImpl(icg.Gifts, icg.Users, icg.Publisher, icg.TimeProvider, icg.Logger))
	return ctx, nil
}
