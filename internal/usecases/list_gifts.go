package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// ListGifts defines the interface for gift queries.
type ListGifts interface {
	// BySender returns gifts sent by the given email, newest first.
	BySender(ctx context.Context, senderEmail string) ([]domain.Gift, error)
	// ByRecipient returns gifts addressed to the given email, newest first.
	ByRecipient(ctx context.Context, recipientEmail string) ([]domain.Gift, error)
	// ByID returns the gift with the given ID, or NotFoundErr.
	ByID(ctx context.Context, id uuid.UUID) (domain.Gift, error)
}

// ListGiftsImpl is the implementation of the ListGifts use case.
type ListGiftsImpl struct {
	gifts domain.GiftRepository
}

// NewListGiftsImpl creates a new instance of ListGiftsImpl.
func NewListGiftsImpl(gifts domain.GiftRepository) ListGiftsImpl {
	return ListGiftsImpl{gifts: gifts}
}

func (lg ListGiftsImpl) BySender(ctx context.Context, senderEmail string) ([]domain.Gift, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	gifts, err := lg.gifts.ListGiftsBySender(spanCtx, senderEmail)
	telemetry.RecordErrorAndStatus(span, err)
	return gifts, err
}

func (lg ListGiftsImpl) ByRecipient(ctx context.Context, recipientEmail string) ([]domain.Gift, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	gifts, err := lg.gifts.ListGiftsByRecipient(spanCtx, recipientEmail)
	telemetry.RecordErrorAndStatus(span, err)
	return gifts, err
}

func (lg ListGiftsImpl) ByID(ctx context.Context, id uuid.UUID) (domain.Gift, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	gift, found, err := lg.gifts.GetGift(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, err
	}
	if !found {
		return domain.Gift{}, domain.NewNotFoundErr("gift not found")
	}
	return gift, nil
}

// InitListGifts initializes the ListGifts use case and registers it in the dependency container.
type InitListGifts struct {
	Gifts domain.GiftRepository `resolve:""`
}

// Initialize registers the ListGiftsImpl use case in the dependency container.
func (ilg InitListGifts) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListGifts](NewListGiftsImpl(ilg.Gifts))
	return ctx, nil
}
