package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

const giftsCollection = "gifts"

type giftDocument struct {
	ID             string    `bson:"_id"`
	Title          string    `bson:"title"`
	Description    string    `bson:"description"`
	SenderEmail    string    `bson:"sender_email"`
	RecipientEmail string    `bson:"recipient_email"`
	RecipientName  *string   `bson:"recipient_name,omitempty"`
	Status         string    `bson:"status"`
	CreatedAt      time.Time `bson:"created_at"`
}

func giftToDocument(gift domain.Gift) giftDocument {
	return giftDocument{
		ID:             gift.ID.String(),
		Title:          gift.Title,
		Description:    gift.Description,
		SenderEmail:    gift.SenderEmail,
		RecipientEmail: gift.RecipientEmail,
		RecipientName:  gift.RecipientName,
		Status:         string(gift.Status),
		CreatedAt:      gift.CreatedAt,
	}
}

func giftFromDocument(doc giftDocument) (domain.Gift, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.Gift{}, err
	}
	return domain.Gift{
		ID:             id,
		Title:          doc.Title,
		Description:    doc.Description,
		SenderEmail:    doc.SenderEmail,
		RecipientEmail: doc.RecipientEmail,
		RecipientName:  doc.RecipientName,
		Status:         domain.GiftStatus(doc.Status),
		CreatedAt:      doc.CreatedAt.UTC(),
	}, nil
}

// GiftRepository implements the domain.GiftRepository interface using MongoDB as the storage backend.
type GiftRepository struct {
	collection *mongo.Collection
}

// NewGiftRepository creates a new instance of GiftRepository.
func NewGiftRepository(db *mongo.Database) GiftRepository {
	return GiftRepository{collection: db.Collection(giftsCollection)}
}

// CreateGift persists a new gift.
func (gr GiftRepository) CreateGift(ctx context.Context, gift domain.Gift) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("gift_id", gift.ID.String()),
	))
	defer span.End()

	_, err := gr.collection.InsertOne(spanCtx, giftToDocument(gift))
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// GetGift retrieves a gift by its ID.
func (gr GiftRepository) GetGift(ctx context.Context, id uuid.UUID) (domain.Gift, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("gift_id", id.String()),
	))
	defer span.End()

	var doc giftDocument
	err := gr.collection.FindOne(spanCtx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Gift{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, false, err
	}

	gift, err := giftFromDocument(doc)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, false, err
	}
	return gift, true, nil
}

// ListGiftsBySender retrieves gifts sent by the given email, newest first.
func (gr GiftRepository) ListGiftsBySender(ctx context.Context, senderEmail string) ([]domain.Gift, error) {
	return gr.listGifts(ctx, bson.M{"sender_email": senderEmail})
}

// ListGiftsByRecipient retrieves gifts addressed to the given email, newest first.
func (gr GiftRepository) ListGiftsByRecipient(ctx context.Context, recipientEmail string) ([]domain.Gift, error) {
	return gr.listGifts(ctx, bson.M{"recipient_email": recipientEmail})
}

func (gr GiftRepository) listGifts(ctx context.Context, filter bson.M) ([]domain.Gift, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	cursor, err := gr.collection.Find(spanCtx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docs []giftDocument
	if err := cursor.All(spanCtx, &docs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	gifts := make([]domain.Gift, 0, len(docs))
	for _, doc := range docs {
		gift, err := giftFromDocument(doc)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		gifts = append(gifts, gift)
	}
	return gifts, nil
}

// InitGiftRepository initializes the GiftRepository implementation.
type InitGiftRepository struct {
	Database *mongo.Database `resolve:""`
}

// Initialize registers the GiftRepository as the implementation of domain.GiftRepository.
func (i InitGiftRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.GiftRepository](NewGiftRepository(i.Database))
	return ctx, nil
}
