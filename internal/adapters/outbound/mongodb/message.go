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

const messagesCollection = "messages"

type messageDocument struct {
	ID             string    `bson:"_id"`
	Content        string    `bson:"content"`
	SenderEmail    string    `bson:"sender_email"`
	RecipientEmail string    `bson:"recipient_email"`
	RecipientName  *string   `bson:"recipient_name,omitempty"`
	MessageType    string    `bson:"message_type"`
	CreatedAt      time.Time `bson:"created_at"`
}

func messageToDocument(message domain.Message) messageDocument {
	return messageDocument{
		ID:             message.ID.String(),
		Content:        message.Content,
		SenderEmail:    message.SenderEmail,
		RecipientEmail: message.RecipientEmail,
		RecipientName:  message.RecipientName,
		MessageType:    message.MessageType,
		CreatedAt:      message.CreatedAt,
	}
}

func messageFromDocument(doc messageDocument) (domain.Message, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:             id,
		Content:        doc.Content,
		SenderEmail:    doc.SenderEmail,
		RecipientEmail: doc.RecipientEmail,
		RecipientName:  doc.RecipientName,
		MessageType:    doc.MessageType,
		CreatedAt:      doc.CreatedAt.UTC(),
	}, nil
}

// MessageRepository implements the domain.MessageRepository interface using MongoDB as the storage backend.
type MessageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new instance of MessageRepository.
func NewMessageRepository(db *mongo.Database) MessageRepository {
	return MessageRepository{collection: db.Collection(messagesCollection)}
}

// CreateMessage persists a new message.
func (mr MessageRepository) CreateMessage(ctx context.Context, message domain.Message) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("message_id", message.ID.String()),
	))
	defer span.End()

	_, err := mr.collection.InsertOne(spanCtx, messageToDocument(message))
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// GetMessage retrieves a message by its ID.
func (mr MessageRepository) GetMessage(ctx context.Context, id uuid.UUID) (domain.Message, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("message_id", id.String()),
	))
	defer span.End()

	var doc messageDocument
	err := mr.collection.FindOne(spanCtx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Message{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Message{}, false, err
	}

	message, err := messageFromDocument(doc)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Message{}, false, err
	}
	return message, true, nil
}

// ListMessagesBySender retrieves messages sent by the given email, newest first.
func (mr MessageRepository) ListMessagesBySender(ctx context.Context, senderEmail string) ([]domain.Message, error) {
	return mr.listMessages(ctx, bson.M{"sender_email": senderEmail})
}

// ListMessagesByRecipient retrieves messages addressed to the given email, newest first.
func (mr MessageRepository) ListMessagesByRecipient(ctx context.Context, recipientEmail string) ([]domain.Message, error) {
	return mr.listMessages(ctx, bson.M{"recipient_email": recipientEmail})
}

func (mr MessageRepository) listMessages(ctx context.Context, filter bson.M) ([]domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	cursor, err := mr.collection.Find(spanCtx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docs []messageDocument
	if err := cursor.All(spanCtx, &docs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(docs))
	for _, doc := range docs {
		message, err := messageFromDocument(doc)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// InitMessageRepository initializes the MessageRepository implementation.
type InitMessageRepository struct {
	Database *mongo.Database `resolve:""`
}

// Initialize registers the MessageRepository as the implementation of domain.MessageRepository.
func (i InitMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.MessageRepository](NewMessageRepository(i.Database))
	return ctx, nil
}
