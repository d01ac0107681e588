package mongodb

import (
	"context"
	"fmt"
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

const friendshipsCollection = "friendships"

type friendshipDocument struct {
	ID          string    `bson:"_id"`
	UserEmail   string    `bson:"user_email"`
	FriendEmail string    `bson:"friend_email"`
	CreatedAt   time.Time `bson:"created_at"`
}

func friendshipToDocument(friendship domain.Friendship) friendshipDocument {
	return friendshipDocument{
		ID:          friendship.ID.String(),
		UserEmail:   friendship.UserEmail,
		FriendEmail: friendship.FriendEmail,
		CreatedAt:   friendship.CreatedAt,
	}
}

func friendshipFromDocument(doc friendshipDocument) (domain.Friendship, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.Friendship{}, err
	}
	return domain.Friendship{
		ID:          id,
		UserEmail:   doc.UserEmail,
		FriendEmail: doc.FriendEmail,
		CreatedAt:   doc.CreatedAt.UTC(),
	}, nil
}

// eitherDirection matches a friendship no matter which side initiated it.
func eitherDirection(userEmail, friendEmail string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"user_email": userEmail, "friend_email": friendEmail},
		bson.M{"user_email": friendEmail, "friend_email": userEmail},
	}}
}

// FriendshipRepository implements the domain.FriendshipRepository interface using MongoDB as the storage backend.
type FriendshipRepository struct {
	collection *mongo.Collection
}

// NewFriendshipRepository creates a new instance of FriendshipRepository.
func NewFriendshipRepository(db *mongo.Database) FriendshipRepository {
	return FriendshipRepository{collection: db.Collection(friendshipsCollection)}
}

// CreateFriendship persists a new friendship.
func (fr FriendshipRepository) CreateFriendship(ctx context.Context, friendship domain.Friendship) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("user_email", friendship.UserEmail),
		attribute.String("friend_email", friendship.FriendEmail),
	))
	defer span.End()

	_, err := fr.collection.InsertOne(spanCtx, friendshipToDocument(friendship))
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// FriendshipExists reports whether a friendship between the two emails exists in either direction.
func (fr FriendshipRepository) FriendshipExists(ctx context.Context, userEmail, friendEmail string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	count, err := fr.collection.CountDocuments(spanCtx,
		eitherDirection(userEmail, friendEmail),
		options.Count().SetLimit(1),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return count > 0, nil
}

// ListFriendshipsByEmail retrieves all friendships involving the given email, in either direction.
func (fr FriendshipRepository) ListFriendshipsByEmail(ctx context.Context, email string) ([]domain.Friendship, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("email", email),
	))
	defer span.End()

	cursor, err := fr.collection.Find(spanCtx,
		bson.M{"$or": bson.A{
			bson.M{"user_email": email},
			bson.M{"friend_email": email},
		}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docs []friendshipDocument
	if err := cursor.All(spanCtx, &docs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	friendships := make([]domain.Friendship, 0, len(docs))
	for _, doc := range docs {
		friendship, err := friendshipFromDocument(doc)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		friendships = append(friendships, friendship)
	}
	return friendships, nil
}

// InitFriendshipRepository initializes the FriendshipRepository implementation
// and ensures the lookup indexes exist.
type InitFriendshipRepository struct {
	Database *mongo.Database `resolve:""`
}

// Initialize registers the FriendshipRepository as the implementation of domain.FriendshipRepository.
func (i InitFriendshipRepository) Initialize(ctx context.Context) (context.Context, error) {
	repo := NewFriendshipRepository(i.Database)

	_, err := repo.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_email", Value: 1}}},
		{Keys: bson.D{{Key: "friend_email", Value: 1}}},
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create friendship indexes: %w", err)
	}

	depend.Register[domain.FriendshipRepository](repo)
	return ctx, nil
}
