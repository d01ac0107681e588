package mongodb

import (
	"context"
	"errors"
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

const usersCollection = "users"

type userDocument struct {
	ID        string     `bson:"_id"`
	Email     string     `bson:"email"`
	Name      *string    `bson:"name,omitempty"`
	Birthday  *time.Time `bson:"birthday,omitempty"`
	CreatedAt time.Time  `bson:"created_at"`
}

func userToDocument(user domain.User) userDocument {
	return userDocument{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Birthday:  user.Birthday,
		CreatedAt: user.CreatedAt,
	}
}

func userFromDocument(doc userDocument) (domain.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{
		ID:        id,
		Email:     doc.Email,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt.UTC(),
	}
	if doc.Birthday != nil {
		birthday := doc.Birthday.UTC()
		user.Birthday = &birthday
	}
	return user, nil
}

// UserRepository implements the domain.UserRepository interface using MongoDB as the storage backend.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return UserRepository{collection: db.Collection(usersCollection)}
}

// GetUserByEmail retrieves a user by email.
func (ur UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("email", email),
	))
	defer span.End()

	var doc userDocument
	err := ur.collection.FindOne(spanCtx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, false, err
	}

	user, err := userFromDocument(doc)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, false, err
	}
	return user, true, nil
}

// CreateUser persists a new user.
func (ur UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("email", user.Email),
	))
	defer span.End()

	_, err := ur.collection.InsertOne(spanCtx, userToDocument(user))
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// UpdateUser replaces the stored user with the given one.
func (ur UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("email", user.Email),
	))
	defer span.End()

	result, err := ur.collection.ReplaceOne(spanCtx, bson.M{"_id": user.ID.String()}, userToDocument(user))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if result.MatchedCount == 0 {
		err = domain.NewNotFoundErr("user not found")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// ListUsersByEmails retrieves all users whose email is in the given set.
func (ur UserRepository) ListUsersByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("email_count", len(emails)),
	))
	defer span.End()

	cursor, err := ur.collection.Find(spanCtx,
		bson.M{"email": bson.M{"$in": emails}},
		options.Find().SetSort(bson.D{{Key: "email", Value: 1}}),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docs []userDocument
	if err := cursor.All(spanCtx, &docs); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		user, err := userFromDocument(doc)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// InitUserRepository initializes the UserRepository implementation and ensures
// the unique email index exists.
type InitUserRepository struct {
	Database *mongo.Database `resolve:""`
}

// Initialize registers the UserRepository as the implementation of domain.UserRepository.
func (i InitUserRepository) Initialize(ctx context.Context) (context.Context, error) {
	repo := NewUserRepository(i.Database)

	_, err := repo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create users email index: %w", err)
	}

	depend.Register[domain.UserRepository](repo)
	return ctx, nil
}
