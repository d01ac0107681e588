package usecases

import (
	"context"
	"log"
	"net/mail"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// AddFriend defines the interface for the AddFriend use case.
type AddFriend interface {
	// Execute links two users as friends and returns the friend's user record.
	Execute(ctx context.Context, userEmail, friendEmail string) (domain.User, error)
}

// AddFriendImpl is the implementation of the AddFriend use case.
//
// Both sides of the friendship are created as bare users when they are not in
// the user store yet, so befriending someone is enough to onboard them.
type AddFriendImpl struct {
	users        domain.UserRepository
	friendships  domain.FriendshipRepository
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	createUUID   func() uuid.UUID
}

// NewAddFriendImpl creates a new instance of AddFriendImpl.
func NewAddFriendImpl(
	users domain.UserRepository,
	friendships domain.FriendshipRepository,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) AddFriendImpl {
	return AddFriendImpl{
		users:        users,
		friendships:  friendships,
		timeProvider: timeProvider,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute records a friendship between the two emails. Adding an existing
// friend is a no-op that still returns the friend record.
func (af AddFriendImpl) Execute(ctx context.Context, userEmail, friendEmail string) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateAddFriendInputParams(userEmail, friendEmail); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	if _, err := af.ensureUser(spanCtx, userEmail); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	friend, err := af.ensureUser(spanCtx, friendEmail)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	exists, err := af.friendships.FriendshipExists(spanCtx, userEmail, friendEmail)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	if exists {
		return friend, nil
	}

	friendship := domain.Friendship{
		ID:          af.createUUID(),
		UserEmail:   userEmail,
		FriendEmail: friendEmail,
		CreatedAt:   af.timeProvider.Now(),
	}
	if err := af.friendships.CreateFriendship(spanCtx, friendship); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	af.logger.Printf("AddFriend: linked %s and %s", userEmail, friendEmail)
	return friend, nil
}

// ensureUser returns the stored user for the email, creating a bare record
// when none exists yet.
func (af AddFriendImpl) ensureUser(ctx context.Context, email string) (domain.User, error) {
	user, found, err := af.users.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if found {
		return user, nil
	}

	user = domain.User{
		ID:        af.createUUID(),
		Email:     email,
		CreatedAt: af.timeProvider.Now(),
	}
	if err := af.users.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func validateAddFriendInputParams(userEmail, friendEmail string) error {
	if _, err := mail.ParseAddress(userEmail); err != nil {
		return domain.NewValidationErr("user email is not a valid address")
	}
	if _, err := mail.ParseAddress(friendEmail); err != nil {
		return domain.NewValidationErr("friend email is not a valid address")
	}
	if strings.EqualFold(userEmail, friendEmail) {
		return domain.NewValidationErr("a user cannot befriend themselves")
	}
	return nil
}

// InitAddFriend initializes the AddFriend use case and registers it in the dependency container.
type InitAddFriend struct {
	Users        domain.UserRepository       `resolve:""`
	Friendships  domain.FriendshipRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider  `resolve:""`
	Logger       *log.Logger                 `resolve:""`
}

// Initialize registers the AddFriendImpl use case in the dependency container.
func (iaf InitAddFriend) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AddFriend](NewAddFriendImpl(iaf.Users, iaf.Friendships, iaf.TimeProvider, iaf.Logger))
	return ctx, nil
}
