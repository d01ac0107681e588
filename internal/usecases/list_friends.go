package usecases

import (
	"context"
	"net/mail"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// ListFriends defines the interface for the ListFriends use case.
type ListFriends interface {
	// Execute returns the user records of everyone befriended with the given email.
	Execute(ctx context.Context, userEmail string) ([]domain.User, error)
}

// ListFriendsImpl is the implementation of the ListFriends use case.
type ListFriendsImpl struct {
	users       domain.UserRepository
	friendships domain.FriendshipRepository
}

// NewListFriendsImpl creates a new instance of ListFriendsImpl.
func NewListFriendsImpl(users domain.UserRepository, friendships domain.FriendshipRepository) ListFriendsImpl {
	return ListFriendsImpl{
		users:       users,
		friendships: friendships,
	}
}

// Execute resolves friendships in both directions and loads the friend users.
func (lf ListFriendsImpl) Execute(ctx context.Context, userEmail string) ([]domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := mail.ParseAddress(userEmail); err != nil {
		err = domain.NewValidationErr("user email is not a valid address")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	friendships, err := lf.friendships.ListFriendshipsByEmail(spanCtx, userEmail)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	emails := domain.FriendEmails(friendships, userEmail)
	if len(emails) == 0 {
		return []domain.User{}, nil
	}

	friends, err := lf.users.ListUsersByEmails(spanCtx, emails)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return friends, nil
}

// InitListFriends initializes the ListFriends use case and registers it in the dependency container.
type InitListFriends struct {
	Users       domain.UserRepository       `resolve:""`
	Friendships domain.FriendshipRepository `resolve:""`
}

// Initialize registers the ListFriendsImpl use case in the dependency container.
func (ilf InitListFriends) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListFriends](NewListFriendsImpl(ilf.Users, ilf.Friendships))
	return ctx, nil
}
