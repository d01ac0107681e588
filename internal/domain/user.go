package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents a registered person in the user store.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      *string
	Birthday  *time.Time
	CreatedAt time.Time
}

// Friendship links two users by email. The pair is unordered: a friendship
// between A and B is the same record regardless of who initiated it.
type Friendship struct {
	ID          uuid.UUID
	UserEmail   string
	FriendEmail string
	CreatedAt   time.Time
}

// UserRepository defines the interface for managing users.
type UserRepository interface {
	// GetUserByEmail retrieves a user by email. The second return value reports whether it was found.
	GetUserByEmail(ctx context.Context, email string) (User, bool, error)
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user User) error
	// UpdateUser replaces the stored user with the given one.
	UpdateUser(ctx context.Context, user User) error
	// ListUsersByEmails retrieves all users whose email is in the given set.
	ListUsersByEmails(ctx context.Context, emails []string) ([]User, error)
}

// FriendshipRepository defines the interface for managing friendships.
type FriendshipRepository interface {
	// CreateFriendship persists a new friendship.
	CreateFriendship(ctx context.Context, friendship Friendship) error
	// FriendshipExists reports whether a friendship between the two emails exists in either direction.
	FriendshipExists(ctx context.Context, userEmail, friendEmail string) (bool, error)
	// ListFriendshipsByEmail retrieves all friendships involving the given email, in either direction.
	ListFriendshipsByEmail(ctx context.Context, email string) ([]Friendship, error)
}

// FriendEmails extracts the distinct counterpart emails from the given
// friendships, relative to the given user email.
func FriendEmails(friendships []Friendship, userEmail string) []string {
	seen := map[string]struct{}{}
	emails := make([]string, 0, len(friendships))
	for _, f := range friendships {
		friend := f.FriendEmail
		if f.FriendEmail == userEmail {
			friend = f.UserEmail
		}
		if _, ok := seen[friend]; ok {
			continue
		}
		seen[friend] = struct{}{}
		emails = append(emails, friend)
	}
	return emails
}
