package usecases

import (
	"context"
	"net/mail"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/telemetry"
)

// UpsertUser defines the interface for the UpsertUser use case.
type UpsertUser interface {
	// Execute creates the user when the email is unknown, otherwise updates
	// the profile fields that are set.
	Execute(ctx context.Context, email string, name *string, birthday *time.Time) (domain.User, error)
}

// UpsertUserImpl is the implementation of the UpsertUser use case.
type UpsertUserImpl struct {
	users        domain.UserRepository
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewUpsertUserImpl creates a new instance of UpsertUserImpl.
func NewUpsertUserImpl(users domain.UserRepository, timeProvider domain.CurrentTimeProvider) UpsertUserImpl {
	return UpsertUserImpl{
		users:        users,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute upserts the user profile. Nil fields leave the stored value untouched.
func (uu UpsertUserImpl) Execute(ctx context.Context, email string, name *string, birthday *time.Time) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := mail.ParseAddress(email); err != nil {
		err = domain.NewValidationErr("email is not a valid address")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, err
	}

	user, found, err := uu.users.GetUserByEmail(spanCtx, email)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	if !found {
		user = domain.User{
			ID:        uu.createUUID(),
			Email:     email,
			Name:      name,
			Birthday:  birthday,
			CreatedAt: uu.timeProvider.Now(),
		}
		if err := uu.users.CreateUser(spanCtx, user); telemetry.RecordErrorAndStatus(span, err) {
			return domain.User{}, err
		}
		return user, nil
	}

	if name != nil {
		user.Name = name
	}
	if birthday != nil {
		user.Birthday = birthday
	}
	if err := uu.users.UpdateUser(spanCtx, user); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	return user, nil
}

// InitUpsertUser initializes the UpsertUser use case and registers it in the dependency container.
type InitUpsertUser struct {
	Users        domain.UserRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpsertUserImpl use case in the dependency container.
func (iuu InitUpsertUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpsertUser](NewUpsertUserImpl(iuu.Users, iuu.TimeProvider))
	return ctx, nil
}
