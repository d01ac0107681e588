package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joyapp/joy-backend/internal/domain"
	domain_mocks "github.com/joyapp/joy-backend/internal/domain/mocks"
)

func TestCreateMessageImpl_Execute(t *testing.T) {
	fixedUUID := func() uuid.UUID {
		return uuid.MustParse("9f2c8e1a-5b77-4a60-9d35-2e58a1b6c7d4")
	}
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	recipientName := "Bea"
	persistedMessage := domain.Message{
		ID:             fixedUUID(),
		Content:        "Happy birthday!",
		SenderEmail:    "a@x.com",
		RecipientEmail: "b@x.com",
		RecipientName:  &recipientName,
		MessageType:    "birthday",
		CreatedAt:      fixedTime,
	}
	expectedEvent := domain.MessageCreatedEvent{
		MessageID:      fixedUUID().String(),
		Content:        "Happy birthday!",
		RecipientEmail: "b@x.com",
		SenderEmail:    "a@x.com",
		MessageType:    "birthday",
		CreatedAt:      fixedTime,
	}

	tests := map[string]struct {
		content         string
		messageType     string
		setExpectations func(messages *domain_mocks.MockMessageRepository, users *domain_mocks.MockUserRepository, publisher *domain_mocks.MockEventPublisher, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedMessage domain.Message
		expectedErr     error
	}{
		"success-with-explicit-type": {
			content:     "Happy birthday!",
			messageType: "birthday",
			setExpectations: func(messages *domain_mocks.MockMessageRepository, users *domain_mocks.MockUserRepository, publisher *domain_mocks.MockEventPublisher, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)
				users.On("GetUserByEmail", mock.Anything, "b@x.com").
					Return(domain.User{Email: "b@x.com", Name: &recipientName}, true, nil)
				messages.On("CreateMessage", mock.Anything, persistedMessage).Return(nil)
				publisher.On("PublishEvent", mock.Anything, expectedEvent).Return(nil)
			},
			expectedMessage: persistedMessage,
		},
		"empty-type-defaults-to-birthday": {
			content:     "Happy birthday!",
			messageType: "",
			setExpectations: func(messages *domain_mocks.MockMessageRepository, users *domain_mocks.MockUserRepository, publisher *domain_mocks.MockEventPublisher, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)
				users.On("GetUserByEmail", mock.Anything, "b@x.com").
					Return(domain.User{Email: "b@x.com", Name: &recipientName}, true, nil)
				messages.On("CreateMessage", mock.Anything, persistedMessage).Return(nil)
				publisher.On("PublishEvent", mock.Anything, expectedEvent).Return(nil)
			},
			expectedMessage: persistedMessage,
		},
		"publish-failure-does-not-fail-creation": {
			content:     "Happy birthday!",
			messageType: "birthday",
			setExpectations: func(messages *domain_mocks.MockMessageRepository, users *domain_mocks.MockUserRepository, publisher *domain_mocks.MockEventPublisher, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)
				users.On("GetUserByEmail", mock.Anything, "b@x.com").
					Return(domain.User{Email: "b@x.com", Name: &recipientName}, true, nil)
				messages.On("CreateMessage", mock.Anything, persistedMessage).Return(nil)
				publisher.On("PublishEvent", mock.Anything, expectedEvent).
					Return(domain.NewSerializationErr("failed to encode event payload", errors.New("bad payload")))
			},
			expectedMessage: persistedMessage,
		},
		"validation-error-empty-content": {
			content:     "",
			messageType: "birthday",
			expectedErr: domain.NewValidationErr("content cannot be empty"),
		},
		"persistence-error-fails-hard": {
			content:     "Happy birthday!",
			messageType: "birthday",
			setExpectations: func(messages *domain_mocks.MockMessageRepository, users *domain_mocks.MockUserRepository, publisher *domain_mocks.MockEventPublisher, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)
				users.On("GetUserByEmail", mock.Anything, "b@x.com").
					Return(domain.User{Email: "b@x.com", Name: &recipientName}, true, nil)
				messages.On("CreateMessage", mock.Anything, persistedMessage).Return(errors.New("insert failed"))
			},
			expectedErr: errors.New("insert failed"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			messages := domain_mocks.NewMockMessageRepository(t)
			users := domain_mocks.NewMockUserRepository(t)
			publisher := domain_mocks.NewMockEventPublisher(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(messages, users, publisher, timeProvider)
			}

			cm := NewCreateMessageImpl(messages, users, publisher, timeProvider, log.New(io.Discard, "", 0))
			cm.createUUID = fixedUUID

			message, err := cm.Execute(context.Background(), tt.content, "a@x.com", "b@x.com", tt.messageType)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}
