package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCreateGift is a mock implementation of usecases.CreateGift.
type MockCreateGift struct {
	mock.Mock
}

// NewMockCreateGift creates a new MockCreateGift that asserts its expectations on cleanup.
func NewMockCreateGift(t *testing.T) *MockCreateGift {
	m := &MockCreateGift{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreateGift) Execute(ctx context.Context, title, description, senderEmail, recipientEmail string) (domain.Gift, error) {
	args := m.Called(ctx, title, description, senderEmail, recipientEmail)
	return args.Get(0).(domain.Gift), args.Error(1)
}

// MockCreateMessage is a mock implementation of usecases.CreateMessage.
type MockCreateMessage struct {
	mock.Mock
}

// NewMockCreateMessage creates a new MockCreateMessage that asserts its expectations on cleanup.
func NewMockCreateMessage(t *testing.T) *MockCreateMessage {
	m := &MockCreateMessage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreateMessage) Execute(ctx context.Context, content, senderEmail, recipientEmail, messageType string) (domain.Message, error) {
	args := m.Called(ctx, content, senderEmail, recipientEmail, messageType)
	return args.Get(0).(domain.Message), args.Error(1)
}

// MockListGifts is a mock implementation of usecases.ListGifts.
type MockListGifts struct {
	mock.Mock
}

// NewMockListGifts creates a new MockListGifts that asserts its expectations on cleanup.
func NewMockListGifts(t *testing.T) *MockListGifts {
	m := &MockListGifts{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListGifts) BySender(ctx context.Context, senderEmail string) ([]domain.Gift, error) {
	args := m.Called(ctx, senderEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gift), args.Error(1)
}

func (m *MockListGifts) ByRecipient(ctx context.Context, recipientEmail string) ([]domain.Gift, error) {
	args := m.Called(ctx, recipientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gift), args.Error(1)
}

func (m *MockListGifts) ByID(ctx context.Context, id uuid.UUID) (domain.Gift, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Gift), args.Error(1)
}

// MockListMessages is a mock implementation of usecases.ListMessages.
type MockListMessages struct {
	mock.Mock
}

// NewMockListMessages creates a new MockListMessages that asserts its expectations on cleanup.
func NewMockListMessages(t *testing.T) *MockListMessages {
	m := &MockListMessages{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListMessages) BySender(ctx context.Context, senderEmail string) ([]domain.Message, error) {
	args := m.Called(ctx, senderEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockListMessages) ByRecipient(ctx context.Context, recipientEmail string) ([]domain.Message, error) {
	args := m.Called(ctx, recipientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockListMessages) ByID(ctx context.Context, id uuid.UUID) (domain.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Message), args.Error(1)
}

// MockSendCommunication is a mock implementation of usecases.SendCommunication.
type MockSendCommunication struct {
	mock.Mock
}

// NewMockSendCommunication creates a new MockSendCommunication that asserts its expectations on cleanup.
func NewMockSendCommunication(t *testing.T) *MockSendCommunication {
	m := &MockSendCommunication{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSendCommunication) Execute(ctx context.Context, req domain.CommunicationRequest) domain.CommunicationResult {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.CommunicationResult)
}

// MockGenerateOccasionMessage is a mock implementation of usecases.GenerateOccasionMessage.
type MockGenerateOccasionMessage struct {
	mock.Mock
}

// NewMockGenerateOccasionMessage creates a new MockGenerateOccasionMessage that asserts its expectations on cleanup.
func NewMockGenerateOccasionMessage(t *testing.T) *MockGenerateOccasionMessage {
	m := &MockGenerateOccasionMessage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGenerateOccasionMessage) Execute(ctx context.Context, req domain.MessageGenerationRequest) domain.MessageGenerationResult {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.MessageGenerationResult)
}

// MockAddFriend is a mock implementation of usecases.AddFriend.
type MockAddFriend struct {
	mock.Mock
}

// NewMockAddFriend creates a new MockAddFriend that asserts its expectations on cleanup.
func NewMockAddFriend(t *testing.T) *MockAddFriend {
	m := &MockAddFriend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAddFriend) Execute(ctx context.Context, userEmail, friendEmail string) (domain.User, error) {
	args := m.Called(ctx, userEmail, friendEmail)
	return args.Get(0).(domain.User), args.Error(1)
}

// MockListFriends is a mock implementation of usecases.ListFriends.
type MockListFriends struct {
	mock.Mock
}

// NewMockListFriends creates a new MockListFriends that asserts its expectations on cleanup.
func NewMockListFriends(t *testing.T) *MockListFriends {
	m := &MockListFriends{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListFriends) Execute(ctx context.Context, userEmail string) ([]domain.User, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockUpsertUser is a mock implementation of usecases.UpsertUser.
type MockUpsertUser struct {
	mock.Mock
}

// NewMockUpsertUser creates a new MockUpsertUser that asserts its expectations on cleanup.
func NewMockUpsertUser(t *testing.T) *MockUpsertUser {
	m := &MockUpsertUser{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUpsertUser) Execute(ctx context.Context, email string, name *string, birthday *time.Time) (domain.User, error) {
	args := m.Called(ctx, email, name, birthday)
	return args.Get(0).(domain.User), args.Error(1)
}
