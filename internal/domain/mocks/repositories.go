// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockGiftRepository is a mock implementation of domain.GiftRepository.
type MockGiftRepository struct {
	mock.Mock
}

// NewMockGiftRepository creates a new MockGiftRepository that asserts its expectations on cleanup.
func NewMockGiftRepository(t *testing.T) *MockGiftRepository {
	m := &MockGiftRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGiftRepository) CreateGift(ctx context.Context, gift domain.Gift) error {
	args := m.Called(ctx, gift)
	return args.Error(0)
}

func (m *MockGiftRepository) GetGift(ctx context.Context, id uuid.UUID) (domain.Gift, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Gift), args.Bool(1), args.Error(2)
}

func (m *MockGiftRepository) ListGiftsBySender(ctx context.Context, senderEmail string) ([]domain.Gift, error) {
	args := m.Called(ctx, senderEmail)
	return args.Get(0).([]domain.Gift), args.Error(1)
}

func (m *MockGiftRepository) ListGiftsByRecipient(ctx context.Context, recipientEmail string) ([]domain.Gift, error) {
	args := m.Called(ctx, recipientEmail)
	return args.Get(0).([]domain.Gift), args.Error(1)
}

// MockMessageRepository is a mock implementation of domain.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

// NewMockMessageRepository creates a new MockMessageRepository that asserts its expectations on cleanup.
func NewMockMessageRepository(t *testing.T) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMessageRepository) CreateMessage(ctx context.Context, message domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) GetMessage(ctx context.Context, id uuid.UUID) (domain.Message, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Message), args.Bool(1), args.Error(2)
}

func (m *MockMessageRepository) ListMessagesBySender(ctx context.Context, senderEmail string) ([]domain.Message, error) {
	args := m.Called(ctx, senderEmail)
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepository) ListMessagesByRecipient(ctx context.Context, recipientEmail string) ([]domain.Message, error) {
	args := m.Called(ctx, recipientEmail)
	return args.Get(0).([]domain.Message), args.Error(1)
}

// MockUserRepository is a mock implementation of domain.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new MockUserRepository that asserts its expectations on cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsersByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	args := m.Called(ctx, emails)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockFriendshipRepository is a mock implementation of domain.FriendshipRepository.
type MockFriendshipRepository struct {
	mock.Mock
}

// NewMockFriendshipRepository creates a new MockFriendshipRepository that asserts its expectations on cleanup.
func NewMockFriendshipRepository(t *testing.T) *MockFriendshipRepository {
	m := &MockFriendshipRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFriendshipRepository) CreateFriendship(ctx context.Context, friendship domain.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}

func (m *MockFriendshipRepository) FriendshipExists(ctx context.Context, userEmail, friendEmail string) (bool, error) {
	args := m.Called(ctx, userEmail, friendEmail)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipRepository) ListFriendshipsByEmail(ctx context.Context, email string) ([]domain.Friendship, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Friendship), args.Error(1)
}
