package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of domain.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new MockEventPublisher that asserts its expectations on cleanup.
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventPublisher) PublishEvent(ctx context.Context, event domain.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockLLMClient is a mock implementation of domain.LLMClient.
type MockLLMClient struct {
	mock.Mock
}

// NewMockLLMClient creates a new MockLLMClient that asserts its expectations on cleanup.
func NewMockLLMClient(t *testing.T) *MockLLMClient {
	m := &MockLLMClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLLMClient) Complete(ctx context.Context, req domain.ChatCompletionRequest) (domain.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ChatCompletionResponse), args.Error(1)
}

// MockDeliveryChannel is a mock implementation of domain.DeliveryChannel.
type MockDeliveryChannel struct {
	mock.Mock
}

// NewMockDeliveryChannel creates a new MockDeliveryChannel that asserts its expectations on cleanup.
func NewMockDeliveryChannel(t *testing.T) *MockDeliveryChannel {
	m := &MockDeliveryChannel{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDeliveryChannel) Send(ctx context.Context, recipient, body, subject string) bool {
	args := m.Called(ctx, recipient, body, subject)
	return args.Bool(0)
}

// MockCurrentTimeProvider is a mock implementation of domain.CurrentTimeProvider.
type MockCurrentTimeProvider struct {
	mock.Mock
}

// NewMockCurrentTimeProvider creates a new MockCurrentTimeProvider that asserts its expectations on cleanup.
func NewMockCurrentTimeProvider(t *testing.T) *MockCurrentTimeProvider {
	m := &MockCurrentTimeProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCurrentTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
