package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	domainMessage = domain.Message{
		ID:             uuid.MustParse("223e4567-e89b-12d3-a456-426614174001"),
		Content:        "Happy birthday!",
		SenderEmail:    "alice@example.com",
		RecipientEmail: "bob@example.com",
		MessageType:    domain.DefaultMessageType,
		CreatedAt:      time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
	}
	restMessage = toMessage(domainMessage)
)

func TestJoyAppServer_CreateMessage(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockCreateMessage)
		expectedStatus int
		expectedBody   *MessageResp
		expectedCode   string
	}{
		"success": {
			requestBody: serializeJSON(t, CreateMessageReq{
				Content:        "Happy birthday!",
				SenderEmail:    "alice@example.com",
				RecipientEmail: "bob@example.com",
				MessageType:    "birthday",
			}),
			setupMocks: func(m *mocks.MockCreateMessage) {
				m.On("Execute", mock.Anything, "Happy birthday!", "alice@example.com", "bob@example.com", "birthday").
					Return(domainMessage, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   &restMessage,
		},
		"missing-content": {
			requestBody: serializeJSON(t, CreateMessageReq{
				SenderEmail:    "alice@example.com",
				RecipientEmail: "bob@example.com",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"invalid-sender-email": {
			requestBody: serializeJSON(t, CreateMessageReq{
				Content:        "Happy birthday!",
				SenderEmail:    "not-an-email",
				RecipientEmail: "bob@example.com",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"use-case-error": {
			requestBody: serializeJSON(t, CreateMessageReq{
				Content:        "Happy birthday!",
				SenderEmail:    "alice@example.com",
				RecipientEmail: "bob@example.com",
			}),
			setupMocks: func(m *mocks.MockCreateMessage) {
				m.On("Execute", mock.Anything, "Happy birthday!", "alice@example.com", "bob@example.com", "").
					Return(domain.Message{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_InternalError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCreateMessage := mocks.NewMockCreateMessage(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockCreateMessage)
			}

			server := JoyAppServer{
				CreateMessageUseCase: mockCreateMessage,
				Logger:               log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response MessageResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedCode != "" {
				var response ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedCode, response.Error.Code)
			}
		})
	}
}

func TestJoyAppServer_ListMessages(t *testing.T) {
	tests := map[string]struct {
		query          string
		setupMocks     func(*mocks.MockListMessages)
		expectedStatus int
		expectedBody   *ListMessagesResp
		expectedCode   string
	}{
		"by-sender": {
			query: "?sender=alice@example.com",
			setupMocks: func(m *mocks.MockListMessages) {
				m.On("BySender", mock.Anything, "alice@example.com").
					Return([]domain.Message{domainMessage}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ListMessagesResp{Items: []MessageResp{restMessage}},
		},
		"by-recipient": {
			query: "?recipient=bob@example.com",
			setupMocks: func(m *mocks.MockListMessages) {
				m.On("ByRecipient", mock.Anything, "bob@example.com").
					Return([]domain.Message{domainMessage}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ListMessagesResp{Items: []MessageResp{restMessage}},
		},
		"no-filter": {
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"use-case-error": {
			query: "?recipient=bob@example.com",
			setupMocks: func(m *mocks.MockListMessages) {
				m.On("ByRecipient", mock.Anything, "bob@example.com").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_InternalError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListMessages := mocks.NewMockListMessages(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockListMessages)
			}

			server := JoyAppServer{
				ListMessagesUseCase: mockListMessages,
				Logger:              log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/messages"+tt.query, nil)
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response ListMessagesResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedCode != "" {
				var response ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedCode, response.Error.Code)
			}
		})
	}
}

func TestJoyAppServer_GetMessage(t *testing.T) {
	tests := map[string]struct {
		messageID      string
		setupMocks     func(*mocks.MockListMessages)
		expectedStatus int
		expectedBody   *MessageResp
		expectedCode   string
	}{
		"success": {
			messageID: domainMessage.ID.String(),
			setupMocks: func(m *mocks.MockListMessages) {
				m.On("ByID", mock.Anything, domainMessage.ID).Return(domainMessage, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restMessage,
		},
		"invalid-id": {
			messageID:      "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"not-found": {
			messageID: domainMessage.ID.String(),
			setupMocks: func(m *mocks.MockListMessages) {
				m.On("ByID", mock.Anything, domainMessage.ID).
					Return(domain.Message{}, domain.NewNotFoundErr("message not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrorCode_NotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListMessages := mocks.NewMockListMessages(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockListMessages)
			}

			server := JoyAppServer{
				ListMessagesUseCase: mockListMessages,
				Logger:              log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/messages/"+tt.messageID, nil)
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response MessageResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedCode != "" {
				var response ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedCode, response.Error.Code)
			}
		})
	}
}
