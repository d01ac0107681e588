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
	"github.com/joyapp/joy-backend/internal/common"
	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	domainFriend = domain.User{
		ID:        uuid.MustParse("323e4567-e89b-12d3-a456-426614174002"),
		Email:     "bob@example.com",
		Name:      common.Ptr("Bob"),
		Birthday:  common.Ptr(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)),
		CreatedAt: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
	}
	restFriend = toUser(domainFriend)
)

func TestJoyAppServer_AddFriend(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockAddFriend)
		expectedStatus int
		expectedBody   *UserResp
		expectedCode   string
	}{
		"success": {
			requestBody: serializeJSON(t, AddFriendReq{
				UserEmail:   "alice@example.com",
				FriendEmail: "bob@example.com",
			}),
			setupMocks: func(m *mocks.MockAddFriend) {
				m.On("Execute", mock.Anything, "alice@example.com", "bob@example.com").
					Return(domainFriend, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   &restFriend,
		},
		"self-friendship": {
			requestBody: serializeJSON(t, AddFriendReq{
				UserEmail:   "alice@example.com",
				FriendEmail: "alice@example.com",
			}),
			setupMocks: func(m *mocks.MockAddFriend) {
				m.On("Execute", mock.Anything, "alice@example.com", "alice@example.com").
					Return(domain.User{}, domain.NewValidationErr("a user cannot befriend themselves"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"invalid-friend-email": {
			requestBody: serializeJSON(t, AddFriendReq{
				UserEmail:   "alice@example.com",
				FriendEmail: "not-an-email",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"use-case-error": {
			requestBody: serializeJSON(t, AddFriendReq{
				UserEmail:   "alice@example.com",
				FriendEmail: "bob@example.com",
			}),
			setupMocks: func(m *mocks.MockAddFriend) {
				m.On("Execute", mock.Anything, "alice@example.com", "bob@example.com").
					Return(domain.User{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_InternalError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockAddFriend := mocks.NewMockAddFriend(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockAddFriend)
			}

			server := JoyAppServer{
				AddFriendUseCase: mockAddFriend,
				Logger:           log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/friends", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response UserResp
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

func TestJoyAppServer_ListFriends(t *testing.T) {
	tests := map[string]struct {
		query          string
		setupMocks     func(*mocks.MockListFriends)
		expectedStatus int
		expectedBody   *ListFriendsResp
		expectedCode   string
	}{
		"success": {
			query: "?email=alice@example.com",
			setupMocks: func(m *mocks.MockListFriends) {
				m.On("Execute", mock.Anything, "alice@example.com").
					Return([]domain.User{domainFriend}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ListFriendsResp{Items: []UserResp{restFriend}},
		},
		"no-friends": {
			query: "?email=alice@example.com",
			setupMocks: func(m *mocks.MockListFriends) {
				m.On("Execute", mock.Anything, "alice@example.com").
					Return([]domain.User{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ListFriendsResp{Items: []UserResp{}},
		},
		"missing-email": {
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"use-case-error": {
			query: "?email=alice@example.com",
			setupMocks: func(m *mocks.MockListFriends) {
				m.On("Execute", mock.Anything, "alice@example.com").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_InternalError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListFriends := mocks.NewMockListFriends(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockListFriends)
			}

			server := JoyAppServer{
				ListFriendsUseCase: mockListFriends,
				Logger:             log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/friends"+tt.query, nil)
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response ListFriendsResp
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
