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
	domainGift = domain.Gift{
		ID:             uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Title:          "Birthday flowers",
		Description:    "A dozen tulips",
		SenderEmail:    "alice@example.com",
		RecipientEmail: "bob@example.com",
		RecipientName:  common.Ptr("Bob"),
		Status:         domain.GiftStatus_Pending,
		CreatedAt:      time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
	}
	restGift = toGift(domainGift)
)

func TestJoyAppServer_CreateGift(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockCreateGift)
		expectedStatus int
		expectedBody   *GiftResp
		expectedCode   string
	}{
		"success": {
			requestBody: serializeJSON(t, CreateGiftReq{
				Title:          "Birthday flowers",
				Description:    "A dozen tulips",
				SenderEmail:    "alice@example.com",
				RecipientEmail: "bob@example.com",
			}),
			setupMocks: func(m *mocks.MockCreateGift) {
				m.On("Execute", mock.Anything, "Birthday flowers", "A dozen tulips", "alice@example.com", "bob@example.com").
					Return(domainGift, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   &restGift,
		},
		"missing-title": {
			requestBody: serializeJSON(t, CreateGiftReq{
				SenderEmail:    "alice@example.com",
				RecipientEmail: "bob@example.com",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"title": 7}`),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"use-case-error": {
			requestBody: serializeJSON(t, CreateGiftReq{
				Title:          "Birthday flowers",
				SenderEmail:    "alice@example.com",
				RecipientEmail: "bob@example.com",
			}),
			setupMocks: func(m *mocks.MockCreateGift) {
				m.On("Execute", mock.Anything, "Birthday flowers", "", "alice@example.com", "bob@example.com").
					Return(domain.Gift{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_InternalError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCreateGift := mocks.NewMockCreateGift(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockCreateGift)
			}

			server := JoyAppServer{
				CreateGiftUseCase: mockCreateGift,
				Logger:            log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/gifts", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response GiftResp
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

func TestJoyAppServer_ListGifts(t *testing.T) {
	tests := map[string]struct {
		query          string
		setupMocks     func(*mocks.MockListGifts)
		expectedStatus int
		expectedBody   *ListGiftsResp
		expectedCode   string
	}{
		"by-sender": {
			query: "?sender=alice@example.com",
			setupMocks: func(m *mocks.MockListGifts) {
				m.On("BySender", mock.Anything, "alice@example.com").
					Return([]domain.Gift{domainGift}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ListGiftsResp{Items: []GiftResp{restGift}},
		},
		"by-recipient-empty": {
			query: "?recipient=bob@example.com",
			setupMocks: func(m *mocks.MockListGifts) {
				m.On("ByRecipient", mock.Anything, "bob@example.com").
					Return([]domain.Gift{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ListGiftsResp{Items: []GiftResp{}},
		},
		"no-filter": {
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"both-filters": {
			query:          "?sender=alice@example.com&recipient=bob@example.com",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"use-case-error": {
			query: "?sender=alice@example.com",
			setupMocks: func(m *mocks.MockListGifts) {
				m.On("BySender", mock.Anything, "alice@example.com").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCode_InternalError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListGifts := mocks.NewMockListGifts(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockListGifts)
			}

			server := JoyAppServer{
				ListGiftsUseCase: mockListGifts,
				Logger:           log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/gifts"+tt.query, nil)
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response ListGiftsResp
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

func TestJoyAppServer_GetGift(t *testing.T) {
	tests := map[string]struct {
		giftID         string
		setupMocks     func(*mocks.MockListGifts)
		expectedStatus int
		expectedBody   *GiftResp
		expectedCode   string
	}{
		"success": {
			giftID: domainGift.ID.String(),
			setupMocks: func(m *mocks.MockListGifts) {
				m.On("ByID", mock.Anything, domainGift.ID).Return(domainGift, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restGift,
		},
		"invalid-id": {
			giftID:         "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
		"not-found": {
			giftID: domainGift.ID.String(),
			setupMocks: func(m *mocks.MockListGifts) {
				m.On("ByID", mock.Anything, domainGift.ID).
					Return(domain.Gift{}, domain.NewNotFoundErr("gift not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrorCode_NotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListGifts := mocks.NewMockListGifts(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockListGifts)
			}

			server := JoyAppServer{
				ListGiftsUseCase: mockListGifts,
				Logger:           log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/gifts/"+tt.giftID, nil)
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response GiftResp
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

// serializeJSON is a helper function to marshal a value to JSON for test requests.
func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}
