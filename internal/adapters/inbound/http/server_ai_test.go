package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joyapp/joy-backend/internal/common"
	"github.com/joyapp/joy-backend/internal/domain"
	"github.com/joyapp/joy-backend/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJoyAppServer_GenerateMessage(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockGenerateOccasionMessage)
		expectedStatus int
		expectedBody   *GeneratedMessageResp
		expectedCode   string
	}{
		"generated-with-suggestions": {
			requestBody: serializeJSON(t, GenerateMessageReq{
				Occasion:          "birthday",
				RecipientName:     "Bob",
				Tone:              "funny",
				AdditionalDetails: common.Ptr("he loves fishing"),
			}),
			setupMocks: func(m *mocks.MockGenerateOccasionMessage) {
				m.On("Execute", mock.Anything, domain.MessageGenerationRequest{
					Occasion:          "birthday",
					RecipientName:     "Bob",
					Tone:              "funny",
					AdditionalDetails: common.Ptr("he loves fishing"),
				}).Return(domain.MessageGenerationResult{
					Message:     "Happy birthday, Bob!",
					Suggestions: []string{"Reel in another great year, Bob!"},
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody: &GeneratedMessageResp{
				Message:     "Happy birthday, Bob!",
				Suggestions: []string{"Reel in another great year, Bob!"},
			},
		},
		"nil-suggestions-serialize-as-empty-list": {
			requestBody: serializeJSON(t, GenerateMessageReq{
				Occasion:      "thank you",
				RecipientName: "Maria",
			}),
			setupMocks: func(m *mocks.MockGenerateOccasionMessage) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(domain.MessageGenerationResult{Message: "Thank you, Maria!"})
			},
			expectedStatus: http.StatusOK,
			expectedBody: &GeneratedMessageResp{
				Message:     "Thank you, Maria!",
				Suggestions: []string{},
			},
		},
		"missing-occasion": {
			requestBody: serializeJSON(t, GenerateMessageReq{
				RecipientName: "Bob",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCode_BadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGenerate := mocks.NewMockGenerateOccasionMessage(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mockGenerate)
			}

			server := JoyAppServer{
				GenerateMessageUseCase: mockGenerate,
				Logger:                 log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/ai/messages", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response GeneratedMessageResp
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
