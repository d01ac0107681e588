package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateGiftReq is the payload for POST /v1/gifts.
type CreateGiftReq struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	SenderEmail    string `json:"sender_email" validate:"required,email"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
}

// CreateMessageReq is the payload for POST /v1/messages.
type CreateMessageReq struct {
	Content        string `json:"content" validate:"required"`
	SenderEmail    string `json:"sender_email" validate:"required,email"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	MessageType    string `json:"message_type"`
}

// SendCommunicationReq is the payload for POST /v1/communications.
type SendCommunicationReq struct {
	Type      string  `json:"type" validate:"required"`
	Recipient string  `json:"recipient" validate:"required"`
	Message   string  `json:"message" validate:"required"`
	Subject   *string `json:"subject"`
}

// GenerateMessageReq is the payload for POST /v1/ai/messages.
type GenerateMessageReq struct {
	Occasion          string  `json:"occasion" validate:"required"`
	RecipientName     string  `json:"recipient_name" validate:"required"`
	Tone              string  `json:"tone"`
	AdditionalDetails *string `json:"additional_details"`
}

// AddFriendReq is the payload for POST /v1/friends.
type AddFriendReq struct {
	UserEmail   string `json:"user_email" validate:"required,email"`
	FriendEmail string `json:"friend_email" validate:"required,email"`
}

// UpsertUserReq is the payload for PUT /v1/users.
type UpsertUserReq struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     *string `json:"name"`
	Birthday *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// decodeValid decodes the request body into T and validates it.
func decodeValid[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("invalid request body: %v", err)
	}
	if err := validate.Struct(req); err != nil {
		return req, fmt.Errorf("invalid request body: %v", err)
	}
	return req, nil
}
