package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
)

// ListMessagesResp is the wire representation of a message listing.
type ListMessagesResp struct {
	Items []MessageResp `json:"items"`
}

// CreateMessage handles POST /v1/messages.
func (api JoyAppServer) CreateMessage(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[CreateMessageReq](r)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, err.Error()))
		return
	}

	message, err := api.CreateMessageUseCase.Execute(r.Context(), req.Content, req.SenderEmail, req.RecipientEmail, req.MessageType)
	if err != nil {
		api.Logger.Printf("Error creating message: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toMessage(message))
}

// ListMessages handles GET /v1/messages. Exactly one of the sender or
// recipient query parameters selects the listing.
func (api JoyAppServer) ListMessages(w http.ResponseWriter, r *http.Request) {
	sender := r.URL.Query().Get("sender")
	recipient := r.URL.Query().Get("recipient")
	if (sender == "") == (recipient == "") {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "exactly one of sender or recipient is required"))
		return
	}

	var messages []domain.Message
	var err error
	if sender != "" {
		messages, err = api.ListMessagesUseCase.BySender(r.Context(), sender)
	} else {
		messages, err = api.ListMessagesUseCase.ByRecipient(r.Context(), recipient)
	}
	if err != nil {
		api.Logger.Printf("Error listing messages: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListMessagesResp{Items: []MessageResp{}}
	for _, message := range messages {
		resp.Items = append(resp.Items, toMessage(message))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetMessage handles GET /v1/messages/{messageId}.
func (api JoyAppServer) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("messageId"))
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "invalid message id"))
		return
	}

	message, err := api.ListMessagesUseCase.ByID(r.Context(), id)
	if err != nil {
		api.Logger.Printf("Error getting message: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toMessage(message))
}
