package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/joyapp/joy-backend/internal/domain"
)

// ListGiftsResp is the wire representation of a gift listing.
type ListGiftsResp struct {
	Items []GiftResp `json:"items"`
}

// CreateGift handles POST /v1/gifts.
func (api JoyAppServer) CreateGift(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[CreateGiftReq](r)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, err.Error()))
		return
	}

	gift, err := api.CreateGiftUseCase.Execute(r.Context(), req.Title, req.Description, req.SenderEmail, req.RecipientEmail)
	if err != nil {
		api.Logger.Printf("Error creating gift: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toGift(gift))
}

// ListGifts handles GET /v1/gifts. Exactly one of the sender or recipient
// query parameters selects the listing.
func (api JoyAppServer) ListGifts(w http.ResponseWriter, r *http.Request) {
	sender := r.URL.Query().Get("sender")
	recipient := r.URL.Query().Get("recipient")
	if (sender == "") == (recipient == "") {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "exactly one of sender or recipient is required"))
		return
	}

	var gifts []domain.Gift
	var err error
	if sender != "" {
		gifts, err = api.ListGiftsUseCase.BySender(r.Context(), sender)
	} else {
		gifts, err = api.ListGiftsUseCase.ByRecipient(r.Context(), recipient)
	}
	if err != nil {
		api.Logger.Printf("Error listing gifts: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListGiftsResp{Items: []GiftResp{}}
	for _, gift := range gifts {
		resp.Items = append(resp.Items, toGift(gift))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetGift handles GET /v1/gifts/{giftId}.
func (api JoyAppServer) GetGift(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("giftId"))
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "invalid gift id"))
		return
	}

	gift, err := api.ListGiftsUseCase.ByID(r.Context(), id)
	if err != nil {
		api.Logger.Printf("Error getting gift: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toGift(gift))
}
