package http

import (
	"net/http"

	"github.com/joyapp/joy-backend/internal/domain"
)

// GenerateMessage handles POST /v1/ai/messages.
func (api JoyAppServer) GenerateMessage(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[GenerateMessageReq](r)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, err.Error()))
		return
	}

	result := api.GenerateMessageUseCase.Execute(r.Context(), domain.MessageGenerationRequest{
		Occasion:          req.Occasion,
		RecipientName:     req.RecipientName,
		Tone:              req.Tone,
		AdditionalDetails: req.AdditionalDetails,
	})

	respondJSON(w, http.StatusOK, toGeneratedMessage(result))
}
