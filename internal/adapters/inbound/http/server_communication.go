package http

import (
	"net/http"

	"github.com/joyapp/joy-backend/internal/domain"
)

// SendCommunication handles POST /v1/communications.
//
// A failed delivery is still a 200 with success=false; only an unknown
// channel type is a 400.
func (api JoyAppServer) SendCommunication(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[SendCommunicationReq](r)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, err.Error()))
		return
	}

	result := api.SendCommunicationUseCase.Execute(r.Context(), domain.CommunicationRequest{
		Type:      req.Type,
		Recipient: req.Recipient,
		Message:   req.Message,
		Subject:   req.Subject,
	})

	status := http.StatusOK
	if !domain.IsSupportedChannelKind(req.Type) {
		status = http.StatusBadRequest
	}
	respondJSON(w, status, toCommunicationResult(result))
}
