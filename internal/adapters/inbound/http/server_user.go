package http

import (
	"net/http"
	"time"
)

// UpsertUser handles PUT /v1/users.
func (api JoyAppServer) UpsertUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[UpsertUserReq](r)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, err.Error()))
		return
	}

	var birthday *time.Time
	if req.Birthday != nil {
		parsed, err := time.Parse(time.DateOnly, *req.Birthday)
		if err != nil {
			respondError(w, newErrorResp(ErrorCode_BadRequest, "birthday must be formatted as YYYY-MM-DD"))
			return
		}
		birthday = &parsed
	}

	user, err := api.UpsertUserUseCase.Execute(r.Context(), req.Email, req.Name, birthday)
	if err != nil {
		api.Logger.Printf("Error upserting user: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toUser(user))
}
