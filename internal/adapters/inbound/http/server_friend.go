package http

import (
	"net/http"
)

// ListFriendsResp is the wire representation of a friend listing.
type ListFriendsResp struct {
	Items []UserResp `json:"items"`
}

// AddFriend handles POST /v1/friends.
func (api JoyAppServer) AddFriend(w http.ResponseWriter, r *http.Request) {
	req, err := decodeValid[AddFriendReq](r)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, err.Error()))
		return
	}

	friend, err := api.AddFriendUseCase.Execute(r.Context(), req.UserEmail, req.FriendEmail)
	if err != nil {
		api.Logger.Printf("Error adding friend: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toUser(friend))
}

// ListFriends handles GET /v1/friends?email=.
func (api JoyAppServer) ListFriends(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "email query parameter is required"))
		return
	}

	friends, err := api.ListFriendsUseCase.Execute(r.Context(), email)
	if err != nil {
		api.Logger.Printf("Error listing friends: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListFriendsResp{Items: []UserResp{}}
	for _, friend := range friends {
		resp.Items = append(resp.Items, toUser(friend))
	}
	respondJSON(w, http.StatusOK, resp)
}
