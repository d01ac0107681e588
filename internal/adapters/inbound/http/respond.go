package http

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in error responses.
const (
	ErrorCode_BadRequest    = "BAD_REQUEST"
	ErrorCode_NotFound      = "NOT_FOUND"
	ErrorCode_InternalError = "INTERNAL_ERROR"
)

// ErrorResp is the error envelope returned by every endpoint.
type ErrorResp struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newErrorResp(code, message string) ErrorResp {
	resp := ErrorResp{}
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case ErrorCode_NotFound:
		statusCode = http.StatusNotFound
	}
	respondJSON(w, statusCode, err)
}
