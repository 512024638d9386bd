package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the failure envelope: a short message plus an optional
// diagnostic detail string.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: "Failed to encode response"})
	}
}

// OK writes the endpoint's documented success payload as-is.
func OK(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Error: message})
}

func UnauthorizedWithDetail(w http.ResponseWriter, message, detail string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Error: message, Detail: detail})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorBody{Error: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{Error: message})
}

func InternalError(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{Error: "Internal error", Detail: detail})
}
