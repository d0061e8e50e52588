package httpapi

import (
	"encoding/json"
	"net/http"
)

// Every error body has the shape {"error":{"code":..., "description":...}};
// description is omitted on responses that never carried one.
type errorBody struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Description: description}})
}
