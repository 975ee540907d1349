package http

import (
	"encoding/json"
	"net/http"
)

// AppHttpHandler is a handler that reports failures as errors; errorHandlingAdapter turns them into responses.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
