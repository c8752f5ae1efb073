package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"certquiz/internal/quiz"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Internal causes
// are logged server-side and never leak into the response body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch quiz.ErrKind(err) {
	case quiz.KindUnauthenticated:
		status, message = http.StatusUnauthorized, err.Error()
	case quiz.KindNotFound:
		status, message = http.StatusNotFound, err.Error()
	case quiz.KindForbidden:
		status, message = http.StatusForbidden, err.Error()
	case quiz.KindInvalidInput:
		status, message = http.StatusBadRequest, err.Error()
	case quiz.KindConflict:
		status, message = http.StatusConflict, err.Error()
	default:
		log.Printf("Internal error: %v", err)
	}

	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return quiz.InvalidInput("invalid request body")
	}
	return nil
}
