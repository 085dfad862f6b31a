package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"growlog/internal/service"
	"growlog/internal/validation"
)

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, map[string]string{"error": userMsg})
}

// respondWithServiceError maps service errors onto HTTP status codes
func respondWithServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
	case errors.Is(err, service.ErrChildNotFound):
		respondWithError(w, http.StatusNotFound, "child not found", "", nil)
	case errors.Is(err, service.ErrNotParentChild):
		respondWithError(w, http.StatusForbidden, "child belongs to another parent", "", nil)
	case errors.Is(err, service.ErrEmptyAnswer):
		respondWithError(w, http.StatusBadRequest, "answer needs text or a selected option", "", nil)
	case errors.Is(err, service.ErrUnknownAge):
		respondWithError(w, http.StatusBadRequest, "unknown age group", "", nil)
	case errors.Is(err, service.ErrEmailTaken):
		respondWithError(w, http.StatusConflict, "email already taken", "", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "invalid email or password", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error", "request failed", err)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
