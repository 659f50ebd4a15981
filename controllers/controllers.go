package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sponsorlink_server/models"
)

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError maps the service error taxonomy to HTTP statuses: validation
// failures are the caller's fault, missing references are 404, storage
// collaborator failures are a bad gateway, everything else is internal.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *models.ValidationError
	var storageErr *models.StorageError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.Is(err, models.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &storageErr):
		log.Printf("storage collaborator failure: %v", err)
		respondJSON(w, http.StatusBadGateway, map[string]string{"error": "storage unavailable"})
	default:
		log.Printf("%s: %v", fallback, err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": fallback})
	}
}
