package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vizierworks/game-vizier/internal/models"
)

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already gone; all we can do is log it.
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondError writes the standard {"error": ...} body.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, models.APIError{Error: msg})
}
