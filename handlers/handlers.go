package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"schoolms/appctx"
	"schoolms/models"
)

// writeJSONResponse encodes data as the JSON response body
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// requireTeacher extracts the authenticated teacher set by the auth
// middleware. Writes a 401 and returns nil when it is missing.
func requireTeacher(w http.ResponseWriter, r *http.Request) *models.Teacher {
	teacher, ok := appctx.GetTeacher(r.Context())
	if !ok {
		log.Printf("❌ Teacher not found in context")
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return nil
	}
	return teacher
}
