package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

// StatusResponse is the failure envelope every endpoint uses; success
// payloads set Success true and add their own fields on top.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, StatusResponse{Success: false, Message: message})
}

// WriteServiceError maps a services.ServiceError onto its status; anything
// else is logged and surfaced as a generic 500.
func WriteServiceError(w http.ResponseWriter, err error, logContext string) {
	var serviceErr services.ServiceError
	if errors.As(err, &serviceErr) {
		WriteFailure(w, serviceErr.Status, serviceErr.Message)
		return
	}
	log.Printf("%s: %v", logContext, err)
	WriteFailure(w, http.StatusInternalServerError, "Internal server error")
}
