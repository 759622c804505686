package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

func TestWriteServiceErrorMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", services.ErrNotFound("Course not found"), http.StatusNotFound, "Course not found"},
		{"bad request", services.ErrBadRequest("No IDs provided"), http.StatusBadRequest, "No IDs provided"},
		{"forbidden", services.ErrForbidden("Not allowed"), http.StatusForbidden, "Not allowed"},
		{"unauthorized", services.ErrUnauthorized("Invalid or expired token"), http.StatusUnauthorized, "Invalid or expired token"},
		{"wrapped service error", services.WrapError(services.ErrNotFound("Course not found"), "update calendar"), http.StatusNotFound, "Course not found"},
		{"unexpected error", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteServiceError(rec, tt.err, "test")

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp StatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestWriteJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
