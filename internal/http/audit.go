package httpapi

import (
	"net/http"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

// AuditTrail returns the calendar edit history in the legacy mapping shape:
// ISO-8601 millisecond timestamp keyed to "actor | course | module".
func (s *Server) AuditTrail(w http.ResponseWriter, r *http.Request) {
	entries, err := services.ListAudit(s.DB)
	if err != nil {
		WriteServiceError(w, err, "fetch audit trail")
		return
	}
	if len(entries) == 0 {
		WriteFailure(w, http.StatusNotFound, "No audit trail found")
		return
	}
	WriteJSON(w, http.StatusOK, services.AuditTrailView(entries))
}
