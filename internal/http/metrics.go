package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

type MetricsHistoryResponse struct {
	Items []services.MetricSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := 120
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestMetrics(s.DB, limit)
	if err != nil {
		WriteServiceError(w, err, "metrics history")
		return
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Items: items})
}

// MetricsSocket streams live samples to the admin dashboard. Browsers cannot
// set headers on websocket upgrades, so the token travels as a query
// parameter.
func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("token")
	if raw == "" {
		WriteFailure(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}
	claims, err := s.Tokens.ParseToken(raw)
	if err != nil {
		WriteFailure(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}
	if claims.PrivilegeLevel != services.TopPrivilegeLevel {
		WriteFailure(w, http.StatusForbidden, "Not allowed")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
