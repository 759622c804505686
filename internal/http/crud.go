package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

type DeleteRequest struct {
	IDs []string `json:"ids"`
}

// batchDelete removes every row whose id appears in the request body and
// returns the number actually deleted. A batch that matches nothing is a
// not-found condition, reported rather than thrown.
func (s *Server) batchDelete(r *http.Request, table, noun string) (int64, error) {
	var req DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, services.ErrBadRequest("No IDs provided")
	}
	if len(req.IDs) == 0 {
		return 0, services.ErrBadRequest("No IDs provided")
	}
	ids := services.FilterIDs(req.IDs)
	if len(ids) == 0 {
		return 0, services.ErrNotFound("No " + noun + " found")
	}
	query, args, err := sqlx.In(`DELETE FROM `+table+` WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	result, err := s.DB.Exec(s.DB.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, services.ErrNotFound("No " + noun + " found")
	}
	return count, nil
}

// validID guards single-id lookups: a malformed id would otherwise surface
// as a driver error on the uuid column instead of a not-found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.ErrBadRequest("Invalid payload")
	}
	return nil
}
