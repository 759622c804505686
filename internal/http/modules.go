package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/models"
	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

type ModuleRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LectureHours  int      `json:"lectureHours"`
	AssignedStaff []string `json:"assignedStaff"`
}

type ModuleDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LectureHours  int      `json:"lectureHours"`
	AssignedStaff []string `json:"assignedStaff"`
}

type ModuleResponse struct {
	Success bool      `json:"success"`
	Module  ModuleDTO `json:"module"`
}

func toModuleDTO(m models.Module) ModuleDTO {
	return ModuleDTO{
		ID:            m.ID,
		Name:          m.Name,
		LectureHours:  m.LectureHours,
		AssignedStaff: services.DecodeIDList(m.AssignedStaff),
	}
}

// ShowModules lists every module as [id, name, lectureHours, assignedStaff].
func (s *Server) ShowModules(w http.ResponseWriter, r *http.Request) {
	modules := []models.Module{}
	if err := s.DB.Select(&modules, `
SELECT id, name, lecture_hours, assigned_staff, created_at, updated_at
FROM modules ORDER BY created_at ASC
`); err != nil {
		WriteServiceError(w, err, "list modules")
		return
	}
	rows := make([][]interface{}, 0, len(modules))
	for _, m := range modules {
		rows = append(rows, []interface{}{
			m.ID, m.Name, m.LectureHours, services.DecodeIDList(m.AssignedStaff),
		})
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (s *Server) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req ModuleRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "create module")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.LectureHours == 0 {
		WriteFailure(w, http.StatusBadRequest, "Name and lecture hours are required")
		return
	}
	staff, _ := json.Marshal(services.FilterIDs(req.AssignedStaff))
	module := models.Module{
		ID:            uuid.NewString(),
		Name:          req.Name,
		LectureHours:  req.LectureHours,
		AssignedStaff: staff,
	}
	if _, err := s.DB.Exec(`
INSERT INTO modules (id, name, lecture_hours, assigned_staff, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$5)
`, module.ID, module.Name, module.LectureHours, module.AssignedStaff, time.Now().UTC()); err != nil {
		WriteServiceError(w, err, "create module")
		return
	}
	WriteJSON(w, http.StatusCreated, ModuleResponse{Success: true, Module: toModuleDTO(module)})
}

func (s *Server) EditModule(w http.ResponseWriter, r *http.Request) {
	var req ModuleRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "edit module")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.ID == "" || req.Name == "" || req.LectureHours == 0 {
		WriteFailure(w, http.StatusBadRequest, "ID, name and lecture hours are required")
		return
	}
	if !validID(req.ID) {
		WriteFailure(w, http.StatusNotFound, "Module not found")
		return
	}
	staff, _ := json.Marshal(services.FilterIDs(req.AssignedStaff))
	module := models.Module{}
	err := s.DB.Get(&module, `
UPDATE modules
SET name = $2, lecture_hours = $3, assigned_staff = $4, updated_at = $5
WHERE id = $1
RETURNING id, name, lecture_hours, assigned_staff, created_at, updated_at
`, req.ID, req.Name, req.LectureHours, staff, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteFailure(w, http.StatusNotFound, "Module not found")
			return
		}
		WriteServiceError(w, err, "edit module")
		return
	}
	WriteJSON(w, http.StatusOK, ModuleResponse{Success: true, Module: toModuleDTO(module)})
}

func (s *Server) DeleteModules(w http.ResponseWriter, r *http.Request) {
	count, err := s.batchDelete(r, "modules", "modules")
	if err != nil {
		WriteServiceError(w, err, "delete modules")
		return
	}
	WriteJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("%d modules deleted", count),
	})
}
