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

type ProgramRequest struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SemesterModules [][]string `json:"semesterModules"`
}

type ProgramHoursRequest struct {
	ID       string `json:"id"`
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

type ProgramDTO struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	SemesterModules   [][]string `json:"semesterModules"`
	EarliestHour      string     `json:"earliestHour"`
	LatestHour        string     `json:"latestHour"`
	MaxBlockMinutes   int        `json:"maxBlockMinutes"`
	LunchBreakMinutes int        `json:"lunchBreakMinutes"`
}

type ProgramResponse struct {
	Success bool       `json:"success"`
	Program ProgramDTO `json:"program"`
}

func toProgramDTO(p models.StudyProgram) ProgramDTO {
	return ProgramDTO{
		ID:                p.ID,
		Name:              p.Name,
		SemesterModules:   services.DecodeSemesterLists(p.SemesterModules),
		EarliestHour:      p.EarliestHour,
		LatestHour:        p.LatestHour,
		MaxBlockMinutes:   p.MaxBlockMinutes,
		LunchBreakMinutes: p.LunchBreakMinutes,
	}
}

// filterSemesterLists keeps only syntactically valid module ids in each of
// the six semester slots.
func filterSemesterLists(lists [][]string) [][]string {
	filtered := make([][]string, len(lists))
	for i, list := range lists {
		filtered[i] = services.FilterIDs(list)
	}
	return filtered
}

// ShowPrograms lists every study program as
// [id, name, sem1..sem6, earliestHour, latestHour].
func (s *Server) ShowPrograms(w http.ResponseWriter, r *http.Request) {
	programs := []models.StudyProgram{}
	if err := s.DB.Select(&programs, `
SELECT id, name, semester_modules, earliest_hour, latest_hour, max_block_minutes, lunch_break_minutes, created_at, updated_at
FROM study_programs ORDER BY created_at ASC
`); err != nil {
		WriteServiceError(w, err, "list programs")
		return
	}
	rows := make([][]interface{}, 0, len(programs))
	for _, p := range programs {
		semesters := services.DecodeSemesterLists(p.SemesterModules)
		rows = append(rows, []interface{}{
			p.ID, p.Name,
			semesters[0], semesters[1], semesters[2], semesters[3], semesters[4], semesters[5],
			p.EarliestHour, p.LatestHour,
		})
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (s *Server) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req ProgramRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "create program")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.SemesterModules) != 6 {
		WriteFailure(w, http.StatusBadRequest, "Name and 6 semester module lists are required")
		return
	}
	semesters, _ := json.Marshal(filterSemesterLists(req.SemesterModules))
	program := models.StudyProgram{
		ID:              uuid.NewString(),
		Name:            req.Name,
		SemesterModules: semesters,
		// Scheduling-window defaults; adjustable later via /sgs/hours.
		EarliestHour:      "7",
		LatestHour:        "18",
		MaxBlockMinutes:   180,
		LunchBreakMinutes: 60,
	}
	if _, err := s.DB.Exec(`
INSERT INTO study_programs (id, name, semester_modules, earliest_hour, latest_hour, max_block_minutes, lunch_break_minutes, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
`, program.ID, program.Name, program.SemesterModules, program.EarliestHour, program.LatestHour,
		program.MaxBlockMinutes, program.LunchBreakMinutes, time.Now().UTC()); err != nil {
		WriteServiceError(w, err, "create program")
		return
	}
	WriteJSON(w, http.StatusCreated, ProgramResponse{Success: true, Program: toProgramDTO(program)})
}

func (s *Server) EditProgram(w http.ResponseWriter, r *http.Request) {
	var req ProgramRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "edit program")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.SemesterModules) != 6 {
		WriteFailure(w, http.StatusBadRequest, "Name and 6 semester module lists are required")
		return
	}
	if req.ID == "" || !validID(req.ID) {
		WriteFailure(w, http.StatusNotFound, "Study program not found")
		return
	}
	semesters, _ := json.Marshal(filterSemesterLists(req.SemesterModules))
	program := models.StudyProgram{}
	err := s.DB.Get(&program, `
UPDATE study_programs
SET name = $2, semester_modules = $3, updated_at = $4
WHERE id = $1
RETURNING id, name, semester_modules, earliest_hour, latest_hour, max_block_minutes, lunch_break_minutes, created_at, updated_at
`, req.ID, req.Name, semesters, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteFailure(w, http.StatusNotFound, "Study program not found")
			return
		}
		WriteServiceError(w, err, "edit program")
		return
	}
	WriteJSON(w, http.StatusOK, ProgramResponse{Success: true, Program: toProgramDTO(program)})
}

// EditProgramHours updates only the scheduling-window bounds.
func (s *Server) EditProgramHours(w http.ResponseWriter, r *http.Request) {
	var req ProgramHoursRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "edit program hours")
		return
	}
	if req.ID == "" || !validID(req.ID) {
		WriteFailure(w, http.StatusNotFound, "Study program not found")
		return
	}
	program := models.StudyProgram{}
	err := s.DB.Get(&program, `
UPDATE study_programs
SET earliest_hour = $2, latest_hour = $3, updated_at = $4
WHERE id = $1
RETURNING id, name, semester_modules, earliest_hour, latest_hour, max_block_minutes, lunch_break_minutes, created_at, updated_at
`, req.ID, req.Earliest, req.Latest, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteFailure(w, http.StatusNotFound, "Study program not found")
			return
		}
		WriteServiceError(w, err, "edit program hours")
		return
	}
	WriteJSON(w, http.StatusOK, ProgramResponse{Success: true, Program: toProgramDTO(program)})
}

func (s *Server) DeletePrograms(w http.ResponseWriter, r *http.Request) {
	count, err := s.batchDelete(r, "study_programs", "study programs")
	if err != nil {
		WriteServiceError(w, err, "delete programs")
		return
	}
	WriteJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("%d study programs deleted", count),
	})
}
