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

type CourseRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ProgramID     string   `json:"programId"`
	Semester      int      `json:"semester"`
	AssignedStaff []string `json:"assignedStaff"`
}

type CourseDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ProgramID     string            `json:"programId"`
	Semester      int               `json:"semester"`
	AssignedStaff []string          `json:"assignedStaff"`
	Calendar      services.Calendar `json:"calendar"`
}

type CourseResponse struct {
	Success bool      `json:"success"`
	Course  CourseDTO `json:"course"`
}

type CalendarRequest struct {
	CourseID string `json:"courseId"`
}

type CalendarUpdateRequest struct {
	CourseID    string            `json:"courseId"`
	Calendar    services.Calendar `json:"calendar"`
	CourseLabel string            `json:"courseLabel"`
	ModuleLabel string            `json:"moduleLabel"`
}

func toCourseDTO(c models.Course) CourseDTO {
	return CourseDTO{
		ID:            c.ID,
		Name:          c.Name,
		ProgramID:     c.ProgramID,
		Semester:      c.Semester,
		AssignedStaff: services.DecodeIDList(c.AssignedStaff),
		Calendar:      services.DecodeCalendar(c.Calendar),
	}
}

// ShowCourses lists every course as
// [id, name, programId, semester, assignedStaff, calendar].
func (s *Server) ShowCourses(w http.ResponseWriter, r *http.Request) {
	courses := []models.Course{}
	if err := s.DB.Select(&courses, `
SELECT id, name, program_id, semester, assigned_staff, calendar, created_at, updated_at
FROM courses ORDER BY created_at ASC
`); err != nil {
		WriteServiceError(w, err, "list courses")
		return
	}
	rows := make([][]interface{}, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []interface{}{
			c.ID, c.Name, c.ProgramID, c.Semester,
			services.DecodeIDList(c.AssignedStaff), services.DecodeCalendar(c.Calendar),
		})
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (s *Server) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "create course")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.ProgramID == "" || req.Semester == 0 {
		WriteFailure(w, http.StatusBadRequest, "Name, study program and semester are required")
		return
	}
	if !validID(req.ProgramID) {
		WriteFailure(w, http.StatusBadRequest, "Invalid study program reference")
		return
	}
	staff, _ := json.Marshal(services.FilterIDs(req.AssignedStaff))
	course := models.Course{
		ID:            uuid.NewString(),
		Name:          req.Name,
		ProgramID:     req.ProgramID,
		Semester:      req.Semester,
		AssignedStaff: staff,
		Calendar:      []byte(`{}`),
	}
	if _, err := s.DB.Exec(`
INSERT INTO courses (id, name, program_id, semester, assigned_staff, calendar, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
`, course.ID, course.Name, course.ProgramID, course.Semester, course.AssignedStaff, course.Calendar, time.Now().UTC()); err != nil {
		WriteServiceError(w, err, "create course")
		return
	}
	WriteJSON(w, http.StatusCreated, CourseResponse{Success: true, Course: toCourseDTO(course)})
}

// EditCourse replaces the course fields but leaves the stored calendar
// untouched.
func (s *Server) EditCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "edit course")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.ID == "" || req.Name == "" || req.ProgramID == "" || req.Semester == 0 {
		WriteFailure(w, http.StatusBadRequest, "ID, name, study program and semester are required")
		return
	}
	if !validID(req.ID) {
		WriteFailure(w, http.StatusNotFound, "Course not found")
		return
	}
	if !validID(req.ProgramID) {
		WriteFailure(w, http.StatusBadRequest, "Invalid study program reference")
		return
	}
	staff, _ := json.Marshal(services.FilterIDs(req.AssignedStaff))
	course := models.Course{}
	err := s.DB.Get(&course, `
UPDATE courses
SET name = $2, program_id = $3, semester = $4, assigned_staff = $5, updated_at = $6
WHERE id = $1
RETURNING id, name, program_id, semester, assigned_staff, calendar, created_at, updated_at
`, req.ID, req.Name, req.ProgramID, req.Semester, staff, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteFailure(w, http.StatusNotFound, "Course not found")
			return
		}
		WriteServiceError(w, err, "edit course")
		return
	}
	WriteJSON(w, http.StatusOK, CourseResponse{Success: true, Course: toCourseDTO(course)})
}

func (s *Server) DeleteCourses(w http.ResponseWriter, r *http.Request) {
	count, err := s.batchDelete(r, "courses", "courses")
	if err != nil {
		WriteServiceError(w, err, "delete courses")
		return
	}
	WriteJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("%d courses deleted", count),
	})
}

// CourseCalendar returns the stored slot-to-module mapping. POST because the
// course id travels in the body.
func (s *Server) CourseCalendar(w http.ResponseWriter, r *http.Request) {
	var req CalendarRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "fetch calendar")
		return
	}
	course, err := s.getCourse(req.CourseID)
	if err != nil {
		WriteServiceError(w, err, "fetch calendar")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]services.Calendar{
		"schedule": services.DecodeCalendar(course.Calendar),
	})
}

// UpdateCourseCalendar applies a proposed calendar. Adding new slots is open
// to any authenticated user; changing or removing existing slots requires
// top privilege or membership in the course's assigned staff. Every applied
// update is recorded in the audit trail. Concurrent updates to the same
// course are last-write-wins.
func (s *Server) UpdateCourseCalendar(w http.ResponseWriter, r *http.Request) {
	var req CalendarUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		WriteServiceError(w, err, "update calendar")
		return
	}
	course, err := s.getCourse(req.CourseID)
	if err != nil {
		WriteServiceError(w, err, "update calendar")
		return
	}
	next := req.Calendar
	if next == nil {
		next = services.Calendar{}
	}
	current := services.DecodeCalendar(course.Calendar)

	actor := CurrentUser(r)
	if services.CalendarModified(current, next) {
		assigned := services.DecodeIDList(course.AssignedStaff)
		if !services.CanModifyCalendar(actor.ID, actor.PrivilegeLevel, assigned) {
			WriteFailure(w, http.StatusForbidden, "Insufficient privileges to modify existing calendar entries")
			return
		}
	}

	// Full overwrite, not a merge: the payload must carry every entry that
	// should survive.
	raw, _ := json.Marshal(next)
	if _, err := s.DB.Exec(`
UPDATE courses SET calendar = $2, updated_at = $3 WHERE id = $1
`, course.ID, raw, time.Now().UTC()); err != nil {
		WriteServiceError(w, err, "update calendar")
		return
	}

	courseLabel := strings.TrimSpace(req.CourseLabel)
	if courseLabel == "" {
		courseLabel = course.Name
	}
	actorName := strings.TrimSpace(actor.FirstName + " " + actor.LastName)
	if err := services.AppendAudit(s.DB, actorName, courseLabel, req.ModuleLabel); err != nil {
		WriteServiceError(w, err, "update calendar audit")
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Success  bool              `json:"success"`
		Calendar services.Calendar `json:"calendar"`
	}{Success: true, Calendar: next})
}

func (s *Server) getCourse(id string) (models.Course, error) {
	if id == "" || !validID(id) {
		return models.Course{}, services.ErrNotFound("Course not found")
	}
	course := models.Course{}
	err := s.DB.Get(&course, `
SELECT id, name, program_id, semester, assigned_staff, calendar, created_at, updated_at
FROM courses WHERE id = $1
`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, services.ErrNotFound("Course not found")
		}
		return models.Course{}, err
	}
	return course, nil
}
