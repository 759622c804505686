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
)

type EmployeeCreateRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	PrivilegeLevel int    `json:"privilegeLevel"`
}

type EmployeeEditRequest struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Username       string `json:"username"`
	PrivilegeLevel int    `json:"privilegeLevel"`
}

type EmployeeResponse struct {
	Success  bool    `json:"success"`
	Employee UserDTO `json:"employee"`
}

func (s *Server) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.FirstName == "" || req.LastName == "" || req.Username == "" || req.Password == "" {
		WriteFailure(w, http.StatusBadRequest, "First name, last name, username and password are required")
		return
	}
	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteServiceError(w, err, "hash password")
		return
	}
	if req.PrivilegeLevel == 0 {
		req.PrivilegeLevel = 1
	}
	user := models.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PrivilegeLevel: req.PrivilegeLevel,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	_, err = s.DB.Exec(`
INSERT INTO users (id, username, password_hash, first_name, last_name, privilege_level, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
`, user.ID, user.Username, user.PasswordHash, user.FirstName, user.LastName, user.PrivilegeLevel, user.CreatedAt)
	if err != nil {
		WriteServiceError(w, err, "create employee")
		return
	}
	WriteJSON(w, http.StatusCreated, EmployeeResponse{Success: true, Employee: toUserDTO(user)})
}

// ShowEmployees lists every staff record as the compact row tuple
// [id, firstName, lastName, privilegeLevel, username].
func (s *Server) ShowEmployees(w http.ResponseWriter, r *http.Request) {
	users := []models.User{}
	if err := s.DB.Select(&users, `
SELECT id, username, password_hash, first_name, last_name, privilege_level, created_at, updated_at
FROM users ORDER BY created_at ASC
`); err != nil {
		WriteServiceError(w, err, "list employees")
		return
	}
	rows := make([][]interface{}, 0, len(users))
	for _, user := range users {
		rows = append(rows, []interface{}{
			user.ID, user.FirstName, user.LastName, user.PrivilegeLevel, user.Username,
		})
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (s *Server) EditEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.ID == "" || req.FirstName == "" || req.LastName == "" || req.Username == "" {
		WriteFailure(w, http.StatusBadRequest, "ID, first name, last name and username are required")
		return
	}
	if !validID(req.ID) {
		WriteFailure(w, http.StatusNotFound, "Employee with this ID does not exist")
		return
	}
	var exists bool
	if err := s.DB.Get(&exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, req.ID); err != nil {
		WriteServiceError(w, err, "edit employee lookup")
		return
	}
	if !exists {
		WriteFailure(w, http.StatusNotFound, "Employee with this ID does not exist")
		return
	}
	var taken bool
	if err := s.DB.Get(&taken, `
SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)
`, req.Username, req.ID); err != nil {
		WriteServiceError(w, err, "edit employee username check")
		return
	}
	if taken {
		WriteFailure(w, http.StatusBadRequest, "Username already in use by another employee")
		return
	}
	user := models.User{}
	if err := s.DB.Get(&user, `
UPDATE users
SET first_name = $2, last_name = $3, username = $4, privilege_level = $5, updated_at = $6
WHERE id = $1
RETURNING id, username, password_hash, first_name, last_name, privilege_level, created_at, updated_at
`, req.ID, req.FirstName, req.LastName, req.Username, req.PrivilegeLevel, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteFailure(w, http.StatusNotFound, "Employee with this ID does not exist")
			return
		}
		WriteServiceError(w, err, "edit employee")
		return
	}
	WriteJSON(w, http.StatusOK, EmployeeResponse{Success: true, Employee: toUserDTO(user)})
}

func (s *Server) DeleteEmployees(w http.ResponseWriter, r *http.Request) {
	count, err := s.batchDelete(r, "users", "employees")
	if err != nil {
		WriteServiceError(w, err, "delete employees")
		return
	}
	WriteJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("%d employees deleted", count),
	})
}
