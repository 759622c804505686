package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// UserDTO is the user record as returned to clients; the password hash
// never leaves the server.
type UserDTO struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	PrivilegeLevel int       `json:"privilegeLevel"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		PrivilegeLevel: user.PrivilegeLevel,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// Login verifies credentials and issues the session token. Failures stay
// plaintext for compatibility with the legacy frontend.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	user := models.User{}
	err := s.DB.Get(&user, `
SELECT id, username, password_hash, first_name, last_name, privilege_level, created_at, updated_at
FROM users WHERE username = $1
`, username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("login lookup: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	if !s.Tokens.VerifyPassword(req.Password, user.PasswordHash) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	token, err := s.Tokens.CreateToken(user)
	if err != nil {
		log.Printf("sign token: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Protected echoes the authenticated user's current record.
func (s *Server) Protected(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, toUserDTO(CurrentUser(r)))
}
