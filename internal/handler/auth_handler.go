package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// AuthHandler handles admin login and the bootstrap registration endpoint.
type AuthHandler struct {
	authService      service.AuthService
	validator        *validation.Validator
	registrationOpen bool
}

// NewAuthHandler creates an AuthHandler. registrationOpen gates POST
// /api/auth/register; it should stay closed once the admin account exists.
func NewAuthHandler(authService service.AuthService, v *validation.Validator, registrationOpen bool) *AuthHandler {
	return &AuthHandler{authService: authService, validator: v, registrationOpen: registrationOpen}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Login handles POST /api/auth/login. Unknown user and wrong password get
// the same response (no user enumeration).
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid username or password"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Server error during login"})
		return
	}

	_ = json.NewEncoder(w).Encode(loginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Register handles POST /api/auth/register. The endpoint has no access
// control of its own and exists only to bootstrap the first admin account;
// it answers 403 unless REGISTRATION_OPEN is set.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.registrationOpen {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "registration is closed"})
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "User already exists"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Server error during registration"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(registerResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
