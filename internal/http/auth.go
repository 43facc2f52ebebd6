package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Balraaj27/lawcrusade/internal/auth"
	"github.com/Balraaj27/lawcrusade/internal/crypto"
	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
	"github.com/Balraaj27/lawcrusade/internal/validate"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// authData pairs the admin profile with a freshly signed token.
type authData struct {
	User  model.Admin `json:"user"`
	Token string      `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.First(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		s.writeServerError(w, "Failed to register admin", err)
		return
	}

	created, err := s.store.CreateAdmin(r.Context(), model.Admin{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	})
	if err != nil {
		if db.IsDuplicate(err) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		s.writeServerError(w, "Failed to register admin", err)
		return
	}

	token, err := auth.NewToken(s.cfg.JWTSecret, s.cfg.JWTExpiresIn, created.ID, created.Email)
	if err != nil {
		s.writeServerError(w, "Failed to register admin", err)
		return
	}

	writeData(w, http.StatusCreated, "Admin registered successfully", authData{User: created, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.First(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := s.store.GetAdminByEmail(r.Context(), req.Email)
	if err != nil {
		if db.IsNotFound(err) {
			// Same response as a wrong password so the two cannot be told apart.
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.writeServerError(w, "Failed to login", err)
		return
	}
	if err := crypto.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.NewToken(s.cfg.JWTSecret, s.cfg.JWTExpiresIn, admin.ID, admin.Email)
	if err != nil {
		s.writeServerError(w, "Failed to login", err)
		return
	}

	admin.PasswordHash = ""
	writeData(w, http.StatusOK, "Login successful", authData{User: admin, Token: token})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}
	writeData(w, http.StatusOK, "Token is valid", map[string]any{"user": identity})
}
