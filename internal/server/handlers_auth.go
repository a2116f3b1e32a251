package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgconn"

	"github.com/campusconnect/campusconnect/internal/auth"
)

type authResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Username == "" || len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "email, username and a password of at least 8 characters are required")
		return
	}

	user, err := s.users.Create(r.Context(), req.Email, req.Username, req.Password, req.FullName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			respondError(w, http.StatusConflict, "email or username already taken")
			return
		}
		s.respondServiceError(w, err)
		return
	}

	token, err := auth.GenerateToken(s.config.JWTSecret, user.ID, user.Username)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusCreated, authResponse{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
		FullName: user.FullName,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	token, err := auth.GenerateToken(s.config.JWTSecret, user.ID, user.Username)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, authResponse{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
		FullName: user.FullName,
	})
}
