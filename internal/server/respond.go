package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: false, Message: message})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything it
// does not recognize is a 500 with a generic body.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrForbidden):
		respondError(w, http.StatusForbidden, "you are not a party to this resource")
	case errors.Is(err, repository.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, marketplace.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, marketplace.ErrItemUnavailable),
		errors.Is(err, marketplace.ErrDuplicateRequest),
		errors.Is(err, marketplace.ErrNotReviewable):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, marketplace.ErrSelfBorrow),
		errors.Is(err, marketplace.ErrPaymentNotPending),
		errors.Is(err, marketplace.ErrPaymentNotPaid),
		errors.Is(err, marketplace.ErrInvalidRating):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				respondError(w, http.StatusConflict, "resource already exists")
				return
			case "23503", "23514":
				respondError(w, http.StatusBadRequest, "request references unknown or invalid data")
				return
			}
		}
		s.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
