package server

import (
	"encoding/json"
	"net/http"

	"github.com/campusconnect/campusconnect/internal/marketplace"
)

func (s *Server) handleLeaveReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var in marketplace.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := s.service.LeaveReview(r.Context(), id, callerID(r), in)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, review)
}

func (s *Server) handleUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	reviews, err := s.service.UserReviews(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, reviews)
}
