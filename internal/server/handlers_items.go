package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

// pathID parses the {id} path variable. A malformed id is reported as 404:
// it can never name an existing resource.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var in marketplace.NewItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" {
		respondError(w, http.StatusBadRequest, "item name is required")
		return
	}

	item, err := s.service.CreateItem(r.Context(), callerID(r), in)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, item)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	item, err := s.service.GetItem(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ItemFilter{
		Query:        q.Get("q"),
		CategorySlug: q.Get("category"),
		Condition:    q.Get("condition"),
		Location:     q.Get("location"),
		Availability: q.Get("availability"),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 20),
	}

	page, err := s.service.SearchItems(r.Context(), filter)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, page)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var patch repository.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.service.UpdateItem(r.Context(), id, callerID(r), patch)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := s.service.DeleteItem(r.Context(), id, callerID(r)); err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "item deleted")
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.service.ListCategories(r.Context())
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, categories)
}
