package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/campusconnect/campusconnect/internal/marketplace"
)

func (s *Server) handleRequestToBorrow(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req struct {
		BorrowDate string `json:"borrow_date"`
		DueDate    string `json:"due_date"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid due_date, use YYYY-MM-DD")
		return
	}
	if dueDate.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		respondError(w, http.StatusBadRequest, "due_date is in the past")
		return
	}

	in := marketplace.BorrowRequestInput{DueDate: dueDate.UTC(), Notes: req.Notes}
	if req.BorrowDate != "" {
		borrowDate, err := time.Parse("2006-01-02", req.BorrowDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid borrow_date, use YYYY-MM-DD")
			return
		}
		in.BorrowDate = borrowDate.UTC()
	}

	transaction, err := s.service.RequestToBorrow(r.Context(), itemID, callerID(r), in)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, transaction)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	transaction, err := s.service.Approve(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	transaction, err := s.service.Reject(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	target := marketplace.Status(req.Status)
	if !target.Valid() {
		respondError(w, http.StatusBadRequest, "unknown status: "+req.Status)
		return
	}

	transaction, err := s.service.UpdateStatus(r.Context(), id, callerID(r), target, req.Notes)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}

func (s *Server) handleMarkReturned(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	transaction, err := s.service.MarkReturned(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	transaction, err := s.service.GetTransaction(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role != "" && role != "lender" && role != "borrower" {
		respondError(w, http.StatusBadRequest, "role must be lender or borrower")
		return
	}

	transactions, err := s.service.ListTransactions(r.Context(), callerID(r), role,
		queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transactions)
}

func (s *Server) handleActiveTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.service.ActiveTransactions(r.Context(), callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transactions)
}

func (s *Server) handleTransactionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.TransactionStats(r.Context())
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}

func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req struct {
		Method string `json:"method"`
		Amount int64  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Method == "" || req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "method and a positive amount are required")
		return
	}

	transaction, err := s.service.CreatePaymentIntent(r.Context(), id, callerID(r), req.Method, req.Amount)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, transaction)
}

func (s *Server) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	transaction, err := s.service.ConfirmPayment(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}

func (s *Server) handleRefundPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	transaction, err := s.service.RefundPayment(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, transaction)
}
