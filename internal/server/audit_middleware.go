package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// auditLogMiddleware records every authenticated request and its response.
// It runs inside the auth middleware, so the caller is already resolved.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the notification stream stays open indefinitely and needs the raw
		// flusher, so it bypasses response capture entirely
		if strings.HasSuffix(r.URL.Path, "/notifications/stream") {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}
		if route := mux.CurrentRoute(r); route != nil {
			entry.Handler = route.GetName()
		}
		if id, ok := r.Context().Value(userIDKey).(uuid.UUID); ok {
			entry.UserID = id.String()
		}
		if strings.HasPrefix(r.URL.Path, "/items/") {
			entry.ItemID = pathSegmentAfter(r.URL.Path, "items")
		}
		if strings.HasPrefix(r.URL.Path, "/transactions/") {
			entry.TransactionID = pathSegmentAfter(r.URL.Path, "transactions")
		}

		var requestBody []byte
		if r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func pathSegmentAfter(path, marker string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == marker && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
