// Package notify implements the live-delivery side of notifications: an
// in-process session registry keyed by user id, exposed over Server-Sent
// Events. Persistence is handled elsewhere; everything here is best-effort.
package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry tracks the open live connections per user. It satisfies the
// orchestrator's Pusher capability.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[chan []byte]struct{}
	logger   *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]map[chan []byte]struct{}),
		logger:   logger,
	}
}

// Send pushes a payload to every open connection of a user. It reports
// whether at least one connection received it; a full client buffer drops
// the payload rather than blocking the caller.
func (r *Registry) Send(userID uuid.UUID, payload interface{}) bool {
	raw, err := json.Marshal(payload)
	if err != nil {
		r.logger.Warn("failed to marshal live payload", zap.Error(err))
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := false
	for ch := range r.sessions[userID] {
		select {
		case ch <- raw:
			delivered = true
		default:
		}
	}
	return delivered
}

// Subscribe registers a connection for a user and returns its channel plus
// an unsubscribe function.
func (r *Registry) Subscribe(userID uuid.UUID) (<-chan []byte, func()) {
	ch := make(chan []byte, 16)

	r.mu.Lock()
	if r.sessions[userID] == nil {
		r.sessions[userID] = make(map[chan []byte]struct{})
	}
	r.sessions[userID][ch] = struct{}{}
	r.mu.Unlock()

	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if conns, ok := r.sessions[userID]; ok {
			delete(conns, ch)
			if len(conns) == 0 {
				delete(r.sessions, userID)
			}
		}
		close(ch)
	}
}

// Connected reports how many users currently hold at least one connection.
func (r *Registry) Connected() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// ServeSSE streams a user's live notifications as Server-Sent Events until
// the client disconnects.
func (r *Registry) ServeSSE(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, unsubscribe := r.Subscribe(userID)
	defer unsubscribe()

	for {
		select {
		case raw, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: notification\ndata: %s\n\n", raw)
			flusher.Flush()
		case <-req.Context().Done():
			return
		}
	}
}
