package server

import (
	"net/http"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.service.Notifications(r.Context(), callerID(r),
		queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	notification, err := s.service.MarkNotificationRead(r.Context(), id, callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, notification)
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	updated, err := s.service.MarkAllNotificationsRead(r.Context(), callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.service.UnreadNotificationCount(r.Context(), callerID(r))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]int64{"unread": count})
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := s.service.DeleteNotification(r.Context(), id, callerID(r)); err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "notification deleted")
}

func (s *Server) handleNotificationStream(w http.ResponseWriter, r *http.Request) {
	if s.streamer == nil {
		respondError(w, http.StatusServiceUnavailable, "live notifications are not enabled")
		return
	}
	s.streamer.ServeSSE(w, r, callerID(r))
}
