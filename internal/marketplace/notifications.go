package marketplace

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (s *Service) Notifications(ctx context.Context, userID uuid.UUID, page, limit int) ([]Notification, error) {
	rows, err := s.notifications.GetByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	notifications := make([]Notification, len(rows))
	for i, row := range rows {
		notifications[i] = notificationFromRepo(row)
	}
	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error) {
	row, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	n := notificationFromRepo(row)
	return &n, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadNotificationCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.UnreadCount(ctx, userID)
}

func (s *Service) DeleteNotification(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifications.Delete(ctx, id, userID)
}
