package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

const notificationInsert = `
    INSERT INTO notifications (
        id, user_id, type, message, item_id, transaction_id, is_read, priority, created_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) marketplace.NotificationRepository {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n *repository.Notification) error {
	_, err := r.db.Exec(ctx, notificationInsert,
		n.ID, n.UserID, n.Type, n.Message, n.ItemID, n.TransactionID, n.IsRead, n.Priority, n.CreatedAt)
	return err
}

func (r *NotificationRepo) CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error {
	_, err := tx.Exec(ctx, notificationInsert,
		n.ID, n.UserID, n.Type, n.Message, n.ItemID, n.TransactionID, n.IsRead, n.Priority, n.CreatedAt)
	return err
}

func (r *NotificationRepo) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*repository.Notification, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var notifications []*repository.Notification
	err := r.db.Select(ctx, &notifications, `
        SELECT * FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, userID, limit, (page-1)*limit)
	return notifications, err
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*repository.Notification, error) {
	var n repository.Notification
	err := r.db.Get(ctx, &n, `
        UPDATE notifications SET is_read = TRUE, read_at = $3
        WHERE id = $1 AND user_id = $2
        RETURNING *
    `, id, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE notifications SET is_read = TRUE, read_at = $2
        WHERE user_id = $1 AND is_read = FALSE
    `, userID, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepo) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Get(ctx, &count,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE", userID)
	return count, err
}

func (r *NotificationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM notifications WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *NotificationRepo) DeleteOld(ctx context.Context, daysOld int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -daysOld)
	tag, err := r.db.Exec(ctx, "DELETE FROM notifications WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepo) ExistsForTransaction(ctx context.Context, transactionID uuid.UUID, notificationType string) (bool, error) {
	var count int64
	err := r.db.Get(ctx, &count, `
        SELECT COUNT(*) FROM notifications
        WHERE transaction_id = $1 AND type = $2
    `, transactionID, notificationType)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
