package marketplace

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campusconnect/campusconnect/internal/repository"
)

// SweeperConfig controls the periodic reminder/cleanup job.
type SweeperConfig struct {
	Interval      time.Duration
	DueWindow     time.Duration
	RetentionDays int
}

// DefaultSweeperConfig reminds a day ahead, twice a day, and prunes
// notifications after 90 days.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Interval:      12 * time.Hour,
		DueWindow:     24 * time.Hour,
		RetentionDays: 90,
	}
}

// RunSweeper periodically emits due-soon and overdue notifications and
// prunes old read notifications. It blocks until the context is cancelled.
func (s *Service) RunSweeper(ctx context.Context, cfg SweeperConfig) {
	s.logger.Info("starting reminder sweeper", zap.Duration("interval", cfg.Interval))

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Sweep(ctx, cfg); err != nil {
				s.logger.Error("sweep failed", zap.Error(err))
			}
		case <-ctx.Done():
			s.logger.Info("reminder sweeper stopping")
			return
		}
	}
}

// Sweep runs one reminder/cleanup pass.
func (s *Service) Sweep(ctx context.Context, cfg SweeperConfig) error {
	now := time.Now().UTC()

	dueSoon, err := s.transactions.FindDueBetween(ctx, now, now.Add(cfg.DueWindow))
	if err != nil {
		return fmt.Errorf("failed to find due transactions: %w", err)
	}
	for _, row := range dueSoon {
		if err := s.remind(ctx, row, NotificationDueReminder, "normal",
			fmt.Sprintf("Reminder: %q is due back on %s", s.itemName(ctx, row), row.DueDate.Format("2006-01-02"))); err != nil {
			s.logger.Warn("due reminder failed", zap.String("transaction_id", row.ID.String()), zap.Error(err))
		}
	}

	overdue, err := s.transactions.FindOverdue(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to find overdue transactions: %w", err)
	}
	for _, row := range overdue {
		_, days := lateness(row.DueDate, now)
		if err := s.remind(ctx, row, NotificationOverdue, "high",
			fmt.Sprintf("%q is overdue by %d day(s)", s.itemName(ctx, row), days)); err != nil {
			s.logger.Warn("overdue notification failed", zap.String("transaction_id", row.ID.String()), zap.Error(err))
		}
	}

	deleted, err := s.notifications.DeleteOld(ctx, cfg.RetentionDays)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("pruned old notifications", zap.Int64("deleted", deleted))
	}
	return nil
}

// remind emits at most one notification of the given type per transaction.
func (s *Service) remind(ctx context.Context, row *repository.Transaction, notificationType, priority, message string) error {
	exists, err := s.notifications.ExistsForTransaction(ctx, row.ID, notificationType)
	if err != nil || exists {
		return err
	}

	notif := s.buildNotification(row.BorrowerID, notificationType, row, message, priority)
	if err := s.notifications.Create(ctx, notif); err != nil {
		return err
	}
	s.push(notif)
	return nil
}

// itemName resolves an item's display name for reminder templates.
func (s *Service) itemName(ctx context.Context, row *repository.Transaction) string {
	item, err := s.items.GetByID(ctx, row.ItemID)
	if err != nil {
		return "Unknown Item"
	}
	return item.Name
}
