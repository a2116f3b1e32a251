package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/campusconnect/internal/metrics"
	"github.com/campusconnect/campusconnect/internal/repository"
)

// CreatePaymentIntent records a simulated payment intent on a transaction.
// Only the borrower can open one, and only before the payment is settled.
func (s *Service) CreatePaymentIntent(ctx context.Context, transactionID, callerID uuid.UUID, method string, amount int64) (*Transaction, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.transactions.GetByIDTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if callerID != row.BorrowerID {
		return nil, repository.ErrForbidden
	}
	if row.PaymentStatus != PaymentStatusNone && row.PaymentStatus != PaymentStatusPending {
		return nil, fmt.Errorf("%w: payment already %s", ErrInvalidTransition, row.PaymentStatus)
	}

	reference := uuid.NewString()
	row.PaymentMethod = &method
	row.PaymentAmount = &amount
	row.PaymentStatus = PaymentStatusPending
	row.PaymentReference = &reference
	if err := s.transactions.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to record payment intent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment intent: %w", err)
	}

	result := transactionFromRepo(row)
	return &result, nil
}

// ConfirmPayment settles a simulated charge: the payment moves to paid, the
// transaction completes and the item becomes available again. Both parties
// are notified.
func (s *Service) ConfirmPayment(ctx context.Context, transactionID, callerID uuid.UUID) (*Transaction, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.transactions.GetByIDTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if callerID != row.BorrowerID {
		return nil, repository.ErrForbidden
	}
	if row.PaymentStatus != PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	oldStatus := row.Status
	next, err := Next(Status(row.Status), ActionComplete, RoleBorrower)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row.Status = string(next)
	row.PaymentStatus = PaymentStatusPaid
	row.ReturnDate = &now
	row.CompletedAt = &now
	if err := s.transactions.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to settle payment: %w", err)
	}

	item, err := s.items.UpdateAvailabilityTx(ctx, tx, row.ItemID, string(AvailabilityAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to update item availability: %w", err)
	}

	if err := s.users.IncrementLoanCountersTx(ctx, tx, row.LenderID, row.BorrowerID); err != nil {
		return nil, fmt.Errorf("failed to update loan counters: %w", err)
	}

	lenderNotif := s.buildNotification(row.LenderID, NotificationPaymentReceived, row,
		fmt.Sprintf("Payment received for %q", item.Name), "normal")
	borrowerNotif := s.buildNotification(row.BorrowerID, NotificationPaymentReceived, row,
		fmt.Sprintf("Your payment for %q was confirmed", item.Name), "normal")
	for _, n := range []*repository.Notification{lenderNotif, borrowerNotif} {
		if err := s.notifications.CreateTx(ctx, tx, n); err != nil {
			return nil, fmt.Errorf("failed to record payment notification: %w", err)
		}
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, row, callerID, "payment_confirm", oldStatus); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment confirmation: %w", err)
	}

	metrics.PaymentsConfirmedTotal.Inc()
	if s.cache != nil {
		s.cache.SetStatus(item.ID, item.AvailabilityStatus)
	}
	s.push(lenderNotif)
	s.push(borrowerNotif)

	result := transactionFromRepo(row)
	return &result, nil
}

// RefundPayment reverses a settled payment. It is a compensation step, not
// a state-machine transition: whatever lifecycle state the transaction
// reached, it is forced to cancelled and the item is freed.
func (s *Service) RefundPayment(ctx context.Context, transactionID, callerID uuid.UUID) (*Transaction, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.transactions.GetByIDTx(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if callerID != row.LenderID {
		return nil, repository.ErrForbidden
	}
	if row.PaymentStatus != PaymentStatusPaid {
		return nil, ErrPaymentNotPaid
	}

	oldStatus := row.Status
	row.Status = string(StatusCancelled)
	row.PaymentStatus = PaymentStatusRefunded
	if err := s.transactions.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}

	item, err := s.items.UpdateAvailabilityTx(ctx, tx, row.ItemID, string(AvailabilityAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to update item availability: %w", err)
	}

	lenderNotif := s.buildNotification(row.LenderID, NotificationPaymentRefunded, row,
		fmt.Sprintf("You refunded the payment for %q", item.Name), "normal")
	borrowerNotif := s.buildNotification(row.BorrowerID, NotificationPaymentRefunded, row,
		fmt.Sprintf("Your payment for %q was refunded", item.Name), "high")
	for _, n := range []*repository.Notification{lenderNotif, borrowerNotif} {
		if err := s.notifications.CreateTx(ctx, tx, n); err != nil {
			return nil, fmt.Errorf("failed to record refund notification: %w", err)
		}
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, row, callerID, "refund", oldStatus); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit refund: %w", err)
	}

	if s.cache != nil {
		s.cache.SetStatus(item.ID, item.AvailabilityStatus)
	}
	s.push(lenderNotif)
	s.push(borrowerNotif)

	result := transactionFromRepo(row)
	return &result, nil
}
